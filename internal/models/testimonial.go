package models

import "time"

// Testimonial is a rated feedback entry submitted by a user. Only approved
// testimonials are publicly visible; approval is toggled by an admin.
type Testimonial struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index;not null" json:"user_id"`
	User       User      `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Rating     int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
