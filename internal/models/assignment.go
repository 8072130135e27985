package models

import "time"

// Assignment links a complaint to the officer responsible for resolving it.
// The unique index on ComplaintID keeps at most one assignment per complaint;
// re-assignment updates the existing row instead of inserting a second one.
type Assignment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ComplaintID uint      `gorm:"uniqueIndex;not null" json:"complaint_id"`
	Complaint   Complaint `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OfficerID   string    `gorm:"index;not null" json:"officer_id"`
	Officer     User      `gorm:"constraint:OnDelete:CASCADE" json:"officer"`
	AssignedAt  time.Time `json:"assigned_at"`
}
