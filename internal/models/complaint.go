package models

import "time"

// ComplaintStatus is the workflow state of a complaint.
type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "Pending"
	StatusInProgress ComplaintStatus = "In Progress"
	StatusResolved   ComplaintStatus = "Resolved"
)

// Valid reports whether s is one of the known statuses.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// Complaint is a citizen-submitted issue report tied to a zone and a
// geolocation. The citizen reference never changes after creation; the
// status is mutated by officers and admins through the workflow engine.
type Complaint struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CitizenID   string          `gorm:"index;not null" json:"citizen_id"`
	Citizen     User            `gorm:"constraint:OnDelete:CASCADE" json:"citizen"`
	ZoneID      *uint           `json:"zone_id,omitempty"`
	Zone        *Zone           `gorm:"constraint:OnDelete:SET NULL" json:"zone,omitempty"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Photo       string          `gorm:"size:255" json:"photo,omitempty"` // stored filename, empty when none uploaded
	Location    string          `gorm:"size:255" json:"location"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Status      ComplaintStatus `gorm:"size:20;default:'Pending'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}
