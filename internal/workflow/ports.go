package workflow

import (
	"nagarseva/backend/internal/models"
)

// Store is the slice of the storage layer the workflow engine needs.
type Store interface {
	GetUserByID(id string) (*models.User, error)
	GetComplaintByID(id uint) (*models.Complaint, error)
	AssignOfficer(complaintID uint, officerID string) error
	IsAssignedTo(complaintID uint, officerID string) (bool, error)
	UpdateComplaintStatus(id uint, status models.ComplaintStatus) error
}
