package storage

import (
	"context"
	"errors"
	"time"

	"nagarseva/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("record not found")

// StatusCount is a complaint count grouped by status.
type StatusCount struct {
	Status models.ComplaintStatus `json:"status"`
	Count  int64                  `json:"count"`
}

// ZoneCount is a complaint count grouped by zone name.
type ZoneCount struct {
	Zone  string `json:"zone"`
	Count int64  `json:"count"`
}

// MonthCount is a complaint count grouped by calendar month.
type MonthCount struct {
	Month time.Time `json:"month"`
	Count int64     `json:"count"`
}

type Storage interface {
	// Users
	CreateUser(user *models.User) error
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByAadhaar(aadhaar string) (*models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id string) error
	ListUsersByRole(role models.Role, search string, page, pageSize int) ([]models.User, int64, error)

	// Zones
	CreateZone(zone *models.Zone) error
	GetZoneByID(id uint) (*models.Zone, error)
	GetZoneByName(name string) (*models.Zone, error)
	UpdateZone(zone *models.Zone) error
	DeleteZone(id uint) error
	ListZones(search string, page, pageSize int) ([]models.Zone, int64, error)
	AllZones() ([]models.Zone, error)

	// Complaints
	CreateComplaint(complaint *models.Complaint) error
	GetComplaintByID(id uint) (*models.Complaint, error)
	ListComplaintsByCitizen(citizenID string) ([]models.Complaint, error)
	SearchComplaints(query string, page, pageSize int) ([]models.Complaint, int64, error)
	UpdateComplaintStatus(id uint, status models.ComplaintStatus) error

	// Assignments
	AssignOfficer(complaintID uint, officerID string) error
	GetAssignmentByComplaintID(complaintID uint) (*models.Assignment, error)
	AssignmentsForComplaints(complaintIDs []uint) ([]models.Assignment, error)
	IsAssignedTo(complaintID uint, officerID string) (bool, error)
	ListAssignedComplaints(officerID, search string, status models.ComplaintStatus, page, pageSize int) ([]models.Complaint, int64, error)

	// Testimonials
	CreateTestimonial(t *models.Testimonial) error
	GetTestimonialByID(id uint) (*models.Testimonial, error)
	UpdateTestimonial(t *models.Testimonial) error
	DeleteTestimonial(id uint) error
	SearchTestimonials(search string, page, pageSize int) ([]models.Testimonial, int64, error)
	ApprovedTestimonials(limit int) ([]models.Testimonial, error)

	// Contacts
	CreateContact(contact *models.Contact) error
	SearchContacts(search string, page, pageSize int) ([]models.Contact, int64, error)
	DeleteContact(id uint) error

	// Analytics
	ComplaintStatusCounts() ([]StatusCount, error)
	ComplaintZoneCounts() ([]ZoneCount, error)
	MonthlyComplaintCounts() ([]MonthCount, error)
	CountComplaints() (int64, error)
	CountAssignments() (int64, error)
	AverageTestimonialRating() (float64, error)
	CurrentMonthComplaintCount() (int64, error)

	// Sessions
	RevokeToken(jti string, ttl time.Duration) error
	IsTokenRevoked(jti string) (bool, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}
