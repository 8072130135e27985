package storage

import (
	"errors"
	"log"
	"time"

	"nagarseva/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func offset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

// --- Users ---

func (s *Service) CreateUser(user *models.User) error {
	if err := s.DB.Create(user).Error; err != nil {
		log.Printf("ERROR: Failed to create user %s: %v", user.Email, err)
		return err
	}
	return nil
}

func (s *Service) GetUserByID(id string) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByAadhaar(aadhaar string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("aadhaar = ?", aadhaar).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// DeleteUser removes a user together with everything hanging off it: the
// user's complaints, assignments of those complaints, assignments where the
// user is the officer, and the user's testimonials. All inside one
// transaction so a partial cascade can never be observed.
func (s *Service) DeleteUser(id string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var complaintIDs []uint
		if err := tx.Model(&models.Complaint{}).
			Where("citizen_id = ?", id).
			Pluck("id", &complaintIDs).Error; err != nil {
			return err
		}
		if len(complaintIDs) > 0 {
			if err := tx.Where("complaint_id IN ?", complaintIDs).
				Delete(&models.Assignment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", complaintIDs).
				Delete(&models.Complaint{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("officer_id = ?", id).
			Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).
			Delete(&models.Testimonial{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, "id = ?", id)
		if result.Error != nil {
			log.Printf("ERROR: Failed to delete user %s: %v", id, result.Error)
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *Service) ListUsersByRole(role models.Role, search string, page, pageSize int) ([]models.User, int64, error) {
	tx := s.DB.Model(&models.User{}).Where("role = ?", role)
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR aadhaar ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	err := tx.Order("created_at DESC").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// --- Zones ---

func (s *Service) CreateZone(zone *models.Zone) error {
	if err := s.DB.Create(zone).Error; err != nil {
		log.Printf("ERROR: Failed to create zone %q: %v", zone.Name, err)
		return err
	}
	return nil
}

func (s *Service) GetZoneByID(id uint) (*models.Zone, error) {
	var zone models.Zone
	err := s.DB.First(&zone, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (s *Service) GetZoneByName(name string) (*models.Zone, error) {
	var zone models.Zone
	err := s.DB.Where("name = ?", name).First(&zone).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (s *Service) UpdateZone(zone *models.Zone) error {
	return s.DB.Save(zone).Error
}

func (s *Service) DeleteZone(id uint) error {
	return s.DB.Delete(&models.Zone{}, id).Error
}

func (s *Service) ListZones(search string, page, pageSize int) ([]models.Zone, int64, error) {
	tx := s.DB.Model(&models.Zone{})
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var zones []models.Zone
	err := tx.Order("name ASC").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&zones).Error
	if err != nil {
		return nil, 0, err
	}
	return zones, total, nil
}

func (s *Service) AllZones() ([]models.Zone, error) {
	var zones []models.Zone
	if err := s.DB.Order("name ASC").Find(&zones).Error; err != nil {
		return nil, err
	}
	return zones, nil
}

// --- Complaints ---

func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusPending
	}
	if err := s.DB.Create(complaint).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint %q: %v", complaint.Title, err)
		return err
	}
	return nil
}

func (s *Service) GetComplaintByID(id uint) (*models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Preload("Zone").First(&complaint, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (s *Service) ListComplaintsByCitizen(citizenID string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := s.DB.Where("citizen_id = ?", citizenID).
		Preload("Zone").
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		log.Printf("ERROR: Failed to list complaints for citizen %s: %v", citizenID, err)
		return nil, err
	}
	return complaints, nil
}

// SearchComplaints matches the query against title, description and the
// reporting citizen's name.
func (s *Service) SearchComplaints(query string, page, pageSize int) ([]models.Complaint, int64, error) {
	tx := s.DB.Model(&models.Complaint{})
	if query != "" {
		like := "%" + query + "%"
		tx = tx.Joins("JOIN users ON users.id = complaints.citizen_id").
			Where("complaints.title ILIKE ? OR complaints.description ILIKE ? OR users.name ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var complaints []models.Complaint
	err := tx.Preload("Citizen").Preload("Zone").
		Order("complaints.created_at DESC").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

func (s *Service) UpdateComplaintStatus(id uint, status models.ComplaintStatus) error {
	result := s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		log.Printf("ERROR: Failed to update status of complaint %d: %v", id, result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Assignments ---

// AssignOfficer writes the assignment and the forced "In Progress" status
// as one transaction, so the two can never diverge. An existing assignment
// for the complaint is updated in place; the unique index on complaint_id
// backs the one-assignment-per-complaint invariant at the database level.
func (s *Service) AssignOfficer(complaintID uint, officerID string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Assignment
		err := tx.Where("complaint_id = ?", complaintID).First(&existing).Error
		switch {
		case err == nil:
			existing.OfficerID = officerID
			existing.AssignedAt = time.Now()
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			assignment := models.Assignment{
				ComplaintID: complaintID,
				OfficerID:   officerID,
				AssignedAt:  time.Now(),
			}
			if err := tx.Create(&assignment).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&models.Complaint{}).
			Where("id = ?", complaintID).
			Update("status", models.StatusInProgress).Error
	})
}

func (s *Service) GetAssignmentByComplaintID(complaintID uint) (*models.Assignment, error) {
	var assignment models.Assignment
	err := s.DB.Preload("Officer").
		Where("complaint_id = ?", complaintID).
		First(&assignment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (s *Service) AssignmentsForComplaints(complaintIDs []uint) ([]models.Assignment, error) {
	if len(complaintIDs) == 0 {
		return nil, nil
	}
	var assignments []models.Assignment
	err := s.DB.Preload("Officer").
		Where("complaint_id IN ?", complaintIDs).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *Service) IsAssignedTo(complaintID uint, officerID string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Assignment{}).
		Where("complaint_id = ? AND officer_id = ?", complaintID, officerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Service) ListAssignedComplaints(officerID, search string, status models.ComplaintStatus, page, pageSize int) ([]models.Complaint, int64, error) {
	tx := s.DB.Model(&models.Complaint{}).
		Joins("JOIN assignments ON assignments.complaint_id = complaints.id").
		Where("assignments.officer_id = ?", officerID)

	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("complaints.title ILIKE ? OR complaints.description ILIKE ?", like, like)
	}
	if status != "" {
		tx = tx.Where("complaints.status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var complaints []models.Complaint
	err := tx.Preload("Zone").
		Order("complaints.created_at DESC").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&complaints).Error
	if err != nil {
		return nil, 0, err
	}
	return complaints, total, nil
}

// --- Testimonials ---

func (s *Service) CreateTestimonial(t *models.Testimonial) error {
	if err := s.DB.Create(t).Error; err != nil {
		log.Printf("ERROR: Failed to save testimonial from user %s: %v", t.UserID, err)
		return err
	}
	return nil
}

func (s *Service) GetTestimonialByID(id uint) (*models.Testimonial, error) {
	var t models.Testimonial
	err := s.DB.Preload("User").First(&t, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Service) UpdateTestimonial(t *models.Testimonial) error {
	return s.DB.Save(t).Error
}

func (s *Service) DeleteTestimonial(id uint) error {
	result := s.DB.Delete(&models.Testimonial{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchTestimonials matches the query against the submitting user's name.
func (s *Service) SearchTestimonials(search string, page, pageSize int) ([]models.Testimonial, int64, error) {
	tx := s.DB.Model(&models.Testimonial{})
	if search != "" {
		tx = tx.Joins("JOIN users ON users.id = testimonials.user_id").
			Where("users.name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var testimonials []models.Testimonial
	err := tx.Preload("User").
		Order("testimonials.created_at DESC").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&testimonials).Error
	if err != nil {
		return nil, 0, err
	}
	return testimonials, total, nil
}

func (s *Service) ApprovedTestimonials(limit int) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := s.DB.Preload("User").
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&testimonials).Error
	if err != nil {
		return nil, err
	}
	return testimonials, nil
}

// --- Contacts ---

func (s *Service) CreateContact(contact *models.Contact) error {
	if err := s.DB.Create(contact).Error; err != nil {
		log.Printf("ERROR: Failed to save contact message from %s: %v", contact.Email, err)
		return err
	}
	return nil
}

func (s *Service) SearchContacts(search string, page, pageSize int) ([]models.Contact, int64, error) {
	tx := s.DB.Model(&models.Contact{})
	if search != "" {
		like := "%" + search + "%"
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR message ILIKE ?", like, like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []models.Contact
	err := tx.Order("submitted_at DESC").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (s *Service) DeleteContact(id uint) error {
	result := s.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Analytics ---
// All rollups are recomputed per request, no caching in between.

func (s *Service) ComplaintStatusCounts() ([]StatusCount, error) {
	var rows []StatusCount
	err := s.DB.Model(&models.Complaint{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) ComplaintZoneCounts() ([]ZoneCount, error) {
	var rows []ZoneCount
	err := s.DB.Model(&models.Complaint{}).
		Select("COALESCE(zones.name, 'Unassigned') AS zone, COUNT(*) AS count").
		Joins("LEFT JOIN zones ON zones.id = complaints.zone_id").
		Group("zones.name").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) MonthlyComplaintCounts() ([]MonthCount, error) {
	var rows []MonthCount
	err := s.DB.Model(&models.Complaint{}).
		Select("DATE_TRUNC('month', created_at) AS month, COUNT(*) AS count").
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Service) CountComplaints() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Complaint{}).Count(&count).Error
	return count, err
}

func (s *Service) CountAssignments() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Assignment{}).Count(&count).Error
	return count, err
}

func (s *Service) AverageTestimonialRating() (float64, error) {
	var avg float64
	row := s.DB.Model(&models.Testimonial{}).
		Select("COALESCE(AVG(rating), 0)").
		Row()
	if err := row.Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

// CurrentMonthComplaintCount counts complaints created in the current
// month of any year, matching the dashboard's month-of-year statistic.
func (s *Service) CurrentMonthComplaintCount() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Complaint{}).
		Where("DATE_PART('month', created_at) = DATE_PART('month', NOW())").
		Count(&count).Error
	return count, err
}

// --- Sessions ---

// RevokeToken denylists a token's jti in Redis until the token would have
// expired anyway.
func (s *Service) RevokeToken(jti string, ttl time.Duration) error {
	if s.Redis == nil || ttl <= 0 {
		return nil
	}
	return s.Redis.Set(s.Ctx, "revoked:"+jti, "1", ttl).Err()
}

// IsTokenRevoked checks the denylist in Redis.
func (s *Service) IsTokenRevoked(jti string) (bool, error) {
	if s.Redis == nil {
		return false, nil
	}
	_, err := s.Redis.Get(s.Ctx, "revoked:"+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
