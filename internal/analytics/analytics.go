// Package analytics provides the read-only rollups backing the admin
// dashboards. Nothing here mutates state; every view is recomputed from the
// database on each request.
package analytics

import (
	"nagarseva/backend/internal/storage"
)

// Store is the slice of the storage layer the aggregator reads from.
type Store interface {
	ComplaintStatusCounts() ([]storage.StatusCount, error)
	ComplaintZoneCounts() ([]storage.ZoneCount, error)
	MonthlyComplaintCounts() ([]storage.MonthCount, error)
	CountComplaints() (int64, error)
	CountAssignments() (int64, error)
	AverageTestimonialRating() (float64, error)
	CurrentMonthComplaintCount() (int64, error)
}

// ComplaintAnalytics is the payload for the complaint analytics view.
type ComplaintAnalytics struct {
	StatusCounts  []storage.StatusCount `json:"complaint_status_counts"`
	ZoneCounts    []storage.ZoneCount   `json:"complaint_zone_counts"`
	MonthlyCounts []storage.MonthCount  `json:"monthly_complaints"`
}

// OfficerDashboard is the payload for the officer dashboard analytics view.
type OfficerDashboard struct {
	TotalComplaints    int64                 `json:"total_complaints"`
	ComplaintsByStatus []storage.StatusCount `json:"complaints_by_status"`
	ComplaintsAssigned int64                 `json:"complaints_assigned"`
	AverageRating      float64               `json:"avg_rating"`
	ComplaintsByZone   []storage.ZoneCount   `json:"complaints_by_zone"`
	ComplaintsByMonth  int64                 `json:"complaints_by_month"`
}

// Service computes the dashboard views.
type Service struct {
	Store Store
}

// NewService creates a new analytics service.
func NewService(store Store) *Service {
	return &Service{Store: store}
}

// ComplaintAnalytics returns complaint counts by status, zone and month.
func (s *Service) ComplaintAnalytics() (*ComplaintAnalytics, error) {
	statusCounts, err := s.Store.ComplaintStatusCounts()
	if err != nil {
		return nil, err
	}
	zoneCounts, err := s.Store.ComplaintZoneCounts()
	if err != nil {
		return nil, err
	}
	monthlyCounts, err := s.Store.MonthlyComplaintCounts()
	if err != nil {
		return nil, err
	}

	return &ComplaintAnalytics{
		StatusCounts:  statusCounts,
		ZoneCounts:    zoneCounts,
		MonthlyCounts: monthlyCounts,
	}, nil
}

// OfficerDashboard returns the aggregate figures shown on the officer
// dashboard: totals, per-status and per-zone counts, assignment count,
// average testimonial rating and the current-month complaint count.
func (s *Service) OfficerDashboard() (*OfficerDashboard, error) {
	total, err := s.Store.CountComplaints()
	if err != nil {
		return nil, err
	}
	byStatus, err := s.Store.ComplaintStatusCounts()
	if err != nil {
		return nil, err
	}
	assigned, err := s.Store.CountAssignments()
	if err != nil {
		return nil, err
	}
	avgRating, err := s.Store.AverageTestimonialRating()
	if err != nil {
		return nil, err
	}
	byZone, err := s.Store.ComplaintZoneCounts()
	if err != nil {
		return nil, err
	}
	byMonth, err := s.Store.CurrentMonthComplaintCount()
	if err != nil {
		return nil, err
	}

	return &OfficerDashboard{
		TotalComplaints:    total,
		ComplaintsByStatus: byStatus,
		ComplaintsAssigned: assigned,
		AverageRating:      avgRating,
		ComplaintsByZone:   byZone,
		ComplaintsByMonth:  byMonth,
	}, nil
}
