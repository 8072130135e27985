package analytics_test

import (
	"nagarseva/backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) ComplaintStatusCounts() ([]storage.StatusCount, error) {
	args := m.Called()
	return args.Get(0).([]storage.StatusCount), args.Error(1)
}

func (m *MockStore) ComplaintZoneCounts() ([]storage.ZoneCount, error) {
	args := m.Called()
	return args.Get(0).([]storage.ZoneCount), args.Error(1)
}

func (m *MockStore) MonthlyComplaintCounts() ([]storage.MonthCount, error) {
	args := m.Called()
	return args.Get(0).([]storage.MonthCount), args.Error(1)
}

func (m *MockStore) CountComplaints() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) CountAssignments() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) AverageTestimonialRating() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockStore) CurrentMonthComplaintCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
