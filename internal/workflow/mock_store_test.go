package workflow_test

import (
	"nagarseva/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStore) GetComplaintByID(id uint) (*models.Complaint, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Complaint), args.Error(1)
}

func (m *MockStore) AssignOfficer(complaintID uint, officerID string) error {
	args := m.Called(complaintID, officerID)
	return args.Error(0)
}

func (m *MockStore) IsAssignedTo(complaintID uint, officerID string) (bool, error) {
	args := m.Called(complaintID, officerID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) UpdateComplaintStatus(id uint, status models.ComplaintStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}
