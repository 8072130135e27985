package workflow_test

import (
	"testing"

	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"
	"nagarseva/backend/internal/workflow"

	"github.com/stretchr/testify/assert"
)

var (
	admin   = &models.User{ID: "admin-1", Role: models.RoleAdmin}
	officer = &models.User{ID: "officer-1", Role: models.RoleOfficer}
	citizen = &models.User{ID: "citizen-1", Role: models.RoleCitizen}
)

// TestCanTransition pins the forward-only transition table: a complaint
// moves Pending → In Progress → Resolved and never regresses.
func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to models.ComplaintStatus
		allowed  bool
	}{
		{models.StatusPending, models.StatusInProgress, true},
		{models.StatusInProgress, models.StatusResolved, true},
		{models.StatusPending, models.StatusResolved, false},
		{models.StatusInProgress, models.StatusPending, false},
		{models.StatusResolved, models.StatusPending, false},
		{models.StatusResolved, models.StatusInProgress, false},
		{models.StatusPending, models.StatusPending, false},
		{models.StatusResolved, models.StatusResolved, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, workflow.CanTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestAssign_SetsInProgressRegardlessOfPriorStatus(t *testing.T) {
	// Arrange - the complaint is already Resolved; assignment still forces
	// In Progress via the storage transaction.
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	store.On("GetUserByID", "officer-1").Return(officer, nil).Once()
	store.On("GetComplaintByID", uint(7)).
		Return(&models.Complaint{ID: 7, Status: models.StatusResolved}, nil).Once()
	store.On("AssignOfficer", uint(7), "officer-1").Return(nil).Once()

	// Act
	err := engine.Assign(admin, 7, "officer-1")

	// Assert
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestAssign_RejectsNonAdminActor(t *testing.T) {
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	assert.ErrorIs(t, engine.Assign(officer, 7, "officer-1"), workflow.ErrForbidden)
	assert.ErrorIs(t, engine.Assign(citizen, 7, "officer-1"), workflow.ErrForbidden)
	assert.ErrorIs(t, engine.Assign(nil, 7, "officer-1"), workflow.ErrForbidden)
	store.AssertNotCalled(t, "AssignOfficer")
}

func TestAssign_RejectsNonOfficerAssignee(t *testing.T) {
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	store.On("GetUserByID", "citizen-1").Return(citizen, nil).Once()

	err := engine.Assign(admin, 7, "citizen-1")

	assert.ErrorIs(t, err, workflow.ErrNotOfficer)
	store.AssertNotCalled(t, "AssignOfficer")
}

func TestAssign_MissingComplaint(t *testing.T) {
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	store.On("GetUserByID", "officer-1").Return(officer, nil).Once()
	store.On("GetComplaintByID", uint(99)).Return(nil, storage.ErrNotFound).Once()

	err := engine.Assign(admin, 99, "officer-1")

	assert.ErrorIs(t, err, storage.ErrNotFound)
	store.AssertNotCalled(t, "AssignOfficer")
}

func TestUpdateStatus_OfficerResolvesAssignedComplaint(t *testing.T) {
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	store.On("IsAssignedTo", uint(3), "officer-1").Return(true, nil).Once()
	store.On("GetComplaintByID", uint(3)).
		Return(&models.Complaint{ID: 3, Status: models.StatusInProgress}, nil).Once()
	store.On("UpdateComplaintStatus", uint(3), models.StatusResolved).Return(nil).Once()

	err := engine.UpdateStatus(officer, 3, models.StatusResolved)

	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestUpdateStatus_OfficerCannotTouchUnassignedComplaint(t *testing.T) {
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	store.On("IsAssignedTo", uint(3), "officer-1").Return(false, nil).Once()

	err := engine.UpdateStatus(officer, 3, models.StatusResolved)

	assert.ErrorIs(t, err, workflow.ErrForbidden)
	store.AssertNotCalled(t, "UpdateComplaintStatus")
}

func TestUpdateStatus_CitizenForbidden(t *testing.T) {
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	err := engine.UpdateStatus(citizen, 3, models.StatusResolved)

	assert.ErrorIs(t, err, workflow.ErrForbidden)
	store.AssertNotCalled(t, "UpdateComplaintStatus")
}

func TestUpdateStatus_RejectsRegression(t *testing.T) {
	// A resolved complaint must not be reopened through the status form.
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	store.On("GetComplaintByID", uint(3)).
		Return(&models.Complaint{ID: 3, Status: models.StatusResolved}, nil).Once()

	err := engine.UpdateStatus(admin, 3, models.StatusPending)

	assert.ErrorIs(t, err, workflow.ErrIllegalTransition)
	store.AssertNotCalled(t, "UpdateComplaintStatus")
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	store := new(MockStore)
	engine := workflow.NewEngine(store)

	err := engine.UpdateStatus(admin, 3, models.ComplaintStatus("Escalated"))

	assert.ErrorIs(t, err, workflow.ErrInvalidStatus)
	store.AssertNotCalled(t, "UpdateComplaintStatus")
}
