package analytics_test

import (
	"errors"
	"testing"
	"time"

	"nagarseva/backend/internal/analytics"
	"nagarseva/backend/internal/models"
	"nagarseva/backend/internal/storage"

	"github.com/stretchr/testify/assert"
)

// TestComplaintAnalytics_StatusCounts verifies the canonical rollup: three
// complaints with statuses [Pending, Pending, Resolved] yield Pending:2 and
// Resolved:1.
func TestComplaintAnalytics_StatusCounts(t *testing.T) {
	// Arrange
	store := new(MockStore)
	statusCounts := []storage.StatusCount{
		{Status: models.StatusPending, Count: 2},
		{Status: models.StatusResolved, Count: 1},
	}
	month := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	store.On("ComplaintStatusCounts").Return(statusCounts, nil).Once()
	store.On("ComplaintZoneCounts").
		Return([]storage.ZoneCount{{Zone: "Ward1", Count: 3}}, nil).Once()
	store.On("MonthlyComplaintCounts").
		Return([]storage.MonthCount{{Month: month, Count: 3}}, nil).Once()

	svc := analytics.NewService(store)

	// Act
	result, err := svc.ComplaintAnalytics()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, statusCounts, result.StatusCounts)
	assert.Equal(t, "Ward1", result.ZoneCounts[0].Zone)
	assert.Equal(t, int64(3), result.MonthlyCounts[0].Count)
	store.AssertExpectations(t)
}

func TestComplaintAnalytics_PropagatesStoreError(t *testing.T) {
	store := new(MockStore)
	store.On("ComplaintStatusCounts").
		Return([]storage.StatusCount(nil), errors.New("db down")).Once()

	svc := analytics.NewService(store)

	result, err := svc.ComplaintAnalytics()

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestOfficerDashboard(t *testing.T) {
	// Arrange
	store := new(MockStore)
	store.On("CountComplaints").Return(int64(12), nil).Once()
	store.On("ComplaintStatusCounts").
		Return([]storage.StatusCount{{Status: models.StatusInProgress, Count: 12}}, nil).Once()
	store.On("CountAssignments").Return(int64(9), nil).Once()
	store.On("AverageTestimonialRating").Return(4.2, nil).Once()
	store.On("ComplaintZoneCounts").
		Return([]storage.ZoneCount{{Zone: "Ward1", Count: 7}, {Zone: "Ward2", Count: 5}}, nil).Once()
	store.On("CurrentMonthComplaintCount").Return(int64(4), nil).Once()

	svc := analytics.NewService(store)

	// Act
	result, err := svc.OfficerDashboard()

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, int64(12), result.TotalComplaints)
	assert.Equal(t, int64(9), result.ComplaintsAssigned)
	assert.InDelta(t, 4.2, result.AverageRating, 0.0001)
	assert.Len(t, result.ComplaintsByZone, 2)
	assert.Equal(t, int64(4), result.ComplaintsByMonth)
	store.AssertExpectations(t)
}
