package models_test

import (
	"reflect"
	"testing"

	"nagarseva/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComplaintStatusValid(t *testing.T) {
	tests := []struct {
		status models.ComplaintStatus
		valid  bool
	}{
		{models.StatusPending, true},
		{models.StatusInProgress, true},
		{models.StatusResolved, true},
		{models.ComplaintStatus("Closed"), false},
		{models.ComplaintStatus(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, tt.status.Valid(), "status %q", tt.status)
	}
}

// TestAssignmentUniqueComplaint verifies that the one-assignment-per-complaint
// invariant is declared at the database level, not just in application code.
func TestAssignmentUniqueComplaint(t *testing.T) {
	assignmentType := reflect.TypeOf(models.Assignment{})

	field, found := assignmentType.FieldByName("ComplaintID")
	assert.True(t, found, "ComplaintID field should exist")
	assert.Contains(t, field.Tag.Get("gorm"), "uniqueIndex",
		"ComplaintID must carry a unique index so at most one assignment exists per complaint")
}

func TestTestimonialRatingConstraint(t *testing.T) {
	testimonialType := reflect.TypeOf(models.Testimonial{})

	field, found := testimonialType.FieldByName("Rating")
	assert.True(t, found, "Rating field should exist")
	assert.Contains(t, field.Tag.Get("gorm"), "check:rating >= 1 AND rating <= 5",
		"Rating bounds should be enforced by a database check constraint")
}
