// Package workflow governs the complaint status state machine: which
// transitions are legal and which actors may trigger them.
package workflow

import (
	"errors"

	"nagarseva/backend/internal/models"
)

var (
	// ErrNotOfficer is returned when the assignee does not hold the officer role.
	ErrNotOfficer = errors.New("assignee is not an officer")
	// ErrForbidden is returned when the acting user may not perform the operation.
	ErrForbidden = errors.New("operation not permitted for this user")
	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("unknown complaint status")
	// ErrIllegalTransition is returned when the requested status change would
	// move the complaint backwards or skip a state.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// transitions is the allowed forward path of a complaint. Resolved is
// terminal; a complaint never regresses through the officer status form.
var transitions = map[models.ComplaintStatus][]models.ComplaintStatus{
	models.StatusPending:    {models.StatusInProgress},
	models.StatusInProgress: {models.StatusResolved},
	models.StatusResolved:   {},
}

// CanTransition reports whether a complaint may move from one status to
// another via the status form.
func CanTransition(from, to models.ComplaintStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Engine applies status mutations after checking the actor's capability and
// the transition table.
type Engine struct {
	Store Store
}

// NewEngine creates a new workflow engine.
func NewEngine(store Store) *Engine {
	return &Engine{Store: store}
}

// Assign links a complaint to an officer. Only admins may assign; the target
// must hold the officer role. The assignment write and the forced
// "In Progress" status land in one storage transaction, and the complaint is
// set to In Progress regardless of its prior status.
func (e *Engine) Assign(actor *models.User, complaintID uint, officerID string) error {
	if actor == nil || actor.Role != models.RoleAdmin {
		return ErrForbidden
	}

	officer, err := e.Store.GetUserByID(officerID)
	if err != nil {
		return err
	}
	if officer.Role != models.RoleOfficer {
		return ErrNotOfficer
	}

	if _, err := e.Store.GetComplaintByID(complaintID); err != nil {
		return err
	}

	return e.Store.AssignOfficer(complaintID, officer.ID)
}

// UpdateStatus moves a complaint to a new status on behalf of the actor.
// Officers may only touch complaints assigned to them; admins may touch any;
// citizens never mutate status. The check runs before the write, independent
// of whatever list view the request came from.
func (e *Engine) UpdateStatus(actor *models.User, complaintID uint, to models.ComplaintStatus) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if actor == nil {
		return ErrForbidden
	}

	switch actor.Role {
	case models.RoleAdmin:
		// may update any complaint
	case models.RoleOfficer:
		assigned, err := e.Store.IsAssignedTo(complaintID, actor.ID)
		if err != nil {
			return err
		}
		if !assigned {
			return ErrForbidden
		}
	default:
		return ErrForbidden
	}

	complaint, err := e.Store.GetComplaintByID(complaintID)
	if err != nil {
		return err
	}
	if !CanTransition(complaint.Status, to) {
		return ErrIllegalTransition
	}

	return e.Store.UpdateComplaintStatus(complaintID, to)
}
