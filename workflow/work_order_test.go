package workflow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

func newWorkOrder(t *testing.T) *model.WorkOrder {
	t.Helper()
	w, err := workflow.NewWorkOrder(resident, &model.CreateWorkOrderRequest{
		HouseID:     101,
		Type:        "plumbing",
		Description: "Kitchen sink leaks",
	})
	require.NoError(t, err)
	w.ID = 7
	return w
}

func TestNewWorkOrder(t *testing.T) {
	w := newWorkOrder(t)
	assert.Equal(t, model.WorkOrderPending, w.Status)
	assert.Equal(t, model.UrgencyMedium, w.Urgency)

	_, err := workflow.NewWorkOrder(resident, &model.CreateWorkOrderRequest{HouseID: 101, Type: "plumbing", Description: "  "})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidWorkOrderData)
}

func TestWorkOrderMachine(t *testing.T) {
	m := workflow.WorkOrderMachine
	assert.True(t, m.CanTransition(model.WorkOrderPending, model.WorkOrderProcessing))
	assert.True(t, m.CanTransition(model.WorkOrderPending, model.WorkOrderRejected))
	assert.True(t, m.CanTransition(model.WorkOrderWaitingResident, model.WorkOrderProcessing))
	assert.False(t, m.CanTransition(model.WorkOrderPending, model.WorkOrderCompleted))
	assert.False(t, m.CanTransition(model.WorkOrderWaitingResident, model.WorkOrderCompleted))
	assert.True(t, m.IsTerminal(model.WorkOrderCompleted))
	assert.True(t, m.IsTerminal(model.WorkOrderRejected))
	assert.False(t, m.IsTerminal(model.WorkOrderWaitingResident))
	assert.ErrorIs(t, m.Check(model.WorkOrderCompleted, model.WorkOrderProcessing), echo_errors.ErrInvalidState)
}

func TestAssignWorkOrder(t *testing.T) {
	finish := now.Add(48 * time.Hour)

	t.Run("StaffOnly", func(t *testing.T) {
		w := newWorkOrder(t)
		_, err := workflow.AssignWorkOrder(resident, w, &model.AssignWorkOrderRequest{AssigneeID: staff.ID}, now)
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
		assert.Nil(t, w.AssigneeID)
	})

	t.Run("PendingStartsProcessing", func(t *testing.T) {
		w := newWorkOrder(t)
		changed, err := workflow.AssignWorkOrder(staff, w, &model.AssignWorkOrderRequest{AssigneeID: other.ID, ExpectedFinishAt: &finish}, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, model.WorkOrderProcessing, w.Status)
		assert.Equal(t, other.ID, *w.AssigneeID)
		assert.Equal(t, now, *w.AssignedAt)
		assert.Equal(t, finish, *w.ExpectedFinishAt)
	})

	t.Run("SameAssigneeIsNoop", func(t *testing.T) {
		w := newWorkOrder(t)
		_, err := workflow.AssignWorkOrder(staff, w, &model.AssignWorkOrderRequest{AssigneeID: other.ID}, now)
		require.NoError(t, err)
		changed, err := workflow.AssignWorkOrder(staff, w, &model.AssignWorkOrderRequest{AssigneeID: other.ID}, now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, now, *w.AssignedAt)
	})

	t.Run("Reassign", func(t *testing.T) {
		w := newWorkOrder(t)
		_, err := workflow.AssignWorkOrder(staff, w, &model.AssignWorkOrderRequest{AssigneeID: other.ID}, now)
		require.NoError(t, err)
		changed, err := workflow.AssignWorkOrder(staff, w, &model.AssignWorkOrderRequest{AssigneeID: staff.ID}, now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, staff.ID, *w.AssigneeID)
	})

	t.Run("TerminalOrder", func(t *testing.T) {
		w := newWorkOrder(t)
		w.Status = model.WorkOrderCompleted
		_, err := workflow.AssignWorkOrder(staff, w, &model.AssignWorkOrderRequest{AssigneeID: staff.ID}, now)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	})
}

func TestAdvanceWorkOrder(t *testing.T) {
	t.Run("FullLifecycle", func(t *testing.T) {
		w := newWorkOrder(t)
		steps := []model.WorkOrderStatus{
			model.WorkOrderProcessing,
			model.WorkOrderWaitingResident,
			model.WorkOrderProcessing,
			model.WorkOrderCompleted,
		}
		for _, step := range steps {
			changed, err := workflow.AdvanceWorkOrder(staff, w, step, "", now)
			require.NoError(t, err, "moving to %s", step)
			assert.True(t, changed)
			assert.Equal(t, step, w.Status)
		}
		require.NotNil(t, w.CompletedAt)
		assert.Equal(t, staff.ID, *w.AssigneeID)
	})

	t.Run("ResidentCannotAdvance", func(t *testing.T) {
		w := newWorkOrder(t)
		_, err := workflow.AdvanceWorkOrder(resident, w, model.WorkOrderProcessing, "", now)
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
		assert.Equal(t, model.WorkOrderPending, w.Status)
	})

	t.Run("RejectNeedsReason", func(t *testing.T) {
		w := newWorkOrder(t)
		_, err := workflow.AdvanceWorkOrder(staff, w, model.WorkOrderRejected, " ", now)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidWorkOrderData)

		changed, err := workflow.AdvanceWorkOrder(staff, w, model.WorkOrderRejected, "Not our pipe", now)
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, "Not our pipe", w.RejectReason)
	})

	t.Run("SameStateIsNoop", func(t *testing.T) {
		w := newWorkOrder(t)
		changed, err := workflow.AdvanceWorkOrder(staff, w, model.WorkOrderPending, "", now)
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("MissingEdge", func(t *testing.T) {
		w := newWorkOrder(t)
		_, err := workflow.AdvanceWorkOrder(staff, w, model.WorkOrderCompleted, "", now)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
		assert.Equal(t, model.WorkOrderPending, w.Status)
	})
}

func TestSupplementWorkOrder(t *testing.T) {
	w := newWorkOrder(t)

	_, err := workflow.SupplementWorkOrder(neighbor, w, "photo attached", now)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = workflow.SupplementWorkOrder(staff, w, "photo attached", now)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	changed, err := workflow.SupplementWorkOrder(resident, w, "photo attached", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Contains(t, w.ResidentSupplement, "[Supplement 2024-05-06 09:30]:\nphoto attached")

	w.Status = model.WorkOrderWaitingResident
	_, err = workflow.SupplementWorkOrder(resident, w, "second note", now)
	require.NoError(t, err)
	assert.Contains(t, w.ResidentSupplement, "second note")

	w.Status = model.WorkOrderRejected
	_, err = workflow.SupplementWorkOrder(resident, w, "third note", now)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
}

func TestWorkOrderCommentsAndRatings(t *testing.T) {
	w := newWorkOrder(t)

	comment, err := workflow.NewWorkOrderComment(staff, w, "On my way")
	require.NoError(t, err)
	assert.Equal(t, staff.ID, comment.UserID)

	_, err = workflow.NewWorkOrderComment(neighbor, w, "Me too")
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	rating := &model.RatingRequest{ServiceRating: 5, EfficiencyRating: 4}
	_, err = workflow.NewWorkOrderRating(resident, w, rating)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)

	w.Status = model.WorkOrderCompleted
	_, err = workflow.NewWorkOrderRating(staff, w, rating)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = workflow.NewWorkOrderRating(resident, w, &model.RatingRequest{ServiceRating: 6, EfficiencyRating: 4})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidWorkOrderData)

	r, err := workflow.NewWorkOrderRating(resident, w, rating)
	require.NoError(t, err)
	assert.Equal(t, w.ID, r.WorkOrderID)
}
