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

func newPendingBinding(t *testing.T) *model.UserHouse {
	t.Helper()
	b, err := workflow.NewBinding(resident, &model.CreateBindingRequest{
		HouseID:          101,
		Relationship:     model.RelationshipOwner,
		CertificateImage: "deeds/101.png",
	})
	require.NoError(t, err)
	b.ID = 1
	return b
}

func TestNewBinding(t *testing.T) {
	t.Run("StartsPending", func(t *testing.T) {
		b := newPendingBinding(t)
		assert.Equal(t, model.BindingPending, b.Status)
		assert.Equal(t, resident.ID, b.UserID)
		assert.Nil(t, b.ApproverID)
	})

	t.Run("OwnerNeedsCertificate", func(t *testing.T) {
		_, err := workflow.NewBinding(resident, &model.CreateBindingRequest{HouseID: 101, Relationship: model.RelationshipOwner})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidBindingData)
	})

	t.Run("FamilyWithoutCertificate", func(t *testing.T) {
		b, err := workflow.NewBinding(resident, &model.CreateBindingRequest{HouseID: 101, Relationship: model.RelationshipFamily})
		require.NoError(t, err)
		assert.Equal(t, model.RelationshipFamily, b.Relationship)
	})

	t.Run("UnknownRelationship", func(t *testing.T) {
		_, err := workflow.NewBinding(resident, &model.CreateBindingRequest{HouseID: 101, Relationship: "tenant"})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidBindingData)
	})
}

func TestApproveBinding(t *testing.T) {
	t.Run("PrivilegedActorsApprove", func(t *testing.T) {
		for _, actor := range []*model.Actor{staff, root} {
			b := newPendingBinding(t)
			changed, err := workflow.ApproveBinding(actor, b, now)
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, model.BindingApproved, b.Status)
			require.NotNil(t, b.ApproverID)
			assert.Equal(t, actor.ID, *b.ApproverID)
			require.NotNil(t, b.ApprovedAt)
			assert.Equal(t, now, *b.ApprovedAt)
		}
	})

	t.Run("UnprivilegedActorsAreRefused", func(t *testing.T) {
		for _, actor := range []*model.Actor{resident, neighbor, nobody, vendor, nil} {
			b := newPendingBinding(t)
			changed, err := workflow.ApproveBinding(actor, b, now)
			assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
			assert.False(t, changed)
			assert.Equal(t, model.BindingPending, b.Status)
			assert.Nil(t, b.ApproverID)
		}
	})

	t.Run("ReapprovalBySameActorIsNoop", func(t *testing.T) {
		b := newPendingBinding(t)
		_, err := workflow.ApproveBinding(staff, b, now)
		require.NoError(t, err)
		approvedAt := *b.ApprovedAt

		changed, err := workflow.ApproveBinding(staff, b, now.Add(time.Hour))
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, staff.ID, *b.ApproverID)
		assert.Equal(t, approvedAt, *b.ApprovedAt)
	})

	t.Run("ReapprovalByAnotherActorIsInvalid", func(t *testing.T) {
		b := newPendingBinding(t)
		_, err := workflow.ApproveBinding(staff, b, now)
		require.NoError(t, err)

		changed, err := workflow.ApproveBinding(other, b, now)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
		assert.False(t, changed)
		assert.Equal(t, staff.ID, *b.ApproverID)
	})

	t.Run("RejectedCannotBeApproved", func(t *testing.T) {
		b := newPendingBinding(t)
		_, err := workflow.RejectBinding(staff, b, "certificate unreadable", now)
		require.NoError(t, err)

		_, err = workflow.ApproveBinding(staff, b, now)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
		assert.Equal(t, model.BindingRejected, b.Status)
	})
}

func TestRejectBinding(t *testing.T) {
	b := newPendingBinding(t)

	_, err := workflow.RejectBinding(resident, b, "", now)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	changed, err := workflow.RejectBinding(staff, b, "  certificate unreadable ", now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.BindingRejected, b.Status)
	assert.Equal(t, "certificate unreadable", b.RejectReason)

	changed, err = workflow.RejectBinding(staff, b, "", now)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = workflow.RejectBinding(other, b, "", now)
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
}

// Resident creates a binding, staff approves it, and the resident's own
// approve attempt is refused without touching the record.
func TestBindingApprovalScenario(t *testing.T) {
	b := newPendingBinding(t)
	assert.Equal(t, model.BindingPending, b.Status)

	changed, err := workflow.ApproveBinding(staff, b, now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.BindingApproved, b.Status)
	assert.Equal(t, staff.ID, *b.ApproverID)

	changed, err = workflow.ApproveBinding(resident, b, now)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
	assert.False(t, changed)
	assert.Equal(t, model.BindingApproved, b.Status)
	assert.Equal(t, staff.ID, *b.ApproverID)
}
