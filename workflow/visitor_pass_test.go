package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

func newPass(t *testing.T) *model.VisitorPass {
	t.Helper()
	p, err := workflow.NewVisitorPass(resident, &model.CreateVisitorPassRequest{
		HouseID:     101,
		VisitorName: "Dana",
		ValidFrom:   at(10),
		ValidTo:     at(18),
	}, "2b1c9a5e-7d0f-4d4e-9a51-1f2f7c3e8b11", at(8))
	require.NoError(t, err)
	p.ID = 3
	return p
}

func TestNewVisitorPass(t *testing.T) {
	p := newPass(t)
	assert.Equal(t, model.PassActive, p.Status)

	_, err := workflow.NewVisitorPass(resident, &model.CreateVisitorPassRequest{
		HouseID: 101, VisitorName: "Dana", ValidFrom: at(18), ValidTo: at(10),
	}, "code", at(8))
	assert.ErrorIs(t, err, echo_errors.ErrInvalidVisitorPassData)

	_, err = workflow.NewVisitorPass(resident, &model.CreateVisitorPassRequest{
		HouseID: 101, VisitorName: "Dana", ValidFrom: at(10), ValidTo: at(18),
	}, "code", at(19))
	assert.ErrorIs(t, err, echo_errors.ErrInvalidVisitorPassData)
}

func TestEffectiveStatus(t *testing.T) {
	p := newPass(t)
	assert.Equal(t, model.PassActive, workflow.EffectiveStatus(p, at(9)))
	assert.Equal(t, model.PassActive, workflow.EffectiveStatus(p, at(17)))
	assert.Equal(t, model.PassExpired, workflow.EffectiveStatus(p, at(18)))
	assert.Equal(t, model.PassActive, p.Status)

	p.Status = model.PassUsed
	assert.Equal(t, model.PassUsed, workflow.EffectiveStatus(p, at(20)))
}

func TestUsePass(t *testing.T) {
	t.Run("CreatorCanRedeem", func(t *testing.T) {
		p := newPass(t)
		changed, err := workflow.UsePass(resident, p, at(11))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, model.PassUsed, p.Status)
	})

	t.Run("StrangerIsRefused", func(t *testing.T) {
		p := newPass(t)
		_, err := workflow.UsePass(neighbor, p, at(11))
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
		assert.Equal(t, model.PassActive, p.Status)
	})

	t.Run("WindowIsHalfOpen", func(t *testing.T) {
		p := newPass(t)
		_, err := workflow.UsePass(staff, p, at(18))
		assert.ErrorIs(t, err, echo_errors.ErrExpired)
		assert.Equal(t, model.PassActive, p.Status)

		changed, err := workflow.UsePass(staff, p, at(10))
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("CancelledPass", func(t *testing.T) {
		p := newPass(t)
		_, err := workflow.CancelPass(resident, p, at(9))
		require.NoError(t, err)
		_, err = workflow.UsePass(staff, p, at(11))
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	})
}

// A pass valid 10:00-18:00 is refused at 09:00, admits at 11:00 and is
// spent afterwards.
func TestPassUseScenario(t *testing.T) {
	p := newPass(t)

	changed, err := workflow.UsePass(staff, p, at(9))
	assert.ErrorIs(t, err, echo_errors.ErrExpired)
	assert.False(t, changed)
	assert.Equal(t, model.PassActive, p.Status)

	changed, err = workflow.UsePass(staff, p, at(11))
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, model.PassUsed, p.Status)
	require.NotNil(t, p.UsedAt)
	assert.Equal(t, at(11), *p.UsedAt)

	changed, err = workflow.UsePass(staff, p, at(12))
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	assert.False(t, changed)
	assert.Equal(t, at(11), *p.UsedAt)
}

func TestCancelPass(t *testing.T) {
	t.Run("CreatorOrStaff", func(t *testing.T) {
		for _, actor := range []*model.Actor{resident, staff} {
			p := newPass(t)
			changed, err := workflow.CancelPass(actor, p, at(11))
			require.NoError(t, err)
			assert.True(t, changed)
			assert.Equal(t, model.PassCancelled, p.Status)
			assert.NotNil(t, p.CancelledAt)
		}
	})

	t.Run("Stranger", func(t *testing.T) {
		p := newPass(t)
		_, err := workflow.CancelPass(neighbor, p, at(11))
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
	})

	t.Run("AlreadyCancelledIsNoop", func(t *testing.T) {
		p := newPass(t)
		_, err := workflow.CancelPass(resident, p, at(11))
		require.NoError(t, err)
		changed, err := workflow.CancelPass(resident, p, at(12))
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("ExpiredOrUsed", func(t *testing.T) {
		p := newPass(t)
		_, err := workflow.CancelPass(resident, p, at(19))
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)

		p = newPass(t)
		_, err = workflow.UsePass(staff, p, at(11))
		require.NoError(t, err)
		_, err = workflow.CancelPass(resident, p, at(12))
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	})
}
