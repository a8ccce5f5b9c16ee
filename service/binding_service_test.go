package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type fakeBindingStore struct {
	rows *table[model.UserHouse]
}

func newFakeBindingStore() *fakeBindingStore {
	return &fakeBindingStore{rows: newTable[model.UserHouse]()}
}

func (f *fakeBindingStore) CreateBinding(ctx context.Context, binding *model.UserHouse) error {
	for _, b := range f.rows.all() {
		if b.UserID == binding.UserID && b.HouseID == binding.HouseID {
			return echo_errors.ErrDuplicateBinding
		}
	}
	f.rows.insert(binding, func(b *model.UserHouse, id uint) { b.ID = id })
	return nil
}

func (f *fakeBindingStore) GetBinding(ctx context.Context, bindingID uint) (*model.UserHouse, error) {
	return f.rows.get(bindingID, echo_errors.ErrBindingNotFound)
}

func (f *fakeBindingStore) ListBindings(ctx context.Context, filter model.BindingFilter, limit, offset int) ([]model.UserHouse, error) {
	var out []model.UserHouse
	for _, b := range f.rows.all() {
		if filter.UserID != nil && b.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBindingStore) TransitionBinding(ctx context.Context, bindingID uint, mutate dao.Mutation[model.UserHouse]) (*model.UserHouse, bool, error) {
	return f.rows.transition(bindingID, echo_errors.ErrBindingNotFound, mutate)
}

func setupBindingService(t *testing.T) (*BindingService, *model.UserHouse, *fakeEvents, func() []string) {
	t.Helper()
	common, auditLog, events := newCommon()
	svc := NewBindingService(newFakeBindingStore(), newFakeHouses(), common)
	binding, err := svc.CreateBinding(context.Background(), neighbour, model.CreateBindingRequest{
		HouseID:      102,
		Relationship: model.RelationshipFamily,
	})
	require.NoError(t, err)
	reasons := func() []string {
		var out []string
		for _, l := range auditLog.Logs {
			out = append(out, l.Reason)
		}
		return out
	}
	return svc, binding, events, reasons
}

func TestBindingApproval(t *testing.T) {
	ctx := context.Background()

	t.Run("StaffApproves", func(t *testing.T) {
		svc, binding, events, reasons := setupBindingService(t)

		approved, err := svc.ApproveBinding(ctx, staff, binding.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BindingApproved, approved.Status)
		require.NotNil(t, approved.ApproverID)
		assert.Equal(t, staff.ID, *approved.ApproverID)
		assert.Equal(t, []string{"changed"}, reasons())

		notes := events.notifications()
		require.Len(t, notes, 1)
		assert.Equal(t, []uint{neighbour.ID}, notes[0].UserIDs)
		assert.Equal(t, model.NotificationBinding, notes[0].Type)
	})

	t.Run("ResidentIsRefused", func(t *testing.T) {
		svc, binding, events, reasons := setupBindingService(t)

		_, err := svc.ApproveBinding(ctx, resident, binding.ID)
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
		assert.Equal(t, []string{"not_authorized"}, reasons())
		assert.Empty(t, events.notifications())

		stored, err := svc.GetBinding(ctx, staff, binding.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BindingPending, stored.Status)
	})

	t.Run("ReapprovalBySameStaffIsNoop", func(t *testing.T) {
		svc, binding, events, reasons := setupBindingService(t)

		_, err := svc.ApproveBinding(ctx, staff, binding.ID)
		require.NoError(t, err)
		again, err := svc.ApproveBinding(ctx, staff, binding.ID)
		require.NoError(t, err)
		assert.Equal(t, model.BindingApproved, again.Status)
		assert.Equal(t, []string{"changed", "noop"}, reasons())
		assert.Len(t, events.notifications(), 1)
	})

	t.Run("ReapprovalByOtherStaffFails", func(t *testing.T) {
		svc, binding, _, _ := setupBindingService(t)

		_, err := svc.ApproveBinding(ctx, staff, binding.ID)
		require.NoError(t, err)
		_, err = svc.ApproveBinding(ctx, otherStaff, binding.ID)
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	})

	t.Run("RejectAfterApproveFails", func(t *testing.T) {
		svc, binding, _, _ := setupBindingService(t)

		_, err := svc.ApproveBinding(ctx, staff, binding.ID)
		require.NoError(t, err)
		_, err = svc.RejectBinding(ctx, staff, binding.ID, "wrong house")
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	})

	t.Run("UnknownBinding", func(t *testing.T) {
		svc, _, _, _ := setupBindingService(t)
		_, err := svc.ApproveBinding(ctx, staff, 999)
		assert.ErrorIs(t, err, echo_errors.ErrBindingNotFound)
	})
}

func TestBindingDuplicate(t *testing.T) {
	svc, _, _, _ := setupBindingService(t)
	_, err := svc.CreateBinding(context.Background(), neighbour, model.CreateBindingRequest{
		HouseID:      102,
		Relationship: model.RelationshipFamily,
	})
	assert.ErrorIs(t, err, echo_errors.ErrDuplicateBinding)
}

func TestBindingUnknownHouse(t *testing.T) {
	svc, _, _, _ := setupBindingService(t)
	_, err := svc.CreateBinding(context.Background(), neighbour, model.CreateBindingRequest{
		HouseID:      999,
		Relationship: model.RelationshipFamily,
	})
	assert.ErrorIs(t, err, echo_errors.ErrHouseNotFound)
}

func TestConcurrentBindingDecisions(t *testing.T) {
	svc, binding, events, _ := setupBindingService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, errs[0] = svc.ApproveBinding(ctx, staff, binding.ID)
	}()
	go func() {
		defer wg.Done()
		_, errs[1] = svc.RejectBinding(ctx, otherStaff, binding.ID, "duplicate request")
	}()
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, events.notifications(), 1)
}

func TestBindingListsAreScoped(t *testing.T) {
	svc, _, _, _ := setupBindingService(t)
	ctx := context.Background()

	mine, err := svc.ListBindings(ctx, resident, model.BindingFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err := svc.ListBindings(ctx, staff, model.BindingFilter{}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.ListPendingBindings(ctx, resident, 0, 0)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = svc.GetBinding(ctx, resident, all[0].ID)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
}
