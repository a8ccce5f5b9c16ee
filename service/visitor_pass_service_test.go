package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

type fakePassStore struct {
	rows *table[model.VisitorPass]
}

func (f *fakePassStore) CreatePass(ctx context.Context, pass *model.VisitorPass) error {
	f.rows.insert(pass, func(p *model.VisitorPass, id uint) { p.ID = id })
	return nil
}

func (f *fakePassStore) GetPass(ctx context.Context, passID uint) (*model.VisitorPass, error) {
	return f.rows.get(passID, echo_errors.ErrVisitorPassNotFound)
}

func (f *fakePassStore) ListPasses(ctx context.Context, filter model.VisitorPassFilter, limit, offset int) ([]model.VisitorPass, error) {
	var out []model.VisitorPass
	for _, p := range f.rows.all() {
		if filter.UserID != nil && p.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && workflow.EffectiveStatus(&p, filter.At) != filter.Status {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return paginate(out, limit, offset), nil
}

func (f *fakePassStore) TransitionPass(ctx context.Context, passID uint, mutate dao.Mutation[model.VisitorPass]) (*model.VisitorPass, bool, error) {
	return f.rows.transition(passID, echo_errors.ErrVisitorPassNotFound, mutate)
}

func (f *fakePassStore) TransitionPassByCode(ctx context.Context, passCode string, mutate dao.Mutation[model.VisitorPass]) (*model.VisitorPass, bool, error) {
	for _, p := range f.rows.all() {
		if p.PassCode == passCode {
			return f.rows.transition(p.ID, echo_errors.ErrVisitorPassNotFound, mutate)
		}
	}
	return nil, false, echo_errors.ErrVisitorPassNotFound
}

func setupPassService(t *testing.T, from, to time.Time) (*VisitorPassService, *model.VisitorPass, *fakeEvents) {
	t.Helper()
	common, _, events := newCommon()
	svc := NewVisitorPassService(&fakePassStore{rows: newTable[model.VisitorPass]()}, newFakeHouses(), common)
	svc.newCode = func() string { return "code-1" }
	pass, err := svc.CreatePass(context.Background(), resident, model.CreateVisitorPassRequest{
		HouseID:     101,
		VisitorName: "Carol",
		ValidFrom:   from,
		ValidTo:     to,
	})
	require.NoError(t, err)
	return svc, pass, events
}

func TestUsePass(t *testing.T) {
	ctx := context.Background()

	t.Run("InsideWindow", func(t *testing.T) {
		svc, _, events := setupPassService(t, clock.Add(-time.Hour), clock.Add(time.Hour))
		used, err := svc.UsePass(ctx, staff, "code-1")
		require.NoError(t, err)
		assert.Equal(t, model.PassUsed, used.Status)
		require.Len(t, events.notifications(), 1)
		assert.Equal(t, []uint{resident.ID}, events.notifications()[0].UserIDs)

		_, err = svc.UsePass(ctx, staff, "code-1")
		assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
	})

	t.Run("BeforeWindow", func(t *testing.T) {
		svc, pass, _ := setupPassService(t, clock.Add(time.Hour), clock.Add(2*time.Hour))
		_, err := svc.UsePass(ctx, staff, "code-1")
		assert.ErrorIs(t, err, echo_errors.ErrExpired)

		stored, err := svc.GetPass(ctx, resident, pass.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PassActive, stored.Status)
	})

	t.Run("AtEndOfWindow", func(t *testing.T) {
		svc, _, _ := setupPassService(t, clock.Add(-time.Hour), clock.Add(time.Hour))
		svc.Now = func() time.Time { return clock.Add(time.Hour) }
		_, err := svc.UsePass(ctx, staff, "code-1")
		assert.ErrorIs(t, err, echo_errors.ErrExpired)

		passes, err := svc.ListPasses(ctx, resident, model.PassExpired, 0, 0)
		require.NoError(t, err)
		require.Len(t, passes, 1)
		assert.Equal(t, model.PassExpired, passes[0].Status)
	})

	t.Run("CreatorCanRedeem", func(t *testing.T) {
		svc, _, _ := setupPassService(t, clock.Add(-time.Hour), clock.Add(time.Hour))
		used, err := svc.UsePass(ctx, resident, "code-1")
		require.NoError(t, err)
		assert.Equal(t, model.PassUsed, used.Status)
	})

	t.Run("StrangerIsRefused", func(t *testing.T) {
		svc, pass, _ := setupPassService(t, clock.Add(-time.Hour), clock.Add(time.Hour))
		_, err := svc.UsePass(ctx, neighbour, "code-1")
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

		stored, err := svc.GetPass(ctx, resident, pass.ID)
		require.NoError(t, err)
		assert.Equal(t, model.PassActive, stored.Status)
	})

	t.Run("UnknownCode", func(t *testing.T) {
		svc, _, _ := setupPassService(t, clock.Add(-time.Hour), clock.Add(time.Hour))
		_, err := svc.UsePass(ctx, staff, "nope")
		assert.ErrorIs(t, err, echo_errors.ErrVisitorPassNotFound)
	})
}

func TestCancelPass(t *testing.T) {
	ctx := context.Background()
	svc, pass, _ := setupPassService(t, clock.Add(-time.Hour), clock.Add(time.Hour))

	_, err := svc.CancelPass(ctx, neighbour, pass.ID)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	cancelled, err := svc.CancelPass(ctx, resident, pass.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PassCancelled, cancelled.Status)

	again, err := svc.CancelPass(ctx, resident, pass.ID)
	require.NoError(t, err)
	assert.Equal(t, model.PassCancelled, again.Status)

	_, err = svc.UsePass(ctx, staff, "code-1")
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)
}

func TestCreatePassNeedsBinding(t *testing.T) {
	common, _, _ := newCommon()
	svc := NewVisitorPassService(&fakePassStore{rows: newTable[model.VisitorPass]()}, newFakeHouses(), common)
	_, err := svc.CreatePass(context.Background(), resident, model.CreateVisitorPassRequest{
		HouseID:     201,
		VisitorName: "Dave",
		ValidFrom:   clock,
		ValidTo:     clock.Add(time.Hour),
	})
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
}

func TestListPassesPagesByEffectiveStatus(t *testing.T) {
	ctx := context.Background()
	common, _, _ := newCommon()
	svc := NewVisitorPassService(&fakePassStore{rows: newTable[model.VisitorPass]()}, newFakeHouses(), common)

	// Issued oldest first: two passes that close early, then three that stay open.
	windows := []time.Duration{time.Hour, time.Hour, 5 * time.Hour, 5 * time.Hour, 5 * time.Hour}
	var ids []uint
	for _, w := range windows {
		pass, err := svc.CreatePass(ctx, resident, model.CreateVisitorPassRequest{
			HouseID:     101,
			VisitorName: "Erin",
			ValidFrom:   clock,
			ValidTo:     clock.Add(w),
		})
		require.NoError(t, err)
		ids = append(ids, pass.ID)
	}
	svc.Now = func() time.Time { return clock.Add(2 * time.Hour) }

	active, err := svc.ListPasses(ctx, resident, model.PassActive, 2, 0)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, []uint{ids[4], ids[3]}, []uint{active[0].ID, active[1].ID})

	active, err = svc.ListPasses(ctx, resident, model.PassActive, 2, 2)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, ids[2], active[0].ID)

	expired, err := svc.ListPasses(ctx, resident, model.PassExpired, 1, 1)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, ids[0], expired[0].ID)
	assert.Equal(t, model.PassExpired, expired[0].Status)

	all, err := svc.ListPasses(ctx, resident, "", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, len(windows))
}
