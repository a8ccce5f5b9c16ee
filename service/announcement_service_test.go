package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/util"
)

type fakeAnnouncementStore struct {
	rows  *table[model.Announcement]
	reads map[[2]uint]bool
}

func newFakeAnnouncementStore() *fakeAnnouncementStore {
	return &fakeAnnouncementStore{rows: newTable[model.Announcement](), reads: map[[2]uint]bool{}}
}

func (f *fakeAnnouncementStore) CreateAnnouncement(ctx context.Context, a *model.Announcement) error {
	f.rows.insert(a, func(a *model.Announcement, id uint) { a.ID = id })
	return nil
}

func (f *fakeAnnouncementStore) UpdateAnnouncement(ctx context.Context, a *model.Announcement) error {
	_, _, err := f.rows.transition(a.ID, echo_errors.ErrAnnouncementNotFound, func(row *model.Announcement) (bool, error) {
		*row = *a
		return true, nil
	})
	return err
}

func (f *fakeAnnouncementStore) DeleteAnnouncement(ctx context.Context, id uint) error {
	f.rows.mu.Lock()
	defer f.rows.mu.Unlock()
	if _, ok := f.rows.rows[id]; !ok {
		return echo_errors.ErrAnnouncementNotFound
	}
	delete(f.rows.rows, id)
	return nil
}

func (f *fakeAnnouncementStore) GetAnnouncement(ctx context.Context, id uint) (*model.Announcement, error) {
	return f.rows.get(id, echo_errors.ErrAnnouncementNotFound)
}

func (f *fakeAnnouncementStore) ListAnnouncements(ctx context.Context, audience *model.Audience, limit, offset int) ([]model.Announcement, error) {
	var out []model.Announcement
	for _, a := range f.rows.all() {
		if audience == nil || (a.IsPublished && Addresses(&a, *audience)) {
			out = append(out, a)
		}
	}
	return paginate(out, limit, offset), nil
}

func (f *fakeAnnouncementStore) PublishAnnouncement(ctx context.Context, id uint, at time.Time) (*model.Announcement, bool, error) {
	return f.rows.transition(id, echo_errors.ErrAnnouncementNotFound, func(a *model.Announcement) (bool, error) {
		if a.IsPublished {
			return false, nil
		}
		a.IsPublished = true
		a.PublishedAt = &at
		return true, nil
	})
}

func (f *fakeAnnouncementStore) MarkRead(ctx context.Context, id, userID uint, at time.Time) error {
	f.rows.mu.Lock()
	defer f.rows.mu.Unlock()
	f.reads[[2]uint{id, userID}] = true
	return nil
}

func (f *fakeAnnouncementStore) ReadCount(ctx context.Context, id uint) (int64, error) {
	f.rows.mu.Lock()
	defer f.rows.mu.Unlock()
	var n int64
	for k := range f.reads {
		if k[0] == id {
			n++
		}
	}
	return n, nil
}

func setupAnnouncementService(t *testing.T) (*AnnouncementService, *fakeEvents) {
	t.Helper()
	common, _, events := newCommon()
	houses := newFakeHouses()
	svc := NewAnnouncementService(newFakeAnnouncementStore(), houses, houses, util.NewValidationUtil(), common)
	return svc, events
}

func publish(t *testing.T, svc *AnnouncementService, target model.TargetType, ids ...uint) *model.Announcement {
	t.Helper()
	ctx := context.Background()
	a, err := svc.CreateAnnouncement(ctx, staff, model.AnnouncementRequest{
		Title:      "Notice",
		Content:    "Details",
		Type:       model.AnnouncementNormal,
		TargetType: target,
		TargetIDs:  ids,
	})
	require.NoError(t, err)
	a, err = svc.PublishAnnouncement(ctx, staff, a.ID)
	require.NoError(t, err)
	return a
}

func TestAnnouncementAudience(t *testing.T) {
	svc, events := setupAnnouncementService(t)
	ctx := context.Background()

	everyone := publish(t, svc, model.TargetAll)
	myBuilding := publish(t, svc, model.TargetBuilding, 7)
	otherHouse := publish(t, svc, model.TargetHouse, 201)
	draft, err := svc.CreateAnnouncement(ctx, staff, model.AnnouncementRequest{
		Title: "Draft", Content: "x", Type: model.AnnouncementNormal, TargetType: model.TargetAll,
	})
	require.NoError(t, err)

	visible, err := svc.ListAnnouncements(ctx, resident, 0, 0)
	require.NoError(t, err)
	var ids []uint
	for _, a := range visible {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []uint{everyone.ID, myBuilding.ID}, ids)

	_, err = svc.GetAnnouncement(ctx, resident, otherHouse.ID)
	assert.ErrorIs(t, err, echo_errors.ErrAnnouncementNotFound)
	_, err = svc.GetAnnouncement(ctx, resident, draft.ID)
	assert.ErrorIs(t, err, echo_errors.ErrAnnouncementNotFound)

	all, err := svc.ListAnnouncements(ctx, staff, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	page, err := svc.ListAnnouncements(ctx, resident, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, myBuilding.ID, page[0].ID)

	published := 0
	for _, e := range events.events {
		if e.Type == util.EventAnnouncementPublished {
			published++
		}
	}
	assert.Equal(t, 3, published)
}

func TestAnnouncementReadCount(t *testing.T) {
	svc, _ := setupAnnouncementService(t)
	ctx := context.Background()
	a := publish(t, svc, model.TargetAll)

	require.NoError(t, svc.MarkRead(ctx, resident, a.ID))
	require.NoError(t, svc.MarkRead(ctx, resident, a.ID))

	seen, err := svc.GetAnnouncement(ctx, staff, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), seen.ReadCount)
}

func TestAnnouncementWritesArePrivileged(t *testing.T) {
	svc, _ := setupAnnouncementService(t)
	ctx := context.Background()

	_, err := svc.CreateAnnouncement(ctx, resident, model.AnnouncementRequest{
		Title: "Party", Content: "x", Type: model.AnnouncementActivity, TargetType: model.TargetAll,
	})
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = svc.CreateAnnouncement(ctx, staff, model.AnnouncementRequest{
		Title: "Party", Content: "x", Type: model.AnnouncementActivity, TargetType: model.TargetHouse,
	})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidAnnouncementData)

	a := publish(t, svc, model.TargetAll)
	_, err = svc.PublishAnnouncement(ctx, resident, a.ID)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
	assert.ErrorIs(t, svc.DeleteAnnouncement(ctx, resident, a.ID), echo_errors.ErrNotAuthorized)
	require.NoError(t, svc.DeleteAnnouncement(ctx, admin, a.ID))
}

func TestAddresses(t *testing.T) {
	audience := model.Audience{BuildingIDs: []uint{7}, HouseIDs: []uint{101}}
	assert.True(t, Addresses(&model.Announcement{TargetType: model.TargetAll}, audience))
	assert.True(t, Addresses(&model.Announcement{TargetType: model.TargetBuilding, TargetIDs: []uint{8, 7}}, audience))
	assert.False(t, Addresses(&model.Announcement{TargetType: model.TargetBuilding, TargetIDs: []uint{8}}, audience))
	assert.True(t, Addresses(&model.Announcement{TargetType: model.TargetHouse, TargetIDs: []uint{101}}, audience))
	assert.False(t, Addresses(&model.Announcement{TargetType: model.TargetHouse}, audience))
}
