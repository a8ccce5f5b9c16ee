package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type fakeComplaintStore struct {
	rows *table[model.Complaint]
}

func (f *fakeComplaintStore) CreateComplaint(ctx context.Context, complaint *model.Complaint) error {
	complaint.CreatedAt = clock.Add(-96 * time.Hour)
	f.rows.insert(complaint, func(c *model.Complaint, id uint) { c.ID = id })
	return nil
}

func (f *fakeComplaintStore) GetComplaint(ctx context.Context, complaintID uint) (*model.Complaint, error) {
	return f.rows.get(complaintID, echo_errors.ErrComplaintNotFound)
}

func (f *fakeComplaintStore) matching(filter model.ComplaintFilter) []model.Complaint {
	var out []model.Complaint
	for _, c := range f.rows.all() {
		if filter.UserID != nil && c.UserID != *filter.UserID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *fakeComplaintStore) ListComplaints(ctx context.Context, filter model.ComplaintFilter, limit, offset int) ([]model.Complaint, error) {
	return f.matching(filter), nil
}

func (f *fakeComplaintStore) CountComplaints(ctx context.Context, filter model.ComplaintFilter) (int64, error) {
	return int64(len(f.matching(filter))), nil
}

func (f *fakeComplaintStore) CountSubmittedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var n int64
	for _, c := range f.matching(model.ComplaintFilter{Status: model.ComplaintSubmitted}) {
		if c.CreatedAt.Before(cutoff) {
			n++
		}
	}
	return n, nil
}

func (f *fakeComplaintStore) TransitionComplaint(ctx context.Context, complaintID uint, mutate dao.Mutation[model.Complaint]) (*model.Complaint, bool, error) {
	return f.rows.transition(complaintID, echo_errors.ErrComplaintNotFound, mutate)
}

func (f *fakeComplaintStore) DeleteComplaint(ctx context.Context, complaintID uint, check func(*model.Complaint) error) (*model.Complaint, error) {
	f.rows.mu.Lock()
	defer f.rows.mu.Unlock()
	row, ok := f.rows.rows[complaintID]
	if !ok {
		return nil, echo_errors.ErrComplaintNotFound
	}
	if err := check(row); err != nil {
		return nil, err
	}
	delete(f.rows.rows, complaintID)
	return row, nil
}

func setupComplaintService(t *testing.T) (*ComplaintService, *model.Complaint, *fakeEvents) {
	t.Helper()
	common, _, events := newCommon()
	svc := NewComplaintService(&fakeComplaintStore{rows: newTable[model.Complaint]()}, newFakeHouses(), common)
	complaint, err := svc.CreateComplaint(context.Background(), resident, model.CreateComplaintRequest{
		HouseID: 101,
		Type:    "noise",
		Title:   "Drilling at night",
		Content: "Someone drills after 11pm every day.",
	})
	require.NoError(t, err)
	return svc, complaint, events
}

func TestCreateComplaint(t *testing.T) {
	svc, complaint, _ := setupComplaintService(t)
	assert.Equal(t, model.ComplaintSubmitted, complaint.Status)

	_, err := svc.CreateComplaint(context.Background(), neighbour, model.CreateComplaintRequest{
		HouseID: 101, Type: "noise", Title: "Noise", Content: "Loud music",
	})
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
}

func TestProcessComplaint(t *testing.T) {
	ctx := context.Background()

	t.Run("ShortRemarkIsRejected", func(t *testing.T) {
		svc, complaint, _ := setupComplaintService(t)
		_, err := svc.ProcessComplaint(ctx, staff, complaint.ID, model.ProcessComplaintRequest{Status: model.ComplaintRejected, Remark: "no"})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidRemark)

		stored, err := svc.GetComplaint(ctx, resident, complaint.ID)
		require.NoError(t, err)
		assert.Equal(t, model.ComplaintSubmitted, stored.Status)
	})

	t.Run("ResolveNotifiesFiler", func(t *testing.T) {
		svc, complaint, events := setupComplaintService(t)
		_, err := svc.ProcessComplaint(ctx, staff, complaint.ID, model.ProcessComplaintRequest{Status: model.ComplaintProcessing})
		require.NoError(t, err)
		resolved, err := svc.ProcessComplaint(ctx, staff, complaint.ID, model.ProcessComplaintRequest{
			Status: model.ComplaintResolved,
			Remark: "Spoke to the neighbour",
		})
		require.NoError(t, err)
		assert.Equal(t, model.ComplaintResolved, resolved.Status)
		assert.NotNil(t, resolved.ResolvedAt)
		assert.Len(t, events.notifications(), 2)
	})

	t.Run("ResidentCannotProcess", func(t *testing.T) {
		svc, complaint, _ := setupComplaintService(t)
		_, err := svc.ProcessComplaint(ctx, resident, complaint.ID, model.ProcessComplaintRequest{Status: model.ComplaintProcessing})
		assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
	})
}

func TestDeleteComplaint(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnerWhileSubmitted", func(t *testing.T) {
		svc, complaint, _ := setupComplaintService(t)
		require.NoError(t, svc.DeleteComplaint(ctx, resident, complaint.ID))
		_, err := svc.GetComplaint(ctx, resident, complaint.ID)
		assert.ErrorIs(t, err, echo_errors.ErrComplaintNotFound)
	})

	t.Run("StaffCannotDelete", func(t *testing.T) {
		svc, complaint, _ := setupComplaintService(t)
		assert.ErrorIs(t, svc.DeleteComplaint(ctx, staff, complaint.ID), echo_errors.ErrNotAuthorized)
	})

	t.Run("NotOnceProcessing", func(t *testing.T) {
		svc, complaint, _ := setupComplaintService(t)
		_, err := svc.ProcessComplaint(ctx, staff, complaint.ID, model.ProcessComplaintRequest{Status: model.ComplaintProcessing})
		require.NoError(t, err)
		assert.ErrorIs(t, svc.DeleteComplaint(ctx, resident, complaint.ID), echo_errors.ErrInvalidState)
	})
}

func TestComplaintStatistics(t *testing.T) {
	svc, _, _ := setupComplaintService(t)
	ctx := context.Background()

	stats, err := svc.Statistics(ctx, staff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.Submitted)
	require.NotNil(t, stats.PendingOver3Days)
	assert.Equal(t, int64(1), *stats.PendingOver3Days)

	own, err := svc.Statistics(ctx, neighbour)
	require.NoError(t, err)
	assert.Equal(t, int64(0), own.Total)
	assert.Nil(t, own.PendingOver3Days)
}
