package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

type fakeWorkOrderStore struct {
	rows     *table[model.WorkOrder]
	comments []model.WorkOrderComment
	ratings  map[uint]model.WorkOrderRating
}

func newFakeWorkOrderStore() *fakeWorkOrderStore {
	return &fakeWorkOrderStore{rows: newTable[model.WorkOrder](), ratings: map[uint]model.WorkOrderRating{}}
}

func (f *fakeWorkOrderStore) CreateWorkOrder(ctx context.Context, order *model.WorkOrder) error {
	f.rows.insert(order, func(o *model.WorkOrder, id uint) { o.ID = id })
	return nil
}

func (f *fakeWorkOrderStore) GetWorkOrder(ctx context.Context, orderID uint) (*model.WorkOrder, error) {
	return f.rows.get(orderID, echo_errors.ErrWorkOrderNotFound)
}

func (f *fakeWorkOrderStore) matching(filter model.WorkOrderFilter) []model.WorkOrder {
	var out []model.WorkOrder
	for _, o := range f.rows.all() {
		if filter.UserID != nil {
			assigned := filter.AssigneeID != nil && o.AssigneeID != nil && *o.AssigneeID == *filter.AssigneeID
			if o.UserID != *filter.UserID && !assigned {
				continue
			}
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}

func (f *fakeWorkOrderStore) ListWorkOrders(ctx context.Context, filter model.WorkOrderFilter, limit, offset int) ([]model.WorkOrder, error) {
	return f.matching(filter), nil
}

func (f *fakeWorkOrderStore) CountByStatus(ctx context.Context, filter model.WorkOrderFilter) (map[model.WorkOrderStatus]int64, error) {
	counts := map[model.WorkOrderStatus]int64{}
	for _, o := range f.matching(filter) {
		counts[o.Status]++
	}
	return counts, nil
}

func (f *fakeWorkOrderStore) TransitionWorkOrder(ctx context.Context, orderID uint, mutate dao.Mutation[model.WorkOrder]) (*model.WorkOrder, bool, error) {
	return f.rows.transition(orderID, echo_errors.ErrWorkOrderNotFound, mutate)
}

func (f *fakeWorkOrderStore) AddComment(ctx context.Context, comment *model.WorkOrderComment) error {
	comment.ID = uint(len(f.comments) + 1)
	f.comments = append(f.comments, *comment)
	return nil
}

func (f *fakeWorkOrderStore) ListComments(ctx context.Context, orderID uint) ([]model.WorkOrderComment, error) {
	var out []model.WorkOrderComment
	for _, c := range f.comments {
		if c.WorkOrderID == orderID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeWorkOrderStore) CreateRating(ctx context.Context, rating *model.WorkOrderRating) error {
	if _, ok := f.ratings[rating.WorkOrderID]; ok {
		return echo_errors.ErrAlreadyRated
	}
	f.ratings[rating.WorkOrderID] = *rating
	return nil
}

func setupWorkOrderService(t *testing.T) (*WorkOrderService, *model.WorkOrder, *fakeEvents) {
	t.Helper()
	common, _, events := newCommon()
	svc := NewWorkOrderService(newFakeWorkOrderStore(), newFakeHouses(), common)
	order, err := svc.CreateWorkOrder(context.Background(), resident, model.CreateWorkOrderRequest{
		HouseID:     101,
		Type:        "plumbing",
		Description: "Kitchen tap leaks",
	})
	require.NoError(t, err)
	return svc, order, events
}

func TestWorkOrderLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, order, events := setupWorkOrderService(t)
	assert.Equal(t, model.UrgencyMedium, order.Urgency)

	_, err := svc.AssignWorkOrder(ctx, resident, order.ID, model.AssignWorkOrderRequest{AssigneeID: otherStaff.ID})
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	assigned, err := svc.AssignWorkOrder(ctx, staff, order.ID, model.AssignWorkOrderRequest{AssigneeID: otherStaff.ID})
	require.NoError(t, err)
	assert.Equal(t, model.WorkOrderProcessing, assigned.Status)
	assert.Len(t, events.notifications(), 2)

	_, err = svc.RateWorkOrder(ctx, resident, order.ID, model.RatingRequest{ServiceRating: 5, EfficiencyRating: 5})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)

	_, err = svc.TransitionWorkOrder(ctx, staff, order.ID, model.WorkOrderTransitionRequest{Status: model.WorkOrderRejected})
	assert.ErrorIs(t, err, echo_errors.ErrInvalidWorkOrderData)

	done, err := svc.TransitionWorkOrder(ctx, otherStaff, order.ID, model.WorkOrderTransitionRequest{Status: model.WorkOrderCompleted, Note: "Washer replaced"})
	require.NoError(t, err)
	assert.Equal(t, model.WorkOrderCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)

	_, err = svc.SupplementWorkOrder(ctx, resident, order.ID, "Still dripping")
	assert.ErrorIs(t, err, echo_errors.ErrInvalidState)

	_, err = svc.RateWorkOrder(ctx, resident, order.ID, model.RatingRequest{ServiceRating: 5, EfficiencyRating: 4})
	require.NoError(t, err)
	_, err = svc.RateWorkOrder(ctx, resident, order.ID, model.RatingRequest{ServiceRating: 1, EfficiencyRating: 1})
	assert.ErrorIs(t, err, echo_errors.ErrAlreadyRated)
}

func TestWorkOrderVisibility(t *testing.T) {
	ctx := context.Background()
	svc, order, _ := setupWorkOrderService(t)

	_, err := svc.GetWorkOrder(ctx, neighbour, order.ID)
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = svc.CreateWorkOrder(ctx, neighbour, model.CreateWorkOrderRequest{HouseID: 101, Type: "x", Description: "y"})
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)

	_, err = svc.AddComment(ctx, resident, order.ID, "When will someone come?")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, neighbour, order.ID, "Me too")
	assert.ErrorIs(t, err, echo_errors.ErrNotAuthorized)
	comments, err := svc.ListComments(ctx, staff, order.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	mine, err := svc.Statistics(ctx, resident)
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.Total)
	assert.Equal(t, int64(1), mine.Pending)

	theirs, err := svc.ListWorkOrders(ctx, neighbour, "", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}
