// api/service/work_order_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// IWorkOrderService handles repair and service requests.
type IWorkOrderService interface {
	CreateWorkOrder(ctx context.Context, actor *model.Actor, req model.CreateWorkOrderRequest) (*model.WorkOrder, error)
	GetWorkOrder(ctx context.Context, actor *model.Actor, orderID uint) (*model.WorkOrder, error)
	ListWorkOrders(ctx context.Context, actor *model.Actor, status model.WorkOrderStatus, limit, offset int) ([]model.WorkOrder, error)
	Statistics(ctx context.Context, actor *model.Actor) (*model.WorkOrderStatistics, error)
	AssignWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, req model.AssignWorkOrderRequest) (*model.WorkOrder, error)
	TransitionWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, req model.WorkOrderTransitionRequest) (*model.WorkOrder, error)
	SupplementWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, text string) (*model.WorkOrder, error)
	AddComment(ctx context.Context, actor *model.Actor, orderID uint, content string) (*model.WorkOrderComment, error)
	ListComments(ctx context.Context, actor *model.Actor, orderID uint) ([]model.WorkOrderComment, error)
	RateWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, req model.RatingRequest) (*model.WorkOrderRating, error)
}

type WorkOrderStore interface {
	CreateWorkOrder(ctx context.Context, order *model.WorkOrder) error
	GetWorkOrder(ctx context.Context, orderID uint) (*model.WorkOrder, error)
	ListWorkOrders(ctx context.Context, filter model.WorkOrderFilter, limit, offset int) ([]model.WorkOrder, error)
	CountByStatus(ctx context.Context, filter model.WorkOrderFilter) (map[model.WorkOrderStatus]int64, error)
	TransitionWorkOrder(ctx context.Context, orderID uint, mutate dao.Mutation[model.WorkOrder]) (*model.WorkOrder, bool, error)
	AddComment(ctx context.Context, comment *model.WorkOrderComment) error
	ListComments(ctx context.Context, orderID uint) ([]model.WorkOrderComment, error)
	CreateRating(ctx context.Context, rating *model.WorkOrderRating) error
}

var _ WorkOrderStore = (*dao.WorkOrderDAO)(nil)

type WorkOrderService struct {
	store  WorkOrderStore
	houses HouseAccess
	Common
}

var _ IWorkOrderService = &WorkOrderService{}

func NewWorkOrderService(store WorkOrderStore, houses HouseAccess, common Common) *WorkOrderService {
	return &WorkOrderService{store: store, houses: houses, Common: common}
}

func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, actor *model.Actor, req model.CreateWorkOrderRequest) (*model.WorkOrder, error) {
	order, err := workflow.NewWorkOrder(actor, &req)
	if err != nil {
		return nil, err
	}
	if err := s.requireHouseAccess(ctx, s.houses, actor, req.HouseID); err != nil {
		return nil, err
	}
	if err := s.store.CreateWorkOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create work order: %w", err)
	}
	logger.Info("Work order created", zap.Uint("workOrderID", order.ID), zap.Uint("userID", actor.ID))
	return order, nil
}

func (s *WorkOrderService) load(ctx context.Context, actor *model.Actor, orderID uint) (*model.WorkOrder, error) {
	order, err := s.store.GetWorkOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !workflow.CanViewWorkOrder(actor, order) {
		return nil, fmt.Errorf("%w: work order %d", echo_errors.ErrNotAuthorized, orderID)
	}
	return order, nil
}

func (s *WorkOrderService) GetWorkOrder(ctx context.Context, actor *model.Actor, orderID uint) (*model.WorkOrder, error) {
	return s.load(ctx, actor, orderID)
}

// scope limits non-privileged actors to orders they filed or were assigned.
func (s *WorkOrderService) scope(actor *model.Actor, status model.WorkOrderStatus) model.WorkOrderFilter {
	filter := model.WorkOrderFilter{Status: status}
	if !engine.IsPrivileged(actor) {
		id := actor.ID
		filter.UserID = &id
		filter.AssigneeID = &id
	}
	return filter
}

func (s *WorkOrderService) ListWorkOrders(ctx context.Context, actor *model.Actor, status model.WorkOrderStatus, limit, offset int) ([]model.WorkOrder, error) {
	return s.store.ListWorkOrders(ctx, s.scope(actor, status), limit, offset)
}

func (s *WorkOrderService) Statistics(ctx context.Context, actor *model.Actor) (*model.WorkOrderStatistics, error) {
	counts, err := s.store.CountByStatus(ctx, s.scope(actor, ""))
	if err != nil {
		return nil, fmt.Errorf("failed to count work orders: %w", err)
	}
	stats := &model.WorkOrderStatistics{
		Pending:         counts[model.WorkOrderPending],
		Processing:      counts[model.WorkOrderProcessing],
		WaitingResident: counts[model.WorkOrderWaitingResident],
		Completed:       counts[model.WorkOrderCompleted],
		Rejected:        counts[model.WorkOrderRejected],
	}
	for _, n := range counts {
		stats.Total += n
	}
	return stats, nil
}

func (s *WorkOrderService) AssignWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, req model.AssignWorkOrderRequest) (*model.WorkOrder, error) {
	res := workflow.Result{Entity: "work_order", ID: orderID, Action: "assign"}
	order, changed, err := s.store.TransitionWorkOrder(ctx, orderID, func(o *model.WorkOrder) (bool, error) {
		res.From = string(o.Status)
		changed, err := workflow.AssignWorkOrder(actor, o, &req, s.now())
		res.To = string(o.Status)
		return changed, err
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to assign work order %d: %w", orderID, err)
	}
	if changed {
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{req.AssigneeID},
			Title:     "Work order assigned",
			Content:   fmt.Sprintf("Work order %d has been assigned to you.", order.ID),
			Type:      model.NotificationWorkOrder,
			RelatedID: order.ID,
		})
		s.notifyRequester(ctx, order)
	}
	return order, nil
}

func (s *WorkOrderService) TransitionWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, req model.WorkOrderTransitionRequest) (*model.WorkOrder, error) {
	res := workflow.Result{Entity: "work_order", ID: orderID, Action: "transition", To: string(req.Status)}
	order, changed, err := s.store.TransitionWorkOrder(ctx, orderID, func(o *model.WorkOrder) (bool, error) {
		res.From = string(o.Status)
		return workflow.AdvanceWorkOrder(actor, o, req.Status, req.Note, s.now())
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to move work order %d to %s: %w", orderID, req.Status, err)
	}
	if changed {
		s.notifyRequester(ctx, order)
	}
	return order, nil
}

func (s *WorkOrderService) SupplementWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, text string) (*model.WorkOrder, error) {
	res := workflow.Result{Entity: "work_order", ID: orderID, Action: "supplement"}
	order, changed, err := s.store.TransitionWorkOrder(ctx, orderID, func(o *model.WorkOrder) (bool, error) {
		res.From = string(o.Status)
		res.To = res.From
		return workflow.SupplementWorkOrder(actor, o, text, s.now())
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to supplement work order %d: %w", orderID, err)
	}
	if changed && order.AssigneeID != nil {
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{*order.AssigneeID},
			Title:     "Work order supplemented",
			Content:   fmt.Sprintf("The resident added details to work order %d.", order.ID),
			Type:      model.NotificationWorkOrder,
			RelatedID: order.ID,
		})
	}
	return order, nil
}

func (s *WorkOrderService) AddComment(ctx context.Context, actor *model.Actor, orderID uint, content string) (*model.WorkOrderComment, error) {
	order, err := s.store.GetWorkOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	comment, err := workflow.NewWorkOrderComment(actor, order, content)
	if err != nil {
		return nil, err
	}
	if err := s.store.AddComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	if actor.ID != order.UserID {
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{order.UserID},
			Title:     "New comment on your work order",
			Content:   comment.Content,
			Type:      model.NotificationWorkOrder,
			RelatedID: order.ID,
		})
	}
	return comment, nil
}

func (s *WorkOrderService) ListComments(ctx context.Context, actor *model.Actor, orderID uint) ([]model.WorkOrderComment, error) {
	if _, err := s.load(ctx, actor, orderID); err != nil {
		return nil, err
	}
	return s.store.ListComments(ctx, orderID)
}

func (s *WorkOrderService) RateWorkOrder(ctx context.Context, actor *model.Actor, orderID uint, req model.RatingRequest) (*model.WorkOrderRating, error) {
	order, err := s.store.GetWorkOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	rating, err := workflow.NewWorkOrderRating(actor, order, &req)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateRating(ctx, rating); err != nil {
		return nil, fmt.Errorf("failed to rate work order %d: %w", orderID, err)
	}
	return rating, nil
}

func (s *WorkOrderService) notifyRequester(ctx context.Context, order *model.WorkOrder) {
	s.notify(ctx, model.NotificationRequest{
		UserIDs:   []uint{order.UserID},
		Title:     "Work order " + string(order.Status),
		Content:   fmt.Sprintf("Your work order %d is now %s.", order.ID, order.Status),
		Type:      model.NotificationWorkOrder,
		RelatedID: order.ID,
	})
}
