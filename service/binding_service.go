// api/service/binding_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/dao"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// IBindingService handles house ownership bindings.
type IBindingService interface {
	CreateBinding(ctx context.Context, actor *model.Actor, req model.CreateBindingRequest) (*model.UserHouse, error)
	GetBinding(ctx context.Context, actor *model.Actor, bindingID uint) (*model.UserHouse, error)
	ListBindings(ctx context.Context, actor *model.Actor, filter model.BindingFilter, limit, offset int) ([]model.UserHouse, error)
	ListPendingBindings(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.UserHouse, error)
	ListMyBindings(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.UserHouse, error)
	ApproveBinding(ctx context.Context, actor *model.Actor, bindingID uint) (*model.UserHouse, error)
	RejectBinding(ctx context.Context, actor *model.Actor, bindingID uint, reason string) (*model.UserHouse, error)
}

type BindingStore interface {
	CreateBinding(ctx context.Context, binding *model.UserHouse) error
	GetBinding(ctx context.Context, bindingID uint) (*model.UserHouse, error)
	ListBindings(ctx context.Context, filter model.BindingFilter, limit, offset int) ([]model.UserHouse, error)
	TransitionBinding(ctx context.Context, bindingID uint, mutate dao.Mutation[model.UserHouse]) (*model.UserHouse, bool, error)
}

type HouseGetter interface {
	GetHouse(ctx context.Context, houseID uint) (*model.House, error)
}

var _ BindingStore = (*dao.BindingDAO)(nil)

type BindingService struct {
	store  BindingStore
	houses HouseGetter
	Common
}

var _ IBindingService = &BindingService{}

func NewBindingService(store BindingStore, houses HouseGetter, common Common) *BindingService {
	return &BindingService{store: store, houses: houses, Common: common}
}

func (s *BindingService) CreateBinding(ctx context.Context, actor *model.Actor, req model.CreateBindingRequest) (*model.UserHouse, error) {
	binding, err := workflow.NewBinding(actor, &req)
	if err != nil {
		return nil, err
	}
	if _, err := s.houses.GetHouse(ctx, req.HouseID); err != nil {
		return nil, err
	}
	if err := s.store.CreateBinding(ctx, binding); err != nil {
		return nil, fmt.Errorf("failed to create binding: %w", err)
	}
	logger.Info("Binding requested",
		zap.Uint("bindingID", binding.ID),
		zap.Uint("userID", binding.UserID),
		zap.Uint("houseID", binding.HouseID))
	return binding, nil
}

func (s *BindingService) GetBinding(ctx context.Context, actor *model.Actor, bindingID uint) (*model.UserHouse, error) {
	binding, err := s.store.GetBinding(ctx, bindingID)
	if err != nil {
		return nil, err
	}
	resource := pdp_model.NewResource("binding", binding.ID, binding)
	if err := s.authorize(ctx, actor, pdp_model.CapabilityOwnerOrPrivileged, resource, "read"); err != nil {
		return nil, err
	}
	return binding, nil
}

// ListBindings honours the filter for privileged actors and restricts
// everybody else to their own bindings.
func (s *BindingService) ListBindings(ctx context.Context, actor *model.Actor, filter model.BindingFilter, limit, offset int) ([]model.UserHouse, error) {
	if scope := ownScope(actor); scope != nil {
		filter.UserID = scope
	}
	return s.store.ListBindings(ctx, filter, limit, offset)
}

func (s *BindingService) ListPendingBindings(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.UserHouse, error) {
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "binding"}, "list_pending"); err != nil {
		return nil, err
	}
	return s.store.ListBindings(ctx, model.BindingFilter{Status: model.BindingPending}, limit, offset)
}

func (s *BindingService) ListMyBindings(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.UserHouse, error) {
	id := actor.ID
	return s.store.ListBindings(ctx, model.BindingFilter{UserID: &id}, limit, offset)
}

func (s *BindingService) ApproveBinding(ctx context.Context, actor *model.Actor, bindingID uint) (*model.UserHouse, error) {
	return s.decide(ctx, actor, bindingID, "approve", model.BindingApproved, func(b *model.UserHouse) (bool, error) {
		return workflow.ApproveBinding(actor, b, s.now())
	})
}

func (s *BindingService) RejectBinding(ctx context.Context, actor *model.Actor, bindingID uint, reason string) (*model.UserHouse, error) {
	return s.decide(ctx, actor, bindingID, "reject", model.BindingRejected, func(b *model.UserHouse) (bool, error) {
		return workflow.RejectBinding(actor, b, reason, s.now())
	})
}

func (s *BindingService) decide(ctx context.Context, actor *model.Actor, bindingID uint, action string, target model.BindingStatus, rule func(*model.UserHouse) (bool, error)) (*model.UserHouse, error) {
	res := workflow.Result{Entity: "binding", ID: bindingID, Action: action, To: string(target)}
	binding, changed, err := s.store.TransitionBinding(ctx, bindingID, func(b *model.UserHouse) (bool, error) {
		res.From = string(b.Status)
		return rule(b)
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to %s binding %d: %w", action, bindingID, err)
	}

	if changed {
		content := fmt.Sprintf("Your binding request for house %d was %s.", binding.HouseID, binding.Status)
		if binding.RejectReason != "" {
			content += " Reason: " + binding.RejectReason
		}
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{binding.UserID},
			Title:     "Binding " + string(binding.Status),
			Content:   content,
			Type:      model.NotificationBinding,
			RelatedID: binding.ID,
		})
	}
	return binding, nil
}
