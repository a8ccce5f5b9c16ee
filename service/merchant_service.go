// api/service/merchant_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	"github.com/dev-mohitbeniwal/community/api/util"
	helper_util "github.com/dev-mohitbeniwal/community/api/util/helper"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// IMerchantService covers merchant applications, their service catalogue
// and the orders residents place with them.
type IMerchantService interface {
	Apply(ctx context.Context, actor *model.Actor, req model.MerchantApplicationRequest) (*model.Merchant, error)
	GetMerchant(ctx context.Context, actor *model.Actor, merchantID uint) (*model.Merchant, error)
	ListMerchants(ctx context.Context, actor *model.Actor, filter model.MerchantFilter, limit, offset int) ([]model.Merchant, error)
	ApproveMerchant(ctx context.Context, actor *model.Actor, merchantID uint) (*model.Merchant, error)
	RejectMerchant(ctx context.Context, actor *model.Actor, merchantID uint, reason string) (*model.Merchant, error)

	CreateService(ctx context.Context, actor *model.Actor, merchantID uint, req model.MerchantServiceRequest) (*model.MerchantService, error)
	UpdateService(ctx context.Context, actor *model.Actor, serviceID uint, req model.MerchantServiceRequest) (*model.MerchantService, error)
	ListServices(ctx context.Context, actor *model.Actor, merchantID uint) ([]model.MerchantService, error)

	CreateOrder(ctx context.Context, actor *model.Actor, req model.CreateMerchantOrderRequest) (*model.MerchantOrder, error)
	GetOrder(ctx context.Context, actor *model.Actor, orderID uint) (*model.MerchantOrder, error)
	ListOrders(ctx context.Context, actor *model.Actor, status model.MerchantOrderStatus, limit, offset int) ([]model.MerchantOrder, error)
	TransitionOrder(ctx context.Context, actor *model.Actor, orderID uint, target model.MerchantOrderStatus) (*model.MerchantOrder, error)
}

type MerchantStore interface {
	CreateMerchant(ctx context.Context, merchant *model.Merchant) error
	GetMerchant(ctx context.Context, merchantID uint) (*model.Merchant, error)
	GetMerchantByUser(ctx context.Context, userID uint) (*model.Merchant, error)
	ListMerchants(ctx context.Context, filter model.MerchantFilter, limit, offset int) ([]model.Merchant, error)
	TransitionMerchant(ctx context.Context, merchantID uint, mutate dao.Mutation[model.Merchant]) (*model.Merchant, bool, error)
	CreateService(ctx context.Context, service *model.MerchantService) error
	UpdateService(ctx context.Context, service *model.MerchantService) error
	GetService(ctx context.Context, serviceID uint) (*model.MerchantService, error)
	ListServices(ctx context.Context, merchantID uint, activeOnly bool) ([]model.MerchantService, error)
	CreateOrder(ctx context.Context, order *model.MerchantOrder) error
	GetOrder(ctx context.Context, orderID uint) (*model.MerchantOrder, error)
	ListOrders(ctx context.Context, filter model.MerchantOrderFilter, limit, offset int) ([]model.MerchantOrder, error)
	TransitionOrder(ctx context.Context, orderID uint, mutate dao.Mutation[model.MerchantOrder]) (*model.MerchantOrder, bool, error)
}

var _ MerchantStore = (*dao.MerchantDAO)(nil)

type MerchantService struct {
	store          MerchantStore
	validationUtil *util.ValidationUtil
	newNumber      func(prefix string, now time.Time) string
	Common
}

var _ IMerchantService = &MerchantService{}

func NewMerchantService(store MerchantStore, validationUtil *util.ValidationUtil, common Common) *MerchantService {
	return &MerchantService{
		store:          store,
		validationUtil: validationUtil,
		newNumber:      helper_util.NewOrderNumber,
		Common:         common,
	}
}

func (s *MerchantService) Apply(ctx context.Context, actor *model.Actor, req model.MerchantApplicationRequest) (*model.Merchant, error) {
	if actor == nil {
		return nil, echo_errors.ErrNotAuthorized
	}
	if err := s.validationUtil.ValidateMerchantApplication(req); err != nil {
		return nil, err
	}
	merchant := &model.Merchant{
		UserID:        actor.ID,
		Name:          strings.TrimSpace(req.Name),
		Category:      req.Category,
		Address:       strings.TrimSpace(req.Address),
		Phone:         strings.TrimSpace(req.Phone),
		BusinessHours: req.BusinessHours,
		Description:   req.Description,
		Images:        req.Images,
		Status:        model.MerchantPending,
	}
	if err := s.store.CreateMerchant(ctx, merchant); err != nil {
		return nil, fmt.Errorf("failed to submit merchant application: %w", err)
	}
	logger.Info("Merchant application submitted", zap.Uint("merchantID", merchant.ID), zap.Uint("userID", actor.ID))
	return merchant, nil
}

// GetMerchant shows approved merchants to everyone. Pending and rejected
// applications are visible to the applicant and to staff.
func (s *MerchantService) GetMerchant(ctx context.Context, actor *model.Actor, merchantID uint) (*model.Merchant, error) {
	merchant, err := s.store.GetMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if merchant.Status == model.MerchantApproved {
		return merchant, nil
	}
	resource := pdp_model.NewResource("merchant", merchant.ID, merchant)
	if err := s.authorize(ctx, actor, pdp_model.CapabilityOwnerOrPrivileged, resource, "read"); err != nil {
		return nil, err
	}
	return merchant, nil
}

func (s *MerchantService) ListMerchants(ctx context.Context, actor *model.Actor, filter model.MerchantFilter, limit, offset int) ([]model.Merchant, error) {
	if !engine.IsPrivileged(actor) {
		filter.Status = model.MerchantApproved
	}
	return s.store.ListMerchants(ctx, filter, limit, offset)
}

func (s *MerchantService) ApproveMerchant(ctx context.Context, actor *model.Actor, merchantID uint) (*model.Merchant, error) {
	return s.decide(ctx, actor, merchantID, "approve", model.MerchantApproved, func(m *model.Merchant) (bool, error) {
		return workflow.ApproveMerchant(actor, m, s.now())
	})
}

func (s *MerchantService) RejectMerchant(ctx context.Context, actor *model.Actor, merchantID uint, reason string) (*model.Merchant, error) {
	return s.decide(ctx, actor, merchantID, "reject", model.MerchantRejected, func(m *model.Merchant) (bool, error) {
		return workflow.RejectMerchant(actor, m, reason, s.now())
	})
}

func (s *MerchantService) decide(ctx context.Context, actor *model.Actor, merchantID uint, action string, target model.MerchantStatus, rule func(*model.Merchant) (bool, error)) (*model.Merchant, error) {
	res := workflow.Result{Entity: "merchant", ID: merchantID, Action: action, To: string(target)}
	merchant, changed, err := s.store.TransitionMerchant(ctx, merchantID, func(m *model.Merchant) (bool, error) {
		res.From = string(m.Status)
		return rule(m)
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to %s merchant %d: %w", action, merchantID, err)
	}
	if changed {
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{merchant.UserID},
			Title:     "Merchant application " + string(merchant.Status),
			Content:   fmt.Sprintf("Your application for %s was %s.", merchant.Name, merchant.Status),
			Type:      model.NotificationMerchant,
			RelatedID: merchant.ID,
		})
	}
	return merchant, nil
}

func (s *MerchantService) CreateService(ctx context.Context, actor *model.Actor, merchantID uint, req model.MerchantServiceRequest) (*model.MerchantService, error) {
	merchant, err := s.store.GetMerchant(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(ctx, actor, merchant, "create_service"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateMerchantService(req); err != nil {
		return nil, err
	}
	service := &model.MerchantService{
		MerchantID:  merchant.ID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Unit:        req.Unit,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	if err := s.store.CreateService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to create merchant service: %w", err)
	}
	return service, nil
}

func (s *MerchantService) UpdateService(ctx context.Context, actor *model.Actor, serviceID uint, req model.MerchantServiceRequest) (*model.MerchantService, error) {
	service, err := s.store.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	merchant, err := s.store.GetMerchant(ctx, service.MerchantID)
	if err != nil {
		return nil, err
	}
	if err := s.requireManager(ctx, actor, merchant, "update_service"); err != nil {
		return nil, err
	}
	if err := s.validationUtil.ValidateMerchantService(req); err != nil {
		return nil, err
	}
	service.Name = strings.TrimSpace(req.Name)
	service.Description = req.Description
	service.PriceCents = req.PriceCents
	service.Unit = req.Unit
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if err := s.store.UpdateService(ctx, service); err != nil {
		return nil, fmt.Errorf("failed to update merchant service %d: %w", serviceID, err)
	}
	return service, nil
}

// ListServices hides inactive services from everyone but the merchant and
// staff.
func (s *MerchantService) ListServices(ctx context.Context, actor *model.Actor, merchantID uint) ([]model.MerchantService, error) {
	merchant, err := s.GetMerchant(ctx, actor, merchantID)
	if err != nil {
		return nil, err
	}
	return s.store.ListServices(ctx, merchant.ID, !workflow.CanManageMerchant(actor, merchant))
}

func (s *MerchantService) requireManager(ctx context.Context, actor *model.Actor, merchant *model.Merchant, action string) error {
	if workflow.CanManageMerchant(actor, merchant) {
		return nil
	}
	resource := pdp_model.NewResource("merchant", merchant.ID, merchant)
	// Owners of an unapproved merchant still fail here.
	return s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, resource, action)
}

func (s *MerchantService) CreateOrder(ctx context.Context, actor *model.Actor, req model.CreateMerchantOrderRequest) (*model.MerchantOrder, error) {
	if actor == nil {
		return nil, echo_errors.ErrNotAuthorized
	}
	if err := s.validationUtil.ValidateMerchantOrder(req); err != nil {
		return nil, err
	}
	service, err := s.store.GetService(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	merchant, err := s.store.GetMerchant(ctx, service.MerchantID)
	if err != nil {
		return nil, err
	}
	if !service.IsActive || merchant.Status != model.MerchantApproved {
		return nil, fmt.Errorf("%w: service %d is not available", echo_errors.ErrInvalidState, service.ID)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	order := &model.MerchantOrder{
		OrderNumber:    s.newNumber("M", s.now()),
		MerchantID:     merchant.ID,
		ServiceID:      service.ID,
		UserID:         actor.ID,
		Quantity:       quantity,
		TotalCents:     service.PriceCents * int64(quantity),
		ScheduledAt:    req.ScheduledAt,
		ServiceAddress: strings.TrimSpace(req.ServiceAddress),
		ContactName:    strings.TrimSpace(req.ContactName),
		ContactPhone:   strings.TrimSpace(req.ContactPhone),
		Remarks:        req.Remarks,
		Status:         model.MerchantOrderPending,
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create merchant order: %w", err)
	}
	s.notify(ctx, model.NotificationRequest{
		UserIDs:   []uint{merchant.UserID},
		Title:     "New order",
		Content:   fmt.Sprintf("Order %s for %s was placed.", order.OrderNumber, service.Name),
		Type:      model.NotificationMerchant,
		RelatedID: order.ID,
	})
	return order, nil
}

func (s *MerchantService) GetOrder(ctx context.Context, actor *model.Actor, orderID uint) (*model.MerchantOrder, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if engine.IsOwnerOf(actor, order) {
		return order, nil
	}
	merchant, err := s.store.GetMerchant(ctx, order.MerchantID)
	if err != nil {
		return nil, err
	}
	if workflow.CanManageMerchant(actor, merchant) {
		return order, nil
	}
	resource := pdp_model.NewResource("merchant_order", order.ID, order)
	if err := s.authorize(ctx, actor, pdp_model.CapabilityOwnerOrPrivileged, resource, "read"); err != nil {
		return nil, err
	}
	return order, nil
}

// ListOrders scopes non-privileged actors to orders they placed plus those
// placed with their approved merchant.
func (s *MerchantService) ListOrders(ctx context.Context, actor *model.Actor, status model.MerchantOrderStatus, limit, offset int) ([]model.MerchantOrder, error) {
	filter := model.MerchantOrderFilter{UserID: ownScope(actor), Status: status}
	if filter.UserID != nil {
		merchant, err := s.store.GetMerchantByUser(ctx, actor.ID)
		switch {
		case err == nil && merchant.Status == model.MerchantApproved:
			filter.MerchantID = &merchant.ID
		case err != nil && !errors.Is(err, echo_errors.ErrMerchantNotFound):
			return nil, err
		}
	}
	return s.store.ListOrders(ctx, filter, limit, offset)
}

func (s *MerchantService) TransitionOrder(ctx context.Context, actor *model.Actor, orderID uint, target model.MerchantOrderStatus) (*model.MerchantOrder, error) {
	current, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	merchant, err := s.store.GetMerchant(ctx, current.MerchantID)
	if err != nil {
		return nil, err
	}

	res := workflow.Result{Entity: "merchant_order", ID: orderID, Action: "transition", To: string(target)}
	order, changed, err := s.store.TransitionOrder(ctx, orderID, func(o *model.MerchantOrder) (bool, error) {
		res.From = string(o.Status)
		return workflow.AdvanceMerchantOrder(actor, o, merchant, target)
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to move merchant order %d to %s: %w", orderID, target, err)
	}
	if changed {
		recipient := order.UserID
		if recipient == actor.ID {
			recipient = merchant.UserID
		}
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{recipient},
			Title:     "Order " + string(order.Status),
			Content:   fmt.Sprintf("Order %s is now %s.", order.OrderNumber, order.Status),
			Type:      model.NotificationMerchant,
			RelatedID: order.ID,
		})
	}
	return order, nil
}
