// api/service/payment_service.go
package service

import (
	"context"
	"fmt"
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

const settleLockTTL = 30 * time.Second

// IPaymentService bills houses for property fees and settles payments for
// bills and merchant orders.
type IPaymentService interface {
	CreateBill(ctx context.Context, actor *model.Actor, req model.CreateBillRequest) (*model.PropertyFeeBill, error)
	ListBills(ctx context.Context, actor *model.Actor, status model.BillStatus, limit, offset int) ([]model.PropertyFeeBill, error)
	CreatePayment(ctx context.Context, actor *model.Actor, req model.CreatePaymentRequest) (*model.PaymentOrder, error)
	ListPayments(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.PaymentOrder, error)
	SettlePayment(ctx context.Context, actor *model.Actor, orderNumber string, req model.SettlePaymentRequest) (*model.PaymentOrder, error)
	RefundPayment(ctx context.Context, actor *model.Actor, orderNumber string) (*model.PaymentOrder, error)
}

type PaymentStore interface {
	CreateBill(ctx context.Context, bill *model.PropertyFeeBill) error
	GetBill(ctx context.Context, billID uint) (*model.PropertyFeeBill, error)
	ListBills(ctx context.Context, filter model.BillFilter, limit, offset int) ([]model.PropertyFeeBill, error)
	CreatePayment(ctx context.Context, payment *model.PaymentOrder) error
	GetPaymentByNumber(ctx context.Context, orderNumber string) (*model.PaymentOrder, error)
	ListPayments(ctx context.Context, userID *uint, limit, offset int) ([]model.PaymentOrder, error)
	SettlePayment(ctx context.Context, orderNumber string, settle dao.Mutation[model.PaymentOrder],
		payBill dao.Mutation[model.PropertyFeeBill], payOrder dao.Mutation[model.MerchantOrder]) (*model.PaymentOrder, bool, error)
	TransitionPayment(ctx context.Context, orderNumber string, mutate dao.Mutation[model.PaymentOrder]) (*model.PaymentOrder, bool, error)
}

var _ PaymentStore = (*dao.PaymentDAO)(nil)

// OrderGetter loads the merchant order a payment is for.
type OrderGetter interface {
	GetOrder(ctx context.Context, orderID uint) (*model.MerchantOrder, error)
}

// Locker serialises settlement of one order number across instances.
type Locker interface {
	Lock(ctx context.Context, name string, ttl time.Duration) (token string, locked bool, err error)
	Unlock(ctx context.Context, name, token string) error
}

var _ Locker = (*util.LockService)(nil)

type PaymentService struct {
	store     PaymentStore
	houses    HouseAccess
	orders    OrderGetter
	locker    Locker
	newNumber func(prefix string, now time.Time) string
	Common
}

var _ IPaymentService = &PaymentService{}

func NewPaymentService(store PaymentStore, houses HouseAccess, orders OrderGetter, locker Locker, common Common) *PaymentService {
	return &PaymentService{
		store:     store,
		houses:    houses,
		orders:    orders,
		locker:    locker,
		newNumber: helper_util.NewOrderNumber,
		Common:    common,
	}
}

func (s *PaymentService) presentBill(bill *model.PropertyFeeBill) {
	bill.Status = workflow.EffectiveBillStatus(bill, s.now())
}

func (s *PaymentService) CreateBill(ctx context.Context, actor *model.Actor, req model.CreateBillRequest) (*model.PropertyFeeBill, error) {
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "bill"}, "create"); err != nil {
		return nil, err
	}
	bill, err := workflow.NewBill(actor, &req)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}
	s.presentBill(bill)
	return bill, nil
}

// ListBills shows residents the bills of the houses they are bound to.
// The overdue filter is applied after reading since overdue is derived.
func (s *PaymentService) ListBills(ctx context.Context, actor *model.Actor, status model.BillStatus, limit, offset int) ([]model.PropertyFeeBill, error) {
	filter := model.BillFilter{Status: status}
	if !engine.IsPrivileged(actor) {
		houseIDs, err := s.houses.ApprovedHouseIDs(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if houseIDs == nil {
			houseIDs = []uint{}
		}
		filter.HouseIDs = houseIDs
	}

	if status == "" || status == model.BillPaid {
		bills, err := s.store.ListBills(ctx, filter, limit, offset)
		if err != nil {
			return nil, err
		}
		for i := range bills {
			s.presentBill(&bills[i])
		}
		return bills, nil
	}

	unpaid, err := s.store.ListBills(ctx, filter, 0, 0)
	if err != nil {
		return nil, err
	}
	matching := make([]model.PropertyFeeBill, 0, len(unpaid))
	for _, bill := range unpaid {
		s.presentBill(&bill)
		if bill.Status == status {
			matching = append(matching, bill)
		}
	}
	return paginate(matching, limit, offset), nil
}

func (s *PaymentService) CreatePayment(ctx context.Context, actor *model.Actor, req model.CreatePaymentRequest) (*model.PaymentOrder, error) {
	if actor == nil {
		return nil, echo_errors.ErrNotAuthorized
	}
	if (req.BillID == nil) == (req.MerchantOrderID == nil) {
		return nil, fmt.Errorf("%w: exactly one of bill_id and merchant_order_id is required", echo_errors.ErrInvalidPaymentData)
	}
	if req.Gateway != model.GatewayWechat && req.Gateway != model.GatewayAlipay {
		return nil, fmt.Errorf("%w: unknown gateway %q", echo_errors.ErrInvalidPaymentData, req.Gateway)
	}

	number := s.newNumber("P", s.now())
	var payment *model.PaymentOrder
	if req.BillID != nil {
		bill, err := s.store.GetBill(ctx, *req.BillID)
		if err != nil {
			return nil, err
		}
		if !engine.IsPrivileged(actor) {
			if err := s.requireHouseAccess(ctx, s.houses, actor, bill.HouseID); err != nil {
				return nil, err
			}
		}
		if payment, err = workflow.NewBillPayment(actor, bill, req.Gateway, number); err != nil {
			return nil, err
		}
	} else {
		order, err := s.orders.GetOrder(ctx, *req.MerchantOrderID)
		if err != nil {
			return nil, err
		}
		if payment, err = workflow.NewMerchantOrderPayment(actor, order, req.Gateway, number); err != nil {
			return nil, err
		}
	}

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	logger.Info("Payment created",
		zap.String("orderNumber", payment.OrderNumber),
		zap.Int64("amountCents", payment.AmountCents),
		zap.Uint("userID", actor.ID))
	return payment, nil
}

func (s *PaymentService) ListPayments(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.PaymentOrder, error) {
	return s.store.ListPayments(ctx, ownScope(actor), limit, offset)
}

// SettlePayment records the confirmed gateway outcome. A settlement already
// running for the same order number on another instance yields
// ErrPaymentInProgress.
func (s *PaymentService) SettlePayment(ctx context.Context, actor *model.Actor, orderNumber string, req model.SettlePaymentRequest) (*model.PaymentOrder, error) {
	res := workflow.Result{Entity: "payment", Action: "settle", To: string(model.PaymentFailed)}
	if req.Success {
		res.To = string(model.PaymentPaid)
	}
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "payment"}, "settle"); err != nil {
		s.record(ctx, actor, res, false, err)
		return nil, err
	}

	lockName := "payment:" + orderNumber
	if s.locker != nil {
		token, locked, err := s.locker.Lock(ctx, lockName, settleLockTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to lock payment %s: %w", orderNumber, err)
		}
		if !locked {
			return nil, echo_errors.ErrPaymentInProgress
		}
		defer func() {
			if err := s.locker.Unlock(ctx, lockName, token); err != nil {
				logger.Warn("Failed to release payment lock", zap.Error(err), zap.String("orderNumber", orderNumber))
			}
		}()
	}

	now := s.now()
	payment, changed, err := s.store.SettlePayment(ctx, orderNumber,
		func(p *model.PaymentOrder) (bool, error) {
			res.ID = p.ID
			res.From = string(p.Status)
			return workflow.SettlePayment(actor, p, req.Success, req.GatewayOrderNo, now)
		},
		func(b *model.PropertyFeeBill) (bool, error) {
			return workflow.MarkBillPaid(b, now)
		},
		workflow.MarkMerchantOrderPaid)
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to settle payment %s: %w", orderNumber, err)
	}
	if changed {
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{payment.UserID},
			Title:     "Payment " + string(payment.Status),
			Content:   fmt.Sprintf("Payment %s is %s.", payment.OrderNumber, payment.Status),
			Type:      model.NotificationPayment,
			RelatedID: payment.ID,
		})
	}
	return payment, nil
}

func (s *PaymentService) RefundPayment(ctx context.Context, actor *model.Actor, orderNumber string) (*model.PaymentOrder, error) {
	res := workflow.Result{Entity: "payment", Action: "refund", To: string(model.PaymentRefunded)}
	payment, changed, err := s.store.TransitionPayment(ctx, orderNumber, func(p *model.PaymentOrder) (bool, error) {
		res.ID = p.ID
		res.From = string(p.Status)
		return workflow.RefundPayment(actor, p)
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to refund payment %s: %w", orderNumber, err)
	}
	if changed {
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{payment.UserID},
			Title:     "Payment refunded",
			Content:   fmt.Sprintf("Payment %s was refunded.", payment.OrderNumber),
			Type:      model.NotificationPayment,
			RelatedID: payment.ID,
		})
	}
	return payment, nil
}
