package workflow

import (
	"fmt"
	"strings"
	"time"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
)

var PaymentMachine = NewMachine("payment", map[model.PaymentStatus][]model.PaymentStatus{
	model.PaymentCreated: {model.PaymentPaid, model.PaymentFailed},
	model.PaymentPaid:    {model.PaymentRefunded},
})

var BillMachine = NewMachine("bill", map[model.BillStatus][]model.BillStatus{
	model.BillPending: {model.BillPaid},
	model.BillOverdue: {model.BillPaid},
})

// EffectiveBillStatus reads an unpaid bill past its due date as overdue.
func EffectiveBillStatus(bill *model.PropertyFeeBill, now time.Time) model.BillStatus {
	if bill.Status == model.BillPending && now.After(bill.DueDate) {
		return model.BillOverdue
	}
	return bill.Status
}

func NewBill(actor *model.Actor, req *model.CreateBillRequest) (*model.PropertyFeeBill, error) {
	if !engine.IsPrivileged(actor) {
		return nil, echo_errors.ErrNotAuthorized
	}
	if _, err := time.Parse("2006-01", req.BillingPeriod); err != nil {
		return nil, fmt.Errorf("%w: billing period must look like YYYY-MM", echo_errors.ErrInvalidBillData)
	}
	if req.AmountCents <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", echo_errors.ErrInvalidBillData)
	}
	return &model.PropertyFeeBill{
		HouseID:       req.HouseID,
		BillingPeriod: req.BillingPeriod,
		AmountCents:   req.AmountCents,
		DueDate:       req.DueDate.UTC(),
		Status:        model.BillPending,
	}, nil
}

// NewBillPayment prepares a payment for an unpaid bill.
func NewBillPayment(actor *model.Actor, bill *model.PropertyFeeBill, gateway model.PaymentGateway, orderNumber string) (*model.PaymentOrder, error) {
	if actor == nil {
		return nil, echo_errors.ErrNotAuthorized
	}
	if bill.Status == model.BillPaid {
		return nil, fmt.Errorf("%w: bill is already paid", echo_errors.ErrInvalidState)
	}
	billID := bill.ID
	return &model.PaymentOrder{
		OrderNumber: orderNumber,
		UserID:      actor.ID,
		BillID:      &billID,
		AmountCents: bill.AmountCents,
		Gateway:     gateway,
		Status:      model.PaymentCreated,
	}, nil
}

// NewMerchantOrderPayment prepares a payment for the customer's own pending
// order.
func NewMerchantOrderPayment(actor *model.Actor, order *model.MerchantOrder, gateway model.PaymentGateway, orderNumber string) (*model.PaymentOrder, error) {
	if !engine.IsOwnerOf(actor, order) {
		return nil, echo_errors.ErrNotAuthorized
	}
	if order.Status != model.MerchantOrderPending {
		return nil, fmt.Errorf("%w: merchant order is %s", echo_errors.ErrInvalidState, order.Status)
	}
	orderID := order.ID
	return &model.PaymentOrder{
		OrderNumber:     orderNumber,
		UserID:          actor.ID,
		MerchantOrderID: &orderID,
		AmountCents:     order.TotalCents,
		Gateway:         gateway,
		Status:          model.PaymentCreated,
	}, nil
}

// SettlePayment records the gateway outcome confirmed by staff.
func SettlePayment(actor *model.Actor, payment *model.PaymentOrder, success bool, gatewayOrderNo string, now time.Time) (bool, error) {
	if !engine.IsPrivileged(actor) {
		return false, echo_errors.ErrNotAuthorized
	}
	target := model.PaymentFailed
	if success {
		target = model.PaymentPaid
	}
	if payment.Status == target {
		return false, nil
	}
	if err := PaymentMachine.Check(payment.Status, target); err != nil {
		return false, err
	}
	payment.Status = target
	if no := strings.TrimSpace(gatewayOrderNo); no != "" {
		payment.GatewayOrderNo = no
	}
	if success {
		at := now.UTC()
		payment.PaidAt = &at
	}
	return true, nil
}

func RefundPayment(actor *model.Actor, payment *model.PaymentOrder) (bool, error) {
	if !engine.IsPrivileged(actor) {
		return false, echo_errors.ErrNotAuthorized
	}
	if payment.Status == model.PaymentRefunded {
		return false, nil
	}
	if err := PaymentMachine.Check(payment.Status, model.PaymentRefunded); err != nil {
		return false, err
	}
	payment.Status = model.PaymentRefunded
	return true, nil
}

// MarkBillPaid is applied together with a successful settlement.
func MarkBillPaid(bill *model.PropertyFeeBill, now time.Time) (bool, error) {
	if err := BillMachine.Check(bill.Status, model.BillPaid); err != nil {
		return false, err
	}
	at := now.UTC()
	bill.Status = model.BillPaid
	bill.PaidAt = &at
	return true, nil
}
