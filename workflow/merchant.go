package workflow

import (
	"fmt"
	"strings"
	"time"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
)

var MerchantMachine = NewMachine("merchant", map[model.MerchantStatus][]model.MerchantStatus{
	model.MerchantPending: {model.MerchantApproved, model.MerchantRejected},
})

var MerchantOrderMachine = NewMachine("merchant order", map[model.MerchantOrderStatus][]model.MerchantOrderStatus{
	model.MerchantOrderPending:    {model.MerchantOrderPaid, model.MerchantOrderCancelled},
	model.MerchantOrderPaid:       {model.MerchantOrderProcessing, model.MerchantOrderCancelled},
	model.MerchantOrderProcessing: {model.MerchantOrderCompleted},
})

func ApproveMerchant(actor *model.Actor, merchant *model.Merchant, now time.Time) (bool, error) {
	return decide(MerchantMachine, actor, merchantDecision(merchant), model.MerchantApproved, "", now)
}

func RejectMerchant(actor *model.Actor, merchant *model.Merchant, reason string, now time.Time) (bool, error) {
	return decide(MerchantMachine, actor, merchantDecision(merchant), model.MerchantRejected, strings.TrimSpace(reason), now)
}

func merchantDecision(m *model.Merchant) decision[model.MerchantStatus] {
	return decision[model.MerchantStatus]{
		status:       &m.Status,
		approverID:   &m.ApproverID,
		approvedAt:   &m.ApprovedAt,
		rejectReason: &m.RejectReason,
	}
}

// AdvanceMerchantOrder applies a status change requested through the order
// endpoints. merchant is the merchant the order belongs to; its owner acts
// for the merchant only once the application is approved. Moving to paid is
// reserved for payment settlement.
func AdvanceMerchantOrder(actor *model.Actor, order *model.MerchantOrder, merchant *model.Merchant, target model.MerchantOrderStatus) (bool, error) {
	if actor == nil {
		return false, echo_errors.ErrNotAuthorized
	}
	if target == model.MerchantOrderPaid {
		return false, fmt.Errorf("%w: orders are marked paid by payment settlement", echo_errors.ErrNotAuthorized)
	}

	actsForMerchant := engine.IsPrivileged(actor) || isMerchantOperator(actor, merchant)
	switch target {
	case model.MerchantOrderProcessing, model.MerchantOrderCompleted:
		if !actsForMerchant {
			return false, echo_errors.ErrNotAuthorized
		}
	case model.MerchantOrderCancelled:
		isCustomer := engine.IsOwnerOf(actor, order)
		if !actsForMerchant && !isCustomer {
			return false, echo_errors.ErrNotAuthorized
		}
		if !actsForMerchant && order.Status == model.MerchantOrderPaid {
			return false, fmt.Errorf("%w: a paid order can only be cancelled by the merchant", echo_errors.ErrInvalidState)
		}
	default:
		return false, fmt.Errorf("%w: unknown merchant order status %q", echo_errors.ErrInvalidMerchantOrderData, target)
	}

	if order.Status == target {
		return false, nil
	}
	if err := MerchantOrderMachine.Check(order.Status, target); err != nil {
		return false, err
	}
	order.Status = target
	return true, nil
}

// MarkMerchantOrderPaid is applied by a successful payment settlement.
func MarkMerchantOrderPaid(order *model.MerchantOrder) (bool, error) {
	if order.Status == model.MerchantOrderPaid {
		return false, nil
	}
	if err := MerchantOrderMachine.Check(order.Status, model.MerchantOrderPaid); err != nil {
		return false, err
	}
	order.Status = model.MerchantOrderPaid
	return true, nil
}

func isMerchantOperator(actor *model.Actor, merchant *model.Merchant) bool {
	return merchant != nil && merchant.Status == model.MerchantApproved && engine.IsOwnerOf(actor, merchant)
}

// CanManageMerchant reports whether the actor may edit the merchant's
// catalogue.
func CanManageMerchant(actor *model.Actor, merchant *model.Merchant) bool {
	return engine.IsPrivileged(actor) || isMerchantOperator(actor, merchant)
}
