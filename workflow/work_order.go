package workflow

import (
	"fmt"
	"strings"
	"time"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
)

var WorkOrderMachine = NewMachine("work order", map[model.WorkOrderStatus][]model.WorkOrderStatus{
	model.WorkOrderPending:         {model.WorkOrderProcessing, model.WorkOrderWaitingResident, model.WorkOrderRejected},
	model.WorkOrderProcessing:      {model.WorkOrderCompleted, model.WorkOrderRejected, model.WorkOrderWaitingResident},
	model.WorkOrderWaitingResident: {model.WorkOrderProcessing},
})

const supplementHeaderLayout = "2006-01-02 15:04"

func NewWorkOrder(actor *model.Actor, req *model.CreateWorkOrderRequest) (*model.WorkOrder, error) {
	if actor == nil {
		return nil, echo_errors.ErrNotAuthorized
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", echo_errors.ErrInvalidWorkOrderData)
	}
	urgency := req.Urgency
	if urgency == "" {
		urgency = model.UrgencyMedium
	}
	return &model.WorkOrder{
		UserID:      actor.ID,
		HouseID:     req.HouseID,
		Type:        req.Type,
		Description: req.Description,
		Images:      req.Images,
		Urgency:     urgency,
		Status:      model.WorkOrderPending,
	}, nil
}

// AssignWorkOrder sets the assignee. A pending order starts processing.
func AssignWorkOrder(actor *model.Actor, order *model.WorkOrder, req *model.AssignWorkOrderRequest, now time.Time) (bool, error) {
	if !engine.IsPrivileged(actor) {
		return false, echo_errors.ErrNotAuthorized
	}
	if WorkOrderMachine.IsTerminal(order.Status) {
		return false, fmt.Errorf("%w: work order is %s", echo_errors.ErrInvalidState, order.Status)
	}
	if req.AssigneeID == 0 {
		return false, fmt.Errorf("%w: assignee is required", echo_errors.ErrInvalidWorkOrderData)
	}

	sameAssignee := order.AssigneeID != nil && *order.AssigneeID == req.AssigneeID
	sameDeadline := req.ExpectedFinishAt == nil ||
		(order.ExpectedFinishAt != nil && order.ExpectedFinishAt.Equal(*req.ExpectedFinishAt))
	if order.Status != model.WorkOrderPending && sameAssignee && sameDeadline {
		return false, nil
	}

	assignee := req.AssigneeID
	at := now.UTC()
	order.AssigneeID = &assignee
	order.AssignedAt = &at
	if req.ExpectedFinishAt != nil {
		finish := req.ExpectedFinishAt.UTC()
		order.ExpectedFinishAt = &finish
	}
	if order.Status == model.WorkOrderPending {
		order.Status = model.WorkOrderProcessing
	}
	return true, nil
}

// AdvanceWorkOrder moves the order along an existing edge. Rejection needs a
// reason; any other note is kept as the staff remark.
func AdvanceWorkOrder(actor *model.Actor, order *model.WorkOrder, target model.WorkOrderStatus, note string, now time.Time) (bool, error) {
	if !engine.IsPrivileged(actor) {
		return false, echo_errors.ErrNotAuthorized
	}
	if order.Status == target {
		return false, nil
	}
	if err := WorkOrderMachine.Check(order.Status, target); err != nil {
		return false, err
	}

	note = strings.TrimSpace(note)
	switch target {
	case model.WorkOrderRejected:
		if note == "" {
			return false, fmt.Errorf("%w: a rejection reason is required", echo_errors.ErrInvalidWorkOrderData)
		}
		order.RejectReason = note
	case model.WorkOrderCompleted:
		at := now.UTC()
		order.CompletedAt = &at
	case model.WorkOrderProcessing:
		if order.AssigneeID == nil {
			assignee := actor.ID
			at := now.UTC()
			order.AssigneeID = &assignee
			order.AssignedAt = &at
		}
	}
	if note != "" && target != model.WorkOrderRejected {
		order.StaffRemark = note
	}
	order.Status = target
	return true, nil
}

// SupplementWorkOrder appends resident-provided detail while the order is
// still open.
func SupplementWorkOrder(actor *model.Actor, order *model.WorkOrder, text string, now time.Time) (bool, error) {
	if !engine.IsOwnerOf(actor, order) {
		return false, echo_errors.ErrNotAuthorized
	}
	if WorkOrderMachine.IsTerminal(order.Status) {
		return false, fmt.Errorf("%w: work order is %s", echo_errors.ErrInvalidState, order.Status)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("%w: supplement is empty", echo_errors.ErrInvalidWorkOrderData)
	}
	order.ResidentSupplement = appendSupplement(order.ResidentSupplement, text, now)
	return true, nil
}

func CanViewWorkOrder(actor *model.Actor, order *model.WorkOrder) bool {
	if engine.IsOwnerOrPrivileged(actor, order) {
		return true
	}
	return actor != nil && order.AssigneeID != nil && *order.AssigneeID == actor.ID
}

// NewWorkOrderComment is allowed for the requester and staff in any status.
func NewWorkOrderComment(actor *model.Actor, order *model.WorkOrder, content string) (*model.WorkOrderComment, error) {
	if !engine.IsOwnerOrPrivileged(actor, order) {
		return nil, echo_errors.ErrNotAuthorized
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: comment is empty", echo_errors.ErrInvalidWorkOrderData)
	}
	return &model.WorkOrderComment{WorkOrderID: order.ID, UserID: actor.ID, Content: content}, nil
}

// NewWorkOrderRating validates a rating of a completed order by its
// requester. One rating per order is enforced by the store.
func NewWorkOrderRating(actor *model.Actor, order *model.WorkOrder, req *model.RatingRequest) (*model.WorkOrderRating, error) {
	if !engine.IsOwnerOf(actor, order) {
		return nil, echo_errors.ErrNotAuthorized
	}
	if order.Status != model.WorkOrderCompleted {
		return nil, fmt.Errorf("%w: only completed work orders can be rated", echo_errors.ErrInvalidState)
	}
	if !validRating(req.ServiceRating) || !validRating(req.EfficiencyRating) {
		return nil, fmt.Errorf("%w: ratings must be between 1 and 5", echo_errors.ErrInvalidWorkOrderData)
	}
	return &model.WorkOrderRating{
		WorkOrderID:      order.ID,
		UserID:           actor.ID,
		ServiceRating:    req.ServiceRating,
		EfficiencyRating: req.EfficiencyRating,
		Comment:          strings.TrimSpace(req.Comment),
	}, nil
}

func validRating(v int) bool {
	return v >= 1 && v <= 5
}

func appendSupplement(existing, text string, now time.Time) string {
	return fmt.Sprintf("%s\n\n[Supplement %s]:\n%s", existing, now.UTC().Format(supplementHeaderLayout), text)
}
