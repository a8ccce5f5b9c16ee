package workflow

import (
	"fmt"
	"strings"
	"time"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
)

var BindingMachine = NewMachine("binding", map[model.BindingStatus][]model.BindingStatus{
	model.BindingPending: {model.BindingApproved, model.BindingRejected},
})

// NewBinding builds a pending binding for the actor. Uniqueness of the
// (user, house) pair is enforced by the store.
func NewBinding(actor *model.Actor, req *model.CreateBindingRequest) (*model.UserHouse, error) {
	if actor == nil {
		return nil, echo_errors.ErrNotAuthorized
	}
	switch req.Relationship {
	case model.RelationshipOwner:
		if strings.TrimSpace(req.CertificateImage) == "" {
			return nil, fmt.Errorf("%w: owner binding requires a certificate image", echo_errors.ErrInvalidBindingData)
		}
	case model.RelationshipFamily:
	default:
		return nil, fmt.Errorf("%w: unknown relationship %q", echo_errors.ErrInvalidBindingData, req.Relationship)
	}

	return &model.UserHouse{
		UserID:           actor.ID,
		HouseID:          req.HouseID,
		Relationship:     req.Relationship,
		Status:           model.BindingPending,
		CertificateImage: req.CertificateImage,
	}, nil
}

func ApproveBinding(actor *model.Actor, binding *model.UserHouse, now time.Time) (bool, error) {
	return decide(BindingMachine, actor, bindingDecision(binding), model.BindingApproved, "", now)
}

func RejectBinding(actor *model.Actor, binding *model.UserHouse, reason string, now time.Time) (bool, error) {
	return decide(BindingMachine, actor, bindingDecision(binding), model.BindingRejected, strings.TrimSpace(reason), now)
}

func bindingDecision(b *model.UserHouse) decision[model.BindingStatus] {
	return decision[model.BindingStatus]{
		status:       &b.Status,
		approverID:   &b.ApproverID,
		approvedAt:   &b.ApprovedAt,
		rejectReason: &b.RejectReason,
	}
}
