package engine

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
)

// IsPrivileged reports whether the actor is a superuser or property staff.
// A nil actor is never privileged.
func IsPrivileged(actor *model.Actor) bool {
	if actor == nil {
		return false
	}
	return actor.IsSuperuser || actor.Role == model.RolePropertyStaff
}

// IsOwnerOf compares the actor's id with the stored owner foreign key of the
// resource. Records without an owner are owned by nobody.
func IsOwnerOf(actor *model.Actor, resource model.Owned) bool {
	if actor == nil || resource == nil {
		return false
	}
	ownerID := resource.OwnerID()
	return ownerID != 0 && ownerID == actor.ID
}

// IsOwnerOrPrivileged is the usual read/cancel rule for self-service records.
func IsOwnerOrPrivileged(actor *model.Actor, resource model.Owned) bool {
	return IsPrivileged(actor) || IsOwnerOf(actor, resource)
}

// Evaluator answers capability questions and explains the answer. It keeps
// no state between calls.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Decide(ctx context.Context, request *pdp_model.AccessRequest) pdp_model.AccessDecision {
	decision := pdp_model.AccessDecision{
		Effect:     pdp_model.EffectDeny,
		Capability: request.Capability,
	}
	if request.Timestamp.IsZero() {
		request.Timestamp = time.Now().UTC()
	}

	actor := request.Actor
	switch request.Capability {
	case pdp_model.CapabilityPrivileged:
		if IsPrivileged(actor) {
			decision.Effect = pdp_model.EffectAllow
			decision.Reason = privilegeReason(actor)
		} else {
			decision.Reason = "actor is neither superuser nor property staff"
		}
	case pdp_model.CapabilityOwner:
		if IsOwnerOf(actor, request.Resource) {
			decision.Effect = pdp_model.EffectAllow
			decision.Reason = "actor owns the resource"
		} else {
			decision.Reason = "actor does not own the resource"
		}
	case pdp_model.CapabilityOwnerOrPrivileged:
		switch {
		case IsPrivileged(actor):
			decision.Effect = pdp_model.EffectAllow
			decision.Reason = privilegeReason(actor)
		case IsOwnerOf(actor, request.Resource):
			decision.Effect = pdp_model.EffectAllow
			decision.Reason = "actor owns the resource"
		default:
			decision.Reason = "actor neither owns the resource nor is privileged"
		}
	default:
		decision.Reason = fmt.Sprintf("unknown capability %q", request.Capability)
		logger.Warn("Unknown capability requested", zap.String("capability", string(request.Capability)))
	}

	logger.Debug("Access decision",
		zap.String("capability", string(request.Capability)),
		zap.String("resourceType", request.Resource.Type),
		zap.Uint("resourceID", request.Resource.ID),
		zap.String("effect", decision.Effect))
	return decision
}

func privilegeReason(actor *model.Actor) string {
	if actor.IsSuperuser {
		return "actor is a superuser"
	}
	return "actor holds the property staff role"
}
