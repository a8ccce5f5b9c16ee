// api/service/common.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/audit"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/metrics"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	"github.com/dev-mohitbeniwal/community/api/util"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// EventPublisher is the publishing half of util.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{})
}

// HouseAccess answers whether a user holds an approved binding for a house.
type HouseAccess interface {
	HasApprovedBinding(ctx context.Context, userID, houseID uint) (bool, error)
	ApprovedHouseIDs(ctx context.Context, userID uint) ([]uint, error)
}

// Common holds the collaborators shared by the workflow services.
type Common struct {
	Audit     audit.Service
	Events    EventPublisher
	Evaluator *engine.Evaluator
	Now       func() time.Time
}

func (c Common) now() time.Time {
	if c.Now == nil {
		return time.Now().UTC()
	}
	return c.Now().UTC()
}

// record audits and counts a transition attempt.
func (c Common) record(ctx context.Context, actor *model.Actor, res workflow.Result, changed bool, err error) {
	outcome := transitionOutcome(changed, err)
	metrics.RecordTransition(res.Entity, res.Action, outcome)

	entry := audit.AuditLog{
		RequestID:     util.RequestIDFromContext(ctx),
		Action:        res.Entity + "." + res.Action,
		ResourceType:  res.Entity,
		ResourceID:    res.ID,
		FromStatus:    res.From,
		ToStatus:      res.To,
		AccessGranted: !errors.Is(err, echo_errors.ErrNotAuthorized),
		Reason:        outcome,
	}
	if actor != nil {
		entry.UserID = actor.ID
		entry.ActorRole = actorRoleLabel(actor)
	}
	if err != nil {
		entry.Error = err.Error()
	}
	c.audit(ctx, entry)

	if err != nil {
		logger.Info("Transition refused",
			zap.String("entity", res.Entity),
			zap.Uint("id", res.ID),
			zap.String("action", res.Action),
			zap.String("outcome", outcome),
			zap.Error(err))
	}
}

// authorize evaluates a capability and audits denials.
func (c Common) authorize(ctx context.Context, actor *model.Actor, capability pdp_model.Capability, resource pdp_model.Resource, action string) error {
	evaluator := c.Evaluator
	if evaluator == nil {
		evaluator = engine.NewEvaluator()
	}
	decision := evaluator.Decide(ctx, &pdp_model.AccessRequest{
		Actor:      actor,
		Capability: capability,
		Resource:   resource,
		Timestamp:  c.now(),
	})
	if decision.Allowed() {
		return nil
	}

	entry := audit.AuditLog{
		RequestID:     util.RequestIDFromContext(ctx),
		Action:        resource.Type + "." + action,
		ResourceType:  resource.Type,
		ResourceID:    resource.ID,
		AccessGranted: false,
		Reason:        decision.Reason,
	}
	if actor != nil {
		entry.UserID = actor.ID
		entry.ActorRole = actorRoleLabel(actor)
	}
	c.audit(ctx, entry)
	return fmt.Errorf("%w: %s", echo_errors.ErrNotAuthorized, decision.Reason)
}

func (c Common) audit(ctx context.Context, entry audit.AuditLog) {
	if c.Audit == nil {
		return
	}
	if err := c.Audit.LogAccess(ctx, entry); err != nil {
		logger.Warn("Failed to write audit log", zap.Error(err), zap.String("action", entry.Action))
	}
}

func (c Common) notify(ctx context.Context, req model.NotificationRequest) {
	if c.Events == nil || len(req.UserIDs) == 0 {
		return
	}
	c.Events.Publish(ctx, util.EventNotify, req)
}

func (c Common) requireHouseAccess(ctx context.Context, houses HouseAccess, actor *model.Actor, houseID uint) error {
	if actor == nil {
		return echo_errors.ErrNotAuthorized
	}
	ok, err := houses.HasApprovedBinding(ctx, actor.ID, houseID)
	if err != nil {
		return fmt.Errorf("failed to check binding for house %d: %w", houseID, err)
	}
	if !ok {
		return fmt.Errorf("%w: no approved binding for house %d", echo_errors.ErrNotAuthorized, houseID)
	}
	return nil
}

func transitionOutcome(changed bool, err error) string {
	switch {
	case err == nil && changed:
		return "changed"
	case err == nil:
		return "noop"
	case errors.Is(err, echo_errors.ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, echo_errors.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, echo_errors.ErrExpired):
		return "expired"
	case errors.Is(err, echo_errors.ErrInvalidRemark):
		return "invalid_remark"
	default:
		return "error"
	}
}

func actorRoleLabel(actor *model.Actor) string {
	if actor.IsSuperuser {
		return "SUPERUSER"
	}
	return string(actor.Role)
}

// ownScope returns nil for privileged actors, who see every record, and the
// actor's own id otherwise.
func ownScope(actor *model.Actor) *uint {
	if engine.IsPrivileged(actor) {
		return nil
	}
	id := actor.ID
	return &id
}
