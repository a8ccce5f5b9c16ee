package engine

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
)

// ActorSource loads the records an actor is resolved from.
type ActorSource interface {
	FetchUser(ctx context.Context, userID uint) (*model.User, error)
	FetchRole(ctx context.Context, roleID uint) (*model.Role, error)
}

// ActorResolver turns an authenticated user id into an Actor. Role
// resolution is fail-closed: anything short of a readable, known role
// yields RoleNone and is never reported to the caller.
type ActorResolver struct {
	source ActorSource
}

func NewActorResolver(source ActorSource) *ActorResolver {
	return &ActorResolver{source: source}
}

// Resolve returns ErrUnauthorized when the user itself cannot be loaded or
// is inactive.
func (r *ActorResolver) Resolve(ctx context.Context, userID uint) (*model.Actor, error) {
	user, err := r.source.FetchUser(ctx, userID)
	if err != nil {
		if errors.Is(err, echo_errors.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: user %d does not exist", echo_errors.ErrUnauthorized, userID)
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user %d is inactive", echo_errors.ErrUnauthorized, userID)
	}

	return &model.Actor{
		ID:          user.ID,
		Username:    user.Username,
		IsSuperuser: user.IsSuperuser,
		Role:        r.resolveRole(ctx, user),
	}, nil
}

func (r *ActorResolver) resolveRole(ctx context.Context, user *model.User) model.ActorRole {
	if user.RoleID == nil {
		return model.RoleNone
	}

	role, err := r.source.FetchRole(ctx, *user.RoleID)
	if err != nil || role == nil {
		logger.Warn("Role reference could not be resolved, treating actor as unprivileged",
			zap.Uint("userID", user.ID),
			zap.Uint("roleID", *user.RoleID),
			zap.Error(err))
		return model.RoleNone
	}

	actorRole := RoleFromType(role.RoleType)
	if actorRole == model.RoleNone {
		logger.Warn("Unknown role type, treating actor as unprivileged",
			zap.Uint("userID", user.ID),
			zap.String("roleType", role.RoleType))
	}
	return actorRole
}

// RoleFromType maps a stored role type onto the actor role enum. The match
// is exact; unknown values map to RoleNone.
func RoleFromType(roleType string) model.ActorRole {
	switch roleType {
	case model.RoleTypeResident:
		return model.RoleResident
	case model.RoleTypePropertyStaff:
		return model.RolePropertyStaff
	case model.RoleTypeMerchant:
		return model.RoleMerchant
	default:
		return model.RoleNone
	}
}
