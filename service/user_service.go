// api/service/user_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// IUserService defines the interface for user operations
type IUserService interface {
	GetProfile(ctx context.Context, actor *model.Actor) (*model.Profile, error)
	ListUsers(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.User, error)
	AssignRole(ctx context.Context, actor *model.Actor, userID uint, roleType string) (*model.User, error)
}

type UserService struct {
	store AccountStore
	Common
}

var _ IUserService = &UserService{}

func NewUserService(store AccountStore, common Common) *UserService {
	return &UserService{store: store, Common: common}
}

func (s *UserService) GetProfile(ctx context.Context, actor *model.Actor) (*model.Profile, error) {
	user, err := s.store.GetUser(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &model.Profile{User: user, Actor: actor, Role: actor.Role}, nil
}

func (s *UserService) ListUsers(ctx context.Context, actor *model.Actor, limit, offset int) ([]model.User, error) {
	if err := s.authorize(ctx, actor, pdp_model.CapabilityPrivileged, pdp_model.Resource{Type: "user"}, "list"); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx, limit, offset)
}

// AssignRole is reserved for superusers. The role type "none" clears the
// role reference.
func (s *UserService) AssignRole(ctx context.Context, actor *model.Actor, userID uint, roleType string) (*model.User, error) {
	res := workflow.Result{Entity: "user", ID: userID, Action: "assign_role", To: roleType}
	if actor == nil || !actor.IsSuperuser {
		err := fmt.Errorf("%w: only superusers may assign roles", echo_errors.ErrNotAuthorized)
		s.record(ctx, actor, res, false, err)
		return nil, err
	}

	var roleID *uint
	if roleType != "none" {
		if engine.RoleFromType(roleType) == model.RoleNone {
			return nil, fmt.Errorf("%w: unknown role type %q", echo_errors.ErrInvalidUserData, roleType)
		}
		role, err := s.store.GetRoleByType(ctx, roleType)
		if err != nil {
			return nil, fmt.Errorf("failed to load role %s: %w", roleType, err)
		}
		roleID = &role.ID
	}

	user, err := s.store.SetUserRole(ctx, userID, roleID)
	s.record(ctx, actor, res, err == nil, err)
	if err != nil {
		return nil, fmt.Errorf("failed to assign role: %w", err)
	}
	logger.Info("Role assigned", zap.Uint("userID", userID), zap.String("roleType", roleType), zap.Uint("by", actor.ID))
	return user, nil
}
