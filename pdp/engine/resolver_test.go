package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
)

type fakeSource struct {
	users   map[uint]*model.User
	roles   map[uint]*model.Role
	roleErr error
}

func (f *fakeSource) FetchUser(ctx context.Context, userID uint) (*model.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, echo_errors.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeSource) FetchRole(ctx context.Context, roleID uint) (*model.Role, error) {
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	r, ok := f.roles[roleID]
	if !ok {
		return nil, echo_errors.ErrRoleNotFound
	}
	return r, nil
}

func uintPtr(v uint) *uint { return &v }

func TestActorResolver(t *testing.T) {
	source := &fakeSource{
		users: map[uint]*model.User{
			1: {ID: 1, Username: "staff", IsActive: true, RoleID: uintPtr(10)},
			2: {ID: 2, Username: "resident", IsActive: true, RoleID: uintPtr(11)},
			3: {ID: 3, Username: "dangling", IsActive: true, RoleID: uintPtr(99)},
			4: {ID: 4, Username: "norole", IsActive: true},
			5: {ID: 5, Username: "root", IsActive: true, IsSuperuser: true},
			6: {ID: 6, Username: "legacy-admin", IsActive: true, RoleID: uintPtr(12)},
			7: {ID: 7, Username: "disabled", IsActive: false, RoleID: uintPtr(10)},
		},
		roles: map[uint]*model.Role{
			10: {ID: 10, Name: "Property staff", RoleType: model.RoleTypePropertyStaff},
			11: {ID: 11, Name: "Resident", RoleType: model.RoleTypeResident},
			12: {ID: 12, Name: "Admin", RoleType: "admin"},
		},
	}
	resolver := engine.NewActorResolver(source)
	ctx := context.Background()

	t.Run("ResolvesStaffRole", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, model.RolePropertyStaff, actor.Role)
		assert.True(t, engine.IsPrivileged(actor))
	})

	t.Run("ResolvesResidentRole", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, model.RoleResident, actor.Role)
		assert.False(t, engine.IsPrivileged(actor))
	})

	t.Run("DanglingRoleFailsClosed", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, model.RoleNone, actor.Role)
		assert.False(t, engine.IsPrivileged(actor))
	})

	t.Run("MissingRoleFailsClosed", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, model.RoleNone, actor.Role)
	})

	t.Run("UnknownRoleTypeFailsClosed", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, 6)
		require.NoError(t, err)
		assert.Equal(t, model.RoleNone, actor.Role)
		assert.False(t, engine.IsPrivileged(actor))
	})

	t.Run("SuperuserIsPrivilegedWithoutRole", func(t *testing.T) {
		actor, err := resolver.Resolve(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, model.RoleNone, actor.Role)
		assert.True(t, engine.IsPrivileged(actor))
	})

	t.Run("UnknownUserIsUnauthorized", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, 42)
		assert.ErrorIs(t, err, echo_errors.ErrUnauthorized)
	})

	t.Run("InactiveUserIsUnauthorized", func(t *testing.T) {
		_, err := resolver.Resolve(ctx, 7)
		assert.ErrorIs(t, err, echo_errors.ErrUnauthorized)
	})

	t.Run("RoleFetchErrorFailsClosed", func(t *testing.T) {
		failing := &fakeSource{users: source.users, roleErr: errors.New("connection reset")}
		actor, err := engine.NewActorResolver(failing).Resolve(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, model.RoleNone, actor.Role)
		assert.False(t, engine.IsPrivileged(actor))
	})
}
