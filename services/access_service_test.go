package services

import (
	"testing"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemRoleCannotBeDemotedOrDeleted(t *testing.T) {
	f := newFixture(t)
	perms := models.NewAttributes()
	perms.Values["rooms.write"] = models.BoolValue(true)
	role := created(t, f.svc.CreateRole(f.ctx, dto.CreateRoleRequest{Name: "Administrator", Permissions: &perms, IsSystemRole: true}))

	res := f.svc.UpdateRole(f.ctx, role, dto.UpdateRoleRequest{IsSystemRole: ptr(false)})
	assert.Equal(t, "a system role cannot be demoted", failed(t, res, errors.ErrCodeConflict))
	assert.Equal(t, "a system role cannot be deleted", failed(t, f.svc.DeleteRole(f.ctx, role), errors.ErrCodeConflict))

	require.True(t, f.svc.UpdateRole(f.ctx, role, dto.UpdateRoleRequest{Description: ptr("full access")}).Success)
	got := succeeded(t, f.svc.GetRole(f.ctx, role))
	require.NotNil(t, got)
	assert.True(t, got.IsSystemRole)
	assert.True(t, got.Permissions.Flag("rooms.write"))
}

func TestRolePromotionAndNameUniqueness(t *testing.T) {
	f := newFixture(t)
	role := created(t, f.svc.CreateRole(f.ctx, dto.CreateRoleRequest{Name: "Clerk"}))
	failed(t, f.svc.CreateRole(f.ctx, dto.CreateRoleRequest{Name: "Clerk"}), errors.ErrCodeConflict)

	require.True(t, f.svc.UpdateRole(f.ctx, role, dto.UpdateRoleRequest{IsSystemRole: ptr(true)}).Success)
	failed(t, f.svc.DeleteRole(f.ctx, role), errors.ErrCodeConflict)
}

func TestRoleRejectsMalformedPermissions(t *testing.T) {
	f := newFixture(t)
	perms := models.NewAttributes()
	perms.Values["rooms.write"] = models.Value{Kind: models.KindBool}

	res := f.svc.CreateRole(f.ctx, dto.CreateRoleRequest{Name: "Clerk", Permissions: &perms})
	assert.Contains(t, failed(t, res, errors.ErrCodeValidation), "permissions")
}

func TestUserRoleTripleIsUnique(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	q := f.property("B")
	user := created(t, f.svc.CreateUser(f.ctx, dto.CreateUserRequest{Name: "Grace", Email: "grace@example.com"}))
	role := created(t, f.svc.CreateRole(f.ctx, dto.CreateRoleRequest{Name: "Clerk"}))

	first := created(t, f.svc.CreateUserRole(f.ctx, dto.CreateUserRoleRequest{UserID: user, RoleID: role, PropertyID: p}))
	res := f.svc.CreateUserRole(f.ctx, dto.CreateUserRoleRequest{UserID: user, RoleID: role, PropertyID: p})
	assert.Equal(t, "user already has this role at this property", failed(t, res, errors.ErrCodeConflict))

	second := created(t, f.svc.CreateUserRole(f.ctx, dto.CreateUserRoleRequest{UserID: user, RoleID: role, PropertyID: q, AssignedBy: user}))
	failed(t, f.svc.UpdateUserRole(f.ctx, second, dto.UpdateUserRoleRequest{PropertyID: ptr(p)}), errors.ErrCodeConflict)

	view := succeeded(t, f.svc.GetUserRole(f.ctx, second))
	require.NotNil(t, view)
	require.NotNil(t, view.User)
	require.NotNil(t, view.Role)
	require.NotNil(t, view.Property)
	assert.Equal(t, "B", view.Property.Name)
	_, ok := view.AssignedBy.(dto.ResolvedAssignee)
	assert.True(t, ok)

	assert.Contains(t, failed(t, f.svc.DeleteUser(f.ctx, user), errors.ErrCodeReference), "role assignments")
	assert.Contains(t, failed(t, f.svc.DeleteRole(f.ctx, role), errors.ErrCodeReference), "role assignments")

	require.True(t, f.svc.DeleteUserRole(f.ctx, first).Success)
	require.True(t, f.svc.DeleteUserRole(f.ctx, second).Success)
	assert.True(t, f.svc.DeleteUser(f.ctx, user).Success)
}

func TestUserRoleRequiresAllReferents(t *testing.T) {
	f := newFixture(t)
	p := f.property("A")
	user := created(t, f.svc.CreateUser(f.ctx, dto.CreateUserRequest{Name: "Grace", Email: "grace@example.com"}))
	role := created(t, f.svc.CreateRole(f.ctx, dto.CreateRoleRequest{Name: "Clerk"}))

	res := f.svc.CreateUserRole(f.ctx, dto.CreateUserRoleRequest{UserID: "nobody", RoleID: role, PropertyID: p})
	assert.Equal(t, "user not found", failed(t, res, errors.ErrCodeReference))
	res = f.svc.CreateUserRole(f.ctx, dto.CreateUserRoleRequest{UserID: user, RoleID: "none", PropertyID: p})
	assert.Equal(t, "role not found", failed(t, res, errors.ErrCodeReference))
	res = f.svc.CreateUserRole(f.ctx, dto.CreateUserRoleRequest{UserID: user, RoleID: role, PropertyID: "nowhere"})
	assert.Equal(t, "property not found", failed(t, res, errors.ErrCodeReference))
}

func TestUserEmailIsUnique(t *testing.T) {
	f := newFixture(t)
	created(t, f.svc.CreateUser(f.ctx, dto.CreateUserRequest{Name: "Grace", Email: "grace@example.com"}))

	res := f.svc.CreateUser(f.ctx, dto.CreateUserRequest{Name: "Other", Email: "grace@example.com"})
	assert.Equal(t, "user email already exists", failed(t, res, errors.ErrCodeConflict))
}

func TestUpdateUserRejectsBlankEmail(t *testing.T) {
	f := newFixture(t)
	id := created(t, f.svc.CreateUser(f.ctx, dto.CreateUserRequest{Name: "Grace", Email: "grace@example.com"}))

	res := f.svc.UpdateUser(f.ctx, id, dto.UpdateUserRequest{Email: ptr("")})
	assert.Equal(t, "email is required", failed(t, res, errors.ErrCodeValidation))
	res = f.svc.UpdateUser(f.ctx, id, dto.UpdateUserRequest{Email: ptr("   ")})
	failed(t, res, errors.ErrCodeValidation)

	require.True(t, f.svc.UpdateUser(f.ctx, id, dto.UpdateUserRequest{Email: ptr("grace@navy.test")}).Success)
	user := succeeded(t, f.svc.GetUser(f.ctx, id))
	require.NotNil(t, user)
	assert.Equal(t, "grace@navy.test", user.Email)
}
