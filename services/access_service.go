package services

import (
	"context"

	"backoffice/dto"
	"backoffice/errors"
	"backoffice/models"
	"backoffice/repository"
	"backoffice/response"
	"backoffice/validator"
)

func (s *Service) CreateUser(ctx context.Context, req dto.CreateUserRequest) response.Result[response.Empty] {
	return write(s, ctx, "createUser", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		u := models.User{
			Name:     text(req.Name),
			Email:    text(req.Email),
			IsActive: boolOr(req.IsActive, true),
		}
		if err := validator.Required("name", u.Name); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("users", "*"), func() error {
			if err := s.checkUserUnique(ctx, u, ""); err != nil {
				return err
			}
			created, err := s.store.Users.Insert(ctx, u)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyUserUpdate(u *models.User, req dto.UpdateUserRequest) {
	if req.Name != nil {
		u.Name = *textPtr(req.Name)
	}
	if req.Email != nil {
		u.Email = *textPtr(req.Email)
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
}

func (s *Service) UpdateUser(ctx context.Context, id string, req dto.UpdateUserRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateUser", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Users, id, kindUser)
		if err != nil {
			return "", err
		}
		merged := current
		applyUserUpdate(&merged, req)
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		if err := validator.Required("email", merged.Email); err != nil {
			return "", err
		}
		return "", s.withLock(ctx, scope("users", "*"), func() error {
			if err := s.checkUserUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.Users.Patch(ctx, current.ID, func(u *models.User) error {
				applyUserUpdate(u, req)
				return nil
			})
			return err
		})
	})
}

// DeleteUser refuses while the user still holds role assignments.
func (s *Service) DeleteUser(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteUser", func(ctx context.Context) (string, error) {
		u, err := load(ctx, s.store.Users, id, kindUser)
		if err != nil {
			return "", err
		}
		if err := s.refuseIfReferenced(ctx, kindUser, u.ID); err != nil {
			return "", err
		}
		return "", s.store.Users.Delete(ctx, u.ID)
	})
}

func (s *Service) GetUser(ctx context.Context, id string) response.Result[*models.User] {
	return read(s, ctx, "getUser", func(ctx context.Context) (*models.User, error) {
		return repository.Find(ctx, s.store.Users, text(id))
	})
}

func (s *Service) ListUsers(ctx context.Context, req dto.PageRequest) response.Result[dto.Page[models.User]] {
	return read(s, ctx, "listUsers", func(ctx context.Context) (dto.Page[models.User], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.User]{}, err
		}
		filter := searchFilter(q.term, func(u models.User) []string { return []string{u.Name, u.Email} })
		return paginate[models.User](ctx, s.store.Users, "", "", q, filter, identity[models.User])
	})
}

func (s *Service) CreateRole(ctx context.Context, req dto.CreateRoleRequest) response.Result[response.Empty] {
	return write(s, ctx, "createRole", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		if err := validator.ValidateAttributes("permissions", req.Permissions); err != nil {
			return "", err
		}
		role := models.Role{
			Name:         text(req.Name),
			Description:  text(req.Description),
			Permissions:  models.NewAttributes(),
			IsSystemRole: req.IsSystemRole,
		}
		if req.Permissions != nil {
			role.Permissions = *req.Permissions
		}
		if err := validator.Required("name", role.Name); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("roles", "*"), func() error {
			if err := s.checkRoleUnique(ctx, role, ""); err != nil {
				return err
			}
			created, err := s.store.Roles.Insert(ctx, role)
			id = created.ID
			return err
		})
		return id, err
	})
}

// applyRoleUpdate refuses to demote a system role.
func applyRoleUpdate(role *models.Role, req dto.UpdateRoleRequest) error {
	if req.IsSystemRole != nil {
		if role.IsSystemRole && !*req.IsSystemRole {
			return errors.Conflict("a system role cannot be demoted")
		}
		role.IsSystemRole = *req.IsSystemRole
	}
	if req.Name != nil {
		role.Name = *textPtr(req.Name)
	}
	if req.Description != nil {
		role.Description = *textPtr(req.Description)
	}
	if req.Permissions != nil {
		role.Permissions = *req.Permissions
	}
	return nil
}

func (s *Service) UpdateRole(ctx context.Context, id string, req dto.UpdateRoleRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateRole", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		if err := validator.ValidateAttributes("permissions", req.Permissions); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.Roles, id, kindRole)
		if err != nil {
			return "", err
		}
		merged := current
		if err := applyRoleUpdate(&merged, req); err != nil {
			return "", err
		}
		if err := validator.Required("name", merged.Name); err != nil {
			return "", err
		}
		return "", s.withLock(ctx, scope("roles", "*"), func() error {
			if err := s.checkRoleUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.Roles.Patch(ctx, current.ID, func(role *models.Role) error {
				return applyRoleUpdate(role, req)
			})
			return err
		})
	})
}

// DeleteRole refuses for system roles and for roles still assigned.
func (s *Service) DeleteRole(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteRole", func(ctx context.Context) (string, error) {
		role, err := load(ctx, s.store.Roles, id, kindRole)
		if err != nil {
			return "", err
		}
		if role.IsSystemRole {
			return "", errors.Conflict("a system role cannot be deleted")
		}
		if err := s.refuseIfReferenced(ctx, kindRole, role.ID); err != nil {
			return "", err
		}
		return "", s.store.Roles.Delete(ctx, role.ID)
	})
}

func (s *Service) GetRole(ctx context.Context, id string) response.Result[*models.Role] {
	return read(s, ctx, "getRole", func(ctx context.Context) (*models.Role, error) {
		return repository.Find(ctx, s.store.Roles, text(id))
	})
}

func (s *Service) ListRoles(ctx context.Context, req dto.PageRequest) response.Result[dto.Page[models.Role]] {
	return read(s, ctx, "listRoles", func(ctx context.Context) (dto.Page[models.Role], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[models.Role]{}, err
		}
		filter := searchFilter(q.term, func(r models.Role) []string { return []string{r.Name, r.Description} })
		return paginate[models.Role](ctx, s.store.Roles, "", "", q, filter, identity[models.Role])
	})
}

// requireUserRoleReferents checks that user, role and property all exist.
func (s *Service) requireUserRoleReferents(ctx context.Context, ur models.UserRole) error {
	if _, err := requireRow(ctx, s.store.Users, ur.UserID, "user"); err != nil {
		return err
	}
	if _, err := requireRow(ctx, s.store.Roles, ur.RoleID, "role"); err != nil {
		return err
	}
	_, err := s.requireProperty(ctx, ur.PropertyID)
	return err
}

func (s *Service) CreateUserRole(ctx context.Context, req dto.CreateUserRoleRequest) response.Result[response.Empty] {
	return write(s, ctx, "createUserRole", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		ur := models.UserRole{
			UserID:     text(req.UserID),
			RoleID:     text(req.RoleID),
			PropertyID: text(req.PropertyID),
			AssignedBy: text(req.AssignedBy),
		}
		if err := s.requireUserRoleReferents(ctx, ur); err != nil {
			return "", err
		}
		var id string
		err := s.withLock(ctx, scope("user_roles", ur.UserID), func() error {
			if err := s.checkUserRoleUnique(ctx, ur, ""); err != nil {
				return err
			}
			created, err := s.store.UserRoles.Insert(ctx, ur)
			id = created.ID
			return err
		})
		return id, err
	})
}

func applyUserRoleUpdate(ur *models.UserRole, req dto.UpdateUserRoleRequest) {
	if req.UserID != nil {
		ur.UserID = *textPtr(req.UserID)
	}
	if req.RoleID != nil {
		ur.RoleID = *textPtr(req.RoleID)
	}
	if req.PropertyID != nil {
		ur.PropertyID = *textPtr(req.PropertyID)
	}
	if req.AssignedBy != nil {
		ur.AssignedBy = *textPtr(req.AssignedBy)
	}
}

// UpdateUserRole re-checks all three referents and the triple, whichever
// fields change. Moving an assignment to another user takes both users'
// locks.
func (s *Service) UpdateUserRole(ctx context.Context, id string, req dto.UpdateUserRoleRequest) response.Result[response.Empty] {
	return write(s, ctx, "updateUserRole", func(ctx context.Context) (string, error) {
		if err := validator.Struct(&req); err != nil {
			return "", err
		}
		current, err := load(ctx, s.store.UserRoles, id, "role assignment")
		if err != nil {
			return "", err
		}
		merged := current
		applyUserRoleUpdate(&merged, req)
		if err := s.requireUserRoleReferents(ctx, merged); err != nil {
			return "", err
		}
		update := func() error {
			if err := s.checkUserRoleUnique(ctx, merged, current.ID); err != nil {
				return err
			}
			_, err := s.store.UserRoles.Patch(ctx, current.ID, func(ur *models.UserRole) error {
				applyUserRoleUpdate(ur, req)
				return nil
			})
			return err
		}
		if merged.UserID == current.UserID {
			return "", s.withLock(ctx, scope("user_roles", merged.UserID), update)
		}
		first, second := current.UserID, merged.UserID
		if second < first {
			first, second = second, first
		}
		return "", s.withLock(ctx, scope("user_roles", first), func() error {
			return s.withLock(ctx, scope("user_roles", second), update)
		})
	})
}

func (s *Service) DeleteUserRole(ctx context.Context, id string) response.Result[response.Empty] {
	return write(s, ctx, "deleteUserRole", func(ctx context.Context) (string, error) {
		ur, err := load(ctx, s.store.UserRoles, id, "role assignment")
		if err != nil {
			return "", err
		}
		return "", s.store.UserRoles.Delete(ctx, ur.ID)
	})
}

func (s *Service) GetUserRole(ctx context.Context, id string) response.Result[*dto.UserRoleView] {
	return read(s, ctx, "getUserRole", func(ctx context.Context) (*dto.UserRoleView, error) {
		ur, err := repository.Find(ctx, s.store.UserRoles, text(id))
		if err != nil || ur == nil {
			return nil, err
		}
		view := s.userRoleView(ctx, *ur)
		return &view, nil
	})
}

func (s *Service) ListUserRoles(ctx context.Context, propertyID string, req dto.PageRequest) response.Result[dto.Page[dto.UserRoleView]] {
	return read(s, ctx, "listUserRoles", func(ctx context.Context) (dto.Page[dto.UserRoleView], error) {
		q, err := s.parsePage(req)
		if err != nil {
			return dto.Page[dto.UserRoleView]{}, err
		}
		return paginate[models.UserRole](ctx, s.store.UserRoles, repository.ByProperty, text(propertyID), q, nil,
			func(ur models.UserRole) dto.UserRoleView { return s.userRoleView(ctx, ur) })
	})
}
