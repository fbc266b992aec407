package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
)

func (s *Service[K]) CreateRole(ctx context.Context, name string) (*entity.Role[K], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	fields := logrus.Fields{"role": name}
	existing, err := s.Roles.FindByName(ctx, Normalize(name))
	if err != nil {
		return nil, s.fail("find role", err, fields)
	}
	if existing != nil {
		return nil, ErrConflict
	}

	role := entity.NewRole[K](name)
	role.NormalizedName = Normalize(name)
	res, err := s.Roles.Create(ctx, role)
	if err := s.checkResult("create role", res, err, fields); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service[K]) GetRole(ctx context.Context, id string) (*entity.Role[K], error) {
	role, err := s.Roles.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("find role", err, logrus.Fields{"role_id": id})
	}
	if role == nil {
		return nil, ErrRoleNotFound
	}
	return role, nil
}

// RenameRole changes the display and normalized names. Users keep the role
// reference snapshot they were assigned with.
func (s *Service[K]) RenameRole(ctx context.Context, id, name string) (*entity.Role[K], error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	fields := logrus.Fields{"role_id": id, "role": name}
	if Normalize(name) != role.NormalizedName {
		clash, err := s.Roles.FindByName(ctx, Normalize(name))
		if err != nil {
			return nil, s.fail("find role", err, fields)
		}
		if clash != nil {
			return nil, ErrConflict
		}
	}
	if err := s.Roles.SetRoleName(ctx, role, name); err != nil {
		return nil, s.fail("set role name", err, fields)
	}
	if err := s.Roles.SetNormalizedRoleName(ctx, role, Normalize(name)); err != nil {
		return nil, s.fail("set normalized role name", err, fields)
	}
	return role, nil
}

func (s *Service[K]) DeleteRole(ctx context.Context, id string) error {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.Roles.Delete(ctx, role)
	return s.checkResult("delete role", res, err, logrus.Fields{"role_id": id})
}

func (s *Service[K]) AddRoleClaim(ctx context.Context, id string, claim entity.Claim) (*entity.Role[K], error) {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Roles.AddClaim(ctx, role, claim); err != nil {
		return nil, s.fail("add role claim", err, logrus.Fields{"role_id": id, "claim_type": claim.Type})
	}
	return role, nil
}

func (s *Service[K]) RemoveRoleClaim(ctx context.Context, id string, claim entity.Claim) (*entity.Role[K], error) {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.Roles.RemoveClaim(ctx, role, claim); err != nil {
		return nil, s.fail("remove role claim", err, logrus.Fields{"role_id": id, "claim_type": claim.Type})
	}
	return role, nil
}

// RoleUsers lists the users holding the role.
func (s *Service[K]) RoleUsers(ctx context.Context, id string) ([]*entity.User[K], error) {
	role, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.GetUsersInRole(ctx, role.NormalizedName)
	if err != nil {
		return nil, s.fail("list users in role", err, logrus.Fields{"role_id": id})
	}
	return users, nil
}
