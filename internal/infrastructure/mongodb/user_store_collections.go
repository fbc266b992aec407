package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

func (s *UserStore[K, U, PU]) GetClaims(ctx context.Context, user PU) ([]entity.Claim, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return nil, err
	}
	return u.ClaimManager().Claims(), nil
}

func (s *UserStore[K, U, PU]) AddClaims(ctx context.Context, user PU, claims ...entity.Claim) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if !u.ClaimManager().TryAdd(claims...) {
		return nil
	}
	return writeField(ctx, s.users, s.idValue(u), fieldClaims, u.Claims)
}

func (s *UserStore[K, U, PU]) ReplaceClaim(ctx context.Context, user PU, claim, newClaim entity.Claim) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if !u.ClaimManager().TryReplace(claim, newClaim) {
		return nil
	}
	return writeField(ctx, s.users, s.idValue(u), fieldClaims, u.Claims)
}

func (s *UserStore[K, U, PU]) RemoveClaims(ctx context.Context, user PU, claims ...entity.Claim) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if !u.ClaimManager().TryRemove(claims...) {
		return nil
	}
	return writeField(ctx, s.users, s.idValue(u), fieldClaims, u.Claims)
}

// GetUsersForClaim returns every user holding a claim with the same type and value.
func (s *UserStore[K, U, PU]) GetUsersForClaim(ctx context.Context, claim entity.Claim) ([]PU, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	return s.findMany(ctx, claimElemMatch(claim))
}

func (s *UserStore[K, U, PU]) AddLogin(ctx context.Context, user PU, login entity.LoginInfo) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if !u.LoginManager().TryAdd(login) {
		return nil
	}
	return writeField(ctx, s.users, s.idValue(u), fieldLogins, u.Logins)
}

func (s *UserStore[K, U, PU]) RemoveLogin(ctx context.Context, user PU, loginProvider, providerKey string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if !u.LoginManager().TryRemove(entity.LoginInfo{LoginProvider: loginProvider, ProviderKey: providerKey}) {
		return nil
	}
	return writeField(ctx, s.users, s.idValue(u), fieldLogins, u.Logins)
}

func (s *UserStore[K, U, PU]) GetLogins(ctx context.Context, user PU) ([]entity.LoginInfo, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return nil, err
	}
	return u.LoginManager().Logins(), nil
}

// FindUserLogin locates a login across all users without loading whole documents.
func (s *UserStore[K, U, PU]) FindUserLogin(ctx context.Context, loginProvider, providerKey string) (*entity.UserLogin[K], error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	return aggregateOne[entity.UserLogin[K]](ctx, s.users, loginPipeline(nil, loginProvider, providerKey))
}

func (s *UserStore[K, U, PU]) FindUserLoginForUser(ctx context.Context, userID K, loginProvider, providerKey string) (*entity.UserLogin[K], error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	if entity.IsZeroKey(userID) {
		return nil, fmt.Errorf("%w: user id is empty", repository.ErrInvalidArgument)
	}
	return aggregateOne[entity.UserLogin[K]](ctx, s.users, loginPipeline(s.codec.Value(userID), loginProvider, providerKey))
}

// FindByLogin returns the user owning the given login.
func (s *UserStore[K, U, PU]) FindByLogin(ctx context.Context, loginProvider, providerKey string) (PU, error) {
	login, err := s.FindUserLogin(ctx, loginProvider, providerKey)
	if err != nil || login == nil {
		return nil, err
	}
	return s.findOne(ctx, byID(s.codec.Value(login.UserID)))
}

func (s *UserStore[K, U, PU]) findRole(ctx context.Context, normalizedRoleName string) (*entity.Role[K], error) {
	if s.roles == nil {
		return nil, repository.ErrRolesUnavailable
	}
	var role entity.Role[K]
	if err := s.roles.FindOne(ctx, byField(fieldNormalizedRoleName, normalizedRoleName)).Decode(&role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, driverErr(err)
	}
	return &role, nil
}

func requireRoleName(normalizedRoleName string) error {
	if strings.TrimSpace(normalizedRoleName) == "" {
		return fmt.Errorf("%w: role name is empty", repository.ErrInvalidArgument)
	}
	return nil
}

// AddToRole adds a snapshot of the named role to the user. The role must exist.
func (s *UserStore[K, U, PU]) AddToRole(ctx context.Context, user PU, normalizedRoleName string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if err := requireRoleName(normalizedRoleName); err != nil {
		return err
	}
	role, err := s.findRole(ctx, normalizedRoleName)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("%w: %s", repository.ErrRoleNotFound, normalizedRoleName)
	}
	if !u.RoleManager().TryAdd(role.Reference()) {
		return nil
	}
	return writeField(ctx, s.users, s.idValue(u), fieldRoles, u.Roles)
}

func (s *UserStore[K, U, PU]) RemoveFromRole(ctx context.Context, user PU, normalizedRoleName string) error {
	u, err := s.check(ctx, user)
	if err != nil {
		return err
	}
	if err := requireRoleName(normalizedRoleName); err != nil {
		return err
	}
	if s.roles == nil {
		return repository.ErrRolesUnavailable
	}
	if !u.RoleManager().TryRemove(normalizedRoleName) {
		return nil
	}
	return writeField(ctx, s.users, s.idValue(u), fieldRoles, u.Roles)
}

// GetRoles returns the names recorded on the user's role references.
func (s *UserStore[K, U, PU]) GetRoles(ctx context.Context, user PU) ([]string, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names, nil
}

func (s *UserStore[K, U, PU]) IsInRole(ctx context.Context, user PU, normalizedRoleName string) (bool, error) {
	u, err := s.check(ctx, user)
	if err != nil {
		return false, err
	}
	if err := requireRoleName(normalizedRoleName); err != nil {
		return false, err
	}
	role, err := s.findRole(ctx, normalizedRoleName)
	if err != nil || role == nil {
		return false, err
	}
	return u.RoleManager().Has(role.ID), nil
}

// FindUserRole reports the membership of one user in one role, or nil.
func (s *UserStore[K, U, PU]) FindUserRole(ctx context.Context, userID, roleID K) (*entity.UserRole[K], error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	if entity.IsZeroKey(userID) || entity.IsZeroKey(roleID) {
		return nil, fmt.Errorf("%w: user and role ids are required", repository.ErrInvalidArgument)
	}
	return aggregateOne[entity.UserRole[K]](ctx, s.users, rolePipeline(s.codec.Value(userID), s.codec.Value(roleID)))
}

func (s *UserStore[K, U, PU]) GetUsersInRole(ctx context.Context, normalizedRoleName string) ([]PU, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	if err := requireRoleName(normalizedRoleName); err != nil {
		return nil, err
	}
	role, err := s.findRole(ctx, normalizedRoleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return []PU{}, nil
	}
	return s.findMany(ctx, roleElemMatch(s.codec.Value(role.ID)))
}

// aggregateOne runs pipeline and decodes its first row, or returns nil.
func aggregateOne[T any](ctx context.Context, coll Collection, pipeline mongo.Pipeline) (*T, error) {
	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, driverErr(err)
	}
	defer func() { _ = cur.Close(ctx) }()

	if !cur.Next(ctx) {
		return nil, driverErr(cur.Err())
	}
	var out T
	if err := cur.Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}
