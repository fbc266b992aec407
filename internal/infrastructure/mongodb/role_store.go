package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

var _ repository.RoleStore[string, *entity.Role[string]] = (*RoleStore[string, entity.Role[string], *entity.Role[string]])(nil)

// RoleStore persists roles of type R, any struct embedding entity.Role[K].
// Scalar setters and claim changes are written with $set on the touched field only.
type RoleStore[K entity.Key, R any, PR entity.RoleModel[K, R]] struct {
	lifecycle
	roles Collection
	codec KeyCodec[K]
}

func NewRoleStore[K entity.Key, R any, PR entity.RoleModel[K, R]](roles Collection, codec KeyCodec[K]) *RoleStore[K, R, PR] {
	return &RoleStore[K, R, PR]{roles: roles, codec: codec}
}

func (s *RoleStore[K, R, PR]) Codec() KeyCodec[K] { return s.codec }

func (s *RoleStore[K, R, PR]) check(ctx context.Context, role PR) (*entity.Role[K], error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	if role == nil {
		return nil, fmt.Errorf("%w: role is nil", repository.ErrInvalidArgument)
	}
	return role.IdentityRole(), nil
}

func (s *RoleStore[K, R, PR]) Create(ctx context.Context, role PR) (entity.Result, error) {
	r, err := s.check(ctx, role)
	if err != nil {
		return entity.Result{}, err
	}
	r.Normalize()
	if _, err := s.roles.InsertOne(ctx, role); err != nil {
		if isContextErr(err) {
			return entity.Result{}, driverErr(err)
		}
		return entity.Result{}, fmt.Errorf("%w: insert role %s: %w", repository.ErrPersistence, s.codec.Format(r.ID), err)
	}
	return entity.Success(), nil
}

func (s *RoleStore[K, R, PR]) Update(ctx context.Context, role PR) (entity.Result, error) {
	r, err := s.check(ctx, role)
	if err != nil {
		return entity.Result{}, err
	}
	r.Normalize()
	_, err = s.roles.ReplaceOne(ctx, byID(s.codec.Value(r.ID)), role)
	return writeResult(err, repository.CodeUpdateError, "failed to update role "+s.codec.Format(r.ID))
}

func (s *RoleStore[K, R, PR]) Delete(ctx context.Context, role PR) (entity.Result, error) {
	r, err := s.check(ctx, role)
	if err != nil {
		return entity.Result{}, err
	}
	_, err = s.roles.DeleteOne(ctx, byID(s.codec.Value(r.ID)))
	return writeResult(err, repository.CodeDeleteError, "failed to delete role "+s.codec.Format(r.ID))
}

// FindByID parses roleID with the store's key codec. A malformed id is an
// ErrInvalidArgument, a missing role is (nil, nil).
func (s *RoleStore[K, R, PR]) FindByID(ctx context.Context, roleID string) (PR, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	if strings.TrimSpace(roleID) == "" {
		return nil, fmt.Errorf("%w: role id is empty", repository.ErrInvalidArgument)
	}
	id, err := s.codec.Parse(roleID)
	if err != nil {
		return nil, err
	}
	return s.findOne(ctx, byID(s.codec.Value(id)))
}

func (s *RoleStore[K, R, PR]) FindByName(ctx context.Context, normalizedName string) (PR, error) {
	if err := s.enter(ctx); err != nil {
		return nil, err
	}
	return s.findOne(ctx, byField(fieldNormalizedRoleName, normalizedName))
}

func (s *RoleStore[K, R, PR]) findOne(ctx context.Context, filter bson.D) (PR, error) {
	role := PR(new(R))
	if err := s.roles.FindOne(ctx, filter).Decode(role); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, driverErr(err)
	}
	role.IdentityRole().Normalize()
	return role, nil
}

func (s *RoleStore[K, R, PR]) GetRoleID(ctx context.Context, role PR) (string, error) {
	r, err := s.check(ctx, role)
	if err != nil {
		return "", err
	}
	return s.codec.Format(r.ID), nil
}

func (s *RoleStore[K, R, PR]) GetRoleName(ctx context.Context, role PR) (string, error) {
	r, err := s.check(ctx, role)
	if err != nil {
		return "", err
	}
	return r.Name, nil
}

func (s *RoleStore[K, R, PR]) SetRoleName(ctx context.Context, role PR, name string) error {
	r, err := s.check(ctx, role)
	if err != nil {
		return err
	}
	return assign(ctx, s.roles, s.codec.Value(r.ID), fieldRoleName, &r.Name, name)
}

func (s *RoleStore[K, R, PR]) GetNormalizedRoleName(ctx context.Context, role PR) (string, error) {
	r, err := s.check(ctx, role)
	if err != nil {
		return "", err
	}
	return r.NormalizedName, nil
}

func (s *RoleStore[K, R, PR]) SetNormalizedRoleName(ctx context.Context, role PR, normalizedName string) error {
	r, err := s.check(ctx, role)
	if err != nil {
		return err
	}
	return assign(ctx, s.roles, s.codec.Value(r.ID), fieldNormalizedRoleName, &r.NormalizedName, normalizedName)
}

func (s *RoleStore[K, R, PR]) GetClaims(ctx context.Context, role PR) ([]entity.Claim, error) {
	r, err := s.check(ctx, role)
	if err != nil {
		return nil, err
	}
	return r.ClaimManager().Claims(), nil
}

func (s *RoleStore[K, R, PR]) AddClaim(ctx context.Context, role PR, claim entity.Claim) error {
	r, err := s.check(ctx, role)
	if err != nil {
		return err
	}
	if !r.ClaimManager().TryAdd(claim) {
		return nil
	}
	return writeField(ctx, s.roles, s.codec.Value(r.ID), fieldClaims, r.Claims)
}

func (s *RoleStore[K, R, PR]) RemoveClaim(ctx context.Context, role PR, claim entity.Claim) error {
	r, err := s.check(ctx, role)
	if err != nil {
		return err
	}
	if !r.ClaimManager().TryRemove(claim) {
		return nil
	}
	return writeField(ctx, s.roles, s.codec.Value(r.ID), fieldClaims, r.Claims)
}

// assign updates *current in memory and persists it with a single-field $set,
// skipping the write when the value is unchanged.
func assign[T comparable](ctx context.Context, coll Collection, id any, field string, current *T, value T) error {
	if *current == value {
		return nil
	}
	*current = value
	return writeField(ctx, coll, id, field, value)
}

// writeField issues a $set of one field on the document with the given id.
func writeField(ctx context.Context, coll Collection, id any, field string, value any) error {
	_, err := coll.UpdateOne(ctx, byID(id), setField(field, value))
	return driverErr(err)
}
