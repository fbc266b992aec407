package repository

import (
	"context"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
)

// RoleStore defines the persistence operations for roles and their claims.
type RoleStore[K entity.Key, PR any] interface {
	Create(ctx context.Context, role PR) (entity.Result, error)
	Update(ctx context.Context, role PR) (entity.Result, error)
	Delete(ctx context.Context, role PR) (entity.Result, error)
	FindByID(ctx context.Context, roleID string) (PR, error)
	FindByName(ctx context.Context, normalizedName string) (PR, error)

	GetRoleID(ctx context.Context, role PR) (string, error)
	GetRoleName(ctx context.Context, role PR) (string, error)
	SetRoleName(ctx context.Context, role PR, name string) error
	GetNormalizedRoleName(ctx context.Context, role PR) (string, error)
	SetNormalizedRoleName(ctx context.Context, role PR, normalizedName string) error

	GetClaims(ctx context.Context, role PR) ([]entity.Claim, error)
	AddClaim(ctx context.Context, role PR, claim entity.Claim) error
	RemoveClaim(ctx context.Context, role PR, claim entity.Claim) error

	Close() error
}
