package application

import (
	"context"
	"time"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// UserRepository is the slice of the user store the admin service drives.
type UserRepository[K entity.Key] interface {
	Create(ctx context.Context, user *entity.User[K]) (entity.Result, error)
	Delete(ctx context.Context, user *entity.User[K]) (entity.Result, error)
	FindByID(ctx context.Context, userID string) (*entity.User[K], error)
	FindByName(ctx context.Context, normalizedUserName string) (*entity.User[K], error)
	FindByLogin(ctx context.Context, loginProvider, providerKey string) (*entity.User[K], error)
	GetUserID(ctx context.Context, user *entity.User[K]) (string, error)
	GetUsersForClaim(ctx context.Context, claim entity.Claim) ([]*entity.User[K], error)
	GetUsersInRole(ctx context.Context, normalizedRoleName string) ([]*entity.User[K], error)

	AddToRole(ctx context.Context, user *entity.User[K], normalizedRoleName string) error
	RemoveFromRole(ctx context.Context, user *entity.User[K], normalizedRoleName string) error
	IsInRole(ctx context.Context, user *entity.User[K], normalizedRoleName string) (bool, error)

	AddClaims(ctx context.Context, user *entity.User[K], claims ...entity.Claim) error
	RemoveClaims(ctx context.Context, user *entity.User[K], claims ...entity.Claim) error
	AddLogin(ctx context.Context, user *entity.User[K], login entity.LoginInfo) error
	RemoveLogin(ctx context.Context, user *entity.User[K], loginProvider, providerKey string) error
	SetToken(ctx context.Context, user *entity.User[K], loginProvider, name, value string) error
	RemoveToken(ctx context.Context, user *entity.User[K], loginProvider, name string) error

	ReplaceRecoveryCodes(ctx context.Context, user *entity.User[K], codes []string) error
	CountRecoveryCodes(ctx context.Context, user *entity.User[K]) (int, error)

	IncrementAccessFailedCount(ctx context.Context, user *entity.User[K]) (int, error)
	ResetAccessFailedCount(ctx context.Context, user *entity.User[K]) error
	SetLockoutEnd(ctx context.Context, user *entity.User[K], end *time.Time) error
}

// RoleRepository is the slice of the role store the admin service drives.
type RoleRepository[K entity.Key] interface {
	Create(ctx context.Context, role *entity.Role[K]) (entity.Result, error)
	Delete(ctx context.Context, role *entity.Role[K]) (entity.Result, error)
	FindByID(ctx context.Context, roleID string) (*entity.Role[K], error)
	FindByName(ctx context.Context, normalizedName string) (*entity.Role[K], error)
	SetRoleName(ctx context.Context, role *entity.Role[K], name string) error
	SetNormalizedRoleName(ctx context.Context, role *entity.Role[K], normalizedName string) error
	AddClaim(ctx context.Context, role *entity.Role[K], claim entity.Claim) error
	RemoveClaim(ctx context.Context, role *entity.Role[K], claim entity.Claim) error
}
