package repository

import (
	"context"
	"time"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
)

// UserOnlyStore is the user store contract for deployments without roles.
// Find operations return a nil user and a nil error when nothing matches.
type UserOnlyStore[K entity.Key, PU any] interface {
	Create(ctx context.Context, user PU) (entity.Result, error)
	Update(ctx context.Context, user PU) (entity.Result, error)
	Delete(ctx context.Context, user PU) (entity.Result, error)
	FindByID(ctx context.Context, userID string) (PU, error)
	FindByName(ctx context.Context, normalizedUserName string) (PU, error)
	FindByEmail(ctx context.Context, normalizedEmail string) (PU, error)

	GetUserID(ctx context.Context, user PU) (string, error)
	GetUserName(ctx context.Context, user PU) (string, error)
	SetUserName(ctx context.Context, user PU, userName string) error
	GetNormalizedUserName(ctx context.Context, user PU) (string, error)
	SetNormalizedUserName(ctx context.Context, user PU, normalizedName string) error
	GetEmail(ctx context.Context, user PU) (string, error)
	SetEmail(ctx context.Context, user PU, email string) error
	GetNormalizedEmail(ctx context.Context, user PU) (string, error)
	SetNormalizedEmail(ctx context.Context, user PU, normalizedEmail string) error
	GetEmailConfirmed(ctx context.Context, user PU) (bool, error)
	SetEmailConfirmed(ctx context.Context, user PU, confirmed bool) error
	GetPasswordHash(ctx context.Context, user PU) (string, error)
	SetPasswordHash(ctx context.Context, user PU, hash string) error
	HasPassword(ctx context.Context, user PU) (bool, error)
	GetPhoneNumber(ctx context.Context, user PU) (string, error)
	SetPhoneNumber(ctx context.Context, user PU, phone string) error
	GetPhoneNumberConfirmed(ctx context.Context, user PU) (bool, error)
	SetPhoneNumberConfirmed(ctx context.Context, user PU, confirmed bool) error
	GetSecurityStamp(ctx context.Context, user PU) (string, error)
	SetSecurityStamp(ctx context.Context, user PU, stamp string) error
	GetTwoFactorEnabled(ctx context.Context, user PU) (bool, error)
	SetTwoFactorEnabled(ctx context.Context, user PU, enabled bool) error
	GetLockoutEnd(ctx context.Context, user PU) (*time.Time, error)
	SetLockoutEnd(ctx context.Context, user PU, end *time.Time) error
	GetLockoutEnabled(ctx context.Context, user PU) (bool, error)
	SetLockoutEnabled(ctx context.Context, user PU, enabled bool) error
	GetAccessFailedCount(ctx context.Context, user PU) (int, error)
	IncrementAccessFailedCount(ctx context.Context, user PU) (int, error)
	ResetAccessFailedCount(ctx context.Context, user PU) error

	GetClaims(ctx context.Context, user PU) ([]entity.Claim, error)
	AddClaims(ctx context.Context, user PU, claims ...entity.Claim) error
	ReplaceClaim(ctx context.Context, user PU, claim, newClaim entity.Claim) error
	RemoveClaims(ctx context.Context, user PU, claims ...entity.Claim) error
	GetUsersForClaim(ctx context.Context, claim entity.Claim) ([]PU, error)

	AddLogin(ctx context.Context, user PU, login entity.LoginInfo) error
	RemoveLogin(ctx context.Context, user PU, loginProvider, providerKey string) error
	GetLogins(ctx context.Context, user PU) ([]entity.LoginInfo, error)
	FindUserLogin(ctx context.Context, loginProvider, providerKey string) (*entity.UserLogin[K], error)
	FindUserLoginForUser(ctx context.Context, userID K, loginProvider, providerKey string) (*entity.UserLogin[K], error)
	FindByLogin(ctx context.Context, loginProvider, providerKey string) (PU, error)

	SetToken(ctx context.Context, user PU, loginProvider, name, value string) error
	GetToken(ctx context.Context, user PU, loginProvider, name string) (string, bool, error)
	RemoveToken(ctx context.Context, user PU, loginProvider, name string) error
	FindToken(ctx context.Context, user PU, loginProvider, name string) (*entity.UserToken[K], error)

	SetAuthenticatorKey(ctx context.Context, user PU, key string) error
	GetAuthenticatorKey(ctx context.Context, user PU) (string, error)
	ReplaceRecoveryCodes(ctx context.Context, user PU, codes []string) error
	RedeemRecoveryCode(ctx context.Context, user PU, code string) (bool, error)
	CountRecoveryCodes(ctx context.Context, user PU) (int, error)

	Close() error
}

// UserStore adds role membership to UserOnlyStore.
type UserStore[K entity.Key, PU any] interface {
	UserOnlyStore[K, PU]

	AddToRole(ctx context.Context, user PU, normalizedRoleName string) error
	RemoveFromRole(ctx context.Context, user PU, normalizedRoleName string) error
	GetRoles(ctx context.Context, user PU) ([]string, error)
	IsInRole(ctx context.Context, user PU, normalizedRoleName string) (bool, error)
	FindUserRole(ctx context.Context, userID, roleID K) (*entity.UserRole[K], error)
	GetUsersInRole(ctx context.Context, normalizedRoleName string) ([]PU, error)
}
