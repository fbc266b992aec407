package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	repo "github.com/oksasatya/identity-mongo/internal/domain/repository"
	"github.com/oksasatya/identity-mongo/pkg/helpers"
)

// AdminRole is the normalized name of the role allowed to use the admin API.
const AdminRole = "ADMIN"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrLockedOut          = errors.New("account locked out")
	ErrForbidden          = errors.New("admin role required")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrOperationFailed    = errors.New("identity operation failed")
)

// Service is the identity admin use-case layer over the user and role stores.
type Service[K entity.Key] struct {
	Users  UserRepository[K]
	Roles  RoleRepository[K]
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger

	MaxFailedAccess int
	LockoutDuration time.Duration
	now             func() time.Time
}

func NewService[K entity.Key](users UserRepository[K], roles RoleRepository[K], jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *Service[K] {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service[K]{
		Users:           users,
		Roles:           roles,
		JWT:             jwt,
		Redis:           rdb,
		Logger:          logger,
		MaxFailedAccess: 5,
		LockoutDuration: 5 * time.Minute,
		now:             time.Now,
	}
}

// Normalize is the lookup form of user and role names.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func sessionKey(userID string) string {
	return "identity:session:" + userID
}

// fail maps store errors onto service errors. Only unexpected failures are logged.
func (s *Service[K]) fail(op string, err error, fields logrus.Fields) error {
	switch {
	case errors.Is(err, repo.ErrInvalidArgument):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, repo.ErrRoleNotFound):
		return ErrRoleNotFound
	case errors.Is(err, repo.ErrUserNotFound):
		return ErrUserNotFound
	}
	helpers.LogError(s.Logger, op+" failed", err, fields)
	return fmt.Errorf("%w: %s", ErrOperationFailed, op)
}

func (s *Service[K]) checkResult(op string, res entity.Result, err error, fields logrus.Fields) error {
	if err != nil {
		return s.fail(op, err, fields)
	}
	if !res.Succeeded {
		if fields == nil {
			fields = logrus.Fields{}
		}
		fields["result"] = res.String()
		s.Logger.WithFields(fields).Warn(op + " rejected by store")
		return fmt.Errorf("%w: %s", ErrOperationFailed, res)
	}
	return nil
}

type LoginResult struct {
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Roles       []string  `json:"roles"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Login authenticates an admin by user name and password and issues an access token.
// Failed attempts count towards lockout.
func (s *Service[K]) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	u, err := s.Users.FindByName(ctx, Normalize(userName))
	if err != nil {
		return nil, s.fail("find user for login", err, logrus.Fields{"user_name": userName})
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	now := s.now()
	if u.IsLockedOut(now) {
		return nil, ErrLockedOut
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		s.recordFailedAccess(ctx, u, now)
		return nil, ErrInvalidCredentials
	}
	isAdmin, err := s.Users.IsInRole(ctx, u, AdminRole)
	if err != nil {
		return nil, s.fail("check admin role", err, logrus.Fields{"user_name": userName})
	}
	if !isAdmin {
		return nil, ErrForbidden
	}
	if u.AccessFailedCount > 0 {
		if err := s.Users.ResetAccessFailedCount(ctx, u); err != nil {
			return nil, s.fail("reset access failed count", err, logrus.Fields{"user_name": userName})
		}
	}

	id, err := s.Users.GetUserID(ctx, u)
	if err != nil {
		return nil, s.fail("read user id", err, nil)
	}
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, r.NormalizedName)
	}
	token, exp, err := s.JWT.GenerateAccessToken(id, roles)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", id).Error("generate access token failed")
		return nil, fmt.Errorf("%w: issue token", ErrOperationFailed)
	}
	s.storeSession(ctx, id, u.UserName, exp)

	helpers.LogInfo(s.Logger, "admin logged in", logrus.Fields{"user_id": id})
	return &LoginResult{UserID: id, UserName: u.UserName, Roles: roles, AccessToken: token, ExpiresAt: exp}, nil
}

func (s *Service[K]) recordFailedAccess(ctx context.Context, u *entity.User[K], now time.Time) {
	count, err := s.Users.IncrementAccessFailedCount(ctx, u)
	if err != nil {
		s.Logger.WithError(err).Warn("increment access failed count")
		return
	}
	if !u.LockoutEnabled || s.MaxFailedAccess <= 0 || count < s.MaxFailedAccess {
		return
	}
	end := now.Add(s.LockoutDuration)
	if err := s.Users.SetLockoutEnd(ctx, u, &end); err != nil {
		s.Logger.WithError(err).Warn("set lockout end")
		return
	}
	if err := s.Users.ResetAccessFailedCount(ctx, u); err != nil {
		s.Logger.WithError(err).Warn("reset access failed count")
	}
	s.Logger.WithField("user_name", u.UserName).Warn("user locked out")
}

func (s *Service[K]) storeSession(ctx context.Context, userID, userName string, exp time.Time) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(userID)
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    userID,
		"user_name":  userName,
		"created_at": s.now().UTC().Format(time.RFC3339Nano),
	})
	pipe.ExpireAt(ctx, key, exp)
	if _, err := pipe.Exec(ctx); err != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

// HasSession reports whether an admin session is recorded for userID. Without
// redis every token is accepted on its signature alone.
func (s *Service[K]) HasSession(ctx context.Context, userID string) bool {
	if s.Redis == nil {
		return true
	}
	n, err := s.Redis.Exists(ctx, sessionKey(userID)).Result()
	if err != nil {
		s.Logger.WithError(err).Warn("session lookup failed")
		return true
	}
	return n > 0
}

// Logout drops the admin session.
func (s *Service[K]) Logout(ctx context.Context, userID string) {
	if s.Redis == nil || userID == "" {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil {
		s.Logger.WithError(err).Warn("delete session failed")
	}
}
