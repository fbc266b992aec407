package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/pkg/helpers"
)

type CreateUserInput struct {
	UserName    string
	Email       string
	Password    string
	PhoneNumber string
}

func (s *Service[K]) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User[K], error) {
	userName := strings.TrimSpace(in.UserName)
	if userName == "" {
		return nil, ErrInvalidInput
	}
	fields := logrus.Fields{"user_name": userName}
	existing, err := s.Users.FindByName(ctx, Normalize(userName))
	if err != nil {
		return nil, s.fail("find user", err, fields)
	}
	if existing != nil {
		return nil, ErrConflict
	}

	u := entity.NewUser[K](userName)
	u.NormalizedUserName = Normalize(userName)
	u.Email = strings.TrimSpace(in.Email)
	u.NormalizedEmail = Normalize(in.Email)
	u.PhoneNumber = in.PhoneNumber
	if in.Password != "" {
		hash, err := helpers.HashPassword(in.Password)
		if err != nil {
			s.Logger.WithError(err).Error("hash password failed")
			return nil, ErrOperationFailed
		}
		u.PasswordHash = hash
	}
	res, err := s.Users.Create(ctx, u)
	if err := s.checkResult("create user", res, err, fields); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service[K]) GetUser(ctx context.Context, id string) (*entity.User[K], error) {
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, s.fail("find user", err, logrus.Fields{"user_id": id})
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service[K]) DeleteUser(ctx context.Context, id string) error {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	res, err := s.Users.Delete(ctx, u)
	if err := s.checkResult("delete user", res, err, logrus.Fields{"user_id": id}); err != nil {
		return err
	}
	s.Logout(ctx, id)
	return nil
}

func (s *Service[K]) UsersForClaim(ctx context.Context, claim entity.Claim) ([]*entity.User[K], error) {
	if claim.Type == "" {
		return nil, ErrInvalidInput
	}
	users, err := s.Users.GetUsersForClaim(ctx, claim)
	if err != nil {
		return nil, s.fail("list users for claim", err, logrus.Fields{"claim_type": claim.Type})
	}
	return users, nil
}

func (s *Service[K]) AddUserToRole(ctx context.Context, id, roleName string) (*entity.User[K], error) {
	return s.mutateUser(ctx, id, "add user to role", func(u *entity.User[K]) error {
		return s.Users.AddToRole(ctx, u, Normalize(roleName))
	})
}

func (s *Service[K]) RemoveUserFromRole(ctx context.Context, id, roleName string) (*entity.User[K], error) {
	return s.mutateUser(ctx, id, "remove user from role", func(u *entity.User[K]) error {
		return s.Users.RemoveFromRole(ctx, u, Normalize(roleName))
	})
}

func (s *Service[K]) AddUserClaim(ctx context.Context, id string, claim entity.Claim) (*entity.User[K], error) {
	return s.mutateUser(ctx, id, "add user claim", func(u *entity.User[K]) error {
		return s.Users.AddClaims(ctx, u, claim)
	})
}

func (s *Service[K]) RemoveUserClaim(ctx context.Context, id string, claim entity.Claim) (*entity.User[K], error) {
	return s.mutateUser(ctx, id, "remove user claim", func(u *entity.User[K]) error {
		return s.Users.RemoveClaims(ctx, u, claim)
	})
}

// AddUserLogin links an external login. A login already linked to another
// user is a conflict.
func (s *Service[K]) AddUserLogin(ctx context.Context, id string, login entity.LoginInfo) (*entity.User[K], error) {
	owner, err := s.Users.FindByLogin(ctx, login.LoginProvider, login.ProviderKey)
	if err != nil {
		return nil, s.fail("find user by login", err, logrus.Fields{"login_provider": login.LoginProvider})
	}
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner != nil && owner.ID != u.ID {
		return nil, ErrConflict
	}
	if err := s.Users.AddLogin(ctx, u, login); err != nil {
		return nil, s.fail("add user login", err, logrus.Fields{"user_id": id, "login_provider": login.LoginProvider})
	}
	return u, nil
}

func (s *Service[K]) RemoveUserLogin(ctx context.Context, id, loginProvider, providerKey string) (*entity.User[K], error) {
	return s.mutateUser(ctx, id, "remove user login", func(u *entity.User[K]) error {
		return s.Users.RemoveLogin(ctx, u, loginProvider, providerKey)
	})
}

func (s *Service[K]) FindUserByLogin(ctx context.Context, loginProvider, providerKey string) (*entity.User[K], error) {
	u, err := s.Users.FindByLogin(ctx, loginProvider, providerKey)
	if err != nil {
		return nil, s.fail("find user by login", err, logrus.Fields{"login_provider": loginProvider})
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *Service[K]) SetUserToken(ctx context.Context, id, loginProvider, name, value string) (*entity.User[K], error) {
	return s.mutateUser(ctx, id, "set user token", func(u *entity.User[K]) error {
		return s.Users.SetToken(ctx, u, loginProvider, name, value)
	})
}

func (s *Service[K]) RemoveUserToken(ctx context.Context, id, loginProvider, name string) (*entity.User[K], error) {
	return s.mutateUser(ctx, id, "remove user token", func(u *entity.User[K]) error {
		return s.Users.RemoveToken(ctx, u, loginProvider, name)
	})
}

// RecoveryCodeCount is how many codes RegenerateRecoveryCodes issues.
const RecoveryCodeCount = 10

// RegenerateRecoveryCodes replaces the user's recovery codes with a fresh set
// and returns the plain codes. They are not retrievable afterwards.
func (s *Service[K]) RegenerateRecoveryCodes(ctx context.Context, id string) ([]string, error) {
	codes, err := helpers.GenRecoveryCodes(RecoveryCodeCount)
	if err != nil {
		s.Logger.WithError(err).Error("generate recovery codes failed")
		return nil, ErrOperationFailed
	}
	if _, err := s.mutateUser(ctx, id, "replace recovery codes", func(u *entity.User[K]) error {
		return s.Users.ReplaceRecoveryCodes(ctx, u, codes)
	}); err != nil {
		return nil, err
	}
	return codes, nil
}

func (s *Service[K]) RecoveryCodesLeft(ctx context.Context, id string) (int, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return 0, err
	}
	n, err := s.Users.CountRecoveryCodes(ctx, u)
	if err != nil {
		return 0, s.fail("count recovery codes", err, logrus.Fields{"user_id": id})
	}
	return n, nil
}

func (s *Service[K]) mutateUser(ctx context.Context, id, op string, mutate func(*entity.User[K]) error) (*entity.User[K], error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := mutate(u); err != nil {
		return nil, s.fail(op, err, logrus.Fields{"user_id": id})
	}
	return u, nil
}
