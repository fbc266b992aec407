package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/identity-mongo/internal/application/mocks"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
	"github.com/oksasatya/identity-mongo/pkg/helpers"
)

type ServiceSuite struct {
	suite.Suite
	ctx   context.Context
	users *mocks.MockUserRepository[string]
	roles *mocks.MockRoleRepository[string]
	logs  *test.Hook
	svc   *Service[string]
	now   time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.users = mocks.NewMockUserRepository[string](ctrl)
	s.roles = mocks.NewMockRoleRepository[string](ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s.logs = test.NewLocal(logger)

	s.svc = NewService[string](s.users, s.roles, helpers.NewJWTManager("secret", time.Minute), nil, logger)
	s.now = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.svc.now = func() time.Time { return s.now }
}

func (s *ServiceSuite) adminUser(password string) *entity.User[string] {
	u := entity.NewUser[string]("root")
	u.ID = "u1"
	u.NormalizedUserName = "ROOT"
	hash, err := helpers.HashPassword(password)
	s.Require().NoError(err)
	u.PasswordHash = hash
	u.Roles = []entity.RoleReference[string]{{ID: "r1", Name: "admin", NormalizedName: AdminRole}}
	return u
}

func (s *ServiceSuite) TestLogin() {
	s.Run("admin receives a token carrying its roles", func() {
		u := s.adminUser("password123")
		s.users.EXPECT().FindByName(gomock.Any(), "ROOT").Return(u, nil)
		s.users.EXPECT().IsInRole(gomock.Any(), u, AdminRole).Return(true, nil)
		s.users.EXPECT().GetUserID(gomock.Any(), u).Return("u1", nil)

		res, err := s.svc.Login(s.ctx, " root ", "password123")
		s.Require().NoError(err)
		s.Equal([]string{AdminRole}, res.Roles)

		claims, err := s.svc.JWT.ParseAccessToken(res.AccessToken)
		s.Require().NoError(err)
		s.Equal("u1", claims.UserID)
		s.True(claims.HasRole(AdminRole))
	})

	s.Run("unknown user", func() {
		s.users.EXPECT().FindByName(gomock.Any(), "GHOST").Return(nil, nil)

		_, err := s.svc.Login(s.ctx, "ghost", "password123")
		s.ErrorIs(err, ErrInvalidCredentials)
	})

	s.Run("non admin is forbidden", func() {
		u := s.adminUser("password123")
		s.users.EXPECT().FindByName(gomock.Any(), "ROOT").Return(u, nil)
		s.users.EXPECT().IsInRole(gomock.Any(), u, AdminRole).Return(false, nil)

		_, err := s.svc.Login(s.ctx, "root", "password123")
		s.ErrorIs(err, ErrForbidden)
	})

	s.Run("locked out user is rejected before the password check", func() {
		u := s.adminUser("password123")
		end := s.now.Add(time.Minute)
		u.LockoutEnd = &end
		s.users.EXPECT().FindByName(gomock.Any(), "ROOT").Return(u, nil)

		_, err := s.svc.Login(s.ctx, "root", "password123")
		s.ErrorIs(err, ErrLockedOut)
	})
}

func (s *ServiceSuite) TestLoginFailuresLockOut() {
	u := s.adminUser("password123")
	u.AccessFailedCount = 4
	wantEnd := s.now.Add(s.svc.LockoutDuration)

	s.users.EXPECT().FindByName(gomock.Any(), "ROOT").Return(u, nil)
	s.users.EXPECT().IncrementAccessFailedCount(gomock.Any(), u).Return(5, nil)
	s.users.EXPECT().SetLockoutEnd(gomock.Any(), u, &wantEnd).Return(nil)
	s.users.EXPECT().ResetAccessFailedCount(gomock.Any(), u).Return(nil)

	_, err := s.svc.Login(s.ctx, "root", "wrong-password")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestCreateRole() {
	s.Run("normalizes and creates", func() {
		s.roles.EXPECT().FindByName(gomock.Any(), "EDITOR").Return(nil, nil)
		s.roles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entity.Success(), nil)

		role, err := s.svc.CreateRole(s.ctx, " Editor ")
		s.Require().NoError(err)
		s.Equal("Editor", role.Name)
		s.Equal("EDITOR", role.NormalizedName)
	})

	s.Run("duplicate name conflicts", func() {
		s.roles.EXPECT().FindByName(gomock.Any(), "EDITOR").Return(&entity.Role[string]{ID: "r9"}, nil)

		_, err := s.svc.CreateRole(s.ctx, "editor")
		s.ErrorIs(err, ErrConflict)
	})

	s.Run("blank name", func() {
		_, err := s.svc.CreateRole(s.ctx, "  ")
		s.ErrorIs(err, ErrInvalidInput)
	})
}

func (s *ServiceSuite) TestRenameRolePatchesBothNames() {
	role := &entity.Role[string]{ID: "r1", Name: "admin", NormalizedName: "ADMIN"}
	s.roles.EXPECT().FindByID(gomock.Any(), "r1").Return(role, nil)
	s.roles.EXPECT().FindByName(gomock.Any(), "OWNER").Return(nil, nil)
	s.roles.EXPECT().SetRoleName(gomock.Any(), role, "Owner").Return(nil)
	s.roles.EXPECT().SetNormalizedRoleName(gomock.Any(), role, "OWNER").Return(nil)

	_, err := s.svc.RenameRole(s.ctx, "r1", "Owner")
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestDeleteRoleFailedResult() {
	role := &entity.Role[string]{ID: "r1"}
	failed := entity.Failed(entity.ResultError{Code: repository.CodeDeleteError, Description: "not primary"})
	s.roles.EXPECT().FindByID(gomock.Any(), "r1").Return(role, nil)
	s.roles.EXPECT().Delete(gomock.Any(), role).Return(failed, nil)

	err := s.svc.DeleteRole(s.ctx, "r1")
	s.ErrorIs(err, ErrOperationFailed)
	s.Require().NotNil(s.logs.LastEntry())
	s.Equal(logrus.WarnLevel, s.logs.LastEntry().Level)
}

func (s *ServiceSuite) TestRoleUsersUsesNormalizedName() {
	s.roles.EXPECT().FindByID(gomock.Any(), "r1").Return(&entity.Role[string]{ID: "r1", NormalizedName: "ADMIN"}, nil)
	s.users.EXPECT().GetUsersInRole(gomock.Any(), "ADMIN").Return([]*entity.User[string]{{ID: "u1"}}, nil)

	users, err := s.svc.RoleUsers(s.ctx, "r1")
	s.Require().NoError(err)
	s.Len(users, 1)
}

func (s *ServiceSuite) TestCreateUserHashesPassword() {
	s.users.EXPECT().FindByName(gomock.Any(), "ALICE").Return(nil, nil)
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entity.Success(), nil)

	u, err := s.svc.CreateUser(s.ctx, CreateUserInput{UserName: "alice", Email: "Alice@Example.com", Password: "password123"})
	s.Require().NoError(err)
	s.Equal("ALICE@EXAMPLE.COM", u.NormalizedEmail)
	s.True(helpers.CompareHashAndPassword(u.PasswordHash, "password123"))
}

func (s *ServiceSuite) TestErrorMapping() {
	s.Run("missing role surfaces as role not found", func() {
		u := &entity.User[string]{ID: "u1"}
		s.users.EXPECT().FindByID(gomock.Any(), "u1").Return(u, nil)
		s.users.EXPECT().AddToRole(gomock.Any(), u, "GHOST").Return(repository.ErrRoleNotFound)

		_, err := s.svc.AddUserToRole(s.ctx, "u1", "ghost")
		s.ErrorIs(err, ErrRoleNotFound)
	})

	s.Run("malformed id is invalid input", func() {
		s.users.EXPECT().FindByID(gomock.Any(), "zz").Return(nil, repository.ErrInvalidArgument)

		_, err := s.svc.GetUser(s.ctx, "zz")
		s.ErrorIs(err, ErrInvalidInput)
	})

	s.Run("driver failure is logged and wrapped", func() {
		s.users.EXPECT().FindByID(gomock.Any(), "u1").Return(nil, errors.New("socket closed"))

		_, err := s.svc.GetUser(s.ctx, "u1")
		s.ErrorIs(err, ErrOperationFailed)
		s.Equal(logrus.ErrorLevel, s.logs.LastEntry().Level)
		s.Equal("socket closed", s.logs.LastEntry().Data["error"])
	})

	s.Run("missing user", func() {
		s.users.EXPECT().FindByID(gomock.Any(), "u2").Return(nil, nil)

		_, err := s.svc.SetUserToken(s.ctx, "u2", "github", "access", "t")
		s.ErrorIs(err, ErrUserNotFound)
	})
}

func (s *ServiceSuite) TestAddUserLoginConflict() {
	login := entity.LoginInfo{LoginProvider: "google", ProviderKey: "g-1"}
	s.users.EXPECT().FindByLogin(gomock.Any(), "google", "g-1").Return(&entity.User[string]{ID: "other"}, nil)
	s.users.EXPECT().FindByID(gomock.Any(), "u1").Return(&entity.User[string]{ID: "u1"}, nil)

	_, err := s.svc.AddUserLogin(s.ctx, "u1", login)
	s.ErrorIs(err, ErrConflict)
}

func (s *ServiceSuite) TestAddUserClaim() {
	u := &entity.User[string]{ID: "u1"}
	claim := entity.Claim{Type: "dept", Value: "eng"}
	s.users.EXPECT().FindByID(gomock.Any(), "u1").Return(u, nil)
	s.users.EXPECT().AddClaims(gomock.Any(), u, claim).Return(nil)

	got, err := s.svc.AddUserClaim(s.ctx, "u1", claim)
	s.Require().NoError(err)
	s.Same(u, got)
}

func (s *ServiceSuite) TestRegenerateRecoveryCodes() {
	u := &entity.User[string]{ID: "u1"}
	var stored []string
	s.users.EXPECT().FindByID(gomock.Any(), "u1").Return(u, nil)
	s.users.EXPECT().ReplaceRecoveryCodes(gomock.Any(), u, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *entity.User[string], codes []string) error {
			stored = codes
			return nil
		})

	codes, err := s.svc.RegenerateRecoveryCodes(s.ctx, "u1")
	s.Require().NoError(err)
	s.Len(codes, RecoveryCodeCount)
	s.Equal(codes, stored)

	s.users.EXPECT().FindByID(gomock.Any(), "u1").Return(u, nil)
	s.users.EXPECT().CountRecoveryCodes(gomock.Any(), u).Return(7, nil)
	left, err := s.svc.RecoveryCodesLeft(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(7, left)
}
