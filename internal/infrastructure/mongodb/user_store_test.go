package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
	"github.com/oksasatya/identity-mongo/internal/infrastructure/mongodb/mocks"
)

// staffUser extends the identity user the way a host application would.
type staffUser struct {
	entity.User[string] `bson:",inline"`
	Department          string `bson:"department"`
}

type UserStoreSuite struct {
	suite.Suite
	ctx   context.Context
	users *mocks.MockCollection
	roles *mocks.MockCollection
	store *UserStore[string, staffUser, *staffUser]
}

func TestUserStoreSuite(t *testing.T) {
	suite.Run(t, new(UserStoreSuite))
}

func (s *UserStoreSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.users = mocks.NewMockCollection(ctrl)
	s.roles = mocks.NewMockCollection(ctrl)
	s.store = NewStringUserStore[staffUser](s.users, s.roles)
}

func (s *UserStoreSuite) newUser(id string) *staffUser {
	u := &staffUser{Department: "eng"}
	u.ID = id
	u.UserName = id
	u.NormalizedUserName = "USER-" + id
	u.Normalize()
	return u
}

func (s *UserStoreSuite) TestCreateStoresHostFields() {
	user := s.newUser("u1")
	s.users.EXPECT().InsertOne(gomock.Any(), user).Return(&mongo.InsertOneResult{InsertedID: "u1"}, nil)

	res, err := s.store.Create(s.ctx, user)
	s.Require().NoError(err)
	s.True(res.Succeeded)
}

func (s *UserStoreSuite) TestFindDecodesHostType() {
	s.users.EXPECT().FindOne(gomock.Any(), bson.D{{Key: "normalized_email", Value: "A@B.C"}}).Return(found(s.newUser("u1")))

	user, err := s.store.FindByEmail(s.ctx, "A@B.C")
	s.Require().NoError(err)
	s.Require().NotNil(user)
	s.Equal("eng", user.Department)
	s.Equal("u1", user.ID)
}

func (s *UserStoreSuite) TestScalarSetters() {
	s.Run("email patch", func() {
		user := s.newUser("u1")
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), set("email", "a@b.c")).Return(acknowledged, nil)
		s.Require().NoError(s.store.SetEmail(s.ctx, user, "a@b.c"))
	})

	s.Run("access failed count increments in place", func() {
		user := s.newUser("u1")
		user.AccessFailedCount = 2
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), set("access_failed_count", 3)).Return(acknowledged, nil)

		n, err := s.store.IncrementAccessFailedCount(s.ctx, user)
		s.Require().NoError(err)
		s.Equal(3, n)
	})

	s.Run("equal lockout end skips the write", func() {
		user := s.newUser("u1")
		end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		user.LockoutEnd = &end
		same := end
		s.Require().NoError(s.store.SetLockoutEnd(s.ctx, user, &same))
	})
}

func (s *UserStoreSuite) TestClaims() {
	s.Run("replace rewrites the claims array", func() {
		user := s.newUser("u1")
		user.Claims = []entity.Claim{{Type: "dept", Value: "eng"}}
		newClaim := entity.Claim{Type: "dept", Value: "ops", Issuer: "hr"}
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), set("claims", []entity.Claim{newClaim})).Return(acknowledged, nil)

		s.Require().NoError(s.store.ReplaceClaim(s.ctx, user, entity.Claim{Type: "dept", Value: "eng"}, newClaim))
	})

	s.Run("users for claim use an element match", func() {
		filter := bson.D{{Key: "claims", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "type", Value: "dept"}, {Key: "value", Value: "eng"},
		}}}}}
		s.users.EXPECT().Find(gomock.Any(), filter).Return(cursorOf(s.T(), s.newUser("u1"), s.newUser("u2")), nil)

		users, err := s.store.GetUsersForClaim(s.ctx, entity.Claim{Type: "dept", Value: "eng"})
		s.Require().NoError(err)
		s.Len(users, 2)
	})
}

func (s *UserStoreSuite) TestLogins() {
	s.Run("find user login runs the unwind pipeline", func() {
		row := bson.D{
			{Key: "user_id", Value: "u1"},
			{Key: "login_provider", Value: "google"},
			{Key: "provider_key", Value: "123"},
		}
		s.users.EXPECT().Aggregate(gomock.Any(), loginPipeline(nil, "google", "123")).Return(cursorOf(s.T(), row), nil)

		login, err := s.store.FindUserLogin(s.ctx, "google", "123")
		s.Require().NoError(err)
		s.Require().NotNil(login)
		s.Equal("u1", login.UserID)
	})

	s.Run("no row means no login", func() {
		s.users.EXPECT().Aggregate(gomock.Any(), loginPipeline("u1", "google", "999")).Return(cursorOf(s.T()), nil)

		login, err := s.store.FindUserLoginForUser(s.ctx, "u1", "google", "999")
		s.Require().NoError(err)
		s.Nil(login)
	})

	s.Run("remove login writes the remaining logins", func() {
		user := s.newUser("u1")
		user.Logins = []entity.LoginInfo{{LoginProvider: "google", ProviderKey: "123"}}
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), set("logins", []entity.LoginInfo{})).Return(acknowledged, nil)

		s.Require().NoError(s.store.RemoveLogin(s.ctx, user, "google", "123"))
	})
}

func (s *UserStoreSuite) TestRoles() {
	admin := &entity.Role[string]{ID: "r1", Name: "admin", NormalizedName: "ADMIN"}

	s.Run("add to role stores a reference snapshot", func() {
		user := s.newUser("u1")
		s.roles.EXPECT().FindOne(gomock.Any(), bson.D{{Key: "normalized_name", Value: "ADMIN"}}).Return(found(admin))
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), set("roles", []entity.RoleReference[string]{admin.Reference()})).Return(acknowledged, nil)

		s.Require().NoError(s.store.AddToRole(s.ctx, user, "ADMIN"))
		names, err := s.store.GetRoles(s.ctx, user)
		s.Require().NoError(err)
		s.Equal([]string{"admin"}, names)
	})

	s.Run("unknown role is rejected", func() {
		s.roles.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(notFound())

		err := s.store.AddToRole(s.ctx, s.newUser("u1"), "GHOST")
		s.ErrorIs(err, repository.ErrRoleNotFound)
	})

	s.Run("blank role name is an invalid argument", func() {
		_, err := s.store.IsInRole(s.ctx, s.newUser("u1"), "  ")
		s.ErrorIs(err, repository.ErrInvalidArgument)
	})

	s.Run("users in role match on the role id", func() {
		s.roles.EXPECT().FindOne(gomock.Any(), gomock.Any()).Return(found(admin))
		filter := bson.D{{Key: "roles", Value: bson.D{{Key: "$elemMatch", Value: bson.D{{Key: "_id", Value: "r1"}}}}}}
		s.users.EXPECT().Find(gomock.Any(), filter).Return(cursorOf(s.T(), s.newUser("u1")), nil)

		users, err := s.store.GetUsersInRole(s.ctx, "ADMIN")
		s.Require().NoError(err)
		s.Len(users, 1)
	})

	s.Run("user-only store has no roles", func() {
		store := NewUserOnlyStore[string, staffUser](s.users, StringCodec[string]{})

		err := store.AddToRole(s.ctx, s.newUser("u1"), "ADMIN")
		s.ErrorIs(err, repository.ErrRolesUnavailable)
	})
}

func (s *UserStoreSuite) TestTokens() {
	s.Run("resident token is replaced in place", func() {
		user := s.newUser("u1")
		user.Tokens = []entity.Token{{LoginProvider: "google", Name: "refresh", Value: "old"}}
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), set("tokens", []entity.Token{{LoginProvider: "google", Name: "refresh", Value: "new"}})).Return(acknowledged, nil)

		s.Require().NoError(s.store.SetToken(s.ctx, user, "google", "refresh", "new"))
	})

	s.Run("unchanged resident token is not rewritten", func() {
		user := s.newUser("u1")
		user.Tokens = []entity.Token{{LoginProvider: "google", Name: "refresh", Value: "same"}}

		s.Require().NoError(s.store.SetToken(s.ctx, user, "google", "refresh", "same"))
		s.Equal("same", user.Tokens[0].Value)
	})

	s.Run("missing token reloads the owner before writing", func() {
		user := s.newUser("u1")
		stored := s.newUser("u1")
		stored.Tokens = []entity.Token{{LoginProvider: "github", Name: "access", Value: "g"}}
		want := []entity.Token{
			{LoginProvider: "github", Name: "access", Value: "g"},
			{LoginProvider: "google", Name: "refresh", Value: "v"},
		}
		s.users.EXPECT().FindOne(gomock.Any(), idFilter("u1")).Return(found(stored))
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), set("tokens", want)).Return(acknowledged, nil)

		s.Require().NoError(s.store.SetToken(s.ctx, user, "google", "refresh", "v"))
		s.Equal(want, user.Tokens)
	})

	s.Run("missing owner is reported", func() {
		s.users.EXPECT().FindOne(gomock.Any(), idFilter("u1")).Return(notFound())

		err := s.store.SetToken(s.ctx, s.newUser("u1"), "google", "refresh", "v")
		s.ErrorIs(err, repository.ErrUserNotFound)
	})

	s.Run("recovery codes are redeemed once", func() {
		user := s.newUser("u1")
		user.Tokens = []entity.Token{{LoginProvider: internalLoginProvider, Name: recoveryCodeToken, Value: "a;b;c"}}
		s.users.EXPECT().UpdateOne(gomock.Any(), idFilter("u1"), gomock.Any()).Return(acknowledged, nil)

		ok, err := s.store.RedeemRecoveryCode(s.ctx, user, "b")
		s.Require().NoError(err)
		s.True(ok)

		n, err := s.store.CountRecoveryCodes(s.ctx, user)
		s.Require().NoError(err)
		s.Equal(2, n)

		ok, err = s.store.RedeemRecoveryCode(s.ctx, user, "b")
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *UserStoreSuite) TestUpdateFailureIsResult() {
	user := s.newUser("u1")
	s.users.EXPECT().ReplaceOne(gomock.Any(), idFilter("u1"), user).Return(nil, mongo.ErrUnacknowledgedWrite)

	res, err := s.store.Update(s.ctx, user)
	s.Require().NoError(err)
	s.Equal(entity.Failed(entity.ResultError{Code: repository.CodeUpdateError, Description: "failed to update user u1"}), res)
}
