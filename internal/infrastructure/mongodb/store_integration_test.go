//go:build integration

package mongodb_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcmongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/infrastructure/mongodb"
)

type MongoStoreSuite struct {
	suite.Suite
	container *tcmongo.MongoDBContainer
	client    *mongo.Client
	db        *mongo.Database
	users     *mongodb.UserStore[uuid.UUID, entity.User[uuid.UUID], *entity.User[uuid.UUID]]
	roles     *mongodb.RoleStore[uuid.UUID, entity.Role[uuid.UUID], *entity.Role[uuid.UUID]]
}

func TestMongoStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MongoStoreSuite))
}

func (s *MongoStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcmongo.Run(ctx, "mongo:7")
	s.Require().NoError(err)
	s.container = container

	uri, err := container.ConnectionString(ctx)
	s.Require().NoError(err)

	s.client, err = mongodb.NewClient(ctx, uri, 10*time.Second, mongodb.UUIDStandard)
	s.Require().NoError(err)
}

func (s *MongoStoreSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Disconnect(context.Background())
	}
	if s.container != nil {
		_ = testcontainers.TerminateContainer(s.container)
	}
}

func (s *MongoStoreSuite) SetupTest() {
	s.db = s.client.Database("identity_" + uuid.NewString()[:8])
	users := s.db.Collection("users")
	roles := s.db.Collection("roles")
	s.users = mongodb.NewUUIDUserStore[entity.User[uuid.UUID]](users, roles, mongodb.UUIDStandard)
	s.roles = mongodb.NewUUIDRoleStore[entity.Role[uuid.UUID]](roles, mongodb.UUIDStandard)
}

func (s *MongoStoreSuite) TearDownTest() {
	_ = s.db.Drop(context.Background())
}

func (s *MongoStoreSuite) createRole(name string) *entity.Role[uuid.UUID] {
	role := entity.NewRole[uuid.UUID](name)
	role.NormalizedName = normalize(name)
	res, err := s.roles.Create(context.Background(), role)
	s.Require().NoError(err)
	s.Require().True(res.Succeeded)
	return role
}

func (s *MongoStoreSuite) createUser(name string, claims ...entity.Claim) *entity.User[uuid.UUID] {
	ctx := context.Background()
	user := entity.NewUser[uuid.UUID](name)
	user.NormalizedUserName = normalize(name)
	user.ClaimManager().TryAdd(claims...)
	res, err := s.users.Create(ctx, user)
	s.Require().NoError(err)
	s.Require().True(res.Succeeded)
	return user
}

func normalize(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 'a' + 'A'
		}
	}
	return string(out)
}

// TestRoleClaimLifecycle covers add claim, re-fetch and delete of a role.
func (s *MongoStoreSuite) TestRoleClaimLifecycle() {
	ctx := context.Background()
	role := s.createRole("admin")

	s.Require().NoError(s.roles.AddClaim(ctx, role, entity.Claim{Type: "perm", Value: "write"}))

	loaded, err := s.roles.FindByID(ctx, role.ID.String())
	s.Require().NoError(err)
	s.Require().NotNil(loaded)
	s.Equal([]entity.Claim{{Type: "perm", Value: "write"}}, loaded.Claims)

	res, err := s.roles.Delete(ctx, loaded)
	s.Require().NoError(err)
	s.True(res.Succeeded)

	gone, err := s.roles.FindByID(ctx, role.ID.String())
	s.Require().NoError(err)
	s.Nil(gone)
}

// TestNameUpdateKeepsConcurrentClaim verifies a name change does not overwrite
// a claim added through another copy of the same role.
func (s *MongoStoreSuite) TestNameUpdateKeepsConcurrentClaim() {
	ctx := context.Background()
	role := s.createRole("editor")

	stale, err := s.roles.FindByID(ctx, role.ID.String())
	s.Require().NoError(err)

	other, err := s.roles.FindByID(ctx, role.ID.String())
	s.Require().NoError(err)
	s.Require().NoError(s.roles.AddClaim(ctx, other, entity.Claim{Type: "perm", Value: "publish"}))

	s.Require().NoError(s.roles.SetRoleName(ctx, stale, "Chief Editor"))

	reloaded, err := s.roles.FindByID(ctx, role.ID.String())
	s.Require().NoError(err)
	s.Equal("Chief Editor", reloaded.Name)
	s.Equal([]entity.Claim{{Type: "perm", Value: "publish"}}, reloaded.Claims)
}

// TestUserRoundTrip checks embedded collections survive persistence.
func (s *MongoStoreSuite) TestUserRoundTrip() {
	ctx := context.Background()
	role := s.createRole("admin")

	user := entity.NewUser[uuid.UUID]("alice")
	user.NormalizedUserName = "ALICE"
	user.ClaimManager().TryAdd(entity.Claim{Type: "dept", Value: "eng"}, entity.Claim{Type: "level", Value: "3"})
	user.LoginManager().TryAdd(entity.LoginInfo{LoginProvider: "google", ProviderKey: "g-1", DisplayName: "Google"})
	user.TokenManager().TryAdd(entity.Token{LoginProvider: "google", Name: "refresh", Value: "r"})
	user.RoleManager().TryAdd(role.Reference())
	_, err := s.users.Create(ctx, user)
	s.Require().NoError(err)

	loaded, err := s.users.FindByID(ctx, user.ID.String())
	s.Require().NoError(err)
	s.Require().NotNil(loaded)
	s.ElementsMatch(user.Claims, loaded.Claims)
	s.ElementsMatch(user.Logins, loaded.Logins)
	s.ElementsMatch(user.Tokens, loaded.Tokens)
	s.ElementsMatch(user.Roles, loaded.Roles)

	login, err := s.users.FindUserLogin(ctx, "google", "g-1")
	s.Require().NoError(err)
	s.Require().NotNil(login)
	s.Equal(user.ID, login.UserID)
	s.Equal("Google", login.DisplayName)

	membership, err := s.users.FindUserRole(ctx, user.ID, role.ID)
	s.Require().NoError(err)
	s.Require().NotNil(membership)
	s.Equal(role.ID, membership.RoleID)

	none, err := s.users.FindUserRole(ctx, user.ID, uuid.New())
	s.Require().NoError(err)
	s.Nil(none)
}

func (s *MongoStoreSuite) TestUsersForClaim() {
	ctx := context.Background()
	dept := entity.Claim{Type: "dept", Value: "eng"}
	u1 := s.createUser("u1", dept)
	u2 := s.createUser("u2", dept)
	s.createUser("u3", entity.Claim{Type: "dept", Value: "ops"})

	users, err := s.users.GetUsersForClaim(ctx, dept)
	s.Require().NoError(err)

	ids := []uuid.UUID{}
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	s.ElementsMatch([]uuid.UUID{u1.ID, u2.ID}, ids)
}

func (s *MongoStoreSuite) TestRoleMembership() {
	ctx := context.Background()
	s.createRole("admin")
	user := s.createUser("bob")

	s.Require().NoError(s.users.AddToRole(ctx, user, "ADMIN"))

	in, err := s.users.IsInRole(ctx, user, "ADMIN")
	s.Require().NoError(err)
	s.True(in)

	members, err := s.users.GetUsersInRole(ctx, "ADMIN")
	s.Require().NoError(err)
	s.Require().Len(members, 1)
	s.Equal(user.ID, members[0].ID)

	s.Require().NoError(s.users.RemoveFromRole(ctx, user, "ADMIN"))
	members, err = s.users.GetUsersInRole(ctx, "ADMIN")
	s.Require().NoError(err)
	s.Empty(members)
}

func (s *MongoStoreSuite) TestTokenReloadsOwner() {
	ctx := context.Background()
	user := s.createUser("carol")

	s.Require().NoError(s.users.SetToken(ctx, user, "github", "access", "t1"))
	s.Require().NoError(s.users.SetToken(ctx, user, "github", "access", "t2"))

	loaded, err := s.users.FindByID(ctx, user.ID.String())
	s.Require().NoError(err)
	value, ok, err := s.users.GetToken(ctx, loaded, "github", "access")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("t2", value)

	s.Require().NoError(s.users.RemoveToken(ctx, loaded, "github", "access"))
	again, err := s.users.FindByID(ctx, user.ID.String())
	s.Require().NoError(err)
	s.Empty(again.Tokens)
}
