package registration

import (
	"context"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/identity-mongo/internal/container"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

type (
	appUser struct {
		entity.User[uuid.UUID] `bson:",inline"`
		Nickname               string
	}
	appRole struct {
		entity.Role[uuid.UUID] `bson:",inline"`
	}
	objectIDUser struct {
		entity.User[primitive.ObjectID] `bson:",inline"`
	}
	stringRole struct {
		entity.Role[string] `bson:",inline"`
	}
	tenantKey  string
	tenantUser struct {
		entity.User[tenantKey] `bson:",inline"`
	}
	notAUser struct {
		Name string
	}
	pointerUser struct {
		*entity.User[primitive.ObjectID] `bson:",inline"`
	}
	nestedUser struct {
		entity.User[string]
		Dept string
	}
	renamedUser struct {
		entity.User[string] `bson:"user"`
	}
	innerUntagged struct {
		entity.User[string]
	}
	outerTagged struct {
		innerUntagged `bson:",inline"`
	}
)

// level1 embeds entity.User directly; levelN embeds level(N-1).
type (
	level1  struct{ entity.User[uuid.UUID] `bson:",inline"` }
	level2  struct{ level1 `bson:",inline"` }
	level3  struct{ level2 `bson:",inline"` }
	level4  struct{ level3 `bson:",inline"` }
	level5  struct{ level4 `bson:",inline"` }
	level6  struct{ level5 `bson:",inline"` }
	level7  struct{ level6 `bson:",inline"` }
	level8  struct{ level7 `bson:",inline"` }
	level9  struct{ level8 `bson:",inline"` }
	level10 struct{ level9 `bson:",inline"` }
	level11 struct{ level10 `bson:",inline"` }
)

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func TestResolveKeyKind(t *testing.T) {
	cases := []struct {
		name     string
		user     reflect.Type
		role     reflect.Type
		explicit entity.KeyKind
		want     entity.KeyKind
	}{
		{"uuid host types", typeOf[appUser](), typeOf[appRole](), entity.KeyUnspecified, entity.KeyUUID},
		{"base type itself", typeOf[entity.User[string]](), nil, entity.KeyUnspecified, entity.KeyString},
		{"pointer to host type", typeOf[*objectIDUser](), nil, entity.KeyUnspecified, entity.KeyObjectID},
		{"named string key", typeOf[tenantUser](), nil, entity.KeyUnspecified, entity.KeyString},
		{"ten embeddings", typeOf[level10](), nil, entity.KeyUnspecified, entity.KeyUUID},
		{"explicit kind skips the walk", typeOf[notAUser](), nil, entity.KeyObjectID, entity.KeyObjectID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveKeyKind(tc.user, tc.role, tc.explicit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveKeyKindFailures(t *testing.T) {
	cases := []struct {
		name string
		user reflect.Type
		role reflect.Type
	}{
		{"eleven embeddings", typeOf[level11](), nil},
		{"pointer embed", typeOf[pointerUser](), nil},
		{"embed without inline tag", typeOf[nestedUser](), nil},
		{"embed renamed to a subdocument", typeOf[renamedUser](), nil},
		{"untagged embed further down", typeOf[outerTagged](), nil},
		{"no base type", typeOf[notAUser](), nil},
		{"non struct", typeOf[string](), nil},
		{"missing user type", nil, nil},
		{"role key disagrees", typeOf[appUser](), typeOf[stringRole]()},
		{"role type without base", typeOf[appUser](), typeOf[notAUser]()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveKeyKind(tc.user, tc.role, entity.KeyUnspecified)
			assert.ErrorIs(t, err, repository.ErrConfiguration)
		})
	}
}

func TestCheckHostTypes(t *testing.T) {
	assert.NoError(t, CheckHostTypes(typeOf[appUser](), typeOf[appRole]()))
	assert.NoError(t, CheckHostTypes(typeOf[entity.User[string]](), nil))
	assert.ErrorIs(t, CheckHostTypes(typeOf[pointerUser](), nil), repository.ErrConfiguration)
	assert.ErrorIs(t, CheckHostTypes(typeOf[appUser](), typeOf[struct{ entity.Role[uuid.UUID] }]()), repository.ErrConfiguration)
	assert.ErrorIs(t, CheckHostTypes(nil, nil), repository.ErrConfiguration)
}

type inlineStringUser struct {
	entity.User[string] `bson:",inline"`
	Dept                string `bson:"dept"`
}

// Accepted host types keep _id at the document root; rejected ones nest it.
func TestHostTypeDocumentShape(t *testing.T) {
	accepted := inlineStringUser{Dept: "eng"}
	accepted.ID = "u1"
	require.NoError(t, CheckHostTypes(typeOf[inlineStringUser](), nil))
	raw, err := bson.Marshal(accepted)
	require.NoError(t, err)
	id, err := bson.Raw(raw).LookupErr("_id")
	require.NoError(t, err)
	assert.Equal(t, "u1", id.StringValue())

	rejected := nestedUser{Dept: "eng"}
	rejected.ID = "u1"
	require.Error(t, CheckHostTypes(typeOf[nestedUser](), nil))
	raw, err = bson.Marshal(rejected)
	require.NoError(t, err)
	_, err = bson.Raw(raw).LookupErr("_id")
	assert.Error(t, err)
}

func TestCollectionName(t *testing.T) {
	assert.Equal(t, "people", collectionName("people", typeOf[appUser](), "users"))
	assert.Equal(t, "appUser", collectionName("", typeOf[appUser](), "users"))
	assert.Equal(t, "users", collectionName("", typeOf[entity.User[string]](), "users"))
}

func lazyDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	// Connect does not dial; no server is needed to build stores.
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("identity_test")
}

func TestAddStores(t *testing.T) {
	db := lazyDatabase(t)

	t.Run("uuid hosts get uuid stores", func(t *testing.T) {
		stores, err := AddStores[uuid.UUID, appUser, appRole](db, Options{})
		require.NoError(t, err)
		assert.Equal(t, entity.KeyUUID, stores.Kind)
		assert.Equal(t, entity.KeyUUID, stores.Users.Codec().Kind())
		assert.Equal(t, entity.KeyUUID, stores.Roles.Codec().Kind())
	})

	t.Run("instantiation must match the declared key", func(t *testing.T) {
		_, err := AddStores[uuid.UUID, appUser, appRole](db, Options{KeyKind: entity.KeyString})
		assert.ErrorIs(t, err, repository.ErrConfiguration)
	})

	t.Run("host types the stores cannot persist are rejected", func(t *testing.T) {
		_, err := AddUserStore[primitive.ObjectID, pointerUser](db, Options{})
		assert.ErrorIs(t, err, repository.ErrConfiguration)
		_, err = AddUserStore[string, nestedUser](db, Options{KeyKind: entity.KeyString})
		assert.ErrorIs(t, err, repository.ErrConfiguration)
	})

	t.Run("user only store", func(t *testing.T) {
		users, err := AddUserStore[primitive.ObjectID, objectIDUser](db, Options{})
		require.NoError(t, err)
		err = users.AddToRole(context.Background(), &objectIDUser{}, "ADMIN")
		assert.ErrorIs(t, err, repository.ErrRolesUnavailable)
	})
}

func TestRegister(t *testing.T) {
	stores, err := AddStores[uuid.UUID, appUser, appRole](lazyDatabase(t), Options{})
	require.NoError(t, err)

	reg := container.NewRegistry()
	Register(reg, stores)

	users, ok := container.Resolve[repository.UserStore[uuid.UUID, *appUser]](reg)
	require.True(t, ok)
	assert.Same(t, stores.Users, users)

	roles, ok := container.Resolve[repository.RoleStore[uuid.UUID, *appRole]](reg)
	require.True(t, ok)
	assert.Same(t, stores.Roles, roles)
}
