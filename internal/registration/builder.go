package registration

import (
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/internal/container"
	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
	"github.com/oksasatya/identity-mongo/internal/infrastructure/mongodb"
)

// Options configures store registration. Empty collection names default to
// the host type name, or users / roles for the generic base types.
type Options struct {
	UserCollection     string
	RoleCollection     string
	UUIDRepresentation mongodb.UUIDRepresentation
	KeyKind            entity.KeyKind
}

// Stores is the result of a registration.
type Stores[K entity.Key, U, R any, PU entity.UserModel[K, U], PR entity.RoleModel[K, R]] struct {
	Kind  entity.KeyKind
	Users *mongodb.UserStore[K, U, PU]
	Roles *mongodb.RoleStore[K, R, PR]
}

// AddStores resolves the key variant of U and R, checks it against K and
// builds both stores over collections of db.
func AddStores[K entity.Key, U, R any, PU entity.UserModel[K, U], PR entity.RoleModel[K, R]](db *mongo.Database, opts Options) (*Stores[K, U, R, PU, PR], error) {
	userType := reflect.TypeOf((*U)(nil)).Elem()
	roleType := reflect.TypeOf((*R)(nil)).Elem()

	kind, err := resolveFor[K](userType, roleType, opts.KeyKind)
	if err != nil {
		return nil, err
	}

	codec := mongodb.CodecFor[K](opts.UUIDRepresentation)
	collOpts := mongodb.CollectionOptions(opts.UUIDRepresentation)
	users := db.Collection(collectionName(opts.UserCollection, userType, "users"), collOpts)
	roles := db.Collection(collectionName(opts.RoleCollection, roleType, "roles"), collOpts)

	return &Stores[K, U, R, PU, PR]{
		Kind:  kind,
		Users: mongodb.NewUserStore[K, U, PU](users, roles, codec),
		Roles: mongodb.NewRoleStore[K, R, PR](roles, codec),
	}, nil
}

// AddUserStore registers a user store without roles. Role operations on it
// fail with repository.ErrRolesUnavailable.
func AddUserStore[K entity.Key, U any, PU entity.UserModel[K, U]](db *mongo.Database, opts Options) (*mongodb.UserStore[K, U, PU], error) {
	userType := reflect.TypeOf((*U)(nil)).Elem()
	if _, err := resolveFor[K](userType, nil, opts.KeyKind); err != nil {
		return nil, err
	}
	users := db.Collection(collectionName(opts.UserCollection, userType, "users"), mongodb.CollectionOptions(opts.UUIDRepresentation))
	return mongodb.NewUserOnlyStore[K, U, PU](users, mongodb.CodecFor[K](opts.UUIDRepresentation)), nil
}

// Register publishes the stores into c, both as concrete stores and as the
// repository contracts.
func Register[K entity.Key, U, R any, PU entity.UserModel[K, U], PR entity.RoleModel[K, R]](c *container.Registry, s *Stores[K, U, R, PU, PR]) {
	container.Provide(c, s)
	container.Provide(c, s.Users)
	container.Provide(c, s.Roles)
	container.Provide[repository.UserStore[K, PU]](c, s.Users)
	container.Provide[repository.RoleStore[K, PR]](c, s.Roles)
}

func resolveFor[K entity.Key](userType, roleType reflect.Type, explicit entity.KeyKind) (entity.KeyKind, error) {
	if err := CheckHostTypes(userType, roleType); err != nil {
		return entity.KeyUnspecified, err
	}
	kind, err := ResolveKeyKind(userType, roleType, explicit)
	if err != nil {
		return entity.KeyUnspecified, err
	}
	if want := entity.KindOf[K](); kind != want {
		return entity.KeyUnspecified, fmt.Errorf("%w: resolved %s keys but stores were instantiated for %s",
			repository.ErrConfiguration, kind, want)
	}
	return kind, nil
}

func collectionName(configured string, t reflect.Type, fallback string) string {
	if configured != "" {
		return configured
	}
	if name := t.Name(); name != "" && !strings.Contains(name, "[") {
		return name
	}
	return fallback
}
