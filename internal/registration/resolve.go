package registration

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

// maxEmbedDepth bounds the walk from a host type down to entity.User / entity.Role.
const maxEmbedDepth = 10

var (
	entityPkg    = reflect.TypeOf(entity.Result{}).PkgPath()
	uuidType     = reflect.TypeOf(uuid.UUID{})
	objectIDType = reflect.TypeOf(primitive.ObjectID{})
)

// ResolveKeyKind works out which key variant a deployment uses. An explicit
// kind wins. Otherwise the key type is read from the entity.User[K] the user
// type embeds, and from entity.Role[K] when a role type is given; both must agree.
func ResolveKeyKind(userType, roleType reflect.Type, explicit entity.KeyKind) (entity.KeyKind, error) {
	if explicit != entity.KeyUnspecified {
		return explicit, nil
	}
	if userType == nil {
		return entity.KeyUnspecified, fmt.Errorf("%w: user type is required", repository.ErrConfiguration)
	}

	userKey, err := keyTypeOf(userType, "User")
	if err != nil {
		return entity.KeyUnspecified, err
	}
	if roleType != nil {
		roleKey, err := keyTypeOf(roleType, "Role")
		if err != nil {
			return entity.KeyUnspecified, err
		}
		if roleKey != userKey {
			return entity.KeyUnspecified, fmt.Errorf("%w: user %s is keyed by %s but role %s is keyed by %s",
				repository.ErrConfiguration, userType, userKey, roleType, roleKey)
		}
	}
	return kindOfType(userKey), nil
}

// CheckHostTypes reports whether the stores can persist userType and roleType:
// both must reach their entity base through inline value embeds. roleType may
// be nil. Unlike ResolveKeyKind it always walks the types.
func CheckHostTypes(userType, roleType reflect.Type) error {
	if userType == nil {
		return fmt.Errorf("%w: user type is required", repository.ErrConfiguration)
	}
	if _, err := keyTypeOf(userType, "User"); err != nil {
		return err
	}
	if roleType != nil {
		if _, err := keyTypeOf(roleType, "Role"); err != nil {
			return err
		}
	}
	return nil
}

// keyTypeOf follows the first embedded struct field of t until it reaches the
// entity base type named base. Every hop must be a value embed tagged
// bson:",inline" so the base fields land at the top of the stored document.
func keyTypeOf(t reflect.Type, base string) (reflect.Type, error) {
	start := t
	t = indirect(t)
	for hop := 0; ; hop++ {
		if t.Kind() != reflect.Struct {
			break
		}
		if t.PkgPath() == entityPkg && strings.HasPrefix(t.Name(), base+"[") {
			id, ok := t.FieldByName("ID")
			if !ok {
				break
			}
			return id.Type, nil
		}
		if hop == maxEmbedDepth {
			return nil, fmt.Errorf("%w: %s does not reach entity.%s within %d embeddings",
				repository.ErrConfiguration, start, base, maxEmbedDepth)
		}
		f, ok := firstEmbedded(t)
		if !ok {
			break
		}
		if f.Type.Kind() == reflect.Pointer {
			return nil, fmt.Errorf("%w: %s embeds %s by pointer; embed it by value",
				repository.ErrConfiguration, t, f.Type)
		}
		if !isInline(f) {
			return nil, fmt.Errorf("%w: %s embeds %s without bson:\",inline\"",
				repository.ErrConfiguration, t, f.Type)
		}
		t = f.Type
	}
	return nil, fmt.Errorf("%w: %s does not embed entity.%s", repository.ErrConfiguration, start, base)
}

func firstEmbedded(t reflect.Type) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && indirect(f.Type).Kind() == reflect.Struct {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func isInline(f reflect.StructField) bool {
	tag, ok := f.Tag.Lookup("bson")
	if !ok {
		return false
	}
	for _, opt := range strings.Split(tag, ",")[1:] {
		if strings.TrimSpace(opt) == "inline" {
			return true
		}
	}
	return false
}

func indirect(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func kindOfType(t reflect.Type) entity.KeyKind {
	switch t {
	case uuidType:
		return entity.KeyUUID
	case objectIDType:
		return entity.KeyObjectID
	default:
		return entity.KeyString
	}
}
