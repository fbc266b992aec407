package entity

import (
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Key is the set of primary-key types a User or Role may be declared with.
type Key interface {
	~string | uuid.UUID | primitive.ObjectID
}

// KeyKind names the key variant chosen for a deployment.
type KeyKind int

const (
	KeyUnspecified KeyKind = iota
	KeyString
	KeyUUID
	KeyObjectID
)

func (k KeyKind) String() string {
	switch k {
	case KeyString:
		return "string"
	case KeyUUID:
		return "uuid"
	case KeyObjectID:
		return "objectid"
	default:
		return "unspecified"
	}
}

// ParseKeyKind maps a configuration value to a KeyKind. Unknown values yield KeyUnspecified.
func ParseKeyKind(s string) KeyKind {
	switch s {
	case "string":
		return KeyString
	case "uuid":
		return KeyUUID
	case "objectid", "object_id":
		return KeyObjectID
	default:
		return KeyUnspecified
	}
}

// KindOf reports the variant of K. Any string-based key is KeyString.
func KindOf[K Key]() KeyKind {
	var zero K
	switch any(zero).(type) {
	case uuid.UUID:
		return KeyUUID
	case primitive.ObjectID:
		return KeyObjectID
	default:
		return KeyString
	}
}

// NewKey generates a fresh key of type K.
func NewKey[K Key]() K {
	var k K
	switch p := any(&k).(type) {
	case *uuid.UUID:
		*p = uuid.New()
	case *primitive.ObjectID:
		*p = primitive.NewObjectID()
	default:
		reflect.ValueOf(&k).Elem().SetString(uuid.NewString())
	}
	return k
}

// IsZeroKey reports whether k is the zero value of its type.
func IsZeroKey[K Key](k K) bool {
	var zero K
	return k == zero
}
