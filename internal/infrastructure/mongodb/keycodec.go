package mongodb

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

// KeyCodec converts between a key type, its text form and its BSON filter value.
type KeyCodec[K entity.Key] interface {
	Kind() entity.KeyKind
	Parse(s string) (K, error)
	Format(k K) string
	Value(k K) any
}

// StringCodec passes string-based keys through unchanged.
type StringCodec[K entity.Key] struct{}

func (StringCodec[K]) Kind() entity.KeyKind { return entity.KeyString }

func (StringCodec[K]) Parse(s string) (K, error) {
	var k K
	v := reflect.ValueOf(&k).Elem()
	if v.Kind() != reflect.String {
		return k, fmt.Errorf("%w: key type %T is not string based", repository.ErrConfiguration, k)
	}
	v.SetString(s)
	return k, nil
}

func (StringCodec[K]) Format(k K) string {
	if entity.IsZeroKey(k) {
		return ""
	}
	return reflect.ValueOf(k).String()
}

func (c StringCodec[K]) Value(k K) any { return c.Format(k) }

// UUIDCodec handles uuid.UUID keys stored with the configured representation.
type UUIDCodec struct {
	Representation UUIDRepresentation
}

func (UUIDCodec) Kind() entity.KeyKind { return entity.KeyUUID }

func (UUIDCodec) Parse(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", repository.ErrInvalidArgument, err)
	}
	return id, nil
}

func (UUIDCodec) Format(k uuid.UUID) string {
	if k == uuid.Nil {
		return ""
	}
	return k.String()
}

func (c UUIDCodec) Value(k uuid.UUID) any {
	return primitive.Binary{Subtype: c.Representation.Subtype(), Data: k[:]}
}

// ObjectIDCodec handles primitive.ObjectID keys in their 24 character hex form.
type ObjectIDCodec struct{}

func (ObjectIDCodec) Kind() entity.KeyKind { return entity.KeyObjectID }

func (ObjectIDCodec) Parse(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %v", repository.ErrInvalidArgument, err)
	}
	return id, nil
}

func (ObjectIDCodec) Format(k primitive.ObjectID) string {
	if k.IsZero() {
		return ""
	}
	return k.Hex()
}

func (ObjectIDCodec) Value(k primitive.ObjectID) any { return k }

// CodecFor returns the codec matching K. Any key type that is neither a UUID
// nor an ObjectID is handled as an opaque string.
func CodecFor[K entity.Key](rep UUIDRepresentation) KeyCodec[K] {
	var codec any
	switch entity.KindOf[K]() {
	case entity.KeyUUID:
		codec = UUIDCodec{Representation: rep}
	case entity.KeyObjectID:
		codec = ObjectIDCodec{}
	default:
		codec = StringCodec[K]{}
	}
	return codec.(KeyCodec[K])
}
