package mongodb

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"go.mongodb.org/mongo-driver/bson/bsonrw"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// UUIDRepresentation selects the BSON binary subtype used for uuid.UUID values.
type UUIDRepresentation int

const (
	// UUIDStandard stores UUIDs as binary subtype 4.
	UUIDStandard UUIDRepresentation = iota
	// UUIDLegacy stores UUIDs as binary subtype 3 in network byte order.
	UUIDLegacy
)

func (r UUIDRepresentation) Subtype() byte {
	if r == UUIDLegacy {
		return bsontype.BinaryUUIDOld
	}
	return bsontype.BinaryUUID
}

func (r UUIDRepresentation) String() string {
	if r == UUIDLegacy {
		return "legacy"
	}
	return "standard"
}

// ParseUUIDRepresentation accepts "standard" (or empty) and "legacy".
func ParseUUIDRepresentation(s string) (UUIDRepresentation, error) {
	switch s {
	case "", "standard":
		return UUIDStandard, nil
	case "legacy":
		return UUIDLegacy, nil
	default:
		return UUIDStandard, fmt.Errorf("unknown uuid representation %q", s)
	}
}

var tUUID = reflect.TypeOf(uuid.UUID{})

// NewRegistry returns a BSON registry that encodes uuid.UUID with the given
// representation. Attach it to a client or collection; the default registry
// is left untouched.
func NewRegistry(rep UUIDRepresentation) *bsoncodec.Registry {
	reg := bson.NewRegistry()
	reg.RegisterTypeEncoder(tUUID, uuidEncoder(rep))
	reg.RegisterTypeDecoder(tUUID, uuidDecoder())
	return reg
}

func uuidEncoder(rep UUIDRepresentation) bsoncodec.ValueEncoderFunc {
	subtype := rep.Subtype()
	return func(_ bsoncodec.EncodeContext, vw bsonrw.ValueWriter, val reflect.Value) error {
		if !val.IsValid() || val.Type() != tUUID {
			return bsoncodec.ValueEncoderError{Name: "uuidEncodeValue", Types: []reflect.Type{tUUID}, Received: val}
		}
		u := val.Interface().(uuid.UUID)
		return vw.WriteBinaryWithSubtype(u[:], subtype)
	}
}

// uuidDecoder accepts both binary subtypes and the canonical string form, so
// documents written under either representation stay readable.
func uuidDecoder() bsoncodec.ValueDecoderFunc {
	return func(_ bsoncodec.DecodeContext, vr bsonrw.ValueReader, val reflect.Value) error {
		if !val.CanSet() || val.Type() != tUUID {
			return bsoncodec.ValueDecoderError{Name: "uuidDecodeValue", Types: []reflect.Type{tUUID}, Received: val}
		}

		var u uuid.UUID
		switch vr.Type() {
		case bsontype.Binary:
			data, subtype, err := vr.ReadBinary()
			if err != nil {
				return err
			}
			if subtype != bsontype.BinaryUUID && subtype != bsontype.BinaryUUIDOld {
				return fmt.Errorf("cannot decode binary subtype %#x into uuid.UUID", subtype)
			}
			if len(data) != len(u) {
				return fmt.Errorf("cannot decode %d bytes into uuid.UUID", len(data))
			}
			copy(u[:], data)
		case bsontype.String:
			s, err := vr.ReadString()
			if err != nil {
				return err
			}
			if u, err = uuid.Parse(s); err != nil {
				return err
			}
		case bsontype.Null:
			if err := vr.ReadNull(); err != nil {
				return err
			}
		case bsontype.Undefined:
			if err := vr.ReadUndefined(); err != nil {
				return err
			}
		default:
			return fmt.Errorf("cannot decode %v into uuid.UUID", vr.Type())
		}
		val.Set(reflect.ValueOf(u))
		return nil
	}
}
