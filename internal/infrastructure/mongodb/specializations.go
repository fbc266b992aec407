package mongodb

import (
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
)

// Key-typed constructors. They only pick the codec; all store logic is shared.

func NewStringUserStore[U any, PU entity.UserModel[string, U]](users, roles Collection) *UserStore[string, U, PU] {
	return NewUserStore[string, U, PU](users, roles, StringCodec[string]{})
}

func NewUUIDUserStore[U any, PU entity.UserModel[uuid.UUID, U]](users, roles Collection, rep UUIDRepresentation) *UserStore[uuid.UUID, U, PU] {
	return NewUserStore[uuid.UUID, U, PU](users, roles, UUIDCodec{Representation: rep})
}

func NewObjectIDUserStore[U any, PU entity.UserModel[primitive.ObjectID, U]](users, roles Collection) *UserStore[primitive.ObjectID, U, PU] {
	return NewUserStore[primitive.ObjectID, U, PU](users, roles, ObjectIDCodec{})
}

func NewStringRoleStore[R any, PR entity.RoleModel[string, R]](roles Collection) *RoleStore[string, R, PR] {
	return NewRoleStore[string, R, PR](roles, StringCodec[string]{})
}

func NewUUIDRoleStore[R any, PR entity.RoleModel[uuid.UUID, R]](roles Collection, rep UUIDRepresentation) *RoleStore[uuid.UUID, R, PR] {
	return NewRoleStore[uuid.UUID, R, PR](roles, UUIDCodec{Representation: rep})
}

func NewObjectIDRoleStore[R any, PR entity.RoleModel[primitive.ObjectID, R]](roles Collection) *RoleStore[primitive.ObjectID, R, PR] {
	return NewRoleStore[primitive.ObjectID, R, PR](roles, ObjectIDCodec{})
}
