package entity

import "github.com/google/uuid"

// Role is an authorization role with its embedded claims.
type Role[K Key] struct {
	ID               K       `bson:"_id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	NormalizedName   string  `bson:"normalized_name" json:"normalized_name"`
	ConcurrencyStamp string  `bson:"concurrency_stamp" json:"concurrency_stamp"`
	Claims           []Claim `bson:"claims" json:"claims"`
}

// RoleModel is satisfied by pointers to types embedding Role[K].
type RoleModel[K Key, R any] interface {
	*R
	IdentityRole() *Role[K]
}

func NewRole[K Key](name string) *Role[K] {
	return &Role[K]{
		ID:               NewKey[K](),
		Name:             name,
		ConcurrencyStamp: uuid.NewString(),
		Claims:           []Claim{},
	}
}

func (r *Role[K]) IdentityRole() *Role[K] { return r }

func (r *Role[K]) Normalize() {
	if r.Claims == nil {
		r.Claims = []Claim{}
	}
}

func (r *Role[K]) ClaimManager() *ClaimManager { return NewClaimManager(&r.Claims) }

// Reference snapshots the role for embedding in a user document.
func (r *Role[K]) Reference() RoleReference[K] {
	return RoleReference[K]{ID: r.ID, Name: r.Name, NormalizedName: r.NormalizedName}
}
