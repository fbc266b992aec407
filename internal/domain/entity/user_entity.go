package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the aggregate root for identity users. Claims, logins, tokens and
// role references are embedded in the same document and mutated through their
// managers only.
//
// Application types extend a user by embedding User[K] with a `bson:",inline"`
// tag; stores reach the embedded aggregate through IdentityUser.
type User[K Key] struct {
	ID                   K          `bson:"_id" json:"id"`
	UserName             string     `bson:"user_name" json:"user_name"`
	NormalizedUserName   string     `bson:"normalized_user_name" json:"normalized_user_name"`
	Email                string     `bson:"email,omitempty" json:"email,omitempty"`
	NormalizedEmail      string     `bson:"normalized_email,omitempty" json:"normalized_email,omitempty"`
	EmailConfirmed       bool       `bson:"email_confirmed" json:"email_confirmed"`
	PasswordHash         string     `bson:"password_hash,omitempty" json:"-"`
	SecurityStamp        string     `bson:"security_stamp,omitempty" json:"-"`
	ConcurrencyStamp     string     `bson:"concurrency_stamp" json:"concurrency_stamp"`
	PhoneNumber          string     `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	PhoneNumberConfirmed bool       `bson:"phone_number_confirmed" json:"phone_number_confirmed"`
	TwoFactorEnabled     bool       `bson:"two_factor_enabled" json:"two_factor_enabled"`
	LockoutEnd           *time.Time `bson:"lockout_end,omitempty" json:"lockout_end,omitempty"`
	LockoutEnabled       bool       `bson:"lockout_enabled" json:"lockout_enabled"`
	AccessFailedCount    int        `bson:"access_failed_count" json:"access_failed_count"`

	Claims []Claim             `bson:"claims" json:"claims"`
	Logins []LoginInfo         `bson:"logins" json:"logins"`
	Tokens []Token             `bson:"tokens" json:"-"`
	Roles  []RoleReference[K] `bson:"roles" json:"roles"`
}

// UserModel is satisfied by pointers to types embedding User[K].
type UserModel[K Key, U any] interface {
	*U
	IdentityUser() *User[K]
}

// NewUser builds a user with a fresh key and empty sub-collections.
func NewUser[K Key](userName string) *User[K] {
	u := &User[K]{
		ID:               NewKey[K](),
		UserName:         userName,
		ConcurrencyStamp: uuid.NewString(),
		SecurityStamp:    uuid.NewString(),
		LockoutEnabled:   true,
	}
	u.Normalize()
	return u
}

func (u *User[K]) IdentityUser() *User[K] { return u }

// Normalize replaces nil sub-collections with empty ones.
func (u *User[K]) Normalize() {
	if u.Claims == nil {
		u.Claims = []Claim{}
	}
	if u.Logins == nil {
		u.Logins = []LoginInfo{}
	}
	if u.Tokens == nil {
		u.Tokens = []Token{}
	}
	if u.Roles == nil {
		u.Roles = []RoleReference[K]{}
	}
}

func (u *User[K]) ClaimManager() *ClaimManager { return NewClaimManager(&u.Claims) }

func (u *User[K]) LoginManager() *LoginManager { return NewLoginManager(&u.Logins) }

func (u *User[K]) TokenManager() *TokenManager { return NewTokenManager(&u.Tokens) }

func (u *User[K]) RoleManager() *RoleManager[K] { return NewRoleManager(&u.Roles) }

// IsLockedOut reports whether lockout is enabled and ends after now.
func (u *User[K]) IsLockedOut(now time.Time) bool {
	return u.LockoutEnabled && u.LockoutEnd != nil && u.LockoutEnd.After(now)
}
