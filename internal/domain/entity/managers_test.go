package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	tokens := []Token{}
	m := NewTokenManager(&tokens)

	require.True(t, m.TryAdd(Token{LoginProvider: "google", Name: "refresh", Value: "v1"}))
	assert.False(t, m.TryAdd(Token{LoginProvider: "google", Name: "refresh", Value: "v2"}))

	assert.True(t, m.Has("google", "refresh", ""))
	assert.True(t, m.Has("google", "refresh", "v1"))
	assert.False(t, m.Has("google", "refresh", "v2"))

	assert.True(t, m.TryReplace(Token{LoginProvider: "google", Name: "refresh", Value: "v2"}))
	tok, ok := m.Find("google", "refresh")
	require.True(t, ok)
	assert.Equal(t, "v2", tok.Value)
	assert.False(t, m.TryReplace(Token{LoginProvider: "github", Name: "refresh", Value: "x"}))

	assert.False(t, m.TryRemove(Token{LoginProvider: "google", Name: "refresh", Value: "v1"}))
	assert.True(t, m.TryRemove(Token{LoginProvider: "google", Name: "refresh"}))
	assert.Empty(t, tokens)
}

func TestLoginManager(t *testing.T) {
	logins := []LoginInfo{}
	m := NewLoginManager(&logins)

	google := LoginInfo{LoginProvider: "google", ProviderKey: "123", DisplayName: "Google"}
	require.True(t, m.TryAdd(google))
	assert.False(t, m.TryAdd(LoginInfo{LoginProvider: "google", ProviderKey: "123"}))
	assert.True(t, m.TryAdd(LoginInfo{LoginProvider: "google", ProviderKey: "456"}))

	assert.True(t, m.Has(LoginInfo{LoginProvider: "google", ProviderKey: "123"}))
	assert.False(t, m.Has(LoginInfo{LoginProvider: "google", ProviderKey: "123", DisplayName: "Other"}))

	assert.False(t, m.TryRemove(LoginInfo{LoginProvider: "google", ProviderKey: "123", DisplayName: "Other"}))
	assert.True(t, m.TryRemove(LoginInfo{LoginProvider: "google", ProviderKey: "123"}))
	assert.Equal(t, []LoginInfo{{LoginProvider: "google", ProviderKey: "456"}}, m.Logins())
}

func TestRoleManager(t *testing.T) {
	roles := []RoleReference[uuid.UUID]{}
	m := NewRoleManager(&roles)
	admin := RoleReference[uuid.UUID]{ID: uuid.New(), Name: "admin", NormalizedName: "ADMIN"}

	require.True(t, m.TryAdd(admin))
	assert.False(t, m.TryAdd(RoleReference[uuid.UUID]{ID: admin.ID, NormalizedName: "OTHER"}))
	assert.True(t, m.Has(admin.ID))
	assert.True(t, m.HasName("ADMIN"))
	assert.False(t, m.Has(uuid.New()))

	assert.False(t, m.TryRemove("EDITOR"))
	assert.True(t, m.TryRemove("ADMIN"))
	assert.Empty(t, m.Roles())
}

func TestNewKey(t *testing.T) {
	type tenantKey string

	assert.NotEqual(t, uuid.Nil, NewKey[uuid.UUID]())
	assert.False(t, IsZeroKey(NewKey[string]()))
	assert.NotEmpty(t, string(NewKey[tenantKey]()))

	assert.Equal(t, KeyUUID, KindOf[uuid.UUID]())
	assert.Equal(t, KeyString, KindOf[tenantKey]())
}

func TestNewUserHasEmptyCollections(t *testing.T) {
	u := NewUser[string]("alice")

	assert.NotNil(t, u.Claims)
	assert.NotNil(t, u.Logins)
	assert.NotNil(t, u.Tokens)
	assert.NotNil(t, u.Roles)
	assert.NotEmpty(t, u.ConcurrencyStamp)
	assert.Same(t, u, u.IdentityUser())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Succeeded", Success().String())
	assert.Equal(t, "Failed : UpdateError", Failed(ResultError{Code: "UpdateError"}).String())
}
