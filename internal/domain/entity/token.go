package entity

// Token is an authentication token held for a user, unique by provider and name.
type Token struct {
	LoginProvider string `bson:"login_provider" json:"login_provider"`
	Name          string `bson:"name" json:"name"`
	Value         string `bson:"value,omitempty" json:"value,omitempty"`
}

// UserToken is a token together with the id of its owner.
type UserToken[K Key] struct {
	UserID        K      `json:"user_id"`
	LoginProvider string `json:"login_provider"`
	Name          string `json:"name"`
	Value         string `json:"value,omitempty"`
}

// TokenManager operates on the tokens slice of one user.
type TokenManager struct {
	tokens *[]Token
}

func NewTokenManager(tokens *[]Token) *TokenManager {
	return &TokenManager{tokens: tokens}
}

// Find looks a token up by provider and name.
func (m *TokenManager) Find(loginProvider, name string) (*Token, bool) {
	for i := range *m.tokens {
		t := &(*m.tokens)[i]
		if t.LoginProvider == loginProvider && t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Has matches on provider and name, and also on value when value is non-empty.
func (m *TokenManager) Has(loginProvider, name, value string) bool {
	t, ok := m.Find(loginProvider, name)
	if !ok {
		return false
	}
	return value == "" || t.Value == value
}

func (m *TokenManager) TryAdd(t Token) bool {
	if _, ok := m.Find(t.LoginProvider, t.Name); ok {
		return false
	}
	*m.tokens = append(*m.tokens, t)
	return true
}

// TryReplace updates the value of the token with the same provider and name.
func (m *TokenManager) TryReplace(t Token) bool {
	existing, ok := m.Find(t.LoginProvider, t.Name)
	if !ok {
		return false
	}
	existing.Value = t.Value
	return true
}

// TryRemove drops the matching token. An empty value matches any value.
func (m *TokenManager) TryRemove(t Token) bool {
	kept := (*m.tokens)[:0]
	removed := false
	for _, existing := range *m.tokens {
		if existing.LoginProvider == t.LoginProvider && existing.Name == t.Name &&
			(t.Value == "" || existing.Value == t.Value) {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	*m.tokens = kept
	return removed
}

func (m *TokenManager) Tokens() []Token {
	out := make([]Token, len(*m.tokens))
	copy(out, *m.tokens)
	return out
}
