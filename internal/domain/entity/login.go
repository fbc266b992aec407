package entity

// LoginInfo links a user to an external login provider account.
type LoginInfo struct {
	LoginProvider string `bson:"login_provider" json:"login_provider"`
	ProviderKey   string `bson:"provider_key" json:"provider_key"`
	DisplayName   string `bson:"display_name,omitempty" json:"display_name,omitempty"`
}

// UserLogin is a single login projected out of a user document.
type UserLogin[K Key] struct {
	UserID        K      `bson:"user_id" json:"user_id"`
	LoginProvider string `bson:"login_provider" json:"login_provider"`
	ProviderKey   string `bson:"provider_key" json:"provider_key"`
	DisplayName   string `bson:"display_name,omitempty" json:"display_name,omitempty"`
}

// LoginManager operates on the logins slice of one user.
type LoginManager struct {
	logins *[]LoginInfo
}

func NewLoginManager(logins *[]LoginInfo) *LoginManager {
	return &LoginManager{logins: logins}
}

func (m *LoginManager) Find(loginProvider, providerKey string) (*LoginInfo, bool) {
	for i := range *m.logins {
		l := &(*m.logins)[i]
		if l.LoginProvider == loginProvider && l.ProviderKey == providerKey {
			return l, true
		}
	}
	return nil, false
}

// Has matches on provider and key, and also on display name when it is non-empty.
func (m *LoginManager) Has(l LoginInfo) bool {
	existing, ok := m.Find(l.LoginProvider, l.ProviderKey)
	if !ok {
		return false
	}
	return l.DisplayName == "" || existing.DisplayName == l.DisplayName
}

func (m *LoginManager) TryAdd(l LoginInfo) bool {
	if _, ok := m.Find(l.LoginProvider, l.ProviderKey); ok {
		return false
	}
	*m.logins = append(*m.logins, l)
	return true
}

// TryRemove drops the matching login. An empty display name matches any display name.
func (m *LoginManager) TryRemove(l LoginInfo) bool {
	kept := (*m.logins)[:0]
	removed := false
	for _, existing := range *m.logins {
		if existing.LoginProvider == l.LoginProvider && existing.ProviderKey == l.ProviderKey &&
			(l.DisplayName == "" || existing.DisplayName == l.DisplayName) {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	*m.logins = kept
	return removed
}

func (m *LoginManager) Logins() []LoginInfo {
	out := make([]LoginInfo, len(*m.logins))
	copy(out, *m.logins)
	return out
}
