package entity

// Claim is a statement about a user or role. Lookups match on Type and Value only.
type Claim struct {
	Type      string `bson:"type" json:"type"`
	Value     string `bson:"value" json:"value"`
	ValueType string `bson:"value_type,omitempty" json:"value_type,omitempty"`
	Issuer    string `bson:"issuer,omitempty" json:"issuer,omitempty"`
}

func (c Claim) matches(claimType, value string) bool {
	return c.Type == claimType && c.Value == value
}

// ClaimManager operates on the claims slice of one aggregate.
type ClaimManager struct {
	claims *[]Claim
}

func NewClaimManager(claims *[]Claim) *ClaimManager {
	return &ClaimManager{claims: claims}
}

func (m *ClaimManager) Has(claimType, value string) bool {
	_, ok := m.Find(claimType, value)
	return ok
}

// Find returns the first claim with the given type and value.
func (m *ClaimManager) Find(claimType, value string) (*Claim, bool) {
	for i := range *m.claims {
		if (*m.claims)[i].matches(claimType, value) {
			return &(*m.claims)[i], true
		}
	}
	return nil, false
}

// TryAdd appends every claim whose type/value pair is not present yet.
// It reports whether at least one claim was added.
func (m *ClaimManager) TryAdd(claims ...Claim) bool {
	added := false
	for _, c := range claims {
		if m.Has(c.Type, c.Value) {
			continue
		}
		*m.claims = append(*m.claims, c)
		added = true
	}
	return added
}

// TryReplace overwrites all fields of every claim matching old.
func (m *ClaimManager) TryReplace(old, replacement Claim) bool {
	replaced := false
	for i := range *m.claims {
		if (*m.claims)[i].matches(old.Type, old.Value) {
			(*m.claims)[i] = replacement
			replaced = true
		}
	}
	return replaced
}

// TryRemove drops every claim matching any of the given claims.
func (m *ClaimManager) TryRemove(claims ...Claim) bool {
	kept := (*m.claims)[:0]
	removed := false
	for _, existing := range *m.claims {
		drop := false
		for _, c := range claims {
			if existing.matches(c.Type, c.Value) {
				drop = true
				break
			}
		}
		if drop {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	*m.claims = kept
	return removed
}

func (m *ClaimManager) Claims() []Claim {
	out := make([]Claim, len(*m.claims))
	copy(out, *m.claims)
	return out
}
