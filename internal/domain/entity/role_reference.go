package entity

// RoleReference is a snapshot of a role taken when it was assigned to a user.
// Renaming the role later does not update existing references.
type RoleReference[K Key] struct {
	ID             K      `bson:"_id" json:"id"`
	NormalizedName string `bson:"normalized_name,omitempty" json:"normalized_name,omitempty"`
	Name           string `bson:"name,omitempty" json:"name,omitempty"`
}

// UserRole is a single role membership projected out of a user document.
type UserRole[K Key] struct {
	UserID K `bson:"user_id" json:"user_id"`
	RoleID K `bson:"role_id" json:"role_id"`
}

// RoleManager operates on the role references of one user.
type RoleManager[K Key] struct {
	roles *[]RoleReference[K]
}

func NewRoleManager[K Key](roles *[]RoleReference[K]) *RoleManager[K] {
	return &RoleManager[K]{roles: roles}
}

func (m *RoleManager[K]) Find(id K) (*RoleReference[K], bool) {
	for i := range *m.roles {
		if (*m.roles)[i].ID == id {
			return &(*m.roles)[i], true
		}
	}
	return nil, false
}

func (m *RoleManager[K]) Has(id K) bool {
	_, ok := m.Find(id)
	return ok
}

func (m *RoleManager[K]) HasName(normalizedName string) bool {
	for _, r := range *m.roles {
		if r.NormalizedName == normalizedName {
			return true
		}
	}
	return false
}

// TryAdd appends ref unless a reference with the same id exists.
func (m *RoleManager[K]) TryAdd(ref RoleReference[K]) bool {
	if m.Has(ref.ID) {
		return false
	}
	*m.roles = append(*m.roles, ref)
	return true
}

// TryRemove drops every reference with the given normalized name.
func (m *RoleManager[K]) TryRemove(normalizedName string) bool {
	kept := (*m.roles)[:0]
	removed := false
	for _, r := range *m.roles {
		if r.NormalizedName == normalizedName {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	*m.roles = kept
	return removed
}

func (m *RoleManager[K]) Roles() []RoleReference[K] {
	out := make([]RoleReference[K], len(*m.roles))
	copy(out, *m.roles)
	return out
}
