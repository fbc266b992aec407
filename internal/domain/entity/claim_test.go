package entity

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ClaimManagerSuite struct {
	suite.Suite
	claims  []Claim
	manager *ClaimManager
}

func TestClaimManagerSuite(t *testing.T) {
	suite.Run(t, new(ClaimManagerSuite))
}

func (s *ClaimManagerSuite) SetupTest() {
	s.claims = []Claim{}
	s.manager = NewClaimManager(&s.claims)
}

func (s *ClaimManagerSuite) TestTryAdd() {
	s.Run("detects duplicate type/value pair", func() {
		s.True(s.manager.TryAdd(Claim{Type: "perm", Value: "write"}))
		s.False(s.manager.TryAdd(Claim{Type: "perm", Value: "write", Issuer: "other"}))
		s.Len(s.claims, 1)
	})

	s.Run("distinct pairs are independent of insertion order", func() {
		s.SetupTest()
		c1 := Claim{Type: "dept", Value: "eng"}
		c2 := Claim{Type: "dept", Value: "ops"}
		s.True(s.manager.TryAdd(c2, c1))
		s.True(s.manager.Has(c1.Type, c1.Value))
		s.True(s.manager.Has(c2.Type, c2.Value))
	})

	s.Run("multi add reports true when any claim was added", func() {
		s.SetupTest()
		s.manager.TryAdd(Claim{Type: "a", Value: "1"})
		s.True(s.manager.TryAdd(Claim{Type: "a", Value: "1"}, Claim{Type: "b", Value: "2"}))
		s.False(s.manager.TryAdd(Claim{Type: "a", Value: "1"}, Claim{Type: "b", Value: "2"}))
		s.Len(s.claims, 2)
	})
}

func (s *ClaimManagerSuite) TestTryReplace() {
	s.Run("rewrites every matching entry", func() {
		s.claims = append(s.claims,
			Claim{Type: "perm", Value: "read", Issuer: "a"},
			Claim{Type: "other", Value: "x"},
			Claim{Type: "perm", Value: "read", Issuer: "b"},
		)
		replacement := Claim{Type: "perm", Value: "write", ValueType: "string", Issuer: "idp"}

		s.True(s.manager.TryReplace(Claim{Type: "perm", Value: "read"}, replacement))
		s.Equal(replacement, s.claims[0])
		s.Equal(replacement, s.claims[2])
		s.Equal(Claim{Type: "other", Value: "x"}, s.claims[1])
	})

	s.Run("returns false without a match", func() {
		s.SetupTest()
		s.manager.TryAdd(Claim{Type: "a", Value: "1"})
		s.False(s.manager.TryReplace(Claim{Type: "a", Value: "2"}, Claim{Type: "b", Value: "2"}))
		s.Equal([]Claim{{Type: "a", Value: "1"}}, s.claims)
	})
}

func (s *ClaimManagerSuite) TestTryRemove() {
	s.Run("removes all matches ignoring issuer", func() {
		s.claims = append(s.claims,
			Claim{Type: "perm", Value: "read", Issuer: "a"},
			Claim{Type: "perm", Value: "read", Issuer: "b"},
			Claim{Type: "perm", Value: "write"},
		)
		s.True(s.manager.TryRemove(Claim{Type: "perm", Value: "read"}))
		s.Equal([]Claim{{Type: "perm", Value: "write"}}, s.claims)
	})

	s.Run("returns false when nothing matched", func() {
		s.False(s.manager.TryRemove(Claim{Type: "missing", Value: "x"}))
	})
}

func (s *ClaimManagerSuite) TestClaimsIsSnapshot() {
	s.manager.TryAdd(Claim{Type: "a", Value: "1"})
	snapshot := s.manager.Claims()
	snapshot[0].Value = "changed"

	c, ok := s.manager.Find("a", "1")
	s.Require().True(ok)
	s.Equal("1", c.Value)
}
