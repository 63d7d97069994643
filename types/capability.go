package types

// Capability names a single grantable action, like "orders.place".
// Membership is binary: a role either holds a capability or it does not.
// Capabilities are never parameterized and never imply one another.
type Capability string

func (c Capability) String() string {
	return string(c)
}

// CapabilitySet is the set of capabilities granted to one role
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet makes a set of the given capabilities, dropping duplicates
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	s.Add(caps...)
	return s
}

// Has tells if c is a member of the set
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Add puts the given capabilities into the set
func (s CapabilitySet) Add(caps ...Capability) {
	for _, c := range caps {
		s[c] = struct{}{}
	}
}

// Clone returns an independent copy of the set
func (s CapabilitySet) Clone() CapabilitySet {
	out := make(CapabilitySet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Slice returns the members in unspecified order
func (s CapabilitySet) Slice() []Capability {
	out := make([]Capability, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}
