package catalog

import (
	"fmt"

	"github.com/photodesk/access/types"
)

var _ types.Catalog = (*Catalog)(nil)

// Catalog is the immutable role → capability-set table.
// Once built it is never mutated, so concurrent reads need no locking.
type Catalog struct {
	grants map[types.Role]types.CapabilitySet
}

// New builds a catalog from the given grants table.
// Every enumerated role must have exactly one entry, possibly empty, and no
// entry may name a role outside the enumeration; either violation fails
// construction, it is a startup bug rather than something to recover from
// at evaluation time. The input sets are copied, later changes to them do
// not reach the catalog.
func New(grants map[types.Role]types.CapabilitySet) (*Catalog, error) {
	for role := range grants {
		if !role.Valid() {
			return nil, fmt.Errorf("catalog entry for %w: %q", types.ErrUnknownRole, role)
		}
	}

	owned := make(map[types.Role]types.CapabilitySet, len(grants))
	for _, role := range types.AllRoles() {
		set, ok := grants[role]
		if !ok {
			return nil, fmt.Errorf("%w: no entry for %q", types.ErrIncompleteCatalog, role)
		}
		owned[role] = set.Clone()
	}

	return &Catalog{grants: owned}, nil
}

// CapabilitiesFor returns a copy of the set granted to role
func (c *Catalog) CapabilitiesFor(role types.Role) (types.CapabilitySet, error) {
	set, ok := c.grants[role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownRole, role)
	}
	return set.Clone(), nil
}

// IsAuthorized tells if role holds capability.
// An out-of-enumeration role holds nothing.
func (c *Catalog) IsAuthorized(role types.Role, capability types.Capability) bool {
	set, ok := c.grants[role]
	return ok && set.Has(capability)
}
