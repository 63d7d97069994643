package types

// Catalog is the immutable role → capability-set table of the storefront.
// It is built once at startup and is safe for concurrent reads.
//
// There is no hierarchy between roles: each role's set is enumerated
// explicitly, even where it is conceptually a superset of a lower tier,
// and no capability implies another.
type Catalog interface {
	// CapabilitiesFor returns the set granted to role.
	// It is total over the enumerated roles: every valid role has a defined,
	// possibly empty, entry. A role outside the enumeration is a programming
	// error on the caller's side and yields ErrUnknownRole.
	CapabilitiesFor(Role) (CapabilitySet, error)

	// IsAuthorized tells if role holds capability: a pure membership test
	// against CapabilitiesFor(role). UI visibility and backend enforcement
	// must both consult this same primitive, so the two cannot drift apart.
	IsAuthorized(Role, Capability) bool
}
