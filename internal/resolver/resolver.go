package resolver

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/photodesk/access/types"
)

// Resolver fetches a subject's role from the external profile store.
//
// It does not cache: every admission decision re-resolves the role fresh,
// paying the extra round trip so a demotion takes effect on the very next
// evaluation. It does not retry either; retry policy, if any, belongs to
// the store's own client.
type Resolver struct {
	profiles types.ProfileStore
	log      logr.Logger
}

// New creates a Resolver reading from the given profile store
func New(profiles types.ProfileStore, log logr.Logger) *Resolver {
	return &Resolver{profiles: profiles, log: log}
}

// ResolveRole returns the role stored on the subject's profile.
// A missing profile surfaces types.ErrProfileNotFound: an authenticated
// identity without a profile is an inconsistent state, not a soft miss.
// A stored role outside the enumeration surfaces types.ErrUnknownRole.
func (r *Resolver) ResolveRole(ctx context.Context, subject string) (types.Role, error) {
	role, e := r.profiles.FindRole(ctx, subject)
	if e != nil {
		return "", fmt.Errorf("resolve role of %q: %w", subject, e)
	}

	if !role.Valid() {
		return "", fmt.Errorf("profile of %q holds %w: %q", subject, types.ErrUnknownRole, role)
	}

	r.log.V(4).Info("role resolved", "subject", subject, "role", role)
	return role, nil
}
