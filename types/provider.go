package types

import "context"

// Session is externally issued proof of a subject's current authentication.
// Its validity is owned by the identity provider: this subsystem only reads
// the subject identifier and, on a policy violation, asks the provider to
// revoke the session. It never persists sessions itself.
type Session struct {
	// Subject is the opaque identifier of the authenticated identity
	Subject string
}

// IdentityProvider is the external credential verification and session
// issuance service. Secret formats, password policy, hashing, and token
// issuance are all its business; this subsystem treats every call as opaque
// and propagates failures without retrying. Timeouts and retries, if any,
// belong to the provider's client.
type IdentityProvider interface {
	// Verify checks a credential pair and, on success, establishes a
	// session for the identified subject
	Verify(ctx context.Context, identifier, secret string) (Session, error)

	// CurrentSession returns the currently valid session, if there is one
	CurrentSession(ctx context.Context) (Session, bool, error)

	// Revoke signs the subject's session out.
	// It is always safe to call, even when the subject is already
	// signed out.
	Revoke(ctx context.Context, subject string) error
}

// ProfileStore reads subject profiles persisted outside this subsystem.
// A profile is owned by the external store; this subsystem only ever reads
// the role attribute from it.
type ProfileStore interface {
	// FindRole returns the role stored on the subject's profile: a
	// single-field, single-record read keyed by subject identifier.
	// It returns ErrProfileNotFound when no profile exists for the subject.
	FindRole(ctx context.Context, subject string) (Role, error)
}
