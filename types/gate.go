package types

import "context"

// Credentials is a sign-in attempt's identifier and secret pair.
// No correctness checks happen locally beyond non-emptiness; everything
// else is delegated to the identity provider.
type Credentials struct {
	Identifier string
	Secret     string
}

// Request describes one admission evaluation against a role-gated area.
type Request struct {
	// Credentials, when set, make this an active sign-in attempt.
	// When nil, the gate checks the existing session instead.
	Credentials *Credentials

	// Required is the role tier of the target area,
	// Admin for the admin-gated surface
	Required Role
}

// Gate evaluates whether a subject may enter a role-gated area.
//
// Each evaluation is one sequential chain of at most two external round
// trips, credential verification then profile lookup, and is independent of
// any other evaluation: the gate holds no per-session state and no queue.
// Admit and deny outcomes are terminal for one evaluation; to retry, the
// caller simply evaluates again.
type Gate interface {
	// Evaluate runs one admission evaluation and returns its Decision.
	// The caller maps an admit to proceeding into the area, a denial to
	// showing the decision's message and staying at the gate, and a
	// redirection to navigating to the decision's target.
	Evaluate(ctx context.Context, req Request) Decision

	// SignIn evaluates an active credential submission for the area
	// guarded by required. If the credentials verify but the resolved role
	// does not match, the session is revoked before the denial is
	// reported: an unauthorized elevation attempt must not leave a valid
	// session behind.
	SignIn(ctx context.Context, creds Credentials, required Role) Decision

	// CheckSession evaluates any currently valid session against required.
	// A session holding a non-matching role is redirected, not revoked:
	// a customer visiting the admin entry point is at the wrong door,
	// not an attacker.
	CheckSession(ctx context.Context, required Role) Decision
}
