package gate

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/photodesk/access/internal/resolver"
	"github.com/photodesk/access/types"
)

// state names one step of an evaluation, used for trace logging only.
// One evaluation walks these in order and ends at admitted or denied;
// the caller never observes them, it only gets the final Decision.
type state string

const (
	stateCredentialsSubmitted state = "credentials submitted"
	stateRoleResolving        state = "role resolving"
	stateAdmitted             state = "admitted"
	stateDenied               state = "denied"
	stateRedirected           state = "redirected"
)

// user-facing denial messages.
// They never name the resolved role, so a probing caller learns nothing
// about the account they tried.
const (
	msgMissingCredentials = "identifier and secret are required"
	msgSignInRequired     = "sign-in required"
	msgInsufficientRole   = "access denied: insufficient privileges"
	msgLookupFailed       = "could not verify permissions, please try again"
)

var _ types.Gate = (*Gate)(nil)

// Gate decides admission to role-gated areas of the storefront.
// It holds no per-session state: each evaluation is an independent chain
// of at most two provider round trips.
type Gate struct {
	provider   types.IdentityProvider
	resolver   *resolver.Resolver
	entryPoint string
	log        logr.Logger
}

// New creates a Gate over the given identity provider and role resolver.
// entryPoint is where passive visitors holding a non-matching role are
// redirected to.
func New(provider types.IdentityProvider, resolver *resolver.Resolver, entryPoint string, log logr.Logger) *Gate {
	return &Gate{
		provider:   provider,
		resolver:   resolver,
		entryPoint: entryPoint,
		log:        log,
	}
}

// Evaluate runs one admission evaluation: a sign-in attempt when the
// request carries credentials, an existing-session check otherwise.
func (g *Gate) Evaluate(ctx context.Context, req types.Request) types.Decision {
	if req.Credentials != nil {
		return g.SignIn(ctx, *req.Credentials, req.Required)
	}
	return g.CheckSession(ctx, req.Required)
}

// SignIn evaluates an active credential submission against the area
// guarded by required.
func (g *Gate) SignIn(ctx context.Context, creds types.Credentials, required types.Role) types.Decision {
	if creds.Identifier == "" || creds.Secret == "" {
		return types.Deny(types.ReasonMissingCredentials, msgMissingCredentials)
	}

	g.trace(stateCredentialsSubmitted, "identifier", creds.Identifier, "required", required)

	sess, e := g.provider.Verify(ctx, creds.Identifier, creds.Secret)
	if e != nil {
		// terminal for this submission, the caller decides whether to retry
		g.trace(stateDenied, "identifier", creds.Identifier, "reason", types.ReasonInvalidCredentials)
		return types.Deny(types.ReasonInvalidCredentials, e.Error())
	}

	g.trace(stateRoleResolving, "subject", sess.Subject)

	role, e := g.resolver.ResolveRole(ctx, sess.Subject)
	if e != nil {
		// infrastructure failure, not a policy violation: leave the
		// session alone and tell the user something generic
		g.log.Error(e, "resolve role after sign-in", "subject", sess.Subject)
		return types.Deny(types.ReasonProfileLookupFailed, msgLookupFailed)
	}

	if role != required {
		// an unauthorized elevation attempt must not leave a valid
		// session behind for the client to retry privileged actions with
		if e := g.provider.Revoke(ctx, sess.Subject); e != nil {
			g.log.Error(e, "revoke session after denied sign-in", "subject", sess.Subject)
		}
		g.trace(stateDenied, "subject", sess.Subject, "reason", types.ReasonInsufficientRole)
		return types.DenyRevoked(types.ReasonInsufficientRole, msgInsufficientRole)
	}

	g.trace(stateAdmitted, "subject", sess.Subject, "role", role)
	return types.Admit(role)
}

// CheckSession evaluates any currently valid session against required.
func (g *Gate) CheckSession(ctx context.Context, required types.Role) types.Decision {
	sess, ok, e := g.provider.CurrentSession(ctx)
	if e != nil {
		g.log.Error(e, "introspect current session")
		return types.Deny(types.ReasonProfileLookupFailed, msgLookupFailed)
	}
	if !ok {
		return types.Deny(types.ReasonNoSession, msgSignInRequired)
	}

	g.trace(stateRoleResolving, "subject", sess.Subject)

	role, e := g.resolver.ResolveRole(ctx, sess.Subject)
	if e != nil {
		g.log.Error(e, "resolve role of current session", "subject", sess.Subject)
		return types.Deny(types.ReasonProfileLookupFailed, msgLookupFailed)
	}

	if role != required {
		// at the wrong door, not an attacker: keep the session and send
		// the visitor back to the common entry point
		g.trace(stateRedirected, "subject", sess.Subject, "target", g.entryPoint)
		return types.Redirect(g.entryPoint)
	}

	g.trace(stateAdmitted, "subject", sess.Subject, "role", role)
	return types.Admit(role)
}

func (g *Gate) trace(s state, kv ...interface{}) {
	g.log.V(4).Info(string(s), kv...)
}
