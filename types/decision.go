package types

// Effect is the overall outcome of one gate evaluation
type Effect string

// possible outcomes of an evaluation
const (
	EffectAdmit    Effect = "admit"
	EffectDeny     Effect = "deny"
	EffectRedirect Effect = "redirect"
)

// Reason classifies why an evaluation did not admit the caller.
// Tests and callers branch on the Reason; the Message is what a user sees.
type Reason string

// possible denial reasons
const (
	ReasonNone                Reason = ""
	ReasonMissingCredentials  Reason = "missing credentials"
	ReasonInvalidCredentials  Reason = "invalid credentials"
	ReasonNoSession           Reason = "no session"
	ReasonInsufficientRole    Reason = "insufficient role"
	ReasonProfileLookupFailed Reason = "profile lookup failed"
)

// Decision is the ephemeral outcome of one admission evaluation.
// It is not persisted: the caller consumes it immediately to drive
// navigation, then discards it.
type Decision struct {
	Effect Effect

	// Role is the resolved role, set on admission only.
	// A denial never carries the resolved role, so a probing caller
	// cannot learn which role an account holds.
	Role Role

	Reason Reason

	// Message is the user-facing text for a denial
	Message string

	// Target is where to send the caller instead, set on redirection only
	Target string

	// Revoked reports that the session was signed out as a side effect
	Revoked bool
}

// Admit lets the caller proceed into the gated area as role
func Admit(role Role) Decision {
	return Decision{Effect: EffectAdmit, Role: role}
}

// Deny keeps the caller at the gate with the given reason
func Deny(reason Reason, message string) Decision {
	return Decision{Effect: EffectDeny, Reason: reason, Message: message}
}

// DenyRevoked is a denial whose evaluation also signed the session out
func DenyRevoked(reason Reason, message string) Decision {
	return Decision{Effect: EffectDeny, Reason: reason, Message: message, Revoked: true}
}

// Redirect sends the caller to another area, leaving the session valid
func Redirect(target string) Decision {
	return Decision{Effect: EffectRedirect, Target: target}
}

// Allowed tells if the decision admits the caller
func (d Decision) Allowed() bool {
	return d.Effect == EffectAdmit
}
