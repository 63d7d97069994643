package types

import "errors"

// exported errors
var (
	// ErrUnknownRole reports a role value outside the enumeration reaching
	// the catalog or a profile record: a data integrity or programming bug
	// upstream, not a user error
	ErrUnknownRole = errors.New("unknown role")

	// ErrProfileNotFound reports an authenticated identity with no profile
	// record, an inconsistent state treated as a hard error by callers
	ErrProfileNotFound = errors.New("profile not found")

	// ErrIncompleteCatalog reports a catalog that does not define an entry
	// for every enumerated role
	ErrIncompleteCatalog = errors.New("catalog does not cover every role")
)
