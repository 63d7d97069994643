package access

import (
	"errors"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/photodesk/access/internal/catalog"
	"github.com/photodesk/access/internal/gate"
	"github.com/photodesk/access/internal/resolver"
	"github.com/photodesk/access/types"
)

// defaultEntryPoint is where passive visitors with a non-matching role are
// sent when no WithEntryPoint option is given
const defaultEntryPoint = "/"

// New creates a session Gate
func New(opts ...GateOption) (types.Gate, error) {
	cfg := &GateConfig{
		entryPoint: defaultEntryPoint,
		log:        stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, errors.New("empty identity provider")
	}
	if cfg.profiles == nil {
		return nil, errors.New("empty profile store")
	}

	res := resolver.New(cfg.profiles, cfg.log.WithName("resolver"))

	return gate.New(cfg.provider, res, cfg.entryPoint, cfg.log.WithName("gate")), nil
}

// NewCatalog builds an immutable permission catalog from the given grants.
// Every enumerated role must have exactly one entry, possibly empty; the
// catalog never changes after construction, so pass a test table here to
// substitute one in unit tests.
func NewCatalog(grants map[types.Role]types.CapabilitySet) (types.Catalog, error) {
	return catalog.New(grants)
}

// WithIdentityProvider sets the external credential verification and
// session issuance service the gate delegates to
func WithIdentityProvider(p types.IdentityProvider) GateOption {
	return func(cfg *GateConfig) {
		cfg.provider = p
	}
}

// WithProfileStore sets the external store subject roles are read from
func WithProfileStore(s types.ProfileStore) GateOption {
	return func(cfg *GateConfig) {
		cfg.profiles = s
	}
}

// WithEntryPoint sets the redirect target for valid sessions visiting an
// area their role does not match
func WithEntryPoint(target string) GateOption {
	return func(cfg *GateConfig) {
		cfg.entryPoint = target
	}
}

// WithLogger sets logger for gate components
func WithLogger(l logr.Logger) GateOption {
	return func(cfg *GateConfig) {
		cfg.log = l
	}
}

// GateConfig works together with GateOption to control the initialization
// of a gate
type GateConfig struct {
	provider   types.IdentityProvider
	profiles   types.ProfileStore
	entryPoint string
	log        logr.Logger
}

// GateOption controls how to init a gate
type GateOption func(*GateConfig)
