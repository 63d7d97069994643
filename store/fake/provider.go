package fake

import (
	"context"
	"errors"
	"sync"

	"github.com/photodesk/access/types"
)

var _ types.IdentityProvider = (*IdentityProvider)(nil)

type account struct {
	secret  string
	subject string
}

// IdentityProvider is a fake identity provider which should not be used in
// real works. It holds at most one current session, the way a browser
// client does.
type IdentityProvider struct {
	mu       sync.Mutex
	accounts map[string]account
	current  *types.Session
	err      error
}

// NewIdentityProvider creates an empty fake identity provider
func NewIdentityProvider() *IdentityProvider {
	return &IdentityProvider{
		accounts: make(map[string]account),
	}
}

// Register adds an account the provider will verify
func (p *IdentityProvider) Register(identifier, secret, subject string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.accounts[identifier] = account{secret: secret, subject: subject}
}

// StartSession seeds a current session without a sign-in, for
// existing-session flows
func (p *IdentityProvider) StartSession(subject string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = &types.Session{Subject: subject}
}

// FailWith makes every following call return err, for outage flows
func (p *IdentityProvider) FailWith(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = err
}

func (p *IdentityProvider) Verify(_ context.Context, identifier, secret string) (types.Session, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return types.Session{}, p.err
	}

	acc, ok := p.accounts[identifier]
	if !ok || acc.secret != secret {
		return types.Session{}, errors.New("invalid identifier or secret")
	}

	p.current = &types.Session{Subject: acc.subject}
	return *p.current, nil
}

func (p *IdentityProvider) CurrentSession(context.Context) (types.Session, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return types.Session{}, false, p.err
	}
	if p.current == nil {
		return types.Session{}, false, nil
	}
	return *p.current, true, nil
}

func (p *IdentityProvider) Revoke(_ context.Context, subject string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	if p.current != nil && p.current.Subject == subject {
		p.current = nil
	}
	// revoking an already signed out subject is fine
	return nil
}
