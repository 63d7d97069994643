package fake

import (
	"context"
	"sync"

	"github.com/photodesk/access/types"
)

var _ types.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is a fake profile store which should not be used in real
// works
type ProfileStore struct {
	mu    sync.Mutex
	roles map[string]types.Role
	err   error
}

// NewProfileStore creates an empty fake profile store
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		roles: make(map[string]types.Role),
	}
}

// SetRole stores a role on the subject's profile
func (s *ProfileStore) SetRole(subject string, role types.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[subject] = role
}

// Remove drops the subject's profile
func (s *ProfileStore) Remove(subject string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roles, subject)
}

// FailWith makes every following lookup return err, for outage flows
func (s *ProfileStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *ProfileStore) FindRole(_ context.Context, subject string) (types.Role, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}

	role, ok := s.roles[subject]
	if !ok {
		return "", types.ErrProfileNotFound
	}
	return role, nil
}
