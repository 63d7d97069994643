// Package mgo provides a profile store backed by mongodb.
package mgo

import (
	"context"
	"fmt"

	"github.com/globalsign/mgo"
	"github.com/globalsign/mgo/bson"
	"github.com/go-logr/logr"
	"github.com/photodesk/access/types"
)

var _ types.ProfileStore = (*ProfileStore)(nil)

// ProfileStore reads subject roles from a mongodb collection.
// Each profile is one document keyed by subject identifier.
type ProfileStore struct {
	*collection
	log logr.Logger
}

// NewProfileStore uses the given mongodb collection as backend to read and
// write subject profiles
func NewProfileStore(coll *mgo.Collection, opts ...storeOption) (*ProfileStore, error) {
	s := &ProfileStore{collection: &collection{Collection: coll}, log: logr.Discard()}
	for _, opt := range opts {
		opt(s)
	}

	ss := s.copySession()
	defer ss.closeSession()

	if e := ss.EnsureIndex(mgo.Index{Key: []string{"role"}}); e != nil {
		return nil, e
	}

	return s, nil
}

type profileDO struct {
	Subject string `bson:"_id"`
	Role    string `bson:"role"`
}

// FindRole returns the role stored on the subject's profile, reading only
// the role field
func (s *ProfileStore) FindRole(_ context.Context, subject string) (types.Role, error) {
	ss := s.copySession()
	defer ss.closeSession()

	var do profileDO
	e := ss.Find(bson.M{"_id": subject}).Select(bson.M{"role": 1}).One(&do)
	if e == mgo.ErrNotFound {
		return "", types.ErrProfileNotFound
	}
	if e != nil {
		return "", fmt.Errorf("find role of %q: %w", subject, e)
	}

	role, e := types.ParseRole(do.Role)
	if e != nil {
		return "", e
	}

	s.log.V(4).Info("role found", "subject", subject, "role", role)
	return role, nil
}

// UpsertRole stores a role on the subject's profile, creating the profile
// when absent. It is meant for admin tooling and data seeding; the access
// subsystem itself only ever reads.
func (s *ProfileStore) UpsertRole(_ context.Context, subject string, role types.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %q", types.ErrUnknownRole, role)
	}

	ss := s.copySession()
	defer ss.closeSession()

	_, e := ss.UpsertId(subject, bson.M{"$set": bson.M{"role": role.String()}})
	return e
}

// WithLogger sets logger for the store
func WithLogger(l logr.Logger) storeOption {
	return func(s *ProfileStore) {
		s.log = l
	}
}

type storeOption func(*ProfileStore)
