package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/recruitkeeper/internal/logging"
)

// Store is the authoritative in-memory copy of the tracker's collections.
// Every write to a local collection is flushed to the repository before it
// becomes visible; a failed flush leaves memory unchanged.
type Store struct {
	mu     sync.RWMutex
	repo   snapshot.Repository
	log    logging.Logger
	local  models.LocalData
	user   *models.Identity
	remote caches
}

// Open loads the durable snapshot from repo. A missing or unreadable
// snapshot yields an empty store; Open never fails.
func Open(ctx context.Context, repo snapshot.Repository, log logging.Logger) *Store {
	s := &Store{repo: repo, log: log}

	p, err := repo.Load(ctx)
	switch {
	case errors.Is(err, snapshot.ErrNoSnapshot):
		log.Debug(ctx, "no snapshot found, starting empty")
	case err != nil:
		log.Warn(ctx, "snapshot unreadable, starting empty", "error", err)
	default:
		s.local = p.LocalData
		s.user = p.User
	}
	return s
}

// Read returns a copy of collection c. The result is never nil.
func Read[T any](s *Store, c Collection[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var src []T
	if c.local != nil {
		src = *c.local(&s.local)
	} else {
		src = *c.cache(&s.remote)
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// Write replaces collection c with items. Local collections are flushed
// synchronously; cache collections only change in memory.
func Write[T any](ctx context.Context, s *Store, c Collection[T], items []T) error {
	if c.local == nil {
		s.mu.Lock()
		*c.cache(&s.remote) = slices.Clone(items)
		s.mu.Unlock()
		return nil
	}
	return s.Mutate(ctx, func(d *models.LocalData) error {
		*c.local(d) = slices.Clone(items)
		return nil
	})
}

// Modify runs fn over a copy of collection c and stores its result.
func Modify[T any](ctx context.Context, s *Store, c Collection[T], fn func([]T) ([]T, error)) error {
	return s.Mutate(ctx, func(d *models.LocalData) error {
		slot := c.Slot(d)
		next, err := fn(*slot)
		if err != nil {
			return err
		}
		*slot = next
		return nil
	})
}

// Mutate applies fn to a copy of the local data and flushes the result.
// If fn or the flush fails nothing changes.
func (s *Store) Mutate(ctx context.Context, fn func(*models.LocalData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.local.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if err := s.flush(ctx, next, s.user); err != nil {
		return err
	}
	s.local = next
	return nil
}

// Replace swaps every locally owned collection, the resource cache included,
// in one step.
func (s *Store) Replace(ctx context.Context, data models.LocalData, resources []models.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := data.Clone()
	if err := s.flush(ctx, next, s.user); err != nil {
		return err
	}
	s.local = next
	s.remote.resources = slices.Clone(resources)
	return nil
}

// Clear empties every locally owned collection. Remote collections are not
// owned by this device and stay as they are server side.
func (s *Store) Clear(ctx context.Context) error {
	return s.Replace(ctx, models.LocalData{}, nil)
}

// Contents returns a consistent copy of the local data and the resource cache.
func (s *Store) Contents() (models.LocalData, []models.Resource) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.local.Clone(), slices.Clone(s.remote.resources)
}

// Identity returns the last-known identity, or nil.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}

// SetIdentity records id (nil on sign-out) in the durable snapshot.
func (s *Store) SetIdentity(ctx context.Context, id *models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := id.Clone()
	if err := s.flush(ctx, s.local, user); err != nil {
		return err
	}
	s.user = user
	return nil
}

func (s *Store) flush(ctx context.Context, data models.LocalData, user *models.Identity) error {
	if err := s.repo.Save(ctx, models.Persisted{LocalData: data, User: user}); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return nil
}
