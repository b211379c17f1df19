package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/logging"
)

// Entity is implemented by pointers to remote entity types.
type Entity[T any] interface {
	*T
	GetID() string
	SetRemoteMeta(id string, createdAt, updatedAt time.Time)
}

// serverFields are owned by the remote store and never sent to it.
var serverFields = []string{"id", "createdAt", "lastUpdated"}

// Synced is a remote collection mirrored into a cache collection of the
// local store.
type Synced[T any, P Entity[T]] struct {
	docs  DocumentStore
	store *store.Store
	cache store.Collection[T]
	log   logging.Logger

	// mu guards the fetch generations. A fetch only lands when no fetch
	// started after it has landed already.
	mu      sync.Mutex
	started uint64
	landed  uint64
}

func NewSynced[T any, P Entity[T]](docs DocumentStore, st *store.Store, cache store.Collection[T], log logging.Logger) *Synced[T, P] {
	return &Synced[T, P]{docs: docs, store: st, cache: cache, log: log}
}

func (c *Synced[T, P]) Name() string { return c.cache.Name() }

// FetchAll lists the collection newest first. Documents that no longer
// decode are skipped.
func (c *Synced[T, P]) FetchAll(ctx context.Context) ([]T, error) {
	docs, err := c.docs.List(ctx, c.Name())
	if err != nil {
		return nil, newRemoteError("fetch", c.Name(), err)
	}

	items := make([]T, 0, len(docs))
	for _, d := range docs {
		var item T
		if err := json.Unmarshal(d.Data, &item); err != nil {
			c.log.Warn(ctx, "skipping undecodable document", "collection", c.Name(), "id", d.ID, "error", err)
			continue
		}
		P(&item).SetRemoteMeta(d.ID, d.CreatedAt, d.UpdatedAt)
		items = append(items, item)
	}
	return items, nil
}

// Refresh replaces the cache with the current remote contents. On failure
// the cache keeps its last fetched state. A fetch overtaken by a newer one
// is dropped.
func (c *Synced[T, P]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.started++
	gen := c.started
	c.mu.Unlock()

	items, err := c.FetchAll(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.landed {
		c.log.Debug(ctx, "dropping stale fetch", "collection", c.Name())
		return nil
	}
	c.landed = gen
	return store.Write(ctx, c.store, c.cache, items)
}

// Create stores item remotely and returns the id the store assigned.
func (c *Synced[T, P]) Create(ctx context.Context, item T) (string, error) {
	fields, err := toFields(item)
	if err != nil {
		return "", err
	}
	id, err := c.docs.Create(ctx, c.Name(), fields)
	if err != nil {
		return "", newRemoteError("create", c.Name(), err)
	}
	return id, c.Refresh(ctx)
}

// Update merges fields into the document with the given id.
func (c *Synced[T, P]) Update(ctx context.Context, id string, fields map[string]any) error {
	for _, k := range serverFields {
		delete(fields, k)
	}
	if err := c.docs.Update(ctx, c.Name(), id, fields); err != nil {
		return newRemoteError("update", c.Name(), err)
	}
	return c.Refresh(ctx)
}

func (c *Synced[T, P]) Delete(ctx context.Context, id string) error {
	if err := c.docs.Delete(ctx, c.Name(), id); err != nil {
		return newRemoteError("delete", c.Name(), err)
	}
	return c.Refresh(ctx)
}

// Cached returns the last fetched contents.
func (c *Synced[T, P]) Cached() []T {
	return store.Read(c.store, c.cache)
}

// Find looks id up in the cache.
func (c *Synced[T, P]) Find(id string) (T, bool) {
	for _, item := range c.Cached() {
		if P(&item).GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Lookup is Find with a refetch when the cache misses, so a cold cache is
// never taken as the remote truth.
func (c *Synced[T, P]) Lookup(ctx context.Context, id string) (T, bool, error) {
	if item, ok := c.Find(id); ok {
		return item, true, nil
	}
	if err := c.Refresh(ctx); err != nil {
		var zero T
		return zero, false, err
	}
	item, ok := c.Find(id)
	return item, ok, nil
}

func toFields(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	for _, k := range serverFields {
		delete(fields, k)
	}
	return fields, nil
}
