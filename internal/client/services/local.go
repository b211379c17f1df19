package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
)

// Local is implemented by pointers to locally scoped entity types.
type Local[T any] interface {
	*T
	GetID() string
	SetID(id string)
	Modified() time.Time
	OnCreate(now time.Time)
	OnUpdate(now time.Time)
	Validate() error
}

var errUnchanged = errors.New("unchanged")

// Add creates item in collection c and returns it with its generated id and
// timestamps.
func Add[T any, P Local[T]](ctx context.Context, d *Dispatcher, c store.Collection[T], item T) (T, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var zero T
	if _, err := d.gate(ctx, c.Name()); err != nil {
		return zero, err
	}

	id, err := d.newID()
	if err != nil {
		return zero, fmt.Errorf("generate id: %w", err)
	}
	P(&item).SetID(id)
	P(&item).OnCreate(d.stamp(time.Time{}))
	if err := P(&item).Validate(); err != nil {
		return zero, err
	}

	err = store.Modify(ctx, d.store, c, func(items []T) ([]T, error) {
		return append(items, item), nil
	})
	if err != nil {
		return zero, err
	}
	d.log.Debug(ctx, "created", "collection", c.Name(), "id", id)
	return item, nil
}

// Update applies fn to the entity with the given id and refreshes its
// modification time. An unknown id is a silent no-op.
func Update[T any, P Local[T]](ctx context.Context, d *Dispatcher, c store.Collection[T], id string, fn func(*T)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := store.Modify(ctx, d.store, c, func(items []T) ([]T, error) {
		i := slices.IndexFunc(items, func(it T) bool { return P(&it).GetID() == id })
		if i < 0 {
			return nil, errUnchanged
		}
		item := items[i]
		prev := P(&item).Modified()
		fn(&item)
		P(&item).SetID(id)
		P(&item).OnUpdate(d.stamp(prev))
		if err := P(&item).Validate(); err != nil {
			return nil, err
		}
		items[i] = item
		return items, nil
	})
	if errors.Is(err, errUnchanged) {
		d.log.Debug(ctx, "update of unknown id ignored", "collection", c.Name(), "id", id)
		return nil
	}
	if err != nil {
		return err
	}
	d.log.Debug(ctx, "updated", "collection", c.Name(), "id", id)
	return nil
}

// Delete removes the entity with the given id. Deleting an unknown id is not
// an error. Weak references to the entity are left dangling.
func Delete[T any, P Local[T]](ctx context.Context, d *Dispatcher, c store.Collection[T], id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	err := store.Modify(ctx, d.store, c, func(items []T) ([]T, error) {
		n := len(items)
		items = slices.DeleteFunc(items, func(it T) bool { return P(&it).GetID() == id })
		if len(items) == n {
			return nil, errUnchanged
		}
		return items, nil
	})
	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	d.log.Debug(ctx, "deleted", "collection", c.Name(), "id", id)
	return nil
}
