package remote

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryDoc struct {
	id        string
	seq       int
	fields    map[string]any
	createdAt time.Time
	updatedAt time.Time
}

// MemoryStore is an in-process DocumentStore for tests and offline use.
type MemoryStore struct {
	mu    sync.Mutex
	colls map[string][]*memoryDoc
	seq   int
	err   error
	calls int

	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{colls: map[string][]*memoryDoc{}, now: time.Now}
}

// Fail makes every following call return err until Fail(nil).
func (m *MemoryStore) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls counts the operations served, failed ones included.
func (m *MemoryStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MemoryStore) enter() error {
	m.calls++
	return m.err
}

func (m *MemoryStore) List(_ context.Context, collection string) ([]Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return nil, err
	}

	docs := slices.Clone(m.colls[collection])
	slices.SortFunc(docs, func(a, b *memoryDoc) int {
		if c := b.createdAt.Compare(a.createdAt); c != 0 {
			return c
		}
		return b.seq - a.seq
	})

	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		data, err := json.Marshal(d.fields)
		if err != nil {
			return nil, err
		}
		out = append(out, Document{ID: d.id, Data: data, CreatedAt: d.createdAt, UpdatedAt: d.updatedAt})
	}
	return out, nil
}

func (m *MemoryStore) Create(_ context.Context, collection string, fields map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return "", err
	}

	now := m.now()
	m.seq++
	d := &memoryDoc{id: uuid.NewString(), seq: m.seq, fields: maps.Clone(fields), createdAt: now, updatedAt: now}
	if d.fields == nil {
		d.fields = map[string]any{}
	}
	m.colls[collection] = append(m.colls[collection], d)
	return d.id, nil
}

func (m *MemoryStore) Update(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}

	for _, d := range m.colls[collection] {
		if d.id == id {
			maps.Copy(d.fields, fields)
			d.updatedAt = m.now()
			return nil
		}
	}
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.enter(); err != nil {
		return err
	}

	m.colls[collection] = slices.DeleteFunc(m.colls[collection], func(d *memoryDoc) bool { return d.id == id })
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enter()
}
