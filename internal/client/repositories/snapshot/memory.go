package snapshot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// MemoryRepository keeps the encoded snapshot in memory.
type MemoryRepository struct {
	mu    sync.Mutex
	data  []byte
	saves int

	// SaveErr, when set, is returned by every Save.
	SaveErr error
}

// NewMemoryRepository returns a repository holding raw, which may be nil
// (no snapshot) or deliberately malformed.
func NewMemoryRepository(raw []byte) *MemoryRepository {
	return &MemoryRepository{data: raw}
}

func (r *MemoryRepository) Load(_ context.Context) (*models.Persisted, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, ErrNoSnapshot
	}
	return decode(r.data)
}

func (r *MemoryRepository) Save(_ context.Context, p models.Persisted) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.SaveErr != nil {
		return r.SaveErr
	}
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	r.data = b
	r.saves++
	return nil
}

// Raw returns the last saved document.
func (r *MemoryRepository) Raw() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]byte(nil), r.data...)
}

// Saves counts successful Save calls.
func (r *MemoryRepository) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
