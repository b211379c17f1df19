package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)

	_, err := r.Load(ctx)
	require.ErrorIs(t, err, ErrNoSnapshot)

	require.NoError(t, r.Save(ctx, samplePersisted()))
	assert.Equal(t, 1, r.Saves())

	p, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, p.Firms, 1)

	r.SaveErr = errors.New("disk full")
	require.Error(t, r.Save(ctx, models.Persisted{}))
	assert.Equal(t, 1, r.Saves())
}

func TestMemoryRepository_Corrupt(t *testing.T) {
	_, err := NewMemoryRepository([]byte("garbage")).Load(context.Background())
	require.Error(t, err)
}
