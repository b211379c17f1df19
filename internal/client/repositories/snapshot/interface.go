package snapshot

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// ErrNoSnapshot reports that no snapshot has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot")

// Repository loads and saves the durable snapshot document.
type Repository interface {
	Load(ctx context.Context) (*models.Persisted, error)
	Save(ctx context.Context, p models.Persisted) error
}
