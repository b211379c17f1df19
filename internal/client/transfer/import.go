package transfer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/common"
	"github.com/google/uuid"
)

// Result reports the outcome of an import. On failure Err wraps
// common.ErrValidation (or the store error) and the store is untouched.
type Result struct {
	Success bool
	Message string
	Counts  map[string]int
	Err     error
}

func failed(err error) Result {
	return Result{Message: "Import failed: " + err.Error(), Err: err}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, fmt.Sprintf(format, args...))
}

// Import replaces every locally owned collection of st with the contents of
// raw. Absent or null keys become empty collections. Unknown keys are ignored.
func Import(ctx context.Context, st *store.Store, raw []byte) Result {
	data, resources, err := Parse(raw)
	if err != nil {
		return failed(err)
	}
	if err := st.Replace(ctx, data, resources); err != nil {
		return failed(err)
	}

	counts := data.Counts()
	counts[models.KeyResources] = len(resources)
	total := 0
	for _, n := range counts {
		total += n
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Imported %d records", total),
		Counts:  counts,
	}
}

// Parse decodes and validates an export document without touching any store.
func Parse(raw []byte) (models.LocalData, []models.Resource, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return models.LocalData{}, nil, invalid("not a JSON object: %v", err)
	}
	if top == nil {
		return models.LocalData{}, nil, invalid("not a JSON object")
	}

	var data models.LocalData
	var err error
	if data.Firms, err = collection[models.Firm](top, models.KeyFirms); err != nil {
		return models.LocalData{}, nil, err
	}
	if data.CoffeeChats, err = collection[models.CoffeeChat](top, models.KeyCoffeeChats); err != nil {
		return models.LocalData{}, nil, err
	}
	if data.MockInterviews, err = collection[models.MockInterview](top, models.KeyMockInterviews); err != nil {
		return models.LocalData{}, nil, err
	}
	if data.Contacts, err = collection[models.Contact](top, models.KeyContacts); err != nil {
		return models.LocalData{}, nil, err
	}
	if data.NetworkingEvents, err = collection[models.NetworkingEvent](top, models.KeyNetworkingEvents); err != nil {
		return models.LocalData{}, nil, err
	}
	if data.DealExperiences, err = collection[models.DealExperience](top, models.KeyDealExperiences); err != nil {
		return models.LocalData{}, nil, err
	}
	if data.NewsItems, err = collection[models.NewsItem](top, models.KeyNewsItems); err != nil {
		return models.LocalData{}, nil, err
	}
	if data.MarketIntel, err = collection[models.MarketIntel](top, models.KeyMarketIntel); err != nil {
		return models.LocalData{}, nil, err
	}

	resources, err := resourceCollection(top)
	if err != nil {
		return models.LocalData{}, nil, err
	}
	return data, resources, nil
}

type importable[T any] interface {
	*T
	GetID() string
	SetID(id string)
	Validate() error
}

func decode[T any](top map[string]json.RawMessage, key string) ([]T, error) {
	raw, ok := top[key]
	if !ok || string(raw) == "null" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, invalid("collection %q: %v", key, err)
	}
	return items, nil
}

func collection[T any, P importable[T]](top map[string]json.RawMessage, key string) ([]T, error) {
	items, err := decode[T](top, key)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(items))
	for i := range items {
		item := P(&items[i])
		if item.GetID() == "" {
			id, err := uuid.NewV7()
			if err != nil {
				return nil, fmt.Errorf("generate id: %w", err)
			}
			item.SetID(id.String())
		}
		if seen[item.GetID()] {
			return nil, invalid("collection %q: duplicate id %q", key, item.GetID())
		}
		seen[item.GetID()] = true
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("collection %q item %d: %w", key, i, err)
		}
	}
	return items, nil
}

func resourceCollection(top map[string]json.RawMessage) ([]models.Resource, error) {
	items, err := decode[models.Resource](top, models.KeyResources)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		items[i].Tags = models.NormalizeTags(items[i].Tags)
	}
	return items, nil
}

// Clear empties every locally owned collection. Remote collections are left
// alone.
func Clear(ctx context.Context, st *store.Store) error {
	if err := st.Clear(ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	return nil
}
