package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
)

// FormatVersion tags every export document.
const FormatVersion = "1.0"

// Document is the export format: every locally scoped collection, the
// resource cache, the export time and the format version.
type Document struct {
	models.LocalData
	Resources  []models.Resource `json:"resources"`
	ExportDate time.Time         `json:"exportDate"`
	Version    string            `json:"version"`
}

// Export assembles the export document. It has no side effects.
func Export(data models.LocalData, resources []models.Resource, now time.Time) Document {
	d := data.Clone()
	return Document{
		LocalData: models.LocalData{
			Firms:            orEmpty(d.Firms),
			CoffeeChats:      orEmpty(d.CoffeeChats),
			MockInterviews:   orEmpty(d.MockInterviews),
			Contacts:         orEmpty(d.Contacts),
			NetworkingEvents: orEmpty(d.NetworkingEvents),
			DealExperiences:  orEmpty(d.DealExperiences),
			NewsItems:        orEmpty(d.NewsItems),
			MarketIntel:      orEmpty(d.MarketIntel),
		},
		Resources:  orEmpty(append([]models.Resource(nil), resources...)),
		ExportDate: now.UTC(),
		Version:    FormatVersion,
	}
}

// Marshal renders doc as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return b, nil
}

// ExportStore exports the current contents of st.
func ExportStore(st *store.Store, now time.Time) ([]byte, error) {
	data, resources := st.Contents()
	return Marshal(Export(data, resources, now))
}

// FileName suggests a download name for an export taken at now.
func FileName(now time.Time) string {
	return "recruiting-tracker-backup-" + now.Format("2006-01-02") + ".json"
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
