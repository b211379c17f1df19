package views

import (
	"math"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// CountBy groups items by key and counts each group.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	out := make(map[K]int)
	for _, item := range items {
		out[key(item)]++
	}
	return out
}

// countAll is CountBy with a zero entry for every value in domain.
func countAll[T any, K comparable](items []T, domain []K, key func(T) K) map[K]int {
	out := CountBy(items, key)
	for _, k := range domain {
		if _, ok := out[k]; !ok {
			out[k] = 0
		}
	}
	return out
}

func FirmStatusCounts(firms []models.Firm) map[models.FirmStatus]int {
	return countAll(firms, models.FirmStatuses, func(f models.Firm) models.FirmStatus { return f.Status })
}

func QuestionCategoryCounts(qs []models.Question, kind models.QuestionKind) map[models.QuestionCategory]int {
	return countAll(qs, kind.Categories(), func(q models.Question) models.QuestionCategory { return q.Category })
}

func ReviewStatusCounts(intel []models.MarketIntel) map[models.ReviewStatus]int {
	return countAll(intel, models.ReviewStatuses, func(m models.MarketIntel) models.ReviewStatus { return m.ReviewStatus })
}

func ResourceCategoryCounts(rs []models.Resource) map[models.ResourceCategory]int {
	return countAll(rs, models.ResourceCategories, func(r models.Resource) models.ResourceCategory { return r.Category })
}

// PercentChange is the change from baseline to current in percent, rounded
// half up. It is 0 when both are 0 and 100 when only the baseline is 0.
func PercentChange(current, baseline int) int {
	switch {
	case current == 0 && baseline == 0:
		return 0
	case baseline == 0:
		return 100
	}
	return int(math.Floor(100*float64(current-baseline)/float64(max(baseline, 1)) + 0.5))
}

// Stats summarizes the local store.
type Stats struct {
	Counts     map[string]int
	FirmStatus map[models.FirmStatus]int
	Total      int
}

func ComputeStats(data models.LocalData, resources []models.Resource) Stats {
	counts := data.Counts()
	counts[models.KeyResources] = len(resources)
	total := 0
	for _, n := range counts {
		total += n
	}
	return Stats{Counts: counts, FirmStatus: FirmStatusCounts(data.Firms), Total: total}
}
