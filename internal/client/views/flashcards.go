package views

import (
	"slices"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// Flashcard is a market intel note in study form.
type Flashcard struct {
	IntelID  string
	Question string
	Answer   string
	Status   models.ReviewStatus
}

// Deck returns the flashcards among intel, the least-known first. Passing
// a status keeps only cards in that status.
func Deck(intel []models.MarketIntel, status models.ReviewStatus) []Flashcard {
	var cards []Flashcard
	for _, m := range intel {
		if !m.IsFlashcard || (status != "" && m.ReviewStatus != status) {
			continue
		}
		cards = append(cards, Flashcard{
			IntelID:  m.ID,
			Question: m.FlashcardQuestion,
			Answer:   m.FlashcardAnswer,
			Status:   m.ReviewStatus,
		})
	}
	slices.SortStableFunc(cards, func(a, b Flashcard) int {
		return slices.Index(models.ReviewStatuses, a.Status) - slices.Index(models.ReviewStatuses, b.Status)
	})
	return cards
}
