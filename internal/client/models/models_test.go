package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirm_Validate(t *testing.T) {
	require.NoError(t, Firm{Name: "Acme", Status: FirmApplied}.Validate())

	err := Firm{Name: "Acme", Status: "Ghosted"}.Validate()
	require.ErrorIs(t, err, common.ErrValidation)

	err = Firm{Status: FirmOffer}.Validate()
	require.ErrorIs(t, err, common.ErrValidation)
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		day  string
		week int
	}{
		// 2024-01-01 is a Monday.
		{"2024-01-01", 1},
		{"2024-01-06", 1},
		{"2024-01-07", 2},
		{"2024-12-31", 53},
		// 2023-01-01 is a Sunday.
		{"2023-01-01", 1},
		{"2023-01-08", 2},
	}
	for _, tc := range tests {
		t.Run(tc.day, func(t *testing.T) {
			d, ok := ParseDay(tc.day)
			require.True(t, ok)
			w, y := WeekOf(d)
			assert.Equal(t, tc.week, w)
			assert.Equal(t, d.Year(), y)
		})
	}
}

func TestMarketIntel_OnCreateStampsWeek(t *testing.T) {
	m := MarketIntel{Headline: "Fed holds", Date: "2024-01-07"}
	m.OnCreate(time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local))

	assert.Equal(t, 2, m.WeekNumber)
	assert.Equal(t, 2024, m.Year)
	assert.Equal(t, ReviewNeeded, m.ReviewStatus)
	require.NoError(t, m.Validate())
}

func TestMarketIntel_OnCreateWithoutDateUsesNow(t *testing.T) {
	now := time.Date(2024, 1, 7, 9, 0, 0, 0, time.Local)
	m := MarketIntel{Headline: "x"}
	m.OnCreate(now)

	assert.Equal(t, "2024-01-07", m.Date)
	assert.Equal(t, 2, m.WeekNumber)
}

func TestMarketIntel_FlashcardNeedsBothSides(t *testing.T) {
	m := MarketIntel{Headline: "x", ReviewStatus: ReviewSolid, IsFlashcard: true, FlashcardQuestion: "q"}
	require.ErrorIs(t, m.Validate(), common.ErrValidation)
}

func TestRecord_FlattenedInJSON(t *testing.T) {
	f := Firm{Record: Record{ID: "f1"}, Name: "Acme", Status: FirmApplied}
	b, err := json.Marshal(f)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Equal(t, "f1", m["id"])
	assert.Contains(t, m, "lastUpdated")
	assert.Equal(t, "Applied", m["status"])
}

func TestQuestion_ValidateCategoryPerKind(t *testing.T) {
	q := Question{Kind: QuestionTechnical, Question: "Walk me through a DCF", Category: "DCF", Difficulty: DifficultyMedium}
	require.NoError(t, q.Validate())

	q.Category = "Leadership"
	require.ErrorIs(t, q.Validate(), common.ErrValidation)
}

func TestQuestionPatch_FieldsAndApply(t *testing.T) {
	answer := "EBITDA multiple"
	p := QuestionPatch{Answer: &answer}

	assert.Equal(t, map[string]any{"answer": "EBITDA multiple"}, p.Fields())

	q := Question{Answer: "old", Notes: "keep"}
	p.Apply(&q)
	assert.Equal(t, "EBITDA multiple", q.Answer)
	assert.Equal(t, "keep", q.Notes)
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" lbo", "dcf", "lbo", "", "accounting"})
	assert.Equal(t, []string{"accounting", "dcf", "lbo"}, got)
}

func TestLocalData_CloneIsIndependent(t *testing.T) {
	d := LocalData{Firms: []Firm{{Name: "A"}}}
	c := d.Clone()
	c.Firms[0].Name = "B"
	assert.Equal(t, "A", d.Firms[0].Name)
	assert.Equal(t, 1, c.Counts()[KeyFirms])
}
