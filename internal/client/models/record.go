package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/common"
)

// Record carries the identity and modification time shared by every locally
// scoped entity. It is embedded, so its fields are flattened in JSON.
type Record struct {
	ID          string    `json:"id"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (r Record) GetID() string           { return r.ID }
func (r *Record) SetID(id string)        { r.ID = id }
func (r Record) Modified() time.Time     { return r.LastUpdated }
func (r *Record) OnCreate(now time.Time) { r.LastUpdated = now }
func (r *Record) OnUpdate(now time.Time) { r.LastUpdated = now }

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, fmt.Sprintf(format, args...))
}

func required(entity, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid("%s %s is required", entity, field)
	}
	return nil
}

// WeekOf returns the week number and year of t, counting weeks from the
// weekday on which January 1st falls (week 1 contains January 1st).
func WeekOf(t time.Time) (week, year int) {
	year = t.Year()
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, t.Location())
	pastDays := t.YearDay() - 1
	week = (pastDays + int(jan1.Weekday()) + 7) / 7
	return week, year
}

// ParseDay parses an ISO date (or the date part of an ISO timestamp) as a
// local calendar day.
func ParseDay(s string) (time.Time, bool) {
	if len(s) < len("2006-01-02") {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation("2006-01-02", s[:10], time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
