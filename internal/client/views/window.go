package views

import (
	"cmp"
	"slices"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// Window counts timestamps falling today, yesterday and in the current week
// (Sunday through today), using calendar days in now's location.
type Window struct {
	Today     int
	Yesterday int
	ThisWeek  int
}

// Change is the day-over-day percent change.
func (w Window) Change() int { return PercentChange(w.Today, w.Yesterday) }

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func Buckets(times []time.Time, now time.Time) Window {
	loc := now.Location()
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	var w Window
	for _, t := range times {
		t = t.In(loc)
		if !t.Before(tomorrow) {
			continue
		}
		switch {
		case !t.Before(today):
			w.Today++
		case !t.Before(yesterday):
			w.Yesterday++
		}
		if !t.Before(weekStart) {
			w.ThisWeek++
		}
	}
	return w
}

// DayBuckets is Buckets over ISO day strings; unparseable days are skipped.
func DayBuckets(days []string, now time.Time) Window {
	times := make([]time.Time, 0, len(days))
	for _, s := range days {
		if d, ok := models.ParseDay(s); ok {
			y, m, dd := d.Date()
			times = append(times, time.Date(y, m, dd, 12, 0, 0, 0, now.Location()))
		}
	}
	return Buckets(times, now)
}

// WeekNumber is the week used to stamp MarketIntel at creation.
func WeekNumber(t time.Time) (week, year int) { return models.WeekOf(t) }

// IsThisWeek reports whether m was stamped with the week containing now.
func IsThisWeek(m models.MarketIntel, now time.Time) bool {
	week, year := models.WeekOf(now)
	return m.WeekNumber == week && m.Year == year
}

// WeekGroup is one week of market intel.
type WeekGroup struct {
	Year  int
	Week  int
	Items []models.MarketIntel
}

// ByWeek groups intel by stamped week, newest week first. Items keep their
// input order within a week.
func ByWeek(intel []models.MarketIntel) []WeekGroup {
	idx := map[[2]int]int{}
	var groups []WeekGroup
	for _, m := range intel {
		k := [2]int{m.Year, m.WeekNumber}
		i, ok := idx[k]
		if !ok {
			i = len(groups)
			idx[k] = i
			groups = append(groups, WeekGroup{Year: m.Year, Week: m.WeekNumber})
		}
		groups[i].Items = append(groups[i].Items, m)
	}
	slices.SortStableFunc(groups, func(a, b WeekGroup) int {
		if c := cmp.Compare(b.Year, a.Year); c != 0 {
			return c
		}
		return cmp.Compare(b.Week, a.Week)
	})
	return groups
}
