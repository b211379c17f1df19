package views

import (
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// Dashboard is the landing screen summary.
type Dashboard struct {
	Stats             Stats
	CoffeeChats       Window
	MockInterviews    Window
	MarketIntel       Window
	IntelThisWeek     int
	AverageScore      float64
	UpcomingDeadlines []models.Firm
	PendingChats      int
}

// deadlineHorizon is how far ahead deadlines are listed.
const deadlineHorizon = 14

func BuildDashboard(data models.LocalData, resources []models.Resource, now time.Time) Dashboard {
	d := Dashboard{Stats: ComputeStats(data, resources)}

	chatDays := make([]string, 0, len(data.CoffeeChats))
	for _, c := range data.CoffeeChats {
		chatDays = append(chatDays, c.ScheduledDate)
		if !c.Completed {
			d.PendingChats++
		}
	}
	d.CoffeeChats = DayBuckets(chatDays, now)

	mockDays := make([]string, 0, len(data.MockInterviews))
	total := 0
	for _, m := range data.MockInterviews {
		mockDays = append(mockDays, m.Date)
		total += m.Score
	}
	d.MockInterviews = DayBuckets(mockDays, now)
	if n := len(data.MockInterviews); n > 0 {
		d.AverageScore = float64(total) / float64(n)
	}

	created := make([]time.Time, 0, len(data.MarketIntel))
	for _, m := range data.MarketIntel {
		created = append(created, m.CreatedAt)
		if IsThisWeek(m, now) {
			d.IntelThisWeek++
		}
	}
	d.MarketIntel = Buckets(created, now)

	d.UpcomingDeadlines = UpcomingDeadlines(data.Firms, now, deadlineHorizon)
	return d
}

// UpcomingDeadlines lists open firms whose deadline falls within days of
// now, soonest first.
func UpcomingDeadlines(firms []models.Firm, now time.Time, days int) []models.Firm {
	today := startOfDay(now)
	until := today.AddDate(0, 0, days+1)

	var out []models.Firm
	for _, f := range firms {
		if f.Status == models.FirmRejected || f.Status == models.FirmOffer {
			continue
		}
		d, ok := models.ParseDay(f.Deadline)
		if !ok {
			continue
		}
		d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
		if !d.Before(today) && d.Before(until) {
			out = append(out, f)
		}
	}
	return SortBy(out, FirmByDeadline, false)
}
