package models

import "time"

// Firm is a company in the recruiting pipeline.
type Firm struct {
	Record
	Name        string     `json:"name"`
	Division    string     `json:"division"`
	Location    string     `json:"location"`
	Status      FirmStatus `json:"status"`
	Deadline    string     `json:"deadline,omitempty"`
	AppliedDate string     `json:"appliedDate,omitempty"`
	KeyContacts string     `json:"keyContacts"`
	Notes       string     `json:"notes"`
}

func (f Firm) Validate() error {
	if err := required("firm", "name", f.Name); err != nil {
		return err
	}
	if !f.Status.Valid() {
		return invalid("firm status %q", f.Status)
	}
	return nil
}

// CoffeeChat is an informational call; FirmID may dangle.
type CoffeeChat struct {
	Record
	FirmID        string `json:"firmId"`
	ContactName   string `json:"contactName"`
	ScheduledDate string `json:"scheduledDate"`
	Notes         string `json:"notes"`
	Completed     bool   `json:"completed"`
}

func (c CoffeeChat) Validate() error {
	return required("coffee chat", "contact name", c.ContactName)
}

type MockInterview struct {
	Record
	FirmID      string        `json:"firmId,omitempty"`
	Date        string        `json:"date"`
	Interviewer string        `json:"interviewer"`
	Type        InterviewType `json:"type"`
	Score       int           `json:"score"`
	Feedback    string        `json:"feedback"`
	Notes       string        `json:"notes"`
}

func (m MockInterview) Validate() error {
	if !m.Type.Valid() {
		return invalid("mock interview type %q", m.Type)
	}
	if m.Score < 0 || m.Score > 10 {
		return invalid("mock interview score %d out of range", m.Score)
	}
	return nil
}

type Contact struct {
	Record
	Name            string `json:"name"`
	FirmID          string `json:"firmId,omitempty"`
	Role            string `json:"role"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	LinkedIn        string `json:"linkedIn"`
	LastContactDate string `json:"lastContactDate,omitempty"`
	Notes           string `json:"notes"`
}

func (c Contact) Validate() error { return required("contact", "name", c.Name) }

type NetworkingEvent struct {
	Record
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
	Type     string `json:"type"`
	Attended bool   `json:"attended"`
	Notes    string `json:"notes"`
}

func (e NetworkingEvent) Validate() error { return required("networking event", "name", e.Name) }

type DealExperience struct {
	Record
	Name        string `json:"name"`
	Role        string `json:"role"`
	DealType    string `json:"dealType"`
	DealSize    string `json:"dealSize"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Lessons     string `json:"lessons"`
	Notes       string `json:"notes"`
}

func (d DealExperience) Validate() error { return required("deal", "name", d.Name) }

type NewsItem struct {
	Record
	Title     string    `json:"title"`
	Source    string    `json:"source"`
	URL       string    `json:"url,omitempty"`
	Date      string    `json:"date"`
	Summary   string    `json:"summary"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n *NewsItem) OnCreate(now time.Time) {
	n.Record.OnCreate(now)
	n.CreatedAt = now
}

func (n NewsItem) Validate() error { return required("news item", "title", n.Title) }

// MarketIntel is a dated market note, optionally doubling as a flashcard.
// WeekNumber and Year are derived from Date when the note is created.
type MarketIntel struct {
	Record
	Date              string       `json:"date"`
	Category          string       `json:"category"`
	Headline          string       `json:"headline"`
	Content           string       `json:"content"`
	ReviewStatus      ReviewStatus `json:"reviewStatus"`
	IsFlashcard       bool         `json:"isFlashcard"`
	FlashcardQuestion string       `json:"flashcardQuestion,omitempty"`
	FlashcardAnswer   string       `json:"flashcardAnswer,omitempty"`
	WeekNumber        int          `json:"weekNumber"`
	Year              int          `json:"year"`
	CreatedAt         time.Time    `json:"createdAt"`
}

func (m *MarketIntel) OnCreate(now time.Time) {
	m.Record.OnCreate(now)
	m.CreatedAt = now
	if m.ReviewStatus == "" {
		m.ReviewStatus = ReviewNeeded
	}
	day, ok := ParseDay(m.Date)
	if !ok {
		day = now.In(time.Local)
		m.Date = day.Format("2006-01-02")
	}
	m.WeekNumber, m.Year = WeekOf(day)
}

func (m MarketIntel) Validate() error {
	if err := required("market intel", "headline", m.Headline); err != nil {
		return err
	}
	if !m.ReviewStatus.Valid() {
		return invalid("market intel review status %q", m.ReviewStatus)
	}
	if m.IsFlashcard && (m.FlashcardQuestion == "" || m.FlashcardAnswer == "") {
		return invalid("flashcard needs both a question and an answer")
	}
	return nil
}
