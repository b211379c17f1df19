package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// Field selects one sortable, filterable attribute of T. Value renders the
// attribute as a string whose lexicographic order is the attribute's order.
type Field[T any] interface {
	Value(item T) string
}

// stampLayout is fixed width so timestamps sort lexicographically.
const stampLayout = "2006-01-02T15:04:05.000000000Z"

func stamp(t time.Time) string { return t.UTC().Format(stampLayout) }

func flag(b bool) string { return strconv.FormatBool(b) }

func unknownField(kind string, f int) string {
	panic(fmt.Sprintf("views: unknown %s field %d", kind, f))
}

type FirmField int

const (
	FirmByName FirmField = iota
	FirmByDivision
	FirmByLocation
	FirmByStatus
	FirmByDeadline
	FirmByAppliedDate
	FirmByNotes
	FirmByUpdated
)

func (f FirmField) Value(x models.Firm) string {
	switch f {
	case FirmByName:
		return x.Name
	case FirmByDivision:
		return x.Division
	case FirmByLocation:
		return x.Location
	case FirmByStatus:
		return string(x.Status)
	case FirmByDeadline:
		return x.Deadline
	case FirmByAppliedDate:
		return x.AppliedDate
	case FirmByNotes:
		return x.Notes
	case FirmByUpdated:
		return stamp(x.LastUpdated)
	}
	return unknownField("firm", int(f))
}

type CoffeeChatField int

const (
	ChatByContact CoffeeChatField = iota
	ChatByFirm
	ChatByDate
	ChatByNotes
	ChatByCompleted
)

func (f CoffeeChatField) Value(x models.CoffeeChat) string {
	switch f {
	case ChatByContact:
		return x.ContactName
	case ChatByFirm:
		return x.FirmID
	case ChatByDate:
		return x.ScheduledDate
	case ChatByNotes:
		return x.Notes
	case ChatByCompleted:
		return flag(x.Completed)
	}
	return unknownField("coffee chat", int(f))
}

type MockInterviewField int

const (
	MockByDate MockInterviewField = iota
	MockByInterviewer
	MockByType
	MockByScore
	MockByFeedback
)

func (f MockInterviewField) Value(x models.MockInterview) string {
	switch f {
	case MockByDate:
		return x.Date
	case MockByInterviewer:
		return x.Interviewer
	case MockByType:
		return string(x.Type)
	case MockByScore:
		return fmt.Sprintf("%02d", x.Score)
	case MockByFeedback:
		return x.Feedback
	}
	return unknownField("mock interview", int(f))
}

type ContactField int

const (
	ContactByName ContactField = iota
	ContactByRole
	ContactByEmail
	ContactByLastContact
	ContactByNotes
)

func (f ContactField) Value(x models.Contact) string {
	switch f {
	case ContactByName:
		return x.Name
	case ContactByRole:
		return x.Role
	case ContactByEmail:
		return x.Email
	case ContactByLastContact:
		return x.LastContactDate
	case ContactByNotes:
		return x.Notes
	}
	return unknownField("contact", int(f))
}

type NewsField int

const (
	NewsByTitle NewsField = iota
	NewsBySource
	NewsByDate
	NewsBySummary
)

func (f NewsField) Value(x models.NewsItem) string {
	switch f {
	case NewsByTitle:
		return x.Title
	case NewsBySource:
		return x.Source
	case NewsByDate:
		return x.Date
	case NewsBySummary:
		return x.Summary
	}
	return unknownField("news", int(f))
}

type MarketIntelField int

const (
	IntelByHeadline MarketIntelField = iota
	IntelByContent
	IntelByCategory
	IntelByReviewStatus
	IntelByDate
	IntelByFlashcard
)

func (f MarketIntelField) Value(x models.MarketIntel) string {
	switch f {
	case IntelByHeadline:
		return x.Headline
	case IntelByContent:
		return x.Content
	case IntelByCategory:
		return x.Category
	case IntelByReviewStatus:
		return string(x.ReviewStatus)
	case IntelByDate:
		return x.Date
	case IntelByFlashcard:
		return flag(x.IsFlashcard)
	}
	return unknownField("market intel", int(f))
}

type QuestionField int

const (
	QuestionByText QuestionField = iota
	QuestionByCategory
	QuestionByDifficulty
	QuestionByAnswer
	QuestionByNotes
	QuestionByPreloaded
	QuestionByCreated
)

func (f QuestionField) Value(x models.Question) string {
	switch f {
	case QuestionByText:
		return x.Question
	case QuestionByCategory:
		return string(x.Category)
	case QuestionByDifficulty:
		return string(x.Difficulty)
	case QuestionByAnswer:
		return x.Answer
	case QuestionByNotes:
		return x.Notes
	case QuestionByPreloaded:
		return flag(x.IsPreloaded)
	case QuestionByCreated:
		return stamp(x.CreatedAt)
	}
	return unknownField("question", int(f))
}

type ResourceField int

const (
	ResourceByTitle ResourceField = iota
	ResourceByType
	ResourceByCategory
	ResourceByDescription
	ResourceByTags
	ResourceByCreated
)

func (f ResourceField) Value(x models.Resource) string {
	switch f {
	case ResourceByTitle:
		return x.Title
	case ResourceByType:
		return string(x.Type)
	case ResourceByCategory:
		return string(x.Category)
	case ResourceByDescription:
		return x.Description
	case ResourceByTags:
		return strings.Join(x.Tags, " ")
	case ResourceByCreated:
		return stamp(x.CreatedAt)
	}
	return unknownField("resource", int(f))
}
