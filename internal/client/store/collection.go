package store

import "github.com/dmitrijs2005/recruitkeeper/internal/client/models"

// Collection names one typed collection of the store. Exactly one of local or
// cache is set.
type Collection[T any] struct {
	name  string
	local func(*models.LocalData) *[]T
	cache func(*caches) *[]T
}

func (c Collection[T]) Name() string { return c.name }

// Local reports whether the collection is part of the durable snapshot.
func (c Collection[T]) Local() bool { return c.local != nil }

// Slot returns the slice of c inside d. It panics for cache collections.
func (c Collection[T]) Slot(d *models.LocalData) *[]T {
	if c.local == nil {
		panic("store: " + c.name + " is not a local collection")
	}
	return c.local(d)
}

type caches struct {
	resources     []models.Resource
	behavioral    []models.Question
	technical     []models.Question
	notifications []models.Notification
}

var (
	Firms = Collection[models.Firm]{name: models.KeyFirms,
		local: func(d *models.LocalData) *[]models.Firm { return &d.Firms }}
	CoffeeChats = Collection[models.CoffeeChat]{name: models.KeyCoffeeChats,
		local: func(d *models.LocalData) *[]models.CoffeeChat { return &d.CoffeeChats }}
	MockInterviews = Collection[models.MockInterview]{name: models.KeyMockInterviews,
		local: func(d *models.LocalData) *[]models.MockInterview { return &d.MockInterviews }}
	Contacts = Collection[models.Contact]{name: models.KeyContacts,
		local: func(d *models.LocalData) *[]models.Contact { return &d.Contacts }}
	NetworkingEvents = Collection[models.NetworkingEvent]{name: models.KeyNetworkingEvents,
		local: func(d *models.LocalData) *[]models.NetworkingEvent { return &d.NetworkingEvents }}
	DealExperiences = Collection[models.DealExperience]{name: models.KeyDealExperiences,
		local: func(d *models.LocalData) *[]models.DealExperience { return &d.DealExperiences }}
	NewsItems = Collection[models.NewsItem]{name: models.KeyNewsItems,
		local: func(d *models.LocalData) *[]models.NewsItem { return &d.NewsItems }}
	MarketIntel = Collection[models.MarketIntel]{name: models.KeyMarketIntel,
		local: func(d *models.LocalData) *[]models.MarketIntel { return &d.MarketIntel }}

	Resources = Collection[models.Resource]{name: models.KeyResources,
		cache: func(c *caches) *[]models.Resource { return &c.resources }}
	BehavioralQuestions = Collection[models.Question]{name: "behavioralQuestions",
		cache: func(c *caches) *[]models.Question { return &c.behavioral }}
	TechnicalQuestions = Collection[models.Question]{name: "technicalQuestions",
		cache: func(c *caches) *[]models.Question { return &c.technical }}
	Notifications = Collection[models.Notification]{name: "notifications",
		cache: func(c *caches) *[]models.Notification { return &c.notifications }}
)

// Questions returns the cache collection of a question bank.
func Questions(kind models.QuestionKind) Collection[models.Question] {
	if kind == models.QuestionTechnical {
		return TechnicalQuestions
	}
	return BehavioralQuestions
}
