package models

import "slices"

// Collection keys shared by the durable snapshot and the export document.
const (
	KeyFirms            = "firms"
	KeyCoffeeChats      = "coffeeChats"
	KeyMockInterviews   = "mockInterviews"
	KeyContacts         = "contacts"
	KeyNetworkingEvents = "networkingEvents"
	KeyDealExperiences  = "dealExperiences"
	KeyNewsItems        = "newsItems"
	KeyMarketIntel      = "marketIntel"
	KeyResources        = "resources"
	KeyUser             = "user"
)

// LocalKeys lists the locally-scoped collections in snapshot order.
var LocalKeys = []string{
	KeyFirms, KeyCoffeeChats, KeyMockInterviews, KeyContacts,
	KeyNetworkingEvents, KeyDealExperiences, KeyNewsItems, KeyMarketIntel,
}

// LocalData holds every collection whose authoritative copy is on this device.
type LocalData struct {
	Firms            []Firm            `json:"firms"`
	CoffeeChats      []CoffeeChat      `json:"coffeeChats"`
	MockInterviews   []MockInterview   `json:"mockInterviews"`
	Contacts         []Contact         `json:"contacts"`
	NetworkingEvents []NetworkingEvent `json:"networkingEvents"`
	DealExperiences  []DealExperience  `json:"dealExperiences"`
	NewsItems        []NewsItem        `json:"newsItems"`
	MarketIntel      []MarketIntel     `json:"marketIntel"`
}

// Clone copies every collection so the result shares no backing arrays with d.
func (d LocalData) Clone() LocalData {
	return LocalData{
		Firms:            slices.Clone(d.Firms),
		CoffeeChats:      slices.Clone(d.CoffeeChats),
		MockInterviews:   slices.Clone(d.MockInterviews),
		Contacts:         slices.Clone(d.Contacts),
		NetworkingEvents: slices.Clone(d.NetworkingEvents),
		DealExperiences:  slices.Clone(d.DealExperiences),
		NewsItems:        slices.Clone(d.NewsItems),
		MarketIntel:      slices.Clone(d.MarketIntel),
	}
}

// Counts returns the size of every local collection keyed by collection key.
func (d LocalData) Counts() map[string]int {
	return map[string]int{
		KeyFirms:            len(d.Firms),
		KeyCoffeeChats:      len(d.CoffeeChats),
		KeyMockInterviews:   len(d.MockInterviews),
		KeyContacts:         len(d.Contacts),
		KeyNetworkingEvents: len(d.NetworkingEvents),
		KeyDealExperiences:  len(d.DealExperiences),
		KeyNewsItems:        len(d.NewsItems),
		KeyMarketIntel:      len(d.MarketIntel),
	}
}

// Persisted is the durable snapshot document: the local collections plus the
// last-known identity. It intentionally carries no schema version.
type Persisted struct {
	LocalData
	User *Identity `json:"user"`
}
