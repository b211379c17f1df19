package models

import (
	"slices"
	"strings"
	"time"
)

// Question lives in one of the shared remote banks. ID, CreatedAt and
// LastUpdated are assigned by the remote store.
type Question struct {
	ID          string           `json:"id"`
	Kind        QuestionKind     `json:"kind"`
	Question    string           `json:"question"`
	Category    QuestionCategory `json:"category"`
	Difficulty  Difficulty       `json:"difficulty"`
	Answer      string           `json:"answer"`
	Notes       string           `json:"notes"`
	IsPreloaded bool             `json:"isPreloaded"`
	CreatedBy   *Identity        `json:"createdBy,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	LastUpdated time.Time        `json:"lastUpdated"`
}

func (q *Question) SetRemoteMeta(id string, createdAt, updatedAt time.Time) {
	q.ID, q.CreatedAt, q.LastUpdated = id, createdAt, updatedAt
}

func (q Question) GetID() string { return q.ID }

func (q Question) Validate() error {
	if err := required("question", "text", q.Question); err != nil {
		return err
	}
	if !q.Kind.Valid() {
		return invalid("question kind %q", q.Kind)
	}
	if !contains(q.Kind.Categories(), q.Category) {
		return invalid("%s question category %q", q.Kind, q.Category)
	}
	if !q.Difficulty.Valid() {
		return invalid("question difficulty %q", q.Difficulty)
	}
	return nil
}

// QuestionPatch lists the fields of a question update; nil means unchanged.
type QuestionPatch struct {
	Question   *string
	Category   *QuestionCategory
	Difficulty *Difficulty
	Answer     *string
	Notes      *string
}

// Apply merges p into q.
func (p QuestionPatch) Apply(q *Question) {
	if p.Question != nil {
		q.Question = *p.Question
	}
	if p.Category != nil {
		q.Category = *p.Category
	}
	if p.Difficulty != nil {
		q.Difficulty = *p.Difficulty
	}
	if p.Answer != nil {
		q.Answer = *p.Answer
	}
	if p.Notes != nil {
		q.Notes = *p.Notes
	}
}

// Fields renders p as a partial document keyed by JSON field names.
func (p QuestionPatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Question != nil {
		f["question"] = *p.Question
	}
	if p.Category != nil {
		f["category"] = *p.Category
	}
	if p.Difficulty != nil {
		f["difficulty"] = *p.Difficulty
	}
	if p.Answer != nil {
		f["answer"] = *p.Answer
	}
	if p.Notes != nil {
		f["notes"] = *p.Notes
	}
	return f
}

// Resource is a shared study resource. CreatedBy is captured at creation.
type Resource struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Type        ResourceType     `json:"type"`
	Category    ResourceCategory `json:"category"`
	Description string           `json:"description,omitempty"`
	URL         string           `json:"url,omitempty"`
	Tags        []string         `json:"tags"`
	CreatedAt   time.Time        `json:"createdAt"`
	CreatedBy   *Identity        `json:"createdBy"`
}

func (r *Resource) SetRemoteMeta(id string, createdAt, _ time.Time) {
	r.ID, r.CreatedAt = id, createdAt
}

func (r Resource) GetID() string { return r.ID }

func (r Resource) Validate() error {
	if err := required("resource", "title", r.Title); err != nil {
		return err
	}
	if !r.Type.Valid() {
		return invalid("resource type %q", r.Type)
	}
	if !r.Category.Valid() {
		return invalid("resource category %q", r.Category)
	}
	return nil
}

// ResourcePatch lists the fields of a resource update; nil means unchanged.
type ResourcePatch struct {
	Title       *string
	Category    *ResourceCategory
	Description *string
	URL         *string
	Tags        []string
}

func (p ResourcePatch) Fields() map[string]any {
	f := map[string]any{}
	if p.Title != nil {
		f["title"] = *p.Title
	}
	if p.Category != nil {
		f["category"] = *p.Category
	}
	if p.Description != nil {
		f["description"] = *p.Description
	}
	if p.URL != nil {
		f["url"] = *p.URL
	}
	if p.Tags != nil {
		f["tags"] = NormalizeTags(p.Tags)
	}
	return f
}

// NormalizeTags trims, deduplicates and sorts tags; order carries no meaning.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Notification is an append-only announcement.
type Notification struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n *Notification) SetRemoteMeta(id string, createdAt, _ time.Time) {
	n.ID, n.CreatedAt = id, createdAt
}

func (n Notification) GetID() string { return n.ID }
