package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/remote"
	"github.com/dmitrijs2005/recruitkeeper/internal/common"
)

// Attachment is a file uploaded alongside a Document resource.
type Attachment struct {
	Name        string
	ContentType string
	Content     []byte
}

var errNoRemote = &remote.RemoteError{Op: "dispatch", Kind: remote.ErrUnavailable, Err: errors.New("no remote store configured")}

func (d *Dispatcher) adapter() (*remote.Adapter, error) {
	if d.remote == nil {
		return nil, errNoRemote
	}
	return d.remote, nil
}

func (d *Dispatcher) remoteFailed(ctx context.Context, op string, err error) error {
	d.log.Error(ctx, "remote operation failed", "op", op, "error", err)
	return err
}

// AddQuestion creates a user-authored question in the bank of q.Kind.
func (d *Dispatcher) AddQuestion(ctx context.Context, q models.Question) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	who, err := d.gate(ctx, string(q.Kind)+" questions")
	if err != nil {
		return "", err
	}
	a, err := d.adapter()
	if err != nil {
		return "", err
	}

	q.IsPreloaded = false
	q.CreatedBy = who
	if err := q.Validate(); err != nil {
		return "", err
	}
	id, err := a.Questions(q.Kind).Create(ctx, q)
	if err != nil {
		return "", d.remoteFailed(ctx, "add question", err)
	}
	return id, nil
}

// UpdateQuestion merges patch into a question. Preloaded questions are
// reserved to the administrator. Unknown ids are ignored.
func (d *Dispatcher) UpdateQuestion(ctx context.Context, kind models.QuestionKind, id string, patch models.QuestionPatch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.adapter()
	if err != nil {
		return err
	}
	bank := a.Questions(kind)
	q, ok := bank.Find(id)
	if !ok {
		return nil
	}
	if err := d.checkPreloaded(ctx, q); err != nil {
		return err
	}

	patch.Apply(&q)
	if err := q.Validate(); err != nil {
		return err
	}
	if err := bank.Update(ctx, id, patch.Fields()); err != nil {
		return d.remoteFailed(ctx, "update question", err)
	}
	return nil
}

// DeleteQuestion removes a question. Unknown ids are ignored.
func (d *Dispatcher) DeleteQuestion(ctx context.Context, kind models.QuestionKind, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.adapter()
	if err != nil {
		return err
	}
	bank := a.Questions(kind)
	q, ok, err := bank.Lookup(ctx, id)
	if err != nil {
		return d.remoteFailed(ctx, "delete question", err)
	}
	if !ok {
		return nil
	}
	if err := d.checkPreloaded(ctx, q); err != nil {
		return err
	}
	if err := bank.Delete(ctx, id); err != nil {
		return d.remoteFailed(ctx, "delete question", err)
	}
	return nil
}

func (d *Dispatcher) checkPreloaded(ctx context.Context, q models.Question) error {
	if !q.IsPreloaded || d.IsAdmin() {
		return nil
	}
	d.log.Warn(ctx, "preloaded question is admin-only", "id", q.ID)
	return fmt.Errorf("%w: preloaded questions can only be changed by the administrator", common.ErrForbidden)
}

// SeedQuestions adds the given questions to a bank as preloaded entries,
// skipping any whose text is already present. Only the administrator may
// seed. It returns the number of questions added.
func (d *Dispatcher) SeedQuestions(ctx context.Context, kind models.QuestionKind, qs []models.Question) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.gate(ctx, string(kind)+" questions"); err != nil {
		return 0, err
	}
	if !d.IsAdmin() {
		return 0, fmt.Errorf("%w: only the administrator can seed questions", common.ErrForbidden)
	}
	a, err := d.adapter()
	if err != nil {
		return 0, err
	}
	bank := a.Questions(kind)
	if err := bank.Refresh(ctx); err != nil {
		return 0, d.remoteFailed(ctx, "seed questions", err)
	}

	seen := map[string]bool{}
	for _, q := range bank.Cached() {
		seen[questionKey(q.Question)] = true
	}

	added := 0
	for _, q := range qs {
		key := questionKey(q.Question)
		if seen[key] {
			continue
		}
		q.Kind = kind
		q.IsPreloaded = true
		q.CreatedBy = nil
		if err := q.Validate(); err != nil {
			return added, err
		}
		if _, err := bank.Create(ctx, q); err != nil {
			return added, d.remoteFailed(ctx, "seed questions", err)
		}
		seen[key] = true
		added++
	}
	d.log.Info(ctx, "questions seeded", "kind", kind, "added", added)
	return added, nil
}

func questionKey(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// AddResource creates a resource, uploading att first when given. The
// creator snapshot is captured from the signed-in identity.
func (d *Dispatcher) AddResource(ctx context.Context, r models.Resource, att *Attachment) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	who, err := d.gate(ctx, "resources")
	if err != nil {
		return "", err
	}
	a, err := d.adapter()
	if err != nil {
		return "", err
	}

	r.CreatedBy = who
	r.Tags = models.NormalizeTags(r.Tags)
	if err := r.Validate(); err != nil {
		return "", err
	}

	if att != nil {
		addr, err := a.Upload(ctx, att.Name, att.Content, att.ContentType, d.now())
		if err != nil {
			return "", d.remoteFailed(ctx, "upload attachment", err)
		}
		r.URL = addr
	}

	id, err := a.Resources.Create(ctx, r)
	if err != nil {
		if att != nil {
			if derr := a.DeleteFile(ctx, r.URL); derr != nil {
				d.log.Warn(ctx, "orphaned attachment", "url", r.URL, "error", derr)
			}
		}
		return "", d.remoteFailed(ctx, "add resource", err)
	}
	return id, nil
}

// UpdateResource merges patch into a cached resource. Unknown ids are ignored.
func (d *Dispatcher) UpdateResource(ctx context.Context, id string, patch models.ResourcePatch) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.adapter()
	if err != nil {
		return err
	}
	r, ok := a.Resources.Find(id)
	if !ok {
		return nil
	}
	if patch.Title != nil {
		r.Title = *patch.Title
	}
	if patch.Category != nil {
		r.Category = *patch.Category
	}
	if err := r.Validate(); err != nil {
		return err
	}
	if err := a.Resources.Update(ctx, id, patch.Fields()); err != nil {
		return d.remoteFailed(ctx, "update resource", err)
	}
	return nil
}

// DeleteResource removes a resource and the attachment it owns. Unknown ids
// are ignored.
func (d *Dispatcher) DeleteResource(ctx context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.adapter()
	if err != nil {
		return err
	}
	r, ok, err := a.Resources.Lookup(ctx, id)
	if err != nil {
		return d.remoteFailed(ctx, "delete resource", err)
	}
	if !ok {
		return nil
	}
	if err := a.DeleteResource(ctx, r); err != nil {
		return d.remoteFailed(ctx, "delete resource", err)
	}
	return nil
}

// AddNotification posts an announcement. Notifications cannot be edited.
func (d *Dispatcher) AddNotification(ctx context.Context, text string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, err := d.gate(ctx, "notifications"); err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: notification text is required", common.ErrValidation)
	}
	a, err := d.adapter()
	if err != nil {
		return "", err
	}
	id, err := a.Notifications.Create(ctx, models.Notification{Text: text})
	if err != nil {
		return "", d.remoteFailed(ctx, "add notification", err)
	}
	return id, nil
}

// Refresh refetches every remote collection.
func (d *Dispatcher) Refresh(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	a, err := d.adapter()
	if err != nil {
		return err
	}
	if err := a.RefreshAll(ctx); err != nil {
		return d.remoteFailed(ctx, "refresh", err)
	}
	return nil
}
