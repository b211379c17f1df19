package remote

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/logging"
)

type (
	QuestionBank     = Synced[models.Question, *models.Question]
	ResourceLibrary  = Synced[models.Resource, *models.Resource]
	NotificationFeed = Synced[models.Notification, *models.Notification]
)

// Adapter groups the remote collections and the attachment storage.
type Adapter struct {
	Behavioral    *QuestionBank
	Technical     *QuestionBank
	Resources     *ResourceLibrary
	Notifications *NotificationFeed

	docs  DocumentStore
	files FileStorage
	log   logging.Logger
}

// NewAdapter wires the remote collections to their caches in st. files may
// be nil when no attachment storage is configured.
func NewAdapter(docs DocumentStore, files FileStorage, st *store.Store, log logging.Logger) *Adapter {
	return &Adapter{
		Behavioral:    NewSynced[models.Question](docs, st, store.BehavioralQuestions, log),
		Technical:     NewSynced[models.Question](docs, st, store.TechnicalQuestions, log),
		Resources:     NewSynced[models.Resource](docs, st, store.Resources, log),
		Notifications: NewSynced[models.Notification](docs, st, store.Notifications, log),
		docs:          docs,
		files:         files,
		log:           log,
	}
}

// Questions returns the bank of the given kind.
func (a *Adapter) Questions(kind models.QuestionKind) *QuestionBank {
	if kind == models.QuestionTechnical {
		return a.Technical
	}
	return a.Behavioral
}

// Upload stores an attachment under a generated name and returns its address.
func (a *Adapter) Upload(ctx context.Context, original string, content []byte, contentType string, now time.Time) (string, error) {
	if a.files == nil {
		return "", &RemoteError{Op: "upload", Kind: ErrUnavailable, Err: errors.New("no file storage configured")}
	}
	name, err := UploadName(original, now)
	if err != nil {
		return "", err
	}
	addr, err := a.files.Upload(ctx, name, content, contentType)
	if err != nil {
		return "", newRemoteError("upload", "", err)
	}
	return addr, nil
}

// DeleteResource removes the resource document and, when its url points into
// the attachment storage, the file behind it.
func (a *Adapter) DeleteResource(ctx context.Context, r models.Resource) error {
	if err := a.Resources.Delete(ctx, r.ID); err != nil {
		return err
	}
	return a.DeleteFile(ctx, r.URL)
}

// DeleteFile removes an uploaded attachment. Addresses outside the
// attachment storage are ignored.
func (a *Adapter) DeleteFile(ctx context.Context, address string) error {
	if a.files == nil || address == "" || !a.files.Owns(address) {
		return nil
	}
	if err := a.files.Delete(ctx, address); err != nil {
		return newRemoteError("delete file", a.Resources.Name(), err)
	}
	return nil
}

// RefreshAll refetches every remote collection. Collections that fail keep
// their previous cache.
func (a *Adapter) RefreshAll(ctx context.Context) error {
	return errors.Join(
		a.Behavioral.Refresh(ctx),
		a.Technical.Refresh(ctx),
		a.Resources.Refresh(ctx),
		a.Notifications.Refresh(ctx),
	)
}

func (a *Adapter) Ping(ctx context.Context) error {
	if err := a.docs.Ping(ctx); err != nil {
		return newRemoteError("ping", "", err)
	}
	return nil
}
