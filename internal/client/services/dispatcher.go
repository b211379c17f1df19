package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/auth"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/remote"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/common"
	"github.com/dmitrijs2005/recruitkeeper/internal/logging"
	"github.com/google/uuid"
)

// Warner shows a blocking warning to the user.
type Warner interface {
	Warn(ctx context.Context, msg string)
}

type WarnerFunc func(ctx context.Context, msg string)

func (f WarnerFunc) Warn(ctx context.Context, msg string) { f(ctx, msg) }

type Option func(*Dispatcher)

func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithIDGenerator replaces the default UUIDv7 generator.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(d *Dispatcher) { d.newID = gen }
}

func WithLogger(log logging.Logger) Option {
	return func(d *Dispatcher) { d.log = log }
}

func WithWarner(w Warner) Option {
	return func(d *Dispatcher) { d.warn = w }
}

// WithAdminEmail names the identity allowed to seed and edit preloaded questions.
func WithAdminEmail(email string) Option {
	return func(d *Dispatcher) { d.admin = email }
}

// Dispatcher serializes mutations, so operations from this client are
// applied in the order they were issued.
type Dispatcher struct {
	mu      sync.Mutex
	store   *store.Store
	remote  *remote.Adapter
	session *auth.Session

	now   func() time.Time
	newID func() (string, error)
	log   logging.Logger
	warn  Warner
	admin string
	last  time.Time
}

// NewDispatcher builds a dispatcher over st. adapter may be nil when no
// remote store is configured; remote operations then fail with
// remote.ErrUnavailable.
func NewDispatcher(st *store.Store, adapter *remote.Adapter, session *auth.Session, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		store:   st,
		remote:  adapter,
		session: session,
		now:     time.Now,
		newID:   newUUIDv7,
		log:     logging.Discard(),
		warn:    WarnerFunc(func(context.Context, string) {}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (d *Dispatcher) Store() *store.Store { return d.store }

// Identity returns the signed-in identity, or nil.
func (d *Dispatcher) Identity() *models.Identity { return d.session.Current() }

// IsAdmin reports whether the signed-in identity is the administrator.
func (d *Dispatcher) IsAdmin() bool { return auth.IsAdmin(d.session.Current(), d.admin) }

// gate returns the signed-in identity or rejects the create.
func (d *Dispatcher) gate(ctx context.Context, what string) (*models.Identity, error) {
	id := d.session.Current()
	if id == nil {
		d.log.Warn(ctx, "create rejected: not signed in", "collection", what)
		d.warn.Warn(ctx, "Please sign in to add "+what+".")
		return nil, common.ErrUnauthenticated
	}
	return id, nil
}

// stamp returns the current time, nudged forward so successive stamps
// strictly increase and never precede prev.
func (d *Dispatcher) stamp(prev time.Time) time.Time {
	now := d.now()
	if !now.After(d.last) {
		now = d.last.Add(time.Nanosecond)
	}
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	d.last = now
	return now
}
