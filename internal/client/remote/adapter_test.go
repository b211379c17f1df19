package remote

import (
	"context"
	"errors"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFiles struct {
	prefix   string
	uploaded map[string][]byte
	deleted  []string
	err      error
}

func (f *fakeFiles) Upload(_ context.Context, name string, content []byte, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.uploaded == nil {
		f.uploaded = map[string][]byte{}
	}
	f.uploaded[name] = content
	return f.prefix + name, nil
}

func (f *fakeFiles) Delete(_ context.Context, address string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, address)
	return nil
}

func (f *fakeFiles) Owns(address string) bool {
	return len(address) > len(f.prefix) && address[:len(f.prefix)] == f.prefix
}

func newTestAdapter(t *testing.T, files FileStorage) (*Adapter, *MemoryStore, *store.Store) {
	t.Helper()
	docs := NewMemoryStore()
	docs.now = fixedClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))
	st := store.Open(context.Background(), snapshot.NewMemoryRepository(nil), logging.Discard())
	return NewAdapter(docs, files, st, logging.Discard()), docs, st
}

func TestSynced_CreateRefetchesWithServerFields(t *testing.T) {
	a, _, st := newTestAdapter(t, nil)
	ctx := context.Background()

	id, err := a.Technical.Create(ctx, models.Question{
		ID:         "client-guess",
		Kind:       models.QuestionTechnical,
		Question:   "Walk me through a DCF",
		Category:   "DCF",
		Difficulty: models.DifficultyMedium,
	})
	require.NoError(t, err)
	assert.NotEqual(t, "client-guess", id)

	cached := store.Read(st, store.TechnicalQuestions)
	require.Len(t, cached, 1)
	assert.Equal(t, id, cached[0].ID)
	assert.False(t, cached[0].CreatedAt.IsZero())
	assert.Equal(t, "Walk me through a DCF", cached[0].Question)
	assert.Empty(t, store.Read(st, store.BehavioralQuestions))
}

func TestSynced_NewestFirst(t *testing.T) {
	a, _, _ := newTestAdapter(t, nil)
	ctx := context.Background()

	for _, text := range []string{"first", "second", "third"} {
		_, err := a.Notifications.Create(ctx, models.Notification{Text: text})
		require.NoError(t, err)
	}

	got := a.Notifications.Cached()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{got[0].Text, got[1].Text, got[2].Text})
}

func TestSynced_UpdateStampsServerTime(t *testing.T) {
	a, _, _ := newTestAdapter(t, nil)
	ctx := context.Background()

	id, err := a.Behavioral.Create(ctx, models.Question{Kind: models.QuestionBehavioral, Question: "Tell me about yourself"})
	require.NoError(t, err)
	before, _ := a.Behavioral.Find(id)

	require.NoError(t, a.Behavioral.Update(ctx, id, map[string]any{"answer": "Story", "id": "hijack"}))

	after, ok := a.Behavioral.Find(id)
	require.True(t, ok)
	assert.Equal(t, "Story", after.Answer)
	assert.Equal(t, id, after.ID)
	assert.True(t, after.LastUpdated.After(before.LastUpdated))
}

func TestSynced_FailureLeavesCacheUntouched(t *testing.T) {
	a, docs, _ := newTestAdapter(t, nil)
	ctx := context.Background()

	id, err := a.Resources.Create(ctx, models.Resource{Title: "Guide", Type: models.ResourceBook, Category: models.ResourceGeneral})
	require.NoError(t, err)

	docs.Fail(&net.OpError{Op: "dial", Err: errors.New("refused")})
	_, err = a.Resources.Create(ctx, models.Resource{Title: "Another"})
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "create", re.Op)
	assert.Equal(t, "resources", re.Collection)
	assert.ErrorIs(t, err, ErrUnavailable)

	require.Error(t, a.Resources.Delete(ctx, id))
	require.Error(t, a.Resources.Refresh(ctx))

	cached := a.Resources.Cached()
	require.Len(t, cached, 1)
	assert.Equal(t, id, cached[0].ID)
}

func TestSynced_DeleteIdempotent(t *testing.T) {
	a, _, _ := newTestAdapter(t, nil)
	ctx := context.Background()

	id, err := a.Notifications.Create(ctx, models.Notification{Text: "hi"})
	require.NoError(t, err)
	require.NoError(t, a.Notifications.Delete(ctx, id))
	require.NoError(t, a.Notifications.Delete(ctx, id))
	assert.Empty(t, a.Notifications.Cached())
}

func TestSynced_SkipsUndecodableDocuments(t *testing.T) {
	a, docs, _ := newTestAdapter(t, nil)
	ctx := context.Background()

	_, err := docs.Create(ctx, "notifications", map[string]any{"text": 42})
	require.NoError(t, err)
	_, err = docs.Create(ctx, "notifications", map[string]any{"text": "ok"})
	require.NoError(t, err)

	items, err := a.Notifications.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "ok", items[0].Text)
}

func TestSynced_LookupRefetchesOnMiss(t *testing.T) {
	a, docs, _ := newTestAdapter(t, nil)
	ctx := context.Background()

	id, err := docs.Create(ctx, "notifications", map[string]any{"text": "elsewhere"})
	require.NoError(t, err)
	_, ok := a.Notifications.Find(id)
	require.False(t, ok)

	n, ok, err := a.Notifications.Lookup(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "elsewhere", n.Text)

	calls := docs.Calls()
	_, ok, err = a.Notifications.Lookup(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, calls, docs.Calls(), "cache hit does not refetch")

	docs.Fail(errors.New("down"))
	_, ok, err = a.Notifications.Lookup(ctx, "missing")
	require.Error(t, err)
	assert.False(t, ok)
}

// slowList holds its first List until release is closed.
type slowList struct {
	*MemoryStore
	held    atomic.Bool
	started chan struct{}
	release chan struct{}
}

func (s *slowList) List(ctx context.Context, collection string) ([]Document, error) {
	docs, err := s.MemoryStore.List(ctx, collection)
	if s.held.CompareAndSwap(false, true) {
		close(s.started)
		<-s.release
	}
	return docs, err
}

func TestSynced_StaleFetchIsDropped(t *testing.T) {
	ctx := context.Background()
	docs := &slowList{MemoryStore: NewMemoryStore(), started: make(chan struct{}), release: make(chan struct{})}
	st := store.Open(ctx, snapshot.NewMemoryRepository(nil), logging.Discard())
	c := NewSynced[models.Notification](docs, st, store.Notifications, logging.Discard())

	done := make(chan error, 1)
	go func() { done <- c.Refresh(ctx) }()
	<-docs.started

	_, err := c.Create(ctx, models.Notification{Text: "hello"})
	require.NoError(t, err)
	require.Len(t, c.Cached(), 1)

	close(docs.release)
	require.NoError(t, <-done)
	assert.Len(t, c.Cached(), 1)

	require.NoError(t, c.Refresh(ctx))
	assert.Len(t, c.Cached(), 1)
}

func TestAdapter_UploadAndDeleteResource(t *testing.T) {
	files := &fakeFiles{prefix: "https://files.test/b/"}
	a, _, _ := newTestAdapter(t, files)
	ctx := context.Background()

	addr, err := a.Upload(ctx, "deck.PDF", []byte("x"), "application/pdf", time.UnixMilli(42))
	require.NoError(t, err)
	assert.Regexp(t, `^https://files\.test/b/42-[0-9a-f]{8}\.pdf$`, addr)

	id, err := a.Resources.Create(ctx, models.Resource{Title: "Deck", Type: models.ResourceDocument, Category: models.ResourceTechnicals, URL: addr})
	require.NoError(t, err)
	linkID, err := a.Resources.Create(ctx, models.Resource{Title: "Video", Type: models.ResourceVideo, Category: models.ResourceTechnicals, URL: "https://youtube.com/x"})
	require.NoError(t, err)

	r, _ := a.Resources.Find(id)
	require.NoError(t, a.DeleteResource(ctx, r))
	l, _ := a.Resources.Find(linkID)
	require.NoError(t, a.DeleteResource(ctx, l))

	assert.Equal(t, []string{addr}, files.deleted)
	assert.Empty(t, a.Resources.Cached())
}

func TestAdapter_UploadWithoutStorage(t *testing.T) {
	a, _, _ := newTestAdapter(t, nil)

	_, err := a.Upload(context.Background(), "a.pdf", nil, "", time.Now())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAdapter_DeleteResourceFileFailure(t *testing.T) {
	files := &fakeFiles{prefix: "https://files.test/b/"}
	a, _, _ := newTestAdapter(t, files)
	ctx := context.Background()

	id, err := a.Resources.Create(ctx, models.Resource{Title: "Deck", URL: "https://files.test/b/1-a.pdf"})
	require.NoError(t, err)
	r, _ := a.Resources.Find(id)

	files.err = errors.New("storage down")
	err = a.DeleteResource(ctx, r)
	var re *RemoteError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "delete file", re.Op)
}

func TestAdapter_RefreshAllAndPing(t *testing.T) {
	a, docs, st := newTestAdapter(t, nil)
	ctx := context.Background()

	_, err := docs.Create(ctx, "behavioralQuestions", map[string]any{"question": "Why banking?", "kind": "behavioral"})
	require.NoError(t, err)
	_, err = docs.Create(ctx, "resources", map[string]any{"title": "Vault guide", "tags": []string{"a"}})
	require.NoError(t, err)

	require.NoError(t, a.RefreshAll(ctx))
	assert.Len(t, store.Read(st, store.BehavioralQuestions), 1)
	assert.Len(t, store.Read(st, store.Resources), 1)
	assert.Same(t, a.Technical, a.Questions(models.QuestionTechnical))

	require.NoError(t, a.Ping(ctx))
	docs.Fail(errors.New("down"))
	require.Error(t, a.Ping(ctx))
	require.Error(t, a.RefreshAll(ctx))
	assert.Len(t, store.Read(st, store.BehavioralQuestions), 1)
}
