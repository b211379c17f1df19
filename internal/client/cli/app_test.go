package cli

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/auth"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/config"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/remote"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/services"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/common"
	"github.com/dmitrijs2005/recruitkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sam   = models.Identity{ID: "sam@example.com", DisplayName: "Sam", Email: "sam@example.com"}
	fixed = time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)
)

type testApp struct {
	*App
	buf  *bytes.Buffer
	st   *store.Store
	docs *remote.MemoryStore
}

func newTestApp(t *testing.T, cfg *config.Config, signedIn *models.Identity) *testApp {
	t.Helper()
	stubTerminal(t, false, nil)

	if cfg == nil {
		cfg = &config.Config{}
		cfg.LoadDefaults()
	}
	ctx := context.Background()
	st := store.Open(ctx, snapshot.NewMemoryRepository(nil), logging.Discard())
	docs := remote.NewMemoryStore()
	adapter := remote.NewAdapter(docs, nil, st, logging.Discard())

	buf := &bytes.Buffer{}
	a := &App{
		config: cfg,
		log:    logging.Discard(),
		remote: adapter,
		out:    buf,
		now:    func() time.Time { return fixed },
		mode:   ModeOnline,
	}
	a.disp = services.NewDispatcher(st, adapter, auth.NewSession(signedIn),
		services.WithAdminEmail(cfg.AdminEmail),
		services.WithWarner(services.WarnerFunc(func(_ context.Context, msg string) {
			buf.WriteString(msg + "\n")
		})),
	)
	return &testApp{App: a, buf: buf, st: st, docs: docs}
}

// feed queues answers for the prompts of the next command.
func (ta *testApp) feed(lines ...string) {
	ta.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestApp_SignInWithPrompts(t *testing.T) {
	ta := newTestApp(t, nil, nil)
	ctx := context.Background()

	ta.feed("Sam", "Sam@Example.com")
	require.NoError(t, ta.SignIn(ctx, nil))

	id := ta.disp.Identity()
	require.NotNil(t, id)
	assert.Equal(t, "sam@example.com", id.ID)
	assert.Equal(t, "(Sam online)", ta.getStatus())
	assert.Equal(t, id, ta.st.Identity())
}

func TestApp_SignInWithToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.IdentitySecret = "s3cret"
	cfg.AdminEmail = sam.Email
	ta := newTestApp(t, cfg, nil)
	ctx := context.Background()

	tok, err := auth.IssueIdentityToken(sam, []byte("s3cret"), time.Hour)
	require.NoError(t, err)

	ta.feed(tok)
	require.NoError(t, ta.SignIn(ctx, nil))
	require.NoError(t, ta.WhoAmI(ctx, nil))
	assert.Contains(t, ta.buf.String(), "Sam <sam@example.com> (admin)")

	ta.feed("not-a-token")
	require.ErrorIs(t, ta.SignIn(ctx, nil), auth.ErrInvalidToken)
}

func TestApp_AddFirmRequiresSignIn(t *testing.T) {
	ta := newTestApp(t, nil, nil)

	ta.feed("Acme", "", "", "", "")
	err := ta.AddFirm(context.Background(), nil)
	require.ErrorIs(t, err, common.ErrUnauthenticated)
	assert.Contains(t, ta.buf.String(), "Please sign in")
	assert.Empty(t, store.Read(ta.st, store.Firms))
}

func TestApp_FirmsAndChats(t *testing.T) {
	ta := newTestApp(t, nil, &sam)
	ctx := context.Background()

	ta.feed("Evercore", "IBD", "NYC", "applied", "2024-05-20")
	require.NoError(t, ta.AddFirm(ctx, nil))

	firms := store.Read(ta.st, store.Firms)
	require.Len(t, firms, 1)
	assert.Equal(t, models.FirmApplied, firms[0].Status)

	ta.feed("evercore", "Ana", "", "")
	require.NoError(t, ta.AddChat(ctx, nil))
	ta.feed("Ghost Capital", "Bo", "2024-05-14", "met at fair", "")
	require.NoError(t, ta.AddChat(ctx, nil))

	chats := store.Read(ta.st, store.CoffeeChats)
	require.Len(t, chats, 2)
	assert.Equal(t, firms[0].ID, chats[0].FirmID)
	assert.Equal(t, "2024-05-15", chats[0].ScheduledDate)
	assert.Equal(t, "met at fair", chats[1].Notes)

	ta.buf.Reset()
	require.NoError(t, ta.Chats(ctx, nil))
	out := ta.buf.String()
	assert.Contains(t, out, "Evercore")
	assert.Contains(t, out, "Unknown")

	ta.buf.Reset()
	require.NoError(t, ta.Firms(ctx, []string{"ever"}))
	assert.Contains(t, ta.buf.String(), "Evercore")

	ta.buf.Reset()
	require.NoError(t, ta.Firms(ctx, []string{"nomatch"}))
	assert.Equal(t, "No firms\n", ta.buf.String())

	require.NoError(t, ta.Remove(ctx, []string{"firm", firms[0].ID}))
	assert.Empty(t, store.Read(ta.st, store.Firms))
	assert.Len(t, store.Read(ta.st, store.CoffeeChats), 2)

	require.Error(t, ta.Remove(ctx, []string{"planet", "x"}))
	require.Error(t, ta.Remove(ctx, []string{"firm"}))
}

func TestApp_Deck(t *testing.T) {
	ta := newTestApp(t, nil, &sam)
	ctx := context.Background()

	ta.feed("Rates cut", "Macro", "", "Fed cut by 25bp", "", "y", "What did the Fed do?", "Cut 25bp", "")
	require.NoError(t, ta.AddIntel(ctx, nil))

	intel := store.Read(ta.st, store.MarketIntel)
	require.Len(t, intel, 1)
	require.True(t, intel[0].IsFlashcard)
	assert.Equal(t, models.ReviewNeeded, intel[0].ReviewStatus)

	ta.feed("", "solid")
	require.NoError(t, ta.Deck(ctx, nil))
	assert.Contains(t, ta.buf.String(), "Cut 25bp")
	assert.Equal(t, models.ReviewSolid, store.Read(ta.st, store.MarketIntel)[0].ReviewStatus)

	ta.buf.Reset()
	require.NoError(t, ta.Deck(ctx, []string{"need", "to", "review"}))
	assert.Equal(t, "No flashcards\n", ta.buf.String())

	require.Error(t, ta.Deck(ctx, []string{"mastered"}))
}

func TestApp_QuestionsAndResources(t *testing.T) {
	ta := newTestApp(t, nil, &sam)
	ctx := context.Background()

	ta.feed("Walk me through a DCF", "dcf", "", "Project cash flows", "")
	require.NoError(t, ta.AddQuestion(ctx, []string{"technical"}))
	require.Error(t, ta.AddQuestion(ctx, nil))

	ta.buf.Reset()
	require.NoError(t, ta.Questions(ctx, []string{"technical", "dcf"}))
	out := ta.buf.String()
	assert.Contains(t, out, "DCF 1")
	assert.Contains(t, out, "Walk me through a DCF")

	ta.feed("400 Questions", "link", "", "Guide", "ibd, guides", "https://example.com/guide")
	require.NoError(t, ta.AddResource(ctx, nil))

	rs := store.Read(ta.st, store.Resources)
	require.Len(t, rs, 1)
	assert.Equal(t, models.ResourceGeneral, rs[0].Category)
	assert.Equal(t, []string{"guides", "ibd"}, rs[0].Tags)

	ta.buf.Reset()
	require.NoError(t, ta.Resources(ctx, []string{"guide"}))
	assert.Contains(t, ta.buf.String(), "400 Questions")

	qs := store.Read(ta.st, store.TechnicalQuestions)
	require.Len(t, qs, 1)
	require.NoError(t, ta.Remove(ctx, []string{"question", qs[0].ID}))
	assert.Empty(t, store.Read(ta.st, store.TechnicalQuestions))
}

func TestApp_Notifications(t *testing.T) {
	ta := newTestApp(t, nil, &sam)
	ctx := context.Background()

	require.NoError(t, ta.Notify(ctx, []string{"Superdays", "next", "week"}))

	ta.buf.Reset()
	require.NoError(t, ta.Notifications(ctx, nil))
	assert.Contains(t, ta.buf.String(), "Superdays next week")

	require.NoError(t, ta.Refresh(ctx, nil))
	assert.Equal(t, ModeOnline, ta.Mode())

	ta.docs.Fail(remote.ErrUnavailable)
	require.Error(t, ta.Refresh(ctx, nil))
	assert.Equal(t, ModeOffline, ta.Mode())
}

func TestApp_ExportClearImport(t *testing.T) {
	ta := newTestApp(t, nil, &sam)
	ctx := context.Background()

	ta.feed("Evercore", "", "", "", "")
	require.NoError(t, ta.AddFirm(ctx, nil))

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, ta.Export(ctx, []string{path}))
	_, err := os.Stat(path)
	require.NoError(t, err)

	ta.feed("no")
	require.NoError(t, ta.Clear(ctx, nil))
	assert.Len(t, store.Read(ta.st, store.Firms), 1)

	ta.feed("yes")
	require.NoError(t, ta.Clear(ctx, nil))
	assert.Empty(t, store.Read(ta.st, store.Firms))

	ta.buf.Reset()
	require.NoError(t, ta.Import(ctx, []string{path}))
	assert.Contains(t, ta.buf.String(), "Imported 1 records")
	assert.Len(t, store.Read(ta.st, store.Firms), 1)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1,2]"), 0o600))
	require.ErrorIs(t, ta.Import(ctx, []string{bad}), common.ErrValidation)
	assert.Len(t, store.Read(ta.st, store.Firms), 1)
}

func TestApp_Stats(t *testing.T) {
	ta := newTestApp(t, nil, &sam)
	ctx := context.Background()

	ta.feed("Evercore", "", "", "", "2024-05-20")
	require.NoError(t, ta.AddFirm(ctx, nil))

	ta.buf.Reset()
	require.NoError(t, ta.Stats(ctx, nil))
	out := ta.buf.String()
	assert.Contains(t, out, "Total records")
	assert.Contains(t, out, "Upcoming deadlines:")
	assert.Contains(t, out, "2024-05-20  Evercore")
}
