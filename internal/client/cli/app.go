package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/auth"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/config"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/remote"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/services"
	"github.com/dmitrijs2005/recruitkeeper/internal/client/store"
	"github.com/dmitrijs2005/recruitkeeper/internal/filex"
	"github.com/dmitrijs2005/recruitkeeper/internal/logging"
)

type Mode string

const (
	ModeLocal   Mode = "local"
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	log    logging.Logger
	disp   *services.Dispatcher
	remote *remote.Adapter
	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time

	mu      sync.Mutex
	mode    Mode
	closers []func() error
}

// NewApp opens the local snapshot in cfg.DataDir and, when cfg.RemoteDSN is
// set, the shared document store.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	a := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
		mode:   ModeLocal,
	}

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	repo, err := a.openSnapshot(ctx, dir)
	if err != nil {
		return nil, err
	}
	st := store.Open(ctx, repo, log)

	if cfg.RemoteDSN != "" {
		if err := a.openRemote(ctx, st); err != nil {
			_ = a.Close()
			return nil, err
		}
		a.mode = ModeOnline
	}

	a.disp = services.NewDispatcher(st, a.remote, auth.NewSession(st.Identity()),
		services.WithLogger(log),
		services.WithAdminEmail(cfg.AdminEmail),
		services.WithWarner(services.WarnerFunc(func(_ context.Context, msg string) {
			fmt.Fprintln(a.out, msg)
		})),
	)
	return a, nil
}

func (a *App) openSnapshot(ctx context.Context, dir string) (snapshot.Repository, error) {
	switch a.config.SnapshotBackend {
	case config.BackendFile:
		return snapshot.NewFileRepository(filepath.Join(dir, "snapshot.json")), nil
	default:
		db, err := snapshot.OpenSQLite(ctx, filepath.Join(dir, "tracker.db"))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return snapshot.NewSQLiteRepository(db), nil
	}
}

func (a *App) openRemote(ctx context.Context, st *store.Store) error {
	db, err := remote.OpenPostgres(ctx, a.config.RemoteDSN)
	if err != nil {
		return err
	}
	a.closers = append(a.closers, db.Close)

	var files remote.FileStorage
	if s := a.config.S3; s.Bucket != "" {
		files = remote.NewS3Storage(remote.S3Config{
			Region:        s.Region,
			Endpoint:      s.Endpoint,
			AccessKey:     s.AccessKey,
			SecretKey:     s.SecretKey,
			Bucket:        s.Bucket,
			Prefix:        s.Prefix,
			PublicBaseURL: s.PublicBaseURL,
		}, nil)
	}

	a.remote = remote.NewAdapter(remote.NewPostgresStore(db), files, st, a.log)
	return nil
}

// Close releases the databases opened by NewApp.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run fetches the shared collections, starts the background watchers and
// blocks in the REPL until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.remote != nil {
		if err := a.disp.Refresh(ctx); err != nil {
			a.setMode(ModeOffline)
			a.log.Warn(ctx, "initial refresh failed", "error", err)
		}
		go a.StartOnlineStatusWatcher(ctx, a.config.NotificationInterval)
		go a.disp.WatchNotifications(ctx, a.config.NotificationInterval, a.announce)
	}

	printlnFn("Welcome to the recruiting tracker (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

func (a *App) announce(ns []models.Notification) {
	for _, n := range ns {
		printlnFn("New notification:", n.Text)
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// StartOnlineStatusWatcher pings the shared store every interval and flips
// between online and offline mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.remote.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) signedIn() bool { return a.disp.Identity() != nil }

func (a *App) getStatus() string {
	s := ""
	if id := a.disp.Identity(); id != nil {
		s = id.DisplayName + " "
	}
	s += string(a.Mode())
	return fmt.Sprintf("(%s)", s)
}
