package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"sync"

	"github.com/memoclub/memocli/internal/client/api"
	"github.com/memoclub/memocli/internal/client/config"
	"github.com/memoclub/memocli/internal/client/notify"
	"github.com/memoclub/memocli/internal/client/services"
	"github.com/memoclub/memocli/internal/client/session"
	"github.com/memoclub/memocli/internal/client/storage"
	"github.com/memoclub/memocli/internal/client/store"
	"github.com/memoclub/memocli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session components together for the interactive shell.
type App struct {
	config  *config.Config
	log     logging.Logger
	client  *api.HTTPClient
	store   *store.Store
	session *session.Resolver
	users   services.UserService
	storage storage.Repository
	db      *sql.DB
	reader  *bufio.Reader

	mu   sync.Mutex
	path string
}

// NewApp builds the full component graph: local settings database, HTTP
// transport, notifier, store, user service, and session resolver.
func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	repo, db, err := storage.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	apiClient, err := api.NewHTTPClient(cfg.ServerAddr, cfg.RequestTimeout)
	if err != nil {
		db.Close()
		return nil, err
	}
	if cfg.AccessToken != "" {
		apiClient.SetAccessToken(cfg.AccessToken)
	}

	st := store.New()
	notifier := notify.New(cfg.NotifyEndpoint, cfg.RequestTimeout)
	users := services.NewUserService(apiClient, st, repo, notifier, log)

	a := &App{
		config:  cfg,
		log:     log,
		client:  apiClient,
		store:   st,
		users:   users,
		storage: repo,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		path:    "/",
	}
	a.session = session.NewResolver(st, session.LocatorFunc(a.currentPath))
	return a, nil
}

// Run bootstraps session state and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.users.InitialState(ctx); err != nil {
		a.log.Warn(ctx, "initial session probe failed", "error", err)
	}

	runREPL(ctx, a, bufio.NewScanner(os.Stdin), a.getStatus)
}

// Close releases the transport and the local database.
func (a *App) Close() {
	if err := a.client.Close(); err != nil {
		a.log.Warn(context.Background(), "closing api client", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing local database", "error", err)
	}
}

func (a *App) currentPath() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.path
}

func (a *App) setPath(path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.path = path
}

func (a *App) isLoggedIn() bool {
	return a.store.GetState().User != nil
}

// getStatus renders the prompt decoration: the signed-in username plus
// the derived session mode.
func (a *App) getStatus() string {
	state := a.store.GetState()

	s := ""
	if state.User != nil {
		s = state.User.Username + " "
	}
	if a.session.IsVisitorMode() {
		s += "visitor"
	} else {
		s += "self"
	}
	return "(" + s + ")"
}
