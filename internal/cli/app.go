package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"sheetdash/internal/api"
	"sheetdash/internal/config"
	"sheetdash/internal/logging"
	"sheetdash/internal/models"
	"sheetdash/internal/realtime"
	"sheetdash/internal/session"
	"sheetdash/internal/store"
)

// sessionManager is the slice of session.Manager the CLI depends on.
// Kept as an interface so command tests can stub it.
type sessionManager interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.User
	IsAuthenticated() bool
	Token(ctx context.Context) (string, error)
}

type App struct {
	config  *config.Config
	log     logging.Logger
	api     api.Client
	store   store.Store
	session sessionManager
	channel *realtime.Manager
	reader  *bufio.Reader

	// tables caches the last listing so `open <n>` can resolve indexes.
	tables []models.Table
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := store.OpenDatabase(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing local database: %w", err)
	}
	st := store.NewSQLiteStore(db)

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient := api.NewHTTPClient(cfg.APIBaseURL, st, cfg.RequestTimeout)
	sess := session.NewManager(apiClient, st, logger)
	channel := realtime.NewManager(cfg.SocketURL, logger)

	return &App{
		config:  cfg,
		log:     logger,
		api:     apiClient,
		store:   st,
		session: sess,
		channel: channel,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session and hands control to the REPL. The restore is
// a gate: no command runs until it finishes one way or the other.
func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	defer a.channel.Disconnect()

	fmt.Println("Restoring session...")
	if err := a.session.Initialize(ctx); err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}
	if user := a.session.CurrentUser(); user != nil {
		fmt.Printf("Welcome back, %s!\n", user.Name)
	}

	a.Root(ctx)
}

func (a *App) isAuthenticated() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if user := a.session.CurrentUser(); user != nil {
		return fmt.Sprintf("(%s)", user.Email)
	}
	return ""
}

func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to sheetdash (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}
