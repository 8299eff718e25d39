// Package cli is the interactive Daybook client: a small REPL that drives
// the auth, profile, deletion, device and entry services against the
// configured backend.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lead4tomorrow/daybook/internal/client/api"
	"github.com/lead4tomorrow/daybook/internal/client/config"
	"github.com/lead4tomorrow/daybook/internal/client/localdb"
	"github.com/lead4tomorrow/daybook/internal/client/repositories/metadata"
	"github.com/lead4tomorrow/daybook/internal/client/services"
	"github.com/lead4tomorrow/daybook/internal/client/session"
	"github.com/lead4tomorrow/daybook/internal/logging"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	session *session.Session
	auth    *services.AuthService
	profile *services.ProfileService
	account *services.AccountService
	device  *services.DeviceService
	entry   *services.EntryService
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := localdb.Init(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("local db init error: %w", err)
	}

	store := metadata.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout)
	sess := session.New()

	return &App{
		config:  cfg,
		logger:  logger,
		session: sess,
		auth:    services.NewAuthService(apiClient, sess, store, logger),
		profile: services.NewProfileService(apiClient, sess, store, logger),
		account: services.NewAccountService(apiClient, sess, store, logger),
		device:  services.NewDeviceService(apiClient, store, logger),
		entry:   services.NewEntryService(apiClient),
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	if email := a.session.Email(); email != "" {
		return fmt.Sprintf("(%s)", email)
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to Daybook (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
