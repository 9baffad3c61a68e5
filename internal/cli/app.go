package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"animegallery/internal/auth"
	"animegallery/internal/common"
	"animegallery/internal/config"
	"animegallery/internal/logging"
	"animegallery/internal/models"
	"animegallery/internal/storage/filestore"
	"animegallery/internal/storage/sqlitestore"
	"animegallery/internal/store"
)

// App wires the durable storage, the store and the auth facade together and
// carries the I/O state of the REPL.
type App struct {
	config *config.Config
	log    logging.Logger
	store  *store.Store
	auth   *auth.Service
	db     *sqlitestore.Store
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the sqlite-backed durable storage and the file-backed
// session slot, loads the store (seeding or migrating if needed) and
// restores any previous session.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := sqlitestore.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening durable storage: %w", err)
	}

	session, err := filestore.New(cfg.SessionDir)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening session storage: %w", err)
	}

	secret := []byte(cfg.SecretKey)
	if len(secret) == 0 {
		random, err := common.MakeRandHexString(32)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("generating session secret: %w", err)
		}
		secret = []byte(random)
		log.Warn(ctx, "no secret key configured, sessions will not survive a restart")
	}

	st := store.Open(ctx, db, log)
	authService := auth.NewService(ctx, st, session, secret, log)

	return &App{
		config: cfg,
		log:    log,
		store:  st,
		auth:   authService,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Anime Gallery CLI (type 'help' for commands)")
	if cur := a.auth.Current(); cur != nil {
		fmt.Fprintf(a.out, "Restored session for %s.\n", cur.Username)
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin), a.out)
}

// Close releases the durable storage handle.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) getStatus() string {
	cur := a.auth.Current()
	if cur == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", cur.Username)
}

func (a *App) isLoggedIn() bool {
	return a.auth.Current() != nil
}

func (a *App) isAdmin() bool {
	cur := a.auth.Current()
	return cur != nil && cur.Role == models.RoleAdmin
}
