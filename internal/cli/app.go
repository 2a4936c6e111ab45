// Package cli is the presentation layer of the adminboard demo: a small
// REPL that drives the session, roster and preference stores. All
// navigation and message display happens here; the stores never print.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"adminboard/internal/config"
	"adminboard/internal/directory"
	"adminboard/internal/latency"
	"adminboard/internal/logging"
	"adminboard/internal/prefs"
	"adminboard/internal/roster"
	"adminboard/internal/session"
	"adminboard/internal/storage"

	_ "modernc.org/sqlite"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	sessions *session.Store
	prefs    *prefs.Store
	roster   *roster.Store
	reader   *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := storage.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	repo := storage.NewSQLiteRepository(db)

	issuer := session.NewTokenIssuer([]byte(cfg.SecretKey), cfg.TokenValidity)
	sessions := session.NewStore(ctx, directory.Demo(), repo,
		latency.Fixed(cfg.AuthLatency), issuer, log)

	return &App{
		config:   cfg,
		db:       db,
		sessions: sessions,
		prefs:    prefs.NewStore(ctx, repo, log),
		roster:   roster.NewStore(latency.Fixed(cfg.RosterLatency), log),
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().Authenticated
}

func (a *App) status() string {
	cur := a.sessions.Current()
	if !cur.Authenticated {
		return "not logged in"
	}
	return cur.User.Email
}
