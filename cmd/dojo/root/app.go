package root

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/talgya/dojo-idle/internal/config"
	"github.com/talgya/dojo-idle/internal/content"
	"github.com/talgya/dojo-idle/internal/entropy"
	"github.com/talgya/dojo-idle/internal/game"
	"github.com/talgya/dojo-idle/internal/persistence"
)

// app bundles what most commands need.
type app struct {
	cfg  *config.Config
	pack *content.Pack
	db   *persistence.DB
}

func openApp() (*app, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	pack, err := content.LoadOrDefault(cfg.ContentPath)
	if err != nil {
		return nil, nil, err
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("database opened", "path", cfg.DBPath)

	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Warn("close database", "error", err)
		}
	}
	return &app{cfg: cfg, pack: pack, db: db}, cleanup, nil
}

// loadState restores the named slot, or starts a new game when it is empty.
func (a *app) loadState(name string) (*game.State, error) {
	st, _, err := a.db.LoadByName(name, a.pack.Environments)
	if errors.Is(err, persistence.ErrNoSave) {
		slog.Info("starting new game", "save", name)
		return game.New(a.pack.Environments), nil
	}
	return st, err
}

func (a *app) save(name string, st *game.State) error {
	if _, err := a.db.SaveGame(name, st); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

// rng picks a source: an explicit seed wins, then the config seed, then crypto.
func (a *app) rng(seed int64) entropy.Source {
	if seed == 0 {
		seed = a.cfg.Seed
	}
	if seed == 0 {
		return entropy.Crypto()
	}
	return entropy.Seeded(seed)
}
