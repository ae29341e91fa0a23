package cmd

import (
	"errors"
	"fmt"

	"github.com/rnwolfe/zenith/internal/ai"
	"github.com/rnwolfe/zenith/internal/coach"
	"github.com/rnwolfe/zenith/internal/config"
	"github.com/rnwolfe/zenith/internal/store"
	"github.com/rnwolfe/zenith/internal/tracker"
	"go.uber.org/zap"
)

// app bundles what most commands need: config, the database and the tracker
// loaded from it.
type app struct {
	cfg *config.Config
	db  *store.DB
	tr  *tracker.Tracker
}

func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		appLogger().Warn("loading config failed, using defaults", zap.Error(err))
		cfg = &config.Config{}
	}

	db, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	return &app{
		cfg: cfg,
		db:  db,
		tr:  tracker.Open(db, appLogger().Named("tracker")),
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		appLogger().Warn("closing store failed", zap.Error(err))
	}
}

// newCoach builds a coach client for the configured provider. A missing API
// key is not an error: the client falls back to offline suggestions.
func newCoach(cfg *config.Config) *coach.Client {
	l := appLogger().Named("coach")

	name := cfg.AI.Provider
	if name == "" {
		name = config.DefaultProvider
	}

	key, err := ai.NewKeystore().Get(name)
	if err != nil {
		if errors.Is(err, ai.ErrNoKey) {
			l.Debug("no API key, coach is offline", zap.String("provider", name))
		} else {
			l.Warn("reading API key failed", zap.String("provider", name), zap.Error(err))
		}
		return coach.New(nil, cfg.AI.Model, l)
	}

	p, err := ai.GetProvider(name, key)
	if err != nil {
		l.Warn("creating provider failed", zap.String("provider", name), zap.Error(err))
		return coach.New(nil, cfg.AI.Model, l)
	}
	return coach.New(p, cfg.AI.Model, l)
}
