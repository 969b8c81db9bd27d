package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/cardgen/internal/config"
	"github.com/KirkDiggler/cardgen/internal/errors"
	"github.com/KirkDiggler/cardgen/internal/export"
	cardorchestrator "github.com/KirkDiggler/cardgen/internal/orchestrators/card"
	"github.com/KirkDiggler/cardgen/internal/photos"
	"github.com/KirkDiggler/cardgen/internal/pkg/clock"
	"github.com/KirkDiggler/cardgen/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/cardgen/internal/redis"
	"github.com/KirkDiggler/cardgen/internal/render"
	"github.com/KirkDiggler/cardgen/internal/repositories/artifacts"
	"github.com/KirkDiggler/cardgen/internal/repositories/cards"
)

// app is the wired card service and everything it holds open
type app struct {
	cards    *cardorchestrator.Orchestrator
	exporter export.Exporter
	closers  []io.Closer
}

func (a *app) Close() {
	if err := a.cards.Close(); err != nil {
		slog.Warn("Failed to close card orchestrator", "error", err)
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}

func setupLogging(w io.Writer, level slog.Level, jsonOutput bool) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(w, opts)
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newApp(ctx context.Context, cfg *config.Config, clk clock.Clock, roller dice.Roller) (*app, error) {
	a := &app{}

	artifactRepo, err := newArtifactRepository(ctx, cfg, clk, a)
	if err != nil {
		return nil, err
	}

	exporter, err := export.New(cfg.ExportConfig())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create exporter")
	}
	a.exporter = exporter

	renderer, err := render.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create renderer")
	}

	numbers, err := idgen.NewCardNumber(roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create card number generator")
	}

	orchestrator, err := cardorchestrator.New(&cardorchestrator.Config{
		CardRepo:      cards.NewInMemory(),
		ArtifactRepo:  artifactRepo,
		Renderer:      renderer,
		Exporter:      exporter,
		Photos:        photos.NewImaging(),
		Clock:         clk,
		Numbers:       numbers,
		CardIDs:       idgen.NewUUID("card"),
		ExportIDs:     idgen.NewUUID("exp"),
		EventBus:      events.NewBus(),
		ExportTimeout: cfg.ExportTimeout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create card orchestrator")
	}
	a.cards = orchestrator

	return a, nil
}

func newArtifactRepository(ctx context.Context, cfg *config.Config, clk clock.Clock, a *app) (artifacts.Repository, error) {
	if cfg.RedisURL == "" {
		slog.Debug("Storing exports in memory", "ttl", cfg.ArtifactTTL)
		return artifacts.NewInMemory(clk, cfg.ArtifactTTL)
	}

	client, err := redisclient.NewClientFromURL(cfg.RedisURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	a.closers = append(a.closers, client)

	slog.Info("Storing exports in redis", "ttl", cfg.ArtifactTTL)
	return artifacts.NewRedis(&artifacts.Config{
		Client: client,
		Clock:  clk,
		TTL:    cfg.ArtifactTTL,
	})
}
