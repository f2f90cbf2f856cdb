package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cycletext/internal/adapters/discord"
	"cycletext/internal/application"
	"cycletext/internal/catalog"
	"cycletext/internal/config"
	"cycletext/internal/content"
	"cycletext/internal/domain"
	"cycletext/internal/domain/entities"
	"cycletext/internal/infrastructure/database"
	"cycletext/internal/infrastructure/i18n"
	"cycletext/internal/infrastructure/state"
	"cycletext/pkg/format"
	"cycletext/pkg/logger"
	"cycletext/pkg/tz"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, zlog)
	if err != nil {
		zlog.Fatal("database init failed", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, "migrations", zlog); err != nil {
		zlog.Fatal("migrations failed", zap.Error(err))
	}

	repo := database.NewStateRepository(pool)
	provider := state.NewProvider(cfg.StaleSyncAfter)

	stored, err := repo.Load(ctx, cfg.DeviceID)
	switch {
	case errors.Is(err, domain.ErrDeviceStateNotFound):
		fresh := entities.DeviceState{
			DeviceID:     cfg.DeviceID,
			PairingStage: entities.PairingStageScanning,
			SyncStatus:   entities.SyncStatusIdle,
			Unit:         entities.UnitCelsius,
		}
		if err := repo.Save(ctx, &fresh); err != nil {
			zlog.Fatal("seed device state failed", zap.Error(err))
		}
		provider.Set(fresh)
	case err != nil:
		zlog.Fatal("load device state failed", zap.Error(err))
	default:
		provider.Set(*stored)
	}

	// The registry is built once; a key collision between tables is a
	// packaging error and stops the process here.
	registry, err := content.Build(catalog.Tables()...)
	if err != nil {
		zlog.Fatal("content registry build failed", zap.Error(err))
	}

	legacy, err := i18n.NewLegacyBundle(cfg.DefaultLocale)
	if err != nil {
		zlog.Fatal("legacy bundle load failed", zap.Error(err))
	}

	resolver := application.NewResolverService(registry, provider, format.New(tz.Zurich),
		application.WithLegacy(legacy),
		application.WithStrict(cfg.Strict()),
		application.WithLogger(zlog),
	)

	if cfg.DiscordToken != "" {
		notifier, err := discord.NewNotifier(cfg.DiscordToken, cfg.AlertChannelID,
			resolver, provider, cfg.DefaultLocale, cfg.TimePattern, zlog)
		if err != nil {
			zlog.Fatal("notifier init failed", zap.Error(err))
		}
		if err := notifier.Open(); err != nil {
			zlog.Fatal("notifier open failed", zap.Error(err))
		}
		defer notifier.Close()
		go notifier.RunStaleSyncWatcher(ctx, 10*time.Minute)
	}

	zlog.Info("cycletext companion ready",
		zap.String("device", cfg.DeviceID),
		zap.String("locale", cfg.DefaultLocale.String()),
		zap.Int("entries", registry.Len()),
		zap.Bool("strict", cfg.Strict()))

	<-ctx.Done()
	zlog.Info("shutting down")
}
