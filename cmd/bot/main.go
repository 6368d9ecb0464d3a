package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/KirkDiggler/raidbot/internal/common/clock"
	"github.com/KirkDiggler/raidbot/internal/common/uuid"
	"github.com/KirkDiggler/raidbot/internal/config"
	"github.com/KirkDiggler/raidbot/internal/handlers/discord"
	"github.com/KirkDiggler/raidbot/internal/models"
	raidRepo "github.com/KirkDiggler/raidbot/internal/repositories/raid"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
	raidService "github.com/KirkDiggler/raidbot/internal/services/raid"
	"github.com/KirkDiggler/raidbot/internal/services/sweeper"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
)

func main() {
	deploymentsFile := pflag.String("deployments", "", "path of the deployments file, overrides DEPLOYMENTS_FILE")
	sweepNow := pflag.Bool("sweep-now", false, "run one retention sweep and exit")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load configuration", err)
	}

	level, err := cfg.Level()
	if err != nil {
		fatal("Failed to parse log level", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *deploymentsFile != "" {
		cfg.DeploymentsFile = *deploymentsFile
	}

	deployments, err := config.LoadDeployments(cfg.DeploymentsFile)
	if err != nil {
		fatal("Failed to load deployments", err, "file", cfg.DeploymentsFile)
	}

	location, err := cfg.SweepLocation()
	if err != nil {
		fatal("Failed to load sweep time zone", err)
	}

	// raid timestamps and the sweep cutoff follow the sweep time zone
	wallClock := &clock.DefaultClock{Location: location}

	// Initialize the raid registry
	registry, err := raidRepo.NewMemory(&raidRepo.Config{
		Partitions: lo.FlatMap(deployments, func(d *config.Deployment, _ int) []models.Partition {
			return d.Partitions()
		}),
	})
	if err != nil {
		fatal("Failed to create raid registry", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		DefaultLocale: "fi",
		Prefix:        lo.FirstOr(cfg.CommandPrefixes, "!"),
	})
	if err != nil {
		fatal("Failed to create messaging service", err)
	}

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		fatal("Failed to create Discord session", err)
	}

	surface, err := discord.NewSurface(&discord.SurfaceConfig{
		Session:   session,
		Messaging: messagingSvc,
		Clock:     wallClock,
		Logger:    logger,
	})
	if err != nil {
		fatal("Failed to create Discord surface", err)
	}

	sweeperSvc, err := sweeper.New(&sweeper.Config{
		Deployments: deployments,
		Registry:    registry,
		Cleaner:     surface,
		Clock:       wallClock,
		UUID:        uuid.New(),
		Logger:      logger,
		Schedule:    cfg.SweepSchedule,
		Location:    location,
	})
	if err != nil {
		fatal("Failed to create sweeper", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *sweepNow {
		if _, err := sweeperSvc.Sweep(ctx); err != nil {
			fatal("Sweep failed", err)
		}
		logger.Info("Sweep done")
		return
	}

	raidSvc, err := raidService.New(&raidService.Config{
		Deployments: deployments,
		Prefixes:    cfg.CommandPrefixes,
		Registry:    registry,
		Renderer:    surface,
		Messenger:   surface,
		Messaging:   messagingSvc,
		Logger:      logger,
	})
	if err != nil {
		fatal("Failed to create raid service", err)
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		ApplicationID: cfg.ApplicationID,
		GuildIDs: lo.Map(deployments, func(d *config.Deployment, _ int) string {
			return d.GuildID
		}),
		RaidService: raidSvc,
		Logger:      logger,
	})
	if err != nil {
		fatal("Failed to create Discord bot", err)
	}

	if err := bot.Start(ctx); err != nil {
		fatal("Failed to start Discord bot", err)
	}

	if err := sweeperSvc.Start(ctx); err != nil {
		fatal("Failed to start sweeper", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := sweeperSvc.Stop(shutdownCtx); err != nil {
		logger.Warn("Error stopping sweeper", "error", err)
	}

	if err := bot.Stop(); err != nil {
		logger.Warn("Error stopping bot", "error", err)
	}

	logger.Info("Bot has been shut down")
}

func fatal(msg string, err error, args ...any) {
	slog.Error(msg, append(args, "error", err)...)
	os.Exit(1)
}
