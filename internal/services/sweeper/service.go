package sweeper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/KirkDiggler/raidbot/internal/common/clock"
	"github.com/KirkDiggler/raidbot/internal/common/uuid"
	"github.com/KirkDiggler/raidbot/internal/config"
	"github.com/KirkDiggler/raidbot/internal/models"
	raidRepo "github.com/KirkDiggler/raidbot/internal/repositories/raid"
	"github.com/robfig/cron/v3"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

type service struct {
	deployments []*config.Deployment
	registry    raidRepo.Repository
	cleaner     Cleaner
	clock       clock.Clock
	uuid        uuid.UUID
	log         *slog.Logger

	schedule    string
	location    *time.Location
	batchSize   int
	maxRetries  int
	retention   time.Duration
	concurrency int

	mu   sync.Mutex
	cron *cron.Cron
}

// New creates a new sweeper, unset numbers fall back to their defaults
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Cleaner == nil {
		return nil, ErrNilCleaner
	}

	s := &service{
		deployments: cfg.Deployments,
		registry:    cfg.Registry,
		cleaner:     cfg.Cleaner,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		log:         cfg.Logger,
		schedule:    lo.Ternary(cfg.Schedule != "", cfg.Schedule, DefaultSchedule),
		location:    cfg.Location,
		batchSize:   lo.Ternary(cfg.BatchSize > 0, cfg.BatchSize, DefaultBatchSize),
		maxRetries:  lo.Ternary(cfg.MaxRetries > 0, cfg.MaxRetries, DefaultMaxRetries),
		retention:   lo.Ternary(cfg.Retention > 0, cfg.Retention, DefaultRetention),
		concurrency: lo.Ternary(cfg.Concurrency > 0, cfg.Concurrency, DefaultConcurrency),
	}

	if s.clock == nil {
		s.clock = &clock.DefaultClock{}
	}
	if s.uuid == nil {
		s.uuid = uuid.New()
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	s.log = s.log.With("component", "sweeper")
	if s.location == nil {
		s.location = time.Local
	}

	return s, nil
}

// Start schedules the sweep. Sweeps run with ctx, so cancelling it aborts a
// sweep in progress.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return ErrAlreadyStarted
	}

	logger := cron.PrintfLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelWarn))
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	if _, err := c.AddFunc(s.schedule, func() {
		if _, err := s.Sweep(ctx); err != nil {
			s.log.Error("sweep finished with errors", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}

	c.Start()
	s.cron = c

	s.log.Info("sweeper scheduled", "schedule", s.schedule, "location", s.location.String())

	return nil
}

// Stop unschedules the sweep and waits for a running sweep, or for ctx
func (s *service) Stop(ctx context.Context) error {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return ErrNotStarted
	}

	select {
	case <-c.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sweep sweeps every deployment in turn
func (s *service) Sweep(ctx context.Context) (*SweepOutput, error) {
	output := &SweepOutput{RunID: s.uuid.NewUUID()}

	s.log.Info("sweep started", "run", output.RunID, "deployments", len(s.deployments))

	var errs []error
	for _, deployment := range s.deployments {
		result, err := s.SweepDeployment(ctx, &SweepDeploymentInput{
			Deployment: deployment,
			RunID:      output.RunID,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("deployment %s: %w", deployment.GuildName, err))
			continue
		}
		output.Deployments = append(output.Deployments, result)
	}

	s.log.Info("sweep finished", "run", output.RunID)

	return output, errors.Join(errs...)
}

// SweepDeployment empties the deployment's channels and then forgets its
// standard raids. Channel failures are reported in the output, not as an
// error.
func (s *service) SweepDeployment(ctx context.Context, input *SweepDeploymentInput) (*SweepDeploymentOutput, error) {
	if input == nil || input.Deployment == nil {
		return nil, ErrNilInput
	}

	deployment := input.Deployment
	runID := input.RunID
	if runID == "" {
		runID = s.uuid.NewUUID()
	}
	log := s.log.With("run", runID, "guild", deployment.GuildName)

	channels := deployment.SweepChannels()
	results := make([]*ChannelResult, len(channels))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, channelID := range channels {
		g.Go(func() error {
			results[i] = s.sweepChannel(ctx, log.With("channel", channelID), channelID)
			return nil
		})
	}
	_ = g.Wait()

	cleared, err := s.registry.ClearPartition(ctx, &raidRepo.ClearPartitionInput{
		Partition: deployment.Partition(models.ChannelClassStandard),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to clear raids: %w", err)
	}

	output := &SweepDeploymentOutput{
		GuildID:      deployment.GuildID,
		Channels:     results,
		ClearedRaids: cleared.Removed,
	}

	log.Info("deployment swept",
		"channels", len(channels),
		"deleted", output.Deleted(),
		"raids", output.ClearedRaids)

	return output, nil
}

// sweepChannel deletes eligible messages newest first until none are left
// or the channel has failed too many times
func (s *service) sweepChannel(ctx context.Context, log *slog.Logger, channelID string) *ChannelResult {
	result := &ChannelResult{ChannelID: channelID}

	name, err := s.cleaner.ResolveChannel(ctx, channelID)
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrChannelUnavailable, err)
		log.Warn("skipping channel", "error", err)
		return result
	}
	result.Name = name

	var lastErr error
	for result.Retries < s.maxRetries {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		messages, err := s.cleaner.FetchRecent(ctx, channelID, s.batchSize)
		if err != nil {
			lastErr = err
			result.Retries++
			log.Warn("failed to fetch messages", "retries", result.Retries, "error", err)
			continue
		}

		ids := s.eligible(messages)
		if len(ids) == 0 {
			log.Info("channel swept", "name", name, "deleted", result.Deleted)
			return result
		}

		if err := s.cleaner.BulkDelete(ctx, channelID, ids); err != nil {
			lastErr = err
			result.Retries++
			log.Warn("failed to delete messages", "retries", result.Retries, "count", len(ids), "error", err)
			continue
		}

		lastErr = nil
		result.Deleted += len(ids)
	}

	result.Err = fmt.Errorf("%w: %w", ErrRetriesExhausted, lastErr)
	log.Error("giving up on channel", "name", name, "deleted", result.Deleted, "retries", result.Retries, "error", lastErr)

	return result
}

// eligible returns the IDs of unpinned messages still inside the retention
// window
func (s *service) eligible(messages []models.ChannelMessage) []string {
	cutoff := s.clock.Now().Add(-s.retention)

	return lo.FilterMap(messages, func(m models.ChannelMessage, _ int) (string, bool) {
		return m.ID, !m.Pinned && m.Timestamp.After(cutoff)
	})
}
