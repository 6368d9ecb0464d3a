package sweeper

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/raidbot/internal/common/clock"
	"github.com/KirkDiggler/raidbot/internal/common/uuid"
	"github.com/KirkDiggler/raidbot/internal/config"
	raidRepo "github.com/KirkDiggler/raidbot/internal/repositories/raid"
)

const (
	DefaultSchedule    = "0 1 * * *"
	DefaultBatchSize   = 100
	DefaultMaxRetries  = 10
	DefaultRetention   = 14 * 24 * time.Hour
	DefaultConcurrency = 4
)

// Config holds configuration for the sweeper
type Config struct {
	Deployments []*config.Deployment
	Registry    raidRepo.Repository
	Cleaner     Cleaner

	// Clock measures message age, defaults to the system clock
	Clock clock.Clock

	// UUID hands out run IDs
	UUID uuid.UUID

	Logger *slog.Logger

	// Schedule is a standard five field cron spec
	Schedule string

	// Location is the time zone the schedule runs in
	Location *time.Location

	// BatchSize is how many messages are fetched per round
	BatchSize int

	// MaxRetries is how many failed rounds a channel tolerates
	MaxRetries int

	// Retention is the age past which messages can no longer be bulk deleted
	Retention time.Duration

	// Concurrency is how many channels of a deployment are swept at once
	Concurrency int
}

type SweepOutput struct {
	RunID       string
	Deployments []*SweepDeploymentOutput
}

type SweepDeploymentInput struct {
	Deployment *config.Deployment

	// RunID correlates log lines, a new one is made when empty
	RunID string
}

type SweepDeploymentOutput struct {
	GuildID  string
	Channels []*ChannelResult

	// ClearedRaids is how many standard raids were forgotten
	ClearedRaids int
}

// Deleted sums the deleted messages over all channels
func (o *SweepDeploymentOutput) Deleted() int {
	total := 0
	for _, c := range o.Channels {
		total += c.Deleted
	}
	return total
}

// ChannelResult reports the sweep of one channel
type ChannelResult struct {
	ChannelID string
	Name      string
	Deleted   int
	Retries   int

	// Err is the failure that ended the sweep early, if any
	Err error
}
