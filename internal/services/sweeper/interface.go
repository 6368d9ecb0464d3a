package sweeper

//go:generate mockgen -package=mocks -destination=mocks/mock_interface.go github.com/KirkDiggler/raidbot/internal/services/sweeper Cleaner

import (
	"context"

	"github.com/KirkDiggler/raidbot/internal/models"
)

// Service clears raid channels on a schedule
type Service interface {
	// Start schedules the daily sweep
	Start(ctx context.Context) error

	// Stop unschedules the sweep and waits for a running sweep to finish
	Stop(ctx context.Context) error

	// Sweep runs one sweep over every deployment
	Sweep(ctx context.Context) (*SweepOutput, error)

	// SweepDeployment runs one sweep over a single deployment
	SweepDeployment(ctx context.Context, input *SweepDeploymentInput) (*SweepDeploymentOutput, error)
}

// Cleaner reads and deletes channel history
type Cleaner interface {
	// ResolveChannel checks the channel is a text channel and returns its name
	ResolveChannel(ctx context.Context, channelID string) (string, error)

	// FetchRecent returns up to limit of the newest messages in a channel
	FetchRecent(ctx context.Context, channelID string, limit int) ([]models.ChannelMessage, error)

	// BulkDelete deletes messages from a channel in one request
	BulkDelete(ctx context.Context, channelID string, messageIDs []string) error
}
