package raid

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/raidbot/internal/repositories/raid Repository

import (
	"context"

	"github.com/KirkDiggler/raidbot/internal/models"
)

// Repository defines the interface for the active raid registry
type Repository interface {
	// GetRaid retrieves a raid by its message handle
	GetRaid(ctx context.Context, input *GetRaidInput) (*models.Raid, error)

	// SaveRaid stores a raid under its handle, replacing any previous value
	SaveRaid(ctx context.Context, input *SaveRaidInput) error

	// UpdateRaid applies a mutation to a raid while holding its mutation slot
	UpdateRaid(ctx context.Context, input *UpdateRaidInput) (*models.Raid, error)

	// ReplaceRaid stores a raid and drops every other raid at the same location
	ReplaceRaid(ctx context.Context, input *ReplaceRaidInput) (*ReplaceRaidOutput, error)

	// DeleteRaid removes a raid
	DeleteRaid(ctx context.Context, input *DeleteRaidInput) error

	// FindByLocation returns the first raid registered at a location
	FindByLocation(ctx context.Context, input *FindByLocationInput) (*models.Raid, error)

	// ClearPartition removes every raid in a partition
	ClearPartition(ctx context.Context, input *ClearPartitionInput) (*ClearPartitionOutput, error)

	// CountRaids returns the number of raids in a partition
	CountRaids(ctx context.Context, input *CountRaidsInput) (int, error)
}
