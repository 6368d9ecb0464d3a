package raid

import "github.com/KirkDiggler/raidbot/internal/models"

// MutateFunc computes the next value of a raid from its current value
type MutateFunc func(current models.Raid) (models.Raid, error)

type GetRaidInput struct {
	Partition models.Partition
	Handle    models.Handle
}

type SaveRaidInput struct {
	Partition models.Partition
	Raid      *models.Raid
}

type UpdateRaidInput struct {
	Partition models.Partition
	Handle    models.Handle
	Mutate    MutateFunc
}

type ReplaceRaidInput struct {
	Partition models.Partition
	Raid      *models.Raid
}

type ReplaceRaidOutput struct {
	// Displaced holds the raids that shared the location and were dropped
	Displaced []*models.Raid
}

type DeleteRaidInput struct {
	Partition models.Partition
	Handle    models.Handle
}

type FindByLocationInput struct {
	Partition models.Partition
	Location  string
}

type ClearPartitionInput struct {
	Partition models.Partition
}

type ClearPartitionOutput struct {
	Removed int
}

type CountRaidsInput struct {
	Partition models.Partition
}
