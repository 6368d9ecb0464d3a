package raid

import (
	"context"
	"fmt"
	"sync"

	"github.com/KirkDiggler/raidbot/internal/models"
)

// Config holds configuration for the in-memory raid registry
type Config struct {
	// Partitions lists every partition the registry serves
	Partitions []models.Partition
}

// partition holds the raids of one guild and channel class. order keeps
// insertion order so location lookups are deterministic.
type partition struct {
	raids map[models.Handle]models.Raid
	order []models.Handle
}

func (p *partition) put(raid models.Raid) {
	if _, ok := p.raids[raid.Handle]; !ok {
		p.order = append(p.order, raid.Handle)
	}
	p.raids[raid.Handle] = raid
}

func (p *partition) remove(handle models.Handle) bool {
	if _, ok := p.raids[handle]; !ok {
		return false
	}
	delete(p.raids, handle)
	for i, h := range p.order {
		if h == handle {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// memoryRepository implements the Repository interface in process memory.
// mu guards the partition maps, slots serializes read-compute-write cycles
// per handle.
type memoryRepository struct {
	mu         sync.RWMutex
	partitions map[models.Partition]*partition
	slots      *slots
}

// NewMemory creates a new in-memory raid registry
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Partitions) == 0 {
		return nil, ErrNoPartitions
	}

	partitions := make(map[models.Partition]*partition, len(cfg.Partitions))
	for _, p := range cfg.Partitions {
		partitions[p] = &partition{
			raids: make(map[models.Handle]models.Raid),
		}
	}

	return &memoryRepository{
		partitions: partitions,
		slots:      newSlots(),
	}, nil
}

// lookup must be called with mu held
func (r *memoryRepository) lookup(p models.Partition) (*partition, error) {
	part, ok := r.partitions[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownPartition, p.GuildID, p.Class)
	}
	return part, nil
}

// GetRaid retrieves a copy of the raid rendered at the handle
func (r *memoryRepository) GetRaid(ctx context.Context, input *GetRaidInput) (*models.Raid, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return nil, err
	}

	raid, ok := part.raids[input.Handle]
	if !ok {
		return nil, ErrRaidNotFound
	}

	clone := raid.Clone()
	return &clone, nil
}

// SaveRaid stores a copy of the raid under its handle. It waits for the
// handle's mutation slot, so it never lands in the middle of an UpdateRaid.
func (r *memoryRepository) SaveRaid(ctx context.Context, input *SaveRaidInput) error {
	if input == nil || input.Raid == nil {
		return ErrNilInput
	}

	if input.Raid.Handle.IsZero() {
		return ErrMissingHandle
	}

	release, err := r.slots.acquire(ctx, input.Raid.Handle)
	if err != nil {
		return err
	}
	defer release()

	r.mu.Lock()
	defer r.mu.Unlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return err
	}

	part.put(input.Raid.Clone())
	return nil
}

// UpdateRaid runs Mutate against the current raid and writes the result back.
// Only one mutation per handle runs at a time. If the raid was removed while
// the mutation ran, the result is discarded and ErrRaidNotFound returned.
func (r *memoryRepository) UpdateRaid(ctx context.Context, input *UpdateRaidInput) (*models.Raid, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Mutate == nil {
		return nil, ErrNilMutate
	}

	release, err := r.slots.acquire(ctx, input.Handle)
	if err != nil {
		return nil, err
	}
	defer release()

	current, err := r.GetRaid(ctx, &GetRaidInput{
		Partition: input.Partition,
		Handle:    input.Handle,
	})
	if err != nil {
		return nil, err
	}

	next, err := input.Mutate(*current)
	if err != nil {
		return nil, err
	}

	if next.Handle != input.Handle {
		return nil, ErrHandleChanged
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return nil, err
	}

	if _, ok := part.raids[input.Handle]; !ok {
		return nil, ErrRaidNotFound
	}

	part.put(next.Clone())

	return &next, nil
}

// ReplaceRaid stores the raid and removes every other raid at the same
// location in one step, so a location never ends up with two live raids.
func (r *memoryRepository) ReplaceRaid(ctx context.Context, input *ReplaceRaidInput) (*ReplaceRaidOutput, error) {
	if input == nil || input.Raid == nil {
		return nil, ErrNilInput
	}

	if input.Raid.Handle.IsZero() {
		return nil, ErrMissingHandle
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return nil, err
	}

	var displaced []*models.Raid
	for _, handle := range append([]models.Handle(nil), part.order...) {
		existing := part.raids[handle]
		if handle == input.Raid.Handle || existing.Location != input.Raid.Location {
			continue
		}
		part.remove(handle)
		clone := existing.Clone()
		displaced = append(displaced, &clone)
	}

	part.put(input.Raid.Clone())

	return &ReplaceRaidOutput{
		Displaced: displaced,
	}, nil
}

// DeleteRaid removes the raid at the handle, a missing raid is not an error
func (r *memoryRepository) DeleteRaid(ctx context.Context, input *DeleteRaidInput) error {
	if input == nil {
		return ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return err
	}

	part.remove(input.Handle)
	return nil
}

// FindByLocation returns the earliest registered raid whose location equals
// the query exactly. The query is not trimmed or case folded.
func (r *memoryRepository) FindByLocation(ctx context.Context, input *FindByLocationInput) (*models.Raid, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return nil, err
	}

	for _, handle := range part.order {
		raid := part.raids[handle]
		if raid.Location == input.Location {
			clone := raid.Clone()
			return &clone, nil
		}
	}

	return nil, ErrRaidNotFound
}

// ClearPartition drops every raid in the partition
func (r *memoryRepository) ClearPartition(ctx context.Context, input *ClearPartitionInput) (*ClearPartitionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return nil, err
	}

	removed := len(part.raids)
	part.raids = make(map[models.Handle]models.Raid)
	part.order = nil

	return &ClearPartitionOutput{
		Removed: removed,
	}, nil
}

// CountRaids returns the number of raids in the partition
func (r *memoryRepository) CountRaids(ctx context.Context, input *CountRaidsInput) (int, error) {
	if input == nil {
		return 0, ErrNilInput
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	part, err := r.lookup(input.Partition)
	if err != nil {
		return 0, err
	}

	return len(part.raids), nil
}
