package raid

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/raidbot/internal/config"
	"github.com/KirkDiggler/raidbot/internal/models"
	raidRepo "github.com/KirkDiggler/raidbot/internal/repositories/raid"
	"github.com/KirkDiggler/raidbot/internal/roster"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
	"github.com/go-playground/validator/v10"
)

// fallbackDisplayName is used when a member's name cannot be resolved
const fallbackDisplayName = "Unknown"

// service implements the Service interface
type service struct {
	deployments map[string]*config.Deployment
	prefixes    []string
	registry    raidRepo.Repository
	renderer    Renderer
	messenger   Messenger
	messaging   messaging.Service
	validate    *validator.Validate
	log         *slog.Logger
}

// New creates a new raid service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	if cfg.Messenger == nil {
		return nil, ErrNilMessenger
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	if len(cfg.Deployments) == 0 {
		return nil, ErrNoDeployments
	}

	deployments := make(map[string]*config.Deployment, len(cfg.Deployments))
	for _, d := range cfg.Deployments {
		deployments[d.GuildID] = d
	}

	prefixes := cfg.Prefixes
	if len(prefixes) == 0 {
		prefixes = []string{"!"}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		deployments: deployments,
		prefixes:    prefixes,
		registry:    cfg.Registry,
		renderer:    cfg.Renderer,
		messenger:   cfg.Messenger,
		messaging:   cfg.Messaging,
		validate:    validator.New(),
		log:         logger.With("component", "raid"),
	}, nil
}

// target is where an event lands: the deployment and the registry partition
type target struct {
	deployment *config.Deployment
	partition  models.Partition
}

// resolve finds the deployment and partition for a guild channel. ok is
// false when the channel is not a raid channel of a known guild.
func (s *service) resolve(guildID, channelID string) (target, bool) {
	deployment, ok := s.deployments[guildID]
	if !ok {
		return target{}, false
	}

	class, ok := deployment.ClassOf(channelID)
	if !ok {
		return target{}, false
	}

	return target{
		deployment: deployment,
		partition:  deployment.Partition(class),
	}, true
}

// Dispatch validates an event and routes it to its handler
func (s *service) Dispatch(ctx context.Context, event Event) (*DispatchOutput, error) {
	if event == nil {
		return nil, ErrMalformedEvent
	}

	if err := s.validate.Struct(event); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedEvent, event.Kind(), err)
	}

	switch e := event.(type) {
	case TextCommand:
		return s.handleTextCommand(ctx, &e)
	case *TextCommand:
		return s.handleTextCommand(ctx, e)
	case ReactionAdd:
		return s.handleReaction(ctx, e.reaction(true))
	case *ReactionAdd:
		return s.handleReaction(ctx, e.reaction(true))
	case ReactionRemove:
		return s.handleReaction(ctx, e.reaction())
	case *ReactionRemove:
		return s.handleReaction(ctx, e.reaction())
	case StructuredCommand:
		return s.handleStructuredCommand(ctx, &e)
	case *StructuredCommand:
		return s.handleStructuredCommand(ctx, e)
	default:
		return nil, fmt.Errorf("%w: unsupported event %T", ErrMalformedEvent, event)
	}
}

// createRaid renders a new raid and registers it, dropping any raid that
// was registered at the same location
func (s *service) createRaid(ctx context.Context, t target, channelID string, raid models.Raid) (*models.Raid, error) {
	handle, err := s.renderer.SendRaid(ctx, channelID, &raid, t.deployment.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: send raid: %w", ErrRenderFailure, err)
	}
	raid.Handle = handle

	out, err := s.registry.ReplaceRaid(ctx, &raidRepo.ReplaceRaidInput{
		Partition: t.partition,
		Raid:      &raid,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register raid: %w", err)
	}

	s.log.Info("created raid",
		"guild", t.deployment.GuildName,
		"channel", handle.ChannelID,
		"message", handle.MessageID,
		"time", raid.Time,
		"boss", raid.Boss,
		"location", raid.Location)

	// the new raid is already visible, removing old messages is best effort
	for _, old := range out.Displaced {
		if err := s.renderer.DeleteMessage(ctx, old.Handle); err != nil {
			s.log.Warn("failed to remove old raid message",
				"guild", t.deployment.GuildName,
				"message", old.Handle.MessageID,
				"error", err)
		}
	}

	if err := s.renderer.AddReactions(ctx, handle, t.deployment.Reactions()); err != nil {
		s.log.Warn("failed to add signup reactions",
			"guild", t.deployment.GuildName,
			"message", handle.MessageID,
			"error", err)
	}

	return &raid, nil
}

// editRaid finds a raid by location, applies mutate and re-renders it. A raid
// whose message cannot be edited is evicted.
func (s *service) editRaid(ctx context.Context, t target, location string, mutate raidRepo.MutateFunc) (*models.Raid, messaging.Reply, error) {
	found, err := s.registry.FindByLocation(ctx, &raidRepo.FindByLocationInput{
		Partition: t.partition,
		Location:  location,
	})
	if err != nil {
		if errors.Is(err, raidRepo.ErrRaidNotFound) {
			return nil, messaging.ReplyNotFound, fmt.Errorf("%w: %q", ErrLookupMiss, location)
		}
		return nil, messaging.ReplyMalformed, err
	}

	updated, err := s.registry.UpdateRaid(ctx, &raidRepo.UpdateRaidInput{
		Partition: t.partition,
		Handle:    found.Handle,
		Mutate:    mutate,
	})
	if err != nil {
		if errors.Is(err, raidRepo.ErrRaidNotFound) {
			return nil, messaging.ReplyNotFound, fmt.Errorf("%w: %q", ErrLookupMiss, location)
		}
		return nil, messaging.ReplyMalformed, err
	}

	if err := s.renderer.EditRaid(ctx, updated, t.deployment.Locale); err != nil {
		if delErr := s.registry.DeleteRaid(ctx, &raidRepo.DeleteRaidInput{
			Partition: t.partition,
			Handle:    updated.Handle,
		}); delErr != nil {
			s.log.Error("failed to evict raid", "message", updated.Handle.MessageID, "error", delErr)
		}
		return nil, messaging.ReplyEditFailed, fmt.Errorf("%w: edit raid: %w", ErrRenderFailure, err)
	}

	s.log.Info("edited raid",
		"guild", t.deployment.GuildName,
		"message", updated.Handle.MessageID,
		"time", updated.Time,
		"boss", updated.Boss,
		"location", updated.Location)

	return updated, messaging.ReplyEdited, nil
}

// retime returns a mutation that sets the raid time
func retime(time string) raidRepo.MutateFunc {
	return func(current models.Raid) (models.Raid, error) {
		return roster.Retime(current, time), nil
	}
}

// rebrand returns a mutation that sets the raid boss
func rebrand(boss string) raidRepo.MutateFunc {
	return func(current models.Raid) (models.Raid, error) {
		return roster.Rebrand(current, boss), nil
	}
}
