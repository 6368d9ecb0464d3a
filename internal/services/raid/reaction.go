package raid

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/raidbot/internal/models"
	raidRepo "github.com/KirkDiggler/raidbot/internal/repositories/raid"
	"github.com/KirkDiggler/raidbot/internal/roster"
)

// reaction is the common shape of reaction add and remove events
type reaction struct {
	added       bool
	guildID     string
	handle      models.Handle
	userID      string
	emoji       string
	userIsBot   bool
	displayName string
}

func (e *ReactionAdd) reaction(added bool) reaction {
	return reaction{
		added:       added,
		guildID:     e.GuildID,
		handle:      models.Handle{ChannelID: e.ChannelID, MessageID: e.MessageID},
		userID:      e.UserID,
		emoji:       e.Emoji,
		userIsBot:   e.UserIsBot,
		displayName: e.DisplayName,
	}
}

func (e *ReactionRemove) reaction() reaction {
	return reaction{
		guildID:   e.GuildID,
		handle:    models.Handle{ChannelID: e.ChannelID, MessageID: e.MessageID},
		userID:    e.UserID,
		emoji:     e.Emoji,
		userIsBot: e.UserIsBot,
	}
}

// handleReaction claims or releases slots for a signup reaction. Reactions
// that are not signup gestures, or that are on messages without a raid, are
// ignored.
func (s *service) handleReaction(ctx context.Context, r reaction) (*DispatchOutput, error) {
	if r.userIsBot {
		return &DispatchOutput{}, nil
	}

	t, ok := s.resolve(r.guildID, r.handle.ChannelID)
	if !ok {
		return &DispatchOutput{}, nil
	}

	count, remote, ok := t.deployment.Gesture(r.emoji)
	if !ok {
		return &DispatchOutput{}, nil
	}

	if _, err := s.registry.GetRaid(ctx, &raidRepo.GetRaidInput{
		Partition: t.partition,
		Handle:    r.handle,
	}); err != nil {
		if errors.Is(err, raidRepo.ErrRaidNotFound) {
			return &DispatchOutput{}, nil
		}
		return nil, err
	}

	var mutate raidRepo.MutateFunc
	if r.added {
		// resolve before taking the mutation slot so the slot is never held
		// across a network call
		name := s.displayName(ctx, r)
		mutate = func(current models.Raid) (models.Raid, error) {
			return roster.Claim(current, r.userID, name, count, remote), nil
		}
	} else {
		mutate = func(current models.Raid) (models.Raid, error) {
			return roster.Release(current, r.userID, count, remote), nil
		}
	}

	updated, err := s.registry.UpdateRaid(ctx, &raidRepo.UpdateRaidInput{
		Partition: t.partition,
		Handle:    r.handle,
		Mutate:    mutate,
	})
	if err != nil {
		if errors.Is(err, raidRepo.ErrRaidNotFound) {
			return &DispatchOutput{}, nil
		}
		return nil, err
	}

	output := &DispatchOutput{
		Handled: true,
		Raid:    updated,
	}

	// another reaction may have landed since the write, render the newest roster
	latest, err := s.registry.GetRaid(ctx, &raidRepo.GetRaidInput{
		Partition: t.partition,
		Handle:    r.handle,
	})
	if err != nil {
		if errors.Is(err, raidRepo.ErrRaidNotFound) {
			return output, nil
		}
		return output, err
	}

	if err := s.renderer.EditRaid(ctx, latest, t.deployment.Locale); err != nil {
		return output, fmt.Errorf("%w: edit raid after reaction: %w", ErrRenderFailure, err)
	}

	return output, nil
}

func (s *service) displayName(ctx context.Context, r reaction) string {
	if r.displayName != "" {
		return r.displayName
	}

	name, err := s.messenger.ResolveDisplayName(ctx, r.guildID, r.userID)
	if err != nil || name == "" {
		s.log.Warn("failed to resolve display name", "user", r.userID, "error", err)
		return fallbackDisplayName
	}

	return name
}
