package raid

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/raidbot/internal/models"
	"github.com/KirkDiggler/raidbot/internal/roster"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
)

// parseCommand splits a message into a command name and its payload tokens.
// ok is false when the message does not start with a known prefix.
func parseCommand(prefixes []string, content string) (name string, payload []string, ok bool) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return "", nil, false
	}

	head := fields[0]
	for _, prefix := range prefixes {
		if prefix == "" || !strings.HasPrefix(head, prefix) {
			continue
		}

		switch name := strings.TrimPrefix(head, prefix); name {
		case CommandRaid, CommandTime, CommandBoss, CommandHelp:
			return name, fields[1:], true
		}
	}

	return "", nil, false
}

// joinLocation rebuilds a location from its tokens
func joinLocation(tokens []string) string {
	return strings.TrimSpace(strings.Join(tokens, " "))
}

// handleTextCommand runs a prefixed command posted in a raid channel
func (s *service) handleTextCommand(ctx context.Context, e *TextCommand) (*DispatchOutput, error) {
	if e.AuthorIsBot {
		return &DispatchOutput{}, nil
	}

	t, ok := s.resolve(e.GuildID, e.ChannelID)
	if !ok {
		return &DispatchOutput{}, nil
	}

	name, payload, ok := parseCommand(s.prefixes, e.Content)
	if !ok {
		return &DispatchOutput{}, nil
	}

	// the raid message replaces the command, so the command always goes
	command := models.Handle{ChannelID: e.ChannelID, MessageID: e.MessageID}
	if err := s.renderer.DeleteMessage(ctx, command); err != nil {
		s.log.Warn("failed to remove command message",
			"guild", t.deployment.GuildName,
			"message", e.MessageID,
			"error", err)
	}

	output := &DispatchOutput{Handled: true}

	switch name {
	case CommandHelp:
		return output, s.sendHelp(ctx, t, e.AuthorID)

	case CommandRaid:
		if len(payload) < 3 {
			return output, s.sendInstructions(ctx, t, e, messaging.CommandRaid)
		}

		raid, err := roster.Create(payload[0], payload[1], joinLocation(payload[2:]))
		if err != nil {
			return output, s.sendInstructions(ctx, t, e, messaging.CommandRaid)
		}

		created, err := s.createRaid(ctx, t, e.ChannelID, raid)
		if err != nil {
			return output, err
		}
		output.Raid = created

		return output, nil

	case CommandTime, CommandBoss:
		instruction := messaging.CommandTime
		if name == CommandBoss {
			instruction = messaging.CommandBoss
		}

		if len(payload) < 2 {
			return output, s.sendInstructions(ctx, t, e, instruction)
		}

		value := payload[0]
		location := joinLocation(payload[1:])
		mutate := retime(value)
		if name == CommandBoss {
			mutate = rebrand(value)
		}

		updated, _, err := s.editRaid(ctx, t, location, mutate)
		if err != nil {
			if errors.Is(err, ErrLookupMiss) {
				s.log.Info("no raid to edit",
					"guild", t.deployment.GuildName,
					"command", name,
					"location", location)
				return output, nil
			}
			return output, err
		}
		output.Raid = updated

		return output, nil
	}

	return output, nil
}

// sendInstructions tells the author how a malformed command should look
func (s *service) sendInstructions(ctx context.Context, t target, e *TextCommand, command messaging.Command) error {
	out, err := s.messaging.GetInstructionMessage(ctx, &messaging.GetInstructionMessageInput{
		Locale:   t.deployment.Locale,
		Command:  command,
		Original: e.Content,
	})
	if err != nil {
		return err
	}

	if err := s.messenger.DirectMessage(ctx, e.AuthorID, out.Message); err != nil {
		return fmt.Errorf("%w: instructions: %w", ErrTransportFailure, err)
	}

	return nil
}

func (s *service) sendHelp(ctx context.Context, t target, userID string) error {
	out, err := s.messaging.GetHelpMessage(ctx, &messaging.GetHelpMessageInput{
		Locale: t.deployment.Locale,
	})
	if err != nil {
		return err
	}

	if err := s.messenger.DirectMessage(ctx, userID, out.Message); err != nil {
		return fmt.Errorf("%w: help: %w", ErrTransportFailure, err)
	}

	return nil
}
