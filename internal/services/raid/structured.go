package raid

import (
	"context"
	"errors"
	"strings"

	"github.com/KirkDiggler/raidbot/internal/config"
	"github.com/KirkDiggler/raidbot/internal/roster"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
)

// handleStructuredCommand runs a slash command. Failures that the user can
// act on are reported through the reply instead of an error.
func (s *service) handleStructuredCommand(ctx context.Context, e *StructuredCommand) (*DispatchOutput, error) {
	deployment, known := s.deployments[e.GuildID]

	t, ok := s.resolve(e.GuildID, e.ChannelID)
	if !ok {
		return s.reply(ctx, deployment, &DispatchOutput{Handled: known}, messaging.ReplyUnavailable)
	}

	option := func(name string) string {
		return strings.TrimSpace(e.Options[name])
	}

	output := &DispatchOutput{Handled: true}

	switch e.Name {
	case CommandRaid:
		raid, err := roster.Create(option(OptionTime), option(OptionBoss), option(OptionLocation))
		if err != nil {
			return s.reply(ctx, t.deployment, output, messaging.ReplyMalformed)
		}

		created, err := s.createRaid(ctx, t, e.ChannelID, raid)
		if err != nil {
			s.log.Error("failed to create raid", "guild", t.deployment.GuildName, "error", err)
			return s.reply(ctx, t.deployment, output, messaging.ReplyMalformed)
		}
		output.Raid = created

		return s.reply(ctx, t.deployment, output, messaging.ReplyCreated)

	case CommandTime, CommandBoss:
		field := OptionTime
		if e.Name == CommandBoss {
			field = OptionBoss
		}

		value, location := option(field), option(OptionLocation)
		if value == "" || location == "" {
			return s.reply(ctx, t.deployment, output, messaging.ReplyMalformed)
		}

		mutate := retime(value)
		if e.Name == CommandBoss {
			mutate = rebrand(value)
		}

		updated, status, err := s.editRaid(ctx, t, location, mutate)
		if err != nil && !errors.Is(err, ErrLookupMiss) {
			s.log.Error("failed to edit raid",
				"guild", t.deployment.GuildName,
				"location", location,
				"error", err)
		}
		output.Raid = updated

		return s.reply(ctx, t.deployment, output, status)
	}

	return s.reply(ctx, t.deployment, output, messaging.ReplyMalformed)
}

// reply fills in the status and its localized message
func (s *service) reply(ctx context.Context, deployment *config.Deployment, output *DispatchOutput, status messaging.Reply) (*DispatchOutput, error) {
	locale := ""
	if deployment != nil {
		locale = deployment.Locale
	}

	out, err := s.messaging.GetReplyMessage(ctx, &messaging.GetReplyMessageInput{
		Locale: locale,
		Reply:  status,
	})
	if err != nil {
		return nil, err
	}

	output.Reply = status
	output.ReplyMessage = out.Message

	return output, nil
}
