package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/raidbot/internal/common/clock"
	"github.com/KirkDiggler/raidbot/internal/models"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// unknownName is shown for raiders whose name cannot be found
const unknownName = "Unknown"

// SurfaceConfig holds configuration for the Discord surface
type SurfaceConfig struct {
	Session   *discordgo.Session
	Messaging messaging.Service
	Clock     clock.Clock
	Logger    *slog.Logger
}

// Surface renders raids into Discord messages and reads channel history.
// It is the Renderer and Messenger of the raid service and the Cleaner of
// the sweeper.
type Surface struct {
	session   *discordgo.Session
	messaging messaging.Service
	clock     clock.Clock
	log       *slog.Logger
}

// NewSurface creates a new Discord surface
func NewSurface(cfg *SurfaceConfig) (*Surface, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Surface{
		session:   cfg.Session,
		messaging: cfg.Messaging,
		clock:     c,
		log:       logger.With("component", "surface"),
	}, nil
}

func (s *Surface) embed(ctx context.Context, raid *models.Raid, locale string) (*discordgo.MessageEmbed, error) {
	out, err := s.messaging.GetRaidLabels(ctx, &messaging.GetRaidLabelsInput{Locale: locale})
	if err != nil {
		return nil, err
	}

	return RaidEmbed(raid, out.Labels, s.clock.Now()), nil
}

// SendRaid posts a new raid message
func (s *Surface) SendRaid(ctx context.Context, channelID string, raid *models.Raid, locale string) (models.Handle, error) {
	embed, err := s.embed(ctx, raid, locale)
	if err != nil {
		return models.Handle{}, err
	}

	message, err := s.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return models.Handle{}, fmt.Errorf("failed to send raid message: %w", err)
	}

	return models.Handle{
		ChannelID: message.ChannelID,
		MessageID: message.ID,
	}, nil
}

// AddReactions adds reactions one by one in order, stopping at the first
// failure
func (s *Surface) AddReactions(ctx context.Context, handle models.Handle, reactions []string) error {
	for _, reaction := range reactions {
		if err := s.session.MessageReactionAdd(handle.ChannelID, handle.MessageID, reaction, discordgo.WithContext(ctx)); err != nil {
			return fmt.Errorf("failed to add reaction %s: %w", reaction, err)
		}
	}
	return nil
}

// EditRaid re-renders a raid into its message
func (s *Surface) EditRaid(ctx context.Context, raid *models.Raid, locale string) error {
	embed, err := s.embed(ctx, raid, locale)
	if err != nil {
		return err
	}

	_, err = s.session.ChannelMessageEditEmbed(raid.Handle.ChannelID, raid.Handle.MessageID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to edit raid message: %w", err)
	}

	return nil
}

// DeleteMessage removes a message
func (s *Surface) DeleteMessage(ctx context.Context, handle models.Handle) error {
	if err := s.session.ChannelMessageDelete(handle.ChannelID, handle.MessageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to delete message %s: %w", handle.MessageID, err)
	}
	return nil
}

// DirectMessage sends a private message to a user
func (s *Surface) DirectMessage(ctx context.Context, userID, content string) error {
	channel, err := s.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open direct message channel: %w", err)
	}

	if _, err := s.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to send direct message: %w", err)
	}

	return nil
}

// ResolveDisplayName returns the member's guild name, preferring the state
// cache over a request
func (s *Surface) ResolveDisplayName(ctx context.Context, guildID, userID string) (string, error) {
	if s.session.State != nil {
		if member, err := s.session.State.Member(guildID, userID); err == nil {
			return displayName(member, nil), nil
		}
	}

	member, err := s.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return unknownName, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}

	return displayName(member, nil), nil
}

// ResolveChannel checks a channel can be swept and returns its name
func (s *Surface) ResolveChannel(ctx context.Context, channelID string) (string, error) {
	channel, err := s.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel: %w", err)
	}

	if !isTextChannel(channel) {
		return "", fmt.Errorf("%w: %s", ErrNotTextChannel, channel.Name)
	}

	return channel.Name, nil
}

// FetchRecent returns the newest messages of a channel
func (s *Surface) FetchRecent(ctx context.Context, channelID string, limit int) ([]models.ChannelMessage, error) {
	messages, err := s.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	return channelMessages(messages), nil
}

// BulkDelete removes messages in one request. Discord rejects bulk deletes
// of a single message, so those are deleted on their own.
func (s *Surface) BulkDelete(ctx context.Context, channelID string, messageIDs []string) error {
	switch len(messageIDs) {
	case 0:
		return nil
	case 1:
		return s.DeleteMessage(ctx, models.Handle{ChannelID: channelID, MessageID: messageIDs[0]})
	}

	if err := s.session.ChannelMessagesBulkDelete(channelID, messageIDs, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to bulk delete %d messages: %w", len(messageIDs), err)
	}

	return nil
}

// displayName picks nick, then global name, then username
func displayName(member *discordgo.Member, user *discordgo.User) string {
	if member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if user == nil {
			user = member.User
		}
	}

	if user == nil {
		return unknownName
	}

	return lo.CoalesceOrEmpty(user.GlobalName, user.Username, unknownName)
}

func isTextChannel(channel *discordgo.Channel) bool {
	return channel.Type == discordgo.ChannelTypeGuildText || channel.Type == discordgo.ChannelTypeGuildNews
}

func channelMessages(messages []*discordgo.Message) []models.ChannelMessage {
	return lo.Map(messages, func(m *discordgo.Message, _ int) models.ChannelMessage {
		return models.ChannelMessage{
			ID:        m.ID,
			Timestamp: m.Timestamp,
			Pinned:    m.Pinned,
		}
	})
}
