package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/raidbot/internal/models"
	raidService "github.com/KirkDiggler/raidbot/internal/services/raid"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextCommand(t *testing.T) {
	event := textCommand(&discordgo.MessageCreate{Message: &discordgo.Message{
		ID:        "m-1",
		GuildID:   "g-1",
		ChannelID: "c-1",
		Content:   "!raid 18:00 Mewtwo Park",
		Author:    &discordgo.User{ID: "u-1", Bot: true},
	}})

	assert.Equal(t, raidService.TextCommand{
		GuildID:     "g-1",
		ChannelID:   "c-1",
		MessageID:   "m-1",
		AuthorID:    "u-1",
		AuthorIsBot: true,
		Content:     "!raid 18:00 Mewtwo Park",
	}, event)
}

func TestReactionAdd(t *testing.T) {
	reaction := &discordgo.MessageReaction{
		UserID:    "u-1",
		MessageID: "m-1",
		ChannelID: "c-1",
		GuildID:   "g-1",
		Emoji:     discordgo.Emoji{ID: "503269083953758265", Name: "plus1"},
	}

	t.Run("member name", func(t *testing.T) {
		event := reactionAdd(&discordgo.MessageReactionAdd{
			MessageReaction: reaction,
			Member:          &discordgo.Member{Nick: "Ash", User: &discordgo.User{ID: "u-1", Username: "ash99"}},
		}, "self")

		assert.Equal(t, "503269083953758265", event.Emoji)
		assert.Equal(t, "Ash", event.DisplayName)
		assert.False(t, event.UserIsBot)
	})

	t.Run("bot member", func(t *testing.T) {
		event := reactionAdd(&discordgo.MessageReactionAdd{
			MessageReaction: reaction,
			Member:          &discordgo.Member{User: &discordgo.User{ID: "u-1", Username: "helper", Bot: true}},
		}, "self")

		assert.True(t, event.UserIsBot)
	})

	t.Run("own reaction without member", func(t *testing.T) {
		event := reactionAdd(&discordgo.MessageReactionAdd{MessageReaction: reaction}, "u-1")

		assert.True(t, event.UserIsBot)
		assert.Empty(t, event.DisplayName)
	})
}

func TestReactionRemoveUnicodeEmoji(t *testing.T) {
	event := reactionRemove(&discordgo.MessageReactionRemove{MessageReaction: &discordgo.MessageReaction{
		UserID:    "u-1",
		MessageID: "m-1",
		ChannelID: "c-1",
		GuildID:   "g-1",
		Emoji:     discordgo.Emoji{Name: "👍"},
	}}, "self")

	assert.Equal(t, "👍", event.Emoji)
	assert.False(t, event.UserIsBot)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Nick", displayName(&discordgo.Member{Nick: "Nick", User: &discordgo.User{GlobalName: "Global"}}, nil))
	assert.Equal(t, "Global", displayName(&discordgo.Member{User: &discordgo.User{GlobalName: "Global", Username: "user"}}, nil))
	assert.Equal(t, "user", displayName(&discordgo.Member{User: &discordgo.User{Username: "user"}}, nil))
	assert.Equal(t, "user", displayName(nil, &discordgo.User{Username: "user"}))
	assert.Equal(t, "Unknown", displayName(nil, nil))
	assert.Equal(t, "Unknown", displayName(&discordgo.Member{}, nil))
}

func TestCommandOptions(t *testing.T) {
	options := commandOptions([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: raidService.OptionTime, Type: discordgo.ApplicationCommandOptionString, Value: " 18:00 "},
		{Name: raidService.OptionLocation, Type: discordgo.ApplicationCommandOptionString, Value: "Central Park"},
		{Name: "count", Type: discordgo.ApplicationCommandOptionInteger, Value: float64(3)},
	})

	assert.Equal(t, map[string]string{
		raidService.OptionTime:     "18:00",
		raidService.OptionLocation: "Central Park",
	}, options)
}

func TestApplicationCommands(t *testing.T) {
	commands := applicationCommands()
	require.Len(t, commands, 3)

	names := make([]string, 0, len(commands))
	for _, cmd := range commands {
		names = append(names, cmd.Name)
		for _, option := range cmd.Options {
			assert.True(t, option.Required, "%s %s", cmd.Name, option.Name)
			assert.Equal(t, discordgo.ApplicationCommandOptionString, option.Type)
		}
	}
	assert.Equal(t, []string{raidService.CommandRaid, raidService.CommandTime, raidService.CommandBoss}, names)
}

func TestChannelMessages(t *testing.T) {
	posted := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	messages := channelMessages([]*discordgo.Message{
		{ID: "m-1", Timestamp: posted, Pinned: true},
		{ID: "m-2", Timestamp: posted},
	})

	assert.Equal(t, []models.ChannelMessage{
		{ID: "m-1", Timestamp: posted, Pinned: true},
		{ID: "m-2", Timestamp: posted},
	}, messages)
}

func TestIsTextChannel(t *testing.T) {
	assert.True(t, isTextChannel(&discordgo.Channel{Type: discordgo.ChannelTypeGuildText}))
	assert.False(t, isTextChannel(&discordgo.Channel{Type: discordgo.ChannelTypeGuildVoice}))
}

func TestNewValidatesConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrNilSession)

	_, err = NewSession("")
	assert.ErrorIs(t, err, ErrEmptyToken)

	session, err := NewSession("token")
	require.NoError(t, err)
	assert.Equal(t, Intents, session.Identify.Intents)

	_, err = New(&Config{Session: session})
	assert.ErrorIs(t, err, ErrNilRaidService)

	_, err = NewSurface(&SurfaceConfig{Session: session})
	assert.ErrorIs(t, err, ErrNilMessaging)
}
