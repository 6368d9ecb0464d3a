package raid

import (
	"log/slog"

	"github.com/KirkDiggler/raidbot/internal/config"
	"github.com/KirkDiggler/raidbot/internal/models"
	raidRepo "github.com/KirkDiggler/raidbot/internal/repositories/raid"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
)

// Slash command and option names as registered with Discord
const (
	CommandRaid = "raid"
	CommandTime = "aika"
	CommandBoss = "boss"
	CommandHelp = "help"

	OptionTime     = "aika"
	OptionBoss     = "pomo"
	OptionLocation = "paikka"
)

// Config holds configuration for the raid service
type Config struct {
	// Deployments lists the guilds the bot serves
	Deployments []*config.Deployment

	// Prefixes accepted in front of text commands, defaults to "!"
	Prefixes []string

	// Registry holds the active raids
	Registry raidRepo.Repository

	// Renderer posts and edits raid messages
	Renderer Renderer

	// Messenger sends private messages and resolves names
	Messenger Messenger

	// Messaging provides localized text
	Messaging messaging.Service

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// EventKind names the variants of Event
type EventKind string

const (
	EventKindTextCommand       EventKind = "text_command"
	EventKindReactionAdd       EventKind = "reaction_add"
	EventKindReactionRemove    EventKind = "reaction_remove"
	EventKindStructuredCommand EventKind = "structured_command"
)

// Event is an inbound chat event. The set of implementations is closed.
type Event interface {
	Kind() EventKind
}

// TextCommand is a message posted in a channel
type TextCommand struct {
	GuildID   string `validate:"required"`
	ChannelID string `validate:"required"`
	MessageID string `validate:"required"`
	AuthorID  string `validate:"required"`

	// AuthorIsBot marks messages posted by bots
	AuthorIsBot bool

	// Content is the raw message text
	Content string
}

// Kind implements Event
func (TextCommand) Kind() EventKind { return EventKindTextCommand }

// ReactionAdd is a reaction added to a message
type ReactionAdd struct {
	GuildID   string `validate:"required"`
	ChannelID string `validate:"required"`
	MessageID string `validate:"required"`
	UserID    string `validate:"required"`

	// Emoji is the emoji ID, or the unicode emoji itself
	Emoji string `validate:"required"`

	// UserIsBot marks reactions added by bots
	UserIsBot bool

	// DisplayName is the reacting member's name when the transport knows it
	DisplayName string
}

// Kind implements Event
func (ReactionAdd) Kind() EventKind { return EventKindReactionAdd }

// ReactionRemove is a reaction removed from a message
type ReactionRemove struct {
	GuildID   string `validate:"required"`
	ChannelID string `validate:"required"`
	MessageID string `validate:"required"`
	UserID    string `validate:"required"`

	// Emoji is the emoji ID, or the unicode emoji itself
	Emoji string `validate:"required"`

	// UserIsBot marks reactions removed by bots
	UserIsBot bool
}

// Kind implements Event
func (ReactionRemove) Kind() EventKind { return EventKindReactionRemove }

// StructuredCommand is an invoked slash command
type StructuredCommand struct {
	GuildID   string `validate:"required"`
	ChannelID string `validate:"required"`
	UserID    string `validate:"required"`
	Name      string `validate:"required,oneof=raid aika boss"`

	// Options holds the string options by name
	Options map[string]string
}

// Kind implements Event
func (StructuredCommand) Kind() EventKind { return EventKindStructuredCommand }

// DispatchOutput contains the result of handling an event
type DispatchOutput struct {
	// Handled is false when the event was not meant for the bot
	Handled bool

	// Raid is the raid after the change, if one changed
	Raid *models.Raid

	// Reply is the final status of a structured command
	Reply messaging.Reply

	// ReplyMessage is the localized reply for a structured command
	ReplyMessage string
}
