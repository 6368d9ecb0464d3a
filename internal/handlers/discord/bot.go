package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	raidService "github.com/KirkDiggler/raidbot/internal/services/raid"
	"github.com/bwmarrin/discordgo"
)

// eventTimeout bounds the handling of one gateway event
const eventTimeout = 30 * time.Second

// Intents are the gateway events the bot needs
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsMessageContent

// NewSession creates a Discord session for a bot token
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, ErrEmptyToken
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = Intents

	return session, nil
}

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	raidService raidService.Service
	config      *Config
	log         *slog.Logger

	// ctx is the lifetime of the gateway connection
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	commandIDs map[string][]string // guild ID to registered command IDs
}

// Config holds the configuration for the bot
type Config struct {
	Session *discordgo.Session

	// Application ID for the bot, defaults to the bot user
	ApplicationID string

	// GuildIDs are the guilds slash commands are registered in
	GuildIDs []string

	RaidService raidService.Service

	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Session == nil {
		return nil, ErrNilSession
	}

	if cfg.RaidService == nil {
		return nil, ErrNilRaidService
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		session:     cfg.Session,
		raidService: cfg.RaidService,
		config:      cfg,
		log:         logger.With("component", "bot"),
		commandIDs:  make(map[string][]string),
	}

	cfg.Session.AddHandler(bot.handleMessageCreate)
	cfg.Session.AddHandler(bot.handleReactionAdd)
	cfg.Session.AddHandler(bot.handleReactionRemove)
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start opens the gateway connection and registers the slash commands
func (b *Bot) Start(ctx context.Context) error {
	b.ctx, b.cancel = context.WithCancel(ctx)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	appID := b.applicationID()
	for _, guildID := range b.config.GuildIDs {
		created, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, applicationCommands(), discordgo.WithContext(ctx))
		if err != nil {
			return fmt.Errorf("failed to register commands in guild %s: %w", guildID, err)
		}

		b.mu.Lock()
		for _, cmd := range created {
			b.commandIDs[guildID] = append(b.commandIDs[guildID], cmd.ID)
		}
		b.mu.Unlock()

		b.log.Info("registered commands", "guild", guildID, "count", len(created))
	}

	b.log.Info("bot is running", "user", b.session.State.User.Username)
	return nil
}

// Stop removes the slash commands and closes the connection
func (b *Bot) Stop() error {
	if b.cancel != nil {
		b.cancel()
	}

	appID := b.applicationID()

	b.mu.Lock()
	registered := b.commandIDs
	b.commandIDs = make(map[string][]string)
	b.mu.Unlock()

	for guildID, ids := range registered {
		for _, id := range ids {
			if err := b.session.ApplicationCommandDelete(appID, guildID, id); err != nil {
				b.log.Warn("failed to delete command", "guild", guildID, "command", id, "error", err)
			}
		}
	}

	return b.session.Close()
}

func (b *Bot) applicationID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// selfID is the bot user's ID, empty before the connection is ready
func (b *Bot) selfID() string {
	if b.session.State == nil || b.session.State.User == nil {
		return ""
	}
	return b.session.State.User.ID
}

func (b *Bot) eventContext() (context.Context, context.CancelFunc) {
	parent := b.ctx
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, eventTimeout)
}

func (b *Bot) dispatch(event raidService.Event) *raidService.DispatchOutput {
	ctx, cancel := b.eventContext()
	defer cancel()

	output, err := b.raidService.Dispatch(ctx, event)
	if err != nil {
		b.log.Error("failed to handle event", "kind", event.Kind(), "error", err)
	}
	return output
}

func (b *Bot) handleMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.GuildID == "" || m.Author == nil {
		return
	}

	b.dispatch(textCommand(m))
}

func (b *Bot) handleReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" {
		return
	}

	b.dispatch(reactionAdd(r, b.selfID()))
}

func (b *Bot) handleReactionRemove(s *discordgo.Session, r *discordgo.MessageReactionRemove) {
	if r.GuildID == "" {
		return
	}

	b.dispatch(reactionRemove(r, b.selfID()))
}

// handleInteraction acknowledges a slash command at once and fills in the
// reply when the command is done
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand || i.GuildID == "" || i.Member == nil || i.Member.User == nil {
		return
	}

	ctx, cancel := b.eventContext()
	defer cancel()

	if err := deferEphemeral(s, i, discordgo.WithContext(ctx)); err != nil {
		b.log.Error("failed to acknowledge command", "error", err)
		return
	}

	data := i.ApplicationCommandData()
	output := b.dispatch(raidService.StructuredCommand{
		GuildID:   i.GuildID,
		ChannelID: i.ChannelID,
		UserID:    i.Member.User.ID,
		Name:      data.Name,
		Options:   commandOptions(data.Options),
	})
	if output == nil || output.ReplyMessage == "" {
		return
	}

	if err := editResponse(s, i, output.ReplyMessage, discordgo.WithContext(ctx)); err != nil {
		b.log.Error("failed to reply to command", "command", data.Name, "error", err)
	}
}

// textCommand translates a posted message
func textCommand(m *discordgo.MessageCreate) raidService.TextCommand {
	return raidService.TextCommand{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
		AuthorID:    m.Author.ID,
		AuthorIsBot: m.Author.Bot,
		Content:     m.Content,
	}
}

// emojiKey identifies an emoji by ID, or by name for unicode emoji
func emojiKey(emoji discordgo.Emoji) string {
	if emoji.ID != "" {
		return emoji.ID
	}
	return emoji.Name
}

// reactionAdd translates an added reaction. Reactions from the bot itself
// count as bot reactions even when the member is missing.
func reactionAdd(r *discordgo.MessageReactionAdd, selfID string) raidService.ReactionAdd {
	event := raidService.ReactionAdd{
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Emoji:     emojiKey(r.Emoji),
		UserIsBot: r.UserID == selfID,
	}

	if r.Member != nil {
		if r.Member.User != nil && r.Member.User.Bot {
			event.UserIsBot = true
		}
		event.DisplayName = displayName(r.Member, r.Member.User)
		if event.DisplayName == unknownName {
			event.DisplayName = ""
		}
	}

	return event
}

// reactionRemove translates a removed reaction. The gateway does not say
// whether the user is a bot, only the bot itself is recognized.
func reactionRemove(r *discordgo.MessageReactionRemove, selfID string) raidService.ReactionRemove {
	return raidService.ReactionRemove{
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Emoji:     emojiKey(r.Emoji),
		UserIsBot: r.UserID == selfID,
	}
}
