package discord

import (
	"strings"

	raidService "github.com/KirkDiggler/raidbot/internal/services/raid"
	"github.com/bwmarrin/discordgo"
)

// BaseCommand describes a slash command with string options
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

func stringOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// raidCommands are the slash commands registered in every guild
var raidCommands = []*BaseCommand{
	{
		Name:        raidService.CommandRaid,
		Description: "Ilmoita uusi raidi",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption(raidService.OptionTime, "Raidin aika"),
			stringOption(raidService.OptionBoss, "Raidin bossi"),
			stringOption(raidService.OptionLocation, "Raidin paikka"),
		},
	},
	{
		Name:        raidService.CommandTime,
		Description: "Vaihda raidin aika",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption(raidService.OptionTime, "Uusi aika"),
			stringOption(raidService.OptionLocation, "Raidin paikka"),
		},
	},
	{
		Name:        raidService.CommandBoss,
		Description: "Vaihda raidin bossi",
		Options: []*discordgo.ApplicationCommandOption{
			stringOption(raidService.OptionBoss, "Uusi bossi"),
			stringOption(raidService.OptionLocation, "Raidin paikka"),
		},
	},
}

// applicationCommands returns the definitions of every slash command
func applicationCommands() []*discordgo.ApplicationCommand {
	commands := make([]*discordgo.ApplicationCommand, 0, len(raidCommands))
	for _, c := range raidCommands {
		commands = append(commands, c.GetCommand())
	}
	return commands
}

// commandOptions collects the string options of an invoked command
func commandOptions(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	values := make(map[string]string, len(options))
	for _, option := range options {
		if option.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		values[option.Name] = strings.TrimSpace(option.StringValue())
	}
	return values
}

// deferEphemeral acknowledges an interaction with a private "thinking" reply
func deferEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, options ...discordgo.RequestOption) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}, options...)
}

// editResponse replaces a deferred reply with its final content
func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, content string, options ...discordgo.RequestOption) error {
	_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}, options...)
	return err
}
