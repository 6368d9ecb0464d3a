package discord

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/KirkDiggler/raidbot/internal/models"
	"github.com/KirkDiggler/raidbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// raidColor is the embed accent color
const raidColor = 0x3498db

// embedFieldLimit is the longest value Discord accepts in an embed field
const embedFieldLimit = 1024

// RaidEmbed renders a raid as a message embed
func RaidEmbed(raid *models.Raid, labels messaging.RaidLabels, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color: raidColor,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   labels.Time,
				Value:  raid.Time,
				Inline: true,
			},
			{
				Name:   labels.Boss,
				Value:  raid.Boss,
				Inline: true,
			},
			{
				Name:  labels.Location,
				Value: raid.Location,
			},
			{
				Name:  labels.Raiders,
				Value: raiderList(raid.Raiders, labels),
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: labels.Footer,
		},
		Timestamp: now.Format(time.RFC3339),
	}
}

// truncated marks a raider list cut short to fit the field
const truncated = "…"

// raiderList renders the numbered signup list. Discord counts field length
// in characters, so the list is measured in runes.
func raiderList(raiders []models.Raider, labels messaging.RaidLabels) string {
	if len(raiders) == 0 {
		return labels.NoSignup
	}

	limit := embedFieldLimit - utf8.RuneCountInString(truncated)

	var b strings.Builder
	length := 0
	for i, raider := range raiders {
		line := fmt.Sprintf("%d. %s", i+1, raider.Name)
		if raider.Remote {
			line += " " + labels.Remote
		}
		if i > 0 {
			line = "\n" + line
		}

		n := utf8.RuneCountInString(line)
		last := i == len(raiders)-1
		if (last && length+n > embedFieldLimit) || (!last && length+n > limit) {
			b.WriteString(truncated)
			break
		}

		b.WriteString(line)
		length += n
	}

	return b.String()
}
