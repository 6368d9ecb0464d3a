package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/KirkDiggler/raidbot/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// GestureTable maps a slot count to the emoji that claims it. Values are
// emoji references in "name:id" form, or the bare unicode emoji.
type GestureTable map[int]string

// Count translates an emoji back into a slot count
func (t GestureTable) Count(emoji string) (int, bool) {
	if emoji == "" {
		return 0, false
	}

	for count, ref := range t {
		if ref == emoji || emojiID(ref) == emoji {
			return count, true
		}
	}

	return 0, false
}

// Reactions returns the emoji references ordered by slot count
func (t GestureTable) Reactions() []string {
	counts := lo.Keys(t)
	sort.Ints(counts)

	return lo.Map(counts, func(count int, _ int) string {
		return t[count]
	})
}

// emojiID returns the ID part of a "name:id" reference
func emojiID(ref string) string {
	if i := strings.LastIndex(ref, ":"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// Deployment holds the raid configuration of one guild
type Deployment struct {
	// GuildID is the Discord server the deployment serves
	GuildID string `yaml:"guildId" validate:"required"`

	// GuildName is used in log lines
	GuildName string `yaml:"guildName" validate:"required"`

	// Locale selects the language of replies and instructions
	Locale string `yaml:"locale" validate:"omitempty,oneof=fi en"`

	// RaidChannels are reset every night
	RaidChannels []string `yaml:"raidChannels" validate:"dive,required"`

	// PersistentRaidChannels keep their raids until replaced
	PersistentRaidChannels []string `yaml:"persistentRaidChannels" validate:"dive,required"`

	// CleanChannels are swept in addition to the raid channels
	CleanChannels []string `yaml:"cleanChannels" validate:"dive,required"`

	// SignupEmojis claim standard slots
	SignupEmojis GestureTable `yaml:"signupEmojis" validate:"required,min=1,dive,required"`

	// RemoteEmojis claim remote slots, optional
	RemoteEmojis GestureTable `yaml:"remoteEmojis" validate:"omitempty,dive,required"`
}

// ClassOf returns the channel class of a channel, false when the channel is
// not a raid channel of this deployment
func (d *Deployment) ClassOf(channelID string) (models.ChannelClass, bool) {
	switch {
	case lo.Contains(d.PersistentRaidChannels, channelID):
		return models.ChannelClassPersistent, true
	case lo.Contains(d.RaidChannels, channelID):
		return models.ChannelClassStandard, true
	default:
		return "", false
	}
}

// Partition returns the registry partition for a channel class
func (d *Deployment) Partition(class models.ChannelClass) models.Partition {
	return models.Partition{
		GuildID: d.GuildID,
		Class:   class,
	}
}

// Partitions returns both registry partitions of the deployment
func (d *Deployment) Partitions() []models.Partition {
	return []models.Partition{
		d.Partition(models.ChannelClassStandard),
		d.Partition(models.ChannelClassPersistent),
	}
}

// SweepChannels returns the raid channels followed by the extra clean
// channels, without duplicates
func (d *Deployment) SweepChannels() []string {
	return lo.Uniq(append(append([]string{}, d.RaidChannels...), d.CleanChannels...))
}

// Reactions returns every signup emoji followed by every remote emoji
func (d *Deployment) Reactions() []string {
	return append(d.SignupEmojis.Reactions(), d.RemoteEmojis.Reactions()...)
}

// Gesture resolves an emoji into a slot count and whether it is remote
func (d *Deployment) Gesture(emoji string) (count int, remote bool, ok bool) {
	if count, ok := d.SignupEmojis.Count(emoji); ok {
		return count, false, true
	}
	if count, ok := d.RemoteEmojis.Count(emoji); ok {
		return count, true, true
	}
	return 0, false, false
}

func (d *Deployment) check() error {
	overlap := lo.Intersect(d.RaidChannels, d.PersistentRaidChannels)
	if len(overlap) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateChannel, strings.Join(overlap, ", "))
	}

	seen := make(map[string]bool)
	for _, table := range []GestureTable{d.SignupEmojis, d.RemoteEmojis} {
		for count, ref := range table {
			if count < 1 {
				return fmt.Errorf("%w: %d", ErrInvalidGesture, count)
			}
			id := emojiID(ref)
			if seen[id] {
				return fmt.Errorf("%w: %s", ErrDuplicateGesture, ref)
			}
			seen[id] = true
		}
	}

	return nil
}

type deploymentsFile struct {
	Deployments []*Deployment `yaml:"deployments" validate:"required,min=1,dive,required"`
}

// LoadDeployments reads and validates the deployments file
func LoadDeployments(path string) ([]*Deployment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deployments: %w", err)
	}

	return ParseDeployments(data)
}

// ParseDeployments decodes and validates deployments from YAML
func ParseDeployments(data []byte) ([]*Deployment, error) {
	var file deploymentsFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode deployments: %w", err)
	}

	if len(file.Deployments) == 0 {
		return nil, ErrNoDeployments
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(&file); err != nil {
		return nil, fmt.Errorf("validate deployments: %w", err)
	}

	guilds := make(map[string]bool)
	for _, d := range file.Deployments {
		if guilds[d.GuildID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateGuild, d.GuildID)
		}
		guilds[d.GuildID] = true

		if err := d.check(); err != nil {
			return nil, fmt.Errorf("deployment %s: %w", d.GuildName, err)
		}

		if d.Locale == "" {
			d.Locale = "fi"
		}
	}

	return file.Deployments, nil
}
