// Package roster computes new raid values from signup and edit intents.
// Nothing in here performs I/O or normalizes labels; callers trim input
// before building an intent.
package roster

import (
	"strings"

	"github.com/KirkDiggler/raidbot/internal/models"
)

// Create builds a new raid with an empty roster and no handle
func Create(time, boss, location string) (models.Raid, error) {
	if strings.TrimSpace(time) == "" || strings.TrimSpace(boss) == "" || strings.TrimSpace(location) == "" {
		return models.Raid{}, ErrMalformedIntent
	}

	return models.Raid{
		Time:     time,
		Location: location,
		Boss:     boss,
		Raiders:  []models.Raider{},
	}, nil
}

// Retime replaces the start time of a raid
func Retime(raid models.Raid, time string) models.Raid {
	next := raid.Clone()
	next.Time = time
	return next
}

// Rebrand replaces the boss of a raid
func Rebrand(raid models.Raid, boss string) models.Raid {
	next := raid.Clone()
	next.Boss = boss
	return next
}

// Claim appends count slots for the user after the existing raiders
func Claim(raid models.Raid, userID, name string, count int, remote bool) models.Raid {
	next := raid.Clone()
	if count <= 0 {
		return next
	}

	raiders := make([]models.Raider, 0, len(raid.Raiders)+count)
	raiders = append(raiders, raid.Raiders...)
	for i := 0; i < count; i++ {
		raiders = append(raiders, models.Raider{
			Name:   name,
			UserID: userID,
			Remote: remote,
		})
	}
	next.Raiders = raiders

	return next
}

// Release removes up to count slots of the user, earliest first. Only slots
// with the same remote flag are touched.
func Release(raid models.Raid, userID string, count int, remote bool) models.Raid {
	next := raid.Clone()
	if count <= 0 || len(raid.Raiders) == 0 {
		return next
	}

	raiders := make([]models.Raider, 0, len(raid.Raiders))
	removed := 0
	for _, raider := range raid.Raiders {
		if removed < count && raider.UserID == userID && raider.Remote == remote {
			removed++
			continue
		}
		raiders = append(raiders, raider)
	}
	next.Raiders = raiders

	return next
}

// Count returns how many slots the user holds with the given remote flag
func Count(raid models.Raid, userID string, remote bool) int {
	count := 0
	for _, raider := range raid.Raiders {
		if raider.UserID == userID && raider.Remote == remote {
			count++
		}
	}
	return count
}
