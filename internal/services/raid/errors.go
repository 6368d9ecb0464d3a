package raid

import "github.com/KirkDiggler/raidbot/internal/roster"

// RaidError is a custom error type for raid routing errors
type RaidError string

// Error implements the error interface
func (e RaidError) Error() string {
	return string(e)
}

const (
	ErrLookupMiss       RaidError = "no raid at that location"
	ErrRenderFailure    RaidError = "rendering surface rejected the change"
	ErrTransportFailure RaidError = "transport failure"
	ErrMalformedEvent   RaidError = "malformed event"
	ErrNilConfig        RaidError = "config cannot be nil"
	ErrNilRegistry      RaidError = "registry cannot be nil"
	ErrNilRenderer      RaidError = "renderer cannot be nil"
	ErrNilMessenger     RaidError = "messenger cannot be nil"
	ErrNilMessaging     RaidError = "messaging service cannot be nil"
	ErrNoDeployments    RaidError = "at least one deployment is required"
)

// ErrMalformedIntent is returned when a command is missing a required field
var ErrMalformedIntent = roster.ErrMalformedIntent
