package discord

// DiscordError is a custom error type for Discord handler errors
type DiscordError string

// Error implements the error interface
func (e DiscordError) Error() string {
	return string(e)
}

const (
	ErrNilConfig      DiscordError = "config cannot be nil"
	ErrNilSession     DiscordError = "session cannot be nil"
	ErrNilMessaging   DiscordError = "messaging service cannot be nil"
	ErrNilRaidService DiscordError = "raid service cannot be nil"
	ErrEmptyToken     DiscordError = "token cannot be empty"
	ErrNotTextChannel DiscordError = "not a text channel"
)
