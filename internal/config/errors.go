package config

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrNoDeployments    ConfigError = "no deployments configured"
	ErrDuplicateGuild   ConfigError = "guild configured more than once"
	ErrDuplicateChannel ConfigError = "channel is both a raid channel and a persistent raid channel"
	ErrInvalidGesture   ConfigError = "gesture ordinals must be at least 1"
	ErrDuplicateGesture ConfigError = "emoji is used for more than one gesture"
	ErrInvalidLogLevel  ConfigError = "invalid log level"
	ErrInvalidTimezone  ConfigError = "invalid sweep time zone"
)
