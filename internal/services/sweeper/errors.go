package sweeper

// SweeperError is a custom error type for sweeper errors
type SweeperError string

// Error implements the error interface
func (e SweeperError) Error() string {
	return string(e)
}

const (
	ErrNilConfig          SweeperError = "config cannot be nil"
	ErrNilRegistry        SweeperError = "registry cannot be nil"
	ErrNilCleaner         SweeperError = "cleaner cannot be nil"
	ErrNilInput           SweeperError = "input cannot be nil"
	ErrChannelUnavailable SweeperError = "channel cannot be swept"
	ErrRetriesExhausted   SweeperError = "gave up after repeated failures"
	ErrAlreadyStarted     SweeperError = "sweeper already started"
	ErrNotStarted         SweeperError = "sweeper not started"
)
