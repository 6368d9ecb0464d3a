package roster

// RosterError is a custom error type for roster errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

const (
	// ErrMalformedIntent is returned when a required raid field is empty
	ErrMalformedIntent RosterError = "malformed intent: time, boss and location are required"
)
