package models

import (
	"time"
)

// ChannelMessage is the part of a channel message the sweeper needs
type ChannelMessage struct {
	// ID is the Discord message ID
	ID string

	// Timestamp is when the message was posted
	Timestamp time.Time

	// Pinned indicates the message is pinned to the channel
	Pinned bool
}
