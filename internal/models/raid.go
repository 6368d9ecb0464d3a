package models

// ChannelClass separates raid channels that are reset every night from
// channels whose raids stay until they are replaced
type ChannelClass string

const (
	// ChannelClassStandard raids are dropped by the nightly sweep
	ChannelClassStandard ChannelClass = "standard"

	// ChannelClassPersistent raids are never dropped automatically
	ChannelClassPersistent ChannelClass = "persistent"
)

// Handle points at the Discord message a raid is rendered into
type Handle struct {
	// ChannelID is the channel the message lives in
	ChannelID string

	// MessageID is the ID of the rendered raid message
	MessageID string
}

// IsZero reports whether the handle has not been assigned yet
func (h Handle) IsZero() bool {
	return h.MessageID == ""
}

// Partition identifies one slice of the raid registry
type Partition struct {
	// GuildID is the Discord server the partition belongs to
	GuildID string

	// Class is the channel class the partition holds raids for
	Class ChannelClass
}

// Raider is one claimed slot in a raid. A user claiming several slots
// appears several times.
type Raider struct {
	// Name is the display name captured when the slot was claimed
	Name string

	// UserID is the Discord user ID of the raider
	UserID string

	// Remote indicates the slot was claimed with a remote reaction
	Remote bool
}

// Raid represents an announced raid and its roster
type Raid struct {
	// Time is the free-form start time label
	Time string

	// Location is the free-form location label, also used to look raids up
	Location string

	// Boss is the free-form boss label
	Boss string

	// Raiders holds the claimed slots in signup order
	Raiders []Raider

	// Handle is the rendered message, zero until the first render succeeds
	Handle Handle
}

// Clone returns a copy of the raid that shares no memory with the original
func (r Raid) Clone() Raid {
	clone := r
	if r.Raiders != nil {
		clone.Raiders = make([]Raider, len(r.Raiders))
		copy(clone.Raiders, r.Raiders)
	}
	return clone
}
