package messaging

// Reply identifies the final status of a slash command
type Reply string

const (
	// ReplyCreated means a raid was created
	ReplyCreated Reply = "created"

	// ReplyEdited means a raid was edited
	ReplyEdited Reply = "edited"

	// ReplyNotFound means no raid matched the location
	ReplyNotFound Reply = "not_found"

	// ReplyEditFailed means the raid message could not be edited
	ReplyEditFailed Reply = "edit_failed"

	// ReplyMalformed means the command options were missing or empty
	ReplyMalformed Reply = "malformed"

	// ReplyUnavailable means the command was used outside a raid channel
	ReplyUnavailable Reply = "unavailable"
)

// Command identifies a text command for instructions
type Command string

const (
	CommandRaid Command = "raid"
	CommandTime Command = "aika"
	CommandBoss Command = "boss"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// DefaultLocale is used when a locale is empty or unsupported
	DefaultLocale string

	// Prefix is shown in front of command names in help and instructions
	Prefix string
}

// RaidLabels holds the field names of a rendered raid
type RaidLabels struct {
	Time     string
	Boss     string
	Location string
	Raiders  string
	NoSignup string
	Remote   string
	Footer   string
}

type GetReplyMessageInput struct {
	Locale string
	Reply  Reply
}

type GetReplyMessageOutput struct {
	Message string
}

type GetInstructionMessageInput struct {
	Locale string

	// Command is the command that was malformed
	Command Command

	// Original is the message the user sent, echoed back to them
	Original string
}

type GetInstructionMessageOutput struct {
	Message string
}

type GetHelpMessageInput struct {
	Locale string
}

type GetHelpMessageOutput struct {
	Message string
}

type GetRaidLabelsInput struct {
	Locale string
}

type GetRaidLabelsOutput struct {
	Labels RaidLabels
}
