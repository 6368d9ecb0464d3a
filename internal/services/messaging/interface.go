package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/raidbot/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetReplyMessage returns the reply for a finished slash command
	GetReplyMessage(ctx context.Context, input *GetReplyMessageInput) (*GetReplyMessageOutput, error)

	// GetInstructionMessage returns the instructions sent after a malformed command
	GetInstructionMessage(ctx context.Context, input *GetInstructionMessageInput) (*GetInstructionMessageOutput, error)

	// GetHelpMessage returns the help text
	GetHelpMessage(ctx context.Context, input *GetHelpMessageInput) (*GetHelpMessageOutput, error)

	// GetRaidLabels returns the labels used when rendering a raid
	GetRaidLabels(ctx context.Context, input *GetRaidLabelsInput) (*GetRaidLabelsOutput, error)
}
