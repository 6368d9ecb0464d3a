package raid

//go:generate mockgen -package=mocks -destination=mocks/mock_interface.go github.com/KirkDiggler/raidbot/internal/services/raid Renderer,Messenger

import (
	"context"

	"github.com/KirkDiggler/raidbot/internal/models"
)

// Service defines the interface for routing chat events to raid changes
type Service interface {
	// Dispatch handles one inbound event
	Dispatch(ctx context.Context, event Event) (*DispatchOutput, error)
}

// Renderer puts raids on the rendering surface
type Renderer interface {
	// SendRaid posts a new raid message and returns its handle
	SendRaid(ctx context.Context, channelID string, raid *models.Raid, locale string) (models.Handle, error)

	// AddReactions adds the signup reactions to a raid message
	AddReactions(ctx context.Context, handle models.Handle, reactions []string) error

	// EditRaid re-renders a raid into its existing message
	EditRaid(ctx context.Context, raid *models.Raid, locale string) error

	// DeleteMessage removes a message
	DeleteMessage(ctx context.Context, handle models.Handle) error
}

// Messenger reaches individual users
type Messenger interface {
	// DirectMessage sends a private message to a user
	DirectMessage(ctx context.Context, userID, content string) error

	// ResolveDisplayName returns the name a user is shown with in a guild
	ResolveDisplayName(ctx context.Context, guildID, userID string) (string, error)
}
