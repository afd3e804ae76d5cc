package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

type MessageStore interface {
	// CreateMessage persists a new message row
	CreateMessage(ctx context.Context, message *model.Message) error

	// ListUserMessages returns every message sent or received by the user,
	// most recent first
	ListUserMessages(ctx context.Context, userID model.UserID) ([]*model.Message, error)

	// MarkMessageRead stamps ReadAt on a message received by the user.
	// Marking a missing or non-owned message is a silent no-op.
	MarkMessageRead(ctx context.Context, userID model.UserID, id model.MessageID) error
}
