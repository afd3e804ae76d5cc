package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

// ClientUpdates carries the optional fields of a client update. A nil field
// keeps the stored value.
type ClientUpdates struct {
	Name         *string
	Organization *string
	Email        *string
	Phone        *string
	Notes        *string
	Status       *string
}

type ClientStore interface {
	// CreateClient persists a new client row
	CreateClient(ctx context.Context, client *model.Client) error

	// GetClientByID finds a client owned by the user, or returns ErrNotFound
	GetClientByID(ctx context.Context, userID model.UserID, id model.ClientID) (*model.Client, error)

	// ListClients returns every client owned by the user
	ListClients(ctx context.Context, userID model.UserID) ([]*model.Client, error)

	// UpdateClient merges the provided fields into the client and stamps
	// UpdatedAt, or returns ErrNotFound for a missing or non-owned row
	UpdateClient(ctx context.Context, userID model.UserID, id model.ClientID, updates ClientUpdates) (*model.Client, error)

	// DeleteClient deletes a client owned by the user. Deleting a missing or
	// non-owned row is a silent no-op.
	DeleteClient(ctx context.Context, userID model.UserID, id model.ClientID) error
}
