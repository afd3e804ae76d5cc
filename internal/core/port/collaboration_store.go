package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

type CollaborationStore interface {
	// CreateCollaboration creates a pending collaboration linking the owner,
	// the invited collaborator and one of the owner's clients
	CreateCollaboration(ctx context.Context, ownerID, collaboratorID model.UserID, clientID model.ClientID) (model.PersistedCollaboration, error)

	// GetCollaborationByID finds a collaboration by its ID, or returns
	// ErrNotFound if not found
	GetCollaborationByID(ctx context.Context, id model.CollaborationID) (model.PersistedCollaboration, error)

	// ListUserCollaborations returns every collaboration the user takes part
	// in, as owner or as collaborator
	ListUserCollaborations(ctx context.Context, userID model.UserID) ([]model.PersistedCollaboration, error)

	// ListClientCollaborations returns every collaboration attached to a client
	ListClientCollaborations(ctx context.Context, clientID model.ClientID) ([]model.PersistedCollaboration, error)

	// UpdateCollaborationStatus sets the status of a collaboration. The
	// transition to "accepted" stamps AcceptedAt, any other status clears it.
	UpdateCollaborationStatus(ctx context.Context, id model.CollaborationID, status model.CollaborationStatus) (model.PersistedCollaboration, error)
}
