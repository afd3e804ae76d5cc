package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

// ArtifactUpdates carries the optional fields of an artifact upsert. A nil
// field keeps the stored value.
type ArtifactUpdates struct {
	Title   *string
	Content *string
}

var ErrMissingTitle = NewValidationError("title", "title is required when creating an artifact")

type ArtifactStore interface {
	// UpsertArtifact finds the record identified by the
	// (userID, componentID, artifactType) natural key and merges the given
	// updates into it, creating it first if absent. Creation requires a
	// title, ErrMissingTitle is returned otherwise.
	UpsertArtifact(ctx context.Context, userID model.UserID, componentID model.ComponentID, artifactType string, updates ArtifactUpdates) (model.PersistedArtifactRecord, error)

	// GetUserArtifacts returns every artifact record of a user
	GetUserArtifacts(ctx context.Context, userID model.UserID) ([]model.PersistedArtifactRecord, error)

	// DeleteArtifact deletes an artifact owned by the user. Deleting a
	// missing or non-owned artifact is a silent no-op.
	DeleteArtifact(ctx context.Context, userID model.UserID, id model.ArtifactRecordID) error
}
