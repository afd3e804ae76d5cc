package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

// ProgressUpdates carries the optional fields of a progress upsert. A nil
// field keeps the stored value.
type ProgressUpdates struct {
	Completed *bool
	Notes     *string
}

type ProgressStore interface {
	// UpsertProgress finds the record identified by the
	// (userID, componentID, stage) natural key and merges the given updates
	// into it, creating it first if absent. The returned record is the
	// canonical state after the write.
	UpsertProgress(ctx context.Context, userID model.UserID, componentID model.ComponentID, stage model.Stage, updates ProgressUpdates) (model.PersistedProgressRecord, error)

	// GetUserProgress returns every progress record of a user
	GetUserProgress(ctx context.Context, userID model.UserID) ([]model.PersistedProgressRecord, error)
}
