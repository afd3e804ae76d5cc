package gorm

import (
	"context"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"gorm.io/gorm"
)

// UpsertArtifact implements port.ArtifactStore.
//
// Partial updates are non-destructive: a nil title or content keeps the
// stored value. Creation requires a title.
func (s *Store) UpsertArtifact(ctx context.Context, userID model.UserID, componentID model.ComponentID, artifactType string, updates port.ArtifactUpdates) (model.PersistedArtifactRecord, error) {
	var record ArtifactRecord

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		err := tx.Where("user_id = ? AND component_id = ? AND artifact_type = ?", string(userID), string(componentID), artifactType).
			First(&record).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(err)
			}

			if updates.Title == nil || *updates.Title == "" {
				return errors.WithStack(port.ErrMissingTitle)
			}

			record = ArtifactRecord{
				ID:           string(model.NewArtifactRecordID()),
				UserID:       string(userID),
				ComponentID:  string(componentID),
				ArtifactType: artifactType,
				Title:        *updates.Title,
			}

			if updates.Content != nil {
				record.Content = *updates.Content
			}

			if err := tx.Create(&record).Error; err != nil {
				return errors.WithStack(err)
			}

			return nil
		}

		if updates.Title != nil {
			record.Title = *updates.Title
		}

		if updates.Content != nil {
			record.Content = *updates.Content
		}

		if err := tx.Save(&record).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedArtifactRecord{&record}, nil
}

// GetUserArtifacts implements port.ArtifactStore.
func (s *Store) GetUserArtifacts(ctx context.Context, userID model.UserID) ([]model.PersistedArtifactRecord, error) {
	var records []*ArtifactRecord

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("user_id = ?", string(userID)).Order("component_id ASC, artifact_type ASC").Find(&records).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.PersistedArtifactRecord, 0, len(records))
	for _, r := range records {
		wrapped = append(wrapped, &wrappedArtifactRecord{r})
	}

	return wrapped, nil
}

// DeleteArtifact implements port.ArtifactStore.
func (s *Store) DeleteArtifact(ctx context.Context, userID model.UserID, id model.ArtifactRecordID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		// Scoped to the owner, a zero rows result is a silent no-op.
		if err := db.Delete(&ArtifactRecord{}, "id = ? AND user_id = ?", string(id), string(userID)).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.ArtifactStore = &Store{}
