package gorm

import (
	"context"
	"time"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"gorm.io/gorm"
)

// UpsertProgress implements port.ProgressStore.
//
// The merge runs as an explicit find-or-create inside a transaction so the
// completion rules stay in one place: a false to true transition stamps
// CompletedAt, an effective false always clears it.
func (s *Store) UpsertProgress(ctx context.Context, userID model.UserID, componentID model.ComponentID, stage model.Stage, updates port.ProgressUpdates) (model.PersistedProgressRecord, error) {
	var record ProgressRecord

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		now := time.Now().UTC()

		err := tx.Where("user_id = ? AND component_id = ? AND stage = ?", string(userID), string(componentID), string(stage)).
			First(&record).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(err)
			}

			record = ProgressRecord{
				ID:          string(model.NewProgressRecordID()),
				UserID:      string(userID),
				ComponentID: string(componentID),
				Stage:       string(stage),
			}

			if updates.Completed != nil {
				record.Completed = *updates.Completed
			}

			if updates.Notes != nil {
				record.Notes = *updates.Notes
			}

			if record.Completed {
				record.CompletedAt = &now
			}

			if err := tx.Create(&record).Error; err != nil {
				return errors.WithStack(err)
			}

			return nil
		}

		completed := record.Completed
		if updates.Completed != nil {
			completed = *updates.Completed
		}

		if completed && !record.Completed {
			record.CompletedAt = &now
		}

		if !completed {
			record.CompletedAt = nil
		}

		record.Completed = completed

		if updates.Notes != nil {
			record.Notes = *updates.Notes
		}

		if err := tx.Save(&record).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedProgressRecord{&record}, nil
}

// GetUserProgress implements port.ProgressStore.
func (s *Store) GetUserProgress(ctx context.Context, userID model.UserID) ([]model.PersistedProgressRecord, error) {
	var records []*ProgressRecord

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("user_id = ?", string(userID)).Order("component_id ASC, stage ASC").Find(&records).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.PersistedProgressRecord, 0, len(records))
	for _, r := range records {
		wrapped = append(wrapped, &wrappedProgressRecord{r})
	}

	return wrapped, nil
}

var _ port.ProgressStore = &Store{}
