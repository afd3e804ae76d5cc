package gorm

import (
	"time"

	"github.com/praxishq/praxis/internal/core/model"
)

// ProgressRecord is the GORM model for progress ledger rows. The
// (user, component, stage) natural key is enforced by a unique index.
type ProgressRecord struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID      string `gorm:"index:idx_progress_natural_key,unique"`
	ComponentID string `gorm:"index:idx_progress_natural_key,unique"`
	Stage       string `gorm:"index:idx_progress_natural_key,unique"`

	Completed   bool
	CompletedAt *time.Time
	Notes       string
}

type wrappedProgressRecord struct {
	r *ProgressRecord
}

// ID implements [model.ProgressRecord].
func (w *wrappedProgressRecord) ID() model.ProgressRecordID {
	return model.ProgressRecordID(w.r.ID)
}

// UserID implements [model.ProgressRecord].
func (w *wrappedProgressRecord) UserID() model.UserID {
	return model.UserID(w.r.UserID)
}

// ComponentID implements [model.ProgressRecord].
func (w *wrappedProgressRecord) ComponentID() model.ComponentID {
	return model.ComponentID(w.r.ComponentID)
}

// Stage implements [model.ProgressRecord].
func (w *wrappedProgressRecord) Stage() model.Stage {
	return model.Stage(w.r.Stage)
}

// Completed implements [model.ProgressRecord].
func (w *wrappedProgressRecord) Completed() bool {
	return w.r.Completed
}

// CompletedAt implements [model.ProgressRecord].
func (w *wrappedProgressRecord) CompletedAt() *time.Time {
	return w.r.CompletedAt
}

// Notes implements [model.ProgressRecord].
func (w *wrappedProgressRecord) Notes() string {
	return w.r.Notes
}

// CreatedAt implements [model.PersistedProgressRecord].
func (w *wrappedProgressRecord) CreatedAt() time.Time {
	return w.r.CreatedAt
}

// UpdatedAt implements [model.PersistedProgressRecord].
func (w *wrappedProgressRecord) UpdatedAt() time.Time {
	return w.r.UpdatedAt
}

var _ model.PersistedProgressRecord = &wrappedProgressRecord{}
