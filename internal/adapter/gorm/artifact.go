package gorm

import (
	"time"

	"github.com/praxishq/praxis/internal/core/model"
)

// ArtifactRecord is the GORM model for artifact ledger rows. The
// (user, component, artifactType) natural key is enforced by a unique index.
type ArtifactRecord struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID       string `gorm:"index:idx_artifact_natural_key,unique"`
	ComponentID  string `gorm:"index:idx_artifact_natural_key,unique"`
	ArtifactType string `gorm:"index:idx_artifact_natural_key,unique"`

	Title   string
	Content string
}

type wrappedArtifactRecord struct {
	r *ArtifactRecord
}

// ID implements [model.ArtifactRecord].
func (w *wrappedArtifactRecord) ID() model.ArtifactRecordID {
	return model.ArtifactRecordID(w.r.ID)
}

// UserID implements [model.ArtifactRecord].
func (w *wrappedArtifactRecord) UserID() model.UserID {
	return model.UserID(w.r.UserID)
}

// ComponentID implements [model.ArtifactRecord].
func (w *wrappedArtifactRecord) ComponentID() model.ComponentID {
	return model.ComponentID(w.r.ComponentID)
}

// ArtifactType implements [model.ArtifactRecord].
func (w *wrappedArtifactRecord) ArtifactType() string {
	return w.r.ArtifactType
}

// Title implements [model.ArtifactRecord].
func (w *wrappedArtifactRecord) Title() string {
	return w.r.Title
}

// Content implements [model.ArtifactRecord].
func (w *wrappedArtifactRecord) Content() string {
	return w.r.Content
}

// CreatedAt implements [model.PersistedArtifactRecord].
func (w *wrappedArtifactRecord) CreatedAt() time.Time {
	return w.r.CreatedAt
}

// UpdatedAt implements [model.PersistedArtifactRecord].
func (w *wrappedArtifactRecord) UpdatedAt() time.Time {
	return w.r.UpdatedAt
}

var _ model.PersistedArtifactRecord = &wrappedArtifactRecord{}
