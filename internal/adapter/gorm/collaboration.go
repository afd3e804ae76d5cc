package gorm

import (
	"time"

	"github.com/praxishq/praxis/internal/core/model"
)

// Collaboration is the GORM model for sharing relationships.
type Collaboration struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	OwnerID        string `gorm:"index"`
	CollaboratorID string `gorm:"index"`
	ClientID       string `gorm:"index"`

	Status     string
	AcceptedAt *time.Time
}

type wrappedCollaboration struct {
	c *Collaboration
}

// ID implements [model.Collaboration].
func (w *wrappedCollaboration) ID() model.CollaborationID {
	return model.CollaborationID(w.c.ID)
}

// OwnerID implements [model.Collaboration].
func (w *wrappedCollaboration) OwnerID() model.UserID {
	return model.UserID(w.c.OwnerID)
}

// CollaboratorID implements [model.Collaboration].
func (w *wrappedCollaboration) CollaboratorID() model.UserID {
	return model.UserID(w.c.CollaboratorID)
}

// ClientID implements [model.Collaboration].
func (w *wrappedCollaboration) ClientID() model.ClientID {
	return model.ClientID(w.c.ClientID)
}

// Status implements [model.Collaboration].
func (w *wrappedCollaboration) Status() model.CollaborationStatus {
	return model.CollaborationStatus(w.c.Status)
}

// AcceptedAt implements [model.Collaboration].
func (w *wrappedCollaboration) AcceptedAt() *time.Time {
	return w.c.AcceptedAt
}

// CreatedAt implements [model.PersistedCollaboration].
func (w *wrappedCollaboration) CreatedAt() time.Time {
	return w.c.CreatedAt
}

// UpdatedAt implements [model.PersistedCollaboration].
func (w *wrappedCollaboration) UpdatedAt() time.Time {
	return w.c.UpdatedAt
}

var _ model.PersistedCollaboration = &wrappedCollaboration{}
