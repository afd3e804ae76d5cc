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

// CreateCollaboration implements port.CollaborationStore.
func (s *Store) CreateCollaboration(ctx context.Context, ownerID, collaboratorID model.UserID, clientID model.ClientID) (model.PersistedCollaboration, error) {
	collaboration := Collaboration{
		ID:             string(model.NewCollaborationID()),
		OwnerID:        string(ownerID),
		CollaboratorID: string(collaboratorID),
		ClientID:       string(clientID),
		Status:         string(model.CollaborationStatusPending),
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(&collaboration).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCollaboration{&collaboration}, nil
}

// GetCollaborationByID implements port.CollaborationStore.
func (s *Store) GetCollaborationByID(ctx context.Context, id model.CollaborationID) (model.PersistedCollaboration, error) {
	var collaboration Collaboration

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&collaboration, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCollaboration{&collaboration}, nil
}

// ListUserCollaborations implements port.CollaborationStore.
func (s *Store) ListUserCollaborations(ctx context.Context, userID model.UserID) ([]model.PersistedCollaboration, error) {
	var collaborations []*Collaboration

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("owner_id = ? OR collaborator_id = ?", string(userID), string(userID)).
			Order("created_at DESC").
			Find(&collaborations).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.PersistedCollaboration, 0, len(collaborations))
	for _, c := range collaborations {
		wrapped = append(wrapped, &wrappedCollaboration{c})
	}

	return wrapped, nil
}

// ListClientCollaborations implements port.CollaborationStore.
func (s *Store) ListClientCollaborations(ctx context.Context, clientID model.ClientID) ([]model.PersistedCollaboration, error) {
	var collaborations []*Collaboration

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("client_id = ?", string(clientID)).Find(&collaborations).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped := make([]model.PersistedCollaboration, 0, len(collaborations))
	for _, c := range collaborations {
		wrapped = append(wrapped, &wrappedCollaboration{c})
	}

	return wrapped, nil
}

// UpdateCollaborationStatus implements port.CollaborationStore.
func (s *Store) UpdateCollaborationStatus(ctx context.Context, id model.CollaborationID, status model.CollaborationStatus) (model.PersistedCollaboration, error) {
	var collaboration Collaboration

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.First(&collaboration, "id = ?", string(id)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		collaboration.Status = string(status)

		// AcceptedAt only survives in the accepted state.
		if status == model.CollaborationStatusAccepted {
			now := time.Now().UTC()
			collaboration.AcceptedAt = &now
		} else {
			collaboration.AcceptedAt = nil
		}

		if err := tx.Save(&collaboration).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &wrappedCollaboration{&collaboration}, nil
}

var _ port.CollaborationStore = &Store{}
