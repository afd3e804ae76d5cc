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

type Client struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"index"`

	Name         string
	Organization string
	Email        string
	Phone        string
	Notes        string
	Status       string
}

func fromClient(c *model.Client) *Client {
	return &Client{
		ID:           string(c.ID),
		UserID:       string(c.UserID),
		Name:         c.Name,
		Organization: c.Organization,
		Email:        c.Email,
		Phone:        c.Phone,
		Notes:        c.Notes,
		Status:       c.Status,
	}
}

func toClient(c *Client) *model.Client {
	return &model.Client{
		ID:           model.ClientID(c.ID),
		UserID:       model.UserID(c.UserID),
		Name:         c.Name,
		Organization: c.Organization,
		Email:        c.Email,
		Phone:        c.Phone,
		Notes:        c.Notes,
		Status:       c.Status,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// CreateClient implements port.ClientStore.
func (s *Store) CreateClient(ctx context.Context, client *model.Client) error {
	row := fromClient(client)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(row).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	client.CreatedAt = row.CreatedAt
	client.UpdatedAt = row.UpdatedAt

	return nil
}

// GetClientByID implements port.ClientStore.
func (s *Store) GetClientByID(ctx context.Context, userID model.UserID, id model.ClientID) (*model.Client, error) {
	var row Client

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&row, "id = ? AND user_id = ?", string(id), string(userID)).Error; err != nil {
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

	return toClient(&row), nil
}

// ListClients implements port.ClientStore.
func (s *Store) ListClients(ctx context.Context, userID model.UserID) ([]*model.Client, error) {
	var rows []*Client

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Where("user_id = ?", string(userID)).Order("name ASC").Find(&rows).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	clients := make([]*model.Client, 0, len(rows))
	for _, r := range rows {
		clients = append(clients, toClient(r))
	}

	return clients, nil
}

// UpdateClient implements port.ClientStore.
func (s *Store) UpdateClient(ctx context.Context, userID model.UserID, id model.ClientID, updates port.ClientUpdates) (*model.Client, error) {
	var row Client

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.First(&row, "id = ? AND user_id = ?", string(id), string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		if updates.Name != nil {
			row.Name = *updates.Name
		}
		if updates.Organization != nil {
			row.Organization = *updates.Organization
		}
		if updates.Email != nil {
			row.Email = *updates.Email
		}
		if updates.Phone != nil {
			row.Phone = *updates.Phone
		}
		if updates.Notes != nil {
			row.Notes = *updates.Notes
		}
		if updates.Status != nil {
			row.Status = *updates.Status
		}

		if err := tx.Save(&row).Error; err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toClient(&row), nil
}

// DeleteClient implements port.ClientStore.
func (s *Store) DeleteClient(ctx context.Context, userID model.UserID, id model.ClientID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Delete(&Client{}, "id = ? AND user_id = ?", string(id), string(userID)).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

var _ port.ClientStore = &Store{}
