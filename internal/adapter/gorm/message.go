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

type Message struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	SenderID    string `gorm:"index"`
	RecipientID string `gorm:"index"`

	Subject string
	Body    string
	ReadAt  *time.Time
}

func toMessage(m *Message) *model.Message {
	return &model.Message{
		ID:          model.MessageID(m.ID),
		SenderID:    model.UserID(m.SenderID),
		RecipientID: model.UserID(m.RecipientID),
		Subject:     m.Subject,
		Body:        m.Body,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreateMessage implements port.MessageStore.
func (s *Store) CreateMessage(ctx context.Context, message *model.Message) error {
	row := &Message{
		ID:          string(message.ID),
		SenderID:    string(message.SenderID),
		RecipientID: string(message.RecipientID),
		Subject:     message.Subject,
		Body:        message.Body,
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Create(row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	message.CreatedAt = row.CreatedAt
	message.UpdatedAt = row.UpdatedAt

	return nil
}

// ListUserMessages implements port.MessageStore.
func (s *Store) ListUserMessages(ctx context.Context, userID model.UserID) ([]*model.Message, error) {
	var rows []*Message

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Where("sender_id = ? OR recipient_id = ?", string(userID), string(userID)).
			Order("created_at DESC").
			Find(&rows).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	messages := make([]*model.Message, 0, len(rows))
	for _, r := range rows {
		messages = append(messages, toMessage(r))
	}

	return messages, nil
}

// MarkMessageRead implements port.MessageStore.
func (s *Store) MarkMessageRead(ctx context.Context, userID model.UserID, id model.MessageID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		now := time.Now().UTC()

		// Only the recipient may mark a message as read, anything else is a
		// silent no-op.
		return errors.WithStack(db.Model(&Message{}).
			Where("id = ? AND recipient_id = ? AND read_at IS NULL", string(id), string(userID)).
			Update("read_at", &now).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)

	return errors.WithStack(err)
}

var _ port.MessageStore = &Store{}
