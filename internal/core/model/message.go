package model

import (
	"time"

	"github.com/rs/xid"
)

type MessageID string

func NewMessageID() MessageID {
	return MessageID(xid.New().String())
}

// Message is exchanged between two users. Delivery is poll-based, there is
// no push channel.
type Message struct {
	ID          MessageID `json:"id"`
	SenderID    UserID    `json:"senderId"`
	RecipientID UserID    `json:"recipientId"`

	Subject string     `json:"subject"`
	Body    string     `json:"body"`
	ReadAt  *time.Time `json:"readAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
