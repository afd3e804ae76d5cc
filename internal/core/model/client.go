package model

import (
	"time"

	"github.com/rs/xid"
)

type ClientID string

func NewClientID() ClientID {
	return ClientID(xid.New().String())
}

// Client is a consulting client managed by a single user. Supporting entity,
// plain fields and standard lifecycle stamps.
type Client struct {
	ID     ClientID `json:"id"`
	UserID UserID   `json:"userId"`

	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
