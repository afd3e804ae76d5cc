package model

import (
	"time"

	"github.com/rs/xid"
)

type TimeEntryID string

func NewTimeEntryID() TimeEntryID {
	return TimeEntryID(xid.New().String())
}

// TimeEntry is a logged block of work, optionally attached to a client.
type TimeEntry struct {
	ID       TimeEntryID `json:"id"`
	UserID   UserID      `json:"userId"`
	ClientID *ClientID   `json:"clientId,omitempty"`

	Description string    `json:"description"`
	Hours       float64   `json:"hours"`
	EntryDate   time.Time `json:"entryDate"`
	Billable    bool      `json:"billable"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ActionID string

func NewActionID() ActionID {
	return ActionID(xid.New().String())
}

// Action is a billable action item tracked against an engagement.
type Action struct {
	ID       ActionID  `json:"id"`
	UserID   UserID    `json:"userId"`
	ClientID *ClientID `json:"clientId,omitempty"`

	Title       string     `json:"title"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type InvoiceID string

func NewInvoiceID() InvoiceID {
	return InvoiceID(xid.New().String())
}

type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// Invoice is issued to a client. Line items are carried as an opaque JSON
// document, the server never interprets them.
type Invoice struct {
	ID       InvoiceID `json:"id"`
	UserID   UserID    `json:"userId"`
	ClientID ClientID  `json:"clientId"`

	Number    string        `json:"number"`
	Amount    float64       `json:"amount"`
	Status    InvoiceStatus `json:"status"`
	IssuedAt  time.Time     `json:"issuedAt"`
	DueAt     *time.Time    `json:"dueAt,omitempty"`
	LineItems string        `json:"lineItems"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
