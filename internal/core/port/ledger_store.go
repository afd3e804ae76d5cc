package port

import (
	"context"
	"time"

	"github.com/praxishq/praxis/internal/core/model"
)

type TimeEntryUpdates struct {
	ClientID    *model.ClientID
	Description *string
	Hours       *float64
	EntryDate   *time.Time
	Billable    *bool
}

type ActionUpdates struct {
	ClientID    *model.ClientID
	Title       *string
	Category    *string
	Amount      *float64
	Status      *string
	DueDate     *time.Time
	CompletedAt *time.Time
}

type InvoiceUpdates struct {
	Number    *string
	Amount    *float64
	Status    *model.InvoiceStatus
	IssuedAt  *time.Time
	DueAt     *time.Time
	LineItems *string
}

// LedgerStore gathers the time, action and invoice rows of the billing
// ledger. All rows are scoped to their owning user, reads of non-owned rows
// return ErrNotFound and deletes of non-owned rows are silent no-ops.
type LedgerStore interface {
	CreateTimeEntry(ctx context.Context, entry *model.TimeEntry) error
	ListTimeEntries(ctx context.Context, userID model.UserID) ([]*model.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, userID model.UserID, id model.TimeEntryID, updates TimeEntryUpdates) (*model.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, userID model.UserID, id model.TimeEntryID) error

	CreateAction(ctx context.Context, action *model.Action) error
	ListActions(ctx context.Context, userID model.UserID) ([]*model.Action, error)
	UpdateAction(ctx context.Context, userID model.UserID, id model.ActionID, updates ActionUpdates) (*model.Action, error)
	DeleteAction(ctx context.Context, userID model.UserID, id model.ActionID) error

	CreateInvoice(ctx context.Context, invoice *model.Invoice) error
	ListInvoices(ctx context.Context, userID model.UserID) ([]*model.Invoice, error)
	UpdateInvoice(ctx context.Context, userID model.UserID, id model.InvoiceID, updates InvoiceUpdates) (*model.Invoice, error)
	DeleteInvoice(ctx context.Context, userID model.UserID, id model.InvoiceID) error
}
