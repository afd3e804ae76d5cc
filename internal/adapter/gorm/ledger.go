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

type TimeEntry struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID   string `gorm:"index"`
	ClientID *string

	Description string
	Hours       float64
	EntryDate   time.Time
	Billable    bool
}

type Action struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID   string `gorm:"index"`
	ClientID *string

	Title       string
	Category    string
	Amount      float64
	Status      string
	DueDate     *time.Time
	CompletedAt *time.Time
}

type Invoice struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID   string `gorm:"index"`
	ClientID string `gorm:"index"`

	Number    string
	Amount    float64
	Status    string
	IssuedAt  time.Time
	DueAt     *time.Time
	LineItems string
}

func clientIDPtr(id *model.ClientID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}

func modelClientIDPtr(id *string) *model.ClientID {
	if id == nil {
		return nil
	}
	c := model.ClientID(*id)
	return &c
}

func fromTimeEntry(e *model.TimeEntry) *TimeEntry {
	return &TimeEntry{
		ID:          string(e.ID),
		UserID:      string(e.UserID),
		ClientID:    clientIDPtr(e.ClientID),
		Description: e.Description,
		Hours:       e.Hours,
		EntryDate:   e.EntryDate,
		Billable:    e.Billable,
	}
}

func toTimeEntry(e *TimeEntry) *model.TimeEntry {
	return &model.TimeEntry{
		ID:          model.TimeEntryID(e.ID),
		UserID:      model.UserID(e.UserID),
		ClientID:    modelClientIDPtr(e.ClientID),
		Description: e.Description,
		Hours:       e.Hours,
		EntryDate:   e.EntryDate,
		Billable:    e.Billable,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func fromAction(a *model.Action) *Action {
	return &Action{
		ID:          string(a.ID),
		UserID:      string(a.UserID),
		ClientID:    clientIDPtr(a.ClientID),
		Title:       a.Title,
		Category:    a.Category,
		Amount:      a.Amount,
		Status:      a.Status,
		DueDate:     a.DueDate,
		CompletedAt: a.CompletedAt,
	}
}

func toAction(a *Action) *model.Action {
	return &model.Action{
		ID:          model.ActionID(a.ID),
		UserID:      model.UserID(a.UserID),
		ClientID:    modelClientIDPtr(a.ClientID),
		Title:       a.Title,
		Category:    a.Category,
		Amount:      a.Amount,
		Status:      a.Status,
		DueDate:     a.DueDate,
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func fromInvoice(i *model.Invoice) *Invoice {
	return &Invoice{
		ID:        string(i.ID),
		UserID:    string(i.UserID),
		ClientID:  string(i.ClientID),
		Number:    i.Number,
		Amount:    i.Amount,
		Status:    string(i.Status),
		IssuedAt:  i.IssuedAt,
		DueAt:     i.DueAt,
		LineItems: i.LineItems,
	}
}

func toInvoice(i *Invoice) *model.Invoice {
	return &model.Invoice{
		ID:        model.InvoiceID(i.ID),
		UserID:    model.UserID(i.UserID),
		ClientID:  model.ClientID(i.ClientID),
		Number:    i.Number,
		Amount:    i.Amount,
		Status:    model.InvoiceStatus(i.Status),
		IssuedAt:  i.IssuedAt,
		DueAt:     i.DueAt,
		LineItems: i.LineItems,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// CreateTimeEntry implements port.LedgerStore.
func (s *Store) CreateTimeEntry(ctx context.Context, entry *model.TimeEntry) error {
	row := fromTimeEntry(entry)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Create(row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	entry.CreatedAt = row.CreatedAt
	entry.UpdatedAt = row.UpdatedAt

	return nil
}

// ListTimeEntries implements port.LedgerStore.
func (s *Store) ListTimeEntries(ctx context.Context, userID model.UserID) ([]*model.TimeEntry, error) {
	var rows []*TimeEntry

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Where("user_id = ?", string(userID)).Order("entry_date DESC").Find(&rows).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	entries := make([]*model.TimeEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, toTimeEntry(r))
	}

	return entries, nil
}

// UpdateTimeEntry implements port.LedgerStore.
func (s *Store) UpdateTimeEntry(ctx context.Context, userID model.UserID, id model.TimeEntryID, updates port.TimeEntryUpdates) (*model.TimeEntry, error) {
	var row TimeEntry

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.First(&row, "id = ? AND user_id = ?", string(id), string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		if updates.ClientID != nil {
			row.ClientID = clientIDPtr(updates.ClientID)
		}
		if updates.Description != nil {
			row.Description = *updates.Description
		}
		if updates.Hours != nil {
			row.Hours = *updates.Hours
		}
		if updates.EntryDate != nil {
			row.EntryDate = *updates.EntryDate
		}
		if updates.Billable != nil {
			row.Billable = *updates.Billable
		}

		return errors.WithStack(tx.Save(&row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toTimeEntry(&row), nil
}

// DeleteTimeEntry implements port.LedgerStore.
func (s *Store) DeleteTimeEntry(ctx context.Context, userID model.UserID, id model.TimeEntryID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Delete(&TimeEntry{}, "id = ? AND user_id = ?", string(id), string(userID)).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)

	return errors.WithStack(err)
}

// CreateAction implements port.LedgerStore.
func (s *Store) CreateAction(ctx context.Context, action *model.Action) error {
	row := fromAction(action)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Create(row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	action.CreatedAt = row.CreatedAt
	action.UpdatedAt = row.UpdatedAt

	return nil
}

// ListActions implements port.LedgerStore.
func (s *Store) ListActions(ctx context.Context, userID model.UserID) ([]*model.Action, error) {
	var rows []*Action

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Where("user_id = ?", string(userID)).Order("created_at DESC").Find(&rows).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	actions := make([]*model.Action, 0, len(rows))
	for _, r := range rows {
		actions = append(actions, toAction(r))
	}

	return actions, nil
}

// UpdateAction implements port.LedgerStore.
func (s *Store) UpdateAction(ctx context.Context, userID model.UserID, id model.ActionID, updates port.ActionUpdates) (*model.Action, error) {
	var row Action

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.First(&row, "id = ? AND user_id = ?", string(id), string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		if updates.ClientID != nil {
			row.ClientID = clientIDPtr(updates.ClientID)
		}
		if updates.Title != nil {
			row.Title = *updates.Title
		}
		if updates.Category != nil {
			row.Category = *updates.Category
		}
		if updates.Amount != nil {
			row.Amount = *updates.Amount
		}
		if updates.Status != nil {
			row.Status = *updates.Status
		}
		if updates.DueDate != nil {
			row.DueDate = updates.DueDate
		}
		if updates.CompletedAt != nil {
			row.CompletedAt = updates.CompletedAt
		}

		return errors.WithStack(tx.Save(&row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toAction(&row), nil
}

// DeleteAction implements port.LedgerStore.
func (s *Store) DeleteAction(ctx context.Context, userID model.UserID, id model.ActionID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Delete(&Action{}, "id = ? AND user_id = ?", string(id), string(userID)).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)

	return errors.WithStack(err)
}

// CreateInvoice implements port.LedgerStore.
func (s *Store) CreateInvoice(ctx context.Context, invoice *model.Invoice) error {
	row := fromInvoice(invoice)

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Create(row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	invoice.CreatedAt = row.CreatedAt
	invoice.UpdatedAt = row.UpdatedAt

	return nil
}

// ListInvoices implements port.LedgerStore.
func (s *Store) ListInvoices(ctx context.Context, userID model.UserID) ([]*model.Invoice, error) {
	var rows []*Invoice

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Where("user_id = ?", string(userID)).Order("issued_at DESC").Find(&rows).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	invoices := make([]*model.Invoice, 0, len(rows))
	for _, r := range rows {
		invoices = append(invoices, toInvoice(r))
	}

	return invoices, nil
}

// UpdateInvoice implements port.LedgerStore.
func (s *Store) UpdateInvoice(ctx context.Context, userID model.UserID, id model.InvoiceID, updates port.InvoiceUpdates) (*model.Invoice, error) {
	var row Invoice

	err := s.withRetry(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := tx.First(&row, "id = ? AND user_id = ?", string(id), string(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.WithStack(port.ErrNotFound)
			}
			return errors.WithStack(err)
		}

		if updates.Number != nil {
			row.Number = *updates.Number
		}
		if updates.Amount != nil {
			row.Amount = *updates.Amount
		}
		if updates.Status != nil {
			row.Status = string(*updates.Status)
		}
		if updates.IssuedAt != nil {
			row.IssuedAt = *updates.IssuedAt
		}
		if updates.DueAt != nil {
			row.DueAt = updates.DueAt
		}
		if updates.LineItems != nil {
			row.LineItems = *updates.LineItems
		}

		return errors.WithStack(tx.Save(&row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return toInvoice(&row), nil
}

// DeleteInvoice implements port.LedgerStore.
func (s *Store) DeleteInvoice(ctx context.Context, userID model.UserID, id model.InvoiceID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Delete(&Invoice{}, "id = ? AND user_id = ?", string(id), string(userID)).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)

	return errors.WithStack(err)
}

var _ port.LedgerStore = &Store{}
