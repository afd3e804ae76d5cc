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

type Opportunity struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"index"`

	SolicitationNumber string
	Title              string
	Agency             string
	NoticeType         string
	SetAside           string
	ResponseDeadline   *time.Time
	Description        string
	Raw                string
}

func toOpportunity(o *Opportunity) *model.Opportunity {
	return &model.Opportunity{
		ID:                 model.OpportunityID(o.ID),
		UserID:             model.UserID(o.UserID),
		SolicitationNumber: o.SolicitationNumber,
		Title:              o.Title,
		Agency:             o.Agency,
		NoticeType:         o.NoticeType,
		SetAside:           o.SetAside,
		ResponseDeadline:   o.ResponseDeadline,
		Description:        o.Description,
		Raw:                o.Raw,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

// SaveOpportunity implements port.OpportunityStore.
func (s *Store) SaveOpportunity(ctx context.Context, opportunity *model.Opportunity) error {
	row := &Opportunity{
		ID:                 string(opportunity.ID),
		UserID:             string(opportunity.UserID),
		SolicitationNumber: opportunity.SolicitationNumber,
		Title:              opportunity.Title,
		Agency:             opportunity.Agency,
		NoticeType:         opportunity.NoticeType,
		SetAside:           opportunity.SetAside,
		ResponseDeadline:   opportunity.ResponseDeadline,
		Description:        opportunity.Description,
		Raw:                opportunity.Raw,
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Create(row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	opportunity.CreatedAt = row.CreatedAt
	opportunity.UpdatedAt = row.UpdatedAt

	return nil
}

// ListOpportunities implements port.OpportunityStore.
func (s *Store) ListOpportunities(ctx context.Context, userID model.UserID) ([]*model.Opportunity, error) {
	var rows []*Opportunity

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Where("user_id = ?", string(userID)).Order("created_at DESC").Find(&rows).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opportunities := make([]*model.Opportunity, 0, len(rows))
	for _, r := range rows {
		opportunities = append(opportunities, toOpportunity(r))
	}

	return opportunities, nil
}

// DeleteOpportunity implements port.OpportunityStore.
func (s *Store) DeleteOpportunity(ctx context.Context, userID model.UserID, id model.OpportunityID) error {
	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Delete(&Opportunity{}, "id = ? AND user_id = ?", string(id), string(userID)).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)

	return errors.WithStack(err)
}

var _ port.OpportunityStore = &Store{}
