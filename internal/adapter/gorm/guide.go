package gorm

import (
	"context"
	"strings"
	"time"

	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Guide struct {
	Slug string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Title string
	Body  string

	// Comma-separated role list, parsed on read. Empty means public.
	Roles string
}

func toGuide(g *Guide) *model.Guide {
	var roles []string
	if g.Roles != "" {
		roles = strings.Split(g.Roles, ",")
	}

	return &model.Guide{
		Slug:      g.Slug,
		Title:     g.Title,
		Body:      g.Body,
		Roles:     roles,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// SaveGuide implements port.GuideStore.
func (s *Store) SaveGuide(ctx context.Context, guide *model.Guide) error {
	row := &Guide{
		Slug:  guide.Slug,
		Title: guide.Title,
		Body:  guide.Body,
		Roles: strings.Join(guide.Roles, ","),
	}

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			UpdateAll: true,
		}).Create(row).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)

	return errors.WithStack(err)
}

// GetGuideBySlug implements port.GuideStore.
func (s *Store) GetGuideBySlug(ctx context.Context, slug string) (*model.Guide, error) {
	var row Guide

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.First(&row, "slug = ?", slug).Error; err != nil {
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

	return toGuide(&row), nil
}

// ListGuides implements port.GuideStore.
func (s *Store) ListGuides(ctx context.Context) ([]*model.Guide, error) {
	var rows []*Guide

	err := s.withRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		return errors.WithStack(db.Order("title ASC").Find(&rows).Error)
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	guides := make([]*model.Guide, 0, len(rows))
	for _, r := range rows {
		guides = append(guides, toGuide(r))
	}

	return guides, nil
}

var _ port.GuideStore = &Store{}
