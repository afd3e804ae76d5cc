package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

type GuideStore interface {
	// SaveGuide creates or replaces a guide by its slug
	SaveGuide(ctx context.Context, guide *model.Guide) error

	// GetGuideBySlug finds a guide by its slug, or returns ErrNotFound
	GetGuideBySlug(ctx context.Context, slug string) (*model.Guide, error)

	// ListGuides returns every published guide
	ListGuides(ctx context.Context) ([]*model.Guide, error)
}
