package port

import (
	"context"

	"github.com/praxishq/praxis/internal/core/model"
)

type OpportunityStore interface {
	// SaveOpportunity persists an imported opportunity row
	SaveOpportunity(ctx context.Context, opportunity *model.Opportunity) error

	// ListOpportunities returns every opportunity saved by the user
	ListOpportunities(ctx context.Context, userID model.UserID) ([]*model.Opportunity, error)

	// DeleteOpportunity deletes an opportunity saved by the user. Deleting a
	// missing or non-owned row is a silent no-op.
	DeleteOpportunity(ctx context.Context, userID model.UserID, id model.OpportunityID) error
}
