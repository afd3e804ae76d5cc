package model

import (
	"time"
)

// Guide is a reference document published to the dashboard. Visibility is
// resolved server-side from the reader's roles, see authz.CanView.
type Guide struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`

	// Roles that may see the guide. Empty means visible to everyone.
	Roles []string `json:"roles,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
