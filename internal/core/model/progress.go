package model

import (
	"time"

	"github.com/rs/xid"
)

type ProgressRecordID string

func NewProgressRecordID() ProgressRecordID {
	return ProgressRecordID(xid.New().String())
}

// ProgressRecord tracks the completion state of a single (component, stage)
// pair for a user. At most one record exists per (user, component, stage).
type ProgressRecord interface {
	WithID[ProgressRecordID]
	WithOwner

	ComponentID() ComponentID
	Stage() Stage
	Completed() bool
	// CompletedAt is non-nil iff Completed is true at the time of the last
	// write. Toggling a record off erases the timestamp.
	CompletedAt() *time.Time
	Notes() string
}

// PersistedProgressRecord is a ProgressRecord that has been persisted to the store.
type PersistedProgressRecord interface {
	ProgressRecord
	WithLifecycle
}

// StagesPerComponent is the fixed number of stages a component moves through.
const StagesPerComponent = 4

// ComponentProgress is the derived completion state of a single component.
type ComponentProgress struct {
	ComponentID     ComponentID `json:"componentId"`
	CompletedStages int         `json:"completedStages"`
	TotalStages     int         `json:"totalStages"`
	Percentage      float64     `json:"percentage"`
}

// ProgressSummary is the derived completion state of the whole program for
// one user. It is recomputed on every read, never stored.
type ProgressSummary struct {
	UserID     UserID              `json:"userId"`
	Components []ComponentProgress `json:"components"`
	Overall    float64             `json:"overall"`
}
