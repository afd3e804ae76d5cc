package model

import (
	"time"

	"github.com/rs/xid"
)

type CollaborationID string

func NewCollaborationID() CollaborationID {
	return CollaborationID(xid.New().String())
}

type CollaborationStatus string

const (
	CollaborationStatusPending  CollaborationStatus = "pending"
	CollaborationStatusAccepted CollaborationStatus = "accepted"
	CollaborationStatusDeclined CollaborationStatus = "declined"
)

// Collaboration grants a second user visibility into the owner's
// client-scoped progress. The invited collaborator is the only party allowed
// to change its status.
type Collaboration interface {
	WithID[CollaborationID]

	OwnerID() UserID
	CollaboratorID() UserID
	ClientID() ClientID
	Status() CollaborationStatus
	// AcceptedAt is stamped on the transition to "accepted" and stays nil for
	// every other status.
	AcceptedAt() *time.Time
}

// PersistedCollaboration is a Collaboration that has been persisted to the store.
type PersistedCollaboration interface {
	Collaboration
	WithLifecycle
}
