package model

import (
	"github.com/rs/xid"
)

type ArtifactRecordID string

func NewArtifactRecordID() ArtifactRecordID {
	return ArtifactRecordID(xid.New().String())
}

// ArtifactRecord is a named document attached to a (component, artifactType)
// pair. At most one record exists per (user, component, artifactType).
type ArtifactRecord interface {
	WithID[ArtifactRecordID]
	WithOwner

	ComponentID() ComponentID
	ArtifactType() string
	Title() string
	Content() string
}

// PersistedArtifactRecord is an ArtifactRecord that has been persisted to the store.
type PersistedArtifactRecord interface {
	ArtifactRecord
	WithLifecycle
}
