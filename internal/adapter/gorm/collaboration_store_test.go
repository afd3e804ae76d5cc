package gorm

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
)

func TestCollaborationLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := model.NewUserID()
	collaborator := model.NewUserID()
	clientID := model.NewClientID()

	collaboration, err := store.CreateCollaboration(ctx, owner, collaborator, clientID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.CollaborationStatusPending, collaboration.Status(); e != g {
		t.Errorf("collaboration.Status(): expected %q, got %q", e, g)
	}

	if collaboration.AcceptedAt() != nil {
		t.Errorf("collaboration.AcceptedAt() should be nil while pending")
	}

	accepted, err := store.UpdateCollaborationStatus(ctx, collaboration.ID(), model.CollaborationStatusAccepted)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.CollaborationStatusAccepted, accepted.Status(); e != g {
		t.Errorf("accepted.Status(): expected %q, got %q", e, g)
	}

	if accepted.AcceptedAt() == nil {
		t.Errorf("accepted.AcceptedAt() should be stamped")
	}

	declined, err := store.UpdateCollaborationStatus(ctx, collaboration.ID(), model.CollaborationStatusDeclined)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if declined.AcceptedAt() != nil {
		t.Errorf("declined.AcceptedAt() should be cleared")
	}
}

func TestListUserCollaborationsCoversBothSides(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := model.NewUserID()
	collaborator := model.NewUserID()

	if _, err := store.CreateCollaboration(ctx, owner, collaborator, model.NewClientID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	for _, userID := range []model.UserID{owner, collaborator} {
		collaborations, err := store.ListUserCollaborations(ctx, userID)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := 1, len(collaborations); e != g {
			t.Errorf("len(collaborations) for %s: expected %d, got %d", userID, e, g)
		}
	}
}
