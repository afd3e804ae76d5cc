package gorm

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
)

func TestUpsertArtifactRequiresTitleOnCreate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.UpsertArtifact(ctx, model.NewUserID(), model.ComponentEngagementStructure, "charter", port.ArtifactUpdates{
		Content: strPtr("draft content"),
	})
	if !errors.Is(err, port.ErrMissingTitle) {
		t.Errorf("expected ErrMissingTitle, got %+v", err)
	}
}

func TestUpsertArtifactPartialUpdateKeepsTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := model.NewUserID()

	if _, err := store.UpsertArtifact(ctx, userID, model.ComponentGovernanceFramework, "decision_matrix", port.ArtifactUpdates{
		Title: strPtr("Decision matrix v1"),
	}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	record, err := store.UpsertArtifact(ctx, userID, model.ComponentGovernanceFramework, "decision_matrix", port.ArtifactUpdates{
		Content: strPtr("updated body"),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Decision matrix v1", record.Title(); e != g {
		t.Errorf("record.Title(): expected %q, got %q", e, g)
	}

	if e, g := "updated body", record.Content(); e != g {
		t.Errorf("record.Content(): expected %q, got %q", e, g)
	}
}

func TestUpsertArtifactDistinctTypesDoNotCollide(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := model.NewUserID()

	for _, artifactType := range model.ExpectedArtifactTypes(model.ComponentFacilitationModel) {
		if _, err := store.UpsertArtifact(ctx, userID, model.ComponentFacilitationModel, artifactType, port.ArtifactUpdates{
			Title: strPtr("Artifact " + artifactType),
		}); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	records, err := store.GetUserArtifacts(ctx, userID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 3, len(records); e != g {
		t.Errorf("len(records): expected %d, got %d", e, g)
	}
}

func TestDeleteArtifactIsScopedAndSilent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	owner := model.NewUserID()
	stranger := model.NewUserID()

	record, err := store.UpsertArtifact(ctx, owner, model.ComponentContinuationStrategy, "closeout_report", port.ArtifactUpdates{
		Title: strPtr("Closeout"),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Non-owned delete reports success and leaves the row alone.
	if err := store.DeleteArtifact(ctx, stranger, record.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	records, err := store.GetUserArtifacts(ctx, owner)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(records); e != g {
		t.Fatalf("len(records): expected %d, got %d", e, g)
	}

	if err := store.DeleteArtifact(ctx, owner, record.ID()); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	records, err = store.GetUserArtifacts(ctx, owner)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(records); e != g {
		t.Errorf("len(records): expected %d, got %d", e, g)
	}

	// Deleting an already deleted artifact stays a no-op.
	if err := store.DeleteArtifact(ctx, owner, record.ID()); err != nil {
		t.Errorf("%+v", errors.WithStack(err))
	}
}
