package gorm

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
)

func boolPtr(v bool) *bool {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestUpsertProgressCreateThenToggleOff(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := model.NewUserID()

	record, err := store.UpsertProgress(ctx, userID, model.ComponentGovernanceFramework, model.StageInitiation, port.ProgressUpdates{
		Completed: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !record.Completed() {
		t.Errorf("record.Completed() should be true")
	}

	if record.CompletedAt() == nil {
		t.Errorf("record.CompletedAt() should be set")
	}

	if e, g := "", record.Notes(); e != g {
		t.Errorf("record.Notes(): expected %q, got %q", e, g)
	}

	toggled, err := store.UpsertProgress(ctx, userID, model.ComponentGovernanceFramework, model.StageInitiation, port.ProgressUpdates{
		Completed: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if toggled.Completed() {
		t.Errorf("toggled.Completed() should be false")
	}

	if toggled.CompletedAt() != nil {
		t.Errorf("toggled.CompletedAt() should be cleared, got %v", toggled.CompletedAt())
	}

	if e, g := record.ID(), toggled.ID(); e != g {
		t.Errorf("toggled.ID(): expected %q, got %q", e, g)
	}
}

func TestUpsertProgressIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := model.NewUserID()

	updates := port.ProgressUpdates{
		Completed: boolPtr(true),
		Notes:     strPtr("kickoff done"),
	}

	first, err := store.UpsertProgress(ctx, userID, model.ComponentEngagementStructure, model.StageEngagement, updates)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := store.UpsertProgress(ctx, userID, model.ComponentEngagementStructure, model.StageEngagement, updates)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := first.ID(), second.ID(); e != g {
		t.Errorf("second.ID(): expected %q, got %q", e, g)
	}

	if e, g := first.Completed(), second.Completed(); e != g {
		t.Errorf("second.Completed(): expected %v, got %v", e, g)
	}

	if e, g := first.Notes(), second.Notes(); e != g {
		t.Errorf("second.Notes(): expected %q, got %q", e, g)
	}

	records, err := store.GetUserProgress(ctx, userID)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(records); e != g {
		t.Errorf("len(records): expected %d, got %d", e, g)
	}
}

func TestUpsertProgressKeepsOmittedFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := model.NewUserID()

	if _, err := store.UpsertProgress(ctx, userID, model.ComponentAnalysisFramework, model.StageSynthesis, port.ProgressUpdates{
		Completed: boolPtr(true),
		Notes:     strPtr("initial notes"),
	}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	record, err := store.UpsertProgress(ctx, userID, model.ComponentAnalysisFramework, model.StageSynthesis, port.ProgressUpdates{
		Notes: strPtr("revised notes"),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !record.Completed() {
		t.Errorf("record.Completed() should still be true")
	}

	if record.CompletedAt() == nil {
		t.Errorf("record.CompletedAt() should still be set")
	}

	if e, g := "revised notes", record.Notes(); e != g {
		t.Errorf("record.Notes(): expected %q, got %q", e, g)
	}
}

func TestProgressCompletedAtInvariant(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := model.NewUserID()

	// Whatever sequence of writes, completed=true iff completedAt is set.
	sequences := []port.ProgressUpdates{
		{},
		{Completed: boolPtr(true)},
		{Notes: strPtr("note")},
		{Completed: boolPtr(false)},
		{Completed: boolPtr(true), Notes: strPtr("again")},
	}

	for _, updates := range sequences {
		record, err := store.UpsertProgress(ctx, userID, model.ComponentFacilitationModel, model.StageContinuation, updates)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if record.Completed() != (record.CompletedAt() != nil) {
			t.Errorf("invariant violated: completed=%v, completedAt=%v", record.Completed(), record.CompletedAt())
		}
	}
}

func TestGetUserProgressIsScopedToUser(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := model.NewUserID()
	bob := model.NewUserID()

	if _, err := store.UpsertProgress(ctx, alice, model.ComponentContinuationStrategy, model.StageInitiation, port.ProgressUpdates{Completed: boolPtr(true)}); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	records, err := store.GetUserProgress(ctx, bob)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 0, len(records); e != g {
		t.Errorf("len(records): expected %d, got %d", e, g)
	}
}
