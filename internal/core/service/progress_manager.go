package service

import (
	"context"

	"github.com/pkg/errors"
	"github.com/praxishq/praxis/internal/core/model"
	"github.com/praxishq/praxis/internal/core/port"
	"github.com/praxishq/praxis/internal/metrics"
)

// ProgressManager exposes the progress and artifact ledgers and derives the
// aggregate completion state of a user's program.
type ProgressManager struct {
	port.ProgressStore
	port.ArtifactStore
}

func NewProgressManager(progressStore port.ProgressStore, artifactStore port.ArtifactStore) *ProgressManager {
	return &ProgressManager{
		ProgressStore: progressStore,
		ArtifactStore: artifactStore,
	}
}

// UpdateProgress validates the natural key then delegates to the store's
// merge-on-conflict upsert.
func (m *ProgressManager) UpdateProgress(ctx context.Context, userID model.UserID, componentID model.ComponentID, stage model.Stage, updates port.ProgressUpdates) (model.PersistedProgressRecord, error) {
	if !model.IsValidComponent(componentID) {
		return nil, errors.WithStack(port.NewValidationError("componentId", "unknown component"))
	}

	if !model.IsValidStage(stage) {
		return nil, errors.WithStack(port.NewValidationError("stage", "unknown stage"))
	}

	record, err := m.UpsertProgress(ctx, userID, componentID, stage, updates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	metrics.TotalProgressUpdates.Inc()

	return record, nil
}

// UpdateArtifact validates the natural key then delegates to the store's
// upsert.
func (m *ProgressManager) UpdateArtifact(ctx context.Context, userID model.UserID, componentID model.ComponentID, artifactType string, updates port.ArtifactUpdates) (model.PersistedArtifactRecord, error) {
	if !model.IsValidComponent(componentID) {
		return nil, errors.WithStack(port.NewValidationError("componentId", "unknown component"))
	}

	if artifactType == "" {
		return nil, errors.WithStack(port.NewValidationError("artifactType", "artifact type is required"))
	}

	record, err := m.UpsertArtifact(ctx, userID, componentID, artifactType, updates)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return record, nil
}

// Summary recomputes the aggregate completion state of a user's program from
// the progress ledger. Missing records count as not completed.
func (m *ProgressManager) Summary(ctx context.Context, userID model.UserID) (*model.ProgressSummary, error) {
	records, err := m.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return Aggregate(userID, records), nil
}

// Aggregate derives per-component and overall completion percentages from a
// set of progress records. Each component moves through a fixed number of
// stages, the overall percentage is the arithmetic mean of the component
// percentages.
func Aggregate(userID model.UserID, records []model.PersistedProgressRecord) *model.ProgressSummary {
	completedByComponent := map[model.ComponentID]int{}
	for _, r := range records {
		if r.Completed() {
			completedByComponent[r.ComponentID()]++
		}
	}

	components := model.Components()

	summary := &model.ProgressSummary{
		UserID:     userID,
		Components: make([]model.ComponentProgress, 0, len(components)),
	}

	var total float64

	for _, c := range components {
		completed := completedByComponent[c]
		percentage := float64(completed) / float64(model.StagesPerComponent) * 100

		summary.Components = append(summary.Components, model.ComponentProgress{
			ComponentID:     c,
			CompletedStages: completed,
			TotalStages:     model.StagesPerComponent,
			Percentage:      percentage,
		})

		total += percentage
	}

	summary.Overall = total / float64(len(components))

	return summary
}
