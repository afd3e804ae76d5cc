package service

import (
	"testing"
	"time"

	"github.com/praxishq/praxis/internal/core/model"
)

type stubProgressRecord struct {
	componentID model.ComponentID
	stage       model.Stage
	completed   bool
}

func (r *stubProgressRecord) ID() model.ProgressRecordID  { return "" }
func (r *stubProgressRecord) UserID() model.UserID        { return "u1" }
func (r *stubProgressRecord) ComponentID() model.ComponentID {
	return r.componentID
}
func (r *stubProgressRecord) Stage() model.Stage       { return r.stage }
func (r *stubProgressRecord) Completed() bool          { return r.completed }
func (r *stubProgressRecord) CompletedAt() *time.Time  { return nil }
func (r *stubProgressRecord) Notes() string            { return "" }
func (r *stubProgressRecord) CreatedAt() time.Time     { return time.Time{} }
func (r *stubProgressRecord) UpdatedAt() time.Time     { return time.Time{} }

var _ model.PersistedProgressRecord = &stubProgressRecord{}

func TestAggregateEmptyLedger(t *testing.T) {
	summary := Aggregate("u1", nil)

	if e, g := 5, len(summary.Components); e != g {
		t.Fatalf("len(summary.Components): expected %d, got %d", e, g)
	}

	for _, c := range summary.Components {
		if e, g := 0.0, c.Percentage; e != g {
			t.Errorf("percentage for %s: expected %v, got %v", c.ComponentID, e, g)
		}
	}

	if e, g := 0.0, summary.Overall; e != g {
		t.Errorf("summary.Overall: expected %v, got %v", e, g)
	}
}

func TestAggregateComputesComponentPercentages(t *testing.T) {
	records := []model.PersistedProgressRecord{
		&stubProgressRecord{componentID: model.ComponentGovernanceFramework, stage: model.StageInitiation, completed: true},
		&stubProgressRecord{componentID: model.ComponentGovernanceFramework, stage: model.StageEngagement, completed: true},
		&stubProgressRecord{componentID: model.ComponentGovernanceFramework, stage: model.StageSynthesis, completed: false},
		&stubProgressRecord{componentID: model.ComponentAnalysisFramework, stage: model.StageInitiation, completed: true},
	}

	summary := Aggregate("u1", records)

	byComponent := map[model.ComponentID]model.ComponentProgress{}
	for _, c := range summary.Components {
		byComponent[c.ComponentID] = c
	}

	if e, g := 50.0, byComponent[model.ComponentGovernanceFramework].Percentage; e != g {
		t.Errorf("governance percentage: expected %v, got %v", e, g)
	}

	if e, g := 25.0, byComponent[model.ComponentAnalysisFramework].Percentage; e != g {
		t.Errorf("analysis percentage: expected %v, got %v", e, g)
	}

	// (50 + 25 + 0 + 0 + 0) / 5
	if e, g := 15.0, summary.Overall; e != g {
		t.Errorf("summary.Overall: expected %v, got %v", e, g)
	}
}

func TestAggregateBounds(t *testing.T) {
	var records []model.PersistedProgressRecord
	for _, c := range model.Components() {
		for _, s := range model.Stages() {
			records = append(records, &stubProgressRecord{componentID: c, stage: s, completed: true})
		}
	}

	summary := Aggregate("u1", records)

	for _, c := range summary.Components {
		if c.Percentage < 0 || c.Percentage > 100 {
			t.Errorf("percentage for %s out of bounds: %v", c.ComponentID, c.Percentage)
		}
	}

	if e, g := 100.0, summary.Overall; e != g {
		t.Errorf("summary.Overall: expected %v, got %v", e, g)
	}
}
