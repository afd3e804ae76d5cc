package model

// ComponentID identifies one of the five fixed pillars of the program
// management framework.
type ComponentID string

const (
	ComponentEngagementStructure  ComponentID = "engagement_structure"
	ComponentGovernanceFramework  ComponentID = "governance_framework"
	ComponentFacilitationModel    ComponentID = "facilitation_model"
	ComponentAnalysisFramework    ComponentID = "analysis_framework"
	ComponentContinuationStrategy ComponentID = "continuation_strategy"
)

// Stage identifies one of the four fixed lifecycle phases within a component.
type Stage string

const (
	StageInitiation   Stage = "initiation"
	StageEngagement   Stage = "engagement"
	StageSynthesis    Stage = "synthesis"
	StageContinuation Stage = "continuation"
)

func Components() []ComponentID {
	return []ComponentID{
		ComponentEngagementStructure,
		ComponentGovernanceFramework,
		ComponentFacilitationModel,
		ComponentAnalysisFramework,
		ComponentContinuationStrategy,
	}
}

func Stages() []Stage {
	return []Stage{
		StageInitiation,
		StageEngagement,
		StageSynthesis,
		StageContinuation,
	}
}

func IsValidComponent(id ComponentID) bool {
	for _, c := range Components() {
		if c == id {
			return true
		}
	}

	return false
}

func IsValidStage(stage Stage) bool {
	for _, s := range Stages() {
		if s == stage {
			return true
		}
	}

	return false
}

var expectedArtifactTypes = map[ComponentID][]string{
	ComponentEngagementStructure:  {"charter", "stakeholder_map", "kickoff_brief"},
	ComponentGovernanceFramework:  {"decision_matrix", "escalation_plan", "compliance_checklist"},
	ComponentFacilitationModel:    {"session_agenda", "facilitation_guide", "feedback_summary"},
	ComponentAnalysisFramework:    {"data_inventory", "findings_report", "recommendations_memo"},
	ComponentContinuationStrategy: {"transition_plan", "sustainability_roadmap", "closeout_report"},
}

// ExpectedArtifactTypes returns the artifact types a component is expected to
// accumulate. The list drives completeness display only, the artifact ledger
// accepts any type.
func ExpectedArtifactTypes(id ComponentID) []string {
	return expectedArtifactTypes[id]
}
