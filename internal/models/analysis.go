// internal/models/analysis.go
package models

// ProfileAnalysis is derived from a profile per submission and discarded
// after the response is built.
type ProfileAnalysis struct {
	KeyCharacteristics []string          `json:"keyCharacteristics"`
	EligibilityTags    []string          `json:"eligibilityTags"`
	AwarenessLevel     AwarenessLevel    `json:"awarenessLevel"`
	PriorityGoals      []OpportunityGoal `json:"priorityGoals"`
}

// Blindspot is an opportunity category the student is statistically likely
// to be unaware of. RelevanceScore is in (0, 1].
type Blindspot struct {
	Category       string  `json:"category"`
	Reason         string  `json:"reason"`
	RelevanceScore float64 `json:"relevanceScore"`
}

// OpportunityMatch pairs a catalog record with explanations for one
// submission. RelevanceScore is in [0, 1].
type OpportunityMatch struct {
	Opportunity     Opportunity     `json:"opportunity"`
	FitExplanation  string          `json:"fitExplanation"`
	MissReason      string          `json:"missReason"`
	MissProbability MissProbability `json:"missProbability"`
	RelevanceScore  float64         `json:"relevanceScore"`
}
