// internal/models/opportunity.go
package models

// EligibilityCriteria are per-opportunity constraints. A nil slice means the
// criterion is unconstrained and matches any profile.
type EligibilityCriteria struct {
	EducationLevels        []EducationLevel      `json:"educationLevels"`
	FieldsOfStudy          []string              `json:"fieldsOfStudy,omitempty"`
	InstitutionTypes       []InstitutionType     `json:"institutionTypes,omitempty"`
	BackgroundRequirements []BackgroundIndicator `json:"backgroundRequirements,omitempty"`
	IncomeBased            bool                  `json:"incomeBased"`
	MeritBased             bool                  `json:"meritBased"`
}

// Opportunity is a single catalog record. The catalog is loaded once at
// process start and never mutated at runtime.
type Opportunity struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Eligibility EligibilityCriteria `json:"eligibilityCriteria"`
	Visibility  VisibilityLevel     `json:"visibilityLevel"`
	Impact      ImpactLevel         `json:"impactLevel"`
	Category    string              `json:"category"`
}
