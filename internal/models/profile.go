// internal/models/profile.go
package models

import "strings"

// RequiredProfileFields lists every field name that can appear in a
// missing-fields report, in form order.
var RequiredProfileFields = []string{
	"name",
	"age",
	"education_level",
	"degree",
	"field_of_study",
	"year_of_study",
	"institution_type",
	"background_indicators",
	"opportunity_goals",
	"missed_opportunities_before",
}

// StudentProfile is the self-reported form submission. It is validated once
// at the submission boundary and treated as immutable afterwards.
type StudentProfile struct {
	Name                 string                `json:"name"`
	Age                  int                   `json:"age"`
	EducationLevel       EducationLevel        `json:"education_level"`
	Degree               string                `json:"degree"`
	FieldOfStudy         string                `json:"field_of_study"`
	YearOfStudy          int                   `json:"year_of_study"`
	InstitutionType      InstitutionType       `json:"institution_type"`
	BackgroundIndicators []BackgroundIndicator `json:"background_indicators"`
	OpportunityGoals     []OpportunityGoal     `json:"opportunity_goals"`
	MissedBefore         MissedFrequency       `json:"missed_opportunities_before"`

	// Optional fields
	Gender            string `json:"gender,omitempty"`
	AdditionalContext string `json:"additional_context,omitempty"`
}

// Validate checks every required field for presence. Background indicators
// are optional; students may not have any special background. Violations are
// returned as data, never as an error.
func (p *StudentProfile) Validate() (bool, []string) {
	var missing []string

	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if p.Age <= 0 {
		missing = append(missing, "age")
	}
	if p.EducationLevel == "" {
		missing = append(missing, "education_level")
	}
	if strings.TrimSpace(p.Degree) == "" {
		missing = append(missing, "degree")
	}
	if strings.TrimSpace(p.FieldOfStudy) == "" {
		missing = append(missing, "field_of_study")
	}
	if p.YearOfStudy <= 0 {
		missing = append(missing, "year_of_study")
	}
	if p.InstitutionType == "" {
		missing = append(missing, "institution_type")
	}
	if len(p.OpportunityGoals) == 0 {
		missing = append(missing, "opportunity_goals")
	}
	if p.MissedBefore == "" {
		missing = append(missing, "missed_opportunities_before")
	}

	return len(missing) == 0, missing
}

// HasBackground reports whether the profile carries the given indicator.
func (p *StudentProfile) HasBackground(indicator BackgroundIndicator) bool {
	for _, b := range p.BackgroundIndicators {
		if b == indicator {
			return true
		}
	}
	return false
}

// HasGoal reports whether the profile lists the given opportunity goal.
func (p *StudentProfile) HasGoal(goal OpportunityGoal) bool {
	for _, g := range p.OpportunityGoals {
		if g == goal {
			return true
		}
	}
	return false
}
