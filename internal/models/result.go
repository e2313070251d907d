// internal/models/result.go
package models

// SubmissionResult is the uniform record every form submission resolves to.
// Exactly one of the failure fields (MissingFields, InvalidFields, Error) is
// populated on the invalid path; the success path carries the summary,
// blindspots, matches, and final insight.
type SubmissionResult struct {
	Valid bool `json:"valid"`

	MissingFields []string `json:"missingFields,omitempty"`
	InvalidFields []string `json:"invalidFields,omitempty"`
	Error         string   `json:"error,omitempty"`

	ProfileSummary string             `json:"profileSummary,omitempty"`
	Blindspots     []Blindspot        `json:"blindspots,omitempty"`
	Matches        []OpportunityMatch `json:"matches,omitempty"`
	FinalInsight   string             `json:"finalInsight,omitempty"`
	NoMatches      bool               `json:"noMatches,omitempty"`
}
