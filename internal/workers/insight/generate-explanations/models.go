// internal/workers/insight/generate-explanations/models.go
package generateexplanations

import "saarthi-workers/internal/models"

type Input struct {
	Profile    models.StudentProfile     `json:"profile"`
	Blindspots []models.Blindspot        `json:"blindspots"`
	Matches    []models.OpportunityMatch `json:"matches"`
}

type Output struct {
	ProfileSummary string `json:"profileSummary"`
	FinalInsight   string `json:"finalInsight"`
}
