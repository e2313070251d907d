// internal/workers/recommendation/match-opportunities/models.go
package matchopportunities

import "saarthi-workers/internal/models"

type Input struct {
	Profile    models.StudentProfile  `json:"profile"`
	Analysis   models.ProfileAnalysis `json:"analysis"`
	Blindspots []models.Blindspot     `json:"blindspots"`
}

type Output struct {
	Matches   []models.OpportunityMatch `json:"matches"`
	NoMatches bool                      `json:"noMatches"`
}
