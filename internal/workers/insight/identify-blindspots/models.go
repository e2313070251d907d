// internal/workers/insight/identify-blindspots/models.go
package identifyblindspots

import "saarthi-workers/internal/models"

type Input struct {
	Profile  models.StudentProfile  `json:"profile"`
	Analysis models.ProfileAnalysis `json:"analysis"`
}

type Output struct {
	Blindspots []models.Blindspot `json:"blindspots"`
}
