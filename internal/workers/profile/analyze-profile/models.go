// internal/workers/profile/analyze-profile/models.go
package analyzeprofile

import "saarthi-workers/internal/models"

type Input struct {
	Profile models.StudentProfile `json:"profile"`
}

type Output struct {
	Analysis models.ProfileAnalysis `json:"analysis"`
}
