// internal/workers/recommendation/process-submission/models.go
package processsubmission

import "saarthi-workers/internal/models"

type Input struct {
	Profile models.StudentProfile `json:"profile"`
}

type Output struct {
	Result models.SubmissionResult `json:"result"`
}
