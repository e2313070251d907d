// internal/workers/profile/validate-profile/models.go
package validateprofile

import "saarthi-workers/internal/models"

type Input struct {
	Profile models.StudentProfile `json:"profile"`
}

// Output reports validation as data so the workflow can branch on it.
// InvalidFields and MissingFields are never both set: value checks run
// first and short-circuit the presence checks.
type Output struct {
	Valid         bool     `json:"valid"`
	InvalidFields []string `json:"invalidFields,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
}
