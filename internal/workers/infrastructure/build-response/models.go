// internal/workers/infrastructure/build-response/models.go
package buildresponse

import (
	"encoding/json"

	"saarthi-workers/internal/models"
)

type Input struct {
	Result json.RawMessage `json:"result"`
}

// Output is the response envelope handed back to the process. Status is one
// of "ok", "no_matches", "invalid_profile", or "error".
type Output struct {
	ResponseID string                  `json:"responseId"`
	Timestamp  string                  `json:"timestamp"`
	Status     string                  `json:"status"`
	Result     models.SubmissionResult `json:"result"`
}
