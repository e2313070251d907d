// internal/workers/infrastructure/build-response/handler_test.go
package buildresponse

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := NewHandler(LoadConfig(), logger.NewNoOpLogger())
	require.NoError(t, err)
	return h
}

func resultInput(t *testing.T, result models.SubmissionResult) *Input {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	return &Input{Result: raw}
}

func TestExecute_ValidResult(t *testing.T) {
	h := newTestHandler(t)

	result := models.SubmissionResult{
		Valid:          true,
		ProfileSummary: "Hi Priya! I've understood your profile:\n",
		Blindspots: []models.Blindspot{
			{Category: "Government Scholarships", Reason: "Low income background", RelevanceScore: 0.8},
		},
		Matches: []models.OpportunityMatch{
			{
				Opportunity:     catalog.Builtin()[0],
				FitExplanation:  "You qualify based on your income background.",
				MissReason:      "Central government schemes are rarely promoted at institute level",
				MissProbability: models.MissHigh,
				RelevanceScore:  0.62,
			},
		},
		FinalInsight: "Awareness is the first step to opportunity.",
	}

	output, err := h.Execute(context.Background(), resultInput(t, result))
	require.NoError(t, err)

	assert.Equal(t, "ok", output.Status)
	assert.Equal(t, result, output.Result)
	assert.NotEmpty(t, output.Timestamp)
	_, err = uuid.Parse(output.ResponseID)
	assert.NoError(t, err)
}

func TestExecute_StatusReflectsOutcome(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name   string
		result models.SubmissionResult
		status string
	}{
		{
			name:   "invalid profile",
			result: models.SubmissionResult{Valid: false, MissingFields: []string{"name"}},
			status: "invalid_profile",
		},
		{
			name:   "internal error",
			result: models.SubmissionResult{Valid: false, Error: "something broke"},
			status: "error",
		},
		{
			name:   "no matches",
			result: models.SubmissionResult{Valid: true, NoMatches: true},
			status: "no_matches",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), resultInput(t, tc.result))
			require.NoError(t, err)
			assert.Equal(t, tc.status, output.Status)
		})
	}
}

func TestExecute_SchemaViolation(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name string
		raw  string
	}{
		{"missing valid flag", `{"profileSummary": "hi"}`},
		{"score out of range", `{"valid": true, "blindspots": [{"category": "x", "reason": "y", "relevanceScore": 1.5}]}`},
		{"bad miss probability", `{"valid": true, "matches": [{"opportunity": {"id": "a", "name": "b"}, "relevanceScore": 0.5, "missProbability": "Certain"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), &Input{Result: json.RawMessage(tc.raw)})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSchemaViolation)
		})
	}
}

func TestExecute_EmptyPayload(t *testing.T) {
	h := newTestHandler(t)

	_, err := h.Execute(context.Background(), &Input{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaViolation)
}
