// internal/workers/profile/analyze-profile/handler_test.go
package analyzeprofile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

func testProfile() models.StudentProfile {
	return models.StudentProfile{
		Name:            "Priya Sharma",
		Age:             20,
		EducationLevel:  models.EducationUG,
		Degree:          "B.Tech",
		FieldOfStudy:    "Computer Science",
		YearOfStudy:     2,
		InstitutionType: models.InstitutionGovernment,
		BackgroundIndicators: []models.BackgroundIndicator{
			models.BackgroundRural,
			models.BackgroundFinancialSupport,
		},
		OpportunityGoals: []models.OpportunityGoal{models.GoalScholarships, models.GoalInternships},
		MissedBefore:     models.MissedManyTimes,
	}
}

func TestAnalyze_Characteristics(t *testing.T) {
	profile := testProfile()
	analysis := Analyze(&profile)

	assert.Equal(t, []string{
		"UG",
		"Computer Science",
		"Government",
		"Rural",
		"Financial support",
	}, analysis.KeyCharacteristics)
}

func TestAnalyze_EligibilityTagsMirrorBackground(t *testing.T) {
	profile := testProfile()
	analysis := Analyze(&profile)

	assert.Equal(t, []string{"Rural", "Financial support"}, analysis.EligibilityTags)

	profile.BackgroundIndicators = nil
	analysis = Analyze(&profile)
	assert.Empty(t, analysis.EligibilityTags)
}

func TestAnalyze_PriorityGoalsPreserved(t *testing.T) {
	profile := testProfile()
	analysis := Analyze(&profile)

	assert.Equal(t, profile.OpportunityGoals, analysis.PriorityGoals)
}

func TestMapAwarenessLevel(t *testing.T) {
	tests := []struct {
		missed   models.MissedFrequency
		expected models.AwarenessLevel
	}{
		{models.MissedManyTimes, models.AwarenessLow},
		{models.MissedOnceOrTwice, models.AwarenessMedium},
		{models.MissedNever, models.AwarenessHigh},
	}

	for _, tt := range tests {
		t.Run(string(tt.missed), func(t *testing.T) {
			assert.Equal(t, tt.expected, MapAwarenessLevel(tt.missed))
		})
	}
}

func TestExecute(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewNoOpLogger())

	output, err := h.Execute(context.Background(), &Input{Profile: testProfile()})
	require.NoError(t, err)

	assert.Equal(t, models.AwarenessLow, output.Analysis.AwarenessLevel)
	assert.Len(t, output.Analysis.KeyCharacteristics, 5)
}
