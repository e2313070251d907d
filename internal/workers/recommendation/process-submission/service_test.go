// internal/workers/recommendation/process-submission/service_test.go
package processsubmission

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

func validProfile() models.StudentProfile {
	return models.StudentProfile{
		Name:            "Priya Sharma",
		Age:             20,
		EducationLevel:  models.EducationUG,
		Degree:          "B.Tech",
		FieldOfStudy:    "Engineering",
		YearOfStudy:     2,
		InstitutionType: models.InstitutionGovernment,
		BackgroundIndicators: []models.BackgroundIndicator{
			models.BackgroundRural,
			models.BackgroundFinancialSupport,
		},
		OpportunityGoals: []models.OpportunityGoal{models.GoalScholarships},
		MissedBefore:     models.MissedManyTimes,
	}
}

func newService() *Service {
	return NewService(catalog.New(catalog.Builtin()), logger.NewNoOpLogger())
}

func TestProcess_ValidSubmission(t *testing.T) {
	s := newService()
	profile := validProfile()

	result := s.Process(context.Background(), &profile)

	require.True(t, result.Valid)
	assert.Empty(t, result.Error)
	assert.False(t, result.NoMatches)

	assert.Contains(t, result.ProfileSummary, "Hi Priya Sharma!")
	assert.GreaterOrEqual(t, len(result.Blindspots), 3)
	assert.LessOrEqual(t, len(result.Blindspots), 5)
	require.NotEmpty(t, result.Matches)
	assert.LessOrEqual(t, len(result.Matches), 3)
	assert.True(t, strings.HasSuffix(result.FinalInsight, "Awareness is the first step to opportunity."))

	for _, m := range result.Matches {
		assert.NotEmpty(t, m.Opportunity.ID)
		assert.NotEmpty(t, m.FitExplanation)
		assert.NotEmpty(t, m.MissReason)
		assert.NotEmpty(t, m.MissProbability)
	}
}

func TestProcess_InvalidValuesShortCircuitMissingFields(t *testing.T) {
	s := newService()
	profile := validProfile()
	profile.Name = ""
	profile.Age = -3

	result := s.Process(context.Background(), &profile)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"age (must be positive)"}, result.InvalidFields)
	assert.Empty(t, result.MissingFields)
	assert.Empty(t, result.Blindspots)
}

func TestProcess_MissingFields(t *testing.T) {
	s := newService()
	profile := validProfile()
	profile.Degree = ""
	profile.MissedBefore = ""

	result := s.Process(context.Background(), &profile)

	assert.False(t, result.Valid)
	assert.Equal(t, []string{"degree", "missed_opportunities_before"}, result.MissingFields)
	assert.Empty(t, result.ProfileSummary)
}

func TestProcess_EmptyCatalog(t *testing.T) {
	s := NewService(catalog.New(nil), logger.NewNoOpLogger())
	profile := validProfile()

	result := s.Process(context.Background(), &profile)

	assert.False(t, result.Valid)
	assert.Equal(t, catalogUnavailableMessage, result.Error)
}

func TestProcess_NoMatchesBranch(t *testing.T) {
	// A catalog whose only entry the profile cannot reach: blindspots still
	// come back, matches are empty, and the insight switches.
	only := catalog.New([]models.Opportunity{{
		ID:          "pg-only-fellowship",
		Name:        "PG Fellowship",
		Description: "placeholder",
		Eligibility: models.EligibilityCriteria{
			EducationLevels: []models.EducationLevel{models.EducationPG},
		},
		Visibility: models.VisibilityLow,
		Impact:     models.ImpactHigh,
		Category:   "Scholarship",
	}})

	s := NewService(only, logger.NewNoOpLogger())
	profile := validProfile()

	result := s.Process(context.Background(), &profile)

	require.True(t, result.Valid)
	assert.True(t, result.NoMatches)
	assert.NotNil(t, result.Matches)
	assert.Empty(t, result.Matches)
	assert.GreaterOrEqual(t, len(result.Blindspots), 3)
	assert.Contains(t, result.FinalInsight, "don't have specific opportunities")
}

func TestProcess_DiplomaStudentGetsReducedMatches(t *testing.T) {
	s := newService()
	profile := validProfile()
	profile.EducationLevel = models.EducationDiploma

	result := s.Process(context.Background(), &profile)

	require.True(t, result.Valid)
	// Only the merit scholarship and the innovation programs admit Diploma
	// students.
	assert.Len(t, result.Matches, 2)
	assert.False(t, result.NoMatches)
}

func TestExecute_WrapsResult(t *testing.T) {
	h := NewHandler(LoadConfig(), catalog.New(catalog.Builtin()), logger.NewNoOpLogger())
	profile := validProfile()

	output, err := h.Execute(context.Background(), &Input{Profile: profile})
	require.NoError(t, err)
	assert.True(t, output.Result.Valid)
}
