// internal/workers/insight/generate-explanations/templates_test.go
package generateexplanations

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

func sampleProfile() models.StudentProfile {
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

func TestProfileSummary(t *testing.T) {
	summary := ProfileSummary(func() *models.StudentProfile { p := sampleProfile(); return &p }())

	assert.True(t, strings.HasPrefix(summary, "Hi Priya Sharma! I've understood your profile:\n\n"))
	assert.Contains(t, summary, "• You're a 2-year UG student\n")
	assert.Contains(t, summary, "• Studying B.Tech in Computer Science\n")
	assert.Contains(t, summary, "• At a Government institution\n")
	assert.Contains(t, summary, "• Background: Rural, Financial support\n")
	assert.Contains(t, summary, "• Looking for: Scholarships, Internships\n")
}

func TestProfileSummary_NoBackgroundLineWhenEmpty(t *testing.T) {
	profile := sampleProfile()
	profile.BackgroundIndicators = nil

	summary := ProfileSummary(&profile)
	assert.NotContains(t, summary, "• Background:")
	assert.Contains(t, summary, "• Looking for:")
}

func TestFinalInsight_ThemeSelection(t *testing.T) {
	profile := sampleProfile()

	scholarship := FinalInsight(&profile, []models.Blindspot{
		{Category: "State-level Merit Scholarships", RelevanceScore: 0.7},
	})
	assert.Contains(t, scholarship, "several scholarship opportunities that match your background")

	research := FinalInsight(&profile, []models.Blindspot{
		{Category: "Research Internships and Programs", RelevanceScore: 0.8},
	})
	assert.Contains(t, research, "research, internships, and programs beyond the classroom")

	generic := FinalInsight(&profile, []models.Blindspot{
		{Category: "Career Guidance and Mentorship Programs", RelevanceScore: 0.35},
	})
	assert.Contains(t, generic, "valuable opportunities that align with your goals and background")
}

func TestFinalInsight_SuggestionTracksMissedFrequency(t *testing.T) {
	blindspots := []models.Blindspot{{Category: "State-level Merit Scholarships", RelevanceScore: 0.7}}

	profile := sampleProfile()
	profile.MissedBefore = models.MissedManyTimes
	assert.Contains(t, FinalInsight(&profile, blindspots), "setting up alerts for similar programs")

	profile.MissedBefore = models.MissedOnceOrTwice
	assert.Contains(t, FinalInsight(&profile, blindspots), "you're already eligible!")

	profile.MissedBefore = models.MissedNever
	assert.Contains(t, FinalInsight(&profile, blindspots), "you're already qualified!")
}

func TestFinalInsight_AlwaysEndsWithClosingLine(t *testing.T) {
	profile := sampleProfile()
	insight := FinalInsight(&profile, nil)
	assert.True(t, strings.HasSuffix(insight, "Awareness is the first step to opportunity."))
	assert.Contains(t, insight, "The main barrier isn't your eligibility")
}

func TestNoMatchesInsight(t *testing.T) {
	profile := sampleProfile()
	insight := NoMatchesInsight(&profile)

	assert.True(t, strings.HasPrefix(insight, "Hi Priya Sharma, based on your current profile"))
	assert.Contains(t, insight, "our current database is limited")
	assert.Contains(t, insight, "explore the blindspot categories we identified")
}

func TestFallbackBlindspots(t *testing.T) {
	fallback := FallbackBlindspots()
	require.Len(t, fallback, 3)
	assert.Equal(t, "Government Scholarships", fallback[0].Category)
	assert.Equal(t, 0.8, fallback[0].RelevanceScore)
}

func TestExecute_SelectsInsightByMatchCount(t *testing.T) {
	h := NewHandler(LoadConfig(), logger.NewNoOpLogger())
	profile := sampleProfile()
	blindspots := []models.Blindspot{{Category: "State-level Merit Scholarships", RelevanceScore: 0.7}}

	withMatches, err := h.Execute(context.Background(), &Input{
		Profile:    profile,
		Blindspots: blindspots,
		Matches:    []models.OpportunityMatch{{}},
	})
	require.NoError(t, err)
	assert.Contains(t, withMatches.FinalInsight, "several scholarship opportunities")

	noMatches, err := h.Execute(context.Background(), &Input{
		Profile:    profile,
		Blindspots: blindspots,
	})
	require.NoError(t, err)
	assert.Contains(t, noMatches.FinalInsight, "don't have specific opportunities")
	assert.NotEmpty(t, noMatches.ProfileSummary)
}
