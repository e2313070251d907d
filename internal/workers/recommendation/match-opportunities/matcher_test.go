// internal/workers/recommendation/match-opportunities/matcher_test.go
package matchopportunities

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

func engineeringProfile() models.StudentProfile {
	return models.StudentProfile{
		Name:            "Priya Sharma",
		Age:             20,
		EducationLevel:  models.EducationUG,
		Degree:          "B.Tech",
		FieldOfStudy:    "Engineering",
		YearOfStudy:     2,
		InstitutionType: models.InstitutionGovernment,
		BackgroundIndicators: []models.BackgroundIndicator{
			models.BackgroundFinancialSupport,
		},
		OpportunityGoals: []models.OpportunityGoal{models.GoalScholarships},
		MissedBefore:     models.MissedManyTimes,
	}
}

func analysisFor(profile models.StudentProfile, awareness models.AwarenessLevel) models.ProfileAnalysis {
	tags := make([]string, 0, len(profile.BackgroundIndicators))
	for _, bg := range profile.BackgroundIndicators {
		tags = append(tags, string(bg))
	}
	return models.ProfileAnalysis{
		EligibilityTags: tags,
		AwarenessLevel:  awareness,
		PriorityGoals:   profile.OpportunityGoals,
	}
}

func scholarshipBlindspots() []models.Blindspot {
	return []models.Blindspot{
		{Category: "Income-based Central Government Scholarships", Reason: "r", RelevanceScore: 0.9},
		{Category: "State-level Merit Scholarships", Reason: "r", RelevanceScore: 0.7},
		{Category: "Research Internships and Programs", Reason: "r", RelevanceScore: 0.8},
	}
}

func TestIsEligible(t *testing.T) {
	c := catalog.New(catalog.Builtin())
	profile := engineeringProfile()

	central, _ := c.ByID("central-sector-scholarship")
	assert.True(t, IsEligible(&profile, &central.Eligibility))

	// AICTE Saksham requires a Disabled background.
	saksham, _ := c.ByID("aicte-saksham")
	assert.False(t, IsEligible(&profile, &saksham.Eligibility))

	profile.BackgroundIndicators = append(profile.BackgroundIndicators, models.BackgroundDisabled)
	assert.True(t, IsEligible(&profile, &saksham.Eligibility))

	// Field constraint is an exact match against the criteria list.
	nptel, _ := c.ByID("nptel-research-internship")
	assert.True(t, IsEligible(&profile, &nptel.Eligibility))
	profile.FieldOfStudy = "History"
	assert.False(t, IsEligible(&profile, &nptel.Eligibility))
}

func TestIsEligible_EducationLevelGate(t *testing.T) {
	c := catalog.New(catalog.Builtin())
	profile := engineeringProfile()
	profile.EducationLevel = models.EducationDiploma

	central, _ := c.ByID("central-sector-scholarship")
	assert.False(t, IsEligible(&profile, &central.Eligibility))

	merit, _ := c.ByID("state-govt-merit-scholarship")
	assert.True(t, IsEligible(&profile, &merit.Eligibility))
}

func TestMissProbabilityFor(t *testing.T) {
	tests := []struct {
		visibility models.VisibilityLevel
		awareness  models.AwarenessLevel
		expected   models.MissProbability
	}{
		{models.VisibilityLow, models.AwarenessHigh, models.MissHigh},
		{models.VisibilityLow, models.AwarenessLow, models.MissHigh},
		{models.VisibilityMedium, models.AwarenessLow, models.MissHigh},
		{models.VisibilityMedium, models.AwarenessMedium, models.MissMedium},
		{models.VisibilityMedium, models.AwarenessHigh, models.MissLow},
		{models.VisibilityHigh, models.AwarenessLow, models.MissMedium},
		{models.VisibilityHigh, models.AwarenessMedium, models.MissLow},
		{models.VisibilityHigh, models.AwarenessHigh, models.MissLow},
	}

	for _, tt := range tests {
		got := MissProbabilityFor(tt.visibility, tt.awareness)
		assert.Equal(t, tt.expected, got, "visibility=%s awareness=%s", tt.visibility, tt.awareness)
	}
}

func TestMatch_ReturnsTopThreeSortedByRelevance(t *testing.T) {
	profile := engineeringProfile()
	analysis := analysisFor(profile, models.AwarenessLow)

	matches := Match(&profile, &analysis, scholarshipBlindspots(), catalog.Builtin())

	require.Len(t, matches, 3)
	assert.True(t, sort.SliceIsSorted(matches, func(i, j int) bool {
		return matches[i].RelevanceScore > matches[j].RelevanceScore
	}))

	for _, m := range matches {
		assert.NotEmpty(t, m.FitExplanation)
		assert.NotEmpty(t, m.MissReason)
		assert.NotEmpty(t, m.MissProbability)
		assert.Greater(t, m.RelevanceScore, 0.0)
		assert.LessOrEqual(t, m.RelevanceScore, 1.0)
	}
}

func TestMatch_FewerThanTwoEligibleReturnsAll(t *testing.T) {
	// Only the merit scholarship and the innovation programs admit Diploma
	// students, so restricting the pool to one leaves a single match.
	c := catalog.New(catalog.Builtin())
	merit, _ := c.ByID("state-govt-merit-scholarship")

	profile := engineeringProfile()
	profile.EducationLevel = models.EducationDiploma
	analysis := analysisFor(profile, models.AwarenessMedium)

	matches := Match(&profile, &analysis, scholarshipBlindspots(), []models.Opportunity{merit})
	require.Len(t, matches, 1)
	assert.Equal(t, "state-govt-merit-scholarship", matches[0].Opportunity.ID)
}

func TestMatch_NoEligibleOpportunities(t *testing.T) {
	profile := engineeringProfile()
	profile.EducationLevel = models.EducationDiploma
	profile.FieldOfStudy = "History"
	analysis := analysisFor(profile, models.AwarenessHigh)

	// Restrict to UG-only opportunities.
	c := catalog.New(catalog.Builtin())
	central, _ := c.ByID("central-sector-scholarship")
	pragati, _ := c.ByID("aicte-pragati")

	matches := Match(&profile, &analysis, scholarshipBlindspots(), []models.Opportunity{central, pragati})
	assert.Empty(t, matches)
}

func TestBlindspotAlignment_FloorAndDirectMatch(t *testing.T) {
	c := catalog.New(catalog.Builtin())
	central, _ := c.ByID("central-sector-scholarship")

	// No blindspots at all: the floor keeps the opportunity in play.
	assert.Equal(t, 0.3, blindspotAlignment(&central, nil))

	// "central" + "income-based" pairing takes the full relevance score.
	aligned := blindspotAlignment(&central, []models.Blindspot{
		{Category: "Income-based Central Government Scholarships", RelevanceScore: 0.9},
	})
	assert.InDelta(t, 0.9, aligned, 1e-9)
}

func TestBlindspotAlignment_DampedPairings(t *testing.T) {
	c := catalog.New(catalog.Builtin())

	nptel, _ := c.ByID("nptel-research-internship")
	aligned := blindspotAlignment(&nptel, []models.Blindspot{
		{Category: "Research Internships and Programs", RelevanceScore: 0.8},
	})
	// "nptel"+"research" pairing gives the undamped 0.8, beating the 0.72
	// research->internship damping.
	assert.InDelta(t, 0.8, aligned, 1e-9)

	moe, _ := c.ByID("moe-innovation-programs")
	aligned = blindspotAlignment(&moe, []models.Blindspot{
		{Category: "Skill Development and Certification Programs", RelevanceScore: 0.45},
	})
	// "program" category substring match wins over the 0.7-damped skill rule.
	assert.InDelta(t, 0.45, aligned, 1e-9)
}

func TestRelevanceScore_GoalBonusAndCap(t *testing.T) {
	c := catalog.New(catalog.Builtin())
	central, _ := c.ByID("central-sector-scholarship")

	withGoal := models.ProfileAnalysis{PriorityGoals: []models.OpportunityGoal{models.GoalScholarships}}
	withoutGoal := models.ProfileAnalysis{PriorityGoals: []models.OpportunityGoal{models.GoalResearch}}

	scoreWith := relevanceScore(&withGoal, &central, 0.9)
	scoreWithout := relevanceScore(&withoutGoal, &central, 0.9)
	assert.InDelta(t, 0.1, scoreWith-scoreWithout, 1e-9)

	assert.LessOrEqual(t, relevanceScore(&withGoal, &central, 1.0), 1.0)
}

func TestFitExplanation_JoinRules(t *testing.T) {
	c := catalog.New(catalog.Builtin())
	profile := engineeringProfile()

	// Single clause ends with a period and no comma.
	moe, _ := c.ByID("moe-innovation-programs")
	single := fitExplanation(&profile, &moe)
	assert.Equal(t, "You're a UG student, which matches the eligibility.", single)

	// Two clauses are joined with ", and ".
	pragati, _ := c.ByID("aicte-pragati")
	double := fitExplanation(&profile, &pragati)
	assert.Contains(t, double, ", and your Engineering background aligns")
	assert.True(t, strings.HasSuffix(double, "."))

	// Background-requirement clause names the matching indicators.
	profile.BackgroundIndicators = append(profile.BackgroundIndicators, models.BackgroundDisabled)
	saksham, _ := c.ByID("aicte-saksham")
	triple := fitExplanation(&profile, &saksham)
	assert.Contains(t, triple, "your background (Disabled) makes you eligible")
}

func TestMissReason_NamePatterns(t *testing.T) {
	c := catalog.New(catalog.Builtin())

	nptel, _ := c.ByID("nptel-research-internship")
	reason := missReason(&nptel, models.AwarenessHigh)
	assert.Contains(t, reason, "NPTEL only as a course platform")
	assert.Contains(t, reason, "not widely advertised beyond official government portals")

	central, _ := c.ByID("central-sector-scholarship")
	reason = missReason(&central, models.AwarenessLow)
	assert.Contains(t, reason, "high merit for central scholarships")
	assert.Contains(t, reason, "limited opportunity awareness")

	pragati, _ := c.ByID("aicte-pragati")
	reason = missReason(&pragati, models.AwarenessHigh)
	assert.Contains(t, reason, "AICTE programs are often buried")
	assert.Contains(t, reason, "very low visibility")
}

func TestExecute_EmptyCatalogFails(t *testing.T) {
	h := NewHandler(LoadConfig(), catalog.New(nil), logger.NewNoOpLogger())

	profile := engineeringProfile()
	_, err := h.Execute(context.Background(), &Input{
		Profile:  profile,
		Analysis: analysisFor(profile, models.AwarenessLow),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog is empty")
}

func TestExecute_SetsNoMatchesFlag(t *testing.T) {
	h := NewHandler(LoadConfig(), catalog.New(catalog.Builtin()), logger.NewNoOpLogger())

	profile := engineeringProfile()
	analysis := analysisFor(profile, models.AwarenessLow)

	output, err := h.Execute(context.Background(), &Input{
		Profile:    profile,
		Analysis:   analysis,
		Blindspots: scholarshipBlindspots(),
	})
	require.NoError(t, err)
	assert.False(t, output.NoMatches)
	assert.Len(t, output.Matches, 3)
}
