package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/models"
)

func TestBuiltin_ContainsExpectedOpportunities(t *testing.T) {
	opportunities := Builtin()
	require.Len(t, opportunities, 6)

	ids := make([]string, 0, len(opportunities))
	for _, opp := range opportunities {
		ids = append(ids, opp.ID)
	}

	assert.Contains(t, ids, "central-sector-scholarship")
	assert.Contains(t, ids, "aicte-pragati")
	assert.Contains(t, ids, "aicte-saksham")
	assert.Contains(t, ids, "nptel-research-internship")
	assert.Contains(t, ids, "state-govt-merit-scholarship")
	assert.Contains(t, ids, "moe-innovation-programs")
}

func TestBuiltin_EligibilityShape(t *testing.T) {
	c := New(Builtin())

	pragati, ok := c.ByID("aicte-pragati")
	require.True(t, ok)
	assert.Equal(t, []models.EducationLevel{models.EducationUG}, pragati.Eligibility.EducationLevels)
	assert.Equal(t, []string{"Engineering"}, pragati.Eligibility.FieldsOfStudy)
	assert.Nil(t, pragati.Eligibility.BackgroundRequirements)

	saksham, ok := c.ByID("aicte-saksham")
	require.True(t, ok)
	assert.Equal(t, []models.BackgroundIndicator{models.BackgroundDisabled}, saksham.Eligibility.BackgroundRequirements)

	central, ok := c.ByID("central-sector-scholarship")
	require.True(t, ok)
	assert.True(t, central.Eligibility.IncomeBased)
	assert.Nil(t, central.Eligibility.FieldsOfStudy, "unconstrained field must stay nil")

	merit, ok := c.ByID("state-govt-merit-scholarship")
	require.True(t, ok)
	assert.True(t, merit.Eligibility.MeritBased)
	assert.Len(t, merit.Eligibility.EducationLevels, 4)
}

func TestCatalog_ByID_Unknown(t *testing.T) {
	c := New(Builtin())

	_, ok := c.ByID("no-such-opportunity")
	assert.False(t, ok)
}

func TestCatalog_ByCategory(t *testing.T) {
	c := New(Builtin())

	scholarships := c.ByCategory("Scholarship")
	assert.Len(t, scholarships, 4)

	internships := c.ByCategory("Internship")
	require.Len(t, internships, 1)
	assert.Equal(t, "nptel-research-internship", internships[0].ID)

	assert.Empty(t, c.ByCategory("Fellowship"))
}

func TestCatalog_ByEducationLevel(t *testing.T) {
	c := New(Builtin())

	ug := c.ByEducationLevel(models.EducationUG)
	assert.Len(t, ug, 6, "every built-in opportunity admits UG students")

	phd := c.ByEducationLevel(models.EducationPhD)
	require.Len(t, phd, 2)
	for _, opp := range phd {
		assert.Contains(t, []string{"state-govt-merit-scholarship", "moe-innovation-programs"}, opp.ID)
	}
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := New(Builtin())

	all := c.All()
	require.Len(t, all, 6)
	all[0].Name = "mutated"

	fresh, ok := c.ByID(all[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated", fresh.Name)
}
