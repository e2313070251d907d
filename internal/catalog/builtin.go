// internal/catalog/builtin.go
package catalog

import "saarthi-workers/internal/models"

// Builtin returns the opportunities shipped with the binary. This is the
// default catalog source and the fallback when the database is unreachable.
func Builtin() []models.Opportunity {
	return []models.Opportunity{
		{
			ID:          "central-sector-scholarship",
			Name:        "Central Sector Scholarship",
			Description: "Central government scholarship for undergraduate students from families with income below threshold",
			Eligibility: models.EligibilityCriteria{
				EducationLevels: []models.EducationLevel{models.EducationUG},
				IncomeBased:     true,
			},
			Visibility: models.VisibilityMedium,
			Impact:     models.ImpactHigh,
			Category:   "Scholarship",
		},
		{
			ID:          "aicte-pragati",
			Name:        "AICTE Pragati",
			Description: "AICTE scholarship for female engineering students",
			Eligibility: models.EligibilityCriteria{
				EducationLevels: []models.EducationLevel{models.EducationUG},
				FieldsOfStudy:   []string{"Engineering"},
			},
			Visibility: models.VisibilityLow,
			Impact:     models.ImpactHigh,
			Category:   "Scholarship",
		},
		{
			ID:          "aicte-saksham",
			Name:        "AICTE Saksham",
			Description: "AICTE scholarship for disabled engineering students",
			Eligibility: models.EligibilityCriteria{
				EducationLevels:        []models.EducationLevel{models.EducationUG},
				FieldsOfStudy:          []string{"Engineering"},
				BackgroundRequirements: []models.BackgroundIndicator{models.BackgroundDisabled},
			},
			Visibility: models.VisibilityLow,
			Impact:     models.ImpactHigh,
			Category:   "Scholarship",
		},
		{
			ID:          "nptel-research-internship",
			Name:        "NPTEL Research Internship",
			Description: "Research internship program for STEM students",
			Eligibility: models.EligibilityCriteria{
				EducationLevels: []models.EducationLevel{models.EducationUG, models.EducationPG},
				FieldsOfStudy:   []string{"Engineering", "Science", "Mathematics", "Computer Science"},
			},
			Visibility: models.VisibilityMedium,
			Impact:     models.ImpactMedium,
			Category:   "Internship",
		},
		{
			ID:          "state-govt-merit-scholarship",
			Name:        "State Government Merit Scholarships",
			Description: "Merit-based scholarships offered by state governments",
			Eligibility: models.EligibilityCriteria{
				EducationLevels: []models.EducationLevel{
					models.EducationDiploma,
					models.EducationUG,
					models.EducationPG,
					models.EducationPhD,
				},
				MeritBased: true,
			},
			Visibility: models.VisibilityLow,
			Impact:     models.ImpactMedium,
			Category:   "Scholarship",
		},
		{
			ID:          "moe-innovation-programs",
			Name:        "Ministry of Education Innovation Programs",
			Description: "Innovation and skill development programs by Ministry of Education",
			Eligibility: models.EligibilityCriteria{
				EducationLevels: []models.EducationLevel{
					models.EducationDiploma,
					models.EducationUG,
					models.EducationPG,
					models.EducationPhD,
				},
			},
			Visibility: models.VisibilityLow,
			Impact:     models.ImpactMedium,
			Category:   "Program",
		},
	}
}
