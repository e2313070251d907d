// internal/workers/insight/identify-blindspots/rules.go
package identifyblindspots

import (
	"sort"
	"strings"

	"saarthi-workers/internal/common/errors"
	"saarthi-workers/internal/models"
)

// stemFields marks fields of study that qualify for research-focused rules.
// Matching is a case-insensitive substring check, so "Mechanical Engineering"
// qualifies via both "Engineering" and "Mechanical".
var stemFields = []string{
	"Computer Science", "Engineering", "Mathematics", "Physics",
	"Chemistry", "Biology", "Statistics", "Data Science",
	"Information Technology", "Electronics", "Mechanical",
	"Civil", "Chemical", "Biotechnology",
}

var innovationKeywords = []string{"innovation", "innovate", "innovative", "startup", "entrepreneur"}

// Identify runs the rule set against a profile and its analysis. The primary
// rules fire independently; the fallback rules only fire while fewer than
// three blindspots exist, so the result always carries 3 to 5 entries sorted
// by relevance. Fewer than three after all fallbacks is a bug in the rules.
func Identify(profile *models.StudentProfile, analysis *models.ProfileAnalysis) ([]models.Blindspot, error) {
	var blindspots []models.Blindspot

	hasGoal := func(goal models.OpportunityGoal) bool {
		for _, g := range analysis.PriorityGoals {
			if g == goal {
				return true
			}
		}
		return false
	}

	// Income-based scholarships for students needing financial support.
	if hasFinancialBackground(analysis.EligibilityTags) && hasGoal(models.GoalScholarships) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Income-based Central Government Scholarships",
			Reason:         "Many students don't know about central government scholarships that don't require high merit",
			RelevanceScore: 0.9,
		})
	}

	// Research opportunities for STEM students.
	if isSTEMField(profile.FieldOfStudy) &&
		(profile.EducationLevel == models.EducationUG || profile.EducationLevel == models.EducationPG) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Research Internships and Programs",
			Reason:         "STEM students often focus on placements and miss research opportunities from national platforms",
			RelevanceScore: 0.8,
		})
	}

	// State-level merit scholarships.
	if (profile.InstitutionType == models.InstitutionGovernment || profile.InstitutionType == models.InstitutionAutonomous) &&
		hasGoal(models.GoalScholarships) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "State-level Merit Scholarships",
			Reason:         "State scholarships have poor visibility compared to national programs",
			RelevanceScore: 0.7,
		})
	}

	// Gender/disability-specific programs.
	if hasSpecialCategory(profile.Gender, analysis.EligibilityTags) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Category-specific Technical Scholarships",
			Reason:         "Technical scholarships for specific categories are often under-promoted in colleges",
			RelevanceScore: 0.85,
		})
	}

	// Innovation and skill programs.
	if hasGoal(models.GoalSkills) || mentionsInnovation(profile.AdditionalContext) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Government Innovation and Skill Programs",
			Reason:         "Innovation programs are often buried in government websites with poor outreach",
			RelevanceScore: 0.6,
		})
	}

	// Internship opportunities.
	if hasGoal(models.GoalInternships) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Industry and Government Internships",
			Reason:         "Many internship programs beyond campus placements remain unknown to students",
			RelevanceScore: 0.65,
		})
	}

	// Government exam preparation resources.
	if hasGoal(models.GoalGovtExams) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Government Exam Preparation Resources",
			Reason:         "Free government resources for exam preparation are often overlooked",
			RelevanceScore: 0.55,
		})
	}

	// Research opportunities for non-STEM students.
	if hasGoal(models.GoalResearch) && !isSTEMField(profile.FieldOfStudy) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Interdisciplinary Research Programs",
			Reason:         "Research opportunities exist beyond traditional STEM fields but are rarely promoted",
			RelevanceScore: 0.58,
		})
	}

	// Fallback rules: fire only while the minimum of three is not reached.
	if len(blindspots) < 3 && hasGoal(models.GoalScholarships) {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Merit and Need-based Scholarships",
			Reason:         "Many scholarship programs exist beyond the well-known ones, but lack awareness",
			RelevanceScore: 0.5,
		})
	}
	if len(blindspots) < 3 {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Skill Development and Certification Programs",
			Reason:         "Free skill development programs from government and institutions often go unnoticed",
			RelevanceScore: 0.45,
		})
	}
	if len(blindspots) < 3 {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Academic Enhancement Programs",
			Reason:         "Programs for academic growth beyond regular curriculum are rarely promoted",
			RelevanceScore: 0.4,
		})
	}
	if len(blindspots) < 3 {
		blindspots = append(blindspots, models.Blindspot{
			Category:       "Career Guidance and Mentorship Programs",
			Reason:         "Structured career guidance programs from institutions and government are underutilized",
			RelevanceScore: 0.35,
		})
	}

	sort.SliceStable(blindspots, func(i, j int) bool {
		return blindspots[i].RelevanceScore > blindspots[j].RelevanceScore
	})

	if len(blindspots) < 3 {
		return nil, errors.NewBlindspotFloorViolatedError(len(blindspots))
	}

	if len(blindspots) > 5 {
		blindspots = blindspots[:5]
	}
	return blindspots, nil
}

func hasFinancialBackground(eligibilityTags []string) bool {
	for _, tag := range eligibilityTags {
		if tag == string(models.BackgroundFinancialSupport) {
			return true
		}
	}
	return false
}

func isSTEMField(fieldOfStudy string) bool {
	fieldLower := strings.ToLower(fieldOfStudy)
	for _, stem := range stemFields {
		if strings.Contains(fieldLower, strings.ToLower(stem)) {
			return true
		}
	}
	return false
}

func hasSpecialCategory(gender string, eligibilityTags []string) bool {
	switch strings.ToLower(gender) {
	case "female", "woman", "f":
		return true
	}
	for _, tag := range eligibilityTags {
		if tag == string(models.BackgroundDisabled) {
			return true
		}
	}
	return false
}

func mentionsInnovation(additionalContext string) bool {
	if additionalContext == "" {
		return false
	}
	contextLower := strings.ToLower(additionalContext)
	for _, keyword := range innovationKeywords {
		if strings.Contains(contextLower, keyword) {
			return true
		}
	}
	return false
}
