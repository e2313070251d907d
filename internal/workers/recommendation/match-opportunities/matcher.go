// internal/workers/recommendation/match-opportunities/matcher.go
package matchopportunities

import (
	"fmt"
	"sort"
	"strings"

	"saarthi-workers/internal/models"
)

// Match scores every eligible opportunity and returns the top results.
// With two or more eligible opportunities the top three are returned; with
// fewer, everything eligible is returned as-is. Very narrow profiles
// (e.g. Diploma students) legitimately produce zero or one match.
func Match(
	profile *models.StudentProfile,
	analysis *models.ProfileAnalysis,
	blindspots []models.Blindspot,
	opportunities []models.Opportunity,
) []models.OpportunityMatch {
	var eligible []models.OpportunityMatch

	for _, opportunity := range opportunities {
		if !IsEligible(profile, &opportunity.Eligibility) {
			continue
		}

		alignment := blindspotAlignment(&opportunity, blindspots)
		relevance := relevanceScore(analysis, &opportunity, alignment)

		eligible = append(eligible, models.OpportunityMatch{
			Opportunity:     opportunity,
			FitExplanation:  fitExplanation(profile, &opportunity),
			MissReason:      missReason(&opportunity, analysis.AwarenessLevel),
			MissProbability: MissProbabilityFor(opportunity.Visibility, analysis.AwarenessLevel),
			RelevanceScore:  relevance,
		})
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].RelevanceScore > eligible[j].RelevanceScore
	})

	if len(eligible) < 2 {
		return eligible
	}
	if len(eligible) > 3 {
		eligible = eligible[:3]
	}
	return eligible
}

// IsEligible checks a profile against eligibility criteria. A nil slice
// criterion is unconstrained; background requirements are satisfied by any
// single overlapping indicator.
func IsEligible(profile *models.StudentProfile, criteria *models.EligibilityCriteria) bool {
	levelOK := false
	for _, level := range criteria.EducationLevels {
		if profile.EducationLevel == level {
			levelOK = true
			break
		}
	}
	if !levelOK {
		return false
	}

	if criteria.FieldsOfStudy != nil {
		fieldOK := false
		for _, field := range criteria.FieldsOfStudy {
			if profile.FieldOfStudy == field {
				fieldOK = true
				break
			}
		}
		if !fieldOK {
			return false
		}
	}

	if criteria.InstitutionTypes != nil {
		instOK := false
		for _, inst := range criteria.InstitutionTypes {
			if profile.InstitutionType == inst {
				instOK = true
				break
			}
		}
		if !instOK {
			return false
		}
	}

	if criteria.BackgroundRequirements != nil {
		bgOK := false
		for _, required := range criteria.BackgroundRequirements {
			if profile.HasBackground(required) {
				bgOK = true
				break
			}
		}
		if !bgOK {
			return false
		}
	}

	return true
}

// MissProbabilityFor rates how likely the student is to overlook the
// opportunity, from its visibility and the student's awareness.
func MissProbabilityFor(visibility models.VisibilityLevel, awareness models.AwarenessLevel) models.MissProbability {
	if visibility == models.VisibilityLow {
		return models.MissHigh
	}

	if visibility == models.VisibilityMedium {
		switch awareness {
		case models.AwarenessLow:
			return models.MissHigh
		case models.AwarenessMedium:
			return models.MissMedium
		default:
			return models.MissLow
		}
	}

	if awareness == models.AwarenessLow {
		return models.MissMedium
	}
	return models.MissLow
}

// blindspotAlignment measures how strongly an opportunity covers any of the
// identified blindspots. Every match takes the blindspot's relevance score,
// sometimes damped for looser pairings, and the best one wins. The 0.3 floor
// keeps eligible opportunities in play even without a covering blindspot.
func blindspotAlignment(opportunity *models.Opportunity, blindspots []models.Blindspot) float64 {
	maxAlignment := 0.0
	oppCategory := strings.ToLower(opportunity.Category)
	oppName := strings.ToLower(opportunity.Name)

	consider := func(score float64) {
		if score > maxAlignment {
			maxAlignment = score
		}
	}

	for _, blindspot := range blindspots {
		category := strings.ToLower(blindspot.Category)
		score := blindspot.RelevanceScore

		if strings.Contains(category, oppCategory) {
			consider(score)
		}

		if strings.Contains(category, "scholarship") && oppCategory == "scholarship" {
			consider(score)
		}
		if strings.Contains(category, "research") && oppCategory == "internship" {
			consider(score * 0.9)
		}
		if strings.Contains(category, "innovation") && oppCategory == "program" {
			consider(score * 0.9)
		}
		if strings.Contains(category, "internship") && oppCategory == "internship" {
			consider(score)
		}
		if strings.Contains(category, "program") && oppCategory == "program" {
			consider(score)
		}

		if strings.Contains(oppName, "aicte") && strings.Contains(category, "category-specific") {
			consider(score)
		}
		if strings.Contains(oppName, "central") && strings.Contains(category, "income-based") {
			consider(score)
		}
		if strings.Contains(oppName, "state") && strings.Contains(category, "state") {
			consider(score)
		}
		if strings.Contains(oppName, "nptel") && strings.Contains(category, "research") {
			consider(score)
		}
		if strings.Contains(oppName, "ministry") && strings.Contains(category, "innovation") {
			consider(score)
		}

		if strings.Contains(category, "skill") && oppCategory == "program" {
			consider(score * 0.7)
		}
		if strings.Contains(category, "merit") && opportunity.Eligibility.MeritBased {
			consider(score * 0.8)
		}
	}

	if maxAlignment < 0.3 {
		return 0.3
	}
	return maxAlignment
}

var categoryToGoal = map[string]models.OpportunityGoal{
	"Scholarship": models.GoalScholarships,
	"Internship":  models.GoalInternships,
	"Program":     models.GoalSkills,
}

// relevanceScore weighs blindspot alignment (40%), impact (30%), visibility
// (20%, low visibility scores highest) and goal alignment (10%), capped at 1.
func relevanceScore(analysis *models.ProfileAnalysis, opportunity *models.Opportunity, alignment float64) float64 {
	score := alignment * 0.4

	switch opportunity.Impact {
	case models.ImpactHigh:
		score += 0.3
	case models.ImpactMedium:
		score += 0.2
	default:
		score += 0.1
	}

	switch opportunity.Visibility {
	case models.VisibilityLow:
		score += 0.2
	case models.VisibilityMedium:
		score += 0.15
	default:
		score += 0.1
	}

	if goal, ok := categoryToGoal[opportunity.Category]; ok {
		for _, g := range analysis.PriorityGoals {
			if g == goal {
				score += 0.1
				break
			}
		}
	}

	if score > 1.0 {
		return 1.0
	}
	return score
}

func fitExplanation(profile *models.StudentProfile, opportunity *models.Opportunity) string {
	explanations := []string{
		fmt.Sprintf("You're a %s student, which matches the eligibility", profile.EducationLevel),
	}

	if opportunity.Eligibility.FieldsOfStudy != nil {
		explanations = append(explanations,
			fmt.Sprintf("your %s background aligns with the program requirements", profile.FieldOfStudy))
	}

	if opportunity.Eligibility.BackgroundRequirements != nil {
		var matching []string
		for _, bg := range profile.BackgroundIndicators {
			for _, required := range opportunity.Eligibility.BackgroundRequirements {
				if bg == required {
					matching = append(matching, string(bg))
					break
				}
			}
		}
		if len(matching) > 0 {
			explanations = append(explanations,
				fmt.Sprintf("your background (%s) makes you eligible for this targeted program", strings.Join(matching, ", ")))
		}
	}

	if opportunity.Eligibility.IncomeBased && profile.HasBackground(models.BackgroundFinancialSupport) {
		explanations = append(explanations,
			"this income-based program is designed for students needing financial support")
	}

	if opportunity.Eligibility.MeritBased {
		explanations = append(explanations,
			"this merit-based program recognizes academic achievement")
	}

	switch len(explanations) {
	case 1:
		return explanations[0] + "."
	case 2:
		return explanations[0] + ", and " + explanations[1] + "."
	default:
		return strings.Join(explanations[:len(explanations)-1], ", ") + ", and " + explanations[len(explanations)-1] + "."
	}
}

func missReason(opportunity *models.Opportunity, awareness models.AwarenessLevel) string {
	var reasons []string

	switch opportunity.Visibility {
	case models.VisibilityLow:
		reasons = append(reasons, "this program has very low visibility and is rarely promoted in colleges")
	case models.VisibilityMedium:
		reasons = append(reasons, "this program is not widely advertised beyond official government portals")
	}

	switch {
	case strings.Contains(opportunity.Name, "AICTE"):
		reasons = append(reasons, "AICTE programs are often buried in technical documentation")
	case strings.Contains(opportunity.Name, "State"):
		reasons = append(reasons, "state-level programs vary by region and lack centralized promotion")
	case strings.Contains(opportunity.Name, "NPTEL"):
		reasons = append(reasons, "students often see NPTEL only as a course platform, not for internships")
	case strings.Contains(opportunity.Name, "Ministry"):
		reasons = append(reasons, "ministry programs are scattered across multiple websites")
	case strings.Contains(opportunity.Name, "Central Sector"):
		reasons = append(reasons, "many students assume they need high merit for central scholarships")
	}

	if awareness == models.AwarenessLow {
		reasons = append(reasons, "students with limited opportunity awareness often miss such programs")
	}

	switch len(reasons) {
	case 0:
		return "Students often miss this opportunity due to lack of awareness."
	case 1:
		return "Students usually miss this because " + reasons[0] + "."
	default:
		return "Students usually miss this because " + strings.Join(reasons, " and ") + "."
	}
}
