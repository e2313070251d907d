// internal/workers/insight/generate-explanations/templates.go
package generateexplanations

import (
	"fmt"
	"strings"

	"saarthi-workers/internal/models"
)

// ProfileSummary renders the bullet-point recap shown back to the student.
func ProfileSummary(profile *models.StudentProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hi %s! I've understood your profile:\n\n", profile.Name)
	fmt.Fprintf(&b, "• You're a %d-year %s student\n", profile.YearOfStudy, profile.EducationLevel)
	fmt.Fprintf(&b, "• Studying %s in %s\n", profile.Degree, profile.FieldOfStudy)
	fmt.Fprintf(&b, "• At a %s institution\n", profile.InstitutionType)

	if len(profile.BackgroundIndicators) > 0 {
		backgrounds := make([]string, len(profile.BackgroundIndicators))
		for i, bg := range profile.BackgroundIndicators {
			backgrounds[i] = string(bg)
		}
		fmt.Fprintf(&b, "• Background: %s\n", strings.Join(backgrounds, ", "))
	}

	goals := make([]string, len(profile.OpportunityGoals))
	for i, goal := range profile.OpportunityGoals {
		goals[i] = string(goal)
	}
	fmt.Fprintf(&b, "• Looking for: %s\n", strings.Join(goals, ", "))

	return b.String()
}

// FinalInsight renders the closing summary. The opener keys off the dominant
// blindspot theme, the suggestion off how often the student reports having
// missed opportunities before.
func FinalInsight(profile *models.StudentProfile, blindspots []models.Blindspot) string {
	var b strings.Builder

	b.WriteString("Based on your profile, you're likely missing out on ")

	categories := make([]string, len(blindspots))
	for i, bs := range blindspots {
		categories[i] = bs.Category
	}
	categoryStr := strings.ToLower(strings.Join(categories, " "))

	switch {
	case strings.Contains(categoryStr, "scholarship"):
		b.WriteString("several scholarship opportunities that match your background. ")
	case strings.Contains(categoryStr, "research") || strings.Contains(categoryStr, "internship"):
		b.WriteString("opportunities in research, internships, and programs beyond the classroom. ")
	default:
		b.WriteString("valuable opportunities that align with your goals and background. ")
	}

	b.WriteString("The main barrier isn't your eligibility—it's simply not knowing these exist. ")

	switch profile.MissedBefore {
	case models.MissedManyTimes:
		b.WriteString("Start by exploring the recommendations above, and consider setting up alerts for similar programs. ")
	case models.MissedOnceOrTwice:
		b.WriteString("Take a moment to explore each recommendation—you're already eligible! ")
	default:
		b.WriteString("Now that you're aware, take action on these opportunities—you're already qualified! ")
	}

	b.WriteString("Awareness is the first step to opportunity.")

	return b.String()
}

// NoMatchesInsight replaces the final insight when no opportunity in the
// catalog fits the (otherwise valid) profile.
func NoMatchesInsight(profile *models.StudentProfile) string {
	return fmt.Sprintf("Hi %s, based on your current profile, we don't have specific opportunities "+
		"in our knowledge base that match your eligibility criteria right now. "+
		"This doesn't mean opportunities don't exist—it means our current database is limited. "+
		"We recommend checking back later as we continuously update our opportunity database. "+
		"In the meantime, explore the blindspot categories we identified—they can guide your own research!",
		profile.Name)
}

// FallbackBlindspots is the static set used if the rule engine ever returns
// nothing at the orchestration boundary.
func FallbackBlindspots() []models.Blindspot {
	return []models.Blindspot{
		{
			Category:       "Government Scholarships",
			Reason:         "Many students don't know about government scholarships available for their profile",
			RelevanceScore: 0.8,
		},
		{
			Category:       "Research and Internship Programs",
			Reason:         "Students often focus on placements and miss research opportunities",
			RelevanceScore: 0.7,
		},
		{
			Category:       "Skill Development Programs",
			Reason:         "Skill programs are often buried in government websites with poor outreach",
			RelevanceScore: 0.6,
		},
	}
}

// FallbackFinalInsight is the generic closing text used when the tailored
// insight comes back empty.
func FallbackFinalInsight() string {
	return "Based on your profile, you're likely missing out on several opportunities that match your background. " +
		"The main barrier isn't your eligibility—it's simply not knowing these exist. " +
		"Take a moment to explore each recommendation—you're already eligible! " +
		"Awareness is the first step to opportunity."
}
