// internal/workers/communication/send-digest/digest.go
package senddigest

import (
	"fmt"
	"strings"

	"saarthi-workers/internal/models"
)

// EmailSubject returns the subject line for a digest email.
func EmailSubject(result *models.SubmissionResult) string {
	if len(result.Matches) == 0 {
		return "Your opportunity check-in"
	}
	return fmt.Sprintf("%d opportunities you may be missing", len(result.Matches))
}

// EmailBody renders the plain-text digest email. It leads with the profile
// summary, lists each match with its explanations, and closes with the final
// insight.
func EmailBody(studentName string, result *models.SubmissionResult) string {
	var b strings.Builder

	if result.ProfileSummary != "" {
		b.WriteString(result.ProfileSummary)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "Hi %s!\n\n", studentName)
	}

	if len(result.Matches) > 0 {
		b.WriteString("Opportunities matched to your profile:\n\n")
		for i, match := range result.Matches {
			fmt.Fprintf(&b, "%d. %s\n", i+1, match.Opportunity.Name)
			if match.Opportunity.Description != "" {
				fmt.Fprintf(&b, "   %s\n", match.Opportunity.Description)
			}
			if match.FitExplanation != "" {
				fmt.Fprintf(&b, "   Why you fit: %s\n", match.FitExplanation)
			}
			if match.MissReason != "" {
				fmt.Fprintf(&b, "   Why you likely missed it: %s\n", match.MissReason)
			}
			b.WriteString("\n")
		}
	}

	if result.FinalInsight != "" {
		b.WriteString(result.FinalInsight)
		b.WriteString("\n")
	}

	return b.String()
}

// SMSBody renders a compact digest capped at maxLength runes. SMS carries
// only the match names; the full explanations go by email.
func SMSBody(studentName string, result *models.SubmissionResult, maxLength int) string {
	var text string
	if len(result.Matches) == 0 {
		text = fmt.Sprintf("Hi %s! No new opportunity matches this time. Keep your profile updated.", studentName)
	} else {
		names := make([]string, len(result.Matches))
		for i, match := range result.Matches {
			names[i] = match.Opportunity.Name
		}
		text = fmt.Sprintf("Hi %s! You may be eligible for: %s. Check your email for details.",
			studentName, strings.Join(names, "; "))
	}

	runes := []rune(text)
	if maxLength > 0 && len(runes) > maxLength {
		return string(runes[:maxLength-3]) + "..."
	}
	return text
}
