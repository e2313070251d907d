// internal/workers/recommendation/process-submission/service.go
package processsubmission

import (
	"context"
	"fmt"
	"strings"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/common/metrics"
	"saarthi-workers/internal/models"
	generateexplanations "saarthi-workers/internal/workers/insight/generate-explanations"
	identifyblindspots "saarthi-workers/internal/workers/insight/identify-blindspots"
	analyzeprofile "saarthi-workers/internal/workers/profile/analyze-profile"
	validateprofile "saarthi-workers/internal/workers/profile/validate-profile"
	matchopportunities "saarthi-workers/internal/workers/recommendation/match-opportunities"
)

const catalogUnavailableMessage = "System Error: Opportunity knowledge base is currently unavailable. Please try again later."
const internalErrorMessage = "An unexpected error occurred while processing your profile. Please try again."

// Service runs the whole recommendation pipeline for one submission. It is
// the single-call alternative to wiring the per-stage workers into a BPMN
// sequence, and the stages it calls are the same ones those workers expose.
type Service struct {
	validator *validateprofile.Handler
	analyzer  *analyzeprofile.Handler
	rules     *identifyblindspots.Handler
	matcher   *matchopportunities.Handler
	renderer  *generateexplanations.Handler
	catalog   *catalog.Catalog
	logger    logger.Logger
}

func NewService(cat *catalog.Catalog, log logger.Logger) *Service {
	return &Service{
		validator: validateprofile.NewHandler(validateprofile.LoadConfig(), log),
		analyzer:  analyzeprofile.NewHandler(analyzeprofile.LoadConfig(), log),
		rules:     identifyblindspots.NewHandler(identifyblindspots.LoadConfig(), log),
		matcher:   matchopportunities.NewHandler(matchopportunities.LoadConfig(), cat, log),
		renderer:  generateexplanations.NewHandler(generateexplanations.LoadConfig(), log),
		catalog:   cat,
		logger:    log.WithFields(map[string]interface{}{"component": "process-submission"}),
	}
}

// Process resolves a submission to a SubmissionResult. Every failure mode is
// expressed as data on the result; the method itself never returns an error
// and never panics.
func (s *Service) Process(ctx context.Context, profile *models.StudentProfile) (result models.SubmissionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("submission processing panicked", map[string]interface{}{
				"panic": fmt.Sprint(r),
			})
			result = models.SubmissionResult{Valid: false, Error: internalErrorMessage}
			metrics.SubmissionsProcessed.WithLabelValues("error").Inc()
		}
	}()

	validation, err := s.validator.Execute(ctx, &validateprofile.Input{Profile: *profile})
	if err != nil {
		metrics.SubmissionsProcessed.WithLabelValues("error").Inc()
		return models.SubmissionResult{Valid: false, Error: internalErrorMessage}
	}
	if len(validation.InvalidFields) > 0 {
		metrics.SubmissionsProcessed.WithLabelValues("invalid_values").Inc()
		return models.SubmissionResult{Valid: false, InvalidFields: validation.InvalidFields}
	}
	if len(validation.MissingFields) > 0 {
		metrics.SubmissionsProcessed.WithLabelValues("missing_fields").Inc()
		return models.SubmissionResult{Valid: false, MissingFields: validation.MissingFields}
	}

	if s.catalog == nil || s.catalog.Len() == 0 {
		metrics.SubmissionsProcessed.WithLabelValues("error").Inc()
		return models.SubmissionResult{Valid: false, Error: catalogUnavailableMessage}
	}

	analyzed, err := s.analyzer.Execute(ctx, &analyzeprofile.Input{Profile: *profile})
	if err != nil {
		metrics.SubmissionsProcessed.WithLabelValues("error").Inc()
		return models.SubmissionResult{Valid: false, Error: internalErrorMessage}
	}
	analysis := analyzed.Analysis

	summary := generateexplanations.ProfileSummary(profile)

	blindspots := s.identifyBlindspots(ctx, profile, &analysis)

	matched, err := s.matcher.Execute(ctx, &matchopportunities.Input{
		Profile:    *profile,
		Analysis:   analysis,
		Blindspots: blindspots,
	})
	if err != nil {
		metrics.SubmissionsProcessed.WithLabelValues("error").Inc()
		return models.SubmissionResult{Valid: false, Error: internalErrorMessage}
	}

	if len(matched.Matches) == 0 {
		metrics.SubmissionsProcessed.WithLabelValues("no_matches").Inc()
		return models.SubmissionResult{
			Valid:          true,
			ProfileSummary: summary,
			Blindspots:     blindspots,
			Matches:        []models.OpportunityMatch{},
			FinalInsight:   generateexplanations.NoMatchesInsight(profile),
			NoMatches:      true,
		}
	}

	insight := generateexplanations.FinalInsight(profile, blindspots)
	if strings.TrimSpace(insight) == "" {
		insight = generateexplanations.FallbackFinalInsight()
	}

	metrics.SubmissionsProcessed.WithLabelValues("valid").Inc()
	return models.SubmissionResult{
		Valid:          true,
		ProfileSummary: summary,
		Blindspots:     blindspots,
		Matches:        matched.Matches,
		FinalInsight:   insight,
	}
}

// identifyBlindspots falls back to the static set when the rule engine
// reports a floor violation, so a valid submission always carries blindspots.
func (s *Service) identifyBlindspots(ctx context.Context, profile *models.StudentProfile, analysis *models.ProfileAnalysis) []models.Blindspot {
	identified, err := s.rules.Execute(ctx, &identifyblindspots.Input{
		Profile:  *profile,
		Analysis: *analysis,
	})
	if err != nil || len(identified.Blindspots) == 0 {
		s.logger.Warn("blindspot rules returned nothing usable, using fallback set", map[string]interface{}{
			"error": fmt.Sprint(err),
		})
		return generateexplanations.FallbackBlindspots()
	}
	return identified.Blindspots
}
