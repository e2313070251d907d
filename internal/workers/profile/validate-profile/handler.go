// internal/workers/profile/validate-profile/handler.go
package validateprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/common/metrics"
	"saarthi-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "validate-profile"
)

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, "VALIDATION_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	profile := &input.Profile

	// Value checks run before presence checks so a negative age is reported
	// as invalid, not missing.
	if invalid := checkFieldValues(profile); len(invalid) > 0 {
		h.logger.Info("profile rejected: invalid values", map[string]interface{}{
			"invalidFields": invalid,
		})
		return &Output{Valid: false, InvalidFields: invalid}, nil
	}

	valid, missing := profile.Validate()
	if !valid {
		h.logger.Info("profile rejected: missing fields", map[string]interface{}{
			"missingFields": missing,
		})
		return &Output{Valid: false, MissingFields: missing}, nil
	}

	return &Output{Valid: true}, nil
}

// checkFieldValues returns human-readable descriptions of out-of-range or
// unrecognized field values.
func checkFieldValues(profile *models.StudentProfile) []string {
	var invalid []string

	if profile.Age < 0 {
		invalid = append(invalid, "age (must be positive)")
	}
	if profile.Age > 150 {
		invalid = append(invalid, "age (must be realistic)")
	}
	if profile.YearOfStudy < 0 {
		invalid = append(invalid, "year_of_study (must be positive)")
	}
	if profile.YearOfStudy > 10 {
		invalid = append(invalid, "year_of_study (must be realistic)")
	}

	if profile.EducationLevel != "" && !isOneOf(string(profile.EducationLevel), educationLevels) {
		invalid = append(invalid, "education_level (unknown value)")
	}
	if profile.InstitutionType != "" && !isOneOf(string(profile.InstitutionType), institutionTypes) {
		invalid = append(invalid, "institution_type (unknown value)")
	}
	if profile.MissedBefore != "" && !isOneOf(string(profile.MissedBefore), missedFrequencies) {
		invalid = append(invalid, "missed_opportunities_before (unknown value)")
	}
	for _, goal := range profile.OpportunityGoals {
		if !isOneOf(string(goal), opportunityGoals) {
			invalid = append(invalid, "opportunity_goals (unknown value)")
			break
		}
	}
	for _, bg := range profile.BackgroundIndicators {
		if !isOneOf(string(bg), backgroundIndicators) {
			invalid = append(invalid, "background_indicators (unknown value)")
			break
		}
	}

	return invalid
}

var (
	educationLevels = []string{
		string(models.EducationDiploma),
		string(models.EducationUG),
		string(models.EducationPG),
		string(models.EducationPhD),
	}
	institutionTypes = []string{
		string(models.InstitutionGovernment),
		string(models.InstitutionPrivate),
		string(models.InstitutionAutonomous),
		string(models.InstitutionOpen),
	}
	missedFrequencies = []string{
		string(models.MissedManyTimes),
		string(models.MissedOnceOrTwice),
		string(models.MissedNever),
	}
	opportunityGoals = []string{
		string(models.GoalScholarships),
		string(models.GoalInternships),
		string(models.GoalResearch),
		string(models.GoalSkills),
		string(models.GoalGovtExams),
	}
	backgroundIndicators = []string{
		string(models.BackgroundRural),
		string(models.BackgroundFirstGeneration),
		string(models.BackgroundFinancialSupport),
		string(models.BackgroundDisabled),
		string(models.BackgroundMinority),
	}
)

func isOneOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if value == v {
			return true
		}
	}
	return false
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

// Execute exposes the validation logic for direct (non-Camunda) callers.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
