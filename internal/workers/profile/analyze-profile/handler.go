// internal/workers/profile/analyze-profile/handler.go
package analyzeprofile

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
	TaskType = "analyze-profile"
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
		h.failJob(client, job, "ANALYSIS_FAILED", err.Error())
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	analysis := Analyze(&input.Profile)

	h.logger.Debug("profile analyzed", map[string]interface{}{
		"awarenessLevel":  analysis.AwarenessLevel,
		"characteristics": len(analysis.KeyCharacteristics),
	})

	return &Output{Analysis: analysis}, nil
}

// Analyze derives the matching characteristics from a validated profile.
func Analyze(profile *models.StudentProfile) models.ProfileAnalysis {
	return models.ProfileAnalysis{
		KeyCharacteristics: extractCharacteristics(profile),
		EligibilityTags:    extractEligibilityTags(profile),
		AwarenessLevel:     MapAwarenessLevel(profile.MissedBefore),
		PriorityGoals:      profile.OpportunityGoals,
	}
}

func extractCharacteristics(profile *models.StudentProfile) []string {
	characteristics := []string{
		string(profile.EducationLevel),
		profile.FieldOfStudy,
		string(profile.InstitutionType),
	}
	for _, indicator := range profile.BackgroundIndicators {
		characteristics = append(characteristics, string(indicator))
	}
	return characteristics
}

func extractEligibilityTags(profile *models.StudentProfile) []string {
	tags := []string{}
	for _, indicator := range profile.BackgroundIndicators {
		tags = append(tags, string(indicator))
	}
	return tags
}

// MapAwarenessLevel maps the self-reported missed-opportunity frequency to
// an awareness level. Unknown values default to High, same as "No".
func MapAwarenessLevel(missed models.MissedFrequency) models.AwarenessLevel {
	switch missed {
	case models.MissedManyTimes:
		return models.AwarenessLow
	case models.MissedOnceOrTwice:
		return models.AwarenessMedium
	default:
		return models.AwarenessHigh
	}
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

// Execute exposes the analysis logic for direct (non-Camunda) callers.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
