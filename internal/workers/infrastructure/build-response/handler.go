// internal/workers/infrastructure/build-response/handler.go
package buildresponse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/common/metrics"
	"saarthi-workers/internal/models"
)

const (
	TaskType = "build-response"
)

var (
	ErrSchemaViolation = errors.New("RESPONSE_SCHEMA_VIOLATION")
)

type Handler struct {
	config *Config
	schema *gojsonschema.Schema
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(resultSchema))
	if err != nil {
		return nil, fmt.Errorf("compile result schema: %w", err)
	}
	return &Handler{
		config: config,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
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
		h.failJob(client, job, "RESPONSE_SCHEMA_VIOLATION", err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if len(input.Result) == 0 {
		return nil, fmt.Errorf("%w: result payload is empty", ErrSchemaViolation)
	}

	validation, err := h.schema.Validate(gojsonschema.NewBytesLoader(input.Result))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	if !validation.Valid() {
		descriptions := make([]string, 0, len(validation.Errors()))
		for _, desc := range validation.Errors() {
			descriptions = append(descriptions, desc.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(descriptions, "; "))
	}

	var result models.SubmissionResult
	if err := json.Unmarshal(input.Result, &result); err != nil {
		return nil, fmt.Errorf("%w: decode result: %v", ErrSchemaViolation, err)
	}

	return &Output{
		ResponseID: uuid.NewString(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Status:     statusFor(&result),
		Result:     result,
	}, nil
}

func statusFor(result *models.SubmissionResult) string {
	switch {
	case result.Error != "":
		return "error"
	case !result.Valid:
		return "invalid_profile"
	case result.NoMatches:
		return "no_matches"
	default:
		return "ok"
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

// Execute exposes envelope building for direct (non-Camunda) callers.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
