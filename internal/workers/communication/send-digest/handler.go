// internal/workers/communication/send-digest/handler.go
package senddigest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/common/metrics"
)

const (
	TaskType = "send-digest"
)

var (
	ErrNoRecipient    = errors.New("NO_RECIPIENT")
	ErrDeliveryFailed = errors.New("DELIVERY_FAILED")
)

// EmailSender is satisfied by aws.SESClient.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender is satisfied by aws.SNSClient.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config *Config
	email  EmailSender
	sms    SMSSender
	logger logger.Logger
}

func NewHandler(config *Config, email EmailSender, sms SMSSender, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		email:  email,
		sms:    sms,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
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
		errorCode := "DELIVERY_FAILED"
		if errors.Is(err, ErrNoRecipient) {
			errorCode = "NO_RECIPIENT"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	output := &Output{DigestID: uuid.NewString()}

	wantEmail := h.config.EmailEnabled && input.Email != ""
	wantSMS := h.config.SMSEnabled && input.Phone != ""
	if !wantEmail && !wantSMS {
		return nil, fmt.Errorf("%w: no enabled channel has a recipient address", ErrNoRecipient)
	}

	if h.config.EmailEnabled && input.Email == "" {
		output.Skipped = append(output.Skipped, "email")
	}
	if h.config.SMSEnabled && input.Phone == "" {
		output.Skipped = append(output.Skipped, "sms")
	}

	if wantEmail {
		messageID, err := h.sendEmail(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: email: %v", ErrDeliveryFailed, err)
		}
		output.EmailMessageID = messageID
	}

	if wantSMS {
		messageID, err := h.sendSMS(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("%w: sms: %v", ErrDeliveryFailed, err)
		}
		output.SMSMessageID = messageID
	}

	h.logger.Info("digest sent", map[string]interface{}{
		"digestId": output.DigestID,
		"email":    output.EmailMessageID != "",
		"sms":      output.SMSMessageID != "",
	})
	return output, nil
}

func (h *Handler) sendEmail(ctx context.Context, input *Input) (string, error) {
	result, err := h.email.SendEmail(ctx, &ses.SendEmailInput{
		Source:      aws.String(h.config.FromEmail),
		Destination: &types.Destination{ToAddresses: []string{input.Email}},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(EmailSubject(&input.Result))},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(EmailBody(input.StudentName, &input.Result))},
			},
		},
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(result.MessageId), nil
}

func (h *Handler) sendSMS(ctx context.Context, input *Input) (string, error) {
	result, err := h.sms.Publish(ctx, &sns.PublishInput{
		PhoneNumber: aws.String(input.Phone),
		Message:     aws.String(SMSBody(input.StudentName, &input.Result, h.config.MaxSMSLength)),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(result.MessageId), nil
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

// Execute exposes digest delivery for direct (non-Camunda) callers.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
