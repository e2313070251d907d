// internal/workers/communication/send-digest/models.go
package senddigest

import "saarthi-workers/internal/models"

type Input struct {
	StudentName string                  `json:"studentName"`
	Email       string                  `json:"email,omitempty"`
	Phone       string                  `json:"phone,omitempty"`
	Result      models.SubmissionResult `json:"result"`
}

type Output struct {
	DigestID       string   `json:"digestId"`
	EmailMessageID string   `json:"emailMessageId,omitempty"`
	SMSMessageID   string   `json:"smsMessageId,omitempty"`
	Skipped        []string `json:"skipped,omitempty"`
}
