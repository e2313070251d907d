// internal/workers/communication/send-digest/handler_test.go
package senddigest

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

type fakeEmailSender struct {
	lastInput *ses.SendEmailInput
	err       error
}

func (f *fakeEmailSender) SendEmail(_ context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("ses-message-1")}, nil
}

type fakeSMSSender struct {
	lastInput *sns.PublishInput
	err       error
}

func (f *fakeSMSSender) Publish(_ context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("sns-message-1")}, nil
}

func testConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "digest@example.org",
		MaxSMSLength: 320,
	}
}

func matchedResult() models.SubmissionResult {
	opportunities := catalog.Builtin()
	return models.SubmissionResult{
		Valid:          true,
		ProfileSummary: "Hi Priya! I've understood your profile:\n",
		Matches: []models.OpportunityMatch{
			{
				Opportunity:     opportunities[0],
				FitExplanation:  "You qualify based on your income background.",
				MissReason:      "Central government schemes are rarely promoted at institute level",
				MissProbability: models.MissHigh,
				RelevanceScore:  0.62,
			},
			{
				Opportunity:     opportunities[1],
				MissProbability: models.MissMedium,
				RelevanceScore:  0.55,
			},
		},
		FinalInsight: "Awareness is the first step to opportunity.",
	}
}

func TestExecute_SendsBothChannels(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	h := NewHandler(testConfig(), email, sms, logger.NewNoOpLogger())

	output, err := h.Execute(context.Background(), &Input{
		StudentName: "Priya",
		Email:       "priya@example.org",
		Phone:       "+911234567890",
		Result:      matchedResult(),
	})
	require.NoError(t, err)

	assert.Equal(t, "ses-message-1", output.EmailMessageID)
	assert.Equal(t, "sns-message-1", output.SMSMessageID)
	assert.NotEmpty(t, output.DigestID)
	assert.Empty(t, output.Skipped)

	require.NotNil(t, email.lastInput)
	assert.Equal(t, "digest@example.org", aws.ToString(email.lastInput.Source))
	assert.Equal(t, []string{"priya@example.org"}, email.lastInput.Destination.ToAddresses)
	assert.Equal(t, "2 opportunities you may be missing", aws.ToString(email.lastInput.Message.Subject.Data))

	require.NotNil(t, sms.lastInput)
	assert.Equal(t, "+911234567890", aws.ToString(sms.lastInput.PhoneNumber))
	assert.Contains(t, aws.ToString(sms.lastInput.Message), "Check your email for details.")
}

func TestExecute_EmailOnlySkipsSMS(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	h := NewHandler(testConfig(), email, sms, logger.NewNoOpLogger())

	output, err := h.Execute(context.Background(), &Input{
		StudentName: "Arjun",
		Email:       "arjun@example.org",
		Result:      matchedResult(),
	})
	require.NoError(t, err)

	assert.Equal(t, "ses-message-1", output.EmailMessageID)
	assert.Empty(t, output.SMSMessageID)
	assert.Equal(t, []string{"sms"}, output.Skipped)
	assert.Nil(t, sms.lastInput)
}

func TestExecute_NoRecipient(t *testing.T) {
	h := NewHandler(testConfig(), &fakeEmailSender{}, &fakeSMSSender{}, logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), &Input{StudentName: "Arjun", Result: matchedResult()})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestExecute_DeliveryFailure(t *testing.T) {
	email := &fakeEmailSender{err: assert.AnError}
	h := NewHandler(testConfig(), email, &fakeSMSSender{}, logger.NewNoOpLogger())

	_, err := h.Execute(context.Background(), &Input{
		StudentName: "Arjun",
		Email:       "arjun@example.org",
		Result:      matchedResult(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestEmailBody_IncludesMatchesAndInsight(t *testing.T) {
	result := matchedResult()
	body := EmailBody("Priya", &result)

	assert.True(t, strings.HasPrefix(body, result.ProfileSummary))
	assert.Contains(t, body, "1. "+result.Matches[0].Opportunity.Name)
	assert.Contains(t, body, "Why you fit: You qualify based on your income background.")
	assert.Contains(t, body, "Awareness is the first step to opportunity.")
}

func TestSMSBody_Truncates(t *testing.T) {
	result := matchedResult()
	body := SMSBody("Priya", &result, 40)

	assert.LessOrEqual(t, len([]rune(body)), 40)
	assert.True(t, strings.HasSuffix(body, "..."))
}

func TestSMSBody_NoMatches(t *testing.T) {
	result := models.SubmissionResult{Valid: true, NoMatches: true}
	body := SMSBody("Priya", &result, 320)

	assert.Contains(t, body, "No new opportunity matches")
}
