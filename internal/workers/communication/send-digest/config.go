// internal/workers/communication/send-digest/config.go
package senddigest

import (
	"time"

	"saarthi-workers/internal/common/config"
)

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	Region       string
	Timeout      time.Duration
	MaxSMSLength int
}

func LoadConfig(notifications config.NotificationConfig) *Config {
	return &Config{
		EmailEnabled: notifications.Email.Enabled,
		SMSEnabled:   notifications.SMS.Enabled,
		FromEmail:    notifications.Email.FromEmail,
		Region:       notifications.AWS.Region,
		Timeout:      15 * time.Second,
		MaxSMSLength: 320,
	}
}
