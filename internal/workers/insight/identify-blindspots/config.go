// internal/workers/insight/identify-blindspots/config.go
package identifyblindspots

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
