// internal/workers/recommendation/match-opportunities/config.go
package matchopportunities

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
