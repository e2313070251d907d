// internal/workers/data-access/search-opportunities/config.go
package searchopportunities

import "time"

type Config struct {
	Index   string
	Timeout time.Duration
	MaxSize int
}

func LoadConfig() *Config {
	return &Config{
		Index:   "opportunities",
		Timeout: 10 * time.Second,
		MaxSize: 25,
	}
}
