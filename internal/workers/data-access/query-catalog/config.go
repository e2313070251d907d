// internal/workers/data-access/query-catalog/config.go
package querycatalog

import "time"

type Config struct {
	Table   string
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Table:   "opportunities",
		Timeout: 15 * time.Second,
	}
}
