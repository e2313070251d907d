package catalog

import (
	"saarthi-workers/internal/common/config"
	"saarthi-workers/internal/common/logger"
)

func testCatalogConfig(source string) config.CatalogConfig {
	return config.CatalogConfig{
		Source:      source,
		Table:       "opportunities",
		SnapshotKey: "catalog:snapshot",
		SnapshotTTL: 3600,
	}
}

func newNoOpLogger() logger.Logger {
	return logger.NewNoOpLogger()
}
