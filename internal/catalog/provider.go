// internal/catalog/provider.go
package catalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"

	"saarthi-workers/internal/common/config"
	"saarthi-workers/internal/common/errors"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/models"
)

// Provider assembles the catalog at startup according to configuration.
//
// Load order for the "postgres" source: Redis snapshot, then the opportunities
// table, then the built-in set. The "builtin" source skips the first two.
type Provider struct {
	cfg    config.CatalogConfig
	store  *Store
	cache  *SnapshotCache
	logger logger.Logger
}

func NewProvider(cfg config.CatalogConfig, db *sql.DB, redisClient *redis.Client, log logger.Logger) *Provider {
	p := &Provider{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"component": "catalog"}),
	}
	if db != nil {
		p.store = NewStore(db, cfg.Table)
	}
	if redisClient != nil {
		p.cache = NewSnapshotCache(redisClient, cfg.SnapshotKey, time.Duration(cfg.SnapshotTTL)*time.Second)
	}
	return p
}

// Load returns the assembled catalog. An empty catalog is an error when
// strict_empty is set, otherwise the built-in set fills in.
func (p *Provider) Load(ctx context.Context) (*Catalog, error) {
	opportunities := p.load(ctx)

	if len(opportunities) == 0 {
		if p.cfg.StrictEmpty {
			return nil, errors.NewCatalogUnavailableError("no opportunities available from any source")
		}
		opportunities = Builtin()
	}

	p.logger.Info("catalog loaded", map[string]interface{}{
		"source": p.cfg.Source,
		"count":  len(opportunities),
	})

	return New(opportunities), nil
}

func (p *Provider) load(ctx context.Context) []models.Opportunity {
	if p.cfg.Source != "postgres" {
		return Builtin()
	}

	if p.cache != nil {
		if opportunities, err := p.cache.Load(ctx); err == nil && len(opportunities) > 0 {
			p.logger.Debug("catalog served from snapshot", map[string]interface{}{
				"count": len(opportunities),
			})
			return opportunities
		} else if err != nil && err != redis.Nil {
			p.logger.Warn("catalog snapshot read failed", map[string]interface{}{"error": err.Error()})
		}
	}

	if p.store == nil {
		p.logger.Warn("postgres catalog source configured without a database connection", nil)
		return nil
	}

	opportunities, err := p.store.Load(ctx)
	if err != nil {
		p.logger.Warn("catalog table read failed, falling back to built-in set", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	if len(opportunities) > 0 && p.cache != nil {
		if err := p.cache.Save(ctx, opportunities); err != nil {
			p.logger.Warn("catalog snapshot write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return opportunities
}
