// cmd/worker-manager/main.go
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	awsclients "saarthi-workers/internal/common/aws"
	"saarthi-workers/internal/common/camunda"
	"saarthi-workers/internal/common/config"
	"saarthi-workers/internal/common/database"
	"saarthi-workers/internal/common/logger"
	"saarthi-workers/internal/common/observability"

	"saarthi-workers/internal/catalog"
	"saarthi-workers/pkg/registry"

	// Profile workers
	ap "saarthi-workers/internal/workers/profile/analyze-profile"
	vp "saarthi-workers/internal/workers/profile/validate-profile"

	// Insight workers
	ge "saarthi-workers/internal/workers/insight/generate-explanations"
	ib "saarthi-workers/internal/workers/insight/identify-blindspots"

	// Recommendation workers
	mo "saarthi-workers/internal/workers/recommendation/match-opportunities"
	ps "saarthi-workers/internal/workers/recommendation/process-submission"

	// Data access workers
	qc "saarthi-workers/internal/workers/data-access/query-catalog"
	so "saarthi-workers/internal/workers/data-access/search-opportunities"

	// Infrastructure and communication workers
	sd "saarthi-workers/internal/workers/communication/send-digest"
	br "saarthi-workers/internal/workers/infrastructure/build-response"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...",
		zap.String("app", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Activity registry ---
	if reg, err := registry.LoadRegistry(cfg.Registry.Path); err != nil {
		zapLog.Warn("activity registry unavailable, continuing without it", zap.Error(err))
	} else {
		zapLog.Info("activity registry loaded",
			zap.String("version", reg.Version),
			zap.Int("activities", len(reg.Activities)),
			zap.Int("implemented", len(reg.Implemented())),
		)
	}

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         time.Duration(cfg.Camunda.RequestTimeout) * time.Millisecond,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zeebeClient := camundaClient.GetClient()
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	// Postgres backs the catalog and the query-catalog worker; with the
	// builtin catalog source it is optional and skipped when unreachable.
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		if cfg.Catalog.Source == "postgres" {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		zapLog.Warn("postgres unavailable, query-catalog worker disabled", zap.Error(err))
		pg = nil
	} else {
		defer pg.Close()
		zapLog.Info("PostgreSQL connected successfully")
	}

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redis.Ping(ctx)
	}, 5, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Warn("redis unavailable, catalog snapshots disabled", zap.Error(err))
		redis = nil
	} else {
		defer redis.Close()
		zapLog.Info("Redis connected successfully")
	}

	// --- Init Elasticsearch with retry ---
	var esClient *database.ElasticsearchClient
	err = retryWithBackoff(func() error {
		var err error
		esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
		if err != nil {
			return err
		}
		return esClient.Ping()
	}, 5, 2*time.Second, zapLog, "Elasticsearch connection")

	if err != nil {
		zapLog.Warn("elasticsearch unavailable, search-opportunities worker disabled", zap.Error(err))
		esClient = nil
	} else {
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Load the opportunity catalog (immutable for process lifetime) ---
	provider := catalog.NewProvider(cfg.Catalog, pgDB(pg), redisDB(redis), log)
	cat, err := provider.Load(ctx)
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}
	zapLog.Info("opportunity catalog loaded", zap.Int("opportunities", cat.Len()))

	// --- Register workers ---

	// Profile workers
	if wcfg, ok := workerConfig(cfg, vp.TaskType); ok {
		vpCfg := vp.LoadConfig()
		vpCfg.Timeout = time.Duration(wcfg.Timeout) * time.Millisecond
		handler := vp.NewHandler(vpCfg, log)
		startWorker(zeebeClient, vp.TaskType, wcfg, handler, zapLog)
	}

	if wcfg, ok := workerConfig(cfg, ap.TaskType); ok {
		apCfg := ap.LoadConfig()
		apCfg.Timeout = time.Duration(wcfg.Timeout) * time.Millisecond
		handler := ap.NewHandler(apCfg, log)
		startWorker(zeebeClient, ap.TaskType, wcfg, handler, zapLog)
	}

	// Insight workers
	if wcfg, ok := workerConfig(cfg, ib.TaskType); ok {
		ibCfg := ib.LoadConfig()
		ibCfg.Timeout = time.Duration(wcfg.Timeout) * time.Millisecond
		handler := ib.NewHandler(ibCfg, log)
		startWorker(zeebeClient, ib.TaskType, wcfg, handler, zapLog)
	}

	if wcfg, ok := workerConfig(cfg, ge.TaskType); ok {
		geCfg := ge.LoadConfig()
		geCfg.Timeout = time.Duration(wcfg.Timeout) * time.Millisecond
		handler := ge.NewHandler(geCfg, log)
		startWorker(zeebeClient, ge.TaskType, wcfg, handler, zapLog)
	}

	// Recommendation workers
	if wcfg, ok := workerConfig(cfg, mo.TaskType); ok {
		moCfg := mo.LoadConfig()
		moCfg.Timeout = time.Duration(wcfg.Timeout) * time.Millisecond
		handler := mo.NewHandler(moCfg, cat, log)
		startWorker(zeebeClient, mo.TaskType, wcfg, handler, zapLog)
	}

	if wcfg, ok := workerConfig(cfg, ps.TaskType); ok {
		psCfg := ps.LoadConfig()
		psCfg.Timeout = time.Duration(wcfg.Timeout) * time.Millisecond
		handler := ps.NewHandler(psCfg, cat, log)
		startWorker(zeebeClient, ps.TaskType, wcfg, handler, zapLog)
	}

	// Data access workers
	if wcfg, ok := workerConfig(cfg, qc.TaskType); ok {
		if pg == nil {
			zapLog.Warn("worker skipped, postgres unavailable", zap.String("taskType", qc.TaskType))
		} else {
			qcCfg := qc.LoadConfig()
			qcCfg.Table = cfg.Catalog.Table
			handler := qc.NewHandler(qcCfg, pg.DB, log)
			startWorker(zeebeClient, qc.TaskType, wcfg, handler, zapLog)
		}
	}

	if wcfg, ok := workerConfig(cfg, so.TaskType); ok {
		if esClient == nil {
			zapLog.Warn("worker skipped, elasticsearch unavailable", zap.String("taskType", so.TaskType))
		} else {
			soCfg := so.LoadConfig()
			soCfg.Index = cfg.Catalog.SearchIndex
			handler := so.NewHandler(soCfg, esClient.Client, log)
			startWorker(zeebeClient, so.TaskType, wcfg, handler, zapLog)
		}
	}

	// Infrastructure workers
	if wcfg, ok := workerConfig(cfg, br.TaskType); ok {
		handler, err := br.NewHandler(br.LoadConfig(), log)
		if err != nil {
			zapLog.Fatal("failed to create build-response handler", zap.Error(err))
		}
		startWorker(zeebeClient, br.TaskType, wcfg, handler, zapLog)
	}

	// Communication workers
	if wcfg, ok := workerConfig(cfg, sd.TaskType); ok {
		sesClient, err := awsclients.NewSESClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SES client", zap.Error(err))
		}
		snsClient, err := awsclients.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SNS client", zap.Error(err))
		}
		handler := sd.NewHandler(sd.LoadConfig(cfg.Notifications), sesClient, snsClient, log)
		startWorker(zeebeClient, sd.TaskType, wcfg, handler, zapLog)
	}

	zapLog.Info("All workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, w := range runningWorkers {
		w.Stop(shutdownCtx)
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func pgDB(pg *database.PostgresClient) *sql.DB {
	if pg == nil {
		return nil
	}
	return pg.DB
}

func redisDB(r *database.RedisClient) *redis.Client {
	if r == nil {
		return nil
	}
	return r.Client
}

func workerConfig(cfg *config.Config, taskType string) (config.WorkerConfig, bool) {
	wcfg, ok := cfg.Workers[taskType]
	if !ok || !wcfg.Enabled {
		return config.WorkerConfig{}, false
	}
	if wcfg.MaxJobsActive <= 0 {
		wcfg.MaxJobsActive = cfg.Camunda.MaxJobsActive
	}
	if wcfg.Timeout <= 0 {
		wcfg.Timeout = cfg.Camunda.Timeout
	}
	return wcfg, true
}

// runningWorkers collects every registered worker so shutdown can drain them.
var runningWorkers []*camunda.CamundaWorker

func startWorker(client zbc.Client, taskType string, wcfg config.WorkerConfig, handler camunda.JobHandler, log *zap.Logger) {
	w := camunda.NewWorker(
		client,
		taskType,
		wcfg.MaxJobsActive,
		time.Duration(wcfg.Timeout)*time.Millisecond,
		handler,
		log,
	)
	runningWorkers = append(runningWorkers, w)
}
