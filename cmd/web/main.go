package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/server"
	"github.com/md-tools/revenue-atlas/pkg/services/config"
	"github.com/md-tools/revenue-atlas/pkg/services/scan"
	"github.com/md-tools/revenue-atlas/pkg/services/usage"
	"github.com/md-tools/revenue-atlas/pkg/store/static"

	s3store "github.com/md-tools/revenue-atlas/pkg/store/s3"
	sqlstore "github.com/md-tools/revenue-atlas/pkg/store/sql"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Revenue Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	providers, benchmarks, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}

	tier := usage.Tier(cfg.Tier)
	limits := usage.LimitsFor(tier)
	tierFn := func(string) usage.Tier { return tier }

	var gate usage.Gate
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		gate = usage.NewRedisGate(client, tierFn)
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("usage gate backed by redis")
	} else {
		gate = usage.NewMemoryGate(tierFn)
		logger.Info().Msg("usage gate backed by process memory")
	}

	coordinator := scan.NewCoordinator(providers, benchmarks)
	orchestrator := scan.NewOrchestrator(coordinator, scan.OrchestratorConfig{
		MaxBatchSize:       limits.MaxBatchSize,
		DefaultConcurrency: limits.Concurrency,
	})

	logger.Info().
		Str("driver", string(cfg.Store.Driver)).
		Str("tier", string(tier)).
		Msg("engine configured")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Server.Addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Scanner:      coordinator,
			GroupScanner: orchestrator,
			Gate:         gate,
		},
	})

	return api.Start()
}

// buildStores selects the provider and benchmark backends from the configured
// driver. The static driver needs no external services; missing providers are
// synthesized by the scan coordinator.
func buildStores(ctx context.Context, cfg *config.Config) (scan.ProviderRecordSource, scan.BenchmarkRepository, error) {
	benchmarks := static.NewRepository()

	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := sql.Open("postgres", cfg.Store.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return sqlstore.NewProviderStore(db), sqlstore.NewBenchmarkStore(db), nil
	case config.StoreS3:
		store, err := s3store.NewProviderStore(ctx, cfg.Store.Bucket, cfg.Store.Prefix, cfg.Store.Region)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create s3 store: %w", err)
		}
		return store, benchmarks, nil
	default:
		return emptySource{}, benchmarks, nil
	}
}

// emptySource has no records, so every lookup falls through to synthesis.
type emptySource struct{}

func (emptySource) FetchProvider(context.Context, string) (*domain.ProviderRecord, error) {
	return nil, domain.ErrNotFound
}
