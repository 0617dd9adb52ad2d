package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/services/config"
	"github.com/md-tools/revenue-atlas/pkg/services/scan"
	"github.com/md-tools/revenue-atlas/pkg/store/static"
	"github.com/md-tools/revenue-atlas/pkg/terminal/commands"
	"github.com/md-tools/revenue-atlas/pkg/terminal/export"

	sqlstore "github.com/md-tools/revenue-atlas/pkg/store/sql"
)

var cfgPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "revenue-atlas",
		Short: "Provider revenue opportunity analysis",
	}
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a config file (defaults apply when omitted)")

	coordinator, orchestrator, err := buildEngine()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	reporter := export.NewReporter(os.Stdout)
	rootCmd.AddCommand(commands.NewScanCmd(coordinator, reporter))
	rootCmd.AddCommand(commands.NewGroupCmd(orchestrator, reporter))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildEngine wires the scan engine from config. Without a database the CLI
// runs fully offline: unknown providers synthesize deterministically against
// the embedded benchmark table.
func buildEngine() (*scan.Coordinator, *scan.Orchestrator, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	var providers scan.ProviderRecordSource = offlineSource{}
	var benchmarks scan.BenchmarkRepository = static.NewRepository()

	if cfg.Store.Driver == config.StorePostgres {
		db, err := sql.Open("postgres", cfg.Store.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres store: %w", err)
		}
		providers = sqlstore.NewProviderStore(db)
		benchmarks = sqlstore.NewBenchmarkStore(db)
	}

	coordinator := scan.NewCoordinator(providers, benchmarks)
	orchestrator := scan.NewOrchestrator(coordinator, scan.OrchestratorConfig{
		MaxBatchSize: 100,
	})
	return coordinator, orchestrator, nil
}

// offlineSource has no records, so every lookup falls through to synthesis.
type offlineSource struct{}

func (offlineSource) FetchProvider(context.Context, string) (*domain.ProviderRecord, error) {
	return nil, domain.ErrNotFound
}
