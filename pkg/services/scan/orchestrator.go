package scan

import (
	"context"
	"sync"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

const (
	defaultConcurrency = 5
	maxConcurrency     = 10
)

// OrchestratorConfig bounds one account's group scans. MaxBatchSize comes
// from the caller's tier.
type OrchestratorConfig struct {
	MaxBatchSize       int
	DefaultConcurrency int
}

// Orchestrator fans ScanOne out over a list of provider identifiers with
// bounded concurrency and partial-failure semantics.
type Orchestrator struct {
	coordinator *Coordinator
	config      OrchestratorConfig
}

func NewOrchestrator(coordinator *Coordinator, config OrchestratorConfig) *Orchestrator {
	if config.DefaultConcurrency <= 0 {
		config.DefaultConcurrency = defaultConcurrency
	}
	return &Orchestrator{coordinator: coordinator, config: config}
}

// ScanGroup analyzes every identifier and merges the outcomes into one
// aggregate report. The outcome list preserves input order regardless of
// worker completion order. Malformed ids are recorded as failures without
// consuming a worker slot; a failed item never aborts the batch. The call
// itself fails only for whole-batch preconditions.
func (o *Orchestrator) ScanGroup(ctx context.Context, npis []string, concurrencyHint int) (*domain.GroupScanResult, error) {
	if o.config.MaxBatchSize > 0 && len(npis) > o.config.MaxBatchSize {
		return nil, &domain.BatchTooLargeError{Size: len(npis), Max: o.config.MaxBatchSize}
	}

	concurrency := concurrencyHint
	if concurrency <= 0 {
		concurrency = o.config.DefaultConcurrency
	}
	if concurrency > maxConcurrency {
		concurrency = maxConcurrency
	}

	logger := zerolog.Ctx(ctx)
	outcomes := make([]domain.ScanOutcome, len(npis))

	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, npi := range npis {
		outcomes[i].NPI = npi

		// Reject malformed ids before scheduling.
		if err := ValidateNPI(npi); err != nil {
			outcomes[i].FailureReason = err.Error()
			continue
		}

		wg.Add(1)
		go func(idx int, id string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				outcomes[idx].FailureReason = ctx.Err().Error()
				return
			}
			defer func() { <-sem }()

			result, err := o.coordinator.ScanOne(ctx, id)
			if err != nil {
				logger.Warn().Str("npi", id).Err(err).Msg("provider scan failed")
				outcomes[idx].FailureReason = err.Error()
				return
			}
			outcomes[idx].Result = result
		}(i, npi)
	}

	// Merge only after every worker has terminated; the merge itself is
	// single-threaded.
	wg.Wait()

	return mergeOutcomes(outcomes), nil
}
