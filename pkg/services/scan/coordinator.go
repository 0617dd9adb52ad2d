package scan

import (
	"context"
	"errors"
	"time"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/md-tools/revenue-atlas/pkg/services/gap"
	"github.com/md-tools/revenue-atlas/pkg/services/plan"
	"github.com/md-tools/revenue-atlas/pkg/services/score"
	"github.com/rs/zerolog"
)

// BenchmarkRepository is the read-only lookup of per-specialty billing norms.
// A nil benchmark with a nil error is a valid "unknown specialty" result.
type BenchmarkRepository interface {
	GetBenchmark(ctx context.Context, specialty string) (*domain.SpecialtyBenchmark, error)
}

// ProviderRecordSource is the read-only lookup of one provider's billing
// totals. A missing provider is reported as domain.ErrNotFound.
type ProviderRecordSource interface {
	FetchProvider(ctx context.Context, npi string) (*domain.ProviderRecord, error)
}

const defaultFetchTimeout = 10 * time.Second

/// Coordinator runs the full single-provider analysis: record resolution,
// gap calculation, scoring, and action planning.
type Coordinator struct {
	providers    ProviderRecordSource
	benchmarks   BenchmarkRepository
	fetchTimeout time.Duration
}

func NewCoordinator(providers ProviderRecordSource, benchmarks BenchmarkRepository) *Coordinator {
	return &Coordinator{
		providers:    providers,
		benchmarks:   benchmarks,
		fetchTimeout: defaultFetchTimeout,
	}
}

// WithFetchTimeout overrides the per-fetch deadline applied to provider and
// benchmark lookups.
func (c *Coordinator) WithFetchTimeout(d time.Duration) *Coordinator {
	c.fetchTimeout = d
	return c
}

// ValidateNPI reports whether id is a well-formed 10-digit identifier.
func ValidateNPI(id string) error {
	if len(id) != 10 {
		return &domain.InvalidIdentifierError{ID: id}
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return &domain.InvalidIdentifierError{ID: id}
		}
	}
	return nil
}

// ScanOne analyzes a single provider. A provider missing from the source is
// synthesized deterministically rather than surfaced as an error; only a
// malformed id or an unreachable upstream fails the call.
func (c *Coordinator) ScanOne(ctx context.Context, npi string) (*domain.ScanResult, error) {
	if err := ValidateNPI(npi); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)

	rec, err := c.resolveProvider(ctx, npi)
	if err != nil {
		return nil, err
	}
	if rec.Source == domain.DataSourceEstimated {
		logger.Debug().Str("npi", npi).Msg("using synthesized billing profile")
	}

	bm, err := c.resolveBenchmark(ctx, rec.Specialty)
	if err != nil {
		return nil, err
	}

	benchmark := domain.DefaultBenchmark()
	if bm != nil {
		benchmark = *bm
	}

	programs := gap.CalculateProgramGaps(*rec, benchmark)
	coding := gap.CalculateCodingGap(*rec, benchmark)

	return &domain.ScanResult{
		Provider:           *rec,
		Benchmark:          benchmark,
		ProgramGaps:        programs,
		CodingGap:          coding,
		Score:              score.Compute(*rec, &benchmark),
		Actions:            plan.Build(programs, coding),
		TotalMissedRevenue: gap.TotalMissedRevenue(programs, coding),
		Source:             rec.Source,
	}, nil
}

// resolveProvider is the Lookup -> RealData | Synthesize state machine.
func (c *Coordinator) resolveProvider(ctx context.Context, npi string) (*domain.ProviderRecord, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	rec, err := c.providers.FetchProvider(fetchCtx, npi)
	switch {
	case err == nil:
		if rec.Source == "" {
			// A resolved record with no billing detail carries identity
			// fields only and is still an estimate.
			if rec.Visits.Total() > 0 || rec.TotalServices > 0 {
				rec.Source = domain.DataSourceCMS
			} else {
				rec.Source = domain.DataSourceEstimated
			}
		}
		return rec, nil
	case errors.Is(err, domain.ErrNotFound):
		synth := SynthesizeProvider(npi)
		return &synth, nil
	default:
		return nil, &domain.UpstreamError{Source: "provider record source", Err: err}
	}
}

func (c *Coordinator) resolveBenchmark(ctx context.Context, specialty string) (*domain.SpecialtyBenchmark, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	bm, err := c.benchmarks.GetBenchmark(fetchCtx, specialty)
	if err != nil {
		return nil, &domain.UpstreamError{Source: "benchmark repository", Err: err}
	}
	return bm, nil
}
