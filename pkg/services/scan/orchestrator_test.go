package scan

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource reports every id as not found, forcing synthesis, while
// tracking how many fetches run at the same instant.
type countingSource struct {
	mu      sync.Mutex
	current int32
	peak    int32
	delay   time.Duration
	fail    map[string]error
}

func (s *countingSource) FetchProvider(ctx context.Context, npi string) (*domain.ProviderRecord, error) {
	n := atomic.AddInt32(&s.current, 1)
	defer atomic.AddInt32(&s.current, -1)

	s.mu.Lock()
	if n > s.peak {
		s.peak = n
	}
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if err, ok := s.fail[npi]; ok {
		return nil, err
	}
	return nil, domain.ErrNotFound
}

type staticBenchmarks struct{}

func (staticBenchmarks) GetBenchmark(ctx context.Context, specialty string) (*domain.SpecialtyBenchmark, error) {
	bm := domain.DefaultBenchmark()
	bm.Specialty = specialty
	return &bm, nil
}

func npiList(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = "10000000" + string([]byte{byte('0' + i/10%10), byte('0' + i%10)})
	}
	return ids
}

func newTestOrchestrator(src ProviderRecordSource, maxBatch int) *Orchestrator {
	coord := NewCoordinator(src, staticBenchmarks{})
	return NewOrchestrator(coord, OrchestratorConfig{MaxBatchSize: maxBatch, DefaultConcurrency: 5})
}

func TestScanGroup_PreservesInputOrder(t *testing.T) {
	ids := npiList(20)
	o := newTestOrchestrator(&countingSource{}, 100)

	group, err := o.ScanGroup(context.Background(), ids, 8)

	require.NoError(t, err)
	require.Len(t, group.Outcomes, len(ids))
	for i, outcome := range group.Outcomes {
		assert.Equal(t, ids[i], outcome.NPI)
		require.True(t, outcome.Succeeded())
		assert.Equal(t, ids[i], outcome.Result.Provider.NPI)
	}
	assert.Equal(t, len(ids), group.TotalProviders)
	assert.Equal(t, group.TotalProviders, group.SuccessfulScans+group.FailedScans)
}

func TestScanGroup_ConcurrencyCeilingNeverExceeded(t *testing.T) {
	src := &countingSource{delay: 10 * time.Millisecond}
	o := newTestOrchestrator(src, 100)

	_, err := o.ScanGroup(context.Background(), npiList(40), 4)

	require.NoError(t, err)
	assert.LessOrEqual(t, src.peak, int32(4), "more than 4 fetches in flight")
	assert.Greater(t, src.peak, int32(1), "pool never ran concurrently")
}

func TestScanGroup_MalformedIDsDoNotBlockValidOnes(t *testing.T) {
	ids := []string{"bad", "1000000001", "123", "1000000002", "1000000003"}
	o := newTestOrchestrator(&countingSource{}, 100)

	group, err := o.ScanGroup(context.Background(), ids, 2)

	require.NoError(t, err)
	assert.Equal(t, 5, group.TotalProviders)
	assert.Equal(t, 2, group.FailedScans)
	assert.Equal(t, 3, group.SuccessfulScans)
	assert.False(t, group.Outcomes[0].Succeeded())
	assert.Contains(t, group.Outcomes[0].FailureReason, "invalid provider identifier")
	assert.True(t, group.Outcomes[1].Succeeded())
	assert.False(t, group.Outcomes[2].Succeeded())
}

func TestScanGroup_UpstreamFailureIsPerItem(t *testing.T) {
	src := &countingSource{fail: map[string]error{
		"1000000001": errors.New("connection reset"),
	}}
	o := newTestOrchestrator(src, 100)

	group, err := o.ScanGroup(context.Background(), []string{"1000000000", "1000000001", "1000000002"}, 3)

	require.NoError(t, err)
	assert.Equal(t, 1, group.FailedScans)
	assert.Equal(t, 2, group.SuccessfulScans)
	assert.False(t, group.Outcomes[1].Succeeded())
	assert.Contains(t, group.Outcomes[1].FailureReason, "upstream")
}

func TestScanGroup_AllFailedStillReturnsResult(t *testing.T) {
	ids := []string{"x", "y", "z"}
	o := newTestOrchestrator(&countingSource{}, 100)

	group, err := o.ScanGroup(context.Background(), ids, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, group.FailedScans)
	assert.Equal(t, 0, group.SuccessfulScans)
	assert.Equal(t, 0.0, group.TotalMissedRevenue)
	assert.Empty(t, group.Actions)
	assert.Empty(t, group.Specialties)
	assert.Equal(t, 0.0, group.AverageScore)
}

func TestScanGroup_BatchTooLarge(t *testing.T) {
	o := newTestOrchestrator(&countingSource{}, 3)

	_, err := o.ScanGroup(context.Background(), npiList(4), 2)

	var tooLarge *domain.BatchTooLargeError
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, 4, tooLarge.Size)
	assert.Equal(t, 3, tooLarge.Max)
}

func TestScanGroup_AggregatesMatchOutcomes(t *testing.T) {
	o := newTestOrchestrator(&countingSource{}, 100)

	group, err := o.ScanGroup(context.Background(), npiList(12), 4)
	require.NoError(t, err)

	var wantTotals domain.GapTotals
	scoreSum := 0
	bucketSum := 0
	for _, outcome := range group.Outcomes {
		require.True(t, outcome.Succeeded())
		r := outcome.Result
		wantTotals.Add(domain.CategoryCoding, r.CodingGap.AnnualGap)
		for _, g := range r.ProgramGaps {
			wantTotals.Add(g.Category, g.AnnualGap)
		}
		scoreSum += r.Score.Value
	}
	for _, b := range group.ScoreDistribution {
		bucketSum += b.Count
	}

	assert.Equal(t, wantTotals, group.GapTotals)
	assert.Equal(t, wantTotals.Total(), group.TotalMissedRevenue)
	assert.InDelta(t, float64(scoreSum)/12, group.AverageScore, 1e-9)
	assert.Equal(t, group.SuccessfulScans, bucketSum)

	specialtyProviders := 0
	for _, s := range group.Specialties {
		specialtyProviders += s.Providers
	}
	assert.Equal(t, group.SuccessfulScans, specialtyProviders)

	for i, item := range group.Actions {
		assert.Equal(t, i+1, item.Priority)
		assert.Greater(t, item.AnnualRevenue, 0.0)
	}
}

func TestScanGroup_CancellationStopsScheduling(t *testing.T) {
	src := &countingSource{delay: 50 * time.Millisecond}
	o := newTestOrchestrator(src, 200)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	group, err := o.ScanGroup(ctx, npiList(50), 2)

	// The batch itself never fails wholesale; cancelled items are recorded
	// as per-item failures.
	require.NoError(t, err)
	assert.Equal(t, 50, group.TotalProviders)
	assert.Greater(t, group.FailedScans, 0)
	assert.Equal(t, group.TotalProviders, group.SuccessfulScans+group.FailedScans)
}
