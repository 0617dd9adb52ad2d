package usage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func proTier(string) Tier  { return TierPro }
func freeTier(string) Tier { return TierFree }

func TestMemoryGate_AllowsUpToQuota(t *testing.T) {
	g := NewMemoryGate(freeTier)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		assert.NoError(t, g.CheckAndReserve(ctx, "acct-1", CategoryScan))
	}

	err := g.CheckAndReserve(ctx, "acct-1", CategoryScan)
	var limited *domain.RateLimitError
	require.ErrorAs(t, err, &limited)
	assert.Contains(t, limited.Reason, "quota of 5")
}

func TestMemoryGate_AccountsAreIndependent(t *testing.T) {
	g := NewMemoryGate(freeTier)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, g.CheckAndReserve(ctx, "acct-1", CategoryScan))
	}
	assert.NoError(t, g.CheckAndReserve(ctx, "acct-2", CategoryScan))
}

func TestMemoryGate_GroupScansDeniedOnFreeTier(t *testing.T) {
	g := NewMemoryGate(freeTier)

	err := g.CheckAndReserve(context.Background(), "acct-1", CategoryGroup)

	var limited *domain.RateLimitError
	require.ErrorAs(t, err, &limited)
	assert.Contains(t, limited.Reason, "not available")
}

func TestMemoryGate_ResetsAtDayBoundary(t *testing.T) {
	g := NewMemoryGate(freeTier)
	current := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return current }
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, g.CheckAndReserve(ctx, "acct-1", CategoryScan))
	}
	require.Error(t, g.CheckAndReserve(ctx, "acct-1", CategoryScan))

	current = current.Add(2 * time.Hour) // crosses midnight UTC
	assert.NoError(t, g.CheckAndReserve(ctx, "acct-1", CategoryScan))
}

func TestMemoryGate_ConcurrentReservationsRespectQuota(t *testing.T) {
	g := NewMemoryGate(proTier) // 100 daily scans
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.CheckAndReserve(ctx, "acct-1", CategoryScan) == nil {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, allowed)
}

func TestLimitsFor_UnknownTierGetsFreeLimits(t *testing.T) {
	assert.Equal(t, LimitsFor(TierFree), LimitsFor(Tier("mystery")))
}

func TestLimitsFor_TierOrdering(t *testing.T) {
	free, pro, ent := LimitsFor(TierFree), LimitsFor(TierPro), LimitsFor(TierEnterprise)

	assert.Less(t, free.DailyScans, pro.DailyScans)
	assert.Less(t, pro.DailyScans, ent.DailyScans)
	assert.Less(t, pro.MaxBatchSize, ent.MaxBatchSize)
	assert.Equal(t, 5, pro.Concurrency)
	assert.Equal(t, 10, ent.Concurrency)
}
