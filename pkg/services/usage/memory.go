package usage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
)

// MemoryGate is a process-local gate for development and tests. It resets at
// the UTC day boundary. Multi-instance deployments need RedisGate; this
// counter has no cross-process consistency.
type MemoryGate struct {
	mu     sync.Mutex
	counts map[string]int
	day    string
	tier   func(accountID string) Tier
	now    func() time.Time
}

func NewMemoryGate(tier func(accountID string) Tier) *MemoryGate {
	return &MemoryGate{
		counts: make(map[string]int),
		tier:   tier,
		now:    time.Now,
	}
}

func (g *MemoryGate) CheckAndReserve(_ context.Context, accountID string, category Category) error {
	limits := LimitsFor(g.tier(accountID))
	quota := limits.dailyQuota(category)
	if quota <= 0 {
		return &domain.RateLimitError{
			Reason: fmt.Sprintf("%s scans are not available on this tier", category),
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	day := g.now().UTC().Format("2006-01-02")
	if day != g.day {
		g.counts = make(map[string]int)
		g.day = day
	}

	key := accountID + ":" + string(category)
	g.counts[key]++
	if g.counts[key] > quota {
		return &domain.RateLimitError{
			Reason: fmt.Sprintf("daily %s quota of %d reached", category, quota),
		}
	}
	return nil
}
