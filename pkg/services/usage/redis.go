package usage

import (
	"context"
	"fmt"
	"time"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
	"github.com/redis/go-redis/v9"
)

// RedisGate enforces daily quotas with a shared atomic counter, so the limit
// holds across concurrent requests and across instances. Keys roll over at
// midnight UTC.
type RedisGate struct {
	client *redis.Client
	tier   func(accountID string) Tier
	now    func() time.Time
}

// NewRedisGate builds a gate over an existing redis client. tier resolves an
// account to its subscription tier.
func NewRedisGate(client *redis.Client, tier func(accountID string) Tier) *RedisGate {
	return &RedisGate{
		client: client,
		tier:   tier,
		now:    time.Now,
	}
}

func (g *RedisGate) CheckAndReserve(ctx context.Context, accountID string, category Category) error {
	limits := LimitsFor(g.tier(accountID))
	quota := limits.dailyQuota(category)
	if quota <= 0 {
		return &domain.RateLimitError{
			Reason: fmt.Sprintf("%s scans are not available on this tier", category),
		}
	}

	now := g.now().UTC()
	key := fmt.Sprintf("usage:%s:%s:%s", accountID, category, now.Format("2006-01-02"))

	count, err := g.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("usage counter increment failed: %w", err)
	}
	if count == 1 {
		midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
		if err := g.client.ExpireAt(ctx, key, midnight).Err(); err != nil {
			return fmt.Errorf("usage counter expiry failed: %w", err)
		}
	}

	if count > int64(quota) {
		return &domain.RateLimitError{
			Reason: fmt.Sprintf("daily %s quota of %d reached", category, quota),
		}
	}
	return nil
}
