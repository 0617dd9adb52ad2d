package usage

// Tier is an account's subscription level.
type Tier string

const (
	TierFree       Tier = "free"
	TierPro        Tier = "pro"
	TierEnterprise Tier = "enterprise"
)

// Limits are the per-tier quota and sizing bounds.
type Limits struct {
	DailyScans   int
	DailyGroups  int
	MaxBatchSize int
	Concurrency  int
}

var tierLimits = map[Tier]Limits{
	TierFree:       {DailyScans: 5, DailyGroups: 0, MaxBatchSize: 0, Concurrency: 1},
	TierPro:        {DailyScans: 100, DailyGroups: 10, MaxBatchSize: 25, Concurrency: 5},
	TierEnterprise: {DailyScans: 1000, DailyGroups: 100, MaxBatchSize: 100, Concurrency: 10},
}

// LimitsFor returns the bounds for a tier; unknown tiers get free limits.
func LimitsFor(t Tier) Limits {
	if l, ok := tierLimits[t]; ok {
		return l
	}
	return tierLimits[TierFree]
}

func (l Limits) dailyQuota(c Category) int {
	if c == CategoryGroup {
		return l.DailyGroups
	}
	return l.DailyScans
}
