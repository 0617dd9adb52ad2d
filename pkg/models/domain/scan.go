package domain

// ScanResult is the full single-provider analysis. Computed once, never
// mutated afterward.
type ScanResult struct {
	Provider           ProviderRecord
	Benchmark          SpecialtyBenchmark
	ProgramGaps        []ProgramGap
	CodingGap          CodingGap
	Score              Score
	Actions            []ActionItem
	TotalMissedRevenue float64
	Source             DataSource
}

// GapTotals sums annual gap dollars per category.
type GapTotals struct {
	Coding float64
	CCM    float64
	RPM    float64
	BHI    float64
	AWV    float64
}

func (g GapTotals) Total() float64 {
	return g.Coding + g.CCM + g.RPM + g.BHI + g.AWV
}

// Get returns the total for one category.
func (g GapTotals) Get(c Category) float64 {
	switch c {
	case CategoryCoding:
		return g.Coding
	case CategoryCCM:
		return g.CCM
	case CategoryRPM:
		return g.RPM
	case CategoryBHI:
		return g.BHI
	case CategoryAWV:
		return g.AWV
	}
	return 0
}

// Add accumulates amount into the given category.
func (g *GapTotals) Add(c Category, amount float64) {
	switch c {
	case CategoryCoding:
		g.Coding += amount
	case CategoryCCM:
		g.CCM += amount
	case CategoryRPM:
		g.RPM += amount
	case CategoryBHI:
		g.BHI += amount
	case CategoryAWV:
		g.AWV += amount
	}
}

// ScanOutcome is one provider's slot in a group scan: either an embedded
// ScanResult or the failure reason for that identifier.
type ScanOutcome struct {
	NPI           string
	Result        *ScanResult
	FailureReason string
}

func (o ScanOutcome) Succeeded() bool {
	return o.Result != nil
}

// ScoreBucket is one fixed-width band of the group score distribution.
type ScoreBucket struct {
	Label string
	Low   int
	High  int
	Count int
}

// SpecialtyBreakdown aggregates one specialty's slice of a group scan.
type SpecialtyBreakdown struct {
	Specialty     string
	Providers     int
	MissedRevenue float64
}

// GroupScanResult is the aggregate analysis over a practice group. Outcomes
// preserve the caller's input order; aggregates cover successful scans only.
type GroupScanResult struct {
	Outcomes              []ScanOutcome
	TotalProviders        int
	SuccessfulScans       int
	FailedScans           int
	GapTotals             GapTotals
	TotalCurrentRevenue   float64
	TotalPotentialRevenue float64
	TotalMissedRevenue    float64
	AverageScore          float64
	ScoreDistribution     []ScoreBucket
	Specialties           []SpecialtyBreakdown
	Actions               []ActionItem
}
