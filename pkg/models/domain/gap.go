package domain

// Category identifies one of the five revenue-gap sources.
type Category string

const (
	CategoryCoding Category = "coding"
	CategoryCCM    Category = "ccm"
	CategoryRPM    Category = "rpm"
	CategoryBHI    Category = "bhi"
	CategoryAWV    Category = "awv"
)

// Categories lists all gap categories in their fixed precedence order.
// The order is load-bearing: action-plan ties are broken by it.
func Categories() []Category {
	return []Category{CategoryCoding, CategoryCCM, CategoryRPM, CategoryBHI, CategoryAWV}
}

// ProgramGap is the estimated annual revenue left on the table for one care
// program. AnnualGap is always >= 0; over-enrollment clamps to zero.
type ProgramGap struct {
	Category               Category
	BillingCodes           []string
	EligiblePatients       int
	EnrolledPatients       int
	MonthlyRate            float64
	CaptureRate            float64
	CurrentAnnualRevenue   float64
	PotentialAnnualRevenue float64
	AnnualGap              float64
}

// LevelShares holds the mid/high evaluation-level mix used by the coding gap.
type LevelShares struct {
	Level3 float64
	Level4 float64
	Level5 float64
}

// CodingGap compares a provider's evaluation-level mix to benchmark and prices
// the recommended shift of under-coded visits.
type CodingGap struct {
	CurrentShares   LevelShares
	BenchmarkShares LevelShares
	ShiftableVisits int
	Shift           string
	AnnualGap       float64
}
