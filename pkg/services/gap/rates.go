package gap

import "github.com/md-tools/revenue-atlas/pkg/models/domain"

// Fixed business heuristics, ported verbatim. These are configuration
// constants, not a statistical model.
const (
	// Expected fraction of a panel eligible for each program.
	EligibilityCCM = 0.60
	EligibilityRPM = 0.40
	EligibilityBHI = 0.15
	EligibilityAWV = 1.00

	// Per-patient reimbursement.
	MonthlyRateCCM = 62.0
	MonthlyRateRPM = 110.0
	MonthlyRateBHI = 48.0
	VisitRateAWV   = 174.0

	// Monthly programs bill 12 service events per enrolled patient per year.
	monthlyCadence = 12

	// Fraction of level-3 volume empirically shiftable to level 4.
	codingShiftFraction = 0.15
)

// emLevelRates are the standard payment rates for evaluation levels 1-5.
var emLevelRates = [5]float64{23, 57, 90, 128, 180}

// EMLevelRate returns the standard payment for one evaluation level (1-5).
func EMLevelRate(level int) float64 {
	if level < 1 || level > 5 {
		return 0
	}
	return emLevelRates[level-1]
}

var billingCodes = map[domain.Category][]string{
	domain.CategoryCoding: {"99213", "99214"},
	domain.CategoryCCM:    {"99490", "99439"},
	domain.CategoryRPM:    {"99453", "99454", "99457"},
	domain.CategoryBHI:    {"99484"},
	domain.CategoryAWV:    {"G0438", "G0439"},
}

// BillingCodes returns the billing codes behind one gap category.
func BillingCodes(c domain.Category) []string {
	codes := billingCodes[c]
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
