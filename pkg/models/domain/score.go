package domain

// ScoreFactors are the three normalized ratios behind the composite score,
// each capped at 1.0.
type ScoreFactors struct {
	CodingIntensity   float64
	RevenuePerPatient float64
	ProgramBreadth    float64
}

// Score is the 0-100 composite benchmark-relative score with its tier label.
type Score struct {
	Value   int
	Tier    string
	Color   string
	Factors ScoreFactors
}
