package domain

// DataSource records where a provider's billing detail came from.
type DataSource string

const (
	// DataSourceCMS marks a record resolved with real billing detail.
	DataSourceCMS DataSource = "cms"
	// DataSourceEstimated marks a synthesized record, or one resolved
	// with identity fields only.
	DataSourceEstimated DataSource = "estimated"
)

// EMVisitCounts holds annual visit counts per evaluation level (99211-99215).
type EMVisitCounts struct {
	Level1 int
	Level2 int
	Level3 int
	Level4 int
	Level5 int
}

func (v EMVisitCounts) Total() int {
	return v.Level1 + v.Level2 + v.Level3 + v.Level4 + v.Level5
}

// Share returns the fraction of total visits billed at the given level (1-5).
// A zero total yields zero, not an error.
func (v EMVisitCounts) Share(level int) float64 {
	total := v.Total()
	if total == 0 {
		return 0
	}
	var count int
	switch level {
	case 1:
		count = v.Level1
	case 2:
		count = v.Level2
	case 3:
		count = v.Level3
	case 4:
		count = v.Level4
	case 5:
		count = v.Level5
	}
	return float64(count) / float64(total)
}

// ProgramServiceCounts holds annual billed service counts per care program.
type ProgramServiceCounts struct {
	CCM int
	RPM int
	BHI int
	AWV int
}

// ProviderRecord is one provider's annual billing summary. Immutable once
// fetched; owned exclusively by the scan that fetched it.
type ProviderRecord struct {
	NPI             string
	Name            string
	Specialty       string
	City            string
	State           string
	TotalPatients   int
	TotalPayment    float64
	TotalServices   int
	Visits          EMVisitCounts
	ProgramServices ProgramServiceCounts
	Source          DataSource
}
