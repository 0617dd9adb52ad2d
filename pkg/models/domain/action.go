package domain

// Difficulty is the fixed implementation-effort tier of an action.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ActionItem is one remediation step in a ranked action plan. Priorities form
// a dense 1..n sequence ordered by descending annual revenue.
type ActionItem struct {
	Priority          int
	Category          Category
	Title             string
	Description       string
	Difficulty        Difficulty
	ProvidersAffected int
	AnnualRevenue     float64
}
