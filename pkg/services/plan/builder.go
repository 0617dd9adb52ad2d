package plan

import (
	"fmt"
	"sort"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
)

type template struct {
	title      string
	describe   func(annual float64, providers int) string
	difficulty domain.Difficulty
}

var templates = map[domain.Category]template{
	domain.CategoryCoding: {
		title:      "Optimize evaluation-level coding",
		difficulty: domain.DifficultyEasy,
		describe: func(annual float64, providers int) string {
			return fmt.Sprintf(
				"Review under-coded level-3 visits against documentation; an estimated $%.0f/year is recoverable through accurate level-4 coding.", annual)
		},
	},
	domain.CategoryCCM: {
		title:      "Launch chronic care management",
		difficulty: domain.DifficultyMedium,
		describe: func(annual float64, providers int) string {
			return fmt.Sprintf(
				"Enroll eligible chronic-condition patients in CCM (99490); an estimated $%.0f/year in unbilled monthly care coordination.", annual)
		},
	},
	domain.CategoryRPM: {
		title:      "Start remote patient monitoring",
		difficulty: domain.DifficultyMedium,
		describe: func(annual float64, providers int) string {
			return fmt.Sprintf(
				"Deploy RPM devices for eligible patients (99453/99454/99457); an estimated $%.0f/year in monitoring revenue.", annual)
		},
	},
	domain.CategoryBHI: {
		title:      "Integrate behavioral health",
		difficulty: domain.DifficultyHard,
		describe: func(annual float64, providers int) string {
			return fmt.Sprintf(
				"Add behavioral health integration (99484) for patients with behavioral conditions; an estimated $%.0f/year.", annual)
		},
	},
	domain.CategoryAWV: {
		title:      "Schedule annual wellness visits",
		difficulty: domain.DifficultyEasy,
		describe: func(annual float64, providers int) string {
			return fmt.Sprintf(
				"Run outreach to book annual wellness visits (G0438/G0439); an estimated $%.0f/year in uncompleted visits.", annual)
		},
	},
}

// precedence breaks dollar ties: coding > CCM > RPM > BHI > AWV.
var precedence = map[domain.Category]int{
	domain.CategoryCoding: 0,
	domain.CategoryCCM:    1,
	domain.CategoryRPM:    2,
	domain.CategoryBHI:    3,
	domain.CategoryAWV:    4,
}

// Build converts the five computed gaps into a ranked action plan. Only
// strictly positive gaps produce actions. Ordering is descending by annual
// dollar amount with ties broken by the fixed category precedence, so
// repeated runs on identical input produce identical plans.
func Build(programs []domain.ProgramGap, coding domain.CodingGap) []domain.ActionItem {
	totals := domain.GapTotals{}
	totals.Add(domain.CategoryCoding, coding.AnnualGap)
	for _, g := range programs {
		totals.Add(g.Category, g.AnnualGap)
	}
	providers := map[domain.Category]int{}
	for _, c := range domain.Categories() {
		if totals.Get(c) > 0 {
			providers[c] = 1
		}
	}
	return BuildFromTotals(totals, providers)
}

// BuildFromTotals ranks one action per category with a positive total. The
// providers map carries, per category, how many providers contribute to the
// total; group scans pass counts above one.
func BuildFromTotals(totals domain.GapTotals, providers map[domain.Category]int) []domain.ActionItem {
	var items []domain.ActionItem
	for _, c := range domain.Categories() {
		annual := totals.Get(c)
		if annual <= 0 {
			continue
		}
		tmpl := templates[c]
		affected := providers[c]
		if affected < 1 {
			affected = 1
		}
		items = append(items, domain.ActionItem{
			Category:          c,
			Title:             tmpl.title,
			Description:       tmpl.describe(annual, affected),
			Difficulty:        tmpl.difficulty,
			ProvidersAffected: affected,
			AnnualRevenue:     annual,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AnnualRevenue != items[j].AnnualRevenue {
			return items[i].AnnualRevenue > items[j].AnnualRevenue
		}
		return precedence[items[i].Category] < precedence[items[j].Category]
	})

	for i := range items {
		items[i].Priority = i + 1
	}
	return items
}
