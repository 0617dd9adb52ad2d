package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/md-tools/revenue-atlas/pkg/models/domain"
)

type TableConfig struct {
	CategoryWidth int
	AmountWidth   int
	DetailWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		CategoryWidth: 10,
		AmountWidth:   16,
		DetailWidth:   58,
	}
}

// Reporter renders scan results as fixed-width terminal tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (r *Reporter) funcMap() template.FuncMap {
	return template.FuncMap{
		"row": func(category string, amount float64, detail string) string {
			return fmt.Sprintf("| %-*s | $%-*.0f | %-*s |",
				r.config.CategoryWidth, category,
				r.config.AmountWidth-1, amount,
				r.config.DetailWidth, detail)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", r.config.CategoryWidth+2),
				strings.Repeat("-", r.config.AmountWidth+2),
				strings.Repeat("-", r.config.DetailWidth+2))
		},
		"capture": func(g domain.ProgramGap) string {
			return fmt.Sprintf("%d of %d eligible enrolled (%.0f%%)",
				g.EnrolledPatients, g.EligiblePatients, g.CaptureRate*100)
		},
	}
}

const scanTemplate = `
{{.Provider.Name}} ({{.Provider.NPI}}) - {{.Provider.Specialty}}, {{.Provider.City}} {{.Provider.State}}
Score: {{.Score.Value}}/100 [{{.Score.Tier}}]  Data: {{.Source}}
Total missed revenue: ${{printf "%.0f" .TotalMissedRevenue}}/year

{{separator}}
{{row "coding" .CodingGap.AnnualGap .CodingGap.Shift}}
{{- range .ProgramGaps}}
{{row (printf "%s" .Category) .AnnualGap (capture .)}}
{{- end}}
{{separator}}

Action plan:
{{- range .Actions}}
  {{.Priority}}. [{{.Difficulty}}] {{.Title}} (${{printf "%.0f" .AnnualRevenue}}/year)
{{- end}}
`

// HandleScan renders one provider's scan.
func (r *Reporter) HandleScan(result *domain.ScanResult) error {
	tmpl, err := template.New("scan").Funcs(r.funcMap()).Parse(scanTemplate)
	if err != nil {
		return fmt.Errorf("parsing scan template: %w", err)
	}
	return tmpl.Execute(r.writer, result)
}

const groupTemplate = `
Group scan: {{.SuccessfulScans}}/{{.TotalProviders}} providers analyzed ({{.FailedScans}} failed)
Average score: {{printf "%.1f" .AverageScore}}
Total missed revenue: ${{printf "%.0f" .TotalMissedRevenue}}/year

Specialty mix:
{{- range .Specialties}}
  {{.Specialty}}: {{.Providers}} providers, ${{printf "%.0f" .MissedRevenue}}/year missed
{{- end}}

Score distribution:
{{- range .ScoreDistribution}}
  {{.Label}}: {{.Count}}
{{- end}}

Practice action plan:
{{- range .Actions}}
  {{.Priority}}. [{{.Difficulty}}] {{.Title}} ({{.ProvidersAffected}} providers, ${{printf "%.0f" .AnnualRevenue}}/year)
{{- end}}

Failures:
{{- range .Outcomes}}{{if not .Succeeded}}
  {{.NPI}}: {{.FailureReason}}
{{- end}}{{end}}
`

// HandleGroup renders a group scan summary.
func (r *Reporter) HandleGroup(group *domain.GroupScanResult) error {
	tmpl, err := template.New("group").Funcs(r.funcMap()).Parse(groupTemplate)
	if err != nil {
		return fmt.Errorf("parsing group template: %w", err)
	}
	return tmpl.Execute(r.writer, group)
}
