package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with summary cards and a
// yearly balance chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"months": FormatMonths,
	"date":   func(d interface{ Format(string) string }) string { return d.Format(dateLayout) },
	"add":    func(i, j int) int { return i + j },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

// chartSeries is the per-scenario data handed to the inline chart script.
type chartSeries struct {
	Name     string    `json:"name"`
	Years    []int     `json:"years"`
	Balances []float64 `json:"balances"`
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	rec := AnalyzeScenarios(results)

	series := make([]chartSeries, 0, len(results.Scenarios))
	startYear := results.Loan.StartDate.Year()
	for _, sc := range results.Scenarios {
		s := chartSeries{Name: sc.Name}
		for _, pt := range sc.Trajectory {
			s.Years = append(s.Years, startYear+pt.YearIndex)
			s.Balances = append(s.Balances, pt.RemainingBalance.InexactFloat64())
		}
		series = append(series, s)
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		Series         []chartSeries
		StartYear      int
	}{results, rec, GenerateAssumptions(results.Loan), series, startYear}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
