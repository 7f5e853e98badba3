package report

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

const lineWidth = 59

const reportTemplate = `{{heavy}}
{{center .Title}}
{{heavy}}
{{- if .Header}}
{{range .Header}}
{{.}}
{{- end}}
{{- end}}
{{range .Sections}}
{{sectionHeader .}}
{{- range .Lines}}
{{.}}
{{- end}}
{{end}}
{{light}}
{{center "Generated by WakeState"}}
{{heavy}}
`

var textTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"heavy":         func() string { return strings.Repeat("═", lineWidth) },
	"light":         func() string { return strings.Repeat("─", lineWidth) },
	"center":        center,
	"sectionHeader": sectionHeader,
}).Parse(reportTemplate))

// Render lays a report out as plain text.
func Render(r domain.Report) (string, error) {
	var b strings.Builder
	if err := textTemplate.Execute(&b, r); err != nil {
		return "", fmt.Errorf("render %s report: %w", r.Kind, err)
	}
	return b.String(), nil
}

func center(s string) string {
	pad := (lineWidth - utf8.RuneCountInString(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func sectionHeader(s domain.ReportSection) string {
	light := strings.Repeat("─", lineWidth)
	switch s.Style {
	case domain.SectionBanner:
		heavy := strings.Repeat("═", lineWidth)
		return heavy + "\n" + center(s.Title) + "\n" + heavy + "\n"
	case domain.SectionHeading:
		return s.Title + "\n" + strings.Repeat("─", utf8.RuneCountInString(s.Title)) + "\n"
	default:
		if s.Title == "" {
			return light + "\n"
		}
		return light + "\n" + center(s.Title) + "\n" + light + "\n"
	}
}

// formatAverage prints an average the short way: 3 rather than 3.0.
func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func formatPeriod(d Data) string {
	return d.StartDate.Format(displayDate) + " – " + d.EndDate.Format(displayDate)
}

const (
	displayDate     = "Jan 2, 2006"
	displayDateTime = "Jan 2, 2006 3:04 PM"
)
