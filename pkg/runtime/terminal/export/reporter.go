package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/services/report"
)

type TableConfig struct {
	DateWidth  int
	TimeWidth  int
	LabelWidth int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		DateWidth:  10,
		TimeWidth:  5,
		LabelWidth: 36,
		ValueWidth: 40,
	}
}

// Reporter writes rendered reports and listings to the console.
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

// Handle renders r as plain text to the console, or to path when set.
func (c *Reporter) Handle(r domain.Report, path string) error {
	text, err := report.Render(r)
	if err != nil {
		return err
	}
	if path == "" {
		_, err = io.WriteString(c.writer, text)
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	_, err = fmt.Fprintf(c.writer, "Report written to %s\n", path)
	return err
}

// Table prints rows of date, time, label and value columns framed by
// separators.
func (c *Reporter) Table(headers [4]string, rows [][4]string) error {
	funcMap := template.FuncMap{
		"formatRow": func(row [4]string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s | %-*s |",
				c.config.DateWidth, row[0],
				c.config.TimeWidth, row[1],
				c.config.LabelWidth, row[2],
				c.config.ValueWidth, row[3])
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.DateWidth+2),
				strings.Repeat("-", c.config.TimeWidth+2),
				strings.Repeat("-", c.config.LabelWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `{{separator}}
{{formatRow .Headers}}
{{separator}}
{{range .Rows}}{{formatRow .}}
{{end}}{{separator}}
`

	t, err := template.New("table").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Headers [4]string
		Rows    [][4]string
	}{headers, rows})
}
