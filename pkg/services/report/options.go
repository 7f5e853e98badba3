package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

var ErrUnknownKind = errors.New("unknown report kind")

type Options struct {
	DateRange                RangeOption
	CustomStart              *time.Time
	CustomEnd                *time.Time
	IncludeMedications       bool
	IncludeProviderQuestions bool
	ClinicianMode            bool
	// GeneratedAt is printed as the generation stamp. Zero omits the line.
	GeneratedAt time.Time
}

func ParseKind(s string) (domain.ReportKind, error) {
	switch k := domain.ReportKind(s); k {
	case domain.ReportQuick, domain.ReportDetailed, domain.ReportPersonal:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Build assembles the structured report of the given kind.
func Build(kind domain.ReportKind, data Data, opts Options) (domain.Report, error) {
	switch kind {
	case domain.ReportQuick:
		return BuildQuickSummary(data, opts), nil
	case domain.ReportDetailed:
		return BuildDetailedReport(data, opts), nil
	case domain.ReportPersonal:
		return BuildPersonalReport(data, opts), nil
	}
	return domain.Report{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func Generate(kind domain.ReportKind, data Data, opts Options) (string, error) {
	r, err := Build(kind, data, opts)
	if err != nil {
		return "", err
	}
	return Render(r)
}

func GenerateQuickSummary(data Data, opts Options) (string, error) {
	return Render(BuildQuickSummary(data, opts))
}

func GenerateDetailedReport(data Data, opts Options) (string, error) {
	return Render(BuildDetailedReport(data, opts))
}

func GeneratePersonalReport(data Data, opts Options) (string, error) {
	return Render(BuildPersonalReport(data, opts))
}

// Filename is the suggested download name for a report generated at now.
func Filename(kind domain.ReportKind, now time.Time) string {
	name := string(kind)
	if kind == domain.ReportQuick {
		name = "summary"
	}
	return fmt.Sprintf("wakestate-%s-%s.txt", name, now.Format(dateLayout))
}

func newReport(kind domain.ReportKind, title string, data Data) domain.Report {
	return domain.Report{
		Kind:  kind,
		Title: title,
		Period: domain.TimePeriod{
			Start:    data.StartDate,
			End:      data.EndDate,
			Duration: data.TotalDays,
		},
	}
}

func periodHeader(data Data, opts Options) []string {
	header := []string{fmt.Sprintf("Period: %s (%d days)", formatPeriod(data), data.TotalDays)}
	if !opts.GeneratedAt.IsZero() {
		header = append(header, "Generated: "+opts.GeneratedAt.Format(displayDateTime))
	}
	return header
}
