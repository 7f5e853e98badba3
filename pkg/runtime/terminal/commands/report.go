package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/runtime/terminal/export"
	"github.com/de-tools/wakestate/pkg/services/report"
	"github.com/spf13/cobra"
)

type ReportCmd struct {
	env      *Env
	reporter *export.Reporter

	dateRange         string
	start             string
	end               string
	providerQuestions bool
	medications       bool
	clinician         bool
	out               string
}

func NewReportCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate a plain text report",
	}

	kinds := []struct {
		kind  domain.ReportKind
		short string
	}{
		{domain.ReportQuick, "One page summary to share with a clinician"},
		{domain.ReportDetailed, "Distributions, daily events and nap and cataplexy analysis"},
		{domain.ReportPersonal, "A reflective summary for yourself"},
	}
	for _, k := range kinds {
		rc := &ReportCmd{env: env, reporter: reporter}
		sub := &cobra.Command{
			Use:   string(k.kind),
			Short: k.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return rc.run(cmd, k.kind)
			},
		}

		f := sub.Flags()
		f.StringVar(&rc.dateRange, "range", string(report.Range30Days), "Date range: 7days, 30days, 90days or custom")
		f.StringVar(&rc.start, "start", "", "Custom range start (yyyy-MM-dd)")
		f.StringVar(&rc.end, "end", "", "Custom range end (yyyy-MM-dd)")
		f.BoolVar(&rc.providerQuestions, "provider-questions", false, "Add suggested questions for your provider")
		f.BoolVar(&rc.medications, "medications", false, "Add a medication section")
		f.BoolVar(&rc.clinician, "clinician", false, "Add severity labels and day counts for clinicians")
		f.StringVarP(&rc.out, "out", "o", "", "Write to this file, or into this directory under the default name")

		cmd.AddCommand(sub)
	}
	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, kind domain.ReportKind) error {
	a, err := rc.env.app()
	if err != nil {
		return err
	}
	now := rc.env.Now()

	opts := report.Options{
		DateRange:                report.RangeOption(rc.dateRange),
		IncludeProviderQuestions: rc.providerQuestions,
		IncludeMedications:       rc.medications,
		ClinicianMode:            rc.clinician,
	}
	if rc.start != "" || rc.end != "" {
		opts.DateRange = report.RangeCustom
	}
	if opts.CustomStart, err = parseDate(rc.start, now.Location()); err != nil {
		return err
	}
	if opts.CustomEnd, err = parseDate(rc.end, now.Location()); err != nil {
		return err
	}

	r, err := a.Reports.Build(cmd.Context(), kind, opts, now)
	if err != nil {
		return fmt.Errorf("error generating report: %w", err)
	}
	return rc.reporter.Handle(r, outputPath(rc.out, kind, now))
}

func parseDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected yyyy-MM-dd", s)
	}
	return &t, nil
}

func outputPath(out string, kind domain.ReportKind, now time.Time) string {
	if out == "" {
		return ""
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, report.Filename(kind, now))
	}
	return out
}

type TrendsCmd struct {
	env      *Env
	reporter *export.Reporter
	days     int
	domains  []string
}

func NewTrendsCmd(env *Env, reporter *export.Reporter) *cobra.Command {
	tc := &TrendsCmd{env: env, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "trends",
		Short: "Show daily domain averages",
		RunE:  tc.run,
	}
	cmd.Flags().IntVar(&tc.days, "days", 7, "Number of days to show, ending today")
	cmd.Flags().StringSliceVar(&tc.domains, "domain", nil, "Domain to include, defaults to all")
	return cmd
}

func (tc *TrendsCmd) run(cmd *cobra.Command, _ []string) error {
	a, err := tc.env.app()
	if err != nil {
		return err
	}

	domains, err := adapters.ParseDomains(tc.domains)
	if err != nil {
		return err
	}

	points := a.Reports.Trends(cmd.Context(), domains, tc.days, tc.env.Now())
	rows := make([][4]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, [4]string{p.Date, "", fmt.Sprintf("%d check-in(s)", p.CheckIns), formatAverages(p.Averages)})
	}
	return tc.reporter.Table([4]string{"Date", "", "Check-ins", "Averages"}, rows)
}

func formatAverages(averages map[domain.Domain]float64) string {
	out := ""
	for _, group := range [][]domain.Domain{domain.NarcolepsyDomains, domain.OverlappingDomains} {
		for _, d := range group {
			if v, ok := averages[d]; ok {
				if out != "" {
					out += " "
				}
				out += fmt.Sprintf("%s=%.1f", d, v)
			}
		}
	}
	return out
}
