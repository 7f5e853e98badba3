package tracker

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/de-tools/wakestate/pkg/services/report"
	"github.com/go-chi/chi/v5"
)

const defaultTrendDays = 7

// GetReport renders a report as plain text, or as its structure with
// ?format=json.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	kind, err := report.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		h.fail(w, r, err, "error generating report")
		return
	}

	now := h.now()
	opts, err := reportOptions(r, now.Location())
	if err != nil {
		h.fail(w, r, err, "error generating report")
		return
	}

	built, err := h.app.Reports.Build(r.Context(), kind, opts, now)
	if err != nil {
		h.fail(w, r, err, "error generating report")
		return
	}

	if r.URL.Query().Get("format") == "json" {
		h.writeJSON(w, r, http.StatusOK, adapters.MapReportDomainToApi(built))
		return
	}

	text, err := report.Render(built)
	if err != nil {
		h.fail(w, r, err, "error generating report")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", report.Filename(kind, now)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// reportOptions reads range, start, end, providerQuestions, medications and
// clinician. A start or end forces the custom range.
func reportOptions(r *http.Request, loc *time.Location) (report.Options, error) {
	q := r.URL.Query()

	opts := report.Options{DateRange: report.Range30Days}
	if v := q.Get("range"); v != "" {
		switch rng := report.RangeOption(v); rng {
		case report.Range7Days, report.Range30Days, report.Range90Days, report.RangeCustom:
			opts.DateRange = rng
		default:
			return report.Options{}, fmt.Errorf("%w: unknown range %q", errBadRequest, v)
		}
	}

	var err error
	if opts.CustomStart, err = queryDate(q.Get("start"), loc); err != nil {
		return report.Options{}, err
	}
	if opts.CustomEnd, err = queryDate(q.Get("end"), loc); err != nil {
		return report.Options{}, err
	}
	if opts.CustomStart != nil || opts.CustomEnd != nil {
		opts.DateRange = report.RangeCustom
	}

	if opts.IncludeProviderQuestions, err = queryBool(r, "providerQuestions"); err != nil {
		return report.Options{}, err
	}
	if opts.IncludeMedications, err = queryBool(r, "medications"); err != nil {
		return report.Options{}, err
	}
	if opts.ClinicianMode, err = queryBool(r, "clinician"); err != nil {
		return report.Options{}, err
	}
	return opts, nil
}

func queryDate(s string, loc *time.Location) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected yyyy-MM-dd", errBadRequest, s)
	}
	return &t, nil
}

// GetTrends answers daily averages for ?days (default 7). ?domain may repeat
// or hold a comma separated list.
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", defaultTrendDays)
	if err != nil {
		h.fail(w, r, err, "failed to compute trends")
		return
	}

	var names []string
	for _, v := range r.URL.Query()["domain"] {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	domains, err := adapters.ParseDomains(names)
	if err != nil {
		h.fail(w, r, err, "failed to compute trends")
		return
	}

	points := h.app.Reports.Trends(r.Context(), domains, days, h.now())
	out := make([]api.TrendPoint, 0, len(points))
	for _, p := range points {
		out = append(out, api.TrendPoint{
			Date:     p.Date,
			CheckIns: p.CheckIns,
			Averages: adapters.MapAveragesDomainToApi(p.Averages),
		})
	}
	h.writeJSON(w, r, http.StatusOK, out)
}
