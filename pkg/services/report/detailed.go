package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

// dailyTableDays caps the per-day event table to the most recent dates.
const dailyTableDays = 14

func BuildDetailedReport(data Data, opts Options) domain.Report {
	averages := CalculateDomainAverages(data.CheckIns)
	counts := CountEventsByType(data.Events)
	naps := CalculateNapStats(data.Events)

	r := newReport(domain.ReportDetailed, "WAKESTATE DETAILED PATTERNS REPORT", data)
	r.GeneratedAt = opts.GeneratedAt
	r.Header = periodHeader(data, opts)

	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "DATA SUMMARY",
		Style: domain.SectionRule,
		Lines: []string{
			fmt.Sprintf("Total check-ins: %d", len(data.CheckIns)),
			fmt.Sprintf("Check-ins per day: %s", fixed1(perDay(len(data.CheckIns), data.TotalDays))),
			fmt.Sprintf("Total events: %d", len(data.Events)),
			"",
			"Event Breakdown:",
			fmt.Sprintf("  Naps: %d", counts.Naps),
			fmt.Sprintf("  Cataplexy: %d", counts.Cataplexy),
			fmt.Sprintf("  Other: %d", counts.Other),
		},
	})

	var distribution []string
	for _, d := range domain.NarcolepsyDomains {
		hist, n := histogram(data.CheckIns, d)
		if n == 0 {
			continue
		}
		if len(distribution) > 0 {
			distribution = append(distribution, "")
		}
		distribution = append(distribution,
			d.Label(),
			fmt.Sprintf("  Average: %s/5", fixed1(averages[d])),
			fmt.Sprintf("  Distribution: 1★(%d) 2★(%d) 3★(%d) 4★(%d) 5★(%d)", hist[0], hist[1], hist[2], hist[3], hist[4]),
		)
	}
	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "NARCOLEPSY SYMPTOM SEVERITY DISTRIBUTION",
		Style: domain.SectionRule,
		Lines: distribution,
	})

	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "DAILY EVENT SUMMARY",
		Style: domain.SectionRule,
		Lines: dailyEventTable(data.Events),
	})

	if counts.Naps > 0 {
		duration := "Not recorded"
		if naps.AvgDuration > 0 {
			duration = fmt.Sprintf("%d minutes", naps.AvgDuration)
		}
		r.Sections = append(r.Sections, domain.ReportSection{
			Title: "NAP ANALYSIS",
			Style: domain.SectionRule,
			Lines: []string{
				fmt.Sprintf("Total naps: %d", counts.Naps),
				fmt.Sprintf("Naps per day: %s", fixed1(perDay(counts.Naps, data.TotalDays))),
				fmt.Sprintf("Planned naps: %d%%", naps.PlannedRatio),
				fmt.Sprintf("Average duration: %s", duration),
			},
		})
	}

	if counts.Cataplexy > 0 {
		severity := make(map[domain.SeverityTag]int)
		for _, e := range data.Events {
			if e.Kind() == domain.EventKindCataplexy && e.SeverityTag != "" {
				severity[e.SeverityTag]++
			}
		}
		r.Sections = append(r.Sections, domain.ReportSection{
			Title: "CATAPLEXY ANALYSIS",
			Style: domain.SectionRule,
			Lines: []string{
				fmt.Sprintf("Total episodes: %d", counts.Cataplexy),
				fmt.Sprintf("Per week average: %s", fixed1(perDay(counts.Cataplexy, data.TotalDays)*7)),
				"",
				"Severity distribution:",
				fmt.Sprintf("  Mild: %d", severity[domain.SeverityMild]),
				fmt.Sprintf("  Moderate: %d", severity[domain.SeverityModerate]),
				fmt.Sprintf("  Severe: %d", severity[domain.SeveritySevere]),
			},
		})
	}

	if opts.IncludeMedications {
		if section, ok := medicationSection(data); ok {
			r.Sections = append(r.Sections, section)
		}
	}

	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "DISCLAIMER",
		Style: domain.SectionBanner,
		Lines: []string{
			"This report is for informational purposes only. WakeState is",
			"a personal tracking tool and is NOT a medical device.",
			"",
			"All data is self-reported. This report does not provide",
			"medical advice, diagnosis, or treatment recommendations.",
		},
	})
	return r
}

// histogram counts scores 1 through 5 for d. Scores outside that range are
// not counted.
func histogram(checkIns []domain.CheckIn, d domain.Domain) ([5]int, int) {
	var hist [5]int
	n := 0
	for _, c := range checkIns {
		v, ok := c.Score(d)
		if !ok || v < domain.MinScore || v > domain.MaxScore {
			continue
		}
		hist[v-1]++
		n++
	}
	return hist, n
}

func dailyEventTable(events []domain.TrackingEvent) []string {
	byDate := make(map[string]EventCounts)
	for _, e := range events {
		c := byDate[e.LocalDate]
		switch e.Kind() {
		case domain.EventKindNap:
			c.Naps++
		case domain.EventKindCataplexy:
			c.Cataplexy++
		default:
			c.Other++
		}
		byDate[e.LocalDate] = c
	}

	if len(byDate) == 0 {
		return []string{"No events recorded in this period."}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	if len(dates) > dailyTableDays {
		dates = dates[len(dates)-dailyTableDays:]
	}

	lines := []string{
		"Date           Naps  Cataplexy  Other",
		strings.Repeat("─", 37),
	}
	for _, date := range dates {
		c := byDate[date]
		lines = append(lines, fmt.Sprintf("%s    %4d  %9d  %5d", date, c.Naps, c.Cataplexy, c.Other))
	}
	return lines
}
