package report

import (
	"fmt"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

const continueTracking = "Continue tracking to build a clearer picture of your patterns."

func BuildQuickSummary(data Data, opts Options) domain.Report {
	averages := CalculateDomainAverages(data.CheckIns)
	counts := CountEventsByType(data.Events)
	naps := CalculateNapStats(data.Events)

	r := newReport(domain.ReportQuick, "WAKESTATE SUMMARY", data)
	r.GeneratedAt = opts.GeneratedAt
	r.Header = periodHeader(data, opts)

	glance := []string{
		fmt.Sprintf("Check-ins recorded: %d", len(data.CheckIns)),
	}
	if opts.ClinicianMode {
		glance = append(glance, fmt.Sprintf("Days with check-ins: %d", daysWithCheckIns(data.CheckIns)))
	}
	glance = append(glance,
		fmt.Sprintf("Events logged: %d", len(data.Events)),
		"",
		fmt.Sprintf("  • Naps: %d", counts.Naps),
		fmt.Sprintf("  • Cataplexy episodes: %d", counts.Cataplexy),
		fmt.Sprintf("  • Other events: %d", counts.Other),
	)
	r.Sections = append(r.Sections, domain.ReportSection{Title: "AT A GLANCE", Style: domain.SectionRule, Lines: glance})

	var symptoms []string
	for _, d := range domain.NarcolepsyDomains {
		avg, ok := averages[d]
		if !ok {
			continue
		}
		if len(symptoms) > 0 {
			symptoms = append(symptoms, "")
		}
		symptoms = append(symptoms,
			d.Label(),
			fmt.Sprintf("  Average: %s/5 (%s)", formatAverage(avg), GetSeverityLabel(avg)),
		)
	}
	r.Sections = append(r.Sections, domain.ReportSection{Title: "NARCOLEPSY-RELATED SYMPTOMS", Style: domain.SectionRule, Lines: symptoms})

	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "KEY OBSERVATIONS",
		Style: domain.SectionRule,
		Lines: bullets(quickObservations(data, averages, counts, naps)),
	})

	var other []string
	for _, d := range domain.OverlappingDomains {
		avg, ok := averages[d]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s: %s/5", d.Label(), formatAverage(avg))
		if opts.ClinicianMode {
			line += fmt.Sprintf(" (%s)", GetSeverityLabel(avg))
		}
		other = append(other, line)
	}
	if len(other) > 0 {
		r.Sections = append(r.Sections, domain.ReportSection{Title: "OTHER SYMPTOMS (CONTEXT)", Style: domain.SectionRule, Lines: other})
	}

	if opts.IncludeMedications {
		if section, ok := medicationSection(data); ok {
			r.Sections = append(r.Sections, section)
		}
	}

	if opts.IncludeProviderQuestions {
		lines := []string{"Based on your data, you might consider discussing:", ""}
		lines = append(lines, bullets(providerQuestions(averages, counts, naps))...)
		r.Sections = append(r.Sections, domain.ReportSection{Title: "QUESTIONS FOR YOUR PROVIDER", Style: domain.SectionRule, Lines: lines})
	}

	r.Sections = append(r.Sections, domain.ReportSection{
		Title: "DISCLAIMER",
		Style: domain.SectionBanner,
		Lines: []string{
			"This report is for informational purposes only. WakeState is",
			"a personal tracking tool and is NOT a medical device.",
			"",
			"This report does not provide medical advice, diagnosis, or",
			"treatment recommendations. All data is self-reported and",
			"should be discussed with a qualified healthcare provider.",
		},
	})
	return r
}

func quickObservations(data Data, averages map[domain.Domain]float64, counts EventCounts, naps NapStats) []string {
	var obs []string

	if len(data.CheckIns) > 0 && len(data.CheckIns) < data.TotalDays*2 {
		obs = append(obs, fmt.Sprintf("Tracking frequency: %s check-ins/day on average.",
			fixed1(perDay(len(data.CheckIns), data.TotalDays))))
	}
	if avg := averages[domain.DomainSleepPressure]; avg >= 3 {
		obs = append(obs, fmt.Sprintf("Excessive Daytime Sleepiness was rated as %s on average during this period.",
			GetSeverityLabel(avg)))
	}
	if counts.Naps > 0 {
		obs = append(obs, fmt.Sprintf("Nap frequency: %s naps/day. %d%% were planned.",
			fixed1(perDay(counts.Naps, data.TotalDays)), naps.PlannedRatio))
		if naps.AvgDuration > 0 {
			obs = append(obs, fmt.Sprintf("Average nap duration: %d minutes.", naps.AvgDuration))
		}
	}
	if counts.Cataplexy > 0 {
		obs = append(obs, fmt.Sprintf("%d cataplexy episode(s) recorded during this period.", counts.Cataplexy))
	}
	if avg := averages[domain.DomainCognitive]; avg >= 3 {
		obs = append(obs, fmt.Sprintf("Cognitive fog was frequently reported at %s levels.", GetSeverityLabel(avg)))
	}

	if len(obs) == 0 || len(data.CheckIns) == 0 {
		obs = append(obs, continueTracking)
	}
	return obs
}

func providerQuestions(averages map[domain.Domain]float64, counts EventCounts, naps NapStats) []string {
	var qs []string
	if averages[domain.DomainSleepPressure] >= 3.5 {
		qs = append(qs, "My excessive daytime sleepiness remains significant. Are there treatment adjustments to consider?")
	}
	if counts.Cataplexy > 3 {
		qs = append(qs, fmt.Sprintf("I had %d cataplexy episodes. Should we review my current management plan?", counts.Cataplexy))
	}
	if averages[domain.DomainCognitive] >= 3.5 {
		qs = append(qs, "Cognitive fog is impacting my daily function. What options might help?")
	}
	if counts.Naps > 0 && naps.PlannedRatio < 50 {
		qs = append(qs, "Most of my naps are unplanned. Should we discuss a more structured nap schedule?")
	}
	return qs
}

func bullets(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, "• "+item)
	}
	return out
}

func daysWithCheckIns(checkIns []domain.CheckIn) int {
	days := make(map[string]struct{}, len(checkIns))
	for _, c := range checkIns {
		days[c.LocalDate] = struct{}{}
	}
	return len(days)
}
