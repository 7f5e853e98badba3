package report

import (
	"fmt"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

func BuildPersonalReport(data Data, opts Options) domain.Report {
	averages := CalculateDomainAverages(data.CheckIns)
	counts := CountEventsByType(data.Events)

	r := newReport(domain.ReportPersonal, "MY WAKESTATE PERSONAL REFLECTION", data)
	r.GeneratedAt = opts.GeneratedAt
	r.Header = []string{formatPeriod(data)}

	narrative := fmt.Sprintf("Over the past %d days, you recorded %d check-ins and %d events. ",
		data.TotalDays, len(data.CheckIns), len(data.Events))
	switch n := len(data.CheckIns); {
	case n >= data.TotalDays:
		narrative += "That's consistent tracking — well done!"
	case float64(n) >= float64(data.TotalDays)/2:
		narrative += "You're building a good habit. Keep it up!"
	default:
		narrative += "Even a few data points help you see patterns over time."
	}
	r.Sections = append(r.Sections, domain.ReportSection{Style: domain.SectionRule, Lines: []string{narrative}})

	var highlights []string
	for _, h := range personalHighlights(data, averages, counts) {
		if len(highlights) > 0 {
			highlights = append(highlights, "")
		}
		highlights = append(highlights, "• "+h)
	}
	r.Sections = append(r.Sections, domain.ReportSection{Title: "WHAT STOOD OUT", Style: domain.SectionHeading, Lines: highlights})

	questions := []string{
		"Were there specific times of day when symptoms felt worse?",
		"Did any activities or contexts seem to help or hurt?",
		"What was happening on your best days vs. your hardest days?",
	}
	if counts.Naps > 0 {
		questions = append(questions, "Are your naps refreshing, or do they leave you groggy?")
	}
	r.Sections = append(r.Sections, domain.ReportSection{Title: "QUESTIONS TO CONSIDER", Style: domain.SectionHeading, Lines: bullets(questions)})

	r.Sections = append(r.Sections,
		domain.ReportSection{
			Style: domain.SectionRule,
			Lines: []string{
				"Remember: You're not defined by your symptoms. Tracking is",
				"a tool for understanding — not judgment. Each day is new.",
			},
		},
		domain.ReportSection{
			Title: "DISCLAIMER",
			Style: domain.SectionRule,
			Lines: []string{
				"This is a personal reflection tool, not medical advice.",
				"WakeState is NOT a medical device. All data is self-reported.",
				"Please discuss any concerns with a healthcare provider.",
			},
		},
	)
	return r
}

func personalHighlights(data Data, averages map[domain.Domain]float64, counts EventCounts) []string {
	var out []string

	if avg, ok := averages[domain.DomainSleepPressure]; ok {
		switch {
		case avg >= 4:
			out = append(out, fmt.Sprintf("Your sleep pressure was frequently high (avg %s/5). This might be worth discussing with your care team.", formatAverage(avg)))
		case avg <= 2:
			out = append(out, fmt.Sprintf("Your daytime sleepiness stayed relatively manageable (avg %s/5) during this period.", formatAverage(avg)))
		}
	}
	if counts.Naps > 0 {
		napsPerDay := perDay(counts.Naps, data.TotalDays)
		if napsPerDay >= 2 {
			out = append(out, fmt.Sprintf("You averaged %s naps per day. Consider whether all were truly needed or if some were preventable.", fixed1(napsPerDay)))
		} else {
			out = append(out, fmt.Sprintf("Your nap frequency (%s/day) was moderate.", fixed1(napsPerDay)))
		}
	}
	if counts.Cataplexy > 0 {
		out = append(out, fmt.Sprintf("You experienced %d cataplexy episode(s). Tracking triggers can help identify patterns.", counts.Cataplexy))
	}
	if avg := averages[domain.DomainCognitive]; avg >= 3 {
		out = append(out, fmt.Sprintf("Cognitive fog was a noticeable theme (avg %s/5). This is common but worth monitoring.", formatAverage(avg)))
	}
	if avg := averages[domain.DomainMood]; avg >= 3.5 {
		out = append(out, fmt.Sprintf("Your mood was often low (avg %s/5). Remember: narcolepsy and mood are connected, and both deserve attention.", formatAverage(avg)))
	}

	if len(out) == 0 {
		out = append(out, "Your data shows relatively stable patterns. Continue tracking to notice any changes.")
	}
	return out
}
