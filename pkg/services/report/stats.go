package report

import (
	"math"
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

const (
	SeverityMinimal     = "minimal"
	SeverityMild        = "mild"
	SeverityModerate    = "moderate"
	SeveritySignificant = "significant"
	SeveritySevere      = "severe"
)

// maxNapMinutes bounds plausible nap durations; longer spans are data errors.
const maxNapMinutes = 360

// CalculateDomainAverages averages every narcolepsy and overlapping domain
// that has at least one score, rounded to one decimal.
func CalculateDomainAverages(checkIns []domain.CheckIn) map[domain.Domain]float64 {
	sums := make(map[domain.Domain]int)
	counts := make(map[domain.Domain]int)

	for _, c := range checkIns {
		for d, v := range c.Scores {
			if !d.IsNarcolepsy() && !d.IsOverlapping() {
				continue
			}
			sums[d] += v
			counts[d]++
		}
	}

	averages := make(map[domain.Domain]float64, len(sums))
	for d, sum := range sums {
		averages[d] = round1(float64(sum) / float64(counts[d]))
	}
	return averages
}

// GetSeverityLabel buckets an average score. Boundaries belong to the lower
// bucket.
func GetSeverityLabel(avg float64) string {
	switch {
	case avg <= 1.5:
		return SeverityMinimal
	case avg <= 2.5:
		return SeverityMild
	case avg <= 3.5:
		return SeverityModerate
	case avg <= 4.5:
		return SeveritySignificant
	default:
		return SeveritySevere
	}
}

type EventCounts struct {
	Naps      int `json:"naps"`
	Cataplexy int `json:"cataplexy"`
	Other     int `json:"other"`
}

func (c EventCounts) Total() int {
	return c.Naps + c.Cataplexy + c.Other
}

func CountEventsByType(events []domain.TrackingEvent) EventCounts {
	var counts EventCounts
	for _, e := range events {
		switch e.Kind() {
		case domain.EventKindNap:
			counts.Naps++
		case domain.EventKindCataplexy:
			counts.Cataplexy++
		default:
			counts.Other++
		}
	}
	return counts
}

type NapStats struct {
	// AvgDuration is in whole minutes, 0 when no nap has a usable span.
	AvgDuration  int `json:"avgDuration"`
	PlannedRatio int `json:"plannedRatio"`
}

func CalculateNapStats(events []domain.TrackingEvent) NapStats {
	var naps, planned, total, counted int
	for _, e := range events {
		if e.Kind() != domain.EventKindNap {
			continue
		}
		naps++
		if e.IsPlanned() {
			planned++
		}
		if minutes, ok := napMinutes(e.StartTime, e.EndTime); ok && minutes > 0 && minutes < maxNapMinutes {
			total += minutes
			counted++
		}
	}

	if naps == 0 {
		return NapStats{}
	}

	stats := NapStats{
		PlannedRatio: int(math.Round(float64(planned) / float64(naps) * 100)),
	}
	if counted > 0 {
		stats.AvgDuration = int(math.Round(float64(total) / float64(counted)))
	}
	return stats
}

// napMinutes subtracts two wall-clock times on the same day, truncating to
// whole minutes.
func napMinutes(start, end string) (int, bool) {
	if start == "" || end == "" {
		return 0, false
	}
	s, ok := parseClock(start)
	if !ok {
		return 0, false
	}
	e, ok := parseClock(end)
	if !ok {
		return 0, false
	}
	return int(e.Sub(s) / time.Minute), true
}

func parseClock(v string) (time.Time, bool) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// perDay divides n by days, reporting 0 for an empty span.
func perDay(n, days int) float64 {
	if days <= 0 {
		return 0
	}
	return float64(n) / float64(days)
}
