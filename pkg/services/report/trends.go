package report

import (
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

type TrendPoint struct {
	Date     string                    `json:"date"`
	CheckIns int                       `json:"checkIns"`
	Averages map[domain.Domain]float64 `json:"averages"`
}

// DailyTrend returns one point per calendar day for the last days days
// ending at now, oldest first. No domains means every scored domain.
func DailyTrend(checkIns []domain.CheckIn, domains []domain.Domain, days int, now time.Time) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}
	if len(domains) == 0 {
		domains = append(append([]domain.Domain{}, domain.NarcolepsyDomains...), domain.OverlappingDomains...)
	}

	byDate := make(map[string][]domain.CheckIn)
	for _, c := range checkIns {
		byDate[c.LocalDate] = append(byDate[c.LocalDate], c)
	}

	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(dateLayout)
		day := byDate[date]
		all := CalculateDomainAverages(day)

		averages := make(map[domain.Domain]float64, len(domains))
		for _, d := range domains {
			if avg, ok := all[d]; ok {
				averages[d] = avg
			}
		}
		points = append(points, TrendPoint{
			Date:     date,
			CheckIns: len(day),
			Averages: averages,
		})
	}
	return points
}
