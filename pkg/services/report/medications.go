package report

import (
	"fmt"
	"sort"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

type medicationUsage struct {
	name  string
	doses int
	days  map[string]struct{}
}

// medicationSection summarizes logged doses per medication. It reports false
// when nothing was logged in range.
func medicationSection(data Data) (domain.ReportSection, bool) {
	if len(data.Administrations) == 0 {
		return domain.ReportSection{}, false
	}

	byMed := make(map[string]*medicationUsage)
	for _, a := range data.Administrations {
		u, ok := byMed[a.MedicationID]
		if !ok {
			name := a.BrandName
			if name == "" {
				name = a.MedicationID
			}
			u = &medicationUsage{name: name, days: make(map[string]struct{})}
			byMed[a.MedicationID] = u
		}
		u.doses++
		u.days[a.LocalDate] = struct{}{}
	}

	usages := make([]*medicationUsage, 0, len(byMed))
	for _, u := range byMed {
		usages = append(usages, u)
	}
	sort.Slice(usages, func(i, j int) bool { return usages[i].name < usages[j].name })

	lines := []string{fmt.Sprintf("Doses logged: %d", len(data.Administrations)), ""}
	for _, u := range usages {
		lines = append(lines, fmt.Sprintf("  • %s: %d dose(s) on %d day(s)", u.name, u.doses, len(u.days)))
	}
	return domain.ReportSection{Title: "MEDICATIONS", Style: domain.SectionRule, Lines: lines}, true
}
