package collections

import (
	"strconv"
	"strings"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/domain"
)

var csvScoreColumns = []domain.Domain{
	domain.DomainCataplexy,
	domain.DomainMicrosleeps,
	domain.DomainCognitive,
	domain.DomainEffort,
	domain.DomainSleepPressure,
	domain.DomainMotor,
	domain.DomainSensory,
	domain.DomainThermo,
	domain.DomainEmotional,
	domain.DomainAnxiety,
	domain.DomainMood,
	domain.DomainDigestive,
}

func csvHeader() []string {
	header := []string{"id", "createdAt", "localDate", "localTime"}
	for _, d := range csvScoreColumns {
		header = append(header, string(d))
	}
	return append(header, "tags", "note")
}

// ExportToCSV renders one quoted row per check-in under a fixed header.
// Missing scores are empty fields.
func ExportToCSV(checkIns []domain.CheckIn) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader(), ","))

	for _, c := range checkIns {
		row := make([]string, 0, len(csvScoreColumns)+6)
		row = append(row, c.ID, adapters.FormatTimestamp(c.CreatedAt), c.LocalDate, c.LocalTime)
		for _, d := range csvScoreColumns {
			if v, ok := c.Score(d); ok {
				row = append(row, strconv.Itoa(v))
			} else {
				row = append(row, "")
			}
		}
		row = append(row, strings.Join(c.Tags, "; "), c.Note)

		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteField(field))
		}
	}
	return b.String()
}

// quoteField always quotes. Line breaks become spaces so that every record
// stays on one line.
func quoteField(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", `"`, `""`).Replace(s)
	return `"` + s + `"`
}
