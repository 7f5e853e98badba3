package report

import (
	"math"
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
)

type RangeOption string

const (
	Range7Days  RangeOption = "7days"
	Range30Days RangeOption = "30days"
	Range90Days RangeOption = "90days"
	RangeCustom RangeOption = "custom"
)

const dateLayout = "2006-01-02"

// Data is the slice of records a report is generated from.
type Data struct {
	CheckIns        []domain.CheckIn
	Events          []domain.TrackingEvent
	Administrations []domain.MedicationAdministration
	StartDate       time.Time
	EndDate         time.Time
	TotalDays       int
}

// GetDateRange resolves option to a start and end anchored at now. A custom
// range without a start begins 30 days back; without an end it stops at now.
// Unknown options behave like 30days.
func GetDateRange(option RangeOption, customStart, customEnd *time.Time, now time.Time) (time.Time, time.Time) {
	switch option {
	case Range7Days:
		return now.AddDate(0, 0, -7), now
	case Range30Days:
		return now.AddDate(0, 0, -30), now
	case Range90Days:
		return now.AddDate(0, 0, -90), now
	case RangeCustom:
		start, end := now.AddDate(0, 0, -30), now
		if customStart != nil {
			start = *customStart
		}
		if customEnd != nil {
			end = *customEnd
		}
		return start, end
	default:
		return now.AddDate(0, 0, -30), now
	}
}

// FilterDataByDateRange keeps the records whose local date falls between the
// calendar dates of start and end, both inclusive.
func FilterDataByDateRange(checkIns []domain.CheckIn, events []domain.TrackingEvent, start, end time.Time) Data {
	from, to := start.Format(dateLayout), end.Format(dateLayout)

	filteredCheckIns := make([]domain.CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		if c.LocalDate >= from && c.LocalDate <= to {
			filteredCheckIns = append(filteredCheckIns, c)
		}
	}

	filteredEvents := make([]domain.TrackingEvent, 0, len(events))
	for _, e := range events {
		if e.LocalDate >= from && e.LocalDate <= to {
			filteredEvents = append(filteredEvents, e)
		}
	}

	return Data{
		CheckIns:  filteredCheckIns,
		Events:    filteredEvents,
		StartDate: start,
		EndDate:   end,
		TotalDays: int(math.Ceil(float64(end.Sub(start)) / float64(24*time.Hour))),
	}
}

// WithAdministrations attaches the administrations that fall in d's range.
func (d Data) WithAdministrations(admins []domain.MedicationAdministration) Data {
	from, to := d.StartDate.Format(dateLayout), d.EndDate.Format(dateLayout)

	d.Administrations = make([]domain.MedicationAdministration, 0, len(admins))
	for _, a := range admins {
		if a.LocalDate >= from && a.LocalDate <= to {
			d.Administrations = append(d.Administrations, a)
		}
	}
	return d
}
