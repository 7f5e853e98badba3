package adapters

import (
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/models/api"
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/validation"
)

// ParseScores converts request scores keyed by domain name. Only the current
// narcolepsy and overlapping domains are accepted.
func ParseScores(in map[string]int) (map[domain.Domain]int, error) {
	out := make(map[domain.Domain]int, len(in))
	for k, v := range in {
		d := domain.Domain(k)
		if !d.IsNarcolepsy() && !d.IsOverlapping() {
			return nil, fmt.Errorf("%w: unknown symptom domain %q", validation.ErrInvalid, k)
		}
		out[d] = v
	}
	return out, nil
}

// ParseDomains converts domain names, returning them in display order.
func ParseDomains(names []string) ([]domain.Domain, error) {
	wanted := make(map[domain.Domain]bool, len(names))
	for _, name := range names {
		d := domain.Domain(name)
		if !d.IsNarcolepsy() && !d.IsOverlapping() {
			return nil, fmt.Errorf("%w: unknown symptom domain %q", validation.ErrInvalid, name)
		}
		wanted[d] = true
	}

	out := make([]domain.Domain, 0, len(wanted))
	for _, group := range [][]domain.Domain{domain.NarcolepsyDomains, domain.OverlappingDomains} {
		for _, d := range group {
			if wanted[d] {
				out = append(out, d)
			}
		}
	}
	return out, nil
}

func MapCheckInDomainToApi(c domain.CheckIn) api.CheckIn {
	scores := make(map[string]int, len(c.Scores))
	for d, v := range c.Scores {
		scores[string(d)] = v
	}
	tags := cloneStrings(c.Tags)
	if tags == nil {
		tags = []string{}
	}
	return api.CheckIn{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		LocalDate: c.LocalDate,
		LocalTime: c.LocalTime,
		Scores:    scores,
		Tags:      tags,
		Note:      c.Note,
	}
}

func MapCheckInsDomainToApi(items []domain.CheckIn) []api.CheckIn {
	out := make([]api.CheckIn, 0, len(items))
	for _, item := range items {
		out = append(out, MapCheckInDomainToApi(item))
	}
	return out
}

// MapCheckInRequestApiToDomain builds a new check-in stamped at now. Missing
// date and time default to now's local values.
func MapCheckInRequestApiToDomain(req api.CheckInRequest, id string, now time.Time) (domain.CheckIn, error) {
	scores, err := ParseScores(req.Scores)
	if err != nil {
		return domain.CheckIn{}, err
	}
	localDate, localTime := localStamp(req.LocalDate, req.LocalTime, now)
	return domain.CheckIn{
		ID:        id,
		CreatedAt: now,
		LocalDate: localDate,
		LocalTime: localTime,
		Scores:    scores,
		Tags:      cloneStrings(req.Tags),
		Note:      req.Note,
	}, nil
}

func MapCheckInPatchApiToDomain(p api.CheckInPatch) (domain.CheckInPatch, error) {
	var scores map[domain.Domain]int
	if len(p.Scores) > 0 {
		var err error
		if scores, err = ParseScores(p.Scores); err != nil {
			return domain.CheckInPatch{}, err
		}
	}
	return domain.CheckInPatch{
		LocalDate: p.LocalDate,
		LocalTime: p.LocalTime,
		Scores:    scores,
		Tags:      cloneStrings(p.Tags),
		Note:      p.Note,
	}, nil
}

func MapEventDomainToApi(e domain.TrackingEvent) api.Event {
	contextTags := cloneStrings(e.ContextTags)
	if contextTags == nil {
		contextTags = []string{}
	}
	return api.Event{
		ID:                   e.ID,
		Type:                 string(e.Type),
		Kind:                 string(e.Kind()),
		CreatedAt:            e.CreatedAt,
		LocalDate:            e.LocalDate,
		LocalTime:            e.LocalTime,
		SeverityTag:          string(e.SeverityTag),
		ContextTags:          contextTags,
		Note:                 e.Note,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		Planned:              e.Planned,
		Refreshed:            string(e.Refreshed),
		SleepInertiaDuration: string(e.SleepInertiaDuration),
		EmotionTriggers:      cloneStrings(e.EmotionTriggers),
		ActivityContext:      cloneStrings(e.ActivityContext),
	}
}

func MapEventsDomainToApi(items []domain.TrackingEvent) []api.Event {
	out := make([]api.Event, 0, len(items))
	for _, item := range items {
		out = append(out, MapEventDomainToApi(item))
	}
	return out
}

func MapEventRequestApiToDomain(req api.EventRequest, id string, now time.Time) domain.TrackingEvent {
	localDate, localTime := localStamp(req.LocalDate, req.LocalTime, now)
	return domain.TrackingEvent{
		ID:                   id,
		Type:                 domain.EventType(req.Type),
		CreatedAt:            now,
		LocalDate:            localDate,
		LocalTime:            localTime,
		SeverityTag:          domain.SeverityTag(req.SeverityTag),
		ContextTags:          cloneStrings(req.ContextTags),
		Note:                 req.Note,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Planned:              req.Planned,
		Refreshed:            domain.RefreshedLevel(req.Refreshed),
		SleepInertiaDuration: domain.SleepInertiaDuration(req.SleepInertiaDuration),
		EmotionTriggers:      cloneStrings(req.EmotionTriggers),
		ActivityContext:      cloneStrings(req.ActivityContext),
	}
}

func MapSettingsDomainToApi(s domain.AppSettings) api.Settings {
	return api.Settings{
		ShowContextByDefault: s.ShowContextByDefault,
		Theme:                string(s.Theme),
	}
}

func MapSettingsApiToDomain(s api.Settings) domain.AppSettings {
	return domain.AppSettings{
		ShowContextByDefault: s.ShowContextByDefault,
		Theme:                domain.Theme(s.Theme),
	}
}

func MapTimePeriodDomainToApi(p domain.TimePeriod) api.TimePeriod {
	return api.TimePeriod{
		Start:    p.Start,
		End:      p.End,
		Duration: p.Duration,
	}
}

func MapReportDomainToApi(r domain.Report) api.Report {
	res := api.Report{
		Kind:        string(r.Kind),
		Title:       r.Title,
		Period:      MapTimePeriodDomainToApi(r.Period),
		GeneratedAt: r.GeneratedAt,
		Header:      append([]string{}, r.Header...),
		Sections:    make([]api.ReportSection, 0, len(r.Sections)),
	}
	for _, s := range r.Sections {
		res.Sections = append(res.Sections, api.ReportSection{
			Title: s.Title,
			Style: string(s.Style),
			Lines: append([]string{}, s.Lines...),
		})
	}
	return res
}

func MapAveragesDomainToApi(in map[domain.Domain]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for d, v := range in {
		out[string(d)] = v
	}
	return out
}

func MapMedicationEntryDomainToApi(e domain.MedicationEntry) api.MedicationEntry {
	return api.MedicationEntry{
		ID:                 e.ID,
		Dose:               e.Dose,
		DoseOther:          e.DoseOther,
		Frequency:          string(e.Frequency),
		FrequencyOther:     e.FrequencyOther,
		Timings:            fromTimings(e.Timings),
		Notes:              e.Notes,
		IsTrialParticipant: e.IsTrialParticipant,
		LastUpdated:        e.LastUpdated,
	}
}

func MapMedicationEntryApiToDomain(e api.MedicationEntry) domain.MedicationEntry {
	return domain.MedicationEntry{
		ID:                 e.ID,
		Dose:               e.Dose,
		DoseOther:          e.DoseOther,
		Frequency:          domain.MedicationFrequency(e.Frequency),
		FrequencyOther:     e.FrequencyOther,
		Timings:            toTimings(e.Timings),
		Notes:              e.Notes,
		IsTrialParticipant: e.IsTrialParticipant,
		LastUpdated:        e.LastUpdated,
	}
}

func MapMedicationEntriesDomainToApi(in map[string]domain.MedicationEntry) map[string]api.MedicationEntry {
	out := make(map[string]api.MedicationEntry, len(in))
	for id, entry := range in {
		out[id] = MapMedicationEntryDomainToApi(entry)
	}
	return out
}

func MapMedicationConfigDomainToApi(c *domain.UserMedicationConfig) *api.MedicationConfig {
	if c == nil {
		return nil
	}
	res := &api.MedicationConfig{
		IsConfigured: c.IsConfigured,
		Regimen:      make([]api.MedicationRegimen, 0, len(c.Regimen)),
		LastUpdated:  c.LastUpdated,
	}
	for _, r := range c.Regimen {
		res.Regimen = append(res.Regimen, api.MedicationRegimen{
			MedicationID:     r.MedicationID,
			BrandName:        r.BrandName,
			GenericName:      r.GenericName,
			DefaultDose:      r.DefaultDose,
			DefaultFrequency: string(r.DefaultFrequency),
			DefaultTimings:   fromTimings(r.DefaultTimings),
			FrequencyCount:   r.FrequencyCount,
		})
	}
	return res
}

func MapMedicationConfigApiToDomain(c api.MedicationConfig) domain.UserMedicationConfig {
	res := domain.UserMedicationConfig{
		IsConfigured: c.IsConfigured,
		Regimen:      make([]domain.MedicationRegimen, 0, len(c.Regimen)),
		LastUpdated:  c.LastUpdated,
	}
	for _, r := range c.Regimen {
		res.Regimen = append(res.Regimen, domain.MedicationRegimen{
			MedicationID:     r.MedicationID,
			BrandName:        r.BrandName,
			GenericName:      r.GenericName,
			DefaultDose:      r.DefaultDose,
			DefaultFrequency: domain.MedicationFrequency(r.DefaultFrequency),
			DefaultTimings:   toTimings(r.DefaultTimings),
			FrequencyCount:   r.FrequencyCount,
		})
	}
	return res
}

func MapAdministrationDomainToApi(a domain.MedicationAdministration) api.Administration {
	return api.Administration{
		ID:                a.ID,
		MedicationID:      a.MedicationID,
		BrandName:         a.BrandName,
		Timestamp:         a.Timestamp,
		LocalDate:         a.LocalDate,
		LocalTime:         a.LocalTime,
		DoseSelected:      a.DoseSelected,
		AdminNumberForDay: a.AdminNumberForDay,
	}
}

func MapAdministrationsDomainToApi(items []domain.MedicationAdministration) []api.Administration {
	out := make([]api.Administration, 0, len(items))
	for _, item := range items {
		out = append(out, MapAdministrationDomainToApi(item))
	}
	return out
}

func MapBackupRunStoreToApi(r *store.BackupRun) api.BackupRun {
	res := api.BackupRun{
		ID:         r.ID,
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Status:     string(r.Status),
	}
	if r.ObjectKey != nil {
		res.ObjectKey = *r.ObjectKey
	}
	if r.Error != nil {
		res.Error = *r.Error
	}
	return res
}

func localStamp(date, clock string, now time.Time) (string, string) {
	if date == "" {
		date = now.Format(time.DateOnly)
	}
	if clock == "" {
		clock = now.Format("15:04")
	}
	return date, clock
}
