package adapters

import (
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
)

func MapStoreMedicationEntryToDomain(e store.MedicationEntry) domain.MedicationEntry {
	return domain.MedicationEntry{
		ID:                 e.ID,
		Dose:               e.Dose,
		DoseOther:          e.DoseOther,
		Frequency:          domain.MedicationFrequency(e.Frequency),
		FrequencyOther:     e.FrequencyOther,
		Timings:            toTimings(e.Timings),
		Notes:              e.Notes,
		IsTrialParticipant: e.IsTrialParticipant,
		LastUpdated:        ParseTimestamp(e.LastUpdated),
	}
}

func MapDomainMedicationEntryToStore(e domain.MedicationEntry) store.MedicationEntry {
	return store.MedicationEntry{
		ID:                 e.ID,
		Dose:               e.Dose,
		DoseOther:          e.DoseOther,
		Frequency:          string(e.Frequency),
		FrequencyOther:     e.FrequencyOther,
		Timings:            fromTimings(e.Timings),
		Notes:              e.Notes,
		IsTrialParticipant: e.IsTrialParticipant,
		LastUpdated:        FormatTimestamp(e.LastUpdated),
	}
}

func MapStoreUserMedicationsToDomain(m store.UserMedications) map[string]domain.MedicationEntry {
	out := make(map[string]domain.MedicationEntry, len(m))
	for id, entry := range m {
		out[id] = MapStoreMedicationEntryToDomain(entry)
	}
	return out
}

func MapDomainUserMedicationsToStore(m map[string]domain.MedicationEntry) store.UserMedications {
	out := make(store.UserMedications, len(m))
	for id, entry := range m {
		out[id] = MapDomainMedicationEntryToStore(entry)
	}
	return out
}

func MapStoreMedicationConfigToDomain(c *store.UserMedicationConfig) *domain.UserMedicationConfig {
	if c == nil {
		return nil
	}
	regimen := make([]domain.MedicationRegimen, 0, len(c.Regimen))
	for _, r := range c.Regimen {
		regimen = append(regimen, domain.MedicationRegimen{
			MedicationID:     r.MedicationID,
			BrandName:        r.BrandName,
			GenericName:      r.GenericName,
			DefaultDose:      r.DefaultDose,
			DefaultFrequency: domain.MedicationFrequency(r.DefaultFrequency),
			DefaultTimings:   toTimings(r.DefaultTimings),
			FrequencyCount:   r.FrequencyCount,
		})
	}
	return &domain.UserMedicationConfig{
		IsConfigured: c.IsConfigured,
		Regimen:      regimen,
		LastUpdated:  ParseTimestamp(c.LastUpdated),
	}
}

func MapDomainMedicationConfigToStore(c *domain.UserMedicationConfig) *store.UserMedicationConfig {
	if c == nil {
		return nil
	}
	regimen := make([]store.MedicationRegimen, 0, len(c.Regimen))
	for _, r := range c.Regimen {
		regimen = append(regimen, store.MedicationRegimen{
			MedicationID:     r.MedicationID,
			BrandName:        r.BrandName,
			GenericName:      r.GenericName,
			DefaultDose:      r.DefaultDose,
			DefaultFrequency: string(r.DefaultFrequency),
			DefaultTimings:   fromTimings(r.DefaultTimings),
			FrequencyCount:   r.FrequencyCount,
		})
	}
	return &store.UserMedicationConfig{
		IsConfigured: c.IsConfigured,
		Regimen:      regimen,
		LastUpdated:  FormatTimestamp(c.LastUpdated),
	}
}

func MapStoreAdministrationToDomain(a store.MedicationAdministration) domain.MedicationAdministration {
	return domain.MedicationAdministration{
		ID:                a.ID,
		MedicationID:      a.MedicationID,
		BrandName:         a.BrandName,
		Timestamp:         ParseTimestamp(a.Timestamp),
		LocalDate:         a.LocalDate,
		LocalTime:         a.LocalTime,
		DoseSelected:      a.DoseSelected,
		AdminNumberForDay: a.AdminNumberForDay,
	}
}

func MapDomainAdministrationToStore(a domain.MedicationAdministration) store.MedicationAdministration {
	return store.MedicationAdministration{
		ID:                a.ID,
		MedicationID:      a.MedicationID,
		BrandName:         a.BrandName,
		Timestamp:         FormatTimestamp(a.Timestamp),
		LocalDate:         a.LocalDate,
		LocalTime:         a.LocalTime,
		DoseSelected:      a.DoseSelected,
		AdminNumberForDay: a.AdminNumberForDay,
	}
}

func MapStoreAdministrationsToDomain(items []store.MedicationAdministration) []domain.MedicationAdministration {
	out := make([]domain.MedicationAdministration, 0, len(items))
	for _, item := range items {
		out = append(out, MapStoreAdministrationToDomain(item))
	}
	return out
}

func MapDomainAdministrationsToStore(items []domain.MedicationAdministration) []store.MedicationAdministration {
	out := make([]store.MedicationAdministration, 0, len(items))
	for _, item := range items {
		out = append(out, MapDomainAdministrationToStore(item))
	}
	return out
}

func toTimings(in []string) []domain.MedicationTiming {
	if in == nil {
		return nil
	}
	out := make([]domain.MedicationTiming, 0, len(in))
	for _, t := range in {
		out = append(out, domain.MedicationTiming(t))
	}
	return out
}

func fromTimings(in []domain.MedicationTiming) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, t := range in {
		out = append(out, string(t))
	}
	return out
}
