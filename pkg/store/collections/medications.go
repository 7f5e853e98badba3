package collections

import (
	"context"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/validation"
)

func (s *Store) GetUserMedications(ctx context.Context) map[string]domain.MedicationEntry {
	items := store.UserMedications{}
	s.readOrDefault(ctx, KeyMedications, &items)
	return adapters.MapStoreUserMedicationsToDomain(items)
}

// SaveMedicationEntry inserts or replaces the entry with the same id.
func (s *Store) SaveMedicationEntry(ctx context.Context, entry domain.MedicationEntry) error {
	item := adapters.MapDomainMedicationEntryToStore(entry)
	if err := validation.MedicationEntry(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := store.UserMedications{}
	if _, err := s.read(ctx, KeyMedications, &items); err != nil {
		return err
	}
	if items == nil {
		items = store.UserMedications{}
	}
	items[item.ID] = item
	return s.write(ctx, KeyMedications, items)
}

func (s *Store) RemoveMedicationEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := store.UserMedications{}
	if _, err := s.read(ctx, KeyMedications, &items); err != nil {
		return err
	}
	delete(items, id)
	return s.write(ctx, KeyMedications, items)
}

// GetMedicationConfig returns nil when no regimen was ever configured.
func (s *Store) GetMedicationConfig(ctx context.Context) *domain.UserMedicationConfig {
	var cfg *store.UserMedicationConfig
	s.readOrDefault(ctx, KeyMedicationConfig, &cfg)
	return adapters.MapStoreMedicationConfigToDomain(cfg)
}

func (s *Store) SaveMedicationConfig(ctx context.Context, cfg domain.UserMedicationConfig) error {
	item := adapters.MapDomainMedicationConfigToStore(&cfg)
	if err := validation.MedicationConfig(*item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, KeyMedicationConfig, item)
}

func (s *Store) GetMedicationAdministrations(ctx context.Context) []domain.MedicationAdministration {
	var items []store.MedicationAdministration
	s.readOrDefault(ctx, KeyAdministrations, &items)
	return adapters.MapStoreAdministrationsToDomain(items)
}

// GetTodayAdministrations returns the doses of medicationID logged on the
// local date today (yyyy-MM-dd).
func (s *Store) GetTodayAdministrations(ctx context.Context, medicationID, today string) []domain.MedicationAdministration {
	out := []domain.MedicationAdministration{}
	for _, a := range s.GetMedicationAdministrations(ctx) {
		if a.MedicationID == medicationID && a.LocalDate == today {
			out = append(out, a)
		}
	}
	return out
}

// LogMedicationAdministration stores a and numbers it after the doses of the
// same medication already logged on its local date. Counting and writing
// happen under one lock, so concurrent logs never share a number.
func (s *Store) LogMedicationAdministration(ctx context.Context, a domain.MedicationAdministration) (domain.MedicationAdministration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []store.MedicationAdministration
	if _, err := s.read(ctx, KeyAdministrations, &items); err != nil {
		return domain.MedicationAdministration{}, err
	}

	a.AdminNumberForDay = 1
	for _, existing := range items {
		if existing.MedicationID == a.MedicationID && existing.LocalDate == a.LocalDate {
			a.AdminNumberForDay++
		}
	}

	item := adapters.MapDomainAdministrationToStore(a)
	if err := validation.Administration(item); err != nil {
		return domain.MedicationAdministration{}, err
	}
	if err := s.write(ctx, KeyAdministrations, append([]store.MedicationAdministration{item}, items...)); err != nil {
		return domain.MedicationAdministration{}, err
	}
	return a, nil
}

// RemoveMedicationAdministration reports whether an administration with id
// was removed.
func (s *Store) RemoveMedicationAdministration(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []store.MedicationAdministration
	if _, err := s.read(ctx, KeyAdministrations, &items); err != nil {
		return false, err
	}
	kept := filterByID(items, id, func(a store.MedicationAdministration) string { return a.ID })
	if len(kept) == len(items) {
		return false, nil
	}
	return true, s.write(ctx, KeyAdministrations, kept)
}
