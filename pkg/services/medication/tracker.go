package medication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// UndoWindow is how long a logged dose can be taken back.
const UndoWindow = 30 * time.Second

var (
	ErrUnknownMedication = errors.New("medication is not in the configured regimen")
	ErrUndoExpired       = errors.New("undo window has expired")
	ErrNotFound          = errors.New("administration not found")
)

type Store interface {
	GetMedicationConfig(ctx context.Context) *domain.UserMedicationConfig
	GetMedicationAdministrations(ctx context.Context) []domain.MedicationAdministration
	GetTodayAdministrations(ctx context.Context, medicationID, today string) []domain.MedicationAdministration
	LogMedicationAdministration(ctx context.Context, a domain.MedicationAdministration) (domain.MedicationAdministration, error)
	RemoveMedicationAdministration(ctx context.Context, id string) (bool, error)
}

// Logged is a freshly recorded dose and the deadline for undoing it.
type Logged struct {
	Administration domain.MedicationAdministration
	UndoUntil      time.Time
}

// DoseStatus is the progress on one configured medication for a day.
type DoseStatus struct {
	MedicationID string
	BrandName    string
	GenericName  string
	DefaultDose  string
	Taken        int
	Target       int
	Complete     bool
	Doses        []domain.MedicationAdministration
}

type Tracker struct {
	store Store
	newID func() string
}

func NewTracker(store Store) (*Tracker, error) {
	if store == nil {
		return nil, fmt.Errorf("medication store is required")
	}
	return &Tracker{
		store: store,
		newID: uuid.NewString,
	}, nil
}

// LogTaken records one dose of medicationID at now using the regimen's
// default dose. The store assigns the dose's number within the day.
func (t *Tracker) LogTaken(ctx context.Context, medicationID string, now time.Time) (Logged, error) {
	med, ok := t.store.GetMedicationConfig(ctx).Find(medicationID)
	if !ok {
		return Logged{}, fmt.Errorf("%w: %s", ErrUnknownMedication, medicationID)
	}

	admin, err := t.store.LogMedicationAdministration(ctx, domain.MedicationAdministration{
		ID:           t.newID(),
		MedicationID: med.MedicationID,
		BrandName:    med.BrandName,
		Timestamp:    now,
		LocalDate:    now.Format(time.DateOnly),
		LocalTime:    now.Format("15:04"),
		DoseSelected: med.DefaultDose,
	})
	if err != nil {
		return Logged{}, fmt.Errorf("failed to log %s: %w", medicationID, err)
	}

	zerolog.Ctx(ctx).Info().
		Str("medication", medicationID).
		Int("dose_number", admin.AdminNumberForDay).
		Msg("dose logged")

	return Logged{Administration: admin, UndoUntil: now.Add(UndoWindow)}, nil
}

// Undo removes a dose logged less than UndoWindow before now.
func (t *Tracker) Undo(ctx context.Context, id string, now time.Time) error {
	var found *domain.MedicationAdministration
	for _, a := range t.store.GetMedicationAdministrations(ctx) {
		if a.ID == id {
			found = &a
			break
		}
	}
	if found == nil {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if now.Sub(found.Timestamp) > UndoWindow {
		return ErrUndoExpired
	}

	removed, err := t.store.RemoveMedicationAdministration(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to undo %s: %w", id, err)
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	zerolog.Ctx(ctx).Info().Str("administration", id).Msg("dose undone")
	return nil
}

// Today lists every configured medication with the doses logged on now's
// local date. Nothing configured yields an empty list.
func (t *Tracker) Today(ctx context.Context, now time.Time) []DoseStatus {
	cfg := t.store.GetMedicationConfig(ctx)
	if cfg == nil {
		return []DoseStatus{}
	}

	today := now.Format(time.DateOnly)
	out := make([]DoseStatus, 0, len(cfg.Regimen))
	for _, med := range cfg.Regimen {
		doses := t.store.GetTodayAdministrations(ctx, med.MedicationID, today)
		out = append(out, DoseStatus{
			MedicationID: med.MedicationID,
			BrandName:    med.BrandName,
			GenericName:  med.GenericName,
			DefaultDose:  med.DefaultDose,
			Taken:        len(doses),
			Target:       med.FrequencyCount,
			Complete:     med.FrequencyCount > 0 && len(doses) >= med.FrequencyCount,
			Doses:        doses,
		})
	}
	return out
}

// History returns logged doses newest first, optionally for one medication.
func (t *Tracker) History(ctx context.Context, medicationID string) []domain.MedicationAdministration {
	all := t.store.GetMedicationAdministrations(ctx)
	if medicationID == "" {
		return all
	}
	out := make([]domain.MedicationAdministration, 0, len(all))
	for _, a := range all {
		if a.MedicationID == medicationID {
			out = append(out, a)
		}
	}
	return out
}
