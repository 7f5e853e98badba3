package collections

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/services/validation"
	"github.com/de-tools/wakestate/pkg/store/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingBackend struct {
	kv.Backend
}

func (failingBackend) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

// readOnlyBackend reads through to the embedded backend and rejects writes.
type readOnlyBackend struct {
	kv.Backend
}

func (readOnlyBackend) Set(context.Context, string, []byte) error {
	return errors.New("disk full")
}

type fixture struct {
	primary *kv.Memory
	legacy  *kv.Memory
	store   *Store
}

func setupFixture(t *testing.T) *fixture {
	primary := kv.NewMemory()
	legacy := kv.NewMemory()
	s, err := NewStore(primary, legacy)
	require.NoError(t, err)
	return &fixture{primary: primary, legacy: legacy, store: s}
}

func checkIn(id, date string, scores map[domain.Domain]int) domain.CheckIn {
	return domain.CheckIn{
		ID:        id,
		CreatedAt: time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC),
		LocalDate: date,
		LocalTime: "08:00",
		Scores:    scores,
		Tags:      []string{},
	}
}

func event(id string, typ domain.EventType, date string) domain.TrackingEvent {
	return domain.TrackingEvent{
		ID:        id,
		Type:      typ,
		CreatedAt: time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
		LocalDate: date,
		LocalTime: "09:00",
	}
}

func ids[T any](items []T, idOf func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, idOf(item))
	}
	return out
}

func checkInIDs(items []domain.CheckIn) []string {
	return ids(items, func(c domain.CheckIn) string { return c.ID })
}

func TestNewStore_NilPrimary(t *testing.T) {
	s, err := NewStore(nil, nil)
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestStore_Defaults(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	assert.Empty(t, f.store.GetCheckIns(ctx))
	assert.NotNil(t, f.store.GetCheckIns(ctx))
	assert.Empty(t, f.store.GetEvents(ctx))
	assert.Equal(t, domain.DefaultSettings(), f.store.GetSettings(ctx))
	assert.Empty(t, f.store.GetUserMedications(ctx))
	assert.Nil(t, f.store.GetMedicationConfig(ctx))
	assert.Empty(t, f.store.GetMedicationAdministrations(ctx))
}

func TestStore_CheckIns(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.SaveCheckIn(ctx, checkIn("c1", "2025-01-10", map[domain.Domain]int{domain.DomainSleepPressure: 2})))
	require.NoError(t, f.store.SaveCheckIn(ctx, checkIn("c2", "2025-01-11", map[domain.Domain]int{domain.DomainMood: 4})))

	t.Run("newest first", func(t *testing.T) {
		assert.Equal(t, []string{"c2", "c1"}, checkInIDs(f.store.GetCheckIns(ctx)))
	})

	t.Run("stored versioned", func(t *testing.T) {
		raw, err := f.primary.Get(ctx, KeyCheckIns)
		require.NoError(t, err)
		var env struct {
			Version int               `json:"version"`
			Items   []json.RawMessage `json:"items"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.Equal(t, 1, env.Version)
		assert.Len(t, env.Items, 2)
	})

	t.Run("invalid score rejected", func(t *testing.T) {
		err := f.store.SaveCheckIn(ctx, checkIn("c3", "2025-01-12", map[domain.Domain]int{domain.DomainMood: 9}))
		assert.ErrorIs(t, err, validation.ErrInvalid)
		assert.Len(t, f.store.GetCheckIns(ctx), 2)
	})

	t.Run("update merges scores", func(t *testing.T) {
		note := "after lunch"
		updated, found, err := f.store.UpdateCheckIn(ctx, "c1", domain.CheckInPatch{
			Scores: map[domain.Domain]int{domain.DomainCognitive: 3},
			Note:   &note,
		})
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, map[domain.Domain]int{domain.DomainSleepPressure: 2, domain.DomainCognitive: 3}, updated.Scores)

		got := f.store.GetCheckIns(ctx)
		assert.Equal(t, []string{"c2", "c1"}, checkInIDs(got))
		assert.Equal(t, "after lunch", got[1].Note)
	})

	t.Run("update missing id is a no-op", func(t *testing.T) {
		_, found, err := f.store.UpdateCheckIn(ctx, "nope", domain.CheckInPatch{})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, f.store.DeleteCheckIn(ctx, "c2"))
		assert.Equal(t, []string{"c1"}, checkInIDs(f.store.GetCheckIns(ctx)))
	})
}

func TestStore_LegacyShapeIsNormalized(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	bare := `[{"id":"old","createdAt":"2023-05-01T10:00:00.000Z","localDate":"2023-05-01","localTime":"10:00",
		"wakeDomains":{"cataplexy":2,"sleepPressure":4,"cognitive":3},"contextDomains":{"mood":2},"tags":["meds"]}]`
	require.NoError(t, f.primary.Set(ctx, KeyCheckIns, []byte(bare)))

	got := f.store.GetCheckIns(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, map[domain.Domain]int{
		domain.DomainCataplexy:     2,
		domain.DomainSleepPressure: 4,
		domain.DomainCognitive:     3,
		domain.DomainMood:          2,
	}, got[0].Scores)
}

func TestStore_LegacyFallback(t *testing.T) {
	ctx := context.Background()
	legacy := kv.NewMemory()
	require.NoError(t, legacy.Set(ctx, KeySettings, []byte(`{"showContextByDefault":true,"theme":"charcoal"}`)))
	require.NoError(t, legacy.Set(ctx, KeyEvents, []byte(`[{"id":"e1","type":"nap","createdAt":"2024-02-02T12:00:00.000Z","localDate":"2024-02-02","localTime":"12:00","contextTags":[]}]`)))

	t.Run("primary failure reads legacy", func(t *testing.T) {
		s, err := NewStore(failingBackend{kv.NewMemory()}, legacy)
		require.NoError(t, err)

		assert.Equal(t, domain.AppSettings{ShowContextByDefault: true, Theme: domain.ThemeCharcoal}, s.GetSettings(ctx))
		assert.Len(t, s.GetEvents(ctx), 1)
	})

	t.Run("total failure degrades to default", func(t *testing.T) {
		s, err := NewStore(failingBackend{kv.NewMemory()}, nil)
		require.NoError(t, err)

		assert.Empty(t, s.GetCheckIns(ctx))
		assert.Equal(t, domain.DefaultSettings(), s.GetSettings(ctx))
	})

	t.Run("save refuses to clobber unreadable data", func(t *testing.T) {
		s, err := NewStore(failingBackend{kv.NewMemory()}, nil)
		require.NoError(t, err)

		err = s.SaveCheckIn(ctx, checkIn("c1", "2025-01-10", map[domain.Domain]int{domain.DomainMood: 2}))
		assert.Error(t, err)
	})

	t.Run("mistyped primary degrades to default", func(t *testing.T) {
		primary := kv.NewMemory()
		require.NoError(t, primary.Set(ctx, KeyCheckIns, []byte(`{"version":1,"items":[{"id":"a","localDate":"2025-01-01"},{"id":5}]}`)))
		require.NoError(t, primary.Set(ctx, KeySettings, []byte(`{"showContextByDefault":true,"theme":7}`)))
		s, err := NewStore(primary, nil)
		require.NoError(t, err)

		assert.Empty(t, s.GetCheckIns(ctx))
		assert.Equal(t, domain.DefaultSettings(), s.GetSettings(ctx))
	})

	t.Run("mistyped primary is not merged into legacy", func(t *testing.T) {
		primary := kv.NewMemory()
		require.NoError(t, primary.Set(ctx, KeyMedications, []byte(`{"version":1,"items":{"stale":{"id":"stale","dose":"100mg"},"bad":{"id":5}}}`)))
		withMeds := kv.NewMemory()
		require.NoError(t, withMeds.Set(ctx, KeyMedications, []byte(`{"legacy":{"id":"legacy","dose":"200mg"}}`)))
		s, err := NewStore(primary, withMeds)
		require.NoError(t, err)

		meds := s.GetUserMedications(ctx)
		assert.Len(t, meds, 1)
		assert.Contains(t, meds, "legacy")
	})

	t.Run("empty primary reads legacy", func(t *testing.T) {
		s, err := NewStore(kv.NewMemory(), legacy)
		require.NoError(t, err)
		assert.Equal(t, domain.ThemeCharcoal, s.GetSettings(ctx).Theme)
	})
}

func TestStore_Events(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.SaveEvent(ctx, event("e1", domain.EventTypeNap, "2025-01-10")))
	require.NoError(t, f.store.SaveEvent(ctx, event("e2", domain.EventTypeCataplexy, "2025-01-10")))

	got := f.store.GetEvents(ctx)
	assert.Equal(t, []string{"e2", "e1"}, ids(got, func(e domain.TrackingEvent) string { return e.ID }))

	bad := event("e3", domain.EventTypeNap, "Jan 10")
	assert.ErrorIs(t, f.store.SaveEvent(ctx, bad), validation.ErrInvalid)

	require.NoError(t, f.store.DeleteEvent(ctx, "e2"))
	assert.Len(t, f.store.GetEvents(ctx), 1)
}

func TestStore_Settings(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.SaveSettings(ctx, domain.AppSettings{Theme: domain.ThemeDeepOcean}))
	assert.Equal(t, domain.ThemeDeepOcean, f.store.GetSettings(ctx).Theme)

	assert.Error(t, f.store.SaveSettings(ctx, domain.AppSettings{Theme: "sepia"}))
}

func TestStore_Medications(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	t.Run("entries upsert by id", func(t *testing.T) {
		require.NoError(t, f.store.SaveMedicationEntry(ctx, domain.MedicationEntry{ID: "sodium-oxybate", Dose: "4.5 g"}))
		require.NoError(t, f.store.SaveMedicationEntry(ctx, domain.MedicationEntry{ID: "sodium-oxybate", Dose: "6 g"}))

		entries := f.store.GetUserMedications(ctx)
		require.Len(t, entries, 1)
		assert.Equal(t, "6 g", entries["sodium-oxybate"].Dose)

		require.NoError(t, f.store.RemoveMedicationEntry(ctx, "sodium-oxybate"))
		assert.Empty(t, f.store.GetUserMedications(ctx))
	})

	t.Run("config overwrite", func(t *testing.T) {
		cfg := domain.UserMedicationConfig{
			IsConfigured: true,
			Regimen: []domain.MedicationRegimen{{
				MedicationID:   "modafinil",
				BrandName:      "Provigil",
				FrequencyCount: 2,
			}},
		}
		require.NoError(t, f.store.SaveMedicationConfig(ctx, cfg))

		got := f.store.GetMedicationConfig(ctx)
		require.NotNil(t, got)
		med, ok := got.Find("modafinil")
		assert.True(t, ok)
		assert.Equal(t, 2, med.FrequencyCount)
	})

	t.Run("administrations", func(t *testing.T) {
		at := time.Date(2025, 1, 10, 7, 30, 0, 0, time.UTC)
		var numbers []int
		for i, date := range []string{"2025-01-09", "2025-01-10", "2025-01-10"} {
			logged, err := f.store.LogMedicationAdministration(ctx, domain.MedicationAdministration{
				ID:           "a" + string(rune('1'+i)),
				MedicationID: "modafinil",
				Timestamp:    at,
				LocalDate:    date,
				LocalTime:    "07:30",
			})
			require.NoError(t, err)
			numbers = append(numbers, logged.AdminNumberForDay)
		}

		// Numbers restart on each local date
		assert.Equal(t, []int{1, 1, 2}, numbers)

		assert.Len(t, f.store.GetTodayAdministrations(ctx, "modafinil", "2025-01-10"), 2)
		assert.Empty(t, f.store.GetTodayAdministrations(ctx, "armodafinil", "2025-01-10"))

		removed, err := f.store.RemoveMedicationAdministration(ctx, "a3")
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = f.store.RemoveMedicationAdministration(ctx, "a3")
		require.NoError(t, err)
		assert.False(t, removed)

		assert.Len(t, f.store.GetMedicationAdministrations(ctx), 2)
	})
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := setupFixture(t)

	require.NoError(t, src.store.SaveCheckIn(ctx, checkIn("c1", "2025-01-10", map[domain.Domain]int{domain.DomainSleepPressure: 3})))
	require.NoError(t, src.store.SaveCheckIn(ctx, checkIn("c2", "2025-01-11", map[domain.Domain]int{domain.DomainAnxiety: 2})))
	require.NoError(t, src.store.SaveEvent(ctx, event("e1", domain.EventTypeNap, "2025-01-11")))
	require.NoError(t, src.store.SaveSettings(ctx, domain.AppSettings{ShowContextByDefault: true, Theme: domain.ThemeCharcoal}))

	exported, err := src.store.ExportAllData(ctx, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, string(exported), "\n  \"version\": 1,")
	assert.Contains(t, string(exported), `"exportedAt": "2025-01-12T00:00:00.000Z"`)

	dst := setupFixture(t)
	result, err := dst.store.ImportData(ctx, exported)
	require.NoError(t, err)
	assert.Equal(t, ImportResult{CheckIns: 2, Events: 1}, result)

	assert.Equal(t, src.store.GetCheckIns(ctx), dst.store.GetCheckIns(ctx))
	assert.Equal(t, src.store.GetEvents(ctx), dst.store.GetEvents(ctx))
	assert.Equal(t, src.store.GetSettings(ctx), dst.store.GetSettings(ctx))
}

func TestStore_ImportReplacesPresentCollections(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.SaveSettings(ctx, domain.AppSettings{Theme: domain.ThemeDeepOcean}))
	for _, id := range []string{"old1", "old2", "old3"} {
		require.NoError(t, f.store.SaveCheckIn(ctx, checkIn(id, "2024-12-01", map[domain.Domain]int{domain.DomainMood: 3})))
	}

	payload := `{
		"checkIns": [
			{"id":"n1","createdAt":"2025-01-01T08:00:00.000Z","localDate":"2025-01-01","localTime":"08:00","narcolepsyDomains":{"sleepPressure":2},"tags":[]},
			{"id":"n2","createdAt":"2025-01-02T08:00:00.000Z","localDate":"2025-01-02","localTime":"08:00","narcolepsyDomains":{"sleepPressure":4},"tags":[]}
		],
		"events": []
	}`

	result, err := f.store.ImportData(ctx, []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, ImportResult{CheckIns: 2, Events: 0}, result)

	assert.Equal(t, []string{"n1", "n2"}, checkInIDs(f.store.GetCheckIns(ctx)))
	assert.Empty(t, f.store.GetEvents(ctx))
	assert.Equal(t, domain.ThemeDeepOcean, f.store.GetSettings(ctx).Theme)
}

func TestStore_ImportFailures(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	require.NoError(t, f.store.SaveCheckIn(ctx, checkIn("keep", "2025-01-10", map[domain.Domain]int{domain.DomainMood: 3})))

	t.Run("malformed json", func(t *testing.T) {
		_, err := f.store.ImportData(ctx, []byte(`{"checkIns": [`))
		assert.ErrorIs(t, err, ErrImportFailed)
	})

	t.Run("invalid record", func(t *testing.T) {
		_, err := f.store.ImportData(ctx, []byte(`{"checkIns":[{"id":"x","createdAt":"t","localDate":"bad","localTime":"08:00","tags":[]}]}`))
		assert.ErrorIs(t, err, ErrImportFailed)
		assert.ErrorIs(t, err, validation.ErrInvalid)
	})

	t.Run("null or empty document", func(t *testing.T) {
		for _, body := range []string{"null", "  null\n", "", "   "} {
			result, err := f.store.ImportData(ctx, []byte(body))
			assert.ErrorIs(t, err, ErrImportFailed, "body %q", body)
			assert.Equal(t, ImportResult{}, result)
		}
	})

	t.Run("non-object document", func(t *testing.T) {
		_, err := f.store.ImportData(ctx, []byte(`[1,2]`))
		assert.ErrorIs(t, err, ErrImportFailed)
	})

	t.Run("unknown keys are skipped", func(t *testing.T) {
		result, err := f.store.ImportData(ctx, []byte(`{"version":1,"medications":{}}`))
		require.NoError(t, err)
		assert.Equal(t, ImportResult{}, result)
	})

	assert.Equal(t, []string{"keep"}, checkInIDs(f.store.GetCheckIns(ctx)))
}

func TestStore_ImportWriteFailure(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(readOnlyBackend{kv.NewMemory()}, nil)
	require.NoError(t, err)

	// A valid document that cannot be stored is a storage fault, not a bad import
	_, err = s.ImportData(ctx, []byte(`{"version":1,"events":[]}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrImportFailed)
	assert.ErrorContains(t, err, "disk full")
}

func TestExportToCSV(t *testing.T) {
	items := []domain.CheckIn{
		checkIn("c1", "2025-01-10", map[domain.Domain]int{domain.DomainSleepPressure: 4, domain.DomainCataplexy: 1}),
		checkIn("c2", "2025-01-11", map[domain.Domain]int{domain.DomainMood: 2}),
	}
	items[0].Tags = []string{"caffeine", "nap"}
	items[1].Note = "said \"fine\", felt\nfoggy"

	out := ExportToCSV(items)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, len(items)+1)
	assert.Equal(t,
		"id,createdAt,localDate,localTime,cataplexy,microsleeps,cognitive,effort,sleepPressure,motor,sensory,thermo,emotional,anxiety,mood,digestive,tags,note",
		lines[0])

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, `"`) && strings.HasSuffix(line, `"`))
	}
	for _, r := range records {
		assert.Len(t, r, 18)
	}

	assert.Equal(t, "c1", records[1][0])
	assert.Equal(t, "1", records[1][4])
	assert.Equal(t, "4", records[1][8])
	assert.Equal(t, "", records[1][5])
	assert.Equal(t, "caffeine; nap", records[1][16])
	assert.Equal(t, "2", records[2][14])
	assert.Equal(t, `said "fine", felt foggy`, records[2][17])
}

func TestExportToCSV_Empty(t *testing.T) {
	out := ExportToCSV(nil)
	assert.Equal(t, 1, len(strings.Split(out, "\n")))
}
