package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validCheckIn() store.CheckIn {
	return store.CheckIn{
		ID:        "c1",
		CreatedAt: "2025-01-10T08:00:00.000Z",
		LocalDate: "2025-01-10",
		LocalTime: "08:00",
		NarcolepsyDomains: &store.NarcolepsyDomains{
			SleepPressure: intPtr(3),
		},
		Tags: []string{"caffeine"},
	}
}

func TestCheckIn(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, CheckIn(validCheckIn()))
	})

	t.Run("score out of range", func(t *testing.T) {
		c := validCheckIn()
		c.NarcolepsyDomains.SleepPressure = intPtr(6)

		err := CheckIn(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalid))

		var verrs Errors
		require.True(t, errors.As(err, &verrs))
		require.Len(t, verrs, 1)
		assert.Equal(t, "narcolepsyDomains.sleepPressure", verrs[0].Field)
	})

	t.Run("legacy score out of range", func(t *testing.T) {
		c := validCheckIn()
		c.WakeDomains = &store.WakeDomains{Cataplexy: intPtr(0)}
		assert.Error(t, CheckIn(c))
	})

	t.Run("bad local date", func(t *testing.T) {
		c := validCheckIn()
		c.LocalDate = "10/01/2025"

		var verrs Errors
		require.True(t, errors.As(CheckIn(c), &verrs))
		assert.Equal(t, "localDate", verrs[0].Field)
		assert.Equal(t, "must be a yyyy-MM-dd date", verrs[0].Message)
	})

	t.Run("note too long", func(t *testing.T) {
		c := validCheckIn()
		c.Note = strings.Repeat("x", 5001)
		assert.Error(t, CheckIn(c))
	})

	t.Run("too many tags", func(t *testing.T) {
		c := validCheckIn()
		c.Tags = make([]string, 51)
		for i := range c.Tags {
			c.Tags[i] = "t"
		}
		assert.Error(t, CheckIn(c))
	})

	t.Run("missing id", func(t *testing.T) {
		c := validCheckIn()
		c.ID = ""
		assert.Error(t, CheckIn(c))
	})
}

func TestEvent(t *testing.T) {
	valid := store.TrackingEvent{
		ID:          "e1",
		Type:        "cataplexy",
		CreatedAt:   "2025-01-10T08:00:00.000Z",
		LocalDate:   "2025-01-10",
		LocalTime:   "08:00",
		SeverityTag: "moderate",
		ContextTags: []string{},
	}
	assert.NoError(t, Event(valid))

	bad := valid
	bad.SeverityTag = "extreme"
	assert.Error(t, Event(bad))

	bad = valid
	bad.LocalDate = "2025-1-10"
	assert.Error(t, Event(bad))

	bad = valid
	bad.SleepInertiaDuration = "an hour"
	assert.Error(t, Event(bad))
}

func TestSettings(t *testing.T) {
	assert.NoError(t, Settings(store.AppSettings{Theme: "charcoal"}))
	assert.Error(t, Settings(store.AppSettings{Theme: "neon"}))
}

func TestMedicationConfig(t *testing.T) {
	cfg := store.UserMedicationConfig{
		IsConfigured: true,
		Regimen: []store.MedicationRegimen{{
			MedicationID:     "modafinil",
			BrandName:        "Provigil",
			DefaultFrequency: "2x/day",
			DefaultTimings:   []string{"morning", "midday"},
			FrequencyCount:   2,
		}},
	}
	assert.NoError(t, MedicationConfig(cfg))

	cfg.Regimen[0].DefaultTimings = []string{"midnight"}
	assert.Error(t, MedicationConfig(cfg))

	cfg.Regimen[0].DefaultTimings = nil
	cfg.Regimen[0].FrequencyCount = 5
	assert.Error(t, MedicationConfig(cfg))
}

func TestImportEnvelope(t *testing.T) {
	version := 1
	checkIns := []store.CheckIn{validCheckIn()}

	t.Run("partial envelope", func(t *testing.T) {
		assert.NoError(t, ImportEnvelope(store.ImportEnvelope{CheckIns: &checkIns}))
	})

	t.Run("version out of range", func(t *testing.T) {
		v := 101
		assert.Error(t, ImportEnvelope(store.ImportEnvelope{Version: &v}))
	})

	t.Run("nested item invalid", func(t *testing.T) {
		bad := validCheckIn()
		bad.LocalDate = "yesterday"
		items := []store.CheckIn{bad}
		err := ImportEnvelope(store.ImportEnvelope{Version: &version, CheckIns: &items})

		var verrs Errors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, "checkIns[0].localDate", verrs[0].Field)
	})
}
