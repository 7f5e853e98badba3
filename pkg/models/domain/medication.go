package domain

import "time"

type MedicationFrequency string

const (
	FrequencyOnce      MedicationFrequency = "1x/day"
	FrequencyTwice     MedicationFrequency = "2x/day"
	FrequencyThrice    MedicationFrequency = "3x/day"
	FrequencyFourTimes MedicationFrequency = "4x/day"
	FrequencyAsNeeded  MedicationFrequency = "PRN"
	FrequencyOther     MedicationFrequency = "other"
)

type MedicationTiming string

const (
	TimingMorning   MedicationTiming = "morning"
	TimingMidday    MedicationTiming = "midday"
	TimingAfternoon MedicationTiming = "afternoon"
	TimingEvening   MedicationTiming = "evening"
	TimingBedtime   MedicationTiming = "bedtime"
)

// MedicationEntry holds the user's own notes about one medication.
type MedicationEntry struct {
	ID                 string
	Dose               string
	DoseOther          string
	Frequency          MedicationFrequency
	FrequencyOther     string
	Timings            []MedicationTiming
	Notes              string
	IsTrialParticipant bool
	LastUpdated        time.Time
}

// MedicationRegimen is one configured medication used for quick logging.
type MedicationRegimen struct {
	MedicationID     string
	BrandName        string
	GenericName      string
	DefaultDose      string
	DefaultFrequency MedicationFrequency
	DefaultTimings   []MedicationTiming
	FrequencyCount   int
}

type UserMedicationConfig struct {
	IsConfigured bool
	Regimen      []MedicationRegimen
	LastUpdated  time.Time
}

// Find returns the regimen entry for medicationID.
func (c *UserMedicationConfig) Find(medicationID string) (MedicationRegimen, bool) {
	if c == nil {
		return MedicationRegimen{}, false
	}
	for _, med := range c.Regimen {
		if med.MedicationID == medicationID {
			return med, true
		}
	}
	return MedicationRegimen{}, false
}

// MedicationAdministration is a single logged dose.
type MedicationAdministration struct {
	ID                string
	MedicationID      string
	BrandName         string
	Timestamp         time.Time
	LocalDate         string
	LocalTime         string
	DoseSelected      string
	AdminNumberForDay int
}
