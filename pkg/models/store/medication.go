package store

type MedicationEntry struct {
	ID                 string   `json:"id" validate:"required,max=100"`
	Dose               string   `json:"dose,omitempty" validate:"max=100"`
	DoseOther          string   `json:"doseOther,omitempty" validate:"max=100"`
	Frequency          string   `json:"frequency,omitempty" validate:"omitempty,medfrequency"`
	FrequencyOther     string   `json:"frequencyOther,omitempty" validate:"max=100"`
	Timings            []string `json:"timings,omitempty" validate:"max=5,dive,medtiming"`
	Notes              string   `json:"notes,omitempty" validate:"max=5000"`
	IsTrialParticipant bool     `json:"isTrialParticipant,omitempty"`
	LastUpdated        string   `json:"lastUpdated" validate:"max=50"`
}

// UserMedications maps medication id to the user's entry for it.
type UserMedications map[string]MedicationEntry

type MedicationRegimen struct {
	MedicationID     string   `json:"medicationId" validate:"required,max=100"`
	BrandName        string   `json:"brandName" validate:"required,max=100"`
	GenericName      string   `json:"genericName" validate:"max=100"`
	DefaultDose      string   `json:"defaultDose" validate:"max=100"`
	DefaultFrequency string   `json:"defaultFrequency" validate:"omitempty,medfrequency"`
	DefaultTimings   []string `json:"defaultTimings" validate:"max=5,dive,medtiming"`
	FrequencyCount   int      `json:"frequencyCount" validate:"min=1,max=4"`
}

type UserMedicationConfig struct {
	IsConfigured bool                `json:"isConfigured"`
	Regimen      []MedicationRegimen `json:"regimen" validate:"max=50,dive"`
	LastUpdated  string              `json:"lastUpdated" validate:"max=50"`
}

type MedicationAdministration struct {
	ID                string `json:"id" validate:"required,max=100"`
	MedicationID      string `json:"medicationId" validate:"required,max=100"`
	BrandName         string `json:"brandName" validate:"max=100"`
	Timestamp         string `json:"timestamp" validate:"required,max=50"`
	LocalDate         string `json:"localDate" validate:"localdate"`
	LocalTime         string `json:"localTime" validate:"required,max=20"`
	DoseSelected      string `json:"doseSelected" validate:"max=100"`
	AdminNumberForDay int    `json:"adminNumberForDay,omitempty" validate:"min=0"`
}
