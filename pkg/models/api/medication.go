package api

import "time"

type MedicationEntry struct {
	ID                 string    `json:"id"`
	Dose               string    `json:"dose,omitempty"`
	DoseOther          string    `json:"doseOther,omitempty"`
	Frequency          string    `json:"frequency,omitempty"`
	FrequencyOther     string    `json:"frequencyOther,omitempty"`
	Timings            []string  `json:"timings,omitempty"`
	Notes              string    `json:"notes,omitempty"`
	IsTrialParticipant bool      `json:"isTrialParticipant,omitempty"`
	LastUpdated        time.Time `json:"lastUpdated"`
}

type MedicationRegimen struct {
	MedicationID     string   `json:"medicationId"`
	BrandName        string   `json:"brandName"`
	GenericName      string   `json:"genericName,omitempty"`
	DefaultDose      string   `json:"defaultDose,omitempty"`
	DefaultFrequency string   `json:"defaultFrequency,omitempty"`
	DefaultTimings   []string `json:"defaultTimings,omitempty"`
	FrequencyCount   int      `json:"frequencyCount"`
}

type MedicationConfig struct {
	IsConfigured bool                `json:"isConfigured"`
	Regimen      []MedicationRegimen `json:"regimen"`
	LastUpdated  time.Time           `json:"lastUpdated"`
}

type Administration struct {
	ID                string    `json:"id"`
	MedicationID      string    `json:"medicationId"`
	BrandName         string    `json:"brandName,omitempty"`
	Timestamp         time.Time `json:"timestamp"`
	LocalDate         string    `json:"localDate"`
	LocalTime         string    `json:"localTime"`
	DoseSelected      string    `json:"doseSelected,omitempty"`
	AdminNumberForDay int       `json:"adminNumberForDay"`
}

type LoggedDose struct {
	Administration Administration `json:"administration"`
	UndoUntil      time.Time      `json:"undoUntil"`
}

type DoseStatus struct {
	MedicationID string           `json:"medicationId"`
	BrandName    string           `json:"brandName"`
	GenericName  string           `json:"genericName,omitempty"`
	DefaultDose  string           `json:"defaultDose,omitempty"`
	Taken        int              `json:"taken"`
	Target       int              `json:"target"`
	Complete     bool             `json:"complete"`
	Doses        []Administration `json:"doses"`
}
