package store

import "encoding/json"

const (
	CollectionVersion = 1
	ExportVersion     = 1
)

// Collection wraps every persisted collection value with a schema version.
// Values written before versioning are bare JSON and read as version 0.
type Collection struct {
	Version int             `json:"version"`
	Items   json.RawMessage `json:"items"`
}

// ExportEnvelope is the whole-database JSON export.
type ExportEnvelope struct {
	Version    int             `json:"version"`
	ExportedAt string          `json:"exportedAt"`
	CheckIns   []CheckIn       `json:"checkIns"`
	Events     []TrackingEvent `json:"events"`
	Settings   AppSettings     `json:"settings"`
}

// ImportEnvelope is ExportEnvelope with every key optional, so a missing key
// can be told apart from an empty one.
type ImportEnvelope struct {
	Version    *int             `json:"version,omitempty" validate:"omitempty,min=1,max=100"`
	ExportedAt *string          `json:"exportedAt,omitempty" validate:"omitempty,max=50"`
	CheckIns   *[]CheckIn       `json:"checkIns,omitempty" validate:"omitempty,max=50000,dive"`
	Events     *[]TrackingEvent `json:"events,omitempty" validate:"omitempty,max=50000,dive"`
	Settings   *AppSettings     `json:"settings,omitempty" validate:"omitempty"`
}
