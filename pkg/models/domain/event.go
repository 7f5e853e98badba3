package domain

import (
	"strings"
	"time"
)

type EventType string

const (
	EventTypeCataplexy EventType = "cataplexy"
	EventTypeNap       EventType = "nap"

	EventTypePlannedNap   EventType = "planned-nap"
	EventTypeUnplannedNap EventType = "unplanned-nap"
)

type SeverityTag string

const (
	SeverityMild     SeverityTag = "mild"
	SeverityModerate SeverityTag = "moderate"
	SeveritySevere   SeverityTag = "severe"
)

type RefreshedLevel string

const (
	RefreshedYes      RefreshedLevel = "yes"
	RefreshedSomewhat RefreshedLevel = "somewhat"
	RefreshedNo       RefreshedLevel = "no"
)

type SleepInertiaDuration string

const (
	SleepInertiaUnder5 SleepInertiaDuration = "<5m"
	SleepInertia5To15  SleepInertiaDuration = "5-15m"
	SleepInertia15To30 SleepInertiaDuration = "15-30m"
	SleepInertiaOver30 SleepInertiaDuration = "30m+"
)

// EventKind is the report-level partition of events.
type EventKind string

const (
	EventKindNap       EventKind = "nap"
	EventKindCataplexy EventKind = "cataplexy"
	EventKindOther     EventKind = "other"
)

// TrackingEvent is a discrete occurrence: a cataplexy episode, a nap, or one
// of the legacy event subtypes.
type TrackingEvent struct {
	ID          string
	Type        EventType
	CreatedAt   time.Time
	LocalDate   string
	LocalTime   string
	SeverityTag SeverityTag
	ContextTags []string
	Note        string

	// nap fields
	StartTime            string
	EndTime              string
	Planned              *bool
	Refreshed            RefreshedLevel
	SleepInertiaDuration SleepInertiaDuration

	// cataplexy fields
	EmotionTriggers []string
	ActivityContext []string
}

// Kind classifies the event into exactly one of nap, cataplexy or other.
func (e TrackingEvent) Kind() EventKind {
	return e.Type.Kind()
}

func (e TrackingEvent) IsPlanned() bool {
	return e.Planned != nil && *e.Planned
}

func (t EventType) Kind() EventKind {
	switch {
	case t == EventTypeNap || t == EventTypePlannedNap || t == EventTypeUnplannedNap:
		return EventKindNap
	case strings.Contains(string(t), string(EventTypeCataplexy)):
		return EventKindCataplexy
	default:
		return EventKindOther
	}
}

type EventCategory string

const (
	EventCategoryCataplexy  EventCategory = "cataplexy"
	EventCategorySleep      EventCategory = "sleep"
	EventCategoryParasomnia EventCategory = "parasomnia"
	EventCategoryCognitive  EventCategory = "cognitive"
	EventCategoryTreatment  EventCategory = "treatment"
	EventCategoryTrigger    EventCategory = "trigger"
	EventCategoryActivity   EventCategory = "activity"
	EventCategorySafety     EventCategory = "safety"
)

type EventTypeDef struct {
	ID       EventType
	Label    string
	Category EventCategory
}

// LegacyEventTypes are the enumerated event subtypes kept for old records.
var LegacyEventTypes = []EventTypeDef{
	{ID: "major-cataplexy", Label: "Major Cataplexy", Category: EventCategoryCataplexy},
	{ID: "partial-cataplexy", Label: "Partial Cataplexy (Face/Jaw)", Category: EventCategoryCataplexy},
	{ID: "knee-buckling", Label: "Knee Buckling", Category: EventCategoryCataplexy},
	{ID: "head-drop", Label: "Head Drop", Category: EventCategoryCataplexy},
	{ID: "sleep-attack", Label: "Sleep Attack", Category: EventCategorySleep},
	{ID: EventTypeUnplannedNap, Label: "Unplanned Nap", Category: EventCategorySleep},
	{ID: EventTypePlannedNap, Label: "Planned Nap", Category: EventCategorySleep},
	{ID: "fragmented-night", Label: "Fragmented Night Sleep", Category: EventCategorySleep},
	{ID: "sleep-paralysis", Label: "Sleep Paralysis", Category: EventCategoryParasomnia},
	{ID: "hypnagogic-hallucination", Label: "Hypnagogic Hallucination", Category: EventCategoryParasomnia},
	{ID: "hypnopompic-hallucination", Label: "Hypnopompic Hallucination", Category: EventCategoryParasomnia},
	{ID: "vivid-dream", Label: "Vivid/Lucid Dream", Category: EventCategoryParasomnia},
	{ID: "nightmare", Label: "Nightmare", Category: EventCategoryParasomnia},
	{ID: "automatic-behavior", Label: "Automatic Behavior Episode", Category: EventCategoryCognitive},
	{ID: "memory-gap", Label: "Memory Gap", Category: EventCategoryCognitive},
	{ID: "brain-fog-severe", Label: "Severe Brain Fog", Category: EventCategoryCognitive},
	{ID: "word-finding", Label: "Word Finding Difficulty", Category: EventCategoryCognitive},
	{ID: "medication-taken", Label: "Medication Taken", Category: EventCategoryTreatment},
	{ID: "medication-missed", Label: "Medication Missed", Category: EventCategoryTreatment},
	{ID: "stimulant-dose", Label: "Stimulant Dose", Category: EventCategoryTreatment},
	{ID: "caffeine-use", Label: "Caffeine Use", Category: EventCategoryTreatment},
	{ID: "emotional-trigger", Label: "Emotional Trigger", Category: EventCategoryTrigger},
	{ID: "stress-episode", Label: "Stress Episode", Category: EventCategoryTrigger},
	{ID: "exercise-session", Label: "Exercise Session", Category: EventCategoryActivity},
	{ID: "driving-incident", Label: "Driving Near-Miss/Concern", Category: EventCategorySafety},
}

// LookupEventType finds the definition of a legacy event type.
func LookupEventType(t EventType) (EventTypeDef, bool) {
	for _, def := range LegacyEventTypes {
		if def.ID == t {
			return def, true
		}
	}
	return EventTypeDef{}, false
}

var EmotionTags = []string{
	"laughter", "surprise", "frustration", "joy", "intimacy", "conflict", "embarrassment", "other",
}

var ActivityTags = []string{
	"talking", "eating", "walking", "driving", "exercising", "social setting", "work meeting", "other",
}
