package store

type TrackingEvent struct {
	ID          string   `json:"id" validate:"required,max=100"`
	Type        string   `json:"type" validate:"required,max=100"`
	CreatedAt   string   `json:"createdAt" validate:"required,max=50"`
	LocalDate   string   `json:"localDate" validate:"localdate"`
	LocalTime   string   `json:"localTime" validate:"required,max=20"`
	SeverityTag string   `json:"severityTag,omitempty" validate:"omitempty,oneof=mild moderate severe"`
	ContextTags []string `json:"contextTags" validate:"max=50,dive,max=100"`
	Note        string   `json:"note,omitempty" validate:"max=5000"`

	StartTime            string   `json:"startTime,omitempty" validate:"max=20"`
	EndTime              string   `json:"endTime,omitempty" validate:"max=20"`
	Planned              *bool    `json:"planned,omitempty"`
	Refreshed            string   `json:"refreshed,omitempty" validate:"omitempty,oneof=yes somewhat no"`
	SleepInertiaDuration string   `json:"sleepInertiaDuration,omitempty" validate:"omitempty,oneof=<5m 5-15m 15-30m 30m+"`
	EmotionTriggers      []string `json:"emotionTriggers,omitempty" validate:"max=50,dive,max=100"`
	ActivityContext      []string `json:"activityContext,omitempty" validate:"max=50,dive,max=100"`
}
