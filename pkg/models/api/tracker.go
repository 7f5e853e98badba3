package api

import "time"

type Error struct {
	Error string `json:"error"`
}

type CheckIn struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	LocalDate string         `json:"localDate"`
	LocalTime string         `json:"localTime"`
	Scores    map[string]int `json:"scores"`
	Tags      []string       `json:"tags"`
	Note      string         `json:"note,omitempty"`
}

// CheckInRequest creates a check-in. Date and time default to the server's
// local now.
type CheckInRequest struct {
	LocalDate string         `json:"localDate,omitempty"`
	LocalTime string         `json:"localTime,omitempty"`
	Scores    map[string]int `json:"scores"`
	Tags      []string       `json:"tags,omitempty"`
	Note      string         `json:"note,omitempty"`
}

type CheckInPatch struct {
	LocalDate *string        `json:"localDate,omitempty"`
	LocalTime *string        `json:"localTime,omitempty"`
	Scores    map[string]int `json:"scores,omitempty"`
	Tags      []string       `json:"tags,omitempty"`
	Note      *string        `json:"note,omitempty"`
}

type Event struct {
	ID                   string    `json:"id"`
	Type                 string    `json:"type"`
	Kind                 string    `json:"kind"`
	CreatedAt            time.Time `json:"createdAt"`
	LocalDate            string    `json:"localDate"`
	LocalTime            string    `json:"localTime"`
	SeverityTag          string    `json:"severityTag,omitempty"`
	ContextTags          []string  `json:"contextTags"`
	Note                 string    `json:"note,omitempty"`
	StartTime            string    `json:"startTime,omitempty"`
	EndTime              string    `json:"endTime,omitempty"`
	Planned              *bool     `json:"planned,omitempty"`
	Refreshed            string    `json:"refreshed,omitempty"`
	SleepInertiaDuration string    `json:"sleepInertiaDuration,omitempty"`
	EmotionTriggers      []string  `json:"emotionTriggers,omitempty"`
	ActivityContext      []string  `json:"activityContext,omitempty"`
}

type EventRequest struct {
	Type                 string   `json:"type"`
	LocalDate            string   `json:"localDate,omitempty"`
	LocalTime            string   `json:"localTime,omitempty"`
	SeverityTag          string   `json:"severityTag,omitempty"`
	ContextTags          []string `json:"contextTags,omitempty"`
	Note                 string   `json:"note,omitempty"`
	StartTime            string   `json:"startTime,omitempty"`
	EndTime              string   `json:"endTime,omitempty"`
	Planned              *bool    `json:"planned,omitempty"`
	Refreshed            string   `json:"refreshed,omitempty"`
	SleepInertiaDuration string   `json:"sleepInertiaDuration,omitempty"`
	EmotionTriggers      []string `json:"emotionTriggers,omitempty"`
	ActivityContext      []string `json:"activityContext,omitempty"`
}

type Settings struct {
	ShowContextByDefault bool   `json:"showContextByDefault"`
	Theme                string `json:"theme"`
}

type TimePeriod struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Duration int       `json:"duration_days"`
}

type ReportSection struct {
	Title string   `json:"title,omitempty"`
	Style string   `json:"style"`
	Lines []string `json:"lines"`
}

type Report struct {
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	Period      TimePeriod      `json:"period"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Header      []string        `json:"header"`
	Sections    []ReportSection `json:"sections"`
}

type TrendPoint struct {
	Date     string             `json:"date"`
	CheckIns int                `json:"checkIns"`
	Averages map[string]float64 `json:"averages"`
}

type ImportResult struct {
	CheckIns int `json:"checkIns"`
	Events   int `json:"events"`
}

type BackupRun struct {
	ID         string     `json:"id"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	Status     string     `json:"status"`
	ObjectKey  string     `json:"objectKey,omitempty"`
	Error      string     `json:"error,omitempty"`
}
