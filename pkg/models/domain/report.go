package domain

import "time"

type ReportKind string

const (
	ReportQuick    ReportKind = "quick"
	ReportDetailed ReportKind = "detailed"
	ReportPersonal ReportKind = "personal"
)

// Report represents a complete generated report before rendering
type Report struct {
	Kind        ReportKind
	Title       string
	Period      TimePeriod
	GeneratedAt time.Time
	Header      []string
	Sections    []ReportSection
}

// TimePeriod represents a time range for the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

type SectionStyle string

const (
	// SectionRule frames the title with thin rules.
	SectionRule SectionStyle = "rule"
	// SectionBanner frames the title with double rules.
	SectionBanner SectionStyle = "banner"
	// SectionHeading prints the title underlined, for narrative reports.
	SectionHeading SectionStyle = "heading"
)

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title string
	Style SectionStyle
	Lines []string
}
