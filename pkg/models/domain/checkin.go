package domain

import "time"

// CheckIn is a timestamped snapshot of symptom domain scores.
type CheckIn struct {
	ID        string
	CreatedAt time.Time
	LocalDate string // yyyy-MM-dd
	LocalTime string // HH:mm
	Scores    map[Domain]int
	Tags      []string
	Note      string
}

// Score returns the score recorded for d, if any.
func (c CheckIn) Score(d Domain) (int, bool) {
	v, ok := c.Scores[d]
	return v, ok
}

// CheckInPatch carries the fields of an explicit check-in update. Nil fields
// are left untouched; Scores entries are merged key by key.
type CheckInPatch struct {
	LocalDate *string
	LocalTime *string
	Scores    map[Domain]int
	Tags      []string
	Note      *string
}

func (p CheckInPatch) Apply(c CheckIn) CheckIn {
	if p.LocalDate != nil {
		c.LocalDate = *p.LocalDate
	}
	if p.LocalTime != nil {
		c.LocalTime = *p.LocalTime
	}
	if len(p.Scores) > 0 {
		merged := make(map[Domain]int, len(c.Scores)+len(p.Scores))
		for k, v := range c.Scores {
			merged[k] = v
		}
		for k, v := range p.Scores {
			merged[k] = v
		}
		c.Scores = merged
	}
	if p.Tags != nil {
		c.Tags = append([]string(nil), p.Tags...)
	}
	if p.Note != nil {
		c.Note = *p.Note
	}
	return c
}

// Suggested check-in tags.
var CheckInTags = []string{
	"caffeine",
	"meds",
	"nap",
	"stress",
	"social exposure",
	"driving / work block",
	"meal",
}
