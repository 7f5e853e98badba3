package store

// CheckIn is the persisted and exported shape of a check-in. Both the current
// domain groups and the legacy flat groups may be present.
type CheckIn struct {
	ID                 string              `json:"id" validate:"required,max=100"`
	CreatedAt          string              `json:"createdAt" validate:"required,max=50"`
	LocalDate          string              `json:"localDate" validate:"localdate"`
	LocalTime          string              `json:"localTime" validate:"required,max=20"`
	NarcolepsyDomains  *NarcolepsyDomains  `json:"narcolepsyDomains,omitempty" validate:"omitempty"`
	OverlappingDomains *OverlappingDomains `json:"overlappingDomains,omitempty" validate:"omitempty"`
	WakeDomains        *WakeDomains        `json:"wakeDomains,omitempty" validate:"omitempty"`
	ContextDomains     *ContextDomains     `json:"contextDomains,omitempty" validate:"omitempty"`
	Tags               []string            `json:"tags" validate:"max=50,dive,max=100"`
	Note               string              `json:"note,omitempty" validate:"max=5000"`
}

type NarcolepsyDomains struct {
	SleepPressure *int `json:"sleepPressure,omitempty" validate:"omitempty,min=1,max=5"`
	Microsleeps   *int `json:"microsleeps,omitempty" validate:"omitempty,min=1,max=5"`
	SleepInertia  *int `json:"sleepInertia,omitempty" validate:"omitempty,min=1,max=5"`
	Cognitive     *int `json:"cognitive,omitempty" validate:"omitempty,min=1,max=5"`
	Effort        *int `json:"effort,omitempty" validate:"omitempty,min=1,max=5"`
}

type OverlappingDomains struct {
	Anxiety   *int `json:"anxiety,omitempty" validate:"omitempty,min=1,max=5"`
	Mood      *int `json:"mood,omitempty" validate:"omitempty,min=1,max=5"`
	Digestive *int `json:"digestive,omitempty" validate:"omitempty,min=1,max=5"`
	Thermo    *int `json:"thermo,omitempty" validate:"omitempty,min=1,max=5"`
	Motor     *int `json:"motor,omitempty" validate:"omitempty,min=1,max=5"`
	Emotional *int `json:"emotional,omitempty" validate:"omitempty,min=1,max=5"`
	Sensory   *int `json:"sensory,omitempty" validate:"omitempty,min=1,max=5"`
}

// WakeDomains is the original flat domain group written by early versions.
type WakeDomains struct {
	Cataplexy     *int `json:"cataplexy,omitempty" validate:"omitempty,min=1,max=5"`
	Microsleeps   *int `json:"microsleeps,omitempty" validate:"omitempty,min=1,max=5"`
	Cognitive     *int `json:"cognitive,omitempty" validate:"omitempty,min=1,max=5"`
	Effort        *int `json:"effort,omitempty" validate:"omitempty,min=1,max=5"`
	SleepPressure *int `json:"sleepPressure,omitempty" validate:"omitempty,min=1,max=5"`
	Motor         *int `json:"motor,omitempty" validate:"omitempty,min=1,max=5"`
	Sensory       *int `json:"sensory,omitempty" validate:"omitempty,min=1,max=5"`
	Thermo        *int `json:"thermo,omitempty" validate:"omitempty,min=1,max=5"`
	Emotional     *int `json:"emotional,omitempty" validate:"omitempty,min=1,max=5"`
}

// ContextDomains is the legacy companion of WakeDomains.
type ContextDomains struct {
	Anxiety   *int `json:"anxiety,omitempty" validate:"omitempty,min=1,max=5"`
	Mood      *int `json:"mood,omitempty" validate:"omitempty,min=1,max=5"`
	Digestive *int `json:"digestive,omitempty" validate:"omitempty,min=1,max=5"`
}
