package domain

// Domain is a named symptom axis scored 1-5.
type Domain string

const (
	DomainSleepPressure Domain = "sleepPressure"
	DomainMicrosleeps   Domain = "microsleeps"
	DomainSleepInertia  Domain = "sleepInertia"
	DomainCognitive     Domain = "cognitive"
	DomainEffort        Domain = "effort"

	DomainAnxiety   Domain = "anxiety"
	DomainMood      Domain = "mood"
	DomainDigestive Domain = "digestive"
	DomainThermo    Domain = "thermo"
	DomainMotor     Domain = "motor"
	DomainEmotional Domain = "emotional"
	DomainSensory   Domain = "sensory"

	// DomainCataplexy is the retired "subtle cataplexy" slider. Old records
	// still carry it, but it belongs to neither scoring group.
	DomainCataplexy Domain = "cataplexy"
)

const (
	MinScore = 1
	MaxScore = 5
)

// NarcolepsyDomains lists the narcolepsy-related domains in display order.
var NarcolepsyDomains = []Domain{
	DomainSleepPressure,
	DomainMicrosleeps,
	DomainSleepInertia,
	DomainCognitive,
	DomainEffort,
}

// OverlappingDomains lists the other / overlapping domains in display order.
// Sensory is always last.
var OverlappingDomains = []Domain{
	DomainAnxiety,
	DomainMood,
	DomainDigestive,
	DomainThermo,
	DomainMotor,
	DomainEmotional,
	DomainSensory,
}

type Anchors struct {
	Low  string
	Mid  string
	High string
}

type DomainConfig struct {
	Label       string
	Anchors     Anchors
	Description string
}

var domainConfigs = map[Domain]DomainConfig{
	DomainSleepPressure: {
		Label:       "Excessive Daytime Sleepiness",
		Anchors:     Anchors{Low: "Alert", Mid: "Heavy", High: "Crushing"},
		Description: "The overwhelming urge to sleep. May feel like a weight pressing down, making it hard to stay awake.",
	},
	DomainMicrosleeps: {
		Label:       "Microsleeps / Automatic Behavior",
		Anchors:     Anchors{Low: "Present", Mid: "Drifting", High: "Losing time"},
		Description: "Brief lapses into sleep lasting seconds. You may continue activities on autopilot with no memory of them.",
	},
	DomainSleepInertia: {
		Label:       "Sleep Inertia / Unrefreshing Naps",
		Anchors:     Anchors{Low: "Refreshed", Mid: "Groggy", High: "Worse after sleep"},
		Description: "Difficulty waking up or feeling worse after sleep. Naps may not feel restorative.",
	},
	DomainCognitive: {
		Label:       "Cognitive Fog",
		Anchors:     Anchors{Low: "Sharp", Mid: "Foggy", High: "Very clouded"},
		Description: "Difficulty with concentration, processing speed, and mental clarity.",
	},
	DomainEffort: {
		Label:       "Effort Aversion",
		Anchors:     Anchors{Low: "Motivated", Mid: "Reluctant", High: "Can't initiate"},
		Description: "Difficulty starting or sustaining tasks, even ones you want to do.",
	},
	DomainAnxiety: {
		Label:       "Anxiety / Nervous System Activation",
		Anchors:     Anchors{Low: "Calm", Mid: "Activated", High: "Highly anxious"},
		Description: "General nervous system arousal, worry, or anxiety unrelated to sleep symptoms.",
	},
	DomainMood: {
		Label:       "Mood Tone (Low / Flat / Heavy)",
		Anchors:     Anchors{Low: "Bright", Mid: "Flat", High: "Very low"},
		Description: "Overall mood state that may affect or be affected by sleep symptoms.",
	},
	DomainDigestive: {
		Label:       "Digestive Load",
		Anchors:     Anchors{Low: "Light", Mid: "Processing", High: "Heavy burden"},
		Description: "How much your digestive system is affecting your energy and alertness.",
	},
	DomainThermo: {
		Label:       "Thermoregulatory Instability",
		Anchors:     Anchors{Low: "Stable", Mid: "Fluctuating", High: "Extreme"},
		Description: "Difficulty regulating body temperature.",
	},
	DomainMotor: {
		Label:       "Motor Control Degradation",
		Anchors:     Anchors{Low: "Coordinated", Mid: "Clumsy", High: "Impaired"},
		Description: "Reduced coordination and fine motor control unrelated to emotional triggers.",
	},
	DomainEmotional: {
		Label:       "Emotional Reactivity / Freeze",
		Anchors:     Anchors{Low: "Balanced", Mid: "Reactive", High: "Volatile/frozen"},
		Description: "Heightened emotional responses or emotional numbness.",
	},
	DomainSensory: {
		Label:       "Sensory Overload",
		Anchors:     Anchors{Low: "Comfortable", Mid: "Sensitive", High: "Overwhelmed"},
		Description: "Heightened sensitivity to light, sound, touch, or other stimuli.",
	},
	DomainCataplexy: {
		Label:       "Cataplexy - Subtle",
		Anchors:     Anchors{Low: "None", Mid: "Slight weakness", High: "Noticeable"},
		Description: "Subtle muscle weakness triggered by emotions.",
	},
}

// Config returns the display configuration for d. Unknown domains get their
// key as label.
func (d Domain) Config() DomainConfig {
	if cfg, ok := domainConfigs[d]; ok {
		return cfg
	}
	return DomainConfig{Label: string(d)}
}

func (d Domain) Label() string {
	return d.Config().Label
}

func (d Domain) IsNarcolepsy() bool {
	return contains(NarcolepsyDomains, d)
}

func (d Domain) IsOverlapping() bool {
	return contains(OverlappingDomains, d)
}

// Known reports whether d is any domain a check-in may carry, including the
// legacy cataplexy slider.
func (d Domain) Known() bool {
	_, ok := domainConfigs[d]
	return ok
}

func contains(domains []Domain, d Domain) bool {
	for _, candidate := range domains {
		if candidate == d {
			return true
		}
	}
	return false
}
