package adapters

import (
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
)

// MapStoreCheckInToDomain normalizes either persisted shape into the single
// domain shape. Current groups win; legacy groups only fill gaps.
func MapStoreCheckInToDomain(c store.CheckIn) domain.CheckIn {
	scores := make(map[domain.Domain]int)

	if n := c.NarcolepsyDomains; n != nil {
		putScore(scores, domain.DomainSleepPressure, n.SleepPressure)
		putScore(scores, domain.DomainMicrosleeps, n.Microsleeps)
		putScore(scores, domain.DomainSleepInertia, n.SleepInertia)
		putScore(scores, domain.DomainCognitive, n.Cognitive)
		putScore(scores, domain.DomainEffort, n.Effort)
	}
	if o := c.OverlappingDomains; o != nil {
		putScore(scores, domain.DomainAnxiety, o.Anxiety)
		putScore(scores, domain.DomainMood, o.Mood)
		putScore(scores, domain.DomainDigestive, o.Digestive)
		putScore(scores, domain.DomainThermo, o.Thermo)
		putScore(scores, domain.DomainMotor, o.Motor)
		putScore(scores, domain.DomainEmotional, o.Emotional)
		putScore(scores, domain.DomainSensory, o.Sensory)
	}
	if w := c.WakeDomains; w != nil {
		fillScore(scores, domain.DomainCataplexy, w.Cataplexy)
		fillScore(scores, domain.DomainMicrosleeps, w.Microsleeps)
		fillScore(scores, domain.DomainCognitive, w.Cognitive)
		fillScore(scores, domain.DomainEffort, w.Effort)
		fillScore(scores, domain.DomainSleepPressure, w.SleepPressure)
		fillScore(scores, domain.DomainMotor, w.Motor)
		fillScore(scores, domain.DomainSensory, w.Sensory)
		fillScore(scores, domain.DomainThermo, w.Thermo)
		fillScore(scores, domain.DomainEmotional, w.Emotional)
	}
	if cd := c.ContextDomains; cd != nil {
		fillScore(scores, domain.DomainAnxiety, cd.Anxiety)
		fillScore(scores, domain.DomainMood, cd.Mood)
		fillScore(scores, domain.DomainDigestive, cd.Digestive)
	}

	return domain.CheckIn{
		ID:        c.ID,
		CreatedAt: ParseTimestamp(c.CreatedAt),
		LocalDate: c.LocalDate,
		LocalTime: c.LocalTime,
		Scores:    scores,
		Tags:      cloneStrings(c.Tags),
		Note:      c.Note,
	}
}

// MapDomainCheckInToStore writes the current shape. The retired cataplexy
// slider has no place there and is kept under wakeDomains.
func MapDomainCheckInToStore(c domain.CheckIn) store.CheckIn {
	out := store.CheckIn{
		ID:        c.ID,
		CreatedAt: FormatTimestamp(c.CreatedAt),
		LocalDate: c.LocalDate,
		LocalTime: c.LocalTime,
		Tags:      cloneStrings(c.Tags),
		Note:      c.Note,
	}
	if out.Tags == nil {
		out.Tags = []string{}
	}

	n := store.NarcolepsyDomains{
		SleepPressure: getScore(c.Scores, domain.DomainSleepPressure),
		Microsleeps:   getScore(c.Scores, domain.DomainMicrosleeps),
		SleepInertia:  getScore(c.Scores, domain.DomainSleepInertia),
		Cognitive:     getScore(c.Scores, domain.DomainCognitive),
		Effort:        getScore(c.Scores, domain.DomainEffort),
	}
	if n != (store.NarcolepsyDomains{}) {
		out.NarcolepsyDomains = &n
	}

	o := store.OverlappingDomains{
		Anxiety:   getScore(c.Scores, domain.DomainAnxiety),
		Mood:      getScore(c.Scores, domain.DomainMood),
		Digestive: getScore(c.Scores, domain.DomainDigestive),
		Thermo:    getScore(c.Scores, domain.DomainThermo),
		Motor:     getScore(c.Scores, domain.DomainMotor),
		Emotional: getScore(c.Scores, domain.DomainEmotional),
		Sensory:   getScore(c.Scores, domain.DomainSensory),
	}
	if o != (store.OverlappingDomains{}) {
		out.OverlappingDomains = &o
	}

	if v := getScore(c.Scores, domain.DomainCataplexy); v != nil {
		out.WakeDomains = &store.WakeDomains{Cataplexy: v}
	}

	return out
}

func MapStoreCheckInsToDomain(items []store.CheckIn) []domain.CheckIn {
	out := make([]domain.CheckIn, 0, len(items))
	for _, item := range items {
		out = append(out, MapStoreCheckInToDomain(item))
	}
	return out
}

func MapDomainCheckInsToStore(items []domain.CheckIn) []store.CheckIn {
	out := make([]store.CheckIn, 0, len(items))
	for _, item := range items {
		out = append(out, MapDomainCheckInToStore(item))
	}
	return out
}

func putScore(scores map[domain.Domain]int, d domain.Domain, v *int) {
	if v != nil {
		scores[d] = *v
	}
}

func fillScore(scores map[domain.Domain]int, d domain.Domain, v *int) {
	if v == nil {
		return
	}
	if _, ok := scores[d]; !ok {
		scores[d] = *v
	}
}

func getScore(scores map[domain.Domain]int, d domain.Domain) *int {
	v, ok := scores[d]
	if !ok {
		return nil
	}
	return &v
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string{}, in...)
}
