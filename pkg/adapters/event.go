package adapters

import (
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
)

func MapStoreEventToDomain(e store.TrackingEvent) domain.TrackingEvent {
	var planned *bool
	if e.Planned != nil {
		p := *e.Planned
		planned = &p
	}

	return domain.TrackingEvent{
		ID:                   e.ID,
		Type:                 domain.EventType(e.Type),
		CreatedAt:            ParseTimestamp(e.CreatedAt),
		LocalDate:            e.LocalDate,
		LocalTime:            e.LocalTime,
		SeverityTag:          domain.SeverityTag(e.SeverityTag),
		ContextTags:          cloneStrings(e.ContextTags),
		Note:                 e.Note,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		Planned:              planned,
		Refreshed:            domain.RefreshedLevel(e.Refreshed),
		SleepInertiaDuration: domain.SleepInertiaDuration(e.SleepInertiaDuration),
		EmotionTriggers:      cloneStrings(e.EmotionTriggers),
		ActivityContext:      cloneStrings(e.ActivityContext),
	}
}

func MapDomainEventToStore(e domain.TrackingEvent) store.TrackingEvent {
	var planned *bool
	if e.Planned != nil {
		p := *e.Planned
		planned = &p
	}

	contextTags := cloneStrings(e.ContextTags)
	if contextTags == nil {
		contextTags = []string{}
	}

	return store.TrackingEvent{
		ID:                   e.ID,
		Type:                 string(e.Type),
		CreatedAt:            FormatTimestamp(e.CreatedAt),
		LocalDate:            e.LocalDate,
		LocalTime:            e.LocalTime,
		SeverityTag:          string(e.SeverityTag),
		ContextTags:          contextTags,
		Note:                 e.Note,
		StartTime:            e.StartTime,
		EndTime:              e.EndTime,
		Planned:              planned,
		Refreshed:            string(e.Refreshed),
		SleepInertiaDuration: string(e.SleepInertiaDuration),
		EmotionTriggers:      cloneStrings(e.EmotionTriggers),
		ActivityContext:      cloneStrings(e.ActivityContext),
	}
}

func MapStoreEventsToDomain(items []store.TrackingEvent) []domain.TrackingEvent {
	out := make([]domain.TrackingEvent, 0, len(items))
	for _, item := range items {
		out = append(out, MapStoreEventToDomain(item))
	}
	return out
}

func MapDomainEventsToStore(items []domain.TrackingEvent) []store.TrackingEvent {
	out := make([]store.TrackingEvent, 0, len(items))
	for _, item := range items {
		out = append(out, MapDomainEventToStore(item))
	}
	return out
}
