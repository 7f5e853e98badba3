package collections

import (
	"context"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/validation"
)

func (s *Store) GetEvents(ctx context.Context) []domain.TrackingEvent {
	return adapters.MapStoreEventsToDomain(s.rawEvents(ctx))
}

func (s *Store) rawEvents(ctx context.Context) []store.TrackingEvent {
	var items []store.TrackingEvent
	s.readOrDefault(ctx, KeyEvents, &items)
	if items == nil {
		items = []store.TrackingEvent{}
	}
	return items
}

func (s *Store) SaveEvent(ctx context.Context, e domain.TrackingEvent) error {
	item := adapters.MapDomainEventToStore(e)
	if err := validation.Event(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []store.TrackingEvent
	if _, err := s.read(ctx, KeyEvents, &items); err != nil {
		return err
	}
	return s.write(ctx, KeyEvents, append([]store.TrackingEvent{item}, items...))
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []store.TrackingEvent
	if _, err := s.read(ctx, KeyEvents, &items); err != nil {
		return err
	}
	return s.write(ctx, KeyEvents, filterByID(items, id, func(e store.TrackingEvent) string { return e.ID }))
}
