package collections

import (
	"context"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/validation"
)

func (s *Store) GetCheckIns(ctx context.Context) []domain.CheckIn {
	return adapters.MapStoreCheckInsToDomain(s.rawCheckIns(ctx))
}

func (s *Store) rawCheckIns(ctx context.Context) []store.CheckIn {
	var items []store.CheckIn
	s.readOrDefault(ctx, KeyCheckIns, &items)
	if items == nil {
		items = []store.CheckIn{}
	}
	return items
}

// SaveCheckIn validates c and puts it first in the collection.
func (s *Store) SaveCheckIn(ctx context.Context, c domain.CheckIn) error {
	item := adapters.MapDomainCheckInToStore(c)
	if err := validation.CheckIn(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []store.CheckIn
	if _, err := s.read(ctx, KeyCheckIns, &items); err != nil {
		return err
	}
	return s.write(ctx, KeyCheckIns, append([]store.CheckIn{item}, items...))
}

// UpdateCheckIn applies patch to the check-in with id. The second result is
// false, and nothing is written, when no such check-in exists.
func (s *Store) UpdateCheckIn(ctx context.Context, id string, patch domain.CheckInPatch) (domain.CheckIn, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []store.CheckIn
	if _, err := s.read(ctx, KeyCheckIns, &items); err != nil {
		return domain.CheckIn{}, false, err
	}

	for i, item := range items {
		if item.ID != id {
			continue
		}
		updated := patch.Apply(adapters.MapStoreCheckInToDomain(item))
		next := adapters.MapDomainCheckInToStore(updated)
		next.CreatedAt = item.CreatedAt
		if err := validation.CheckIn(next); err != nil {
			return domain.CheckIn{}, true, err
		}
		items[i] = next
		if err := s.write(ctx, KeyCheckIns, items); err != nil {
			return domain.CheckIn{}, true, err
		}
		return updated, true, nil
	}
	return domain.CheckIn{}, false, nil
}

func (s *Store) DeleteCheckIn(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []store.CheckIn
	if _, err := s.read(ctx, KeyCheckIns, &items); err != nil {
		return err
	}
	return s.write(ctx, KeyCheckIns, filterByID(items, id, func(c store.CheckIn) string { return c.ID }))
}

func filterByID[T any](items []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
