package collections

import (
	"context"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/validation"
)

func (s *Store) GetSettings(ctx context.Context) domain.AppSettings {
	return adapters.MapStoreSettingsToDomain(s.rawSettings(ctx))
}

func (s *Store) rawSettings(ctx context.Context) store.AppSettings {
	settings := adapters.MapDomainSettingsToStore(domain.DefaultSettings())
	s.readOrDefault(ctx, KeySettings, &settings)
	// A stored document without a theme still exports a valid one.
	return adapters.MapDomainSettingsToStore(adapters.MapStoreSettingsToDomain(settings))
}

func (s *Store) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	item := adapters.MapDomainSettingsToStore(settings)
	if err := validation.Settings(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, KeySettings, item)
}
