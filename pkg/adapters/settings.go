package adapters

import (
	"github.com/de-tools/wakestate/pkg/models/domain"
	"github.com/de-tools/wakestate/pkg/models/store"
)

func MapStoreSettingsToDomain(s store.AppSettings) domain.AppSettings {
	theme := domain.Theme(s.Theme)
	if theme == "" {
		theme = domain.DefaultSettings().Theme
	}
	return domain.AppSettings{
		ShowContextByDefault: s.ShowContextByDefault,
		Theme:                theme,
	}
}

func MapDomainSettingsToStore(s domain.AppSettings) store.AppSettings {
	return store.AppSettings{
		ShowContextByDefault: s.ShowContextByDefault,
		Theme:                string(s.Theme),
	}
}
