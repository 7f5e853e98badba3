package domain

type Theme string

const (
	ThemeMidnight  Theme = "midnight"
	ThemeCharcoal  Theme = "charcoal"
	ThemeDeepOcean Theme = "deep-ocean"
)

type AppSettings struct {
	ShowContextByDefault bool
	Theme                Theme
}

func DefaultSettings() AppSettings {
	return AppSettings{
		ShowContextByDefault: false,
		Theme:                ThemeMidnight,
	}
}
