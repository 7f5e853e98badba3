package store

type AppSettings struct {
	ShowContextByDefault bool   `json:"showContextByDefault"`
	Theme                string `json:"theme" validate:"required,oneof=midnight charcoal deep-ocean"`
}
