// Package legacy reads and writes the plain string-keyed file that predates
// the embedded database. It is the read fallback of the collection store.
package legacy

import (
	"context"
	"fmt"
	"sync"

	"github.com/de-tools/wakestate/pkg/store/kv"
	"gopkg.in/ini.v1"
)

const Section = "wakestate"

type Store struct {
	path string

	mu  sync.Mutex
	cfg *ini.File
}

// NewStore opens the file at path. A missing file is treated as empty.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("legacy store path is empty")
	}
	cfg, err := ini.LoadSources(ini.LoadOptions{
		Loose:               true,
		IgnoreInlineComment: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("load legacy store %s: %w", path, err)
	}
	return &Store{path: path, cfg: cfg}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.cfg.GetSection(Section)
	if err != nil {
		return nil, kv.ErrNotFound
	}
	if !section.HasKey(key) {
		return nil, kv.ErrNotFound
	}
	return []byte(section.Key(key).String()), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg.Section(Section).Key(key).SetValue(string(value))
	return s.save()
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	section, err := s.cfg.GetSection(Section)
	if err != nil || !section.HasKey(key) {
		return nil
	}
	section.DeleteKey(key)
	return s.save()
}

func (s *Store) save() error {
	if err := s.cfg.SaveTo(s.path); err != nil {
		return fmt.Errorf("save legacy store %s: %w", s.path, err)
	}
	return nil
}
