// Package collections persists the tracker's record collections on top of a
// kv.Backend, one versioned JSON document per collection.
package collections

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/store/kv"
	"github.com/rs/zerolog"
)

const (
	KeyCheckIns         = "wakestate_checkins"
	KeyEvents           = "wakestate_events"
	KeySettings         = "wakestate_settings"
	KeyMedications      = "wakestate_medications"
	KeyMedicationConfig = "wakestate_med_config"
	KeyAdministrations  = "wakestate_med_administrations"
)

var ErrImportFailed = errors.New("import failed")

type Store struct {
	primary kv.Backend
	legacy  kv.Backend

	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

// NewStore wraps primary. legacy may be nil when there is no older store to
// fall back to.
func NewStore(primary kv.Backend, legacy kv.Backend) (*Store, error) {
	if primary == nil {
		return nil, fmt.Errorf("primary backend is nil")
	}
	return &Store{
		primary: primary,
		legacy:  legacy,
	}, nil
}

// read loads key into out. It reports false when neither backend holds the
// key. A primary failure falls back to the legacy backend; the error is only
// returned when that fails too. out is left untouched unless a value decodes
// completely.
func (s *Store) read(ctx context.Context, key string, out any) (bool, error) {
	raw, err := s.primary.Get(ctx, key)
	if err == nil {
		if err = decodeInto(raw, out); err == nil {
			return true, nil
		}
	}
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("primary store read failed, trying legacy store")
	}
	primaryErr := err

	if s.legacy == nil {
		if errors.Is(primaryErr, kv.ErrNotFound) {
			return false, nil
		}
		return false, primaryErr
	}

	raw, err = s.legacy.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		if errors.Is(primaryErr, kv.ErrNotFound) {
			return false, nil
		}
		return false, primaryErr
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w (legacy: %v)", key, primaryErr, err)
	}
	if err := decodeInto(raw, out); err != nil {
		return false, fmt.Errorf("decode legacy %s: %w", key, err)
	}
	return true, nil
}

// readOrDefault is read for public getters: total failure leaves out at its
// default and is only logged.
func (s *Store) readOrDefault(ctx context.Context, key string, out any) {
	if _, err := s.read(ctx, key, out); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("falling back to empty collection")
	}
}

func (s *Store) write(ctx context.Context, key string, items any) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	raw, err := json.Marshal(store.Collection{
		Version: store.CollectionVersion,
		Items:   payload,
	})
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.primary.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// decodeInto decodes raw into a fresh value of out's element type and only
// then assigns it, so a document with mistyped fields never leaks a partial
// decode. An empty or null document leaves out as it was.
func decodeInto(raw []byte, out any) error {
	items, err := collectionItems(raw)
	if err != nil || items == nil {
		return err
	}
	target := reflect.ValueOf(out).Elem()
	fresh := reflect.New(target.Type())
	if err := json.Unmarshal(items, fresh.Interface()); err != nil {
		return err
	}
	target.Set(fresh.Elem())
	return nil
}

// collectionItems accepts both the versioned envelope and the bare values
// written before collections carried a version. It returns nil for an empty
// or null collection.
func collectionItems(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '{' {
		var envelope struct {
			Version *int            `json:"version"`
			Items   json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Version != nil && envelope.Items != nil {
			if *envelope.Version > store.CollectionVersion {
				return nil, fmt.Errorf("collection version %d is newer than supported %d", *envelope.Version, store.CollectionVersion)
			}
			items := bytes.TrimSpace(envelope.Items)
			if bytes.Equal(items, []byte("null")) {
				return nil, nil
			}
			return items, nil
		}
	}

	return raw, nil
}
