package collections

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/de-tools/wakestate/pkg/adapters"
	"github.com/de-tools/wakestate/pkg/models/store"
	"github.com/de-tools/wakestate/pkg/services/validation"
	"github.com/de-tools/wakestate/pkg/store/kv"
	"github.com/rs/zerolog"
)

type ImportResult struct {
	CheckIns int `json:"checkIns"`
	Events   int `json:"events"`
}

// ExportAllData serializes check-ins, events and settings into the
// versioned export envelope, indented by two spaces.
func (s *Store) ExportAllData(ctx context.Context, now time.Time) ([]byte, error) {
	s.mu.Lock()
	env := store.ExportEnvelope{
		Version:    store.ExportVersion,
		ExportedAt: adapters.FormatTimestamp(now),
		CheckIns:   s.rawCheckIns(ctx),
		Events:     s.rawEvents(ctx),
		Settings:   s.rawSettings(ctx),
	}
	s.mu.Unlock()

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return out, nil
}

// ImportData replaces every collection present in the envelope. Keys that
// are absent are left untouched. The whole envelope is validated before
// anything is written. Only malformed or invalid documents fail with
// ErrImportFailed; storage errors are not tagged with it.
func (s *Store) ImportData(ctx context.Context, data []byte) (ImportResult, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ImportResult{}, fmt.Errorf("%w: document is empty", ErrImportFailed)
	}

	var env store.ImportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}
	if err := validation.ImportEnvelope(env); err != nil {
		return ImportResult{}, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result ImportResult
	apply := func(ctx context.Context) error {
		if env.CheckIns != nil {
			if err := s.write(ctx, KeyCheckIns, nonNil(*env.CheckIns)); err != nil {
				return err
			}
			result.CheckIns = len(*env.CheckIns)
		}
		if env.Events != nil {
			if err := s.write(ctx, KeyEvents, nonNil(*env.Events)); err != nil {
				return err
			}
			result.Events = len(*env.Events)
		}
		if env.Settings != nil {
			if err := s.write(ctx, KeySettings, *env.Settings); err != nil {
				return err
			}
		}
		return nil
	}

	var err error
	if tx, ok := s.primary.(kv.Transactional); ok {
		err = tx.InTransaction(ctx, apply)
	} else {
		err = apply(ctx)
	}
	if err != nil {
		return ImportResult{}, fmt.Errorf("write import: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Int("check_ins", result.CheckIns).
		Int("events", result.Events).
		Bool("settings", env.Settings != nil).
		Msg("data imported")
	return result, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// ExportFilename is the suggested name of a JSON export taken at now.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("wakestate-export-%s.json", now.Format(time.DateOnly))
}

// CSVFilename is the suggested name of a check-in CSV export taken at now.
func CSVFilename(now time.Time) string {
	return fmt.Sprintf("wakestate-checkins-%s.csv", now.Format(time.DateOnly))
}
