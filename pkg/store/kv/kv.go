package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// Backend is a byte-valued key-value store. Get returns ErrNotFound for a
// missing key.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Transactional is implemented by backends that can run several writes
// atomically. The context passed to fn carries the transaction.
type Transactional interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Memory is a map-backed Backend for tests and dry runs.
type Memory struct {
	entries map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte{}, v...), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.entries[key] = append([]byte{}, value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}
