package kv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rapidloop/skv"
)

// File persists keys in a single bolt-backed file via skv, for
// deployments where even SQLite is more machinery than wanted.
type File struct {
	store *skv.KVStore
}

func NewFile(path string) (*File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create kv directory: %w", err)
	}

	store, err := skv.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open kv file: %w", err)
	}
	return &File{store: store}, nil
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := f.store.Get(key, &value)
	if errors.Is(err, skv.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	if err := f.store.Put(key, value); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (f *File) Close() error {
	return f.store.Close()
}
