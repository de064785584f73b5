// Package kv reads and writes JSON documents held in an IStorage substrate.
//
// Every helper works on a whole value: collections are loaded in full and
// rewritten in full, there is no partial update at the storage level.
package kv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"vitrine_industrial/internal/usecase/interfaces"
)

// Key builds the namespaced key "<ns>:<name>".
func Key(namespace, name string) string {
	return namespace + ":" + name
}

// LoadList returns the collection stored under key. A missing key, or a nil
// store, is an empty collection.
func LoadList[T any](ctx context.Context, store interfaces.IStorage, key string) ([]T, error) {
	if store == nil {
		return []T{}, nil
	}
	raw, found, err := store.GetItem(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("corrupted collection %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// SaveList serializes items and replaces the value under key.
func SaveList[T any](ctx context.Context, store interfaces.IStorage, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	return SaveValue(ctx, store, key, items)
}

// LoadValue decodes the single document under key into out. It reports
// whether the key existed.
func LoadValue(ctx context.Context, store interfaces.IStorage, key string, out any) (bool, error) {
	if store == nil {
		return false, nil
	}
	raw, found, err := store.GetItem(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("corrupted document %s: %w", key, err)
	}
	return true, nil
}

func SaveValue(ctx context.Context, store interfaces.IStorage, key string, v any) error {
	if store == nil {
		return interfaces.ErrStorageUnavailable
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	return store.SetItem(ctx, key, string(b))
}

// MatchesSearch reports whether term is a case-insensitive substring of any
// field. An empty term matches everything.
func MatchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the first item whose id matches, or -1.
func IndexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, it := range items {
		if idOf(it) == id {
			return i
		}
	}
	return -1
}

// IsNull reports whether raw is the JSON literal null. Imports treat a null
// member like an absent one.
func IsNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
