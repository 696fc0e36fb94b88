package storage

import (
	"encoding/json"
)

// Get decodes the JSON value stored under key.
// Any failure (missing key, empty entry, corrupt JSON, read error) yields def.
func Get[T any](store IStore, key string, def T) T {
	raw, err := store.Read(key)
	if err != nil || len(raw) == 0 {
		return def
	}
	var value T
	if err = json.Unmarshal(raw, &value); err != nil {
		return def
	}
	return value
}

// Set stores value as JSON and reports whether the write went through.
func Set(store IStore, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	return store.Write(key, raw) == nil
}

func Remove(store IStore, key string) bool {
	return store.Delete(key) == nil
}

func Clear(store IStore) bool {
	return store.Clear() == nil
}
