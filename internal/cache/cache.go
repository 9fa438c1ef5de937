// Package cache remembers which message was selected in each narrow.
package cache

import (
	json "encoding/json/v2"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.withmatt.com/narrow/internal/config"
)

// maxPointers bounds the file; the least recently updated narrows go first.
const maxPointers = 256

// Pointer is the last selected message of one narrow.
type Pointer struct {
	MessageID int64     `json:"message_id"`
	Updated   time.Time `json:"updated"`
}

// PointerCache is the on-disk shape.
type PointerCache struct {
	Pointers  map[string]Pointer `json:"pointers"`
	Timestamp time.Time          `json:"timestamp"`
}

// Pointers maps narrow keys to their pointer.
type Pointers map[string]Pointer

func (p Pointers) Get(key string) (int64, bool) {
	ptr, ok := p[key]
	if !ok || ptr.MessageID <= 0 {
		return 0, false
	}
	return ptr.MessageID, true
}

func (p Pointers) Set(key string, id int64, now time.Time) {
	p[key] = Pointer{MessageID: id, Updated: now}
}

func (p Pointers) prune() {
	if len(p) <= maxPointers {
		return
	}
	keys := slices.SortedFunc(maps.Keys(p), func(a, b string) int {
		return p[a].Updated.Compare(p[b].Updated)
	})
	for _, key := range keys[:len(keys)-maxPointers] {
		delete(p, key)
	}
}

// LoadPointers loads the pointer cache from disk
func LoadPointers() (Pointers, error) {
	path, err := config.CachePath()
	if err != nil {
		return nil, err
	}
	return LoadPointersFile(path)
}

// LoadPointersFile reads pointers from path. A missing file is an empty cache.
func LoadPointersFile(path string) (Pointers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// No cache exists yet, that's fine
			return Pointers{}, nil
		}
		return nil, err
	}

	var cache PointerCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, err
	}
	if cache.Pointers == nil {
		return Pointers{}, nil
	}
	return Pointers(cache.Pointers), nil
}

// SavePointers saves the pointer cache to disk
func SavePointers(p Pointers) error {
	path, err := config.CachePath()
	if err != nil {
		return err
	}
	return SavePointersFile(path, p)
}

func SavePointersFile(path string, p Pointers) error {
	p.prune()
	cache := PointerCache{
		Pointers:  p,
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(cache)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
