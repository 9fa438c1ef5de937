package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointersRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narrow", "pointers.json")

	empty, err := LoadPointersFile(path)
	require.NoError(t, err)
	_, ok := empty.Get("home")
	assert.False(t, ok)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	empty.Set("home", 42, now)
	empty.Set("stream:dev", 7, now)
	require.NoError(t, SavePointersFile(path, empty))

	loaded, err := LoadPointersFile(path)
	require.NoError(t, err)
	id, ok := loaded.Get("home")
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.True(t, now.Equal(loaded["stream:dev"].Updated))
}

func TestLoadPointersCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pointers.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadPointersFile(path)
	assert.Error(t, err)
}

func TestSavePrunesOldest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pointers.json")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	p := Pointers{}
	for i := range maxPointers + 3 {
		p.Set(fmt.Sprintf("stream:s%d", i), int64(i+1), base.Add(time.Duration(i)*time.Minute))
	}
	require.NoError(t, SavePointersFile(path, p))

	loaded, err := LoadPointersFile(path)
	require.NoError(t, err)
	assert.Len(t, loaded, maxPointers)
	_, ok := loaded.Get("stream:s0")
	assert.False(t, ok)
	_, ok = loaded.Get(fmt.Sprintf("stream:s%d", maxPointers+2))
	assert.True(t, ok)
}

func TestDefaultLocation(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	p := Pointers{}
	p.Set("home", 3, time.Now())
	require.NoError(t, SavePointers(p))

	loaded, err := LoadPointers()
	require.NoError(t, err)
	id, ok := loaded.Get("home")
	require.True(t, ok)
	assert.Equal(t, int64(3), id)
	assert.FileExists(t, filepath.Join(xdg.CacheHome, "narrow", "pointers.json"))
}
