package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	// Nothing is written until the first Set.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewConfigStore_DefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	if runtime.GOOS == "windows" {
		t.Setenv("USERPROFILE", home)
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".closeout", "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set("archive.root", "/srv/archive"))
	require.NoError(t, store.Set("matcher.workers", 4))
	require.NoError(t, store.Set("history.enabled", true))
	require.NoError(t, store.Set("archive.extensions", []string{".pdf", ".docx"}))

	assert.Equal(t, "/srv/archive", store.GetString("archive.root"))
	assert.Equal(t, 4, store.GetInt("matcher.workers"))
	assert.True(t, store.GetBool("history.enabled"))
	assert.Equal(t, []string{".pdf", ".docx"}, store.GetStringSlice("archive.extensions"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("matcher.workers", "four"))

	assert.Equal(t, 0, store.GetInt("matcher.workers"))
	assert.False(t, store.GetBool("matcher.workers"))
	assert.Nil(t, store.GetStringSlice("matcher.workers"))
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("archive.root", "/srv/archive"))
	require.NoError(t, store.Set("matcher.fuzzy_threshold", 75))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "[archive]")
	assert.Contains(t, content, "[matcher]")
	assert.Contains(t, content, "fuzzy_threshold = 75")
	assert.NotContains(t, content, "archive.root")
}

func TestConfigStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	store, err := NewConfigStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("matcher.workers", 8))
	require.NoError(t, store.Set("archive.extensions", []string{".pdf"}))

	reopened, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, 8, reopened.GetInt("matcher.workers"))
	assert.Equal(t, []string{".pdf"}, reopened.GetStringSlice("archive.extensions"))
}

func TestConfigStore_LoadHandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[archive]
root = "~/closeout/appendices"
extensions = [".pdf", ".PDF"]

[matcher]
fuzzy_threshold = 80

[history]
enabled = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, "~/closeout/appendices", store.GetString("archive.root"))
	assert.Equal(t, []string{".pdf", ".PDF"}, store.GetStringSlice("archive.extensions"))
	assert.Equal(t, 80, store.GetInt("matcher.fuzzy_threshold"))
	v, ok := store.Get("history.enabled")
	assert.True(t, ok)
	assert.Equal(t, false, v)
}

func TestConfigStore_EnvOverride(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set("archive.root", "/from/file"))

	t.Setenv("CLOSEOUT_ARCHIVE_ROOT", "/from/env")
	assert.Equal(t, "/from/env", store.GetString("archive.root"))

	// Empty overrides are ignored.
	t.Setenv("CLOSEOUT_ARCHIVE_ROOT", "")
	assert.Equal(t, "/from/file", store.GetString("archive.root"))

	t.Setenv("CLOSEOUT_REFERENCE", "/tables/ref.yaml")
	assert.Equal(t, "/tables/ref.yaml", store.GetString("reference.path"))
}

func TestConfigStore_EnvOverrideNotPersisted(t *testing.T) {
	store := newTestStore(t)
	t.Setenv("CLOSEOUT_ARCHIVE_ROOT", "/from/env")
	require.NoError(t, store.Set("matcher.workers", 2))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "/from/env")
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is [not valid"), 0o600))

	_, err := NewConfigStore(path)

	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	store := newTestStore(t)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())

	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("matcher.workers", n)
			_ = store.GetInt("matcher.workers")
		}(i)
	}
	wg.Wait()

	_, ok := store.Get("matcher.workers")
	assert.True(t, ok)
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"a":     1,
		"a.b":   2,
		"c.d.e": "x",
		"top":   true,
	})

	assert.Equal(t, map[string]any{
		"a":   map[string]any{"b": 2},
		"c":   map[string]any{"d": map[string]any{"e": "x"}},
		"top": true,
	}, nested)
}

func TestFlattenMap(t *testing.T) {
	flat := flattenMap(map[string]any{
		"archive": map[string]any{"root": "/r"},
		"top":     1,
	}, "")

	assert.Equal(t, map[string]any{"archive.root": "/r", "top": 1}, flat)
}
