package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("archive.root", "/srv/archive"))
	require.NoError(t, store.Set("matcher.workers", int64(3)))
	require.NoError(t, store.Set("matcher.fuzzy_threshold", 72.0))
	require.NoError(t, store.Set("history.enabled", true))
	require.NoError(t, store.Set("archive.extensions", []any{".pdf", 7, ".docx"}))

	assert.Equal(t, "/srv/archive", store.GetString("archive.root"))
	assert.Equal(t, 3, store.GetInt("matcher.workers"))
	assert.Equal(t, 72, store.GetInt("matcher.fuzzy_threshold"))
	assert.True(t, store.GetBool("history.enabled"))
	assert.Equal(t, []string{".pdf", ".docx"}, store.GetStringSlice("archive.extensions"))
}

func TestConfigStore_MissingAndWrongTypes(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{"matcher.workers": "two"})

	_, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("matcher.workers"))
	assert.False(t, store.GetBool("matcher.workers"))
	assert.Nil(t, store.GetStringSlice("matcher.workers"))
}

func TestNewConfigStoreWith_CopiesValues(t *testing.T) {
	seed := map[string]any{"archive.root": "/a"}
	store := NewConfigStoreWith(seed)

	seed["archive.root"] = "/b"

	assert.Equal(t, "/a", store.GetString("archive.root"))
}

func TestConfigStore_NoOps(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
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
