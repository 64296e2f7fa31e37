package conf

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store := New()
	store.Set("database.host", "localhost")
	store.Set("database.port", 5432)
	require.NoError(t, store.Save(path))

	loaded := New()
	require.NoError(t, loaded.Load(path))

	assert.Equal(t, "localhost", loaded.Get("database.host", nil))
	// JSON numbers come back as json.Number to preserve precision.
	assert.Equal(t, json.Number("5432"), loaded.Get("database.port", nil))
	assert.Equal(t, []string{"database"}, loaded.Sections())
}

func TestSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	store := New()
	store.Set("app.name", "démo-приложение")
	store.Set("app.motto", "a < b & c")
	require.NoError(t, store.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.Contains(t, content, "  \"app\"", "2-space indent")
	assert.Contains(t, content, "démo-приложение", "non-ASCII kept unescaped")
	assert.Contains(t, content, "a < b & c", "HTML escaping disabled")
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deeply", "nested", "dir", "config.json")

	store := New()
	store.Set("a", 1)
	require.NoError(t, store.Save(path))

	assert.FileExists(t, path)
}

func TestLoadErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		store := New()
		err := store.Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NoPath", func(t *testing.T) {
		store := New()
		assert.ErrorIs(t, store.Load(""), ErrNoPath)
		assert.ErrorIs(t, store.Save(""), ErrNoPath)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		store := New()
		assert.ErrorIs(t, store.Load(path), ErrParse)
	})

	t.Run("NonObjectDocument", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "array.json")
		require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0644))

		store := New()
		assert.ErrorIs(t, store.Load(path), ErrParse)
	})
}

func TestLoadReplacesTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fresh": true}`), 0644))

	store := New()
	store.Set("stale.key", 1)
	require.NoError(t, store.Load(path))

	assert.False(t, store.Has("stale.key"), "Load replaces the whole tree")
	assert.Equal(t, true, store.Get("fresh", nil))
	assert.Equal(t, []string{"fresh"}, store.Sections())
}

func TestLoadKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	doc := `{"zulu": {"a": 1}, "alpha": [1, {"x": 2}], "mike": "m"}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	store := New()
	require.NoError(t, store.Load(path))
	assert.Equal(t, []string{"zulu", "alpha", "mike"}, store.Sections(),
		"document order, not lexical order")
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	doc := "[server]\nhost = \"localhost\"\nport = 8080\n\n[logging]\nlevel = \"info\"\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	store := New()
	require.NoError(t, store.Load(path))

	assert.Equal(t, "localhost", store.Get("server.host", nil))
	assert.Equal(t, int64(8080), store.Get("server.port", nil))
	assert.Equal(t, []string{"server", "logging"}, store.Sections())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := "server:\n  host: localhost\n  port: 8080\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	store := New()
	require.NoError(t, store.Load(path))

	assert.Equal(t, "localhost", store.Get("server.host", nil))
	assert.Equal(t, 8080, store.Get("server.port", nil))
}

func TestLoadFormatSniffing(t *testing.T) {
	// No recognized extension: content detection picks JSON.
	path := filepath.Join(t.TempDir(), "settings.conf")
	require.NoError(t, os.WriteFile(path, []byte(`{"app": {"name": "demo"}}`), 0644))

	store := New()
	require.NoError(t, store.Load(path))
	assert.Equal(t, "demo", store.Get("app.name", nil))
}

func TestOpen(t *testing.T) {
	t.Run("ExistingFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"app": {"name": "demo"}}`), 0644))

		store, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, "demo", store.Get("app.name", nil))
		assert.Equal(t, path, store.Path())
	})

	t.Run("MissingFileStartsEmpty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")

		store, err := Open(path)
		require.NoError(t, err)
		assert.Empty(t, store.Sections())

		// The bound path serves later Save/Load calls.
		store.Set("a", 1)
		require.NoError(t, store.Save(""))
		assert.FileExists(t, path)
	})

	t.Run("MalformedFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))

		_, err := Open(path)
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestAtomicSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	store := New()
	store.Set("a", 1)
	require.NoError(t, store.Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"),
			"temp file left behind: %s", entry.Name())
	}
}
