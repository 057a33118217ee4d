package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func TestNewStore_ErrorHandling(t *testing.T) {
	// Test with invalid path (should fail to create directory)
	_, err := NewStore("/invalid\x00path")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer store.Close()

	dbPath := filepath.Join(tempDir, "history.db")
	assert.Equal(t, dbPath, store.Path())
	assert.FileExists(t, dbPath)

	assert.NoError(t, store.db.Ping())
}

func TestNewStore_DefaultDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DRILLS_HOME", home)

	store, err := NewStore("")
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(home, "data", "history.db"), store.Path())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "path", "to", "db")

	store, err := NewStore(nestedDir)
	require.NoError(t, err)
	defer store.Close()

	assert.DirExists(t, nestedDir)
}

func TestNewStore_Migrations(t *testing.T) {
	store := setupTestStore(t)

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)

	var tableExists int
	err = store.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='evaluations'",
	).Scan(&tableExists)
	require.NoError(t, err)
	assert.Equal(t, 1, tableExists)
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	tempDir := t.TempDir()

	first, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(tempDir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	require.NoError(t, second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNewStore_WALMode(t *testing.T) {
	store := setupTestStore(t)

	var mode string
	require.NoError(t, store.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestStore_Close(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestStore_HistoryStoreGetter(t *testing.T) {
	store := setupTestStore(t)
	assert.NotNil(t, store.HistoryStore())
}
