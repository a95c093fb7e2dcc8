package sqlite_storage

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *SqliteStorage {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storage := NewSqliteStorage(db)
	require.NoError(t, storage.InitSchema())
	return storage
}

func TestLoadUnknownUserReturnsEmptyRecord(t *testing.T) {
	storage := newTestStorage(t)

	record, err := storage.Load(42)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Nil(t, record.Token)
	assert.Nil(t, record.StorageID)
}

func TestUpsertTokenThenLoad(t *testing.T) {
	storage := newTestStorage(t)

	require.NoError(t, storage.UpsertToken(1, "T1"))

	record, err := storage.Load(1)
	require.NoError(t, err)
	require.NotNil(t, record.Token)
	assert.Equal(t, "T1", *record.Token)
	assert.Nil(t, record.StorageID)

	// Повторный вход обновляет токен, не трогая хранилище.
	storageID := int64(2)
	require.NoError(t, storage.UpsertStorage(1, &storageID))
	require.NoError(t, storage.UpsertToken(1, "T2"))

	record, err = storage.Load(1)
	require.NoError(t, err)
	assert.Equal(t, "T2", *record.Token)
	require.NotNil(t, record.StorageID)
	assert.Equal(t, int64(2), *record.StorageID)
}

func TestUpsertStorageIdempotent(t *testing.T) {
	storage := newTestStorage(t)

	storageID := int64(3)
	require.NoError(t, storage.UpsertStorage(7, &storageID))
	first, err := storage.Load(7)
	require.NoError(t, err)

	require.NoError(t, storage.UpsertStorage(7, &storageID))
	second, err := storage.Load(7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.NotNil(t, second.StorageID)
	assert.Equal(t, int64(3), *second.StorageID)
}

func TestUpsertStorageNilClears(t *testing.T) {
	storage := newTestStorage(t)

	storageID := int64(5)
	require.NoError(t, storage.UpsertToken(9, "T1"))
	require.NoError(t, storage.UpsertStorage(9, &storageID))

	require.NoError(t, storage.UpsertStorage(9, nil))

	record, err := storage.Load(9)
	require.NoError(t, err)
	assert.Nil(t, record.StorageID)
	require.NotNil(t, record.Token)
	assert.Equal(t, "T1", *record.Token)
}

func TestClearSessionKeepsRow(t *testing.T) {
	storage := newTestStorage(t)

	storageID := int64(1)
	require.NoError(t, storage.UpsertToken(4, "T1"))
	require.NoError(t, storage.UpsertStorage(4, &storageID))

	require.NoError(t, storage.ClearSession(4))

	record, err := storage.Load(4)
	require.NoError(t, err)
	assert.Nil(t, record.Token)
	assert.Nil(t, record.StorageID)

	// Строка сохраняется: повторный вход работает как обновление.
	require.NoError(t, storage.UpsertToken(4, "T2"))
	record, err = storage.Load(4)
	require.NoError(t, err)
	require.NotNil(t, record.Token)
	assert.Equal(t, "T2", *record.Token)
}
