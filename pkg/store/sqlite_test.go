package store

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "kv.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&KVRecord{}))
	return db
}

func TestSQLiteReadWrite(t *testing.T) {
	s := NewSQLite(openTestDB(t))

	_, ok := s.Read("ns:missing")
	assert.False(t, ok)

	require.True(t, s.Write("ns:fields", `[{"id":"f1"}]`))
	v, ok := s.Read("ns:fields")
	require.True(t, ok)
	assert.Equal(t, `[{"id":"f1"}]`, v)

	// whole-value replace, not append
	require.True(t, s.Write("ns:fields", "[]"))
	v, _ = s.Read("ns:fields")
	assert.Equal(t, "[]", v)
}

func TestMemoryReadWrite(t *testing.T) {
	s := NewMemory()
	_, ok := s.Read("k")
	assert.False(t, ok)
	require.True(t, s.Write("k", "v"))
	v, ok := s.Read("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}
