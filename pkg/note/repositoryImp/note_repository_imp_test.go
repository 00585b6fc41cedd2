package repositoryImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // every pooled conn gets its own :memory: db
	require.NoError(t, db.AutoMigrate(&entities.Note{}))
	return db
}

func TestUpsertIsIdempotentPerKey(t *testing.T) {
	repo := New(openTestDB(t))

	first, err := repo.Upsert(1, 4, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", first.Note)

	second, err := repo.Upsert(1, 4, "b")
	require.NoError(t, err)
	assert.Equal(t, "b", second.Note)
	assert.Equal(t, first.NoteID, second.NoteID)

	notes, err := repo.ListBySelection(1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "b", notes[0].Note)
}

func TestUpsertDistinctKeys(t *testing.T) {
	repo := New(openTestDB(t))

	_, err := repo.Upsert(1, 4, "week four")
	require.NoError(t, err)
	_, err = repo.Upsert(1, 5, "week five")
	require.NoError(t, err)
	_, err = repo.Upsert(2, 4, "other selection")
	require.NoError(t, err)

	notes, err := repo.ListBySelection(1)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, 4, notes[0].Week)
	assert.Equal(t, 5, notes[1].Week)
}
