package repository

import (
	"path/filepath"
	"testing"

	authdomain "chores-backend/internal/auth/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authdomain.User{}))
	return db
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	first, err := repo.GetOrCreate("ext-123", "pat@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	second, err := repo.GetOrCreate("ext-123", "pat@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestGetOrCreateDistinctIdentities(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	a, err := repo.GetOrCreate("ext-1", "a@example.com")
	require.NoError(t, err)
	b, err := repo.GetOrCreate("ext-2", "b@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestFindByID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	created, err := repo.GetOrCreate("ext-123", "pat@example.com")
	require.NoError(t, err)

	found, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "pat@example.com", found.Email)
	assert.Equal(t, "ext-123", found.ExternalID)

	missing, err := repo.FindByID("no-such-user")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
