package repository

import (
	"testing"

	"inkwell/internal/config"
	"inkwell/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema and
// foreign keys enabled. Each call returns an isolated database, so tests can
// run in parallel.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(&config.Config{
		DBDriver: "sqlite",
		DBDSN:    "file::memory:",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
