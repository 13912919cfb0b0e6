package test

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/loan-tracker/backend/internal/models"
	"github.com/stretchr/testify/require"
)

// TmpFile returns the path to a unique SQLite file to be used in tests
func TmpFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), uuid.NewString()+".db")
}

// ConnectDB connects models.DB to a fresh record store for the test.
// The connection is closed when the test finishes.
func ConnectDB(t *testing.T) {
	err := models.ConnectSQLite(TmpFile(t))
	require.Nil(t, err, "Database initialization failed")

	db := models.DB
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func CloseDB(t *testing.T) {
	sqlDB, err := models.DB.DB()
	require.Nil(t, err, "Failed to get database resource")
	sqlDB.Close()
}
