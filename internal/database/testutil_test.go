package database

import (
	"database/sql"
	"testing"

	"github.com/diegoclair/duty-roster/internal/domain/entity"
	"github.com/diegoclair/duty-roster/migrator/sqlite"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	// Create in-memory SQLite database
	sqlDB, err := sql.Open("sqlite3", ":memory:?_foreign_keys=on")
	require.NoError(t, err, "Failed to create test database")

	// every new connection to :memory: is a fresh empty database
	sqlDB.SetMaxOpenConns(1)

	// Run migrations to create tables
	err = sqlite.Migrate(sqlDB)
	require.NoError(t, err, "Failed to run migrations on test database")

	return &DB{conn: sqlDB}
}

// CleanupTestDB closes the test database
func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	err := db.Close()
	require.NoError(t, err, "Failed to close test database")
}

func createTestPool(t *testing.T, db *DB, slackChannelID string) *entity.Pool {
	t.Helper()

	pool := &entity.Pool{
		Name:             "test-pool",
		SlackChannelID:   slackChannelID,
		SlackTeamID:      "T123456789",
		NotificationTime: "09:00",
		IsEnabled:        true,
	}
	err := newPoolRepo(db.conn).Create(pool)
	require.NoError(t, err, "Failed to create test pool")

	return pool
}
