package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/YairCer/iglesia-app/models"
)

func TestDialectorSelection(t *testing.T) {
	assert.Equal(t, "postgres", dialector("postgresql://u:p@h:5432/db").Name())
	assert.Equal(t, "sqlite", dialector("iglesia.db").Name())
	assert.Equal(t, "sqlite", dialector(":memory:").Name())
}

func TestMigrateCreatesSchema(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	for _, m := range []any{&models.User{}, &models.Event{}, &models.Member{}} {
		assert.True(t, db.Migrator().HasTable(m))
	}
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "Email"))
	assert.True(t, db.Migrator().HasIndex(&models.User{}, "Username"))
}
