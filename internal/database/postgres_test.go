package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dairycoop-data/internal/config"
)

func TestNewPostgresDB_UnreachableHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "127.0.0.1",
		Port:     1, // nothing listens here
		User:     "postgres",
		Password: "postgres",
		Database: "dairycoop",
		SSLMode:  "disable",
	}

	db, err := NewPostgresDB(cfg)

	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "failed to ping database")
}

func TestClose_NilHandle(t *testing.T) {
	assert.NoError(t, Close(nil))
}
