package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	c, err := LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, StoreMemory, c.Store)
	assert.Equal(t, "aac", c.DatabaseName)
	assert.Equal(t, "outcomes", c.CollectionName)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, 3*time.Second, c.ConnectTimeout)
}

func TestLoadFrom_PostgresRequiresDSN(t *testing.T) {
	_, err := LoadFrom(map[string]string{"STORE": "postgres"})
	require.Error(t, err)

	c, err := LoadFrom(map[string]string{"STORE": "postgres", "DB_DSN": "postgres://localhost/aac"})
	require.NoError(t, err)
	assert.Equal(t, StorePostgres, c.Store)
}

func TestLoadFrom_UnknownStore(t *testing.T) {
	_, err := LoadFrom(map[string]string{"STORE": "redis"})
	require.Error(t, err)
}

func TestLoadFrom_Port(t *testing.T) {
	c, err := LoadFrom(map[string]string{"PORT": "9090"})
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Addr())
}

func TestLoadFrom_SessionLimits(t *testing.T) {
	c, err := LoadFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, c.SessionTTL)
	assert.Equal(t, 1000, c.MaxSessions)

	c, err = LoadFrom(map[string]string{"SESSION_TTL": "5m", "MAX_SESSIONS": "10"})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, c.SessionTTL)
	assert.Equal(t, 10, c.MaxSessions)

	_, err = LoadFrom(map[string]string{"MAX_SESSIONS": "0"})
	require.Error(t, err)
}
