package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()

	t.Setenv("POSTGRES_HOST", "localhost")
	t.Setenv("POSTGRES_PORT", "5432")
	t.Setenv("POSTGRES_DB", "crewbase")
	t.Setenv("POSTGRES_USER", "crewbase")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "token-secret")
	t.Setenv("JWT_ALGORITHM", "HS256")
}

func TestLoadReportsAllMissingVariables(t *testing.T) {
	setRequired(t)
	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load("8001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_HOST")
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")
	t.Setenv("TASK_SERVICE_URL", "")

	cfg, err := Load("8001")
	require.NoError(t, err)
	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, "http://localhost:8002", cfg.TaskServiceURL)
}

func TestDSN(t *testing.T) {
	setRequired(t)

	cfg, err := Load("8001")
	require.NoError(t, err)
	assert.Equal(t,
		"host=localhost port=5432 user=crewbase password=secret dbname=crewbase sslmode=disable",
		cfg.DSN(),
	)
}
