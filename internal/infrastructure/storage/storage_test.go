package storage

import (
	"context"
	"path/filepath"
	"testing"

	"employees/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = config.DriverSQLite
	cfg.DB.DatabaseURI = filepath.Join(t.TempDir(), "employees.db")

	s, err := Open(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	assert.NoError(t, s.Ping(context.Background()))
	list, err := s.Employees().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Driver = "oracle"

	_, err := Open(context.Background(), cfg, slog.Default())
	assert.ErrorContains(t, err, "unsupported database driver")
}
