package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"employees/internal/app/server/api"
	"employees/internal/domain/employee"
	"employees/internal/infrastructure/storage/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newServer(t *testing.T) string {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := sqlite.New(filepath.Join(t.TempDir(), "cli.db"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	srv := httptest.NewServer(api.New(s, log, 5*time.Second))
	t.Cleanup(srv.Close)
	return srv.URL
}

func run(t *testing.T, server string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--server", server}, args...))

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_Lifecycle(t *testing.T) {
	server := newServer(t)

	out, err := run(t, server, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	out, err = run(t, server, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no employees")

	out, err = run(t, server, "create", "--fname", "Ada", "--lname", "Lovelace", "--age", "36", "--title", "Engineer")
	require.NoError(t, err)
	assert.Contains(t, out, "created employee 1")

	out, err = run(t, server, "update", "1", "--age", "37")
	require.NoError(t, err)
	assert.Contains(t, out, "updated employee 1")

	out, err = run(t, server, "get", "1", "--format", "json")
	require.NoError(t, err)
	var e employee.Employee
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, employee.Employee{ID: 1, FName: "Ada", LName: "Lovelace", Age: 37, Title: "Engineer"}, e)

	out, err = run(t, server, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lovelace")
	assert.Contains(t, out, "TITLE")

	out, err = run(t, server, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted employee 1")

	_, err = run(t, server, "get", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCLI_CreateMissingField(t *testing.T) {
	server := newServer(t)

	_, err := run(t, server, "create", "--fname", "Ada", "--lname", "Lovelace", "--age", "36")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestCLI_UpdateNeedsAField(t *testing.T) {
	server := newServer(t)

	_, err := run(t, server, "update", "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}

func TestCLI_InvalidID(t *testing.T) {
	server := newServer(t)

	_, err := run(t, server, "delete", "abc")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid employee id")
}

func TestPatchFromFlags_OnlyChanged(t *testing.T) {
	cmd := newUpdateCmd(&app{})
	require.NoError(t, cmd.ParseFlags([]string{"--title", "", "--age", "40"}))

	p, err := patchFromFlags(cmd)

	require.NoError(t, err)
	assert.Nil(t, p.FName)
	assert.Nil(t, p.LName)
	require.NotNil(t, p.Title)
	assert.Equal(t, "", *p.Title)
	require.NotNil(t, p.Age)
	assert.Equal(t, int32(40), *p.Age)
}
