package cmd

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, 10*time.Second, cfg.TookanTimeout)
	assert.Equal(t, 3, cfg.TookanMaxRetries)
	assert.Equal(t, "*/30 * * * * *", cfg.ZoneSweepSchedule)
	assert.Equal(t, 256, cfg.AlertQueueSize)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("STORAGE_BACKEND", "postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("TOOKAN_TIMEOUT", "2s")
	t.Setenv("TOOKAN_MAX_RETRIES", "5")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, BackendPostgres, cfg.StorageBackend)
	assert.Equal(t, 2*time.Second, cfg.TookanTimeout)
	assert.Equal(t, 5, cfg.TookanMaxRetries)
	assert.Equal(t, "db", cfg.Connection().Host)
	assert.Equal(t, 5, cfg.Tookan().MaxAttempts)
}

func TestLoadConfig_ReadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TOOKAN_API_KEY=from-file\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("TOOKAN_API_KEY") })

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.TookanAPIKey)
}

func TestLoadConfig_MissingDotenvFileIsIgnored(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))

	require.NoError(t, err)
}

func TestLoadConfig_RejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")
	t.Setenv("ALERT_QUEUE_SIZE", "0")

	_, err := LoadConfig("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
	assert.Contains(t, err.Error(), "ALERT_QUEUE_SIZE")
}

func TestCompositionRoot_MemoryBackendBuildsServer(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	root, err := NewCompositionRoot(cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close(context.Background()) })

	assert.Nil(t, root.CreateTookanExporter())
	assert.NotNil(t, root.CreateEcho())
	assert.NotNil(t, root.CreateJobManager())
}

func TestCompositionRoot_MemoryBackendAcceptsAdminWrites(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	root, err := NewCompositionRoot(cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = root.Close(context.Background()) })
	e := root.CreateEcho()

	post := func(path, body string) int {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusCreated, post("/api/v1/stores",
		`{"id": "S001", "name": "Sandton", "hubId": "H1", "location": {"lat": -26.10, "lng": 28.05}}`))
	assert.Equal(t, http.StatusCreated, post("/api/v1/teams", `{"id": "T1", "name": "Riders", "hubId": "H1"}`))
	assert.Equal(t, http.StatusCreated, post("/api/v1/drivers", `{"id": "D001", "name": "Sipho", "teamId": "T1"}`))
	assert.Equal(t, http.StatusCreated, post("/api/v1/orders",
		`{"id": "ORD001", "title": "Groceries", "storeId": "S001",
		"origin": {"lat": -26.10, "lng": 28.05}, "destination": {"lat": -26.14, "lng": 28.04}}`))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
