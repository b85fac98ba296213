package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2.0, cfg.ExportScale)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "invoices", cfg.Minio.Bucket)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.MinioEnabled())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9091")
	t.Setenv("EXPORT_SCALE", "3")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("SESSION_TTL", "90m")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)

	assert.Equal(t, 9091, cfg.HTTPPort)
	assert.Equal(t, 3.0, cfg.ExportScale)
	assert.True(t, cfg.MinioEnabled())
	assert.True(t, cfg.Minio.UseSSL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoicemaker.yaml")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL: debug\nDOWNLOADS_DIR: /tmp/exports\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/exports", cfg.DownloadsDir)

	t.Setenv("LOG_LEVEL", "warn")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("EXPORT_SCALE", "0")
	_, err = Load("")
	assert.Error(t, err)

	t.Setenv("EXPORT_SCALE", "2")
	t.Setenv("SESSION_TTL", "-1h")
	_, err = Load("")
	assert.Error(t, err)
}
