// Package config loads server settings from the environment and an
// optional config file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/mmynk/invoicemaker/internal/export"
)

const (
	defaultHTTPPort       = 8080
	defaultLogLevel       = "info"
	defaultExportScale    = export.CaptureScale
	defaultMaxUploadBytes = 2 << 20
	defaultMinioBucket    = "invoices"
	defaultSessionTTL     = 24 * time.Hour
)

type Config struct {
	HTTPPort       int
	LogLevel       string
	DownloadsDir   string
	ExportScale    float64
	MaxUploadBytes int64
	AddressBook    string
	// SessionTTL is how long an untouched session is kept. Zero keeps
	// sessions until they are ended.
	SessionTTL time.Duration
	Minio      export.MinioConfig
}

// MinioEnabled reports whether exports should be uploaded to object storage.
func (c Config) MinioEnabled() bool {
	return c.Minio.Endpoint != ""
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// Load reads settings from environment variables. When file is not empty it
// is read first; environment variables still take precedence.
func Load(file string) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", defaultHTTPPort)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("DOWNLOADS_DIR", "")
	v.SetDefault("EXPORT_SCALE", defaultExportScale)
	v.SetDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)
	v.SetDefault("ADDRESS_BOOK", "")
	v.SetDefault("SESSION_TTL", defaultSessionTTL)
	v.SetDefault("MINIO_ENDPOINT", "")
	v.SetDefault("MINIO_ACCESS_KEY", "")
	v.SetDefault("MINIO_SECRET_KEY", "")
	v.SetDefault("MINIO_BUCKET", defaultMinioBucket)
	v.SetDefault("MINIO_USE_SSL", false)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		HTTPPort:       v.GetInt("HTTP_PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		DownloadsDir:   v.GetString("DOWNLOADS_DIR"),
		ExportScale:    v.GetFloat64("EXPORT_SCALE"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
		AddressBook:    v.GetString("ADDRESS_BOOK"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		Minio: export.MinioConfig{
			Endpoint:  v.GetString("MINIO_ENDPOINT"),
			AccessKey: v.GetString("MINIO_ACCESS_KEY"),
			SecretKey: v.GetString("MINIO_SECRET_KEY"),
			Bucket:    v.GetString("MINIO_BUCKET"),
			UseSSL:    v.GetBool("MINIO_USE_SSL"),
		},
	}

	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return Config{}, fmt.Errorf("HTTP_PORT %d out of range", cfg.HTTPPort)
	}
	if cfg.ExportScale <= 0 {
		return Config{}, fmt.Errorf("EXPORT_SCALE must be positive, got %v", cfg.ExportScale)
	}
	if cfg.SessionTTL < 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must not be negative, got %v", cfg.SessionTTL)
	}
	return cfg, nil
}
