package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/recruitkeeper/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of a config file. Zero values leave the
// corresponding Config field untouched.
type FileConfig struct {
	DataDir              string         `json:"data_dir" yaml:"data_dir"`
	SnapshotBackend      string         `json:"snapshot_backend" yaml:"snapshot_backend"`
	RemoteDSN            string         `json:"remote_dsn" yaml:"remote_dsn"`
	NotificationInterval timex.Duration `json:"notification_interval" yaml:"notification_interval"`
	LogLevel             string         `json:"log_level" yaml:"log_level"`
	AdminEmail           string         `json:"admin_email" yaml:"admin_email"`
	IdentitySecret       string         `json:"identity_secret" yaml:"identity_secret"`
	S3                   struct {
		Region        string `json:"region" yaml:"region"`
		Endpoint      string `json:"endpoint" yaml:"endpoint"`
		AccessKey     string `json:"access_key" yaml:"access_key"`
		SecretKey     string `json:"secret_key" yaml:"secret_key"`
		Bucket        string `json:"bucket" yaml:"bucket"`
		Prefix        string `json:"prefix" yaml:"prefix"`
		PublicBaseURL string `json:"public_base_url" yaml:"public_base_url"`
	} `json:"s3" yaml:"s3"`
}

// parseFile overlays cfg with the file at path. Files ending in .yaml or
// .yml are read as YAML, anything else as JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc FileConfig) apply(cfg *Config) {
	set(&cfg.DataDir, fc.DataDir)
	set(&cfg.SnapshotBackend, fc.SnapshotBackend)
	set(&cfg.RemoteDSN, fc.RemoteDSN)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.AdminEmail, fc.AdminEmail)
	set(&cfg.IdentitySecret, fc.IdentitySecret)
	if fc.NotificationInterval.Duration != 0 {
		cfg.NotificationInterval = fc.NotificationInterval.Duration
	}

	set(&cfg.S3.Region, fc.S3.Region)
	set(&cfg.S3.Endpoint, fc.S3.Endpoint)
	set(&cfg.S3.AccessKey, fc.S3.AccessKey)
	set(&cfg.S3.SecretKey, fc.S3.SecretKey)
	set(&cfg.S3.Bucket, fc.S3.Bucket)
	set(&cfg.S3.Prefix, fc.S3.Prefix)
	set(&cfg.S3.PublicBaseURL, fc.S3.PublicBaseURL)
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
