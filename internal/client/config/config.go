package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/flagx"
)

// Snapshot backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// S3 locates the bucket that holds uploaded resource attachments. An empty
// Bucket disables uploads.
type S3 struct {
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	Prefix        string
	PublicBaseURL string
}

// Config holds runtime settings for the tracker.
//
// DataDir is where the local snapshot lives. RemoteDSN is the Postgres
// connection string for the shared collections; when empty the tracker runs
// local-only. NotificationInterval is how often the notification feed is
// polled.
type Config struct {
	DataDir              string
	SnapshotBackend      string
	RemoteDSN            string
	NotificationInterval time.Duration
	LogLevel             string
	AdminEmail           string
	IdentitySecret       string
	S3                   S3
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = ".tracker"
	c.SnapshotBackend = BackendSQLite
	c.NotificationInterval = 30 * time.Second
	c.LogLevel = "info"
	c.S3.Region = "us-east-1"
}

func (c *Config) validate() error {
	switch c.SnapshotBackend {
	case BackendSQLite, BackendFile:
	default:
		return fmt.Errorf("unknown snapshot backend %q", c.SnapshotBackend)
	}
	if c.NotificationInterval <= 0 {
		return fmt.Errorf("notification interval must be positive, got %s", c.NotificationInterval)
	}
	return nil
}

// LoadConfig applies defaults, then overlays the config file (if -c/-config
// names one), the environment (including a .env file in the working
// directory) and command-line flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(); path != "" {
		if err := parseFile(cfg, path); err != nil {
			return nil, err
		}
	}
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
