package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

// envPrefix namespaces every variable the tracker reads.
const envPrefix = "TRACKER_"

// dotenvFile is loaded from the working directory when present. Variables
// already set in the process environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays cfg with TRACKER_* variables. lookup is os.LookupEnv in
// production.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	str := func(name string, dst *string) {
		if v, ok := lookup(envPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	str("DATA_DIR", &cfg.DataDir)
	str("SNAPSHOT_BACKEND", &cfg.SnapshotBackend)
	str("REMOTE_DSN", &cfg.RemoteDSN)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("ADMIN_EMAIL", &cfg.AdminEmail)
	str("IDENTITY_SECRET", &cfg.IdentitySecret)
	str("S3_REGION", &cfg.S3.Region)
	str("S3_ENDPOINT", &cfg.S3.Endpoint)
	str("S3_ACCESS_KEY", &cfg.S3.AccessKey)
	str("S3_SECRET_KEY", &cfg.S3.SecretKey)
	str("S3_BUCKET", &cfg.S3.Bucket)
	str("S3_PREFIX", &cfg.S3.Prefix)
	str("S3_PUBLIC_BASE_URL", &cfg.S3.PublicBaseURL)

	if v, ok := lookup(envPrefix + "NOTIFICATION_INTERVAL"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sNOTIFICATION_INTERVAL: %w", envPrefix, err)
		}
		cfg.NotificationInterval = d
	}
	return nil
}
