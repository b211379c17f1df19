package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func noEnv(string) (string, bool) { return "", false }

func envOf(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func withoutDotenv(t *testing.T) {
	t.Helper()
	prev := dotenvFile
	dotenvFile = filepath.Join(t.TempDir(), "missing.env")
	t.Cleanup(func() { dotenvFile = prev })
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ".tracker", c.DataDir)
	assert.Equal(t, BackendSQLite, c.SnapshotBackend)
	assert.Equal(t, 30*time.Second, c.NotificationInterval)
	assert.Empty(t, c.RemoteDSN)
	require.NoError(t, c.validate())
}

func TestParseFile_JSON(t *testing.T) {
	path := writeTemp(t, "cfg.json", `{
		"data_dir": "/var/tracker",
		"remote_dsn": "postgres://x",
		"notification_interval": "5s",
		"s3": {"bucket": "b", "endpoint": "http://minio:9000"}
	}`)

	c := defaults()
	require.NoError(t, parseFile(c, path))

	want := defaults()
	want.DataDir = "/var/tracker"
	want.RemoteDSN = "postgres://x"
	want.NotificationInterval = 5 * time.Second
	want.S3.Bucket = "b"
	want.S3.Endpoint = "http://minio:9000"
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTemp(t, "cfg.yml", "snapshot_backend: file\nnotification_interval: 2000000000\nadmin_email: boss@example.com\n")

	c := defaults()
	require.NoError(t, parseFile(c, path))

	assert.Equal(t, BackendFile, c.SnapshotBackend)
	assert.Equal(t, 2*time.Second, c.NotificationInterval)
	assert.Equal(t, "boss@example.com", c.AdminEmail)
	assert.Equal(t, ".tracker", c.DataDir)
}

func TestParseFile_Errors(t *testing.T) {
	c := defaults()
	require.Error(t, parseFile(c, filepath.Join(t.TempDir(), "nope.json")))

	bad := writeTemp(t, "bad.json", `{"notification_interval": "soon"}`)
	require.Error(t, parseFile(c, bad))
}

func TestParseEnv(t *testing.T) {
	withoutDotenv(t)

	c := defaults()
	err := parseEnv(c, envOf(map[string]string{
		"TRACKER_DATA_DIR":              "/data",
		"TRACKER_REMOTE_DSN":            "postgres://env",
		"TRACKER_NOTIFICATION_INTERVAL": "1m",
		"TRACKER_S3_BUCKET":             "env-bucket",
		"TRACKER_LOG_LEVEL":             "",
	}))
	require.NoError(t, err)

	assert.Equal(t, "/data", c.DataDir)
	assert.Equal(t, "postgres://env", c.RemoteDSN)
	assert.Equal(t, time.Minute, c.NotificationInterval)
	assert.Equal(t, "env-bucket", c.S3.Bucket)
	assert.Equal(t, "info", c.LogLevel)
}

func TestParseEnv_BadInterval(t *testing.T) {
	withoutDotenv(t)

	err := parseEnv(defaults(), envOf(map[string]string{"TRACKER_NOTIFICATION_INTERVAL": "often"}))
	require.Error(t, err)
}

func TestParseEnv_Dotenv(t *testing.T) {
	path := writeTemp(t, ".env", "TRACKER_UNIT_TEST_DOTENV=from-file\n")
	prev := dotenvFile
	dotenvFile = path
	t.Cleanup(func() {
		dotenvFile = prev
		os.Unsetenv("TRACKER_UNIT_TEST_DOTENV")
	})

	require.NoError(t, parseEnv(defaults(), noEnv))
	assert.Equal(t, "from-file", os.Getenv("TRACKER_UNIT_TEST_DOTENV"))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "all",
			args: []string{"-d", "/tmp/t", "-b", "file", "-r", "postgres://f", "-i", "10", "-l", "debug"},
			want: func(c *Config) {
				c.DataDir = "/tmp/t"
				c.SnapshotBackend = BackendFile
				c.RemoteDSN = "postgres://f"
				c.NotificationInterval = 10 * time.Second
				c.LogLevel = "debug"
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "-d=/x"},
			want: func(c *Config) { c.DataDir = "/x" },
		},
		{
			name:    "bad interval",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			err := parseFlags(c, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			want := defaults()
			tt.want(want)
			assert.Empty(t, cmp.Diff(want, c))
		})
	}
}

func TestParseFlags_KeepsSubSecondInterval(t *testing.T) {
	c := defaults()
	c.NotificationInterval = 500 * time.Millisecond

	require.NoError(t, parseFlags(c, nil))
	assert.Equal(t, 500*time.Millisecond, c.NotificationInterval)

	require.NoError(t, parseFlags(c, []string{"-i", "2"}))
	assert.Equal(t, 2*time.Second, c.NotificationInterval)
}

func TestValidate(t *testing.T) {
	c := defaults()
	c.SnapshotBackend = "redis"
	require.Error(t, c.validate())

	c = defaults()
	c.NotificationInterval = 0
	require.Error(t, c.validate())
}

func TestLoadConfig_Precedence(t *testing.T) {
	withoutDotenv(t)
	path := writeTemp(t, "cfg.json", `{"data_dir": "/from-file", "remote_dsn": "postgres://file"}`)

	prevArgs := os.Args
	os.Args = []string{"tracker", "-c", path, "-d", "/from-flag"}
	t.Cleanup(func() { os.Args = prevArgs })
	t.Setenv("TRACKER_REMOTE_DSN", "postgres://env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from-flag", cfg.DataDir)
	assert.Equal(t, "postgres://env", cfg.RemoteDSN)
}
