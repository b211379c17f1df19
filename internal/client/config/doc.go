// Package config loads runtime configuration for the tracker.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. An optional JSON or YAML file named with -c or -config.
//  3. TRACKER_* environment variables, with a .env file in the working
//     directory filling in whatever the process environment leaves unset.
//  4. Command-line flags -d, -b, -r, -i and -l.
//
// Intervals in files use timex.Duration, so both "30s" and integer
// nanoseconds are accepted:
//
//	data_dir: ~/.tracker
//	snapshot_backend: sqlite
//	remote_dsn: postgres://tracker@localhost/tracker
//	notification_interval: 30s
//	s3:
//	  bucket: tracker-resources
package config
