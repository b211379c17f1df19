package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/recruitkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-d string   data directory for the local snapshot
//	-b string   snapshot backend: sqlite or file
//	-r string   Postgres DSN of the shared store
//	-i int      notification poll interval in seconds
//	-l string   log level
//
// Only these flags are looked at; everything else in args is ignored.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-b", "-r", "-i", "-l"})

	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.SnapshotBackend, "b", cfg.SnapshotBackend, "snapshot backend (sqlite or file)")
	fs.StringVar(&cfg.RemoteDSN, "r", cfg.RemoteDSN, "Postgres DSN of the shared store")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	interval := fs.Int("i", int(cfg.NotificationInterval.Seconds()), "notification poll interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.NotificationInterval = time.Duration(*interval) * time.Second
		}
	})
	return nil
}
