package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/engine"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/notify"
	"github.com/webtimed/webtimed/internal/util"
)

var (
	// Logging related
	debug bool

	// Data path
	dataDir string

	// Timezone for calendar-day bucketing
	timezone string

	rootCmd = &cobra.Command{
		Use:   "webtimed",
		Short: "Per-domain browsing time tracker and limiter",
		Long: `webtimed tracks how long you spend on each website domain per day,
classifies domains into Productivity/Entertainment/Neutral, enforces daily
time limits, rewards goals, and provides a focus mode that blocks
non-productive sites.

The track command runs the daemon that consumes browser tab events and
answers page-status queries; the other commands configure rules and inspect
collected data.

Examples:
  webtimed track                                  # Run the tracking daemon
  webtimed limit set youtube.com 1h               # Cap youtube.com (and subdomains) at 1h/day
  webtimed goal set github.com 30m                # Celebrate 30 minutes on github.com
  webtimed category set reddit.com Entertainment  # Override a classification
  webtimed focus start 25m                        # Block non-productive sites for 25 minutes
  webtimed status https://news.ycombinator.com    # What would happen on this page right now
  webtimed today                                  # Today's per-domain usage table
  webtimed export                                 # Dump the full duration store as JSON`,
	}
)

const (
	defaultDataDir = "~/.webtimed"

	storeSubdir    = "store"
	logSubpath     = "logs/webtimed.log"
	eventsFilename = "events.jsonl"
	socketFilename = "webtimed.sock"
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", defaultDataDir,
		"webtimed data directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone for daily bucketing (e.g., Asia/Shanghai, UTC)")
}

func Execute() error {
	return rootCmd.Execute()
}

// initRuntime sets up logging, the time provider, and the data directory.
// Every subcommand goes through here first.
func initRuntime() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}

	dataDir = expandPath(dataDir)
	logFile := filepath.Join(dataDir, logSubpath)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)

	return util.InitializeTimeProvider(timezone)
}

// openStore opens the durable store under the data directory.
func openStore() (*store.FileStore, error) {
	st, err := store.NewFileStore(filepath.Join(dataDir, storeSubdir))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

// newEngine builds an engine for one-shot CLI use over the given store.
func newEngine(st store.Store) *engine.Engine {
	return engine.New(st, notify.LogNotifier{}, engine.Config{})
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
