package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/engine"
	"github.com/webtimed/webtimed/internal/data/events"
	"github.com/webtimed/webtimed/internal/notify"
	"github.com/webtimed/webtimed/internal/server"
	"github.com/webtimed/webtimed/internal/util"
)

var (
	retentionDays int
	chime         bool
	eventsPath    string
	socketPath    string

	trackCmd = &cobra.Command{
		Use:   "track",
		Short: "Run the time-tracking daemon",
		Long: `track runs the daemon: it tails the browser tab-event stream, accrues
per-domain daily durations, fires limit and goal notifications, sweeps
expired history, and answers page-status queries on a local socket.`,
		RunE: runTrack,
	}
)

func init() {
	trackCmd.Flags().IntVar(&retentionDays, "retention-days", engine.DefaultRetentionDays,
		"Days of daily stats to keep")
	trackCmd.Flags().BoolVar(&chime, "chime", false,
		"Enable hourly chime notifications")
	trackCmd.Flags().StringVar(&eventsPath, "events", "",
		"Tab event stream path (default <dir>/events.jsonl)")
	trackCmd.Flags().StringVar(&socketPath, "socket", "",
		"Query socket path (default <dir>/webtimed.sock)")

	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Seed(); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	eng := engine.New(st, notify.LogNotifier{}, engine.Config{RetentionDays: retentionDays})

	if eventsPath == "" {
		eventsPath = filepath.Join(dataDir, eventsFilename)
	}
	source, err := events.NewSource(eventsPath)
	if err != nil {
		return err
	}
	defer source.Close()

	if socketPath == "" {
		socketPath = filepath.Join(dataDir, socketFilename)
	}
	srv, err := server.New(socketPath, eng)
	if err != nil {
		return err
	}
	defer srv.Close()
	go srv.Serve()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	util.LogInfof("webtimed tracking; events=%s socket=%s retention=%dd", eventsPath, socketPath, retentionDays)
	fmt.Printf("webtimed tracking (events: %s, socket: %s)\n", eventsPath, socketPath)

	eng.Run(ctx, source.Events(), engine.RunOptions{Chime: chime})
	util.LogInfo("webtimed stopped")
	return nil
}
