package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/util"
)

const defaultFocusDuration = 25 * time.Minute

var (
	focusCmd = &cobra.Command{
		Use:   "focus",
		Short: "Control focus mode",
		Long: `While a focus session is active, every domain not classified as
Productivity is blocked. Sessions expire on their own; stop ends one early.`,
	}

	focusStartCmd = &cobra.Command{
		Use:   "start [duration]",
		Short: "Start a focus session (default 25m)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runFocusStart,
	}

	focusStopCmd = &cobra.Command{
		Use:   "stop",
		Short: "End the current focus session",
		Args:  cobra.NoArgs,
		RunE:  runFocusStop,
	}

	focusStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show focus session state",
		Args:  cobra.NoArgs,
		RunE:  runFocusStatus,
	}
)

func init() {
	focusCmd.AddCommand(focusStartCmd, focusStopCmd, focusStatusCmd)
	rootCmd.AddCommand(focusCmd)
}

func runFocusStart(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	duration := defaultFocusDuration
	if len(args) == 1 {
		parsed, err := time.ParseDuration(args[0])
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", args[0], err)
		}
		if parsed < time.Minute {
			return fmt.Errorf("focus sessions must run at least a minute, got %s", parsed)
		}
		duration = parsed
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	end := util.GetTimeProvider().Now().Add(duration)
	session := model.FocusSession{Active: true, EndTime: end.UnixMilli()}
	if err := st.Set(store.KeyFocusMode, session); err != nil {
		return err
	}

	fmt.Printf("focus mode on until %s\n", end.Format("15:04"))
	return nil
}

func runFocusStop(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Set(store.KeyFocusMode, model.FocusSession{}); err != nil {
		return err
	}

	fmt.Println("focus mode off")
	return nil
}

func runFocusStatus(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	session := model.FocusSession{}
	if err := st.Get(store.KeyFocusMode, &session); err != nil {
		return err
	}

	now := util.GetTimeProvider().Now()
	if !session.ActiveAt(now) {
		fmt.Println("focus mode off")
		return nil
	}

	remaining := time.UnixMilli(session.EndTime).Sub(now)
	fmt.Printf("focus mode on, %s remaining\n", util.FormatDuration(remaining.Round(time.Minute)))
	return nil
}
