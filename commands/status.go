package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/model"
)

var statusCmd = &cobra.Command{
	Use:   "status <url-or-domain>",
	Short: "Show the enforcement decision for a page right now",
	Long: `status evaluates a page exactly as the browser enforcement layer would:
focus mode first, then daily limits with aggregate subdomain usage. The
answer is recomputed from the durable store, so it matches what a running
daemon would return.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	eng := newEngine(st)

	rawURL := args[0]
	status, err := eng.Status(normalizeURLArg(rawURL))
	if err != nil {
		return err
	}

	siteTime, err := eng.SiteTime(normalizeURLArg(rawURL))
	if err != nil {
		return err
	}
	if siteTime == nil {
		return fmt.Errorf("cannot extract a domain from %q", rawURL)
	}

	switch {
	case status == nil:
		fmt.Printf("%s: allowed\n", siteTime.Domain)
	case status.Type == model.StatusBlocked:
		fmt.Printf("%s: blocked (daily limit reached)\n", siteTime.Domain)
	case status.Type == model.StatusFocusBlocked:
		fmt.Printf("%s: blocked (focus mode)\n", siteTime.Domain)
	case status.Type == model.StatusWarning:
		fmt.Printf("%s: warning, %d minute(s) left today\n", siteTime.Domain, status.TimeLeftMinutes)
	}
	fmt.Printf("time today (including related domains): %ds\n", siteTime.Seconds)
	return nil
}

// normalizeURLArg lets users pass either a full URL or a bare domain.
func normalizeURLArg(arg string) string {
	if len(arg) >= 4 && (arg[:4] == "http" || arg[:4] == "file") {
		return arg
	}
	return "https://" + arg
}
