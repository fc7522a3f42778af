package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/presentation/formatter"
	"github.com/webtimed/webtimed/internal/util"
)

var (
	summaryDate   string
	summaryOutput string

	summaryCmd = &cobra.Command{
		Use:   "summary",
		Short: "Show the daily summary (totals, score, top sites, achievements)",
		RunE:  runSummary,
	}
)

func init() {
	summaryCmd.Flags().StringVar(&summaryDate, "date", "",
		"Date to summarize (YYYY-MM-DD, default today)")
	summaryCmd.Flags().StringVarP(&summaryOutput, "output", "o", "text",
		"Output format (text, json)")

	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	date := summaryDate
	if date == "" {
		date = util.GetTimeProvider().TodayKey()
	}

	summary, err := newEngine(st).Summarize(date)
	if err != nil {
		return err
	}

	if summaryOutput == "json" {
		return formatter.NewJSONFormatter().Format(summary)
	}

	fmt.Printf("%s: %s tracked, productivity %s, %d achievement(s)\n",
		summary.Date, util.FormatSeconds(summary.TotalSeconds),
		util.FormatPercent(summary.ProductivityScore), summary.Achievements)

	if len(summary.TopDomains) > 0 {
		top := make([]string, 0, len(summary.TopDomains))
		for _, use := range summary.TopDomains {
			top = append(top, fmt.Sprintf("%s (%s)", use.Domain, util.FormatSeconds(use.Seconds)))
		}
		fmt.Printf("top sites: %s\n", strings.Join(top, ", "))
	}
	return nil
}
