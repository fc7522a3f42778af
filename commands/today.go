package commands

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/category"
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/presentation/formatter"
	"github.com/webtimed/webtimed/internal/util"
)

var (
	todayOutput string
	todayDate   string

	todayCmd = &cobra.Command{
		Use:   "today",
		Short: "Show per-domain usage for today (or another date)",
		RunE:  runToday,
	}
)

func init() {
	todayCmd.Flags().StringVarP(&todayOutput, "output", "o", "table",
		"Output format (table, json)")
	todayCmd.Flags().StringVar(&todayDate, "date", "",
		"Date to report on (YYYY-MM-DD, default today)")

	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	date := todayDate
	if date == "" {
		date = util.GetTimeProvider().TodayKey()
	}

	stats := model.Stats{}
	if err := st.Get(store.KeyStats, &stats); err != nil {
		return err
	}
	overrides := model.CategoryMap{}
	if err := st.Get(store.KeyCategories, &overrides); err != nil {
		return err
	}
	auto := model.CategoryMap{}
	if err := st.Get(store.KeyAutoCategories, &auto); err != nil {
		return err
	}
	resolver := category.NewResolver(overrides, auto)

	day := stats.Day(date)
	report := formatter.DayReport{Date: date, TotalSeconds: day.Total()}

	var productive int64
	for d, seconds := range day {
		cat := resolver.Resolve(d)
		report.Rows = append(report.Rows, formatter.DomainRow{Domain: d, Category: cat, Seconds: seconds})
		if cat == model.CategoryProductivity {
			productive += seconds
		}
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		if report.Rows[i].Seconds != report.Rows[j].Seconds {
			return report.Rows[i].Seconds > report.Rows[j].Seconds
		}
		return report.Rows[i].Domain < report.Rows[j].Domain
	})
	if report.TotalSeconds > 0 {
		report.ProductivityScore = int(productive * 100 / report.TotalSeconds)
	}

	if todayOutput == "json" {
		return formatter.NewJSONFormatter().Format(report)
	}
	return formatter.NewTableFormatter().Format(report)
}
