package commands

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/domain"
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/util"
)

var (
	limitCmd = &cobra.Command{
		Use:   "limit",
		Short: "Manage daily time limits",
		Long: `A limit caps the aggregate daily time across a domain and all of its
subdomains. Once the cap is hit, pages under the domain are blocked for the
rest of the day and a single notification is emitted.`,
	}

	goalCmd = &cobra.Command{
		Use:   "goal",
		Short: "Manage daily time goals",
		Long: `A goal celebrates spending at least the configured time on a domain
(and its subdomains) in one day. The first time a goal is met each day, an
achievement is recorded and a notification is emitted.`,
	}
)

func init() {
	limitCmd.AddCommand(
		newRuleSetCmd(store.KeyLimits, "limit"),
		newRuleListCmd(store.KeyLimits, "limit"),
		newRuleRemoveCmd(store.KeyLimits, "limit"),
	)
	goalCmd.AddCommand(
		newRuleSetCmd(store.KeyGoals, "goal"),
		newRuleListCmd(store.KeyGoals, "goal"),
		newRuleRemoveCmd(store.KeyGoals, "goal"),
	)
	rootCmd.AddCommand(limitCmd, goalCmd)
}

// parseThreshold accepts a duration ("1h30m") or a bare minute count ("90").
// Thresholds are validated here, at the configuration boundary; the engine
// assumes stored values are positive second counts.
func parseThreshold(input string) (int64, error) {
	if minutes, err := strconv.Atoi(input); err == nil {
		if minutes <= 0 {
			return 0, fmt.Errorf("threshold must be positive, got %d minutes", minutes)
		}
		return int64(minutes) * 60, nil
	}

	d, err := time.ParseDuration(input)
	if err != nil {
		return 0, fmt.Errorf("invalid threshold %q (use a duration like 1h30m or a minute count)", input)
	}
	if d < time.Second {
		return 0, fmt.Errorf("threshold must be at least one second, got %s", d)
	}
	return int64(d / time.Second), nil
}

func newRuleSetCmd(key, noun string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <domain> <duration>",
		Short: fmt.Sprintf("Set a daily %s for a domain and its subdomains", noun),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initRuntime(); err != nil {
				return err
			}

			d := domain.CleanInput(args[0])
			if d == "" {
				return fmt.Errorf("invalid domain %q", args[0])
			}
			seconds, err := parseThreshold(args[1])
			if err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			rules := model.RuleSet{}
			if err := st.Get(key, &rules); err != nil {
				return err
			}
			rules[d] = seconds
			if err := st.Set(key, rules); err != nil {
				return err
			}

			fmt.Printf("%s for %s set to %s/day\n", noun, d, util.FormatSeconds(seconds))
			return nil
		},
	}
}

func newRuleListCmd(key, noun string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List configured %ss", noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initRuntime(); err != nil {
				return err
			}

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			rules := model.RuleSet{}
			if err := st.Get(key, &rules); err != nil {
				return err
			}
			if len(rules) == 0 {
				fmt.Printf("no %ss configured\n", noun)
				return nil
			}

			domains := make([]string, 0, len(rules))
			for d := range rules {
				domains = append(domains, d)
			}
			sort.Strings(domains)
			for _, d := range domains {
				fmt.Printf("%-40s %s/day\n", d, util.FormatSeconds(rules[d]))
			}
			return nil
		},
	}
}

func newRuleRemoveCmd(key, noun string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <domain>",
		Short: fmt.Sprintf("Remove the %s for a domain", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initRuntime(); err != nil {
				return err
			}

			d := domain.CleanInput(args[0])

			st, err := openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			rules := model.RuleSet{}
			if err := st.Get(key, &rules); err != nil {
				return err
			}
			if _, ok := rules[d]; !ok {
				return fmt.Errorf("no %s configured for %s", noun, d)
			}
			delete(rules, d)
			if err := st.Set(key, rules); err != nil {
				return err
			}

			fmt.Printf("%s for %s removed\n", noun, d)
			return nil
		},
	}
}
