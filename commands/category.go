package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/category"
	"github.com/webtimed/webtimed/internal/core/domain"
	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
)

var (
	categoryCmd = &cobra.Command{
		Use:   "category",
		Short: "Manage domain categories",
		Long: `Categories drive focus mode and the productivity score. Resolution
order: your overrides, the builtin dictionary, then heuristic auto
classifications; anything else is Neutral.`,
	}

	categorySetCmd = &cobra.Command{
		Use:   "set <domain> <Productivity|Entertainment|Neutral>",
		Short: "Override the category for a domain and its subdomains",
		Args:  cobra.ExactArgs(2),
		RunE:  runCategorySet,
	}

	categoryRemoveCmd = &cobra.Command{
		Use:   "remove <domain>",
		Short: "Remove a category override",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoryRemove,
	}

	categoryShowCmd = &cobra.Command{
		Use:   "show <domain>",
		Short: "Show how a domain resolves",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoryShow,
	}

	categoryListCmd = &cobra.Command{
		Use:   "list",
		Short: "List category overrides and auto classifications",
		Args:  cobra.NoArgs,
		RunE:  runCategoryList,
	}
)

func init() {
	categoryCmd.AddCommand(categorySetCmd, categoryRemoveCmd, categoryShowCmd, categoryListCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategorySet(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	d := domain.CleanInput(args[0])
	if d == "" {
		return fmt.Errorf("invalid domain %q", args[0])
	}
	cat, err := model.ParseCategory(args[1])
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	overrides := model.CategoryMap{}
	if err := st.Get(store.KeyCategories, &overrides); err != nil {
		return err
	}
	overrides[d] = cat
	if err := st.Set(store.KeyCategories, overrides); err != nil {
		return err
	}

	fmt.Printf("%s is now %s\n", d, cat)
	return nil
}

func runCategoryRemove(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	d := domain.CleanInput(args[0])

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	overrides := model.CategoryMap{}
	if err := st.Get(store.KeyCategories, &overrides); err != nil {
		return err
	}
	if _, ok := overrides[d]; !ok {
		return fmt.Errorf("no override configured for %s", d)
	}
	delete(overrides, d)
	if err := st.Set(store.KeyCategories, overrides); err != nil {
		return err
	}

	fmt.Printf("override for %s removed\n", d)
	return nil
}

func runCategoryShow(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	d := domain.CleanInput(args[0])
	if d == "" {
		return fmt.Errorf("invalid domain %q", args[0])
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	overrides := model.CategoryMap{}
	if err := st.Get(store.KeyCategories, &overrides); err != nil {
		return err
	}
	auto := model.CategoryMap{}
	if err := st.Get(store.KeyAutoCategories, &auto); err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", d, category.NewResolver(overrides, auto).Resolve(d))
	return nil
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	overrides := model.CategoryMap{}
	if err := st.Get(store.KeyCategories, &overrides); err != nil {
		return err
	}
	auto := model.CategoryMap{}
	if err := st.Get(store.KeyAutoCategories, &auto); err != nil {
		return err
	}

	printCategoryMap("overrides", overrides)
	printCategoryMap("auto-classified", auto)
	return nil
}

func printCategoryMap(label string, m model.CategoryMap) {
	fmt.Printf("%s (%d):\n", label, len(m))
	domains := make([]string, 0, len(m))
	for d := range m {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, d := range domains {
		fmt.Printf("  %-40s %s\n", d, m[d])
	}
}
