package commands

import (
	"github.com/spf13/cobra"

	"github.com/webtimed/webtimed/internal/core/model"
	"github.com/webtimed/webtimed/internal/data/store"
	"github.com/webtimed/webtimed/internal/presentation/formatter"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the full duration store as JSON",
	Long:  `export writes every retained day as a flat JSON document keyed by date, then domain, with accumulated seconds as values.`,
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	stats := model.Stats{}
	if err := st.Get(store.KeyStats, &stats); err != nil {
		return err
	}

	return formatter.NewJSONFormatter().Format(stats)
}
