package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	resetYes bool

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Erase all tracked data, rules and achievements",
		Args:  cobra.NoArgs,
		RunE:  runReset,
	}
)

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false,
		"Skip the confirmation prompt")

	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}

	if !resetYes {
		fmt.Print("This erases all stats, rules, achievements and focus state. Continue? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("aborted")
			return nil
		}
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Reset(); err != nil {
		return err
	}

	fmt.Println("all data erased")
	return nil
}
