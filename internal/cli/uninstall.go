package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/cpraster-labs/cprasterctl/internal/installer"
	"github.com/cpraster-labs/cprasterctl/internal/state"
	"github.com/spf13/cobra"
)

var uninstallKeepFile bool

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <filter>",
	Short: "Remove an installed filter",
	Long:  `Remove an installed filter from the CUPS filter directory and drop its receipt.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUninstall,
}

func init() {
	uninstallCmd.Flags().BoolVar(&uninstallKeepFile, "keep-file", false, "Drop the receipt but leave the filter file in place")
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	name := args[0]

	receipts, err := state.Load()
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}

	r := state.Find(receipts, name)
	if r == nil {
		return fmt.Errorf("filter %q is not installed", name)
	}

	if !uninstallKeepFile {
		if err := installer.Remove(r); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			// The file is already gone; still drop the receipt.
			fmt.Fprintf(cmd.OutOrStdout(), "Note: %s was already missing from %s\n", name, r.Path)
		}
	}

	receipts, _ = state.Remove(receipts, name)
	if err := state.Save(receipts); err != nil {
		return fmt.Errorf("saving receipts: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", name)
	return nil
}
