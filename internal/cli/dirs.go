package cli

import (
	"fmt"
	"strings"

	"github.com/cpraster-labs/cprasterctl/internal/config"
	"github.com/cpraster-labs/cprasterctl/internal/cups"
	"github.com/cpraster-labs/cprasterctl/internal/payload"
	"github.com/cpraster-labs/cprasterctl/internal/state"
	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Show the resolved filter directory and tool paths",
	Long: `Show where filters will be installed on this host, which resolution
step decided it, and where the tool keeps its own files.`,
	RunE: runDirs,
}

func init() {
	rootCmd.AddCommand(dirsCmd)
}

func runDirs(cmd *cobra.Command, args []string) error {
	kernel := cups.DetectKernel()
	filterDir, source := cups.ResolveFilterDir()

	receiptsPath, err := state.ReceiptsPath()
	if err != nil {
		return fmt.Errorf("resolving receipts path: %w", err)
	}

	payloadDirs := "(none found)"
	if sources, err := payload.Sources(); err == nil {
		payloadDirs = strings.Join(sources, ", ")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Kernel:       %s\n", kernel)
	fmt.Fprintf(cmd.OutOrStdout(), "Filter dir:   %s (%s)\n", filterDir, source)
	fmt.Fprintf(cmd.OutOrStdout(), "Payloads:     %s\n", payloadDirs)
	fmt.Fprintf(cmd.OutOrStdout(), "Config file:  %s\n", config.FilePath())
	fmt.Fprintf(cmd.OutOrStdout(), "Receipts:     %s\n", receiptsPath)
	return nil
}
