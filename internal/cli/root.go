package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cpraster-labs/cprasterctl/internal/config"
	"github.com/cpraster-labs/cprasterctl/internal/state"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   "cprasterctl",
	Short: "Install and manage CUPS raster filters",
	Long: `cprasterctl installs prebuilt CUPS raster filters (cprastertocmd and
friends) into the filter directory CUPS loads from on this host, and keeps
track of what is installed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the banner for commands that report state themselves.
		switch cmd.Name() {
		case "doctor", "version":
			return
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return
		}

		printMissingFilterNotice(os.Stderr)
	},
}

// printMissingFilterNotice warns when a recorded filter no longer exists at
// its installed path. Best effort; receipt read failures stay quiet.
func printMissingFilterNotice(w io.Writer) {
	receipts, err := state.Load()
	if err != nil {
		return
	}
	for _, r := range receipts {
		if _, err := os.Stat(r.Path); os.IsNotExist(err) {
			fmt.Fprintf(w, "Installed filter %s is missing from %s. Run 'cprasterctl doctor'.\n", r.Name, r.Path)
		}
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
