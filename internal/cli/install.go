package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cpraster-labs/cprasterctl/internal/cups"
	"github.com/cpraster-labs/cprasterctl/internal/installer"
	"github.com/cpraster-labs/cprasterctl/internal/payload"
	"github.com/cpraster-labs/cprasterctl/internal/state"
	"github.com/spf13/cobra"
)

var (
	installForce bool
	installYes   bool
	installDir   string
)

var installCmd = &cobra.Command{
	Use:   "install [filter...]",
	Short: "Install filter payloads into the CUPS filter directory",
	Long: `Install filter payloads into the CUPS filter directory for this host.
With no arguments all discovered payloads are installed. Filters already
recorded at the payload's version (or newer) are skipped unless --force is set.`,
	Args: cobra.ArbitraryArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "Reinstall even when the recorded version is current")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompt")
	installCmd.Flags().StringVar(&installDir, "dir", "", "Install into this directory instead of the resolved filter directory")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	destDir := installDir
	if destDir == "" {
		destDir, _ = cups.ResolveFilterDir()
	}

	sources, err := payload.Sources()
	if err != nil {
		return err
	}

	payloads, warnings, err := payload.Discover(sources)
	if err != nil {
		return fmt.Errorf("discovering payloads: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if len(args) > 0 {
		payloads, err = selectPayloads(payloads, args)
		if err != nil {
			return err
		}
	}

	receipts, err := state.Load()
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}

	plan := installer.BuildPlan(payloads, receipts, installForce)
	if len(plan.Installs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to install — all filters are current.")
		return nil
	}

	installer.PrintPlan(cmd.OutOrStdout(), plan, destDir)

	// Prompt for confirmation unless -y is set.
	if !installYes {
		fmt.Fprint(cmd.OutOrStdout(), "? Proceed with installation? (Y/n) ")
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
			if answer != "" && answer != "y" && answer != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "Installation cancelled.")
				return nil
			}
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Installing...")

	installed := 0
	failed := 0
	for i := range plan.Installs {
		p := &plan.Installs[i]

		r, err := installer.Install(p, destDir)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s: %v\n", p.Name, err)
			failed++
			continue
		}

		receipts = state.Add(receipts, *r)
		fmt.Fprintf(cmd.OutOrStdout(), "  ✓ %s %s -> %s\n", p.Name, p.Manifest.Version, r.Path)
		installed++
	}

	if installed > 0 {
		if err := state.Save(receipts); err != nil {
			return fmt.Errorf("saving receipts: %w", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout())
	if installed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Installed %d filter(s).", installed)
		if len(plan.Skips) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " %d already current (skipped).", len(plan.Skips))
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d installs failed", failed, installed+failed)
	}
	return nil
}

// selectPayloads filters the discovered payloads down to the requested names.
func selectPayloads(payloads []payload.Payload, names []string) ([]payload.Payload, error) {
	byName := make(map[string]payload.Payload, len(payloads))
	for _, p := range payloads {
		byName[p.Name] = p
	}

	selected := make([]payload.Payload, 0, len(names))
	for _, name := range names {
		p, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("no payload named %q (run 'cprasterctl list')", name)
		}
		selected = append(selected, p)
	}
	return selected, nil
}
