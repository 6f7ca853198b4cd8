package cli

import (
	"fmt"
	"io"

	"github.com/cpraster-labs/cprasterctl/internal/cups"
	"github.com/cpraster-labs/cprasterctl/internal/payload"
	"github.com/cpraster-labs/cprasterctl/internal/state"
	"github.com/spf13/cobra"
)

var (
	checkDir       bool
	checkCUPS      bool
	checkInstalled bool
	checkPayloads  bool
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the filter installation",
	Long:  `Run diagnostic checks on the CUPS filter directory, the CUPS tools, installed filters, and payload sources.`,
	RunE:  runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&checkDir, "check-dir", false, "Verify the filter directory exists and is writable")
	doctorCmd.Flags().BoolVar(&checkCUPS, "check-cups", false, "Verify the CUPS command-line tools are available")
	doctorCmd.Flags().BoolVar(&checkInstalled, "check-installed", false, "Verify recorded filters are present and executable")
	doctorCmd.Flags().BoolVar(&checkPayloads, "check-payloads", false, "Verify payload sources resolve and parse")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	anyFlag := checkDir || checkCUPS || checkInstalled || checkPayloads
	all := !anyFlag

	var checks []state.Check
	out := cmd.OutOrStdout()

	if all || checkDir {
		filterDir, source := cups.ResolveFilterDir()
		fmt.Fprintf(out, "Filter directory (%s):\n", source)

		dirCheck := state.CheckFilterDir(filterDir)
		checks = append(checks, dirCheck)
		printCheck(out, dirCheck)

		if dirCheck.OK {
			writable := state.CheckFilterDirWritable(filterDir)
			checks = append(checks, writable)
			printCheck(out, writable)
		}
	}

	if all || checkCUPS {
		fmt.Fprintln(out, "CUPS tools:")
		for _, c := range state.CheckCUPSTools() {
			checks = append(checks, c)
			printCheck(out, c)
		}
	}

	if all || checkInstalled {
		fmt.Fprintln(out, "Installed filters:")
		receipts, err := state.Load()
		if err != nil {
			c := state.Check{Name: "receipts", Detail: err.Error()}
			checks = append(checks, c)
			printCheck(out, c)
		} else {
			for _, c := range state.CheckReceipts(receipts) {
				checks = append(checks, c)
				printCheck(out, c)
			}
		}
	}

	if all || checkPayloads {
		fmt.Fprintln(out, "Payload sources:")
		c, warnings := payloadCheck()
		checks = append(checks, c)
		printCheck(out, c)
		for _, w := range warnings {
			fmt.Fprintf(out, "  [WARN] %s\n", w)
		}
	}

	failed := 0
	for _, c := range checks {
		if !c.OK {
			failed++
		}
	}

	fmt.Fprintln(out)
	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}
	fmt.Fprintf(out, "All %d checks passed.\n", len(checks))
	return nil
}

// payloadCheck verifies payload sources resolve and reports how many payloads
// parse cleanly. Per-payload manifest problems come back as warnings, not
// failures.
func payloadCheck() (state.Check, []string) {
	sources, err := payload.Sources()
	if err != nil {
		return state.Check{Name: "payload sources", Detail: err.Error()}, nil
	}

	payloads, warnings, err := payload.Discover(sources)
	if err != nil {
		return state.Check{Name: "payload sources", Detail: err.Error()}, nil
	}

	detail := fmt.Sprintf("%d payload(s) in %d source(s)", len(payloads), len(sources))
	return state.Check{Name: "payload sources", OK: true, Detail: detail}, warnings
}

func printCheck(w io.Writer, c state.Check) {
	status := "[ OK ]"
	if !c.OK {
		status = "[FAIL]"
	}
	fmt.Fprintf(w, "  %s %s: %s\n", status, c.Name, c.Detail)
}
