package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cpraster-labs/cprasterctl/internal/manifest"
	"github.com/cpraster-labs/cprasterctl/internal/payload"
	"github.com/cpraster-labs/cprasterctl/internal/state"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	listInstalled bool
	listJSON      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List filter payloads and their install status",
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listInstalled, "installed", false, "Show only filters with an install receipt")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listRow is one filter for display.
type listRow struct {
	Name      string `json:"name"`
	Payload   string `json:"payload,omitempty"`
	Installed string `json:"installed,omitempty"`
	Status    string `json:"status"`
}

func runList(cmd *cobra.Command, args []string) error {
	var payloads []payload.Payload
	if sources, err := payload.Sources(); err == nil {
		var warnings []string
		payloads, warnings, err = payload.Discover(sources)
		if err != nil {
			return fmt.Errorf("discovering payloads: %w", err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}

	receipts, err := state.Load()
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}

	rows := buildListRows(payloads, receipts)
	if listInstalled {
		rows = filterInstalledRows(rows)
	}

	if len(rows) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No filters found.")
		return nil
	}

	if listJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Name", "Payload", "Installed", "Status")
	for _, row := range rows {
		_ = table.Append([]string{row.Name, orDash(row.Payload), orDash(row.Installed), row.Status})
	}
	_ = table.Render()
	return nil
}

// buildListRows joins discovered payloads with install receipts. Receipts
// without a matching payload still show up so stale installs stay visible.
func buildListRows(payloads []payload.Payload, receipts []state.Receipt) []listRow {
	rows := make([]listRow, 0, len(payloads))
	seen := make(map[string]bool, len(payloads))

	for _, p := range payloads {
		seen[p.Name] = true
		row := listRow{Name: p.Name, Payload: p.Manifest.Version}

		r := state.Find(receipts, p.Name)
		if r == nil {
			row.Status = "not installed"
			rows = append(rows, row)
			continue
		}

		row.Installed = r.Version
		row.Status = installStatus(p.Manifest.Version, r)
		rows = append(rows, row)
	}

	for _, r := range receipts {
		if seen[r.Name] {
			continue
		}
		row := listRow{Name: r.Name, Installed: r.Version, Status: "no payload"}
		if _, err := os.Stat(r.Path); os.IsNotExist(err) {
			row.Status = "missing file"
		}
		rows = append(rows, row)
	}

	return rows
}

// installStatus compares the receipt against the payload version and the
// file on disk.
func installStatus(payloadVersion string, r *state.Receipt) string {
	if _, err := os.Stat(r.Path); os.IsNotExist(err) {
		return "missing file"
	}

	cmp, err := manifest.CompareVersions(r.Version, payloadVersion)
	switch {
	case err != nil:
		return "unknown version"
	case cmp < 0:
		return "update available"
	default:
		return "current"
	}
}

func filterInstalledRows(rows []listRow) []listRow {
	result := make([]listRow, 0, len(rows))
	for _, row := range rows {
		if row.Installed != "" {
			result = append(result, row)
		}
	}
	return result
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
