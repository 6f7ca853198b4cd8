package installer

import (
	"fmt"
	"io"

	"github.com/cpraster-labs/cprasterctl/internal/manifest"
	"github.com/cpraster-labs/cprasterctl/internal/payload"
	"github.com/cpraster-labs/cprasterctl/internal/state"
)

// Plan describes what an install run will do.
type Plan struct {
	Installs []payload.Payload
	Skips    []Skip
}

// Skip is a payload excluded from the plan and the reason why.
type Skip struct {
	Name   string
	Reason string
}

// BuildPlan decides which payloads to install given the current receipts.
// A payload is skipped when a receipt already records the same or a newer
// version, unless force is set. A receipt whose recorded version cannot be
// parsed is treated as outdated and reinstalled.
func BuildPlan(payloads []payload.Payload, receipts []state.Receipt, force bool) *Plan {
	plan := &Plan{}

	for _, p := range payloads {
		if force {
			plan.Installs = append(plan.Installs, p)
			continue
		}

		r := state.Find(receipts, p.Name)
		if r == nil {
			plan.Installs = append(plan.Installs, p)
			continue
		}

		cmp, err := manifest.CompareVersions(r.Version, p.Manifest.Version)
		if err != nil || cmp < 0 {
			plan.Installs = append(plan.Installs, p)
			continue
		}

		plan.Skips = append(plan.Skips, Skip{
			Name:   p.Name,
			Reason: fmt.Sprintf("already at %s", r.Version),
		})
	}

	return plan
}

// PrintPlan writes the plan summary for user confirmation.
func PrintPlan(w io.Writer, plan *Plan, destDir string) {
	fmt.Fprintf(w, "Destination: %s\n\n", destDir)

	for _, p := range plan.Installs {
		fmt.Fprintf(w, "  install: %s %s\n", p.Name, p.Manifest.Version)
	}
	for _, s := range plan.Skips {
		fmt.Fprintf(w, "  skip:    %s (%s)\n", s.Name, s.Reason)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %d to install, %d up to date\n", len(plan.Installs), len(plan.Skips))
	fmt.Fprintln(w)
}
