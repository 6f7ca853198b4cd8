package payload

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cpraster-labs/cprasterctl/internal/config"
)

// EnvPayloads overrides payload source resolution when set.
const EnvPayloads = "CPRASTER_PAYLOADS"

// bundledRelPath is where a bundled release keeps payloads relative to the
// executable's directory.
const bundledRelPath = "../share/cpraster/payloads"

// Sources returns the payload source directories in precedence order.
//
// Resolution order:
//  1. CPRASTER_PAYLOADS environment variable
//  2. <exe-dir>/../share/cpraster/payloads (bundled release layout)
//  3. payload_dir config key
func Sources() ([]string, error) {
	var sources []string

	if v := os.Getenv(EnvPayloads); v != "" {
		if info, err := os.Stat(v); err == nil && info.IsDir() {
			sources = append(sources, v)
		}
	}

	if exe, err := os.Executable(); err == nil {
		bundled := filepath.Join(filepath.Dir(exe), bundledRelPath)
		if info, err := os.Stat(bundled); err == nil && info.IsDir() {
			sources = append(sources, bundled)
		}
	}

	if v := config.Get(config.KeyPayloadDir); v != "" {
		if info, err := os.Stat(v); err == nil && info.IsDir() {
			sources = append(sources, v)
		}
	}

	if len(sources) == 0 {
		return nil, fmt.Errorf("no payload sources found; set %s or the %s config key", EnvPayloads, config.KeyPayloadDir)
	}

	return sources, nil
}

// Discover scans the sources for payloads. Invalid payloads are skipped and
// reported as warnings; a payload name found in an earlier source shadows
// later ones. Results are sorted by name.
func Discover(sources []string) ([]Payload, []string, error) {
	var (
		payloads []Payload
		warnings []string
		seen     = make(map[string]bool)
	)

	for _, source := range sources {
		entries, err := os.ReadDir(source)
		if err != nil {
			return nil, nil, fmt.Errorf("reading payload source %s: %w", source, err)
		}

		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}

			dir := filepath.Join(source, entry.Name())
			p, err := loadDir(dir)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("skipping %s: %v", dir, err))
				continue
			}

			if seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			payloads = append(payloads, *p)
		}
	}

	sort.Slice(payloads, func(i, j int) bool { return payloads[i].Name < payloads[j].Name })
	return payloads, warnings, nil
}

// Find returns the named payload from the sources.
func Find(name string, sources []string) (*Payload, error) {
	payloads, _, err := Discover(sources)
	if err != nil {
		return nil, err
	}
	for i := range payloads {
		if payloads[i].Name == name {
			return &payloads[i], nil
		}
	}
	return nil, fmt.Errorf("no payload named %q in %s", name, strings.Join(sources, ", "))
}
