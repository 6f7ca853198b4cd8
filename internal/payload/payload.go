package payload

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpraster-labs/cprasterctl/internal/manifest"
)

// Payload is a filter binary with its parsed manifest.
type Payload struct {
	Name     string
	Dir      string
	BinPath  string
	Manifest *manifest.Manifest
}

// loadDir reads one payload directory: validate and parse the manifest, then
// check that the binary it names actually exists next to it.
func loadDir(dir string) (*Payload, error) {
	manifestPath := filepath.Join(dir, manifest.FileName)

	result, err := manifest.ValidateFile(manifestPath)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		issue := result.Issues[0]
		return nil, fmt.Errorf("manifest %s: %s (%s at %s)",
			manifestPath, result.Summary(), issue.Message, issue.Path)
	}

	m, err := manifest.Parse(manifestPath)
	if err != nil {
		return nil, err
	}

	binPath := filepath.Join(dir, m.Name)
	info, err := os.Stat(binPath)
	if err != nil {
		return nil, fmt.Errorf("payload %s: binary missing: %w", m.Name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("payload %s: %s is not a regular file", m.Name, binPath)
	}

	return &Payload{
		Name:     m.Name,
		Dir:      dir,
		BinPath:  binPath,
		Manifest: m,
	}, nil
}
