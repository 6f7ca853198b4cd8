package state

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cpraster-labs/cprasterctl/internal/config"
)

// EnvStateDir overrides the state directory when set.
const EnvStateDir = "CPRASTER_STATE"

const receiptsFileName = "installed.yaml"

// Dir returns the directory holding tool state. It checks the CPRASTER_STATE
// environment variable first, then falls back to the config directory.
func Dir() (string, error) {
	if v := os.Getenv(EnvStateDir); v != "" {
		return v, nil
	}
	return config.Dir(), nil
}

// ReceiptsPath returns the full path to the receipts file.
func ReceiptsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, receiptsFileName), nil
}

// ensureDir creates the state directory if it does not exist.
func ensureDir() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating state directory %s: %w", dir, err)
	}
	return nil
}
