package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cpraster-labs/cprasterctl/internal/payload"
	"github.com/cpraster-labs/cprasterctl/internal/platform"
	"github.com/cpraster-labs/cprasterctl/internal/state"
)

// Install copies a payload's binary into destDir and returns the receipt.
// The rename at the end is the commit point; everything before it happens on
// a temporary file that is removed on failure.
func Install(p *payload.Payload, destDir string) (*state.Receipt, error) {
	info, err := os.Stat(destDir)
	if err != nil {
		return nil, fmt.Errorf("filter directory %s: %w (is CUPS installed?)", destDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("filter directory %s is not a directory", destDir)
	}

	src, err := os.Open(p.BinPath)
	if err != nil {
		return nil, fmt.Errorf("opening payload %s: %w", p.BinPath, err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(destDir, "."+p.Name+".*")
	if err != nil {
		return nil, fmt.Errorf("creating temp file in %s: %w", destDir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		tmp.Close()
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, fmt.Errorf("copying %s: %w", p.BinPath, err)
	}

	// CUPS refuses filters without the execute bit.
	if err := platform.Chmod(tmpName, platform.FilterMode); err != nil {
		return nil, fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}

	if err := tmp.Sync(); err != nil {
		return nil, fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", tmpName, err)
	}

	dst := filepath.Join(destDir, p.Name)
	if err := os.Rename(tmpName, dst); err != nil {
		return nil, fmt.Errorf("renaming %s to %s: %w", tmpName, dst, err)
	}
	committed = true

	if err := platform.SyncDir(destDir); err != nil {
		return nil, err
	}

	return &state.Receipt{
		Name:        p.Name,
		Version:     p.Manifest.Version,
		Path:        dst,
		InstalledAt: time.Now().UTC(),
	}, nil
}

// Remove deletes an installed filter file. The caller decides whether a
// missing file is fatal; the os.ErrNotExist cause is preserved in the wrap.
func Remove(r *state.Receipt) error {
	if err := os.Remove(r.Path); err != nil {
		return fmt.Errorf("removing %s: %w", r.Path, err)
	}
	return nil
}
