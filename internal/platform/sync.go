package platform

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"syscall"
)

// SyncFile flushes a file's contents to stable storage.
func SyncFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s for sync: %w", path, err)
	}
	defer f.Close()

	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing %s: %w", path, err)
	}
	return nil
}

// SyncDir flushes a directory's metadata to stable storage, making a
// just-renamed entry durable. Filesystems that do not support fsync on
// directories report EINVAL; that is not an error here.
func SyncDir(dir string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	f, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("opening directory %s for sync: %w", dir, err)
	}
	defer f.Close()

	if err := f.Sync(); err != nil {
		if errors.Is(err, syscall.EINVAL) {
			return nil
		}
		return fmt.Errorf("syncing directory %s: %w", dir, err)
	}
	return nil
}
