package platform

import (
	"fmt"
	"os"
	"runtime"
)

// FilterMode is the permission mode for installed filter binaries. CUPS
// executes filters as a child process, so the file must be executable by
// owner, group, and other.
const FilterMode os.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// IsExecutable reports whether the file at path exists and carries at least
// one execute bit. On Windows existence alone is sufficient.
func IsExecutable(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return false, fmt.Errorf("%s is not a regular file", path)
	}
	if runtime.GOOS == "windows" {
		return true, nil
	}
	return info.Mode().Perm()&0111 != 0, nil
}
