// Package resolver maps logical command names to concrete executable
// paths. Resolution happens once at process start; the resulting
// Toolchain is immutable and shared by all invocations.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrNotFound is reported when neither the PATH lookup nor any of the
// fixed candidate locations yields an executable. This is a setup
// problem, not a transient condition: the service must be restarted
// after the tool is (re)installed.
var ErrNotFound = errors.New("executable not found")

// TitoCandidates are the known installation locations of the tito CLI,
// in priority order, checked only after the PATH lookup fails.
var TitoCandidates = []string{
	"/app/venv/bin/tito",
	"/app/TinyTorch/bin/tito",
	"/app/TinyTorch/tito",
	"/app/TinyTorch/cli/tito",
	"/usr/local/bin/tito",
}

// Resolve locates the executable backing a logical command name. The
// OS search path wins; otherwise the first existing, executable
// candidate is returned. No further candidates are evaluated once one
// succeeds.
func Resolve(name string, candidates []string) (string, error) {
	if path, err := exec.LookPath(name); err == nil {
		return path, nil
	}

	for _, candidate := range candidates {
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}
