package gateway

import (
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// PkgRootCandidates are checked in order; the first existing directory
// is prepended to PYTHONPATH so the tool finds the course package.
var PkgRootCandidates = []string{
	"/app/TinyTorch",
	"/app/tinytorch",
}

// InterpreterPath, when it exists, is exported as PYTHON so the tool
// picks the virtualenv interpreter over the system one.
const InterpreterPath = "/app/venv/bin/python"

const pythonPathVar = "PYTHONPATH"

// PrepareEnv builds the child environment for one invocation: the
// current process environment, caller overrides on top, then the
// module-search-path and interpreter augmentation. The first existing
// package root wins; later candidates are not also added.
func PrepareEnv(overrides map[string]string, pkgRoots []string, interpreter string) []string {
	env := environMap()
	for k, v := range overrides {
		env[k] = v
	}

	for _, root := range pkgRoots {
		if _, err := os.Stat(root); err != nil {
			continue
		}
		env[pythonPathVar] = prependPath(env[pythonPathVar], root)
		break
	}

	if _, err := os.Stat(interpreter); err == nil {
		env["PYTHON"] = interpreter
	}

	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	return out
}

// prependPath puts dir in front of value unless it is already an entry.
func prependPath(value, dir string) string {
	if value == "" {
		return dir
	}
	existing := mapset.NewThreadUnsafeSet(strings.Split(value, ":")...)
	if existing.Contains(dir) {
		return value
	}
	return dir + ":" + value
}

func environMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}
