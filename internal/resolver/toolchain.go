package resolver

import (
	"context"
	"log/slog"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"
)

// Toolchain holds resolved paths for the commands the service knows
// about. It is built once in main and read-only afterwards, so
// concurrent lookups need no coordination beyond the backing map.
type Toolchain struct {
	paths *xsync.MapOf[string, string]
}

// NewToolchain resolves every named command concurrently and records
// the outcome. Commands that fail to resolve are logged and simply
// absent from the toolchain; the gateway turns that absence into its
// not-found failure without spawning anything.
func NewToolchain(ctx context.Context, candidates map[string][]string) *Toolchain {
	tc := &Toolchain{paths: xsync.NewMapOf[string, string]()}

	g, _ := errgroup.WithContext(ctx)
	for name, cands := range candidates {
		g.Go(func() error {
			path, err := Resolve(name, cands)
			if err != nil {
				slog.Warn("command did not resolve", "name", name, "err", err)
				return nil
			}
			slog.Info("resolved command", "name", name, "path", path)
			tc.paths.Store(name, path)
			return nil
		})
	}
	_ = g.Wait()

	return tc
}

// Path returns the resolved absolute path for a logical name.
func (tc *Toolchain) Path(name string) (string, bool) {
	return tc.paths.Load(name)
}

// Names lists the logical names that resolved successfully.
func (tc *Toolchain) Names() []string {
	names := make([]string, 0, tc.paths.Size())
	tc.paths.Range(func(name string, _ string) bool {
		names = append(names, name)
		return true
	})
	return names
}
