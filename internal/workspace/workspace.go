package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/refsync-dev/refsync/internal/branding"
	"github.com/refsync-dev/refsync/internal/config"
)

// Package is one workspace member as reported by the package manager.
type Package struct {
	// Name is the package identifier, unique within the workspace.
	Name string `json:"name"`

	// Location is the package directory relative to the workspace root.
	Location string `json:"location"`

	// Dependencies lists the names of other workspace packages this one
	// depends on, in the order the manager reported them.
	Dependencies []string `json:"workspaceDependencies"`
}

// Workspace is the immutable result of one listing run.
type Workspace struct {
	// Root is the absolute path to the workspace root.
	Root string

	// Packages preserves the manager's enumeration order.
	Packages []Package

	byName map[string]*Package
}

// New builds a workspace over the given packages, preserving their order.
func New(root string, packages []Package) *Workspace {
	ws := &Workspace{
		Root:     root,
		Packages: packages,
		byName:   make(map[string]*Package, len(packages)),
	}
	for i := range ws.Packages {
		ws.byName[ws.Packages[i].Name] = &ws.Packages[i]
	}
	return ws
}

// Lookup returns the package with the given name, or nil if unknown.
func (w *Workspace) Lookup(name string) *Package {
	return w.byName[name]
}

// lockFile marks the workspace root on disk.
const lockFile = "yarn.lock"

// Discover resolves the workspace root: the configured override if set,
// otherwise the nearest ancestor of the working directory containing a
// lockfile.
func Discover() (string, error) {
	if root := config.Root(); root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("resolving %s: %w", branding.EnvVar("ROOT"), err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, lockFile)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no workspace root found: no %s in %s or any parent directory (set %s to override)",
				lockFile, cwd, branding.EnvVar("ROOT"))
		}
		dir = parent
	}
}
