package workspace

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/refsync-dev/refsync/internal/config"
)

// minManagerMajor is the lowest package-manager major version whose
// `workspaces list --json` emits the line-delimited records this tool parses.
// Yarn 1 has a different command with a different output shape.
const minManagerMajor = 2

// Manager is a resolved, version-checked package manager binary.
type Manager struct {
	Bin     string
	Version *semver.Version
}

// DetectManager resolves the configured package-manager binary and verifies
// its version supports line-delimited workspace listing.
func DetectManager(root string) (*Manager, error) {
	name := config.Manager()
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("package manager %q not found on PATH: %w", name, err)
	}

	cmd := exec.Command(bin, "--version")
	cmd.Dir = root
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s --version: %w", name, err)
	}

	version, err := parseManagerVersion(string(out))
	if err != nil {
		return nil, fmt.Errorf("parsing %s version: %w", name, err)
	}
	if err := checkManagerVersion(version); err != nil {
		return nil, fmt.Errorf("%s %s: %w", name, version, err)
	}

	return &Manager{Bin: bin, Version: version}, nil
}

// parseManagerVersion parses `--version` output, tolerating a leading "v"
// and surrounding whitespace.
func parseManagerVersion(out string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(out), "v"))
}

// checkManagerVersion rejects managers older than minManagerMajor.
func checkManagerVersion(v *semver.Version) error {
	if v.Major() < minManagerMajor {
		return fmt.Errorf("workspace listing requires major version >= %d", minManagerMajor)
	}
	return nil
}
