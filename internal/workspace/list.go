package workspace

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
)

// List runs the package manager's workspace listing command in root and
// returns the parsed workspace. The command is invoked exactly once; any
// failure, unparsable line, or schema-invalid record aborts the run.
func List(root string) (*Workspace, error) {
	mgr, err := DetectManager(root)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(mgr.Bin, "workspaces", "list", "--json", "--verbose")
	cmd.Dir = root
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return nil, fmt.Errorf("listing workspaces: %w: %s", err, msg)
		}
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}

	packages, err := parseListing(out)
	if err != nil {
		return nil, err
	}

	return New(root, packages), nil
}

// parseListing decodes one JSON record per line. The root workspace itself
// (location ".") is excluded: the root config is a reference hub handled
// separately, not a package.
func parseListing(out []byte) ([]Package, error) {
	var packages []Package
	scanner := bufio.NewScanner(bytes.NewReader(out))
	// Listing records for packages with many dependencies can exceed the
	// scanner's default token size.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if err := validateRecord(line); err != nil {
			return nil, err
		}

		var pkg Package
		if err := json.Unmarshal(line, &pkg); err != nil {
			return nil, fmt.Errorf("parsing workspace record %q: %w", line, err)
		}
		if pkg.Location == "." {
			continue
		}
		packages = append(packages, pkg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading workspace listing: %w", err)
	}
	return packages, nil
}
