//go:build integration

package integration_test

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// testEnv holds the pieces of an isolated workspace: a root with a lockfile
// and a fake yarn binary whose listing output the test controls.
type testEnv struct {
	Root string // workspace root (contains yarn.lock)
	bin  string // directory prepended to PATH with the fake yarn
}

// setupTestEnv creates a temp workspace and installs a fake `yarn` on PATH.
// The fake answers `--version` with 4.5.0 and `workspaces list` by printing
// the file named by REFSYNC_TEST_LISTING.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake yarn shim is a shell script")
	}

	env := &testEnv{
		Root: t.TempDir(),
		bin:  t.TempDir(),
	}

	if err := os.WriteFile(filepath.Join(env.Root, "yarn.lock"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	shim := `#!/bin/sh
if [ "$1" = "--version" ]; then
  echo "4.5.0"
  exit 0
fi
cat "$REFSYNC_TEST_LISTING"
`
	if err := os.WriteFile(filepath.Join(env.bin, "yarn"), []byte(shim), 0755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", env.bin+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("REFSYNC_ROOT", env.Root)
	return env
}

// setListing points the fake yarn at a listing file built from records.
func (e *testEnv) setListing(t *testing.T, records ...string) {
	t.Helper()
	path := filepath.Join(e.bin, "listing.ndjson")
	var out string
	for _, r := range records {
		out += r + "\n"
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("REFSYNC_TEST_LISTING", path)
}

// addPackage creates a package directory with a tsconfig and returns its
// listing record.
func (e *testEnv) addPackage(t *testing.T, name, location, tsconfig string, deps ...string) string {
	t.Helper()
	dir := filepath.Join(e.Root, filepath.FromSlash(location))
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if tsconfig != "" {
		if err := os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(tsconfig), 0644); err != nil {
			t.Fatal(err)
		}
	}

	depsJSON := "["
	for i, d := range deps {
		if i > 0 {
			depsJSON += ","
		}
		depsJSON += fmt.Sprintf("%q", d)
	}
	depsJSON += "]"
	return fmt.Sprintf(`{"location":%q,"name":%q,"workspaceDependencies":%s,"mismatchedWorkspaceDependencies":[]}`,
		location, name, depsJSON)
}

func (e *testEnv) readFile(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.Root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
