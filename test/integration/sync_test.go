//go:build integration

package integration_test

import (
	"strings"
	"testing"

	"github.com/refsync-dev/refsync/internal/config"
	"github.com/refsync-dev/refsync/internal/syncer"
	"github.com/refsync-dev/refsync/internal/workspace"
)

// runPipeline is the same path the check/write commands take: discover,
// list through the package manager, sync.
func runPipeline(t *testing.T, mode syncer.Mode) *syncer.Result {
	t.Helper()
	config.Load()

	root, err := workspace.Discover()
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	ws, err := workspace.List(root)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	result, err := syncer.Run(ws, config.TSConfigName(), mode)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	return result
}

func TestEndToEnd_WriteThenCheck(t *testing.T) {
	env := setupTestEnv(t)
	composite := `{"compilerOptions": {"composite": true}}`
	env.setListing(t,
		`{"location":".","name":"ws-root","workspaceDependencies":[],"mismatchedWorkspaceDependencies":[]}`,
		env.addPackage(t, "a", "packages/a", composite),
		env.addPackage(t, "b", "packages/b", composite, "a"),
	)

	result := runPipeline(t, syncer.Write)
	if !result.Changed() {
		t.Fatal("first write reports nothing to do")
	}

	b := env.readFile(t, "packages/b/tsconfig.json")
	if !strings.Contains(b, `"../a"`) {
		t.Errorf("b does not reference a:\n%s", b)
	}
	root := env.readFile(t, "tsconfig.json")
	if !strings.Contains(root, "packages/a/tsconfig.json") || !strings.Contains(root, "packages/b/tsconfig.json") {
		t.Errorf("root hub incomplete:\n%s", root)
	}

	if result := runPipeline(t, syncer.Check); result.Changed() {
		t.Error("check reports drift immediately after write")
	}
	if result := runPipeline(t, syncer.Write); result.Changed() {
		t.Error("second write reports changes")
	}
}

func TestEndToEnd_ListingDrivesReferences(t *testing.T) {
	env := setupTestEnv(t)
	composite := `{"compilerOptions": {"composite": true}}`
	env.setListing(t,
		env.addPackage(t, "a", "packages/a", composite),
		env.addPackage(t, "b", "packages/b", composite, "a"),
	)
	runPipeline(t, syncer.Write)

	// The dependency edge b→a disappears from the listing; write must
	// drop the reference.
	env.setListing(t,
		env.addPackage(t, "a", "packages/a", ""),
		env.addPackage(t, "b", "packages/b", ""),
	)
	result := runPipeline(t, syncer.Write)
	if !result.Changed() {
		t.Fatal("edge removal not detected")
	}
	b := env.readFile(t, "packages/b/tsconfig.json")
	if strings.Contains(b, `"../a"`) {
		t.Errorf("stale reference survived:\n%s", b)
	}
}

func TestEndToEnd_MalformedListingFails(t *testing.T) {
	env := setupTestEnv(t)
	env.setListing(t, `{"name":"a"}`)
	config.Load()

	root, err := workspace.Discover()
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}
	if _, err := workspace.List(root); err == nil {
		t.Fatal("expected error for schema-invalid listing record")
	}
}
