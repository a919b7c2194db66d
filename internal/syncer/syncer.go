// Package syncer computes the project references each config file should
// declare and compares that against the text on disk. A package references
// exactly its composite workspace dependencies; the root references every
// package that owns a config file at all. Comparison is byte-exact against
// the formatter's output, so formatting drift counts as drift.
package syncer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/iter"
	"github.com/tidwall/sjson"

	"github.com/refsync-dev/refsync/internal/format"
	"github.com/refsync-dev/refsync/internal/tsconfig"
	"github.com/refsync-dev/refsync/internal/workspace"
)

// Reference is one entry of a config's references array.
type Reference struct {
	Path string `json:"path"`
}

// rootConfig is the full shape of the root config file. The root is a pure
// reference hub: it compiles nothing itself, and any other fields it held
// are discarded on rewrite.
type rootConfig struct {
	Files      []string    `json:"files"`
	References []Reference `json:"references"`
}

type syncJob struct {
	pkg  *workspace.Package
	desc tsconfig.Descriptor
}

// Run probes every package, syncs each config, then syncs the root.
// Probes and per-package syncs fan out concurrently; each phase completes
// before the next begins. Any I/O or parse failure aborts the run — in
// Write mode that can leave the workspace partially updated, which is
// accepted for a tool that is simply rerun.
func Run(ws *workspace.Workspace, tsconfigName string, mode Mode) (*Result, error) {
	descs, err := iter.MapErr(ws.Packages, func(pkg *workspace.Package) (tsconfig.Descriptor, error) {
		return tsconfig.Probe(ws.Root, pkg.Location, tsconfigName)
	})
	if err != nil {
		return nil, err
	}

	// Only composite packages may be referenced by others.
	composite := make(map[string]bool, len(descs))
	for i, desc := range descs {
		if desc.Composite {
			composite[ws.Packages[i].Location] = true
		}
	}

	jobs := make([]syncJob, len(ws.Packages))
	for i := range ws.Packages {
		jobs[i] = syncJob{pkg: &ws.Packages[i], desc: descs[i]}
	}
	outcomes, err := iter.MapErr(jobs, func(job *syncJob) (Outcome, error) {
		return syncPackage(ws, composite, job.pkg, job.desc, mode)
	})
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, o := range outcomes {
		if o.State == StateSkipped {
			continue
		}
		result.Packages = append(result.Packages, o)
	}

	result.Root, err = syncRoot(ws, tsconfigName, descs, mode)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// syncPackage replaces the references field of one package's config with its
// target list and compares the rendered result against the file as read.
func syncPackage(ws *workspace.Workspace, composite map[string]bool, pkg *workspace.Package, desc tsconfig.Descriptor, mode Mode) (Outcome, error) {
	if !desc.Exists() {
		return Outcome{Name: pkg.Name, State: StateSkipped}, nil
	}

	refs := make([]Reference, 0, len(pkg.Dependencies))
	for _, name := range pkg.Dependencies {
		dep := ws.Lookup(name)
		if dep == nil {
			continue
		}
		// A package never references itself, and only composite
		// dependencies are reference targets.
		if dep.Location == pkg.Location || !composite[dep.Location] {
			continue
		}
		rel, err := filepath.Rel(pkg.Location, dep.Location)
		if err != nil {
			return Outcome{}, fmt.Errorf("relativizing %s from %s: %w", dep.Location, pkg.Location, err)
		}
		refs = append(refs, Reference{Path: filepath.ToSlash(rel)})
	}

	refsJSON, err := json.Marshal(refs)
	if err != nil {
		return Outcome{}, fmt.Errorf("encoding references for %s: %w", pkg.Name, err)
	}

	// Wholesale replacement of the references field; every other field and
	// its position in the file survive the rewrite.
	updated, err := sjson.SetRawBytes(desc.Raw, "references", refsJSON)
	if err != nil {
		return Outcome{}, fmt.Errorf("updating references in %s: %w", desc.Path, err)
	}

	return compare(desc.Path, pkg.Name, desc.Raw, updated, ws.Root, mode)
}

// syncRoot rebuilds the root config as {files: [], references: [...]} with
// one entry per package that owns a config file, composite or not.
func syncRoot(ws *workspace.Workspace, tsconfigName string, descs []tsconfig.Descriptor, mode Mode) (Outcome, error) {
	refs := make([]Reference, 0, len(descs))
	for _, desc := range descs {
		if !desc.Exists() {
			continue
		}
		rel, err := filepath.Rel(ws.Root, desc.Path)
		if err != nil {
			return Outcome{}, fmt.Errorf("relativizing %s: %w", desc.Path, err)
		}
		refs = append(refs, Reference{Path: filepath.ToSlash(rel)})
	}

	target, err := json.Marshal(rootConfig{Files: []string{}, References: refs})
	if err != nil {
		return Outcome{}, fmt.Errorf("encoding root config: %w", err)
	}

	rootPath := filepath.Join(ws.Root, tsconfigName)
	current, err := os.ReadFile(rootPath)
	if err != nil && !os.IsNotExist(err) {
		return Outcome{}, fmt.Errorf("reading %s: %w", rootPath, err)
	}

	return compare(rootPath, "", current, target, ws.Root, mode)
}

// compare renders the target text in the resolved style and decides the
// outcome. In Write mode an out-of-sync file is overwritten in place.
func compare(path, name string, current, target []byte, root string, mode Mode) (Outcome, error) {
	style, err := format.Resolve(filepath.Dir(path), root)
	if err != nil {
		return Outcome{}, err
	}
	rendered := style.Render(target)

	out := Outcome{Name: name, Path: path}
	if bytes.Equal(current, rendered) {
		out.State = StateInSync
		return out, nil
	}

	if mode == Check {
		out.State = StateWouldWrite
		return out, nil
	}

	if err := os.WriteFile(path, rendered, 0644); err != nil {
		return Outcome{}, fmt.Errorf("writing %s: %w", path, err)
	}
	out.State = StateWritten
	return out, nil
}
