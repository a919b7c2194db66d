package syncer

// Mode selects between reporting drift and fixing it.
type Mode int

const (
	// Check compares only; nothing on disk changes.
	Check Mode = iota
	// Write overwrites any out-of-sync config with its target text.
	Write
)

// State is the per-config comparison result.
type State int

const (
	// StateSkipped means the package has no config file. Skipped packages
	// are not reported in Result.Packages.
	StateSkipped State = iota
	// StateInSync means the on-disk text already equals the target text.
	StateInSync
	// StateWouldWrite means the text differs and Check mode left it alone.
	StateWouldWrite
	// StateWritten means the text differed and Write mode replaced it.
	StateWritten
)

func (s State) String() string {
	switch s {
	case StateSkipped:
		return "skipped"
	case StateInSync:
		return "in sync"
	case StateWouldWrite:
		return "out of sync"
	case StateWritten:
		return "synced"
	default:
		return "unknown"
	}
}

// Outcome is the result for one config file.
type Outcome struct {
	// Name is the package name, or "" for the workspace root.
	Name string

	// Path is the absolute config file path.
	Path string

	State State
}

// OutOfSync reports whether this config differed from its target.
func (o Outcome) OutOfSync() bool {
	return o.State == StateWouldWrite || o.State == StateWritten
}

// Result aggregates one run.
type Result struct {
	// Packages holds one outcome per package that owns a config file,
	// in workspace enumeration order.
	Packages []Outcome

	// Root is the workspace-root outcome.
	Root Outcome
}

// Changed reports whether anything was (or would have been) rewritten.
func (r *Result) Changed() bool {
	for _, o := range r.Packages {
		if o.OutOfSync() {
			return true
		}
	}
	return r.Root.OutOfSync()
}
