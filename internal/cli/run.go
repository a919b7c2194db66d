package cli

import (
	"fmt"

	"github.com/refsync-dev/refsync/internal/config"
	"github.com/refsync-dev/refsync/internal/syncer"
	"github.com/refsync-dev/refsync/internal/workspace"
)

// runSync discovers the workspace, lists its packages, and runs the engine.
func runSync(mode syncer.Mode) (*workspace.Workspace, *syncer.Result, error) {
	root, err := workspace.Discover()
	if err != nil {
		return nil, nil, err
	}

	ws, err := workspace.List(root)
	if err != nil {
		return nil, nil, err
	}

	result, err := syncer.Run(ws, config.TSConfigName(), mode)
	if err != nil {
		return nil, nil, fmt.Errorf("syncing references: %w", err)
	}
	return ws, result, nil
}
