// Package workspace discovers the workspace root and enumerates its packages
// by invoking the package manager's listing command. Each listing record is
// validated against an embedded JSON Schema before use, so malformed manager
// output fails the run with a field-level message instead of a zero-valued
// package sneaking into the sync.
package workspace
