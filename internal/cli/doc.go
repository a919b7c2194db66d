// Package cli wires the cobra command tree. Each command lives in its own
// file and registers itself with the root command in init().
package cli
