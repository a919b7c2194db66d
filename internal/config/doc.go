// Package config manages tool settings resolved from the environment and an
// optional user-level file at ~/.refsync/config.yaml. Every key has a default,
// so the tool runs with no configuration at all in the common case.
package config
