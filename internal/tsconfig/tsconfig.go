// Package tsconfig probes per-package compiler configuration files. Only two
// facts matter to the syncer: whether the file exists, and whether it marks
// the package composite. The raw bytes are kept for the later text comparison.
package tsconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// compositePath is the only field read from a config file.
const compositePath = "compilerOptions.composite"

// Descriptor is the probe result for one package.
type Descriptor struct {
	// Path is the absolute config file path, or "" if the file is absent.
	Path string

	// Composite reports whether the file declares itself referenceable.
	// False whenever Path is "".
	Composite bool

	// Raw holds the file content as read, "" semantics excluded.
	Raw []byte
}

// Exists reports whether the package has a config file at all.
func (d Descriptor) Exists() bool {
	return d.Path != ""
}

// Probe stats root/location/filename and, when present, parses it. A file
// that exists but is not valid JSON fails the whole run.
func Probe(root, location, filename string) (Descriptor, error) {
	path := filepath.Join(root, location, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Descriptor{}, nil
		}
		return Descriptor{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return Descriptor{}, fmt.Errorf("parsing %s: invalid JSON", path)
	}

	return Descriptor{
		Path:      path,
		Composite: gjson.GetBytes(data, compositePath).Bool(),
		Raw:       data,
	}, nil
}
