// Package format renders configuration JSON in the workspace's canonical
// style. The syncer compares rendered text byte-for-byte, so whatever this
// package emits is the de facto on-disk standard: identical input and style
// must produce identical output.
package format

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/pretty"
	"go.yaml.in/yaml/v3"
)

// rcFiles are probed in order at each directory level, nearest level wins.
var rcFiles = []string{".prettierrc", ".prettierrc.json", ".prettierrc.yaml", ".prettierrc.yml"}

// Style holds the resolved formatting options.
type Style struct {
	// Indent is the per-level indentation string.
	Indent string
}

// DefaultStyle is two-space indentation, matching the formatter's own default.
var DefaultStyle = Style{Indent: "  "}

// rcConfig is the subset of formatter options this tool honors.
// YAML is a superset of JSON, so one decoder covers both rc spellings.
type rcConfig struct {
	TabWidth *int  `yaml:"tabWidth"`
	UseTabs  *bool `yaml:"useTabs"`
}

// Resolve walks from dir up to stop (inclusive) looking for a formatter
// config file. Absent config yields DefaultStyle; a config file that exists
// but cannot be parsed fails the run.
func Resolve(dir, stop string) (Style, error) {
	dir = filepath.Clean(dir)
	stop = filepath.Clean(stop)
	for {
		for _, name := range rcFiles {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					continue
				}
				return Style{}, fmt.Errorf("reading %s: %w", path, err)
			}
			return parseRC(path, data)
		}
		if dir == stop {
			return DefaultStyle, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultStyle, nil
		}
		dir = parent
	}
}

func parseRC(path string, data []byte) (Style, error) {
	var rc rcConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return Style{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	style := DefaultStyle
	if rc.UseTabs != nil && *rc.UseTabs {
		style.Indent = "\t"
	} else if rc.TabWidth != nil && *rc.TabWidth > 0 {
		style.Indent = strings.Repeat(" ", *rc.TabWidth)
	}
	return style, nil
}

// Render reformats JSON text in the given style. Output always ends with a
// single newline.
func (s Style) Render(data []byte) []byte {
	indent := s.Indent
	if indent == "" {
		indent = DefaultStyle.Indent
	}
	return pretty.PrettyOptions(data, &pretty.Options{
		Width:  80,
		Indent: indent,
	})
}
