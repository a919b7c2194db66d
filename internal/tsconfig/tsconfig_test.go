package tsconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, root, location, content string) {
	t.Helper()
	dir := filepath.Join(root, location)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestProbe_Absent(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "packages", "a"), 0755); err != nil {
		t.Fatal(err)
	}

	desc, err := Probe(root, "packages/a", "tsconfig.json")
	if err != nil {
		t.Fatalf("Probe error: %v", err)
	}
	if desc.Exists() {
		t.Errorf("Exists() = true for absent file")
	}
	if desc.Composite {
		t.Errorf("Composite = true for absent file")
	}
}

func TestProbe_Composite(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		composite bool
	}{
		{"composite true", `{"compilerOptions": {"composite": true}}`, true},
		{"composite false", `{"compilerOptions": {"composite": false}}`, false},
		{"composite absent", `{"compilerOptions": {}}`, false},
		{"no compiler options", `{"references": []}`, false},
		{"truthy string", `{"compilerOptions": {"composite": "true"}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeConfig(t, root, "packages/a", tt.content)

			desc, err := Probe(root, "packages/a", "tsconfig.json")
			if err != nil {
				t.Fatalf("Probe error: %v", err)
			}
			if !desc.Exists() {
				t.Fatal("Exists() = false, want true")
			}
			if desc.Composite != tt.composite {
				t.Errorf("Composite = %t, want %t", desc.Composite, tt.composite)
			}
		})
	}
}

func TestProbe_InvalidJSON(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "packages/a", "{not json at all")

	if _, err := Probe(root, "packages/a", "tsconfig.json"); err == nil {
		t.Fatal("expected error for invalid JSON, got nil")
	}
}

func TestProbe_KeepsRawBytes(t *testing.T) {
	root := t.TempDir()
	content := `{"compilerOptions": {"composite": true}, "references": []}`
	writeConfig(t, root, "packages/a", content)

	desc, err := Probe(root, "packages/a", "tsconfig.json")
	if err != nil {
		t.Fatalf("Probe error: %v", err)
	}
	if string(desc.Raw) != content {
		t.Errorf("Raw = %q, want file content verbatim", desc.Raw)
	}
}
