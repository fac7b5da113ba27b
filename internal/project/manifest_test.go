package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadManifest_Full(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
[project]
name = "calc"
version = "1.2.0"
entry = "scripts/calc.ape"
`)

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "calc" || m.Version != "1.2.0" || m.Entry != "scripts/calc.ape" {
		t.Errorf("unexpected manifest: %+v", m)
	}
}

func TestLoadManifest_Defaults(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project]\nname = \"demo\"\n")

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Version != "0.1.0" {
		t.Errorf("expected default version, got %q", m.Version)
	}
	if m.Entry != DefaultEntry {
		t.Errorf("expected default entry, got %q", m.Entry)
	}
}

func TestLoadManifest_MissingSection(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "# empty\n")

	_, err := LoadManifest(path)
	if !errors.Is(err, ErrProjectSectionMissing) {
		t.Errorf("expected ErrProjectSectionMissing, got %v", err)
	}
}

func TestLoadManifest_BlankName(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "[project]\nname = \"  \"\n")

	_, err := LoadManifest(path)
	if !errors.Is(err, ErrProjectNameMissing) {
		t.Errorf("expected ErrProjectNameMissing, got %v", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[project]\nname = \"demo\"\n")

	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	found, ok, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected to find project root")
	}
	resolvedRoot, _ := filepath.EvalSymlinks(root)
	resolvedFound, _ := filepath.EvalSymlinks(found)
	if resolvedFound != resolvedRoot {
		t.Errorf("expected root %q, got %q", resolvedRoot, resolvedFound)
	}
}

func TestFindProjectRoot_NotFound(t *testing.T) {
	_, ok, err := FindProjectRoot(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("expected no project root in empty temp dir")
	}
}
