package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name of a project manifest.
const ManifestName = "ape.toml"

// DefaultEntry is the entry script used when the manifest omits one.
const DefaultEntry = "src/main.ape"

var (
	// ErrProjectSectionMissing indicates that [project] is missing in a manifest.
	ErrProjectSectionMissing = errors.New("missing [project]")
	// ErrProjectNameMissing indicates that [project].name is missing or blank.
	ErrProjectNameMissing = errors.New("missing [project].name")
)

// Manifest is the parsed ape.toml.
type Manifest struct {
	Name    string
	Version string
	Entry   string
}

type manifestFile struct {
	Project struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
		Entry   string `toml:"entry"`
	} `toml:"project"`
}

// LoadManifest parses an ape.toml [project] section. Entry falls back to
// DefaultEntry when omitted.
func LoadManifest(path string) (Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("project") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectSectionMissing)
	}

	name := strings.TrimSpace(cfg.Project.Name)
	if !meta.IsDefined("project", "name") || name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrProjectNameMissing)
	}

	manifest := Manifest{
		Name:    name,
		Version: strings.TrimSpace(cfg.Project.Version),
		Entry:   strings.TrimSpace(cfg.Project.Entry),
	}
	if manifest.Version == "" {
		manifest.Version = "0.1.0"
	}
	if manifest.Entry == "" {
		manifest.Entry = DefaultEntry
	}
	return manifest, nil
}
