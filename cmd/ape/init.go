package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"ape/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new ape project",
	Long: `Initialize a new ape project by creating a project manifest (ape.toml)
and a hello-world entry point (src/main.ape). If [path|name] is omitted,
initializes the current directory. If a non-existing name is provided, a
directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine project name from directory basename
	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "ape-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	entryPath := filepath.Join(target, filepath.FromSlash(project.DefaultEntry))
	createdEntry := false
	if _, err := os.Stat(entryPath); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(entryPath), 0o755); err != nil {
			return fmt.Errorf("failed to create source directory: %w", err)
		}
		if err := os.WriteFile(entryPath, []byte(defaultMainApe()), 0o600); err != nil {
			return fmt.Errorf("failed to write %s: %w", project.DefaultEntry, err)
		}
		createdEntry = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized ape project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestName)
	if createdEntry {
		fmt.Fprintf(os.Stdout, "  - %s\n", project.DefaultEntry)
	} else {
		fmt.Fprintf(os.Stdout, "  - %s (existing)\n", project.DefaultEntry)
	}
	return nil
}

// buildDefaultManifest returns a minimal TOML manifest for an ape project
// using the provided project name.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# Ape project manifest
[project]
name = "%s"
version = "0.1.0"
entry = "%s"
`, name, project.DefaultEntry)
}

// defaultMainApe returns the placeholder program written into new projects.
func defaultMainApe() string {
	return `// Ape hello world (placeholder)

func greet(name: string) -> string {
    return "Hello, " + name + "!";
}

func main() -> void {
    let message: string = greet("ape");
    println(message);
}
`
}
