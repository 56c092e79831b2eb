package scenario

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Dir is where on-disk scenarios override the embedded ones.
var Dir = "scenario"

//go:embed *.yaml
var SpecsFS embed.FS

//go:embed scripts/*.tengo
var ScriptsFS embed.FS

// Load reads, parses and validates the named scenario.
func Load(name string) (*Spec, error) {
	data, err := Read(name)
	if err != nil {
		return nil, fmt.Errorf("scenario: load %s: %w", name, err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cleanSpecPath(name), err)
	}
	return spec, nil
}

// Read returns the raw scenario, preferring a copy on disk under Dir.
func Read(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return SpecsFS.ReadFile(clean)
}

// ReadScript returns a tengo script, preferring a copy on disk under Dir.
func ReadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return ScriptsFS.ReadFile(clean)
}

// Names lists the embedded scenarios without extension.
func Names() []string {
	entries, err := fs.Glob(SpecsFS, "*.yaml")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e, ".yaml"))
	}
	sort.Strings(names)
	return names
}

func cleanSpecPath(name string) string {
	if name == "" {
		return ""
	}
	s := path.Base(filepath.ToSlash(name))
	if ext := path.Ext(s); ext != ".yaml" && ext != ".yml" {
		s += ".yaml"
	}
	return s
}

func cleanScriptPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "scenario/")
	s = strings.TrimPrefix(s, "scripts/")
	return "scripts/" + s
}

func diskPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
