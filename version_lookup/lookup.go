package version_lookup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// dependencySections are the package.json objects searched for a package, in order
var dependencySections = []string{"dependencies", "devDependencies", "peerDependencies", "optionalDependencies"}

// SimpleVersionLookup answers version queries against one package.json
type SimpleVersionLookup struct {
	path     string
	manifest gjson.Result
	found    bool
}

// Load reads the package.json at path. A missing file yields a lookup that knows no packages
func Load(path string) (*SimpleVersionLookup, error) {
	lookup := &SimpleVersionLookup{path: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if !gjson.ValidBytes(content) {
		return nil, fmt.Errorf("invalid JSON in manifest %s", path)
	}

	lookup.manifest = gjson.ParseBytes(content)
	lookup.found = true
	return lookup, nil
}

// FindManifest walks up from dir until it finds a package.json, returning "" when there is none
func FindManifest(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(abs, "package.json")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
}

// Found reports whether a manifest was loaded
func (s *SimpleVersionLookup) Found() bool {
	return s.found
}

// Path returns the manifest path the lookup was created for
func (s *SimpleVersionLookup) Path() string {
	return s.path
}

// GetPackageVersion returns the declared version range of the package an import specifier refers to
func (s *SimpleVersionLookup) GetPackageVersion(specifier string) string {
	if !s.found {
		return ""
	}

	name := PackageName(specifier)
	if name == "" {
		return ""
	}

	for _, section := range dependencySections {
		var version string
		s.manifest.Get(section).ForEach(func(key, value gjson.Result) bool {
			if key.String() == name {
				version = value.String()
				return false
			}
			return true
		})
		if version != "" {
			return version
		}
	}

	return ""
}

// GetAllVersions finds declared versions for several specifiers, skipping undeclared ones
func (s *SimpleVersionLookup) GetAllVersions(specifiers []string) map[string]string {
	versions := make(map[string]string)

	for _, spec := range specifiers {
		if version := s.GetPackageVersion(spec); version != "" {
			versions[spec] = version
		}
	}

	return versions
}

// Undeclared returns the specifiers whose package is missing from the manifest
func (s *SimpleVersionLookup) Undeclared(specifiers []string) []string {
	if !s.found {
		return nil
	}

	var missing []string
	for _, spec := range specifiers {
		if s.GetPackageVersion(spec) == "" {
			missing = append(missing, spec)
		}
	}
	return missing
}

// PackageName reduces an import specifier to the npm package it installs from
func PackageName(specifier string) string {
	spec := strings.TrimPrefix(specifier, "npm:")

	// Skip relative and absolute imports
	if spec == "" || strings.HasPrefix(spec, ".") || strings.HasPrefix(spec, "/") {
		return ""
	}

	parts := strings.Split(spec, "/")
	name := parts[0]

	// Scoped packages keep their scope: @scope/pkg
	if strings.HasPrefix(spec, "@") {
		if len(parts) < 2 {
			return ""
		}
		name = parts[0] + "/" + parts[1]
		return stripVersion(name)
	}

	return stripVersion(name)
}

// stripVersion removes a trailing @version, ignoring a leading scope marker
func stripVersion(name string) string {
	if idx := strings.LastIndex(name, "@"); idx > 0 {
		return name[:idx]
	}
	return name
}
