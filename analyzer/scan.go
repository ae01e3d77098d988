package analyzer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hannajonsd/hookdeps/resolver"
)

// ListUnits returns the names of the hook units directly inside dir, sorted.
// Only files named <prefix><identifier><ext> count; subdirectories are not
// scanned and entries excluded by dir/.gitignore are skipped.
func ListUnits(dir, prefix, ext string, logger *log.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list hooks directory %s: %w", dir, err)
	}

	ignore, err := NewGitignoreParser(dir)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		ignored, negated := ignore.Patterns()
		logger.Debug("loaded .gitignore", "dir", dir, "patterns", ignored, "negations", negated)
	}

	hookName := resolver.HookNamePattern(prefix)
	units := []string{}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}

		base := strings.TrimSuffix(name, ext)
		if match := hookName.FindString(base); match != base {
			continue
		}

		if ignore.ShouldIgnore(filepath.Join(dir, name), false) {
			if logger != nil {
				logger.Debug("skipping ignored unit", "file", name)
			}
			continue
		}

		units = append(units, base)
	}

	return units, nil
}
