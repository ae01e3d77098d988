package analyzer

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// GitignoreParser decides which entries of a directory are excluded by its .gitignore
type GitignoreParser struct {
	rootDir          string
	ignorePatterns   []string
	negationPatterns []string
}

// NewGitignoreParser loads rootDir/.gitignore. A missing file ignores nothing
func NewGitignoreParser(rootDir string) (*GitignoreParser, error) {
	parser := &GitignoreParser{
		rootDir: rootDir,
	}
	if err := parser.loadGitignore(); err != nil {
		return nil, err
	}
	return parser, nil
}

// loadGitignore reads and parses the .gitignore file
func (gp *GitignoreParser) loadGitignore() error {
	gitignorePath := filepath.Join(gp.rootDir, ".gitignore")
	file, err := os.Open(gitignorePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", gitignorePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "!") {
			gp.negationPatterns = append(gp.negationPatterns, strings.TrimPrefix(line, "!"))
		} else {
			gp.ignorePatterns = append(gp.ignorePatterns, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", gitignorePath, err)
	}
	return nil
}

// Patterns returns the number of ignore and negation patterns loaded
func (gp *GitignoreParser) Patterns() (ignore, negate int) {
	return len(gp.ignorePatterns), len(gp.negationPatterns)
}

// ShouldIgnore checks if a path inside rootDir is excluded
func (gp *GitignoreParser) ShouldIgnore(p string, isDir bool) bool {
	relPath, err := filepath.Rel(gp.rootDir, p)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	ignored := false
	for _, pattern := range gp.ignorePatterns {
		if gp.matchPattern(pattern, relPath, isDir) {
			ignored = true
			break
		}
	}

	if ignored {
		for _, pattern := range gp.negationPatterns {
			if gp.matchPattern(pattern, relPath, isDir) {
				return false
			}
		}
	}

	return ignored
}

// matchPattern checks if a slash separated relative path matches a gitignore pattern
func (gp *GitignoreParser) matchPattern(pattern, relPath string, isDir bool) bool {
	if strings.HasSuffix(pattern, "/") {
		if !isDir {
			return false
		}
		pattern = strings.TrimSuffix(pattern, "/")
	}

	// Anchored patterns only match from the root
	if strings.HasPrefix(pattern, "/") || strings.Contains(strings.TrimPrefix(pattern, "/"), "/") {
		return matchGlob(strings.TrimPrefix(pattern, "/"), relPath)
	}

	// Unanchored patterns match any path segment
	for _, part := range strings.Split(relPath, "/") {
		if matchGlob(pattern, part) {
			return true
		}
	}
	return false
}

// matchGlob handles *, **, ?, braces and character classes; malformed patterns never match
func matchGlob(pattern, text string) bool {
	matched, err := doublestar.Match(pattern, text)
	return err == nil && matched
}
