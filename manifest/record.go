// Package manifest turns dependency closures into the per-hook JSON records
// used to scaffold redistributable hook packages.
package manifest

import "github.com/hannajonsd/hookdeps/resolver"

// File is one entry of a record's file list.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Record is the persisted manifest of one hook.
type Record struct {
	Title        string   `json:"title"`
	Files        []File   `json:"files"`
	Dependencies []string `json:"dependencies,omitempty"`
}

// NewRecord builds the record for a resolved closure. The dependency list is
// left nil when the closure has no external dependencies so it is omitted.
func NewRecord(closure *resolver.Closure) *Record {
	files := make([]File, 0, len(closure.Files))
	for _, f := range closure.Files {
		files = append(files, File{Name: f.Name, Content: f.Content})
	}

	var deps []string
	if len(closure.Dependencies) > 0 {
		deps = append(deps, closure.Dependencies...)
	}

	return &Record{
		Title:        closure.Unit,
		Files:        files,
		Dependencies: deps,
	}
}
