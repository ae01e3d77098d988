// Package sidebar derives the documentation site's navigation from the hook
// directory listing, along with the markdown fragments shown on hook pages.
package sidebar

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

var (
	upperLetter = regexp.MustCompile(`[A-Z]`)
	dashLetter  = regexp.MustCompile(`-([a-z])`)
)

// Item links one hook page.
type Item struct {
	Text string `json:"text" yaml:"text"`
	Link string `json:"link" yaml:"link"`
}

// Sidebar is one navigation group.
type Sidebar struct {
	Text  string `json:"text" yaml:"text"`
	Items []Item `json:"items" yaml:"items"`
}

// Build creates the group for units. An empty title is derived from dir.
func Build(title, dir string, units []string, linkPrefix string) *Sidebar {
	if title == "" {
		title = cases.Title(language.English).String(filepath.Base(filepath.Clean(dir)))
	}

	items := make([]Item, 0, len(units))
	for _, unit := range units {
		items = append(items, Item{Text: unit, Link: linkPrefix + CamelToKebab(unit)})
	}

	return &Sidebar{Text: title, Items: items}
}

// Marshal encodes the sidebar as "yaml" or "json".
func (s *Sidebar) Marshal(format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal([]*Sidebar{s})
	case "json":
		data, err := json.MarshalIndent([]*Sidebar{s}, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported sidebar format %q", format)
	}
}

// CamelToKebab turns useClickAnyWhere into use-click-any-where.
func CamelToKebab(s string) string {
	return upperLetter.ReplaceAllStringFunc(s, func(letter string) string {
		return "-" + strings.ToLower(letter)
	})
}

// KebabToCamel is the inverse of CamelToKebab.
func KebabToCamel(s string) string {
	return dashLetter.ReplaceAllStringFunc(s, func(match string) string {
		return strings.ToUpper(match[1:])
	})
}
