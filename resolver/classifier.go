package resolver

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hannajonsd/hookdeps/logging"
	"github.com/hannajonsd/hookdeps/parser"
)

// Default framework-level specifiers that never count as dependencies.
var (
	DefaultFrameworkPackages = []string{"react", "react-dom"}
	DefaultAliasRoots        = []string{"@/", "~/"}
)

// DefaultHookPrefix is the naming prefix shared by every hook unit.
const DefaultHookPrefix = "use"

// Classification holds the deduplicated imports of one unit, in first-seen order.
type Classification struct {
	Internal []string
	External []string
	// Dropped lists relative specifiers that do not name a hook unit.
	Dropped []string
}

// ClassifierOptions configures which specifiers are framework-level and how hooks are named.
type ClassifierOptions struct {
	FrameworkPackages []string
	AliasRoots        []string
	HookPrefix        string
}

// Classifier sorts a unit's import specifiers into internal and external references.
type Classifier struct {
	extractor  parser.ImportExtractor
	framework  map[string]bool
	aliasRoots []string
	hookName   *regexp.Regexp
	signature  string
	logger     *log.Logger
}

// NewClassifier creates a classifier; zero-valued options fall back to the defaults.
func NewClassifier(extractor parser.ImportExtractor, opts ClassifierOptions, logger *log.Logger) *Classifier {
	if extractor == nil {
		extractor = parser.NewRegexExtractor()
	}
	if opts.FrameworkPackages == nil {
		opts.FrameworkPackages = DefaultFrameworkPackages
	}
	if opts.AliasRoots == nil {
		opts.AliasRoots = DefaultAliasRoots
	}
	if opts.HookPrefix == "" {
		opts.HookPrefix = DefaultHookPrefix
	}

	framework := make(map[string]bool, len(opts.FrameworkPackages))
	for _, name := range opts.FrameworkPackages {
		framework[name] = true
	}

	signature := strings.Join([]string{
		extractor.Name(),
		opts.HookPrefix,
		strings.Join(slices.Sorted(slices.Values(opts.FrameworkPackages)), ","),
		strings.Join(slices.Sorted(slices.Values(opts.AliasRoots)), ","),
	}, "|")

	return &Classifier{
		extractor:  extractor,
		framework:  framework,
		aliasRoots: opts.AliasRoots,
		hookName:   HookNamePattern(opts.HookPrefix),
		signature:  signature,
		logger:     logging.OrDiscard(logger),
	}
}

// Signature identifies the options that affect classification results.
func (c *Classifier) Signature() string {
	return c.signature
}

// HookNamePattern matches a hook identifier at the start of a path segment.
func HookNamePattern(prefix string) *regexp.Regexp {
	return regexp.MustCompile(`^(` + regexp.QuoteMeta(prefix) + `[a-zA-Z0-9]+)`)
}

// Classify extracts the imports of source and classifies each specifier.
func (c *Classifier) Classify(source []byte) (Classification, error) {
	imports, err := c.extractor.ExtractImports(source)
	if err != nil {
		return Classification{}, fmt.Errorf("extract imports: %w", err)
	}

	var internal, external, dropped []string
	for _, imp := range imports {
		spec := imp.Specifier

		switch {
		case isRelative(spec):
			if name, ok := c.InternalName(spec); ok {
				internal = append(internal, name)
			} else {
				c.logger.Debug("dropping non-hook relative import", "specifier", spec)
				dropped = append(dropped, spec)
			}
		case c.IsFramework(spec):
			continue
		default:
			external = append(external, spec)
		}
	}

	return Classification{
		Internal: parser.DeduplicateStrings(internal),
		External: parser.DeduplicateStrings(external),
		Dropped:  parser.DeduplicateStrings(dropped),
	}, nil
}

// IsFramework reports whether spec names the UI framework itself or a path alias.
func (c *Classifier) IsFramework(spec string) bool {
	for _, root := range c.aliasRoots {
		if strings.HasPrefix(spec, root) {
			return true
		}
	}
	return c.framework[spec]
}

// InternalName infers the hook unit a relative specifier points at.
func (c *Classifier) InternalName(spec string) (string, bool) {
	if !isRelative(spec) {
		return "", false
	}

	segment := spec[strings.LastIndex(spec, "/")+1:]
	match := c.hookName.FindStringSubmatch(segment)
	if match == nil {
		return "", false
	}
	return match[1], true
}

func isRelative(spec string) bool {
	return strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")
}
