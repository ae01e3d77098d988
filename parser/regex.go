package parser

import "regexp"

// importPattern matches one import statement per line: an optional type-only
// qualifier, a binding clause and a quoted module specifier.
var importPattern = regexp.MustCompile(`(?m)^import(\s+type)?\s+([^\n]+?)\s+from\s+['"]([^'"]+)['"]`)

// RegexExtractor finds import statements with a line-anchored regular expression.
// Statements the pattern does not recognise are skipped without error.
type RegexExtractor struct{}

func NewRegexExtractor() *RegexExtractor {
	return &RegexExtractor{}
}

func (e *RegexExtractor) Name() string {
	return ExtractorRegex
}

func (e *RegexExtractor) ExtractImports(source []byte) ([]ImportReference, error) {
	imports := []ImportReference{}

	for _, match := range importPattern.FindAllSubmatch(source, -1) {
		if len(match) < 4 {
			continue
		}
		imports = append(imports, ImportReference{
			Specifier: string(match[3]),
			Bindings:  string(match[2]),
			TypeOnly:  len(match[1]) > 0,
		})
	}

	return imports, nil
}
