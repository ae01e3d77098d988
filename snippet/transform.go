// Package snippet rewrites hook sources into the form shipped to consumers of
// the published hooks package.
package snippet

import (
	"regexp"
	"strings"
)

var (
	// relativeNamedImport matches `import { a, b } from './useX'` and `'../useX'`.
	relativeNamedImport = regexp.MustCompile(`import \{ ([^}]+) \} from ['"]\.\.?(/[^'"]+)['"];?`)
	jsDocComment        = regexp.MustCompile(`/\*\*\s*[\s\S]*?\*/\n?`)
)

const eslintDisablePrefix = "// eslint-disable-next-line"

// TransformImports folds every relative named import into a single import
// from packageName, placed where the first relative import was.
func TransformImports(source, packageName string) string {
	matches := relativeNamedImport.FindAllStringSubmatchIndex(source, -1)
	if len(matches) == 0 {
		return source
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, source[m[2]:m[3]])
	}
	combined := "import { " + strings.Join(names, ", ") + " } from '" + packageName + "'"

	var b strings.Builder
	last := 0
	for i, m := range matches {
		b.WriteString(source[last:m[0]])
		if i == 0 {
			b.WriteString(combined)
		}
		last = m[1]
		// drop the line break left behind by a removed import
		if i > 0 && last < len(source) && source[last] == '\n' {
			last++
		}
	}
	b.WriteString(source[last:])

	return b.String()
}

// RemoveJSDocComments strips /** ... */ blocks.
func RemoveJSDocComments(source string) string {
	return jsDocComment.ReplaceAllString(source, "")
}

// RemoveEslintDisableComments drops eslint-disable-next-line directive lines.
func RemoveEslintDisableComments(source string) string {
	lines := strings.Split(source, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, eslintDisablePrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// Transform applies every rewrite used for published snippets.
func Transform(source, packageName string) string {
	out := RemoveJSDocComments(source)
	out = RemoveEslintDisableComments(out)
	return TransformImports(out, packageName)
}
