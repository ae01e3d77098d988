// parser/typescript.go - Tree-sitter backed import extraction
package parser

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

type TypeScriptParser struct {
	BaseParser
}

// NewTypeScriptParser creates an import extractor using the tree-sitter TypeScript grammar
func NewTypeScriptParser() (*TypeScriptParser, error) {
	parser := sitter.NewParser()
	language := typescript.GetLanguage()
	parser.SetLanguage(language)

	return &TypeScriptParser{
		BaseParser: BaseParser{
			parser:   parser,
			language: language,
			langName: "typescript",
		},
	}, nil
}

func (p *TypeScriptParser) Name() string {
	return ExtractorTreeSitter
}

// ExtractImports parses source and returns every import statement that has a binding clause
func (p *TypeScriptParser) ExtractImports(source []byte) ([]ImportReference, error) {
	result, err := p.ParseSource(source)
	if err != nil {
		return nil, fmt.Errorf("extract %s imports: %w", p.GetLanguage(), err)
	}
	defer result.Tree.Close()

	root := result.Tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("failed to parse %s source: empty tree", p.GetLanguage())
	}

	imports := []ImportReference{}
	WalkAST(root, source, func(n *sitter.Node) {
		if n.Type() != "import_statement" {
			return
		}
		if imp := p.processImportStatement(n, source); imp != nil {
			imports = append(imports, *imp)
		}
	})

	return imports, nil
}

func (p *TypeScriptParser) processImportStatement(node *sitter.Node, source []byte) *ImportReference {
	var specifier, bindings string
	var typeOnly bool

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)

		switch child.Type() {
		case "type":
			// import type { Foo } from "module"
			typeOnly = true
		case "import_clause":
			bindings = strings.TrimSpace(string(source[child.StartByte():child.EndByte()]))
		case "string":
			specifier = ExtractStringValue(child, source)
		}
	}

	// Side-effect imports carry no binding clause and are not part of the graph
	if specifier == "" || bindings == "" {
		return nil
	}

	return &ImportReference{
		Specifier: specifier,
		Bindings:  bindings,
		TypeOnly:  typeOnly,
	}
}
