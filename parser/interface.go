package parser

import sitter "github.com/smacker/go-tree-sitter"

// ImportExtractor defines the interface for pulling import statements out of a hook source unit
type ImportExtractor interface {
	Name() string
	ExtractImports(source []byte) ([]ImportReference, error)
}

// BaseParser provides the tree-sitter state shared by AST backed extractors
type BaseParser struct {
	parser   *sitter.Parser
	language *sitter.Language
	langName string
}

// ParseResult contains the parsed AST and metadata for a source unit
type ParseResult struct {
	Tree     *sitter.Tree
	Source   []byte
	Language string
}

// ImportReference represents a single import statement found in a source unit
type ImportReference struct {
	Specifier string // "./useBar", "lodash", "@/lib/utils", etc.
	Bindings  string // "{ useState, useEffect }", "React", "* as z"
	TypeOnly  bool   // import type { Foo } from "..."
}
