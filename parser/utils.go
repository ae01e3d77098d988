package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrUnsupportedExtractor is returned by NewExtractor for unknown backend names
var ErrUnsupportedExtractor = errors.New("unsupported import extractor")

// Extractor backend names accepted by NewExtractor
const (
	ExtractorRegex      = "regex"
	ExtractorTreeSitter = "treesitter"
)

// NewExtractor creates the import extractor registered under name
func NewExtractor(name string) (ImportExtractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ExtractorRegex:
		return NewRegexExtractor(), nil
	case ExtractorTreeSitter, "tree-sitter":
		return NewTypeScriptParser()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedExtractor, name)
	}
}

// DeduplicateStrings removes duplicate strings from a slice while preserving order
func DeduplicateStrings(strs []string) []string {
	seen := make(map[string]bool)
	result := []string{}

	for _, s := range strs {
		if !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	return result
}

// ExtractStringValue removes quotes from string literals in AST nodes
func ExtractStringValue(node *sitter.Node, source []byte) string {
	text := string(source[node.StartByte():node.EndByte()])
	if len(text) >= 2 && (text[0] == '"' || text[0] == '\'' || text[0] == '`') {
		text = text[1 : len(text)-1]
	}
	return text
}

// WalkAST recursively traverses an AST and applies a visitor function to each node
func WalkAST(node *sitter.Node, source []byte, visitor func(*sitter.Node)) {
	visitor(node)

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		WalkAST(child, source, visitor)
	}
}

// ParseSource parses an in-memory source unit with the configured grammar
func (bp *BaseParser) ParseSource(source []byte) (*ParseResult, error) {
	tree, err := bp.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s source: %w", bp.langName, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s source", bp.langName)
	}

	return &ParseResult{
		Tree:     tree,
		Source:   source,
		Language: bp.langName,
	}, nil
}

// GetLanguage returns the language name for this parser
func (bp *BaseParser) GetLanguage() string {
	return bp.langName
}
