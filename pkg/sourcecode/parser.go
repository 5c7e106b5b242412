// Package sourcecode extracts type declarations and identifier references
// from script sources using tree-sitter.
package sourcecode

import (
	"context"
	"regexp"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/avral/scriptscan/pkg/asset"
)

// Declaration describes the first type declared by a script source file.
type Declaration struct {
	ClassName string
	BaseTypes []string
}

// Parser extracts declarations and references from script sources.
// Not safe for concurrent use; each goroutine needs its own instance.
type Parser struct {
	parser *sitter.Parser
}

// NewParser creates a parser configured for the C# grammar.
func NewParser() *Parser {
	p := sitter.NewParser()
	p.SetLanguage(csharp.GetLanguage())
	return &Parser{parser: p}
}

var (
	classQueryOnce sync.Once
	classQuery     *sitter.Query
	classQueryErr  error

	identQueryOnce sync.Once
	identQuery     *sitter.Query
	identQueryErr  error
)

func getClassQuery() (*sitter.Query, error) {
	classQueryOnce.Do(func() {
		classQuery, classQueryErr = sitter.NewQuery(
			[]byte(`(class_declaration) @decl`), csharp.GetLanguage())
	})
	return classQuery, classQueryErr
}

func getIdentifierQuery() (*sitter.Query, error) {
	identQueryOnce.Do(func() {
		identQuery, identQueryErr = sitter.NewQuery(
			[]byte(`(identifier) @id`), csharp.GetLanguage())
	})
	return identQuery, identQueryErr
}

// Declaration parses a C# source file and returns its first class
// declaration. Sources declaring no class return ErrNoDeclaration.
func (p *Parser) Declaration(source []byte) (Declaration, error) {
	if len(source) == 0 {
		return Declaration{}, ErrNoDeclaration
	}

	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return Declaration{}, err
	}
	defer tree.Close()

	query, err := getClassQuery()
	if err != nil {
		return Declaration{}, err
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range match.Captures {
			decl, ok := declarationFromNode(c.Node, source)
			if ok {
				return decl, nil
			}
		}
	}

	return Declaration{}, ErrNoDeclaration
}

// declarationFromNode extracts the class name and base type names from a
// class_declaration node.
func declarationFromNode(node *sitter.Node, source []byte) (Declaration, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return Declaration{}, false
	}

	decl := Declaration{ClassName: nodeText(nameNode, source)}

	if bases := baseListChild(node); bases != nil {
		for i := 0; i < int(bases.NamedChildCount()); i++ {
			base := bases.NamedChild(i)
			if base == nil {
				continue
			}
			decl.BaseTypes = append(decl.BaseTypes, baseTypeName(base, source))
		}
	}

	return decl, true
}

// baseListChild finds the base_list node of a class_declaration. The
// grammar attaches it without a field name, so it is located by type.
func baseListChild(node *sitter.Node) *sitter.Node {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child != nil && child.Type() == "base_list" {
			return child
		}
	}
	return nil
}

// baseTypeName reduces a base-list entry to its rightmost simple name, so
// `UnityEngine.MonoBehaviour` and `MonoBehaviour` compare equal.
func baseTypeName(node *sitter.Node, source []byte) string {
	if node.Type() == "qualified_name" {
		if name := node.ChildByFieldName("name"); name != nil {
			return baseTypeName(name, source)
		}
	}
	if node.Type() == "generic_name" {
		for i := 0; i < int(node.NamedChildCount()); i++ {
			child := node.NamedChild(i)
			if child != nil && child.Type() == "identifier" {
				return nodeText(child, source)
			}
		}
	}
	return nodeText(node, source)
}

// Identifiers returns the set of distinct identifiers referenced in the
// source. C# sources are parsed with tree-sitter; the legacy dialects fall
// back to a lexical word scan.
func (p *Parser) Identifiers(language asset.Language, source []byte) (map[string]struct{}, error) {
	if language != asset.LanguageCSharp {
		return wordIdentifiers(source), nil
	}

	tree, err := p.parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	query, err := getIdentifierQuery()
	if err != nil {
		return nil, err
	}

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	idents := make(map[string]struct{})
	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		for _, c := range match.Captures {
			idents[nodeText(c.Node, source)] = struct{}{}
		}
	}

	return idents, nil
}

var wordRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// wordIdentifiers lexically scans a source for identifier-shaped words.
func wordIdentifiers(source []byte) map[string]struct{} {
	idents := make(map[string]struct{})
	for _, word := range wordRe.FindAll(source, -1) {
		idents[string(word)] = struct{}{}
	}
	return idents
}

func nodeText(node *sitter.Node, source []byte) string {
	return string(source[node.StartByte():node.EndByte()])
}
