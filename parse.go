package datamodel

import (
	"fmt"
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Parse runs the external SDL parser on the given source text and builds the
// resolved model. A nil policy falls back to DefaultPolicy.
func Parse(src string, p *Policy) (*Model, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphql", Input: src})
	if err != nil {
		return nil, fmt.Errorf("datamodel: parse schema: %w", err)
	}
	return ParseDocument(doc, p)
}

// ParseDocument builds the resolved model from an already-parsed document.
// A nil policy falls back to DefaultPolicy.
//
// Object types are collected in document order, enums appended after them,
// and the combined list sorted by name before resolution. Duplicate type
// names are not validated.
func ParseDocument(doc *ast.SchemaDocument, p *Policy) (*Model, error) {
	if p == nil {
		p = DefaultPolicy()
	}
	var types []*Type
	for _, def := range doc.Definitions {
		if def.Kind != ast.Object {
			continue
		}
		t, err := buildObject(def, p)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	for _, def := range doc.Definitions {
		if def.Kind == ast.Enum {
			types = append(types, buildEnum(def))
		}
	}
	sort.SliceStable(types, func(i, j int) bool {
		return types[i].Name < types[j].Name
	})
	m := &Model{Types: types}
	if err := resolveRelations(m); err != nil {
		return nil, err
	}
	return m, nil
}
