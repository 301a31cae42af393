package datamodel

import "github.com/vektah/gqlparser/v2/ast"

// Policy supplies the project-specific conventions the pipeline delegates:
// which raw field nodes are identity or timestamp fields, and which raw type
// nodes are embedded. Predicates operate on the unparsed syntax nodes so that
// callers can key off names, directives, or both. A nil predicate classifies
// nothing.
type Policy struct {
	IsIdentityField  func(*ast.FieldDefinition) bool
	IsCreatedAtField func(*ast.FieldDefinition) bool
	IsUpdatedAtField func(*ast.FieldDefinition) bool
	IsEmbeddedType   func(*ast.Definition) bool
}

// DefaultPolicy implements the common conventions: identity fields carry the
// @id directive or are named "id"; timestamp fields carry the @createdAt or
// @updatedAt directive or pair the conventional name with the DateTime type;
// embedded types carry the @embedded directive.
func DefaultPolicy() *Policy {
	return &Policy{
		IsIdentityField: func(def *ast.FieldDefinition) bool {
			return hasDirective(def.Directives, directiveID) || def.Name == "id"
		},
		IsCreatedAtField: timestampPredicate(directiveCreatedAt, "createdAt"),
		IsUpdatedAtField: timestampPredicate(directiveUpdatedAt, "updatedAt"),
		IsEmbeddedType: func(def *ast.Definition) bool {
			return hasDirective(def.Directives, directiveEmbedded)
		},
	}
}

func timestampPredicate(directive, name string) func(*ast.FieldDefinition) bool {
	return func(def *ast.FieldDefinition) bool {
		if hasDirective(def.Directives, directive) {
			return true
		}
		return def.Name == name && innermostName(def.Type) == "DateTime"
	}
}

func (p *Policy) identity(def *ast.FieldDefinition) bool {
	return p.IsIdentityField != nil && p.IsIdentityField(def)
}

func (p *Policy) createdAt(def *ast.FieldDefinition) bool {
	return p.IsCreatedAtField != nil && p.IsCreatedAtField(def)
}

func (p *Policy) updatedAt(def *ast.FieldDefinition) bool {
	return p.IsUpdatedAtField != nil && p.IsUpdatedAtField(def)
}

func (p *Policy) embedded(def *ast.Definition) bool {
	return p.IsEmbeddedType != nil && p.IsEmbeddedType(def)
}
