package datamodel

import "github.com/vektah/gqlparser/v2/ast"

// Reserved annotation names. They configure the descriptors directly and are
// excluded from the opaque annotation lists exposed to callers.
const (
	directiveDefault   = "default"
	directiveEmbedded  = "embedded"
	directiveDB        = "db"
	directiveCreatedAt = "createdAt"
	directiveUpdatedAt = "updatedAt"
	directiveUnique    = "unique"
	directiveID        = "id"

	// directiveRelation names an explicit relation. It is consumed for the
	// relation name but intentionally not reserved: it still passes through
	// to the annotation list.
	directiveRelation = "relation"
)

var reservedDirectives = map[string]bool{
	directiveDefault:   true,
	directiveEmbedded:  true,
	directiveDB:        true,
	directiveCreatedAt: true,
	directiveUpdatedAt: true,
	directiveUnique:    true,
	directiveID:        true,
}

// findDirective returns the first directive with the given name, or nil.
// Later duplicates are silently ignored.
func findDirective(list ast.DirectiveList, name string) *ast.Directive {
	for _, d := range list {
		if d.Name == name {
			return d
		}
	}
	return nil
}

func hasDirective(list ast.DirectiveList, name string) bool {
	return findDirective(list, name) != nil
}

// directiveArg returns the literal value of the named argument, or nil when
// the directive or argument is absent. Values are taken as written: strings,
// numbers and booleans decode to their Go literals, never an error.
func directiveArg(d *ast.Directive, name string) any {
	if d == nil {
		return nil
	}
	arg := d.Arguments.ForName(name)
	if arg == nil || arg.Value == nil {
		return nil
	}
	v, err := arg.Value.Value(nil)
	if err != nil {
		return nil
	}
	return v
}

// stringArg returns the named argument as a string, or "" when absent or of
// another kind.
func stringArg(d *ast.Directive, name string) string {
	s, _ := directiveArg(d, name).(string)
	return s
}

// extraAnnotations converts all non-reserved directives to opaque
// name+arguments pairs, preserving source order.
func extraAnnotations(list ast.DirectiveList) []Annotation {
	var extra []Annotation
	for _, d := range list {
		if reservedDirectives[d.Name] {
			continue
		}
		args := make(map[string]any, len(d.Arguments))
		for _, arg := range d.Arguments {
			if arg.Value == nil {
				continue
			}
			if v, err := arg.Value.Value(nil); err == nil {
				args[arg.Name] = v
			}
		}
		extra = append(extra, Annotation{Name: d.Name, Arguments: args})
	}
	return extra
}
