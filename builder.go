package datamodel

import "github.com/vektah/gqlparser/v2/ast"

// buildField creates a field descriptor from its declaration node. The type
// reference starts as a bare name; resolution upgrades it later.
func buildField(def *ast.FieldDefinition, p *Policy) (*Field, error) {
	name, list, required, err := fieldModifiers(def.Type)
	if err != nil {
		if serr, ok := err.(*StructuralError); ok {
			serr.Field = def.Name
		}
		return nil, err
	}
	f := &Field{
		Name:        def.Name,
		Type:        NamedRef(name),
		IsList:      list,
		IsRequired:  required,
		IsID:        p.identity(def),
		IsCreatedAt: p.createdAt(def),
		IsUpdatedAt: p.updatedAt(def),
		Default:     directiveArg(findDirective(def.Directives, directiveDefault), "value"),
		Annotations: extraAnnotations(def.Directives),
	}
	f.IsReadOnly = f.IsID || f.IsCreatedAt || f.IsUpdatedAt
	f.IsUnique = f.IsID || hasDirective(def.Directives, directiveUnique)
	f.RelationName = stringArg(findDirective(def.Directives, directiveRelation), "name")
	f.DatabaseName = stringArg(findDirective(def.Directives, directiveDB), "name")
	return f, nil
}

// buildObject creates a type descriptor from an object declaration.
func buildObject(def *ast.Definition, p *Policy) (*Type, error) {
	t := &Type{
		Name:         def.Name,
		Fields:       make([]*Field, 0, len(def.Fields)),
		IsEmbedded:   p.embedded(def),
		DatabaseName: stringArg(findDirective(def.Directives, directiveDB), "name"),
		Annotations:  extraAnnotations(def.Directives),
	}
	for _, fd := range def.Fields {
		f, err := buildField(fd, p)
		if err != nil {
			if serr, ok := err.(*StructuralError); ok {
				serr.Type = def.Name
			}
			return nil, err
		}
		t.Fields = append(t.Fields, f)
	}
	return t, nil
}

// buildEnum creates a type descriptor from an enum declaration: one synthetic
// scalar field per value, named after the value, with no relational or
// uniqueness flags. Embedding annotations are not recognized on enums.
func buildEnum(def *ast.Definition) *Type {
	t := &Type{
		Name:         def.Name,
		Fields:       make([]*Field, 0, len(def.EnumValues)),
		IsEnum:       true,
		DatabaseName: stringArg(findDirective(def.Directives, directiveDB), "name"),
		Annotations:  extraAnnotations(def.Directives),
	}
	for _, ev := range def.EnumValues {
		t.Fields = append(t.Fields, &Field{
			Name: ev.Name,
			Type: NamedRef("String"),
		})
	}
	return t
}
