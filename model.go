package datamodel

// The following types form the normalized object model produced by Parse.
type (
	// Model is the resolved datamodel: all type declarations of a document,
	// sorted by name. It is built once and not structurally modified after
	// Parse returns.
	Model struct {
		// Types holds all object and enum declarations, name ascending.
		Types []*Type
	}

	// Type represents one named declaration of the document, either an
	// object type or an enum.
	Type struct {
		// Name holds the declared type name.
		Name string
		// Fields holds the fields in declaration order. For enums, it holds
		// one synthetic scalar field per enum value.
		Fields []*Field
		// IsEnum indicates an enum declaration.
		IsEnum bool
		// IsEmbedded indicates an embedded object type, as classified by the
		// Policy. Never set on enums.
		IsEmbedded bool
		// DatabaseName holds the database-name override, or "" if none.
		DatabaseName string
		// Annotations holds the non-reserved annotations in source order.
		Annotations []Annotation
	}

	// Field represents one field declaration of a type.
	Field struct {
		// Name holds the declared field name.
		Name string
		// Type references the field type: a bare scalar name, or a resolved
		// link to the declared Type it names.
		Type TypeRef
		// IsList indicates a list field. A list wrapper anywhere in the
		// modifier chain dominates all other modifiers.
		IsList bool
		// IsRequired indicates a non-null, non-list field.
		IsRequired bool
		// IsUnique indicates a uniqueness constraint. Identity fields are
		// always unique.
		IsUnique bool
		// IsID indicates the identity field, as classified by the Policy.
		IsID bool
		// IsCreatedAt / IsUpdatedAt indicate the builtin timestamp fields,
		// as classified by the Policy.
		IsCreatedAt bool
		IsUpdatedAt bool
		// IsReadOnly indicates a field maintained by the system rather than
		// the user: identity or timestamp fields.
		IsReadOnly bool
		// Default holds the declared default value, or nil if none.
		Default any
		// RelationName holds the explicit relation name, or "" if none.
		RelationName string
		// RelatedField points to the paired field on the other side of the
		// relation. It is a non-owning back-reference into the same model,
		// set only during resolution, nil for unresolved or scalar fields.
		RelatedField *Field
		// DatabaseName holds the database-name override, or "" if none.
		DatabaseName string
		// Annotations holds the non-reserved annotations in source order.
		Annotations []Annotation
	}

	// Annotation is an opaque, non-reserved annotation attached to a field
	// or type declaration: a name plus its literal arguments.
	Annotation struct {
		Name      string
		Arguments map[string]any
	}
)

// TypeRef references a field type. It starts as a bare name taken from the
// declaration and is upgraded in place to a direct reference during
// resolution. A reference that remains a bare name after Parse returns is a
// scalar: its name matched no declared type.
type TypeRef struct {
	name string
	typ  *Type
}

// NamedRef returns an unresolved reference to the given type name.
func NamedRef(name string) TypeRef {
	return TypeRef{name: name}
}

// Name returns the referenced type name, resolved or not.
func (r TypeRef) Name() string {
	if r.typ != nil {
		return r.typ.Name
	}
	return r.name
}

// Type returns the resolved type declaration, if any.
func (r TypeRef) Type() (*Type, bool) {
	return r.typ, r.typ != nil
}

// Resolved reports whether the reference points to a declared type.
func (r TypeRef) Resolved() bool {
	return r.typ != nil
}

// resolve upgrades the reference in place. Exactly one of the bare name and
// the resolved type is ever held.
func (r *TypeRef) resolve(t *Type) {
	r.typ = t
	r.name = ""
}

// Type returns the declared type with the given name, if any.
func (m *Model) Type(name string) (*Type, bool) {
	for _, t := range m.Types {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// Objects returns all non-enum type declarations.
func (m *Model) Objects() []*Type {
	types := make([]*Type, 0, len(m.Types))
	for _, t := range m.Types {
		if !t.IsEnum {
			types = append(types, t)
		}
	}
	return types
}

// Enums returns all enum declarations.
func (m *Model) Enums() []*Type {
	var types []*Type
	for _, t := range m.Types {
		if t.IsEnum {
			types = append(types, t)
		}
	}
	return types
}

// Field returns the field with the given name, if any.
func (t *Type) Field(name string) (*Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// Annotation returns the first annotation with the given name, if any.
func (t *Type) Annotation(name string) (Annotation, bool) {
	return findAnnotation(t.Annotations, name)
}

// IsRelation reports whether the field references a declared object type.
// Enum-typed fields are not relations.
func (f *Field) IsRelation() bool {
	t, ok := f.Type.Type()
	return ok && !t.IsEnum
}

// IsScalar reports whether the field's type name matched no declared type.
// Meaningful only after resolution completed.
func (f *Field) IsScalar() bool {
	return !f.Type.Resolved()
}

// Annotation returns the first annotation with the given name, if any.
func (f *Field) Annotation(name string) (Annotation, bool) {
	return findAnnotation(f.Annotations, name)
}

// Argument returns the literal value of the named argument, or nil if the
// argument is absent.
func (a Annotation) Argument(name string) any {
	return a.Arguments[name]
}

func findAnnotation(annotations []Annotation, name string) (Annotation, bool) {
	for _, a := range annotations {
		if a.Name == name {
			return a, true
		}
	}
	return Annotation{}, false
}
