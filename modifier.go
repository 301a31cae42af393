package datamodel

import "github.com/vektah/gqlparser/v2/ast"

// fieldModifiers walks the type-wrapper chain of a field declaration and
// returns the innermost named type together with the dominant modifier.
// A list wrapper anywhere in the chain makes the field a list, regardless of
// any non-null wrappers. Otherwise a non-null wrapper makes it required.
// A chain that dead-ends without reaching a named type is malformed.
func fieldModifiers(t *ast.Type) (name string, list, required bool, err error) {
	nonNull := false
	for cur := t; cur != nil; cur = cur.Elem {
		if cur.NonNull {
			nonNull = true
		}
		switch {
		case cur.NamedType != "":
			if list {
				return cur.NamedType, true, false, nil
			}
			return cur.NamedType, false, nonNull, nil
		case cur.Elem != nil:
			list = true
		}
	}
	return "", false, false, &StructuralError{}
}

// innermostName returns the named type a wrapper chain bottoms out at, or ""
// for malformed chains. Used where modifiers are irrelevant.
func innermostName(t *ast.Type) string {
	for cur := t; cur != nil; cur = cur.Elem {
		if cur.NamedType != "" {
			return cur.NamedType
		}
	}
	return ""
}
