package datamodel

// resolveRelations post-processes the assembled model in three passes, each
// completing fully before the next: bare type names are upgraded to direct
// references, explicitly named relation pairs are linked, and remaining
// unambiguous pairs are inferred structurally. The only fatal condition is a
// named relation whose sides reference inconsistent types; everything else
// degrades to fields left unresolved.
func resolveRelations(m *Model) error {
	resolveTypeRefs(m)
	if err := linkNamedRelations(m); err != nil {
		return err
	}
	inferRelations(m)
	return nil
}

// resolveTypeRefs replaces every bare type name that matches a declared type
// with a reference to that declaration. Names that match nothing stay as
// they are: the field is a scalar, not an error. Duplicate declared names
// are not validated; the last match wins.
func resolveTypeRefs(m *Model) {
	for _, t := range m.Types {
		for _, f := range t.Fields {
			if f.Type.Resolved() {
				continue
			}
			name := f.Type.Name()
			for _, target := range m.Types {
				if target.Name == name {
					f.Type.resolve(target)
				}
			}
		}
	}
}

// linkNamedRelations pairs fields that carry the same explicit relation name:
// for each unlinked field whose type resolved and whose relation is named,
// the first field on the target type carrying that name is its partner. The
// partner must reference the field's own containing type back, otherwise the
// relation is inconsistent and resolution aborts. A relation name pairing
// more than two fields is not detected.
func linkNamedRelations(m *Model) error {
	for _, t := range m.Types {
		for _, f := range t.Fields {
			target, ok := f.Type.Type()
			if !ok || f.RelationName == "" || f.RelatedField != nil {
				continue
			}
			for _, partner := range target.Fields {
				if partner.RelationName != f.RelationName {
					continue
				}
				if pt, ok := partner.Type.Type(); !ok || pt != t {
					return &RelationMismatchError{
						Relation: f.RelationName,
						Type:     t.Name,
						Field:    f.Name,
						Partner:  partner.Name,
						Actual:   partner.Type.Name(),
					}
				}
				f.RelatedField = partner
				partner.RelatedField = f
				break
			}
		}
	}
	return nil
}

// inferRelations links the remaining unlinked relation fields when the pair
// is structurally unambiguous: the containing type has no second field to the
// same target, and the target has exactly one unlinked field (other than the
// field itself) pointing back under the same relation name, which is empty on
// both sides in the common case. Zero or multiple candidates leave the field
// unresolved; implicit relations are never guessed. Fields whose explicit
// name found no partner in the previous pass are still eligible here.
func inferRelations(m *Model) {
	for _, t := range m.Types {
		for _, f := range t.Fields {
			target, ok := f.Type.Type()
			if !ok || f.RelatedField != nil {
				continue
			}
			// Too many fields to this type; cannot infer without an
			// explicit name.
			if hasSecondFieldTo(t, f, target) {
				continue
			}
			var candidate *Field
			count := 0
			for _, back := range target.Fields {
				if back == f || back.RelatedField != nil || back.RelationName != f.RelationName {
					continue
				}
				if bt, ok := back.Type.Type(); ok && bt == t {
					candidate = back
					count++
				}
			}
			if count == 1 {
				f.RelatedField = candidate
				candidate.RelatedField = f
			}
		}
	}
}

// hasSecondFieldTo reports whether t declares a field other than f that
// references the same target type.
func hasSecondFieldTo(t *Type, f *Field, target *Type) bool {
	for _, other := range t.Fields {
		if other == f {
			continue
		}
		if ot, ok := other.Type.Type(); ok && ot == target {
			return true
		}
	}
	return false
}
