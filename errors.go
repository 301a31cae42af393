package datamodel

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two fatal failure modes of the pipeline.
var (
	// ErrStructural indicates a malformed type-modifier chain in the input tree.
	ErrStructural = errors.New("datamodel: malformed type modifier chain")

	// ErrRelationMismatch indicates a named relation whose two sides
	// reference inconsistent types.
	ErrRelationMismatch = errors.New("datamodel: relation type mismatch")
)

// StructuralError is returned when a field's type-wrapper chain terminates
// without reaching a named type. It aborts the whole parse.
type StructuralError struct {
	Type  string // containing type, if known
	Field string // field whose type chain is malformed, if known
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString("datamodel: structural error")
	if e.Type != "" {
		b.WriteString(" on type ")
		b.WriteString(e.Type)
	}
	if e.Field != "" {
		b.WriteString(" field ")
		b.WriteString(e.Field)
	}
	b.WriteString(": type modifier chain ends without a named type")
	return b.String()
}

// Is reports whether the target matches the sentinel error for StructuralError.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}

// NewStructuralError creates a new StructuralError.
func NewStructuralError(typeName, fieldName string) *StructuralError {
	return &StructuralError{Type: typeName, Field: fieldName}
}

// IsStructuralError reports whether the error is a StructuralError.
func IsStructuralError(err error) bool {
	var serr *StructuralError
	return errors.As(err, &serr)
}

// RelationMismatchError is returned when an explicitly named relation pairs
// two fields whose containing types are inconsistent: the partner field found
// on the target type references a type other than the field's own container.
// It aborts resolution.
type RelationMismatchError struct {
	Relation string // the relation name carried by both sides
	Type     string // type containing the field being resolved
	Field    string // the field being resolved
	Partner  string // the partner field found on the target type
	Actual   string // the type the partner actually references
}

// Error implements the error interface.
func (e *RelationMismatchError) Error() string {
	return fmt.Sprintf("datamodel: relation %q: field %s.%s pairs with %q, which references %q instead of %q",
		e.Relation, e.Type, e.Field, e.Partner, e.Actual, e.Type)
}

// Is reports whether the target matches the sentinel error for RelationMismatchError.
func (e *RelationMismatchError) Is(target error) bool {
	return target == ErrRelationMismatch
}

// IsRelationMismatchError reports whether the error is a RelationMismatchError.
func IsRelationMismatchError(err error) bool {
	var rerr *RelationMismatchError
	return errors.As(err, &rerr)
}
