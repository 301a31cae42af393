// Package datamodel converts a schema-definition-language (SDL) document
// into a normalized, fully cross-linked object model for downstream tooling
// such as database-schema and code generation.
//
// The package consumes the syntax tree produced by gqlparser and emits a
// Model: an ordered list of Type declarations, each holding its Field
// declarations with modifiers, annotations and resolved relations.
//
// # Parsing
//
// There are two entry points. Parse runs the external SDL parser first:
//
//	model, err := datamodel.Parse(`
//	    type User {
//	        id: ID! @id
//	        posts: [Post]
//	    }
//	    type Post {
//	        author: User
//	    }
//	`, nil)
//
// ParseDocument skips straight to the pipeline when the caller already holds
// an *ast.SchemaDocument.
//
// # Relation resolution
//
// After assembly, field type references are resolved in three passes: bare
// type names are replaced by references to the declared types (names that
// match no declaration remain scalars), explicitly named relations are paired
// via their @relation(name: ...) annotation, and remaining unambiguous pairs
// are inferred structurally. Ambiguous implicit relations are left unresolved
// rather than guessed; the only fatal resolution error is a named relation
// whose two sides reference inconsistent types.
//
// # Classification policy
//
// Recognition of identity, created-at and updated-at fields and of embedded
// types encodes project conventions, so it is supplied by the caller as a
// Policy of predicates over the raw syntax nodes. DefaultPolicy implements
// the common directive and naming conventions.
package datamodel
