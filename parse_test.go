package datamodel

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestParse(t *testing.T) {
	require := require.New(t)
	model, err := Parse(`
		type Post {
			id: ID! @id
			title: String!
			tags: [String!]
			author: User
		}
		type User {
			id: ID! @id
			email: String! @unique @db(name: "email_addr")
			posts: [Post]
		}
		enum Role {
			ADMIN
			MEMBER
		}
	`, nil)
	require.NoError(err)

	// Types are sorted by name, objects and enums combined.
	require.Len(model.Types, 3)
	require.Equal("Post", model.Types[0].Name)
	require.Equal("Role", model.Types[1].Name)
	require.Equal("User", model.Types[2].Name)

	user, ok := model.Type("User")
	require.True(ok)
	require.False(user.IsEnum)
	require.False(user.IsEmbedded)

	id, ok := user.Field("id")
	require.True(ok)
	require.True(id.IsID)
	require.True(id.IsUnique, "identity fields are always unique")
	require.True(id.IsReadOnly)
	require.True(id.IsRequired)
	require.False(id.IsList)
	require.True(id.IsScalar(), "ID matches no declared type")
	require.Equal("ID", id.Type.Name())

	email, ok := user.Field("email")
	require.True(ok)
	require.True(email.IsUnique)
	require.False(email.IsID)
	require.False(email.IsReadOnly)
	require.Equal("email_addr", email.DatabaseName)

	posts, ok := user.Field("posts")
	require.True(ok)
	require.True(posts.IsList)
	require.False(posts.IsRequired)
	require.True(posts.IsRelation())
	pt, ok := posts.Type.Type()
	require.True(ok)
	require.Equal("Post", pt.Name)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := Parse("type User {", nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "datamodel: parse schema")
}

func TestParse_Idempotent(t *testing.T) {
	src := `
		type A { b: B }
		type B { a: A }
		enum E { X Y }
	`
	m1, err := Parse(src, nil)
	require.NoError(t, err)
	m2, err := Parse(src, nil)
	require.NoError(t, err)
	require.Equal(t, m1, m2)
}

func TestParse_Enum(t *testing.T) {
	require := require.New(t)
	model, err := Parse(`enum E { A B }`, nil)
	require.NoError(err)
	require.Len(model.Types, 1)

	e := model.Types[0]
	require.True(e.IsEnum)
	require.False(e.IsEmbedded, "embedding annotations are not recognized on enums")
	require.Len(e.Fields, 2)
	require.Equal("A", e.Fields[0].Name)
	require.Equal("B", e.Fields[1].Name)
	for _, f := range e.Fields {
		require.False(f.IsUnique)
		require.False(f.IsRequired)
		require.False(f.IsList)
		require.True(f.IsScalar())
		require.Nil(f.RelatedField)
	}
	require.Len(model.Enums(), 1)
	require.Empty(model.Objects())
}

func TestParse_Defaults(t *testing.T) {
	require := require.New(t)
	model, err := Parse(`
		type Setting {
			retries: Int @default(value: 3)
			ratio: Float @default(value: 0.5)
			enabled: Boolean @default(value: true)
			mode: String @default(value: "auto")
			bare: String
		}
	`, nil)
	require.NoError(err)

	s := model.Types[0]
	field := func(name string) *Field {
		f, ok := s.Field(name)
		require.True(ok)
		return f
	}
	require.Equal(int64(3), field("retries").Default)
	require.Equal(0.5, field("ratio").Default)
	require.Equal(true, field("enabled").Default)
	require.Equal("auto", field("mode").Default)
	require.Nil(field("bare").Default)
}

func TestParse_DefaultPolicy(t *testing.T) {
	require := require.New(t)
	model, err := Parse(`
		type Event @embedded {
			id: ID!
			createdAt: DateTime
			updatedAt: DateTime
			startedAt: DateTime
			name: String
		}
	`, nil)
	require.NoError(err)

	e := model.Types[0]
	require.True(e.IsEmbedded)

	id, _ := e.Field("id")
	require.True(id.IsID, "field named id classifies as identity")

	created, _ := e.Field("createdAt")
	require.True(created.IsCreatedAt)
	require.True(created.IsReadOnly)

	updated, _ := e.Field("updatedAt")
	require.True(updated.IsUpdatedAt)

	started, _ := e.Field("startedAt")
	require.False(started.IsCreatedAt)
	require.False(started.IsUpdatedAt)

	name, _ := e.Field("name")
	require.False(name.IsReadOnly)
}

func TestParse_CustomPolicy(t *testing.T) {
	require := require.New(t)
	policy := &Policy{
		IsIdentityField: func(def *ast.FieldDefinition) bool {
			return def.Name == "uid"
		},
	}
	model, err := Parse(`
		type User {
			uid: String
			id: String
			createdAt: DateTime
		}
	`, policy)
	require.NoError(err)

	u := model.Types[0]
	uid, _ := u.Field("uid")
	require.True(uid.IsID)
	id, _ := u.Field("id")
	require.False(id.IsID)

	// Nil predicates classify nothing.
	created, _ := u.Field("createdAt")
	require.False(created.IsCreatedAt)
}

func TestParseDocument(t *testing.T) {
	require := require.New(t)
	doc := &ast.SchemaDocument{
		Definitions: ast.DefinitionList{
			{
				Kind: ast.Object,
				Name: "B",
				Fields: ast.FieldList{
					{Name: "a", Type: &ast.Type{NamedType: "A"}},
				},
			},
			{
				Kind: ast.Object,
				Name: "A",
				Fields: ast.FieldList{
					{Name: "b", Type: &ast.Type{NamedType: "B"}},
				},
			},
			// Non-object, non-enum declarations are ignored.
			{Kind: ast.Interface, Name: "Node"},
		},
	}
	model, err := ParseDocument(doc, nil)
	require.NoError(err)
	require.Len(model.Types, 2)
	require.Equal("A", model.Types[0].Name)
	require.Equal("B", model.Types[1].Name)

	a, _ := model.Type("A")
	b, _ := model.Type("B")
	require.Equal(b.Fields[0], a.Fields[0].RelatedField)
}

func TestParseDocument_Structural(t *testing.T) {
	doc := &ast.SchemaDocument{
		Definitions: ast.DefinitionList{
			{
				Kind: ast.Object,
				Name: "T",
				Fields: ast.FieldList{
					{Name: "broken", Type: &ast.Type{}},
				},
			},
		},
	}
	_, err := ParseDocument(doc, nil)
	require.Error(t, err)
	require.True(t, IsStructuralError(err))
	require.EqualError(t, err, "datamodel: structural error on type T field broken: type modifier chain ends without a named type")
}

func TestParse_TypeAnnotations(t *testing.T) {
	require := require.New(t)
	model, err := Parse(`
		type User @db(name: "users") @audit(level: 2) {
			id: ID! @id
		}
	`, nil)
	require.NoError(err)

	u := model.Types[0]
	require.Equal("users", u.DatabaseName)
	require.Len(u.Annotations, 1)
	audit, ok := u.Annotation("audit")
	require.True(ok)
	require.Equal(int64(2), audit.Argument("level"))
	_, ok = u.Annotation("db")
	require.False(ok, "reserved annotations are filtered out")
}
