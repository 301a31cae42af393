package datamodel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeRef(t *testing.T) {
	require := require.New(t)

	ref := NamedRef("User")
	require.Equal("User", ref.Name())
	require.False(ref.Resolved())
	_, ok := ref.Type()
	require.False(ok)

	u := &Type{Name: "User"}
	ref.resolve(u)
	require.True(ref.Resolved())
	require.Equal("User", ref.Name())
	rt, ok := ref.Type()
	require.True(ok)
	require.Same(u, rt)
}

func TestModelLookup(t *testing.T) {
	require := require.New(t)
	m := &Model{Types: []*Type{
		{Name: "Role", IsEnum: true},
		{Name: "User", Fields: []*Field{{Name: "id"}, {Name: "email"}}},
	}}

	u, ok := m.Type("User")
	require.True(ok)
	require.Equal("User", u.Name)
	_, ok = m.Type("Missing")
	require.False(ok)

	f, ok := u.Field("email")
	require.True(ok)
	require.Equal("email", f.Name)
	_, ok = u.Field("missing")
	require.False(ok)

	require.Len(m.Objects(), 1)
	require.Len(m.Enums(), 1)
	require.Equal("Role", m.Enums()[0].Name)
}

func TestAnnotationLookup(t *testing.T) {
	require := require.New(t)
	f := &Field{
		Name: "email",
		Annotations: []Annotation{
			{Name: "search", Arguments: map[string]any{"boost": int64(2)}},
			{Name: "search", Arguments: map[string]any{"boost": int64(9)}},
		},
	}

	a, ok := f.Annotation("search")
	require.True(ok)
	require.Equal(int64(2), a.Argument("boost"), "first in source order wins")
	require.Nil(a.Argument("missing"))

	_, ok = f.Annotation("missing")
	require.False(ok)
}
