package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"

	"github.com/syssam/datamodel"
)

var rules = ruleset()

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{"ID", "SQL", "HTTP", "URL", "JSON", "UUID", "API", "DB"} {
		rules.AddAcronym(w)
	}
	return rules
}

var acronyms = map[string]struct{}{
	"ID": {}, "SQL": {}, "HTTP": {}, "URL": {}, "JSON": {}, "UUID": {}, "API": {}, "DB": {},
}

// snake converts a type or field name to snake_case.
func snake(s string) string {
	var (
		b    strings.Builder
		mark int // position of the last inserted separator
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Separate on an uppercase letter that starts a new word: either it
		// follows a lowercase letter ("UserInfo"), or it ends an acronym run
		// followed by a lowercase letter ("HTTPCode").
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				mark != i-1 && unicode.IsUpper(rune(s[i-1])) && unicode.IsLower(rune(s[i+1])) {
				mark = i
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// pascal converts a name to PascalCase, keeping known acronyms uppercase.
func pascal(s string) string {
	var b strings.Builder
	words := strings.FieldsFunc(s, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for _, w := range words {
		if u := strings.ToUpper(w); len(w) > 1 {
			if _, ok := acronyms[u]; ok {
				b.WriteString(u)
				continue
			}
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

// tableName returns the database table for a type: the declared override, or
// the pluralized snake_case name.
func tableName(t *datamodel.Type) string {
	if t.DatabaseName != "" {
		return t.DatabaseName
	}
	return snake(rules.Pluralize(t.Name))
}

// columnName returns the database column for a field: the declared override,
// or the snake_case field name.
func columnName(f *datamodel.Field) string {
	if f.DatabaseName != "" {
		return f.DatabaseName
	}
	return snake(f.Name)
}
