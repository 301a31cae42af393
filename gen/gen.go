package gen

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/datamodel"
)

// Generator emits one Go source file per declared type of a resolved model:
// a struct with table and column constants for object types, a string-typed
// constant set for enums.
type Generator struct {
	cfg   *Config
	model *datamodel.Model
}

// NewGenerator creates a generator for the given model.
func NewGenerator(cfg *Config, model *datamodel.Model) (*Generator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{cfg: cfg, model: model}, nil
}

// Generate writes all files to the target directory.
func (g *Generator) Generate(ctx context.Context) error {
	w := newWriter(g.cfg)
	var tasks []fileTask
	for _, t := range g.model.Types {
		tasks = append(tasks, fileTask{
			name: snake(t.Name) + ".go",
			typ:  t.Name,
			file: g.typeFile(t),
		})
	}
	return w.writeAll(ctx, tasks)
}

func (g *Generator) typeFile(t *datamodel.Type) *jen.File {
	if t.IsEnum {
		return g.enumFile(t)
	}
	f := g.newFile()
	if !t.IsEmbedded {
		f.Commentf("%sTable holds the table name of the %s entity.", pascal(t.Name), t.Name)
		f.Const().Id(pascal(t.Name) + "Table").Op("=").Lit(tableName(t))
		g.columnConstants(f, t)
	}
	f.Commentf("%s is the model entity for the %s type.", pascal(t.Name), t.Name)
	f.Type().Id(pascal(t.Name)).Struct(g.structFields(t)...)
	return f
}

// columnConstants emits one column-name constant per non-relation field.
func (g *Generator) columnConstants(f *jen.File, t *datamodel.Type) {
	var defs []jen.Code
	for _, fd := range t.Fields {
		if fd.IsRelation() {
			continue
		}
		defs = append(defs, jen.Commentf("Field%s holds the column of the %q field.", pascal(fd.Name), fd.Name))
		defs = append(defs, jen.Id("Field"+pascal(fd.Name)).Op("=").Lit(columnName(fd)))
	}
	if len(defs) > 0 {
		f.Const().Defs(defs...)
	}
}

func (g *Generator) structFields(t *datamodel.Type) []jen.Code {
	fields := make([]jen.Code, 0, len(t.Fields))
	for _, fd := range t.Fields {
		fields = append(fields, jen.Id(pascal(fd.Name)).
			Add(g.goType(fd)).
			Tag(map[string]string{"json": fd.Name + omitempty(fd)}))
	}
	return fields
}

// goType maps a field to its generated Go type. Scalars map to builtins,
// enum references to the generated enum type, relations to pointers or
// slices of the related struct. Optional single-value fields are pointers.
func (g *Generator) goType(fd *datamodel.Field) jen.Code {
	base := g.baseType(fd)
	switch {
	case fd.IsList:
		if fd.IsRelation() {
			return jen.Index().Op("*").Add(base)
		}
		return jen.Index().Add(base)
	case fd.IsRelation():
		return jen.Op("*").Add(base)
	case !fd.IsRequired && !fd.IsID:
		return jen.Op("*").Add(base)
	default:
		return base
	}
}

func (g *Generator) baseType(fd *datamodel.Field) jen.Code {
	if t, ok := fd.Type.Type(); ok {
		return jen.Id(pascal(t.Name))
	}
	switch fd.Type.Name() {
	case "ID", "String":
		return jen.String()
	case "Int":
		return jen.Int64()
	case "Float":
		return jen.Float64()
	case "Boolean":
		return jen.Bool()
	case "DateTime":
		return jen.Qual("time", "Time")
	case "Json":
		return jen.Qual("encoding/json", "RawMessage")
	default:
		// Unknown scalars round-trip as strings.
		return jen.String()
	}
}

func (g *Generator) enumFile(t *datamodel.Type) *jen.File {
	f := g.newFile()
	name := pascal(t.Name)
	f.Commentf("%s is the enum type for the %s declaration.", name, t.Name)
	f.Type().Id(name).String()

	defs := make([]jen.Code, 0, len(t.Fields))
	for _, v := range t.Fields {
		defs = append(defs, jen.Id(name+pascal(v.Name)).Id(name).Op("=").Lit(v.Name))
	}
	f.Commentf("%s values.", name)
	f.Const().Defs(defs...)
	return f
}

func (g *Generator) newFile() *jen.File {
	f := jen.NewFile(g.cfg.Package)
	f.HeaderComment(g.cfg.Header)
	return f
}

func omitempty(fd *datamodel.Field) string {
	if fd.IsRequired || fd.IsID {
		return ""
	}
	return ",omitempty"
}
