package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// TypesGenerator emits the annotated structs.
type TypesGenerator struct {
	NoOpGenerator
}

func (g TypesGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, t := range rt.Structs {
		generateStruct(f, t)
	}
	return true
}

func (g TypesGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	implementContainedResource(f("contained_resource", strings.ToLower(release)))
}

func generateStruct(f *File, s ir.Struct) {
	comment(f, s.DocComment)

	f.Type().Id(s.Name).StructFunc(func(g *Group) {
		for _, sf := range s.Fields {
			comment(g, sf.DocComment)

			// A choice field holds one alternative behind its sealed
			// interface and is encoded by the MarshalJSON of the struct.
			if sf.Polymorph {
				g.Id(sf.Name).Id(s.Name + sf.Name).Tag(map[string]string{"json": "-"})
				continue
			}

			t := sf.PossibleTypes[0]
			stmt := g.Id(sf.Name)
			switch {
			case sf.Multiple:
				stmt.Index()
				if t.IsPrimitive {
					stmt.Op("*")
				}
			case sf.Optional:
				if !t.IsNestedResource {
					stmt.Op("*")
				}
			}
			stmt.Add(StructType(sf, t)).Tag(jsonTag(sf.MarshalName, sf))

			if t.HasElement() {
				el := g.Id(sf.Name + "Element")
				if sf.Multiple {
					el.Index()
				}
				el.Op("*").Id("PrimitiveElement").Tag(map[string]string{"json": "_" + sf.MarshalName + ",omitempty"})
			}
		}
	})
}

func jsonTag(key string, sf ir.StructField) map[string]string {
	if sf.Optional || sf.Multiple {
		return map[string]string{"json": key + ",omitempty"}
	}
	return map[string]string{"json": key}
}

// StructType returns the Go type of one value of alternative t.
func StructType(sf ir.StructField, t ir.FieldType) *Statement {
	if vs, ok := sf.RequiredValueSet(); ok {
		return Id(vs)
	}
	if t.IsNestedResource {
		return Id("ContainedResource")
	}
	if !t.IsPrimitive {
		return Id(t.Name)
	}
	switch t.Name {
	case "boolean":
		return Bool()
	case "integer":
		return Int32()
	case "positiveInt", "unsignedInt":
		return Uint32()
	case "decimal":
		return Qual(DocumentPkg, "Number")
	default:
		return String()
	}
}

func implementContainedResource(f *File) *Statement {
	f.Comment("ContainedResource holds a resource of any type of this release.")
	f.Comment("It decodes by dispatching on the resourceType member in JSON and on the")
	f.Comment("element name in XML.")
	return f.Type().Id("ContainedResource").Struct(
		Qual(ModelPkg, "Resource"),
	)
}

// Projection returns the view projection reading one value of alternative
// t of sf from its JSON form.
func Projection(sf ir.StructField, t ir.FieldType) *Statement {
	if vs, ok := sf.RequiredValueSet(); ok {
		return Qual(ViewPkg, "ProjectCode").Call(Id(vs + "Codec"))
	}
	if t.IsNestedResource {
		return Id("decodeContainedResource")
	}
	if !t.IsPrimitive {
		return Id("decode" + t.Name)
	}
	switch t.Name {
	case "boolean":
		return Qual(ViewPkg, "ProjectBool")
	case "integer":
		return Qual(ViewPkg, "ProjectInt32")
	case "positiveInt":
		return Qual(ViewPkg, "ProjectPositiveInt")
	case "unsignedInt":
		return Qual(ViewPkg, "ProjectUnsignedInt")
	case "decimal":
		return Qual(ViewPkg, "ProjectNumber")
	default:
		return Qual(ViewPkg, "ProjectString")
	}
}

// ChoiceFields returns the choice fields of s.
func ChoiceFields(s ir.Struct) []ir.StructField {
	var fields []ir.StructField
	for _, f := range s.Fields {
		if f.Polymorph {
			fields = append(fields, f)
		}
	}
	return fields
}

// Alternatives returns the wire keys of the alternatives of a choice
// field, without the "_" siblings.
func Alternatives(sf ir.StructField) []Code {
	var keys []Code
	for _, t := range sf.PossibleTypes {
		keys = append(keys, Lit(sf.Key(t)))
	}
	return keys
}

// PrimitiveWrapper returns the type of a primitive alternative of a
// choice field, e.g. String for string.
func PrimitiveWrapper(name string) string {
	return ir.FieldType{Name: name, IsPrimitive: true}.Suffix()
}
