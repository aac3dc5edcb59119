package generate

import (
	"go/token"

	"github.com/iancoleman/strcase"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ViewGenerator emits the typed views: one struct wrapping a
// document.Value per type, an accessor per field and alternative, and
// Validate.
type ViewGenerator struct {
	NoOpGenerator
	// StructPkg is the import path of the struct package holding the
	// code types.
	StructPkg string
}

func (g ViewGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		generateView(f, s, g.StructPkg)
	}
	return true
}

type primitiveView struct {
	accessor string
	project  string
	encode   string
	goType   func() *Statement
}

func viewPrimitive(name string) primitiveView {
	switch name {
	case "boolean":
		return primitiveView{"Bool", "ProjectBool", "BoolValue", func() *Statement { return Bool() }}
	case "integer":
		return primitiveView{"Int32", "ProjectInt32", "Int32Value", func() *Statement { return Int32() }}
	case "unsignedInt":
		return primitiveView{"UnsignedInt", "ProjectUnsignedInt", "Uint32Value", func() *Statement { return Uint32() }}
	case "positiveInt":
		return primitiveView{"PositiveInt", "ProjectPositiveInt", "Uint32Value", func() *Statement { return Uint32() }}
	case "decimal":
		return primitiveView{"Decimal", "ProjectDecimal", "DecimalValue", func() *Statement { return Op("*").Qual(ApdPkg, "Decimal") }}
	default:
		return primitiveView{"String", "ProjectString", "StringValue", func() *Statement { return String() }}
	}
}

// viewType returns the Go type of one value of alternative t in the view
// package.
func viewType(sf ir.StructField, t ir.FieldType, structPkg string) *Statement {
	if vs, ok := sf.RequiredValueSet(); ok {
		return Qual(structPkg, vs)
	}
	if t.IsNestedResource {
		return Qual(ViewPkg, "Resource")
	}
	if t.IsPrimitive {
		return viewPrimitive(t.Name).goType()
	}
	return Id(t.Name)
}

func wrapFunc(name string) string { return "Wrap" + name }

func generateView(f *File, s ir.Struct, structPkg string) {
	recv := func() *Statement { return Id("r").Id(s.Name) }

	if s.IsResource {
		f.Commentf("%s is a read-only view over an encoded %s resource.", s.Name, s.Name)
	} else {
		f.Commentf("%s is a read-only view over an encoded %s.", s.Name, s.MarshalName)
	}
	f.Type().Id(s.Name).Struct(
		Id("node").Qual(DocumentPkg, "Value"),
	)

	f.Commentf("%s returns a view over n. The node is not checked until it is read or validated.", wrapFunc(s.Name))
	f.Func().Id(wrapFunc(s.Name)).Params(Id("n").Qual(DocumentPkg, "Value")).Id(s.Name).Block(
		Return(Id(s.Name).Values(Dict{Id("node"): Id("n")})),
	)

	f.Func().Params(recv()).Id("Node").Params().Qual(DocumentPkg, "Value").Block(
		Return(Id("r").Dot("node")),
	)

	f.Func().Params(recv()).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		Return(Id("r").Dot("node").Dot("MarshalJSON").Call()),
	)

	if s.IsResource {
		f.Func().Params(recv()).Id("ResourceType").Params().String().Block(
			Return(Lit(s.Name)),
		)
		f.Func().Params(recv()).Id("ResourceId").Params().Params(String(), Bool()).Block(
			List(Id("id"), Id("ok"), Err()).Op(":=").Id("r").Dot("Id").Call(),
			Return(Id("id"), Id("ok").Op("&&").Err().Op("==").Nil()),
		)
	}

	for _, sf := range s.Fields {
		for i, t := range sf.PossibleTypes {
			generateAccessor(f, s, sf, t, i == 0, structPkg)
		}
		if sf.Polymorph {
			generateChoiceAccessor(f, s, sf)
		}
	}

	generateValidate(f, s)
}

func generateAccessor(f *File, s ir.Struct, sf ir.StructField, t ir.FieldType, first bool, structPkg string) {
	name := sf.GoName(t)
	key := sf.Key(t)
	recv := Id("r").Id(s.Name)

	if first {
		comment(f, sf.DocComment)
	}

	switch {
	case sf.Multiple && t.IsNestedResource:
		f.Func().Params(recv).Id(name).Params().Params(Index().Qual(ViewPkg, "Resource"), Error()).Block(
			Return(Qual(ViewPkg, "GetList").Call(Id("r").Dot("node"), Lit(key), Id("WrapResource"))),
		)
	case sf.Multiple && t.IsPrimitive && viewPrimitive(t.Name).accessor == "String":
		f.Func().Params(recv).Id(name).Params().Params(Index().Op("*").String(), Error()).Block(
			Return(Qual(ViewPkg, "Strings").Call(Id("r").Dot("node"), Lit(key))),
		)
	case sf.Multiple && t.IsPrimitive:
		p := viewPrimitive(t.Name)
		f.Func().Params(recv).Id(name).Params().Params(Index().Op("*").Add(p.goType()), Error()).Block(
			Return(Qual(ViewPkg, "GetSparseList").Call(Id("r").Dot("node"), Lit(key), Qual(ViewPkg, p.project))),
		)
	case sf.Multiple:
		f.Func().Params(recv).Id(name).Params().Params(Index().Id(t.Name), Error()).Block(
			Return(Qual(ViewPkg, "Structs").Call(Id("r").Dot("node"), Lit(key), Id(wrapFunc(t.Name)))),
		)
	default:
		f.Func().Params(recv).Id(name).Params().Params(viewType(sf, t, structPkg), Bool(), Error()).Block(
			Return(singularRead(sf, t, key, structPkg)),
		)
	}

	if !t.HasElement() {
		return
	}
	if sf.Multiple {
		f.Func().Params(Id("r").Id(s.Name)).Id(name+"Element").Params().Params(Index().Op("*").Id("PrimitiveElement"), Error()).Block(
			Return(Qual(ViewPkg, "SparseStructs").Call(Id("r").Dot("node"), Lit("_"+key), Id(wrapFunc("PrimitiveElement")))),
		)
	} else {
		f.Func().Params(Id("r").Id(s.Name)).Id(name+"Element").Params().Params(Id("PrimitiveElement"), Bool(), Error()).Block(
			Return(Qual(ViewPkg, "Struct").Call(Id("r").Dot("node"), Lit("_"+key), Id(wrapFunc("PrimitiveElement")))),
		)
	}
}

func singularRead(sf ir.StructField, t ir.FieldType, key string, structPkg string) *Statement {
	if vs, ok := sf.RequiredValueSet(); ok {
		return Qual(ViewPkg, "Code").Call(Id("r").Dot("node"), Lit(key), Qual(structPkg, vs+"Codec"))
	}
	if t.IsPrimitive {
		return Qual(ViewPkg, viewPrimitive(t.Name).accessor).Call(Id("r").Dot("node"), Lit(key))
	}
	return Qual(ViewPkg, "Struct").Call(Id("r").Dot("node"), Lit(key), Id(wrapFunc(t.Name)))
}

func generateChoiceAccessor(f *File, s ir.Struct, sf ir.StructField) {
	iface := s.Name + sf.Name

	f.Commentf("%s returns whichever %s[x] alternative is present. Alternatives are", sf.Name, sf.MarshalName)
	f.Comment("tried in declared order; the first one found wins.")
	f.Func().Params(Id("r").Id(s.Name)).Id(sf.Name).Params().Params(Id(iface), Bool(), Error()).Block(
		List(Id("key"), Id("ok")).Op(":=").Qual(ViewPkg, "Probe").CallFunc(func(g *Group) {
			g.Id("r").Dot("node")
			g.Lit(sf.MarshalName)
			for _, t := range sf.PossibleTypes {
				g.Lit(t.Suffix())
			}
		}),
		If(Op("!").Id("ok")).Block(
			Return(Nil(), False(), Nil()),
		),
		Switch(Id("key")).BlockFunc(func(g *Group) {
			for _, t := range sf.PossibleTypes {
				g.Case(Lit(sf.Key(t))).Block(
					Return(Qual(ViewPkg, "Resolve").Call(
						Id("r").Dot(sf.GoName(t)),
						Func().Params(Id("v").Add(alternativeViewType(t))).Id(iface).Block(
							Return(wrapAlternative(t, Id("v"))),
						),
					)),
				)
			}
		}),
		Return(Nil(), False(), Nil()),
	)
}

// Choice alternatives are never bound to a value set.
func alternativeViewType(t ir.FieldType) *Statement {
	if t.IsPrimitive {
		return viewPrimitive(t.Name).goType()
	}
	return Id(t.Name)
}

func wrapAlternative(t ir.FieldType, v *Statement) *Statement {
	if !t.IsPrimitive {
		return v
	}
	if t.Name == "decimal" {
		return Id(t.Suffix()).Values(v)
	}
	return Id(t.Suffix()).Call(v)
}

func generateValidate(f *File, s ir.Struct) {
	f.Commentf("Validate checks every present field of the %s and its nested elements,", s.Name)
	f.Comment("stopping at the first error.")
	f.Func().Params(Id("r").Id(s.Name)).Id("Validate").Params(Id("opts").Op("...").Qual(ViewPkg, "ValidateOption")).Error().Block(
		Return(Qual(ViewPkg, "ValidateObject").CustomFunc(multiline, func(g *Group) {
			g.Id("r").Dot("node")
			g.Id("opts")
			if s.IsResource {
				g.Qual(ViewPkg, "ResourceType").Call(Id("r").Dot("node"), Lit(s.Name))
			}
			for _, sf := range s.Fields {
				if sf.Polymorph {
					g.Qual(ViewPkg, "Exclusive").CallFunc(func(g *Group) {
						g.Id("r").Dot("node")
						g.Lit(sf.MarshalName + "[x]")
						for _, t := range sf.PossibleTypes {
							g.Lit(sf.Key(t))
						}
					})
				}
				for _, t := range sf.PossibleTypes {
					generateCheck(g, sf, t)
				}
			}
		})),
	)
}

func generateCheck(g *Group, sf ir.StructField, t ir.FieldType) {
	name := sf.GoName(t)
	key := sf.Key(t)
	accessor := Id("r").Dot(name)

	switch {
	case t.IsPrimitive && sf.Multiple:
		g.Qual(ViewPkg, "List").Call(accessor)
	case t.IsPrimitive:
		g.Qual(ViewPkg, "Field").Call(accessor)
	case sf.Multiple:
		g.Qual(ViewPkg, "NestedList").Call(Lit(key), accessor)
	default:
		g.Qual(ViewPkg, "Nested").Call(Lit(key), accessor)
	}

	if !t.HasElement() {
		return
	}
	element := Id("r").Dot(name + "Element")
	if sf.Multiple {
		g.Qual(ViewPkg, "NestedSparseList").Call(Lit("_"+key), element)
	} else {
		g.Qual(ViewPkg, "Nested").Call(Lit("_"+key), element)
	}
}

// paramName returns a Go identifier for a builder parameter.
func paramName(marshalName string) string {
	name := strcase.ToLowerCamel(marshalName)
	if token.IsKeyword(name) {
		return name + "Value"
	}
	return name
}

func builderName(name string) string { return name + "Builder" }

func choiceClearer(sf ir.StructField) string { return "clear" + sf.Name }

// multiline renders call arguments one per line with a trailing comma.
var multiline = Options{Open: "(", Close: ")", Separator: ",", Multi: true}
