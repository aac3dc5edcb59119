package json

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// UnmarshalGenerator emits a decoder per struct that reads a parsed
// document member by member. Members the struct does not declare and
// missing required fields are errors carrying the element path.
type UnmarshalGenerator struct{}

func (g UnmarshalGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		implementUnmarshal(f, s)
		implementDecode(f, s)
		for _, c := range generate.ChoiceFields(s) {
			implementDecodeChoice(f, s, c)
		}
	}
	return len(rt.Structs) > 0
}

func (g UnmarshalGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	pkg := strings.ToLower(release)
	file := f("contained_resource", pkg)
	implementUnmarshalContained(file)
	implementDecodeContained(file, ir.FilterResources(rt))
	implementDecodeHelpers(f("decode", pkg))
}

func document(name string) *Statement {
	return Qual(generate.DocumentPkg, name)
}

func view(name string) *Statement {
	return Qual(generate.ViewPkg, name)
}

func ifErrReturn(results ...Code) *Statement {
	return If(Err().Op("!=").Nil()).Block(Return(results...))
}

func implementUnmarshal(f *File, s ir.Struct) {
	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("UnmarshalJSON").Params(Id("b").Index().Byte()).Error().Block(
		List(Id("n"), Err()).Op(":=").Add(document("Parse")).Call(Id("b")),
		ifErrReturn(Err()),
		If(Id("n").Dot("IsNull").Call()).Block(
			Return(Nil()),
		),
		List(Id("v"), Err()).Op(":=").Id("decode"+s.Name).Call(Id("n")),
		ifErrReturn(Qual("fmt", "Errorf").Call(Lit("decode "+s.Name+": %w"), Err())),
		Op("*").Id("r").Op("=").Id("v"),
		Return(Nil()),
	)
}

func requiredKeys(s ir.Struct) Code {
	var keys []Code
	for _, f := range s.Fields {
		if f.Required() && !f.Polymorph {
			keys = append(keys, Lit(f.MarshalName))
		}
	}
	if keys == nil {
		return Nil()
	}
	return Index().String().Values(keys...)
}

func implementDecode(f *File, s ir.Struct) {
	member := Func().Params(Id("key").String(), Id("v").Add(document("Value"))).Params(Err().Error()).Block(
		Switch(Id("key")).BlockFunc(func(g *Group) {
			if s.IsResource {
				g.Case(Lit("resourceType"))
			}
			for _, sf := range s.Fields {
				decodeMember(g, sf)
			}
			g.Default().Block(
				Err().Op("=").Op("&").Add(view("UnknownFieldError")).Values(),
			)
		}),
		Return(Err()),
	)

	var call *Statement
	if s.IsResource {
		call = Id("decodeResource").Call(Id("n"), Lit(s.Name), requiredKeys(s), member)
	} else {
		call = Id("decodeObject").Call(Id("n"), requiredKeys(s), member)
	}

	choices := generate.ChoiceFields(s)
	f.Func().Id("decode"+s.Name).Params(Id("n").Add(document("Value"))).Params(Id(s.Name), Error()).BlockFunc(func(g *Group) {
		g.Var().Id("r").Id(s.Name)
		g.Err().Op(":=").Add(call)
		if len(choices) == 0 {
			g.Return(Id("r"), Err())
			return
		}
		g.Add(ifErrReturn(Id("r"), Err()))
		for _, c := range choices {
			g.If(
				List(Id("r").Dot(c.Name), Err()).Op("=").Id("decode"+s.Name+c.Name).Call(Id("n")),
				Err().Op("!=").Nil(),
			).Block(
				Return(Id("r"), Err()),
			)
			if c.Required() {
				g.If(Id("r").Dot(c.Name).Op("==").Nil()).Block(
					Return(Id("r"), Op("&").Add(view("MissingFieldError")).Values(Id("Path").Op(":").Lit(c.MarshalName+"[x]"))),
				)
			}
		}
		g.Return(Id("r"), Nil())
	})
}

func decodeMember(g *Group, sf ir.StructField) {
	if sf.Polymorph {
		var keys []Code
		for _, k := range sf.ChoiceKeys() {
			keys = append(keys, Lit(k))
		}
		g.Case(keys...)
		return
	}

	t := sf.PossibleTypes[0]
	project := generate.Projection(sf, t)
	var value *Statement
	switch {
	case sf.Multiple && t.IsPrimitive:
		value = view("ProjectSparseList").Call(project)
	case sf.Multiple:
		value = view("ProjectList").Call(project)
	case sf.Optional:
		value = Id("optional").Call(project)
	default:
		value = project
	}
	g.Case(Lit(sf.MarshalName)).Block(
		List(Id("r").Dot(sf.Name), Err()).Op("=").Add(value).Call(Id("v")),
	)

	if t.HasElement() {
		element := Id("optional").Call(Id("decodePrimitiveElement"))
		if sf.Multiple {
			element = view("ProjectSparseList").Call(Id("decodePrimitiveElement"))
		}
		g.Case(Lit("_"+sf.MarshalName)).Block(
			List(Id("r").Dot(sf.Name+"Element"), Err()).Op("=").Add(element).Call(Id("v")),
		)
	}
}

func implementDecodeChoice(f *File, s ir.Struct, c ir.StructField) {
	iface := s.Name + c.Name
	f.Func().Id("decode"+iface).Params(Id("n").Add(document("Value"))).Params(Id(iface), Error()).Block(
		List(Id("key"), Err()).Op(":=").Id("choiceKey").Call(append([]Code{Id("n"), Lit(c.MarshalName + "[x]")}, generate.Alternatives(c)...)...),
		ifErrReturn(Nil(), Err()),
		Switch(Id("key")).BlockFunc(func(g *Group) {
			for _, t := range c.PossibleTypes {
				if t.IsPrimitive {
					g.Case(Lit(c.Key(t))).Block(
						List(Id("v"), Id("element"), Err()).Op(":=").Id("decodePrimitive").Call(Id("n"), Id("key"), generate.Projection(c, t)),
						Return(Id(t.Suffix()).Values(Id("Value").Op(":").Id("v"), Id("Element").Op(":").Id("element")), Err()),
					)
				} else {
					g.Case(Lit(c.Key(t))).Block(
						List(Id("v"), Id("_"), Err()).Op(":=").Add(view("Get")).Call(Id("n"), Id("key"), generate.Projection(c, t)),
						Return(Id("v"), Err()),
					)
				}
			}
		}),
		Return(Nil(), Nil()),
	)
}

func implementUnmarshalContained(f *File) {
	f.Func().Params(Id("r").Op("*").Id("ContainedResource")).Id("UnmarshalJSON").Params(Id("b").Index().Byte()).Error().Block(
		List(Id("n"), Err()).Op(":=").Add(document("Parse")).Call(Id("b")),
		ifErrReturn(Err()),
		If(Id("n").Dot("IsNull").Call()).Block(
			Return(Nil()),
		),
		List(Id("res"), Err()).Op(":=").Id("decodeContainedResource").Call(Id("n")),
		ifErrReturn(Qual("fmt", "Errorf").Call(Lit("decode contained resource: %w"), Err())),
		Id("r").Dot("Resource").Op("=").Id("res"),
		Return(Nil()),
	)
}

func implementDecodeContained(f *File, resources []ir.ResourceOrType) {
	var names []string
	for _, r := range resources {
		names = append(names, r.Name)
	}

	f.Func().Id("decodeContainedResource").Params(Id("n").Add(document("Value"))).Params(Id("r").Qual(generate.ModelPkg, "Resource"), Err().Error()).Block(
		If(Id("n").Dot("Kind").Call().Op("!=").Add(document("KindObject"))).Block(
			Return(Nil(), Op("&").Add(view("FieldError")).Values(
				Id("Expected").Op(":").Add(view("ShapeObject")),
				Id("Found").Op(":").Id("n").Dot("Kind").Call(),
			)),
		),
		List(Id("resourceType"), Id("ok"), Err()).Op(":=").Add(view("String")).Call(Id("n"), Lit("resourceType")),
		ifErrReturn(Nil(), Err()),
		If(Op("!").Id("ok")).Block(
			Return(Nil(), Op("&").Add(view("ResourceTypeError")).Values(Id("Expected").Op(":").Id("knownResourceTypes"))),
		),
		Switch(Id("resourceType")).BlockFunc(func(g *Group) {
			for _, name := range names {
				g.Case(Lit(name)).Block(
					List(Id("r"), Err()).Op("=").Id("decode"+name).Call(Id("n")),
				)
			}
			g.Default().Block(
				Return(Nil(), Op("&").Add(view("ResourceTypeError")).Values(
					Id("Expected").Op(":").Id("knownResourceTypes"),
					Id("Found").Op(":").Id("resourceType"),
				)),
			)
		}),
		Return(Id("r"), Err()),
	)

	f.Const().Id("knownResourceTypes").Op("=").Lit("one of " + strings.Join(names, ", "))
}

func implementDecodeHelpers(f *File) {
	member := Func().Params(Id("key").String(), Id("v").Add(document("Value"))).Error()

	f.Comment("decodeObject checks that n is an object carrying every key of required")
	f.Comment("and hands each non-null member to field. Errors returned by field are")
	f.Comment("prefixed with the member key.")
	f.Func().Id("decodeObject").Params(Id("n").Add(document("Value")), Id("required").Index().String(), Id("field").Add(member.Clone())).Error().Block(
		If(Id("n").Dot("Kind").Call().Op("!=").Add(document("KindObject"))).Block(
			Return(Op("&").Add(view("FieldError")).Values(
				Id("Expected").Op(":").Add(view("ShapeObject")),
				Id("Found").Op(":").Id("n").Dot("Kind").Call(),
			)),
		),
		For(List(Id("_"), Id("key")).Op(":=").Range().Id("required")).Block(
			If(List(Id("_"), Id("ok")).Op(":=").Add(view("Lookup")).Call(Id("n"), Id("key")), Op("!").Id("ok")).Block(
				Return(Op("&").Add(view("MissingFieldError")).Values(Id("Path").Op(":").Id("key"))),
			),
		),
		For(List(Id("key"), Id("v")).Op(":=").Range().Id("n").Dot("Members").Call()).Block(
			If(Id("v").Dot("IsNull").Call()).Block(
				Continue(),
			),
			If(Err().Op(":=").Id("field").Call(Id("key"), Id("v")), Err().Op("!=").Nil()).Block(
				Return(view("PrefixPath").Call(Err(), Id("key"))),
			),
		),
		Return(Nil()),
	)

	f.Comment("decodeResource is decodeObject for a resource whose resourceType member")
	f.Comment("must be resourceType.")
	f.Func().Id("decodeResource").Params(Id("n").Add(document("Value")), Id("resourceType").String(), Id("required").Index().String(), Id("field").Add(member.Clone())).Error().Block(
		If(Id("n").Dot("Kind").Call().Op("==").Add(document("KindObject"))).Block(
			If(Err().Op(":=").Add(view("ResourceType")).Call(Id("n"), Id("resourceType")).Call(view("Options").Values()), Err().Op("!=").Nil()).Block(
				Return(Err()),
			),
		),
		Return(Id("decodeObject").Call(Id("n"), Id("required"), Id("field"))),
	)

	f.Comment("optional turns a projection into one for pointer fields.")
	f.Func().Id("optional").Types(Id("T").Any()).Params(Id("project").Add(view("Projection")).Types(Id("T"))).Add(view("Projection")).Types(Op("*").Id("T")).Block(
		Return(Func().Params(Id("v").Add(document("Value"))).Params(Op("*").Id("T"), Error()).Block(
			List(Id("t"), Err()).Op(":=").Id("project").Call(Id("v")),
			ifErrReturn(Nil(), Err()),
			Return(Op("&").Id("t"), Nil()),
		)),
	)

	f.Comment("choiceKey returns the key of the alternative of field present in n, or")
	f.Comment(`"" if there is none. An alternative counts as present when its value or`)
	f.Comment(`its "_" sibling is.`)
	f.Func().Id("choiceKey").Params(Id("n").Add(document("Value")), Id("field").String(), Id("keys").Op("...").String()).Params(String(), Error()).Block(
		Var().Id("present").Index().String(),
		For(List(Id("_"), Id("key")).Op(":=").Range().Id("keys")).Block(
			List(Id("_"), Id("value")).Op(":=").Add(view("Lookup")).Call(Id("n"), Id("key")),
			List(Id("_"), Id("element")).Op(":=").Add(view("Lookup")).Call(Id("n"), Lit("_").Op("+").Id("key")),
			If(Id("value").Op("||").Id("element")).Block(
				Id("present").Op("=").Append(Id("present"), Id("key")),
			),
		),
		Switch(Len(Id("present"))).Block(
			Case(Lit(0)).Block(
				Return(Lit(""), Nil()),
			),
			Case(Lit(1)).Block(
				Return(Id("present").Index(Lit(0)), Nil()),
			),
			Default().Block(
				Return(Lit(""), Op("&").Add(view("ChoiceConflictError")).Values(
					Id("Path").Op(":").Id("field"),
					Id("Keys").Op(":").Id("present"),
				)),
			),
		),
	)

	f.Comment("decodePrimitive reads the primitive member key of n together with its")
	f.Comment(`"_" sibling.`)
	f.Func().Id("decodePrimitive").Types(Id("T").Any()).Params(Id("n").Add(document("Value")), Id("key").String(), Id("project").Add(view("Projection")).Types(Id("T"))).Params(Op("*").Id("T"), Op("*").Id("PrimitiveElement"), Error()).Block(
		List(Id("v"), Id("_"), Err()).Op(":=").Add(view("Get")).Call(Id("n"), Id("key"), Id("optional").Call(Id("project"))),
		ifErrReturn(Nil(), Nil(), Err()),
		List(Id("element"), Id("_"), Err()).Op(":=").Add(view("Get")).Call(Id("n"), Lit("_").Op("+").Id("key"), Id("optional").Call(Id("decodePrimitiveElement"))),
		ifErrReturn(Nil(), Nil(), Err()),
		Return(Id("v"), Id("element"), Nil()),
	)
}
