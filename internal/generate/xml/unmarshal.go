package xml

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// UnmarshalGenerator emits strict XML decoders: attributes and child
// elements the struct does not declare are errors, as are missing
// required fields and more than one alternative of a choice field.
type UnmarshalGenerator struct {
	generate.NoOpGenerator
}

func (g UnmarshalGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	wrote := false
	for _, s := range rt.Structs {
		if skipStruct(s) {
			continue
		}
		implementUnmarshal(f, s)
		wrote = true
	}
	return wrote
}

func (g UnmarshalGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	pkg := strings.ToLower(release)
	implementUnmarshalContained(f("contained_resource", pkg), ir.FilterResources(rt))
	implementUnmarshalHelpers(f("xml", pkg))

	file := f("choices", pkg)
	for _, name := range ir.PrimitiveAlternatives(rt) {
		implementUnmarshalWrapper(file, name)
	}
}

func unmarshalParams() (Code, Code) {
	return Id("d").Op("*").Add(xmlQual("Decoder")), Id("start").Add(xmlQual("StartElement"))
}

func checkNamespace() *Statement {
	return If(Id("start").Dot("Name").Dot("Space").Op("!=").Id("namespaceFHIR")).Block(
		Return(Qual("fmt", "Errorf").Call(Lit("invalid namespace: %q, expected %q"), Id("start").Dot("Name").Dot("Space"), Id("namespaceFHIR"))),
	)
}

func implementUnmarshal(f *File, s ir.Struct) {
	var required []Code
	for _, sf := range s.Fields {
		if sf.Required() && !sf.Polymorph && !isAttribute(s, sf) {
			required = append(required, Lit(sf.MarshalName))
		}
	}
	choices := generate.ChoiceFields(s)
	track := len(required) > 0 || len(choices) > 0

	d, start := unmarshalParams()
	f.Func().Params(Id("r").Op("*").Id(s.Name)).Id("UnmarshalXML").Params(d, start).Error().BlockFunc(func(g *Group) {
		g.Add(checkNamespace())
		if s.IsResource {
			g.If(Id("start").Dot("Name").Dot("Local").Op("!=").Lit(s.Name)).Block(
				Return(Op("&").Add(view("ResourceTypeError")).Values(
					Id("Expected").Op(":").Lit(s.Name),
					Id("Found").Op(":").Id("start").Dot("Name").Dot("Local"),
				)),
			)
		}

		g.For(List(Id("_"), Id("a")).Op(":=").Range().Id("start").Dot("Attr")).Block(
			If(Id("a").Dot("Name").Dot("Space").Op("!=").Lit("")).Block(
				Return(Qual("fmt", "Errorf").Call(Lit("invalid attribute namespace: %q"), Id("a").Dot("Name").Dot("Space"))),
			),
			Switch(Id("a").Dot("Name").Dot("Local")).BlockFunc(func(g *Group) {
				g.Case(Lit("xmlns"))
				if !s.IsResource {
					g.Case(Lit("id")).Block(
						Id("r").Dot("Id").Op("=").Op("&").Id("a").Dot("Value"),
					)
				}
				if s.Name == "Extension" {
					g.Case(Lit("url")).Block(
						Id("r").Dot("Url").Op("=").Id("a").Dot("Value"),
					)
				}
				g.Default().Block(
					Return(Op("&").Add(view("UnknownFieldError")).Values(Id("Path").Op(":").Lit("@").Op("+").Id("a").Dot("Name").Dot("Local"))),
				)
			}),
		)
		if s.Name == "Extension" {
			g.If(Id("r").Dot("Url").Op("==").Lit("")).Block(
				Return(Op("&").Add(view("MissingFieldError")).Values(Id("Path").Op(":").Lit("url"))),
			)
		}

		if track {
			g.Var().Id("seen").Index().String()
		}
		g.For().Block(
			List(Id("token"), Err()).Op(":=").Id("d").Dot("Token").Call(),
			If(Err().Op("!=").Nil()).Block(
				Return(Err()),
			),
			Switch(Id("t").Op(":=").Id("token").Assert(Type())).Block(
				Case(xmlQual("StartElement")).BlockFunc(func(g *Group) {
					if track {
						g.Id("seen").Op("=").Append(Id("seen"), Id("t").Dot("Name").Dot("Local"))
					}
					g.Switch(Id("t").Dot("Name").Dot("Local")).BlockFunc(func(g *Group) {
						for _, sf := range s.Fields {
							if isAttribute(s, sf) {
								continue
							}
							unmarshalField(g, sf)
						}
						g.Default().Block(
							Err().Op("=").Op("&").Add(view("UnknownFieldError")).Values(),
						)
					})
					g.If(Err().Op("!=").Nil()).Block(
						Return(view("PrefixPath").Call(Err(), Id("t").Dot("Name").Dot("Local"))),
					)
				}),
				Case(xmlQual("EndElement")).BlockFunc(func(g *Group) {
					if len(required) > 0 {
						g.If(Err().Op(":=").Id("checkRequired").Call(append([]Code{Id("seen")}, required...)...), Err().Op("!=").Nil()).Block(
							Return(Err()),
						)
					}
					for _, c := range choices {
						args := append([]Code{Id("seen"), Lit(c.MarshalName + "[x]")}, generate.Alternatives(c)...)
						g.If(Err().Op(":=").Id("checkChoice").Call(args...), Err().Op("!=").Nil()).Block(
							Return(Err()),
						)
					}
					g.Return(Nil())
				}),
			),
		)
	})
}

func unmarshalField(g *Group, sf ir.StructField) {
	field := Id("r").Dot(sf.Name)

	if sf.Polymorph {
		for _, t := range sf.PossibleTypes {
			g.Case(Lit(sf.Key(t))).Block(
				List(field.Clone(), Err()).Op("=").Id("readChoice").Types(Id(t.Suffix())).Call(Id("d"), Id("t")),
			)
		}
		return
	}

	t := sf.PossibleTypes[0]
	var read *Statement
	switch {
	case t.IsPrimitive && sf.Multiple:
		read = Err().Op("=").Id("readRepeated").Call(Id("d"), Id("t"), parseFunc(sf, t), Op("&").Add(field.Clone()), Op("&").Id("r").Dot(sf.Name+"Element"))
	case t.IsPrimitive && sf.Optional:
		read = List(field.Clone(), Id("r").Dot(sf.Name+"Element"), Err()).Op("=").Id("readPrimitive").Call(Id("d"), Id("t"), parseFunc(sf, t))
	case t.IsPrimitive:
		read = List(Id("r").Dot(sf.Name+"Element"), Err()).Op("=").Id("readValue").Call(Id("d"), Id("t"), parseFunc(sf, t), Op("&").Add(field.Clone()))
	case sf.Multiple:
		read = Err().Op("=").Id("readList").Call(Id("d"), Id("t"), Op("&").Add(field.Clone()))
	case sf.Optional:
		read = List(field.Clone(), Err()).Op("=").Id("readElement").Types(generate.StructType(sf, t)).Call(Id("d"), Id("t"))
	default:
		read = Err().Op("=").Id("d").Dot("DecodeElement").Call(Op("&").Add(field.Clone()), Op("&").Id("t"))
	}
	g.Case(Lit(sf.MarshalName)).Block(read)
}

// parseFunc returns the function reading one value of alternative t of
// sf from attribute text.
func parseFunc(sf ir.StructField, t ir.FieldType) *Statement {
	if vs, ok := sf.RequiredValueSet(); ok {
		return Id("parseText").Call(view("ProjectCode").Call(Id(vs + "Codec")))
	}
	switch t.Name {
	case "boolean":
		return Id("parseBool")
	case "integer":
		return Id("parseNumber").Call(view("ProjectInt32"))
	case "positiveInt":
		return Id("parseNumber").Call(view("ProjectPositiveInt"))
	case "unsignedInt":
		return Id("parseNumber").Call(view("ProjectUnsignedInt"))
	case "decimal":
		return Id("parseDecimal")
	default:
		return Id("parseString")
	}
}

func implementUnmarshalContained(f *File, resources []ir.ResourceOrType) {
	d, start := unmarshalParams()
	f.Comment("UnmarshalXML reads a resource element. A lower case start element, such")
	f.Comment("as contained, is a wrapper around the resource element.")
	f.Func().Params(Id("r").Op("*").Id("ContainedResource")).Id("UnmarshalXML").Params(d, start).Params(Err().Error()).Block(
		If(
			List(Id("first"), Id("_")).Op(":=").Qual("unicode/utf8", "DecodeRuneInString").Call(Id("start").Dot("Name").Dot("Local")),
			Qual("unicode", "IsLower").Call(Id("first")),
		).Block(
			If(Err().Op(":=").Id("d").Dot("Decode").Call(Id("r")), Err().Op("!=").Nil()).Block(
				Return(Err()),
			),
			Return(Id("d").Dot("Skip").Call()),
		),
		checkNamespace(),
		Switch(Id("start").Dot("Name").Dot("Local")).BlockFunc(func(g *Group) {
			for _, r := range resources {
				g.Case(Lit(r.Name)).Block(
					Var().Id("v").Id(r.Name),
					Err().Op("=").Id("d").Dot("DecodeElement").Call(Op("&").Id("v"), Op("&").Id("start")),
					Id("r").Dot("Resource").Op("=").Id("v"),
				)
			}
			g.Default().Block(
				Return(Op("&").Add(view("ResourceTypeError")).Values(
					Id("Expected").Op(":").Id("knownResourceTypes"),
					Id("Found").Op(":").Id("start").Dot("Name").Dot("Local"),
				)),
			)
		}),
		Return(Err()),
	)
}

func implementUnmarshalWrapper(f *File, name string) {
	d, start := unmarshalParams()
	f.Func().Params(Id("p").Op("*").Id(generate.PrimitiveWrapper(name))).Id("UnmarshalXML").Params(d, start).Error().Block(
		Var().Id("err").Error(),
		List(Id("p").Dot("Value"), Id("p").Dot("Element"), Err()).Op("=").Id("readPrimitive").Call(Id("d"), Id("start"), parseFunc(ir.StructField{}, ir.FieldType{Name: name, IsPrimitive: true})),
		Return(Err()),
	)
}

func implementUnmarshalHelpers(f *File) {
	d, start := unmarshalParams()
	parse := func() *Statement {
		return Id("parse").Func().Params(String()).Params(Id("T"), Error())
	}
	invalid := func(shape string, detail Code) *Statement {
		return Op("&").Add(view("FieldError")).Values(
			Id("Expected").Op(":").Add(view(shape)),
			Id("Found").Op(":").Qual(generate.DocumentPkg, "KindString"),
			Id("Detail").Op(":").Add(detail),
		)
	}

	f.Func().Params(Id("p").Op("*").Id("xmlPrimitive")).Id("UnmarshalXML").Params(d, start).Error().Block(
		For(List(Id("_"), Id("a")).Op(":=").Range().Id("start").Dot("Attr")).Block(
			If(Id("a").Dot("Name").Dot("Space").Op("!=").Lit("")).Block(
				Return(Qual("fmt", "Errorf").Call(Lit("invalid attribute namespace: %q"), Id("a").Dot("Name").Dot("Space"))),
			),
			Switch(Id("a").Dot("Name").Dot("Local")).Block(
				Case(Lit("xmlns")),
				Case(Lit("id")).Block(
					Id("p").Dot("Id").Op("=").Op("&").Id("a").Dot("Value"),
				),
				Case(Lit("value")).Block(
					Id("p").Dot("Value").Op("=").Op("&").Id("a").Dot("Value"),
				),
				Default().Block(
					Return(Op("&").Add(view("UnknownFieldError")).Values(Id("Path").Op(":").Lit("@").Op("+").Id("a").Dot("Name").Dot("Local"))),
				),
			),
		),
		For().Block(
			List(Id("token"), Err()).Op(":=").Id("d").Dot("Token").Call(),
			If(Err().Op("!=").Nil()).Block(
				Return(Err()),
			),
			Switch(Id("t").Op(":=").Id("token").Assert(Type())).Block(
				Case(xmlQual("StartElement")).Block(
					If(Id("t").Dot("Name").Dot("Local").Op("!=").Lit("extension")).Block(
						Return(Op("&").Add(view("UnknownFieldError")).Values(Id("Path").Op(":").Id("t").Dot("Name").Dot("Local"))),
					),
					If(Err().Op(":=").Id("readList").Call(Id("d"), Id("t"), Op("&").Id("p").Dot("Extension")), Err().Op("!=").Nil()).Block(
						Return(view("PrefixPath").Call(Err(), Lit("extension"))),
					),
				),
				Case(xmlQual("EndElement")).Block(
					Return(Nil()),
				),
			),
		),
	)

	d, start = unmarshalParams()
	f.Comment("readPrimitive decodes a primitive element into its value and its id")
	f.Comment("and extensions.")
	f.Func().Id("readPrimitive").Types(Id("T").Any()).Params(d, start, parse()).Params(Op("*").Id("T"), Op("*").Id("PrimitiveElement"), Error()).Block(
		Var().Id("p").Id("xmlPrimitive"),
		If(Err().Op(":=").Id("d").Dot("DecodeElement").Call(Op("&").Id("p"), Op("&").Id("start")), Err().Op("!=").Nil()).Block(
			Return(Nil(), Nil(), Err()),
		),
		Var().Defs(
			Id("v").Op("*").Id("T"),
			Id("element").Op("*").Id("PrimitiveElement"),
		),
		If(Id("p").Dot("Value").Op("!=").Nil()).Block(
			List(Id("parsed"), Err()).Op(":=").Id("parse").Call(Op("*").Id("p").Dot("Value")),
			If(Err().Op("!=").Nil()).Block(
				Return(Nil(), Nil(), Err()),
			),
			Id("v").Op("=").Op("&").Id("parsed"),
		),
		If(Id("p").Dot("Id").Op("!=").Nil().Op("||").Id("p").Dot("Extension").Op("!=").Nil()).Block(
			Id("element").Op("=").Op("&").Id("PrimitiveElement").Values(
				Id("Id").Op(":").Id("p").Dot("Id"),
				Id("Extension").Op(":").Id("p").Dot("Extension"),
			),
		),
		Return(Id("v"), Id("element"), Nil()),
	)

	d, start = unmarshalParams()
	f.Comment("readValue is readPrimitive for required fields, which are held by")
	f.Comment("value. The value attribute must be present.")
	f.Func().Id("readValue").Types(Id("T").Any()).Params(d, start, parse(), Id("value").Op("*").Id("T")).Params(Op("*").Id("PrimitiveElement"), Error()).Block(
		List(Id("v"), Id("element"), Err()).Op(":=").Id("readPrimitive").Call(Id("d"), Id("start"), Id("parse")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		If(Id("v").Op("==").Nil()).Block(
			Return(Nil(), Op("&").Add(view("MissingFieldError")).Values()),
		),
		Op("*").Id("value").Op("=").Op("*").Id("v"),
		Return(Id("element"), Nil()),
	)

	d, start = unmarshalParams()
	f.Comment("readRepeated appends one repetition of a repeated primitive. The")
	f.Comment("element slice stays nil until a repetition carries an id or extensions.")
	f.Func().Id("readRepeated").Types(Id("T").Any()).Params(
		d, start, parse(),
		Id("values").Op("*").Index().Op("*").Id("T"),
		Id("elements").Op("*").Index().Op("*").Id("PrimitiveElement"),
	).Error().Block(
		List(Id("v"), Id("element"), Err()).Op(":=").Id("readPrimitive").Call(Id("d"), Id("start"), Id("parse")),
		If(Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		If(Id("element").Op("!=").Nil().Op("&&").Op("*").Id("elements").Op("==").Nil()).Block(
			Op("*").Id("elements").Op("=").Make(Index().Op("*").Id("PrimitiveElement"), Len(Op("*").Id("values"))),
		),
		Op("*").Id("values").Op("=").Append(Op("*").Id("values"), Id("v")),
		If(Op("*").Id("elements").Op("!=").Nil()).Block(
			Op("*").Id("elements").Op("=").Append(Op("*").Id("elements"), Id("element")),
		),
		Return(Nil()),
	)

	d, start = unmarshalParams()
	f.Func().Id("readElement").Types(Id("T").Any()).Params(d, start).Params(Op("*").Id("T"), Error()).Block(
		Var().Id("v").Id("T"),
		If(Err().Op(":=").Id("d").Dot("DecodeElement").Call(Op("&").Id("v"), Op("&").Id("start")), Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		Return(Op("&").Id("v"), Nil()),
	)

	d, start = unmarshalParams()
	f.Func().Id("readList").Types(Id("T").Any()).Params(d, start, Id("list").Op("*").Index().Id("T")).Error().Block(
		Var().Id("v").Id("T"),
		If(Err().Op(":=").Id("d").Dot("DecodeElement").Call(Op("&").Id("v"), Op("&").Id("start")), Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		Op("*").Id("list").Op("=").Append(Op("*").Id("list"), Id("v")),
		Return(Nil()),
	)

	d, start = unmarshalParams()
	f.Comment("readChoice decodes one alternative of a choice field.")
	f.Func().Id("readChoice").Types(Id("T").Any()).Params(d, start).Params(Id("T"), Error()).Block(
		Var().Id("v").Id("T"),
		Err().Op(":=").Id("d").Dot("DecodeElement").Call(Op("&").Id("v"), Op("&").Id("start")),
		Return(Id("v"), Err()),
	)

	f.Comment("checkRequired reports the first of required missing from the child")
	f.Comment("elements seen.")
	f.Func().Id("checkRequired").Params(Id("seen").Index().String(), Id("required").Op("...").String()).Error().Block(
		For(List(Id("_"), Id("key")).Op(":=").Range().Id("required")).Block(
			If(Op("!").Qual("slices", "Contains").Call(Id("seen"), Id("key"))).Block(
				Return(Op("&").Add(view("MissingFieldError")).Values(Id("Path").Op(":").Id("key"))),
			),
		),
		Return(Nil()),
	)

	f.Comment("checkChoice reports a conflict when seen holds more than one")
	f.Comment("alternative of field.")
	f.Func().Id("checkChoice").Params(Id("seen").Index().String(), Id("field").String(), Id("keys").Op("...").String()).Error().Block(
		Var().Id("present").Index().String(),
		For(List(Id("_"), Id("key")).Op(":=").Range().Id("seen")).Block(
			If(Qual("slices", "Contains").Call(Id("keys"), Id("key"))).Block(
				Id("present").Op("=").Append(Id("present"), Id("key")),
			),
		),
		If(Len(Id("present")).Op(">").Lit(1)).Block(
			Return(Op("&").Add(view("ChoiceConflictError")).Values(
				Id("Path").Op(":").Id("field"),
				Id("Keys").Op(":").Id("present"),
			)),
		),
		Return(Nil()),
	)

	f.Func().Id("parseString").Params(Id("s").String()).Params(String(), Error()).Block(
		Return(Id("s"), Nil()),
	)

	f.Func().Id("parseBool").Params(Id("s").String()).Params(Bool(), Error()).Block(
		Switch(Id("s")).Block(
			Case(Lit("true")).Block(
				Return(True(), Nil()),
			),
			Case(Lit("false")).Block(
				Return(False(), Nil()),
			),
		),
		Return(False(), invalid("ShapeBoolean", Qual("strconv", "Quote").Call(Id("s")))),
	)

	f.Func().Id("parseDecimal").Params(Id("s").String()).Params(Qual(generate.DocumentPkg, "Number"), Error()).Block(
		Id("n").Op(":=").Qual(generate.DocumentPkg, "Number").Call(Id("s")),
		List(Id("d"), Err()).Op(":=").Id("n").Dot("Decimal").Call(),
		If(Err().Op("!=").Nil()).Block(
			Return(Lit(""), invalid("ShapeDecimal", Err().Dot("Error").Call())),
		),
		If(Id("d").Dot("Form").Op("!=").Qual(generate.ApdPkg, "Finite")).Block(
			Return(Lit(""), invalid("ShapeDecimal", Qual("strconv", "Quote").Call(Id("s")))),
		),
		Return(Id("n"), Nil()),
	)

	f.Comment("parseNumber reads an attribute value through a JSON number projection.")
	f.Func().Id("parseNumber").Types(Id("T").Any()).Params(Id("project").Add(view("Projection")).Types(Id("T"))).Func().Params(String()).Params(Id("T"), Error()).Block(
		Return(Func().Params(Id("s").String()).Params(Id("T"), Error()).Block(
			Return(Id("project").Call(Qual(generate.DocumentPkg, "NumberValue").Call(Qual(generate.DocumentPkg, "Number").Call(Id("s"))))),
		)),
	)

	f.Comment("parseText reads an attribute value through a JSON string projection.")
	f.Func().Id("parseText").Types(Id("T").Any()).Params(Id("project").Add(view("Projection")).Types(Id("T"))).Func().Params(String()).Params(Id("T"), Error()).Block(
		Return(Func().Params(Id("s").String()).Params(Id("T"), Error()).Block(
			Return(Id("project").Call(Qual(generate.DocumentPkg, "String").Call(Id("s")))),
		)),
	)
}
