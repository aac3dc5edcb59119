// Package xml generates the XML hooks of the structs. Primitive values
// are written as value attributes, element ids and Extension.url as
// attributes of their element, and everything else as child elements in
// declaration order.
package xml

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

const (
	xmlPkg        = "encoding/xml"
	NamespaceFHIR = "http://hl7.org/fhir"
)

type MarshalGenerator struct {
	generate.NoOpGenerator
}

func (g MarshalGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	wrote := false
	for _, s := range rt.Structs {
		if skipStruct(s) {
			continue
		}
		implementMarshal(f, s)
		wrote = true
	}
	return wrote
}

func (g MarshalGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	pkg := strings.ToLower(release)
	implementMarshalContained(f("contained_resource", pkg))
	implementMarshalHelpers(f("xml", pkg))

	file := f("choices", pkg)
	for _, name := range ir.PrimitiveAlternatives(rt) {
		implementMarshalWrapper(file, name)
	}
}

// skipStruct reports the structs without an element form of their own.
// PrimitiveElement is written as part of the primitive it belongs to.
func skipStruct(s ir.Struct) bool {
	return s.Name == "PrimitiveElement"
}

// isAttribute reports the fields written as attributes instead of child
// elements.
func isAttribute(s ir.Struct, f ir.StructField) bool {
	if !s.IsResource && f.Name == "Id" {
		return true
	}
	return s.Name == "Extension" && f.Name == "Url"
}

func xmlQual(name string) *Statement {
	return Qual(xmlPkg, name)
}

func view(name string) *Statement {
	return Qual(generate.ViewPkg, name)
}

func marshalParams() (Code, Code) {
	return Id("e").Op("*").Add(xmlQual("Encoder")), Id("start").Add(xmlQual("StartElement"))
}

func implementMarshal(f *File, s ir.Struct) {
	e, start := marshalParams()
	f.Func().Params(Id("r").Id(s.Name)).Id("MarshalXML").Params(e, start).Error().BlockFunc(func(g *Group) {
		if s.IsResource {
			g.Id("start").Dot("Name").Op("=").Add(xmlQual("Name")).Values(
				Id("Space").Op(":").Id("namespaceFHIR"),
				Id("Local").Op(":").Lit(s.Name),
			)
		} else {
			g.If(Id("r").Dot("Id").Op("!=").Nil()).Block(
				appendAttr(Lit("id"), Op("*").Id("r").Dot("Id")),
			)
		}
		if s.Name == "Extension" {
			g.Add(appendAttr(Lit("url"), Id("r").Dot("Url")))
		}

		g.Id("w").Op(":=").Id("xmlWriter").Values(Id("e").Op(":").Id("e"))
		g.Id("w").Dot("token").Call(Id("start"))
		for _, sf := range s.Fields {
			if isAttribute(s, sf) {
				continue
			}
			marshalField(g, sf)
		}
		g.Id("w").Dot("token").Call(Id("start").Dot("End").Call())
		g.Return(Id("w").Dot("err"))
	})
}

func appendAttr(name, value Code) *Statement {
	return Id("start").Dot("Attr").Op("=").Append(Id("start").Dot("Attr"), Id("attr").Call(name, value))
}

func marshalField(g *Group, sf ir.StructField) {
	if sf.Polymorph {
		g.Switch(Id("v").Op(":=").Id("r").Dot(sf.Name).Assert(Type())).BlockFunc(func(g *Group) {
			g.Case(Nil())
			for _, t := range sf.PossibleTypes {
				g.Case(Id(t.Suffix())).Block(
					Id("w").Dot("element").Call(Lit(sf.Key(t)), Id("v")),
				)
			}
			g.Default().Block(
				Id("w").Dot("fail").Call(Qual("fmt", "Errorf").Call(Lit(sf.MarshalName+"[x]: unsupported alternative %T"), Id("v"))),
			)
		})
		return
	}

	t := sf.PossibleTypes[0]
	if !t.IsPrimitive {
		g.Id("w").Dot("element").Call(Lit(sf.MarshalName), Id("r").Dot(sf.Name))
		return
	}

	value := Id("r").Dot(sf.Name)
	if !sf.Optional && !sf.Multiple {
		value = Op("&").Id("r").Dot(sf.Name)
	}
	element := Nil()
	if t.HasElement() {
		element = Id("r").Dot(sf.Name + "Element")
	}
	write := "writePrimitive"
	if sf.Multiple {
		write = "writePrimitives"
	}
	g.Id(write).Call(Op("&").Id("w"), Lit(sf.MarshalName), value, element, formatFunc(sf, t))
}

// formatFunc returns the function writing one value of alternative t of
// sf as attribute text.
func formatFunc(sf ir.StructField, t ir.FieldType) *Statement {
	if vs, ok := sf.RequiredValueSet(); ok {
		return Id("formatText").Types(Id(vs))
	}
	switch t.Name {
	case "boolean":
		return Id("formatBool")
	case "integer":
		return Id("formatInt32")
	case "positiveInt", "unsignedInt":
		return Id("formatUint32")
	case "decimal":
		return Id("formatNumber")
	default:
		return Id("formatString")
	}
}

func implementMarshalContained(f *File) {
	e, start := marshalParams()
	f.Comment("MarshalXML writes the resource as the only child of start.")
	f.Func().Params(Id("r").Id("ContainedResource")).Id("MarshalXML").Params(e, start).Error().Block(
		If(Id("r").Dot("Resource").Op("==").Nil()).Block(
			Return(Nil()),
		),
		If(Err().Op(":=").Id("e").Dot("EncodeToken").Call(Id("start")), Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		If(Err().Op(":=").Id("e").Dot("Encode").Call(Id("r").Dot("Resource")), Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		Return(Id("e").Dot("EncodeToken").Call(Id("start").Dot("End").Call())),
	)
}

func implementMarshalWrapper(f *File, name string) {
	e, start := marshalParams()
	f.Func().Params(Id("p").Id(generate.PrimitiveWrapper(name))).Id("MarshalXML").Params(e, start).Error().Block(
		Id("w").Op(":=").Id("xmlWriter").Values(Id("e").Op(":").Id("e")),
		Id("writePrimitive").Call(Op("&").Id("w"), Id("start").Dot("Name").Dot("Local"), Id("p").Dot("Value"), Id("p").Dot("Element"), formatFunc(ir.StructField{}, ir.FieldType{Name: name, IsPrimitive: true})),
		Return(Id("w").Dot("err")),
	)
}

func implementMarshalHelpers(f *File) {
	typeParam := Id("T").Any()
	format := Func().Params(Id("T")).Params(String(), Error())

	f.Const().Id("namespaceFHIR").Op("=").Lit(NamespaceFHIR)

	f.Func().Id("attr").Params(Id("name"), Id("value").String()).Add(xmlQual("Attr")).Block(
		Return(xmlQual("Attr").Values(
			Id("Name").Op(":").Add(xmlQual("Name")).Values(Id("Local").Op(":").Id("name")),
			Id("Value").Op(":").Id("value"),
		)),
	)

	f.Comment("xmlWriter keeps the first error of a sequence of writes and skips the")
	f.Comment("writes after it.")
	f.Type().Id("xmlWriter").Struct(
		Id("e").Op("*").Add(xmlQual("Encoder")),
		Id("err").Error(),
	)

	f.Func().Params(Id("w").Op("*").Id("xmlWriter")).Id("token").Params(Id("t").Add(xmlQual("Token"))).Block(
		If(Id("w").Dot("err").Op("==").Nil()).Block(
			Id("w").Dot("err").Op("=").Id("w").Dot("e").Dot("EncodeToken").Call(Id("t")),
		),
	)

	f.Comment("element writes v as an element called name. Nil pointers write nothing")
	f.Comment("and slices write one element per entry.")
	f.Func().Params(Id("w").Op("*").Id("xmlWriter")).Id("element").Params(Id("name").String(), Id("v").Any()).Block(
		If(Id("w").Dot("err").Op("==").Nil()).Block(
			Id("w").Dot("err").Op("=").Id("w").Dot("e").Dot("EncodeElement").Call(
				Id("v"),
				xmlQual("StartElement").Values(Id("Name").Op(":").Add(xmlQual("Name")).Values(Id("Local").Op(":").Id("name"))),
			),
		),
	)

	f.Func().Params(Id("w").Op("*").Id("xmlWriter")).Id("fail").Params(Err().Error()).Block(
		If(Id("w").Dot("err").Op("==").Nil()).Block(
			Id("w").Dot("err").Op("=").Err(),
		),
	)

	f.Comment("xmlPrimitive is the element form of a primitive. The value and the id")
	f.Comment("are attributes, the extensions are children.")
	f.Type().Id("xmlPrimitive").Struct(
		Id("Id").Op("*").String().Tag(map[string]string{"xml": "id,attr,omitempty"}),
		Id("Value").Op("*").String().Tag(map[string]string{"xml": "value,attr,omitempty"}),
		Id("Extension").Index().Id("Extension").Tag(map[string]string{"xml": "extension"}),
	)

	f.Comment("writePrimitive writes a primitive value with its id and extensions.")
	f.Comment("Nothing is written when both are absent.")
	f.Func().Id("writePrimitive").Types(typeParam.Clone()).Params(
		Id("w").Op("*").Id("xmlWriter"),
		Id("name").String(),
		Id("v").Op("*").Id("T"),
		Id("element").Op("*").Id("PrimitiveElement"),
		Id("format").Add(format.Clone()),
	).Block(
		If(Id("w").Dot("err").Op("!=").Nil().Op("||").Parens(Id("v").Op("==").Nil().Op("&&").Id("element").Op("==").Nil())).Block(
			Return(),
		),
		Var().Id("p").Id("xmlPrimitive"),
		If(Id("v").Op("!=").Nil()).Block(
			List(Id("s"), Err()).Op(":=").Id("format").Call(Op("*").Id("v")),
			If(Err().Op("!=").Nil()).Block(
				Id("w").Dot("fail").Call(Qual("fmt", "Errorf").Call(Lit("field %s: %w"), Id("name"), Err())),
				Return(),
			),
			Id("p").Dot("Value").Op("=").Op("&").Id("s"),
		),
		If(Id("element").Op("!=").Nil()).Block(
			List(Id("p").Dot("Id"), Id("p").Dot("Extension")).Op("=").List(Id("element").Dot("Id"), Id("element").Dot("Extension")),
		),
		Id("w").Dot("element").Call(Id("name"), Id("p")),
	)

	f.Comment("writePrimitives writes one element per position of a repeated")
	f.Comment("primitive.")
	f.Func().Id("writePrimitives").Types(typeParam.Clone()).Params(
		Id("w").Op("*").Id("xmlWriter"),
		Id("name").String(),
		Id("values").Index().Op("*").Id("T"),
		Id("elements").Index().Op("*").Id("PrimitiveElement"),
		Id("format").Add(format.Clone()),
	).Block(
		For(Id("i").Op(":=").Range().Max(Len(Id("values")), Len(Id("elements")))).Block(
			Var().Defs(
				Id("v").Op("*").Id("T"),
				Id("element").Op("*").Id("PrimitiveElement"),
			),
			If(Id("i").Op("<").Len(Id("values"))).Block(
				Id("v").Op("=").Id("values").Index(Id("i")),
			),
			If(Id("i").Op("<").Len(Id("elements"))).Block(
				Id("element").Op("=").Id("elements").Index(Id("i")),
			),
			Id("writePrimitive").Call(Id("w"), Id("name"), Id("v"), Id("element"), Id("format")),
		),
	)

	formats := []struct {
		name, param string
		typ, body   *Statement
	}{
		{"formatString", "s", String(), Return(Id("s"), Nil())},
		{"formatBool", "b", Bool(), Return(Qual("strconv", "FormatBool").Call(Id("b")), Nil())},
		{"formatInt32", "i", Int32(), Return(Qual("strconv", "FormatInt").Call(Int64().Call(Id("i")), Lit(10)), Nil())},
		{"formatUint32", "u", Uint32(), Return(Qual("strconv", "FormatUint").Call(Uint64().Call(Id("u")), Lit(10)), Nil())},
		{"formatNumber", "n", Qual(generate.DocumentPkg, "Number"), Return(String().Call(Id("n")), Nil())},
	}
	for _, ff := range formats {
		f.Func().Id(ff.name).Params(Id(ff.param).Add(ff.typ)).Params(String(), Error()).Block(ff.body)
	}

	f.Func().Id("formatText").Types(Id("T").Qual("encoding", "TextMarshaler")).Params(Id("v").Id("T")).Params(String(), Error()).Block(
		List(Id("b"), Err()).Op(":=").Id("v").Dot("MarshalText").Call(),
		Return(String().Call(Id("b")), Err()),
	)
}
