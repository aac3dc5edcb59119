// Package json generates the JSON hooks of the structs. Resources write
// their resourceType member, choice fields are written under the key of
// the alternative they hold, and decoding is strict about the declared
// fields.
package json

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

type MarshalGenerator struct{}

func (g MarshalGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	wrote := false
	for _, s := range rt.Structs {
		switch {
		case len(generate.ChoiceFields(s)) > 0:
			implementMarshalChoices(f, s)
		case s.IsResource:
			implementMarshalResource(f, s.Name)
		default:
			continue
		}
		wrote = true
	}
	return wrote
}

func (g MarshalGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("contained_resource", strings.ToLower(release))
	implementMarshalContained(file)
	implementMarshalHelper(file)
}

// alias is the method-less local type used to marshal the struct fields
// without recursing into MarshalJSON.
func alias(name string) string {
	return strings.ToLower(name[:1]) + name[1:]
}

func implementMarshalResource(f *File, name string) {
	f.Func().Params(Id("r").Id(name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		Type().Id(alias(name)).Id(name),
		Return(Id("marshalResource").Call(Lit(name), Id(alias(name)).Call(Id("r")))),
	)
}

// implementMarshalChoices embeds the struct fields into an anonymous
// struct that has one field per alternative and sets the one held by
// each choice field.
func implementMarshalChoices(f *File, s ir.Struct) {
	a := alias(s.Name)
	choices := generate.ChoiceFields(s)

	f.Func().Params(Id("r").Id(s.Name)).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).BlockFunc(func(g *Group) {
		g.Type().Id(a).Id(s.Name)
		g.Id("w").Op(":=").StructFunc(func(g *Group) {
			g.Id(a)
			for _, c := range choices {
				for _, t := range c.PossibleTypes {
					key := c.Key(t)
					name := c.GoName(t)
					g.Id(name).Op("*").Add(generate.StructType(c, t)).Tag(map[string]string{"json": key + ",omitempty"})
					if t.HasElement() {
						g.Id(name + "Element").Op("*").Id("PrimitiveElement").Tag(map[string]string{"json": "_" + key + ",omitempty"})
					}
				}
			}
		}).Values(Id(a).Op(":").Id(a).Call(Id("r")))

		for _, c := range choices {
			g.Switch(Id("v").Op(":=").Id("r").Dot(c.Name).Assert(Type())).BlockFunc(func(g *Group) {
				g.Case(Nil())
				for _, t := range c.PossibleTypes {
					name := c.GoName(t)
					if t.IsPrimitive {
						g.Case(Id(t.Suffix())).Block(
							List(Id("w").Dot(name), Id("w").Dot(name+"Element")).Op("=").List(Id("v").Dot("Value"), Id("v").Dot("Element")),
						)
					} else {
						g.Case(Id(t.Suffix())).Block(
							Id("w").Dot(name).Op("=").Op("&").Id("v"),
						)
					}
				}
				g.Default().Block(
					Return(Nil(), Qual("fmt", "Errorf").Call(Lit(c.MarshalName+"[x]: unsupported alternative %T"), Id("v"))),
				)
			})
		}

		if s.IsResource {
			g.Return(Id("marshalResource").Call(Lit(s.Name), Id("w")))
		} else {
			g.Return(Qual(generate.JSONPkg, "Marshal").Call(Id("w")))
		}
	})
}

func implementMarshalContained(f *File) {
	f.Func().Params(Id("r").Id("ContainedResource")).Id("MarshalJSON").Params().Params(Index().Byte(), Error()).Block(
		If(Id("r").Dot("Resource").Op("==").Nil()).Block(
			Return(Index().Byte().Call(Lit("null")), Nil()),
		),
		Return(Qual(generate.JSONPkg, "Marshal").Call(Id("r").Dot("Resource"))),
	)
}

func implementMarshalHelper(f *File) {
	f.Comment("marshalResource encodes v and prepends the resourceType member.")
	f.Func().Id("marshalResource").Params(Id("resourceType").String(), Id("v").Any()).Params(Index().Byte(), Error()).Block(
		List(Id("b"), Err()).Op(":=").Qual(generate.JSONPkg, "Marshal").Call(Id("v")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		Var().Id("buf").Qual("bytes", "Buffer"),
		Id("buf").Dot("WriteString").Call(Lit(`{"resourceType":"`).Op("+").Id("resourceType").Op("+").Lit(`"`)),
		If(Len(Id("b")).Op(">").Lit(2)).Block(
			Id("buf").Dot("WriteByte").Call(LitRune(',')),
			Id("buf").Dot("Write").Call(Id("b").Index(Lit(1), Empty())),
		).Else().Block(
			Id("buf").Dot("WriteByte").Call(LitRune('}')),
		),
		Return(Id("buf").Dot("Bytes").Call(), Nil()),
	)
}
