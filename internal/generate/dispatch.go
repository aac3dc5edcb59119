package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ViewResourceGenerator emits WrapResource, which picks the view by
// resourceType, and the Decode entry points built on it.
type ViewResourceGenerator struct {
	NoOpGenerator
	// StructPkg is the import path of the struct package, which decodes
	// XML payloads.
	StructPkg string
}

func (g ViewResourceGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("resources", strings.ToLower(release)+"view")
	resources := ir.FilterResources(rt)

	var names []string
	for _, r := range resources {
		names = append(names, r.Name)
	}

	file.Comment("WrapResource returns the view matching the resourceType of n.")
	file.Func().Id("WrapResource").Params(Id("n").Qual(DocumentPkg, "Value")).Params(Qual(ViewPkg, "Resource"), Error()).Block(
		If(Id("n").Dot("Kind").Call().Op("!=").Qual(DocumentPkg, "KindObject")).Block(
			Return(Nil(), Op("&").Qual(ViewPkg, "FieldError").Values(Dict{
				Id("Expected"): Qual(ViewPkg, "ShapeObject"),
				Id("Found"):    Id("n").Dot("Kind").Call(),
			})),
		),
		List(Id("resourceType"), Id("ok"), Err()).Op(":=").Qual(ViewPkg, "String").Call(Id("n"), Lit("resourceType")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		If(Op("!").Id("ok")).Block(
			Return(Nil(), Op("&").Qual(ViewPkg, "ResourceTypeError").Values(Dict{
				Id("Expected"): Id("knownResourceTypes"),
			})),
		),
		Switch(Id("resourceType")).BlockFunc(func(g *Group) {
			for _, name := range names {
				g.Case(Lit(name)).Block(
					Return(Id(wrapFunc(name)).Call(Id("n")), Nil()),
				)
			}
		}),
		Return(Nil(), Op("&").Qual(ViewPkg, "ResourceTypeError").Values(Dict{
			Id("Expected"): Id("knownResourceTypes"),
			Id("Found"):    Id("resourceType"),
		})),
	)

	file.Const().Id("knownResourceTypes").Op("=").Lit("one of " + strings.Join(names, ", "))

	file.Comment("Decode parses a JSON resource of any known type and validates it.")
	file.Func().Id("Decode").Params(Id("b").Index().Byte(), Id("opts").Op("...").Qual(ViewPkg, "ValidateOption")).Params(Qual(ViewPkg, "Resource"), Error()).Block(
		List(Id("n"), Err()).Op(":=").Qual(DocumentPkg, "Parse").Call(Id("b")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		Return(Id("decode").Call(Id("n"), Id("opts"))),
	)

	file.Comment("DecodeFormat is like Decode for any supported payload format. XML is")
	file.Comment("read into the release structs first and viewed through their JSON form.")
	file.Func().Id("DecodeFormat").Params(Id("r").Qual("io", "Reader"), Id("format").Qual(DocumentPkg, "Format"), Id("opts").Op("...").Qual(ViewPkg, "ValidateOption")).Params(Qual(ViewPkg, "Resource"), Error()).Block(
		If(Id("format").Op("==").Qual(DocumentPkg, "FormatXML")).Block(
			List(Id("res"), Err()).Op(":=").Qual(g.StructPkg, "DecodeResource").Call(Id("r"), Id("format")),
			If(Err().Op("!=").Nil()).Block(
				Return(Nil(), Err()),
			),
			List(Id("b"), Err()).Op(":=").Qual(JSONPkg, "Marshal").Call(Id("res")),
			If(Err().Op("!=").Nil()).Block(
				Return(Nil(), Err()),
			),
			List(Id("n"), Err()).Op(":=").Qual(DocumentPkg, "Parse").Call(Id("b")),
			If(Err().Op("!=").Nil()).Block(
				Return(Nil(), Err()),
			),
			Return(Id("decode").Call(Id("n"), Id("opts"))),
		),
		List(Id("n"), Err()).Op(":=").Qual(DocumentPkg, "Decode").Call(Id("r"), Id("format")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		Return(Id("decode").Call(Id("n"), Id("opts"))),
	)

	file.Func().Id("decode").Params(Id("n").Qual(DocumentPkg, "Value"), Id("opts").Index().Qual(ViewPkg, "ValidateOption")).Params(Qual(ViewPkg, "Resource"), Error()).Block(
		List(Id("r"), Err()).Op(":=").Id("WrapResource").Call(Id("n")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		If(Err().Op(":=").Id("r").Dot("Validate").Call(Id("opts").Op("...")), Err().Op("!=").Nil()).Block(
			Return(Nil(), Qual("fmt", "Errorf").Call(Lit("decode %s: %w"), Id("r").Dot("ResourceType").Call(), Err())),
		),
		Return(Id("r"), Nil()),
	)
}
