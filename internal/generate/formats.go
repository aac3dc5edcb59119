package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// FormatGenerator emits DecodeResource and EncodeResource, which read and
// write a resource of any type of the release in any payload format. XML
// goes through the XML hooks of the structs, the other formats through
// their JSON form.
type FormatGenerator struct {
	NoOpGenerator
}

func (g FormatGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("formats", strings.ToLower(release))
	isXML := Id("format").Op("==").Qual(DocumentPkg, "FormatXML")

	file.Comment("DecodeResource reads a resource of any known type in format.")
	file.Func().Id("DecodeResource").Params(Id("r").Qual("io", "Reader"), Id("format").Qual(DocumentPkg, "Format")).Params(Qual(ModelPkg, "Resource"), Error()).Block(
		If(isXML.Clone()).Block(
			Var().Id("c").Id("ContainedResource"),
			If(Err().Op(":=").Qual("encoding/xml", "NewDecoder").Call(Id("r")).Dot("Decode").Call(Op("&").Id("c")), Err().Op("!=").Nil()).Block(
				Return(Nil(), Qual("fmt", "Errorf").Call(Lit("decode xml: %w"), Err())),
			),
			Return(Id("c").Dot("Resource"), Nil()),
		),
		List(Id("n"), Err()).Op(":=").Qual(DocumentPkg, "Decode").Call(Id("r"), Id("format")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Err()),
		),
		List(Id("res"), Err()).Op(":=").Id("decodeContainedResource").Call(Id("n")),
		If(Err().Op("!=").Nil()).Block(
			Return(Nil(), Qual("fmt", "Errorf").Call(Lit("decode resource: %w"), Err())),
		),
		Return(Id("res"), Nil()),
	)

	file.Comment("EncodeResource writes res in format.")
	file.Func().Id("EncodeResource").Params(Id("w").Qual("io", "Writer"), Id("res").Qual(ModelPkg, "Resource"), Id("format").Qual(DocumentPkg, "Format")).Error().Block(
		If(isXML.Clone()).Block(
			Id("e").Op(":=").Qual("encoding/xml", "NewEncoder").Call(Id("w")),
			Id("e").Dot("Indent").Call(Lit(""), Lit("  ")),
			If(Err().Op(":=").Id("e").Dot("Encode").Call(Id("res")), Err().Op("!=").Nil()).Block(
				Return(Err()),
			),
			Return(Id("e").Dot("Close").Call()),
		),
		List(Id("b"), Err()).Op(":=").Qual(JSONPkg, "Marshal").Call(Id("res")),
		If(Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		List(Id("n"), Err()).Op(":=").Qual(DocumentPkg, "Parse").Call(Id("b")),
		If(Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		Return(Qual(DocumentPkg, "Encode").Call(Id("w"), Id("n"), Id("format"))),
	)
}
