package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// StringerGenerator gives every struct, and ContainedResource, a String
// method printing its indented JSON encoding. Values that cannot be
// encoded print as null.
type StringerGenerator struct {
	NoOpGenerator
}

func (g StringerGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		implementStringer(f, s.Name)
	}
	return len(rt.Structs) > 0
}

func (g StringerGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	implementStringer(f("contained_resource", strings.ToLower(release)), "ContainedResource")
}

func implementStringer(f *File, name string) {
	f.Func().Params(Id("r").Id(name)).Id("String").Params().String().Block(
		List(Id("buf"), Err()).Op(":=").Qual(JSONPkg, "MarshalIndent").Call(Id("r"), Lit(""), Lit("  ")),
		If(Err().Op("!=").Nil()).Block(
			Return(Lit("null")),
		),
		Return(String().Call(Id("buf"))),
	)
}
