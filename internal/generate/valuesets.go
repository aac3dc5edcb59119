package generate

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ValueSetsGenerator emits one code type per value set with a required
// binding, its constants and its codec.
type ValueSetsGenerator struct {
	NoOpGenerator
	ValueSets []ir.ValueSet
}

func (g ValueSetsGenerator) GenerateType(_ *File, _ ir.ResourceOrType) bool {
	// Don't generate per-type files, we generate all value sets in GenerateAdditional
	return false
}

func (g ValueSetsGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	bound := collectRequiredBindings(rt)

	vf := f("value_sets", strings.ToLower(release))
	for _, vs := range g.ValueSets {
		if !bound[vs.Name] {
			continue
		}
		generateValueSet(vf, vs)
	}
}

func collectRequiredBindings(types []ir.ResourceOrType) map[string]bool {
	bindings := map[string]bool{}
	for _, rt := range types {
		for _, s := range rt.Structs {
			for _, field := range s.Fields {
				if vs, ok := field.RequiredValueSet(); ok {
					bindings[vs] = true
				}
			}
		}
	}
	return bindings
}

func generateValueSet(f *File, vs ir.ValueSet) {
	codec := vs.Name + "Codec"

	f.Commentf("%s is a code of the value set %s.", vs.Name, vs.URL)
	f.Type().Id(vs.Name).Uint8()

	f.Const().DefsFunc(func(g *Group) {
		for i, c := range vs.Concepts {
			g.Comment(fmt.Sprintf("%s %s", vs.Name, c.Display))
			if i == 0 {
				g.Id(constantName(vs.Name, c.Code)).Id(vs.Name).Op("=").Iota().Op("+").Lit(1)
			} else {
				g.Id(constantName(vs.Name, c.Code))
			}
		}
	})

	f.Commentf("%s translates %s codes.", codec, vs.Name)
	f.Var().Id(codec).Op("=").Qual(EnumPkg, "NewCodec").CustomFunc(multiline, func(g *Group) {
		g.Lit(vs.Name)
		for _, c := range vs.Concepts {
			g.Qual(EnumPkg, "Entry").Types(Id(vs.Name)).Values(
				Id("Tag").Op(":").Id(constantName(vs.Name, c.Code)),
				Id("Code").Op(":").Lit(c.Code),
			)
		}
	})

	f.Commentf("Parse%s returns the %s for code.", vs.Name, vs.Name)
	f.Func().Id("Parse"+vs.Name).Params(Id("code").String()).Params(Id(vs.Name), Bool()).Block(
		Return(Id(codec).Dot("Parse").Call(Id("code"))),
	)

	f.Func().Params(Id("c").Id(vs.Name)).Id("String").Params().String().Block(
		Return(Id(codec).Dot("String").Call(Id("c"))),
	)

	f.Func().Params(Id("c").Id(vs.Name)).Id("MarshalText").Params().Params(Index().Byte(), Error()).Block(
		Return(Id(codec).Dot("MarshalText").Call(Id("c"))),
	)

	f.Func().Params(Id("c").Op("*").Id(vs.Name)).Id("UnmarshalText").Params(Id("b").Index().Byte()).Error().Block(
		List(Id("v"), Err()).Op(":=").Id(codec).Dot("Decode").Call(String().Call(Id("b"))),
		If(Err().Op("!=").Nil()).Block(
			Return(Err()),
		),
		Op("*").Id("c").Op("=").Id("v"),
		Return(Nil()),
	)
	f.Line()
}

// UpperCamelCase conversion with minimal replacements
func constantName(valueSetName, concept string) string {
	replacer := strings.NewReplacer(
		"<=", "LessThanOrEqualTo",
		">=", "GreaterThanOrEqualTo",
		"<", "LessThan",
		">", "GreaterThan",
		"!=", "NotEqualTo",
		"=", "EqualTo",
	)

	return strcase.ToCamel(valueSetName) + strcase.ToCamel(replacer.Replace(concept))
}
