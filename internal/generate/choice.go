package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ChoiceGenerator emits the sealed interfaces returned by unified choice
// accessors, their marker methods and the wrapper types of primitive
// alternatives.
type ChoiceGenerator struct {
	NoOpGenerator
}

func (g ChoiceGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("choices", strings.ToLower(release)+"view")

	for _, name := range ir.PrimitiveAlternatives(rt) {
		wrapperComment(file, name)
		if name == "decimal" {
			file.Type().Id(PrimitiveWrapper(name)).Struct(
				Op("*").Qual(ApdPkg, "Decimal"),
			)
			continue
		}
		file.Type().Id(PrimitiveWrapper(name)).Add(viewPrimitive(name).goType())
	}
	generateChoiceInterfaces(file, rt)
}

// StructChoiceGenerator emits the sealed interfaces of the choice fields
// of the structs and the wrappers holding a primitive alternative
// together with its id and extensions.
type StructChoiceGenerator struct {
	NoOpGenerator
}

func (g StructChoiceGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("choices", strings.ToLower(release))

	for _, name := range ir.PrimitiveAlternatives(rt) {
		wrapperComment(file, name)
		file.Type().Id(PrimitiveWrapper(name)).Struct(
			Id("Value").Op("*").Add(StructType(ir.StructField{}, ir.FieldType{Name: name, IsPrimitive: true})),
			Id("Element").Op("*").Id("PrimitiveElement"),
		)
	}
	generateChoiceInterfaces(file, rt)
}

func wrapperComment(f *File, name string) {
	article := "a"
	if strings.ContainsRune("aeio", rune(name[0])) {
		article = "an"
	}
	f.Commentf("%s is %s %s alternative of a choice field.", PrimitiveWrapper(name), article, name)
}

func generateChoiceInterfaces(f *File, rt []ir.ResourceOrType) {
	for _, c := range ir.Polymorphs(rt) {
		iface := c.InterfaceName()
		f.Commentf("%s is one of the alternatives of %s[x]:", iface, c.Field.MarshalName)
		var names []string
		for _, t := range c.Field.PossibleTypes {
			names = append(names, t.Suffix())
		}
		f.Comment(strings.Join(names, ", ") + ".")
		f.Type().Id(iface).Interface(
			Id("is" + iface).Params(),
		)

		// Empty bodies render on one line, so the markers need explicit
		// separation.
		for _, t := range c.Field.PossibleTypes {
			f.Line()
			f.Func().Params(Id(t.Suffix())).Id("is" + iface).Params().Block()
		}
	}
}
