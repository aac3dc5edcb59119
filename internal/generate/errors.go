package generate

import (
	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// OutcomeErrorGenerator lets OperationOutcome be returned as an error.
// Each issue renders as "severity: code", followed by its diagnostics
// when present.
type OutcomeErrorGenerator struct {
	NoOpGenerator
}

func (g OutcomeErrorGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	if rt.Name != "OperationOutcome" {
		return false
	}

	write := func(s Code) *Statement {
		return Id("b").Dot("WriteString").Call(s)
	}
	issue := func(field string) *Statement {
		return Id("i").Dot(field)
	}

	f.Func().Params(Id("o").Id("OperationOutcome")).Id("Error").Params().String().Block(
		If(Len(Id("o").Dot("Issue")).Op("==").Lit(0)).Block(
			Return(Lit("operation outcome without issues")),
		),
		Var().Id("b").Qual("strings", "Builder"),
		For(List(Id("n"), Id("i")).Op(":=").Range().Id("o").Dot("Issue")).Block(
			If(Id("n").Op(">").Lit(0)).Block(
				write(Lit("; ")),
			),
			write(issue("Severity").Dot("String").Call()),
			write(Lit(": ")),
			write(issue("Code").Dot("String").Call()),
			If(issue("Diagnostics").Op("!=").Nil()).Block(
				write(Lit(": ")),
				write(Op("*").Add(issue("Diagnostics"))),
			),
		),
		Return(Id("b").Dot("String").Call()),
	)
	return true
}
