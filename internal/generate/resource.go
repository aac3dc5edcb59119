package generate

import (
	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// ImplResourceGenerator makes the struct of every resource satisfy
// model.Resource, or model.OperationOutcome for OperationOutcome.
type ImplResourceGenerator struct {
	NoOpGenerator
}

func (g ImplResourceGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	if !rt.IsResource {
		return false
	}

	iface := "Resource"
	if rt.Name == "OperationOutcome" {
		iface = "OperationOutcome"
	}
	f.Var().Id("_").Qual(ModelPkg, iface).Op("=").Id(rt.Name).Values()

	f.Func().Params(Id("r").Id(rt.Name)).Id("ResourceType").Params().String().Block(
		Return(Lit(rt.Name)),
	)

	// id is an optional primitive, so it is a *string in every resource.
	f.Func().Params(Id("r").Id(rt.Name)).Id("ResourceId").Params().Params(String(), Bool()).Block(
		If(Id("r").Dot("Id").Op("==").Nil()).Block(
			Return(Lit(""), False()),
		),
		Return(Op("*").Id("r").Dot("Id"), True()),
	)
	return true
}
