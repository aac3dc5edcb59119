package generate

import (
	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// BuilderGenerator emits one builder per view. The constructor takes the
// required fields in declared order; every field gets a setter.
type BuilderGenerator struct {
	NoOpGenerator
	StructPkg string
}

func (g BuilderGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		generateBuilder(f, s, g.StructPkg)
	}
	return true
}

func generateBuilder(f *File, s ir.Struct, structPkg string) {
	name := builderName(s.Name)
	recv := func() *Statement { return Id("b").Op("*").Id(name) }

	f.Commentf("%s assembles a new %s document.", name, s.Name)
	f.Type().Id(name).Struct(
		Id("doc").Qual(DocumentPkg, "ObjectBuilder"),
	)

	var required []ir.StructField
	for _, sf := range s.Fields {
		if sf.Required() && !sf.Polymorph {
			required = append(required, sf)
		}
	}

	f.Commentf("New%s starts a %s from its required fields.", name, s.Name)
	f.Func().Id("New"+name).ParamsFunc(func(g *Group) {
		for _, sf := range required {
			p := g.Id(paramName(sf.MarshalName))
			if sf.Multiple {
				p.Index()
			}
			p.Add(viewType(sf, sf.PossibleTypes[0], structPkg))
		}
	}).Op("*").Id(name).BlockFunc(func(g *Group) {
		g.Id("b").Op(":=").Op("&").Id(name).Values()
		if s.IsResource {
			g.Id("b").Dot("doc").Dot("Set").Call(Lit("resourceType"), Qual(DocumentPkg, "String").Call(Lit(s.Name)))
		}
		for _, sf := range required {
			arg := Id(paramName(sf.MarshalName))
			if sf.Multiple {
				arg.Op("...")
			}
			g.Id("b").Dot("Set" + sf.Name).Call(arg)
		}
		g.Return(Id("b"))
	})

	for _, sf := range s.Fields {
		for _, t := range sf.PossibleTypes {
			generateSetter(f, s, sf, t, structPkg)
		}
		if sf.Polymorph {
			f.Func().Params(recv()).Id(choiceClearer(sf)).Params(Id("keep").String()).Block(
				For(List(Id("_"), Id("k")).Op(":=").Range().Index().String().ValuesFunc(func(g *Group) {
					for _, k := range sf.ChoiceKeys() {
						g.Lit(k)
					}
				})).Block(
					If(Id("k").Op("!=").Id("keep").Op("&&").Id("k").Op("!=").Lit("_").Op("+").Id("keep")).Block(
						Id("b").Dot("doc").Dot("Delete").Call(Id("k")),
					),
				),
			)
		}
	}

	f.Commentf("Build returns a view over a snapshot of the %s built so far.", s.Name)
	f.Func().Params(recv()).Id("Build").Params().Id(s.Name).Block(
		Return(Id(wrapFunc(s.Name)).Call(Id("b").Dot("doc").Dot("Build").Call())),
	)
}

func generateSetter(f *File, s ir.Struct, sf ir.StructField, t ir.FieldType, structPkg string) {
	name := builderName(s.Name)
	field := sf.GoName(t)
	key := sf.Key(t)

	var (
		param *Statement
		value *Statement
	)
	vs, bound := sf.RequiredValueSet()
	switch {
	case sf.Multiple && t.IsNestedResource:
		param = Id("v").Op("...").Qual(ViewPkg, "Resource")
		value = Qual(ViewPkg, "ListValue").Call(Id("v"))
	case sf.Multiple && t.IsPrimitive:
		param = Id("v").Op("...").Op("*").String()
		value = Qual(ViewPkg, "StringsValue").Call(Id("v"))
	case sf.Multiple:
		param = Id("v").Op("...").Id(t.Name)
		value = Qual(ViewPkg, "ListValue").Call(Id("v"))
	case bound:
		param = Id("v").Qual(structPkg, vs)
		value = Qual(ViewPkg, "CodeValue").Call(Qual(structPkg, vs+"Codec"), Id("v"))
	case t.IsPrimitive:
		p := viewPrimitive(t.Name)
		param = Id("v").Add(p.goType())
		value = Qual(ViewPkg, p.encode).Call(Id("v"))
	default:
		param = Id("v").Id(t.Name)
		value = Qual(ViewPkg, "NodeValue").Call(Id("v"))
	}

	f.Func().Params(Id("b").Op("*").Id(name)).Id("Set"+field).Params(param).Op("*").Id(name).BlockFunc(func(g *Group) {
		if sf.Polymorph {
			g.Id("b").Dot(choiceClearer(sf)).Call(Lit(key))
		}
		g.Id("b").Dot("doc").Dot("Set").Call(Lit(key), value)
		g.Return(Id("b"))
	})

	if !t.HasElement() {
		return
	}
	if sf.Multiple {
		f.Func().Params(Id("b").Op("*").Id(name)).Id("Set"+field+"Element").Params(Id("v").Op("...").Op("*").Id("PrimitiveElement")).Op("*").Id(name).Block(
			Id("b").Dot("doc").Dot("Set").Call(Lit("_"+key), Qual(ViewPkg, "SparseListValue").Call(Id("v"))),
			Return(Id("b")),
		)
	} else {
		f.Func().Params(Id("b").Op("*").Id(name)).Id("Set"+field+"Element").Params(Id("v").Id("PrimitiveElement")).Op("*").Id(name).Block(
			Id("b").Dot("doc").Dot("Set").Call(Lit("_"+key), Qual(ViewPkg, "NodeValue").Call(Id("v"))),
			Return(Id("b")),
		)
	}
}
