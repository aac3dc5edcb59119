package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

// writePackageDoc puts the package comment into a doc.go of its own.
// Paragraphs are separated by an empty comment line.
func writePackageDoc(file *File, paragraphs ...[]string) {
	for n, p := range paragraphs {
		if n > 0 {
			file.PackageComment("")
		}
		for _, line := range p {
			file.PackageComment(line)
		}
	}
}

type ModelPkgDocGenerator struct {
	NoOpGenerator
}

func (g ModelPkgDocGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	pkg := strings.ToLower(release)
	writePackageDoc(f("doc", pkg),
		[]string{"Package " + pkg + " holds the generated structs of FHIR " + release + "."},
		[]string{
			"Required fields are values, optional fields are pointers and repeated",
			"fields are slices. Coded fields with a required binding use the value",
			"set types declared in value_sets.go. A choice field holds one of the",
			"types implementing its interface, declared in choices.go.",
		},
		[]string{
			"The structs decode strictly from JSON and XML: unknown fields, missing",
			"required fields and conflicting choice alternatives are errors.",
		},
	)
}

type ViewPkgDocGenerator struct {
	NoOpGenerator
}

func (g ViewPkgDocGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	pkg := strings.ToLower(release) + "view"
	writePackageDoc(f("doc", pkg),
		[]string{"Package " + pkg + " holds the generated views and builders of FHIR " + release + "."},
		[]string{
			"A view wraps a document.Value and reads its fields on demand. An absent",
			"field reports ok == false, a field of the wrong shape reports an error",
			"carrying its path.",
		},
		[]string{
			"Builders start from the required fields and produce a document.Value",
			"snapshot on Build.",
		},
	)
}
