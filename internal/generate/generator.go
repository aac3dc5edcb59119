// Package generate emits the struct and view packages from the
// intermediate representation with jennifer.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

const moduleName = "github.com/damedic/fhir-model-go"

// Import paths of the packages generated code refers to.
const (
	DocumentPkg = moduleName + "/document"
	EnumPkg     = moduleName + "/enum"
	ViewPkg     = moduleName + "/view"
	ModelPkg    = moduleName + "/model"
	JSONPkg     = "github.com/goccy/go-json"
	ApdPkg      = "github.com/cockroachdb/apd/v3"
)

// Generator contributes code to the generated packages. GenerateType is
// called once per catalogue entry with that entry's file and reports
// whether it wrote anything; GenerateAdditional may create further
// files.
type Generator interface {
	GenerateType(f *File, rt ir.ResourceOrType) bool
	GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType)
}

// NoOpGenerator is embedded by generators that only implement one of
// the two hooks.
type NoOpGenerator struct{}

func (g NoOpGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	return false
}

func (g NoOpGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
}

// Package is one generated Go package.
type Package struct {
	Name       string
	Path       string
	Generators []Generator
}

// Render runs the generators of p over rt and returns the files by name.
func (p Package) Render(release string, rt []ir.ResourceOrType) map[string]*File {
	files := map[string]*File{}
	newFile := func(fileName string, pkgName string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := p.newFile(pkgName, release)
		files[fileName] = f
		return f
	}

	for _, t := range rt {
		f := p.newFile(p.Name, release)
		wrote := false
		for _, g := range p.Generators {
			if g.GenerateType(f, t) {
				wrote = true
			}
		}
		if wrote {
			files[t.FileName] = f
		}
	}

	for _, g := range p.Generators {
		g.GenerateAdditional(newFile, release, rt)
	}

	return files
}

// newFile starts a file of p. Every package the generated code refers to
// is imported under its own name.
func (p Package) newFile(pkgName, release string) *File {
	f := NewFilePathName(p.Path, pkgName)
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
	f.ImportName(ApdPkg, "apd")
	f.ImportName(JSONPkg, "json")
	f.ImportName(DocumentPkg, "document")
	f.ImportName(EnumPkg, "enum")
	f.ImportName(ViewPkg, "view")
	f.ImportName(ModelPkg, "model")
	structPkg := strings.ToLower(release)
	f.ImportName(moduleName+"/model/gen/"+structPkg, structPkg)
	return f
}

// Write renders p and saves every file below dir/<p.Name>. It returns the
// names of the written files in sorted order.
func (p Package) Write(dir string, release string, rt []ir.ResourceOrType) ([]string, error) {
	pkgDir := filepath.Join(dir, p.Name)
	if err := os.MkdirAll(pkgDir, 0o755); err != nil {
		return nil, err
	}

	files := p.Render(release, rt)
	var names []string
	for name, f := range files {
		path := filepath.Join(pkgDir, name+".go")
		if err := f.Save(path); err != nil {
			return nil, fmt.Errorf("save %s: %w", path, err)
		}
		names = append(names, path)
	}
	slices.Sort(names)
	return names, nil
}

func comment(g interface{ Comment(string) *Statement }, doc string) {
	if doc == "" {
		return
	}
	for _, line := range strings.Split(doc, "\n") {
		g.Comment(line)
	}
}
