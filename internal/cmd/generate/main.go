// Command generate emits the struct and view packages of a release from
// its field catalogue.
package main

import (
	"flag"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/catalog"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	"github.com/damedic/fhir-model-go/internal/generate/json"
	"github.com/damedic/fhir-model-go/internal/generate/xml"
)

const modulePath = "github.com/damedic/fhir-model-go/model/gen/"

func main() {
	catalogPath := flag.String("catalog", "", "catalogue file; the bundled R4 catalogue when empty")
	out := flag.String("out", "gen", "output directory")
	verbose := flag.Bool("v", false, "log every written file")
	flag.Parse()

	logger, _ := zap.NewProduction()
	if *verbose {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	c, err := loadCatalog(*catalogPath)
	if err != nil {
		logger.Fatal("load catalogue", zap.Error(err))
	}

	release := c.Release
	structPkg := strings.ToLower(release)
	viewPkg := structPkg + "view"
	rt := ir.Parse(c)
	logger.Info("parsed catalogue",
		zap.String("release", release),
		zap.Int("types", len(rt)),
		zap.Int("valueSets", len(c.ValueSets)),
	)

	packages := []generate.Package{
		{
			Name: structPkg,
			Path: modulePath + structPkg,
			Generators: []generate.Generator{
				generate.TypesGenerator{},
				generate.StructChoiceGenerator{},
				generate.ImplResourceGenerator{},
				json.MarshalGenerator{},
				json.UnmarshalGenerator{},
				generate.StringerGenerator{},
				generate.OutcomeErrorGenerator{},
				xml.MarshalGenerator{},
				xml.UnmarshalGenerator{},
				generate.FormatGenerator{},
				generate.ValueSetsGenerator{ValueSets: ir.ValueSets(c)},
				generate.ModelPkgDocGenerator{},
			},
		},
		{
			Name: viewPkg,
			Path: modulePath + viewPkg,
			Generators: []generate.Generator{
				generate.ViewGenerator{StructPkg: modulePath + structPkg},
				generate.BuilderGenerator{StructPkg: modulePath + structPkg},
				generate.ChoiceGenerator{},
				generate.ViewResourceGenerator{StructPkg: modulePath + structPkg},
				generate.ViewPkgDocGenerator{},
			},
		},
	}

	for _, p := range packages {
		files, err := p.Write(*out, release, rt)
		if err != nil {
			logger.Fatal("write package", zap.String("package", p.Name), zap.Error(err))
		}
		for _, name := range files {
			logger.Debug("wrote file", zap.String("path", name))
		}
		logger.Info("generated package", zap.String("package", p.Name), zap.Int("files", len(files)))
	}
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.R4()
	}
	if _, err := os.Stat(path); err != nil {
		return catalog.Catalog{}, err
	}
	return catalog.Load(path)
}
