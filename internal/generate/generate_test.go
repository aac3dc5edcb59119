package generate_test

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/catalog"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	"github.com/damedic/fhir-model-go/internal/generate/json"
	"github.com/damedic/fhir-model-go/internal/generate/xml"
)

const (
	structPath = "github.com/damedic/fhir-model-go/model/gen/r4"
	viewPath   = "github.com/damedic/fhir-model-go/model/gen/r4view"
)

const testCatalog = `
release: R4
valueSets:
  - name: WidgetStatus
    url: http://example.org/ValueSet/widget-status
    codes:
      - {code: "on", display: "On"}
      - {code: "off", display: "Off"}
types:
  - name: Widget
    kind: resource
    doc: A widget.
    elements:
      - {name: status, type: code, min: 1, binding: WidgetStatus}
      - {name: "reading[x]", types: [Quantity, string, boolean]}
      - name: part
        max: "*"
        elements:
          - {name: label, type: string, min: 1}
  - name: Quantity
    kind: datatype
    elements:
      - {name: value, type: decimal}
`

func parseCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func render(c catalog.Catalog, p generate.Package) map[string]string {
	out := map[string]string{}
	for name, f := range p.Render(c.Release, ir.Parse(c)) {
		out[name] = fmt.Sprintf("%#v", f)
	}
	return out
}

func checkContains(t *testing.T, files map[string]string, file string, snippets ...string) {
	t.Helper()
	src, ok := files[file]
	if !ok {
		t.Fatalf("file %s not rendered", file)
	}
	for _, s := range snippets {
		if !strings.Contains(src, s) {
			t.Errorf("%s does not contain %q:\n%s", file, s, src)
		}
	}
}

var importBlock = regexp.MustCompile(`(?s)\nimport \((.*?)\n\)`)

func checkNoAliases(t *testing.T, files map[string]string) {
	t.Helper()
	for name, src := range files {
		m := importBlock.FindStringSubmatch(src)
		if m == nil {
			continue
		}
		for _, line := range strings.Split(strings.TrimSpace(m[1]), "\n") {
			if !strings.HasPrefix(strings.TrimSpace(line), `"`) {
				t.Errorf("%s aliases an import: %s", name, line)
			}
		}
	}
}

func TestRenderStructPackage(t *testing.T) {
	c := parseCatalog(t)
	files := render(c, generate.Package{
		Name: "r4",
		Path: structPath,
		Generators: []generate.Generator{
			generate.TypesGenerator{},
			generate.StructChoiceGenerator{},
			generate.ImplResourceGenerator{},
			json.MarshalGenerator{},
			json.UnmarshalGenerator{},
			generate.StringerGenerator{},
			xml.MarshalGenerator{},
			xml.UnmarshalGenerator{},
			generate.FormatGenerator{},
			generate.ValueSetsGenerator{ValueSets: ir.ValueSets(c)},
			generate.ModelPkgDocGenerator{},
		},
	})

	checkContains(t, files, "widget",
		"// Code generated by internal/cmd/generate. DO NOT EDIT.",
		"type Widget struct",
		"type WidgetPart struct",
		"`json:\"status\"`",
		"Reading WidgetReading `json:\"-\"`",
		"`json:\"_readingString,omitempty\"`",
		"`json:\"part,omitempty\"`",
		"var _ model.Resource = Widget{}",
		`func (r Widget) ResourceType() string`,
		"case String:\n\t\tw.ReadingString, w.ReadingStringElement = v.Value, v.Element",
		`return marshalResource("Widget", w)`,
		`err := decodeResource(n, "Widget", []string{"status"}, func(key string, v document.Value) (err error) {`,
		`case "readingQuantity", "readingString", "_readingString", "readingBoolean", "_readingBoolean":`,
		"err = &view.UnknownFieldError{}",
		`key, err := choiceKey(n, "reading[x]", "readingQuantity", "readingString", "readingBoolean")`,
		"start.Name = xml.Name{Space: namespaceFHIR, Local: \"Widget\"}",
		`writePrimitive(&w, "status", &r.Status, r.StatusElement, formatText[WidgetStatus])`,
		`r.Reading, err = readChoice[Quantity](d, t)`,
		`if err := checkRequired(seen, "status"); err != nil {`,
	)
	checkContains(t, files, "quantity",
		"*document.Number",
		"r.Value, err = optional(view.ProjectNumber)(v)",
		`r.Value, r.ValueElement, err = readPrimitive(d, t, parseDecimal)`,
	)
	checkContains(t, files, "choices",
		"type WidgetReading interface",
		"func (Quantity) isWidgetReading() {}\n\nfunc (String) isWidgetReading() {}",
		"Value   *string",
		"func (p *Boolean) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error",
	)
	checkContains(t, files, "decode",
		"func decodeObject(n document.Value, required []string, field func(key string, v document.Value) error) error",
		"func choiceKey(n document.Value, field string, keys ...string) (string, error)",
	)
	checkContains(t, files, "xml",
		`const namespaceFHIR = "http://hl7.org/fhir"`,
		"func readValue[T any](",
	)
	checkContains(t, files, "formats",
		"func DecodeResource(r io.Reader, format document.Format) (model.Resource, error)",
		"func EncodeResource(w io.Writer, res model.Resource, format document.Format) error",
	)
	checkContains(t, files, "value_sets",
		"WidgetStatusOn WidgetStatus = iota + 1",
		`Code: "off"`,
		"func ParseWidgetStatus(code string) (WidgetStatus, bool)",
	)
	checkContains(t, files, "contained_resource",
		`case "Widget":`,
		"type ContainedResource struct",
		`const knownResourceTypes = "one of Widget"`,
	)
	checkNoAliases(t, files)
	checkContains(t, files, "doc", "package r4")
}

func TestRenderViewPackage(t *testing.T) {
	files := render(parseCatalog(t), generate.Package{
		Name: "r4view",
		Path: viewPath,
		Generators: []generate.Generator{
			generate.ViewGenerator{StructPkg: structPath},
			generate.BuilderGenerator{StructPkg: structPath},
			generate.ChoiceGenerator{},
			generate.ViewResourceGenerator{StructPkg: structPath},
			generate.ViewPkgDocGenerator{},
		},
	})

	checkContains(t, files, "widget",
		"func (r Widget) Status() (r4.WidgetStatus, bool, error)",
		"func (r Widget) ReadingString() (string, bool, error)",
		"func (r Widget) Reading() (WidgetReading, bool, error)",
		`"reading[x]", "readingQuantity", "readingString", "readingBoolean"`,
		`view.ResourceType(r.node, "Widget")`,
		"func NewWidgetBuilder(status r4.WidgetStatus) *WidgetBuilder",
		"func NewWidgetPartBuilder(label string) *WidgetPartBuilder",
		"func (b *WidgetBuilder) clearReading(keep string)",
	)
	checkContains(t, files, "choices",
		"type WidgetReading interface",
		"func (Quantity) isWidgetReading() {}\n\nfunc (String) isWidgetReading() {}",
		"type Boolean bool",
	)
	checkContains(t, files, "resources",
		`const knownResourceTypes = "one of Widget"`,
		"func WrapResource(n document.Value) (view.Resource, error)",
		"func Decode(b []byte, opts ...view.ValidateOption) (view.Resource, error)",
		"res, err := r4.DecodeResource(r, format)",
	)
	checkNoAliases(t, files)
}
