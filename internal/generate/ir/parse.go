package ir

import (
	"slices"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/catalog"
)

var primitives = []string{
	"boolean",
	"canonical",
	"code",
	"date",
	"dateTime",
	"decimal",
	"id",
	"instant",
	"integer",
	"markdown",
	"positiveInt",
	"string",
	"time",
	"unsignedInt",
	"uri",
	"url",
}

// IsPrimitive reports whether name is a FHIR primitive type code.
func IsPrimitive(name string) bool {
	return slices.Contains(primitives, name)
}

// Parse converts a catalogue into the intermediate representation.
func Parse(c catalog.Catalog) []ResourceOrType {
	var resourcesOrTypes []ResourceOrType

	for _, t := range c.Types {
		isResource := t.Kind == catalog.KindResource
		resourcesOrTypes = append(resourcesOrTypes, ResourceOrType{
			Name:       t.Name,
			FileName:   toGoFileCasing(t.Name),
			IsResource: isResource,
			Structs:    parseStructs(t.Name, t.Name, isResource, t.Elements, t.Doc),
		})
	}

	return resourcesOrTypes
}

// ValueSets converts the value sets of a catalogue.
func ValueSets(c catalog.Catalog) []ValueSet {
	var valueSets []ValueSet
	for _, vs := range c.ValueSets {
		v := ValueSet{Name: vs.Name, URL: vs.URL}
		for _, code := range vs.Codes {
			v.Concepts = append(v.Concepts, Concept{Code: code.Code, Display: code.Display})
		}
		valueSets = append(valueSets, v)
	}
	return valueSets
}

func parseStructs(
	name string,
	path string,
	isResource bool,
	elements []catalog.Element,
	docComment string,
) []Struct {
	structName := toGoTypeCasing(name)

	parsedStructs := []Struct{{
		Name:        structName,
		MarshalName: path,
		IsResource:  isResource,
		DocComment:  docComment,
	}}

	for _, e := range withImplicitElements(path, isResource, elements) {
		if len(e.Elements) > 0 {
			parsedStructs = append(
				parsedStructs,
				parseStructs(
					structName+toGoTypeCasing(e.Name),
					path+"."+e.Name,
					false,
					e.Elements,
					e.Doc,
				)...,
			)
		}

		parsedStructs[0].Fields = append(parsedStructs[0].Fields, parseField(structName, e))
	}

	return parsedStructs
}

// withImplicitElements prepends the elements every resource, datatype or
// backbone element inherits.
func withImplicitElements(path string, isResource bool, elements []catalog.Element) []catalog.Element {
	var implicit []catalog.Element
	switch {
	case isResource:
		implicit = []catalog.Element{
			{Name: "id", Type: "id", Doc: "The logical id of the resource, as used in the URL for the resource."},
			{Name: "meta", Type: "Meta", Doc: "The metadata about the resource."},
			{Name: "contained", Type: "Resource", Max: "*", Doc: "These resources do not have an independent existence apart from the resource that contains them."},
			{Name: "extension", Type: "Extension", Max: "*", Doc: "May be used to represent additional information that is not part of the basic definition of the resource."},
			{Name: "modifierExtension", Type: "Extension", Max: "*", Doc: "May be used to represent additional information that modifies the understanding of the element that contains it."},
		}
	case strings.Contains(path, "."):
		implicit = []catalog.Element{
			{Name: "id", Type: "System.String", Doc: "Unique id for the element within a resource (for internal references)."},
			{Name: "extension", Type: "Extension", Max: "*", Doc: "May be used to represent additional information that is not part of the basic definition of the element."},
			{Name: "modifierExtension", Type: "Extension", Max: "*", Doc: "May be used to represent additional information that modifies the understanding of the element that contains it."},
		}
	default:
		implicit = []catalog.Element{
			{Name: "id", Type: "System.String", Doc: "Unique id for the element within a resource (for internal references)."},
			{Name: "extension", Type: "Extension", Max: "*", Doc: "May be used to represent additional information that is not part of the basic definition of the element."},
		}
	}
	return append(implicit, elements...)
}

func parseField(structName string, e catalog.Element) StructField {
	fieldName, polymorph := strings.CutSuffix(e.Name, "[x]")

	var fieldTypes []FieldType
	switch {
	case polymorph:
		for _, t := range e.Types {
			fieldTypes = append(fieldTypes, matchFieldType(t))
		}
	case len(e.Elements) > 0:
		fieldTypes = append(fieldTypes, FieldType{
			Name: structName + toGoTypeCasing(fieldName),
		})
	case e.ContentReference != "":
		// Observation.referenceRange -> ObservationReferenceRange
		var name string
		for _, part := range strings.Split(e.ContentReference, ".") {
			name += toGoTypeCasing(part)
		}
		fieldTypes = append(fieldTypes, FieldType{Name: name})
	default:
		fieldTypes = append(fieldTypes, matchFieldType(e.Type))
	}

	var binding *Binding
	if e.Binding != "" {
		binding = &Binding{
			Strength: "required",
			ValueSet: e.Binding,
		}
	}

	return StructField{
		Name:          toGoFieldCasing(fieldName),
		MarshalName:   fieldName,
		PossibleTypes: fieldTypes,
		Polymorph:     polymorph,
		Multiple:      e.Max == "*",
		Optional:      e.Min == 0,
		DocComment:    e.Doc,
		Binding:       binding,
	}
}

func matchFieldType(code string) FieldType {
	switch code {
	case "System.String":
		return FieldType{Name: "string", IsPrimitive: true, IsSystem: true}
	case "Resource":
		return FieldType{Name: "Resource", IsNestedResource: true}
	}
	if IsPrimitive(code) {
		return FieldType{Name: code, IsPrimitive: true}
	}
	return FieldType{Name: toGoTypeCasing(code)}
}
