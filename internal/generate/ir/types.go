// Package ir is the intermediate representation the generators work on.
package ir

import (
	"slices"

	"github.com/iancoleman/strcase"
)

// ResourceOrType is one top-level catalogue entry. It is generated into
// one file per package.
type ResourceOrType struct {
	Name       string
	FileName   string
	IsResource bool
	// Structs holds the type itself first, followed by its backbone
	// elements in declaration order.
	Structs []Struct
}

type Struct struct {
	Name        string
	MarshalName string
	IsResource  bool
	DocComment  string
	Fields      []StructField
}

type StructField struct {
	Name          string
	MarshalName   string
	PossibleTypes []FieldType
	Polymorph     bool
	Multiple      bool
	Optional      bool
	DocComment    string
	Binding       *Binding
}

type FieldType struct {
	// Name is the FHIR type code for primitives ("dateTime") and the Go
	// type name otherwise ("CodeableConcept", "ObservationComponent").
	Name             string
	IsPrimitive      bool
	IsNestedResource bool
	// IsSystem marks the plain strings of element ids and Extension.url,
	// which have no "_" sibling.
	IsSystem bool
}

type Binding struct {
	Strength string
	ValueSet string
}

type ValueSet struct {
	Name     string
	URL      string
	Concepts []Concept
}

type Concept struct {
	Code    string
	Display string
}

// HasElement reports whether a field of type t has a "_" sibling
// carrying id and extensions.
func (t FieldType) HasElement() bool {
	return t.IsPrimitive && !t.IsSystem
}

// Suffix is the key suffix of a choice alternative, e.g. "DateTime".
func (t FieldType) Suffix() string {
	return toGoTypeCasing(t.Name)
}

// Key returns the wire key of the field for alternative t.
func (f StructField) Key(t FieldType) string {
	if f.Polymorph {
		return f.MarshalName + t.Suffix()
	}
	return f.MarshalName
}

// GoName returns the Go field name for alternative t.
func (f StructField) GoName(t FieldType) string {
	if f.Polymorph {
		return f.Name + t.Suffix()
	}
	return f.Name
}

// Required reports whether the field must be present.
func (f StructField) Required() bool { return !f.Optional }

// ChoiceKeys returns every wire key a choice field may occupy, including
// the "_" siblings of primitive alternatives.
func (f StructField) ChoiceKeys() []string {
	var keys []string
	for _, t := range f.PossibleTypes {
		keys = append(keys, f.Key(t))
		if t.HasElement() {
			keys = append(keys, "_"+f.Key(t))
		}
	}
	return keys
}

// RequiredValueSet returns the name of the value set of a required code
// binding.
func (f StructField) RequiredValueSet() (string, bool) {
	if f.Binding == nil || f.Binding.Strength != "required" {
		return "", false
	}
	return f.Binding.ValueSet, true
}

// FilterResources returns only the resources of rt.
func FilterResources(rt []ResourceOrType) []ResourceOrType {
	var resources []ResourceOrType
	for _, r := range rt {
		if r.IsResource {
			resources = append(resources, r)
		}
	}
	return resources
}

// Polymorphs returns the choice fields of every struct of rt.
func Polymorphs(rt []ResourceOrType) []Choice {
	var choices []Choice
	for _, r := range rt {
		for _, s := range r.Structs {
			for _, f := range s.Fields {
				if f.Polymorph {
					choices = append(choices, Choice{Struct: s.Name, Field: f})
				}
			}
		}
	}
	return choices
}

// Choice is a choice field together with the struct declaring it.
type Choice struct {
	Struct string
	Field  StructField
}

// InterfaceName is the name of the sealed interface of the choice, e.g.
// "ObservationValue".
func (c Choice) InterfaceName() string { return c.Struct + c.Field.Name }

// PrimitiveAlternatives returns the primitive type codes used as choice
// alternatives anywhere in rt, sorted.
func PrimitiveAlternatives(rt []ResourceOrType) []string {
	var names []string
	for _, c := range Polymorphs(rt) {
		for _, t := range c.Field.PossibleTypes {
			if t.IsPrimitive && !slices.Contains(names, t.Name) {
				names = append(names, t.Name)
			}
		}
	}
	slices.Sort(names)
	return names
}

func toGoTypeCasing(name string) string {
	return strcase.ToCamel(name)
}

func toGoFieldCasing(name string) string {
	return strcase.ToCamel(name)
}

func toGoFileCasing(name string) string {
	return strcase.ToSnake(name)
}
