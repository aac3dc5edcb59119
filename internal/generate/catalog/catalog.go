// Package catalog reads the declarative field catalogue the model is
// generated from.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed r4.yaml
var r4 []byte

// Catalog lists the types and value sets of one release.
type Catalog struct {
	Release   string     `yaml:"release"`
	ValueSets []ValueSet `yaml:"valueSets"`
	Types     []Type     `yaml:"types"`
}

type ValueSet struct {
	Name  string    `yaml:"name"`
	URL   string    `yaml:"url"`
	Codes []Concept `yaml:"codes"`
}

type Concept struct {
	Code    string `yaml:"code"`
	Display string `yaml:"display"`
}

// Type is a resource or datatype definition.
type Type struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Doc      string    `yaml:"doc"`
	Elements []Element `yaml:"elements"`
}

// Element is one field of a type. Exactly one of Type, Types (for
// choice fields named "x[x]"), Elements (an inline backbone element) or
// ContentReference is set.
type Element struct {
	Name             string    `yaml:"name"`
	Type             string    `yaml:"type"`
	Types            []string  `yaml:"types"`
	Elements         []Element `yaml:"elements"`
	ContentReference string    `yaml:"contentReference"`
	Min              int       `yaml:"min"`
	Max              string    `yaml:"max"`
	Binding          string    `yaml:"binding"`
	Doc              string    `yaml:"doc"`
}

const (
	KindResource = "resource"
	KindDatatype = "datatype"
)

// R4 returns the bundled R4 catalogue.
func R4() (Catalog, error) {
	return Parse(r4)
}

// Load reads a catalogue file.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	c, err := Parse(b)
	if err != nil {
		return Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalogue and checks that every binding names a
// declared value set.
func Parse(b []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if c.Release == "" {
		return Catalog{}, fmt.Errorf("parse catalog: release missing")
	}
	valueSets := map[string]bool{}
	for _, vs := range c.ValueSets {
		if len(vs.Codes) == 0 {
			return Catalog{}, fmt.Errorf("value set %s: no codes", vs.Name)
		}
		valueSets[vs.Name] = true
	}
	for _, t := range c.Types {
		if t.Kind != KindResource && t.Kind != KindDatatype {
			return Catalog{}, fmt.Errorf("type %s: unknown kind %q", t.Name, t.Kind)
		}
		if err := checkElements(t.Name, t.Elements, valueSets); err != nil {
			return Catalog{}, err
		}
	}
	return c, nil
}

func checkElements(path string, elements []Element, valueSets map[string]bool) error {
	for _, e := range elements {
		p := path + "." + e.Name
		set := 0
		for _, ok := range []bool{e.Type != "", len(e.Types) > 0, len(e.Elements) > 0, e.ContentReference != ""} {
			if ok {
				set++
			}
		}
		if set != 1 {
			return fmt.Errorf("element %s: exactly one of type, types, elements or contentReference required", p)
		}
		if e.Binding != "" && !valueSets[e.Binding] {
			return fmt.Errorf("element %s: unknown value set %s", p, e.Binding)
		}
		if e.Max != "" && e.Max != "1" && e.Max != "*" {
			return fmt.Errorf("element %s: max must be 1 or *", p)
		}
		if err := checkElements(p, e.Elements, valueSets); err != nil {
			return err
		}
	}
	return nil
}
