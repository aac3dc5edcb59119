package document

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a single YAML document into a document value.
//
// Mappings become objects, sequences become arrays and scalars are
// resolved by their YAML tag. Mapping keys must be scalars.
func ParseYAML(b []byte) (Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(b, &n); err != nil {
		return Value{}, &SyntaxError{Msg: "malformed yaml", Err: err}
	}
	c := yamlConverter{visiting: map[*yaml.Node]bool{}}
	return c.convert(&n, "")
}

type yamlConverter struct {
	visiting map[*yaml.Node]bool
}

func (c yamlConverter) errorf(n *yaml.Node, path string, format string, args ...any) error {
	return &SyntaxError{
		Path: path,
		Msg:  fmt.Sprintf("line %d: %s", n.Line, fmt.Sprintf(format, args...)),
	}
}

func (c yamlConverter) convert(n *yaml.Node, path string) (Value, error) {
	switch n.Kind {
	case 0:
		// empty input
		return Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return c.convert(n.Content[0], path)
	case yaml.AliasNode:
		if c.visiting[n.Alias] {
			return Value{}, c.errorf(n, path, "recursive alias %q", n.Value)
		}
		c.visiting[n.Alias] = true
		defer delete(c.visiting, n.Alias)
		return c.convert(n.Alias, path)
	case yaml.SequenceNode:
		elements := make([]Value, 0, len(n.Content))
		for i, e := range n.Content {
			v, err := c.convert(e, path+"/"+strconv.Itoa(i))
			if err != nil {
				return Value{}, err
			}
			elements = append(elements, v)
		}
		return Value{kind: KindArray, arr: elements}, nil
	case yaml.MappingNode:
		members := make([]Member, 0, len(n.Content)/2)
		seen := map[string]struct{}{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return Value{}, c.errorf(k, path, "mapping key must be a scalar")
			}
			if _, dup := seen[k.Value]; dup {
				return Value{}, c.errorf(k, path, "duplicate key %q", k.Value)
			}
			seen[k.Value] = struct{}{}

			v, err := c.convert(n.Content[i+1], path+"/"+escapePointer(k.Value))
			if err != nil {
				return Value{}, err
			}
			members = append(members, Member{Key: k.Value, Value: v})
		}
		return Value{kind: KindObject, obj: newObject(members)}, nil
	case yaml.ScalarNode:
		return c.scalar(n, path)
	default:
		return Value{}, c.errorf(n, path, "unsupported yaml node kind %v", n.Kind)
	}
}

func (c yamlConverter) scalar(n *yaml.Node, path string) (Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, c.errorf(n, path, "invalid boolean %q", n.Value)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, c.errorf(n, path, "invalid integer %q", n.Value)
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, c.errorf(n, path, "invalid number %q", n.Value)
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return Value{}, c.errorf(n, path, "number %q cannot be represented", n.Value)
		}
		d, _, err := apd.NewFromString(n.Value)
		if err != nil {
			return NumberValue(Number(strconv.FormatFloat(f, 'g', -1, 64))), nil
		}
		return Decimal(d), nil
	default:
		// !!str, !!timestamp, !!binary and custom tags keep their text.
		return String(n.Value), nil
	}
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.b)}
	case KindNumber:
		tag := "!!float"
		if _, err := strconv.ParseInt(v.s, 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.s}
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.s}
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v.arr {
			n.Content = append(n.Content, e.yamlNode())
		}
		return n
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range v.obj.members {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key},
				m.Value.yamlNode(),
			)
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
