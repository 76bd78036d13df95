package attrs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes a single attribute set, keeping the key order of the
// document. JSON input is accepted as well.
func DecodeYAML(data []byte) (*Map, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("attrs: decode yaml: %w", err)
	}
	value, err := convertNode(&node, 0, DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	switch value.Kind() {
	case KindNull:
		return NewMap(), nil
	case KindMap:
		return value.Map(), nil
	default:
		return nil, fmt.Errorf("attrs: decode yaml: expected a mapping, got %s", value.Kind())
	}
}

// DecodeYAMLSets decodes either one attribute set or a list of sets.
func DecodeYAMLSets(data []byte) ([]*Map, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("attrs: decode yaml: %w", err)
	}
	value, err := convertNode(&node, 0, DefaultMaxDepth)
	if err != nil {
		return nil, err
	}
	switch value.Kind() {
	case KindNull:
		return nil, nil
	case KindMap:
		return []*Map{value.Map()}, nil
	case KindList:
		sets := make([]*Map, 0, len(value.List()))
		for i, item := range value.List() {
			if item.Kind() != KindMap {
				return nil, fmt.Errorf("attrs: decode yaml: item %d: expected a mapping, got %s", i, item.Kind())
			}
			sets = append(sets, item.Map())
		}
		return sets, nil
	default:
		return nil, fmt.Errorf("attrs: decode yaml: expected a mapping or a list, got %s", value.Kind())
	}
}

func convertNode(node *yaml.Node, depth, maxDepth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrDepthExceeded
	}
	if node == nil {
		return Null(), nil
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return Null(), nil
		}
		return convertNode(node.Content[0], depth, maxDepth)
	case yaml.AliasNode:
		return convertNode(node.Alias, depth, maxDepth)
	case yaml.SequenceNode:
		items := make([]Value, 0, len(node.Content))
		for _, child := range node.Content {
			item, err := convertNode(child, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			item, err := convertNode(node.Content[i+1], depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			m.Set(node.Content[i].Value, item)
		}
		return MapValue(m), nil
	case yaml.ScalarNode:
		return convertScalar(node)
	default:
		return Value{}, errors.New("attrs: unsupported yaml node")
	}
}

func convertScalar(node *yaml.Node) (Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return Value{}, fmt.Errorf("attrs: decode bool %q: %w", node.Value, err)
		}
		return Bool(b), nil
	case "!!int":
		var n int64
		if err := node.Decode(&n); err != nil {
			return Number(node.Value), nil
		}
		return Int(n), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return Value{}, fmt.Errorf("attrs: decode float %q: %w", node.Value, err)
		}
		return Float(f), nil
	default:
		return String(node.Value), nil
	}
}
