package attrs

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultMaxDepth bounds the nesting of converted and merged values.
const DefaultMaxDepth = 32

// ValueOf converts a raw Go value into a Value.
//
// Supported inputs are nil, strings (and string kinds such as escape.Markup),
// booleans, every integer and float kind, json.Number, slices and arrays,
// maps, Pairs, *Map, *TokenSet, Value and yaml nodes. Go maps have no order,
// so their keys are read sorted; use Pairs or *Map when order matters. Other
// structs are converted through their JSON form.
func ValueOf(raw any) (Value, error) {
	return convert(raw, 0, DefaultMaxDepth)
}

func convert(raw any, depth, maxDepth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrDepthExceeded
	}

	switch v := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return v, nil
	case *Map:
		return MapValue(v), nil
	case *TokenSet:
		return Tokens(v), nil
	case Pairs:
		m := NewMap()
		for _, pair := range v {
			item, err := convert(pair.Value, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			m.Set(pair.Name, item)
		}
		return MapValue(m), nil
	case json.Number:
		return Number(v.String()), nil
	case *yaml.Node:
		return convertNode(v, depth, maxDepth)
	case yaml.Node:
		return convertNode(&v, depth, maxDepth)
	case []any:
		items := make([]Value, 0, len(v))
		for _, item := range v {
			converted, err := convert(item, depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			items = append(items, converted)
		}
		return List(items...), nil
	case map[string]any:
		m := NewMap()
		for _, key := range sortedKeys(v) {
			item, err := convert(v[key], depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			m.Set(key, item)
		}
		return MapValue(m), nil
	}

	return convertReflect(reflect.ValueOf(raw), depth, maxDepth)
}

func convertReflect(rv reflect.Value, depth, maxDepth int) (Value, error) {
	switch rv.Kind() {
	case reflect.Invalid:
		return Null(), nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return convert(rv.Elem().Interface(), depth, maxDepth)
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32:
		return Number(strconv.FormatFloat(rv.Float(), 'f', -1, 32)), nil
	case reflect.Float64:
		return Float(rv.Float()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return List(), nil
		}
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			item, err := convert(rv.Index(i).Interface(), depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case reflect.Map:
		type entry struct {
			key   string
			value reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, entry{key: fmt.Sprint(iter.Key().Interface()), value: iter.Value()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

		m := NewMap()
		for _, e := range entries {
			item, err := convert(e.value.Interface(), depth+1, maxDepth)
			if err != nil {
				return Value{}, err
			}
			m.Set(e.key, item)
		}
		return MapValue(m), nil
	case reflect.Struct:
		if s, ok := rv.Interface().(fmt.Stringer); ok {
			return String(s.String()), nil
		}
		payload, err := json.Marshal(rv.Interface())
		if err != nil {
			return Value{}, fmt.Errorf("attrs: encode %s: %w", rv.Type(), err)
		}
		var node yaml.Node
		if err := yaml.Unmarshal(payload, &node); err != nil {
			return Value{}, fmt.Errorf("attrs: decode %s: %w", rv.Type(), err)
		}
		return convertNode(&node, depth, maxDepth)
	default:
		return String(fmt.Sprint(rv.Interface())), nil
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
