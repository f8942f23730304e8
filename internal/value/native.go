package value

import (
	"encoding/json"
	"fmt"
	"slices"
)

// FromAny converts decoded Go data (as produced by encoding/json or YAML
// decoders) into a Value tree. Map keys are sorted because Go maps carry no
// order.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return t, nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case json.Number:
		return FromNumber(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint:
		return FromNumber(json.Number(fmt.Sprint(t))), nil
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint64:
		return FromNumber(json.Number(fmt.Sprint(t))), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case []any:
		items := make([]*Value, 0, len(t))
		for i, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, v)
		}
		return FromSlice(items), nil
	case []string:
		items := make([]*Value, 0, len(t))
		for _, item := range t {
			items = append(items, FromString(item))
		}
		return FromSlice(items), nil
	case map[string]any:
		m := NewMapping()
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			v, err := FromAny(t[k])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			m.Set(k, v)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
}

// MustFromAny is FromAny for literals known to convert, such as test fixtures.
func MustFromAny(x any) *Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

// Any converts v back into plain Go data: nil, bool, json.Number, string,
// []any and map[string]any. A nil v yields nil.
func (v *Value) Any() any {
	if v == nil {
		return nil
	}

	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Any()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.keys))
		for i, key := range v.keys {
			out[key] = v.items[i].Any()
		}
		return out
	}
	return nil
}
