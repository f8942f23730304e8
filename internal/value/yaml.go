package value

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// DecodeYAML returns one Value per YAML document in data. Key order is
// preserved, aliases are resolved against anchors seen earlier in the same
// document and merge keys (<<) contribute entries not set explicitly.
func DecodeYAML(data []byte) ([]*Value, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	docs := make([]*Value, 0, len(file.Docs))
	for i, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			docs = append(docs, Null())
			continue
		}

		b := &yamlBuilder{anchors: make(map[string]*Value)}
		v, err := b.build(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs = append(docs, v)
	}
	return docs, nil
}

type yamlBuilder struct {
	anchors map[string]*Value
}

func (b *yamlBuilder) build(node ast.Node) (*Value, error) {
	switch n := node.(type) {
	case *ast.DocumentNode:
		if n.Body == nil {
			return Null(), nil
		}
		return b.build(n.Body)
	case *ast.NullNode:
		return Null(), nil
	case *ast.BoolNode:
		return FromBool(n.Value), nil
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return FromInt(v), nil
		case uint64:
			return FromNumber(json.Number(strconv.FormatUint(v, 10))), nil
		}
		return nil, fmt.Errorf("%w: integer node value %T", ErrUnsupported, n.Value)
	case *ast.FloatNode:
		return FromFloat(n.Value), nil
	case *ast.StringNode:
		return FromString(n.Value), nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return FromString(""), nil
		}
		return FromString(n.Value.Value), nil
	case *ast.TagNode:
		return b.build(n.Value)
	case *ast.AnchorNode:
		v, err := b.build(n.Value)
		if err != nil {
			return nil, err
		}
		b.anchors[n.Name.GetToken().Value] = v
		return v, nil
	case *ast.AliasNode:
		name := n.Value.GetToken().Value
		v, ok := b.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown alias %q", ErrMalformed, name)
		}
		return v, nil
	case *ast.SequenceNode:
		items := make([]*Value, 0, len(n.Values))
		for i, item := range n.Values {
			v, err := b.build(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items = append(items, v)
		}
		return FromSlice(items), nil
	case *ast.MappingNode:
		m := NewMapping()
		if err := b.fill(m, n.Values); err != nil {
			return nil, err
		}
		return m, nil
	case *ast.MappingValueNode:
		m := NewMapping()
		if err := b.fill(m, []*ast.MappingValueNode{n}); err != nil {
			return nil, err
		}
		return m, nil
	case *ast.InfinityNode, *ast.NanNode:
		return nil, fmt.Errorf("%w: %s has no JSON representation", ErrUnsupported, node.GetToken().Value)
	}
	return nil, fmt.Errorf("%w: YAML node %T", ErrUnsupported, node)
}

func (b *yamlBuilder) fill(m *Value, pairs []*ast.MappingValueNode) error {
	var merged []*Value
	for _, pair := range pairs {
		if _, ok := pair.Key.(*ast.MergeKeyNode); ok {
			src, err := b.build(pair.Value)
			if err != nil {
				return err
			}
			merged = append(merged, src)
			continue
		}

		key, err := b.keyText(pair.Key)
		if err != nil {
			return err
		}
		v, err := b.build(pair.Value)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		m.Set(key, v)
	}

	for _, src := range merged {
		if err := mergeInto(m, src); err != nil {
			return err
		}
	}
	return nil
}

func mergeInto(dst, src *Value) error {
	switch src.kind {
	case KindMapping:
		for key, v := range src.Entries() {
			if _, exists := dst.Get(key); !exists {
				dst.Set(key, v)
			}
		}
	case KindSequence:
		for _, item := range src.Items() {
			if err := mergeInto(dst, item); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: merge key expects a mapping, got %s", ErrMalformed, src.kind)
	}
	return nil
}

func (b *yamlBuilder) keyText(node ast.Node) (string, error) {
	if k, ok := node.(*ast.MappingKeyNode); ok {
		node = k.Value
	}

	v, err := b.build(node)
	if err != nil {
		return "", err
	}

	switch v.kind {
	case KindString, KindNumber:
		return v.text, nil
	case KindBool:
		return strconv.FormatBool(v.b), nil
	case KindNull:
		return "null", nil
	}
	return "", fmt.Errorf("%w: mapping key must be scalar, got %s", ErrUnsupported, v.kind)
}

// MarshalYAML lets goccy/go-yaml encode a Value with mapping order intact.
func (v *Value) MarshalYAML() (any, error) {
	return v.yamlNative(), nil
}

func (v *Value) yamlNative() any {
	if v == nil {
		return nil
	}

	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.text
	case KindString:
		return v.text
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.yamlNative()
		}
		return out
	case KindMapping:
		out := make(yaml.MapSlice, 0, len(v.keys))
		for i, key := range v.keys {
			out = append(out, yaml.MapItem{Key: key, Value: v.items[i].yamlNative()})
		}
		return out
	}
	return nil
}
