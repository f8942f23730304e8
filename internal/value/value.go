package value

import (
	"encoding/json"
	"iter"
	"strconv"
)

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

// Kind identifies which variant a Value holds.
type Kind uint8

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// Value is a node of a document tree. Only the fields matching kind are
// populated: text holds the string or the canonical number literal, items
// holds sequence elements or mapping values, and keys[i] names items[i].
//
// A nil *Value stands for "no value" and is distinct from Null().
type Value struct {
	kind  Kind
	b     bool
	text  string
	items []*Value
	keys  []string
	index map[string]int
}

func Null() *Value {
	return &Value{kind: KindNull}
}

func FromBool(b bool) *Value {
	return &Value{kind: KindBool, b: b}
}

func FromInt(i int64) *Value {
	return &Value{kind: KindNumber, text: strconv.FormatInt(i, 10)}
}

func FromFloat(f float64) *Value {
	return &Value{kind: KindNumber, text: strconv.FormatFloat(f, 'g', -1, 64)}
}

// FromNumber keeps the literal as written so that large integers and
// decimals survive a round trip unchanged.
func FromNumber(n json.Number) *Value {
	return &Value{kind: KindNumber, text: n.String()}
}

func FromString(s string) *Value {
	return &Value{kind: KindString, text: s}
}

// FromSlice builds a sequence. The slice is owned by the returned value.
func FromSlice(items []*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{kind: KindSequence, items: items}
}

func NewMapping() *Value {
	return &Value{kind: KindMapping, index: make(map[string]int)}
}

// Set adds key to a mapping, or replaces the value in place when the key
// already exists so that keys stay unique and keep their first position.
// A nil item is stored as Null. Set panics if v is not a mapping.
func (v *Value) Set(key string, item *Value) *Value {
	if v.kind != KindMapping {
		panic("value: Set on " + v.kind.String())
	}
	if item == nil {
		item = Null()
	}
	if i, ok := v.index[key]; ok {
		v.items[i] = item
		return v
	}
	v.index[key] = len(v.keys)
	v.keys = append(v.keys, key)
	v.items = append(v.items, item)
	return v
}

// Append adds an element to a sequence, storing a nil item as Null.
// Append panics if v is not a sequence.
func (v *Value) Append(item *Value) *Value {
	if v.kind != KindSequence {
		panic("value: Append on " + v.kind.String())
	}
	if item == nil {
		item = Null()
	}
	v.items = append(v.items, item)
	return v
}

func (v *Value) Kind() Kind {
	return v.kind
}

func (v *Value) IsScalar() bool {
	return v.kind != KindSequence && v.kind != KindMapping
}

func (v *Value) Bool() bool {
	return v.b
}

// Number returns the canonical literal of a number value.
func (v *Value) Number() json.Number {
	return json.Number(v.text)
}

func (v *Value) Int64() (int64, error) {
	return strconv.ParseInt(v.text, 10, 64)
}

func (v *Value) Float64() (float64, error) {
	return strconv.ParseFloat(v.text, 64)
}

func (v *Value) Str() string {
	return v.text
}

// Len is the element count of a sequence or the entry count of a mapping.
func (v *Value) Len() int {
	return len(v.items)
}

// Index returns the i-th element of a sequence, or nil when out of range.
func (v *Value) Index(i int) *Value {
	if v.kind != KindSequence || i < 0 || i >= len(v.items) {
		return nil
	}
	return v.items[i]
}

// Get looks up key in a mapping.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.items[i], true
}

func (v *Value) Keys() []string {
	return append([]string(nil), v.keys...)
}

// Items iterates the elements of a sequence in order.
func (v *Value) Items() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		if v.kind != KindSequence {
			return
		}
		for i, item := range v.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Entries iterates the entries of a mapping in insertion order.
func (v *Value) Entries() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		if v.kind != KindMapping {
			return
		}
		for i, key := range v.keys {
			if !yield(key, v.items[i]) {
				return
			}
		}
	}
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}

	dst := &Value{kind: v.kind, b: v.b, text: v.text}
	switch v.kind {
	case KindSequence:
		dst.items = make([]*Value, len(v.items))
		for i, item := range v.items {
			dst.items[i] = item.Clone()
		}
	case KindMapping:
		dst.items = make([]*Value, len(v.items))
		dst.keys = append([]string(nil), v.keys...)
		dst.index = make(map[string]int, len(v.keys))
		for i, item := range v.items {
			dst.items[i] = item.Clone()
			dst.index[v.keys[i]] = i
		}
	}
	return dst
}

// Equal reports structural equality. Mapping comparison ignores entry
// order; numbers compare by numeric value when both literals parse.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.text == b.text
	case KindNumber:
		if a.text == b.text {
			return true
		}
		fa, errA := a.Float64()
		fb, errB := b.Float64()
		return errA == nil && errB == nil && fa == fb
	case KindSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for i, key := range a.keys {
			other, ok := b.Get(key)
			if !ok || !Equal(a.items[i], other) {
				return false
			}
		}
		return true
	}
	return false
}
