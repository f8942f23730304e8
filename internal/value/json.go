package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/jacoelho/pick/internal/stack"
)

// containerFrame tracks an open mapping or sequence while tokens stream in.
type containerFrame struct {
	node    *Value
	key     string
	needKey bool
}

// DecodeJSON reads exactly one JSON document. Numbers keep their literal
// text and mapping keys keep document order.
func DecodeJSON(r io.Reader) (*Value, error) {
	dec := newDecoder(r)

	v, err := decodeDocument(dec)
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after top-level value", ErrMalformed)
	}
	return v, nil
}

// DecodeJSONStream yields consecutive top-level documents, as found in
// NDJSON or concatenated JSON. Iteration stops after the first error.
func DecodeJSONStream(r io.Reader) iter.Seq2[*Value, error] {
	return func(yield func(*Value, error) bool) {
		dec := newDecoder(r)
		for {
			v, err := decodeDocument(dec)
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

func newDecoder(r io.Reader) *json.Decoder {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec
}

// decodeDocument returns io.EOF untouched when the stream ends cleanly
// before a document starts.
func decodeDocument(dec *json.Decoder) (*Value, error) {
	frames := stack.NewWithCapacity[containerFrame](8)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) && frames.IsEmpty() {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}

		var v *Value
		switch t := tok.(type) {
		case json.Delim:
			switch t {
			case '{':
				v = NewMapping()
			case '[':
				v = FromSlice(nil)
			case '}', ']':
				closed, _ := frames.Pop()
				if frames.IsEmpty() {
					return closed.node, nil
				}
				continue
			}
		case string:
			if top := frames.Top(); top != nil && top.needKey {
				top.key = t
				top.needKey = false
				continue
			}
			v = FromString(t)
		case json.Number:
			v = FromNumber(t)
		case bool:
			v = FromBool(t)
		case nil:
			v = Null()
		default:
			return nil, fmt.Errorf("%w: unexpected token %T", ErrMalformed, tok)
		}

		top := frames.Top()
		if top == nil && v.IsScalar() {
			return v, nil
		}
		if top != nil {
			if top.node.kind == KindMapping {
				top.node.Set(top.key, v)
				top.needKey = true
			} else {
				top.node.Append(v)
			}
		}
		if !v.IsScalar() {
			frames.Push(containerFrame{node: v, needKey: v.kind == KindMapping})
		}
	}
}

// UnmarshalJSON replaces v with the decoded document.
func (v *Value) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*v = *decoded
	return nil
}

// MarshalJSON encodes mappings in insertion order.
func (v *Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) writeJSON(buf *bytes.Buffer) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}

	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if !json.Valid([]byte(v.text)) {
			return fmt.Errorf("%w: invalid number literal %q", ErrMalformed, v.text)
		}
		buf.WriteString(v.text)
	case KindString:
		return writeJSONString(buf, v.text)
	case KindSequence:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindMapping:
		buf.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.items[i].writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	encoded, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	return nil
}
