package stdout

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jacoelho/pick/internal/formatter"
	"github.com/jacoelho/pick/internal/pick"
	"github.com/jacoelho/pick/internal/value"
)

func TestFormatter_Format(t *testing.T) {
	tests := []struct {
		name     string
		doc      formatter.Document
		expected string
	}{
		{
			name: "paths",
			doc: formatter.Document{Results: []pick.Result{
				{Path: "foo", Value: value.FromString("bar")},
				{Path: "arr/0", Value: value.FromInt(1)},
				{Path: "arr", Value: value.MustFromAny([]any{1, "a"})},
				{Path: "missing"},
				{Path: "arr/::0", Err: errors.New("zero step")},
			}},
			expected: "foo: bar\n" +
				"arr/0: 1\n" +
				"arr: [1,\"a\"]\n" +
				"missing: (no match)\n" +
				"arr/::0: error: zero step\n",
		},
		{
			name: "compact",
			doc: formatter.Document{Compact: true, Values: []*value.Value{
				value.FromString("bar"),
				value.MustFromAny(map[string]any{"a": true}),
			}},
			expected: "bar\n{\"a\":true}\n",
		},
		{
			name:     "compact_empty",
			doc:      formatter.Document{Compact: true},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := NewWithWriter(&buf, false)

			if err := f.Format(tt.doc); err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("Format() output:\n%s\nwant:\n%s", got, tt.expected)
			}
		})
	}
}

func TestFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	f := NewWithWriter(&buf, true)

	doc := formatter.Document{Results: []pick.Result{{Path: "foo", Value: value.FromString("bar")}}}
	if err := f.Format(doc); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("\x1b[")) {
		t.Errorf("expected ANSI escape sequences, got %q", buf.String())
	}
}
