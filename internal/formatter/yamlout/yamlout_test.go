package yamlout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jacoelho/pick/internal/formatter"
	"github.com/jacoelho/pick/internal/pick"
	"github.com/jacoelho/pick/internal/value"
)

func TestFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	f := NewWithWriter(&buf)

	doc, err := value.DecodeJSON(bytes.NewBufferString(`{"name": "svc", "ports": [80, 443]}`))
	if err != nil {
		t.Fatal(err)
	}

	docs := []formatter.Document{
		{Results: []pick.Result{{Path: "", Value: doc}}},
		{Results: []pick.Result{{Path: "name", Value: value.FromString("svc")}}},
	}
	for _, d := range docs {
		if err := f.Format(d); err != nil {
			t.Fatalf("Format() error = %v", err)
		}
	}

	parts := strings.Split(buf.String(), "---\n")
	if len(parts) != 2 {
		t.Fatalf("expected two YAML documents, got %d:\n%s", len(parts), buf.String())
	}
	if !strings.HasPrefix(parts[0], "name: svc\nports:\n") {
		t.Errorf("first document should keep key order, got:\n%s", parts[0])
	}
	if parts[1] != "svc\n" {
		t.Errorf("second document = %q, want %q", parts[1], "svc\n")
	}
}

func TestFormatter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	f := NewWithWriter(&buf)

	src := value.MustFromAny(map[string]any{"b": []any{1, "x"}, "a": map[string]any{"c": true}})
	if err := f.Format(formatter.Document{Compact: true, Values: []*value.Value{src}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	back, err := value.DecodeYAML(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeYAML() error = %v", err)
	}
	want := value.FromSlice([]*value.Value{src})
	if len(back) != 1 || !value.Equal(back[0], want) {
		t.Errorf("round trip mismatch: got %v", back)
	}
}
