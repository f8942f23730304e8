package formatter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jacoelho/pick/internal/pick"
	"github.com/jacoelho/pick/internal/value"
)

func TestDocumentPayload(t *testing.T) {
	bar := value.FromString("bar")
	one := value.FromInt(1)

	tests := []struct {
		name string
		doc  Document
		want *value.Value
	}{
		{
			name: "single_path_hit",
			doc:  Document{Results: []pick.Result{{Path: "foo", Value: bar}}},
			want: bar,
		},
		{
			name: "single_path_miss",
			doc:  Document{Results: []pick.Result{{Path: "nope"}}},
			want: value.Null(),
		},
		{
			name: "several_paths_keep_slots",
			doc: Document{Results: []pick.Result{
				{Path: "foo", Value: bar},
				{Path: "nope"},
				{Path: "x/::0", Err: errors.New("bad")},
				{Path: "n", Value: one},
			}},
			want: value.FromSlice([]*value.Value{bar, value.Null(), value.Null(), one}),
		},
		{
			name: "compact_hits_only",
			doc:  Document{Compact: true, Values: []*value.Value{one, bar}},
			want: value.FromSlice([]*value.Value{one, bar}),
		},
		{
			name: "compact_nothing_found",
			doc:  Document{Compact: true},
			want: value.FromSlice(nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.doc.Payload(); !value.Equal(got, tt.want) {
				t.Errorf("Payload() = %v, want %v", got.Any(), tt.want.Any())
			}
		})
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer

	if !UseColor(ColorAlways, &buf) {
		t.Error("always should enable colour")
	}
	if UseColor(ColorNever, &buf) {
		t.Error("never should disable colour")
	}
	if UseColor(ColorAuto, &buf) {
		t.Error("auto should disable colour for a non-terminal writer")
	}
}
