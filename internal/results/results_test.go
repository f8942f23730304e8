package results

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSummaryAdd(t *testing.T) {
	s := NewSummary("run-1")
	s.AddSource()

	s.Add(NewDocumentResultBuilder("a.json", 0).Matched().Matched().Missed().Build())
	s.Add(NewDocumentResultBuilder("a.json", 1).Failed().Missed().Build())
	s.AddDecodeError()
	s.SetTotalDuration(2 * time.Second)

	if s.Documents != 2 || s.Queries != 5 || s.Matched != 2 || s.Missed != 2 || s.Failed != 1 {
		t.Fatalf("unexpected counters: %+v", s)
	}
	if !s.AnyMatched() {
		t.Error("AnyMatched() = false, want true")
	}
	if got := s.MatchPercentage(); got != 40 {
		t.Errorf("MatchPercentage() = %f, want 40", got)
	}
	if got := s.DocumentsPerSecond(); got != 1 {
		t.Errorf("DocumentsPerSecond() = %f, want 1", got)
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := NewSummary("empty")
	if s.AnyMatched() || s.MatchPercentage() != 0 || s.DocumentsPerSecond() != 0 {
		t.Fatalf("empty summary should report zeros: %+v", s)
	}
}

func TestFormatText(t *testing.T) {
	s := NewSummary("abc")
	s.AddSource()
	s.Add(NewDocumentResultBuilder("-", 0).Matched().Missed().Build())
	s.SetTotalDuration(500 * time.Millisecond)

	var buf bytes.Buffer
	if err := s.FormatText(&buf); err != nil {
		t.Fatalf("FormatText() error = %v", err)
	}

	for _, want := range []string{
		"Run:              abc",
		"Documents:        1 (2.00/s)",
		"Matched:          1 (50.0%)",
		"Missed:           1",
		"Duration:         500 ms",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("FormatText() output missing %q:\n%s", want, buf.String())
		}
	}
}
