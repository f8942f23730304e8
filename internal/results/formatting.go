package results

import (
	"fmt"
	"io"
)

// FormatText writes the run summary as aligned text lines.
func (s *Summary) FormatText(w io.Writer) error {
	lines := []struct {
		format string
		args   []any
	}{
		{"Run:              %s\n", []any{s.RunID}},
		{"Sources:          %d\n", []any{s.Sources}},
		{"Documents:        %d (%.2f/s)\n", []any{s.Documents, s.DocumentsPerSecond()}},
		{"Queries:          %d\n", []any{s.Queries}},
		{"Matched:          %d (%.1f%%)\n", []any{s.Matched, s.MatchPercentage()}},
		{"Missed:           %d\n", []any{s.Missed}},
		{"Malformed:        %d\n", []any{s.Failed}},
		{"Decode errors:    %d\n", []any{s.DecodeErrors}},
		{"Duration:         %d ms\n", []any{s.TotalDuration.Milliseconds()}},
	}

	if _, err := fmt.Fprintln(w, "--------------------------------------------------------------------------------"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, line.format, line.args...); err != nil {
			return err
		}
	}
	return nil
}
