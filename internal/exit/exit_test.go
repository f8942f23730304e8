package exit

import (
	"bytes"
	"testing"
)

func TestResults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   *Result
		wantCode int
		wantMsg  string
	}{
		{name: "success", result: Success("ok\n"), wantCode: CodeOK, wantMsg: "ok\n"},
		{name: "error", result: Errorf("failed: %d\n", 7), wantCode: CodeFailure, wantMsg: "failed: 7\n"},
		{name: "usage", result: Usagef("bad flag %s\n", "-x"), wantCode: CodeUsage, wantMsg: "bad flag -x\n"},
		{name: "no_match", result: NoMatch(), wantCode: CodeNoMatch, wantMsg: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if tt.result.ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", tt.result.ExitCode, tt.wantCode)
			}

			var buf bytes.Buffer
			tt.result.Output = &buf
			tt.result.Print()
			if got := buf.String(); got != tt.wantMsg {
				t.Errorf("Print() wrote %q, want %q", got, tt.wantMsg)
			}
		})
	}
}
