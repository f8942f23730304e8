package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jacoelho/pick/internal/config"
	"github.com/jacoelho/pick/internal/exit"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func baseConfig(files []string, paths ...string) *config.Config {
	return &config.Config{
		Paths:     paths,
		Delimiter: "/",
		Files:     files,
		Workers:   1,
		Format:    config.FormatJSON,
		Color:     "never",
	}
}

// TestRunnerEndToEnd drives the runner from files to formatted output.
func TestRunnerEndToEnd(t *testing.T) {
	jsonFile := writeFile(t, "doc.json", `{"foo": "bar", "arr": [{"b": 1}, 7, {"b": 2}], "m": {"x": {"y": 1}}}`)
	yamlFile := writeFile(t, "docs.yaml", "name: a\nports: [80, 443]\n---\nname: b\nports: []\n")
	badFile := writeFile(t, "bad.json", `{"foo": `)

	tests := []struct {
		name       string
		cfg        func() *config.Config
		stdin      string
		wantCode   int
		wantOutput string
		wantStderr []string
	}{
		{
			name:       "single_path_json",
			cfg:        func() *config.Config { return baseConfig([]string{jsonFile}, "foo") },
			wantCode:   exit.CodeOK,
			wantOutput: "\"bar\"\n",
		},
		{
			name:       "several_paths_keep_slots",
			cfg:        func() *config.Config { return baseConfig([]string{jsonFile}, "arr/*/b", "nope", "arr/-2") },
			wantCode:   exit.CodeOK,
			wantOutput: "[[1,2],null,7]\n",
		},
		{
			name: "compact_drops_misses",
			cfg: func() *config.Config {
				c := baseConfig([]string{jsonFile}, "nope", "m/*/y", "arr/::-1")
				c.Compact = true
				return c
			},
			wantCode:   exit.CodeOK,
			wantOutput: "[1,[{\"b\":2},7,{\"b\":1}]]\n",
		},
		{
			name: "yaml_documents_text_output",
			cfg: func() *config.Config {
				c := baseConfig([]string{yamlFile}, "name", "ports/0")
				c.Format = config.FormatText
				return c
			},
			wantCode:   exit.CodeOK,
			wantOutput: "name: a\nports/0: 80\nname: b\nports/0: (no match)\n",
		},
		{
			name: "ndjson_stdin",
			cfg: func() *config.Config {
				c := baseConfig([]string{config.Stdin}, "id")
				c.Input = config.InputNDJSON
				c.Workers = 4
				return c
			},
			stdin:      "{\"id\": 1}\n{\"id\": 2}\n{\"other\": 3}\n",
			wantCode:   exit.CodeOK,
			wantOutput: "1\n2\nnull\n",
		},
		{
			name: "exit_status_without_match",
			cfg: func() *config.Config {
				c := baseConfig([]string{jsonFile}, "missing")
				c.ExitStatus = true
				return c
			},
			wantCode:   exit.CodeNoMatch,
			wantOutput: "null\n",
		},
		{
			name:       "malformed_slice",
			cfg:        func() *config.Config { return baseConfig([]string{jsonFile}, "arr/::0") },
			wantCode:   exit.CodeUsage,
			wantOutput: "null\n",
			wantStderr: []string{"malformed path", "cannot be zero"},
		},
		{
			name: "malformed_slice_compact",
			cfg: func() *config.Config {
				c := baseConfig([]string{jsonFile}, "foo", "arr/1:x")
				c.Compact = true
				return c
			},
			wantCode:   exit.CodeUsage,
			wantOutput: "[\"bar\"]\n",
			wantStderr: []string{"malformed path", "arr/1:x"},
		},
		{
			name:       "decode_error_continues",
			cfg:        func() *config.Config { return baseConfig([]string{badFile, jsonFile}, "foo") },
			wantCode:   exit.CodeFailure,
			wantOutput: "\"bar\"\n",
			wantStderr: []string{"failed to process source", "bad.json"},
		},
		{
			name: "stats_summary",
			cfg: func() *config.Config {
				c := baseConfig([]string{jsonFile}, "foo", "nope")
				c.Stats = true
				return c
			},
			wantCode:   exit.CodeOK,
			wantOutput: "[\"bar\",null]\n",
			wantStderr: []string{"Documents:        1", "Matched:          1 (50.0%)", "Missed:           1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer

			r, res := NewWithIO(tt.cfg(), strings.NewReader(tt.stdin), &out, &errOut)
			if res != nil {
				t.Fatalf("NewWithIO() exit result: %s", res.Message)
			}

			if code := r.Run(context.Background()); code != tt.wantCode {
				t.Errorf("Run() = %d, want %d\nstderr:\n%s", code, tt.wantCode, errOut.String())
			}
			if got := out.String(); got != tt.wantOutput {
				t.Errorf("output = %q, want %q", got, tt.wantOutput)
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(errOut.String(), want) {
					t.Errorf("stderr missing %q:\n%s", want, errOut.String())
				}
			}
		})
	}
}

func TestRunnerLogsRunID(t *testing.T) {
	jsonFile := writeFile(t, "doc.json", `{"a": 1}`)

	cfg := baseConfig([]string{jsonFile}, "b")
	cfg.Debug = true

	var out, errOut bytes.Buffer
	r, res := NewWithIO(cfg, strings.NewReader(""), &out, &errOut)
	if res != nil {
		t.Fatalf("NewWithIO() exit result: %s", res.Message)
	}
	r.Run(context.Background())

	if !strings.Contains(errOut.String(), "run="+r.runID) {
		t.Errorf("debug log should carry run=%s:\n%s", r.runID, errOut.String())
	}
	if !strings.Contains(errOut.String(), "no match") {
		t.Errorf("debug log should report misses:\n%s", errOut.String())
	}
}

func TestRunnerCancelled(t *testing.T) {
	jsonFile := writeFile(t, "doc.json", `{"a": 1}`)

	var out, errOut bytes.Buffer
	r, res := NewWithIO(baseConfig([]string{jsonFile}, "a"), strings.NewReader(""), &out, &errOut)
	if res != nil {
		t.Fatalf("NewWithIO() exit result: %s", res.Message)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := r.Run(ctx); code != exit.CodeFailure {
		t.Errorf("Run() = %d, want %d", code, exit.CodeFailure)
	}
	if out.Len() != 0 {
		t.Errorf("cancelled run should not print output, got %q", out.String())
	}
}

func TestNewWithoutConfig(t *testing.T) {
	if _, res := NewWithIO(nil, nil, nil, nil); res == nil || res.ExitCode != exit.CodeFailure {
		t.Errorf("NewWithIO(nil) should fail with exit code %d", exit.CodeFailure)
	}
}
