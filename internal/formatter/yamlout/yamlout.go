// Package yamlout writes each document's output as a YAML document.
package yamlout

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/jacoelho/pick/internal/formatter"
)

const separator = "---\n"

type Formatter struct {
	writer  io.Writer
	written int
}

func NewWithWriter(writer io.Writer) formatter.Formatter {
	return &Formatter{writer: writer}
}

func (f *Formatter) Format(doc formatter.Document) error {
	data, err := yaml.Marshal(doc.Payload())
	if err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}

	if f.written > 0 {
		if _, err := io.WriteString(f.writer, separator); err != nil {
			return err
		}
	}
	f.written++

	_, err = f.writer.Write(data)
	return err
}
