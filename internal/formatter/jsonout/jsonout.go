// Package jsonout writes one JSON line per document.
package jsonout

import (
	"io"

	"github.com/jacoelho/pick/internal/formatter"
)

type Formatter struct {
	writer io.Writer
}

func NewWithWriter(writer io.Writer) formatter.Formatter {
	return &Formatter{writer: writer}
}

func (f *Formatter) Format(doc formatter.Document) error {
	data, err := doc.Payload().MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = f.writer.Write(data)
	return err
}
