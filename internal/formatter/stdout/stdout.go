package stdout

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jacoelho/pick/internal/formatter"
	"github.com/jacoelho/pick/internal/value"
)

// Formatter writes one "path: value" line per query.
type Formatter struct {
	writer    io.Writer
	pathStyle *color.Color
	missStyle *color.Color
	errStyle  *color.Color
}

// NewWithWriter creates a text formatter with a custom writer.
func NewWithWriter(writer io.Writer, useColor bool) formatter.Formatter {
	f := &Formatter{
		writer:    writer,
		pathStyle: color.New(color.FgCyan, color.Bold),
		missStyle: color.New(color.FgYellow),
		errStyle:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{f.pathStyle, f.missStyle, f.errStyle} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return f
}

func (f *Formatter) Format(doc formatter.Document) error {
	if doc.Compact {
		for _, v := range doc.Values {
			text, err := render(v)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(f.writer, text); err != nil {
				return err
			}
		}
		return nil
	}

	for _, r := range doc.Results {
		var text string
		switch {
		case r.Err != nil:
			text = f.errStyle.Sprintf("error: %v", r.Err)
		case r.Value == nil:
			text = f.missStyle.Sprint("(no match)")
		default:
			rendered, err := render(r.Value)
			if err != nil {
				return err
			}
			text = rendered
		}

		if _, err := fmt.Fprintf(f.writer, "%s: %s\n", f.pathStyle.Sprint(r.Path), text); err != nil {
			return err
		}
	}
	return nil
}

// render prints strings bare and everything else as JSON.
func render(v *value.Value) (string, error) {
	if v.Kind() == value.KindString {
		return v.Str(), nil
	}
	data, err := v.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
