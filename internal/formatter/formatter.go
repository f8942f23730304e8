package formatter

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/jacoelho/pick/internal/pick"
	"github.com/jacoelho/pick/internal/value"
)

// Formatter renders the query output of one document at a time.
// Implementations are responsible for where the output goes.
type Formatter interface {
	Format(doc Document) error
}

// Document is the query output for a single input document.
type Document struct {
	Source string
	Index  int

	// Results has one entry per configured path, in path order.
	Results []pick.Result

	// Compact output carries only the values found.
	Compact bool
	Values  []*value.Value
}

// Payload is the value a structured formatter writes for the document.
// A single path yields its value directly; several paths yield a sequence
// with null where nothing matched. Compact documents yield the hits only.
func (d Document) Payload() *value.Value {
	if d.Compact {
		return value.FromSlice(d.Values)
	}

	if len(d.Results) == 1 {
		return orNull(d.Results[0].Value)
	}

	items := make([]*value.Value, len(d.Results))
	for i, r := range d.Results {
		items[i] = orNull(r.Value)
	}
	return value.FromSlice(items)
}

func orNull(v *value.Value) *value.Value {
	if v == nil {
		return value.Null()
	}
	return v
}

// Color modes accepted by UseColor.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// UseColor resolves a colour mode for w. Auto enables colour only when w is
// a terminal and NO_COLOR is unset.
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
