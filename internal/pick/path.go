package pick

import (
	"strings"

	"github.com/jacoelho/pick/internal/value"
)

// Path is a tokenized and classified path that can be applied to many
// documents. It is immutable and safe for concurrent use.
type Path struct {
	raw  string
	toks []token
}

// Compile tokenizes path once. Compile never fails: whether a token such as
// "a:b" is a malformed slice or a mapping key depends on the node it meets,
// so syntax errors surface from Search.
func Compile(path string, opts ...Option) *Path {
	o := newOptions(opts)
	return &Path{
		raw:  path,
		toks: classifyAll(Tokenize(path, o.delimiter)),
	}
}

func compileTokens(raws []string) *Path {
	return &Path{
		raw:  strings.Join(raws, DefaultDelimiter),
		toks: classifyAll(raws),
	}
}

// Search applies the path to root. A nil value with a nil error means the
// path did not match.
func (p *Path) Search(root *value.Value) (*value.Value, error) {
	if root == nil {
		return nil, nil
	}
	return search(root, p.toks)
}

func (p *Path) String() string {
	return p.raw
}

func (p *Path) Tokens() []string {
	out := make([]string, len(p.toks))
	for i, t := range p.toks {
		out[i] = t.raw
	}
	return out
}
