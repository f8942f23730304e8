package pick

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const wildcard = "*"

const (
	tokenEmpty tokenKind = iota
	tokenLiteral
	tokenWildcard
	tokenIndex
	tokenSlice
)

type tokenKind uint8

// token is a classified path segment. raw is always kept because a mapping
// looks keys up by their text whatever the classification says.
type token struct {
	raw   string
	kind  tokenKind
	index int
	slice sliceSel
	err   error // set for slice shaped tokens that fail to parse
}

type sliceSel struct {
	start, end, step int
	hasStart, hasEnd bool
}

// Tokenize splits path on delimiter without trimming or unescaping. An
// empty delimiter means DefaultDelimiter. The result is never empty: ""
// yields a single empty token, which matches nothing.
func Tokenize(path, delimiter string) []string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return strings.Split(path, delimiter)
}

func classify(raw string) token {
	t := token{raw: raw}

	switch {
	case raw == "":
		t.kind = tokenEmpty
	case isIndex(raw):
		t.kind = tokenIndex
		t.index, _ = strconv.Atoi(raw)
	case isSliceShaped(raw):
		t.kind = tokenSlice
		t.slice, t.err = parseSlice(raw)
	case raw == wildcard:
		t.kind = tokenWildcard
	default:
		t.kind = tokenLiteral
	}
	return t
}

func classifyAll(raws []string) []token {
	toks := make([]token, len(raws))
	for i, raw := range raws {
		toks[i] = classify(raw)
	}
	return toks
}

func isIndex(raw string) bool {
	_, err := strconv.Atoi(raw)
	return err == nil
}

// isSliceShaped accepts "a:b" and "a:b:c". Any part may be empty.
func isSliceShaped(raw string) bool {
	n := strings.Count(raw, ":")
	return n == 1 || n == 2
}

func parseSlice(raw string) (sliceSel, error) {
	bounds := strings.Split(raw, ":")
	s := sliceSel{step: 1}

	var err error
	if s.start, s.hasStart, err = parseSliceBound(bounds[0], "start", raw); err != nil {
		return sliceSel{}, err
	}
	if s.end, s.hasEnd, err = parseSliceBound(bounds[1], "end", raw); err != nil {
		return sliceSel{}, err
	}

	if len(bounds) == 3 {
		step, ok, err := parseSliceBound(bounds[2], "step", raw)
		if err != nil {
			return sliceSel{}, err
		}
		if ok {
			if step == 0 {
				return sliceSel{}, fmt.Errorf("%w: slice step cannot be zero in '%s'", ErrMalformedPath, raw)
			}
			s.step = step
		}
	}

	return s, nil
}

func parseSliceBound(part, boundType, fullSlice string) (int, bool, error) {
	if part == "" {
		return 0, false, nil
	}

	v, err := strconv.Atoi(part)
	if err != nil {
		return 0, false, fmt.Errorf("%w: slice %s '%s' in '%s' is not a number", ErrMalformedPath, boundType, part, fullSlice)
	}
	return v, true, nil
}

// normalizeIndex maps a negative position onto a sequence of length n.
func normalizeIndex(i, n int) int {
	if i < 0 {
		return n + i
	}
	return i
}

// indices lists the positions the slice selects in a sequence of length n,
// in output order. Every returned index is in range.
func (s sliceSel) indices(n int) []int {
	start, end := 0, n
	if s.hasStart {
		start = normalizeIndex(s.start, n)
	}
	if s.hasEnd {
		end = normalizeIndex(s.end, n)
	}

	if s.step > 0 {
		var out []int
		for i := range n {
			if i >= start && i < end && i%s.step == 0 {
				out = append(out, i)
			}
		}
		return out
	}

	// stride and alignment are computed in uint64: step may be math.MinInt
	// and start may be far below zero.
	stride := uint64(-(s.step + 1)) + 1

	var first uint64
	if start < 0 {
		// first in-range index on the stride that starts at start
		dist := uint64(-(start + 1)) + 1
		k := dist / stride
		if dist%stride != 0 {
			k++
		}
		first = k*stride - dist
	} else {
		first = uint64(start)
	}

	limit := min(end, n)
	if limit <= 0 {
		return nil
	}

	var out []int
	for i := first; i < uint64(limit); i += stride {
		out = append(out, int(i))
	}
	slices.Reverse(out)
	return out
}
