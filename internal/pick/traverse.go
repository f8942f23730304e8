package pick

import (
	"github.com/jacoelho/pick/internal/value"
)

// search applies toks to node. A nil value with a nil error is a miss.
// Recursion depth is bounded by len(toks), not by the depth of the tree.
func search(node *value.Value, toks []token) (*value.Value, error) {
	switch node.Kind() {
	case value.KindMapping:
		return searchMapping(node, toks)
	case value.KindSequence:
		return searchSequence(node, toks)
	}

	if len(toks) == 0 {
		return node, nil
	}
	return nil, nil
}

func searchMapping(node *value.Value, toks []token) (*value.Value, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	tok, rest := toks[0], toks[1:]

	switch tok.raw {
	case "":
		return nil, nil
	case wildcard:
		if len(rest) == 0 {
			return node, nil
		}
		return firstMatch(node, rest)
	}

	child, ok := node.Get(tok.raw)
	if !ok {
		return nil, nil
	}
	if len(rest) == 0 {
		return child, nil
	}
	return search(child, rest)
}

// firstMatch resolves rest against each mapping valued entry of node, one
// level down, and stops at the first hit.
func firstMatch(node *value.Value, rest []token) (*value.Value, error) {
	for _, child := range node.Entries() {
		if child.Kind() != value.KindMapping {
			continue
		}

		found, err := searchMapping(child, rest)
		if err != nil {
			return nil, err
		}
		if found != nil {
			return found, nil
		}
	}
	return nil, nil
}

func searchSequence(node *value.Value, toks []token) (*value.Value, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	tok, rest := toks[0], toks[1:]

	switch tok.kind {
	case tokenIndex:
		elem := node.Index(normalizeIndex(tok.index, node.Len()))
		if elem == nil {
			return nil, nil
		}
		if len(rest) == 0 {
			return elem, nil
		}
		return search(elem, rest)

	case tokenSlice:
		if tok.err != nil {
			return nil, tok.err
		}
		return sliceSequence(node, tok.slice, rest)

	case tokenWildcard:
		if len(rest) == 0 {
			return node, nil
		}
		return collectAll(node, rest)
	}

	return nil, nil
}

// sliceSequence always yields a sequence, possibly empty. Misses of rest
// are recorded as null so the output lines up with the selected indices.
func sliceSequence(node *value.Value, sel sliceSel, rest []token) (*value.Value, error) {
	indices := sel.indices(node.Len())
	out := make([]*value.Value, 0, len(indices))

	for _, i := range indices {
		elem := node.Index(i)
		if elem == nil {
			continue
		}
		if len(rest) == 0 {
			out = append(out, elem)
			continue
		}

		found, err := search(elem, rest)
		if err != nil {
			return nil, err
		}
		if found == nil {
			found = value.Null()
		}
		out = append(out, found)
	}

	return value.FromSlice(out), nil
}

// collectAll resolves rest against every mapping element of node and keeps
// only the hits.
func collectAll(node *value.Value, rest []token) (*value.Value, error) {
	out := make([]*value.Value, 0, node.Len())

	for _, elem := range node.Items() {
		if elem.Kind() != value.KindMapping {
			continue
		}

		found, err := searchMapping(elem, rest)
		if err != nil {
			return nil, err
		}
		if found != nil {
			out = append(out, found)
		}
	}

	return value.FromSlice(out), nil
}
