package pick

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/jacoelho/pick/internal/value"
)

// Result is the outcome of one path in PickByPaths. Value is nil when the
// path did not match; Err is set when the path was malformed.
type Result struct {
	Path  string
	Value *value.Value
	Err   error
}

func (r Result) Found() bool {
	return r.Value != nil
}

// Search applies pre-split tokens to root.
func Search(root *value.Value, tokens []string) (*value.Value, error) {
	return compileTokens(tokens).Search(root)
}

// PickByPath splits path on the configured delimiter and searches root.
func PickByPath(root *value.Value, path string, opts ...Option) (*value.Value, error) {
	return Compile(path, opts...).Search(root)
}

// BulkSearch runs every token query against root and returns only the hits,
// in query order. Misses are dropped, so positions do not correspond to
// queries. Malformed queries are dropped too and reported together in the
// returned error as *QueryError values; the hits are returned regardless.
func BulkSearch(root *value.Value, queries [][]string, opts ...Option) ([]*value.Value, error) {
	o := newOptions(opts)

	paths := make([]*Path, len(queries))
	for i, q := range queries {
		paths[i] = compileTokens(q)
	}
	found, errs := runAll(root, paths, o.workers)

	out := make([]*value.Value, 0, len(queries))
	var failed []error
	for i := range paths {
		if errs[i] != nil {
			failed = append(failed, &QueryError{Index: i, Path: paths[i].String(), Err: errs[i]})
			continue
		}
		if found[i] != nil {
			out = append(out, found[i])
		}
	}

	return out, errors.Join(failed...)
}

// PickByPaths returns exactly one Result per path, in input order. A
// malformed path only fails its own entry.
func PickByPaths(root *value.Value, paths []string, opts ...Option) []Result {
	o := newOptions(opts)

	compiled := make([]*Path, len(paths))
	for i, p := range paths {
		compiled[i] = Compile(p, opts...)
	}
	found, errs := runAll(root, compiled, o.workers)

	out := make([]Result, len(paths))
	for i, p := range paths {
		out[i] = Result{Path: p, Value: found[i], Err: errs[i]}
	}
	return out
}

// SearchAll applies compiled paths to root with the same one-result-per-path
// contract as PickByPaths.
func SearchAll(root *value.Value, paths []*Path, opts ...Option) []Result {
	o := newOptions(opts)
	found, errs := runAll(root, paths, o.workers)

	out := make([]Result, len(paths))
	for i, p := range paths {
		out[i] = Result{Path: p.String(), Value: found[i], Err: errs[i]}
	}
	return out
}

// runAll evaluates paths independently. Each slot is written by exactly one
// goroutine, so results come back in input order without locking.
func runAll(root *value.Value, paths []*Path, workers int) ([]*value.Value, []error) {
	found := make([]*value.Value, len(paths))
	errs := make([]error, len(paths))

	if workers < 2 || len(paths) < 2 {
		for i, p := range paths {
			found[i], errs[i] = p.Search(root)
		}
		return found, errs
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, p := range paths {
		g.Go(func() error {
			found[i], errs[i] = p.Search(root)
			return nil
		})
	}
	_ = g.Wait()

	return found, errs
}
