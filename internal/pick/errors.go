package pick

import (
	"errors"
	"fmt"
)

// ErrMalformedPath indicates a token that cannot be applied because its
// syntax is invalid, as opposed to a lookup that simply found nothing.
var ErrMalformedPath = errors.New("pick: malformed path")

// QueryError locates a failed query inside a batch.
type QueryError struct {
	Index int
	Path  string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %d (%s): %v", e.Index, e.Path, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
