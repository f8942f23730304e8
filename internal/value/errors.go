package value

import "errors"

var (
	// ErrMalformed indicates the input document could not be decoded.
	ErrMalformed = errors.New("value: malformed document")

	// ErrUnsupported indicates a native or YAML value with no Value counterpart.
	ErrUnsupported = errors.New("value: unsupported type")
)
