// Package pick extracts sub-values from a value.Value tree using compact
// delimiter separated paths such as "users/0/name" or "items/*/id".
//
// Each path segment (token) is interpreted against the shape of the node it
// meets, so one path may cross mappings and sequences in any order:
//   - Mapping: "*" or a literal key. A numeric looking token is still a key.
//   - Sequence: an integer index (negative counts from the end), a slice
//     "start:end" or "start:end:step" (each part optional), or "*".
//   - Scalar: nothing can be applied; the lookup misses.
//
// The two wildcards differ on purpose:
//   - "*" at a mapping, when more tokens follow, tries each mapping valued
//     entry in order and returns the first one the remaining tokens resolve
//     against. Non-mapping entries are skipped.
//   - "*" at a sequence, when more tokens follow, resolves the remaining
//     tokens against every mapping element and collects the hits into a new
//     sequence. Non-mapping elements and misses are omitted.
//   - "*" as the last token returns the node itself.
//
// A slice with a positive step selects index i when start <= i < end and
// i % step == 0; the modulus applies to the absolute index, not the offset
// from start. A negative step walks start..end by |step| and reverses the
// selection. Under a slice, elements the remaining tokens miss are kept as
// null so positions line up with the selection.
//
// A miss is never an error: lookups return a nil *value.Value. Errors are
// reserved for malformed slices (zero step, non-integer bounds) met at a
// sequence, and wrap ErrMalformedPath.
package pick
