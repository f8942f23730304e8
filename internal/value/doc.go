// Package value is the document model queried by package pick.
//
// A Value is a closed tagged union over null, bool, number, string,
// sequence and mapping. Mappings keep insertion order for iteration and
// hold unique keys. Trees are built once by a decoder (JSON, YAML or native
// Go values) and then only read; nothing in the query path mutates them,
// so one tree can be shared by concurrent queries.
//
// Conversions at the boundary:
//   - DecodeJSON / DecodeJSONStream read JSON and NDJSON preserving key order
//   - DecodeYAML reads one Value per YAML document
//   - FromAny / Any convert from and to map[string]any, []any and scalars
//   - MarshalJSON / MarshalYAML encode in insertion order
package value
