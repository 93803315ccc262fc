// Package matrix reads the CI build matrix that lists every published
// image variant and turns it into the tag bullet lists shown on registry
// listings.
//
// The matrix file is JSON as emitted by the CI workflow:
//
//	{"matrix": {"include": [
//	  {"name": "8.0", "meta": {"entries": [
//	    {"tags": ["8.0:bookworm", "8.0:latest"], "directory": "8.0/debian"}
//	  ]}}
//	]}}
//
// Comments and trailing commas are tolerated via github.com/tidwall/jsonc,
// so hand-maintained fixtures can be annotated.
//
// Entries are classified by name into official releases, release
// candidates and the latest unstable build. Structural problems are
// reported as *FieldError values that match ErrMissingField.
package matrix
