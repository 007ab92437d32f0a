package synth

import "github.com/c360studio/ontograph/introspect"

// Resolution errors surface from the shared introspection pass unchanged.
// The aliases let callers match them without importing introspect.
type (
	UnresolvedRangeError     = introspect.UnresolvedRangeError
	DuplicateIdentifierError = introspect.DuplicateIdentifierError
)
