package introspect

import "fmt"

// UnresolvedRangeError reports a relation field with no explicit or
// inferable range. An unranged relation cannot be represented as a valid
// rdf:Property / sh:PropertyShape pair, so resolution fails rather than
// emitting a node with under-specified semantics.
type UnresolvedRangeError struct {
	Class string
	Field string
}

func (e *UnresolvedRangeError) Error() string {
	return fmt.Sprintf("relation field %s.%s has no resolvable range: add an rdfs:range annotation or a target class", e.Class, e.Field)
}

// DuplicateIdentifierError reports two distinct declarations resolving to
// the same IRI within one ontology. Synthesis aborts rather than silently
// merging or overwriting nodes.
type DuplicateIdentifierError struct {
	IRI string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %s in ontology", e.IRI)
}
