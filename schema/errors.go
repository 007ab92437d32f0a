package schema

import "fmt"

// UnknownAnnotationValueError reports an annotation value outside its
// recognized domain, such as a malformed cardinality or an unknown SHACL
// node kind. It is raised at declaration-processing time, before any graph
// is synthesized.
type UnknownAnnotationValueError struct {
	Kind   AnnotationKind
	Value  string
	Reason string
}

func (e *UnknownAnnotationValueError) Error() string {
	return fmt.Sprintf("invalid value %q for annotation %s: %s", e.Value, e.Kind, e.Reason)
}
