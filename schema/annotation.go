package schema

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/c360studio/ontograph/vocabulary"
)

// AnnotationKind identifies a recognized annotation key.
//
// The set is closed. Kinds outside it (for example from hand-edited schema
// files) are carried but ignored by introspection, never treated as errors.
// Values inside a recognized kind, however, are validated against that
// kind's allowed domain.
type AnnotationKind string

const (
	// KindRDFSDomain overrides the rdfs:domain of the field's property.
	KindRDFSDomain AnnotationKind = "rdfs:domain"

	// KindRDFSRange overrides the rdfs:range of the field's property.
	KindRDFSRange AnnotationKind = "rdfs:range"

	// KindPropertyIRI overrides the minted property identifier.
	KindPropertyIRI AnnotationKind = "iri"

	// KindSHACLDatatype overrides sh:datatype on the property shape.
	KindSHACLDatatype AnnotationKind = "sh:datatype"

	// KindSHACLClass overrides sh:class on the property shape.
	KindSHACLClass AnnotationKind = "sh:class"

	// KindSHACLNodeKind sets sh:nodeKind on the property shape.
	KindSHACLNodeKind AnnotationKind = "sh:nodeKind"

	// KindSHACLMinCount overrides the resolved sh:minCount.
	KindSHACLMinCount AnnotationKind = "sh:minCount"

	// KindSHACLMaxCount overrides the resolved sh:maxCount.
	KindSHACLMaxCount AnnotationKind = "sh:maxCount"

	// KindSHACLPattern sets sh:pattern on the property shape.
	KindSHACLPattern AnnotationKind = "sh:pattern"

	// KindSHACLMinLength sets sh:minLength on the property shape.
	KindSHACLMinLength AnnotationKind = "sh:minLength"

	// KindSHACLMaxLength sets sh:maxLength on the property shape.
	KindSHACLMaxLength AnnotationKind = "sh:maxLength"

	// KindSHACLMinInclusive sets sh:minInclusive on the property shape.
	KindSHACLMinInclusive AnnotationKind = "sh:minInclusive"

	// KindSHACLMaxInclusive sets sh:maxInclusive on the property shape.
	KindSHACLMaxInclusive AnnotationKind = "sh:maxInclusive"

	// KindSHACLMinExclusive sets sh:minExclusive on the property shape.
	KindSHACLMinExclusive AnnotationKind = "sh:minExclusive"

	// KindSHACLMaxExclusive sets sh:maxExclusive on the property shape.
	KindSHACLMaxExclusive AnnotationKind = "sh:maxExclusive"
)

// Annotation is an immutable tagged value attached to a field declaration.
// Exactly one of Str, Int, or Num is meaningful, determined by Kind.
type Annotation struct {
	Kind AnnotationKind
	Str  string
	Int  int
	Num  float64
}

// RDFSDomain overrides the property's rdfs:domain with an explicit IRI.
func RDFSDomain(iri string) Annotation {
	return Annotation{Kind: KindRDFSDomain, Str: iri}
}

// RDFSRange overrides the property's rdfs:range with an explicit IRI.
func RDFSRange(iri string) Annotation {
	return Annotation{Kind: KindRDFSRange, Str: iri}
}

// PropertyIRI overrides the minted property identifier.
func PropertyIRI(iri string) Annotation {
	return Annotation{Kind: KindPropertyIRI, Str: iri}
}

// SHACLDatatype sets sh:datatype; the value must be one of the XSD
// datatypes ontograph emits (e.g. "xsd:integer").
func SHACLDatatype(iri string) Annotation {
	return Annotation{Kind: KindSHACLDatatype, Str: iri}
}

// SHACLClass sets sh:class to the given class IRI.
func SHACLClass(iri string) Annotation {
	return Annotation{Kind: KindSHACLClass, Str: iri}
}

// SHACLNodeKind sets sh:nodeKind; the value must be one of the six SHACL
// node kinds (e.g. "sh:IRI").
func SHACLNodeKind(kind string) Annotation {
	return Annotation{Kind: KindSHACLNodeKind, Str: kind}
}

// SHACLMinCount overrides the minimum cardinality.
func SHACLMinCount(n int) Annotation {
	return Annotation{Kind: KindSHACLMinCount, Int: n}
}

// SHACLMaxCount overrides the maximum cardinality.
func SHACLMaxCount(n int) Annotation {
	return Annotation{Kind: KindSHACLMaxCount, Int: n}
}

// SHACLPattern sets a regex pattern all value nodes must match.
func SHACLPattern(pattern string) Annotation {
	return Annotation{Kind: KindSHACLPattern, Str: pattern}
}

// SHACLMinLength sets the minimum string length.
func SHACLMinLength(n int) Annotation {
	return Annotation{Kind: KindSHACLMinLength, Int: n}
}

// SHACLMaxLength sets the maximum string length.
func SHACLMaxLength(n int) Annotation {
	return Annotation{Kind: KindSHACLMaxLength, Int: n}
}

// SHACLMinInclusive sets the minimum inclusive value.
func SHACLMinInclusive(v float64) Annotation {
	return Annotation{Kind: KindSHACLMinInclusive, Num: v}
}

// SHACLMaxInclusive sets the maximum inclusive value.
func SHACLMaxInclusive(v float64) Annotation {
	return Annotation{Kind: KindSHACLMaxInclusive, Num: v}
}

// SHACLMinExclusive sets the minimum exclusive value.
func SHACLMinExclusive(v float64) Annotation {
	return Annotation{Kind: KindSHACLMinExclusive, Num: v}
}

// SHACLMaxExclusive sets the maximum exclusive value.
func SHACLMaxExclusive(v float64) Annotation {
	return Annotation{Kind: KindSHACLMaxExclusive, Num: v}
}

// Validate checks the annotation value against its kind's allowed domain.
// Unrecognized kinds pass: the closed-set contract applies to values, not to
// keys, which are ignored downstream.
func (a Annotation) Validate() error {
	switch a.Kind {
	case KindRDFSDomain, KindRDFSRange, KindSHACLClass, KindPropertyIRI:
		if a.Str == "" {
			return &UnknownAnnotationValueError{Kind: a.Kind, Value: a.Str, Reason: "IRI must not be empty"}
		}
		if strings.ContainsAny(a.Str, " \t\n\r") {
			return &UnknownAnnotationValueError{Kind: a.Kind, Value: a.Str, Reason: "IRI must not contain whitespace"}
		}
	case KindSHACLDatatype:
		if !vocabulary.IsDatatype(a.Str) {
			return &UnknownAnnotationValueError{Kind: a.Kind, Value: a.Str, Reason: "not a recognized XSD datatype"}
		}
	case KindSHACLNodeKind:
		if !vocabulary.IsNodeKind(a.Str) {
			return &UnknownAnnotationValueError{Kind: a.Kind, Value: a.Str, Reason: "not a SHACL node kind"}
		}
	case KindSHACLMinCount, KindSHACLMaxCount, KindSHACLMinLength, KindSHACLMaxLength:
		if a.Int < 0 {
			return &UnknownAnnotationValueError{Kind: a.Kind, Value: strconv.Itoa(a.Int), Reason: "count must be non-negative"}
		}
	case KindSHACLPattern:
		if _, err := regexp.Compile(a.Str); err != nil {
			return &UnknownAnnotationValueError{Kind: a.Kind, Value: a.Str, Reason: "invalid regex pattern"}
		}
	case KindSHACLMinInclusive, KindSHACLMaxInclusive, KindSHACLMinExclusive, KindSHACLMaxExclusive:
		// Any numeric literal is allowed.
	}
	return nil
}
