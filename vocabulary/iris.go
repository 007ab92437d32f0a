package vocabulary

// Namespace IRIs for the vocabularies ontograph emits terms from.
const (
	// RDFNamespace is the RDF core vocabulary namespace.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

	// RDFSNamespace is the RDF Schema vocabulary namespace.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"

	// OWLNamespace is the Web Ontology Language namespace.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"

	// SHACLNamespace is the Shapes Constraint Language namespace.
	SHACLNamespace = "http://www.w3.org/ns/shacl#"

	// XSDNamespace is the XML Schema datatypes namespace.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

	// ExampleNamespace is the default namespace for user-declared classes
	// when an ontology does not override it.
	ExampleNamespace = "http://example.com/vocab/"

	// ExampleBase is the default base IRI for entity instances.
	ExampleBase = "http://example.com/"
)

// RDF term IRIs (prefixed form).
const (
	// RdfType is the rdf:type predicate.
	RdfType = "rdf:type"

	// RdfProperty is the class of RDF properties.
	RdfProperty = "rdf:Property"
)

// RDFS term IRIs (prefixed form).
const (
	// RdfsClass is the class of RDFS classes.
	RdfsClass = "rdfs:Class"

	// RdfsLabel provides a human-readable name for a resource.
	RdfsLabel = "rdfs:label"

	// RdfsComment provides a human-readable description.
	RdfsComment = "rdfs:comment"

	// RdfsSubClassOf links a class to its parent class.
	RdfsSubClassOf = "rdfs:subClassOf"

	// RdfsSubPropertyOf links a property to its parent property.
	RdfsSubPropertyOf = "rdfs:subPropertyOf"

	// RdfsDomain states the class a property is declared on.
	RdfsDomain = "rdfs:domain"

	// RdfsRange states the class or datatype of a property's values.
	RdfsRange = "rdfs:range"
)

// OWL term IRIs (prefixed form).
const (
	// OwlObjectProperty is the class of properties that link individuals.
	OwlObjectProperty = "owl:ObjectProperty"

	// OwlDatatypeProperty is the class of properties with literal values.
	OwlDatatypeProperty = "owl:DatatypeProperty"
)

// SHACL term IRIs (prefixed form).
const (
	// ShNodeShape is the class of node shapes.
	ShNodeShape = "sh:NodeShape"

	// ShPropertyShape is the class of property shapes.
	ShPropertyShape = "sh:PropertyShape"

	// ShTargetClass links a shape to the class whose instances it targets.
	ShTargetClass = "sh:targetClass"

	// ShProperty links a node shape to its property shapes.
	ShProperty = "sh:property"

	// ShPath is the property a property shape constrains.
	ShPath = "sh:path"

	// ShDatatype constrains value nodes to a literal datatype.
	ShDatatype = "sh:datatype"

	// ShClass constrains value nodes to instances of a class.
	ShClass = "sh:class"

	// ShNodeKind constrains the kind of value node (IRI, literal, blank).
	ShNodeKind = "sh:nodeKind"

	// ShMinCount is the minimum cardinality constraint.
	ShMinCount = "sh:minCount"

	// ShMaxCount is the maximum cardinality constraint.
	ShMaxCount = "sh:maxCount"

	// ShPattern is the SPARQL regex pattern constraint.
	ShPattern = "sh:pattern"

	// ShMinLength is the minimum string length constraint.
	ShMinLength = "sh:minLength"

	// ShMaxLength is the maximum string length constraint.
	ShMaxLength = "sh:maxLength"

	// ShMinInclusive is the minimum inclusive value constraint.
	ShMinInclusive = "sh:minInclusive"

	// ShMaxInclusive is the maximum inclusive value constraint.
	ShMaxInclusive = "sh:maxInclusive"

	// ShMinExclusive is the minimum exclusive value constraint.
	ShMinExclusive = "sh:minExclusive"

	// ShMaxExclusive is the maximum exclusive value constraint.
	ShMaxExclusive = "sh:maxExclusive"

	// ShName is the human-readable name of a property shape.
	ShName = "sh:name"

	// ShDescription is the human-readable description of a property shape.
	ShDescription = "sh:description"
)

// NodeKinds lists the six sh:nodeKind instances SHACL defines.
// Annotation values outside this set are rejected at declaration time.
var NodeKinds = []string{
	"sh:BlankNode",
	"sh:IRI",
	"sh:Literal",
	"sh:BlankNodeOrIRI",
	"sh:BlankNodeOrLiteral",
	"sh:IRIOrLiteral",
}

// IsNodeKind reports whether s is one of the SHACL node kinds.
func IsNodeKind(s string) bool {
	for _, k := range NodeKinds {
		if s == k {
			return true
		}
	}
	return false
}

// Prefixes returns the standard prefix table for produced documents.
// The "ex" prefix maps to exampleNS, which callers may override per ontology.
func Prefixes(exampleNS string) map[string]string {
	if exampleNS == "" {
		exampleNS = ExampleNamespace
	}
	return map[string]string{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"owl":  OWLNamespace,
		"sh":   SHACLNamespace,
		"xsd":  XSDNamespace,
		"ex":   exampleNS,
	}
}
