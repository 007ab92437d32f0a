// Package introspect walks declared class hierarchies and resolves every
// own field into a fully-specified property record.
//
// Resolution is a pure function of the declarations: it classifies each
// field as literal or relation, resolves the effective rdfs:domain and
// rdfs:range (annotation overrides first, then defaults), and maps
// optionality and multiplicity onto SHACL cardinality. Both graph renderers
// in package synth consume the same resolved records, so the ontology graph
// and the SHACL graph cannot drift apart.
//
// Fields declared on an ancestor are not re-resolved for a subclass; the
// subclass is linked to its parent with a single rdfs:subClassOf edge and
// inherits ancestor properties through RDFS semantics alone.
package introspect
