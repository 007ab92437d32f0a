// Package synth renders declared class hierarchies into graph documents.
//
// Two renderers share one resolution pass (package introspect):
// OntologyGraph emits the RDFS/OWL terminology graph (one rdfs:Class node
// per class plus one rdf:Property node per own field), and SHACLGraph
// emits the validation graph (one sh:NodeShape per class with nested
// sh:PropertyShape records). Both are pure functions of the declarations:
// rendering the same ontology twice yields byte-identical documents.
package synth
