// Package vocabulary provides the fixed W3C term IRIs and prefix mappings
// used when describing declared schemas as RDF.
//
// The set is deliberately closed: RDF, RDFS, OWL, SHACL, and XSD terms needed
// to express classes, properties, and shape constraints, plus the default
// example namespace for user-declared classes. Ontograph does not consume
// arbitrary external vocabularies.
//
// References:
//   - RDF Schema: https://www.w3.org/TR/rdf-schema/
//   - OWL: https://www.w3.org/TR/owl2-overview/
//   - SHACL: https://www.w3.org/TR/shacl/
//   - XSD datatypes: https://www.w3.org/TR/xmlschema11-2/
package vocabulary
