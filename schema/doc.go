// Package schema provides the declaration model for ontology classes.
//
// A schema author declares classes with NewClass, attaches fields with
// AddField, and groups a selected subset into an Ontology. Declarations are
// authored once, at schema-definition time, and treated as read-only
// thereafter: introspection and graph synthesis never mutate them, so a
// declaration set is safe to share across goroutines.
//
// Fields are either literal-valued (string, int, float, bool, date,
// dateTime) or relation-valued (TypeRelation), in which case they point at
// another declared class rather than holding a literal. Field-level
// annotations carry RDFS and SHACL overrides (explicit domain or range,
// cardinality, pattern and length constraints) and are validated against a
// closed set of recognized kinds and values.
package schema
