// Package jsonld provides the minimal JSON-LD container both graph types
// serialize through: a context (prefix to namespace mapping) plus a node
// sequence, rendered as {"@context": {...}, "@graph": [...]}.
//
// Nodes keep their statements in insertion order and marshal with a stable
// key order (@id, @type, then statements as added), so repeated synthesis
// of an unchanged schema is byte-identical. Parsing a rendered document
// yields an equal structure; statement order is part of the contract and
// is significant for equality.
//
// The package also exposes Expand and Flatten helpers backed by the
// piprate/json-gold processor, for callers that want produced documents
// verified or reshaped by a conforming JSON-LD implementation.
package jsonld
