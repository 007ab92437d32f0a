package jsonld

import (
	"encoding/json"
	"fmt"

	ld "github.com/piprate/json-gold/ld"
)

// Expand runs the JSON-LD expansion algorithm over the document and
// returns the expanded form. Expansion replaces compact IRIs with full
// IRIs using the document's context, which makes it a useful check that
// every prefix a produced graph uses is actually declared.
func Expand(d *Document) ([]any, error) {
	input, err := toGeneric(d)
	if err != nil {
		return nil, err
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	expanded, err := proc.Expand(input, opts)
	if err != nil {
		return nil, fmt.Errorf("expand document: %w", err)
	}
	return expanded, nil
}

// Flatten runs the JSON-LD flattening algorithm over the document,
// compacting the result back against the document's own context.
func Flatten(d *Document) (map[string]any, error) {
	input, err := toGeneric(d)
	if err != nil {
		return nil, err
	}
	context := map[string]any{}
	for k, v := range d.Context() {
		context[k] = v
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	flattened, err := proc.Flatten(input, map[string]any{"@context": context}, opts)
	if err != nil {
		return nil, fmt.Errorf("flatten document: %w", err)
	}
	result, ok := flattened.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("flatten document: unexpected result %T", flattened)
	}
	return result, nil
}

// toGeneric converts a document into the generic map form json-gold
// operates on.
func toGeneric(d *Document) (map[string]any, error) {
	data, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var generic map[string]any
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	return generic, nil
}
