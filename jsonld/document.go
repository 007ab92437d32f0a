package jsonld

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Document is a compacted JSON-LD document: a prefix context plus an
// ordered node graph.
type Document struct {
	context map[string]string
	nodes   []*Node
}

// NewDocument creates a document with the given context. The context map
// is copied; later changes to the caller's map do not affect the document.
func NewDocument(context map[string]string) *Document {
	ctx := make(map[string]string, len(context))
	for k, v := range context {
		ctx[k] = v
	}
	return &Document{context: ctx}
}

// Context returns a copy of the document's context mapping.
func (d *Document) Context() map[string]string {
	out := make(map[string]string, len(d.context))
	for k, v := range d.context {
		out[k] = v
	}
	return out
}

// Nodes returns the graph nodes in document order.
func (d *Document) Nodes() []*Node {
	out := make([]*Node, len(d.nodes))
	copy(out, d.nodes)
	return out
}

// Append adds nodes to the end of the graph.
func (d *Document) Append(nodes ...*Node) {
	d.nodes = append(d.nodes, nodes...)
}

// Node returns the first graph node with the given @id.
func (d *Document) Node(id string) (*Node, bool) {
	for _, n := range d.nodes {
		if n.ID() == id {
			return n, true
		}
	}
	return nil, false
}

// MarshalJSON writes {"@context": {...}, "@graph": [...]}. Context keys
// are sorted; graph nodes keep document order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"@context":`)

	keys := make([]string, 0, len(d.context))
	for k := range d.context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.context[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')

	buf.WriteString(`,"@graph":[`)
	for i, n := range d.nodes {
		if i > 0 {
			buf.WriteByte(',')
		}
		nb, err := n.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(nb)
	}
	buf.WriteString("]}")

	return buf.Bytes(), nil
}

// UnmarshalJSON parses a rendered document, preserving graph order.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw struct {
		Context map[string]string `json:"@context"`
		Graph   []json.RawMessage `json:"@graph"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.context = raw.Context
	if d.context == nil {
		d.context = map[string]string{}
	}
	d.nodes = nil
	for i, nodeRaw := range raw.Graph {
		node := &Node{}
		if err := node.UnmarshalJSON(nodeRaw); err != nil {
			return fmt.Errorf("graph node %d: %w", i, err)
		}
		d.nodes = append(d.nodes, node)
	}
	return nil
}

// Parse decodes a rendered JSON-LD document.
func Parse(data []byte) (*Document, error) {
	d := &Document{}
	if err := d.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return d, nil
}

// Render serializes the document with two-space indentation and a
// trailing newline. The output is deterministic: rendering the same
// document twice produces identical bytes.
func (d *Document) Render() ([]byte, error) {
	compact, err := d.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Equal reports whether two documents carry the same context and the
// same node graph in the same order.
func (d *Document) Equal(other *Document) bool {
	if other == nil {
		return d == nil
	}
	if len(d.context) != len(other.context) || len(d.nodes) != len(other.nodes) {
		return false
	}
	for k, v := range d.context {
		if other.context[k] != v {
			return false
		}
	}
	for i := range d.nodes {
		if !d.nodes[i].Equal(other.nodes[i]) {
			return false
		}
	}
	return true
}
