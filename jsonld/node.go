package jsonld

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Ref is an IRI reference object, marshaled as {"@id": "..."}.
type Ref struct {
	ID string
}

// MarshalJSON implements json.Marshaler.
func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"@id": r.ID})
}

// Statement is one (predicate, object) pair on a node. Objects are
// literals (string, int, float64, bool), Ref IRI references, nested
// anonymous *Node values, or []any arrays of those.
type Statement struct {
	Predicate string
	Object    any
}

// Node is a JSON-LD graph node: an identifier plus ordered statements.
// Nodes are built once during synthesis and never mutated afterwards.
type Node struct {
	id         string
	types      []string
	statements []Statement
}

// NewNode creates a node with the given identifier and @type values.
// Anonymous nodes (nested SHACL property shapes) may use an empty id.
func NewNode(id string, types ...string) *Node {
	return &Node{id: id, types: types}
}

// ID returns the node identifier.
func (n *Node) ID() string { return n.id }

// Types returns the node's @type values.
func (n *Node) Types() []string {
	out := make([]string, len(n.types))
	copy(out, n.types)
	return out
}

// Add appends a statement and returns the node for chaining.
func (n *Node) Add(predicate string, object any) *Node {
	n.statements = append(n.statements, Statement{Predicate: predicate, Object: object})
	return n
}

// Statements returns the node's statements in insertion order.
func (n *Node) Statements() []Statement {
	out := make([]Statement, len(n.statements))
	copy(out, n.statements)
	return out
}

// Value returns the object of the first statement with the given
// predicate. The second return is false when the predicate is absent.
func (n *Node) Value(predicate string) (any, bool) {
	for _, s := range n.statements {
		if s.Predicate == predicate {
			return s.Object, true
		}
	}
	return nil, false
}

// MarshalJSON writes the node with stable key order: @id, @type, then
// statements in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true

	writeKey := func(key string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		kb, _ := json.Marshal(key)
		buf.Write(kb)
		buf.WriteByte(':')
	}

	if n.id != "" {
		writeKey("@id")
		vb, err := json.Marshal(n.id)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}

	if len(n.types) > 0 {
		writeKey("@type")
		var vb []byte
		var err error
		if len(n.types) == 1 {
			vb, err = json.Marshal(n.types[0])
		} else {
			vb, err = json.Marshal(n.types)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}

	for _, s := range n.statements {
		writeKey(s.Predicate)
		vb, err := marshalObject(s.Object)
		if err != nil {
			return nil, fmt.Errorf("predicate %s: %w", s.Predicate, err)
		}
		buf.Write(vb)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalObject serializes a statement object.
func marshalObject(obj any) ([]byte, error) {
	switch v := obj.(type) {
	case nil:
		return []byte("null"), nil
	case Ref:
		return v.MarshalJSON()
	case *Node:
		return v.MarshalJSON()
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := marshalObject(item)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case string, bool, int, int32, int64, float32, float64, json.Number:
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported object type %T", obj)
	}
}

// UnmarshalJSON parses a node object, preserving key order.
func (n *Node) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("node must be a JSON object")
	}

	n.id = ""
	n.types = nil
	n.statements = nil

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}

		switch key {
		case "@id":
			if err := json.Unmarshal(raw, &n.id); err != nil {
				return fmt.Errorf("@id: %w", err)
			}
		case "@type":
			if err := unmarshalTypes(raw, &n.types); err != nil {
				return fmt.Errorf("@type: %w", err)
			}
		default:
			obj, err := parseObject(raw)
			if err != nil {
				return fmt.Errorf("predicate %s: %w", key, err)
			}
			n.statements = append(n.statements, Statement{Predicate: key, Object: obj})
		}
	}

	// Consume closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// unmarshalTypes accepts @type as a single string or an array of strings.
func unmarshalTypes(raw json.RawMessage, dst *[]string) error {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		*dst = []string{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(raw, &many); err != nil {
		return err
	}
	*dst = many
	return nil
}

// parseObject interprets a raw statement object. Objects with only an @id
// key become Ref; other objects become nested nodes.
func parseObject(raw json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty value")
	}

	switch trimmed[0] {
	case '{':
		node := &Node{}
		if err := node.UnmarshalJSON(trimmed); err != nil {
			return nil, err
		}
		if node.id != "" && len(node.types) == 0 && len(node.statements) == 0 {
			return Ref{ID: node.id}, nil
		}
		return node, nil
	case '[':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var items []any
		for dec.More() {
			var itemRaw json.RawMessage
			if err := dec.Decode(&itemRaw); err != nil {
				return nil, err
			}
			item, err := parseObject(itemRaw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return items, nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, err
		}
		return s, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return nil, err
		}
		return b, nil
	case 'n':
		return nil, nil
	default:
		return parseNumber(string(trimmed))
	}
}

// parseNumber decodes a JSON number, keeping integers as int.
func parseNumber(s string) (any, error) {
	num := json.Number(s)
	if !strings.ContainsAny(s, ".eE") {
		i, err := num.Int64()
		if err != nil {
			return nil, err
		}
		return int(i), nil
	}
	f, err := num.Float64()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Equal reports structural equality with another node. Statement order is
// significant (it is part of the serialization contract); numeric literals
// compare by value, so an integral float equals its integer rendering.
func (n *Node) Equal(other *Node) bool {
	if other == nil {
		return n == nil
	}
	if n.id != other.id || len(n.types) != len(other.types) || len(n.statements) != len(other.statements) {
		return false
	}
	for i := range n.types {
		if n.types[i] != other.types[i] {
			return false
		}
	}
	for i := range n.statements {
		if n.statements[i].Predicate != other.statements[i].Predicate {
			return false
		}
		if !objectEqual(n.statements[i].Object, other.statements[i].Object) {
			return false
		}
	}
	return true
}

// objectEqual compares statement objects with numeric normalization.
func objectEqual(a, b any) bool {
	if an, aok := asFloat(a); aok {
		bn, bok := asFloat(b)
		return bok && an == bn
	}
	switch av := a.(type) {
	case Ref:
		bv, ok := b.(Ref)
		return ok && av.ID == bv.ID
	case *Node:
		bv, ok := b.(*Node)
		return ok && av.Equal(bv)
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !objectEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}

// asFloat normalizes numeric object kinds for comparison.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
