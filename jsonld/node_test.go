package jsonld

import (
	"encoding/json"
	"testing"
)

func TestNodeMarshalKeyOrder(t *testing.T) {
	n := NewNode("ex:Person", "rdfs:Class").
		Add("rdfs:label", "Person").
		Add("rdfs:comment", "A human being.").
		Add("rdfs:subClassOf", Ref{ID: "ex:Agent"})

	got, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"@id":"ex:Person","@type":"rdfs:Class","rdfs:label":"Person","rdfs:comment":"A human being.","rdfs:subClassOf":{"@id":"ex:Agent"}}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestNodeMarshalMultipleTypes(t *testing.T) {
	n := NewNode("ex:Person/name", "rdf:Property", "owl:DatatypeProperty")

	got, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"@id":"ex:Person/name","@type":["rdf:Property","owl:DatatypeProperty"]}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestNodeMarshalObjects(t *testing.T) {
	tests := []struct {
		name   string
		object any
		want   string
	}{
		{"string", "hello", `{"p":"hello"}`},
		{"int", 42, `{"p":42}`},
		{"float", 1.5, `{"p":1.5}`},
		{"bool", true, `{"p":true}`},
		{"ref", Ref{ID: "ex:Thing"}, `{"p":{"@id":"ex:Thing"}}`},
		{"array", []any{1, "two", Ref{ID: "ex:Three"}}, `{"p":[1,"two",{"@id":"ex:Three"}]}`},
		{
			"nested node",
			NewNode("ex:Shape", "sh:PropertyShape").Add("sh:minCount", 1),
			`{"p":{"@id":"ex:Shape","@type":"sh:PropertyShape","sh:minCount":1}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := (&Node{}).Add("p", tt.object)
			got, err := json.Marshal(n)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNodeRoundTrip(t *testing.T) {
	original := NewNode("ex:PersonShape", "sh:NodeShape").
		Add("sh:targetClass", Ref{ID: "ex:Person"}).
		Add("sh:property", []any{
			NewNode("ex:PersonShape_age", "sh:PropertyShape").
				Add("sh:path", Ref{ID: "ex:Person/age"}).
				Add("sh:minCount", 0).
				Add("sh:maxCount", 1).
				Add("sh:minInclusive", 0.5),
		})

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	parsed := &Node{}
	if err := json.Unmarshal(data, parsed); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if !original.Equal(parsed) {
		t.Errorf("round trip not equal:\noriginal: %s\nparsed:   %s", data, mustMarshal(t, parsed))
	}
}

func TestNodeUnmarshalRefDetection(t *testing.T) {
	n := &Node{}
	if err := json.Unmarshal([]byte(`{"p":{"@id":"ex:Thing"}}`), n); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	v, ok := n.Value("p")
	if !ok {
		t.Fatal("expected predicate p")
	}
	ref, ok := v.(Ref)
	if !ok {
		t.Fatalf("expected Ref, got %T", v)
	}
	if ref.ID != "ex:Thing" {
		t.Errorf("expected ex:Thing, got %s", ref.ID)
	}
}

func TestNodeUnmarshalNumberKinds(t *testing.T) {
	n := &Node{}
	if err := json.Unmarshal([]byte(`{"count":3,"ratio":0.25}`), n); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	count, _ := n.Value("count")
	if _, ok := count.(int); !ok {
		t.Errorf("expected int for whole number, got %T", count)
	}
	ratio, _ := n.Value("ratio")
	if _, ok := ratio.(float64); !ok {
		t.Errorf("expected float64 for fraction, got %T", ratio)
	}
}

func TestNodeEqualNumericNormalization(t *testing.T) {
	a := NewNode("x").Add("v", 1)
	b := NewNode("x").Add("v", 1.0)
	if !a.Equal(b) {
		t.Error("expected 1 and 1.0 to compare equal")
	}

	c := NewNode("x").Add("v", 2)
	if a.Equal(c) {
		t.Error("expected 1 and 2 to differ")
	}
}

func TestNodeEqualOrderSensitive(t *testing.T) {
	a := NewNode("x").Add("p", 1).Add("q", 2)
	b := NewNode("x").Add("q", 2).Add("p", 1)
	if a.Equal(b) {
		t.Error("expected statement order to be significant")
	}
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(data)
}
