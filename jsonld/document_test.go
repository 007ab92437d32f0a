package jsonld

import (
	"bytes"
	"encoding/json"
	"testing"
)

func testDocument() *Document {
	doc := NewDocument(map[string]string{
		"ex":   "http://example.com/vocab/",
		"rdfs": "http://www.w3.org/2000/01/rdf-schema#",
	})
	doc.Append(
		NewNode("ex:Person", "rdfs:Class").Add("rdfs:label", "Person"),
		NewNode("ex:Person/name", "rdf:Property").
			Add("rdfs:domain", Ref{ID: "ex:Person"}).
			Add("rdfs:range", Ref{ID: "xsd:string"}),
	)
	return doc
}

func TestDocumentMarshal(t *testing.T) {
	data, err := json.Marshal(testDocument())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"@context":{"ex":"http://example.com/vocab/","rdfs":"http://www.w3.org/2000/01/rdf-schema#"},"@graph":[{"@id":"ex:Person","@type":"rdfs:Class","rdfs:label":"Person"},{"@id":"ex:Person/name","@type":"rdf:Property","rdfs:domain":{"@id":"ex:Person"},"rdfs:range":{"@id":"xsd:string"}}]}`
	if string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := testDocument()

	data, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !doc.Equal(parsed) {
		t.Error("round trip not equal")
	}
}

func TestDocumentRenderDeterministic(t *testing.T) {
	doc := testDocument()

	first, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := doc.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("expected repeated renders to be byte-identical")
	}
}

func TestDocumentNodeLookup(t *testing.T) {
	doc := testDocument()

	n, ok := doc.Node("ex:Person")
	if !ok {
		t.Fatal("expected to find ex:Person")
	}
	if n.ID() != "ex:Person" {
		t.Errorf("expected ex:Person, got %s", n.ID())
	}

	if _, ok := doc.Node("ex:Missing"); ok {
		t.Error("expected lookup miss for ex:Missing")
	}
}

func TestDocumentContextCopy(t *testing.T) {
	doc := testDocument()
	ctx := doc.Context()
	ctx["ex"] = "http://mutated.org/"

	if doc.Context()["ex"] != "http://example.com/vocab/" {
		t.Error("expected document context to be unaffected by caller mutation")
	}
}

func TestDocumentEqual(t *testing.T) {
	a := testDocument()
	b := testDocument()
	if !a.Equal(b) {
		t.Error("expected identical documents to compare equal")
	}

	b.Append(NewNode("ex:Extra"))
	if a.Equal(b) {
		t.Error("expected documents with different graphs to differ")
	}
}
