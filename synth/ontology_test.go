package synth

import (
	"bytes"
	"errors"
	"testing"

	"github.com/c360studio/ontograph/introspect"
	"github.com/c360studio/ontograph/jsonld"
	"github.com/c360studio/ontograph/schema"
)

func personnel() *schema.Ontology {
	dept := schema.NewClass("Department", schema.WithDescription("An organizational unit.")).
		AddField("name", schema.TypeString)

	person := schema.NewClass("Person", schema.WithDescription("A human being.")).
		AddField("name", schema.TypeString, schema.WithFieldDescription("Full name.")).
		AddField("age", schema.TypeInt, schema.Optional())

	employee := schema.NewClass("Employee", schema.WithParent(person)).
		AddField("employeeId", schema.TypeString).
		AddField("department", schema.TypeRelation, schema.WithTarget(dept))

	return schema.NewOntology(dept, person, employee)
}

func TestOntologyGraphNodeOrder(t *testing.T) {
	doc, err := OntologyGraph(personnel())
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}

	want := []string{
		"ex:Department",
		"ex:Department/name",
		"ex:Person",
		"ex:Person/name",
		"ex:Person/age",
		"ex:Employee",
		"ex:Employee/employeeId",
		"ex:Employee/department",
	}
	nodes := doc.Nodes()
	if len(nodes) != len(want) {
		t.Fatalf("expected %d nodes, got %d", len(want), len(nodes))
	}
	for i, id := range want {
		if nodes[i].ID() != id {
			t.Errorf("node %d: expected %s, got %s", i, id, nodes[i].ID())
		}
	}
}

func TestOntologyGraphClassNode(t *testing.T) {
	doc, err := OntologyGraph(personnel())
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}

	person, ok := doc.Node("ex:Person")
	if !ok {
		t.Fatal("expected ex:Person node")
	}
	if got := person.Types(); len(got) != 1 || got[0] != "rdfs:Class" {
		t.Errorf("expected @type rdfs:Class, got %v", got)
	}
	if label, _ := person.Value("rdfs:label"); label != "Person" {
		t.Errorf("expected rdfs:label Person, got %v", label)
	}
	if comment, _ := person.Value("rdfs:comment"); comment != "A human being." {
		t.Errorf("expected rdfs:comment, got %v", comment)
	}
	if _, ok := person.Value("rdfs:subClassOf"); ok {
		t.Error("root class must not carry rdfs:subClassOf")
	}

	employee, _ := doc.Node("ex:Employee")
	parent, ok := employee.Value("rdfs:subClassOf")
	if !ok {
		t.Fatal("expected rdfs:subClassOf on subclass")
	}
	if ref, _ := parent.(jsonld.Ref); ref.ID != "ex:Person" {
		t.Errorf("expected subClassOf ex:Person, got %v", parent)
	}
}

func TestOntologyGraphPropertyNodes(t *testing.T) {
	doc, err := OntologyGraph(personnel())
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}

	tests := []struct {
		id       string
		owlType  string
		domain   string
		rangeIRI string
	}{
		{"ex:Person/name", "owl:DatatypeProperty", "ex:Person", "xsd:string"},
		{"ex:Person/age", "owl:DatatypeProperty", "ex:Person", "xsd:integer"},
		{"ex:Employee/department", "owl:ObjectProperty", "ex:Employee", "ex:Department"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			node, ok := doc.Node(tt.id)
			if !ok {
				t.Fatalf("expected node %s", tt.id)
			}
			types := node.Types()
			if len(types) != 2 || types[0] != "rdf:Property" || types[1] != tt.owlType {
				t.Errorf("expected @type [rdf:Property %s], got %v", tt.owlType, types)
			}
			domain, _ := node.Value("rdfs:domain")
			if ref, _ := domain.(jsonld.Ref); ref.ID != tt.domain {
				t.Errorf("expected rdfs:domain %s, got %v", tt.domain, domain)
			}
			rng, _ := node.Value("rdfs:range")
			if ref, _ := rng.(jsonld.Ref); ref.ID != tt.rangeIRI {
				t.Errorf("expected rdfs:range %s, got %v", tt.rangeIRI, rng)
			}
		})
	}
}

func TestOntologyGraphNoSubPropertyOf(t *testing.T) {
	doc, err := OntologyGraph(personnel())
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}
	for _, n := range doc.Nodes() {
		if _, ok := n.Value("rdfs:subPropertyOf"); ok {
			t.Errorf("node %s: property hierarchies are never derived", n.ID())
		}
	}
}

func TestOntologyGraphContext(t *testing.T) {
	o := personnel().WithNamespace("http://vocab.test.org/")
	doc, err := OntologyGraph(o)
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}

	ctx := doc.Context()
	if ctx["ex"] != "http://vocab.test.org/" {
		t.Errorf("expected ex prefix bound to ontology namespace, got %s", ctx["ex"])
	}
	if ctx["@vocab"] != "http://vocab.test.org/" {
		t.Errorf("expected @vocab bound to ontology namespace, got %s", ctx["@vocab"])
	}
	if ctx["sh"] != "http://www.w3.org/ns/shacl#" {
		t.Errorf("expected sh prefix, got %s", ctx["sh"])
	}
}

func TestOntologyGraphDeterministic(t *testing.T) {
	first, err := OntologyGraph(personnel())
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}
	second, err := OntologyGraph(personnel())
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}

	a, err := first.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	b, err := second.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Error("expected repeated synthesis to be byte-identical")
	}
}

func TestOntologyGraphSameFieldNameUnrelatedClasses(t *testing.T) {
	a := schema.NewClass("Person").AddField("name", schema.TypeString)
	b := schema.NewClass("Department").AddField("name", schema.TypeString)

	doc, err := OntologyGraph(schema.NewOntology(a, b))
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}

	if _, ok := doc.Node("ex:Person/name"); !ok {
		t.Error("expected ex:Person/name")
	}
	if _, ok := doc.Node("ex:Department/name"); !ok {
		t.Error("expected ex:Department/name")
	}
}

func TestOntologyGraphDuplicatePropertyIRI(t *testing.T) {
	// Two fields forced onto the same identifier by overrides
	c := schema.NewClass("Person").
		AddField("name", schema.TypeString, schema.WithAnnotations(schema.PropertyIRI("ex:id"))).
		AddField("email", schema.TypeString, schema.WithAnnotations(schema.PropertyIRI("ex:id")))

	_, err := OntologyGraph(schema.NewOntology(c))
	var derr *introspect.DuplicateIdentifierError
	if !errors.As(err, &derr) {
		t.Fatalf("expected DuplicateIdentifierError, got %v", err)
	}
}

func TestOntologyGraphEmptyOntology(t *testing.T) {
	doc, err := OntologyGraph(schema.NewOntology())
	if err != nil {
		t.Fatalf("OntologyGraph() error = %v", err)
	}
	if len(doc.Nodes()) != 0 {
		t.Errorf("expected empty graph, got %d nodes", len(doc.Nodes()))
	}
	if len(doc.Context()) == 0 {
		t.Error("expected context even for an empty graph")
	}
}
