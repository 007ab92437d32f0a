package synth

import (
	"github.com/c360studio/ontograph/introspect"
	"github.com/c360studio/ontograph/jsonld"
	"github.com/c360studio/ontograph/schema"
	"github.com/c360studio/ontograph/vocabulary"
)

// OntologyGraph derives the RDFS/OWL terminology graph for an ontology.
//
// Each class becomes one rdfs:Class node with rdfs:label, rdfs:comment
// and at most one rdfs:subClassOf edge. Each own field becomes one
// rdf:Property node typed owl:ObjectProperty or owl:DatatypeProperty,
// with rdfs:domain and rdfs:range references. Fields inherited from
// ancestors are not re-emitted; RDFS inference recovers them through the
// subclass edge.
func OntologyGraph(o *schema.Ontology) (*jsonld.Document, error) {
	infos, err := introspect.Resolve(o)
	if err != nil {
		return nil, err
	}

	doc := jsonld.NewDocument(graphContext(o))
	seen := make(map[string]bool)

	for _, info := range infos {
		cls := jsonld.NewNode(info.IRI, vocabulary.RdfsClass).
			Add(vocabulary.RdfsLabel, info.Name)
		if info.Description != "" {
			cls.Add(vocabulary.RdfsComment, info.Description)
		}
		if info.ParentIRI != "" {
			cls.Add(vocabulary.RdfsSubClassOf, jsonld.Ref{ID: info.ParentIRI})
		}
		seen[info.IRI] = true
		doc.Append(cls)

		for _, prop := range info.Properties {
			if seen[prop.IRI] {
				return nil, &introspect.DuplicateIdentifierError{IRI: prop.IRI}
			}
			seen[prop.IRI] = true

			node := jsonld.NewNode(prop.IRI, vocabulary.RdfProperty, propertyType(prop)).
				Add(vocabulary.RdfsLabel, prop.Name)
			if prop.Description != "" {
				node.Add(vocabulary.RdfsComment, prop.Description)
			}
			node.Add(vocabulary.RdfsDomain, jsonld.Ref{ID: prop.Domain})
			node.Add(vocabulary.RdfsRange, jsonld.Ref{ID: prop.Range})
			doc.Append(node)
		}
	}

	return doc, nil
}

// propertyType selects the OWL property class for a resolved property.
func propertyType(p introspect.Property) string {
	if p.Kind == introspect.KindRelation {
		return vocabulary.OwlObjectProperty
	}
	return vocabulary.OwlDatatypeProperty
}

// graphContext builds the shared prefix context for produced documents.
func graphContext(o *schema.Ontology) map[string]string {
	ctx := vocabulary.Prefixes(o.Namespace())
	ctx["@vocab"] = o.Namespace()
	ctx["@base"] = o.Namespace()
	return ctx
}
