package synth

import (
	"github.com/c360studio/ontograph/introspect"
	"github.com/c360studio/ontograph/jsonld"
	"github.com/c360studio/ontograph/schema"
	"github.com/c360studio/ontograph/vocabulary"
)

// relationNodeKind is the default sh:nodeKind emitted for relation-valued
// properties. Entity references are always IRIs in produced data.
const relationNodeKind = "sh:IRI"

// SHACLGraph derives the validation shape graph for an ontology.
//
// Each class becomes one sh:NodeShape targeting the class, carrying one
// nested sh:PropertyShape per own field. Shapes constrain only fields the
// class declares itself; validating instances of a subclass against its
// full inherited field set requires conjoining the ancestor shapes.
func SHACLGraph(o *schema.Ontology) (*jsonld.Document, error) {
	infos, err := introspect.Resolve(o)
	if err != nil {
		return nil, err
	}

	doc := jsonld.NewDocument(graphContext(o))

	for _, info := range infos {
		shapeID := info.IRI + "Shape"
		shape := jsonld.NewNode(shapeID, vocabulary.ShNodeShape).
			Add(vocabulary.ShTargetClass, jsonld.Ref{ID: info.IRI})

		var propShapes []any
		for _, prop := range info.Properties {
			propShapes = append(propShapes, propertyShape(shapeID, prop))
		}
		if len(propShapes) > 0 {
			shape.Add(vocabulary.ShProperty, propShapes)
		}

		doc.Append(shape)
	}

	return doc, nil
}

// propertyShape renders one resolved property as a nested sh:PropertyShape.
func propertyShape(shapeID string, prop introspect.Property) *jsonld.Node {
	node := jsonld.NewNode(shapeID+"_"+prop.Name, vocabulary.ShPropertyShape).
		Add(vocabulary.ShPath, jsonld.Ref{ID: prop.IRI}).
		Add(vocabulary.ShName, prop.Name)
	if prop.Description != "" {
		node.Add(vocabulary.ShDescription, prop.Description)
	}

	node.Add(vocabulary.ShMinCount, prop.MinCount)
	if prop.MaxCount != introspect.Unbounded {
		node.Add(vocabulary.ShMaxCount, prop.MaxCount)
	}

	// Value-type constraint: annotation overrides first, then the resolved
	// range. Relations additionally get sh:nodeKind sh:IRI unless overridden.
	datatype, class, nodeKind := "", "", ""
	for _, a := range prop.Constraints {
		switch a.Kind {
		case schema.KindSHACLDatatype:
			datatype = a.Str
		case schema.KindSHACLClass:
			class = a.Str
		case schema.KindSHACLNodeKind:
			nodeKind = a.Str
		}
	}
	if prop.Kind == introspect.KindRelation {
		if class == "" {
			class = prop.Range
		}
		if nodeKind == "" {
			nodeKind = relationNodeKind
		}
		node.Add(vocabulary.ShClass, jsonld.Ref{ID: class})
		node.Add(vocabulary.ShNodeKind, jsonld.Ref{ID: nodeKind})
	} else {
		if datatype == "" {
			datatype = prop.Range
		}
		node.Add(vocabulary.ShDatatype, jsonld.Ref{ID: datatype})
		if nodeKind != "" {
			node.Add(vocabulary.ShNodeKind, jsonld.Ref{ID: nodeKind})
		}
	}

	// Remaining constraints in declaration order.
	for _, a := range prop.Constraints {
		switch a.Kind {
		case schema.KindSHACLPattern:
			node.Add(vocabulary.ShPattern, a.Str)
		case schema.KindSHACLMinLength:
			node.Add(vocabulary.ShMinLength, a.Int)
		case schema.KindSHACLMaxLength:
			node.Add(vocabulary.ShMaxLength, a.Int)
		case schema.KindSHACLMinInclusive:
			node.Add(vocabulary.ShMinInclusive, a.Num)
		case schema.KindSHACLMaxInclusive:
			node.Add(vocabulary.ShMaxInclusive, a.Num)
		case schema.KindSHACLMinExclusive:
			node.Add(vocabulary.ShMinExclusive, a.Num)
		case schema.KindSHACLMaxExclusive:
			node.Add(vocabulary.ShMaxExclusive, a.Num)
		}
	}

	return node
}
