package introspect

import (
	"strings"

	"github.com/c360studio/ontograph/schema"
	"github.com/c360studio/ontograph/vocabulary"
)

// PropertyKind classifies a resolved property as literal- or
// relation-valued.
type PropertyKind string

const (
	// KindLiteral marks a property whose values are RDF literals.
	KindLiteral PropertyKind = "literal"

	// KindRelation marks a property whose values are references to other
	// declared classes.
	KindRelation PropertyKind = "relation"
)

// Unbounded marks a property with no maximum cardinality.
const Unbounded = -1

// Property is a fully resolved field record: the shared intermediate
// representation both graph renderers consume.
type Property struct {
	// Name is the field's local name.
	Name string

	// IRI is the minted property identifier, scoped to the declaring
	// class so same-named fields in unrelated classes stay distinct.
	IRI string

	// Kind is literal or relation.
	Kind PropertyKind

	// Domain is the effective rdfs:domain IRI.
	Domain string

	// Range is the effective rdfs:range IRI: an XSD datatype for literal
	// properties, a class IRI for relations.
	Range string

	// Description is the human-readable field description.
	Description string

	// MinCount is the resolved minimum cardinality.
	MinCount int

	// MaxCount is the resolved maximum cardinality, or Unbounded.
	MaxCount int

	// Constraints carries the SHACL constraint annotations (pattern,
	// lengths, bounds, node kind, datatype/class overrides) in
	// declaration order, for the shape renderer to apply.
	Constraints []schema.Annotation
}

// ClassInfo is the resolved description of one declared class.
type ClassInfo struct {
	// Name is the class's local name.
	Name string

	// IRI is the minted class identifier.
	IRI string

	// Description is the human-readable class description.
	Description string

	// ParentIRI is the parent class identifier, or "" for a root class.
	ParentIRI string

	// Properties are the class's own resolved fields, in declaration
	// order. Fields inherited from ancestors are not repeated here.
	Properties []Property
}

// Resolve inspects every class of the ontology once and returns resolved
// class records in supplied order. It performs all validation the graph
// renderers rely on: declaration-time annotation checks, duplicate class
// identifiers, and relation range resolution.
func Resolve(o *schema.Ontology) ([]ClassInfo, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	classes := o.Classes()
	infos := make([]ClassInfo, 0, len(classes))
	seen := make(map[string]bool, len(classes))

	for _, c := range classes {
		iri := ClassIRI(c, o)
		if seen[iri] {
			return nil, &DuplicateIdentifierError{IRI: iri}
		}
		seen[iri] = true

		info := ClassInfo{
			Name:        c.Name(),
			IRI:         iri,
			Description: c.Description(),
		}
		if p := c.Parent(); p != nil {
			info.ParentIRI = ClassIRI(p, o)
		}

		inherited := inheritedFieldNames(c)
		own := make(map[string]bool)
		for _, f := range c.Fields() {
			if inherited[f.Name] {
				continue
			}
			// Two own fields with one name would mint the same property and
			// shape identifiers; reject before either graph can emit them.
			if own[f.Name] {
				return nil, &DuplicateIdentifierError{IRI: iri + "/" + f.Name}
			}
			own[f.Name] = true
			prop, err := resolveField(c, f, iri, o)
			if err != nil {
				return nil, err
			}
			info.Properties = append(info.Properties, prop)
		}

		infos = append(infos, info)
	}

	return infos, nil
}

// ClassIRI mints the identifier for a class within an ontology. Classes in
// the ontology's example namespace use the compact "ex:" form; a class with
// its own namespace override gets a full IRI.
func ClassIRI(c *schema.Class, o *schema.Ontology) string {
	ns := c.Namespace()
	if ns == "" || ns == o.Namespace() {
		return "ex:" + c.Name()
	}
	return ns + c.Name()
}

// inheritedFieldNames collects the field names visible through the
// ancestor chain. A subclass field shadowed by any ancestor's declaration
// is not re-emitted; the ancestor's property already covers it.
func inheritedFieldNames(c *schema.Class) map[string]bool {
	names := make(map[string]bool)
	for _, a := range c.Ancestors() {
		for _, f := range a.Fields() {
			names[f.Name] = true
		}
	}
	return names
}

// resolveField produces the resolved property record for one own field.
func resolveField(c *schema.Class, f schema.Field, classIRI string, o *schema.Ontology) (Property, error) {
	prop := Property{
		Name:        f.Name,
		IRI:         propertyIRI(classIRI, f),
		Description: f.Description,
		Domain:      classIRI,
	}

	if f.Type.IsRelation() {
		prop.Kind = KindRelation
	} else {
		prop.Kind = KindLiteral
	}

	// Cardinality from the declaration shape, then annotation overrides.
	switch {
	case f.Many:
		prop.MinCount = 0
		prop.MaxCount = Unbounded
	case f.Optional:
		prop.MinCount = 0
		prop.MaxCount = 1
	default:
		prop.MinCount = 1
		prop.MaxCount = 1
	}
	if a, ok := f.Annotation(schema.KindSHACLMinCount); ok {
		prop.MinCount = a.Int
	}
	if a, ok := f.Annotation(schema.KindSHACLMaxCount); ok {
		prop.MaxCount = a.Int
	}

	// Domain: explicit annotation wins over the declaring class.
	if a, ok := f.Annotation(schema.KindRDFSDomain); ok {
		prop.Domain = qualify(a.Str)
	}

	// Range: explicit annotation, else the declared type's datatype for
	// literals or the target class for relations.
	if a, ok := f.Annotation(schema.KindRDFSRange); ok {
		prop.Range = qualify(a.Str)
	} else if prop.Kind == KindLiteral {
		dt, ok := vocabulary.Datatype(f.Type.String())
		if !ok {
			// Unreachable for validated declarations; keep the guard so a
			// future ValueType cannot slip through silently.
			return Property{}, &UnresolvedRangeError{Class: c.Name(), Field: f.Name}
		}
		prop.Range = dt
	} else if f.Target != nil {
		prop.Range = ClassIRI(f.Target, o)
	} else {
		return Property{}, &UnresolvedRangeError{Class: c.Name(), Field: f.Name}
	}

	// Pass SHACL constraint annotations through for shape rendering.
	// Cardinality annotations are already folded in above.
	for _, a := range f.Annotations {
		switch a.Kind {
		case schema.KindSHACLDatatype, schema.KindSHACLClass, schema.KindSHACLNodeKind,
			schema.KindSHACLPattern, schema.KindSHACLMinLength, schema.KindSHACLMaxLength,
			schema.KindSHACLMinInclusive, schema.KindSHACLMaxInclusive,
			schema.KindSHACLMinExclusive, schema.KindSHACLMaxExclusive:
			prop.Constraints = append(prop.Constraints, a)
		}
	}

	return prop, nil
}

// propertyIRI mints the identifier for a field's property. Identifiers are
// scoped to the declaring class IRI, so unrelated classes declaring fields
// with the same local name produce distinct properties.
func propertyIRI(classIRI string, f schema.Field) string {
	if a, ok := f.Annotation(schema.KindPropertyIRI); ok {
		return qualify(a.Str)
	}
	return classIRI + "/" + f.Name
}

// qualify turns a bare local name into an example-namespace compact IRI.
// Values already carrying a prefix or scheme pass through unchanged.
func qualify(v string) string {
	if strings.Contains(v, ":") {
		return v
	}
	return "ex:" + v
}
