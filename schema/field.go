package schema

// ValueType identifies the declared type of a field.
type ValueType string

const (
	// TypeString is a literal string value.
	TypeString ValueType = "string"

	// TypeInt is a literal integer value.
	TypeInt ValueType = "int"

	// TypeFloat is a literal decimal value.
	TypeFloat ValueType = "float"

	// TypeBool is a literal boolean value.
	TypeBool ValueType = "bool"

	// TypeDate is a literal calendar date value.
	TypeDate ValueType = "date"

	// TypeDateTime is a literal timestamp value.
	TypeDateTime ValueType = "dateTime"

	// TypeRelation marks a field as a link to another declared class.
	// The marker carries no data of its own; the link target comes from
	// WithTarget or an rdfs:range annotation.
	TypeRelation ValueType = "relation"
)

// String returns the string representation of the value type.
func (v ValueType) String() string {
	return string(v)
}

// IsRelation reports whether the type is the relation marker.
func (v ValueType) IsRelation() bool {
	return v == TypeRelation
}

// IsValid checks if the ValueType is one of the defined constants.
func (v ValueType) IsValid() bool {
	switch v {
	case TypeString, TypeInt, TypeFloat, TypeBool, TypeDate, TypeDateTime, TypeRelation:
		return true
	default:
		return false
	}
}

// Field is a single field declaration on a class.
//
// Optionality and the multi-valued flag affect only cardinality, never the
// literal-vs-relation kind. A Field belongs to exactly one declaring class;
// subclasses see it through the ancestor chain, not by re-declaration.
type Field struct {
	// Name is the field's local name within its declaring class.
	Name string

	// Type is the declared value type.
	Type ValueType

	// Description is the human-readable field description.
	Description string

	// Optional marks the field as nullable (minCount 0).
	Optional bool

	// Many marks the field as multi-valued (minCount 0, no maxCount).
	Many bool

	// Target is the linked class for relation fields declared with
	// WithTarget. Nil for literal fields and for relation fields whose
	// range comes from an annotation.
	Target *Class

	// Annotations are the RDFS/SHACL overrides attached to this field,
	// in declaration order.
	Annotations []Annotation
}

// IsRequired reports whether the field is required and single-valued.
func (f Field) IsRequired() bool {
	return !f.Optional && !f.Many
}

// Annotation returns the first attached annotation of the given kind.
// The second return is false when no such annotation is attached.
func (f Field) Annotation(kind AnnotationKind) (Annotation, bool) {
	for _, a := range f.Annotations {
		if a.Kind == kind {
			return a, true
		}
	}
	return Annotation{}, false
}

// FieldOption is a functional option for configuring a field declaration.
type FieldOption func(*Field)

// Optional marks the field as nullable.
func Optional() FieldOption {
	return func(f *Field) {
		f.Optional = true
	}
}

// Many marks the field as multi-valued (a sequence).
func Many() FieldOption {
	return func(f *Field) {
		f.Many = true
	}
}

// WithFieldDescription sets the human-readable description of the field.
func WithFieldDescription(desc string) FieldOption {
	return func(f *Field) {
		f.Description = desc
	}
}

// WithTarget links a relation field to its target class. Ignored by literal
// fields at introspection time; an rdfs:range annotation takes precedence.
func WithTarget(target *Class) FieldOption {
	return func(f *Field) {
		f.Target = target
	}
}

// WithAnnotations attaches RDFS/SHACL annotations to the field.
func WithAnnotations(anns ...Annotation) FieldOption {
	return func(f *Field) {
		f.Annotations = append(f.Annotations, anns...)
	}
}
