package vocabulary

// XSD datatype IRIs (prefixed form) used as literal ranges.
const (
	XsdString   = "xsd:string"
	XsdInteger  = "xsd:integer"
	XsdDecimal  = "xsd:decimal"
	XsdBoolean  = "xsd:boolean"
	XsdDate     = "xsd:date"
	XsdDateTime = "xsd:dateTime"
)

// datatypeMap maps declared value-type names to XSD datatype IRIs.
// This is the fixed literal-range mapping; relation-valued fields resolve to
// class IRIs instead and never consult this table.
var datatypeMap = map[string]string{
	"string":   XsdString,
	"int":      XsdInteger,
	"float":    XsdDecimal,
	"bool":     XsdBoolean,
	"date":     XsdDate,
	"dateTime": XsdDateTime,
}

// Datatype returns the XSD datatype IRI for a declared value-type name.
// The second return is false for unknown or relation-valued types.
func Datatype(valueType string) (string, bool) {
	iri, ok := datatypeMap[valueType]
	return iri, ok
}

// IsDatatype reports whether iri is one of the XSD datatypes ontograph emits.
func IsDatatype(iri string) bool {
	for _, v := range datatypeMap {
		if v == iri {
			return true
		}
	}
	return false
}
