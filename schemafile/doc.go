// Package schemafile loads class declarations from YAML schema files.
//
// A schema file declares a namespace and an ordered list of classes; each
// class carries an ordered list of fields with optional RDFS/SHACL
// annotations. Files load into the same declaration model the Go API
// builds programmatically, so graphs derived from files and from code are
// indistinguishable.
//
// Declaration order in the file is preserved end to end. A parent class
// must be declared before any class that names it; relation targets may
// reference classes declared anywhere in the loaded set. Loaded classes
// join the schema package's global registry, and a target missing from
// the current load resolves against classes registered by earlier loads.
package schemafile
