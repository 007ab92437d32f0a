package schemafile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/ontograph/schema"
)

// document is the YAML shape of one schema file.
type document struct {
	Namespace string      `yaml:"namespace"`
	Classes   []classDecl `yaml:"classes"`
}

type classDecl struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Parent      string      `yaml:"parent"`
	Fields      []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name        string    `yaml:"name"`
	Type        string    `yaml:"type"`
	Description string    `yaml:"description"`
	Optional    bool      `yaml:"optional"`
	Many        bool      `yaml:"many"`
	Target      string    `yaml:"target"`
	Annotations yaml.Node `yaml:"annotations"`
}

// Load parses a single schema document.
func Load(data []byte) (*schema.Ontology, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse schema document: %w", err)
	}
	return build(doc.Namespace, doc.Classes)
}

// LoadFiles parses schema files in the given order and merges them into one
// ontology. All files declaring a namespace must agree on it.
func LoadFiles(paths ...string) (*schema.Ontology, error) {
	namespace := ""
	var decls []classDecl

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema file: %w", err)
		}
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse schema file %s: %w", path, err)
		}
		if doc.Namespace != "" {
			if namespace != "" && namespace != doc.Namespace {
				return nil, fmt.Errorf("schema file %s declares namespace %s, conflicting with %s", path, doc.Namespace, namespace)
			}
			namespace = doc.Namespace
		}
		decls = append(decls, doc.Classes...)
	}

	return build(namespace, decls)
}

// LoadDir loads every schema file under root matching the doublestar
// pattern. Matches load in sorted path order so the merged declaration
// order is stable across runs.
func LoadDir(root, pattern string) (*schema.Ontology, error) {
	matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob schema files: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no schema files match %s under %s", pattern, root)
	}
	sort.Strings(matches)
	return LoadFiles(matches...)
}

// build turns parsed declarations into an ontology. Classes are created in
// declaration order, then fields are attached in a second pass so relation
// targets can reference classes declared later.
func build(namespace string, decls []classDecl) (*schema.Ontology, error) {
	byName := make(map[string]*schema.Class, len(decls))
	classes := make([]*schema.Class, 0, len(decls))

	for _, decl := range decls {
		if decl.Name == "" {
			return nil, fmt.Errorf("class declaration with no name")
		}
		if _, exists := byName[decl.Name]; exists {
			return nil, fmt.Errorf("class %s declared twice", decl.Name)
		}

		opts := []schema.ClassOption{}
		if decl.Description != "" {
			opts = append(opts, schema.WithDescription(decl.Description))
		}
		if decl.Parent != "" {
			parent, ok := byName[decl.Parent]
			if !ok {
				return nil, fmt.Errorf("class %s: parent %s not declared before it", decl.Name, decl.Parent)
			}
			opts = append(opts, schema.WithParent(parent))
		}

		c := schema.NewClass(decl.Name, opts...)
		byName[decl.Name] = c
		classes = append(classes, c)
	}

	for i, decl := range decls {
		c := classes[i]
		for _, f := range decl.Fields {
			if err := addField(c, f, byName); err != nil {
				return nil, fmt.Errorf("class %s: %w", decl.Name, err)
			}
		}
	}

	o := schema.NewOntology(classes...)
	if namespace != "" {
		o = o.WithNamespace(namespace)
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	// Loaded classes join the global registry so later loads can target them.
	for _, c := range classes {
		if err := schema.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// addField attaches one parsed field declaration to its class.
func addField(c *schema.Class, f fieldDecl, byName map[string]*schema.Class) error {
	if f.Name == "" {
		return fmt.Errorf("field declaration with no name")
	}
	if f.Type == "" {
		return fmt.Errorf("field %s: type is required", f.Name)
	}

	var opts []schema.FieldOption
	if f.Description != "" {
		opts = append(opts, schema.WithFieldDescription(f.Description))
	}
	if f.Optional {
		opts = append(opts, schema.Optional())
	}
	if f.Many {
		opts = append(opts, schema.Many())
	}
	if f.Target != "" {
		target, ok := byName[f.Target]
		if !ok {
			// Fall back to classes registered by earlier loads.
			target, ok = schema.Lookup(f.Target)
		}
		if !ok {
			return fmt.Errorf("field %s: target class %s not declared", f.Name, f.Target)
		}
		opts = append(opts, schema.WithTarget(target))
	}

	anns, err := parseAnnotations(f.Annotations)
	if err != nil {
		return fmt.Errorf("field %s: %w", f.Name, err)
	}
	if len(anns) > 0 {
		opts = append(opts, schema.WithAnnotations(anns...))
	}

	c.AddField(f.Name, schema.ValueType(f.Type), opts...)
	return nil
}

// parseAnnotations decodes the annotations mapping, preserving the order
// keys appear in the file.
func parseAnnotations(node yaml.Node) ([]schema.Annotation, error) {
	if node.Kind == 0 || node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("annotations must be a mapping")
	}

	var anns []schema.Annotation
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := node.Content[i+1]

		a, err := parseAnnotation(schema.AnnotationKind(key), value)
		if err != nil {
			return nil, fmt.Errorf("annotation %s: %w", key, err)
		}
		anns = append(anns, a)
	}
	return anns, nil
}

// parseAnnotation decodes one annotation value against its kind's value
// shape. Unrecognized keys decode as string annotations; they are carried
// through declaration but ignored by graph synthesis.
func parseAnnotation(kind schema.AnnotationKind, value *yaml.Node) (schema.Annotation, error) {
	switch kind {
	case schema.KindSHACLMinCount, schema.KindSHACLMaxCount,
		schema.KindSHACLMinLength, schema.KindSHACLMaxLength:
		var n int
		if err := value.Decode(&n); err != nil {
			return schema.Annotation{}, fmt.Errorf("expected integer: %w", err)
		}
		return schema.Annotation{Kind: kind, Int: n}, nil

	case schema.KindSHACLMinInclusive, schema.KindSHACLMaxInclusive,
		schema.KindSHACLMinExclusive, schema.KindSHACLMaxExclusive:
		var v float64
		if err := value.Decode(&v); err != nil {
			return schema.Annotation{}, fmt.Errorf("expected number: %w", err)
		}
		return schema.Annotation{Kind: kind, Num: v}, nil

	default:
		var s string
		if err := value.Decode(&s); err != nil {
			return schema.Annotation{}, fmt.Errorf("expected string: %w", err)
		}
		return schema.Annotation{Kind: kind, Str: s}, nil
	}
}
