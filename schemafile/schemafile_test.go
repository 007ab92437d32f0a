package schemafile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/ontograph/schema"
)

const personnelYAML = `
namespace: http://vocab.test.org/
classes:
  - name: Person
    description: A human being.
    fields:
      - name: name
        type: string
        description: Full name.
        annotations:
          sh:minLength: 1
      - name: age
        type: int
        optional: true
        annotations:
          sh:minInclusive: 0
          sh:maxInclusive: 150
      - name: department
        type: relation
        target: Department
  - name: Department
    description: An organizational unit.
    fields:
      - name: name
        type: string
  - name: Employee
    parent: Person
    fields:
      - name: employeeId
        type: string
        annotations:
          sh:pattern: "^E[0-9]+$"
`

func TestLoad(t *testing.T) {
	schema.ClearRegistry()
	defer schema.ClearRegistry()

	o, err := Load([]byte(personnelYAML))
	require.NoError(t, err)

	assert.Equal(t, "http://vocab.test.org/", o.Namespace())

	classes := o.Classes()
	require.Len(t, classes, 3)
	assert.Equal(t, "Person", classes[0].Name())
	assert.Equal(t, "Department", classes[1].Name())
	assert.Equal(t, "Employee", classes[2].Name())

	// Parent wiring
	require.NotNil(t, classes[2].Parent())
	assert.Same(t, classes[0], classes[2].Parent())

	// Forward target reference: Person.department targets Department,
	// declared after Person in the file.
	fields := classes[0].Fields()
	require.Len(t, fields, 3)
	require.NotNil(t, fields[2].Target)
	assert.Same(t, classes[1], fields[2].Target)
}

func TestLoadFieldDetails(t *testing.T) {
	schema.ClearRegistry()
	defer schema.ClearRegistry()

	o, err := Load([]byte(personnelYAML))
	require.NoError(t, err)

	person := o.Classes()[0]
	fields := person.Fields()

	name := fields[0]
	assert.Equal(t, schema.TypeString, name.Type)
	assert.Equal(t, "Full name.", name.Description)
	assert.True(t, name.IsRequired())
	require.Len(t, name.Annotations, 1)
	assert.Equal(t, schema.KindSHACLMinLength, name.Annotations[0].Kind)
	assert.Equal(t, 1, name.Annotations[0].Int)

	age := fields[1]
	assert.True(t, age.Optional)
	// Annotation order follows the file
	require.Len(t, age.Annotations, 2)
	assert.Equal(t, schema.KindSHACLMinInclusive, age.Annotations[0].Kind)
	assert.Equal(t, 0.0, age.Annotations[0].Num)
	assert.Equal(t, schema.KindSHACLMaxInclusive, age.Annotations[1].Kind)
	assert.Equal(t, 150.0, age.Annotations[1].Num)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "invalid yaml",
			yaml:    "classes: [",
			wantErr: "parse schema document",
		},
		{
			name: "class without name",
			yaml: `
classes:
  - description: nameless
`,
			wantErr: "no name",
		},
		{
			name: "duplicate class",
			yaml: `
classes:
  - name: Person
  - name: Person
`,
			wantErr: "declared twice",
		},
		{
			name: "parent declared after child",
			yaml: `
classes:
  - name: Employee
    parent: Person
  - name: Person
`,
			wantErr: "not declared before",
		},
		{
			name: "field without type",
			yaml: `
classes:
  - name: Person
    fields:
      - name: name
`,
			wantErr: "type is required",
		},
		{
			name: "unknown target",
			yaml: `
classes:
  - name: Employee
    fields:
      - name: department
        type: relation
        target: Department
`,
			wantErr: "target class Department not declared",
		},
		{
			name: "unknown value type",
			yaml: `
classes:
  - name: Person
    fields:
      - name: name
        type: text
`,
			wantErr: "unknown value type",
		},
		{
			name: "annotation value out of domain",
			yaml: `
classes:
  - name: Person
    fields:
      - name: age
        type: int
        annotations:
          sh:minCount: -1
`,
			wantErr: "sh:minCount",
		},
		{
			name: "annotations not a mapping",
			yaml: `
classes:
  - name: Person
    fields:
      - name: age
        type: int
        annotations:
          - sh:minCount
`,
			wantErr: "annotations must be a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema.ClearRegistry()
			defer schema.ClearRegistry()

			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadRegistersClasses(t *testing.T) {
	schema.ClearRegistry()
	defer schema.ClearRegistry()

	_, err := Load([]byte(personnelYAML))
	require.NoError(t, err)

	got, ok := schema.Lookup("Department")
	require.True(t, ok)
	assert.Equal(t, "Department", got.Name())
	assert.Equal(t, []string{"Department", "Employee", "Person"}, schema.RegisteredClasses())
}

func TestLoadTargetFromEarlierLoad(t *testing.T) {
	schema.ClearRegistry()
	defer schema.ClearRegistry()

	core := `
classes:
  - name: Department
    fields:
      - name: name
        type: string
`
	ext := `
classes:
  - name: Employee
    fields:
      - name: department
        type: relation
        target: Department
`
	_, err := Load([]byte(core))
	require.NoError(t, err)

	o, err := Load([]byte(ext))
	require.NoError(t, err)

	employee := o.Classes()[0]
	target := employee.Fields()[0].Target
	require.NotNil(t, target)
	assert.Equal(t, "Department", target.Name())

	// Nothing registered: the same document fails to resolve the target.
	schema.ClearRegistry()
	_, err = Load([]byte(ext))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target class Department not declared")
}

func TestLoadDir(t *testing.T) {
	schema.ClearRegistry()
	defer schema.ClearRegistry()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "nested"), 0755))

	// Split across two files; sorted path order puts a_core.yaml first.
	core := `
namespace: http://vocab.test.org/
classes:
  - name: Person
    fields:
      - name: name
        type: string
`
	ext := `
classes:
  - name: Employee
    parent: Person
    fields:
      - name: manager
        type: relation
        target: Person
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "a_core.yaml"), []byte(core), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "nested", "b_ext.yaml"), []byte(ext), 0644))

	o, err := LoadDir(tmpDir, "**/*.yaml")
	require.NoError(t, err)

	assert.Equal(t, "http://vocab.test.org/", o.Namespace())
	classes := o.Classes()
	require.Len(t, classes, 2)
	assert.Equal(t, "Person", classes[0].Name())
	assert.Equal(t, "Employee", classes[1].Name())
	assert.Same(t, classes[0], classes[1].Parent())
}

func TestLoadDirNoMatches(t *testing.T) {
	_, err := LoadDir(t.TempDir(), "**/*.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no schema files match")
}

func TestLoadFilesNamespaceConflict(t *testing.T) {
	tmpDir := t.TempDir()
	a := filepath.Join(tmpDir, "a.yaml")
	b := filepath.Join(tmpDir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("namespace: http://one.org/\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("namespace: http://two.org/\n"), 0644))

	_, err := LoadFiles(a, b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting")
}
