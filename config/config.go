// Package config provides configuration loading and management for ontograph.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontograph configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Output   OutputConfig   `yaml:"output"`
	NATS     NATSConfig     `yaml:"nats"`
	Watch    WatchConfig    `yaml:"watch"`
}

// OntologyConfig configures the declared schema sources
type OntologyConfig struct {
	// Namespace is the vocabulary namespace for declared classes
	// (default: http://example.com/vocab/)
	Namespace string `yaml:"namespace"`
	// SchemaGlob is the doublestar pattern for schema files,
	// relative to the working directory (default: schemas/**/*.yaml)
	SchemaGlob string `yaml:"schema_glob"`
}

// OutputConfig configures where generated documents are written
type OutputConfig struct {
	// Dir is the output directory for generated documents
	Dir string `yaml:"dir"`
	// OntologyFile is the ontology graph file name
	OntologyFile string `yaml:"ontology_file"`
	// SHACLFile is the shape graph file name
	SHACLFile string `yaml:"shacl_file"`
}

// NATSConfig configures the optional graph publication target
type NATSConfig struct {
	// URL is the NATS server URL (empty = publication disabled)
	URL string `yaml:"url"`
	// Subject is the subject generated documents are published to
	Subject string `yaml:"subject"`
	// Timeout is the maximum time to wait for a publish acknowledgement
	Timeout time.Duration `yaml:"timeout"`
}

// WatchConfig configures watch-mode regeneration
type WatchConfig struct {
	// Debounce is the quiet period after a file event before regenerating
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Namespace:  "http://example.com/vocab/",
			SchemaGlob: "schemas/**/*.yaml",
		},
		Output: OutputConfig{
			Dir:          "build",
			OntologyFile: "ontology.jsonld",
			SHACLFile:    "shapes.jsonld",
		},
		NATS: NATSConfig{
			URL:     "",
			Subject: "ontology.graph.ingest",
			Timeout: 5 * time.Second,
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Ontology.Namespace == "" {
		return fmt.Errorf("ontology.namespace is required")
	}
	if !strings.Contains(c.Ontology.Namespace, "://") {
		return fmt.Errorf("ontology.namespace must be an absolute IRI")
	}
	if c.Ontology.SchemaGlob == "" {
		return fmt.Errorf("ontology.schema_glob is required")
	}
	if c.Output.OntologyFile == "" || c.Output.SHACLFile == "" {
		return fmt.Errorf("output file names are required")
	}
	if c.NATS.URL != "" && c.NATS.Subject == "" {
		return fmt.Errorf("nats.subject is required when nats.url is set")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Ontology
	if other.Ontology.Namespace != "" {
		c.Ontology.Namespace = other.Ontology.Namespace
	}
	if other.Ontology.SchemaGlob != "" {
		c.Ontology.SchemaGlob = other.Ontology.SchemaGlob
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
	if other.Output.OntologyFile != "" {
		c.Output.OntologyFile = other.Output.OntologyFile
	}
	if other.Output.SHACLFile != "" {
		c.Output.SHACLFile = other.Output.SHACLFile
	}

	// NATS
	if other.NATS.URL != "" {
		c.NATS.URL = other.NATS.URL
	}
	if other.NATS.Subject != "" {
		c.NATS.Subject = other.NATS.Subject
	}
	if other.NATS.Timeout != 0 {
		c.NATS.Timeout = other.NATS.Timeout
	}

	// Watch
	if other.Watch.Debounce != 0 {
		c.Watch.Debounce = other.Watch.Debounce
	}
}
