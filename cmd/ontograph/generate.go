package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/c360studio/ontograph/config"
	"github.com/c360studio/ontograph/jsonld"
	"github.com/c360studio/ontograph/publish"
	"github.com/c360studio/ontograph/schemafile"
	"github.com/c360studio/ontograph/synth"
)

func generateCmd() *cobra.Command {
	var (
		configPath string
		schemaDir  string
		outDir     string
		namespace  string
		watch      bool
		doPublish  bool
		natsURL    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate ontology and shape graphs from schema files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Output.Dir = outDir
			}
			if namespace != "" {
				cfg.Ontology.Namespace = namespace
			}
			if natsURL != "" {
				cfg.NATS.URL = natsURL
			}

			return runGenerate(cmd.Context(), cfg, schemaDir, watch, doPublish)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")
	cmd.Flags().StringVar(&schemaDir, "schemas", ".", "Directory containing schema files")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory for generated documents")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Vocabulary namespace override")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Watch schema files and regenerate on change")
	cmd.Flags().BoolVar(&doPublish, "publish", false, "Publish generated documents to NATS")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "NATS server URL (implies --publish target)")

	return cmd
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}
	return config.NewLoader(slog.Default()).Load()
}

func runGenerate(ctx context.Context, cfg *config.Config, schemaDir string, watch, doPublish bool) error {
	absSchemaDir, err := filepath.Abs(schemaDir)
	if err != nil {
		return fmt.Errorf("resolve schema dir: %w", err)
	}
	info, err := os.Stat(absSchemaDir)
	if err != nil {
		return fmt.Errorf("stat schema dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", absSchemaDir)
	}

	var publisher *publish.Publisher
	if doPublish {
		if cfg.NATS.URL == "" {
			return fmt.Errorf("--publish requires nats.url in config or --nats-url")
		}
		conn, err := nats.Connect(cfg.NATS.URL, nats.Name(appName))
		if err != nil {
			return fmt.Errorf("connect to NATS at %s: %w", cfg.NATS.URL, err)
		}
		defer conn.Close()
		slog.Info("Connected to NATS", "url", cfg.NATS.URL)

		publisher = publish.New(conn,
			publish.WithSubject(cfg.NATS.Subject),
			publish.WithTimeout(cfg.NATS.Timeout))
	}

	if err := generate(ctx, cfg, absSchemaDir, publisher); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	return watchAndRegenerate(ctx, cfg, absSchemaDir, publisher)
}

// generate runs one full load-synthesize-write cycle.
func generate(ctx context.Context, cfg *config.Config, schemaDir string, publisher *publish.Publisher) error {
	start := time.Now()

	ontology, err := schemafile.LoadDir(schemaDir, cfg.Ontology.SchemaGlob)
	if err != nil {
		return fmt.Errorf("load schemas: %w", err)
	}
	if cfg.Ontology.Namespace != "" {
		ontology = ontology.WithNamespace(cfg.Ontology.Namespace)
	}

	ontologyDoc, err := synth.OntologyGraph(ontology)
	if err != nil {
		return fmt.Errorf("derive ontology graph: %w", err)
	}
	shaclDoc, err := synth.SHACLGraph(ontology)
	if err != nil {
		return fmt.Errorf("derive shape graph: %w", err)
	}

	if err := writeDoc(cfg.Output.Dir, cfg.Output.OntologyFile, ontologyDoc); err != nil {
		return err
	}
	if err := writeDoc(cfg.Output.Dir, cfg.Output.SHACLFile, shaclDoc); err != nil {
		return err
	}

	if publisher != nil {
		ns := ontology.Namespace()
		if err := publisher.Publish(ctx, publish.KindOntology, ns, ontologyDoc); err != nil {
			return err
		}
		if err := publisher.Publish(ctx, publish.KindSHACL, ns, shaclDoc); err != nil {
			return err
		}
	}

	slog.Info("Generated graphs",
		"classes", len(ontology.Classes()),
		"out_dir", cfg.Output.Dir,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func writeDoc(dir, name string, doc *jsonld.Document) error {
	data, err := doc.Render()
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	slog.Debug("Wrote document", "path", path, "bytes", len(data))
	return nil
}

// watchAndRegenerate blocks, regenerating after schema file changes until
// the context is canceled or a shutdown signal arrives. Events are
// debounced so editors that write in bursts trigger one regeneration.
func watchAndRegenerate(ctx context.Context, cfg *config.Config, schemaDir string, publisher *publish.Publisher) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, schemaDir); err != nil {
		return err
	}

	signalCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("Watching for schema changes", "dir", schemaDir)

	var debounce *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case <-signalCtx.Done():
			slog.Info("Shutting down watch")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			slog.Debug("Schema change detected", "path", event.Name, "op", event.Op.String())
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addWatchDirs(watcher, event.Name)
				}
			}
			if debounce == nil {
				debounce = time.NewTimer(cfg.Watch.Debounce)
			} else {
				debounce.Reset(cfg.Watch.Debounce)
			}
			pending = debounce.C

		case <-pending:
			pending = nil
			if err := generate(signalCtx, cfg, schemaDir, publisher); err != nil {
				slog.Error("Regeneration failed", "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", "error", err)
		}
	}
}

// addWatchDirs registers root and all its subdirectories with the watcher.
// fsnotify watches are non-recursive.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}

func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	ext := filepath.Ext(event.Name)
	return ext == ".yaml" || ext == ".yml" || ext == ""
}
