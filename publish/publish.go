// Package publish delivers generated graph documents to a NATS subject for
// downstream ingestion.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/c360studio/ontograph/jsonld"
)

// DefaultSubject is the subject graph documents are published to.
const DefaultSubject = "ontology.graph.ingest"

// GraphKind tags which of the two derived graphs an envelope carries.
type GraphKind string

const (
	// KindOntology is the RDFS/OWL terminology graph.
	KindOntology GraphKind = "ontology"

	// KindSHACL is the validation shape graph.
	KindSHACL GraphKind = "shacl"
)

// Envelope is the wire format for a published graph document.
type Envelope struct {
	ID          string          `json:"id"`
	Kind        GraphKind       `json:"kind"`
	Namespace   string          `json:"namespace"`
	Document    json.RawMessage `json:"document"`
	PublishedAt time.Time       `json:"published_at"`
}

// Publisher publishes graph documents over a NATS connection.
type Publisher struct {
	nc      *nats.Conn
	subject string
	timeout time.Duration
	logger  *slog.Logger
}

// Option is a functional option for configuring a Publisher.
type Option func(*Publisher)

// WithSubject overrides the publish subject.
func WithSubject(subject string) Option {
	return func(p *Publisher) {
		p.subject = subject
	}
}

// WithTimeout sets the flush timeout after publishing.
func WithTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		p.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New creates a Publisher. A nil connection is allowed; publishing then
// becomes a no-op so callers need not special-case a disabled target.
func New(nc *nats.Conn, opts ...Option) *Publisher {
	p := &Publisher{
		nc:      nc,
		subject: DefaultSubject,
		timeout: 5 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish wraps a graph document in an envelope and publishes it.
func (p *Publisher) Publish(ctx context.Context, kind GraphKind, namespace string, doc *jsonld.Document) error {
	if p.nc == nil {
		return nil // Skip publishing when no connection is configured
	}

	body, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal %s graph: %w", kind, err)
	}

	env := Envelope{
		ID:          uuid.NewString(),
		Kind:        kind,
		Namespace:   namespace,
		Document:    body,
		PublishedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal %s envelope: %w", kind, err)
	}

	if err := p.nc.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish %s graph: %w", kind, err)
	}

	flushCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		flushCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	if err := p.nc.FlushWithContext(flushCtx); err != nil {
		return fmt.Errorf("flush %s graph: %w", kind, err)
	}

	p.logger.Debug("Published graph document",
		slog.String("subject", p.subject),
		slog.String("kind", string(kind)),
		slog.String("id", env.ID))

	return nil
}
