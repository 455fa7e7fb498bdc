// Package graph publishes validation reports to the knowledge graph over NATS.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/validator/report"
	"github.com/c360studio/semstreams/message"
	"github.com/c360studio/semstreams/natsclient"
)

// DefaultSubject is the subject reports are published on.
const DefaultSubject = "semowl.reports"

const source = "semowl.validate"

// Publisher sends encoded messages to a subject. *natsclient.Client
// satisfies it.
type Publisher interface {
	Publish(ctx context.Context, subject string, data []byte) error
}

// Connect opens a NATS connection and waits until it is healthy. An empty
// url means the local default server.
func Connect(ctx context.Context, url string, timeout time.Duration) (*natsclient.Client, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	client, err := natsclient.NewClient(url,
		natsclient.WithName("semowl"),
		natsclient.WithMaxReconnects(5),
		natsclient.WithReconnectWait(time.Second),
		natsclient.WithTimeout(timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create NATS client: %w", err)
	}

	if err := client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	connCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.WaitForConnection(connCtx); err != nil {
		_ = client.Close(ctx)
		return nil, fmt.Errorf("NATS connection timeout: %w", err)
	}

	return client, nil
}

// ReportTriples flattens the exported report entities into graph triples.
// Predicates stay in dotted form; entity references become IRIs.
func ReportTriples(rep *report.Report, meta export.ReportMeta, now time.Time) []message.Triple {
	var triples []message.Triple
	for _, entity := range export.ReportEntities(rep, meta) {
		subject := export.EntityIRI(entity.ID)
		for _, t := range entity.Triples {
			triples = append(triples, message.Triple{
				Subject:    subject,
				Predicate:  t.Predicate,
				Object:     tripleObject(t.Object),
				Source:     source,
				Timestamp:  now,
				Confidence: 1.0,
			})
		}
	}
	return triples
}

func tripleObject(obj any) any {
	switch v := obj.(type) {
	case export.IRI:
		return export.EntityIRI(string(v))
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	default:
		return v
	}
}

// NewReportMessage wraps a report in a semstreams message.
func NewReportMessage(rep *report.Report, meta export.ReportMeta) *message.BaseMessage {
	now := time.Now()
	payload := &ReportPayload{
		ReportID:    rep.ID,
		Ontology:    rep.Ontology,
		Errors:      len(rep.Errors()),
		Warnings:    len(rep.Warnings()),
		TripleData:  ReportTriples(rep, meta, now),
		GeneratedAt: rep.GeneratedAt,
	}
	return message.NewBaseMessage(ReportType, payload, source, message.WithTime(now))
}

// PublishReport publishes a report on subject. A nil publisher skips
// publishing.
func PublishReport(ctx context.Context, pub Publisher, subject string, rep *report.Report, meta export.ReportMeta) error {
	if pub == nil {
		return nil
	}
	if subject == "" {
		subject = DefaultSubject
	}

	data, err := json.Marshal(NewReportMessage(rep, meta))
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", rep.ID, err)
	}

	if err := pub.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish report %s: %w", rep.ID, err)
	}

	return nil
}
