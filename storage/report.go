// Package storage keeps validation reports in a NATS KV bucket so that the
// latest report of each ontology can be looked up later.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/semowl/validator/report"
	"github.com/c360studio/semstreams/natsclient"
)

// BucketReports is the KV bucket reports are stored in.
const BucketReports = "SEMOWL_REPORTS"

const (
	reportPrefix = "report."
	latestPrefix = "latest."
)

// Record is a stored report with the context it was produced in.
type Record struct {
	Report   *report.Report `json:"report"`
	File     string         `json:"file,omitempty"`
	Rules    []string       `json:"rules"`
	Errors   int            `json:"errors"`
	Warnings int            `json:"warnings"`
	StoredAt time.Time      `json:"stored_at"`
}

// KV is the key-value bucket the store writes to. *natsclient.KVStore
// satisfies it.
type KV interface {
	Get(ctx context.Context, key string) (*natsclient.KVEntry, error)
	Put(ctx context.Context, key string, value []byte) (uint64, error)
	Delete(ctx context.Context, key string) error
}

// Store provides report storage operations backed by NATS KV.
type Store struct {
	kv KV
}

// NewStore creates a store over an opened bucket.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Open creates the reports bucket if it doesn't exist and returns a store
// over it.
func Open(ctx context.Context, client *natsclient.Client) (*Store, error) {
	bucket, err := client.CreateKeyValueBucket(ctx, jetstream.KeyValueConfig{
		Bucket:      BucketReports,
		Description: "Semowl validation reports",
		History:     5, // Keep last 5 revisions
	})
	if err != nil {
		return nil, fmt.Errorf("create reports bucket: %w", err)
	}
	return NewStore(client.NewKVStore(bucket)), nil
}

// ontologyKey maps an ontology IRI onto a valid KV key token.
func ontologyKey(iri string) string {
	return latestPrefix + uuid.NewSHA1(uuid.NameSpaceURL, []byte(iri)).String()
}

// Save stores a record under its report ID and marks it as the latest
// report of its ontology.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Report == nil || rec.Report.ID == "" {
		return errors.New("save report: report ID is required")
	}
	rec.Errors = len(rec.Report.Errors())
	rec.Warnings = len(rec.Report.Warnings())
	rec.StoredAt = time.Now().UTC()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if _, err := s.kv.Put(ctx, reportPrefix+rec.Report.ID, data); err != nil {
		return fmt.Errorf("store report: %w", err)
	}

	if rec.Report.Ontology != "" {
		if _, err := s.kv.Put(ctx, ontologyKey(rec.Report.Ontology), []byte(rec.Report.ID)); err != nil {
			return fmt.Errorf("store latest pointer: %w", err)
		}
	}

	return nil
}

// Get retrieves a record by report ID.
func (s *Store) Get(ctx context.Context, id string) (*Record, error) {
	entry, err := s.kv.Get(ctx, reportPrefix+id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get report: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(entry.Value, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	return &rec, nil
}

// Latest retrieves the most recently saved record for an ontology.
func (s *Store) Latest(ctx context.Context, ontology string) (*Record, error) {
	entry, err := s.kv.Get(ctx, ontologyKey(ontology))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get latest report: %w", err)
	}
	return s.Get(ctx, string(entry.Value))
}

// Delete removes a record. The latest pointer of its ontology is removed
// too when it still points at the record.
func (s *Store) Delete(ctx context.Context, id string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.kv.Delete(ctx, reportPrefix+id); err != nil && !isNotFound(err) {
		return fmt.Errorf("delete report: %w", err)
	}

	if rec.Report.Ontology == "" {
		return nil
	}
	key := ontologyKey(rec.Report.Ontology)
	if entry, err := s.kv.Get(ctx, key); err == nil && string(entry.Value) == id {
		if err := s.kv.Delete(ctx, key); err != nil && !isNotFound(err) {
			return fmt.Errorf("delete latest pointer: %w", err)
		}
	}
	return nil
}

func isNotFound(err error) bool {
	return natsclient.IsKVNotFoundError(err) || errors.Is(err, jetstream.ErrKeyNotFound)
}
