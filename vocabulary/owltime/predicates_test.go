package owltime_test

import (
	"strings"
	"testing"

	"github.com/c360studio/semowl/vocabulary/owltime"
	"github.com/c360studio/semstreams/vocabulary"
)

func TestPredicatesRegistered(t *testing.T) {
	predicates := []string{
		owltime.FeatureHasTime,
		owltime.InstantDateTimeStamp,
		owltime.InstantPosition,
		owltime.PositionNumeric,
		owltime.PositionNominal,
		owltime.DescriptionYear,
		owltime.IntervalBeginning,
		owltime.IntervalDescription,
		owltime.DurationDays,
		owltime.RelationMetBy,
	}

	for _, predicate := range predicates {
		t.Run(predicate, func(t *testing.T) {
			meta := vocabulary.GetPredicateMetadata(predicate)
			if meta == nil {
				t.Fatalf("predicate %q not registered", predicate)
			}
			if meta.Description == "" {
				t.Errorf("predicate %q has no description", predicate)
			}
			if !strings.HasPrefix(meta.StandardIRI, owltime.Namespace) {
				t.Errorf("predicate %q maps to %q, want an OWL-Time IRI", predicate, meta.StandardIRI)
			}
			if meta.Domain != "time" {
				t.Errorf("predicate %q has domain %q", predicate, meta.Domain)
			}
		})
	}
}

func TestPredicateForIRI(t *testing.T) {
	tests := []struct {
		iri  string
		want string
	}{
		{owltime.NumericPosition, owltime.PositionNumeric},
		{owltime.IntervalMetBy, owltime.RelationMetBy},
		{owltime.UnitType, owltime.DescriptionUnitType},
	}
	for _, tt := range tests {
		got, ok := owltime.PredicateForIRI(tt.iri)
		if !ok || got != tt.want {
			t.Errorf("PredicateForIRI(%q) = %q, %v; want %q", tt.iri, got, ok, tt.want)
		}
	}

	if _, ok := owltime.PredicateForIRI(owltime.IntervalDuring); ok {
		t.Error("intervalDuring should not be registered")
	}
}

func TestDescribe(t *testing.T) {
	if got := owltime.Describe(owltime.HasBeginning); got != "Beginning instant of an interval" {
		t.Errorf("Describe(hasBeginning) = %q", got)
	}
	if got := owltime.Describe("http://example.org/x"); got != "http://example.org/x" {
		t.Errorf("Describe(unknown) = %q", got)
	}
}

func TestGregorianMonths(t *testing.T) {
	if len(owltime.GregorianMonths) != 12 {
		t.Fatalf("expected 12 months, got %d", len(owltime.GregorianMonths))
	}
	if owltime.GregorianMonths[8] != owltime.September {
		t.Errorf("month 9 = %s", owltime.GregorianMonths[8])
	}
}
