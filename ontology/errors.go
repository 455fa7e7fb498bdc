package ontology

import "errors"

// Ontology errors.
var (
	// ErrNilAxiom is returned when a nil axiom is declared.
	ErrNilAxiom = errors.New("nil axiom")

	// ErrEmptyIRI is returned when an entity or triple has no IRI.
	ErrEmptyIRI = errors.New("empty IRI")

	// ErrMalformedList is returned when an RDF collection is not terminated
	// by rdf:nil or revisits a node.
	ErrMalformedList = errors.New("malformed RDF list")
)
