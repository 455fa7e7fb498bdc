// Package export provides RDF export of validation reports with
// BFO/CCO/PROV-O alignment.
package export

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/c360studio/semowl/vocabulary/owl"
	"github.com/c360studio/semowl/vocabulary/semowl"
)

// IRI marks a triple object as a resource rather than a string literal.
type IRI string

// Triple represents a semantic triple for export. Predicate is a dotted
// semowl predicate or a full IRI.
type Triple struct {
	Subject   string
	Predicate string
	Object    any
}

// Entity represents an exportable entity with its type and triples.
type Entity struct {
	ID         string
	EntityType semowl.EntityType
	Triples    []Triple
}

// RDFExporter exports entities to RDF with configurable ontology profiles.
type RDFExporter struct {
	asserter *TypeAsserter
	entities []Entity
	prefixes map[string]string
}

// NewRDFExporter creates a new RDF exporter with the specified profile.
func NewRDFExporter(profile Profile) *RDFExporter {
	return &RDFExporter{
		asserter: NewTypeAsserter(profile),
		entities: make([]Entity, 0),
		prefixes: defaultPrefixes(),
	}
}

// defaultPrefixes returns the standard namespace prefixes for RDF export.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":    owl.RDFNamespace,
		"rdfs":   owl.RDFSNamespace,
		"owl":    owl.OWLNamespace,
		"xsd":    owl.XSDNamespace,
		"dc":     "http://purl.org/dc/terms/",
		"prov":   "http://www.w3.org/ns/prov#",
		"bfo":    "http://purl.obolibrary.org/obo/",
		"cco":    "http://www.ontologyrepository.com/CommonCoreOntologies/",
		"semowl": semowl.Namespace,
		"entity": semowl.EntityNamespace,
	}
}

// AddEntity adds an entity to be exported.
func (e *RDFExporter) AddEntity(entity Entity) {
	e.entities = append(e.entities, entity)
}

// AddEntities adds entities in order.
func (e *RDFExporter) AddEntities(entities ...Entity) {
	e.entities = append(e.entities, entities...)
}

// Export serializes all entities to the specified format.
func (e *RDFExporter) Export(format Format) (string, error) {
	switch format {
	case FormatTurtle:
		return e.toTurtle(), nil
	case FormatNTriples:
		return e.toNTriples(), nil
	case FormatJSONLD:
		return e.toJSONLD()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// toTurtle serializes to Turtle format.
func (e *RDFExporter) toTurtle() string {
	w := NewTurtleWriter()
	w.prefixes = e.prefixes
	w.WritePrefixes()

	for _, entity := range e.entities {
		types := e.asserter.GetTypeIRIs(entity.EntityType)
		w.WriteSubject(entityIDToIRI(entity.ID))
		for i, typeIRI := range types {
			w.WriteType(typeIRI, i == len(types)-1 && len(entity.Triples) == 0)
		}
		for i, triple := range entity.Triples {
			w.WritePredicate(predicateIRI(triple.Predicate), triple.Object, i == len(entity.Triples)-1)
		}
		w.WriteBlank()
	}

	return w.String()
}

// toNTriples serializes to N-Triples format.
func (e *RDFExporter) toNTriples() string {
	w := NewNTriplesWriter()

	for _, entity := range e.entities {
		iri := entityIDToIRI(entity.ID)
		for _, typeIRI := range e.asserter.GetTypeIRIs(entity.EntityType) {
			w.WriteTypeTriple(iri, typeIRI)
		}
		for _, triple := range entity.Triples {
			w.WriteTriple(iri, predicateIRI(triple.Predicate), triple.Object)
		}
	}

	return w.String()
}

// toJSONLD serializes to JSON-LD format. Repeated predicates become arrays.
func (e *RDFExporter) toJSONLD() (string, error) {
	w := NewJSONLDWriter()
	w.SetContext(e.prefixes)

	for _, entity := range e.entities {
		props := make(map[string]any, len(entity.Triples))
		for _, triple := range entity.Triples {
			key := predicateIRI(triple.Predicate)
			value := formatObjectJSONLD(triple.Object)
			switch existing := props[key].(type) {
			case nil:
				props[key] = value
			case []any:
				props[key] = append(existing, value)
			default:
				props[key] = []any{existing, value}
			}
		}
		w.AddNode(entityIDToIRI(entity.ID), e.asserter.GetTypeIRIs(entity.EntityType), props)
	}

	return w.Encode()
}

// sortedKeys returns the keys of m in lexical order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EntityIRI returns the IRI of an exported entity ID.
func EntityIRI(id string) string { return entityIDToIRI(id) }

// entityIDToIRI returns id unchanged when it is already absolute and places
// it under the entity namespace otherwise.
// Example: "report/42" -> "https://semowl.dev/entity/report/42"
func entityIDToIRI(id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return semowl.EntityNamespace + id
}

// predicateIRI resolves dotted predicates through the vocabulary registry.
func predicateIRI(predicate string) string {
	if strings.Contains(predicate, ":") {
		return predicate
	}
	return semowl.GetPredicateIRI(predicate)
}

// formatObject formats an object value for Turtle output.
func formatObject(obj any) string {
	switch v := obj.(type) {
	case IRI:
		return fmt.Sprintf("<%s>", entityIDToIRI(string(v)))
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case time.Time:
		return fmt.Sprintf("\"%s\"^^xsd:dateTime", v.UTC().Format(time.RFC3339Nano))
	case int:
		return fmt.Sprintf("\"%d\"^^xsd:integer", v)
	case float64:
		return fmt.Sprintf("\"%s\"^^xsd:decimal", strconv.FormatFloat(v, 'f', -1, 64))
	case bool:
		return fmt.Sprintf("\"%t\"^^xsd:boolean", v)
	default:
		return fmt.Sprintf("\"%s\"", escapeString(fmt.Sprint(v)))
	}
}

// formatObjectNTriples formats an object value for N-Triples output.
func formatObjectNTriples(obj any) string {
	switch v := obj.(type) {
	case IRI:
		return fmt.Sprintf("<%s>", entityIDToIRI(string(v)))
	case string:
		return fmt.Sprintf("\"%s\"", escapeString(v))
	case time.Time:
		return fmt.Sprintf("\"%s\"^^<%s>", v.UTC().Format(time.RFC3339Nano), owl.XSDDateTime)
	case int:
		return fmt.Sprintf("\"%d\"^^<%s>", v, owl.XSDInteger)
	case float64:
		return fmt.Sprintf("\"%s\"^^<%s>", strconv.FormatFloat(v, 'f', -1, 64), owl.XSDDecimal)
	case bool:
		return fmt.Sprintf("\"%t\"^^<%s>", v, owl.XSDBoolean)
	default:
		return fmt.Sprintf("\"%s\"", escapeString(fmt.Sprint(v)))
	}
}

// formatObjectJSONLD converts an object value into its JSON-LD form.
func formatObjectJSONLD(obj any) any {
	switch v := obj.(type) {
	case IRI:
		return map[string]string{"@id": entityIDToIRI(string(v))}
	case time.Time:
		return map[string]string{"@value": v.UTC().Format(time.RFC3339Nano), "@type": "xsd:dateTime"}
	case string, int, float64, bool:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
