package ontology

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c360studio/semowl/vocabulary/owl"
)

// Triple is a single RDF statement. Object holds an IRI or blank node label;
// for literal-valued statements Object is empty and Value is set.
type Triple struct {
	Subject   string
	Predicate string
	Object    string
	Value     *Literal
}

// IsLiteral reports whether the triple's object is a literal.
func (t Triple) IsLiteral() bool { return t.Value != nil }

func (t Triple) String() string {
	if t.Value != nil {
		return fmt.Sprintf("<%s> <%s> %s", t.Subject, t.Predicate, t.Value)
	}
	return fmt.Sprintf("<%s> <%s> <%s>", t.Subject, t.Predicate, t.Object)
}

// Ontology is an append-only store of declarations and axioms. Axioms are
// immutable values; declaring the same axiom twice is a no-op.
//
// Ontology is safe for concurrent use, but validators and resolvers assume the
// ontology does not change for the duration of a single call.
type Ontology struct {
	iri string

	mu           sync.RWMutex
	axioms       map[AxiomKind][]Axiom
	seen         map[string]struct{}
	declarations map[string][]EntityKind
	declOrder    []Entity

	triples     []Triple
	bySubject   map[string][]int
	byPredicate map[string][]int
	byObject    map[string][]int
}

// New creates an empty ontology identified by iri.
func New(iri string) *Ontology {
	return &Ontology{
		iri:          iri,
		axioms:       make(map[AxiomKind][]Axiom),
		seen:         make(map[string]struct{}),
		declarations: make(map[string][]EntityKind),
		bySubject:    make(map[string][]int),
		byPredicate:  make(map[string][]int),
		byObject:     make(map[string][]int),
	}
}

// IRI returns the ontology IRI.
func (o *Ontology) IRI() string { return o.iri }

// DeclareEntity declares an entity of the given kind.
func (o *Ontology) DeclareEntity(kind EntityKind, iri string) error {
	return o.DeclareAxiom(Declaration{Entity: Entity{Kind: kind, IRI: iri}})
}

// DeclareAxiom appends an axiom to the ontology.
func (o *Ontology) DeclareAxiom(ax Axiom) error {
	if ax == nil {
		return ErrNilAxiom
	}
	if d, ok := ax.(Declaration); ok && d.Entity.IRI == "" {
		return fmt.Errorf("declare %s: %w", d.Entity.Kind, ErrEmptyIRI)
	}

	key := ax.String()

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, dup := o.seen[key]; dup {
		return nil
	}
	o.seen[key] = struct{}{}
	o.axioms[ax.Kind()] = append(o.axioms[ax.Kind()], ax)

	if d, ok := ax.(Declaration); ok {
		o.declarations[d.Entity.IRI] = append(o.declarations[d.Entity.IRI], d.Entity.Kind)
		o.declOrder = append(o.declOrder, d.Entity)
	}
	for _, t := range triplesOf(ax) {
		o.addTripleLocked(t)
	}
	return nil
}

// Add declares each axiom in turn and stops at the first failure.
func (o *Ontology) Add(axioms ...Axiom) error {
	for _, ax := range axioms {
		if err := o.DeclareAxiom(ax); err != nil {
			return err
		}
	}
	return nil
}

// AddTriple stores a raw RDF statement that no axiom represents, typically
// the rdf:first/rdf:rest structure of a collection.
func (o *Ontology) AddTriple(t Triple) error {
	if t.Subject == "" || t.Predicate == "" || (t.Object == "" && t.Value == nil) {
		return fmt.Errorf("add triple %s: %w", t, ErrEmptyIRI)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	key := "triple:" + t.String()
	if _, dup := o.seen[key]; dup {
		return nil
	}
	o.seen[key] = struct{}{}
	o.addTripleLocked(t)
	return nil
}

func (o *Ontology) addTripleLocked(t Triple) {
	i := len(o.triples)
	o.triples = append(o.triples, t)
	o.bySubject[t.Subject] = append(o.bySubject[t.Subject], i)
	o.byPredicate[t.Predicate] = append(o.byPredicate[t.Predicate], i)
	if t.Object != "" {
		o.byObject[t.Object] = append(o.byObject[t.Object], i)
	}
}

// Axioms returns the axioms of one kind in declaration order.
func (o *Ontology) Axioms(kind AxiomKind) []Axiom {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]Axiom, len(o.axioms[kind]))
	copy(out, o.axioms[kind])
	return out
}

// AllAxioms returns every axiom grouped by kind, in AxiomKinds order.
func (o *Ontology) AllAxioms() []Axiom {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var out []Axiom
	for _, kind := range AxiomKinds {
		out = append(out, o.axioms[kind]...)
	}
	return out
}

// AxiomCount returns the number of stored axioms.
func (o *Ontology) AxiomCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	n := 0
	for _, axioms := range o.axioms {
		n += len(axioms)
	}
	return n
}

// AxiomsOf returns the axioms of concrete type T in declaration order.
func AxiomsOf[T Axiom](o *Ontology) []T {
	var zero T
	var out []T
	for _, ax := range o.Axioms(zero.Kind()) {
		if typed, ok := ax.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

// Declarations returns all declared entities in declaration order.
func (o *Ontology) Declarations() []Entity {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]Entity, len(o.declOrder))
	copy(out, o.declOrder)
	return out
}

// IsDeclared reports whether iri has been declared with any kind.
func (o *Ontology) IsDeclared(iri string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.declarations[iri]) > 0
}

// IsDeclaredAs reports whether iri has been declared with the given kind.
func (o *Ontology) IsDeclaredAs(iri string, kind EntityKind) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	for _, k := range o.declarations[iri] {
		if k == kind {
			return true
		}
	}
	return false
}

// DeclaredKinds returns the kinds iri was declared with, sorted.
func (o *Ontology) DeclaredKinds(iri string) []EntityKind {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]EntityKind, len(o.declarations[iri]))
	copy(out, o.declarations[iri])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Entities returns the IRIs declared with the given kind in declaration order.
func (o *Ontology) Entities(kind EntityKind) []string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	var out []string
	for _, e := range o.declOrder {
		if e.Kind == kind {
			out = append(out, e.IRI)
		}
	}
	return out
}

// Match returns the triples matching the pattern in insertion order. An empty
// subject, predicate or object acts as a wildcard. A non-empty object never
// matches literal-valued triples.
func (o *Ontology) Match(subject, predicate, object string) []Triple {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var candidates []int
	switch {
	case subject != "":
		candidates = o.bySubject[subject]
	case object != "":
		candidates = o.byObject[object]
	case predicate != "":
		candidates = o.byPredicate[predicate]
	default:
		out := make([]Triple, len(o.triples))
		copy(out, o.triples)
		return out
	}

	var out []Triple
	for _, i := range candidates {
		t := o.triples[i]
		if subject != "" && t.Subject != subject {
			continue
		}
		if predicate != "" && t.Predicate != predicate {
			continue
		}
		if object != "" && t.Object != object {
			continue
		}
		out = append(out, t)
	}
	return out
}

// List returns the members of the RDF collection starting at head by
// following rdf:first and rdf:rest until rdf:nil.
func (o *Ontology) List(head string) ([]string, error) {
	var items []string
	visited := make(map[string]bool)
	for node := head; node != owl.RDFNil; {
		if node == "" || visited[node] {
			return nil, fmt.Errorf("list %s: %w", head, ErrMalformedList)
		}
		visited[node] = true

		first := o.Match(node, owl.RDFFirst, "")
		rest := o.Match(node, owl.RDFRest, "")
		if len(first) != 1 || len(rest) != 1 {
			return nil, fmt.Errorf("list %s at node %s: %w", head, node, ErrMalformedList)
		}
		if first[0].IsLiteral() {
			items = append(items, first[0].Value.Value)
		} else {
			items = append(items, first[0].Object)
		}
		node = rest[0].Object
	}
	return items, nil
}

// triplesOf renders the assertion-level content of an axiom as RDF
// statements. Object property assertions on inverse expressions are stored
// with subject and object swapped.
func triplesOf(ax Axiom) []Triple {
	switch a := ax.(type) {
	case ClassAssertion:
		if iri, ok := NamedClass(a.Class); ok {
			return []Triple{{Subject: a.Individual, Predicate: owl.RDFType, Object: iri}}
		}
	case ObjectPropertyAssertion:
		if a.Property.Inverse {
			return []Triple{{Subject: a.Object, Predicate: a.Property.IRI, Object: a.Subject}}
		}
		return []Triple{{Subject: a.Subject, Predicate: a.Property.IRI, Object: a.Object}}
	case DataPropertyAssertion:
		v := a.Value
		return []Triple{{Subject: a.Subject, Predicate: a.Property, Value: &v}}
	case AnnotationAssertion:
		if a.ValueIRI != "" {
			return []Triple{{Subject: a.Subject, Predicate: a.Property, Object: a.ValueIRI}}
		}
		v := a.Value
		return []Triple{{Subject: a.Subject, Predicate: a.Property, Value: &v}}
	case SameIndividual:
		return pairwise(a.Individuals, owl.SameAs)
	case DifferentIndividuals:
		return pairwise(a.Individuals, owl.DifferentFrom)
	case SubClassOf:
		sub, ok1 := NamedClass(a.Sub)
		super, ok2 := NamedClass(a.Super)
		if ok1 && ok2 {
			return []Triple{{Subject: sub, Predicate: owl.RDFSSubClassOf, Object: super}}
		}
	case SubObjectPropertyOf:
		if len(a.Chain) == 0 && !a.Sub.Inverse && !a.Super.Inverse {
			return []Triple{{Subject: a.Sub.IRI, Predicate: owl.RDFSSubPropertyOf, Object: a.Super.IRI}}
		}
	case SubDataPropertyOf:
		return []Triple{{Subject: a.Sub, Predicate: owl.RDFSSubPropertyOf, Object: a.Super}}
	}
	return nil
}

func pairwise(individuals []string, predicate string) []Triple {
	var out []Triple
	for i := 0; i < len(individuals); i++ {
		for j := i + 1; j < len(individuals); j++ {
			out = append(out, Triple{Subject: individuals[i], Predicate: predicate, Object: individuals[j]})
		}
	}
	return out
}
