// Package index builds an immutable, queryable view over an ontology's
// axioms. An Index is constructed once per validation or resolution run and
// answers closure queries (synonyms under equivalence and sameAs, subsumption
// ancestors and descendants, inverses, disjointness) plus indexed lookups of
// assertions by individual.
//
// An Index never changes after New returns and is safe for concurrent use by
// multiple readers.
package index

import (
	"sort"

	"github.com/c360studio/semowl/ontology"
)

// Relation selects the closure computed by Index.Closure.
type Relation int

const (
	// EquivalentClass is the symmetric-transitive closure of EquivalentClasses.
	EquivalentClass Relation = iota
	// SubClassOf is the reflexive-transitive set of superclasses.
	SubClassOf
	// SuperClassOf is the reflexive-transitive set of subclasses.
	SuperClassOf
	// SameIndividual is the symmetric-transitive closure of SameIndividual.
	SameIndividual
	// DifferentIndividual is the set of individuals known to be different.
	DifferentIndividual
	// SubPropertyOf is the reflexive-transitive set of super properties.
	SubPropertyOf
	// SuperPropertyOf is the reflexive-transitive set of sub properties.
	SuperPropertyOf
	// EquivalentProperty is the symmetric-transitive closure of property equivalence.
	EquivalentProperty
	// InverseOf is the set of named properties inverse to the given one.
	InverseOf
	// DisjointClass is the set of named classes disjoint with the given class
	// or one of its superclasses.
	DisjointClass
	// DisjointProperty is the set of properties disjoint with the given
	// property or one of its super properties.
	DisjointProperty
)

var relationNames = map[Relation]string{
	EquivalentClass:     "equivalentClass",
	SubClassOf:          "subClassOf",
	SuperClassOf:        "superClassOf",
	SameIndividual:      "sameIndividual",
	DifferentIndividual: "differentIndividual",
	SubPropertyOf:       "subPropertyOf",
	SuperPropertyOf:     "superPropertyOf",
	EquivalentProperty:  "equivalentProperty",
	InverseOf:           "inverseOf",
	DisjointClass:       "disjointClass",
	DisjointProperty:    "disjointProperty",
}

func (r Relation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return "unknown"
}

// objectEdge is an object property assertion normalized to a named property.
type objectEdge struct {
	property string
	other    string
}

// dataEdge is a data property assertion keyed by subject.
type dataEdge struct {
	property string
	value    ontology.Literal
}

// Index is an immutable view over an ontology.
type Index struct {
	ont *ontology.Ontology

	classes     *partition
	individuals *partition
	properties  *partition

	classSupers map[string]map[string]bool
	classSubs   map[string]map[string]bool
	propSupers  map[string]map[string]bool
	propSubs    map[string]map[string]bool

	inverses         map[string]map[string]bool
	disjointClasses  map[string]map[string]bool
	disjointProps    map[string]map[string]bool
	differentRoots   map[string]map[string]bool
	characteristics  map[string]map[ontology.Characteristic]bool
	functionalData   map[string]bool
	chainSupers      map[string]bool
	classDefinitions map[string][]ontology.ClassExpression

	domains    map[string][]ontology.ClassExpression
	ranges     map[string][]ontology.ClassExpression
	dataRanges map[string][]string

	assertedTypes map[string][]ontology.ClassExpression
	outgoing      map[string][]objectEdge
	incoming      map[string][]objectEdge
	dataValues    map[string][]dataEdge
	individualSet map[string]bool
	sortedInds    []string

	pendingDifferent [][2]string
}

// New indexes the current contents of ont.
func New(ont *ontology.Ontology) *Index {
	idx := &Index{
		ont:              ont,
		classes:          newPartition(),
		individuals:      newPartition(),
		properties:       newPartition(),
		inverses:         make(map[string]map[string]bool),
		disjointClasses:  make(map[string]map[string]bool),
		disjointProps:    make(map[string]map[string]bool),
		differentRoots:   make(map[string]map[string]bool),
		characteristics:  make(map[string]map[ontology.Characteristic]bool),
		functionalData:   make(map[string]bool),
		chainSupers:      make(map[string]bool),
		classDefinitions: make(map[string][]ontology.ClassExpression),
		domains:          make(map[string][]ontology.ClassExpression),
		ranges:           make(map[string][]ontology.ClassExpression),
		dataRanges:       make(map[string][]string),
		assertedTypes:    make(map[string][]ontology.ClassExpression),
		outgoing:         make(map[string][]objectEdge),
		incoming:         make(map[string][]objectEdge),
		dataValues:       make(map[string][]dataEdge),
		individualSet:    make(map[string]bool),
	}

	classEdges := make(map[string]map[string]bool)
	propEdges := make(map[string]map[string]bool)

	idx.indexClassAxioms(classEdges)
	idx.indexPropertyAxioms(propEdges)
	idx.indexAssertions()

	idx.classes.freeze()
	idx.properties.freeze()
	idx.individuals.freeze()

	idx.classSupers, idx.classSubs = closeHierarchy(classEdges, idx.classes)
	idx.propSupers, idx.propSubs = closeHierarchy(propEdges, idx.properties)
	idx.indexDifferent()

	idx.sortedInds = make([]string, 0, len(idx.individualSet))
	for ind := range idx.individualSet {
		idx.sortedInds = append(idx.sortedInds, ind)
	}
	sort.Strings(idx.sortedInds)
	return idx
}

// Ontology returns the indexed ontology.
func (idx *Index) Ontology() *ontology.Ontology { return idx.ont }

// Axioms returns the axioms of one kind.
func (idx *Index) Axioms(kind ontology.AxiomKind) []ontology.Axiom {
	return idx.ont.Axioms(kind)
}

// Individuals returns every individual mentioned by an assertion or
// declaration, sorted.
func (idx *Index) Individuals() []string { return idx.sortedInds }

// Closure returns the closure of iri under rel as a sorted slice.
func (idx *Index) Closure(iri string, rel Relation) []string {
	var set map[string]bool
	switch rel {
	case EquivalentClass:
		return copyStrings(idx.classes.members(iri))
	case SameIndividual:
		return copyStrings(idx.individuals.members(iri))
	case EquivalentProperty:
		return copyStrings(idx.properties.members(iri))
	case SubClassOf:
		set = idx.classSupersOf(iri)
	case SuperClassOf:
		set = idx.classSubsOf(iri)
	case SubPropertyOf:
		set = idx.propSupersOf(iri)
	case SuperPropertyOf:
		set = idx.propSubsOf(iri)
	case InverseOf:
		set = idx.inversesOf(iri)
	case DifferentIndividual:
		set = idx.differentFrom(iri)
	case DisjointClass:
		set = idx.disjointClassesOf(iri)
	case DisjointProperty:
		set = idx.disjointPropertiesOf(iri)
	}
	return sortedKeys(set)
}

func addEdge(m map[string]map[string]bool, from, to string) {
	if m[from] == nil {
		m[from] = make(map[string]bool)
	}
	m[from][to] = true
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// AreSynonyms reports whether a and b denote the same entity: the same
// individual, equivalent classes or equivalent properties.
func (idx *Index) AreSynonyms(a, b string) bool {
	return idx.individuals.same(a, b) || idx.classes.same(a, b) || idx.properties.same(a, b)
}
