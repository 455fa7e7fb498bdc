package index

import (
	"sort"

	"github.com/c360studio/semowl/ontology"
)

func (idx *Index) indexAssertions() {
	for _, iri := range idx.ont.Entities(ontology.KindNamedIndividual) {
		idx.addIndividual(iri)
	}

	var different [][2]string
	for _, ax := range idx.ont.Axioms(ontology.AxiomAssertion) {
		switch a := ax.(type) {
		case ontology.ClassAssertion:
			idx.addIndividual(a.Individual)
			idx.assertedTypes[a.Individual] = append(idx.assertedTypes[a.Individual], a.Class)
		case ontology.ObjectPropertyAssertion:
			s, o := a.Subject, a.Object
			if a.Property.Inverse {
				s, o = o, s
			}
			idx.addIndividual(s)
			idx.addIndividual(o)
			idx.outgoing[s] = append(idx.outgoing[s], objectEdge{property: a.Property.IRI, other: o})
			idx.incoming[o] = append(idx.incoming[o], objectEdge{property: a.Property.IRI, other: s})
		case ontology.DataPropertyAssertion:
			idx.addIndividual(a.Subject)
			idx.dataValues[a.Subject] = append(idx.dataValues[a.Subject], dataEdge{property: a.Property, value: a.Value})
		case ontology.NegativeObjectPropertyAssertion:
			idx.addIndividual(a.Subject)
			idx.addIndividual(a.Object)
		case ontology.NegativeDataPropertyAssertion:
			idx.addIndividual(a.Subject)
		case ontology.SameIndividual:
			for _, ind := range a.Individuals {
				idx.addIndividual(ind)
			}
			idx.individuals.union(a.Individuals...)
		case ontology.DifferentIndividuals:
			for i, x := range a.Individuals {
				idx.addIndividual(x)
				for _, y := range a.Individuals[i+1:] {
					different = append(different, [2]string{x, y})
				}
			}
		}
	}
	idx.pendingDifferent = different
}

func (idx *Index) addIndividual(iri string) {
	idx.individualSet[iri] = true
	idx.individuals.add(iri)
}

// indexDifferent lifts differentFrom pairs onto sameAs roots. It runs after
// the individual partition is frozen.
func (idx *Index) indexDifferent() {
	for _, pair := range idx.pendingDifferent {
		a, b := idx.individuals.root(pair[0]), idx.individuals.root(pair[1])
		addEdge(idx.differentRoots, a, b)
		addEdge(idx.differentRoots, b, a)
	}
	idx.pendingDifferent = nil
}

// AreSameIndividuals reports whether a and b are in the same sameAs set.
func (idx *Index) AreSameIndividuals(a, b string) bool {
	return idx.individuals.same(a, b)
}

// IsKnownDifferent reports whether a and b are asserted different, directly
// or through sameAs synonyms of either.
func (idx *Index) IsKnownDifferent(a, b string) bool {
	return idx.differentRoots[idx.individuals.root(a)][idx.individuals.root(b)]
}

func (idx *Index) differentFrom(iri string) map[string]bool {
	out := make(map[string]bool)
	for root := range idx.differentRoots[idx.individuals.root(iri)] {
		for _, m := range idx.individuals.members(root) {
			out[m] = true
		}
	}
	return out
}

// TypesOf returns the named classes an individual belongs to: the named
// classes asserted for it or any sameAs synonym, named conjuncts of asserted
// intersections, and all of their superclasses. The result is sorted.
func (idx *Index) TypesOf(individual string) []string {
	return sortedKeys(idx.typeSet(individual))
}

func (idx *Index) typeSet(individual string) map[string]bool {
	out := make(map[string]bool)
	for _, same := range idx.individuals.members(individual) {
		for _, ce := range idx.assertedTypes[same] {
			for _, part := range flatten(ce) {
				if iri, ok := ontology.NamedClass(part); ok {
					for super := range idx.classSupersOf(iri) {
						out[super] = true
					}
				}
			}
		}
	}
	return out
}

// IsInstanceOf reports whether class is among TypesOf(individual).
func (idx *Index) IsInstanceOf(individual, class string) bool {
	return idx.typeSet(individual)[class]
}

// TypeExpressionsOf returns every anonymous class expression that applies to
// the individual: asserted ones and those inherited from the definitions of
// its named types. Intersections are flattened. The result is sorted by
// canonical form.
func (idx *Index) TypeExpressionsOf(individual string) []ontology.ClassExpression {
	var out []ontology.ClassExpression
	for _, same := range idx.individuals.members(individual) {
		for _, ce := range idx.assertedTypes[same] {
			for _, part := range flatten(ce) {
				if _, named := ontology.NamedClass(part); !named {
					out = append(out, part)
				}
			}
		}
	}
	for _, class := range idx.TypesOf(individual) {
		out = append(out, idx.classDefinitions[class]...)
	}
	out = dedupExpressions(out)
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// AssertedTypes returns the class expressions asserted directly for the
// individual, in declaration order.
func (idx *Index) AssertedTypes(individual string) []ontology.ClassExpression {
	return idx.assertedTypes[individual]
}

// ObjectValues returns the objects related to subject by property or any of
// its sub properties, following sameAs synonyms of the subject, inverse
// properties, and symmetry. The result is sorted.
func (idx *Index) ObjectValues(subject, property string) []string {
	return sortedKeys(idx.related(subject, property, false))
}

// ObjectSubjects returns the subjects related to object by property. It is
// ObjectValues in the reverse direction.
func (idx *Index) ObjectSubjects(object, property string) []string {
	return sortedKeys(idx.related(object, property, true))
}

func (idx *Index) related(node, property string, reverse bool) map[string]bool {
	forward := idx.propSubsOf(property)
	backward := make(map[string]bool)
	for inv := range idx.inversesOf(property) {
		for sub := range idx.propSubsOf(inv) {
			backward[sub] = true
		}
	}
	if idx.HasCharacteristic(property, ontology.Symmetric) {
		for p := range forward {
			backward[p] = true
		}
	}

	out, in := idx.outgoing, idx.incoming
	if reverse {
		out, in = in, out
	}

	result := make(map[string]bool)
	for _, same := range idx.individuals.members(node) {
		for _, e := range out[same] {
			if forward[e.property] {
				result[e.other] = true
			}
		}
		for _, e := range in[same] {
			if backward[e.property] {
				result[e.other] = true
			}
		}
	}
	return result
}

// DataValues returns the distinct literals asserted for subject through
// property or any of its sub properties, following sameAs synonyms. The
// result is sorted by canonical form.
func (idx *Index) DataValues(subject, property string) []ontology.Literal {
	props := idx.propSubsOf(property)
	seen := make(map[string]bool)
	var out []ontology.Literal
	for _, same := range idx.individuals.members(subject) {
		for _, e := range idx.dataValues[same] {
			if !props[e.property] {
				continue
			}
			key := e.value.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, e.value)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Canonical returns the representative of the sameAs set of individual: its
// lexically smallest member.
func (idx *Index) Canonical(individual string) string {
	return idx.individuals.root(individual)
}
