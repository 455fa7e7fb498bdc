package index

import "github.com/c360studio/semowl/ontology"

func (idx *Index) indexClassAxioms(edges map[string]map[string]bool) {
	for _, ax := range idx.ont.Axioms(ontology.AxiomClass) {
		switch a := ax.(type) {
		case ontology.SubClassOf:
			for _, sub := range unionMembers(a.Sub) {
				idx.classes.add(sub)
				idx.subsume(edges, sub, a.Super)
			}
		case ontology.EquivalentClasses:
			var named []string
			for _, ce := range a.Classes {
				if iri, ok := ontology.NamedClass(ce); ok {
					named = append(named, iri)
				}
			}
			idx.classes.union(named...)
			for _, n := range named {
				for _, ce := range a.Classes {
					if _, ok := ontology.NamedClass(ce); ok {
						continue
					}
					idx.subsume(edges, n, ce)
					// A union equivalent to n subsumes each named disjunct.
					for _, member := range unionMembers(ce) {
						addEdge(edges, member, n)
					}
				}
			}
		case ontology.DisjointClasses:
			idx.addDisjointClasses(namedOnly(a.Classes))
		case ontology.DisjointUnion:
			idx.classes.add(a.Class)
			members := namedOnly(a.Classes)
			for _, m := range members {
				idx.classes.add(m)
				addEdge(edges, m, a.Class)
			}
			idx.addDisjointClasses(members)
		}
	}
}

// subsume records sub ⊑ super. Named conjuncts become hierarchy edges,
// complements become disjointness, and anything else is kept as part of the
// definition of sub.
func (idx *Index) subsume(edges map[string]map[string]bool, sub string, super ontology.ClassExpression) {
	for _, part := range flatten(super) {
		switch p := part.(type) {
		case ontology.Class:
			idx.classes.add(p.IRI)
			addEdge(edges, sub, p.IRI)
		case ontology.ObjectComplementOf:
			if iri, ok := ontology.NamedClass(p.Operand); ok {
				idx.addDisjointClasses([]string{sub, iri})
			}
			idx.classDefinitions[sub] = append(idx.classDefinitions[sub], part)
		default:
			idx.classDefinitions[sub] = append(idx.classDefinitions[sub], part)
		}
	}
}

func (idx *Index) addDisjointClasses(classes []string) {
	for i := range classes {
		for j := range classes {
			if i != j {
				addEdge(idx.disjointClasses, classes[i], classes[j])
			}
		}
	}
}

func (idx *Index) indexPropertyAxioms(edges map[string]map[string]bool) {
	for _, ax := range idx.ont.Axioms(ontology.AxiomObjectProperty) {
		switch a := ax.(type) {
		case ontology.SubObjectPropertyOf:
			idx.properties.add(a.Super.IRI)
			if len(a.Chain) > 0 {
				idx.chainSupers[a.Super.IRI] = true
				continue
			}
			idx.properties.add(a.Sub.IRI)
			if a.Sub.Inverse == a.Super.Inverse {
				addEdge(edges, a.Sub.IRI, a.Super.IRI)
			}
		case ontology.EquivalentObjectProperties:
			var plain, inverted []string
			for _, p := range a.Properties {
				if p.Inverse {
					inverted = append(inverted, p.IRI)
				} else {
					plain = append(plain, p.IRI)
				}
			}
			idx.properties.union(plain...)
			idx.properties.union(inverted...)
			for _, p := range plain {
				for _, q := range inverted {
					idx.addInverse(p, q)
				}
			}
		case ontology.DisjointObjectProperties:
			var named []string
			for _, p := range a.Properties {
				if !p.Inverse {
					named = append(named, p.IRI)
				}
			}
			idx.addDisjointProperties(named)
		case ontology.InverseObjectProperties:
			idx.addInverse(a.First, a.Second)
		case ontology.ObjectPropertyDomain:
			idx.properties.add(a.Property)
			idx.domains[a.Property] = append(idx.domains[a.Property], a.Domain)
		case ontology.ObjectPropertyRange:
			idx.properties.add(a.Property)
			idx.ranges[a.Property] = append(idx.ranges[a.Property], a.Range)
		case ontology.ObjectPropertyCharacteristic:
			idx.properties.add(a.Property)
			if idx.characteristics[a.Property] == nil {
				idx.characteristics[a.Property] = make(map[ontology.Characteristic]bool)
			}
			idx.characteristics[a.Property][a.Characteristic] = true
		}
	}

	for _, ax := range idx.ont.Axioms(ontology.AxiomDataProperty) {
		switch a := ax.(type) {
		case ontology.SubDataPropertyOf:
			idx.properties.add(a.Sub)
			idx.properties.add(a.Super)
			addEdge(edges, a.Sub, a.Super)
		case ontology.EquivalentDataProperties:
			idx.properties.union(a.Properties...)
		case ontology.DisjointDataProperties:
			idx.addDisjointProperties(a.Properties)
		case ontology.DataPropertyDomain:
			idx.domains[a.Property] = append(idx.domains[a.Property], a.Domain)
		case ontology.DataPropertyRange:
			idx.dataRanges[a.Property] = append(idx.dataRanges[a.Property], a.Datatype)
		case ontology.FunctionalDataProperty:
			idx.functionalData[a.Property] = true
		}
	}
}

func (idx *Index) addInverse(p, q string) {
	idx.properties.add(p)
	idx.properties.add(q)
	addEdge(idx.inverses, p, q)
	addEdge(idx.inverses, q, p)
}

func (idx *Index) addDisjointProperties(props []string) {
	for i := range props {
		for j := range props {
			if i != j {
				addEdge(idx.disjointProps, props[i], props[j])
			}
		}
	}
}

// hierarchy holds reflexive-transitive ancestor sets keyed by partition root.
type hierarchy map[string]map[string]bool

// closeHierarchy computes ancestor and descendant sets for every node of
// edges, collapsing synonyms of part into a single node.
func closeHierarchy(edges map[string]map[string]bool, part *partition) (hierarchy, hierarchy) {
	rootEdges := make(map[string]map[string]bool)
	nodes := make(map[string]bool)
	for from, tos := range edges {
		nodes[part.root(from)] = true
		for to := range tos {
			nodes[part.root(to)] = true
			if part.root(from) != part.root(to) {
				addEdge(rootEdges, part.root(from), part.root(to))
			}
		}
	}
	for _, members := range part.groups {
		nodes[part.root(members[0])] = true
	}

	supers := make(hierarchy, len(nodes))
	subs := make(hierarchy, len(nodes))
	for node := range nodes {
		reached := map[string]bool{node: true}
		queue := []string{node}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for next := range rootEdges[cur] {
				if !reached[next] {
					reached[next] = true
					queue = append(queue, next)
				}
			}
		}
		set := make(map[string]bool)
		for r := range reached {
			for _, m := range part.members(r) {
				set[m] = true
			}
			for _, m := range part.members(node) {
				addEdge(subs, r, m)
			}
		}
		supers[node] = set
	}
	return supers, subs
}

func lookupHierarchy(h hierarchy, part *partition, iri string) map[string]bool {
	if set, ok := h[part.root(iri)]; ok {
		return set
	}
	return map[string]bool{iri: true}
}

func (idx *Index) classSupersOf(iri string) map[string]bool {
	return lookupHierarchy(idx.classSupers, idx.classes, iri)
}

func (idx *Index) classSubsOf(iri string) map[string]bool {
	return lookupHierarchy(idx.classSubs, idx.classes, iri)
}

func (idx *Index) propSupersOf(iri string) map[string]bool {
	return lookupHierarchy(idx.propSupers, idx.properties, iri)
}

func (idx *Index) propSubsOf(iri string) map[string]bool {
	return lookupHierarchy(idx.propSubs, idx.properties, iri)
}

func (idx *Index) inversesOf(iri string) map[string]bool {
	out := make(map[string]bool)
	for _, eq := range idx.properties.members(iri) {
		for inv := range idx.inverses[eq] {
			for _, m := range idx.properties.members(inv) {
				out[m] = true
			}
		}
	}
	return out
}

func (idx *Index) disjointClassesOf(iri string) map[string]bool {
	out := make(map[string]bool)
	for super := range idx.classSupersOf(iri) {
		for other := range idx.disjointClasses[super] {
			for sub := range idx.classSubsOf(other) {
				out[sub] = true
			}
		}
	}
	return out
}

func (idx *Index) disjointPropertiesOf(iri string) map[string]bool {
	out := make(map[string]bool)
	for super := range idx.propSupersOf(iri) {
		for other := range idx.disjointProps[super] {
			for sub := range idx.propSubsOf(other) {
				out[sub] = true
			}
		}
	}
	return out
}

// IsSubClassOf reports whether sub is subsumed by super, reflexively.
func (idx *Index) IsSubClassOf(sub, super string) bool {
	return idx.classSupersOf(sub)[super]
}

// IsSubPropertyOf reports whether sub is subsumed by super, reflexively.
func (idx *Index) IsSubPropertyOf(sub, super string) bool {
	return idx.propSupersOf(sub)[super]
}

// AreEquivalentClasses reports whether a and b are in the same equivalence set.
func (idx *Index) AreEquivalentClasses(a, b string) bool {
	return idx.classes.same(a, b)
}

// AreEquivalentProperties reports whether a and b are in the same equivalence set.
func (idx *Index) AreEquivalentProperties(a, b string) bool {
	return idx.properties.same(a, b)
}

// AreDisjointClasses reports whether some superclass of a is declared
// disjoint with some superclass of b.
func (idx *Index) AreDisjointClasses(a, b string) bool {
	supersB := idx.classSupersOf(b)
	for super := range idx.classSupersOf(a) {
		for other := range idx.disjointClasses[super] {
			if supersB[other] {
				return true
			}
		}
	}
	return false
}

// AreDisjointProperties reports whether some super property of p is declared
// disjoint with some super property of q.
func (idx *Index) AreDisjointProperties(p, q string) bool {
	supersQ := idx.propSupersOf(q)
	for super := range idx.propSupersOf(p) {
		for other := range idx.disjointProps[super] {
			if supersQ[other] {
				return true
			}
		}
	}
	return false
}

// DisjointClassPairs returns each declared disjoint pair of named classes
// once, ordered.
func (idx *Index) DisjointClassPairs() [][2]string {
	return orderedPairs(idx.disjointClasses)
}

// DisjointPropertyPairs returns each declared disjoint pair of properties
// once, ordered.
func (idx *Index) DisjointPropertyPairs() [][2]string {
	return orderedPairs(idx.disjointProps)
}

func orderedPairs(m map[string]map[string]bool) [][2]string {
	var out [][2]string
	for _, a := range sortedKeys(keySet(m)) {
		for _, b := range sortedKeys(m[a]) {
			if a < b {
				out = append(out, [2]string{a, b})
			}
		}
	}
	return out
}

func keySet[V any](m map[string]V) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

// HasCharacteristic reports whether p, one of its equivalents or, where the
// characteristic carries over, one of its inverses has the characteristic.
func (idx *Index) HasCharacteristic(p string, c ontology.Characteristic) bool {
	for _, eq := range idx.properties.members(p) {
		if idx.characteristics[eq][c] {
			return true
		}
		if c == ontology.Functional && idx.functionalData[eq] {
			return true
		}
	}
	mirrored := c
	switch c {
	case ontology.Functional:
		mirrored = ontology.InverseFunctional
	case ontology.InverseFunctional:
		mirrored = ontology.Functional
	}
	for inv := range idx.inversesOf(p) {
		if idx.characteristics[inv][mirrored] {
			return true
		}
	}
	return false
}

// IsNonSimple reports whether p is transitive or the super property of a
// chain, directly or through one of its sub properties or inverses.
func (idx *Index) IsNonSimple(p string) bool {
	candidates := []string{p}
	for inv := range idx.inversesOf(p) {
		candidates = append(candidates, inv)
	}
	for _, c := range candidates {
		for sub := range idx.propSubsOf(c) {
			if idx.characteristics[sub][ontology.Transitive] || idx.chainSupers[sub] {
				return true
			}
		}
	}
	return false
}

// DomainsOf returns the domain expressions that apply to p: its own, those
// of its super properties, and the ranges of its inverses.
func (idx *Index) DomainsOf(p string) []ontology.ClassExpression {
	var out []ontology.ClassExpression
	for _, super := range sortedKeys(idx.propSupersOf(p)) {
		out = append(out, idx.domains[super]...)
		for _, inv := range sortedKeys(idx.inversesOf(super)) {
			out = append(out, idx.ranges[inv]...)
		}
	}
	return dedupExpressions(out)
}

// RangesOf returns the range expressions that apply to the object property p.
func (idx *Index) RangesOf(p string) []ontology.ClassExpression {
	var out []ontology.ClassExpression
	for _, super := range sortedKeys(idx.propSupersOf(p)) {
		out = append(out, idx.ranges[super]...)
		for _, inv := range sortedKeys(idx.inversesOf(super)) {
			out = append(out, idx.domains[inv]...)
		}
	}
	return dedupExpressions(out)
}

// DataRangesOf returns the datatypes that apply to the data property p.
func (idx *Index) DataRangesOf(p string) []string {
	set := make(map[string]bool)
	for super := range idx.propSupersOf(p) {
		for _, dt := range idx.dataRanges[super] {
			set[dt] = true
		}
	}
	return sortedKeys(set)
}

// flatten splits nested intersections into their conjuncts.
func flatten(ce ontology.ClassExpression) []ontology.ClassExpression {
	if inter, ok := ce.(ontology.ObjectIntersectionOf); ok {
		var out []ontology.ClassExpression
		for _, op := range inter.Operands {
			out = append(out, flatten(op)...)
		}
		return out
	}
	return []ontology.ClassExpression{ce}
}

// unionMembers returns the named disjuncts of a union, or the class itself
// when ce is named.
func unionMembers(ce ontology.ClassExpression) []string {
	switch c := ce.(type) {
	case ontology.Class:
		return []string{c.IRI}
	case ontology.ObjectUnionOf:
		var out []string
		for _, op := range c.Operands {
			out = append(out, unionMembers(op)...)
		}
		return out
	}
	return nil
}

func namedOnly(exprs []ontology.ClassExpression) []string {
	var out []string
	for _, ce := range exprs {
		if iri, ok := ontology.NamedClass(ce); ok {
			out = append(out, iri)
		}
	}
	return out
}

func dedupExpressions(exprs []ontology.ClassExpression) []ontology.ClassExpression {
	seen := make(map[string]bool, len(exprs))
	var out []ontology.ClassExpression
	for _, ce := range exprs {
		key := ce.String()
		if !seen[key] {
			seen[key] = true
			out = append(out, ce)
		}
	}
	return out
}
