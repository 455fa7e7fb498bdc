package rules

import (
	"sort"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
)

// exactCliqueLimit bounds the number of values for which the largest set of
// pairwise different values is computed exactly. Larger sets use a greedy
// lower bound, which can miss a violation but never invents one.
const exactCliqueLimit = 24

func angle(iri string) string { return "<" + iri + ">" }

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

// ownTypes returns the named types asserted for individual alone, ignoring
// its sameAs synonyms, closed under subsumption.
func ownTypes(idx *index.Index, individual string) map[string]bool {
	out := make(map[string]bool)
	for _, ce := range idx.AssertedTypes(individual) {
		for _, part := range flatten(ce) {
			if iri, ok := ontology.NamedClass(part); ok {
				for _, super := range idx.Closure(iri, index.SubClassOf) {
					out[super] = true
				}
			}
		}
	}
	return out
}

// objectValues returns the values of an object property expression.
func objectValues(idx *index.Index, subject string, p ontology.ObjectPropertyExpression) []string {
	if p.Inverse {
		return idx.ObjectSubjects(subject, p.IRI)
	}
	return idx.ObjectValues(subject, p.IRI)
}

// canonicalize maps individuals onto their sameAs representatives and
// returns the distinct representatives sorted.
func canonicalize(idx *index.Index, individuals []string) []string {
	seen := make(map[string]bool, len(individuals))
	out := make([]string, 0, len(individuals))
	for _, ind := range individuals {
		c := idx.Canonical(ind)
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}

// maxDifferent returns the size of the largest subset of values that are
// pairwise known to be different.
func maxDifferent(idx *index.Index, values []string) int {
	if len(values) < 2 {
		return len(values)
	}
	adj := make([][]bool, len(values))
	for i := range values {
		adj[i] = make([]bool, len(values))
	}
	edges := false
	for i := range values {
		for j := i + 1; j < len(values); j++ {
			if idx.IsKnownDifferent(values[i], values[j]) {
				adj[i][j], adj[j][i] = true, true
				edges = true
			}
		}
	}
	if !edges {
		return 1
	}
	if len(values) > exactCliqueLimit {
		return greedyClique(adj)
	}
	best := 0
	var expand func(size int, candidates []int)
	expand = func(size int, candidates []int) {
		if size > best {
			best = size
		}
		for i, v := range candidates {
			if size+len(candidates)-i <= best {
				return
			}
			var next []int
			for _, w := range candidates[i+1:] {
				if adj[v][w] {
					next = append(next, w)
				}
			}
			expand(size+1, next)
		}
	}
	all := make([]int, len(values))
	for i := range all {
		all[i] = i
	}
	expand(0, all)
	return best
}

func greedyClique(adj [][]bool) int {
	order := make([]int, len(adj))
	degree := make([]int, len(adj))
	for i := range adj {
		order[i] = i
		for j := range adj[i] {
			if adj[i][j] {
				degree[i]++
			}
		}
	}
	sort.SliceStable(order, func(a, b int) bool { return degree[order[a]] > degree[order[b]] })

	var clique []int
	for _, v := range order {
		fits := true
		for _, u := range clique {
			if !adj[u][v] {
				fits = false
				break
			}
		}
		if fits {
			clique = append(clique, v)
		}
	}
	return len(clique)
}

// distinctLiterals counts literals with distinct canonical forms.
func distinctLiterals(values []ontology.Literal) int {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		seen[v.String()] = true
	}
	return len(seen)
}

// representatives reduces properties to one member per equivalence set,
// keeping the sorted order of the representatives.
func representatives(idx *index.Index, properties map[string]bool) []string {
	seen := make(map[string]bool)
	var out []string
	for p := range properties {
		rep := idx.Closure(p, index.EquivalentProperty)[0]
		if !seen[rep] {
			seen[rep] = true
			out = append(out, rep)
		}
	}
	sort.Strings(out)
	return out
}

// propertiesInUse collects every property IRI mentioned by a property axiom
// or an assertion.
func propertiesInUse(idx *index.Index) map[string]bool {
	props := make(map[string]bool)
	for _, ax := range idx.Axioms(ontology.AxiomObjectProperty) {
		switch a := ax.(type) {
		case ontology.SubObjectPropertyOf:
			props[a.Sub.IRI] = true
			props[a.Super.IRI] = true
			for _, p := range a.Chain {
				props[p.IRI] = true
			}
		case ontology.EquivalentObjectProperties:
			for _, p := range a.Properties {
				props[p.IRI] = true
			}
		case ontology.DisjointObjectProperties:
			for _, p := range a.Properties {
				props[p.IRI] = true
			}
		case ontology.InverseObjectProperties:
			props[a.First] = true
			props[a.Second] = true
		case ontology.ObjectPropertyDomain:
			props[a.Property] = true
		case ontology.ObjectPropertyRange:
			props[a.Property] = true
		case ontology.ObjectPropertyCharacteristic:
			props[a.Property] = true
		}
	}
	for _, ax := range idx.Axioms(ontology.AxiomDataProperty) {
		switch a := ax.(type) {
		case ontology.SubDataPropertyOf:
			props[a.Sub] = true
			props[a.Super] = true
		case ontology.EquivalentDataProperties:
			for _, p := range a.Properties {
				props[p] = true
			}
		case ontology.DisjointDataProperties:
			for _, p := range a.Properties {
				props[p] = true
			}
		case ontology.DataPropertyDomain:
			props[a.Property] = true
		case ontology.DataPropertyRange:
			props[a.Property] = true
		case ontology.FunctionalDataProperty:
			props[a.Property] = true
		}
	}
	for _, ax := range idx.Axioms(ontology.AxiomAssertion) {
		switch a := ax.(type) {
		case ontology.ObjectPropertyAssertion:
			props[a.Property.IRI] = true
		case ontology.DataPropertyAssertion:
			props[a.Property] = true
		}
	}
	return props
}

// canonicalIndividuals returns the sameAs representatives among all indexed
// individuals, sorted.
func canonicalIndividuals(idx *index.Index) []string {
	var out []string
	for _, ind := range idx.Individuals() {
		if idx.Canonical(ind) == ind {
			out = append(out, ind)
		}
	}
	return out
}

// disjointWith reports a named class among types that is disjoint with
// class, or "" when there is none.
func disjointWith(idx *index.Index, types []string, class string) string {
	if len(types) == 0 {
		return ""
	}
	disjoint := idx.Closure(class, index.DisjointClass)
	if len(disjoint) == 0 {
		return ""
	}
	set := make(map[string]bool, len(disjoint))
	for _, d := range disjoint {
		set[d] = true
	}
	for _, t := range types {
		if set[t] {
			return t
		}
	}
	return ""
}

// contains reports whether the sorted slice holds s.
func contains(sorted []string, s string) bool {
	i := sort.SearchStrings(sorted, s)
	return i < len(sorted) && sorted[i] == s
}
