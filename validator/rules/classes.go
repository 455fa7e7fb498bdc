package rules

import (
	"fmt"
	"sort"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
	"github.com/c360studio/semowl/vocabulary/owl"
)

func checkClassType(idx *index.Index) []Finding {
	var findings []Finding
	pairs := idx.DisjointClassPairs()
	for _, ind := range canonicalIndividuals(idx) {
		types := idx.TypesOf(ind)
		for _, pair := range pairs {
			if contains(types, pair[0]) && contains(types, pair[1]) {
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Individual %s is an instance of disjoint classes %s and %s",
						angle(ind), angle(pair[0]), angle(pair[1])),
					Suggestion: "Remove one of the class assertions or the disjointness axiom",
				})
			}
		}
		findings = append(findings, complementClashes(idx, ind, types)...)
		for _, ce := range idx.TypeExpressionsOf(ind) {
			if f, ok := cardinalityViolation(idx, ind, ce); ok {
				findings = append(findings, f)
			}
		}
	}
	return findings
}

// complementClashes reports asserted complements of classes the individual
// is an instance of. Complements inherited from class definitions are
// disjointness and are reported through the disjoint pairs.
func complementClashes(idx *index.Index, ind string, types []string) []Finding {
	var findings []Finding
	seen := make(map[string]bool)
	for _, same := range idx.Closure(ind, index.SameIndividual) {
		for _, ce := range idx.AssertedTypes(same) {
			for _, part := range flatten(ce) {
				comp, ok := part.(ontology.ObjectComplementOf)
				if !ok {
					continue
				}
				class, named := ontology.NamedClass(comp.Operand)
				if !named || !contains(types, class) || seen[class] {
					continue
				}
				seen[class] = true
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Individual %s is an instance of both %s and its complement",
						angle(ind), angle(class)),
					Suggestion: "Remove the class assertion or the complement assertion",
				})
			}
		}
	}
	return findings
}

// cardinalityViolation checks the max side of a cardinality restriction.
// Min cardinality is never validated: missing values are not a violation
// under the open world assumption.
func cardinalityViolation(idx *index.Index, ind string, ce ontology.ClassExpression) (Finding, bool) {
	switch c := ce.(type) {
	case ontology.ObjectCardinality:
		if c.Kind == ontology.CardinalityMin {
			return Finding{}, false
		}
		values := canonicalize(idx, objectValues(idx, ind, c.Property))
		if filler, named := fillerClass(c.Filler); named && filler != owl.Thing {
			kept := values[:0:0]
			for _, v := range values {
				if idx.IsInstanceOf(v, filler) {
					kept = append(kept, v)
				}
			}
			values = kept
		} else if c.Filler != nil && !named {
			return Finding{}, false
		}
		if len(values) <= c.N {
			return Finding{}, false
		}
		if n := maxDifferent(idx, values); n > c.N {
			return Finding{
				Description: fmt.Sprintf("Individual %s has %d distinct values for %s, violating %s",
					angle(ind), n, c.Property, c),
				Suggestion: "Remove values or assert them to be the same individual",
			}, true
		}
	case ontology.DataCardinality:
		if c.Kind == ontology.CardinalityMin {
			return Finding{}, false
		}
		values := idx.DataValues(ind, c.Property)
		if c.Datatype != "" {
			kept := values[:0:0]
			for _, v := range values {
				if owl.IsCompatibleDatatype(v.EffectiveDatatype(), v.Value, c.Datatype) {
					kept = append(kept, v)
				}
			}
			values = kept
		}
		if n := distinctLiterals(values); n > c.N {
			return Finding{
				Description: fmt.Sprintf("Individual %s has %d distinct literals for %s, violating %s",
					angle(ind), n, angle(c.Property), c),
				Suggestion: "Remove the surplus literal values",
			}, true
		}
	}
	return Finding{}, false
}

// fillerClass returns the named filler of a qualified restriction. An
// unqualified restriction counts as owl:Thing.
func fillerClass(filler ontology.ClassExpression) (string, bool) {
	if filler == nil {
		return owl.Thing, true
	}
	return ontology.NamedClass(filler)
}

func checkDisjointClasses(idx *index.Index) []Finding {
	var findings []Finding
	seen := make(map[[2]string]bool)
	check := func(members []string) {
		for i, a := range members {
			for _, b := range members[i+1:] {
				key := [2]string{a, b}
				if b < a {
					key = [2]string{b, a}
				}
				if seen[key] {
					continue
				}
				var relation string
				switch {
				case a == b || idx.AreEquivalentClasses(a, b):
					relation = "equivalent"
				case idx.IsSubClassOf(a, b):
					relation = angle(a) + " is a subclass of " + angle(b)
				case idx.IsSubClassOf(b, a):
					relation = angle(b) + " is a subclass of " + angle(a)
				default:
					continue
				}
				seen[key] = true
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Classes %s and %s are declared disjoint but %s",
						angle(key[0]), angle(key[1]), relation),
					Suggestion: "Remove the disjointness or the subsumption between the classes",
				})
			}
		}
	}
	for _, ax := range idx.Axioms(ontology.AxiomClass) {
		switch a := ax.(type) {
		case ontology.DisjointClasses:
			check(namedClasses(a.Classes))
		case ontology.DisjointUnion:
			check(namedClasses(a.Classes))
		}
	}
	return findings
}

func namedClasses(exprs []ontology.ClassExpression) []string {
	var out []string
	for _, ce := range exprs {
		if iri, ok := ontology.NamedClass(ce); ok {
			out = append(out, iri)
		}
	}
	return out
}

func checkEquivalentClasses(idx *index.Index) []Finding {
	var findings []Finding
	for _, ax := range ontology.AxiomsOf[ontology.EquivalentClasses](idx.Ontology()) {
		named := namedClasses(ax.Classes)
		for _, ce := range ax.Classes {
			comp, ok := ce.(ontology.ObjectComplementOf)
			if !ok {
				continue
			}
			operand, ok := ontology.NamedClass(comp.Operand)
			if !ok {
				continue
			}
			for _, n := range named {
				if idx.AreEquivalentClasses(n, operand) {
					findings = append(findings, Finding{
						Description: fmt.Sprintf("Class %s is equivalent to the complement of its synonym %s",
							angle(n), angle(operand)),
						Suggestion: "Remove the equivalence with the complement",
					})
				}
			}
		}
	}
	return findings
}

func checkClassKey(idx *index.Index) []Finding {
	var findings []Finding
	for _, key := range ontology.AxiomsOf[ontology.HasKey](idx.Ontology()) {
		if len(key.ObjectProperties)+len(key.DataProperties) == 0 {
			continue
		}
		groups := make(map[string][]string)
		for _, ind := range canonicalIndividuals(idx) {
			if !instanceOfExpression(idx, ind, key.Class) {
				continue
			}
			for _, tuple := range keyTuples(idx, ind, key) {
				groups[tuple] = append(groups[tuple], ind)
			}
		}

		tuples := make([]string, 0, len(groups))
		for t := range groups {
			tuples = append(tuples, t)
		}
		sort.Strings(tuples)

		reported := make(map[[2]string]bool)
		for _, t := range tuples {
			members := groups[t]
			for i, a := range members {
				for _, b := range members[i+1:] {
					pair := [2]string{a, b}
					if reported[pair] || !idx.IsKnownDifferent(a, b) {
						continue
					}
					reported[pair] = true
					findings = append(findings, Finding{
						Description: fmt.Sprintf("Individuals %s and %s share the key of %s but are asserted different",
							angle(a), angle(b), key.Class),
						Suggestion: "Change a key value or remove the differentFrom assertion",
					})
				}
			}
		}
	}
	return findings
}

// keyTuples returns every combination of key values of ind. An individual
// missing any key value has no tuples and never takes part in a clash.
func keyTuples(idx *index.Index, ind string, key ontology.HasKey) []string {
	var sets [][]string
	for _, p := range key.ObjectProperties {
		values := canonicalize(idx, objectValues(idx, ind, p))
		if len(values) == 0 {
			return nil
		}
		sets = append(sets, values)
	}
	for _, p := range key.DataProperties {
		literals := idx.DataValues(ind, p)
		if len(literals) == 0 {
			return nil
		}
		values := make([]string, len(literals))
		for i, l := range literals {
			values[i] = l.String()
		}
		sets = append(sets, values)
	}

	tuples := []string{""}
	for i, set := range sets {
		next := make([]string, 0, len(tuples)*len(set))
		for _, prefix := range tuples {
			for _, v := range set {
				if i == 0 {
					next = append(next, v)
				} else {
					next = append(next, prefix+"\x00"+v)
				}
			}
		}
		tuples = next
	}
	return tuples
}

// instanceOfExpression reports whether ind is an instance of a named class
// or carries the given anonymous expression among its types.
func instanceOfExpression(idx *index.Index, ind string, ce ontology.ClassExpression) bool {
	if iri, ok := ontology.NamedClass(ce); ok {
		return iri == owl.Thing || idx.IsInstanceOf(ind, iri)
	}
	want := ce.String()
	for _, t := range idx.TypeExpressionsOf(ind) {
		if t.String() == want {
			return true
		}
	}
	return false
}

func checkClassEnumeration(idx *index.Index) []Finding {
	var findings []Finding
	for _, ind := range canonicalIndividuals(idx) {
		for _, ce := range idx.TypeExpressionsOf(ind) {
			oneOf, ok := ce.(ontology.ObjectOneOf)
			if !ok || len(oneOf.Individuals) == 0 {
				continue
			}
			excluded := true
			for _, member := range oneOf.Individuals {
				if !idx.IsKnownDifferent(ind, member) {
					excluded = false
					break
				}
			}
			if excluded {
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Individual %s is an instance of %s but is different from every member",
						angle(ind), oneOf),
					Suggestion: "Add the individual to the enumeration or remove its differentFrom assertions",
				})
			}
		}
	}
	return findings
}

type negativeObject struct {
	property string
	object   string
}

func checkHasValue(idx *index.Index) []Finding {
	negObjects := make(map[string][]negativeObject)
	negData := make(map[string][]ontology.NegativeDataPropertyAssertion)
	for _, ax := range idx.Axioms(ontology.AxiomAssertion) {
		switch a := ax.(type) {
		case ontology.NegativeObjectPropertyAssertion:
			s, o := a.Subject, a.Object
			if a.Property.Inverse {
				s, o = o, s
			}
			c := idx.Canonical(s)
			negObjects[c] = append(negObjects[c], negativeObject{property: a.Property.IRI, object: o})
		case ontology.NegativeDataPropertyAssertion:
			c := idx.Canonical(a.Subject)
			negData[c] = append(negData[c], a)
		}
	}
	if len(negObjects) == 0 && len(negData) == 0 {
		return nil
	}

	var findings []Finding
	for _, ind := range canonicalIndividuals(idx) {
		if len(negObjects[ind]) == 0 && len(negData[ind]) == 0 {
			continue
		}
		for _, ce := range idx.TypeExpressionsOf(ind) {
			switch c := ce.(type) {
			case ontology.ObjectHasValue:
				subject, value := ind, c.Individual
				if c.Property.Inverse {
					// The restriction states (value p ind).
					for _, neg := range negObjects[idx.Canonical(value)] {
						if idx.IsSubPropertyOf(c.Property.IRI, neg.property) && idx.AreSameIndividuals(neg.object, ind) {
							findings = append(findings, hasValueFinding(ind, c, neg.property))
						}
					}
					continue
				}
				for _, neg := range negObjects[subject] {
					if idx.IsSubPropertyOf(c.Property.IRI, neg.property) && idx.AreSameIndividuals(neg.object, value) {
						findings = append(findings, hasValueFinding(ind, c, neg.property))
					}
				}
			case ontology.DataHasValue:
				for _, neg := range negData[ind] {
					if idx.IsSubPropertyOf(c.Property, neg.Property) && neg.Value.Equal(c.Value) {
						findings = append(findings, hasValueFinding(ind, c, neg.Property))
					}
				}
			}
		}
	}
	return findings
}

func hasValueFinding(ind string, ce ontology.ClassExpression, negProperty string) Finding {
	return Finding{
		Description: fmt.Sprintf("Individual %s is an instance of %s but a negative assertion on %s denies the value",
			angle(ind), ce, angle(negProperty)),
		Suggestion: "Remove the negative assertion or the has-value restriction",
	}
}

func checkAllValuesFrom(idx *index.Index) []Finding {
	var findings []Finding
	for _, ind := range canonicalIndividuals(idx) {
		for _, ce := range idx.TypeExpressionsOf(ind) {
			switch c := ce.(type) {
			case ontology.ObjectAllValuesFrom:
				for _, v := range canonicalize(idx, objectValues(idx, ind, c.Property)) {
					if clash := fillerClash(idx, v, c.Filler); clash != "" {
						findings = append(findings, Finding{
							Description: fmt.Sprintf("Value %s of %s on %s is an instance of %s, contradicting %s",
								angle(v), c.Property, angle(ind), angle(clash), c),
							Suggestion: "Change the type of the value or the universal restriction",
						})
					}
				}
			case ontology.DataAllValuesFrom:
				for _, lit := range idx.DataValues(ind, c.Property) {
					if !owl.IsCompatibleDatatype(lit.EffectiveDatatype(), lit.Value, c.Datatype) {
						findings = append(findings, Finding{
							Description: fmt.Sprintf("Literal %s of %s on %s is not of datatype %s",
								lit, angle(c.Property), angle(ind), angle(c.Datatype)),
							Suggestion: "Use a literal of the restricted datatype",
						})
					}
				}
			}
		}
	}
	return findings
}

// fillerClash returns the type of value that contradicts filler, or "".
func fillerClash(idx *index.Index, value string, filler ontology.ClassExpression) string {
	types := idx.TypesOf(value)
	switch f := filler.(type) {
	case ontology.Class:
		return disjointWith(idx, types, f.IRI)
	case ontology.ObjectComplementOf:
		if iri, ok := ontology.NamedClass(f.Operand); ok && contains(types, iri) {
			return iri
		}
	case ontology.ObjectIntersectionOf:
		for _, part := range f.Operands {
			if clash := fillerClash(idx, value, part); clash != "" {
				return clash
			}
		}
	}
	return ""
}

func checkSameIndividualClassClash(idx *index.Index) []Finding {
	var findings []Finding
	for _, ind := range canonicalIndividuals(idx) {
		members := idx.Closure(ind, index.SameIndividual)
		if len(members) < 2 {
			continue
		}
		types := make([][]string, len(members))
		for i, m := range members {
			own := ownTypes(idx, m)
			types[i] = make([]string, 0, len(own))
			for t := range own {
				types[i] = append(types[i], t)
			}
			sort.Strings(types[i])
		}
		for i, a := range members {
			for j := i + 1; j < len(members); j++ {
				if ta, tb, ok := firstDisjointPair(idx, types[i], types[j]); ok {
					findings = append(findings, Finding{
						Description: fmt.Sprintf("Individuals %s and %s are the same but typed with disjoint classes %s and %s",
							angle(a), angle(members[j]), angle(ta), angle(tb)),
						Suggestion: "Remove the sameAs assertion or one of the class assertions",
					})
				}
			}
		}
	}
	return findings
}

func firstDisjointPair(idx *index.Index, as, bs []string) (string, string, bool) {
	for _, a := range as {
		if b := disjointWith(idx, bs, a); b != "" {
			return a, b, true
		}
	}
	return "", "", false
}
