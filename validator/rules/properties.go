package rules

import (
	"fmt"
	"sort"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
	"github.com/c360studio/semowl/vocabulary/owl"
)

// assertedPair is an object property assertion normalized to a named property.
type assertedPair struct {
	property string
	subject  string
	object   string
}

func normalizedAssertions(idx *index.Index) []assertedPair {
	var out []assertedPair
	for _, a := range ontology.AxiomsOf[ontology.ObjectPropertyAssertion](idx.Ontology()) {
		s, o := a.Subject, a.Object
		if a.Property.Inverse {
			s, o = o, s
		}
		out = append(out, assertedPair{property: a.Property.IRI, subject: s, object: o})
	}
	return out
}

// checkAsymmetricProperty matches exact assertion pairs. Synonyms of the
// individuals and properties are not followed.
func checkAsymmetricProperty(idx *index.Index) []Finding {
	asserted := make(map[assertedPair]bool)
	pairs := normalizedAssertions(idx)
	for _, p := range pairs {
		asserted[p] = true
	}

	var findings []Finding
	reported := make(map[assertedPair]bool)
	for _, p := range pairs {
		if !idx.HasCharacteristic(p.property, ontology.Asymmetric) {
			continue
		}
		reverse := assertedPair{property: p.property, subject: p.object, object: p.subject}
		if !asserted[reverse] {
			continue
		}
		key := p
		if reverse.subject < key.subject {
			key = reverse
		}
		if reported[key] {
			continue
		}
		reported[key] = true
		findings = append(findings, Finding{
			Description: fmt.Sprintf("Asymmetric property %s is asserted in both directions between %s and %s",
				angle(p.property), angle(key.subject), angle(key.object)),
			Suggestion: "Remove one of the two assertions or the asymmetric characteristic",
		})
	}
	return findings
}

func checkIrreflexiveProperty(idx *index.Index) []Finding {
	var findings []Finding
	seen := make(map[assertedPair]bool)
	for _, p := range normalizedAssertions(idx) {
		if seen[p] || !idx.HasCharacteristic(p.property, ontology.Irreflexive) {
			continue
		}
		if !idx.AreSameIndividuals(p.subject, p.object) {
			continue
		}
		seen[p] = true
		desc := fmt.Sprintf("Irreflexive property %s relates %s to itself", angle(p.property), angle(p.subject))
		if p.subject != p.object {
			desc = fmt.Sprintf("Irreflexive property %s relates %s to %s, which is the same individual",
				angle(p.property), angle(p.subject), angle(p.object))
		}
		findings = append(findings, Finding{
			Description: desc,
			Suggestion:  "Remove the reflexive assertion or the irreflexive characteristic",
		})
	}
	return findings
}

func checkDomainRange(idx *index.Index) []Finding {
	var findings []Finding
	for _, ax := range idx.Axioms(ontology.AxiomAssertion) {
		switch a := ax.(type) {
		case ontology.ObjectPropertyAssertion:
			s, o := a.Subject, a.Object
			if a.Property.Inverse {
				s, o = o, s
			}
			p := a.Property.IRI
			for _, domain := range idx.DomainsOf(p) {
				if clash := typeClash(idx, s, domain); clash != "" {
					findings = append(findings, domainFinding(s, clash, domain, p, "domain"))
				}
			}
			for _, rng := range idx.RangesOf(p) {
				if clash := typeClash(idx, o, rng); clash != "" {
					findings = append(findings, domainFinding(o, clash, rng, p, "range"))
				}
			}
		case ontology.DataPropertyAssertion:
			for _, domain := range idx.DomainsOf(a.Property) {
				if clash := typeClash(idx, a.Subject, domain); clash != "" {
					findings = append(findings, domainFinding(a.Subject, clash, domain, a.Property, "domain"))
				}
			}
			for _, dt := range idx.DataRangesOf(a.Property) {
				if !owl.IsCompatibleDatatype(a.Value.EffectiveDatatype(), a.Value.Value, dt) {
					findings = append(findings, Finding{
						Description: fmt.Sprintf("Literal %s asserted for %s on %s is incompatible with the range %s",
							a.Value, angle(a.Property), angle(a.Subject), angle(dt)),
						Suggestion: "Use a literal of the range datatype",
					})
				}
			}
		}
	}
	return findings
}

// typeClash returns a type of ind that contradicts ce, or "". Named
// expressions clash through disjointness, complements through membership of
// the operand, unions when every disjunct clashes, intersections when any
// conjunct does.
func typeClash(idx *index.Index, ind string, ce ontology.ClassExpression) string {
	types := idx.TypesOf(ind)
	if len(types) == 0 {
		return ""
	}
	return clashWith(idx, types, ce)
}

func clashWith(idx *index.Index, types []string, ce ontology.ClassExpression) string {
	switch c := ce.(type) {
	case ontology.Class:
		return disjointWith(idx, types, c.IRI)
	case ontology.ObjectComplementOf:
		if iri, ok := ontology.NamedClass(c.Operand); ok && contains(types, iri) {
			return iri
		}
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			if clash := clashWith(idx, types, op); clash != "" {
				return clash
			}
		}
	case ontology.ObjectUnionOf:
		first := ""
		for _, op := range c.Operands {
			clash := clashWith(idx, types, op)
			if clash == "" {
				return ""
			}
			if first == "" {
				first = clash
			}
		}
		return first
	}
	return ""
}

func domainFinding(ind, clash string, ce ontology.ClassExpression, property, side string) Finding {
	return Finding{
		Description: fmt.Sprintf("Individual %s is an instance of %s, which contradicts %s, the %s of %s",
			angle(ind), angle(clash), ce, side, angle(property)),
		Suggestion: fmt.Sprintf("Change the type of %s or the %s of %s", angle(ind), side, angle(property)),
	}
}

// checkInverseOf compares the declared domains of each property with the
// declared ranges of its inverse. The classes must be related by
// subsumption in either direction.
func checkInverseOf(idx *index.Index) []Finding {
	domains := make(map[string][]string)
	ranges := make(map[string][]string)
	for _, ax := range idx.Axioms(ontology.AxiomObjectProperty) {
		switch a := ax.(type) {
		case ontology.ObjectPropertyDomain:
			if iri, ok := ontology.NamedClass(a.Domain); ok {
				domains[a.Property] = append(domains[a.Property], iri)
			}
		case ontology.ObjectPropertyRange:
			if iri, ok := ontology.NamedClass(a.Range); ok {
				ranges[a.Property] = append(ranges[a.Property], iri)
			}
		}
	}

	var findings []Finding
	compare := func(p, q, pSide, qSide string, pClasses, qClasses []string) {
		for _, c := range pClasses {
			for _, d := range qClasses {
				if idx.IsSubClassOf(c, d) || idx.IsSubClassOf(d, c) {
					continue
				}
				findings = append(findings, Finding{
					Description: fmt.Sprintf("The %s %s of %s is unrelated to the %s %s of its inverse %s",
						pSide, angle(c), angle(p), qSide, angle(d), angle(q)),
					Suggestion: "Align the domain and range of the inverse properties",
				})
			}
		}
	}
	for _, ax := range ontology.AxiomsOf[ontology.InverseObjectProperties](idx.Ontology()) {
		p, q := ax.First, ax.Second
		compare(p, q, "domain", "range", domains[p], ranges[q])
		compare(p, q, "range", "domain", ranges[p], domains[q])
	}
	return findings
}

func checkGlobalCardinality(idx *index.Index) []Finding {
	var findings []Finding
	props := representatives(idx, propertiesInUse(idx))
	var functional, inverseFunctional []string
	for _, p := range props {
		if idx.HasCharacteristic(p, ontology.Functional) {
			functional = append(functional, p)
		}
		if idx.HasCharacteristic(p, ontology.InverseFunctional) {
			inverseFunctional = append(inverseFunctional, p)
		}
	}

	for _, ind := range canonicalIndividuals(idx) {
		for _, p := range functional {
			values := canonicalize(idx, idx.ObjectValues(ind, p))
			if len(values) > 1 && maxDifferent(idx, values) > 1 {
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Functional property %s relates %s to different individuals %s",
						angle(p), angle(ind), joinAngled(values)),
					Suggestion: "Remove all but one value or assert the values to be the same",
				})
			}
			if literals := idx.DataValues(ind, p); distinctLiterals(literals) > 1 {
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Functional data property %s has %d distinct values on %s",
						angle(p), distinctLiterals(literals), angle(ind)),
					Suggestion: "Remove all but one literal",
				})
			}
		}
		for _, p := range inverseFunctional {
			subjects := canonicalize(idx, idx.ObjectSubjects(ind, p))
			if len(subjects) > 1 && maxDifferent(idx, subjects) > 1 {
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Inverse functional property %s relates different individuals %s to %s",
						angle(p), joinAngled(subjects), angle(ind)),
					Suggestion: "Remove all but one subject or assert the subjects to be the same",
				})
			}
		}
	}

	for _, ax := range ontology.AxiomsOf[ontology.ObjectPropertyCharacteristic](idx.Ontology()) {
		if ax.Characteristic != ontology.Functional && ax.Characteristic != ontology.InverseFunctional {
			continue
		}
		if idx.IsNonSimple(ax.Property) {
			findings = append(findings, Finding{
				Description: fmt.Sprintf("Property %s is declared %s but is transitive or composed by a chain",
					angle(ax.Property), ax.Characteristic),
				Suggestion: "Only simple properties may be functional or inverse functional",
			})
		}
	}
	return findings
}

func joinAngled(iris []string) string {
	out := ""
	for i, iri := range iris {
		if i > 0 {
			out += ", "
		}
		out += angle(iri)
	}
	return out
}

// checkLocalCardinality flags cardinality restrictions on non-simple
// properties wherever they occur.
func checkLocalCardinality(idx *index.Index) []Finding {
	seen := make(map[string]bool)
	var restrictions []ontology.ObjectCardinality
	visit := func(ce ontology.ClassExpression) {
		walkExpression(ce, func(e ontology.ClassExpression) {
			c, ok := e.(ontology.ObjectCardinality)
			if !ok || seen[c.String()] {
				return
			}
			seen[c.String()] = true
			if idx.IsNonSimple(c.Property.IRI) {
				restrictions = append(restrictions, c)
			}
		})
	}
	for _, ax := range idx.Ontology().AllAxioms() {
		for _, ce := range classExpressionsOf(ax) {
			visit(ce)
		}
	}
	sort.Slice(restrictions, func(i, j int) bool { return restrictions[i].String() < restrictions[j].String() })

	findings := make([]Finding, 0, len(restrictions))
	for _, c := range restrictions {
		findings = append(findings, Finding{
			Description: fmt.Sprintf("Cardinality restriction %s uses the transitive or chain-composed property %s",
				c, angle(c.Property.IRI)),
			Suggestion: "Restrict a simple sub property instead",
		})
	}
	return findings
}

// classExpressionsOf returns the top-level class expressions of an axiom.
func classExpressionsOf(ax ontology.Axiom) []ontology.ClassExpression {
	switch a := ax.(type) {
	case ontology.SubClassOf:
		return []ontology.ClassExpression{a.Sub, a.Super}
	case ontology.EquivalentClasses:
		return a.Classes
	case ontology.DisjointClasses:
		return a.Classes
	case ontology.DisjointUnion:
		return a.Classes
	case ontology.ObjectPropertyDomain:
		return []ontology.ClassExpression{a.Domain}
	case ontology.ObjectPropertyRange:
		return []ontology.ClassExpression{a.Range}
	case ontology.DataPropertyDomain:
		return []ontology.ClassExpression{a.Domain}
	case ontology.HasKey:
		return []ontology.ClassExpression{a.Class}
	case ontology.ClassAssertion:
		return []ontology.ClassExpression{a.Class}
	}
	return nil
}

// walkExpression calls fn on ce and every nested expression.
func walkExpression(ce ontology.ClassExpression, fn func(ontology.ClassExpression)) {
	if ce == nil {
		return
	}
	fn(ce)
	switch c := ce.(type) {
	case ontology.ObjectComplementOf:
		walkExpression(c.Operand, fn)
	case ontology.ObjectUnionOf:
		for _, op := range c.Operands {
			walkExpression(op, fn)
		}
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			walkExpression(op, fn)
		}
	case ontology.ObjectSomeValuesFrom:
		walkExpression(c.Filler, fn)
	case ontology.ObjectAllValuesFrom:
		walkExpression(c.Filler, fn)
	case ontology.ObjectCardinality:
		walkExpression(c.Filler, fn)
	}
}

// checkNegativeAssertions finds negative assertions whose subject, property
// and object are each synonymous with those of a positive assertion.
func checkNegativeAssertions(idx *index.Index) []Finding {
	var findings []Finding
	for _, ax := range idx.Axioms(ontology.AxiomAssertion) {
		switch a := ax.(type) {
		case ontology.NegativeObjectPropertyAssertion:
			s, o := a.Subject, a.Object
			if a.Property.Inverse {
				s, o = o, s
			}
			for _, v := range idx.ObjectValues(s, a.Property.IRI) {
				if idx.AreSameIndividuals(v, o) {
					findings = append(findings, Finding{
						Description: fmt.Sprintf("%s contradicts a positive assertion of %s between %s and %s",
							a, angle(a.Property.IRI), angle(s), angle(v)),
						Suggestion: "Remove the negative or the positive assertion",
					})
					break
				}
			}
		case ontology.NegativeDataPropertyAssertion:
			for _, lit := range idx.DataValues(a.Subject, a.Property) {
				if lit.Equal(a.Value) {
					findings = append(findings, Finding{
						Description: fmt.Sprintf("%s contradicts a positive assertion of %s on %s",
							a, angle(a.Property), angle(a.Subject)),
						Suggestion: "Remove the negative or the positive assertion",
					})
					break
				}
			}
		}
	}
	return findings
}

func checkPropertyDisjoint(idx *index.Index) []Finding {
	var findings []Finding
	pairs := idx.DisjointPropertyPairs()
	for _, ind := range canonicalIndividuals(idx) {
		for _, pair := range pairs {
			p, q := pair[0], pair[1]
			if shared := sharedValue(idx, ind, p, q); shared != "" {
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Disjoint properties %s and %s both relate %s to %s",
						angle(p), angle(q), angle(ind), shared),
					Suggestion: "Remove one of the assertions or the disjointness axiom",
				})
			}
		}
	}

	seen := make(map[[2]string]bool)
	check := func(props []string) {
		for i, p := range props {
			for _, q := range props[i+1:] {
				key := [2]string{p, q}
				if q < p {
					key = [2]string{q, p}
				}
				if seen[key] {
					continue
				}
				if p == q || idx.AreEquivalentProperties(p, q) || idx.IsSubPropertyOf(p, q) || idx.IsSubPropertyOf(q, p) {
					seen[key] = true
					findings = append(findings, Finding{
						Description: fmt.Sprintf("Properties %s and %s are declared disjoint but one subsumes the other",
							angle(key[0]), angle(key[1])),
						Suggestion: "Remove the disjointness or the property hierarchy axiom",
					})
				}
			}
		}
	}
	for _, ax := range idx.Axioms(ontology.AxiomObjectProperty) {
		if a, ok := ax.(ontology.DisjointObjectProperties); ok {
			var named []string
			for _, p := range a.Properties {
				named = append(named, p.IRI)
			}
			check(named)
		}
	}
	for _, a := range ontology.AxiomsOf[ontology.DisjointDataProperties](idx.Ontology()) {
		check(a.Properties)
	}
	return findings
}

// sharedValue returns an object or literal that ind has for both p and q.
func sharedValue(idx *index.Index, ind, p, q string) string {
	pValues := canonicalize(idx, idx.ObjectValues(ind, p))
	if len(pValues) > 0 {
		for _, v := range canonicalize(idx, idx.ObjectValues(ind, q)) {
			if contains(pValues, v) {
				return angle(v)
			}
		}
	}
	pData := idx.DataValues(ind, p)
	if len(pData) > 0 {
		for _, lit := range idx.DataValues(ind, q) {
			for _, other := range pData {
				if lit.Equal(other) {
					return lit.String()
				}
			}
		}
	}
	return ""
}

func checkPropertyCharacteristics(idx *index.Index) []Finding {
	used := make(map[string]bool)
	for _, p := range normalizedAssertions(idx) {
		used[p.property] = true
	}
	props := make(map[string]bool)
	for _, a := range ontology.AxiomsOf[ontology.ObjectPropertyCharacteristic](idx.Ontology()) {
		props[a.Property] = true
	}

	var findings []Finding
	hasIndividuals := len(idx.Individuals()) > 0
	for _, p := range representatives(idx, props) {
		if idx.HasCharacteristic(p, ontology.Symmetric) && idx.HasCharacteristic(p, ontology.Asymmetric) && usedUnder(idx, used, p) {
			findings = append(findings, Finding{
				Description: fmt.Sprintf("Property %s is both symmetric and asymmetric and has assertions", angle(p)),
				Suggestion:  "Remove the symmetric or the asymmetric characteristic",
			})
		}
		if idx.HasCharacteristic(p, ontology.Reflexive) && idx.HasCharacteristic(p, ontology.Irreflexive) && hasIndividuals {
			findings = append(findings, Finding{
				Description: fmt.Sprintf("Property %s is both reflexive and irreflexive while the ontology has individuals", angle(p)),
				Suggestion:  "Remove the reflexive or the irreflexive characteristic",
			})
		}
	}
	return findings
}

// usedUnder reports whether p or one of its sub properties is asserted.
func usedUnder(idx *index.Index, used map[string]bool, p string) bool {
	for _, sub := range idx.Closure(p, index.SuperPropertyOf) {
		if used[sub] {
			return true
		}
	}
	return false
}

func checkObjectPropertyChain(idx *index.Index) []Finding {
	var findings []Finding
	for _, ax := range ontology.AxiomsOf[ontology.SubObjectPropertyOf](idx.Ontology()) {
		if len(ax.Chain) == 0 {
			continue
		}
		for _, c := range []ontology.Characteristic{ontology.Asymmetric, ontology.Irreflexive} {
			if idx.HasCharacteristic(ax.Super.IRI, c) {
				findings = append(findings, Finding{
					Description: fmt.Sprintf("Chain axiom %s has a super property that is %s", ax, c),
					Suggestion:  "Only simple properties may be asymmetric or irreflexive",
				})
			}
		}
	}
	return findings
}
