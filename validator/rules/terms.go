package rules

import (
	"fmt"
	"strings"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
	"github.com/c360studio/semowl/vocabulary/owl"
)

func checkDifferentIndividuals(idx *index.Index) []Finding {
	var findings []Finding
	seen := make(map[[2]string]bool)
	for _, ax := range ontology.AxiomsOf[ontology.DifferentIndividuals](idx.Ontology()) {
		for i, a := range ax.Individuals {
			for _, b := range ax.Individuals[i+1:] {
				key := [2]string{a, b}
				if b < a {
					key = [2]string{b, a}
				}
				if seen[key] || !idx.AreSameIndividuals(a, b) {
					continue
				}
				seen[key] = true
				desc := fmt.Sprintf("Individuals %s and %s are asserted both the same and different",
					angle(key[0]), angle(key[1]))
				if a == b {
					desc = fmt.Sprintf("Individual %s is asserted different from itself", angle(a))
				}
				findings = append(findings, Finding{
					Description: desc,
					Suggestion:  "Remove the sameAs or the differentFrom assertion",
				})
			}
		}
	}
	return findings
}

func checkLiteralValidity(idx *index.Index) []Finding {
	var findings []Finding
	report := func(lit ontology.Literal, ax ontology.Axiom) {
		if owl.IsValidLexicalForm(lit.Value, lit.EffectiveDatatype()) {
			return
		}
		findings = append(findings, Finding{
			Description: fmt.Sprintf("Literal %s in %s is not a valid %s", lit, ax, angle(lit.EffectiveDatatype())),
			Suggestion:  "Correct the lexical form or the datatype of the literal",
		})
	}
	for _, ax := range idx.Ontology().AllAxioms() {
		switch a := ax.(type) {
		case ontology.DataPropertyAssertion:
			report(a.Value, a)
		case ontology.NegativeDataPropertyAssertion:
			report(a.Value, a)
		case ontology.AnnotationAssertion:
			if a.ValueIRI == "" {
				report(a.Value, a)
			}
		default:
			for _, ce := range classExpressionsOf(ax) {
				walkExpression(ce, func(e ontology.ClassExpression) {
					if hv, ok := e.(ontology.DataHasValue); ok {
						report(hv.Value, ax)
					}
				})
			}
		}
	}
	return findings
}

func checkTermDeclaration(idx *index.Index) []Finding {
	var findings []Finding
	ont := idx.Ontology()
	seen := make(map[ontology.Entity]bool)
	for _, use := range idx.Signature() {
		e := use.Entity
		if seen[e] || owl.IsBuiltin(e.IRI) || ont.IsDeclaredAs(e.IRI, e.Kind) {
			continue
		}
		seen[e] = true
		findings = append(findings, Finding{
			Description: fmt.Sprintf("%s %s is used in %s but not declared", entityLabel(e.Kind), angle(e.IRI), use.Axiom),
			Suggestion:  fmt.Sprintf("Add %s", ontology.Declaration{Entity: e}),
		})
	}
	return findings
}

func entityLabel(kind ontology.EntityKind) string {
	switch kind {
	case ontology.KindClass:
		return "Class"
	case ontology.KindDatatype:
		return "Datatype"
	case ontology.KindObjectProperty:
		return "Object property"
	case ontology.KindDataProperty:
		return "Data property"
	case ontology.KindAnnotationProperty:
		return "Annotation property"
	case ontology.KindNamedIndividual:
		return "Individual"
	default:
		return "Entity"
	}
}

// deprecatedTerms returns the IRIs annotated with owl:deprecated true.
func deprecatedTerms(idx *index.Index) map[string]bool {
	out := make(map[string]bool)
	for _, a := range ontology.AxiomsOf[ontology.AnnotationAssertion](idx.Ontology()) {
		if a.Property != owl.Deprecated || a.ValueIRI != "" {
			continue
		}
		switch strings.TrimSpace(a.Value.Value) {
		case "true", "1":
			out[a.Subject] = true
		}
	}
	return out
}

func checkTermDeprecation(idx *index.Index) []Finding {
	deprecated := deprecatedTerms(idx)
	if len(deprecated) == 0 {
		return nil
	}
	var findings []Finding
	for _, use := range idx.Signature() {
		if !deprecated[use.Entity.IRI] {
			continue
		}
		findings = append(findings, Finding{
			Description: fmt.Sprintf("Deprecated %s %s is used in %s",
				strings.ToLower(entityLabel(use.Entity.Kind)), angle(use.Entity.IRI), use.Axiom),
			Suggestion: "Replace the deprecated term with its successor",
		})
	}
	return findings
}

func checkTermDisjointness(idx *index.Index) []Finding {
	ont := idx.Ontology()
	var findings []Finding
	seen := make(map[string]bool)
	for _, decl := range ont.Declarations() {
		iri := decl.IRI
		if seen[iri] {
			continue
		}
		seen[iri] = true
		kinds := ont.DeclaredKinds(iri)
		if len(kinds) < 2 {
			continue
		}
		labels := make([]string, len(kinds))
		for i, k := range kinds {
			labels[i] = k.String()
		}
		findings = append(findings, Finding{
			Description: fmt.Sprintf("%s is declared as %s", angle(iri), strings.Join(labels, " and ")),
			Suggestion:  "Use a distinct IRI for each kind of entity",
		})
	}
	return findings
}

func checkThingNothing(idx *index.Index) []Finding {
	var findings []Finding
	add := func(desc string) {
		findings = append(findings, Finding{
			Description: desc,
			Suggestion:  "Remove the axiom; owl:Thing and owl:Nothing have fixed meanings",
		})
	}
	for _, ax := range idx.Axioms(ontology.AxiomClass) {
		switch a := ax.(type) {
		case ontology.SubClassOf:
			sub, subNamed := ontology.NamedClass(a.Sub)
			super, superNamed := ontology.NamedClass(a.Super)
			if subNamed && sub == owl.Thing && !(superNamed && super == owl.Thing) {
				add(fmt.Sprintf("owl:Thing is made a subclass of %s in %s", a.Super, a))
			}
			if superNamed && super == owl.Nothing && !(subNamed && sub == owl.Nothing) {
				add(fmt.Sprintf("%s is made a subclass of owl:Nothing in %s", a.Sub, a))
			}
		case ontology.EquivalentClasses:
			for _, builtin := range []string{owl.Thing, owl.Nothing} {
				if mentionsOther(a.Classes, builtin) {
					add(fmt.Sprintf("%s is made equivalent to another class in %s", angle(builtin), a))
				}
			}
		}
	}
	for _, a := range ontology.AxiomsOf[ontology.ClassAssertion](idx.Ontology()) {
		if iri, ok := ontology.NamedClass(a.Class); ok && iri == owl.Nothing {
			add(fmt.Sprintf("Individual %s is asserted to be an instance of owl:Nothing", angle(a.Individual)))
		}
	}
	for _, ind := range canonicalIndividuals(idx) {
		if !idx.IsInstanceOf(ind, owl.Nothing) {
			continue
		}
		direct := false
		for _, same := range idx.Closure(ind, index.SameIndividual) {
			if assertedNothing(idx, same) {
				direct = true
			}
		}
		if !direct {
			add(fmt.Sprintf("Individual %s is an instance of a class subsumed by owl:Nothing", angle(ind)))
		}
	}
	return findings
}

func assertedNothing(idx *index.Index, ind string) bool {
	for _, ce := range idx.AssertedTypes(ind) {
		if iri, ok := ontology.NamedClass(ce); ok && iri == owl.Nothing {
			return true
		}
	}
	return false
}

// mentionsOther reports whether exprs contain builtin together with a
// different class expression.
func mentionsOther(exprs []ontology.ClassExpression, builtin string) bool {
	found, other := false, false
	for _, ce := range exprs {
		if iri, ok := ontology.NamedClass(ce); ok && iri == builtin {
			found = true
		} else {
			other = true
		}
	}
	return found && other
}

func checkTopBottom(idx *index.Index) []Finding {
	var findings []Finding
	add := func(desc, suggestion string) {
		findings = append(findings, Finding{Description: desc, Suggestion: suggestion})
	}
	const fixed = "Remove the axiom; the top and bottom properties have fixed meanings"

	for _, ax := range idx.Axioms(ontology.AxiomObjectProperty) {
		switch a := ax.(type) {
		case ontology.SubObjectPropertyOf:
			if len(a.Chain) == 0 && a.Sub.IRI == owl.TopObjectProperty && a.Super.IRI != owl.TopObjectProperty {
				add(fmt.Sprintf("owl:topObjectProperty is made a sub property in %s", a), fixed)
			}
			if a.Super.IRI == owl.BottomObjectProperty && a.Sub.IRI != owl.BottomObjectProperty {
				add(fmt.Sprintf("A property is made a sub property of owl:bottomObjectProperty in %s", a), fixed)
			}
		case ontology.EquivalentObjectProperties:
			iris := make([]string, len(a.Properties))
			for i, p := range a.Properties {
				iris[i] = p.IRI
			}
			for _, builtin := range []string{owl.TopObjectProperty, owl.BottomObjectProperty} {
				if containsOther(iris, builtin) {
					add(fmt.Sprintf("%s is made equivalent to another property in %s", angle(builtin), a), fixed)
				}
			}
		}
	}
	for _, ax := range idx.Axioms(ontology.AxiomDataProperty) {
		switch a := ax.(type) {
		case ontology.SubDataPropertyOf:
			if a.Sub == owl.TopDataProperty && a.Super != owl.TopDataProperty {
				add(fmt.Sprintf("owl:topDataProperty is made a sub property in %s", a), fixed)
			}
			if a.Super == owl.BottomDataProperty && a.Sub != owl.BottomDataProperty {
				add(fmt.Sprintf("A property is made a sub property of owl:bottomDataProperty in %s", a), fixed)
			}
		case ontology.EquivalentDataProperties:
			for _, builtin := range []string{owl.TopDataProperty, owl.BottomDataProperty} {
				if containsOther(a.Properties, builtin) {
					add(fmt.Sprintf("%s is made equivalent to another property in %s", angle(builtin), a), fixed)
				}
			}
		}
	}

	const assertion = "Remove the assertion"
	for _, ax := range idx.Axioms(ontology.AxiomAssertion) {
		switch a := ax.(type) {
		case ontology.ObjectPropertyAssertion:
			if a.Property.IRI == owl.BottomObjectProperty {
				add(fmt.Sprintf("owl:bottomObjectProperty is asserted in %s", a), assertion)
			}
		case ontology.DataPropertyAssertion:
			if a.Property == owl.BottomDataProperty {
				add(fmt.Sprintf("owl:bottomDataProperty is asserted in %s", a), assertion)
			}
		case ontology.NegativeObjectPropertyAssertion:
			if a.Property.IRI == owl.TopObjectProperty {
				add(fmt.Sprintf("owl:topObjectProperty is negated in %s", a), assertion)
			}
		case ontology.NegativeDataPropertyAssertion:
			if a.Property == owl.TopDataProperty {
				add(fmt.Sprintf("owl:topDataProperty is negated in %s", a), assertion)
			}
		}
	}
	return findings
}

func containsOther(iris []string, builtin string) bool {
	found, other := false, false
	for _, iri := range iris {
		if iri == builtin {
			found = true
		} else {
			other = true
		}
	}
	return found && other
}
