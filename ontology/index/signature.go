package index

import (
	"sort"
	"strings"

	"github.com/c360studio/semowl/ontology"
)

// Usage records an entity used by a logical or annotation axiom together
// with the axiom that uses it.
type Usage struct {
	Entity ontology.Entity
	Axiom  ontology.Axiom
}

// Signature returns every entity usage outside declarations, ordered by IRI,
// then kind, then axiom. Blank nodes are skipped.
func (idx *Index) Signature() []Usage {
	var out []Usage
	for _, ax := range idx.ont.AllAxioms() {
		if _, ok := ax.(ontology.Declaration); ok {
			continue
		}
		seen := make(map[ontology.Entity]bool)
		visitAxiom(ax, func(kind ontology.EntityKind, iri string) {
			e := ontology.Entity{Kind: kind, IRI: iri}
			if iri == "" || strings.HasPrefix(iri, "_:") || seen[e] {
				return
			}
			seen[e] = true
			out = append(out, Usage{Entity: e, Axiom: ax})
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Entity.IRI != out[j].Entity.IRI {
			return out[i].Entity.IRI < out[j].Entity.IRI
		}
		if out[i].Entity.Kind != out[j].Entity.Kind {
			return out[i].Entity.Kind < out[j].Entity.Kind
		}
		return out[i].Axiom.String() < out[j].Axiom.String()
	})
	return out
}

type visitFunc func(kind ontology.EntityKind, iri string)

func visitAxiom(ax ontology.Axiom, visit visitFunc) {
	objProps := func(props ...ontology.ObjectPropertyExpression) {
		for _, p := range props {
			visit(ontology.KindObjectProperty, p.IRI)
		}
	}
	dataProps := func(props ...string) {
		for _, p := range props {
			visit(ontology.KindDataProperty, p)
		}
	}
	classes := func(exprs ...ontology.ClassExpression) {
		for _, ce := range exprs {
			visitExpression(ce, visit)
		}
	}
	individuals := func(inds ...string) {
		for _, ind := range inds {
			visit(ontology.KindNamedIndividual, ind)
		}
	}

	switch a := ax.(type) {
	case ontology.SubClassOf:
		classes(a.Sub, a.Super)
	case ontology.EquivalentClasses:
		classes(a.Classes...)
	case ontology.DisjointClasses:
		classes(a.Classes...)
	case ontology.DisjointUnion:
		visit(ontology.KindClass, a.Class)
		classes(a.Classes...)
	case ontology.SubObjectPropertyOf:
		if len(a.Chain) > 0 {
			objProps(a.Chain...)
		} else {
			objProps(a.Sub)
		}
		objProps(a.Super)
	case ontology.EquivalentObjectProperties:
		objProps(a.Properties...)
	case ontology.DisjointObjectProperties:
		objProps(a.Properties...)
	case ontology.InverseObjectProperties:
		objProps(ontology.ObjectProp(a.First), ontology.ObjectProp(a.Second))
	case ontology.ObjectPropertyDomain:
		objProps(ontology.ObjectProp(a.Property))
		classes(a.Domain)
	case ontology.ObjectPropertyRange:
		objProps(ontology.ObjectProp(a.Property))
		classes(a.Range)
	case ontology.ObjectPropertyCharacteristic:
		objProps(ontology.ObjectProp(a.Property))
	case ontology.SubDataPropertyOf:
		dataProps(a.Sub, a.Super)
	case ontology.EquivalentDataProperties:
		dataProps(a.Properties...)
	case ontology.DisjointDataProperties:
		dataProps(a.Properties...)
	case ontology.DataPropertyDomain:
		dataProps(a.Property)
		classes(a.Domain)
	case ontology.DataPropertyRange:
		dataProps(a.Property)
		visit(ontology.KindDatatype, a.Datatype)
	case ontology.FunctionalDataProperty:
		dataProps(a.Property)
	case ontology.HasKey:
		classes(a.Class)
		objProps(a.ObjectProperties...)
		dataProps(a.DataProperties...)
	case ontology.ClassAssertion:
		classes(a.Class)
		individuals(a.Individual)
	case ontology.ObjectPropertyAssertion:
		objProps(a.Property)
		individuals(a.Subject, a.Object)
	case ontology.NegativeObjectPropertyAssertion:
		objProps(a.Property)
		individuals(a.Subject, a.Object)
	case ontology.DataPropertyAssertion:
		dataProps(a.Property)
		individuals(a.Subject)
		visit(ontology.KindDatatype, a.Value.Datatype)
	case ontology.NegativeDataPropertyAssertion:
		dataProps(a.Property)
		individuals(a.Subject)
		visit(ontology.KindDatatype, a.Value.Datatype)
	case ontology.SameIndividual:
		individuals(a.Individuals...)
	case ontology.DifferentIndividuals:
		individuals(a.Individuals...)
	case ontology.AnnotationAssertion:
		visit(ontology.KindAnnotationProperty, a.Property)
	}
}

func visitExpression(ce ontology.ClassExpression, visit visitFunc) {
	switch c := ce.(type) {
	case ontology.Class:
		visit(ontology.KindClass, c.IRI)
	case ontology.ObjectComplementOf:
		visitExpression(c.Operand, visit)
	case ontology.ObjectUnionOf:
		for _, op := range c.Operands {
			visitExpression(op, visit)
		}
	case ontology.ObjectIntersectionOf:
		for _, op := range c.Operands {
			visitExpression(op, visit)
		}
	case ontology.ObjectOneOf:
		for _, ind := range c.Individuals {
			visit(ontology.KindNamedIndividual, ind)
		}
	case ontology.ObjectSomeValuesFrom:
		visit(ontology.KindObjectProperty, c.Property.IRI)
		visitExpression(c.Filler, visit)
	case ontology.ObjectAllValuesFrom:
		visit(ontology.KindObjectProperty, c.Property.IRI)
		visitExpression(c.Filler, visit)
	case ontology.ObjectHasValue:
		visit(ontology.KindObjectProperty, c.Property.IRI)
		visit(ontology.KindNamedIndividual, c.Individual)
	case ontology.ObjectCardinality:
		visit(ontology.KindObjectProperty, c.Property.IRI)
		if c.Filler != nil {
			visitExpression(c.Filler, visit)
		}
	case ontology.DataSomeValuesFrom:
		visit(ontology.KindDataProperty, c.Property)
		visit(ontology.KindDatatype, c.Datatype)
	case ontology.DataAllValuesFrom:
		visit(ontology.KindDataProperty, c.Property)
		visit(ontology.KindDatatype, c.Datatype)
	case ontology.DataHasValue:
		visit(ontology.KindDataProperty, c.Property)
	case ontology.DataCardinality:
		visit(ontology.KindDataProperty, c.Property)
		visit(ontology.KindDatatype, c.Datatype)
	}
}
