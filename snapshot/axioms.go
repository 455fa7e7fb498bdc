package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semowl/ontology"
)

type axiomDecoder func(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error)

var characteristicAxioms = map[string]ontology.Characteristic{
	"FunctionalObjectProperty":        ontology.Functional,
	"InverseFunctionalObjectProperty": ontology.InverseFunctional,
	"ReflexiveObjectProperty":         ontology.Reflexive,
	"IrreflexiveObjectProperty":       ontology.Irreflexive,
	"SymmetricObjectProperty":         ontology.Symmetric,
	"AsymmetricObjectProperty":        ontology.Asymmetric,
	"TransitiveObjectProperty":        ontology.Transitive,
}

var axiomDecoders map[string]axiomDecoder

func init() {
	axiomDecoders = map[string]axiomDecoder{
		"Declaration":                     decodeDeclaration,
		"SubClassOf":                      decodeSubClassOf,
		"EquivalentClasses":               decodeEquivalentClasses,
		"DisjointClasses":                 decodeDisjointClasses,
		"DisjointUnion":                   decodeDisjointUnion,
		"SubObjectPropertyOf":             decodeSubObjectPropertyOf,
		"EquivalentObjectProperties":      decodeEquivalentObjectProperties,
		"DisjointObjectProperties":        decodeDisjointObjectProperties,
		"InverseObjectProperties":         decodeInverseObjectProperties,
		"ObjectPropertyDomain":            decodeObjectPropertyDomain,
		"ObjectPropertyRange":             decodeObjectPropertyRange,
		"SubDataPropertyOf":               decodeSubDataPropertyOf,
		"EquivalentDataProperties":        decodeEquivalentDataProperties,
		"DisjointDataProperties":          decodeDisjointDataProperties,
		"DataPropertyDomain":              decodeDataPropertyDomain,
		"DataPropertyRange":               decodeDataPropertyRange,
		"FunctionalDataProperty":          decodeFunctionalDataProperty,
		"HasKey":                          decodeHasKey,
		"ClassAssertion":                  decodeClassAssertion,
		"ObjectPropertyAssertion":         decodeObjectPropertyAssertion,
		"NegativeObjectPropertyAssertion": decodeObjectPropertyAssertion,
		"DataPropertyAssertion":           decodeDataPropertyAssertion,
		"NegativeDataPropertyAssertion":   decodeDataPropertyAssertion,
		"SameIndividual":                  decodeSameIndividual,
		"DifferentIndividuals":            decodeDifferentIndividuals,
		"AnnotationAssertion":             decodeAnnotationAssertion,
	}
	for name, c := range characteristicAxioms {
		c := c
		axiomDecoders[name] = func(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
			if err := arity(p, n, a, 1); err != nil {
				return nil, err
			}
			prop, err := p.iri(a[0])
			return ontology.ObjectPropertyCharacteristic{Property: prop, Characteristic: c}, err
		}
	}
}

// axiom decodes one entry of the axioms list.
func (p *parser) axiom(n *yaml.Node) (ontology.Axiom, error) {
	key, value, err := p.single(n)
	if err != nil {
		return nil, err
	}
	decode, ok := axiomDecoders[key]
	if !ok {
		return nil, fmt.Errorf("line %d: %w: %s", n.Line, ErrUnknownAxiom, key)
	}
	ax, err := decode(p, n, args(value))
	if err != nil {
		return nil, err
	}
	return negate(key, ax), nil
}

// negate turns a positive property assertion into its negative form for the
// Negative* axiom names, which share decoders with the positive ones.
func negate(key string, ax ontology.Axiom) ontology.Axiom {
	switch key {
	case "NegativeObjectPropertyAssertion":
		pa := ax.(ontology.ObjectPropertyAssertion)
		return ontology.NegativeObjectPropertyAssertion{Property: pa.Property, Subject: pa.Subject, Object: pa.Object}
	case "NegativeDataPropertyAssertion":
		da := ax.(ontology.DataPropertyAssertion)
		return ontology.NegativeDataPropertyAssertion{Property: da.Property, Subject: da.Subject, Value: da.Value}
	}
	return ax
}

func arity(p *parser, n *yaml.Node, a []*yaml.Node, want int) error {
	if len(a) != want {
		return p.errorf(n, "expected %d arguments, got %d", want, len(a))
	}
	return nil
}

func atLeast(p *parser, n *yaml.Node, a []*yaml.Node, want int) error {
	if len(a) < want {
		return p.errorf(n, "expected at least %d arguments, got %d", want, len(a))
	}
	return nil
}

// decodeDeclaration reads [Kind, iri].
func decodeDeclaration(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	kind, ok := ontology.ParseEntityKind(a[0].Value)
	if !ok {
		return nil, p.errorf(a[0], "unknown entity kind %q", a[0].Value)
	}
	iri, err := p.iri(a[1])
	return ontology.Declaration{Entity: ontology.Entity{Kind: kind, IRI: iri}}, err
}

func decodeSubClassOf(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	ces, err := p.classExpressions(a)
	if err != nil {
		return nil, err
	}
	return ontology.SubClassOf{Sub: ces[0], Super: ces[1]}, nil
}

func decodeEquivalentClasses(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	ces, err := p.classExpressions(a)
	return ontology.EquivalentClasses{Classes: ces}, err
}

func decodeDisjointClasses(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	ces, err := p.classExpressions(a)
	return ontology.DisjointClasses{Classes: ces}, err
}

// decodeDisjointUnion reads [class, member, member...].
func decodeDisjointUnion(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 3); err != nil {
		return nil, err
	}
	class, err := p.iri(a[0])
	if err != nil {
		return nil, err
	}
	ces, err := p.classExpressions(a[1:])
	return ontology.DisjointUnion{Class: class, Classes: ces}, err
}

// decodeSubObjectPropertyOf reads [sub, super] or [[p1, p2, ...], super]
// for a property chain.
func decodeSubObjectPropertyOf(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	super, err := p.objectProperty(a[1])
	if err != nil {
		return nil, err
	}
	if a[0].Kind == yaml.SequenceNode {
		chain, err := p.objectProperties(a[0].Content)
		if err != nil {
			return nil, err
		}
		if len(chain) < 2 {
			return nil, p.errorf(a[0], "a property chain needs at least two properties")
		}
		return ontology.SubObjectPropertyOf{Chain: chain, Super: super}, nil
	}
	sub, err := p.objectProperty(a[0])
	return ontology.SubObjectPropertyOf{Sub: sub, Super: super}, err
}

func decodeEquivalentObjectProperties(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	props, err := p.objectProperties(a)
	return ontology.EquivalentObjectProperties{Properties: props}, err
}

func decodeDisjointObjectProperties(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	props, err := p.objectProperties(a)
	return ontology.DisjointObjectProperties{Properties: props}, err
}

func decodeInverseObjectProperties(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	names, err := p.iris(a)
	if err != nil {
		return nil, err
	}
	return ontology.InverseObjectProperties{First: names[0], Second: names[1]}, nil
}

func decodeObjectPropertyDomain(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	prop, err := p.iri(a[0])
	if err != nil {
		return nil, err
	}
	ce, err := p.classExpression(a[1])
	return ontology.ObjectPropertyDomain{Property: prop, Domain: ce}, err
}

func decodeObjectPropertyRange(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	prop, err := p.iri(a[0])
	if err != nil {
		return nil, err
	}
	ce, err := p.classExpression(a[1])
	return ontology.ObjectPropertyRange{Property: prop, Range: ce}, err
}

func decodeSubDataPropertyOf(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	names, err := p.iris(a)
	if err != nil {
		return nil, err
	}
	return ontology.SubDataPropertyOf{Sub: names[0], Super: names[1]}, nil
}

func decodeEquivalentDataProperties(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	names, err := p.iris(a)
	return ontology.EquivalentDataProperties{Properties: names}, err
}

func decodeDisjointDataProperties(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	names, err := p.iris(a)
	return ontology.DisjointDataProperties{Properties: names}, err
}

func decodeDataPropertyDomain(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	prop, err := p.iri(a[0])
	if err != nil {
		return nil, err
	}
	ce, err := p.classExpression(a[1])
	return ontology.DataPropertyDomain{Property: prop, Domain: ce}, err
}

func decodeDataPropertyRange(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	names, err := p.iris(a)
	if err != nil {
		return nil, err
	}
	return ontology.DataPropertyRange{Property: names[0], Datatype: names[1]}, nil
}

func decodeFunctionalDataProperty(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 1); err != nil {
		return nil, err
	}
	prop, err := p.iri(a[0])
	return ontology.FunctionalDataProperty{Property: prop}, err
}

// decodeHasKey reads [class, [object properties], [data properties]].
func decodeHasKey(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if len(a) < 2 || len(a) > 3 {
		return nil, p.errorf(n, "HasKey takes a class, object properties and data properties")
	}
	ce, err := p.classExpression(a[0])
	if err != nil {
		return nil, err
	}
	hk := ontology.HasKey{Class: ce}
	if hk.ObjectProperties, err = p.objectProperties(args(a[1])); err != nil {
		return nil, err
	}
	if len(a) == 3 {
		if hk.DataProperties, err = p.iris(args(a[2])); err != nil {
			return nil, err
		}
	}
	if len(hk.ObjectProperties)+len(hk.DataProperties) == 0 {
		return nil, p.errorf(n, "HasKey needs at least one property")
	}
	return hk, nil
}

// decodeClassAssertion reads [class, individual].
func decodeClassAssertion(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 2); err != nil {
		return nil, err
	}
	ce, err := p.classExpression(a[0])
	if err != nil {
		return nil, err
	}
	ind, err := p.iri(a[1])
	return ontology.ClassAssertion{Class: ce, Individual: ind}, err
}

// decodeObjectPropertyAssertion reads [property, subject, object].
func decodeObjectPropertyAssertion(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 3); err != nil {
		return nil, err
	}
	prop, err := p.objectProperty(a[0])
	if err != nil {
		return nil, err
	}
	names, err := p.iris(a[1:])
	if err != nil {
		return nil, err
	}
	return ontology.ObjectPropertyAssertion{Property: prop, Subject: names[0], Object: names[1]}, nil
}

// decodeDataPropertyAssertion reads [property, subject, literal].
func decodeDataPropertyAssertion(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 3); err != nil {
		return nil, err
	}
	names, err := p.iris(a[:2])
	if err != nil {
		return nil, err
	}
	lit, err := p.literal(a[2])
	return ontology.DataPropertyAssertion{Property: names[0], Subject: names[1], Value: lit}, err
}

func decodeSameIndividual(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	inds, err := p.iris(a)
	return ontology.SameIndividual{Individuals: inds}, err
}

func decodeDifferentIndividuals(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := atLeast(p, n, a, 2); err != nil {
		return nil, err
	}
	inds, err := p.iris(a)
	return ontology.DifferentIndividuals{Individuals: inds}, err
}

// decodeAnnotationAssertion reads [property, subject, value] where value is
// a literal or an {iri: ...} mapping.
func decodeAnnotationAssertion(p *parser, n *yaml.Node, a []*yaml.Node) (ontology.Axiom, error) {
	if err := arity(p, n, a, 3); err != nil {
		return nil, err
	}
	names, err := p.iris(a[:2])
	if err != nil {
		return nil, err
	}
	aa := ontology.AnnotationAssertion{Property: names[0], Subject: names[1]}
	iri, isIRI, err := p.resource(a[2])
	if err != nil {
		return nil, err
	}
	if isIRI {
		aa.ValueIRI = iri
		return aa, nil
	}
	aa.Value, err = p.literal(a[2])
	return aa, err
}
