// Package snapshot loads ontologies from YAML snapshot files, resolves glob
// patterns to snapshot files and watches them for changes.
//
// A snapshot names the ontology, optional prefixes, declarations grouped by
// entity kind, axioms keyed by their functional-syntax name and raw triples:
//
//	iri: http://example.org/pizza
//	prefixes:
//	  ex: http://example.org/pizza#
//	declarations:
//	  Class: [ex:Pizza, ex:Topping]
//	  NamedIndividual: [ex:margherita]
//	axioms:
//	  - DisjointClasses: [ex:Pizza, ex:Topping]
//	  - ClassAssertion: [{ObjectIntersectionOf: [ex:Pizza, ex:Topping]}, ex:margherita]
//	  - DataPropertyAssertion: [ex:price, ex:margherita, {value: "8.5", datatype: xsd:decimal}]
//	triples:
//	  - [ex:list, rdf:first, ex:a]
//
// A string class expression names a class; a single-key mapping builds an
// anonymous expression. Literals are YAML scalars, whose tag picks the
// datatype, or {value, datatype, lang} mappings. Annotation values that are
// IRIs use {iri: ...}. Triple objects are IRIs unless written as a literal
// mapping.
package snapshot

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/vocabulary/owl"
	"github.com/c360studio/semowl/vocabulary/owltime"
)

// Snapshot errors.
var (
	// ErrMalformed is returned when a snapshot does not follow the format.
	ErrMalformed = errors.New("malformed snapshot")

	// ErrUnknownAxiom is returned for axiom names the loader does not know.
	ErrUnknownAxiom = errors.New("unknown axiom")

	// ErrUnknownPrefix is returned when a CURIE uses an undeclared prefix.
	ErrUnknownPrefix = errors.New("unknown prefix")
)

// standardPrefixes are always available.
var standardPrefixes = map[string]string{
	"owl":  owl.OWLNamespace,
	"rdf":  owl.RDFNamespace,
	"rdfs": owl.RDFSNamespace,
	"xsd":  owl.XSDNamespace,
	"time": owltime.Namespace,
}

// document is the top-level layout of a snapshot file.
type document struct {
	IRI          string                 `yaml:"iri"`
	Prefixes     map[string]string      `yaml:"prefixes"`
	Declarations map[string][]yaml.Node `yaml:"declarations"`
	Axioms       []yaml.Node            `yaml:"axioms"`
	Triples      [][]yaml.Node          `yaml:"triples"`
}

// LoadFile reads and parses a snapshot file.
func LoadFile(path string) (*ontology.Ontology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	ont, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ont, nil
}

// Parse builds an ontology from snapshot YAML.
func Parse(data []byte) (*ontology.Ontology, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.IRI == "" {
		return nil, fmt.Errorf("%w: missing iri", ErrMalformed)
	}

	p := &parser{prefixes: make(map[string]string, len(standardPrefixes)+len(doc.Prefixes))}
	for k, v := range standardPrefixes {
		p.prefixes[k] = v
	}
	for k, v := range doc.Prefixes {
		p.prefixes[k] = v
	}
	ont := ontology.New(p.expand(doc.IRI))

	for _, kindName := range sortedKeys(doc.Declarations) {
		kind, ok := ontology.ParseEntityKind(kindName)
		if !ok {
			return nil, fmt.Errorf("%w: unknown entity kind %q", ErrMalformed, kindName)
		}
		for i := range doc.Declarations[kindName] {
			iri, err := p.iri(&doc.Declarations[kindName][i])
			if err != nil {
				return nil, err
			}
			if err := ont.DeclareEntity(kind, iri); err != nil {
				return nil, err
			}
		}
	}

	for i := range doc.Axioms {
		ax, err := p.axiom(&doc.Axioms[i])
		if err != nil {
			return nil, err
		}
		if err := ont.DeclareAxiom(ax); err != nil {
			return nil, fmt.Errorf("line %d: %w", doc.Axioms[i].Line, err)
		}
	}

	for _, row := range doc.Triples {
		t, err := p.triple(row)
		if err != nil {
			return nil, err
		}
		if err := ont.AddTriple(t); err != nil {
			return nil, err
		}
	}

	return ont, nil
}

type parser struct {
	prefixes map[string]string
}

func (p *parser) errorf(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", n.Line, ErrMalformed, fmt.Sprintf(format, args...))
}

// expand resolves a CURIE against the known prefixes. Absolute IRIs and
// unprefixed names are returned unchanged.
func (p *parser) expand(s string) string {
	prefix, local, ok := strings.Cut(s, ":")
	if !ok || strings.HasPrefix(local, "//") {
		return s
	}
	if ns, known := p.prefixes[prefix]; known {
		return ns + local
	}
	return s
}

func (p *parser) iri(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", p.errorf(n, "expected an IRI")
	}
	prefix, local, ok := strings.Cut(n.Value, ":")
	if ok && !strings.HasPrefix(local, "//") && prefix != "urn" && prefix != "_" {
		if _, known := p.prefixes[prefix]; !known {
			return "", fmt.Errorf("line %d: %w: %s", n.Line, ErrUnknownPrefix, prefix)
		}
	}
	return p.expand(n.Value), nil
}

func (p *parser) iris(nodes []*yaml.Node) ([]string, error) {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		iri, err := p.iri(n)
		if err != nil {
			return nil, err
		}
		out = append(out, iri)
	}
	return out, nil
}

// args returns the items of a sequence node, or the node itself when it
// is a scalar.
func args(n *yaml.Node) []*yaml.Node {
	if n.Kind == yaml.SequenceNode {
		return n.Content
	}
	return []*yaml.Node{n}
}

// single returns the key and value of a single-entry mapping.
func (p *parser) single(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, p.errorf(n, "expected a single-key mapping")
	}
	return n.Content[0].Value, n.Content[1], nil
}

func (p *parser) objectProperty(n *yaml.Node) (ontology.ObjectPropertyExpression, error) {
	if n.Kind == yaml.MappingNode {
		key, value, err := p.single(n)
		if err != nil {
			return ontology.ObjectPropertyExpression{}, err
		}
		if key != "ObjectInverseOf" {
			return ontology.ObjectPropertyExpression{}, p.errorf(n, "unknown property expression %s", key)
		}
		iri, err := p.iri(value)
		return ontology.ObjectInverse(iri), err
	}
	iri, err := p.iri(n)
	return ontology.ObjectProp(iri), err
}

func (p *parser) objectProperties(nodes []*yaml.Node) ([]ontology.ObjectPropertyExpression, error) {
	out := make([]ontology.ObjectPropertyExpression, 0, len(nodes))
	for _, n := range nodes {
		pe, err := p.objectProperty(n)
		if err != nil {
			return nil, err
		}
		out = append(out, pe)
	}
	return out, nil
}

func (p *parser) classExpressions(nodes []*yaml.Node) ([]ontology.ClassExpression, error) {
	out := make([]ontology.ClassExpression, 0, len(nodes))
	for _, n := range nodes {
		ce, err := p.classExpression(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ce)
	}
	return out, nil
}

var cardinalityKinds = map[string]ontology.CardinalityKind{
	"ObjectMinCardinality":   ontology.CardinalityMin,
	"ObjectMaxCardinality":   ontology.CardinalityMax,
	"ObjectExactCardinality": ontology.CardinalityExact,
	"DataMinCardinality":     ontology.CardinalityMin,
	"DataMaxCardinality":     ontology.CardinalityMax,
	"DataExactCardinality":   ontology.CardinalityExact,
}

func (p *parser) classExpression(n *yaml.Node) (ontology.ClassExpression, error) {
	if n.Kind == yaml.ScalarNode {
		iri, err := p.iri(n)
		return ontology.Class{IRI: iri}, err
	}
	key, value, err := p.single(n)
	if err != nil {
		return nil, err
	}
	a := args(value)

	switch key {
	case "ObjectComplementOf":
		operand, err := p.classExpression(value)
		return ontology.ObjectComplementOf{Operand: operand}, err
	case "ObjectUnionOf":
		operands, err := p.classExpressions(a)
		return ontology.ObjectUnionOf{Operands: operands}, err
	case "ObjectIntersectionOf":
		operands, err := p.classExpressions(a)
		return ontology.ObjectIntersectionOf{Operands: operands}, err
	case "ObjectOneOf":
		inds, err := p.iris(a)
		return ontology.ObjectOneOf{Individuals: inds}, err
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		if len(a) != 2 {
			return nil, p.errorf(n, "%s takes a property and a filler", key)
		}
		prop, err := p.objectProperty(a[0])
		if err != nil {
			return nil, err
		}
		filler, err := p.classExpression(a[1])
		if err != nil {
			return nil, err
		}
		if key == "ObjectSomeValuesFrom" {
			return ontology.ObjectSomeValuesFrom{Property: prop, Filler: filler}, nil
		}
		return ontology.ObjectAllValuesFrom{Property: prop, Filler: filler}, nil
	case "ObjectHasValue":
		if len(a) != 2 {
			return nil, p.errorf(n, "ObjectHasValue takes a property and an individual")
		}
		prop, err := p.objectProperty(a[0])
		if err != nil {
			return nil, err
		}
		ind, err := p.iri(a[1])
		return ontology.ObjectHasValue{Property: prop, Individual: ind}, err
	case "DataSomeValuesFrom", "DataAllValuesFrom":
		if len(a) != 2 {
			return nil, p.errorf(n, "%s takes a property and a datatype", key)
		}
		names, err := p.iris(a)
		if err != nil {
			return nil, err
		}
		if key == "DataSomeValuesFrom" {
			return ontology.DataSomeValuesFrom{Property: names[0], Datatype: names[1]}, nil
		}
		return ontology.DataAllValuesFrom{Property: names[0], Datatype: names[1]}, nil
	case "DataHasValue":
		if len(a) != 2 {
			return nil, p.errorf(n, "DataHasValue takes a property and a literal")
		}
		prop, err := p.iri(a[0])
		if err != nil {
			return nil, err
		}
		lit, err := p.literal(a[1])
		return ontology.DataHasValue{Property: prop, Value: lit}, err
	}

	if kind, ok := cardinalityKinds[key]; ok {
		return p.cardinality(n, key, kind, a)
	}
	return nil, p.errorf(n, "unknown class expression %s", key)
}

// cardinality decodes [n, property] or [n, property, filler].
func (p *parser) cardinality(n *yaml.Node, key string, kind ontology.CardinalityKind, a []*yaml.Node) (ontology.ClassExpression, error) {
	if len(a) < 2 || len(a) > 3 {
		return nil, p.errorf(n, "%s takes a number, a property and an optional filler", key)
	}
	var count int
	if err := a[0].Decode(&count); err != nil || count < 0 {
		return nil, p.errorf(a[0], "%s needs a non-negative count", key)
	}

	if strings.HasPrefix(key, "Object") {
		prop, err := p.objectProperty(a[1])
		if err != nil {
			return nil, err
		}
		oc := ontology.ObjectCardinality{Kind: kind, N: count, Property: prop}
		if len(a) == 3 {
			if oc.Filler, err = p.classExpression(a[2]); err != nil {
				return nil, err
			}
		}
		return oc, nil
	}

	prop, err := p.iri(a[1])
	if err != nil {
		return nil, err
	}
	dc := ontology.DataCardinality{Kind: kind, N: count, Property: prop}
	if len(a) == 3 {
		if dc.Datatype, err = p.iri(a[2]); err != nil {
			return nil, err
		}
	}
	return dc, nil
}

var scalarDatatypes = map[string]string{
	"!!int":   owl.XSDInteger,
	"!!float": owl.XSDDecimal,
	"!!bool":  owl.XSDBoolean,
}

// literal decodes a scalar or a {value, datatype, lang} mapping.
func (p *parser) literal(n *yaml.Node) (ontology.Literal, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return ontology.Literal{Value: n.Value, Datatype: scalarDatatypes[n.ShortTag()]}, nil
	case yaml.MappingNode:
		var raw struct {
			Value    *string `yaml:"value"`
			Datatype string  `yaml:"datatype"`
			Lang     string  `yaml:"lang"`
		}
		if err := n.Decode(&raw); err != nil || raw.Value == nil {
			return ontology.Literal{}, p.errorf(n, "literal needs a value")
		}
		if raw.Lang != "" {
			return ontology.NewLangLiteral(*raw.Value, raw.Lang), nil
		}
		return ontology.Literal{Value: *raw.Value, Datatype: p.expand(raw.Datatype)}, nil
	default:
		return ontology.Literal{}, p.errorf(n, "expected a literal")
	}
}

// resource reports whether n is an {iri: ...} mapping and returns its IRI.
func (p *parser) resource(n *yaml.Node) (string, bool, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 || n.Content[0].Value != "iri" {
		return "", false, nil
	}
	iri, err := p.iri(n.Content[1])
	return iri, true, err
}

func (p *parser) triple(row []yaml.Node) (ontology.Triple, error) {
	if len(row) != 3 {
		line := 0
		if len(row) > 0 {
			line = row[0].Line
		}
		return ontology.Triple{}, fmt.Errorf("line %d: %w: a triple has three terms", line, ErrMalformed)
	}
	s, err := p.iri(&row[0])
	if err != nil {
		return ontology.Triple{}, err
	}
	pred, err := p.iri(&row[1])
	if err != nil {
		return ontology.Triple{}, err
	}
	if row[2].Kind == yaml.ScalarNode {
		o, err := p.iri(&row[2])
		return ontology.Triple{Subject: s, Predicate: pred, Object: o}, err
	}
	if o, isIRI, err := p.resource(&row[2]); isIRI || err != nil {
		return ontology.Triple{Subject: s, Predicate: pred, Object: o}, err
	}
	lit, err := p.literal(&row[2])
	if err != nil {
		return ontology.Triple{}, err
	}
	return ontology.Triple{Subject: s, Predicate: pred, Value: &lit}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
