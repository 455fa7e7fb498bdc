package index_test

import (
	"sync"
	"testing"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ex = "http://example.org/"

func cls(name string) ontology.Class { return ontology.Class{IRI: ex + name} }

func build(t *testing.T, axioms ...ontology.Axiom) *index.Index {
	t.Helper()
	o := ontology.New(ex + "onto")
	require.NoError(t, o.Add(axioms...))
	return index.New(o)
}

func TestClosure_Classes(t *testing.T) {
	idx := build(t,
		ontology.SubClassOf{Sub: cls("Dog"), Super: cls("Mammal")},
		ontology.SubClassOf{Sub: cls("Mammal"), Super: cls("Animal")},
		ontology.EquivalentClasses{Classes: []ontology.ClassExpression{cls("Animal"), cls("Creature")}},
		ontology.EquivalentClasses{Classes: []ontology.ClassExpression{cls("Creature"), cls("Beast")}},
	)

	assert.Equal(t, []string{ex + "Animal", ex + "Beast", ex + "Creature"}, idx.Closure(ex+"Beast", index.EquivalentClass))
	assert.Equal(t,
		[]string{ex + "Animal", ex + "Beast", ex + "Creature", ex + "Dog", ex + "Mammal"},
		idx.Closure(ex+"Dog", index.SubClassOf),
	)
	assert.Equal(t,
		[]string{ex + "Animal", ex + "Beast", ex + "Creature", ex + "Dog", ex + "Mammal"},
		idx.Closure(ex+"Creature", index.SuperClassOf),
	)
	assert.Equal(t, []string{ex + "Unknown"}, idx.Closure(ex+"Unknown", index.SubClassOf), "closure is reflexive")
	assert.True(t, idx.IsSubClassOf(ex+"Dog", ex+"Beast"))
	assert.False(t, idx.IsSubClassOf(ex+"Animal", ex+"Dog"))
}

func TestClosure_CyclicSubclasses(t *testing.T) {
	idx := build(t,
		ontology.SubClassOf{Sub: cls("A"), Super: cls("B")},
		ontology.SubClassOf{Sub: cls("B"), Super: cls("C")},
		ontology.SubClassOf{Sub: cls("C"), Super: cls("A")},
	)
	assert.Equal(t, []string{ex + "A", ex + "B", ex + "C"}, idx.Closure(ex+"B", index.SubClassOf))
}

func TestClosure_Individuals(t *testing.T) {
	idx := build(t,
		ontology.SameIndividual{Individuals: []string{ex + "a", ex + "b"}},
		ontology.SameIndividual{Individuals: []string{ex + "b", ex + "c"}},
		ontology.DifferentIndividuals{Individuals: []string{ex + "c", ex + "d"}},
	)

	assert.Equal(t, []string{ex + "a", ex + "b", ex + "c"}, idx.Closure(ex+"a", index.SameIndividual))
	assert.Equal(t, []string{ex + "d"}, idx.Closure(ex+"a", index.DifferentIndividual))
	assert.Equal(t, []string{ex + "a", ex + "b", ex + "c"}, idx.Closure(ex+"d", index.DifferentIndividual))
	assert.True(t, idx.AreSameIndividuals(ex+"a", ex+"c"))
	assert.True(t, idx.IsKnownDifferent(ex+"a", ex+"d"))
	assert.False(t, idx.IsKnownDifferent(ex+"a", ex+"b"))
	assert.Equal(t, []string{ex + "a", ex + "b", ex + "c", ex + "d"}, idx.Individuals())
}

func TestClosure_Properties(t *testing.T) {
	idx := build(t,
		ontology.SubObjectPropertyOf{Sub: ontology.ObjectProp(ex + "hasSon"), Super: ontology.ObjectProp(ex + "hasChild")},
		ontology.EquivalentObjectProperties{Properties: []ontology.ObjectPropertyExpression{
			ontology.ObjectProp(ex + "hasChild"), ontology.ObjectProp(ex + "hasKid"),
		}},
		ontology.InverseObjectProperties{First: ex + "hasChild", Second: ex + "hasParent"},
		ontology.EquivalentObjectProperties{Properties: []ontology.ObjectPropertyExpression{
			ontology.ObjectProp(ex + "hasMother"), ontology.ObjectInverse(ex + "motherOf"),
		}},
	)

	assert.Equal(t, []string{ex + "hasChild", ex + "hasKid", ex + "hasSon"}, idx.Closure(ex+"hasSon", index.SubPropertyOf))
	assert.Equal(t, []string{ex + "hasChild", ex + "hasKid", ex + "hasSon"}, idx.Closure(ex+"hasKid", index.SuperPropertyOf))
	assert.Equal(t, []string{ex + "hasChild", ex + "hasKid"}, idx.Closure(ex+"hasKid", index.EquivalentProperty))
	assert.Equal(t, []string{ex + "hasParent"}, idx.Closure(ex+"hasKid", index.InverseOf))
	assert.Equal(t, []string{ex + "hasChild", ex + "hasKid"}, idx.Closure(ex+"hasParent", index.InverseOf))
	assert.Equal(t, []string{ex + "motherOf"}, idx.Closure(ex+"hasMother", index.InverseOf))
}

func TestDisjointness(t *testing.T) {
	idx := build(t,
		ontology.DisjointClasses{Classes: []ontology.ClassExpression{cls("Animal"), cls("Plant")}},
		ontology.SubClassOf{Sub: cls("Dog"), Super: cls("Animal")},
		ontology.SubClassOf{Sub: cls("Tree"), Super: cls("Plant")},
		ontology.SubClassOf{Sub: cls("Rock"), Super: ontology.ObjectComplementOf{Operand: cls("Animal")}},
		ontology.DisjointUnion{Class: ex + "Person", Classes: []ontology.ClassExpression{cls("Man"), cls("Woman")}},
	)

	assert.True(t, idx.AreDisjointClasses(ex+"Dog", ex+"Tree"))
	assert.True(t, idx.AreDisjointClasses(ex+"Rock", ex+"Dog"))
	assert.True(t, idx.AreDisjointClasses(ex+"Man", ex+"Woman"))
	assert.False(t, idx.AreDisjointClasses(ex+"Dog", ex+"Animal"))
	assert.True(t, idx.IsSubClassOf(ex+"Woman", ex+"Person"))
	assert.Equal(t, []string{ex + "Plant", ex + "Rock", ex + "Tree"}, idx.Closure(ex+"Dog", index.DisjointClass))
	assert.Contains(t, idx.DisjointClassPairs(), [2]string{ex + "Animal", ex + "Plant"})
}

func TestTypes(t *testing.T) {
	max1 := ontology.ObjectCardinality{Kind: ontology.CardinalityMax, N: 1, Property: ontology.ObjectProp(ex + "contains")}
	idx := build(t,
		ontology.SubClassOf{Sub: cls("Max1ItemBox"), Super: max1},
		ontology.SubClassOf{Sub: cls("Max1ItemBox"), Super: cls("Box")},
		ontology.ClassAssertion{Class: cls("Max1ItemBox"), Individual: ex + "box"},
		ontology.ClassAssertion{
			Class:      ontology.ObjectIntersectionOf{Operands: []ontology.ClassExpression{cls("Red"), ontology.ObjectHasValue{Property: ontology.ObjectProp(ex + "p"), Individual: ex + "x"}}},
			Individual: ex + "box",
		},
	)

	assert.Equal(t, []string{ex + "Box", ex + "Max1ItemBox", ex + "Red"}, idx.TypesOf(ex+"box"))
	assert.True(t, idx.IsInstanceOf(ex+"box", ex+"Box"))

	exprs := idx.TypeExpressionsOf(ex + "box")
	require.Len(t, exprs, 2)
	assert.Equal(t, "ObjectHasValue(<http://example.org/p> <http://example.org/x>)", exprs[0].String())
	assert.Equal(t, max1.String(), exprs[1].String())
}

func TestValues(t *testing.T) {
	idx := build(t,
		ontology.SubObjectPropertyOf{Sub: ontology.ObjectProp(ex + "hasSon"), Super: ontology.ObjectProp(ex + "hasChild")},
		ontology.InverseObjectProperties{First: ex + "hasChild", Second: ex + "hasParent"},
		ontology.ObjectPropertyCharacteristic{Property: ex + "knows", Characteristic: ontology.Symmetric},
		ontology.ObjectPropertyAssertion{Property: ontology.ObjectProp(ex + "hasSon"), Subject: ex + "ann", Object: ex + "bob"},
		ontology.ObjectPropertyAssertion{Property: ontology.ObjectProp(ex + "hasParent"), Subject: ex + "cid", Object: ex + "ann"},
		ontology.ObjectPropertyAssertion{Property: ontology.ObjectInverse(ex + "hasChild"), Subject: ex + "dan", Object: ex + "annie"},
		ontology.SameIndividual{Individuals: []string{ex + "ann", ex + "annie"}},
		ontology.ObjectPropertyAssertion{Property: ontology.ObjectProp(ex + "knows"), Subject: ex + "eve", Object: ex + "ann"},
		ontology.DataPropertyAssertion{Property: ex + "age", Subject: ex + "ann", Value: ontology.NewLiteral("40", "")},
		ontology.DataPropertyAssertion{Property: ex + "age", Subject: ex + "annie", Value: ontology.NewLiteral("40", "")},
	)

	assert.Equal(t, []string{ex + "bob", ex + "cid", ex + "dan"}, idx.ObjectValues(ex+"ann", ex+"hasChild"))
	assert.Equal(t, []string{ex + "bob"}, idx.ObjectValues(ex+"ann", ex+"hasSon"))
	assert.Equal(t, []string{ex + "ann"}, idx.ObjectValues(ex+"bob", ex+"hasParent"))
	assert.Equal(t, []string{ex + "ann"}, idx.ObjectSubjects(ex+"bob", ex+"hasChild"))
	assert.Equal(t, []string{ex + "eve"}, idx.ObjectValues(ex+"ann", ex+"knows"), "symmetric properties are followed backwards")
	assert.Len(t, idx.DataValues(ex+"annie", ex+"age"), 1)
}

func TestCharacteristics(t *testing.T) {
	idx := build(t,
		ontology.ObjectPropertyCharacteristic{Property: ex + "ancestorOf", Characteristic: ontology.Transitive},
		ontology.SubObjectPropertyOf{Sub: ontology.ObjectProp(ex + "ancestorOf"), Super: ontology.ObjectProp(ex + "relatedTo")},
		ontology.SubObjectPropertyOf{
			Chain: []ontology.ObjectPropertyExpression{ontology.ObjectProp(ex + "hasParent"), ontology.ObjectProp(ex + "hasBrother")},
			Super: ontology.ObjectProp(ex + "hasUncle"),
		},
		ontology.ObjectPropertyCharacteristic{Property: ex + "hasMother", Characteristic: ontology.Functional},
		ontology.InverseObjectProperties{First: ex + "hasMother", Second: ex + "motherOf"},
	)

	assert.True(t, idx.IsNonSimple(ex+"ancestorOf"))
	assert.True(t, idx.IsNonSimple(ex+"relatedTo"))
	assert.True(t, idx.IsNonSimple(ex+"hasUncle"))
	assert.False(t, idx.IsNonSimple(ex+"hasParent"))
	assert.True(t, idx.HasCharacteristic(ex+"motherOf", ontology.InverseFunctional))
	assert.False(t, idx.HasCharacteristic(ex+"motherOf", ontology.Functional))
}

func TestSignature(t *testing.T) {
	idx := build(t,
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindClass, IRI: ex + "A"}},
		ontology.SubClassOf{Sub: cls("A"), Super: ontology.ObjectSomeValuesFrom{Property: ontology.ObjectProp(ex + "p"), Filler: cls("B")}},
	)

	var got []ontology.Entity
	for _, u := range idx.Signature() {
		got = append(got, u.Entity)
	}
	assert.Equal(t, []ontology.Entity{
		{Kind: ontology.KindClass, IRI: ex + "A"},
		{Kind: ontology.KindClass, IRI: ex + "B"},
		{Kind: ontology.KindObjectProperty, IRI: ex + "p"},
	}, got)
}

func TestConcurrentReaders(t *testing.T) {
	idx := build(t,
		ontology.SubClassOf{Sub: cls("A"), Super: cls("B")},
		ontology.ClassAssertion{Class: cls("A"), Individual: ex + "a"},
	)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, []string{ex + "A", ex + "B"}, idx.TypesOf(ex+"a"))
				_ = idx.Closure(ex+"a", index.SameIndividual)
			}
		}()
	}
	wg.Wait()
}
