package rules_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/validator/report"
	"github.com/c360studio/semowl/validator/rules"
	"github.com/c360studio/semowl/vocabulary/owl"
)

const ns = "http://example.org/test#"

func iri(local string) string { return ns + local }

func cls(local string) ontology.Class { return ontology.Class{IRI: iri(local)} }

func prop(local string) ontology.ObjectPropertyExpression { return ontology.ObjectProp(iri(local)) }

func typed(class, ind string) ontology.ClassAssertion {
	return ontology.ClassAssertion{Class: cls(class), Individual: iri(ind)}
}

func rel(p, s, o string) ontology.ObjectPropertyAssertion {
	return ontology.ObjectPropertyAssertion{Property: prop(p), Subject: iri(s), Object: iri(o)}
}

func char(p string, c ontology.Characteristic) ontology.ObjectPropertyCharacteristic {
	return ontology.ObjectPropertyCharacteristic{Property: iri(p), Characteristic: c}
}

func different(inds ...string) ontology.DifferentIndividuals {
	out := make([]string, len(inds))
	for i, ind := range inds {
		out[i] = iri(ind)
	}
	return ontology.DifferentIndividuals{Individuals: out}
}

func same(inds ...string) ontology.SameIndividual {
	out := make([]string, len(inds))
	for i, ind := range inds {
		out[i] = iri(ind)
	}
	return ontology.SameIndividual{Individuals: out}
}

func disjoint(classes ...string) ontology.DisjointClasses {
	out := make([]ontology.ClassExpression, len(classes))
	for i, c := range classes {
		out[i] = cls(c)
	}
	return ontology.DisjointClasses{Classes: out}
}

func data(p, s string, lit ontology.Literal) ontology.DataPropertyAssertion {
	return ontology.DataPropertyAssertion{Property: iri(p), Subject: iri(s), Value: lit}
}

func build(t *testing.T, axioms ...ontology.Axiom) *ontology.Ontology {
	t.Helper()
	ont := ontology.New(ns)
	require.NoError(t, ont.Add(axioms...))
	return ont
}

func run(t *testing.T, id rules.ID, axioms ...ontology.Axiom) *report.Report {
	t.Helper()
	rep, err := rules.Execute(id, build(t, axioms...))
	require.NoError(t, err)
	for _, issue := range rep.Issues {
		assert.Equal(t, id.String(), issue.RuleName)
		assert.NotEmpty(t, issue.Description)
	}
	return rep
}

func maxBox() ontology.SubClassOf {
	return ontology.SubClassOf{
		Sub:   cls("Max1ItemBox"),
		Super: ontology.ObjectCardinality{Kind: ontology.CardinalityMax, N: 1, Property: prop("hasItem")},
	}
}

func TestStandardTable(t *testing.T) {
	defs := rules.All()
	require.Len(t, defs, 25)

	names := make(map[string]bool)
	for i, def := range defs {
		assert.Equal(t, rules.ID(i), def.ID)
		assert.NotEmpty(t, def.Name)
		assert.NotEmpty(t, def.Description)
		assert.NotNil(t, def.Check, def.Name)
		assert.False(t, names[def.Name], "duplicate rule name %s", def.Name)
		names[def.Name] = true

		parsed, err := rules.ParseID(def.Name)
		require.NoError(t, err)
		assert.Equal(t, def.ID, parsed)
	}

	assert.Equal(t, report.Warning, rules.Standard[rules.TermDeclaration].Severity)
	assert.Equal(t, report.Warning, rules.Standard[rules.TermDeprecation].Severity)
	assert.Equal(t, report.Error, rules.Standard[rules.ClassType].Severity)

	_, err := rules.ParseID("NoSuchRule")
	assert.ErrorIs(t, err, rules.ErrUnknownRule)
	_, err = rules.Execute(rules.ID(99), ontology.New(ns))
	assert.ErrorIs(t, err, rules.ErrUnknownRule)
	id, err := rules.ParseID(" classtype ")
	require.NoError(t, err)
	assert.Equal(t, rules.ClassType, id)
}

func TestClassType_MaxCardinality(t *testing.T) {
	base := []ontology.Axiom{
		maxBox(),
		typed("Max1ItemBox", "box"),
		rel("hasItem", "box", "item1"),
		rel("hasItem", "box", "item2"),
	}

	t.Run("values not known different", func(t *testing.T) {
		rep := run(t, rules.ClassType, base...)
		assert.Equal(t, 0, rep.Count())
	})

	t.Run("values asserted different", func(t *testing.T) {
		rep := run(t, rules.ClassType, append(base, different("item1", "item2"))...)
		require.Equal(t, 1, rep.Count())
		assert.Equal(t, report.Error, rep.Issues[0].Severity)
		assert.Contains(t, rep.Issues[0].Description, iri("box"))
	})

	t.Run("same values collapse", func(t *testing.T) {
		rep := run(t, rules.ClassType, append(base, different("item1", "item2"), rel("hasItem", "box", "item3"), same("item2", "item3"))...)
		assert.Equal(t, 1, rep.Count())
	})

	t.Run("min cardinality is never validated", func(t *testing.T) {
		rep := run(t, rules.ClassType,
			ontology.SubClassOf{
				Sub:   cls("Min2ItemBox"),
				Super: ontology.ObjectCardinality{Kind: ontology.CardinalityMin, N: 2, Property: prop("hasItem")},
			},
			typed("Min2ItemBox", "box"),
		)
		assert.Equal(t, 0, rep.Count())
	})

	t.Run("qualified restriction counts only typed values", func(t *testing.T) {
		rep := run(t, rules.ClassType,
			ontology.SubClassOf{
				Sub:   cls("OneRedBox"),
				Super: ontology.ObjectCardinality{Kind: ontology.CardinalityMax, N: 1, Property: prop("hasItem"), Filler: cls("Red")},
			},
			typed("OneRedBox", "box"),
			rel("hasItem", "box", "item1"),
			rel("hasItem", "box", "item2"),
			typed("Red", "item1"),
			different("item1", "item2"),
		)
		assert.Equal(t, 0, rep.Count())
	})

	t.Run("data cardinality", func(t *testing.T) {
		rep := run(t, rules.ClassType,
			ontology.ClassAssertion{
				Class:      ontology.DataCardinality{Kind: ontology.CardinalityExact, N: 1, Property: iri("label")},
				Individual: iri("a"),
			},
			data("label", "a", ontology.NewLiteral("x", "")),
			data("label", "a", ontology.NewLiteral("y", "")),
		)
		assert.Equal(t, 1, rep.Count())
	})
}

func TestClassType_Disjointness(t *testing.T) {
	rep := run(t, rules.ClassType,
		disjoint("Cat", "Dog"),
		ontology.SubClassOf{Sub: cls("Kitten"), Super: cls("Cat")},
		typed("Kitten", "tom"),
		typed("Dog", "tom"),
		typed("Cat", "felix"),
	)
	require.Equal(t, 1, rep.Count())
	assert.Contains(t, rep.Issues[0].Description, iri("tom"))

	rep = run(t, rules.ClassType,
		typed("Cat", "tom"),
		ontology.ClassAssertion{Class: ontology.ObjectComplementOf{Operand: cls("Cat")}, Individual: iri("tom")},
	)
	assert.Equal(t, 1, rep.Count())
}

func TestClassType_Scale(t *testing.T) {
	if testing.Short() {
		t.Skip("scaling test")
	}
	axioms := []ontology.Axiom{maxBox()}
	const boxes = 30000
	for i := 0; i < boxes; i++ {
		box := fmt.Sprintf("box%d", i)
		axioms = append(axioms,
			typed("Max1ItemBox", box),
			rel("hasItem", box, box+"-a"),
			rel("hasItem", box, box+"-b"),
		)
	}
	axioms = append(axioms, different("box7-a", "box7-b"))

	ont := build(t, axioms...)
	start := time.Now()
	rep := rules.Standard[rules.ClassType].Execute(ont)
	assert.Less(t, time.Since(start), 30*time.Second)
	assert.Equal(t, 1, rep.Count())
}

func TestClassKey(t *testing.T) {
	key := ontology.HasKey{Class: cls("Person"), DataProperties: []string{iri("ssn"), iri("name")}}
	lit := func(v string) ontology.Literal { return ontology.NewLiteral(v, "") }

	t.Run("partial keys never clash", func(t *testing.T) {
		rep := run(t, rules.ClassKey,
			key,
			typed("Person", "a"), typed("Person", "b"),
			data("ssn", "a", lit("1")), data("name", "a", lit("x")),
			data("ssn", "b", lit("1")),
			different("a", "b"),
		)
		assert.Equal(t, 0, rep.Count())
	})

	t.Run("full key collision with differentFrom", func(t *testing.T) {
		rep := run(t, rules.ClassKey,
			key,
			typed("Person", "a"), typed("Person", "c"),
			data("ssn", "a", lit("1")), data("name", "a", lit("x")),
			data("ssn", "c", lit("1")), data("name", "c", lit("x")),
			different("a", "c"),
		)
		assert.Equal(t, 1, rep.Count())
	})

	t.Run("full key collision without differentFrom", func(t *testing.T) {
		rep := run(t, rules.ClassKey,
			key,
			typed("Person", "a"), typed("Person", "c"),
			data("ssn", "a", lit("1")), data("name", "a", lit("x")),
			data("ssn", "c", lit("1")), data("name", "c", lit("x")),
		)
		assert.Equal(t, 0, rep.Count())
	})

	t.Run("value sets are combined", func(t *testing.T) {
		rep := run(t, rules.ClassKey,
			key,
			typed("Person", "d"), typed("Person", "e"),
			data("ssn", "d", lit("2")), data("ssn", "d", lit("3")), data("name", "d", lit("y")),
			data("ssn", "e", lit("3")), data("name", "e", lit("y")),
			different("d", "e"),
		)
		assert.Equal(t, 1, rep.Count())
	})

	t.Run("object key", func(t *testing.T) {
		rep := run(t, rules.ClassKey,
			ontology.HasKey{Class: cls("Car"), ObjectProperties: []ontology.ObjectPropertyExpression{prop("plate")}},
			typed("Car", "c1"), typed("Car", "c2"),
			rel("plate", "c1", "p1"), rel("plate", "c2", "p2"),
			same("p1", "p2"),
			different("c1", "c2"),
		)
		assert.Equal(t, 1, rep.Count())
	})
}

func TestAsymmetricProperty(t *testing.T) {
	rep := run(t, rules.AsymmetricProperty,
		char("parentOf", ontology.Asymmetric),
		rel("parentOf", "a", "b"),
		rel("parentOf", "b", "a"),
	)
	assert.Equal(t, 1, rep.Count())

	rep = run(t, rules.AsymmetricProperty,
		char("parentOf", ontology.Asymmetric),
		ontology.EquivalentObjectProperties{Properties: []ontology.ObjectPropertyExpression{prop("parentOf"), prop("fatherOf")}},
		rel("parentOf", "a", "b"),
		rel("fatherOf", "b", "a"),
	)
	assert.Equal(t, 0, rep.Count(), "only exact pairs are matched")
}

func TestDifferentIndividuals(t *testing.T) {
	rep := run(t, rules.DifferentIndividuals,
		same("a", "b"),
		different("a", "b"),
		different("c", "c"),
		different("d", "e"),
	)
	assert.Equal(t, 2, rep.Count())
}

func TestDisjointClasses(t *testing.T) {
	rep := run(t, rules.DisjointClasses,
		disjoint("A", "B"),
		ontology.SubClassOf{Sub: cls("A"), Super: cls("B")},
		disjoint("C", "D"),
		ontology.DisjointUnion{Class: iri("Animal"), Classes: []ontology.ClassExpression{cls("Cat"), cls("Dog")}},
		ontology.EquivalentClasses{Classes: []ontology.ClassExpression{cls("Cat"), cls("Dog")}},
	)
	assert.Equal(t, 2, rep.Count())
}

func TestEquivalentClasses(t *testing.T) {
	rep := run(t, rules.EquivalentClasses,
		ontology.EquivalentClasses{Classes: []ontology.ClassExpression{cls("A"), cls("B")}},
		ontology.EquivalentClasses{Classes: []ontology.ClassExpression{cls("B"), ontology.ObjectComplementOf{Operand: cls("A")}}},
		ontology.EquivalentClasses{Classes: []ontology.ClassExpression{cls("C"), ontology.ObjectComplementOf{Operand: cls("D")}}},
	)
	assert.Equal(t, 1, rep.Count())
}

func TestDomainRange(t *testing.T) {
	t.Run("object domain", func(t *testing.T) {
		rep := run(t, rules.DomainRange,
			ontology.ObjectPropertyDomain{Property: iri("drives"), Domain: cls("Person")},
			disjoint("Person", "Vehicle"),
			ontology.SubClassOf{Sub: cls("Car"), Super: cls("Vehicle")},
			typed("Car", "x"),
			rel("drives", "x", "y"),
		)
		assert.Equal(t, 1, rep.Count())
	})

	t.Run("object range through inverse", func(t *testing.T) {
		rep := run(t, rules.DomainRange,
			ontology.ObjectPropertyRange{Property: iri("drives"), Range: cls("Vehicle")},
			disjoint("Person", "Vehicle"),
			typed("Person", "bob"),
			ontology.ObjectPropertyAssertion{Property: ontology.ObjectInverse(iri("drives")), Subject: iri("alice"), Object: iri("bob")},
		)
		assert.Equal(t, 0, rep.Count(), "bob is the subject of drives, not its object")

		rep = run(t, rules.DomainRange,
			ontology.ObjectPropertyRange{Property: iri("drives"), Range: cls("Vehicle")},
			disjoint("Person", "Vehicle"),
			typed("Person", "bob"),
			ontology.ObjectPropertyAssertion{Property: ontology.ObjectInverse(iri("drives")), Subject: iri("bob"), Object: iri("alice")},
		)
		assert.Equal(t, 1, rep.Count())

		rep = run(t, rules.DomainRange,
			ontology.ObjectPropertyRange{Property: iri("drives"), Range: cls("Vehicle")},
			disjoint("Person", "Vehicle"),
			typed("Person", "bob"),
			rel("drives", "alice", "bob"),
		)
		assert.Equal(t, 1, rep.Count())
	})

	t.Run("untyped individuals never clash", func(t *testing.T) {
		rep := run(t, rules.DomainRange,
			ontology.ObjectPropertyDomain{Property: iri("drives"), Domain: cls("Person")},
			rel("drives", "x", "y"),
		)
		assert.Equal(t, 0, rep.Count())
	})

	t.Run("data range", func(t *testing.T) {
		rep := run(t, rules.DomainRange,
			ontology.DataPropertyRange{Property: iri("age"), Datatype: owl.XSDInteger},
			data("age", "a", ontology.NewLiteral("abc", "")),
			data("age", "b", ontology.NewLiteral("42", owl.XSDInteger)),
			data("age", "c", ontology.NewLiteral("42", owl.XSDInt)),
		)
		assert.Equal(t, 1, rep.Count())
	})
}

func TestInverseOf(t *testing.T) {
	axioms := []ontology.Axiom{
		ontology.InverseObjectProperties{First: iri("owns"), Second: iri("ownedBy")},
		ontology.ObjectPropertyDomain{Property: iri("owns"), Domain: cls("Person")},
		ontology.ObjectPropertyRange{Property: iri("ownedBy"), Range: cls("Agent")},
	}
	rep := run(t, rules.InverseOf, axioms...)
	assert.Equal(t, 1, rep.Count())

	rep = run(t, rules.InverseOf, append(axioms, ontology.SubClassOf{Sub: cls("Person"), Super: cls("Agent")})...)
	assert.Equal(t, 0, rep.Count(), "subclass-or-equal is accepted")
}

func TestGlobalCardinality(t *testing.T) {
	t.Run("functional", func(t *testing.T) {
		base := []ontology.Axiom{
			char("hasMother", ontology.Functional),
			rel("hasMother", "a", "b"),
			rel("hasMother", "a", "c"),
		}
		assert.Equal(t, 0, run(t, rules.GlobalCardinality, base...).Count())
		assert.Equal(t, 1, run(t, rules.GlobalCardinality, append(base, different("b", "c"))...).Count())
	})

	t.Run("inverse functional", func(t *testing.T) {
		rep := run(t, rules.GlobalCardinality,
			char("ssnOf", ontology.InverseFunctional),
			rel("ssnOf", "s1", "p"),
			rel("ssnOf", "s2", "p"),
			different("s1", "s2"),
		)
		assert.Equal(t, 1, rep.Count())
	})

	t.Run("functional data", func(t *testing.T) {
		rep := run(t, rules.GlobalCardinality,
			ontology.FunctionalDataProperty{Property: iri("birthYear")},
			data("birthYear", "a", ontology.NewLiteral("1980", owl.XSDInteger)),
			data("birthYear", "a", ontology.NewLiteral("1981", owl.XSDInteger)),
		)
		assert.Equal(t, 1, rep.Count())
	})

	t.Run("non-simple functional", func(t *testing.T) {
		rep := run(t, rules.GlobalCardinality,
			char("ancestorOf", ontology.Transitive),
			char("ancestorOf", ontology.Functional),
		)
		assert.Equal(t, 1, rep.Count())
	})
}

func TestLocalCardinality(t *testing.T) {
	rep := run(t, rules.LocalCardinality,
		char("partOf", ontology.Transitive),
		ontology.SubClassOf{
			Sub:   cls("Widget"),
			Super: ontology.ObjectCardinality{Kind: ontology.CardinalityMax, N: 1, Property: prop("partOf")},
		},
		ontology.SubClassOf{
			Sub:   cls("Gadget"),
			Super: ontology.ObjectCardinality{Kind: ontology.CardinalityMax, N: 1, Property: prop("hasPart")},
		},
	)
	assert.Equal(t, 1, rep.Count())

	rep = run(t, rules.LocalCardinality,
		ontology.SubObjectPropertyOf{Chain: []ontology.ObjectPropertyExpression{prop("p"), prop("q")}, Super: prop("r")},
		ontology.ClassAssertion{
			Class:      ontology.ObjectCardinality{Kind: ontology.CardinalityExact, N: 2, Property: prop("r")},
			Individual: iri("a"),
		},
	)
	assert.Equal(t, 1, rep.Count())
}

func TestNegativeAssertions(t *testing.T) {
	rep := run(t, rules.NegativeAssertions,
		rel("knows", "a", "b"),
		same("b", "c"),
		same("a", "z"),
		ontology.EquivalentObjectProperties{Properties: []ontology.ObjectPropertyExpression{prop("knows"), prop("acquaintedWith")}},
		ontology.NegativeObjectPropertyAssertion{Property: prop("acquaintedWith"), Subject: iri("z"), Object: iri("c")},
		ontology.NegativeObjectPropertyAssertion{Property: prop("knows"), Subject: iri("a"), Object: iri("d")},
	)
	assert.Equal(t, 1, rep.Count())

	rep = run(t, rules.NegativeAssertions,
		data("age", "a", ontology.NewLiteral("5", owl.XSDInteger)),
		ontology.NegativeDataPropertyAssertion{Property: iri("age"), Subject: iri("a"), Value: ontology.NewLiteral("5", owl.XSDInteger)},
	)
	assert.Equal(t, 1, rep.Count())
}

func TestPropertyDisjoint(t *testing.T) {
	rep := run(t, rules.PropertyDisjoint,
		ontology.DisjointObjectProperties{Properties: []ontology.ObjectPropertyExpression{prop("likes"), prop("hates")}},
		rel("likes", "a", "b"),
		rel("hates", "a", "b"),
		rel("hates", "a", "c"),
	)
	assert.Equal(t, 1, rep.Count())

	rep = run(t, rules.PropertyDisjoint,
		ontology.DisjointObjectProperties{Properties: []ontology.ObjectPropertyExpression{prop("r"), prop("s")}},
		ontology.SubObjectPropertyOf{Sub: prop("r"), Super: prop("s")},
	)
	assert.Equal(t, 1, rep.Count())
}

func TestPropertyCharacteristics(t *testing.T) {
	rep := run(t, rules.PropertyCharacteristics,
		char("p", ontology.Symmetric),
		char("p", ontology.Asymmetric),
		rel("p", "a", "b"),
		char("q", ontology.Symmetric),
		char("q", ontology.Asymmetric),
	)
	assert.Equal(t, 1, rep.Count())

	rep = run(t, rules.PropertyCharacteristics,
		char("r", ontology.Reflexive),
		char("r", ontology.Irreflexive),
		typed("Thing", "x"),
	)
	assert.Equal(t, 1, rep.Count())
}

func TestIrreflexiveProperty(t *testing.T) {
	rep := run(t, rules.IrreflexiveProperty,
		char("p", ontology.Irreflexive),
		rel("p", "a", "a"),
		rel("p", "b", "c"),
		same("b", "c"),
		rel("p", "d", "e"),
	)
	assert.Equal(t, 2, rep.Count())
}

func TestLiteralValidity(t *testing.T) {
	rep := run(t, rules.LiteralValidity,
		data("age", "a", ontology.NewLiteral("abc", owl.XSDInteger)),
		data("age", "b", ontology.NewLiteral("42", owl.XSDInteger)),
		data("flag", "b", ontology.NewLiteral("yes", owl.XSDBoolean)),
	)
	assert.Equal(t, 2, rep.Count())
}

func TestClassEnumeration(t *testing.T) {
	rep := run(t, rules.ClassEnumeration,
		ontology.EquivalentClasses{Classes: []ontology.ClassExpression{
			cls("Color"),
			ontology.ObjectOneOf{Individuals: []string{iri("red"), iri("green")}},
		}},
		typed("Color", "blue"),
		different("blue", "red", "green"),
		typed("Color", "crimson"),
		different("crimson", "green"),
	)
	require.Equal(t, 1, rep.Count())
	assert.Contains(t, rep.Issues[0].Description, iri("blue"))
}

func TestHasValue(t *testing.T) {
	rep := run(t, rules.HasValue,
		ontology.SubClassOf{Sub: cls("ItalianDish"), Super: ontology.ObjectHasValue{Property: prop("origin"), Individual: iri("italy")}},
		typed("ItalianDish", "pizza"),
		ontology.NegativeObjectPropertyAssertion{Property: prop("origin"), Subject: iri("pizza"), Object: iri("italy")},
	)
	assert.Equal(t, 1, rep.Count())

	rep = run(t, rules.HasValue,
		ontology.ClassAssertion{
			Class:      ontology.DataHasValue{Property: iri("color"), Value: ontology.NewLiteral("red", "")},
			Individual: iri("apple"),
		},
		ontology.NegativeDataPropertyAssertion{Property: iri("color"), Subject: iri("apple"), Value: ontology.NewLiteral("red", "")},
	)
	assert.Equal(t, 1, rep.Count())
}

func TestAllValuesFrom(t *testing.T) {
	rep := run(t, rules.AllValuesFrom,
		ontology.SubClassOf{Sub: cls("VeganMeal"), Super: ontology.ObjectAllValuesFrom{Property: prop("contains"), Filler: cls("Plant")}},
		disjoint("Plant", "Meat"),
		typed("VeganMeal", "meal"),
		rel("contains", "meal", "bacon"),
		typed("Meat", "bacon"),
		rel("contains", "meal", "salt"),
	)
	require.Equal(t, 1, rep.Count())
	assert.Contains(t, rep.Issues[0].Description, iri("bacon"))
}

func TestTermDeclaration(t *testing.T) {
	rep := run(t, rules.TermDeclaration,
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindClass, IRI: iri("A")}},
		ontology.SubClassOf{Sub: cls("A"), Super: cls("B")},
		ontology.SubClassOf{Sub: cls("A"), Super: ontology.Class{IRI: owl.Thing}},
	)
	require.Equal(t, 1, rep.Count())
	assert.Equal(t, report.Warning, rep.Issues[0].Severity)
	assert.Contains(t, rep.Issues[0].Description, iri("B"))
	assert.False(t, rep.HasErrors())
}

func TestTermDeprecation(t *testing.T) {
	rep := run(t, rules.TermDeprecation,
		ontology.AnnotationAssertion{Property: owl.Deprecated, Subject: iri("OldClass"), Value: ontology.NewLiteral("true", owl.XSDBoolean)},
		typed("OldClass", "x"),
		typed("NewClass", "y"),
	)
	require.Equal(t, 1, rep.Count())
	assert.Equal(t, report.Warning, rep.Issues[0].Severity)
}

func TestTermDisjointness(t *testing.T) {
	rep := run(t, rules.TermDisjointness,
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindClass, IRI: iri("X")}},
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindObjectProperty, IRI: iri("X")}},
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindClass, IRI: iri("Y")}},
	)
	require.Equal(t, 1, rep.Count())
	assert.Contains(t, rep.Issues[0].Description, "Class and ObjectProperty")
}

func TestThingNothing(t *testing.T) {
	rep := run(t, rules.ThingNothing,
		ontology.SubClassOf{Sub: ontology.Class{IRI: owl.Thing}, Super: cls("A")},
		ontology.SubClassOf{Sub: cls("B"), Super: ontology.Class{IRI: owl.Thing}},
		ontology.ClassAssertion{Class: ontology.Class{IRI: owl.Nothing}, Individual: iri("a")},
	)
	assert.Equal(t, 2, rep.Count())

	rep = run(t, rules.ThingNothing,
		ontology.SubClassOf{Sub: cls("Empty"), Super: ontology.Class{IRI: owl.Nothing}},
		typed("Empty", "e"),
	)
	assert.Equal(t, 2, rep.Count(), "the axiom and the instance")
}

func TestTopBottom(t *testing.T) {
	rep := run(t, rules.TopBottom,
		ontology.SubObjectPropertyOf{Sub: ontology.ObjectProp(owl.TopObjectProperty), Super: prop("p")},
		ontology.SubObjectPropertyOf{Sub: prop("p"), Super: ontology.ObjectProp(owl.TopObjectProperty)},
		ontology.ObjectPropertyAssertion{Property: ontology.ObjectProp(owl.BottomObjectProperty), Subject: iri("a"), Object: iri("b")},
		ontology.NegativeDataPropertyAssertion{Property: owl.TopDataProperty, Subject: iri("a"), Value: ontology.NewLiteral("x", "")},
		ontology.SubDataPropertyOf{Sub: iri("d"), Super: owl.BottomDataProperty},
	)
	assert.Equal(t, 4, rep.Count())
}

func TestSameIndividualClassClash(t *testing.T) {
	rep := run(t, rules.SameIndividualClassClash,
		disjoint("Cat", "Dog"),
		typed("Cat", "tom"),
		typed("Dog", "rex"),
		same("tom", "rex"),
		typed("Cat", "felix"),
		same("felix", "garfield"),
	)
	require.Equal(t, 1, rep.Count())
	assert.Contains(t, rep.Issues[0].Description, iri("rex"))
}

func TestObjectPropertyChain(t *testing.T) {
	chain := ontology.SubObjectPropertyOf{
		Chain: []ontology.ObjectPropertyExpression{prop("parentOf"), prop("parentOf")},
		Super: prop("grandparentOf"),
	}
	assert.Equal(t, 0, run(t, rules.ObjectPropertyChain, chain).Count())
	assert.Equal(t, 1, run(t, rules.ObjectPropertyChain, chain, char("grandparentOf", ontology.Asymmetric)).Count())
}

func TestRulesAreDeterministic(t *testing.T) {
	ont := build(t,
		disjoint("Cat", "Dog"),
		typed("Cat", "tom"), typed("Dog", "tom"),
		typed("Cat", "rex"), typed("Dog", "rex"),
		char("p", ontology.Functional),
		rel("p", "a", "b"), rel("p", "a", "c"), rel("p", "a", "d"),
		different("b", "c", "d"),
		ontology.SubClassOf{Sub: cls("X"), Super: cls("Undeclared")},
	)
	for _, def := range rules.All() {
		first := def.Execute(ont)
		second := def.Execute(ont)
		assert.Equal(t, first.Issues, second.Issues, def.Name)
	}
}
