package ontology

import (
	"testing"

	"github.com/c360studio/semowl/vocabulary/owl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ex = "http://example.org/"

func TestDeclareAxiom(t *testing.T) {
	o := New(ex + "onto")

	require.NoError(t, o.DeclareEntity(KindClass, ex+"A"))
	require.NoError(t, o.DeclareAxiom(SubClassOf{Sub: Class{ex + "A"}, Super: Class{ex + "B"}}))
	require.NoError(t, o.DeclareAxiom(SubClassOf{Sub: Class{ex + "A"}, Super: Class{ex + "B"}}))

	assert.Len(t, o.Axioms(AxiomDeclaration), 1)
	assert.Len(t, o.Axioms(AxiomClass), 1, "duplicate axioms are ignored")
	assert.Equal(t, 2, o.AxiomCount())
	assert.True(t, o.IsDeclared(ex+"A"))
	assert.True(t, o.IsDeclaredAs(ex+"A", KindClass))
	assert.False(t, o.IsDeclaredAs(ex+"A", KindNamedIndividual))
	assert.False(t, o.IsDeclared(ex+"B"))
}

func TestDeclareAxiom_Errors(t *testing.T) {
	o := New(ex + "onto")

	assert.ErrorIs(t, o.DeclareAxiom(nil), ErrNilAxiom)
	assert.ErrorIs(t, o.DeclareEntity(KindClass, ""), ErrEmptyIRI)
	assert.ErrorIs(t, o.AddTriple(Triple{Subject: ex + "a"}), ErrEmptyIRI)
}

func TestAxiomsOf(t *testing.T) {
	o := New(ex + "onto")
	require.NoError(t, o.Add(
		ClassAssertion{Class: Class{ex + "A"}, Individual: ex + "a"},
		ObjectPropertyAssertion{Property: ObjectProp(ex + "p"), Subject: ex + "a", Object: ex + "b"},
		ClassAssertion{Class: Class{ex + "B"}, Individual: ex + "b"},
	))

	got := AxiomsOf[ClassAssertion](o)
	require.Len(t, got, 2)
	assert.Equal(t, ex+"a", got[0].Individual)
	assert.Equal(t, ex+"b", got[1].Individual)
}

func TestDeclaredKinds(t *testing.T) {
	o := New(ex + "onto")
	require.NoError(t, o.DeclareEntity(KindNamedIndividual, ex+"x"))
	require.NoError(t, o.DeclareEntity(KindClass, ex+"x"))

	assert.Equal(t, []EntityKind{KindClass, KindNamedIndividual}, o.DeclaredKinds(ex+"x"))
	assert.Equal(t, []string{ex + "x"}, o.Entities(KindClass))
}

func TestMatch(t *testing.T) {
	o := New(ex + "onto")
	require.NoError(t, o.Add(
		ClassAssertion{Class: Class{ex + "Person"}, Individual: ex + "alice"},
		ObjectPropertyAssertion{Property: ObjectProp(ex + "knows"), Subject: ex + "alice", Object: ex + "bob"},
		ObjectPropertyAssertion{Property: ObjectInverse(ex + "knows"), Subject: ex + "carol", Object: ex + "alice"},
		DataPropertyAssertion{Property: ex + "age", Subject: ex + "alice", Value: NewLiteral("42", owl.XSDInteger)},
	))

	tests := []struct {
		name              string
		subject, pred, ob string
		want              int
	}{
		{"all", "", "", "", 4},
		{"by subject", ex + "alice", "", "", 4},
		{"by predicate", "", ex + "knows", "", 2},
		{"by object", "", "", ex + "bob", 1},
		{"inverse flipped", ex + "alice", ex + "knows", ex + "carol", 1},
		{"rdf type", ex + "alice", owl.RDFType, ex + "Person", 1},
		{"object never matches literal", ex + "alice", ex + "age", "42", 0},
		{"no match", ex + "bob", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, o.Match(tt.subject, tt.pred, tt.ob), tt.want)
		})
	}

	lit := o.Match(ex+"alice", ex+"age", "")
	require.Len(t, lit, 1)
	require.True(t, lit[0].IsLiteral())
	assert.Equal(t, "42", lit[0].Value.Value)
}

func TestList(t *testing.T) {
	o := New(ex + "onto")
	add := func(s, p, obj string) {
		require.NoError(t, o.AddTriple(Triple{Subject: s, Predicate: p, Object: obj}))
	}
	add("_:l1", owl.RDFFirst, ex+"a")
	add("_:l1", owl.RDFRest, "_:l2")
	add("_:l2", owl.RDFFirst, ex+"b")
	add("_:l2", owl.RDFRest, owl.RDFNil)

	items, err := o.List("_:l1")
	require.NoError(t, err)
	assert.Equal(t, []string{ex + "a", ex + "b"}, items)

	empty, err := o.List(owl.RDFNil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	add("_:c1", owl.RDFFirst, ex+"a")
	add("_:c1", owl.RDFRest, "_:c1")
	_, err = o.List("_:c1")
	assert.ErrorIs(t, err, ErrMalformedList)

	add("_:u1", owl.RDFFirst, ex+"a")
	_, err = o.List("_:u1")
	assert.ErrorIs(t, err, ErrMalformedList)
}

func TestAxiomString(t *testing.T) {
	tests := []struct {
		ax   Axiom
		want string
	}{
		{Declaration{Entity{KindClass, ex + "A"}}, "Declaration(Class(<http://example.org/A>))"},
		{
			SubClassOf{Sub: Class{ex + "A"}, Super: ObjectSomeValuesFrom{Property: ObjectInverse(ex + "p"), Filler: Class{ex + "B"}}},
			"SubClassOf(<http://example.org/A> ObjectSomeValuesFrom(ObjectInverseOf(<http://example.org/p>) <http://example.org/B>))",
		},
		{
			ObjectPropertyCharacteristic{Property: ex + "p", Characteristic: Transitive},
			"TransitiveObjectProperty(<http://example.org/p>)",
		},
		{
			ClassAssertion{Class: ObjectCardinality{Kind: CardinalityMax, N: 1, Property: ObjectProp(ex + "p")}, Individual: ex + "a"},
			"ClassAssertion(ObjectMaxCardinality(1 <http://example.org/p>) <http://example.org/a>)",
		},
		{
			DataPropertyAssertion{Property: ex + "name", Subject: ex + "a", Value: NewLangLiteral("Ann", "en")},
			`DataPropertyAssertion(<http://example.org/name> <http://example.org/a> "Ann"@en)`,
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ax.String())
	}
}

func TestLiteral(t *testing.T) {
	assert.Equal(t, owl.XSDString, NewLiteral("x", "").EffectiveDatatype())
	assert.Equal(t, owl.RDFLangString, Literal{Value: "x", Language: "en"}.EffectiveDatatype())
	assert.True(t, NewLiteral("x", "").Equal(NewLiteral("x", owl.XSDString)))
	assert.False(t, NewLiteral("1", owl.XSDInteger).Equal(NewLiteral("1", owl.XSDString)))
}

func TestParseEntityKind(t *testing.T) {
	for _, kind := range []EntityKind{KindClass, KindDatatype, KindObjectProperty, KindDataProperty, KindAnnotationProperty, KindNamedIndividual} {
		got, ok := ParseEntityKind(kind.String())
		require.True(t, ok)
		assert.Equal(t, kind, got)
	}
	_, ok := ParseEntityKind("Nope")
	assert.False(t, ok)
}
