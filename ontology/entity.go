// Package ontology provides the OWL 2 object model consumed by the validator
// and the OWL-TIME resolver: declared entities, class expressions, and an
// append-only store of axioms partitioned by kind.
//
// Entities reference each other by IRI rather than by pointer, mirroring the
// RDF data model: the same IRI may appear in any number of axioms and every
// relationship is resolved by lookup.
package ontology

import (
	"fmt"

	"github.com/c360studio/semowl/vocabulary/owl"
)

// EntityKind identifies the OWL 2 entity type of a declaration.
type EntityKind int

const (
	KindClass EntityKind = iota + 1
	KindDatatype
	KindObjectProperty
	KindDataProperty
	KindAnnotationProperty
	KindNamedIndividual
)

var entityKindNames = map[EntityKind]string{
	KindClass:              "Class",
	KindDatatype:           "Datatype",
	KindObjectProperty:     "ObjectProperty",
	KindDataProperty:       "DataProperty",
	KindAnnotationProperty: "AnnotationProperty",
	KindNamedIndividual:    "NamedIndividual",
}

// String returns the functional-syntax keyword of the kind.
func (k EntityKind) String() string {
	if name, ok := entityKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EntityKind(%d)", int(k))
}

// ParseEntityKind converts a functional-syntax keyword into an EntityKind.
func ParseEntityKind(s string) (EntityKind, bool) {
	for kind, name := range entityKindNames {
		if name == s {
			return kind, true
		}
	}
	return 0, false
}

// Entity is a declared OWL 2 entity.
type Entity struct {
	Kind EntityKind
	IRI  string
}

func (e Entity) String() string {
	return fmt.Sprintf("%s(<%s>)", e.Kind, e.IRI)
}

// Literal is an RDF literal. An empty Datatype means xsd:string, or
// rdf:langString when Language is set.
type Literal struct {
	Value    string
	Datatype string
	Language string
}

// NewLiteral creates a typed literal.
func NewLiteral(value, datatype string) Literal {
	return Literal{Value: value, Datatype: datatype}
}

// NewLangLiteral creates a language-tagged string literal.
func NewLangLiteral(value, language string) Literal {
	return Literal{Value: value, Language: language, Datatype: owl.RDFLangString}
}

// EffectiveDatatype returns the datatype IRI the literal carries once defaults apply.
func (l Literal) EffectiveDatatype() string {
	switch {
	case l.Datatype != "":
		return l.Datatype
	case l.Language != "":
		return owl.RDFLangString
	default:
		return owl.XSDString
	}
}

// Equal compares two literals by lexical value, effective datatype and language.
func (l Literal) Equal(other Literal) bool {
	return l.Value == other.Value &&
		l.EffectiveDatatype() == other.EffectiveDatatype() &&
		l.Language == other.Language
}

func (l Literal) String() string {
	if l.Language != "" {
		return fmt.Sprintf("%q@%s", l.Value, l.Language)
	}
	return fmt.Sprintf("%q^^<%s>", l.Value, l.EffectiveDatatype())
}
