package ontology

import (
	"fmt"
	"strings"
)

// ObjectPropertyExpression is a named object property or its inverse.
type ObjectPropertyExpression struct {
	IRI     string
	Inverse bool
}

// ObjectProp returns the expression for a named object property.
func ObjectProp(iri string) ObjectPropertyExpression {
	return ObjectPropertyExpression{IRI: iri}
}

// ObjectInverse returns the expression ObjectInverseOf(iri).
func ObjectInverse(iri string) ObjectPropertyExpression {
	return ObjectPropertyExpression{IRI: iri, Inverse: true}
}

func (p ObjectPropertyExpression) String() string {
	if p.Inverse {
		return fmt.Sprintf("ObjectInverseOf(<%s>)", p.IRI)
	}
	return fmt.Sprintf("<%s>", p.IRI)
}

// CardinalityKind distinguishes min, max and exact cardinality restrictions.
type CardinalityKind int

const (
	CardinalityMin CardinalityKind = iota
	CardinalityMax
	CardinalityExact
)

func (k CardinalityKind) String() string {
	switch k {
	case CardinalityMin:
		return "Min"
	case CardinalityMax:
		return "Max"
	case CardinalityExact:
		return "Exact"
	default:
		return "Unknown"
	}
}

// ClassExpression is a named class or an anonymous OWL 2 class expression.
// The String form is canonical and is used as a map key throughout the module.
type ClassExpression interface {
	fmt.Stringer
	classExpression()
}

// Class is a named class.
type Class struct {
	IRI string
}

// ObjectComplementOf is the complement of its operand.
type ObjectComplementOf struct {
	Operand ClassExpression
}

// ObjectUnionOf is the union of its operands.
type ObjectUnionOf struct {
	Operands []ClassExpression
}

// ObjectIntersectionOf is the intersection of its operands.
type ObjectIntersectionOf struct {
	Operands []ClassExpression
}

// ObjectOneOf enumerates its member individuals.
type ObjectOneOf struct {
	Individuals []string
}

// ObjectSomeValuesFrom is an existential restriction.
type ObjectSomeValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

// ObjectAllValuesFrom is a universal restriction.
type ObjectAllValuesFrom struct {
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

// ObjectHasValue restricts the property to relate to a specific individual.
type ObjectHasValue struct {
	Property   ObjectPropertyExpression
	Individual string
}

// ObjectCardinality is a (possibly qualified) object cardinality restriction.
// A nil Filler means the restriction is unqualified.
type ObjectCardinality struct {
	Kind     CardinalityKind
	N        int
	Property ObjectPropertyExpression
	Filler   ClassExpression
}

// DataSomeValuesFrom is an existential data restriction.
type DataSomeValuesFrom struct {
	Property string
	Datatype string
}

// DataAllValuesFrom is a universal data restriction.
type DataAllValuesFrom struct {
	Property string
	Datatype string
}

// DataHasValue restricts the data property to a specific literal.
type DataHasValue struct {
	Property string
	Value    Literal
}

// DataCardinality is a (possibly qualified) data cardinality restriction.
// An empty Datatype means the restriction is unqualified.
type DataCardinality struct {
	Kind     CardinalityKind
	N        int
	Property string
	Datatype string
}

func (Class) classExpression()                {}
func (ObjectComplementOf) classExpression()   {}
func (ObjectUnionOf) classExpression()        {}
func (ObjectIntersectionOf) classExpression() {}
func (ObjectOneOf) classExpression()          {}
func (ObjectSomeValuesFrom) classExpression() {}
func (ObjectAllValuesFrom) classExpression()  {}
func (ObjectHasValue) classExpression()       {}
func (ObjectCardinality) classExpression()    {}
func (DataSomeValuesFrom) classExpression()   {}
func (DataAllValuesFrom) classExpression()    {}
func (DataHasValue) classExpression()         {}
func (DataCardinality) classExpression()      {}

func (c Class) String() string { return "<" + c.IRI + ">" }

func (c ObjectComplementOf) String() string {
	return fmt.Sprintf("ObjectComplementOf(%s)", c.Operand)
}

func (c ObjectUnionOf) String() string {
	return "ObjectUnionOf(" + joinExpressions(c.Operands) + ")"
}

func (c ObjectIntersectionOf) String() string {
	return "ObjectIntersectionOf(" + joinExpressions(c.Operands) + ")"
}

func (c ObjectOneOf) String() string {
	return "ObjectOneOf(" + joinIRIs(c.Individuals) + ")"
}

func (c ObjectSomeValuesFrom) String() string {
	return fmt.Sprintf("ObjectSomeValuesFrom(%s %s)", c.Property, c.Filler)
}

func (c ObjectAllValuesFrom) String() string {
	return fmt.Sprintf("ObjectAllValuesFrom(%s %s)", c.Property, c.Filler)
}

func (c ObjectHasValue) String() string {
	return fmt.Sprintf("ObjectHasValue(%s <%s>)", c.Property, c.Individual)
}

func (c ObjectCardinality) String() string {
	if c.Filler == nil {
		return fmt.Sprintf("Object%sCardinality(%d %s)", c.Kind, c.N, c.Property)
	}
	return fmt.Sprintf("Object%sCardinality(%d %s %s)", c.Kind, c.N, c.Property, c.Filler)
}

func (c DataSomeValuesFrom) String() string {
	return fmt.Sprintf("DataSomeValuesFrom(<%s> <%s>)", c.Property, c.Datatype)
}

func (c DataAllValuesFrom) String() string {
	return fmt.Sprintf("DataAllValuesFrom(<%s> <%s>)", c.Property, c.Datatype)
}

func (c DataHasValue) String() string {
	return fmt.Sprintf("DataHasValue(<%s> %s)", c.Property, c.Value)
}

func (c DataCardinality) String() string {
	if c.Datatype == "" {
		return fmt.Sprintf("Data%sCardinality(%d <%s>)", c.Kind, c.N, c.Property)
	}
	return fmt.Sprintf("Data%sCardinality(%d <%s> <%s>)", c.Kind, c.N, c.Property, c.Datatype)
}

// NamedClass returns the IRI of a named class expression.
func NamedClass(ce ClassExpression) (string, bool) {
	if c, ok := ce.(Class); ok {
		return c.IRI, true
	}
	return "", false
}

func joinExpressions(exprs []ClassExpression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, " ")
}

func joinIRIs(iris []string) string {
	parts := make([]string, len(iris))
	for i, iri := range iris {
		parts[i] = "<" + iri + ">"
	}
	return strings.Join(parts, " ")
}
