package ontology

import (
	"fmt"
	"strings"
)

// AxiomKind partitions the axioms of an ontology.
type AxiomKind int

const (
	AxiomDeclaration AxiomKind = iota
	AxiomClass
	AxiomObjectProperty
	AxiomDataProperty
	AxiomKey
	AxiomAssertion
	AxiomAnnotation
)

// AxiomKinds lists every kind in storage order.
var AxiomKinds = []AxiomKind{
	AxiomDeclaration, AxiomClass, AxiomObjectProperty, AxiomDataProperty,
	AxiomKey, AxiomAssertion, AxiomAnnotation,
}

func (k AxiomKind) String() string {
	switch k {
	case AxiomDeclaration:
		return "declaration"
	case AxiomClass:
		return "class"
	case AxiomObjectProperty:
		return "object-property"
	case AxiomDataProperty:
		return "data-property"
	case AxiomKey:
		return "key"
	case AxiomAssertion:
		return "assertion"
	case AxiomAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// Axiom is an immutable OWL 2 axiom. String returns a canonical rendering
// that identifies the axiom for deduplication.
type Axiom interface {
	fmt.Stringer
	Kind() AxiomKind
}

// Characteristic is an object property characteristic.
type Characteristic int

const (
	Functional Characteristic = iota
	InverseFunctional
	Reflexive
	Irreflexive
	Symmetric
	Asymmetric
	Transitive
)

func (c Characteristic) String() string {
	switch c {
	case Functional:
		return "Functional"
	case InverseFunctional:
		return "InverseFunctional"
	case Reflexive:
		return "Reflexive"
	case Irreflexive:
		return "Irreflexive"
	case Symmetric:
		return "Symmetric"
	case Asymmetric:
		return "Asymmetric"
	case Transitive:
		return "Transitive"
	default:
		return "Unknown"
	}
}

// Declaration declares an entity.
type Declaration struct {
	Entity Entity
}

// Class axioms.
type (
	SubClassOf struct {
		Sub   ClassExpression
		Super ClassExpression
	}
	EquivalentClasses struct {
		Classes []ClassExpression
	}
	DisjointClasses struct {
		Classes []ClassExpression
	}
	// DisjointUnion states that Class is the disjoint union of Classes.
	DisjointUnion struct {
		Class   string
		Classes []ClassExpression
	}
)

// Object property axioms.
type (
	// SubObjectPropertyOf states Sub ⊑ Super, or Chain ⊑ Super when Chain is set.
	SubObjectPropertyOf struct {
		Sub   ObjectPropertyExpression
		Chain []ObjectPropertyExpression
		Super ObjectPropertyExpression
	}
	EquivalentObjectProperties struct {
		Properties []ObjectPropertyExpression
	}
	DisjointObjectProperties struct {
		Properties []ObjectPropertyExpression
	}
	InverseObjectProperties struct {
		First  string
		Second string
	}
	ObjectPropertyDomain struct {
		Property string
		Domain   ClassExpression
	}
	ObjectPropertyRange struct {
		Property string
		Range    ClassExpression
	}
	ObjectPropertyCharacteristic struct {
		Property       string
		Characteristic Characteristic
	}
)

// Data property axioms.
type (
	SubDataPropertyOf struct {
		Sub   string
		Super string
	}
	EquivalentDataProperties struct {
		Properties []string
	}
	DisjointDataProperties struct {
		Properties []string
	}
	DataPropertyDomain struct {
		Property string
		Domain   ClassExpression
	}
	DataPropertyRange struct {
		Property string
		Datatype string
	}
	FunctionalDataProperty struct {
		Property string
	}
)

// HasKey states that the named instances of Class are uniquely identified by
// the values of the listed properties.
type HasKey struct {
	Class            ClassExpression
	ObjectProperties []ObjectPropertyExpression
	DataProperties   []string
}

// Assertion axioms.
type (
	ClassAssertion struct {
		Class      ClassExpression
		Individual string
	}
	ObjectPropertyAssertion struct {
		Property ObjectPropertyExpression
		Subject  string
		Object   string
	}
	DataPropertyAssertion struct {
		Property string
		Subject  string
		Value    Literal
	}
	NegativeObjectPropertyAssertion struct {
		Property ObjectPropertyExpression
		Subject  string
		Object   string
	}
	NegativeDataPropertyAssertion struct {
		Property string
		Subject  string
		Value    Literal
	}
	SameIndividual struct {
		Individuals []string
	}
	DifferentIndividuals struct {
		Individuals []string
	}
)

// AnnotationAssertion annotates Subject. Exactly one of ValueIRI and Value is meaningful.
type AnnotationAssertion struct {
	Property string
	Subject  string
	ValueIRI string
	Value    Literal
}

func (Declaration) Kind() AxiomKind                     { return AxiomDeclaration }
func (SubClassOf) Kind() AxiomKind                      { return AxiomClass }
func (EquivalentClasses) Kind() AxiomKind               { return AxiomClass }
func (DisjointClasses) Kind() AxiomKind                 { return AxiomClass }
func (DisjointUnion) Kind() AxiomKind                   { return AxiomClass }
func (SubObjectPropertyOf) Kind() AxiomKind             { return AxiomObjectProperty }
func (EquivalentObjectProperties) Kind() AxiomKind      { return AxiomObjectProperty }
func (DisjointObjectProperties) Kind() AxiomKind        { return AxiomObjectProperty }
func (InverseObjectProperties) Kind() AxiomKind         { return AxiomObjectProperty }
func (ObjectPropertyDomain) Kind() AxiomKind            { return AxiomObjectProperty }
func (ObjectPropertyRange) Kind() AxiomKind             { return AxiomObjectProperty }
func (ObjectPropertyCharacteristic) Kind() AxiomKind    { return AxiomObjectProperty }
func (SubDataPropertyOf) Kind() AxiomKind               { return AxiomDataProperty }
func (EquivalentDataProperties) Kind() AxiomKind        { return AxiomDataProperty }
func (DisjointDataProperties) Kind() AxiomKind          { return AxiomDataProperty }
func (DataPropertyDomain) Kind() AxiomKind              { return AxiomDataProperty }
func (DataPropertyRange) Kind() AxiomKind               { return AxiomDataProperty }
func (FunctionalDataProperty) Kind() AxiomKind          { return AxiomDataProperty }
func (HasKey) Kind() AxiomKind                          { return AxiomKey }
func (ClassAssertion) Kind() AxiomKind                  { return AxiomAssertion }
func (ObjectPropertyAssertion) Kind() AxiomKind         { return AxiomAssertion }
func (DataPropertyAssertion) Kind() AxiomKind           { return AxiomAssertion }
func (NegativeObjectPropertyAssertion) Kind() AxiomKind { return AxiomAssertion }
func (NegativeDataPropertyAssertion) Kind() AxiomKind   { return AxiomAssertion }
func (SameIndividual) Kind() AxiomKind                  { return AxiomAssertion }
func (DifferentIndividuals) Kind() AxiomKind            { return AxiomAssertion }
func (AnnotationAssertion) Kind() AxiomKind             { return AxiomAnnotation }

func (a Declaration) String() string { return "Declaration(" + a.Entity.String() + ")" }

func (a SubClassOf) String() string {
	return fmt.Sprintf("SubClassOf(%s %s)", a.Sub, a.Super)
}

func (a EquivalentClasses) String() string {
	return "EquivalentClasses(" + joinExpressions(a.Classes) + ")"
}

func (a DisjointClasses) String() string {
	return "DisjointClasses(" + joinExpressions(a.Classes) + ")"
}

func (a DisjointUnion) String() string {
	return fmt.Sprintf("DisjointUnion(<%s> %s)", a.Class, joinExpressions(a.Classes))
}

func (a SubObjectPropertyOf) String() string {
	if len(a.Chain) > 0 {
		return fmt.Sprintf("SubObjectPropertyOf(ObjectPropertyChain(%s) %s)", joinProperties(a.Chain), a.Super)
	}
	return fmt.Sprintf("SubObjectPropertyOf(%s %s)", a.Sub, a.Super)
}

func (a EquivalentObjectProperties) String() string {
	return "EquivalentObjectProperties(" + joinProperties(a.Properties) + ")"
}

func (a DisjointObjectProperties) String() string {
	return "DisjointObjectProperties(" + joinProperties(a.Properties) + ")"
}

func (a InverseObjectProperties) String() string {
	return fmt.Sprintf("InverseObjectProperties(<%s> <%s>)", a.First, a.Second)
}

func (a ObjectPropertyDomain) String() string {
	return fmt.Sprintf("ObjectPropertyDomain(<%s> %s)", a.Property, a.Domain)
}

func (a ObjectPropertyRange) String() string {
	return fmt.Sprintf("ObjectPropertyRange(<%s> %s)", a.Property, a.Range)
}

func (a ObjectPropertyCharacteristic) String() string {
	return fmt.Sprintf("%sObjectProperty(<%s>)", a.Characteristic, a.Property)
}

func (a SubDataPropertyOf) String() string {
	return fmt.Sprintf("SubDataPropertyOf(<%s> <%s>)", a.Sub, a.Super)
}

func (a EquivalentDataProperties) String() string {
	return "EquivalentDataProperties(" + joinIRIs(a.Properties) + ")"
}

func (a DisjointDataProperties) String() string {
	return "DisjointDataProperties(" + joinIRIs(a.Properties) + ")"
}

func (a DataPropertyDomain) String() string {
	return fmt.Sprintf("DataPropertyDomain(<%s> %s)", a.Property, a.Domain)
}

func (a DataPropertyRange) String() string {
	return fmt.Sprintf("DataPropertyRange(<%s> <%s>)", a.Property, a.Datatype)
}

func (a FunctionalDataProperty) String() string {
	return fmt.Sprintf("FunctionalDataProperty(<%s>)", a.Property)
}

func (a HasKey) String() string {
	return fmt.Sprintf("HasKey(%s (%s) (%s))", a.Class, joinProperties(a.ObjectProperties), joinIRIs(a.DataProperties))
}

func (a ClassAssertion) String() string {
	return fmt.Sprintf("ClassAssertion(%s <%s>)", a.Class, a.Individual)
}

func (a ObjectPropertyAssertion) String() string {
	return fmt.Sprintf("ObjectPropertyAssertion(%s <%s> <%s>)", a.Property, a.Subject, a.Object)
}

func (a DataPropertyAssertion) String() string {
	return fmt.Sprintf("DataPropertyAssertion(<%s> <%s> %s)", a.Property, a.Subject, a.Value)
}

func (a NegativeObjectPropertyAssertion) String() string {
	return fmt.Sprintf("NegativeObjectPropertyAssertion(%s <%s> <%s>)", a.Property, a.Subject, a.Object)
}

func (a NegativeDataPropertyAssertion) String() string {
	return fmt.Sprintf("NegativeDataPropertyAssertion(<%s> <%s> %s)", a.Property, a.Subject, a.Value)
}

func (a SameIndividual) String() string {
	return "SameIndividual(" + joinIRIs(a.Individuals) + ")"
}

func (a DifferentIndividuals) String() string {
	return "DifferentIndividuals(" + joinIRIs(a.Individuals) + ")"
}

func (a AnnotationAssertion) String() string {
	if a.ValueIRI != "" {
		return fmt.Sprintf("AnnotationAssertion(<%s> <%s> <%s>)", a.Property, a.Subject, a.ValueIRI)
	}
	return fmt.Sprintf("AnnotationAssertion(<%s> <%s> %s)", a.Property, a.Subject, a.Value)
}

func joinProperties(props []ObjectPropertyExpression) string {
	parts := make([]string, len(props))
	for i, p := range props {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
