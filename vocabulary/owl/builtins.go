package owl

import "strings"

// builtinClasses are classes that never need an explicit declaration.
var builtinClasses = map[string]bool{
	Thing:   true,
	Nothing: true,
}

var builtinObjectProperties = map[string]bool{
	TopObjectProperty:    true,
	BottomObjectProperty: true,
}

var builtinDataProperties = map[string]bool{
	TopDataProperty:    true,
	BottomDataProperty: true,
}

var builtinAnnotationProperties = map[string]bool{
	RDFSLabel:                               true,
	RDFSComment:                             true,
	Deprecated:                              true,
	RDFSNamespace + "seeAlso":               true,
	RDFSNamespace + "isDefinedBy":           true,
	OWLNamespace + "versionInfo":            true,
	OWLNamespace + "priorVersion":           true,
	OWLNamespace + "backwardCompatibleWith": true,
	OWLNamespace + "incompatibleWith":       true,
}

// IsBuiltinClass reports whether iri is owl:Thing or owl:Nothing.
func IsBuiltinClass(iri string) bool { return builtinClasses[iri] }

// IsBuiltinObjectProperty reports whether iri is the top or bottom object property.
func IsBuiltinObjectProperty(iri string) bool { return builtinObjectProperties[iri] }

// IsBuiltinDataProperty reports whether iri is the top or bottom data property.
func IsBuiltinDataProperty(iri string) bool { return builtinDataProperties[iri] }

// IsBuiltinAnnotationProperty reports whether iri is one of the OWL 2
// reserved annotation properties.
func IsBuiltinAnnotationProperty(iri string) bool { return builtinAnnotationProperties[iri] }

// IsBuiltinDatatype reports whether iri names a datatype of the OWL 2 datatype
// map (XSD, rdf:PlainLiteral, rdfs:Literal, owl:real, owl:rational).
func IsBuiltinDatatype(iri string) bool {
	switch iri {
	case RDFSLiteral, RDFPlainLiteral, RDFLangString, RDFXMLLiteral, Real, Rational:
		return true
	}
	return strings.HasPrefix(iri, XSDNamespace)
}

// IsBuiltin reports whether iri belongs to a reserved vocabulary and therefore
// needs no declaration in an ontology.
func IsBuiltin(iri string) bool {
	return IsBuiltinClass(iri) ||
		IsBuiltinObjectProperty(iri) ||
		IsBuiltinDataProperty(iri) ||
		IsBuiltinAnnotationProperty(iri) ||
		IsBuiltinDatatype(iri)
}
