// Package owl provides IRI constants for the RDF, RDFS, OWL 2 and XSD
// vocabularies used by the ontology model and the validator rules.
package owl

import "github.com/c360studio/semstreams/vocabulary"

// Namespaces of the core semantic web vocabularies.
const (
	RDFNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	OWLNamespace  = "http://www.w3.org/2002/07/owl#"
	XSDNamespace  = "http://www.w3.org/2001/XMLSchema#"
)

// RDF and RDFS terms.
const (
	RDFType         = RDFNamespace + "type"
	RDFFirst        = RDFNamespace + "first"
	RDFRest         = RDFNamespace + "rest"
	RDFNil          = RDFNamespace + "nil"
	RDFLangString   = RDFNamespace + "langString"
	RDFPlainLiteral = RDFNamespace + "PlainLiteral"
	RDFXMLLiteral   = RDFNamespace + "XMLLiteral"

	RDFSLiteral       = RDFSNamespace + "Literal"
	RDFSLabel         = vocabulary.RdfsLabel
	RDFSComment       = vocabulary.RdfsComment
	RDFSSubClassOf    = RDFSNamespace + "subClassOf"
	RDFSSubPropertyOf = RDFSNamespace + "subPropertyOf"
	RDFSDomain        = RDFSNamespace + "domain"
	RDFSRange         = RDFSNamespace + "range"
)

// OWL 2 built-in entities.
const (
	Thing   = OWLNamespace + "Thing"
	Nothing = OWLNamespace + "Nothing"

	TopObjectProperty    = OWLNamespace + "topObjectProperty"
	BottomObjectProperty = OWLNamespace + "bottomObjectProperty"
	TopDataProperty      = OWLNamespace + "topDataProperty"
	BottomDataProperty   = OWLNamespace + "bottomDataProperty"

	Deprecated = OWLNamespace + "deprecated"
	Real       = OWLNamespace + "real"
	Rational   = OWLNamespace + "rational"
)

// OWL 2 relations exposed as triples by the ontology graph view.
const (
	SameAs             = vocabulary.OwlSameAs
	DifferentFrom      = OWLNamespace + "differentFrom"
	EquivalentClass    = vocabulary.OwlEquivalentClass
	EquivalentProperty = vocabulary.OwlEquivalentProperty
	DisjointWith       = OWLNamespace + "disjointWith"
	InverseOf          = OWLNamespace + "inverseOf"
	HasKey             = OWLNamespace + "hasKey"
)

// XSD datatypes.
const (
	XSDString             = XSDNamespace + "string"
	XSDNormalizedString   = XSDNamespace + "normalizedString"
	XSDToken              = XSDNamespace + "token"
	XSDLanguage           = XSDNamespace + "language"
	XSDAnyURI             = XSDNamespace + "anyURI"
	XSDBoolean            = XSDNamespace + "boolean"
	XSDDecimal            = XSDNamespace + "decimal"
	XSDInteger            = XSDNamespace + "integer"
	XSDNonNegativeInteger = XSDNamespace + "nonNegativeInteger"
	XSDNonPositiveInteger = XSDNamespace + "nonPositiveInteger"
	XSDPositiveInteger    = XSDNamespace + "positiveInteger"
	XSDNegativeInteger    = XSDNamespace + "negativeInteger"
	XSDLong               = XSDNamespace + "long"
	XSDInt                = XSDNamespace + "int"
	XSDShort              = XSDNamespace + "short"
	XSDByte               = XSDNamespace + "byte"
	XSDUnsignedLong       = XSDNamespace + "unsignedLong"
	XSDUnsignedInt        = XSDNamespace + "unsignedInt"
	XSDUnsignedShort      = XSDNamespace + "unsignedShort"
	XSDUnsignedByte       = XSDNamespace + "unsignedByte"
	XSDDouble             = XSDNamespace + "double"
	XSDFloat              = XSDNamespace + "float"
	XSDDateTime           = XSDNamespace + "dateTime"
	XSDDateTimeStamp      = XSDNamespace + "dateTimeStamp"
	XSDDate               = XSDNamespace + "date"
	XSDTime               = XSDNamespace + "time"
	XSDGYear              = XSDNamespace + "gYear"
	XSDGYearMonth         = XSDNamespace + "gYearMonth"
	XSDGMonth             = XSDNamespace + "gMonth"
	XSDGMonthDay          = XSDNamespace + "gMonthDay"
	XSDGDay               = XSDNamespace + "gDay"
	XSDDuration           = XSDNamespace + "duration"
	XSDHexBinary          = XSDNamespace + "hexBinary"
	XSDBase64Binary       = XSDNamespace + "base64Binary"
)
