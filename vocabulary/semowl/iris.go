// Package semowl provides the vocabulary used to publish validation results
// as RDF: report, issue, rule and validation run classes, the dotted
// predicates that describe them, and their alignment with PROV-O, BFO and
// CCO for export profiles.
package semowl

// Namespace is the base IRI prefix for semowl vocabulary terms.
const Namespace = "https://semowl.dev/ontology/"

// EntityNamespace is the base IRI for semowl entity instances.
const EntityNamespace = "https://semowl.dev/entity/"

// DCDescription is the Dublin Core description property.
const DCDescription = "http://purl.org/dc/terms/description"

// Class IRIs.
const (
	// ClassValidationReport is the outcome of one validation run.
	// Extends: bfo:GenericallyDependentContinuant, cco:InformationContentEntity, prov:Entity
	ClassValidationReport = Namespace + "ValidationReport"

	// ClassIssue is a single finding of a rule.
	// Extends: bfo:GenericallyDependentContinuant, cco:InformationContentEntity, prov:Entity
	ClassIssue = Namespace + "Issue"

	// ClassRule is a consistency rule applied by the validator.
	// Extends: cco:DirectiveInformationContentEntity, prov:Entity
	ClassRule = Namespace + "Rule"

	// ClassValidationRun is the activity of applying rules to an ontology.
	// Extends: bfo:Process, cco:ActOfArtifactProcessing, prov:Activity
	ClassValidationRun = Namespace + "ValidationRun"

	// ClassValidator is the software agent performing validation.
	// Extends: cco:IntelligentSoftwareAgent, prov:SoftwareAgent
	ClassValidator = Namespace + "Validator"
)

// Severity individuals.
const (
	SeverityError   = Namespace + "SeverityError"
	SeverityWarning = Namespace + "SeverityWarning"
)
