package semowl

import (
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"
)

// EntityType represents the type of an exported validation entity.
type EntityType string

const (
	EntityTypeReport    EntityType = "report"
	EntityTypeIssue     EntityType = "issue"
	EntityTypeRule      EntityType = "rule"
	EntityTypeRun       EntityType = "validation_run"
	EntityTypeValidator EntityType = "validator"
)

// BFOClassMap maps entity types to BFO class IRIs.
var BFOClassMap = map[EntityType]string{
	EntityTypeReport:    bfo.GenericallyDependentContinuant,
	EntityTypeIssue:     bfo.GenericallyDependentContinuant,
	EntityTypeRule:      bfo.GenericallyDependentContinuant,
	EntityTypeRun:       bfo.Process,
	EntityTypeValidator: bfo.IndependentContinuant,
}

// CCOClassMap maps entity types to CCO class IRIs.
var CCOClassMap = map[EntityType]string{
	EntityTypeReport:    cco.InformationContentEntity,
	EntityTypeIssue:     cco.InformationContentEntity,
	EntityTypeRule:      cco.DirectiveInformationContentEntity,
	EntityTypeRun:       cco.ActOfArtifactProcessing,
	EntityTypeValidator: cco.IntelligentSoftwareAgent,
}

// PROVClassMap maps entity types to PROV-O class IRIs.
var PROVClassMap = map[EntityType]string{
	EntityTypeReport:    vocabulary.ProvEntity,
	EntityTypeIssue:     vocabulary.ProvEntity,
	EntityTypeRule:      vocabulary.ProvEntity,
	EntityTypeRun:       vocabulary.ProvActivity,
	EntityTypeValidator: vocabulary.ProvSoftwareAgent,
}

// SemowlClassMap maps entity types to semowl class IRIs.
var SemowlClassMap = map[EntityType]string{
	EntityTypeReport:    ClassValidationReport,
	EntityTypeIssue:     ClassIssue,
	EntityTypeRule:      ClassRule,
	EntityTypeRun:       ClassValidationRun,
	EntityTypeValidator: ClassValidator,
}

// GetTypesForEntity returns all type IRIs for an entity type and profile:
//   - "minimal": semowl + PROV-O types
//   - "bfo": adds the BFO type
//   - "cco": adds the BFO and CCO types
func GetTypesForEntity(entityType EntityType, profile string) []string {
	types := make([]string, 0, 4)
	if class, ok := SemowlClassMap[entityType]; ok {
		types = append(types, class)
	}
	if class, ok := PROVClassMap[entityType]; ok {
		types = append(types, class)
	}
	if profile == "bfo" || profile == "cco" {
		if class, ok := BFOClassMap[entityType]; ok {
			types = append(types, class)
		}
	}
	if profile == "cco" {
		if class, ok := CCOClassMap[entityType]; ok {
			types = append(types, class)
		}
	}
	return types
}

// GetPredicateIRI returns the IRI registered for a dotted predicate, falling
// back to the semowl namespace for unregistered ones.
func GetPredicateIRI(predicate string) string {
	if meta := vocabulary.GetPredicateMetadata(predicate); meta != nil && meta.StandardIRI != "" {
		return meta.StandardIRI
	}
	return Namespace + predicate
}
