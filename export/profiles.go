package export

import (
	"github.com/c360studio/semowl/vocabulary/semowl"
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"
)

// Profile determines which ontology type assertions are included in the export.
type Profile string

const (
	// ProfileMinimal includes semowl and PROV-O types only.
	ProfileMinimal Profile = "minimal"

	// ProfileBFO includes BFO type assertions plus minimal profile.
	ProfileBFO Profile = "bfo"

	// ProfileCCO includes CCO type assertions plus BFO profile.
	ProfileCCO Profile = "cco"
)

// ProfileConfig contains configuration for an export profile.
type ProfileConfig struct {
	// Name is the profile identifier.
	Name Profile

	// Description describes the profile.
	Description string

	// IncludeBFO indicates whether to include BFO type assertions.
	IncludeBFO bool

	// IncludeCCO indicates whether to include CCO type assertions.
	IncludeCCO bool

	// IncludePROV indicates whether to include PROV-O type assertions.
	IncludePROV bool
}

// Profiles contains the configuration for all available export profiles.
var Profiles = map[Profile]ProfileConfig{
	ProfileMinimal: {
		Name:        ProfileMinimal,
		Description: "semowl and PROV-O types only",
		IncludePROV: true,
	},
	ProfileBFO: {
		Name:        ProfileBFO,
		Description: "BFO type assertions plus minimal profile",
		IncludeBFO:  true,
		IncludePROV: true,
	},
	ProfileCCO: {
		Name:        ProfileCCO,
		Description: "Full CCO/BFO/PROV-O alignment",
		IncludeBFO:  true,
		IncludeCCO:  true,
		IncludePROV: true,
	},
}

// GetProfileConfig returns the configuration for a profile. Unknown
// profiles fall back to minimal.
func GetProfileConfig(profile Profile) ProfileConfig {
	if config, ok := Profiles[profile]; ok {
		return config
	}
	return Profiles[ProfileMinimal]
}

// TypeAsserter generates type assertions for entities based on profile.
type TypeAsserter struct {
	profile ProfileConfig
}

// NewTypeAsserter creates a new type asserter for the given profile.
func NewTypeAsserter(profile Profile) *TypeAsserter {
	return &TypeAsserter{
		profile: GetProfileConfig(profile),
	}
}

// GetTypeIRIs returns all type IRIs for an entity type based on the profile.
// The semowl class always comes first.
func (t *TypeAsserter) GetTypeIRIs(entityType semowl.EntityType) []string {
	types := make([]string, 0, 4)

	if class, ok := semowl.SemowlClassMap[entityType]; ok {
		types = append(types, class)
	}
	if t.profile.IncludePROV {
		if class, ok := semowl.PROVClassMap[entityType]; ok {
			types = append(types, class)
		}
	}
	if t.profile.IncludeBFO {
		if class, ok := semowl.BFOClassMap[entityType]; ok {
			types = append(types, class)
		}
	}
	if t.profile.IncludeCCO {
		if class, ok := semowl.CCOClassMap[entityType]; ok {
			types = append(types, class)
		}
	}

	return types
}

// TypeHierarchy represents the ontology type hierarchy for an entity.
type TypeHierarchy struct {
	SemowlClass string
	PROVClass   string
	BFOClass    string
	CCOClass    string
}

// GetTypeHierarchy returns the full type hierarchy for an entity type.
func GetTypeHierarchy(entityType semowl.EntityType) TypeHierarchy {
	return TypeHierarchy{
		SemowlClass: semowl.SemowlClassMap[entityType],
		PROVClass:   semowl.PROVClassMap[entityType],
		BFOClass:    semowl.BFOClassMap[entityType],
		CCOClass:    semowl.CCOClassMap[entityType],
	}
}

// ClassDescriptions provides human-readable descriptions for the BFO, CCO
// and PROV-O classes reports are aligned with.
var ClassDescriptions = map[string]string{
	bfo.GenericallyDependentContinuant:    "Information patterns that can be copied",
	bfo.IndependentContinuant:             "Entities that can exist on their own",
	bfo.Process:                           "Events that unfold over time",
	cco.InformationContentEntity:          "Root class for information entities",
	cco.DirectiveInformationContentEntity: "Prescriptive information content",
	cco.ActOfArtifactProcessing:           "Processing of an artifact",
	cco.IntelligentSoftwareAgent:          "Autonomous software agent",
	vocabulary.ProvEntity:                 "Thing with fixed aspects",
	vocabulary.ProvActivity:               "Something that occurs over time",
	vocabulary.ProvSoftwareAgent:          "Software agent",
}
