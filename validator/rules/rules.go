// Package rules implements the standard OWL 2 consistency rules. Each rule is
// a pure function over an index.Index that returns its findings; rules never
// see each other's output and never mutate the ontology.
//
// Rules are addressed by ID through the Standard table:
//
//	rep := rules.Standard[rules.ClassType].Execute(ont)
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
	"github.com/c360studio/semowl/validator/report"
)

// ErrUnknownRule is returned when a rule ID or name is not in the standard table.
var ErrUnknownRule = errors.New("unknown rule")

// ID identifies a standard rule.
type ID int

const (
	AsymmetricProperty ID = iota
	ClassKey
	ClassType
	DifferentIndividuals
	DisjointClasses
	EquivalentClasses
	DomainRange
	InverseOf
	GlobalCardinality
	LocalCardinality
	NegativeAssertions
	PropertyDisjoint
	PropertyCharacteristics
	IrreflexiveProperty
	LiteralValidity
	ClassEnumeration
	HasValue
	AllValuesFrom
	TermDeclaration
	TermDeprecation
	TermDisjointness
	ThingNothing
	TopBottom
	SameIndividualClassClash
	ObjectPropertyChain

	numRules
)

// String returns the rule name.
func (id ID) String() string {
	if def, ok := Lookup(id); ok {
		return def.Name
	}
	return fmt.Sprintf("rule(%d)", int(id))
}

// Finding is a single violation reported by a Check. The rule's name and
// severity are attached when the finding becomes a report.Issue.
type Finding struct {
	Description string
	Suggestion  string
}

// Check inspects an index and returns its findings in a deterministic order.
type Check func(idx *index.Index) []Finding

// Definition describes one rule.
type Definition struct {
	ID          ID
	Name        string
	Description string
	Severity    report.Severity
	Check       Check
}

// Execute indexes ont and runs the rule on it.
func (d Definition) Execute(ont *ontology.Ontology) *report.Report {
	rep := d.ExecuteIndexed(index.New(ont))
	rep.Ontology = ont.IRI()
	return rep
}

// ExecuteIndexed runs the rule on an existing index.
func (d Definition) ExecuteIndexed(idx *index.Index) *report.Report {
	rep := report.New()
	rep.Add(d.Issues(idx)...)
	return rep
}

// Issues runs the check and converts its findings into issues.
func (d Definition) Issues(idx *index.Index) []report.Issue {
	findings := d.Check(idx)
	issues := make([]report.Issue, 0, len(findings))
	for _, f := range findings {
		issues = append(issues, report.Issue{
			RuleName:    d.Name,
			Severity:    d.Severity,
			Description: f.Description,
			Suggestion:  f.Suggestion,
		})
	}
	return issues
}

// Standard is the table of standard rules, indexed by ID.
var Standard = [numRules]Definition{
	AsymmetricProperty: {
		Name:        "AsymmetricProperty",
		Description: "An asymmetric property must not be asserted in both directions between two individuals",
		Severity:    report.Error,
		Check:       checkAsymmetricProperty,
	},
	ClassKey: {
		Name:        "ClassKey",
		Description: "Individuals that share all key values of a class must not be asserted different",
		Severity:    report.Error,
		Check:       checkClassKey,
	},
	ClassType: {
		Name:        "ClassType",
		Description: "Individuals must not belong to disjoint or complementary classes nor exceed max cardinality restrictions",
		Severity:    report.Error,
		Check:       checkClassType,
	},
	DifferentIndividuals: {
		Name:        "DifferentIndividuals",
		Description: "An individual must not be both the same as and different from another individual",
		Severity:    report.Error,
		Check:       checkDifferentIndividuals,
	},
	DisjointClasses: {
		Name:        "DisjointClasses",
		Description: "Disjoint classes must not subsume each other or be equivalent",
		Severity:    report.Error,
		Check:       checkDisjointClasses,
	},
	EquivalentClasses: {
		Name:        "EquivalentClasses",
		Description: "A class must not be equivalent to the complement of one of its synonyms",
		Severity:    report.Error,
		Check:       checkEquivalentClasses,
	},
	DomainRange: {
		Name:        "DomainRange",
		Description: "Assertion subjects and objects must not contradict the domain and range of the property",
		Severity:    report.Error,
		Check:       checkDomainRange,
	},
	InverseOf: {
		Name:        "InverseOf",
		Description: "The domain of a property must agree with the range of its inverse",
		Severity:    report.Error,
		Check:       checkInverseOf,
	},
	GlobalCardinality: {
		Name:        "GlobalCardinality",
		Description: "Functional and inverse functional properties must not relate distinct values",
		Severity:    report.Error,
		Check:       checkGlobalCardinality,
	},
	LocalCardinality: {
		Name:        "LocalCardinality",
		Description: "Cardinality restrictions must not use transitive or chain-composed properties",
		Severity:    report.Error,
		Check:       checkLocalCardinality,
	},
	NegativeAssertions: {
		Name:        "NegativeAssertions",
		Description: "A negative property assertion must not contradict a positive one",
		Severity:    report.Error,
		Check:       checkNegativeAssertions,
	},
	PropertyDisjoint: {
		Name:        "PropertyDisjoint",
		Description: "Disjoint properties must not share an assertion pair nor subsume each other",
		Severity:    report.Error,
		Check:       checkPropertyDisjoint,
	},
	PropertyCharacteristics: {
		Name:        "PropertyCharacteristics",
		Description: "A property must not carry contradictory characteristics",
		Severity:    report.Error,
		Check:       checkPropertyCharacteristics,
	},
	IrreflexiveProperty: {
		Name:        "IrreflexiveProperty",
		Description: "An irreflexive property must not relate an individual to itself",
		Severity:    report.Error,
		Check:       checkIrreflexiveProperty,
	},
	LiteralValidity: {
		Name:        "LiteralValidity",
		Description: "Literals must be in the lexical space of their datatype",
		Severity:    report.Error,
		Check:       checkLiteralValidity,
	},
	ClassEnumeration: {
		Name:        "ClassEnumeration",
		Description: "Instances of an enumeration must be one of its members",
		Severity:    report.Error,
		Check:       checkClassEnumeration,
	},
	HasValue: {
		Name:        "HasValue",
		Description: "A has-value restriction must not be contradicted by a negative assertion",
		Severity:    report.Error,
		Check:       checkHasValue,
	},
	AllValuesFrom: {
		Name:        "AllValuesFrom",
		Description: "Values of a universal restriction must not belong to a class disjoint with its filler",
		Severity:    report.Error,
		Check:       checkAllValuesFrom,
	},
	TermDeclaration: {
		Name:        "TermDeclaration",
		Description: "Every term used in an axiom should be declared",
		Severity:    report.Warning,
		Check:       checkTermDeclaration,
	},
	TermDeprecation: {
		Name:        "TermDeprecation",
		Description: "Deprecated terms should not be used",
		Severity:    report.Warning,
		Check:       checkTermDeprecation,
	},
	TermDisjointness: {
		Name:        "TermDisjointness",
		Description: "An IRI must not be declared as more than one kind of entity",
		Severity:    report.Error,
		Check:       checkTermDisjointness,
	},
	ThingNothing: {
		Name:        "ThingNothing",
		Description: "owl:Thing and owl:Nothing must not be given non-trivial axioms or instances",
		Severity:    report.Error,
		Check:       checkThingNothing,
	},
	TopBottom: {
		Name:        "TopBottom",
		Description: "Top and bottom properties must not be given non-trivial axioms or contradictory assertions",
		Severity:    report.Error,
		Check:       checkTopBottom,
	},
	SameIndividualClassClash: {
		Name:        "SameIndividualClassClash",
		Description: "Individuals asserted the same must not belong to disjoint classes",
		Severity:    report.Error,
		Check:       checkSameIndividualClassClash,
	},
	ObjectPropertyChain: {
		Name:        "ObjectPropertyChain",
		Description: "The super property of a chain must not be asymmetric or irreflexive",
		Severity:    report.Error,
		Check:       checkObjectPropertyChain,
	},
}

func init() {
	for i := range Standard {
		Standard[i].ID = ID(i)
	}
}

// Lookup returns the definition of a standard rule.
func Lookup(id ID) (Definition, bool) {
	if id < 0 || id >= numRules {
		return Definition{}, false
	}
	return Standard[id], true
}

// All returns every standard rule in ID order.
func All() []Definition {
	out := make([]Definition, len(Standard))
	copy(out, Standard[:])
	return out
}

// IDs returns every standard rule ID in order.
func IDs() []ID {
	out := make([]ID, numRules)
	for i := range out {
		out[i] = ID(i)
	}
	return out
}

// ParseID resolves a rule name, case-insensitively.
func ParseID(name string) (ID, error) {
	for _, def := range Standard {
		if strings.EqualFold(def.Name, strings.TrimSpace(name)) {
			return def.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// Execute runs one standard rule on ont.
func Execute(id ID, ont *ontology.Ontology) (*report.Report, error) {
	def, ok := Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRule, int(id))
	}
	return def.Execute(ont), nil
}
