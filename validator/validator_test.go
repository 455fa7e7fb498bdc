package validator_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
	"github.com/c360studio/semowl/validator"
	"github.com/c360studio/semowl/validator/report"
	"github.com/c360studio/semowl/validator/rules"
)

const ns = "http://example.org/validator#"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func inconsistentOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	ont := ontology.New(ns)
	require.NoError(t, ont.Add(
		ontology.Declaration{Entity: ontology.Entity{Kind: ontology.KindClass, IRI: ns + "Cat"}},
		ontology.DisjointClasses{Classes: []ontology.ClassExpression{
			ontology.Class{IRI: ns + "Cat"},
			ontology.Class{IRI: ns + "Dog"},
		}},
		ontology.ClassAssertion{Class: ontology.Class{IRI: ns + "Cat"}, Individual: ns + "tom"},
		ontology.ClassAssertion{Class: ontology.Class{IRI: ns + "Dog"}, Individual: ns + "tom"},
	))
	return ont
}

func TestApplyToOntology_StandardRules(t *testing.T) {
	v := validator.New(validator.WithLogger(quietLogger()))
	require.NoError(t, v.AddStandardRules(rules.ClassType, rules.TermDeclaration))

	rep := v.ApplyToOntology(inconsistentOntology(t))

	assert.Equal(t, ns, rep.Ontology)
	require.Len(t, rep.Errors(), 1)
	assert.Equal(t, "ClassType", rep.Errors()[0].RuleName)

	// Dog and tom are used without declaration.
	assert.Len(t, rep.Warnings(), 2)
	for _, w := range rep.Warnings() {
		assert.Equal(t, "TermDeclaration", w.RuleName)
	}
	assert.Equal(t, "ClassType", rep.Issues[0].RuleName, "issues follow rule order")
}

func TestApplyToOntology_AllStandardRules(t *testing.T) {
	v := validator.New(validator.WithLogger(quietLogger()))
	v.AddAllStandardRules()
	v.AddAllStandardRules()
	assert.Len(t, v.Rules(), len(rules.All()))

	rep := v.ApplyToOntology(ontology.New(ns))
	assert.Equal(t, 0, rep.Count())
}

func TestAddStandardRule_Errors(t *testing.T) {
	v := validator.New()
	assert.ErrorIs(t, v.AddStandardRule(rules.ID(-1)), rules.ErrUnknownRule)
	assert.ErrorIs(t, v.AddStandardRules(rules.ClassType, rules.ID(1000)), rules.ErrUnknownRule)
	assert.Equal(t, []string{"ClassType"}, v.Rules())

	require.NoError(t, v.AddStandardRule(rules.ClassType))
	assert.Len(t, v.Rules(), 1)
}

func TestAddRule(t *testing.T) {
	v := validator.New(validator.WithLogger(quietLogger()))

	calls := 0
	err := v.AddRule("NoIndividuals", func(idx *index.Index) []report.Issue {
		calls++
		if len(idx.Individuals()) == 0 {
			return []report.Issue{report.NewWarning("NoIndividuals", "ontology has no individuals", "")}
		}
		return nil
	})
	require.NoError(t, err)

	assert.ErrorIs(t, v.AddRule("", func(*index.Index) []report.Issue { return nil }), validator.ErrInvalidRule)
	assert.ErrorIs(t, v.AddRule("x", nil), validator.ErrInvalidRule)
	assert.ErrorIs(t, v.AddRule("NoIndividuals", func(*index.Index) []report.Issue { return nil }), validator.ErrDuplicateRule)

	rep := v.ApplyToOntology(ontology.New(ns))
	assert.Equal(t, 1, calls, "each rule runs once per application")
	require.Equal(t, 1, rep.Count())
	assert.Equal(t, report.Warning, rep.Issues[0].Severity)
}

func TestApplyToOntology_Dedup(t *testing.T) {
	v := validator.New(validator.WithLogger(quietLogger()))
	issue := report.NewError("Twice", "same finding", "")
	require.NoError(t, v.AddRule("Twice", func(*index.Index) []report.Issue {
		return []report.Issue{issue, issue}
	}))
	require.NoError(t, v.AddRule("Again", func(*index.Index) []report.Issue {
		return []report.Issue{issue, report.NewError("Again", "other", "")}
	}))

	rep := v.ApplyToOntology(ontology.New(ns))
	require.Equal(t, 2, rep.Count())
	assert.Equal(t, "Twice", rep.Issues[0].RuleName)
	assert.Equal(t, "Again", rep.Issues[1].RuleName)
}

func TestApplyToOntology_PanickingRule(t *testing.T) {
	v := validator.New(validator.WithLogger(quietLogger()))
	require.NoError(t, v.AddRule("Broken", func(*index.Index) []report.Issue {
		var m map[string][]report.Issue
		m["x"] = nil
		return nil
	}))
	require.NoError(t, v.AddStandardRule(rules.ClassType))

	var rep *report.Report
	require.NotPanics(t, func() { rep = v.ApplyToOntology(inconsistentOntology(t)) })

	broken := rep.ByRule("Broken")
	require.Len(t, broken, 1)
	assert.Equal(t, report.Error, broken[0].Severity)
	assert.Contains(t, broken[0].Description, "assignment to entry in nil map")

	assert.Len(t, rep.ByRule("ClassType"), 1, "later rules still run")
}

func TestMetrics(t *testing.T) {
	assert.Nil(t, validator.NewMetrics(nil))

	reg := prometheus.NewRegistry()
	metrics := validator.NewMetrics(reg)
	require.NotNil(t, metrics)

	v := validator.New(validator.WithLogger(quietLogger()), validator.WithMetrics(metrics))
	require.NoError(t, v.AddStandardRule(rules.ClassType))

	v.ApplyToOntology(inconsistentOntology(t))
	v.ApplyToOntology(inconsistentOntology(t))

	count, err := testutil.GatherAndCount(reg, "semowl_validator_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := `
# HELP semowl_validator_issues_total Issues reported by rules
# TYPE semowl_validator_issues_total counter
semowl_validator_issues_total{rule="ClassType",severity="error"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "semowl_validator_issues_total"))
}

func TestValidator_ConcurrentRuns(t *testing.T) {
	v := validator.New(validator.WithLogger(quietLogger()))
	v.AddAllStandardRules()

	onts := make([]*ontology.Ontology, 4)
	for i := range onts {
		onts[i] = inconsistentOntology(t)
	}

	done := make(chan int)
	for _, ont := range onts {
		go func() {
			done <- v.ApplyToOntology(ont).Count()
		}()
	}
	first := <-done
	for i := 1; i < 4; i++ {
		assert.Equal(t, first, <-done)
	}
}
