// Package validator runs a configured set of consistency rules over an
// ontology and collects their issues into a single report.
//
// A Validator indexes the ontology once per run and executes each rule
// exactly once, in the order the rules were added. Rules never see each
// other's output. Issues keep per-rule order and exact duplicates are
// dropped.
package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/c360studio/semowl/ontology"
	"github.com/c360studio/semowl/ontology/index"
	"github.com/c360studio/semowl/validator/report"
	"github.com/c360studio/semowl/validator/rules"
)

var (
	// ErrInvalidRule is returned when a custom rule has no name or function.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrDuplicateRule is returned when a rule name is already registered.
	ErrDuplicateRule = errors.New("duplicate rule")
)

// RuleFunc is a custom rule. It must be a pure function of the index.
type RuleFunc func(idx *index.Index) []report.Issue

type entry struct {
	name string
	fn   RuleFunc
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(v *Validator) {
		v.metrics = m
	}
}

// Validator applies rules to ontologies. Configure it before use; a
// configured Validator may run concurrently on different ontologies.
type Validator struct {
	rules   []entry
	names   map[string]bool
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a Validator with no rules.
func New(opts ...Option) *Validator {
	v := &Validator{
		names:  make(map[string]bool),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddStandardRule adds one standard rule. Adding the same rule twice has no
// effect.
func (v *Validator) AddStandardRule(id rules.ID) error {
	def, ok := rules.Lookup(id)
	if !ok {
		return fmt.Errorf("add standard rule %d: %w", int(id), rules.ErrUnknownRule)
	}
	if v.names[def.Name] {
		return nil
	}
	v.add(def.Name, def.Issues)
	return nil
}

// AddStandardRules adds several standard rules in order.
func (v *Validator) AddStandardRules(ids ...rules.ID) error {
	for _, id := range ids {
		if err := v.AddStandardRule(id); err != nil {
			return err
		}
	}
	return nil
}

// AddAllStandardRules adds every standard rule in ID order.
func (v *Validator) AddAllStandardRules() {
	for _, def := range rules.All() {
		if !v.names[def.Name] {
			v.add(def.Name, def.Issues)
		}
	}
}

// AddRule adds a custom rule.
func (v *Validator) AddRule(name string, fn RuleFunc) error {
	if name == "" || fn == nil {
		return fmt.Errorf("add rule %q: %w", name, ErrInvalidRule)
	}
	if v.names[name] {
		return fmt.Errorf("add rule %q: %w", name, ErrDuplicateRule)
	}
	v.add(name, fn)
	return nil
}

func (v *Validator) add(name string, fn RuleFunc) {
	v.names[name] = true
	v.rules = append(v.rules, entry{name: name, fn: fn})
}

// Rules returns the names of the configured rules in execution order.
func (v *Validator) Rules() []string {
	out := make([]string, len(v.rules))
	for i, r := range v.rules {
		out[i] = r.name
	}
	return out
}

// ApplyToOntology indexes ont and runs every configured rule on it.
func (v *Validator) ApplyToOntology(ont *ontology.Ontology) *report.Report {
	start := time.Now()
	idx := index.New(ont)
	indexTime := time.Since(start)
	v.metrics.recordRun(indexTime)
	v.logger.Debug("Indexed ontology",
		"ontology", ont.IRI(),
		"axioms", ont.AxiomCount(),
		"individuals", len(idx.Individuals()),
		"duration", indexTime)

	rep := v.ApplyToIndex(idx)
	rep.Ontology = ont.IRI()
	return rep
}

// ApplyToIndex runs every configured rule on an existing index.
func (v *Validator) ApplyToIndex(idx *index.Index) *report.Report {
	rep := report.New()
	for _, r := range v.rules {
		start := time.Now()
		issues := v.run(r, idx)
		elapsed := time.Since(start)

		v.metrics.recordRule(r.name, elapsed, issues)
		v.logger.Debug("Rule executed",
			"rule", r.name,
			"issues", len(issues),
			"duration", elapsed)
		rep.Add(issues...)
	}
	rep.Dedup()

	v.logger.Info("Validation complete",
		"rules", len(v.rules),
		"issues", rep.Count(),
		"errors", len(rep.Errors()),
		"warnings", len(rep.Warnings()))
	return rep
}

// run executes one rule. A panicking rule is reported as a single error
// issue under its name so the remaining rules still run.
func (v *Validator) run(r entry, idx *index.Index) (issues []report.Issue) {
	defer func() {
		if p := recover(); p != nil {
			v.logger.Error("Rule panicked",
				"rule", r.name,
				"panic", p,
				"stack", string(debug.Stack()))
			issues = []report.Issue{report.NewError(r.name,
				fmt.Sprintf("rule failed to complete: %v", p),
				"Fix the rule implementation; its findings for this ontology are missing")}
		}
	}()
	return r.fn(idx)
}
