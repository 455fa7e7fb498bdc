// Package report holds the data produced by validation: issues raised by
// rules and the ordered report that collects them.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Severity classifies an issue. Errors are confirmed OWL semantic
// violations; warnings are best-practice findings that do not make the
// ontology inconsistent.
type Severity int

const (
	Warning Severity = iota
	Error
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity parses "error" or "warning", case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return Error, nil
	case "warning", "warn":
		return Warning, nil
	default:
		return 0, fmt.Errorf("unknown severity: %q", s)
	}
}

// Issue is a single finding of a rule. Issues are never mutated after
// creation.
type Issue struct {
	RuleName    string   `json:"rule" yaml:"rule"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Description string   `json:"description" yaml:"description"`
	Suggestion  string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// NewError creates an error-severity issue.
func NewError(rule, description, suggestion string) Issue {
	return Issue{RuleName: rule, Severity: Error, Description: description, Suggestion: suggestion}
}

// NewWarning creates a warning-severity issue.
func NewWarning(rule, description, suggestion string) Issue {
	return Issue{RuleName: rule, Severity: Warning, Description: description, Suggestion: suggestion}
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.RuleName, i.Description)
}

// Report is an insertion-ordered collection of issues.
type Report struct {
	ID          string    `json:"id" yaml:"id"`
	Ontology    string    `json:"ontology,omitempty" yaml:"ontology,omitempty"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Issues      []Issue   `json:"issues" yaml:"issues"`
}

// New creates an empty report with a fresh ID.
func New() *Report {
	return &Report{
		ID:          uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Issues:      make([]Issue, 0),
	}
}

// Add appends issues in order.
func (r *Report) Add(issues ...Issue) {
	r.Issues = append(r.Issues, issues...)
}

// Merge appends all issues of other.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Dedup removes exact duplicate issues, keeping the first occurrence.
func (r *Report) Dedup() {
	seen := make(map[Issue]bool, len(r.Issues))
	kept := r.Issues[:0]
	for _, issue := range r.Issues {
		if seen[issue] {
			continue
		}
		seen[issue] = true
		kept = append(kept, issue)
	}
	r.Issues = kept
}

// Count returns the number of issues.
func (r *Report) Count() int { return len(r.Issues) }

// BySeverity returns the issues of one severity in report order.
func (r *Report) BySeverity(s Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == s {
			out = append(out, issue)
		}
	}
	return out
}

// Errors returns the error-severity issues.
func (r *Report) Errors() []Issue { return r.BySeverity(Error) }

// Warnings returns the warning-severity issues.
func (r *Report) Warnings() []Issue { return r.BySeverity(Warning) }

// HasErrors reports whether any issue has error severity.
func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == Error {
			return true
		}
	}
	return false
}

// ByRule returns the issues raised by one rule in report order.
func (r *Report) ByRule(rule string) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.RuleName == rule {
			out = append(out, issue)
		}
	}
	return out
}

// AtLeast reports whether the report contains an issue of severity s or
// higher.
func (r *Report) AtLeast(s Severity) bool {
	for _, issue := range r.Issues {
		if issue.Severity >= s {
			return true
		}
	}
	return false
}
