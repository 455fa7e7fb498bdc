package export

import (
	"fmt"
	"time"

	"github.com/c360studio/semowl/validator/report"
	"github.com/c360studio/semowl/validator/rules"
	"github.com/c360studio/semowl/vocabulary/semowl"
	"github.com/c360studio/semstreams/vocabulary"
)

// ValidatorEntityID identifies the semowl validator agent.
const ValidatorEntityID = "validator/semowl"

// ReportMeta carries the run details a report does not hold itself.
type ReportMeta struct {
	// Rules lists the rules the run applied, in order.
	Rules     []string
	StartedAt time.Time
	EndedAt   time.Time
	// Version labels the validator agent.
	Version string
}

// ReportEntityID returns the entity ID of a report.
func ReportEntityID(reportID string) string { return "report/" + reportID }

// RunEntityID returns the entity ID of the run that produced a report.
func RunEntityID(reportID string) string { return "run/" + reportID }

// IssueEntityID returns the entity ID of the n-th issue of a report.
func IssueEntityID(reportID string, n int) string {
	return fmt.Sprintf("issue/%s/%d", reportID, n)
}

// RuleEntityID returns the entity ID of a rule.
func RuleEntityID(name string) string { return "rule/" + name }

// SeverityIRI returns the individual for a severity.
func SeverityIRI(s report.Severity) string {
	if s == report.Error {
		return semowl.SeverityError
	}
	return semowl.SeverityWarning
}

// ReportEntities describes a report as entities: the report, the run that
// produced it, the validator agent, each applied rule and each issue.
func ReportEntities(rep *report.Report, meta ReportMeta) []Entity {
	reportID := ReportEntityID(rep.ID)
	runID := RunEntityID(rep.ID)

	reportEntity := Entity{ID: reportID, EntityType: semowl.EntityTypeReport}
	add := func(e *Entity, predicate string, object any) {
		e.Triples = append(e.Triples, Triple{Subject: e.ID, Predicate: predicate, Object: object})
	}

	add(&reportEntity, semowl.ReportRun, IRI(runID))
	add(&reportEntity, semowl.ReportGeneratedAt, rep.GeneratedAt)
	if rep.Ontology != "" {
		add(&reportEntity, semowl.ReportOntology, IRI(rep.Ontology))
	}
	add(&reportEntity, semowl.ReportIssueCount, rep.Count())
	add(&reportEntity, semowl.ReportErrorCount, len(rep.Errors()))
	add(&reportEntity, semowl.ReportWarningCount, len(rep.Warnings()))
	for i := range rep.Issues {
		add(&reportEntity, semowl.ReportIssue, IRI(IssueEntityID(rep.ID, i+1)))
	}

	run := Entity{ID: runID, EntityType: semowl.EntityTypeRun}
	if rep.Ontology != "" {
		add(&run, semowl.RunOntology, IRI(rep.Ontology))
	}
	for _, name := range meta.Rules {
		add(&run, semowl.RunRule, IRI(RuleEntityID(name)))
	}
	add(&run, semowl.RunAgent, IRI(ValidatorEntityID))
	if !meta.StartedAt.IsZero() {
		add(&run, semowl.RunStartedAt, meta.StartedAt)
	}
	if !meta.EndedAt.IsZero() {
		add(&run, semowl.RunEndedAt, meta.EndedAt)
	}

	agent := Entity{ID: ValidatorEntityID, EntityType: semowl.EntityTypeValidator}
	label := "semowl validator"
	if meta.Version != "" {
		label += " " + meta.Version
	}
	add(&agent, vocabulary.RdfsLabel, label)

	entities := []Entity{reportEntity, run, agent}

	for _, name := range meta.Rules {
		rule := Entity{ID: RuleEntityID(name), EntityType: semowl.EntityTypeRule}
		add(&rule, semowl.RuleName, name)
		if id, err := rules.ParseID(name); err == nil {
			if def, ok := rules.Lookup(id); ok {
				add(&rule, semowl.RuleDescription, def.Description)
			}
		}
		entities = append(entities, rule)
	}

	for i, issue := range rep.Issues {
		e := Entity{ID: IssueEntityID(rep.ID, i+1), EntityType: semowl.EntityTypeIssue}
		add(&e, semowl.IssueReport, IRI(reportID))
		add(&e, semowl.IssueRule, IRI(RuleEntityID(issue.RuleName)))
		add(&e, semowl.IssueSeverity, IRI(SeverityIRI(issue.Severity)))
		add(&e, semowl.IssueDescription, issue.Description)
		if issue.Suggestion != "" {
			add(&e, semowl.IssueSuggestion, issue.Suggestion)
		}
		entities = append(entities, e)
	}

	return entities
}

// ExportReport serializes a report in format using profile.
func ExportReport(rep *report.Report, meta ReportMeta, profile Profile, format Format) (string, error) {
	exporter := NewRDFExporter(profile)
	exporter.AddEntities(ReportEntities(rep, meta)...)
	return exporter.Export(format)
}
