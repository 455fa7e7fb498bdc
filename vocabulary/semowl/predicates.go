package semowl

import "github.com/c360studio/semstreams/vocabulary"

// Report predicates.
const (
	// ReportOntology is the IRI of the validated ontology.
	ReportOntology = "validation.report.ontology"

	// ReportGeneratedAt is the RFC3339 timestamp of report creation.
	ReportGeneratedAt = "validation.report.generated_at"

	// ReportRun links the report to the run that produced it.
	ReportRun = "validation.report.run"

	// ReportIssue links the report to each of its issues.
	ReportIssue = "validation.report.issue"

	// ReportIssueCount is the total number of issues.
	ReportIssueCount = "validation.report.issue_count"

	// ReportErrorCount is the number of error-severity issues.
	ReportErrorCount = "validation.report.error_count"

	// ReportWarningCount is the number of warning-severity issues.
	ReportWarningCount = "validation.report.warning_count"
)

// Issue predicates.
const (
	// IssueRule links an issue to the rule that raised it.
	IssueRule = "validation.issue.rule"

	// IssueSeverity is the severity individual of the issue.
	IssueSeverity = "validation.issue.severity"

	// IssueDescription is the human-readable finding.
	IssueDescription = "validation.issue.description"

	// IssueSuggestion is the suggested fix.
	IssueSuggestion = "validation.issue.suggestion"

	// IssueReport links an issue back to its report.
	IssueReport = "validation.issue.report"
)

// Rule predicates.
const (
	RuleName        = "validation.rule.name"
	RuleDescription = "validation.rule.description"
)

// Validation run predicates.
const (
	// RunOntology is the ontology consumed by the run.
	RunOntology = "validation.run.ontology"

	// RunRule links the run to each rule it applied.
	RunRule = "validation.run.rule"

	// RunAgent is the software agent that performed the run.
	RunAgent = "validation.run.agent"

	RunStartedAt = "validation.run.started_at"
	RunEndedAt   = "validation.run.ended_at"
)

func init() {
	vocabulary.Register(ReportOntology,
		vocabulary.WithDescription("Ontology the report is about"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"aboutOntology"))

	vocabulary.Register(ReportGeneratedAt,
		vocabulary.WithDescription("Report creation timestamp"),
		vocabulary.WithDataType("time.Time"),
		vocabulary.WithIRI(vocabulary.ProvGeneratedAtTime))

	vocabulary.Register(ReportRun,
		vocabulary.WithDescription("Validation run that generated the report"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.ProvWasGeneratedBy))

	vocabulary.Register(ReportIssue,
		vocabulary.WithDescription("Issue contained in the report"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"hasIssue"))

	vocabulary.Register(ReportIssueCount,
		vocabulary.WithDescription("Total number of issues"),
		vocabulary.WithDataType("int"),
		vocabulary.WithRange("non-negative"),
		vocabulary.WithIRI(Namespace+"issueCount"))

	vocabulary.Register(ReportErrorCount,
		vocabulary.WithDescription("Number of error severity issues"),
		vocabulary.WithDataType("int"),
		vocabulary.WithRange("non-negative"),
		vocabulary.WithIRI(Namespace+"errorCount"))

	vocabulary.Register(ReportWarningCount,
		vocabulary.WithDescription("Number of warning severity issues"),
		vocabulary.WithDataType("int"),
		vocabulary.WithRange("non-negative"),
		vocabulary.WithIRI(Namespace+"warningCount"))

	vocabulary.Register(IssueRule,
		vocabulary.WithDescription("Rule that raised the issue"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.ProvWasDerivedFrom))

	vocabulary.Register(IssueSeverity,
		vocabulary.WithDescription("Issue severity: error or warning"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"severity"))

	vocabulary.Register(IssueDescription,
		vocabulary.WithDescription("Human-readable description of the finding"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DCDescription))

	vocabulary.Register(IssueSuggestion,
		vocabulary.WithDescription("Suggested change that resolves the issue"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.RdfsComment))

	vocabulary.Register(IssueReport,
		vocabulary.WithDescription("Report containing the issue"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"inReport"))

	vocabulary.Register(RuleName,
		vocabulary.WithDescription("Rule identifier"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(vocabulary.DcTitle))

	vocabulary.Register(RuleDescription,
		vocabulary.WithDescription("What the rule checks"),
		vocabulary.WithDataType("string"),
		vocabulary.WithIRI(DCDescription))

	vocabulary.Register(RunOntology,
		vocabulary.WithDescription("Ontology used by the validation run"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.ProvUsed))

	vocabulary.Register(RunRule,
		vocabulary.WithDescription("Rule applied during the validation run"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(Namespace+"appliedRule"))

	vocabulary.Register(RunAgent,
		vocabulary.WithDescription("Software agent performing the run"),
		vocabulary.WithDataType("entity_id"),
		vocabulary.WithIRI(vocabulary.ProvWasAssociatedWith))

	vocabulary.Register(RunStartedAt,
		vocabulary.WithDescription("Validation run start time"),
		vocabulary.WithDataType("time.Time"),
		vocabulary.WithIRI(vocabulary.ProvStartedAtTime))

	vocabulary.Register(RunEndedAt,
		vocabulary.WithDescription("Validation run end time"),
		vocabulary.WithDataType("time.Time"),
		vocabulary.WithIRI(vocabulary.ProvEndedAtTime))
}
