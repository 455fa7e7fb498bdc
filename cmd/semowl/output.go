package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/semowl/config"
	"github.com/c360studio/semowl/export"
	"github.com/c360studio/semowl/validator/report"
)

// fileReport is the JSON and YAML shape of one validated snapshot.
type fileReport struct {
	File   string         `json:"file" yaml:"file"`
	Rules  []string       `json:"rules" yaml:"rules"`
	Report *report.Report `json:"report" yaml:"report"`
}

func renderReport(w io.Writer, file string, rep *report.Report, meta export.ReportMeta, out config.OutputConfig) error {
	switch out.Format {
	case "", "table":
		return renderTable(w, file, rep)
	case "json":
		data, err := json.MarshalIndent(fileReport{File: file, Rules: meta.Rules, Report: rep}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fileReport{File: file, Rules: meta.Rules, Report: rep}); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		rdf, err := export.ExportReport(rep, meta, export.Profile(out.Profile), export.Format(out.Format))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, rdf)
		return err
	}
}

func renderTable(w io.Writer, file string, rep *report.Report) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetTitle("%s: %d errors, %d warnings", file, len(rep.Errors()), len(rep.Warnings()))
	tw.AppendHeader(table.Row{"Severity", "Rule", "Description", "Suggestion"})
	for _, issue := range rep.Issues {
		tw.AppendRow(table.Row{issue.Severity, issue.RuleName, issue.Description, issue.Suggestion})
	}
	if len(rep.Issues) == 0 {
		tw.AppendRow(table.Row{"", "", "No issues found", ""})
	}
	tw.Render()
	return nil
}
