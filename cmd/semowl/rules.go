package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/c360studio/semowl/validator/rules"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the standard validation rules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"#", "Rule", "Severity", "Description"})
			for _, def := range rules.All() {
				tw.AppendRow(table.Row{int(def.ID), def.Name, def.Severity, def.Description})
			}
			tw.Render()
		},
	}
}
