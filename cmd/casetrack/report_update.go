// Report update command patches fields of an existing case report.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

var (
	updateTitle         string
	updateType          string
	updateInterventions []string
	updateOutcomes      string
	updateStatus        string
)

var reportUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a case report",
	Long: `Update patches only the fields whose flags are set; everything else is
left untouched. The ID and case number cannot change.

Example:
  casetrack report update 3 --status submitted
  casetrack report update 3 --title "Anxiety case (revised)" --outcomes "..."`,
	Args: cobra.ExactArgs(1),
	RunE: runReportUpdate,
}

func init() {
	reportUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	reportUpdateCmd.Flags().StringVar(&updateType, "type", "", "new case type")
	reportUpdateCmd.Flags().StringArrayVar(&updateInterventions, "intervention", nil, "replacement intervention list (repeatable)")
	reportUpdateCmd.Flags().StringVar(&updateOutcomes, "outcomes", "", "new outcomes")
	reportUpdateCmd.Flags().StringVar(&updateStatus, "status", "", "new status")
}

func runReportUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid report id %q", args[0])
	}

	// Only flags the caller actually set become part of the patch, so an
	// empty string never clobbers an existing field.
	var patch types.CaseReportPatch
	changed := false
	if cmd.Flags().Changed("title") {
		patch.Title = &updateTitle
		changed = true
	}
	if cmd.Flags().Changed("type") {
		patch.CaseType = &updateType
		changed = true
	}
	if cmd.Flags().Changed("intervention") {
		patch.Interventions = &updateInterventions
		changed = true
	}
	if cmd.Flags().Changed("outcomes") {
		patch.Outcomes = &updateOutcomes
		changed = true
	}
	if cmd.Flags().Changed("status") {
		patch.Status = &updateStatus
		changed = true
	}
	if !changed {
		return fmt.Errorf("update: at least one field flag must be provided")
	}

	registry, err := openRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	report, err := registry.CaseReports().Update(id, patch)
	if err != nil {
		return fmt.Errorf("update report: %w", err)
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Printf("Updated case #%d: %s (%s)\n", report.CaseNumber, report.Title, report.Status)
	return nil
}
