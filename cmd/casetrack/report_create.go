// Report create command submits a new case report.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casetrack/pkg/types"
)

var (
	createTitle         string
	createType          string
	createInterventions []string
	createOutcomes      string
	createStatus        string
	createAttachments   []string
)

var reportCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a case report",
	Long: `Create adds a new case report. The ID and case number are assigned
automatically and the submission date is stamped at create time.

When the new case number lands on a supervision milestone (every 5th case),
a prompt to schedule a supervision meeting is printed; no meeting is created
automatically.

Example:
  casetrack report create --title "Anxiety case" --type individual \
    --intervention CBT --intervention "exposure therapy" \
    --outcomes "Reduced symptoms over 6 sessions"`,
	Args: cobra.NoArgs,
	RunE: runReportCreate,
}

func init() {
	reportCreateCmd.Flags().StringVar(&createTitle, "title", "", "report title (required)")
	reportCreateCmd.Flags().StringVar(&createType, "type", "", "case type: individual, couples, family, group (required)")
	reportCreateCmd.Flags().StringArrayVar(&createInterventions, "intervention", nil, "intervention used (repeatable, at least one required)")
	reportCreateCmd.Flags().StringVar(&createOutcomes, "outcomes", "", "session outcomes (required)")
	reportCreateCmd.Flags().StringVar(&createStatus, "status", "", "initial status (default: draft)")
	reportCreateCmd.Flags().StringArrayVar(&createAttachments, "attachment", nil, "attachment name (repeatable)")
}

func runReportCreate(cmd *cobra.Command, args []string) error {
	registry, err := openRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	report, err := registry.CaseReports().Create(types.CaseReportDraft{
		Title:         createTitle,
		CaseType:      createType,
		Interventions: createInterventions,
		Outcomes:      createOutcomes,
		Status:        createStatus,
		Attachments:   createAttachments,
	})
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Printf("Created case #%d (id %d): %s\n", report.CaseNumber, report.ID, report.Title)
	if report.IsMilestone() {
		fmt.Printf("Case #%d is a supervision milestone. Schedule a supervision meeting:\n", report.CaseNumber)
		fmt.Printf("  casetrack meeting schedule --case %d --date <when> --location <where>\n", report.CaseNumber)
	}
	return nil
}
