// Report get command shows one case report in full.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var reportGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a case report by ID",
	Long: `Get fetches a single case report by its ID and displays every field.

Example:
  casetrack report get 3
  casetrack report get 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runReportGet,
}

func runReportGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid report id %q", args[0])
	}

	registry, err := openRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	report, err := registry.CaseReports().Get(id)
	if err != nil {
		return fmt.Errorf("get report: %w", err)
	}

	if flagJSON {
		return printJSON(report)
	}

	fmt.Printf("Case #%d: %s\n", report.CaseNumber, report.Title)
	if report.IsMilestone() {
		fmt.Println("Milestone case")
	}
	fmt.Printf("Type:          %s\n", report.CaseType)
	fmt.Printf("Status:        %s\n", report.Status)
	fmt.Printf("Submitted:     %s\n", formatDate(report.SubmissionDate))
	fmt.Printf("Interventions: %s\n", strings.Join(report.Interventions, ", "))
	fmt.Printf("Outcomes:      %s\n", report.Outcomes)
	if len(report.Attachments) > 0 {
		fmt.Printf("Attachments:   %s\n", strings.Join(report.Attachments, ", "))
	}
	return nil
}
