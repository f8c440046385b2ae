// Report delete command removes a case report.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var reportDeleteYes bool

var reportDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a case report",
	Long: `Delete removes a case report by ID after confirmation.

Feedback and documents referencing the report are not removed; the stores
hold no cross-entity links.

Example:
  casetrack report delete 3
  casetrack report delete 3 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runReportDelete,
}

func init() {
	reportDeleteCmd.Flags().BoolVar(&reportDeleteYes, "yes", false, "skip the confirmation prompt")
}

func runReportDelete(cmd *cobra.Command, args []string) error {
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

	if !reportDeleteYes && !confirm(fmt.Sprintf("Delete case #%d %q?", report.CaseNumber, report.Title)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := registry.CaseReports().Delete(id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	fmt.Printf("Deleted case #%d: %s\n", report.CaseNumber, report.Title)
	return nil
}
