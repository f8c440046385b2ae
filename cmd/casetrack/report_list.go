// Report list command queries case reports with optional filtering.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casetrack/internal/filter"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

var (
	reportListStatus string
	reportListType   string
	reportListSearch string
)

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List case reports",
	Long: `List fetches all case reports, newest case number first.

Use --status and --type for exact facet matches and --search for a
case-insensitive substring match on title or case type. Active filters
combine with AND. Milestone cases are marked with *.

Example:
  casetrack report list
  casetrack report list --status submitted
  casetrack report list --type individual --search anxiety
  casetrack report list --json`,
	Args: cobra.NoArgs,
	RunE: runReportList,
}

func init() {
	reportListCmd.Flags().StringVar(&reportListStatus, "status", "", "filter by status (draft, submitted, under-review, approved)")
	reportListCmd.Flags().StringVar(&reportListType, "type", "", "filter by case type (individual, couples, family, group)")
	reportListCmd.Flags().StringVar(&reportListSearch, "search", "", "search title and case type")
}

func runReportList(cmd *cobra.Command, args []string) error {
	registry, err := openRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	reports, err := registry.CaseReports().List()
	if err != nil {
		return fmt.Errorf("list reports: %w", err)
	}

	f := filter.ReportFilter{
		SearchTerm: reportListSearch,
		Status:     reportListStatus,
		CaseType:   reportListType,
	}
	reports = f.Apply(reports)

	if flagJSON {
		return printJSON(reports)
	}

	printReportTable(reports, f.Active())
	return nil
}

// printReportTable prints reports in a human-readable table format.
func printReportTable(reports []types.CaseReport, filtered bool) {
	if len(reports) == 0 {
		if filtered {
			fmt.Println("No reports match the active filters.")
		} else {
			fmt.Println("No reports found.")
		}
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "CASE\tTITLE\tTYPE\tSTATUS\tSUBMITTED")
	fmt.Fprintln(w, "----\t-----\t----\t------\t---------")
	for _, r := range reports {
		caseNo := fmt.Sprintf("#%d", r.CaseNumber)
		if r.IsMilestone() {
			caseNo += " *"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			caseNo,
			truncate(r.Title, 40),
			r.CaseType,
			r.Status,
			formatDate(r.SubmissionDate),
		)
	}
	w.Flush()
	fmt.Fprint(os.Stdout, sb.String())

	fmt.Printf("Total: %d report(s)\n", len(reports))
}
