// Document command tree for the casetrack CLI.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casetrack/internal/filter"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage the document repository",
}

var (
	docListCategory string
	docListSearch   string
)

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Long: `List fetches all documents, newest upload first, with repository stats.

Use --category for an exact category match and --search for a
case-insensitive substring match on filename or category.

Example:
  casetrack document list
  casetrack document list --category assessments
  casetrack document list --search gad`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openRegistry()
		if err != nil {
			return err
		}
		defer registry.Close()

		docs, err := registry.Documents().List()
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}

		f := filter.DocumentFilter{SearchTerm: docListSearch, Category: docListCategory}
		filtered := f.Apply(docs)

		if flagJSON {
			return printJSON(filtered)
		}

		printDocumentTable(filtered)
		if !f.Active() {
			printRepositoryStats(docs)
		}
		return nil
	},
}

var (
	docAddFilename string
	docAddCategory string
	docAddSize     int64
	docAddType     string
	docAddCase     int
)

var documentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document record",
	Long: `Add records a document in the repository. There is no file transfer;
the record itself is the artifact.

Example:
  casetrack document add --filename notes.pdf --category case-notes \
    --size 24576 --type application/pdf --case 3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openRegistry()
		if err != nil {
			return err
		}
		defer registry.Close()

		doc, err := registry.Documents().Create(types.DocumentDraft{
			Filename:      docAddFilename,
			Category:      docAddCategory,
			FileSize:      docAddSize,
			FileType:      docAddType,
			RelatedCaseID: docAddCase,
		})
		if err != nil {
			return fmt.Errorf("add document: %w", err)
		}

		if flagJSON {
			return printJSON(doc)
		}

		fmt.Printf("Added document %d: %s (%s)\n", doc.ID, doc.Filename, doc.Category)
		return nil
	},
}

var documentRelatedCmd = &cobra.Command{
	Use:   "related <case-id>",
	Short: "List documents attached to a case report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		caseID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid case id %q", args[0])
		}

		registry, err := openRegistry()
		if err != nil {
			return err
		}
		defer registry.Close()

		docs, err := registry.Documents().ListRelated(caseID)
		if err != nil {
			return fmt.Errorf("list related documents: %w", err)
		}

		if flagJSON {
			return printJSON(docs)
		}

		printDocumentTable(docs)
		return nil
	},
}

var documentDeleteYes bool

var documentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a document record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid document id %q", args[0])
		}

		registry, err := openRegistry()
		if err != nil {
			return err
		}
		defer registry.Close()

		doc, err := registry.Documents().Get(id)
		if err != nil {
			return fmt.Errorf("get document: %w", err)
		}

		if !documentDeleteYes && !confirm(fmt.Sprintf("Delete document %q?", doc.Filename)) {
			fmt.Println("Aborted.")
			return nil
		}

		if err := registry.Documents().Delete(id); err != nil {
			return fmt.Errorf("delete document: %w", err)
		}

		fmt.Printf("Deleted document: %s\n", doc.Filename)
		return nil
	},
}

func init() {
	documentListCmd.Flags().StringVar(&docListCategory, "category", "", "filter by category ("+strings.Join(types.DocumentCategories, ", ")+")")
	documentListCmd.Flags().StringVar(&docListSearch, "search", "", "search filename and category")

	documentAddCmd.Flags().StringVar(&docAddFilename, "filename", "", "document filename (required)")
	documentAddCmd.Flags().StringVar(&docAddCategory, "category", "", "document category (required)")
	documentAddCmd.Flags().Int64Var(&docAddSize, "size", 0, "file size in bytes")
	documentAddCmd.Flags().StringVar(&docAddType, "type", "", "MIME type or extension")
	documentAddCmd.Flags().IntVar(&docAddCase, "case", 0, "related case report id (0 = none)")

	documentDeleteCmd.Flags().BoolVar(&documentDeleteYes, "yes", false, "skip the confirmation prompt")

	documentCmd.AddCommand(documentListCmd)
	documentCmd.AddCommand(documentAddCmd)
	documentCmd.AddCommand(documentRelatedCmd)
	documentCmd.AddCommand(documentDeleteCmd)
}

// printDocumentTable prints documents in a human-readable table format.
func printDocumentTable(docs []types.Document) {
	if len(docs) == 0 {
		fmt.Println("No documents found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tFILENAME\tCATEGORY\tSIZE\tUPLOADED\tCASE")
	fmt.Fprintln(w, "--\t--------\t--------\t----\t--------\t----")
	for _, d := range docs {
		caseCol := "-"
		if d.RelatedCaseID != 0 {
			caseCol = strconv.Itoa(d.RelatedCaseID)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			d.ID,
			truncate(d.Filename, 40),
			d.Category,
			formatFileSize(d.FileSize),
			formatDate(d.UploadDate),
			caseCol,
		)
	}
	w.Flush()
	fmt.Fprint(os.Stdout, sb.String())
}

// printRepositoryStats prints the totals footer shown under the full list.
func printRepositoryStats(docs []types.Document) {
	var totalSize int64
	byCategory := make(map[string]int)
	for _, d := range docs {
		totalSize += d.FileSize
		byCategory[d.Category]++
	}

	fmt.Printf("Total: %d document(s), %s\n", len(docs), formatFileSize(totalSize))
	for _, cat := range types.DocumentCategories {
		if byCategory[cat] > 0 {
			fmt.Printf("  %s: %d\n", cat, byCategory[cat])
		}
	}
}
