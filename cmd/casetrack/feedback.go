// Feedback command tree drives the comment thread on a case report.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casetrack/internal/thread"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// Thread rendering styles.
var (
	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	supervisorBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("45")).
			Padding(0, 1)

	studentBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("114")).
			Padding(0, 1)

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	replyIndent = lipgloss.NewStyle().
			PaddingLeft(4)
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Manage feedback threads on case reports",
}

var feedbackListCmd = &cobra.Command{
	Use:   "list <report-id>",
	Short: "Show the feedback thread for a case report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reportID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id %q", args[0])
		}

		eng, closeFn, err := openEngine()
		if err != nil {
			return err
		}
		defer closeFn()

		comments, err := eng.Thread(reportID)
		if err != nil {
			return fmt.Errorf("load thread: %w", err)
		}
		return printThread(comments)
	},
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add <report-id> <content>",
	Short: "Add a top-level comment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reportID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id %q", args[0])
		}

		eng, closeFn, err := openEngine()
		if err != nil {
			return err
		}
		defer closeFn()

		comments, err := eng.Add(reportID, args[1])
		if err != nil {
			return fmt.Errorf("add feedback: %w", err)
		}
		return printThread(comments)
	},
}

var feedbackReplyCmd = &cobra.Command{
	Use:   "reply <report-id> <comment-id> <content>",
	Short: "Reply to a comment",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		reportID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id %q", args[0])
		}
		parentID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid comment id %q", args[1])
		}

		eng, closeFn, err := openEngine()
		if err != nil {
			return err
		}
		defer closeFn()

		comments, err := eng.Reply(reportID, parentID, args[2])
		if err != nil {
			return fmt.Errorf("reply: %w", err)
		}
		return printThread(comments)
	},
}

var feedbackEditCmd = &cobra.Command{
	Use:   "edit <comment-id> <content>",
	Short: "Edit your own comment",
	Long: `Edit replaces a comment's content. Only the comment's author may edit
it; edited comments are marked in the thread.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid comment id %q", args[0])
		}

		eng, closeFn, err := openEngine()
		if err != nil {
			return err
		}
		defer closeFn()

		comments, err := eng.Edit(id, args[1])
		if err != nil {
			return fmt.Errorf("edit feedback: %w", err)
		}
		return printThread(comments)
	},
}

var feedbackDeleteYes bool

var feedbackDeleteCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete a comment and its replies",
	Long: `Delete removes a comment after confirmation, together with every reply
threaded under it, however deep.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid comment id %q", args[0])
		}

		eng, closeFn, err := openEngine()
		if err != nil {
			return err
		}
		defer closeFn()

		gate := func() bool {
			if feedbackDeleteYes {
				return true
			}
			return confirm("Delete this comment and all its replies?")
		}
		comments, err := eng.Delete(id, gate)
		if err != nil {
			return fmt.Errorf("delete feedback: %w", err)
		}
		return printThread(comments)
	},
}

func init() {
	feedbackDeleteCmd.Flags().BoolVar(&feedbackDeleteYes, "yes", false, "skip the confirmation prompt")

	feedbackCmd.AddCommand(feedbackListCmd)
	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackReplyCmd)
	feedbackCmd.AddCommand(feedbackEditCmd)
	feedbackCmd.AddCommand(feedbackDeleteCmd)
}

// openEngine opens a registry and wraps its feedback store in a thread
// engine for the configured acting user.
func openEngine() (*thread.Engine, func(), error) {
	registry, err := openRegistry()
	if err != nil {
		return nil, nil, err
	}
	eng := thread.NewEngine(registry.Feedbacks(), registry.User())
	return eng, func() { _ = registry.Close() }, nil
}

// printThread renders a two-level comment thread.
func printThread(comments []thread.Comment) error {
	if flagJSON {
		return printJSON(comments)
	}

	if len(comments) == 0 {
		fmt.Println("No feedback yet.")
		return nil
	}

	now := time.Now()
	for _, c := range comments {
		fmt.Println(renderComment(c.Feedback, now))
		for _, reply := range c.Replies {
			fmt.Println(replyIndent.Render(renderComment(reply, now)))
		}
	}
	return nil
}

// renderComment formats one feedback entry: author line with role badge and
// relative timestamp, then the content.
func renderComment(f types.Feedback, now time.Time) string {
	badge := studentBadge
	if f.UserRole == types.RoleSupervisor {
		badge = supervisorBadge
	}

	when := formatRelativeTime(f.CreatedAt, now)
	if f.Edited() {
		when += " (edited)"
	}

	header := fmt.Sprintf("[%d] %s %s %s",
		f.ID,
		authorStyle.Render(f.UserName),
		badge.Render(f.UserRole),
		timestampStyle.Render(when),
	)
	return header + "\n" + f.Content
}
