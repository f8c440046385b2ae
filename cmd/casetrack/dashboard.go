// Dashboard command renders the supervision progress overview.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mesh-intelligence/casetrack/internal/dashboard"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// Lipgloss styles for the dashboard view.
var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("45")).
			Bold(true).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Bold(true)

	milestoneStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Margin(0, 1, 0, 0)

	progressFilledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("46"))

	progressEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("238"))
)

const progressBarWidth = 40

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the supervision progress dashboard",
	Long: `Dashboard summarizes the case report collection: status counts,
submission progress, milestone position, the most recent reports, and
upcoming supervision meetings.

Example:
  casetrack dashboard
  casetrack dashboard --json`,
	Args: cobra.NoArgs,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	registry, err := openRegistry()
	if err != nil {
		return err
	}
	defer registry.Close()

	// Reports and meetings load concurrently, each behind its own simulated
	// latency.
	var (
		reports  []types.CaseReport
		meetings []types.Meeting
	)
	var g errgroup.Group
	g.Go(func() error {
		var err error
		reports, err = registry.CaseReports().List()
		return err
	})
	g.Go(func() error {
		var err error
		meetings, err = registry.Meetings().List()
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	now := time.Now()
	stats := dashboard.Compute(reports)
	recent := dashboard.RecentReports(reports, 5)
	upcoming, _ := dashboard.SplitMeetings(meetings, now)

	if flagJSON {
		return printJSON(struct {
			Stats    dashboard.Stats    `json:"stats"`
			Recent   []types.CaseReport `json:"recentReports"`
			Upcoming []types.Meeting    `json:"upcomingMeetings"`
		}{stats, recent, upcoming})
	}

	fmt.Println(headerStyle.Render("Supervision Dashboard"))
	fmt.Println()
	fmt.Println(renderStatCards(stats))
	fmt.Println()
	fmt.Println(sectionStyle.Render("Progress"))
	fmt.Println(renderProgress(stats))
	fmt.Println()
	fmt.Println(sectionStyle.Render("Recent Reports"))
	fmt.Println(renderRecent(recent))
	fmt.Println(sectionStyle.Render("Upcoming Meetings"))
	fmt.Println(renderUpcoming(upcoming, now))
	return nil
}

// renderStatCards lays the four headline counts out side by side.
func renderStatCards(stats dashboard.Stats) string {
	card := func(label string, value int) string {
		return cardStyle.Render(
			valueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + labelStyle.Render(label),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Total Cases", stats.TotalCases),
		card("Submitted", stats.SubmittedCases),
		card("Approved", stats.ApprovedCases),
		card("Pending Review", stats.PendingReviews),
	)
}

// renderProgress draws a bar for the submitted share plus the distance to
// the next supervision milestone.
func renderProgress(stats dashboard.Stats) string {
	filled := int(stats.Progress / 100 * progressBarWidth)
	if filled > progressBarWidth {
		filled = progressBarWidth
	}
	bar := progressFilledStyle.Render(strings.Repeat("█", filled)) +
		progressEmptyStyle.Render(strings.Repeat("░", progressBarWidth-filled))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %.0f%% submitted\n", bar, stats.Progress)
	if stats.CasesToMilestone == 0 && stats.TotalCases > 0 {
		b.WriteString(milestoneStyle.Render(
			fmt.Sprintf("Milestone reached at %d cases. Schedule a supervision meeting.", stats.TotalCases)))
	} else {
		fmt.Fprintf(&b, "%s",
			labelStyle.Render(fmt.Sprintf("%d more case(s) to milestone %d", stats.CasesToMilestone, stats.NextMilestone)))
	}
	return b.String()
}

func renderRecent(recent []types.CaseReport) string {
	if len(recent) == 0 {
		return labelStyle.Render("No reports yet.") + "\n"
	}
	var b strings.Builder
	for _, r := range recent {
		marker := " "
		if r.IsMilestone() {
			marker = milestoneStyle.Render("*")
		}
		fmt.Fprintf(&b, "%s #%d %s (%s, %s)\n",
			marker, r.CaseNumber, truncate(r.Title, 40), r.Status, formatDate(r.SubmissionDate))
	}
	return b.String()
}

func renderUpcoming(upcoming []types.Meeting, now time.Time) string {
	if len(upcoming) == 0 {
		return labelStyle.Render("No upcoming meetings.")
	}
	var b strings.Builder
	for _, m := range upcoming {
		fmt.Fprintf(&b, "  %s at %s (case %d)\n",
			formatDateTime(m.ScheduledDate), m.Location, m.TriggerCaseNumber)
	}
	return strings.TrimRight(b.String(), "\n")
}
