// Meeting command tree for the casetrack CLI.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casetrack/internal/dashboard"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

var meetingCmd = &cobra.Command{
	Use:   "meeting",
	Short: "Manage supervision meetings",
}

var meetingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supervision meetings, upcoming first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := openRegistry()
		if err != nil {
			return err
		}
		defer registry.Close()

		meetings, err := registry.Meetings().List()
		if err != nil {
			return fmt.Errorf("list meetings: %w", err)
		}

		now := time.Now()
		upcoming, past := dashboard.SplitMeetings(meetings, now)

		if flagJSON {
			return printJSON(struct {
				Upcoming []types.Meeting `json:"upcoming"`
				Past     []types.Meeting `json:"past"`
			}{upcoming, past})
		}

		fmt.Println("Upcoming:")
		printMeetings(upcoming)
		fmt.Println("Past:")
		printMeetings(past)
		return nil
	},
}

var (
	scheduleCase     int
	scheduleDate     string
	scheduleLocation string
	scheduleNotes    string
)

var meetingScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a supervision meeting",
	Long: `Schedule creates a supervision meeting tied to a case number,
typically a milestone case. New meetings always start incomplete.

Example:
  casetrack meeting schedule --case 5 --date 2026-09-15T14:00 --location "Room 4"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		when, err := parseMeetingDate(scheduleDate)
		if err != nil {
			return err
		}

		registry, err := openRegistry()
		if err != nil {
			return err
		}
		defer registry.Close()

		meeting, err := registry.Meetings().Create(types.MeetingDraft{
			ScheduledDate:     when,
			Location:          scheduleLocation,
			TriggerCaseNumber: scheduleCase,
			Notes:             scheduleNotes,
		})
		if err != nil {
			return fmt.Errorf("schedule meeting: %w", err)
		}

		if flagJSON {
			return printJSON(meeting)
		}

		fmt.Printf("Scheduled meeting %d: %s at %s (case %d)\n",
			meeting.ID, formatDateTime(meeting.ScheduledDate), meeting.Location, meeting.TriggerCaseNumber)
		return nil
	},
}

var completeNotes string

var meetingCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a meeting as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid meeting id %q", args[0])
		}

		registry, err := openRegistry()
		if err != nil {
			return err
		}
		defer registry.Close()

		done := true
		patch := types.MeetingPatch{Completed: &done}
		if cmd.Flags().Changed("notes") {
			patch.Notes = &completeNotes
		}

		meeting, err := registry.Meetings().Update(id, patch)
		if err != nil {
			return fmt.Errorf("complete meeting: %w", err)
		}

		if flagJSON {
			return printJSON(meeting)
		}

		fmt.Printf("Completed meeting %d (%s)\n", meeting.ID, formatDateTime(meeting.ScheduledDate))
		return nil
	},
}

func init() {
	meetingScheduleCmd.Flags().IntVar(&scheduleCase, "case", 0, "trigger case number (required)")
	meetingScheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "scheduled date, 2006-01-02 or 2006-01-02T15:04 (required)")
	meetingScheduleCmd.Flags().StringVar(&scheduleLocation, "location", "", "meeting location (required)")
	meetingScheduleCmd.Flags().StringVar(&scheduleNotes, "notes", "", "meeting notes")

	meetingCompleteCmd.Flags().StringVar(&completeNotes, "notes", "", "notes recorded at completion")

	meetingCmd.AddCommand(meetingListCmd)
	meetingCmd.AddCommand(meetingScheduleCmd)
	meetingCmd.AddCommand(meetingCompleteCmd)
}

// parseMeetingDate accepts a date or date-with-time in local time.
func parseMeetingDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected 2006-01-02 or 2006-01-02T15:04)", s)
}

func printMeetings(meetings []types.Meeting) {
	if len(meetings) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, m := range meetings {
		status := ""
		if m.Completed {
			status = " [completed]"
		}
		fmt.Printf("  %d: %s at %s (case %d)%s\n",
			m.ID, formatDateTime(m.ScheduledDate), m.Location, m.TriggerCaseNumber, status)
		if m.Notes != "" {
			fmt.Printf("     %s\n", m.Notes)
		}
	}
}
