// Case report command tree for the casetrack CLI.
package main

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage case reports",
}

func init() {
	reportCmd.AddCommand(reportListCmd)
	reportCmd.AddCommand(reportGetCmd)
	reportCmd.AddCommand(reportCreateCmd)
	reportCmd.AddCommand(reportUpdateCmd)
	reportCmd.AddCommand(reportDeleteCmd)
}
