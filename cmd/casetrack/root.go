// Root command for the casetrack CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casetrack/internal/paths"
	"github.com/mesh-intelligence/casetrack/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir   string
	flagFixturesDir string
	flagLatency     float64
	flagJSON        bool
)

// storeConfig is assembled from config.yaml and the global flags by
// PersistentPreRunE so all subcommands can open a registry from it.
var storeConfig types.Config

var rootCmd = &cobra.Command{
	Use:   "casetrack",
	Short: "Casetrack tracks clinical case reports under supervision",
	Long: `Casetrack manages clinical case reports, supervision feedback threads,
supervision meetings, and a document repository. All data lives in memory,
seeded from JSON fixtures; nothing persists across runs.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		fixturesDir, err := paths.ResolveFixturesDir(flagFixturesDir, cfg.GetString(cfgKeyFixturesDir))
		if err != nil {
			return err
		}

		storeConfig = types.Config{
			FixturesDir:  fixturesDir,
			LatencyScale: cfg.GetFloat64(cfgKeyLatencyScale),
			User: types.User{
				ID:     cfg.GetInt(cfgKeyUserID),
				Name:   cfg.GetString(cfgKeyUserName),
				Role:   cfg.GetString(cfgKeyUserRole),
				Avatar: cfg.GetString(cfgKeyUserAvatar),
			},
		}
		if cmd.Flags().Changed("latency") {
			storeConfig.LatencyScale = flagLatency
		}
		return storeConfig.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagFixturesDir, "fixtures-dir", "", "seed fixtures directory (default: embedded fixtures)")
	rootCmd.PersistentFlags().Float64Var(&flagLatency, "latency", 0, "simulated latency scale (0 = none, 1 = full delays)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(meetingCmd)
	rootCmd.AddCommand(documentCmd)
}
