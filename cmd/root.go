package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the zoomsize application
var rootCmd = &cobra.Command{
	Use:   "zoomsize",
	Short: "Reports cloud-recording storage use per Zoom user",
	Long: `zoomsize collects cloud-recording metadata for every licensed user on a
Zoom account across an 18-month horizon, caches it locally, and reports how
much storage each user's recordings take.

It can run as:
  - A one-shot CLI report (default)
  - An HTTP dashboard (serve)`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "zoomsize version %s\n" .Version}}`)

	// If no subcommand is provided, run the report command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "report")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newServeCmd())
}
