// Package cli provides the command-line interface for sitecheck.
package cli

import (
	"io"
	"os"

	"github.com/auditware/sitecheck/internal/version"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// logger is configured from the global flags before any command runs.
	logger = hclog.NewNullLogger()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "sitecheck",
		Short: "Theme and SEO tooling for the Auditware website",
		Long: `sitecheck works with the Auditware marketing site.

It audits the generated build output against the site's SEO and accessibility
checklist, and renders the per-page colour themes as CSS.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-error output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(themeCmd)
}

// setupLogging builds the shared logger from the verbose and quiet flags.
func setupLogging(cmd *cobra.Command, _ []string) error {
	logger = newLogger(cmd.ErrOrStderr(), verbose, quiet)
	return nil
}

func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case quiet:
		level = hclog.Off
	case verbose:
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "sitecheck",
		Output: out,
		Level:  level,
	})
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(version.String())
	},
}
