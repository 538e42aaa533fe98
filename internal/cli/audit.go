package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/auditware/sitecheck/internal/audit"
	"github.com/auditware/sitecheck/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// Audit command flags
	auditConfig  string
	auditNoColor bool
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit [dist]",
	Short: "Check the generated site against the SEO checklist",
	Long: `Audit the generated HTML output of the site build.

The audit first checks that the build produced its artifacts (the output
directory, sitemap-index.xml, robots.txt and every required page), then parses
every HTML file and checks meta tags, structured data, images, performance
hints, accessibility and internal links.

Failed checks make the command exit non-zero. Warnings are listed in the
summary but do not affect the exit status.

Site settings default to the production site and can be overridden with a
config file or SITECHECK_* environment variables.

Examples:
  # Audit ./dist
  sitecheck audit

  # Audit a different build directory
  sitecheck audit build/output

  # Audit a staging build
  sitecheck audit --site-url https://staging.auditware.io dist

  # Load site settings from a file
  sitecheck audit --config sitecheck.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().StringVarP(&auditConfig, "config", "c", "", "site settings file (yaml, toml or json)")
	auditCmd.Flags().BoolVar(&auditNoColor, "no-color", false, "disable coloured output")
	auditCmd.Flags().String("site-url", "", "expected site origin (overrides config)")
	auditCmd.Flags().String("site-name", "", "expected site name (overrides config)")
}

// auditFlagKeys maps audit flags onto configuration keys.
var auditFlagKeys = map[string]string{
	"site-url":  config.KeySiteURL,
	"site-name": config.KeySiteName,
}

// bindFlags binds command flags to their configuration keys so a flag set on
// the command line takes precedence over the file and environment.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}
	return nil
}

// runAudit executes the audit command.
func runAudit(cmd *cobra.Command, args []string) error {
	root := "dist"
	if len(args) > 0 {
		root = args[0]
	}

	v := viper.New()
	if err := bindFlags(v, cmd.Flags(), auditFlagKeys); err != nil {
		return err
	}
	site, err := config.Load(v, auditConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color.NoColor = auditNoColor || !isTerminal(out)

	logger.Debug("auditing build output", "root", root, "site", site.SiteURL, "pages", site.RequiredPages)

	auditor := audit.NewBuilder(root).
		WithFs(afero.NewOsFs()).
		WithSite(site).
		WithLogger(logger).
		WithOutput(out).
		Build()

	fmt.Fprintln(out, "Running SEO validation checks")
	report, err := auditor.Run()
	if err != nil {
		if errors.Is(err, audit.ErrOutputMissing) {
			return fmt.Errorf("%w (run the site build first)", err)
		}
		return fmt.Errorf("audit aborted: %w", err)
	}

	report.WriteSummary()

	if report.ExitCode() != 0 {
		return fmt.Errorf("%d check(s) failed", report.Failures())
	}
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
