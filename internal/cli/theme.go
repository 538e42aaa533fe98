package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/auditware/sitecheck/internal/theme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	// Theme command flags
	themeShowFormat string
	themeCSSPart    string
	themeCSSOutput  string
)

// Parts of a theme that `theme css` can render.
const (
	partAll          = "all"
	partVariables    = "variables"
	partBackground   = "background"
	partGradientText = "gradient-text"
)

var cssParts = []string{partAll, partVariables, partBackground, partGradientText}

// themeCmd represents the theme command group
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the per-page colour themes",
	Long: `Inspect the colour themes used by the site's pages.

Each page has a fixed palette: a ten step primary scale, optional accent
colours, and semantic tones for backgrounds, borders and glows. The theme
commands list the palettes, show the component colour scheme derived from a
palette, and render a palette as CSS.`,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered themes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), themeTable(theme.All()).Render())
		return nil
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the colour scheme derived from a theme",
	Long: `Show the component colour scheme derived from a theme's palette.

Examples:
  # Show the sentry scheme as JSON
  sitecheck theme show sentry

  # Show the home scheme as a readable list
  sitecheck theme show home --format text`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeThemeIDs,
	RunE:              runThemeShow,
}

var themeCSSCmd = &cobra.Command{
	Use:   "css <id>",
	Short: "Render a theme as CSS",
	Long: `Render a theme as CSS.

By default the full stylesheet is written: the theme's custom properties on
:root, the page background rules and the .gradient-text class. Use --part to
render a single fragment.

Examples:
  # Write the radar stylesheet to stdout
  sitecheck theme css radar

  # Write only the custom properties
  sitecheck theme css audits --part variables

  # Write the stylesheet to a file
  sitecheck theme css home -o src/styles/theme-home.css`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeThemeIDs,
	RunE:              runThemeCSS,
}

func init() {
	themeShowCmd.Flags().StringVarP(&themeShowFormat, "format", "f", "json", "output format (json, text)")
	themeCSSCmd.Flags().StringVarP(&themeCSSPart, "part", "p", partAll, "part to render ("+strings.Join(cssParts, ", ")+")")
	themeCSSCmd.Flags().StringVarP(&themeCSSOutput, "output", "o", "", "output file (default: stdout)")

	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeCSSCmd)
}

func completeThemeIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return theme.IDs(), cobra.ShellCompDirectiveNoFileComp
}

// lookupTheme resolves a theme id, listing the valid ids when it is unknown.
func lookupTheme(id string) (theme.PageTheme, error) {
	t, err := theme.Get(id)
	var nf *theme.NotFoundError
	if errors.As(err, &nf) {
		return t, fmt.Errorf("%w (available: %s)", err, strings.Join(theme.IDs(), ", "))
	}
	return t, err
}

// themeTable builds the table printed by `theme list`.
func themeTable(themes []theme.PageTheme) *Table {
	table := NewTable([]string{"ID", "NAME", "BASE", "ACCENT"})
	for _, t := range themes {
		accent := lo.Ternary(t.Palette.Accent.IsPresent(), "yes", "no")
		table.AddRow([]string{t.ID, t.Name, t.Palette.Primary.Step(500).Hex(), accent})
	}
	return table
}

// runThemeShow executes the theme show command.
func runThemeShow(cmd *cobra.Command, args []string) error {
	t, err := lookupTheme(args[0])
	if err != nil {
		return err
	}
	scheme := theme.ToColorScheme(t)
	out := cmd.OutOrStdout()

	switch themeShowFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(scheme)
	case "text":
		writeSchemeText(out, t, scheme)
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be 'json' or 'text')", themeShowFormat)
	}
}

func writeSchemeText(w io.Writer, t theme.PageTheme, s theme.ColorScheme) {
	table := NewTable([]string{"ROLE", "COLOUR", "OPACITY"})
	row := func(role string, c theme.RGB, opacity string) {
		table.AddRow([]string{role, c.String(), opacity})
	}
	tone := func(role string, tn theme.Tone) {
		row(role, tn.Color, fmt.Sprint(tn.Opacity))
	}

	row("gradientText.stop3", s.GradientText.Stop3, "")
	row("gradientText.stop4", s.GradientText.Stop4, "")
	row("gradientText.stop5", s.GradientText.Stop5, "")
	tone("splotch1", s.Splotch1)
	tone("splotch2", s.Splotch2)
	tone("splotch3", s.Splotch3)
	row("button.primary.start", s.Button.Primary.Start, "")
	row("button.primary.end", s.Button.Primary.End, "")
	row("button.primaryHover.start", s.Button.PrimaryHover.Start, "")
	row("button.primaryHover.end", s.Button.PrimaryHover.End, "")
	tone("button.border", s.Button.Border)
	row("text.title", s.Text.Title, "")
	row("text.description", s.Text.Description, "")
	tone("accent.imageBorder", s.Accent.ImageBorder)
	row("accent.imageGlow.start", s.Accent.ImageGlow.Start, fmt.Sprint(s.Accent.ImageGlow.StartOpacity))
	row("accent.imageGlow.end", s.Accent.ImageGlow.End, fmt.Sprint(s.Accent.ImageGlow.EndOpacity))
	tone("accent.dotPattern", s.Accent.DotPattern)
	tone("accent.gridPattern", s.Accent.GridPattern)
	tone("accent.badge", s.Accent.Badge)
	tone("heroBackground.start", s.HeroBackground.Start)
	tone("heroBackground.end", s.HeroBackground.End)

	fmt.Fprintf(w, "%s (%s)\n\n", t.Name, t.ID)
	fmt.Fprint(w, table.Render())
}

// renderCSS renders the requested part of a theme.
func renderCSS(t theme.PageTheme, part string) ([]byte, error) {
	switch part {
	case partAll:
		return theme.Stylesheet(t)
	case partVariables:
		return []byte(theme.CSSVariables(t) + "\n"), nil
	case partBackground:
		bg := theme.PageBackgroundStyle(t)
		return []byte(fmt.Sprintf("background: %s;\n\n/* ::before */\nbackground: %s;\n", bg.Background, bg.BackgroundBefore)), nil
	case partGradientText:
		return []byte(theme.GradientTextStyle(t) + "\n"), nil
	default:
		return nil, fmt.Errorf("invalid part: %s (must be one of %s)", part, strings.Join(cssParts, ", "))
	}
}

// runThemeCSS executes the theme css command.
func runThemeCSS(cmd *cobra.Command, args []string) error {
	t, err := lookupTheme(args[0])
	if err != nil {
		return err
	}

	content, err := renderCSS(t, themeCSSPart)
	if err != nil {
		return err
	}

	if themeCSSOutput == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}

	if err := os.WriteFile(themeCSSOutput, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", themeCSSOutput, err)
	}
	logger.Info("wrote theme stylesheet", "theme", t.ID, "part", themeCSSPart, "path", themeCSSOutput)
	return nil
}
