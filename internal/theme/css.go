package theme

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"strings"
	"text/template"
)

//go:embed *.tmpl
var templates embed.FS

// BeforeOpacityOffset is added to the first background gradient's opacity for
// the ::before overlay so the top-left glow reads slightly stronger.
const BeforeOpacityOffset = 0.05

// BackgroundStyle holds the two CSS background declarations for a page: the
// element itself and its ::before overlay.
type BackgroundStyle struct {
	Background       string `json:"background"`
	BackgroundBefore string `json:"backgroundBefore"`
}

// PageBackgroundStyle builds the page background declarations from the
// palette's background gradients.
func PageBackgroundStyle(t PageTheme) BackgroundStyle {
	bg := t.Palette.Semantic.Background

	boosted := bg.Gradient1
	boosted.Opacity = roundOpacity(boosted.Opacity + BeforeOpacityOffset)

	return BackgroundStyle{
		Background: fmt.Sprintf(
			"radial-gradient(ellipse at top, %s 0%%, transparent 50%%), linear-gradient(180deg, #000000 0%%, #0a0a0a 100%%)",
			bg.Gradient1.RGBA(),
		),
		BackgroundBefore: strings.Join([]string{
			fmt.Sprintf("radial-gradient(at 40%% 20%%, %s 0%%, transparent 50%%)", boosted.RGBA()),
			fmt.Sprintf("radial-gradient(at 80%% 0%%, %s 0%%, transparent 50%%)", bg.Gradient2.RGBA()),
			fmt.Sprintf("radial-gradient(at 0%% 50%%, %s 0%%, transparent 50%%)", bg.Gradient3.RGBA()),
		}, ", "),
	}
}

// roundOpacity trims floating point noise from derived opacities.
func roundOpacity(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}

// Variable is a single CSS custom property declaration.
type Variable struct {
	Name  string
	Value string
}

// String renders the declaration, e.g. "--theme-primary-50: 250, 245, 255;".
func (v Variable) String() string {
	return fmt.Sprintf("--%s: %s;", v.Name, v.Value)
}

// VariableGroup is a commented block of related custom properties.
type VariableGroup struct {
	Comment   string
	Variables []Variable
}

// Variables returns the theme's custom properties in their fixed order.
// External style sheets bind to these names, so renaming any is a breaking
// change.
func Variables(t PageTheme) []VariableGroup {
	p := t.Palette
	sem := p.Semantic

	primary := make([]Variable, 0, len(steps))
	for i, step := range steps {
		primary = append(primary, Variable{
			Name:  fmt.Sprintf("theme-primary-%d", step),
			Value: p.Primary[i].String(),
		})
	}

	toneVars := func(name string, tn Tone) []Variable {
		return []Variable{
			{Name: name, Value: tn.Color.String()},
			{Name: name + "-opacity", Value: formatOpacity(tn.Opacity)},
		}
	}

	background := make([]Variable, 0, 6)
	background = append(background, toneVars("theme-bg-gradient-1", sem.Background.Gradient1)...)
	background = append(background, toneVars("theme-bg-gradient-2", sem.Background.Gradient2)...)
	background = append(background, toneVars("theme-bg-gradient-3", sem.Background.Gradient3)...)

	border := make([]Variable, 0, 4)
	border = append(border, toneVars("theme-border-base", sem.Border.Base)...)
	border = append(border, toneVars("theme-border-hover", sem.Border.Hover)...)

	glow := make([]Variable, 0, 4)
	glow = append(glow, toneVars("theme-glow-base", sem.Glow.Base)...)
	glow = append(glow, toneVars("theme-glow-strong", sem.Glow.Strong)...)

	return []VariableGroup{
		{Comment: "Primary Color Scale", Variables: primary},
		{Comment: "Semantic Colors", Variables: background},
		{Variables: border},
		{Variables: glow},
	}
}

// CSSVariables renders the theme's custom properties as declaration lines,
// with a blank line between groups.
func CSSVariables(t PageTheme) string {
	return renderVariables(Variables(t), "")
}

func renderVariables(groups []VariableGroup, indent string) string {
	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		if g.Comment != "" {
			fmt.Fprintf(&b, "%s/* %s */\n", indent, g.Comment)
		}
		for _, v := range g.Variables {
			b.WriteString(indent)
			b.WriteString(v.String())
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// GradientTextStyle renders the declarations that paint text with a white to
// primary-tint gradient.
func GradientTextStyle(t PageTheme) string {
	return renderGradientText(t, "")
}

func renderGradientText(t PageTheme, indent string) string {
	p := t.Palette.Primary
	lines := []string{
		"background: linear-gradient(",
		"  135deg,",
		fmt.Sprintf("  rgb(%s) 0%%,", White()),
		fmt.Sprintf("  rgb(%s) 25%%,", White()),
		fmt.Sprintf("  rgb(%s) 50%%,", p.Step(50)),
		fmt.Sprintf("  rgb(%s) 75%%,", p.Step(100)),
		fmt.Sprintf("  rgb(%s) 100%%", p.Step(200)),
		");",
		"-webkit-background-clip: text;",
		"-webkit-text-fill-color: transparent;",
		"background-clip: text;",
	}
	for i := range lines {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// StylesheetData holds data for the stylesheet template.
type StylesheetData struct {
	ID           string
	Name         string
	Variables    string
	Background   BackgroundStyle
	GradientText string
}

// Stylesheet renders a complete stylesheet for the theme: the custom
// properties on :root, the page background rules and the gradient text class.
func Stylesheet(t PageTheme) ([]byte, error) {
	tmplContent, err := templates.ReadFile("stylesheet.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read stylesheet template: %w", err)
	}

	tmpl, err := template.New("stylesheet.css").Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse stylesheet template: %w", err)
	}

	data := StylesheetData{
		ID:           t.ID,
		Name:         t.Name,
		Variables:    renderVariables(Variables(t), "  "),
		Background:   PageBackgroundStyle(t),
		GradientText: renderGradientText(t, "  "),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute stylesheet template: %w", err)
	}

	return buf.Bytes(), nil
}
