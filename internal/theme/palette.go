// Package theme provides the per-page colour palettes of the site and the
// CSS fragments derived from them.
package theme

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/samber/mo"
)

// RGB represents a colour as an 8-bit red, green, blue triple.
type RGB struct {
	R, G, B uint8
}

// String returns the triple in the "r, g, b" form used inside CSS rgb() and
// rgba() functions and custom properties.
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// Hex returns the colour as a hex string (e.g., "#a855f7").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// MarshalText renders the colour in its "r, g, b" form.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// White returns the fixed highlight colour used by the gradient text stops.
func White() RGB {
	return RGB{R: 255, G: 255, B: 255}
}

// Tone is a colour paired with an opacity between 0 and 1.
type Tone struct {
	Color   RGB     `json:"color"`
	Opacity float64 `json:"opacity"`
}

// RGBA renders the tone as a CSS rgba() function.
func (t Tone) RGBA() string {
	return fmt.Sprintf("rgba(%s, %s)", t.Color, formatOpacity(t.Opacity))
}

// steps lists the tonal steps of a primary scale, lightest first. The CSS
// custom property names are built from it.
var steps = [10]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Steps returns the tonal steps of a primary scale, lightest first.
func Steps() []int {
	return slices.Clone(steps[:])
}

// Scale is a primary colour scale ordered from the lightest tint (50) to the
// darkest shade (900).
type Scale [10]RGB

// Step returns the colour for a tonal step such as 50 or 500.
// Panics if step is not one of Steps.
func (s Scale) Step(step int) RGB {
	for i, v := range steps {
		if v == step {
			return s[i]
		}
	}
	panic(fmt.Sprintf("theme: unknown scale step %d", step))
}

// MarshalJSON encodes the scale as an object keyed by step.
func (s Scale) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, step := range steps {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = strconv.AppendInt(buf, int64(step), 10)
		buf = append(buf, `":"`...)
		buf = append(buf, s[i].String()...)
		buf = append(buf, '"')
	}
	return append(buf, '}'), nil
}

// Accent holds the optional secondary colours of a palette.
type Accent struct {
	Light RGB `json:"light"`
	Base  RGB `json:"base"`
	Dark  RGB `json:"dark"`
}

// Background holds the three page background gradient stops.
type Background struct {
	Gradient1 Tone `json:"gradient1"`
	Gradient2 Tone `json:"gradient2"`
	Gradient3 Tone `json:"gradient3"`
}

// Border holds the resting and hover border tones.
type Border struct {
	Base  Tone `json:"base"`
	Hover Tone `json:"hover"`
}

// Glow holds the soft and strong glow tones.
type Glow struct {
	Base   Tone `json:"base"`
	Strong Tone `json:"strong"`
}

// Semantic groups the tones that are tied to a role on the page rather than
// to a position on the primary scale.
type Semantic struct {
	Background Background `json:"background"`
	Border     Border     `json:"border"`
	Glow       Glow       `json:"glow"`
}

// ColorPalette is the full set of colours that make up one page's visual
// identity.
type ColorPalette struct {
	Primary  Scale             `json:"primary"`
	Accent   mo.Option[Accent] `json:"accent"`
	Semantic Semantic          `json:"semantic"`
}

// tones returns every semantic tone with its name, in declaration order.
func (p ColorPalette) tones() []namedTone {
	s := p.Semantic
	return []namedTone{
		{"background.gradient1", s.Background.Gradient1},
		{"background.gradient2", s.Background.Gradient2},
		{"background.gradient3", s.Background.Gradient3},
		{"border.base", s.Border.Base},
		{"border.hover", s.Border.Hover},
		{"glow.base", s.Glow.Base},
		{"glow.strong", s.Glow.Strong},
	}
}

type namedTone struct {
	name string
	tone Tone
}

// Validate checks that every semantic opacity lies in [0, 1].
func (p ColorPalette) Validate() error {
	for _, nt := range p.tones() {
		if math.IsNaN(nt.tone.Opacity) || nt.tone.Opacity < 0 || nt.tone.Opacity > 1 {
			return fmt.Errorf("%s opacity %v out of range [0, 1]", nt.name, nt.tone.Opacity)
		}
	}
	return nil
}

// PageTheme identifies one page and owns its palette.
type PageTheme struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Palette ColorPalette `json:"palette"`
}

// formatOpacity renders an opacity using the shortest decimal form, so 0.2
// prints as "0.2" rather than "0.200000".
func formatOpacity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
