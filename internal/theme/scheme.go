package theme

// DescriptionGrey returns the fixed body text colour used by every hero
// section.
func DescriptionGrey() RGB {
	return RGB{R: 160, G: 160, B: 160}
}

// GradientText holds the five stops of the hero title gradient.
type GradientText struct {
	Stop1 RGB `json:"stop1"`
	Stop2 RGB `json:"stop2"`
	Stop3 RGB `json:"stop3"`
	Stop4 RGB `json:"stop4"`
	Stop5 RGB `json:"stop5"`
}

// ColorPair is a start/end pair for a two-stop gradient.
type ColorPair struct {
	Start RGB `json:"start"`
	End   RGB `json:"end"`
}

// ButtonColors holds the call-to-action button gradients and border.
type ButtonColors struct {
	Primary      ColorPair `json:"primary"`
	PrimaryHover ColorPair `json:"primaryHover"`
	Border       Tone      `json:"border"`
}

// TextColors holds the hero text colours.
type TextColors struct {
	Title       RGB `json:"title"`
	Description RGB `json:"description"`
}

// GlowPair is a two-stop gradient where each stop has its own opacity.
type GlowPair struct {
	Start        RGB     `json:"start"`
	StartOpacity float64 `json:"startOpacity"`
	End          RGB     `json:"end"`
	EndOpacity   float64 `json:"endOpacity"`
}

// Decorations holds the accent colours for hero imagery and patterns.
type Decorations struct {
	ImageBorder Tone     `json:"imageBorder"`
	ImageGlow   GlowPair `json:"imageGlow"`
	DotPattern  Tone     `json:"dotPattern"`
	GridPattern Tone     `json:"gridPattern"`
	Badge       Tone     `json:"badge"`
}

// HeroBackground is the two-tone wash behind the hero section.
type HeroBackground struct {
	Start Tone `json:"start"`
	End   Tone `json:"end"`
}

// ColorScheme is the flattened set of colours consumed by the hero and
// section components.
type ColorScheme struct {
	GradientText   GradientText   `json:"gradientText"`
	Splotch1       Tone           `json:"splotch1"`
	Splotch2       Tone           `json:"splotch2"`
	Splotch3       Tone           `json:"splotch3"`
	Button         ButtonColors   `json:"button"`
	Text           TextColors     `json:"text"`
	Accent         Decorations    `json:"accent"`
	HeroBackground HeroBackground `json:"heroBackground"`
}

// ToColorScheme projects a theme's palette onto the component colour scheme.
func ToColorScheme(t PageTheme) ColorScheme {
	p := t.Palette.Primary
	bg := t.Palette.Semantic.Background
	borderOpacity := t.Palette.Semantic.Border.Base.Opacity

	return ColorScheme{
		GradientText: GradientText{
			Stop1: White(),
			Stop2: White(),
			Stop3: p.Step(50),
			Stop4: p.Step(100),
			Stop5: p.Step(200),
		},
		Splotch1: bg.Gradient1,
		Splotch2: bg.Gradient2,
		Splotch3: bg.Gradient3,
		Button: ButtonColors{
			Primary:      ColorPair{Start: p.Step(600), End: p.Step(500)},
			PrimaryHover: ColorPair{Start: p.Step(500), End: p.Step(400)},
			Border:       tone(p.Step(500), borderOpacity),
		},
		Text: TextColors{
			Title:       p.Step(100),
			Description: DescriptionGrey(),
		},
		Accent: Decorations{
			ImageBorder: tone(p.Step(500), borderOpacity),
			ImageGlow: GlowPair{
				Start:        p.Step(600),
				StartOpacity: 0.8,
				End:          p.Step(500),
				EndOpacity:   0.6,
			},
			DotPattern:  tone(p.Step(300), 0.4),
			GridPattern: tone(p.Step(500), 0.08),
			Badge:       tone(p.Step(600), 0.2),
		},
		HeroBackground: HeroBackground{
			Start: tone(p.Step(800), 0.3),
			End:   tone(p.Step(800), 0.2),
		},
	}
}
