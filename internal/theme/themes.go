package theme

import "github.com/samber/mo"

func rgb(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

func tone(c RGB, opacity float64) Tone {
	return Tone{Color: c, Opacity: opacity}
}

// Home page, purple/violet. These are the default brand colours.
var homeTheme = PageTheme{
	ID:   "home",
	Name: "Home",
	Palette: ColorPalette{
		Primary: Scale{
			rgb(250, 245, 255), // #faf5ff
			rgb(243, 232, 255), // #f3e8ff
			rgb(233, 213, 255), // #e9d5ff
			rgb(216, 180, 254), // #d8b4fe
			rgb(192, 132, 252), // #c084fc
			rgb(168, 85, 247),  // #a855f7
			rgb(147, 51, 234),  // #9333ea
			rgb(126, 34, 206),  // #7e22ce
			rgb(107, 33, 168),  // #6b21a8
			rgb(88, 28, 135),   // #581c87
		},
		Accent: mo.None[Accent](),
		Semantic: Semantic{
			Background: Background{
				Gradient1: tone(rgb(139, 92, 246), 0.2),
				Gradient2: tone(rgb(124, 58, 237), 0.15),
				Gradient3: tone(rgb(109, 40, 217), 0.12),
			},
			Border: Border{
				Base:  tone(rgb(139, 92, 246), 0.3),
				Hover: tone(rgb(167, 139, 250), 0.5),
			},
			Glow: Glow{
				Base:   tone(rgb(139, 92, 246), 0.3),
				Strong: tone(rgb(124, 58, 237), 0.5),
			},
		},
	},
}

// Audit Wizard, blue/indigo.
var auditWizardTheme = PageTheme{
	ID:   "audit-wizard",
	Name: "Audit Wizard",
	Palette: ColorPalette{
		Primary: Scale{
			rgb(239, 246, 255), // #eff6ff
			rgb(219, 234, 254), // #dbeafe
			rgb(191, 219, 254), // #bfdbfe
			rgb(147, 197, 253), // #93c5fd
			rgb(96, 165, 250),  // #60a5fa
			rgb(79, 99, 255),   // #4f63ff
			rgb(59, 79, 235),   // #3b4feb
			rgb(49, 66, 206),   // #3142ce
			rgb(39, 53, 168),   // #2735a8
			rgb(30, 41, 130),   // #1e2982
		},
		Accent: mo.Some(Accent{
			Light: rgb(147, 197, 253),
			Base:  rgb(96, 165, 250),
			Dark:  rgb(37, 99, 235),
		}),
		Semantic: Semantic{
			Background: Background{
				Gradient1: tone(rgb(79, 99, 255), 0.2),
				Gradient2: tone(rgb(59, 79, 235), 0.15),
				Gradient3: tone(rgb(49, 66, 206), 0.12),
			},
			Border: Border{
				Base:  tone(rgb(79, 99, 255), 0.3),
				Hover: tone(rgb(96, 165, 250), 0.5),
			},
			Glow: Glow{
				Base:   tone(rgb(79, 99, 255), 0.3),
				Strong: tone(rgb(59, 79, 235), 0.5),
			},
		},
	},
}

// Sentry, green/teal.
var sentryTheme = PageTheme{
	ID:   "sentry",
	Name: "Sentry",
	Palette: ColorPalette{
		Primary: Scale{
			rgb(236, 253, 245), // #ecfdf5
			rgb(209, 250, 229), // #d1fae5
			rgb(167, 243, 208), // #a7f3d0
			rgb(110, 231, 183), // #6ee7b7
			rgb(52, 211, 153),  // #34d399
			rgb(89, 184, 134),  // #59b886
			rgb(72, 167, 117),  // #48a775
			rgb(56, 142, 96),   // #388e60
			rgb(42, 108, 74),   // #2a6c4a
			rgb(31, 79, 56),    // #1f4f38
		},
		Accent: mo.Some(Accent{
			Light: rgb(167, 243, 208),
			Base:  rgb(110, 231, 183),
			Dark:  rgb(52, 211, 153),
		}),
		Semantic: Semantic{
			Background: Background{
				Gradient1: tone(rgb(89, 184, 134), 0.2),
				Gradient2: tone(rgb(72, 167, 117), 0.15),
				Gradient3: tone(rgb(56, 142, 96), 0.12),
			},
			Border: Border{
				Base:  tone(rgb(89, 184, 134), 0.3),
				Hover: tone(rgb(110, 231, 183), 0.5),
			},
			Glow: Glow{
				Base:   tone(rgb(89, 184, 134), 0.3),
				Strong: tone(rgb(72, 167, 117), 0.5),
			},
		},
	},
}

// Radar, deep forest green. The navbar base is much darker than the other
// pages, so the background gradients run stronger.
var radarTheme = PageTheme{
	ID:   "radar",
	Name: "Radar",
	Palette: ColorPalette{
		Primary: Scale{
			rgb(240, 253, 244), // #f0fdf4
			rgb(220, 252, 231), // #dcfce7
			rgb(187, 247, 208), // #bbf7d0
			rgb(134, 239, 172), // #86efac
			rgb(74, 222, 128),  // #4ade80
			rgb(33, 76, 64),    // #214c40
			rgb(26, 61, 51),    // #1a3d33
			rgb(20, 48, 40),    // #143028
			rgb(15, 36, 30),    // #0f241e
			rgb(10, 24, 20),    // #0a1814
		},
		Accent: mo.Some(Accent{
			Light: rgb(167, 243, 208),
			Base:  rgb(110, 231, 183),
			Dark:  rgb(59, 130, 100),
		}),
		Semantic: Semantic{
			Background: Background{
				Gradient1: tone(rgb(33, 76, 64), 0.25),
				Gradient2: tone(rgb(59, 130, 100), 0.2),
				Gradient3: tone(rgb(45, 106, 83), 0.15),
			},
			Border: Border{
				Base:  tone(rgb(59, 130, 100), 0.3),
				Hover: tone(rgb(110, 231, 183), 0.5),
			},
			Glow: Glow{
				Base:   tone(rgb(59, 130, 100), 0.3),
				Strong: tone(rgb(33, 76, 64), 0.5),
			},
		},
	},
}

// Audits, sky blue.
var auditsTheme = PageTheme{
	ID:   "audits",
	Name: "Audits",
	Palette: ColorPalette{
		Primary: Scale{
			rgb(240, 249, 255), // #f0f9ff
			rgb(224, 242, 254), // #e0f2fe
			rgb(186, 230, 253), // #bae6fd
			rgb(125, 211, 252), // #7dd3fc
			rgb(56, 189, 248),  // #38bdf8
			rgb(59, 130, 246),  // #3b82f6
			rgb(37, 99, 235),   // #2563eb
			rgb(29, 78, 216),   // #1d4ed8
			rgb(30, 64, 175),   // #1e40af
			rgb(30, 58, 138),   // #1e3a8a
		},
		Accent: mo.Some(Accent{
			Light: rgb(125, 211, 252),
			Base:  rgb(56, 189, 248),
			Dark:  rgb(37, 99, 235),
		}),
		Semantic: Semantic{
			Background: Background{
				Gradient1: tone(rgb(59, 130, 246), 0.2),
				Gradient2: tone(rgb(37, 99, 235), 0.15),
				Gradient3: tone(rgb(29, 78, 216), 0.12),
			},
			Border: Border{
				Base:  tone(rgb(59, 130, 246), 0.3),
				Hover: tone(rgb(125, 211, 252), 0.5),
			},
			Glow: Glow{
				Base:   tone(rgb(59, 130, 246), 0.3),
				Strong: tone(rgb(37, 99, 235), 0.5),
			},
		},
	},
}
