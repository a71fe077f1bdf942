// Package theme defines color themes for the splitabill dashboard.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/splitabill/internal/model"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // app background
	Surface       lipgloss.Color // cards
	SurfaceHover  lipgloss.Color // active tab
	SurfaceBright lipgloss.Color // selected row, bar tracks
	Border        lipgloss.Color
	BorderAccent  lipgloss.Color
	TextDim       lipgloss.Color // hints, disabled
	TextMuted     lipgloss.Color // labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color
	AccentBright  lipgloss.Color
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Orange        lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color

	// Series colors category charts, cycling when there are more
	// categories than colors.
	Series []lipgloss.Color
}

// PriorityColor is the color an expense priority is drawn in.
func (t Theme) PriorityColor(p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityHigh:
		return t.Red
	case model.PriorityLow:
		return t.Blue
	default:
		return t.Yellow
	}
}

// HealthColor is the color of the budget health line.
func (t Theme) HealthColor(s model.HealthState) lipgloss.Color {
	switch s {
	case model.HealthUnallocated:
		return t.Yellow
	case model.HealthOverAllocated:
		return t.Red
	case model.HealthBalanced:
		return t.Green
	default:
		return t.TextMuted
	}
}

// SeriesColor returns the i-th chart color.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	if len(t.Series) == 0 {
		return t.Accent
	}
	return t.Series[i%len(t.Series)]
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, warm and paper-inspired.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Green:         lipgloss.Color("#879A39"),
	GreenBright:   lipgloss.Color("#A3B859"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
	Series: []lipgloss.Color{
		"#4385BE", "#D14D41", "#879A39", "#D0A215", "#8B7EC8", "#CE5D97",
	},
}

// Slate matches the splitabill web dashboard: slate cards, purple accents
// and the same six chart colors.
var Slate = Theme{
	Name:          "slate",
	Background:    lipgloss.Color("#0F172A"),
	Surface:       lipgloss.Color("#1E293B"),
	SurfaceHover:  lipgloss.Color("#334155"),
	SurfaceBright: lipgloss.Color("#475569"),
	Border:        lipgloss.Color("#334155"),
	BorderAccent:  lipgloss.Color("#8B5CF6"),
	TextDim:       lipgloss.Color("#64748B"),
	TextMuted:     lipgloss.Color("#94A3B8"),
	TextPrimary:   lipgloss.Color("#F1F5F9"),
	Accent:        lipgloss.Color("#8B5CF6"),
	AccentBright:  lipgloss.Color("#A78BFA"),
	Green:         lipgloss.Color("#10B981"),
	GreenBright:   lipgloss.Color("#34D399"),
	Orange:        lipgloss.Color("#F97316"),
	Red:           lipgloss.Color("#EF4444"),
	Blue:          lipgloss.Color("#3B82F6"),
	Yellow:        lipgloss.Color("#F59E0B"),
	Magenta:       lipgloss.Color("#EC4899"),
	Cyan:          lipgloss.Color("#06B6D4"),
	Series: []lipgloss.Color{
		"#3B82F6", "#EF4444", "#10B981", "#F59E0B", "#8B5CF6", "#EC4899",
	},
}

// CatppuccinMocha is a soft pastel theme.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceHover:  lipgloss.Color("#45475A"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	Green:         lipgloss.Color("#A6E3A1"),
	GreenBright:   lipgloss.Color("#C6F6C3"),
	Orange:        lipgloss.Color("#FAB387"),
	Red:           lipgloss.Color("#F38BA8"),
	Blue:          lipgloss.Color("#89B4FA"),
	Yellow:        lipgloss.Color("#F9E2AF"),
	Magenta:       lipgloss.Color("#CBA6F7"),
	Cyan:          lipgloss.Color("#94E2D5"),
	Series: []lipgloss.Color{
		"#89B4FA", "#F38BA8", "#A6E3A1", "#F9E2AF", "#CBA6F7", "#F5C2E7",
	},
}

// Terminal uses the 16 ANSI colors so it follows the terminal palette.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	Yellow:        lipgloss.Color("11"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
	Series:        []lipgloss.Color{"4", "1", "2", "3", "5", "6"},
}

// All available themes.
var All = []Theme{FlexokiDark, Slate, CatppuccinMocha, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Next returns the name of the theme after name in All, wrapping around.
func Next(name string) string {
	for i, t := range All {
		if t.Name == name {
			return All[(i+1)%len(All)].Name
		}
	}
	return All[0].Name
}
