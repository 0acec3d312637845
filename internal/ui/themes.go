package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Theme represents a color theme for the TUI
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	// Semantic colors
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	// UI colors
	Border lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
	Link   lipgloss.AdaptiveColor
}

// buildTheme creates a theme with the given colors
func buildTheme(name string, primary, secondary, accent, success, warning, errorColor, info, border, muted, link [2]string) Theme {
	return Theme{
		Name:      name,
		Primary:   lipgloss.AdaptiveColor{Light: primary[0], Dark: primary[1]},
		Secondary: lipgloss.AdaptiveColor{Light: secondary[0], Dark: secondary[1]},
		Accent:    lipgloss.AdaptiveColor{Light: accent[0], Dark: accent[1]},
		Success:   lipgloss.AdaptiveColor{Light: success[0], Dark: success[1]},
		Warning:   lipgloss.AdaptiveColor{Light: warning[0], Dark: warning[1]},
		Error:     lipgloss.AdaptiveColor{Light: errorColor[0], Dark: errorColor[1]},
		Info:      lipgloss.AdaptiveColor{Light: info[0], Dark: info[1]},
		Border:    lipgloss.AdaptiveColor{Light: border[0], Dark: border[1]},
		Muted:     lipgloss.AdaptiveColor{Light: muted[0], Dark: muted[1]},
		Link:      lipgloss.AdaptiveColor{Light: link[0], Dark: link[1]},
	}
}

// Available themes
var (
	DefaultTheme = buildTheme("default",
		[2]string{"#1E40AF", "#3B82F6"}, [2]string{"#6B7280", "#9CA3AF"}, [2]string{"#7C3AED", "#A855F7"},
		[2]string{"#059669", "#10B981"}, [2]string{"#D97706", "#F59E0B"}, [2]string{"#DC2626", "#EF4444"},
		[2]string{"#0891B2", "#06B6D4"}, [2]string{"#D1D5DB", "#374151"}, [2]string{"#6B7280", "#9CA3AF"},
		[2]string{"#0E7490", "#67E8F9"})

	HighContrastTheme = buildTheme("high-contrast",
		[2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"}, [2]string{"#000080", "#8080FF"},
		[2]string{"#006600", "#00FF00"}, [2]string{"#CC6600", "#FFAA00"}, [2]string{"#CC0000", "#FF4444"},
		[2]string{"#0066CC", "#4499FF"}, [2]string{"#000000", "#FFFFFF"}, [2]string{"#666666", "#BBBBBB"},
		[2]string{"#000080", "#FFFF00"})

	MinimalTheme = buildTheme("minimal",
		[2]string{"#2D3748", "#E2E8F0"}, [2]string{"#718096", "#A0AEC0"}, [2]string{"#4A5568", "#CBD5E0"},
		[2]string{"#2F855A", "#68D391"}, [2]string{"#C05621", "#F6AD55"}, [2]string{"#C53030", "#FC8181"},
		[2]string{"#2B6CB0", "#63B3ED"}, [2]string{"#E2E8F0", "#2D3748"}, [2]string{"#A0AEC0", "#718096"},
		[2]string{"#2B6CB0", "#90CDF4"})
)

// ThemeByName looks up a theme, falling back to the default
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case "", "default":
		return DefaultTheme, true
	case "high-contrast":
		return HighContrastTheme, true
	case "minimal":
		return MinimalTheme, true
	default:
		return DefaultTheme, false
	}
}

// GetAvailableThemes returns list of available theme names
func GetAvailableThemes() []string {
	return []string{"default", "high-contrast", "minimal"}
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled(colorMode string) bool {
	switch colorMode {
	case "never":
		return true
	case "always":
		return false
	default:
		return os.Getenv("NO_COLOR") != ""
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
	Link    lipgloss.Style
	Index   lipgloss.Style
	Panel   lipgloss.Style
	Input   lipgloss.Style
}

// NewStyles builds styles from a theme. With color off every style keeps
// its layout but drops foreground and border colors.
func NewStyles(theme Theme, color bool) *Styles {
	if !color {
		return &Styles{
			Theme:   theme,
			Title:   lipgloss.NewStyle().Bold(true).Padding(0, 1),
			Body:    lipgloss.NewStyle(),
			Muted:   lipgloss.NewStyle(),
			Error:   lipgloss.NewStyle().Bold(true),
			Success: lipgloss.NewStyle(),
			Info:    lipgloss.NewStyle(),
			Link:    lipgloss.NewStyle(),
			Index:   lipgloss.NewStyle().Bold(true),
			Panel:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
			Input:   lipgloss.NewStyle(),
		}
	}

	return &Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Body: lipgloss.NewStyle(),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Info: lipgloss.NewStyle().
			Foreground(theme.Info),

		Link: lipgloss.NewStyle().
			Foreground(theme.Link).
			Underline(true),

		Index: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Input: lipgloss.NewStyle().
			Foreground(theme.Primary),
	}
}
