package ui

import "charm.land/lipgloss/v2"

// Theme is the colour palette for the map, the sheet and the chrome around them.
type Theme struct {
	// Name is the display name of the theme
	Name string

	Primary   string // Accents: header, handle grabber, headings
	Secondary string // Key hints, times

	Bg      string // Screen background behind the map
	Surface string // Sheet background
	Handle  string // Handle row background

	// Text colors
	Text        string
	TextMuted   string
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Info    string
	Success string

	Border string

	// Map colors
	MapLand  string
	MapRoad  string
	MapWater string
	MapPin   string
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeTokyoNight ThemeName = "tokyo-night"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#111827",
		Surface:     "#1F2937",
		Handle:      "#2D3748",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Success:     "#10B981",
		Border:      "#374151",
		MapLand:     "#1E293B",
		MapRoad:     "#475569",
		MapWater:    "#1E3A5F",
		MapPin:      "#F472B6",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#242933",
		Surface:     "#2E3440",
		Handle:      "#3B4252",
		Text:        "#ECEFF4",
		TextMuted:   "#7B88A1",
		TextInverse: "#2E3440",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#5E81AC",
		Success:     "#A3BE8C",
		Border:      "#434C5E",
		MapLand:     "#2B303B",
		MapRoad:     "#4C566A",
		MapWater:    "#2F4A5F",
		MapPin:      "#D08770",
	},
	ThemeTokyoNight: {
		Name:        "Tokyo Night",
		Primary:     "#7AA2F7",
		Secondary:   "#BB9AF7",
		Bg:          "#16161E",
		Surface:     "#1A1B26",
		Handle:      "#24283B",
		Text:        "#C0CAF5",
		TextMuted:   "#565F89",
		TextInverse: "#1A1B26",
		Warning:     "#E0AF68",
		Error:       "#F7768E",
		Info:        "#7DCFFF",
		Success:     "#9ECE6A",
		Border:      "#3B4261",
		MapLand:     "#1F2335",
		MapRoad:     "#414868",
		MapWater:    "#1D3B53",
		MapPin:      "#FF9E64",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox Dark",
		Primary:     "#FE8019",
		Secondary:   "#8EC07C",
		Bg:          "#1D2021",
		Surface:     "#282828",
		Handle:      "#3C3836",
		Text:        "#EBDBB2",
		TextMuted:   "#928374",
		TextInverse: "#282828",
		Warning:     "#FABD2F",
		Error:       "#FB4934",
		Info:        "#83A598",
		Success:     "#B8BB26",
		Border:      "#504945",
		MapLand:     "#32302F",
		MapRoad:     "#665C54",
		MapWater:    "#076678",
		MapPin:      "#D3869B",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#F3F4F6",
		Surface:     "#FFFFFF",
		Handle:      "#E5E7EB",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0891B2",
		Success:     "#059669",
		Border:      "#D1D5DB",
		MapLand:     "#ECFCCB",
		MapRoad:     "#D6D3D1",
		MapWater:    "#BAE6FD",
		MapPin:      "#DB2777",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeTokyoNight,
		ThemeGruvbox,
		ThemeLight,
	}
}

// GetTheme returns a theme by name, defaulting to DarkPurple if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[name]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

// currentTheme holds the active theme
var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the currently active theme
func CurrentTheme() Theme {
	return currentTheme
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	currentTheme = GetTheme(name)
	regenerateStyles()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBg = lipgloss.Color(t.Bg)
	ColorSurface = lipgloss.Color(t.Surface)
	ColorHandle = lipgloss.Color(t.Handle)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorInfo = lipgloss.Color(t.Info)
	ColorSuccess = lipgloss.Color(t.Success)
	ColorBorder = lipgloss.Color(t.Border)
	ColorMapLand = lipgloss.Color(t.MapLand)
	ColorMapRoad = lipgloss.Color(t.MapRoad)
	ColorMapWater = lipgloss.Color(t.MapWater)
	ColorMapPin = lipgloss.Color(t.MapPin)

	buildStyles()
}
