package ui

import "charm.land/lipgloss/v2"

// Color palette, replaced wholesale by SetTheme.
var (
	ColorPrimary     = lipgloss.Color(BuiltinThemes[DefaultTheme].Primary)
	ColorSecondary   = lipgloss.Color(BuiltinThemes[DefaultTheme].Secondary)
	ColorBg          = lipgloss.Color(BuiltinThemes[DefaultTheme].Bg)
	ColorSurface     = lipgloss.Color(BuiltinThemes[DefaultTheme].Surface)
	ColorHandle      = lipgloss.Color(BuiltinThemes[DefaultTheme].Handle)
	ColorText        = lipgloss.Color(BuiltinThemes[DefaultTheme].Text)
	ColorTextMuted   = lipgloss.Color(BuiltinThemes[DefaultTheme].TextMuted)
	ColorTextInverse = lipgloss.Color(BuiltinThemes[DefaultTheme].TextInverse)
	ColorWarning     = lipgloss.Color(BuiltinThemes[DefaultTheme].Warning)
	ColorError       = lipgloss.Color(BuiltinThemes[DefaultTheme].Error)
	ColorInfo        = lipgloss.Color(BuiltinThemes[DefaultTheme].Info)
	ColorSuccess     = lipgloss.Color(BuiltinThemes[DefaultTheme].Success)
	ColorBorder      = lipgloss.Color(BuiltinThemes[DefaultTheme].Border)
	ColorMapLand     = lipgloss.Color(BuiltinThemes[DefaultTheme].MapLand)
	ColorMapRoad     = lipgloss.Color(BuiltinThemes[DefaultTheme].MapRoad)
	ColorMapWater    = lipgloss.Color(BuiltinThemes[DefaultTheme].MapWater)
	ColorMapPin      = lipgloss.Color(BuiltinThemes[DefaultTheme].MapPin)
)

// Header styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Sheet styles
var (
	SheetStyle         lipgloss.Style
	SheetHandleStyle   lipgloss.Style
	SheetGrabberStyle  lipgloss.Style
	SheetLabelStyle    lipgloss.Style
	SheetHeadingStyle  lipgloss.Style
	SheetTimeStyle     lipgloss.Style
	SheetTitleStyle    lipgloss.Style
	SheetDetailStyle   lipgloss.Style
	KeyboardBarStyle   lipgloss.Style
	KeyboardTitleStyle lipgloss.Style
)

// Map styles
var (
	MapLandStyle  lipgloss.Style
	MapRoadStyle  lipgloss.Style
	MapWaterStyle lipgloss.Style
	MapPinStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the current color variables.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	SheetStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorText)

	SheetHandleStyle = lipgloss.NewStyle().
		Background(ColorHandle).
		Foreground(ColorTextMuted)

	SheetGrabberStyle = lipgloss.NewStyle().
		Background(ColorHandle).
		Foreground(ColorPrimary).
		Bold(true)

	SheetLabelStyle = lipgloss.NewStyle().
		Background(ColorHandle).
		Foreground(ColorTextMuted).
		Italic(true)

	SheetHeadingStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorPrimary).
		Bold(true)

	SheetTimeStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorSecondary)

	SheetTitleStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorText).
		Bold(true)

	SheetDetailStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorTextMuted)

	KeyboardBarStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(ColorPrimary).
		Background(ColorBg).
		Padding(0, 1)

	KeyboardTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	MapLandStyle = lipgloss.NewStyle().
		Background(ColorMapLand).
		Foreground(ColorMapRoad)

	MapRoadStyle = lipgloss.NewStyle().
		Background(ColorMapLand).
		Foreground(ColorMapRoad).
		Bold(true)

	MapWaterStyle = lipgloss.NewStyle().
		Background(ColorMapWater).
		Foreground(ColorInfo)

	MapPinStyle = lipgloss.NewStyle().
		Background(ColorMapLand).
		Foreground(ColorMapPin).
		Bold(true)
}
