package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Role identifies which part of the report a piece of text is.
type Role int

// Roles for report text. The condition roles color the "Weather:" line.
const (
	RoleCity Role = iota
	RoleTemperature
	RoleWind
	RoleSunrise
	RoleSunset
	RoleDate
	RoleClear
	RoleClouds
	RoleRain
	RoleSnow
	RoleThunderstorm
	RoleOther
)

// Theme maps roles to lipgloss styles.
type Theme struct {
	Name    string
	Enabled bool
	Styles  map[Role]lipgloss.Style
}

// DefaultTheme returns the colored theme used when use_colors is set.
// It always emits ANSI codes, whether or not stdout is a terminal.
func DefaultTheme() Theme {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)

	fg := func(c string) lipgloss.Style { return r.NewStyle().Foreground(lipgloss.Color(c)) }
	bold := func(c string) lipgloss.Style { return fg(c).Bold(true) }

	return Theme{
		Name:    "default",
		Enabled: true,
		Styles: map[Role]lipgloss.Style{
			RoleCity:         bold("2"), // green
			RoleTemperature:  fg("1"),   // red
			RoleWind:         fg("6"),   // cyan
			RoleSunrise:      fg("3"),   // yellow
			RoleSunset:       fg("4"),   // blue
			RoleDate:         fg("7"),   // white
			RoleClear:        bold("3"),
			RoleClouds:       bold("5"),
			RoleRain:         bold("4"),
			RoleSnow:         bold("5"),
			RoleThunderstorm: bold("0"),
			RoleOther:        bold("1"),
		},
	}
}

// MonoTheme returns a theme that leaves text unstyled.
func MonoTheme() Theme {
	return Theme{Name: "mono"}
}

// ThemeFor picks the theme for the use_colors setting.
func ThemeFor(useColors bool) Theme {
	if useColors {
		return DefaultTheme()
	}
	return MonoTheme()
}

// Style renders text for role. Empty text is returned unstyled so
// omitted fields never leave stray escape codes behind.
func (t Theme) Style(text string, role Role) string {
	if text == "" || !t.Enabled {
		return text
	}
	st, ok := t.Styles[role]
	if !ok {
		return text
	}
	return st.Render(text)
}
