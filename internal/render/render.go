// Package render turns a weather reading into thundery's ASCII report.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/thundery/internal/config"
	"github.com/dkoosis/thundery/internal/weather"
)

// Time layouts for the timeformat setting.
const (
	layout12 = "03:04 PM"
	layout24 = "15:04"
	// dateLayout matches the C locale's %x.
	dateLayout = "01/02/06"
)

// artWidth measures art in display columns with East Asian ambiguous
// runes counted as narrow, independent of the user's locale.
var artWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Terminal renders reports with a fixed theme.
type Terminal struct {
	theme Theme
}

// NewTerminal creates a renderer with the given theme.
func NewTerminal(theme Theme) *Terminal {
	return &Terminal{theme: theme}
}

// Render formats a report using the theme selected by cfg.UseColors.
func Render(cfg config.Config, r weather.Reading, now time.Time) string {
	return NewTerminal(ThemeFor(cfg.UseColors)).Render(cfg, r, now)
}

// Render formats the seven-line report. The result has no trailing newline.
func (t *Terminal) Render(cfg config.Config, r weather.Reading, now time.Time) string {
	p := pictogramFor(r.Kind())
	tempUnit, windUnit := Units(cfg.Units)
	timeLayout := TimeLayout(cfg.TimeFormat)

	var city, date string
	if cfg.ShowCityName {
		city = t.theme.Style("City: "+cfg.City, RoleCity)
	}
	if cfg.ShowDate {
		date = t.theme.Style("Date: ", RoleDate) + t.theme.Style(now.Format(dateLayout), RoleDate)
	}

	slots := [reportLines]string{
		city,
		t.theme.Style("Weather: "+p.caption(r.Condition), p.role),
		t.theme.Style(fmt.Sprintf("Temperature: %.1f%s", r.Temperature, tempUnit), RoleTemperature),
		t.theme.Style(fmt.Sprintf("Wind speed: %.1f %s", r.WindSpeed, windUnit), RoleWind),
		t.theme.Style("Sunrise: "+LocalTime(r.Sunrise, cfg.Offset()).Format(timeLayout), RoleSunrise),
		t.theme.Style("Sunset: "+LocalTime(r.Sunset, cfg.Offset()).Format(timeLayout), RoleSunset),
		date,
	}

	lines := make([]string, reportLines)
	for i := range slots {
		lines[i] = artWidth.FillRight(p.art[i], p.width) + slots[i]
	}
	return strings.Join(lines, "\n")
}

// Units returns the temperature suffix and wind unit for a units
// setting. Unknown settings get Kelvin; the value is never converted.
func Units(units string) (temp, wind string) {
	switch units {
	case "metric":
		return "°C", "m/s"
	case "imperial":
		return "°F", "mph"
	default:
		return "K", "m/s"
	}
}

// TimeLayout returns the clock layout for a timeformat setting.
func TimeLayout(format string) string {
	if format == "12" {
		return layout12
	}
	return layout24
}

// LocalTime converts a Unix timestamp to UTC and shifts it by offset hours.
func LocalTime(unix, offset int64) time.Time {
	return time.Unix(unix, 0).UTC().Add(time.Duration(offset) * time.Hour)
}
