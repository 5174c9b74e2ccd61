package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/thundery/internal/config"
	"github.com/dkoosis/thundery/internal/weather"
)

var fixedNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func testvilleConfig() config.Config {
	return config.Config{
		City:         "Testville",
		Units:        "metric",
		ShowCityName: true,
		TimeFormat:   "24",
	}
}

func rainReading() weather.Reading {
	return weather.Reading{
		Condition:   "Rain",
		Temperature: 15.5,
		WindSpeed:   4.2,
		Sunrise:     1700000000,
		Sunset:      1700040000,
	}
}

func TestRender_MatchesRainReport_When_ColorsOff(t *testing.T) {
	want := strings.Join([]string{
		"               City: Testville",
		"     .--.      Weather: rainy",
		"  .-(    ).    Temperature: 15.5°C",
		" (___.__)__)   Wind speed: 4.2 m/s",
		"  ʻ‚ʻ‚ʻ‚ʻ‚ʻ    Sunrise: 22:13",
		"               Sunset: 09:20",
		"               ",
	}, "\n")

	assert.Equal(t, want, Render(testvilleConfig(), rainReading(), fixedNow))
}

func TestRender_MatchesClearReport_When_DateShown(t *testing.T) {
	cfg := testvilleConfig()
	cfg.ShowCityName = false
	cfg.ShowDate = true
	r := rainReading()
	r.Condition = "Clear"

	want := strings.Join([]string{
		"             ",
		`   \   /     Weather: clear`,
		"    .-.      Temperature: 15.5°C",
		" ‒ (   ) ‒   Wind speed: 4.2 m/s",
		"    ʻ-ʻ      Sunrise: 22:13",
		`   /   \     Sunset: 09:20`,
		"             Date: 10/17/26",
	}, "\n")

	assert.Equal(t, want, Render(cfg, r, fixedNow))
}

func TestRender_SelectsPictogram_When_ConditionMatches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label   string
		caption string
		artLine string
	}{
		{"Clear", "Weather: clear", `   \   /     Weather: clear`},
		{"Clouds", "Weather: cloudy", "     .--.      Weather: cloudy"},
		{"Rain", "Weather: rainy", "  ʻ‚ʻ‚ʻ‚ʻ‚ʻ    "},
		{"Snow", "Weather: snowy", "   * * * *     "},
		{"Thunderstorm", "Weather: thundery", "    /_  /_     "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.label, func(t *testing.T) {
			t.Parallel()
			r := rainReading()
			r.Condition = tc.label

			out := Render(testvilleConfig(), r, fixedNow)
			assert.Contains(t, out, tc.caption)
			assert.Contains(t, out, tc.artLine)
		})
	}
}

func TestRender_UsesGenericCloudWithLabel_When_ConditionUnmatched(t *testing.T) {
	t.Parallel()

	for _, label := range []string{"Mist", "", "Unknown", "Thundestorm", "rain"} {
		label := label
		t.Run("label="+label, func(t *testing.T) {
			t.Parallel()
			r := rainReading()
			r.Condition = label

			out := Render(testvilleConfig(), r, fixedNow)
			lines := strings.Split(out, "\n")
			require.Len(t, lines, reportLines)
			assert.Equal(t, "     .--.      Weather: "+label, lines[1])
			assert.Equal(t, "               Sunrise: 22:13", lines[4], "generic art has no precipitation row")
		})
	}
}

func TestRender_SelectsUnits_When_UnitsSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		units string
		temp  string
		wind  string
	}{
		{"metric", "Temperature: 15.5°C", "Wind speed: 4.2 m/s"},
		{"imperial", "Temperature: 15.5°F", "Wind speed: 4.2 mph"},
		{"standard", "Temperature: 15.5K", "Wind speed: 4.2 m/s"},
		{"", "Temperature: 15.5K", "Wind speed: 4.2 m/s"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run("units="+tc.units, func(t *testing.T) {
			t.Parallel()
			cfg := testvilleConfig()
			cfg.Units = tc.units

			out := Render(cfg, rainReading(), fixedNow)
			assert.Contains(t, out, tc.temp)
			assert.Contains(t, out, tc.wind)
		})
	}
}

func TestRender_ShiftsSunTimes_When_OffsetConfigured(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		plus       int64
		minus      int64
		timeformat string
		sunrise    string
		sunset     string
	}{
		{"utc 24h", 0, 0, "24", "Sunrise: 22:13", "Sunset: 09:20"},
		{"plus 3 minus 1", 3, 1, "24", "Sunrise: 00:13", "Sunset: 11:20"},
		{"negative net offset", 0, 10, "24", "Sunrise: 12:13", "Sunset: 23:20"},
		{"12h clock", 0, 0, "12", "Sunrise: 10:13 PM", "Sunset: 09:20 AM"},
		{"12h clock shifted", 3, 1, "12", "Sunrise: 12:13 AM", "Sunset: 11:20 AM"},
		{"unknown format is 24h", 0, 0, "am/pm", "Sunrise: 22:13", "Sunset: 09:20"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := testvilleConfig()
			cfg.TimePlus, cfg.TimeMinus, cfg.TimeFormat = tc.plus, tc.minus, tc.timeformat

			out := Render(cfg, rainReading(), fixedNow)
			assert.Contains(t, out, tc.sunrise)
			assert.Contains(t, out, tc.sunset)
		})
	}
}

func TestLocalTime_AddsNetOffsetToUTC(t *testing.T) {
	const ts = 1700000000
	got := LocalTime(ts, config.Config{TimePlus: 3, TimeMinus: 1}.Offset())

	assert.Equal(t, time.Unix(ts, 0).UTC().Add(2*time.Hour), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestRender_OmitsCityAndDate_When_Disabled(t *testing.T) {
	cfg := testvilleConfig()
	cfg.ShowCityName = false
	cfg.ShowDate = false
	cfg.UseColors = true

	out := Render(cfg, rainReading(), fixedNow)

	assert.NotContains(t, out, "City:")
	assert.NotContains(t, out, "Testville")
	assert.NotContains(t, out, "Date:")
	assert.NotContains(t, out, "10/17/26")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, reportLines)
	assert.Equal(t, strings.Repeat(" ", 15), lines[0], "empty city slot must not carry escape codes")
	assert.Equal(t, strings.Repeat(" ", 15), lines[6], "empty date slot must not carry escape codes")
}

func TestRender_ShowsZeroValues_When_ReadingEmpty(t *testing.T) {
	out := Render(testvilleConfig(), weather.Reading{Condition: weather.UnknownCondition}, fixedNow)

	assert.Contains(t, out, "Weather: Unknown")
	assert.Contains(t, out, "Temperature: 0.0°C")
	assert.Contains(t, out, "Wind speed: 0.0 m/s")
	assert.Contains(t, out, "Sunrise: 00:00")
	assert.Contains(t, out, "Sunset: 00:00")
}

func TestRender_EmitsANSI_When_ColorsOn(t *testing.T) {
	cfg := testvilleConfig()
	cfg.ShowDate = true

	plain := Render(cfg, rainReading(), fixedNow)
	assert.NotContains(t, plain, "\x1b[")

	cfg.UseColors = true
	colored := Render(cfg, rainReading(), fixedNow)
	assert.Contains(t, colored, "\x1b[")
	for _, s := range []string{"City: Testville", "Weather: rainy", "Temperature: 15.5°C", "Wind speed: 4.2 m/s", "Sunrise: 22:13", "Sunset: 09:20", "10/17/26"} {
		assert.Contains(t, colored, s)
	}
}
