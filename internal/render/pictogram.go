package render

import "github.com/dkoosis/thundery/internal/weather"

// reportLines is the number of rows in every pictogram: one per slot
// (city, condition, temperature, wind, sunrise, sunset, date).
const reportLines = 7

// pictogram is the ASCII art drawn left of the report text.
type pictogram struct {
	width int // display columns reserved for the art
	art   [reportLines]string
	word  string // fixed condition word; empty shows the provider label
	role  Role
}

var cloud = [reportLines]string{
	"",
	"     .--.",
	"  .-(    ).",
	" (___.__)__)",
}

// pictogramFor returns the art for c. Every Condition without its own
// art gets the generic cloud.
func pictogramFor(c weather.Condition) pictogram {
	switch c {
	case weather.Clear:
		return pictogram{
			width: 13,
			art: [reportLines]string{
				"",
				`   \   /`,
				"    .-.",
				" ‒ (   ) ‒",
				"    ʻ-ʻ",
				`   /   \`,
			},
			word: "clear",
			role: RoleClear,
		}
	case weather.Clouds:
		return pictogram{width: 15, art: cloud, word: "cloudy", role: RoleClouds}
	case weather.Rain:
		art := cloud
		art[4] = "  ʻ‚ʻ‚ʻ‚ʻ‚ʻ"
		return pictogram{width: 15, art: art, word: "rainy", role: RoleRain}
	case weather.Snow:
		art := cloud
		art[4] = "   * * * *"
		art[5] = "  * * * *"
		return pictogram{width: 15, art: art, word: "snowy", role: RoleSnow}
	case weather.Thunderstorm:
		art := cloud
		art[4] = "    /_  /_"
		art[5] = "     /  /"
		return pictogram{width: 15, art: art, word: "thundery", role: RoleThunderstorm}
	default:
		return pictogram{width: 15, art: cloud, role: RoleOther}
	}
}

// caption is the text after "Weather: ".
func (p pictogram) caption(label string) string {
	if p.word == "" {
		return label
	}
	return p.word
}
