package weather

// Condition is the provider's main weather group, narrowed to the ones
// thundery draws a dedicated pictogram for.
type Condition int

// Condition values. Other covers every label without its own pictogram.
const (
	Other Condition = iota
	Clear
	Clouds
	Rain
	Snow
	Thunderstorm
)

// ParseCondition maps a provider label to a Condition. Matching is
// case-sensitive and exact.
func ParseCondition(label string) Condition {
	switch label {
	case "Clear":
		return Clear
	case "Clouds":
		return Clouds
	case "Rain":
		return Rain
	case "Snow":
		return Snow
	case "Thunderstorm":
		return Thunderstorm
	default:
		return Other
	}
}

func (c Condition) String() string {
	switch c {
	case Clear:
		return "Clear"
	case Clouds:
		return "Clouds"
	case Rain:
		return "Rain"
	case Snow:
		return "Snow"
	case Thunderstorm:
		return "Thunderstorm"
	default:
		return "Other"
	}
}
