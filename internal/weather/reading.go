package weather

import "github.com/goccy/go-json"

// UnknownCondition is shown when the response carries no usable label.
const UnknownCondition = "Unknown"

// Reading holds the values displayed for one run.
type Reading struct {
	Condition   string
	Temperature float64 // provider units
	WindSpeed   float64 // provider units
	Sunrise     int64   // Unix seconds, UTC
	Sunset      int64   // Unix seconds, UTC
}

// Extract reads a Reading out of a decoded response. Every field falls
// back to its zero value (or UnknownCondition) independently when it is
// missing or of the wrong type.
func Extract(doc any) Reading {
	r := Reading{Condition: UnknownCondition}
	if s, ok := lookup(doc, "weather", 0, "main").(string); ok {
		r.Condition = s
	}
	if f, ok := asFloat(lookup(doc, "main", "temp")); ok {
		r.Temperature = f
	}
	if f, ok := asFloat(lookup(doc, "wind", "speed")); ok {
		r.WindSpeed = f
	}
	if i, ok := asInt(lookup(doc, "sys", "sunrise")); ok {
		r.Sunrise = i
	}
	if i, ok := asInt(lookup(doc, "sys", "sunset")); ok {
		r.Sunset = i
	}
	return r
}

// Kind returns the pictogram group for the reading's label.
func (r Reading) Kind() Condition {
	return ParseCondition(r.Condition)
}

// lookup walks doc by object keys (string) and array indexes (int).
// It returns nil as soon as a step does not match.
func lookup(doc any, path ...any) any {
	cur := doc
	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil
			}
			cur = obj[key]
		case int:
			arr, ok := cur.([]any)
			if !ok || key < 0 || key >= len(arr) {
				return nil
			}
			cur = arr[key]
		default:
			return nil
		}
	}
	return cur
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// asInt accepts integral JSON numbers only.
func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}
