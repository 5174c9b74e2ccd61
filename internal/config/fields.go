package config

// field binds one TOML key to a typed setter on Config. The setter
// reports false, leaving cfg untouched, when the value has the wrong type.
type field struct {
	key string
	set func(cfg *Config, v any) bool
}

// fields lists every key thundery understands. Adding a setting means
// adding a Config field and one entry here.
var fields = []field{
	{"api_key", stringField(func(c *Config) *string { return &c.APIKey })},
	{"city", stringField(func(c *Config) *string { return &c.City })},
	{"units", stringField(func(c *Config) *string { return &c.Units })},
	{"timeplus", intField(func(c *Config) *int64 { return &c.TimePlus })},
	{"timeminus", intField(func(c *Config) *int64 { return &c.TimeMinus })},
	{"showcityname", boolField(func(c *Config) *bool { return &c.ShowCityName })},
	{"showdate", boolField(func(c *Config) *bool { return &c.ShowDate })},
	{"timeformat", stringField(func(c *Config) *string { return &c.TimeFormat })},
	{"use_colors", boolField(func(c *Config) *bool { return &c.UseColors })},
}

// merge applies the recognized, well-typed keys of doc onto base.
func merge(base Config, doc map[string]any) Config {
	for _, f := range fields {
		if v, ok := doc[f.key]; ok {
			f.set(&base, v)
		}
	}
	return base
}

func stringField(ptr func(*Config) *string) func(*Config, any) bool {
	return func(c *Config, v any) bool {
		s, ok := v.(string)
		if ok {
			*ptr(c) = s
		}
		return ok
	}
}

// intField accepts TOML integers only; floats are treated as the wrong type.
func intField(ptr func(*Config) *int64) func(*Config, any) bool {
	return func(c *Config, v any) bool {
		i, ok := v.(int64)
		if ok {
			*ptr(c) = i
		}
		return ok
	}
}

func boolField(ptr func(*Config) *bool) func(*Config, any) bool {
	return func(c *Config, v any) bool {
		b, ok := v.(bool)
		if ok {
			*ptr(c) = b
		}
		return ok
	}
}
