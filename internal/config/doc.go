// Package config loads and persists thundery's settings.
//
// # File Location
//
// Settings live in a flat TOML table:
//
//   - Windows: <UserConfigDir>/thundery/thundery.toml
//   - Everything else: ~/.config/thundery/thundery.toml
//
// # Merge-on-Load
//
// The file is read on every invocation. A file that decodes completely
// into Config is returned as-is. A file that is missing keys, or holds a
// value of the wrong type, is merged key by key onto the defaults and
// written back, so the next run sees a complete file:
//
//	api_key = "abc"        # kept
//	city = 42              # wrong type, default "" kept
//	units = "imperial"     # kept
//	colour = true          # unknown, ignored
//
// A file that is not valid TOML at all is left untouched and the
// defaults are used for that run.
package config
