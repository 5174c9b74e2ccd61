package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/BurntSushi/toml"
)

// Config represents the settings stored in thundery.toml.
type Config struct {
	APIKey       string `toml:"api_key"`
	City         string `toml:"city"`
	Units        string `toml:"units"`     // "metric", "imperial", anything else is Kelvin
	TimePlus     int64  `toml:"timeplus"`  // Hours added to sunrise/sunset
	TimeMinus    int64  `toml:"timeminus"` // Hours subtracted from sunrise/sunset
	ShowCityName bool   `toml:"showcityname"`
	ShowDate     bool   `toml:"showdate"`
	TimeFormat   string `toml:"timeformat"` // "12" or "24"
	UseColors    bool   `toml:"use_colors"`
}

// Constants for default values.
const (
	DefaultUnits      = "metric"
	DefaultTimeFormat = "24"
)

// Default returns the built-in settings written on first run.
func Default() Config {
	return Config{
		Units:      DefaultUnits,
		TimeFormat: DefaultTimeFormat,
	}
}

// Offset returns the net hour shift applied to sunrise and sunset.
func (c Config) Offset() int64 {
	return c.TimePlus - c.TimeMinus
}

// Encode serializes cfg as a TOML document.
func Encode(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

// Load reads the config from store, creating it with defaults when it
// does not exist and rewriting it when it is incomplete. Only store I/O
// failures are returned as errors.
func Load(store Store, log *slog.Logger) (Config, error) {
	data, err := store.Read()
	if errors.Is(err, fs.ErrNotExist) {
		if err := save(store, Default()); err != nil {
			return Config{}, err
		}
		log.Info("No config detected, config made", "path", store.Location())
		data, err = store.Read()
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", store.Location(), err)
	}

	if cfg, ok := decodeStrict(data); ok {
		return cfg, nil
	}

	cfg, err := decodeLoose(data)
	if err != nil {
		log.Warn("config is not valid TOML, using defaults", "path", store.Location(), "error", err)
		return Default(), nil
	}

	if err := save(store, cfg); err != nil {
		return Config{}, err
	}
	log.Info("config was incomplete, missing values filled from defaults", "path", store.Location())
	return cfg, nil
}

// decodeStrict succeeds only when every known key is present with the
// right type. Unknown keys are tolerated.
func decodeStrict(data []byte) (Config, bool) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, false
	}
	for _, f := range fields {
		if !md.IsDefined(f.key) {
			return Config{}, false
		}
	}
	return cfg, true
}

// decodeLoose merges every well-typed known key onto the defaults.
func decodeLoose(data []byte) (Config, error) {
	var doc map[string]any
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return merge(Default(), doc), nil
}

func save(store Store, cfg Config) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := store.Write(data); err != nil {
		return fmt.Errorf("writing config %s: %w", store.Location(), err)
	}
	return nil
}
