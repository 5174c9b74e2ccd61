// Package app sequences one thundery run: load the config, fetch the
// weather, render the report.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/dkoosis/thundery/internal/config"
	"github.com/dkoosis/thundery/internal/logging"
	"github.com/dkoosis/thundery/internal/render"
	"github.com/dkoosis/thundery/internal/weather"
)

// Fetcher retrieves the decoded provider response for a city.
type Fetcher interface {
	Fetch(ctx context.Context, city, units, apiKey string) (any, error)
}

// Deps are the capabilities a run needs.
type Deps struct {
	Store   config.Store
	Weather Fetcher
	Now     func() time.Time // defaults to time.Now
	Log     *slog.Logger     // defaults to a discarding logger
}

// Run produces the report text, without a trailing newline. Errors from
// the fetcher are returned unchanged, so callers can tell a
// *weather.StatusError from a fatal failure.
func Run(ctx context.Context, deps Deps) (string, error) {
	log := deps.Log
	if log == nil {
		log = logging.Discard()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	cfg, err := config.Load(deps.Store, log)
	if err != nil {
		return "", err
	}
	log.Debug("config loaded", "path", deps.Store.Location(), "city", cfg.City, "units", cfg.Units)

	doc, err := deps.Weather.Fetch(ctx, cfg.City, cfg.Units, cfg.APIKey)
	if err != nil {
		return "", err
	}

	reading := weather.Extract(doc)
	log.Debug("weather fetched", "condition", reading.Condition)
	return render.Render(cfg, reading, now().UTC()), nil
}
