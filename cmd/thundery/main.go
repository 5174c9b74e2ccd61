// thundery prints the current weather for a configured city as a small
// ASCII-art report.
//
// Usage:
//
//	thundery
//	thundery -config ./thundery.toml
//	thundery -version
//
// Settings are read from ~/.config/thundery/thundery.toml (the user
// config directory on Windows), which is created with defaults on first
// run. Set api_key and city there before the first real request.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dkoosis/thundery/internal/app"
	"github.com/dkoosis/thundery/internal/config"
	"github.com/dkoosis/thundery/internal/logging"
	"github.com/dkoosis/thundery/internal/version"
	"github.com/dkoosis/thundery/internal/weather"
)

// fetchHint is printed when the provider rejects the request.
const fetchHint = "Failed to fetch weather data: Your API key and/or city name are missing from the config file, " +
	"if they aren't missing, check the spelling of your city here https://openweathermap.org/"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, weather.NewClient()))
}

func run(args []string, stdout, stderr io.Writer, fetcher app.Fetcher) int {
	fs := flag.NewFlagSet("thundery", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFlag := fs.String("config", "", "Config file path (default: platform config location)")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintln(stdout, version.String())
		return 0
	}

	path := *configFlag
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(stderr, "thundery: %v\n", err)
			return 1
		}
		path = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := app.Run(ctx, app.Deps{
		Store:   config.NewFileStore(path),
		Weather: fetcher,
		Log:     logging.New(stderr, slog.LevelInfo),
	})

	var statusErr *weather.StatusError
	switch {
	case errors.As(err, &statusErr):
		fmt.Fprintln(stderr, fetchHint)
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "thundery: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, report)
	return 0
}
